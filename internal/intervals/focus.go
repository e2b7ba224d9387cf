package intervals

import (
	"time"

	"github.com/montanaflynn/stats"
)

// FocusConfig tunes focus-session detection
type FocusConfig struct {
	MaxDisruptionPct      float64
	MaxSingleInterruption time.Duration
	MinDuration           time.Duration
	ProductiveThreshold   float64
}

// DefaultFocusConfig returns the stock focus detection settings
func DefaultFocusConfig() FocusConfig {
	return FocusConfig{
		MaxDisruptionPct:      0.10,
		MaxSingleInterruption: 120 * time.Second,
		MinDuration:           20 * time.Minute,
		ProductiveThreshold:   ProductiveThreshold,
	}
}

// FocusSession is a stretch of productive time with only short interruptions
type FocusSession struct {
	DisruptedSec  float64       `json:"disrupted_sec"`
	DisruptionPct float64       `json:"disruption_pct"`
	Duration      time.Duration `json:"duration"`
	End           time.Time     `json:"end"`
	Start         time.Time     `json:"start"`
}

type run struct {
	end   time.Time
	start time.Time
}

// productiveRuns collapses adjacent productive segments into maximal runs
func productiveRuns(segments []Segment, threshold float64) []run {
	var runs []run
	for _, s := range segments {
		if !s.Active || s.Value < threshold || !s.End.After(s.Start) {
			continue
		}
		if n := len(runs); n > 0 && runs[n-1].end.Equal(s.Start) {
			runs[n-1].end = s.End
			continue
		}
		runs = append(runs, run{start: s.Start, end: s.End})
	}
	return runs
}

// DetectFocusSessions finds focus sessions in a max-concurrency series.
//
// Whatever lies between two productive runs counts as one interruption. It is
// absorbed when it lasts at most MaxSingleInterruption and the accumulated
// disruption stays within MaxDisruptionPct of the session span.
func DetectFocusSessions(segments []Segment, cfg FocusConfig) []FocusSession {
	runs := productiveRuns(segments, cfg.ProductiveThreshold)
	if len(runs) == 0 {
		return nil
	}

	var out []FocusSession
	emit := func(start, end time.Time, disrupted time.Duration) {
		span := end.Sub(start)
		if span < cfg.MinDuration {
			return
		}
		out = append(out, FocusSession{
			DisruptedSec:  disrupted.Seconds(),
			DisruptionPct: disrupted.Seconds() / span.Seconds(),
			Duration:      span,
			End:           end,
			Start:         start,
		})
	}

	start, end := runs[0].start, runs[0].end
	var disrupted time.Duration
	for _, r := range runs[1:] {
		gap := r.start.Sub(end)
		span := r.end.Sub(start)
		if gap <= cfg.MaxSingleInterruption && (disrupted+gap).Seconds() <= cfg.MaxDisruptionPct*span.Seconds() {
			disrupted += gap
			end = r.end
			continue
		}
		emit(start, end, disrupted)
		start, end, disrupted = r.start, r.end, 0
	}
	emit(start, end, disrupted)

	return out
}

// FocusSummary describes a set of focus sessions
type FocusSummary struct {
	Count             int     `json:"count"`
	MeanDisruptionPct float64 `json:"mean_disruption_pct"`
	MeanSec           float64 `json:"mean_sec"`
	MedianSec         float64 `json:"median_sec"`
	P90Sec            float64 `json:"p90_sec"`
	TotalSec          float64 `json:"total_sec"`
}

// SummarizeFocus computes descriptive statistics over session durations
func SummarizeFocus(sessions []FocusSession) (FocusSummary, error) {
	summary := FocusSummary{Count: len(sessions)}
	if len(sessions) == 0 {
		return summary, nil
	}

	durations := make(stats.Float64Data, 0, len(sessions))
	disruption := make(stats.Float64Data, 0, len(sessions))
	for _, s := range sessions {
		durations = append(durations, s.Duration.Seconds())
		disruption = append(disruption, s.DisruptionPct)
	}

	var err error
	if summary.TotalSec, err = stats.Sum(durations); err != nil {
		return summary, err
	}
	if summary.MeanSec, err = stats.Mean(durations); err != nil {
		return summary, err
	}
	if summary.MedianSec, err = stats.Median(durations); err != nil {
		return summary, err
	}
	if summary.P90Sec, err = stats.Percentile(durations, 90); err != nil {
		return summary, err
	}
	if summary.MeanDisruptionPct, err = stats.Mean(disruption); err != nil {
		return summary, err
	}
	return summary, nil
}
