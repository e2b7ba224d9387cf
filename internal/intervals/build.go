// Package intervals turns open/close event streams into clamped intervals and
// reduces overlapping intervals into a single value-over-time series.
//
// Nothing in this package reads the ambient clock: "now" is always passed in.
package intervals

import (
	"sort"
	"time"

	"github.com/renato0307/tally/internal/domain"
)

// Event is one open or close observation of a single activity
type Event struct {
	At   time.Time
	Type domain.EventType
}

// Interval is a reconstructed [Start, End) span of one activity
type Interval struct {
	End            time.Time
	IsOngoing      bool
	Start          time.Time
	TruncatedEnd   bool
	TruncatedStart bool
}

// Span implements Spanner
func (i Interval) Span() (time.Time, time.Time) {
	return i.Start, i.End
}

// Duration returns the length of the interval
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// EventsFromActivity converts stored events to algebra events
func EventsFromActivity(events []domain.ActivityEvent) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		out = append(out, Event{At: e.EventTime, Type: e.EventType})
	}
	return out
}

// Build reconstructs the intervals of a single activity inside [windowStart, windowEnd).
//
// Closes sort before opens on ties. An open while another is pending is ignored,
// as is a close with nothing pending. An open still pending at the end becomes an
// ongoing interval ending at min(now, windowEnd), never before its own start.
func Build(events []Event, windowStart, windowEnd, now time.Time) ([]Interval, error) {
	if !windowEnd.After(windowStart) {
		return nil, domain.ErrInvalidWindowBounds
	}

	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].At.Equal(sorted[j].At) {
			return sorted[i].At.Before(sorted[j].At)
		}
		return eventRank(sorted[i].Type) < eventRank(sorted[j].Type)
	})

	var out []Interval
	var pending *time.Time
	for _, e := range sorted {
		switch e.Type {
		case domain.EventOpen:
			if pending == nil {
				at := e.At
				pending = &at
			}
		case domain.EventClose:
			if pending == nil {
				continue
			}
			if iv, ok := clamp(*pending, e.At, false, windowStart, windowEnd); ok {
				out = append(out, iv)
			}
			pending = nil
		}
	}

	if pending != nil {
		end := now
		if windowEnd.Before(end) {
			end = windowEnd
		}
		if end.Before(*pending) {
			end = *pending
		}
		if iv, ok := clamp(*pending, end, true, windowStart, windowEnd); ok {
			if now.After(windowEnd) {
				iv.TruncatedEnd = true
			}
			out = append(out, iv)
		}
	}

	return out, nil
}

func eventRank(t domain.EventType) int {
	if t == domain.EventClose {
		return 0
	}
	return 1
}

func clamp(start, end time.Time, ongoing bool, windowStart, windowEnd time.Time) (Interval, bool) {
	if !start.Before(windowEnd) {
		return Interval{}, false
	}

	iv := Interval{
		End:            end,
		IsOngoing:      ongoing,
		Start:          start,
		TruncatedEnd:   end.After(windowEnd),
		TruncatedStart: start.Before(windowStart),
	}
	if iv.TruncatedStart {
		iv.Start = windowStart
	}
	if iv.TruncatedEnd {
		iv.End = windowEnd
	}

	if iv.End.Before(iv.Start) {
		return Interval{}, false
	}
	// Zero-width spans only survive as "currently open" markers.
	if iv.End.Equal(iv.Start) && !ongoing {
		return Interval{}, false
	}
	return iv, true
}

// TotalDuration sums the durations of the intervals
func TotalDuration(ivs []Interval) time.Duration {
	var total time.Duration
	for _, iv := range ivs {
		total += iv.Duration()
	}
	return total
}
