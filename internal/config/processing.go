package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/renato0307/tally/internal/intervals"
	"github.com/renato0307/tally/internal/sessionize"
)

// Defaults for processing parameters not covered by a package default
const (
	DefaultAggregationInterval = 10 * time.Minute
	DefaultGoalBackfill        = 1
	DefaultGoalConcurrency     = 4
	DefaultGoalProgressTTL     = 60 * time.Second
	DefaultHTTPAddr            = "127.0.0.1:8787"
	DefaultScheduleGoals       = time.Minute
	DefaultScheduleSessionize  = 5 * time.Minute
	DefaultScheduleWindows     = 30 * time.Second
	DefaultTimezone            = "Local"
)

// GoalOptions tunes the goal evaluation engine
type GoalOptions struct {
	Backfill    int
	Concurrency int
	ProgressTTL time.Duration
}

// ScheduleOptions holds the tick interval of each background job
type ScheduleOptions struct {
	Goals      time.Duration
	Sessionize time.Duration
	Windows    time.Duration
}

// Processing is the fully resolved set of processing parameters
type Processing struct {
	AggregationInterval time.Duration
	Focus               intervals.FocusConfig
	Goals               GoalOptions
	HTTPAddr            string
	Schedule            ScheduleOptions
	Sessionization      sessionize.Config
	Timezone            string
}

// Location loads the configured reporting timezone
func (p Processing) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", p.Timezone, err)
	}
	return loc, nil
}

// DefaultProcessing returns the stock processing parameters
func DefaultProcessing() Processing {
	return Processing{
		AggregationInterval: DefaultAggregationInterval,
		Focus:               intervals.DefaultFocusConfig(),
		Goals: GoalOptions{
			Backfill:    DefaultGoalBackfill,
			Concurrency: DefaultGoalConcurrency,
			ProgressTTL: DefaultGoalProgressTTL,
		},
		HTTPAddr: DefaultHTTPAddr,
		Schedule: ScheduleOptions{
			Goals:      DefaultScheduleGoals,
			Sessionize: DefaultScheduleSessionize,
			Windows:    DefaultScheduleWindows,
		},
		Sessionization: sessionize.DefaultConfig(),
		Timezone:       DefaultTimezone,
	}
}

// ResolveProcessing layers settings.json and then TALLY_* environment
// variables over the defaults. Command flags are applied by the caller.
func ResolveProcessing(settings *Settings) (Processing, error) {
	p := DefaultProcessing()
	if settings != nil {
		applySettings(&p, settings)
	}
	if err := applyEnv(&p); err != nil {
		return Processing{}, err
	}
	if err := p.Validate(); err != nil {
		return Processing{}, err
	}
	return p, nil
}

func applySettings(p *Processing, s *Settings) {
	p.AggregationInterval = s.AggregationInterval.Std(p.AggregationInterval)

	p.Focus.MaxSingleInterruption = s.FocusMaxInterruption.Std(p.Focus.MaxSingleInterruption)
	p.Focus.MinDuration = s.FocusMinDuration.Std(p.Focus.MinDuration)
	if s.FocusMaxDisruptionPct != nil {
		p.Focus.MaxDisruptionPct = *s.FocusMaxDisruptionPct
	}
	if s.FocusThreshold != nil {
		p.Focus.ProductiveThreshold = *s.FocusThreshold
	}

	if s.GoalBackfill != nil {
		p.Goals.Backfill = *s.GoalBackfill
	}
	if s.GoalConcurrency != nil {
		p.Goals.Concurrency = *s.GoalConcurrency
	}
	p.Goals.ProgressTTL = s.GoalProgressTTL.Std(p.Goals.ProgressTTL)

	if s.HTTPAddr != "" {
		p.HTTPAddr = s.HTTPAddr
	}

	p.Schedule.Goals = s.ScheduleGoals.Std(p.Schedule.Goals)
	p.Schedule.Sessionize = s.ScheduleSessionize.Std(p.Schedule.Sessionize)
	p.Schedule.Windows = s.ScheduleWindows.Std(p.Schedule.Windows)

	p.Sessionization.MaxGap = s.SessionMaxGap.Std(p.Sessionization.MaxGap)
	p.Sessionization.MaxOverlap = s.SessionMaxOverlap.Std(p.Sessionization.MaxOverlap)
	p.Sessionization.MinLength = s.SessionMinLength.Std(p.Sessionization.MinLength)
	p.Sessionization.WindowLength = s.SessionWindowLength.Std(p.Sessionization.WindowLength)
	if s.SessionMinActivities != nil {
		p.Sessionization.MinActivities = *s.SessionMinActivities
	}
	if s.SessionMinAffinity != nil {
		p.Sessionization.MinAffinity = *s.SessionMinAffinity
	}
	if s.SessionMinPurity != nil {
		p.Sessionization.MinPurity = *s.SessionMinPurity
	}

	if s.Timezone != "" {
		p.Timezone = s.Timezone
	}
}

func applyEnv(p *Processing) error {
	durations := map[string]*time.Duration{
		"TALLY_AGGREGATION_INTERVAL":   &p.AggregationInterval,
		"TALLY_FOCUS_MAX_INTERRUPTION": &p.Focus.MaxSingleInterruption,
		"TALLY_FOCUS_MIN_DURATION":     &p.Focus.MinDuration,
		"TALLY_GOAL_PROGRESS_TTL":      &p.Goals.ProgressTTL,
		"TALLY_SCHEDULE_GOALS":         &p.Schedule.Goals,
		"TALLY_SCHEDULE_SESSIONIZE":    &p.Schedule.Sessionize,
		"TALLY_SCHEDULE_WINDOWS":       &p.Schedule.Windows,
		"TALLY_SESSION_MAX_GAP":        &p.Sessionization.MaxGap,
		"TALLY_SESSION_MAX_OVERLAP":    &p.Sessionization.MaxOverlap,
		"TALLY_SESSION_MIN_LENGTH":     &p.Sessionization.MinLength,
		"TALLY_SESSION_WINDOW_LENGTH":  &p.Sessionization.WindowLength,
	}
	for name, target := range durations {
		if v, ok := os.LookupEnv(name); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", name, err)
			}
			*target = d
		}
	}

	floats := map[string]*float64{
		"TALLY_FOCUS_MAX_DISRUPTION_PCT": &p.Focus.MaxDisruptionPct,
		"TALLY_FOCUS_THRESHOLD":          &p.Focus.ProductiveThreshold,
		"TALLY_SESSION_MIN_AFFINITY":     &p.Sessionization.MinAffinity,
		"TALLY_SESSION_MIN_PURITY":       &p.Sessionization.MinPurity,
	}
	for name, target := range floats {
		if v, ok := os.LookupEnv(name); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", name, err)
			}
			*target = f
		}
	}

	ints := map[string]*int{
		"TALLY_GOAL_BACKFILL":          &p.Goals.Backfill,
		"TALLY_GOAL_CONCURRENCY":       &p.Goals.Concurrency,
		"TALLY_SESSION_MIN_ACTIVITIES": &p.Sessionization.MinActivities,
	}
	for name, target := range ints {
		if v, ok := os.LookupEnv(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", name, err)
			}
			*target = n
		}
	}

	if v, ok := os.LookupEnv("TALLY_HTTP_ADDR"); ok && v != "" {
		p.HTTPAddr = v
	}
	if v, ok := os.LookupEnv("TALLY_TIMEZONE"); ok && v != "" {
		p.Timezone = v
	}
	return nil
}

// Validate rejects parameters the engines cannot run with
func (p Processing) Validate() error {
	positive := map[string]time.Duration{
		"aggregation_interval":  p.AggregationInterval,
		"schedule_goals":        p.Schedule.Goals,
		"schedule_sessionize":   p.Schedule.Sessionize,
		"schedule_windows":      p.Schedule.Windows,
		"session_window_length": p.Sessionization.WindowLength,
	}
	for name, d := range positive {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}
	if p.Goals.Concurrency < 1 {
		return fmt.Errorf("goal_concurrency must be at least 1, got %d", p.Goals.Concurrency)
	}
	if p.Goals.Backfill < 0 {
		return fmt.Errorf("goal_backfill must not be negative, got %d", p.Goals.Backfill)
	}
	if _, err := p.Location(); err != nil {
		return err
	}
	return nil
}
