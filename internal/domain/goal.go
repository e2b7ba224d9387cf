package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// GoalMetric is what a goal measures
type GoalMetric string

const (
	MetricTotalActivityDuration GoalMetric = "total_activity_duration"
	MetricProductivityLevel     GoalMetric = "productivity_level"
)

// GoalOperator compares the metric against the target
type GoalOperator string

const (
	OperatorGreaterThan GoalOperator = "greater_than"
	OperatorLessThan    GoalOperator = "less_than"
)

// Compare applies the operator to metric and target
func (o GoalOperator) Compare(metric, target float64) bool {
	switch o {
	case OperatorGreaterThan:
		return metric > target
	case OperatorLessThan:
		return metric < target
	default:
		return false
	}
}

// GoalPeriod is the evaluation cadence of a goal
type GoalPeriod string

const (
	PeriodDay   GoalPeriod = "day"
	PeriodWeek  GoalPeriod = "week"
	PeriodMonth GoalPeriod = "month"
)

// IncludeMode decides how included tags are matched
type IncludeMode string

const (
	IncludeAny IncludeMode = "any"
	IncludeAll IncludeMode = "all"
)

// EvalState classifies how complete a goal-period computation is
type EvalState string

const (
	EvalOK      EvalState = "ok"
	EvalPartial EvalState = "partial"
	EvalNA      EvalState = "na"
	EvalPaused  EvalState = "paused"
)

// PauseEventType is the kind of a goal pause event
type PauseEventType string

const (
	PauseEventPause  PauseEventType = "pause"
	PauseEventResume PauseEventType = "resume"
)

// Goal is the immutable identity of a goal
type Goal struct {
	CreatedAt time.Time
	ID        int64
	Metric    GoalMetric
	Name      string
	Operator  GoalOperator
	Period    GoalPeriod
	Timezone  string
}

// Location loads the goal's timezone
func (g Goal) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(g.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTimezone, g.Timezone)
	}
	return loc, nil
}

// TagFilter selects activities by tag
type TagFilter struct {
	Exclude []string `json:"exclude,omitempty"`
	Include []string `json:"include,omitempty"`
}

// DayFilter restricts a goal to some weekdays (0 = Monday .. 6 = Sunday)
type DayFilter struct {
	Weekdays []int `json:"weekdays"`
}

// Contains reports whether the Monday-based weekday is selected
func (f DayFilter) Contains(weekday int) bool {
	for _, d := range f.Weekdays {
		if d == weekday {
			return true
		}
	}
	return false
}

// ClockTime is a wall-clock time of day in minutes since midnight
type ClockTime int

// ParseClockTime parses an HH:MM string
func ParseClockTime(s string) (ClockTime, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("%w: time %q is not HH:MM", ErrInvalidFilter, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 24 {
		return 0, fmt.Errorf("%w: bad hour in %q", ErrInvalidFilter, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("%w: bad minute in %q", ErrInvalidFilter, s)
	}
	return ClockTime(h*60 + m), nil
}

// String formats the clock time as HH:MM
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Duration returns the offset from midnight
func (c ClockTime) Duration() time.Duration {
	return time.Duration(c) * time.Minute
}

// TimeRange is a local time-of-day range. An End at or before Start wraps past midnight.
type TimeRange struct {
	End   string `json:"end"`
	Start string `json:"start"`
}

// Bounds parses both ends of the range
func (r TimeRange) Bounds() (ClockTime, ClockTime, error) {
	start, err := ParseClockTime(r.Start)
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseClockTime(r.End)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// TimeFilter restricts a goal to some local times of day
type TimeFilter struct {
	Ranges []TimeRange `json:"ranges"`
}

// ProductivityFilter restricts a goal to some productivity levels
type ProductivityFilter struct {
	Levels []ProductivityLevel `json:"levels"`
}

// Contains reports whether the level is selected
func (f ProductivityFilter) Contains(p ProductivityLevel) bool {
	for _, l := range f.Levels {
		if l == p {
			return true
		}
	}
	return false
}

// GoalFilters groups the typed filter variants of a definition.
// A nil filter means "no restriction".
type GoalFilters struct {
	Days         *DayFilter          `json:"days,omitempty"`
	Productivity *ProductivityFilter `json:"productivity,omitempty"`
	Tags         *TagFilter          `json:"tags,omitempty"`
	Times        *TimeFilter         `json:"times,omitempty"`
}

// GoalDefinition is one immutable version of a goal's configuration
type GoalDefinition struct {
	EffectiveFrom time.Time
	Filters       GoalFilters
	GoalID        int64
	ID            int64
	IncludeMode   IncludeMode
	TargetValue   float64
}

// Validate checks the definition's filters and target
func (d GoalDefinition) Validate(metric GoalMetric) error {
	if d.IncludeMode != IncludeAny && d.IncludeMode != IncludeAll {
		return fmt.Errorf("%w: include mode %q", ErrInvalidFilter, d.IncludeMode)
	}
	if d.TargetValue < 0 {
		return fmt.Errorf("%w: target must not be negative", ErrInvalidFilter)
	}
	if metric == MetricProductivityLevel && d.TargetValue > 1 {
		return fmt.Errorf("%w: productivity target must be within [0, 1]", ErrInvalidFilter)
	}

	f := d.Filters
	if f.Days != nil {
		if len(f.Days.Weekdays) == 0 {
			return fmt.Errorf("%w: day filter needs at least one weekday", ErrInvalidFilter)
		}
		for _, wd := range f.Days.Weekdays {
			if wd < 0 || wd > 6 {
				return fmt.Errorf("%w: weekday %d out of range 0-6", ErrInvalidFilter, wd)
			}
		}
	}
	if f.Times != nil {
		if len(f.Times.Ranges) == 0 {
			return fmt.Errorf("%w: time filter needs at least one range", ErrInvalidFilter)
		}
		for _, r := range f.Times.Ranges {
			start, end, err := r.Bounds()
			if err != nil {
				return err
			}
			if start == end {
				return fmt.Errorf("%w: empty time range %s-%s", ErrInvalidFilter, r.Start, r.End)
			}
		}
	}
	if f.Productivity != nil {
		if len(f.Productivity.Levels) == 0 {
			return fmt.Errorf("%w: productivity filter needs at least one level", ErrInvalidFilter)
		}
		for _, l := range f.Productivity.Levels {
			if !l.Valid() {
				return fmt.Errorf("%w: productivity level %q", ErrInvalidFilter, l)
			}
		}
	}
	if f.Tags != nil {
		excluded := make(map[string]bool, len(f.Tags.Exclude))
		for _, t := range f.Tags.Exclude {
			excluded[t] = true
		}
		for _, t := range f.Tags.Include {
			if t == "" {
				return fmt.Errorf("%w: empty tag", ErrInvalidFilter)
			}
			if excluded[t] {
				return fmt.Errorf("%w: tag %q is both included and excluded", ErrInvalidFilter, t)
			}
		}
	}
	return nil
}

// MatchesActivity applies the tag and productivity filters to an activity
func (d GoalDefinition) MatchesActivity(a Activity) bool {
	if p := d.Filters.Productivity; p != nil && !p.Contains(a.Productivity) {
		return false
	}

	tags := d.Filters.Tags
	if tags == nil {
		return true
	}
	for _, t := range tags.Exclude {
		if a.HasTag(t) {
			return false
		}
	}
	if len(tags.Include) == 0 {
		return true
	}

	if d.IncludeMode == IncludeAll {
		for _, t := range tags.Include {
			if !a.HasTag(t) {
				return false
			}
		}
		return true
	}
	for _, t := range tags.Include {
		if a.HasTag(t) {
			return true
		}
	}
	return false
}

// GoalPauseEvent is one entry of the append-only pause log of a goal
type GoalPauseEvent struct {
	At        time.Time
	EventType PauseEventType
	GoalID    int64
	ID        int64
}

// GoalResult is the immutable outcome of a closed goal period
type GoalResult struct {
	CreatedAt        time.Time
	EvalState        EvalState
	EvalStateReason  string
	GoalDefinitionID int64
	MetricValue      float64
	PeriodEnd        time.Time
	PeriodStart      time.Time
	Success          *bool
}

// GoalProgress is the mutable in-flight record of a goal definition's current period
type GoalProgress struct {
	EvalState        EvalState
	EvalStateReason  string
	GoalDefinitionID int64
	MetricValue      float64
	PeriodEnd        time.Time
	PeriodStart      time.Time
	Success          *bool
	UpdatedAt        time.Time
}

// GoalWithDefinitions bundles a goal with its definition history and pause log
type GoalWithDefinitions struct {
	Definitions []GoalDefinition
	Goal        Goal
	PauseEvents []GoalPauseEvent
}
