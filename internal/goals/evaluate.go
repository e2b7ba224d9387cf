package goals

import (
	"fmt"
	"time"

	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/intervals"
)

// ActivityEvents is an activity together with its event log for the period
type ActivityEvents struct {
	Activity domain.Activity
	Events   []domain.ActivityEvent
}

// Input is everything needed to evaluate one goal period
type Input struct {
	Activities    []ActivityEvents
	At            time.Time
	Definition    domain.GoalDefinition
	Goal          domain.Goal
	LastWindowEnd *time.Time
	Location      *time.Location
	PauseEvents   []domain.GoalPauseEvent
	Period        Period
}

// Evaluation is the computed outcome of a goal period
type Evaluation struct {
	EvalState       domain.EvalState
	EvalStateReason string
	MetricValue     float64
	Period          Period
	Success         *bool
}

// Result converts the evaluation into an immutable period result
func (e Evaluation) Result(definitionID int64, createdAt time.Time) domain.GoalResult {
	return domain.GoalResult{
		CreatedAt:        createdAt,
		EvalState:        e.EvalState,
		EvalStateReason:  e.EvalStateReason,
		GoalDefinitionID: definitionID,
		MetricValue:      e.MetricValue,
		PeriodEnd:        e.Period.End,
		PeriodStart:      e.Period.Start,
		Success:          e.Success,
	}
}

// Progress converts the evaluation into the live progress record
func (e Evaluation) Progress(definitionID int64, updatedAt time.Time) domain.GoalProgress {
	return domain.GoalProgress{
		EvalState:        e.EvalState,
		EvalStateReason:  e.EvalStateReason,
		GoalDefinitionID: definitionID,
		MetricValue:      e.MetricValue,
		PeriodEnd:        e.Period.End,
		PeriodStart:      e.Period.Start,
		Success:          e.Success,
		UpdatedAt:        updatedAt,
	}
}

// PausedPlaceholder is the result recorded for a period that ended while the goal was paused
func PausedPlaceholder(p Period) Evaluation {
	return Evaluation{
		EvalState:       domain.EvalPaused,
		EvalStateReason: "goal paused at period end",
		Period:          p,
	}
}

type scored struct {
	intervals.Interval
	score float64
}

// Evaluate computes the metric, success and evaluation state of one goal period at instant At
func Evaluate(in Input) (Evaluation, error) {
	if !in.Period.End.After(in.Period.Start) {
		return Evaluation{}, domain.ErrInvalidWindowBounds
	}

	elapsedEnd := in.Period.End
	if in.At.Before(elapsedEnd) {
		elapsedEnd = in.At
	}
	pauses := PauseWindows(in.PauseEvents, in.Period.Start, elapsedEnd)

	var matched []scored
	for _, ae := range in.Activities {
		if !in.Definition.MatchesActivity(ae.Activity) {
			continue
		}
		ivs, err := intervals.Build(intervals.EventsFromActivity(ae.Events), in.Period.Start, in.Period.End, in.At)
		if err != nil {
			return Evaluation{}, fmt.Errorf("failed to build intervals for activity %d: %w", ae.Activity.ID, err)
		}
		ivs, err = ApplyCalendarFilters(ivs, in.Definition.Filters, in.Location)
		if err != nil {
			return Evaluation{}, err
		}
		for _, iv := range Subtract(ivs, pauses) {
			if iv.End.After(iv.Start) {
				matched = append(matched, scored{Interval: iv, score: ae.Activity.Productivity.Score()})
			}
		}
	}

	eval := Evaluation{Period: in.Period}
	switch in.Goal.Metric {
	case domain.MetricTotalActivityDuration:
		eval.MetricValue = intervals.ActiveDuration(intervals.Union(matched)).Seconds()
	case domain.MetricProductivityLevel:
		eval.MetricValue = intervals.WeightedMean(intervals.ReduceMaxConcurrency(matched, func(s scored) float64 { return s.score }))
	default:
		return Evaluation{}, fmt.Errorf("unknown goal metric %q", in.Goal.Metric)
	}

	elapsed := elapsedEnd.Sub(in.Period.Start)
	paused := totalDuration(pauses)
	if elapsed > 0 && paused >= elapsed {
		eval.MetricValue = 0
		eval.EvalState = domain.EvalPaused
		eval.EvalStateReason = "goal paused for the whole period"
		return eval, nil
	}

	success := in.Goal.Operator.Compare(eval.MetricValue, in.Definition.TargetValue)
	eval.Success = &success

	switch {
	case len(matched) == 0:
		eval.EvalState = domain.EvalNA
		eval.EvalStateReason = "no matching activity"
	case in.At.Before(in.Period.End):
		eval.EvalState = domain.EvalPartial
		eval.EvalStateReason = "period in progress"
	case in.LastWindowEnd == nil || in.LastWindowEnd.Before(in.Period.End):
		eval.EvalState = domain.EvalPartial
		eval.EvalStateReason = "events not yet aggregated up to the period end"
	case paused > 0:
		eval.EvalState = domain.EvalPartial
		eval.EvalStateReason = "goal paused for part of the period"
	default:
		eval.EvalState = domain.EvalOK
	}
	return eval, nil
}
