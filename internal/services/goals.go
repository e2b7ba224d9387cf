package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/tally/internal/config"
	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/goals"
	"github.com/renato0307/tally/internal/logging"
	"github.com/renato0307/tally/internal/ports"
)

// GoalStatus is the state of a goal after an evaluation
type GoalStatus struct {
	Closed     []domain.GoalResult
	Definition domain.GoalDefinition
	Goal       domain.Goal
	Paused     bool
	Progress   *domain.GoalProgress
}

// GoalService authors goals and evaluates them per period
type GoalService struct {
	activityReader ports.ActivityReader
	clock          ports.Clock
	eventReader    ports.EventReader
	goalReader     ports.GoalReader
	goalWriter     ports.GoalWriter
	options        config.GoalOptions
	windowReader   ports.WindowReader
}

// NewGoalService creates a new GoalService
func NewGoalService(
	goalReader ports.GoalReader,
	goalWriter ports.GoalWriter,
	activityReader ports.ActivityReader,
	eventReader ports.EventReader,
	windowReader ports.WindowReader,
	clock ports.Clock,
	options config.GoalOptions,
) *GoalService {
	return &GoalService{
		activityReader: activityReader,
		clock:          clock,
		eventReader:    eventReader,
		goalReader:     goalReader,
		goalWriter:     goalWriter,
		options:        options,
		windowReader:   windowReader,
	}
}

// CreateGoal creates a goal together with its first definition
func (s *GoalService) CreateGoal(ctx context.Context, input GoalInput) (domain.GoalWithDefinitions, error) {
	if err := validateInput(input); err != nil {
		return domain.GoalWithDefinitions{}, err
	}

	now := s.clock.Now()
	goal := domain.Goal{
		CreatedAt: now,
		Metric:    domain.GoalMetric(input.Metric),
		Name:      input.Name,
		Operator:  domain.GoalOperator(input.Operator),
		Period:    domain.GoalPeriod(input.Period),
		Timezone:  input.Timezone,
	}
	if _, err := goal.Location(); err != nil {
		return domain.GoalWithDefinitions{}, err
	}

	def := input.Definition.ToDomain(0, now)
	if err := def.Validate(goal.Metric); err != nil {
		return domain.GoalWithDefinitions{}, err
	}

	created, err := s.goalWriter.CreateGoal(ctx, goal, def)
	if err != nil {
		return domain.GoalWithDefinitions{}, err
	}
	logging.Logger.Info("Created goal", "goal_id", created.Goal.ID, "name", goal.Name)
	return created, nil
}

// UpdateDefinition appends a new definition version to a goal
func (s *GoalService) UpdateDefinition(ctx context.Context, goalID int64, input DefinitionInput) (domain.GoalDefinition, error) {
	if err := validateInput(input); err != nil {
		return domain.GoalDefinition{}, err
	}

	g, err := s.goalReader.GetGoal(ctx, goalID)
	if err != nil {
		return domain.GoalDefinition{}, err
	}

	def := input.ToDomain(goalID, s.clock.Now())
	if err := def.Validate(g.Goal.Metric); err != nil {
		return domain.GoalDefinition{}, err
	}

	saved, err := s.goalWriter.AddDefinition(ctx, def)
	if err != nil {
		return domain.GoalDefinition{}, err
	}
	logging.Logger.Info("Added goal definition",
		"goal_id", goalID,
		"definition_id", saved.ID,
		"effective_from", saved.EffectiveFrom)
	return saved, nil
}

// Pause stops a goal from being measured until it is resumed
func (s *GoalService) Pause(ctx context.Context, goalID int64) (domain.GoalPauseEvent, error) {
	return s.appendPause(ctx, goalID, domain.PauseEventPause)
}

// Resume measures a paused goal again
func (s *GoalService) Resume(ctx context.Context, goalID int64) (domain.GoalPauseEvent, error) {
	return s.appendPause(ctx, goalID, domain.PauseEventResume)
}

func (s *GoalService) appendPause(ctx context.Context, goalID int64, eventType domain.PauseEventType) (domain.GoalPauseEvent, error) {
	g, err := s.goalReader.GetGoal(ctx, goalID)
	if err != nil {
		return domain.GoalPauseEvent{}, err
	}

	now := s.clock.Now()
	paused := goals.PausedAt(g.PauseEvents, now)
	if paused == (eventType == domain.PauseEventPause) {
		return domain.GoalPauseEvent{}, fmt.Errorf("%w: goal %d is already %s", domain.ErrInvalidPauseTransition, goalID, pauseStateName(paused))
	}

	event, err := s.goalWriter.AppendPauseEvent(ctx, domain.GoalPauseEvent{
		At:        now,
		EventType: eventType,
		GoalID:    goalID,
	})
	if err != nil {
		return domain.GoalPauseEvent{}, err
	}
	logging.Logger.Info("Goal pause state changed", "goal_id", goalID, "event", eventType)
	return event, nil
}

func pauseStateName(paused bool) string {
	if paused {
		return "paused"
	}
	return "active"
}

// Paused reports whether the goal is paused now
func (s *GoalService) Paused(g domain.GoalWithDefinitions) bool {
	return goals.PausedAt(g.PauseEvents, s.clock.Now())
}

// GetGoal returns a goal with its definitions and pause log
func (s *GoalService) GetGoal(ctx context.Context, goalID int64) (*domain.GoalWithDefinitions, error) {
	return s.goalReader.GetGoal(ctx, goalID)
}

// ListGoals returns every goal
func (s *GoalService) ListGoals(ctx context.Context) ([]domain.GoalWithDefinitions, error) {
	return s.goalReader.ListGoals(ctx)
}

// ListResults returns the closed period results of a goal, most recent first
func (s *GoalService) ListResults(ctx context.Context, goalID int64, limit int) ([]domain.GoalResult, error) {
	if _, err := s.goalReader.GetGoal(ctx, goalID); err != nil {
		return nil, err
	}
	return s.goalReader.ListResults(ctx, goalID, limit)
}

// Progress returns the stored progress of the definition active now, nil when none was computed
func (s *GoalService) Progress(ctx context.Context, goalID int64) (*domain.GoalProgress, error) {
	g, err := s.goalReader.GetGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}
	def, err := goals.ActiveDefinition(g.Definitions, s.clock.Now())
	if err != nil {
		return nil, err
	}
	return s.goalReader.GetProgress(ctx, def.ID)
}

// EvaluateGoal closes the last complete periods that have no result yet and
// refreshes the progress of the current period. Fresh progress is reused
// unless force is set.
func (s *GoalService) EvaluateGoal(ctx context.Context, goalID int64, force bool) (GoalStatus, error) {
	g, err := s.goalReader.GetGoal(ctx, goalID)
	if err != nil {
		return GoalStatus{}, err
	}
	return s.evaluate(ctx, *g, force)
}

// EvaluateAll evaluates every goal with bounded concurrency.
// A goal that fails is logged and left out of the result.
func (s *GoalService) EvaluateAll(ctx context.Context, force bool) ([]GoalStatus, error) {
	all, err := s.goalReader.ListGoals(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]*GoalStatus, len(all))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.options.Concurrency)
	for i, goal := range all {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			status, err := s.evaluate(gctx, goal, force)
			if err != nil {
				logging.Logger.Warn("Goal evaluation failed",
					"goal_id", goal.Goal.ID,
					"name", goal.Goal.Name,
					"error", err)
				return nil
			}
			statuses[i] = &status
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]GoalStatus, 0, len(statuses))
	for _, st := range statuses {
		if st != nil {
			out = append(out, *st)
		}
	}
	return out, nil
}

func (s *GoalService) evaluate(ctx context.Context, g domain.GoalWithDefinitions, force bool) (GoalStatus, error) {
	loc, err := g.Goal.Location()
	if err != nil {
		return GoalStatus{}, err
	}
	now := s.clock.Now()

	lastWindow, err := s.windowReader.LastWindow(ctx)
	if err != nil {
		return GoalStatus{}, err
	}
	var lastWindowEnd *time.Time
	if lastWindow != nil {
		end := lastWindow.EndTime
		lastWindowEnd = &end
	}

	status := GoalStatus{Goal: g.Goal, Paused: goals.PausedAt(g.PauseEvents, now)}

	periods, err := goals.LastCompletePeriods(g.Goal.Period, loc, now, s.options.Backfill)
	if err != nil {
		return GoalStatus{}, err
	}
	for i := len(periods) - 1; i >= 0; i-- {
		result, inserted, err := s.closePeriod(ctx, g, periods[i], now, lastWindowEnd, loc)
		if err != nil {
			return GoalStatus{}, err
		}
		if inserted {
			status.Closed = append(status.Closed, result)
		}
	}

	def, err := goals.ActiveDefinition(g.Definitions, now)
	if err != nil {
		return status, fmt.Errorf("goal %d: %w", g.Goal.ID, err)
	}
	status.Definition = def

	current, err := goals.PeriodBounds(g.Goal.Period, loc, now)
	if err != nil {
		return GoalStatus{}, err
	}
	progress, err := s.refreshProgress(ctx, g, def, current, now, lastWindowEnd, loc, force)
	if err != nil {
		return GoalStatus{}, err
	}
	status.Progress = progress
	return status, nil
}

// closePeriod records the result of a complete period once, after the
// windows covering it have been processed
func (s *GoalService) closePeriod(
	ctx context.Context,
	g domain.GoalWithDefinitions,
	p goals.Period,
	now time.Time,
	lastWindowEnd *time.Time,
	loc *time.Location,
) (domain.GoalResult, bool, error) {
	def, err := goals.ActiveDefinition(g.Definitions, p.End.Add(-time.Nanosecond))
	if errors.Is(err, domain.ErrNoActiveDefinition) {
		return domain.GoalResult{}, false, nil
	}
	if err != nil {
		return domain.GoalResult{}, false, err
	}

	exists, err := s.goalReader.HasResult(ctx, def.ID, p.Start)
	if err != nil {
		return domain.GoalResult{}, false, err
	}
	if exists {
		return domain.GoalResult{}, false, nil
	}

	paused := goals.PausedBefore(g.PauseEvents, p.End)
	if !paused && (lastWindowEnd == nil || lastWindowEnd.Before(p.End)) {
		// Stays open until windows are aggregated up to the period end
		logging.Logger.Debug("Goal period waiting for windows",
			"goal_id", g.Goal.ID,
			"period_end", p.End,
			"last_window_end", lastWindowEnd)
		return domain.GoalResult{}, false, nil
	}

	var eval goals.Evaluation
	if paused {
		eval = goals.PausedPlaceholder(p)
	} else {
		eval, err = s.compute(ctx, g, def, p, now, lastWindowEnd, loc)
		if err != nil {
			return domain.GoalResult{}, false, err
		}
	}

	result := eval.Result(def.ID, now)
	inserted, err := s.goalWriter.InsertResult(ctx, result)
	if err != nil {
		return domain.GoalResult{}, false, err
	}

	// Progress of any version for the closed period is obsolete now
	for _, d := range g.Definitions {
		if err := s.goalWriter.DeleteProgress(ctx, d.ID, p.Start); err != nil {
			return domain.GoalResult{}, false, err
		}
	}

	if inserted {
		logging.Logger.Info("Closed goal period",
			"goal_id", g.Goal.ID,
			"period_start", p.Start,
			"eval_state", result.EvalState,
			"metric", result.MetricValue)
	}
	return result, inserted, nil
}

// refreshProgress recomputes the live progress unless the stored row is still fresh
func (s *GoalService) refreshProgress(
	ctx context.Context,
	g domain.GoalWithDefinitions,
	def domain.GoalDefinition,
	p goals.Period,
	now time.Time,
	lastWindowEnd *time.Time,
	loc *time.Location,
	force bool,
) (*domain.GoalProgress, error) {
	if !force {
		existing, err := s.goalReader.GetProgress(ctx, def.ID)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.PeriodStart.Equal(p.Start) && now.Sub(existing.UpdatedAt) < s.options.ProgressTTL {
			logging.Logger.Debug("Reusing fresh goal progress", "goal_id", g.Goal.ID, "updated_at", existing.UpdatedAt)
			return existing, nil
		}
	}

	eval, err := s.compute(ctx, g, def, p, now, lastWindowEnd, loc)
	if err != nil {
		return nil, err
	}
	progress := eval.Progress(def.ID, now)
	if err := s.goalWriter.UpsertProgress(ctx, progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

// compute loads the period's events and runs the pure evaluator
func (s *GoalService) compute(
	ctx context.Context,
	g domain.GoalWithDefinitions,
	def domain.GoalDefinition,
	p goals.Period,
	now time.Time,
	lastWindowEnd *time.Time,
	loc *time.Location,
) (goals.Evaluation, error) {
	events, err := s.eventReader.ListEvents(ctx, p.Start, p.End)
	if err != nil {
		return goals.Evaluation{}, err
	}

	var activities []goals.ActivityEvents
	if len(events) > 0 {
		ids := make([]int64, 0, len(events))
		for id := range events {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		known, err := s.activityReader.ListActivitiesByID(ctx, ids)
		if err != nil {
			return goals.Evaluation{}, err
		}
		for _, a := range known {
			activities = append(activities, goals.ActivityEvents{Activity: a, Events: events[a.ID]})
		}
	}

	eval, err := goals.Evaluate(goals.Input{
		Activities:    activities,
		At:            now,
		Definition:    def,
		Goal:          g.Goal,
		LastWindowEnd: lastWindowEnd,
		Location:      loc,
		PauseEvents:   g.PauseEvents,
		Period:        p,
	})
	if err != nil {
		return goals.Evaluation{}, fmt.Errorf("failed to evaluate goal %d: %w", g.Goal.ID, err)
	}
	return eval, nil
}
