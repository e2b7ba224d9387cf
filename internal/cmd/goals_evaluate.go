package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/services"
	"github.com/renato0307/tally/internal/ui"
)

// GoalsEvaluateCmd evaluates one goal or all of them
type GoalsEvaluateCmd struct {
	All    bool   `help:"Evaluate every goal"`
	Force  bool   `help:"Recompute progress even when it is still fresh" short:"f"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	ID     int64  `arg:"" optional:"" help:"Goal ID"`
}

type periodJSON struct {
	EvalState       string    `json:"eval_state"`
	EvalStateReason string    `json:"eval_state_reason,omitempty"`
	MetricValue     float64   `json:"metric_value"`
	PeriodEnd       time.Time `json:"period_end"`
	PeriodStart     time.Time `json:"period_start"`
	Success         *bool     `json:"success"`
}

type goalStatusJSON struct {
	Closed   []periodJSON `json:"closed"`
	GoalID   int64        `json:"goal_id"`
	Name     string       `json:"name"`
	Paused   bool         `json:"paused"`
	Progress *periodJSON  `json:"progress"`
}

// Run executes the evaluate command
func (g *GoalsEvaluateCmd) Run(cli *CLI) error {
	if !g.All && g.ID == 0 {
		return errors.New("provide a goal ID or --all")
	}

	ctx := context.Background()
	var statuses []services.GoalStatus
	if g.All {
		all, err := cli.Container.GoalService.EvaluateAll(ctx, g.Force)
		if err != nil {
			return fmt.Errorf("failed to evaluate goals: %w", err)
		}
		statuses = all
	} else {
		st, err := cli.Container.GoalService.EvaluateGoal(ctx, g.ID, g.Force)
		if err != nil {
			return fmt.Errorf("failed to evaluate goal %d: %w", g.ID, err)
		}
		statuses = []services.GoalStatus{st}
	}

	if g.Format == "json" {
		out := make([]goalStatusJSON, 0, len(statuses))
		for _, st := range statuses {
			out = append(out, toGoalStatusJSON(st))
		}
		return printJSON(out)
	}

	if len(statuses) == 0 {
		fmt.Println("No goals evaluated.")
		return nil
	}

	loc := cli.Container.Location
	for i, st := range statuses {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("Goal %d: %s\n", st.Goal.ID, st.Goal.Name)
		fmt.Println(strings.Repeat("─", 45))
		fmt.Printf("Target:   %s%s per %s\n",
			comparator(st.Goal.Operator),
			ui.FormatMetric(st.Goal.Metric, st.Definition.TargetValue),
			st.Goal.Period)
		fmt.Printf("Filters:  %s\n", describeFilters(st.Definition.Filters))
		for _, r := range st.Closed {
			fmt.Printf("Closed:   %s  %s  %s\n",
				formatTime(r.PeriodStart, loc),
				ui.FormatMetric(st.Goal.Metric, r.MetricValue),
				ui.RenderOutcome(r.EvalState, r.Success))
		}
		if st.Progress != nil {
			fmt.Printf("Current:  %s  %s  %s\n",
				formatTime(st.Progress.PeriodStart, loc),
				ui.FormatMetric(st.Goal.Metric, st.Progress.MetricValue),
				ui.RenderOutcome(st.Progress.EvalState, st.Progress.Success))
		}
	}
	return nil
}

func toGoalStatusJSON(st services.GoalStatus) goalStatusJSON {
	out := goalStatusJSON{
		Closed: []periodJSON{},
		GoalID: st.Goal.ID,
		Name:   st.Goal.Name,
		Paused: st.Paused,
	}
	for _, r := range st.Closed {
		out.Closed = append(out.Closed, resultToJSON(r))
	}
	out.Progress = progressToJSON(st.Progress)
	return out
}

func progressToJSON(p *domain.GoalProgress) *periodJSON {
	if p == nil {
		return nil
	}
	return &periodJSON{
		EvalState:       string(p.EvalState),
		EvalStateReason: p.EvalStateReason,
		MetricValue:     p.MetricValue,
		PeriodEnd:       p.PeriodEnd,
		PeriodStart:     p.PeriodStart,
		Success:         p.Success,
	}
}

func resultToJSON(r domain.GoalResult) periodJSON {
	return periodJSON{
		EvalState:       string(r.EvalState),
		EvalStateReason: r.EvalStateReason,
		MetricValue:     r.MetricValue,
		PeriodEnd:       r.PeriodEnd,
		PeriodStart:     r.PeriodStart,
		Success:         r.Success,
	}
}

// GoalsResultsCmd lists closed period results of a goal
type GoalsResultsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	ID     int64  `arg:"" help:"Goal ID"`
	Limit  int    `help:"Maximum number of results" default:"30" short:"l"`
}

// Run executes the results command
func (g *GoalsResultsCmd) Run(cli *CLI) error {
	ctx := context.Background()
	goal, err := cli.Container.GoalService.GetGoal(ctx, g.ID)
	if err != nil {
		return fmt.Errorf("failed to load goal %d: %w", g.ID, err)
	}
	results, err := cli.Container.GoalService.ListResults(ctx, g.ID, g.Limit)
	if err != nil {
		return fmt.Errorf("failed to list results: %w", err)
	}
	progress, err := cli.Container.GoalService.Progress(ctx, g.ID)
	if err != nil && !errors.Is(err, domain.ErrNoActiveDefinition) {
		return fmt.Errorf("failed to load progress: %w", err)
	}

	if g.Format == "json" {
		out := goalStatusJSON{
			Closed: []periodJSON{},
			GoalID: goal.Goal.ID,
			Name:   goal.Goal.Name,
			Paused: cli.Container.GoalService.Paused(*goal),
		}
		for _, r := range results {
			out.Closed = append(out.Closed, resultToJSON(r))
		}
		out.Progress = progressToJSON(progress)
		return printJSON(out)
	}

	loc := cli.Container.Location
	metric := goal.Goal.Metric
	fmt.Printf("Goal %d: %s\n\n", goal.Goal.ID, goal.Goal.Name)
	if progress != nil {
		fmt.Printf("Current period (%s): %s  %s\n\n",
			formatTime(progress.PeriodStart, loc),
			ui.FormatMetric(metric, progress.MetricValue),
			ui.RenderOutcome(progress.EvalState, progress.Success))
	}

	if len(results) == 0 {
		fmt.Println("No closed periods yet.")
		return nil
	}

	fmt.Println("Period start       Value     Outcome")
	fmt.Println(strings.Repeat("─", 45))
	for _, r := range results {
		fmt.Printf("%-18s %-9s %s\n",
			formatTime(r.PeriodStart, loc),
			ui.FormatMetric(metric, r.MetricValue),
			ui.RenderOutcome(r.EvalState, r.Success))
	}
	return nil
}
