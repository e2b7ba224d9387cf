package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/goals"
	"github.com/renato0307/tally/internal/services"
	"github.com/renato0307/tally/internal/theme"
	"github.com/renato0307/tally/internal/ui"
)

// GoalsCmd manages goals
type GoalsCmd struct {
	Create   GoalsCreateCmd   `cmd:"create" help:"Create a goal with its first definition"`
	Evaluate GoalsEvaluateCmd `cmd:"evaluate" help:"Close complete periods and refresh progress"`
	List     GoalsListCmd     `cmd:"list" help:"List goals" default:"1"`
	Pause    GoalsPauseCmd    `cmd:"pause" help:"Pause a goal"`
	Results  GoalsResultsCmd  `cmd:"results" help:"Show closed period results of a goal"`
	Resume   GoalsResumeCmd   `cmd:"resume" help:"Resume a paused goal"`
	Update   GoalsUpdateCmd   `cmd:"update" help:"Add a new definition version to a goal"`
}

// DefinitionFlags describes one definition version on the command line
type DefinitionFlags struct {
	EffectiveFrom string   `help:"When the definition takes effect (RFC3339 or relative; default now)"`
	ExcludeTags   []string `help:"Tags whose activities never count" sep:","`
	IncludeMode   string   `help:"Whether an activity needs any or all include tags" enum:"any,all" default:"any"`
	Levels        []string `help:"Productivity levels to count" sep:","`
	Tags          []string `help:"Tags whose activities count" sep:","`
	Target        float64  `help:"Target value (seconds for duration, 0-1 for productivity)" required:""`
	Times         []string `help:"Local time ranges to count, like 09:00-12:00" sep:","`
	Weekdays      []int    `help:"Weekdays to count (0=Monday .. 6=Sunday)" sep:","`
}

// Input converts the flags into a definition input
func (d DefinitionFlags) Input(now time.Time, loc *time.Location) (services.DefinitionInput, error) {
	input := services.DefinitionInput{
		IncludeMode: d.IncludeMode,
		TargetValue: d.Target,
	}
	if d.EffectiveFrom != "" {
		t, err := parseTimeFlag(d.EffectiveFrom, now, loc)
		if err != nil {
			return services.DefinitionInput{}, fmt.Errorf("invalid --effective-from: %w", err)
		}
		input.EffectiveFrom = &t
	}

	if len(d.Weekdays) > 0 {
		input.Filters.Days = &domain.DayFilter{Weekdays: d.Weekdays}
	}
	if len(d.Times) > 0 {
		filter := &domain.TimeFilter{}
		for _, r := range d.Times {
			start, end, ok := strings.Cut(r, "-")
			if !ok {
				return services.DefinitionInput{}, fmt.Errorf("%w: time range %q is not HH:MM-HH:MM", domain.ErrInvalidFilter, r)
			}
			filter.Ranges = append(filter.Ranges, domain.TimeRange{End: end, Start: start})
		}
		input.Filters.Times = filter
	}
	if len(d.Levels) > 0 {
		filter := &domain.ProductivityFilter{}
		for _, l := range d.Levels {
			filter.Levels = append(filter.Levels, domain.ProductivityLevel(l))
		}
		input.Filters.Productivity = filter
	}
	if len(d.Tags) > 0 || len(d.ExcludeTags) > 0 {
		input.Filters.Tags = &domain.TagFilter{Exclude: d.ExcludeTags, Include: d.Tags}
	}
	return input, nil
}

// GoalsCreateCmd creates a goal
type GoalsCreateCmd struct {
	DefinitionFlags
	GoalTZ   string `name:"goal-timezone" help:"IANA timezone the periods are cut in (default: reporting timezone)"`
	Metric   string `help:"Metric to measure" enum:"total_activity_duration,productivity_level" default:"total_activity_duration"`
	Name     string `arg:"" help:"Goal name"`
	Operator string `help:"How the metric compares to the target" enum:"greater_than,less_than" default:"greater_than"`
	Period   string `help:"Evaluation period" enum:"day,week,month" default:"day"`
}

// Run executes the create command
func (g *GoalsCreateCmd) Run(cli *CLI) error {
	loc := cli.Container.Location
	def, err := g.Input(time.Now().UTC(), loc)
	if err != nil {
		return err
	}

	tz, err := goalTimezone(g.GoalTZ, loc)
	if err != nil {
		return err
	}

	created, err := cli.Container.GoalService.CreateGoal(context.Background(), services.GoalInput{
		Definition: def,
		Metric:     g.Metric,
		Name:       g.Name,
		Operator:   g.Operator,
		Period:     g.Period,
		Timezone:   tz,
	})
	if err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}

	fmt.Printf("Created goal %d: %s\n", created.Goal.ID, created.Goal.Name)
	return nil
}

// GoalsUpdateCmd appends a definition version
type GoalsUpdateCmd struct {
	DefinitionFlags
	ID int64 `arg:"" help:"Goal ID"`
}

// Run executes the update command
func (g *GoalsUpdateCmd) Run(cli *CLI) error {
	def, err := g.Input(time.Now().UTC(), cli.Container.Location)
	if err != nil {
		return err
	}

	saved, err := cli.Container.GoalService.UpdateDefinition(context.Background(), g.ID, def)
	if err != nil {
		return fmt.Errorf("failed to update goal %d: %w", g.ID, err)
	}

	fmt.Printf("Goal %d: definition %d effective from %s\n",
		g.ID, saved.ID, formatTime(saved.EffectiveFrom, cli.Container.Location))
	return nil
}

// GoalsPauseCmd pauses a goal
type GoalsPauseCmd struct {
	ID int64 `arg:"" help:"Goal ID"`
}

// Run executes the pause command
func (g *GoalsPauseCmd) Run(cli *CLI) error {
	event, err := cli.Container.GoalService.Pause(context.Background(), g.ID)
	if err != nil {
		return fmt.Errorf("failed to pause goal %d: %w", g.ID, err)
	}
	fmt.Printf("Goal %d paused at %s\n", g.ID, formatTime(event.At, cli.Container.Location))
	return nil
}

// GoalsResumeCmd resumes a goal
type GoalsResumeCmd struct {
	ID int64 `arg:"" help:"Goal ID"`
}

// Run executes the resume command
func (g *GoalsResumeCmd) Run(cli *CLI) error {
	event, err := cli.Container.GoalService.Resume(context.Background(), g.ID)
	if err != nil {
		return fmt.Errorf("failed to resume goal %d: %w", g.ID, err)
	}
	fmt.Printf("Goal %d resumed at %s\n", g.ID, formatTime(event.At, cli.Container.Location))
	return nil
}

// GoalsListCmd lists goals
type GoalsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type goalJSON struct {
	ActiveDefinitionID *int64              `json:"active_definition_id"`
	Filters            *domain.GoalFilters `json:"filters,omitempty"`
	ID                 int64               `json:"id"`
	Metric             string              `json:"metric"`
	Name               string              `json:"name"`
	Operator           string              `json:"operator"`
	Paused             bool                `json:"paused"`
	Period             string              `json:"period"`
	Target             *float64            `json:"target_value"`
	Timezone           string              `json:"timezone"`
	Versions           int                 `json:"versions"`
}

// Run executes the list command
func (g *GoalsListCmd) Run(cli *CLI) error {
	all, err := cli.Container.GoalService.ListGoals(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list goals: %w", err)
	}

	now := time.Now().UTC()
	rows := make([]goalJSON, 0, len(all))
	for _, gw := range all {
		row := goalJSON{
			ID:       gw.Goal.ID,
			Metric:   string(gw.Goal.Metric),
			Name:     gw.Goal.Name,
			Operator: string(gw.Goal.Operator),
			Paused:   cli.Container.GoalService.Paused(gw),
			Period:   string(gw.Goal.Period),
			Timezone: gw.Goal.Timezone,
			Versions: len(gw.Definitions),
		}
		if def, err := goals.ActiveDefinition(gw.Definitions, now); err == nil {
			id, target, filters := def.ID, def.TargetValue, def.Filters
			row.ActiveDefinitionID = &id
			row.Filters = &filters
			row.Target = &target
		}
		rows = append(rows, row)
	}

	if g.Format == "json" {
		return printJSON(rows)
	}

	if len(rows) == 0 {
		fmt.Println("No goals defined.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tMETRIC\tTARGET\tPERIOD\tTIMEZONE\tSTATE")
	for _, r := range rows {
		target := "-"
		if r.Target != nil {
			target = comparator(domain.GoalOperator(r.Operator)) + ui.FormatMetric(domain.GoalMetric(r.Metric), *r.Target)
		}
		state := theme.SuccessStyle.Render("active")
		if r.Paused {
			state = theme.PausedStyle.Render("paused")
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, truncate(r.Name, 28), r.Metric, target, r.Period, r.Timezone, state)
	}
	return w.Flush()
}

// goalTimezone picks the zone a new goal is cut in. Goals store an IANA
// name, so the process-local zone only works when TZ names it.
func goalTimezone(flag string, loc *time.Location) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if name := loc.String(); name != "Local" {
		return name, nil
	}
	if tz := os.Getenv("TZ"); tz != "" {
		return tz, nil
	}
	return "", fmt.Errorf("%w: set --goal-timezone or TALLY_TIMEZONE to an IANA zone", domain.ErrInvalidTimezone)
}

func comparator(op domain.GoalOperator) string {
	if op == domain.OperatorLessThan {
		return "< "
	}
	return "> "
}

// describeFilters summarizes a definition's filters on one line
func describeFilters(f domain.GoalFilters) string {
	var parts []string
	if f.Days != nil {
		data, _ := json.Marshal(f.Days.Weekdays)
		parts = append(parts, "weekdays="+string(data))
	}
	if f.Times != nil {
		var ranges []string
		for _, r := range f.Times.Ranges {
			ranges = append(ranges, r.Start+"-"+r.End)
		}
		parts = append(parts, "times="+strings.Join(ranges, ","))
	}
	if f.Productivity != nil {
		var levels []string
		for _, l := range f.Productivity.Levels {
			levels = append(levels, string(l))
		}
		parts = append(parts, "levels="+strings.Join(levels, ","))
	}
	if f.Tags != nil {
		if len(f.Tags.Include) > 0 {
			parts = append(parts, "tags="+strings.Join(f.Tags.Include, ","))
		}
		if len(f.Tags.Exclude) > 0 {
			parts = append(parts, "exclude="+strings.Join(f.Tags.Exclude, ","))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}
