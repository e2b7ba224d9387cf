package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/services"
)

// WindowsCmd processes aggregation windows
type WindowsCmd struct {
	Due     WindowsDueCmd     `cmd:"due" help:"Process every complete window since the last one" default:"1"`
	Process WindowsProcessCmd `cmd:"process" help:"Process one explicit window"`
	Status  WindowsStatusCmd  `cmd:"status" help:"Show recent windows and late events"`
}

// WindowsProcessCmd processes a single [start, end) window
type WindowsProcessCmd struct {
	End   string `help:"Window end (RFC3339 or relative); defaults to start plus the interval"`
	Start string `help:"Window start (RFC3339 or relative)" required:""`
}

// Run executes the process command
func (w *WindowsProcessCmd) Run(cli *CLI) error {
	now := time.Now().UTC()
	loc := cli.Container.Location

	start, err := parseTimeFlag(w.Start, now, loc)
	if err != nil {
		return fmt.Errorf("invalid --start: %w", err)
	}
	end := start.Add(cli.Container.WindowService.Interval())
	if w.End != "" {
		end, err = parseTimeFlag(w.End, now, loc)
		if err != nil {
			return fmt.Errorf("invalid --end: %w", err)
		}
	}

	result, err := cli.Container.WindowService.ProcessWindow(context.Background(), start, end)
	if err != nil {
		return err
	}
	printWindowResults([]services.WindowResult{result}, loc)
	return nil
}

// WindowsDueCmd catches up on every complete window
type WindowsDueCmd struct{}

// Run executes the due command
func (w *WindowsDueCmd) Run(cli *CLI) error {
	results, err := cli.Container.WindowService.ProcessDue(context.Background())
	if err != nil {
		return fmt.Errorf("failed to process due windows: %w", err)
	}
	if len(results) == 0 {
		fmt.Println("No windows due.")
		return nil
	}
	printWindowResults(results, cli.Container.Location)
	return nil
}

func printWindowResults(results []services.WindowResult, loc *time.Location) {
	fmt.Println("Start              End                Assigned  Closed")
	fmt.Println(strings.Repeat("─", 55))
	for _, r := range results {
		fmt.Printf("%-18s %-18s %-9d %d\n",
			formatTime(r.Window.StartTime, loc),
			formatTime(r.Window.EndTime, loc),
			r.Assigned,
			r.InterruptedCloses)
	}
}

// WindowsStatusCmd shows aggregation progress
type WindowsStatusCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Limit  int    `help:"Number of recent windows to show" default:"10" short:"l"`
}

type windowJSON struct {
	EndTime        time.Time  `json:"end_time"`
	FirstTimestamp *time.Time `json:"first_timestamp"`
	ID             int64      `json:"id"`
	LastTimestamp  *time.Time `json:"last_timestamp"`
	StartTime      time.Time  `json:"start_time"`
}

type windowStatusJSON struct {
	LateEvents int64        `json:"late_events"`
	Recent     []windowJSON `json:"recent"`
}

// Run executes the status command
func (w *WindowsStatusCmd) Run(cli *CLI) error {
	status, err := cli.Container.WindowService.Status(context.Background(), w.Limit)
	if err != nil {
		return fmt.Errorf("failed to get window status: %w", err)
	}

	if w.Format == "json" {
		out := windowStatusJSON{LateEvents: status.LateEvents, Recent: []windowJSON{}}
		for _, win := range status.Recent {
			out.Recent = append(out.Recent, toWindowJSON(win))
		}
		return printJSON(out)
	}

	loc := cli.Container.Location
	if status.LastWindow == nil {
		fmt.Println("No windows processed yet.")
	} else {
		fmt.Printf("Last window: %s - %s\n",
			formatTime(status.LastWindow.StartTime, loc),
			formatTime(status.LastWindow.EndTime, loc))
	}
	fmt.Printf("Late events: %d\n", status.LateEvents)
	if len(status.Recent) == 0 {
		return nil
	}

	fmt.Println()
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTART\tEND\tFIRST EVENT\tLAST EVENT")
	for _, win := range status.Recent {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			win.ID,
			formatTime(win.StartTime, loc),
			formatTime(win.EndTime, loc),
			optionalTime(win.FirstTimestamp, loc),
			optionalTime(win.LastTimestamp, loc))
	}
	return tw.Flush()
}

func toWindowJSON(w domain.AggregationWindow) windowJSON {
	return windowJSON{
		EndTime:        w.EndTime,
		FirstTimestamp: w.FirstTimestamp,
		ID:             w.ID,
		LastTimestamp:  w.LastTimestamp,
		StartTime:      w.StartTime,
	}
}

func optionalTime(t *time.Time, loc *time.Location) string {
	if t == nil {
		return "-"
	}
	return t.In(loc).Format("15:04:05")
}
