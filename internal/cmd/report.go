package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/renato0307/tally/internal/intervals"
	"github.com/renato0307/tally/internal/theme"
	"github.com/renato0307/tally/internal/ui"
)

// ReportCmd shows read-only insights computed from the event log
type ReportCmd struct {
	Buckets   ReportBucketsCmd   `cmd:"buckets" help:"Show productivity per hour, weekday or day of month" default:"1"`
	Focus     ReportFocusCmd     `cmd:"focus" help:"Show focus sessions and their statistics"`
	Intervals ReportIntervalsCmd `cmd:"intervals" help:"Show reconstructed intervals per activity"`
}

// ReportIntervalsCmd lists per-activity intervals
type ReportIntervalsCmd struct {
	RangeFlags
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type intervalJSON struct {
	End            time.Time `json:"end"`
	IsOngoing      bool      `json:"is_ongoing"`
	Start          time.Time `json:"start"`
	TruncatedEnd   bool      `json:"truncated_end"`
	TruncatedStart bool      `json:"truncated_start"`
}

type activityIntervalsJSON struct {
	ActivityID int64          `json:"activity_id"`
	Intervals  []intervalJSON `json:"intervals"`
	Name       string         `json:"name"`
	TotalSec   float64        `json:"total_sec"`
}

// Run executes the intervals report
func (r *ReportIntervalsCmd) Run(cli *CLI) error {
	loc := cli.Container.Location
	start, end, err := r.Bounds(time.Now().UTC(), loc)
	if err != nil {
		return err
	}

	perActivity, err := cli.Container.InsightsService.Intervals(context.Background(), start, end)
	if err != nil {
		return fmt.Errorf("failed to build intervals: %w", err)
	}

	if r.Format == "json" {
		out := make([]activityIntervalsJSON, 0, len(perActivity))
		for _, ai := range perActivity {
			row := activityIntervalsJSON{
				ActivityID: ai.Activity.ID,
				Name:       ai.Activity.Name,
				TotalSec:   intervals.TotalDuration(ai.Intervals).Seconds(),
			}
			for _, iv := range ai.Intervals {
				row.Intervals = append(row.Intervals, intervalJSON{
					End:            iv.End,
					IsOngoing:      iv.IsOngoing,
					Start:          iv.Start,
					TruncatedEnd:   iv.TruncatedEnd,
					TruncatedStart: iv.TruncatedStart,
				})
			}
			out = append(out, row)
		}
		return printJSON(out)
	}

	fmt.Printf("Intervals %s - %s\n\n", formatTime(start, loc), formatTime(end, loc))
	if len(perActivity) == 0 {
		fmt.Println("No activity in range.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ACTIVITY\tSTART\tEND\tDURATION\tFLAGS")
	for _, ai := range perActivity {
		for _, iv := range ai.Intervals {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				truncate(ai.Activity.Name, 28),
				formatTime(iv.Start, loc),
				formatTime(iv.End, loc),
				ui.FormatSeconds(iv.Duration().Seconds()),
				intervalFlags(iv))
		}
	}
	return w.Flush()
}

func intervalFlags(iv intervals.Interval) string {
	var flags []string
	if iv.IsOngoing {
		flags = append(flags, "ongoing")
	}
	if iv.TruncatedStart {
		flags = append(flags, "clipped-start")
	}
	if iv.TruncatedEnd && !iv.IsOngoing {
		flags = append(flags, "clipped-end")
	}
	return strings.Join(flags, ",")
}

// ReportBucketsCmd aggregates productivity into calendar slots
type ReportBucketsCmd struct {
	RangeFlags
	Format string `help:"Output format (table, chart or json)" default:"table" enum:"table,chart,json"`
	Kind   string `help:"Bucket kind" enum:"hour_of_day,day_of_week,day_of_month" default:"hour_of_day" short:"k"`
}

// Run executes the buckets report
func (r *ReportBucketsCmd) Run(cli *CLI) error {
	loc := cli.Container.Location
	start, end, err := r.Bounds(time.Now().UTC(), loc)
	if err != nil {
		return err
	}
	kind, err := intervals.ParseBucketKind(r.Kind)
	if err != nil {
		return err
	}

	buckets, err := cli.Container.InsightsService.Buckets(context.Background(), start, end, kind, loc)
	if err != nil {
		return fmt.Errorf("failed to compute buckets: %w", err)
	}

	switch r.Format {
	case "json":
		if buckets == nil {
			buckets = []intervals.Bucket{}
		}
		return printJSON(buckets)
	case "chart":
		fmt.Printf("Productivity by %s - %s to %s\n\n", kindTitle(kind), formatTime(start, loc), formatTime(end, loc))
		if len(buckets) == 0 {
			fmt.Println("No activity in range.")
			return nil
		}
		fmt.Println(ui.RenderBucketChart(buckets, kind))
	default:
		r.renderTable(buckets, kind, start, end, loc)
	}
	return nil
}

func (r *ReportBucketsCmd) renderTable(buckets []intervals.Bucket, kind intervals.BucketKind, start, end time.Time, loc *time.Location) {
	fmt.Printf("Productivity by %s - %s to %s\n\n", kindTitle(kind), formatTime(start, loc), formatTime(end, loc))
	if len(buckets) == 0 {
		fmt.Println("No activity in range.")
		return
	}

	fmt.Println("Slot   Active    Productive  Score")
	fmt.Println(strings.Repeat("─", 45))

	var active, productive float64
	for _, b := range buckets {
		score := "-"
		if b.ActiveSeconds > 0 {
			score = theme.ScoreStyle(b.MeanValue).Render(fmt.Sprintf("%.2f", b.MeanValue))
		}
		fmt.Printf("%-6s %-9s %-11s %s\n",
			ui.BucketLabel(kind, b.Key),
			ui.FormatSeconds(b.ActiveSeconds),
			ui.FormatSeconds(b.ProductiveSeconds),
			score)
		active += b.ActiveSeconds
		productive += b.ProductiveSeconds
	}

	fmt.Println(strings.Repeat("─", 45))
	fmt.Printf("Total  %-9s %s\n", ui.FormatSeconds(active), ui.FormatSeconds(productive))
}

func kindTitle(kind intervals.BucketKind) string {
	switch kind {
	case intervals.BucketDayOfWeek:
		return "weekday"
	case intervals.BucketDayOfMonth:
		return "day of month"
	default:
		return "hour"
	}
}

// ReportFocusCmd lists focus sessions
type ReportFocusCmd struct {
	RangeFlags
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the focus report
func (r *ReportFocusCmd) Run(cli *CLI) error {
	loc := cli.Container.Location
	start, end, err := r.Bounds(time.Now().UTC(), loc)
	if err != nil {
		return err
	}

	report, err := cli.Container.InsightsService.FocusSessions(context.Background(), start, end)
	if err != nil {
		return fmt.Errorf("failed to detect focus sessions: %w", err)
	}

	if r.Format == "json" {
		sessions := report.Sessions
		if sessions == nil {
			sessions = []intervals.FocusSession{}
		}
		return printJSON(map[string]any{
			"sessions": sessions,
			"summary":  report.Summary,
		})
	}

	fmt.Printf("Focus sessions %s - %s\n\n", formatTime(start, loc), formatTime(end, loc))
	if len(report.Sessions) == 0 {
		fmt.Println("No focus sessions in range.")
		return nil
	}

	fmt.Println("Start              End                Length    Disrupted")
	fmt.Println(strings.Repeat("─", 60))
	for _, s := range report.Sessions {
		fmt.Printf("%-18s %-18s %-9s %s (%.1f%%)\n",
			formatTime(s.Start, loc),
			formatTime(s.End, loc),
			ui.FormatSeconds(s.Duration.Seconds()),
			ui.FormatSeconds(s.DisruptedSec),
			s.DisruptionPct*100)
	}
	fmt.Println(strings.Repeat("─", 60))

	sum := report.Summary
	fmt.Printf("Sessions: %d  Total: %s  Mean: %s  Median: %s  P90: %s\n",
		sum.Count,
		ui.FormatSeconds(sum.TotalSec),
		ui.FormatSeconds(sum.MeanSec),
		ui.FormatSeconds(sum.MedianSec),
		ui.FormatSeconds(sum.P90Sec))
	return nil
}
