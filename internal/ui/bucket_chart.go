package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/tally/internal/intervals"
	"github.com/renato0307/tally/internal/theme"
)

const (
	bucketChartHeight = 8 // Rows of the bar area
	bucketColumnWidth = 3 // Two bar cells plus a gap
)

// Partial block glyphs, one per eighth of a row
var eighths = []string{" ", "▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

var weekdayLabels = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// RenderBucketChart draws active time per bucket as vertical bars colored by
// the bucket's mean productivity. Used by the CLI report command.
func RenderBucketChart(buckets []intervals.Bucket, kind intervals.BucketKind) string {
	var sb strings.Builder

	var maxActive, totalActive, totalProductive float64
	for _, b := range buckets {
		if b.ActiveSeconds > maxActive {
			maxActive = b.ActiveSeconds
		}
		totalActive += b.ActiveSeconds
		totalProductive += b.ProductiveSeconds
	}

	legend := theme.ChartLegendStyle.Render(fmt.Sprintf("Active: %s (max: %s)  Productive: %s",
		FormatSeconds(totalActive),
		FormatSeconds(maxActive),
		FormatSeconds(totalProductive)))
	sb.WriteString(legend)
	sb.WriteString("\n\n")

	if maxActive == 0 {
		maxActive = 1 // Avoid division by zero
	}

	// Height of each bar in eighths of a row
	levels := make([]int, len(buckets))
	for i, b := range buckets {
		levels[i] = int(b.ActiveSeconds / maxActive * float64(bucketChartHeight*8))
		if b.ActiveSeconds > 0 && levels[i] == 0 {
			levels[i] = 1
		}
	}

	for row := bucketChartHeight - 1; row >= 0; row-- {
		sb.WriteString(theme.ChartAxisStyle.Render("│"))
		for i, b := range buckets {
			fill := levels[i] - row*8
			switch {
			case fill >= 8:
				fill = 8
			case fill < 0:
				fill = 0
			}
			cell := strings.Repeat(eighths[fill], bucketColumnWidth-1)
			sb.WriteString(theme.ScoreStyle(b.MeanValue).Render(cell))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(theme.ChartAxisStyle.Render("└" + strings.Repeat("─", len(buckets)*bucketColumnWidth)))
	sb.WriteString("\n ")
	for _, b := range buckets {
		label := lipgloss.NewStyle().Width(bucketColumnWidth).Render(BucketLabel(kind, b.Key))
		sb.WriteString(theme.ChartLabelStyle.Render(label))
	}

	return sb.String()
}

// BucketLabel is the short axis label of a bucket key
func BucketLabel(kind intervals.BucketKind, key int) string {
	switch kind {
	case intervals.BucketDayOfWeek:
		if key >= 0 && key < len(weekdayLabels) {
			return weekdayLabels[key]
		}
	case intervals.BucketHourOfDay, intervals.BucketDayOfMonth:
		return fmt.Sprintf("%02d", key)
	}
	return fmt.Sprintf("%d", key)
}

// FormatSeconds formats a duration given in seconds as 1h05m, 42m or 30s
func FormatSeconds(sec float64) string {
	d := time.Duration(sec * float64(time.Second)).Round(time.Second)
	switch {
	case d >= time.Hour:
		return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
	case d >= time.Minute:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	default:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
}
