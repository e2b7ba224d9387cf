package ui

import (
	"fmt"

	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/theme"
)

// RenderOutcome renders the evaluation state and success flag of a goal period
func RenderOutcome(state domain.EvalState, success *bool) string {
	switch {
	case state == domain.EvalPaused:
		return theme.PausedStyle.Render("paused")
	case state == domain.EvalNA:
		return theme.NAStyle.Render("n/a")
	case success == nil:
		return theme.NAStyle.Render(string(state))
	case state == domain.EvalPartial && *success:
		return theme.PartialStyle.Render("on track (partial)")
	case state == domain.EvalPartial:
		return theme.PartialStyle.Render("behind (partial)")
	case *success:
		return theme.SuccessStyle.Render("met")
	default:
		return theme.FailedStyle.Render("missed")
	}
}

// FormatMetric formats a metric value in the unit of the goal metric
func FormatMetric(metric domain.GoalMetric, value float64) string {
	if metric == domain.MetricTotalActivityDuration {
		return FormatSeconds(value)
	}
	return fmt.Sprintf("%.2f", value)
}
