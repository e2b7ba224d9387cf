package cmd

import (
	"context"

	"github.com/renato0307/tally/internal/config"
	"github.com/renato0307/tally/internal/logging"
	"github.com/renato0307/tally/internal/scheduler"
)

// newScheduler wires the background processing pipeline: windows close,
// sessionization catches up behind them, goals are re-evaluated
func newScheduler(c *Container, schedule config.ScheduleOptions) (*scheduler.Scheduler, error) {
	return scheduler.New(
		scheduler.Job{
			Interval: schedule.Windows,
			Name:     "windows",
			Run: func(ctx context.Context) error {
				results, err := c.WindowService.ProcessDue(ctx)
				if len(results) > 0 {
					logging.Logger.Info("Windows processed", "count", len(results))
				}
				return err
			},
		},
		scheduler.Job{
			Interval: schedule.Sessionize,
			Name:     "sessionize",
			Run: func(ctx context.Context) error {
				results, err := c.SessionizationService.CatchUp(ctx)
				if len(results) > 0 {
					logging.Logger.Info("Sessionization runs completed", "count", len(results))
				}
				return err
			},
		},
		scheduler.Job{
			Interval: schedule.Goals,
			Name:     "goals",
			Run: func(ctx context.Context) error {
				statuses, err := c.GoalService.EvaluateAll(ctx, false)
				if err != nil {
					return err
				}
				logging.Logger.Debug("Goals evaluated", "count", len(statuses))
				return nil
			},
		},
	)
}
