package scheduler

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/tally/internal/logging"
)

// Job is a unit of periodic work
type Job struct {
	Interval time.Duration
	Name     string
	Run      func(ctx context.Context) error
}

// Scheduler runs jobs on independent tickers until its context ends.
// A failing tick is logged and retried on the next tick.
type Scheduler struct {
	jobs []Job
}

// New creates a scheduler for the given jobs
func New(jobs ...Job) (*Scheduler, error) {
	for _, j := range jobs {
		if j.Interval <= 0 {
			return nil, fmt.Errorf("job %q: interval must be positive", j.Name)
		}
		if j.Run == nil {
			return nil, fmt.Errorf("job %q: missing run function", j.Name)
		}
	}
	return &Scheduler{jobs: jobs}, nil
}

// Start runs every job once immediately and then on each tick.
// It blocks until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, job := range s.jobs {
		g.Go(func() error {
			loop(ctx, job)
			return nil
		})
	}
	return g.Wait()
}

func loop(ctx context.Context, job Job) {
	log := logging.Logger.With("job", job.Name)
	log.Info("Scheduler job started", "interval", job.Interval)

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		tick(ctx, job)

		select {
		case <-ctx.Done():
			log.Info("Scheduler job stopped")
			return
		case <-ticker.C:
		}
	}
}

func tick(ctx context.Context, job Job) {
	if ctx.Err() != nil {
		return
	}
	started := time.Now()
	if err := job.Run(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		logging.Logger.Error("Scheduler job failed", "job", job.Name, "error", err)
		return
	}
	logging.Logger.Debug("Scheduler job finished", "job", job.Name, "elapsed", time.Since(started))
}
