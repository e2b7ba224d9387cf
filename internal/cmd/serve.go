package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/tally/internal/api"
	"github.com/renato0307/tally/internal/logging"
)

// ServeCmd runs the HTTP API together with the background jobs
type ServeCmd struct {
	Addr   string `help:"Address to listen on (overrides TALLY_HTTP_ADDR)"`
	NoJobs bool   `help:"Serve the API without background processing"`
	Quiet  bool   `help:"Do not mirror info logs to stderr" short:"q"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	if !s.Quiet {
		logging.AttachStderr(os.Stderr, slog.LevelInfo)
	}

	addr := cli.Processing.HTTPAddr
	if s.Addr != "" {
		addr = s.Addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := cli.Container
	server := api.NewServer(addr, c.APIServices(), c.Location)
	sched, err := newScheduler(c, cli.Processing.Schedule)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Start(gctx)
	})
	if !s.NoJobs {
		g.Go(func() error {
			return sched.Start(gctx)
		})
	}

	logging.Logger.Info("tally serving",
		"address", addr,
		"jobs", !s.NoJobs,
		"timezone", c.Location.String())

	if err := g.Wait(); err != nil {
		return fmt.Errorf("serve failed: %w", err)
	}
	logging.Logger.Info("tally stopped")
	return nil
}
