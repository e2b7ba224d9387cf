package cmd

import (
	"fmt"
	"time"

	adapterstorage "github.com/renato0307/tally/internal/adapters/storage"
	"github.com/renato0307/tally/internal/api"
	"github.com/renato0307/tally/internal/config"
	"github.com/renato0307/tally/internal/logging"
	"github.com/renato0307/tally/internal/ports"
	"github.com/renato0307/tally/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	GoalService           *services.GoalService
	IngestService         *services.IngestService
	InsightsService       *services.InsightsService
	SessionizationService *services.SessionizationService
	WindowService         *services.WindowService

	// Location is the reporting timezone
	Location *time.Location

	// Internal - for cleanup only
	repo ports.Repository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(processing config.Processing) (*Container, error) {
	return newContainerAt(config.GetDBPath(), processing, services.SystemClock{})
}

func newContainerAt(dbPath string, processing config.Processing, clock ports.Clock) (*Container, error) {
	loc, err := processing.Location()
	if err != nil {
		return nil, err
	}

	repo, err := adapterstorage.NewSQLiteRepository(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	logging.Logger.Debug("Store opened", "path", dbPath)

	// The repository implements every reader and writer port
	goalService := services.NewGoalService(repo, repo, repo, repo, repo, clock, processing.Goals)
	ingestService := services.NewIngestService(repo, repo, repo, clock)
	insightsService := services.NewInsightsService(repo, repo, clock, processing.Focus)
	sessionizationService := services.NewSessionizationService(repo, repo, repo, repo, repo, clock, processing.Sessionization)
	windowService := services.NewWindowService(repo, repo, repo, repo, clock, processing.AggregationInterval)

	return &Container{
		GoalService:           goalService,
		IngestService:         ingestService,
		InsightsService:       insightsService,
		Location:              loc,
		SessionizationService: sessionizationService,
		WindowService:         windowService,
		repo:                  repo,
	}, nil
}

// APIServices exposes the services the HTTP API serves
func (c *Container) APIServices() api.Services {
	return api.Services{
		Goals:    c.GoalService,
		Ingest:   c.IngestService,
		Insights: c.InsightsService,
		Sessions: c.SessionizationService,
		Windows:  c.WindowService,
	}
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.repo != nil {
		return c.repo.Close()
	}
	return nil
}
