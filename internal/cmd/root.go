package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/renato0307/tally/internal/config"
	"github.com/renato0307/tally/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	Interval    time.Duration    `help:"Aggregation window length (overrides TALLY_AGGREGATION_INTERVAL)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Timezone    string           `help:"Reporting timezone (overrides TALLY_TIMEZONE)" short:"z"`

	Activities ActivitiesCmd `cmd:"activities" help:"Manage tracked activities (import, list)"`
	Goals      GoalsCmd      `cmd:"goals" help:"Manage goals (create, update, pause, resume, evaluate, results, list)"`
	Ingest     IngestCmd     `cmd:"ingest" help:"Ingest raw activity events (JSON lines or array)"`
	Report     ReportCmd     `cmd:"report" help:"Show insights (intervals, buckets, focus)"`
	Serve      ServeCmd      `cmd:"serve" help:"Run the HTTP API and background processing"`
	Sessionize SessionizeCmd `cmd:"sessionize" help:"Run the sessionization engine"`
	Sessions   SessionsCmd   `cmd:"sessions" help:"Show candidate and finalized sessions"`
	Settings   SettingsCmd   `cmd:"settings" help:"Manage settings (meta)"`
	Windows    WindowsCmd    `cmd:"windows" help:"Process aggregation windows"`

	// Internal fields (not flags)
	Container  *Container        `kong:"-"`
	Processing config.Processing `kong:"-"`
	settings   *config.Settings  `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set

	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("TALLY_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("TALLY_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Exported so the serve daemon's children append to the same file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("TALLY_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("TALLY_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("TALLY_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// settings.json and TALLY_* are layered by config; flags win over both
	processing, err := config.ResolveProcessing(c.settings)
	if err != nil {
		return err
	}
	if c.Interval != 0 {
		processing.AggregationInterval = c.Interval
	}
	if c.Timezone != "" {
		processing.Timezone = c.Timezone
	}
	if err := processing.Validate(); err != nil {
		return err
	}
	c.Processing = processing
	logging.Logger.Debug("Processing configuration resolved",
		"aggregation_interval", processing.AggregationInterval,
		"timezone", processing.Timezone)

	// Create container AFTER logging is initialized
	// GORM's logger writes through logging.Logger
	container, err := NewContainer(processing)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
