package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/tally/internal/logging"
	"github.com/renato0307/tally/internal/services"
)

// IngestCmd stores raw open/close events
type IngestCmd struct {
	File    string `arg:"" optional:"" help:"Input file (default: stdin)" type:"path"`
	Format  string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Process bool   `help:"Process due aggregation windows after ingesting"`
}

// Run executes the ingest command
func (i *IngestCmd) Run(cli *CLI) error {
	in, err := openInput(i.File)
	if err != nil {
		return err
	}
	defer in.Close()

	inputs, err := services.DecodeBatch[services.EventInput](in)
	if err != nil {
		return err
	}

	ctx := context.Background()
	report, err := cli.Container.IngestService.IngestBatch(ctx, inputs)
	if err != nil {
		return fmt.Errorf("failed to ingest events: %w", err)
	}
	logging.Logger.Info("Ingested events",
		"accepted", report.Accepted,
		"duplicate", report.Duplicate,
		"rejected", report.Rejected)

	var processed []services.WindowResult
	if i.Process {
		processed, err = cli.Container.WindowService.ProcessDue(ctx)
		if err != nil {
			return fmt.Errorf("failed to process windows: %w", err)
		}
	}

	if i.Format == "json" {
		return printJSON(report)
	}

	fmt.Printf("Accepted:  %d\n", report.Accepted)
	fmt.Printf("Duplicate: %d\n", report.Duplicate)
	fmt.Printf("Rejected:  %d\n", report.Rejected)
	if i.Process {
		fmt.Printf("Windows processed: %d\n", len(processed))
	}
	return nil
}
