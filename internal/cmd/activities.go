package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/logging"
	"github.com/renato0307/tally/internal/services"
	"github.com/renato0307/tally/internal/theme"
)

// ActivitiesCmd manages tracked activities
type ActivitiesCmd struct {
	Import ActivitiesImportCmd `cmd:"import" help:"Upsert activities from a JSON array or JSON lines"`
	List   ActivitiesListCmd   `cmd:"list" help:"List all activities" default:"1"`
}

// ActivitiesImportCmd upserts activity metadata
type ActivitiesImportCmd struct {
	File string `arg:"" optional:"" help:"Input file (default: stdin)" type:"path"`
}

// Run executes the import command
func (a *ActivitiesImportCmd) Run(cli *CLI) error {
	in, err := openInput(a.File)
	if err != nil {
		return err
	}
	defer in.Close()

	inputs, err := services.DecodeBatch[services.ActivityInput](in)
	if err != nil {
		return err
	}

	logging.Logger.Info("Importing activities", "count", len(inputs))
	changed, err := cli.Container.IngestService.ImportActivities(context.Background(), inputs)
	if err != nil {
		return fmt.Errorf("failed to import activities: %w", err)
	}

	fmt.Printf("Imported %d activities (%d changed)\n", len(inputs), changed)
	return nil
}

// ActivitiesListCmd lists activities
type ActivitiesListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type activityJSON struct {
	Description  string   `json:"description,omitempty"`
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Productivity string   `json:"productivity_level"`
	Source       string   `json:"source"`
	Tags         []string `json:"tags"`
}

// Run executes the list command
func (a *ActivitiesListCmd) Run(cli *CLI) error {
	activities, err := cli.Container.IngestService.ListActivities(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list activities: %w", err)
	}

	if a.Format == "json" {
		out := make([]activityJSON, 0, len(activities))
		for _, act := range activities {
			tags := act.Tags
			if tags == nil {
				tags = []string{}
			}
			out = append(out, activityJSON{
				Description:  act.Description,
				ID:           act.ID,
				Name:         act.Name,
				Productivity: string(act.Productivity),
				Source:       string(act.Source),
				Tags:         tags,
			})
		}
		return printJSON(out)
	}

	if len(activities) == 0 {
		fmt.Println("No activities found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRODUCTIVITY\tSOURCE\tTAGS")
	for _, act := range activities {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			act.ID,
			truncate(act.Name, 32),
			productivityLabel(act.Productivity),
			act.Source,
			strings.Join(act.Tags, ","))
	}
	return w.Flush()
}

// productivityLabel colors a level by its score
func productivityLabel(p domain.ProductivityLevel) string {
	return theme.ScoreStyle(p.Score()).Render(string(p))
}
