package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/renato0307/tally/internal/theme"
)

// SessionsCmd shows session groupings
type SessionsCmd struct {
	List SessionsListCmd `cmd:"list" help:"List candidate and finalized sessions in a range" default:"1"`
}

// SessionsListCmd lists groupings overlapping a range
type SessionsListCmd struct {
	RangeFlags
	Finalized bool   `help:"Only show finalized sessions"`
	Format    string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type sessionJSON struct {
	ActivityIDs []int64   `json:"activity_ids"`
	End         time.Time `json:"end"`
	Name        string    `json:"name"`
	PublicID    string    `json:"public_id"`
	Start       time.Time `json:"start"`
	State       string    `json:"state"`
}

// Run executes the list command
func (s *SessionsListCmd) Run(cli *CLI) error {
	loc := cli.Container.Location
	start, end, err := s.Bounds(time.Now().UTC(), loc)
	if err != nil {
		return err
	}

	groupings, err := cli.Container.SessionizationService.Groupings(context.Background(), start, end)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	rows := make([]sessionJSON, 0, len(groupings.Sessions)+len(groupings.Candidates))
	for _, sess := range groupings.Sessions {
		rows = append(rows, sessionJSON{
			ActivityIDs: sess.ActivityIDs,
			End:         sess.End,
			Name:        sess.Name,
			PublicID:    sess.PublicID,
			Start:       sess.Start,
			State:       sessionState(true),
		})
	}
	if !s.Finalized {
		for _, c := range groupings.Candidates {
			rows = append(rows, sessionJSON{
				ActivityIDs: c.ActivityIDs,
				End:         c.End,
				Name:        c.Name,
				PublicID:    c.PublicID,
				Start:       c.Start,
				State:       sessionState(false),
			})
		}
	}

	if s.Format == "json" {
		return printJSON(rows)
	}

	if len(rows) == 0 {
		fmt.Println("No sessions in range.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STATE\tID\tNAME\tSTART\tEND\tACTIVITIES")
	for _, r := range rows {
		state := r.State
		if state == sessionState(false) {
			state = theme.MutedStyle.Render(state)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			state,
			shortID(r.PublicID),
			truncate(r.Name, 28),
			formatTime(r.Start, loc),
			formatTime(r.End, loc),
			activityIDList(r.ActivityIDs))
	}
	return w.Flush()
}

// shortID keeps the first uuid group
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
