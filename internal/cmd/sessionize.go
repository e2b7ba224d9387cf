package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/renato0307/tally/internal/services"
)

// SessionizeCmd runs the sessionization engine
type SessionizeCmd struct {
	CatchUp SessionizeCatchUpCmd `cmd:"catch-up" help:"Run until no closed window is left to sessionize" default:"1"`
	Run     SessionizeRunCmd     `cmd:"run" help:"Run a single sessionization cycle"`
	Status  SessionizeStatusCmd  `cmd:"status" help:"Show the latest run and its watermarks"`
}

// SessionizeRunCmd runs one cycle
type SessionizeRunCmd struct{}

// Run executes one sessionization cycle
func (s *SessionizeRunCmd) Run(cli *CLI) error {
	result, err := cli.Container.SessionizationService.Run(context.Background())
	if err != nil {
		return fmt.Errorf("sessionization failed: %w", err)
	}
	if result.Skipped {
		fmt.Println("Nothing to sessionize: no window closed since the last run.")
		return nil
	}
	printRunResults([]services.SessionizationResult{result}, cli.Container.Location)
	return nil
}

// SessionizeCatchUpCmd repeats runs until one is skipped
type SessionizeCatchUpCmd struct{}

// Run executes the catch-up
func (s *SessionizeCatchUpCmd) Run(cli *CLI) error {
	results, err := cli.Container.SessionizationService.CatchUp(context.Background())
	if err != nil {
		return fmt.Errorf("sessionization failed: %w", err)
	}
	if len(results) == 0 {
		fmt.Println("Nothing to sessionize: no window closed since the last run.")
		return nil
	}
	printRunResults(results, cli.Container.Location)
	return nil
}

func printRunResults(results []services.SessionizationResult, loc *time.Location) {
	fmt.Println("Run   Start              End                Sessions  Candidates")
	fmt.Println(strings.Repeat("─", 66))
	for _, r := range results {
		fmt.Printf("%-5d %-18s %-18s %-9d %d\n",
			r.Run.ID,
			formatTime(r.Run.CandidateCreationStart, loc),
			formatTime(r.Run.CandidateCreationEnd, loc),
			r.Sessions,
			r.Candidates)
	}
}

// SessionizeStatusCmd shows the latest run
type SessionizeStatusCmd struct{}

// Run executes the status command
func (s *SessionizeStatusCmd) Run(cli *CLI) error {
	run, err := cli.Container.SessionizationService.LatestRun(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load latest run: %w", err)
	}
	if run == nil {
		fmt.Println("No sessionization run yet.")
		return nil
	}

	loc := cli.Container.Location
	fmt.Printf("Run:               %d\n", run.ID)
	fmt.Printf("Range:             %s - %s\n",
		formatTime(run.CandidateCreationStart, loc),
		formatTime(run.CandidateCreationEnd, loc))
	fmt.Printf("Finalized horizon: %s\n", watermark(run.FinalizedHorizon, loc))
	fmt.Printf("Overlap start:     %s\n", watermark(run.OverlapStart, loc))
	fmt.Printf("Right tail end:    %s\n", watermark(run.RightTailEnd, loc))
	fmt.Printf("Next run starts:   %s\n", formatTime(run.NextStart(), loc))
	return nil
}

func watermark(t *time.Time, loc *time.Location) string {
	if t == nil {
		return "-"
	}
	return formatTime(*t, loc)
}

// sessionState names the lifecycle stage of a grouping
func sessionState(finalized bool) string {
	if finalized {
		return "final"
	}
	return "candidate"
}

func activityIDList(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ",")
}
