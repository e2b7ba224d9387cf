package services

import (
	"context"
	"fmt"
	"time"

	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/logging"
	"github.com/renato0307/tally/internal/ports"
)

// WindowResult describes one processed aggregation window
type WindowResult struct {
	Assigned          int64
	InterruptedCloses int
	Window            domain.AggregationWindow
}

// WindowStatus summarizes the aggregation progress
type WindowStatus struct {
	LastWindow *domain.AggregationWindow
	LateEvents int64
	Recent     []domain.AggregationWindow
}

// WindowService assigns ingested events to idempotent aggregation windows
type WindowService struct {
	clock        ports.Clock
	eventReader  ports.EventReader
	eventWriter  ports.EventWriter
	interval     time.Duration
	windowReader ports.WindowReader
	windowWriter ports.WindowWriter
}

// NewWindowService creates a new WindowService
func NewWindowService(
	eventReader ports.EventReader,
	eventWriter ports.EventWriter,
	windowReader ports.WindowReader,
	windowWriter ports.WindowWriter,
	clock ports.Clock,
	interval time.Duration,
) *WindowService {
	return &WindowService{
		clock:        clock,
		eventReader:  eventReader,
		eventWriter:  eventWriter,
		interval:     interval,
		windowReader: windowReader,
		windowWriter: windowWriter,
	}
}

// CurrentWindow returns the epoch-aligned window of length interval containing now
func CurrentWindow(now time.Time, interval time.Duration) (time.Time, time.Time) {
	ns := now.UnixNano()
	start := time.Unix(0, ns-ns%int64(interval)).UTC()
	return start, start.Add(interval)
}

// Interval returns the configured window length
func (s *WindowService) Interval() time.Duration {
	return s.interval
}

// ProcessWindow assigns the unassigned events of [start, end) to the window.
//
// When the window saw no events and directly follows the last processed
// window, automatic activities left open are closed at the window start. The
// closes go through the idempotent insert, so re-processing adds nothing.
// After a gap nothing is closed, since the closes would land outside any window.
func (s *WindowService) ProcessWindow(ctx context.Context, start, end time.Time) (WindowResult, error) {
	if !end.After(start) {
		return WindowResult{}, domain.ErrInvalidWindowBounds
	}

	prev, err := s.windowReader.LastWindow(ctx)
	if err != nil {
		return WindowResult{}, err
	}
	if prev != nil && !prev.EndTime.Equal(start) {
		prev = nil
	}

	window, assigned, err := s.windowWriter.ProcessWindow(ctx, start, end)
	if err != nil {
		return WindowResult{}, fmt.Errorf("failed to process window %s-%s: %w", start, end, err)
	}
	result := WindowResult{Assigned: assigned, Window: window}

	if window.IsEmpty() && prev != nil {
		closed, err := s.closeInterrupted(ctx, start)
		if err != nil {
			return result, err
		}
		result.InterruptedCloses = closed

		// Assign the closes to this window
		if closed > 0 {
			window, assigned, err = s.windowWriter.ProcessWindow(ctx, start, end)
			if err != nil {
				return result, fmt.Errorf("failed to process window %s-%s: %w", start, end, err)
			}
			result.Assigned += assigned
			result.Window = window
		}
	}

	logging.Logger.Info("Processed aggregation window",
		"start", start,
		"end", end,
		"assigned", result.Assigned,
		"interrupted_closes", result.InterruptedCloses)
	return result, nil
}

// closeInterrupted closes automatic activities still open at at
func (s *WindowService) closeInterrupted(ctx context.Context, at time.Time) (int, error) {
	open, err := s.eventReader.ListOpenActivities(ctx, at)
	if err != nil {
		return 0, err
	}

	var closes []domain.ActivityEvent
	for _, o := range open {
		if o.Activity.IsManual() || o.Activity.TouchedManuallyAfter(o.LastEventTime) {
			continue
		}
		closes = append(closes, domain.ActivityEvent{
			ActivityID: o.Activity.ID,
			EventTime:  at,
			EventType:  domain.EventClose,
		})
	}
	if len(closes) == 0 {
		return 0, nil
	}

	inserted, err := s.eventWriter.InsertEvents(ctx, closes)
	if err != nil {
		return 0, fmt.Errorf("failed to close interrupted activities: %w", err)
	}
	logging.Logger.Info("Closed interrupted activities", "count", inserted, "at", at)
	return inserted, nil
}

// ProcessDue processes every complete window after the last processed one,
// stopping before the window containing now. Without a previous window only
// the last complete window is processed.
func (s *WindowService) ProcessDue(ctx context.Context) ([]WindowResult, error) {
	now := s.clock.Now()
	currentStart, _ := CurrentWindow(now, s.interval)

	last, err := s.windowReader.LastWindow(ctx)
	if err != nil {
		return nil, err
	}

	next := currentStart.Add(-s.interval)
	if last != nil {
		next = last.EndTime
	}

	var results []WindowResult
	for !next.Add(s.interval).After(currentStart) {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		result, err := s.ProcessWindow(ctx, next, next.Add(s.interval))
		if err != nil {
			return results, err
		}
		results = append(results, result)
		next = next.Add(s.interval)
	}
	return results, nil
}

// LateEvents counts stored events that arrived after their window was processed
func (s *WindowService) LateEvents(ctx context.Context) (int64, error) {
	last, err := s.windowReader.LastWindow(ctx)
	if err != nil {
		return 0, err
	}
	if last == nil {
		return 0, nil
	}
	return s.eventReader.CountUnassignedBefore(ctx, last.EndTime)
}

// Status reports the last windows and the late event count
func (s *WindowService) Status(ctx context.Context, limit int) (WindowStatus, error) {
	recent, err := s.windowReader.ListWindows(ctx, limit)
	if err != nil {
		return WindowStatus{}, err
	}
	late, err := s.LateEvents(ctx)
	if err != nil {
		return WindowStatus{}, err
	}

	status := WindowStatus{LateEvents: late, Recent: recent}
	if len(recent) > 0 {
		last := recent[0]
		status.LastWindow = &last
	}
	return status, nil
}
