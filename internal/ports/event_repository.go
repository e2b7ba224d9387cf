package ports

import (
	"context"
	"time"

	"github.com/renato0307/tally/internal/domain"
)

// EventReader reads the raw activity event log
type EventReader interface {
	// ListEvents returns events in [start, end) grouped by activity, plus the
	// latest earlier event of each activity so open intervals can be rebuilt
	ListEvents(ctx context.Context, start, end time.Time) (map[int64][]domain.ActivityEvent, error)
	// ListOpenActivities returns activities whose latest event before t is an open
	ListOpenActivities(ctx context.Context, before time.Time) ([]domain.OpenActivity, error)
	CountUnassignedBefore(ctx context.Context, t time.Time) (int64, error)
}

// EventWriter appends events, ignoring duplicates of the natural key
type EventWriter interface {
	InsertEvents(ctx context.Context, events []domain.ActivityEvent) (int, error)
}

// WindowReader reads aggregation windows
type WindowReader interface {
	LastWindow(ctx context.Context) (*domain.AggregationWindow, error)
	ListWindows(ctx context.Context, limit int) ([]domain.AggregationWindow, error)
}

// WindowWriter processes aggregation windows
type WindowWriter interface {
	// ProcessWindow upserts the window and assigns every unassigned event in
	// [start, end) to it in one transaction. It returns the number of newly
	// assigned events.
	ProcessWindow(ctx context.Context, start, end time.Time) (domain.AggregationWindow, int64, error)
}
