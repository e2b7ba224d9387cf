package domain

import "time"

// EventType is the kind of an activity event
type EventType string

const (
	EventOpen  EventType = "open"
	EventClose EventType = "close"
)

// ActivityEvent is a single open or close observation for an activity.
// (ActivityID, EventTime, EventType) is the natural key.
type ActivityEvent struct {
	ActivityID    int64
	AggregationID *int64
	EventTime     time.Time
	EventType     EventType
}

// AggregationWindow is a half-open [StartTime, EndTime) batch of processed events
type AggregationWindow struct {
	EndTime        time.Time
	FirstTimestamp *time.Time
	ID             int64
	LastTimestamp  *time.Time
	StartTime      time.Time
}

// IsEmpty reports whether no event has ever been assigned to the window
func (w AggregationWindow) IsEmpty() bool {
	return w.FirstTimestamp == nil
}

// OpenActivity is an activity whose latest event is an open
type OpenActivity struct {
	Activity      Activity
	LastEventTime time.Time
}
