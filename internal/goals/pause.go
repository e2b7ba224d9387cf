package goals

import (
	"sort"
	"time"

	"github.com/renato0307/tally/internal/domain"
)

func sortedPauseEvents(events []domain.GoalPauseEvent) []domain.GoalPauseEvent {
	sorted := make([]domain.GoalPauseEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].At.Equal(sorted[j].At) {
			return sorted[i].At.Before(sorted[j].At)
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// PausedBefore reports whether the goal is paused just before t,
// according to the latest pause log entry strictly before t.
func PausedBefore(events []domain.GoalPauseEvent, t time.Time) bool {
	paused := false
	for _, e := range sortedPauseEvents(events) {
		if !e.At.Before(t) {
			break
		}
		paused = e.EventType == domain.PauseEventPause
	}
	return paused
}

// PausedAt reports whether the goal is paused at instant t, counting entries at t
func PausedAt(events []domain.GoalPauseEvent, t time.Time) bool {
	return PausedBefore(events, t.Add(time.Nanosecond))
}

// PauseWindows derives the paused ranges inside [start, end) from the pause log.
// Redundant pauses and resumes are ignored.
func PauseWindows(events []domain.GoalPauseEvent, start, end time.Time) []Range {
	var out []Range
	paused := PausedBefore(events, start)
	from := start

	for _, e := range sortedPauseEvents(events) {
		if e.At.Before(start) {
			continue
		}
		if !e.At.Before(end) {
			break
		}
		switch {
		case e.EventType == domain.PauseEventPause && !paused:
			paused = true
			from = e.At
		case e.EventType == domain.PauseEventResume && paused:
			paused = false
			if e.At.After(from) {
				out = append(out, Range{End: e.At, Start: from})
			}
		}
	}
	if paused && end.After(from) {
		out = append(out, Range{End: end, Start: from})
	}
	return out
}
