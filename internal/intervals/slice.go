package intervals

import "time"

// Boundary returns the first boundary strictly after t
type Boundary func(t time.Time) time.Time

// NextHour returns a boundary at every wall-clock hour in loc
func NextHour(loc *time.Location) Boundary {
	return func(t time.Time) time.Time {
		lt := t.In(loc)
		next := time.Date(lt.Year(), lt.Month(), lt.Day(), lt.Hour(), 0, 0, 0, loc).Add(time.Hour)
		for !next.After(t) {
			next = next.Add(time.Hour)
		}
		return next
	}
}

// NextDay returns a boundary at every local midnight in loc
func NextDay(loc *time.Location) Boundary {
	return func(t time.Time) time.Time {
		lt := t.In(loc)
		return time.Date(lt.Year(), lt.Month(), lt.Day()+1, 0, 0, 0, 0, loc)
	}
}

// SliceByBoundary splits every interval at each boundary it crosses.
// Only the first piece keeps TruncatedStart and only the last keeps TruncatedEnd and IsOngoing.
func SliceByBoundary(ivs []Interval, boundary Boundary) []Interval {
	var out []Interval
	for _, iv := range ivs {
		if !iv.End.After(iv.Start) {
			out = append(out, iv)
			continue
		}
		cursor := iv.Start
		first := true
		for cursor.Before(iv.End) {
			next := boundary(cursor)
			last := !next.Before(iv.End)
			if last {
				next = iv.End
			}
			out = append(out, Interval{
				End:            next,
				IsOngoing:      last && iv.IsOngoing,
				Start:          cursor,
				TruncatedEnd:   last && iv.TruncatedEnd,
				TruncatedStart: first && iv.TruncatedStart,
			})
			cursor = next
			first = false
		}
	}
	return out
}

// SliceSegments splits every segment at each boundary it crosses
func SliceSegments(segments []Segment, boundary Boundary) []Segment {
	var out []Segment
	for _, s := range segments {
		cursor := s.Start
		for cursor.Before(s.End) {
			next := boundary(cursor)
			if next.After(s.End) {
				next = s.End
			}
			out = append(out, Segment{Active: s.Active, End: next, Start: cursor, Value: s.Value})
			cursor = next
		}
	}
	return out
}

// Weekday returns the Monday-based weekday (0 = Monday .. 6 = Sunday) of t
func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
