package goals

import (
	"time"

	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/intervals"
)

// ApplyCalendarFilters clips intervals to the weekdays and local times of day
// selected by filters. Intervals are first sliced at local midnights so that
// each piece belongs to exactly one local day.
func ApplyCalendarFilters(ivs []intervals.Interval, filters domain.GoalFilters, loc *time.Location) ([]intervals.Interval, error) {
	if filters.Days == nil && filters.Times == nil {
		return ivs, nil
	}

	var out []intervals.Interval
	for _, piece := range intervals.SliceByBoundary(ivs, intervals.NextDay(loc)) {
		local := piece.Start.In(loc)
		if filters.Days != nil && !filters.Days.Contains(intervals.Weekday(local)) {
			continue
		}
		if filters.Times == nil {
			out = append(out, piece)
			continue
		}

		windows, err := dayWindows(filters.Times, local, loc)
		if err != nil {
			return nil, err
		}
		out = append(out, intersect(piece, windows)...)
	}
	return out, nil
}

// dayWindows materialises the time-of-day ranges on the local day of t.
// A range ending at or before its start wraps midnight, covering the start
// of the day up to End and Start up to the end of the day.
func dayWindows(filter *domain.TimeFilter, t time.Time, loc *time.Location) ([]Range, error) {
	y, m, d := t.Date()
	at := func(c domain.ClockTime) time.Time {
		return time.Date(y, m, d, int(c)/60, int(c)%60, 0, 0, loc)
	}

	var windows []Range
	for _, r := range filter.Ranges {
		start, end, err := r.Bounds()
		if err != nil {
			return nil, err
		}
		if end > start {
			windows = append(windows, Range{End: at(end), Start: at(start)})
			continue
		}
		windows = append(windows,
			Range{End: at(end), Start: at(0)},
			Range{End: at(24 * 60), Start: at(start)},
		)
	}
	return mergeRanges(windows), nil
}

// intersect returns the parts of iv covered by the sorted, disjoint windows
func intersect(iv intervals.Interval, windows []Range) []intervals.Interval {
	var out []intervals.Interval
	for _, w := range windows {
		start, end := iv.Start, iv.End
		if w.Start.After(start) {
			start = w.Start
		}
		if w.End.Before(end) {
			end = w.End
		}
		if !end.After(start) {
			continue
		}
		out = append(out, intervals.Interval{
			End:            end,
			IsOngoing:      iv.IsOngoing && end.Equal(iv.End),
			Start:          start,
			TruncatedEnd:   iv.TruncatedEnd && end.Equal(iv.End),
			TruncatedStart: iv.TruncatedStart && start.Equal(iv.Start),
		})
	}
	return out
}

// Subtract removes the ranges from every interval
func Subtract(ivs []intervals.Interval, ranges []Range) []intervals.Interval {
	cuts := mergeRanges(ranges)
	if len(cuts) == 0 {
		return ivs
	}

	var out []intervals.Interval
	for _, iv := range ivs {
		cursor := iv.Start
		for _, c := range cuts {
			if !c.End.After(cursor) || !c.Start.Before(iv.End) {
				continue
			}
			if c.Start.After(cursor) {
				out = append(out, intervals.Interval{
					End:            c.Start,
					Start:          cursor,
					TruncatedStart: iv.TruncatedStart && cursor.Equal(iv.Start),
				})
			}
			cursor = c.End
		}
		if iv.End.After(cursor) {
			out = append(out, intervals.Interval{
				End:            iv.End,
				IsOngoing:      iv.IsOngoing,
				Start:          cursor,
				TruncatedEnd:   iv.TruncatedEnd,
				TruncatedStart: iv.TruncatedStart && cursor.Equal(iv.Start),
			})
		}
	}
	return out
}
