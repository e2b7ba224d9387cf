// Package goals evaluates versioned goal definitions over calendar periods.
// Everything here is pure: callers pass the evaluation instant, the event log
// and the pause log.
package goals

import (
	"fmt"
	"sort"
	"time"

	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/intervals"
)

// Period is a half-open [Start, End) calendar period
type Period struct {
	End   time.Time
	Start time.Time
}

// Contains reports whether t falls inside the period
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// PeriodBounds returns the period of kind containing t, computed in loc.
// Days start at local midnight, weeks on Monday and months on the 1st.
func PeriodBounds(kind domain.GoalPeriod, loc *time.Location, t time.Time) (Period, error) {
	lt := t.In(loc)
	y, m, d := lt.Date()

	switch kind {
	case domain.PeriodDay:
		return Period{
			End:   time.Date(y, m, d+1, 0, 0, 0, 0, loc),
			Start: time.Date(y, m, d, 0, 0, 0, 0, loc),
		}, nil
	case domain.PeriodWeek:
		monday := d - intervals.Weekday(lt)
		return Period{
			End:   time.Date(y, m, monday+7, 0, 0, 0, 0, loc),
			Start: time.Date(y, m, monday, 0, 0, 0, 0, loc),
		}, nil
	case domain.PeriodMonth:
		return Period{
			End:   time.Date(y, m+1, 1, 0, 0, 0, 0, loc),
			Start: time.Date(y, m, 1, 0, 0, 0, 0, loc),
		}, nil
	default:
		return Period{}, fmt.Errorf("unknown goal period %q", kind)
	}
}

// LastCompletePeriods returns the n periods before the one containing t, most recent first
func LastCompletePeriods(kind domain.GoalPeriod, loc *time.Location, t time.Time, n int) ([]Period, error) {
	current, err := PeriodBounds(kind, loc, t)
	if err != nil {
		return nil, err
	}

	out := make([]Period, 0, n)
	cursor := current.Start
	for i := 0; i < n; i++ {
		p, err := PeriodBounds(kind, loc, cursor.Add(-time.Nanosecond))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
		cursor = p.Start
	}
	return out, nil
}

// ActiveDefinition picks the definition with the latest EffectiveFrom at or before t
func ActiveDefinition(defs []domain.GoalDefinition, t time.Time) (domain.GoalDefinition, error) {
	var best *domain.GoalDefinition
	for i := range defs {
		d := &defs[i]
		if d.EffectiveFrom.After(t) {
			continue
		}
		if best == nil || d.EffectiveFrom.After(best.EffectiveFrom) ||
			(d.EffectiveFrom.Equal(best.EffectiveFrom) && d.ID > best.ID) {
			best = d
		}
	}
	if best == nil {
		return domain.GoalDefinition{}, domain.ErrNoActiveDefinition
	}
	return *best, nil
}

// Range is a half-open [Start, End) span used for pause windows and filter windows
type Range struct {
	End   time.Time
	Start time.Time
}

// Duration returns the length of the range
func (r Range) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// mergeRanges sorts ranges and merges overlapping or touching ones
func mergeRanges(ranges []Range) []Range {
	if len(ranges) == 0 {
		return nil
	}
	sorted := make([]Range, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	out := []Range{sorted[0]}
	for _, r := range sorted[1:] {
		last := &out[len(out)-1]
		if !r.Start.After(last.End) {
			if r.End.After(last.End) {
				last.End = r.End
			}
			continue
		}
		out = append(out, r)
	}
	return out
}

func totalDuration(ranges []Range) time.Duration {
	var total time.Duration
	for _, r := range ranges {
		total += r.Duration()
	}
	return total
}
