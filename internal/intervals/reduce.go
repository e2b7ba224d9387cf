package intervals

import (
	"sort"
	"time"
)

// Spanner is anything occupying a [start, end) span of time
type Spanner interface {
	Span() (time.Time, time.Time)
}

// Segment is a sub-range of the timeline with a single effective value
type Segment struct {
	Active bool
	End    time.Time
	Start  time.Time
	Value  float64
}

// Span implements Spanner
func (s Segment) Span() (time.Time, time.Time) {
	return s.Start, s.End
}

// Duration returns the length of the segment
func (s Segment) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

type endpoint struct {
	at    time.Time
	open  bool
	value float64
}

// ReduceMaxConcurrency sweeps over every endpoint of items and returns the
// timeline between the first and last endpoint. Each segment carries the max
// value of the items covering it, or Active=false and 0 when none does.
// Adjacent segments with equal state are merged.
func ReduceMaxConcurrency[T Spanner](items []T, valueOf func(T) float64) []Segment {
	points := make([]endpoint, 0, len(items)*2)
	for _, item := range items {
		start, end := item.Span()
		if !end.After(start) {
			continue
		}
		v := valueOf(item)
		points = append(points,
			endpoint{at: start, open: true, value: v},
			endpoint{at: end, open: false, value: v},
		)
	}
	if len(points) == 0 {
		return nil
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].at.Before(points[j].at)
	})

	// multiset of currently open values
	active := make(map[float64]int)
	var out []Segment

	for i := 0; i < len(points); {
		at := points[i].at
		for i < len(points) && points[i].at.Equal(at) {
			p := points[i]
			if p.open {
				active[p.value]++
			} else if active[p.value] > 1 {
				active[p.value]--
			} else {
				delete(active, p.value)
			}
			i++
		}
		if i == len(points) {
			break
		}

		v, ok := maxActive(active)
		seg := Segment{Active: ok, End: points[i].at, Start: at, Value: v}

		if n := len(out); n > 0 && out[n-1].Active == seg.Active && out[n-1].Value == seg.Value && out[n-1].End.Equal(seg.Start) {
			out[n-1].End = seg.End
			continue
		}
		out = append(out, seg)
	}

	return out
}

func maxActive(active map[float64]int) (float64, bool) {
	found := false
	var best float64
	for v := range active {
		if !found || v > best {
			best = v
			found = true
		}
	}
	return best, found
}

// ValueAt returns the effective value at instant t (0 and false outside any active segment)
func ValueAt(segments []Segment, t time.Time) (float64, bool) {
	i := sort.Search(len(segments), func(i int) bool {
		return segments[i].End.After(t)
	})
	if i == len(segments) || t.Before(segments[i].Start) {
		return 0, false
	}
	if !segments[i].Active {
		return 0, false
	}
	return segments[i].Value, true
}

// ActiveDuration sums the length of active segments
func ActiveDuration(segments []Segment) time.Duration {
	var total time.Duration
	for _, s := range segments {
		if s.Active {
			total += s.Duration()
		}
	}
	return total
}

// WeightedMean returns the duration-weighted mean value of the active segments
func WeightedMean(segments []Segment) float64 {
	var weighted, secs float64
	for _, s := range segments {
		if !s.Active {
			continue
		}
		d := s.Duration().Seconds()
		weighted += d * s.Value
		secs += d
	}
	if secs == 0 {
		return 0
	}
	return weighted / secs
}

// Union reduces spans to their covered time, ignoring values
func Union[T Spanner](items []T) []Segment {
	return ReduceMaxConcurrency(items, func(T) float64 { return 1 })
}
