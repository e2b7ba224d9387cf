package sessionize

import (
	"sort"
	"time"
)

// Window is a contiguous stretch of an island selected for one group
type Window struct {
	ActivityIDs []int64
	End         time.Time
	Name        string
	Purity      float64
	PublicID    string
	Start       time.Time
}

// Duration returns the wall-clock length of the window
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

type islandArrays struct {
	ends   []time.Time
	ids    []int64
	secs   []float64
	starts []time.Time
}

func newIslandArrays(spans []Span) islandArrays {
	sorted := make([]Span, len(spans))
	copy(sorted, spans)
	sortSpans(sorted)

	a := islandArrays{
		ends:   make([]time.Time, len(sorted)),
		ids:    make([]int64, len(sorted)),
		secs:   make([]float64, len(sorted)),
		starts: make([]time.Time, len(sorted)),
	}
	for i, s := range sorted {
		a.ends[i] = s.End
		a.ids[i] = s.ActivityID
		a.secs[i] = s.ActiveSeconds
		a.starts[i] = s.Start
	}
	return a
}

// bestWindow runs a two-pointer search over the island for the longest window
// (then the purest) whose members satisfy every session constraint.
// Non-members inside the window dilute its purity.
func (a islandArrays) bestWindow(members map[int64]bool, cfg Config) *Window {
	n := len(a.ids)
	if n == 0 {
		return nil
	}

	inc := make([]float64, n)
	flag := make([]int, n)
	for i, id := range a.ids {
		if members[id] {
			inc[i] = a.secs[i]
			flag[i] = 1
		}
	}

	// gapOK reports whether consecutive members in [l, r] are within MaxGap,
	// otherwise the index the left pointer has to move past.
	gapOK := func(l, r int) (bool, int) {
		prev := -1
		for i := l; i <= r; i++ {
			if flag[i] == 0 {
				continue
			}
			if prev >= 0 && a.starts[i].Sub(a.ends[prev]) > cfg.MaxGap {
				return false, prev + 1
			}
			prev = i
		}
		return true, l
	}

	var best *Window
	l := 0
	sum := 0.0
	count := 0
	drop := func() {
		sum -= inc[l]
		count -= flag[l]
		l++
	}

	for r := 0; r < n; r++ {
		sum += inc[r]
		count += flag[r]

		for l <= r {
			span := a.ends[r].Sub(a.starts[l])
			if span <= 0 {
				drop()
				continue
			}

			purity := sum / span.Seconds()
			if purity > 1 {
				purity = 1
			}
			if purity < cfg.MinPurity {
				drop()
				continue
			}

			if ok, next := gapOK(l, r); !ok {
				for l < next {
					drop()
				}
				continue
			}

			if count >= cfg.MinActivities && span >= cfg.MinLength {
				if best == nil || span > best.Duration() || (span == best.Duration() && purity > best.Purity) {
					ids := make([]int64, 0, count)
					for i := l; i <= r; i++ {
						if flag[i] == 1 {
							ids = append(ids, a.ids[i])
						}
					}
					best = &Window{ActivityIDs: ids, End: a.ends[r], Purity: purity, Start: a.starts[l]}
				}
			}
			break
		}
	}
	return best
}

// windowsForGroup extracts every window of a group that is disjoint in activities
func (a islandArrays) windowsForGroup(g Group, cfg Config) []Window {
	remaining := make(map[int64]bool, len(g.ActivityIDs))
	for _, id := range g.ActivityIDs {
		remaining[id] = true
	}

	var out []Window
	for len(remaining) > 0 {
		w := a.bestWindow(remaining, cfg)
		if w == nil || len(w.ActivityIDs) == 0 {
			break
		}
		w.Name = g.Name
		w.PublicID = g.PublicID
		out = append(out, *w)
		for _, id := range w.ActivityIDs {
			delete(remaining, id)
		}
	}
	return out
}

// SelectSessions validates the groups against the island and picks a set of
// windows that share no activity, greedily maximising covered activity time.
// Ties break on purity, then on window length.
func SelectSessions(spans []Span, groups []Group, cfg Config) []Window {
	arrays := newIslandArrays(spans)

	secs := make(map[int64]float64, len(arrays.ids))
	for i, id := range arrays.ids {
		secs[id] = arrays.secs[i]
	}

	var candidates []Window
	for _, g := range groups {
		candidates = append(candidates, arrays.windowsForGroup(g, cfg)...)
	}

	covered := make(map[int64]bool)
	gain := func(w Window) float64 {
		total := 0.0
		for _, id := range w.ActivityIDs {
			if !covered[id] {
				total += secs[id]
			}
		}
		return total
	}

	var chosen []Window
	for len(candidates) > 0 {
		bestIdx := 0
		bestGain := gain(candidates[0])
		for i := 1; i < len(candidates); i++ {
			g := gain(candidates[i])
			c, b := candidates[i], candidates[bestIdx]
			if g > bestGain ||
				(g == bestGain && c.Purity > b.Purity) ||
				(g == bestGain && c.Purity == b.Purity && c.Duration() > b.Duration()) {
				bestIdx, bestGain = i, g
			}
		}
		if bestGain <= 0 {
			break
		}

		picked := candidates[bestIdx]
		chosen = append(chosen, picked)
		for _, id := range picked.ActivityIDs {
			covered[id] = true
		}

		rest := candidates[:0:0]
		for i, w := range candidates {
			if i == bestIdx || sharesActivity(w, covered) {
				continue
			}
			rest = append(rest, w)
		}
		candidates = rest
	}

	sort.SliceStable(chosen, func(i, j int) bool { return chosen[i].Start.Before(chosen[j].Start) })
	return chosen
}

func sharesActivity(w Window, covered map[int64]bool) bool {
	for _, id := range w.ActivityIDs {
		if covered[id] {
			return true
		}
	}
	return false
}
