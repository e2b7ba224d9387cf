package sessionize

import "time"

// Island is a maximal run of spans with no gap larger than MaxGap
type Island struct {
	LeftConnected  bool
	RightConnected bool
	Spans          []Span
}

// Start returns the earliest span start
func (i Island) Start() time.Time {
	return i.Spans[0].Start
}

// End returns the latest span end
func (i Island) End() time.Time {
	return maxEnd(i.Spans)
}

// ExtractIslands partitions spans into islands.
//
// The first island is left-connected when it starts within MaxGap of the
// previous run's right tail. The last island is right-connected unless it ends
// more than MaxGap before runEnd. Middle islands that cannot hold a session are dropped.
func ExtractIslands(spans []Span, runEnd time.Time, prevRightTailEnd *time.Time, cfg Config) []Island {
	if len(spans) == 0 {
		return nil
	}
	sorted := make([]Span, len(spans))
	copy(sorted, spans)
	sortSpans(sorted)

	var groups [][]Span
	current := []Span{sorted[0]}
	currentEnd := sorted[0].End
	for _, s := range sorted[1:] {
		if s.Start.Sub(currentEnd) <= cfg.MaxGap {
			current = append(current, s)
			if s.End.After(currentEnd) {
				currentEnd = s.End
			}
			continue
		}
		groups = append(groups, current)
		current = []Span{s}
		currentEnd = s.End
	}
	groups = append(groups, current)

	leftConnected := prevRightTailEnd != nil && sorted[0].Start.Sub(*prevRightTailEnd) <= cfg.MaxGap
	rightConnected := runEnd.Sub(maxEnd(groups[len(groups)-1])) <= cfg.MaxGap

	if len(groups) == 1 {
		return []Island{{LeftConnected: leftConnected, RightConnected: rightConnected, Spans: groups[0]}}
	}

	islands := []Island{{LeftConnected: leftConnected, Spans: groups[0]}}
	for _, g := range groups[1 : len(groups)-1] {
		if canHoldSession(g, cfg) {
			islands = append(islands, Island{Spans: g})
		}
	}
	islands = append(islands, Island{RightConnected: rightConnected, Spans: groups[len(groups)-1]})
	return islands
}

func canHoldSession(spans []Span, cfg Config) bool {
	if len(spans) < cfg.MinActivities {
		return false
	}
	return maxEnd(spans).Sub(spans[0].Start) >= cfg.MinLength
}
