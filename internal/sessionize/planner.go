package sessionize

import (
	"sort"
	"time"

	"github.com/renato0307/tally/internal/domain"
)

// NextBounds computes the candidate creation range of the next run.
// It returns false when no window has closed since the previous run.
func NextBounds(prev *domain.SessionizationRun, lastWindowEnd time.Time, cfg Config) (time.Time, time.Time, bool) {
	if prev == nil {
		return lastWindowEnd.Add(-cfg.WindowLength), lastWindowEnd, true
	}
	if !lastWindowEnd.After(prev.CandidateCreationEnd) {
		return time.Time{}, time.Time{}, false
	}

	end := prev.CandidateCreationEnd.Add(cfg.WindowLength)
	if lastWindowEnd.Before(end) {
		end = lastWindowEnd
	}
	return prev.NextStart(), end, true
}

// RunInput is everything a run needs to decide its outcome
type RunInput struct {
	Carry    []Group
	Config   Config
	End      time.Time
	Previous *domain.SessionizationRun
	Spans    []Span
}

// RunPlan is the outcome of one run before persistence
type RunPlan struct {
	Candidates       []Group
	FinalizedHorizon *time.Time
	OverlapStart     *time.Time
	RightTailEnd     *time.Time
	Sessions         []Window
}

// Plan runs island extraction, grouping, selection and finalization for one range.
// The result only depends on the input.
func Plan(in RunInput) RunPlan {
	var plan RunPlan
	if len(in.Spans) == 0 {
		return plan
	}

	var prevTail *time.Time
	if in.Previous != nil {
		prevTail = in.Previous.RightTailEnd
	}

	for _, island := range ExtractIslands(in.Spans, in.End, prevTail, in.Config) {
		groups := Propose(island.Spans, carryFor(in.Carry, island.Spans), in.Config)

		if !island.RightConnected {
			plan.Sessions = append(plan.Sessions, SelectSessions(island.Spans, groups, in.Config)...)
			continue
		}

		islandSpan := in.End.Sub(island.Start())
		overlap := in.Config.MaxOverlap
		if islandSpan < overlap {
			overlap = islandSpan
		}
		cut := in.End.Add(-overlap)
		horizon := island.Start()
		rescanFrom := cut

		var deferred []int64
		if islandSpan > in.Config.MaxOverlap {
			var sessions []Window
			sessions, deferred = FinalizeRightConnected(island.Spans, groups, cut, in.Config)
			plan.Sessions = append(plan.Sessions, sessions...)
			horizon = cut
		}

		keep := make(map[int64]bool)
		for _, s := range island.Spans {
			if s.End.After(cut) {
				keep[s.ActivityID] = true
			}
		}
		for _, id := range deferred {
			keep[id] = true
		}
		for _, s := range island.Spans {
			if keep[s.ActivityID] && s.Start.Before(rescanFrom) {
				rescanFrom = s.Start
			}
		}

		plan.Candidates = append(plan.Candidates, restrict(groups, keep)...)
		tail := island.End()
		plan.FinalizedHorizon = &horizon
		plan.OverlapStart = &rescanFrom
		plan.RightTailEnd = &tail
	}

	return plan
}

// FinalizeRightConnected selects the sessions that can no longer change on a
// right-connected island cut at F.
//
// A group wholly left of F is safe. A group crossing F is safe only when its
// left and right members are more than MaxGap apart. Safe left parts are
// selected on the prefix of the island ending at or before F. Left members of
// unsafe groups are returned as deferred so the next run re-scans them.
func FinalizeRightConnected(spans []Span, groups []Group, cut time.Time, cfg Config) ([]Window, []int64) {
	byID := make(map[int64]Span, len(spans))
	var prefix []Span
	for _, s := range spans {
		byID[s.ActivityID] = s
		if !s.End.After(cut) {
			prefix = append(prefix, s)
		}
	}

	var safe []Group
	var deferred []int64
	for _, g := range groups {
		var left, right []Span
		for _, id := range g.ActivityIDs {
			s, ok := byID[id]
			if !ok {
				continue
			}
			if !s.End.After(cut) {
				left = append(left, s)
			} else {
				right = append(right, s)
			}
		}
		if len(left) == 0 {
			continue
		}

		if len(right) > 0 && earliestStart(right).Sub(maxEnd(left)) <= cfg.MaxGap {
			for _, s := range left {
				deferred = append(deferred, s.ActivityID)
			}
			continue
		}

		sortSpans(left)
		ids := make([]int64, 0, len(left))
		for _, s := range left {
			ids = append(ids, s.ActivityID)
		}
		safe = append(safe, Group{ActivityIDs: ids, Name: g.Name, PublicID: g.PublicID})
	}

	if len(prefix) == 0 || len(safe) == 0 {
		return nil, deferred
	}
	return SelectSessions(prefix, safe, cfg), deferred
}

func earliestStart(spans []Span) time.Time {
	start := spans[0].Start
	for _, s := range spans[1:] {
		if s.Start.Before(start) {
			start = s.Start
		}
	}
	return start
}

// carryFor keeps the carry-over members present in spans
func carryFor(carry []Group, spans []Span) []Group {
	present := make(map[int64]bool, len(spans))
	for _, s := range spans {
		present[s.ActivityID] = true
	}
	return restrict(carry, present)
}

// restrict keeps only the members in keep and drops emptied groups
func restrict(groups []Group, keep map[int64]bool) []Group {
	var out []Group
	for _, g := range groups {
		var ids []int64
		for _, id := range g.ActivityIDs {
			if keep[id] {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			continue
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		out = append(out, Group{ActivityIDs: ids, Name: g.Name, PublicID: g.PublicID})
	}
	return out
}
