package sessionize

import (
	"sort"
	"time"

	"github.com/renato0307/tally/internal/domain"
)

// Group is a proposed set of related activities, possibly carried over from a previous run
type Group struct {
	ActivityIDs []int64
	Name        string
	PublicID    string
}

// GroupsFromCandidates turns persisted candidates into carry-over groups
func GroupsFromCandidates(candidates []domain.CandidateSession) []Group {
	groups := make([]Group, 0, len(candidates))
	for _, c := range candidates {
		ids := make([]int64, len(c.ActivityIDs))
		copy(ids, c.ActivityIDs)
		groups = append(groups, Group{ActivityIDs: ids, Name: c.Name, PublicID: c.PublicID})
	}
	return groups
}

type openGroup struct {
	carried  bool
	end      time.Time
	members  []Span
	name     string
	publicID string
	tags     map[string]bool
}

func (g *openGroup) add(s Span) {
	g.members = append(g.members, s)
	if s.End.After(g.end) {
		g.end = s.End
	}
	for _, t := range s.Tags {
		g.tags[t] = true
	}
}

// affinity is the Jaccard index of the tag sets. Untagged spans only match untagged groups.
func (g *openGroup) affinity(s Span) float64 {
	if len(s.Tags) == 0 || len(g.tags) == 0 {
		if len(s.Tags) == 0 && len(g.tags) == 0 {
			return 1
		}
		return 0
	}

	seen := make(map[string]bool, len(s.Tags))
	inter := 0
	for _, t := range s.Tags {
		if seen[t] {
			continue
		}
		seen[t] = true
		if g.tags[t] {
			inter++
		}
	}
	union := len(g.tags) + len(seen) - inter
	return float64(inter) / float64(union)
}

// Propose groups spans by tag affinity and time proximity.
//
// Carry-over groups are seeded first with their members found in spans. The
// remaining spans are visited in (start, activity id) order and each joins the
// reachable group with the best affinity, or starts a new one.
func Propose(spans []Span, carry []Group, cfg Config) []Group {
	sorted := make([]Span, len(spans))
	copy(sorted, spans)
	sortSpans(sorted)

	byID := make(map[int64]Span, len(sorted))
	for _, s := range sorted {
		byID[s.ActivityID] = s
	}

	var groups []*openGroup
	assigned := make(map[int64]bool)
	for _, c := range carry {
		g := &openGroup{carried: true, name: c.Name, publicID: c.PublicID, tags: map[string]bool{}}
		ids := make([]int64, len(c.ActivityIDs))
		copy(ids, c.ActivityIDs)
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		for _, id := range ids {
			s, ok := byID[id]
			if !ok || assigned[id] {
				continue
			}
			g.add(s)
			assigned[id] = true
		}
		if len(g.members) > 0 {
			groups = append(groups, g)
		}
	}

	for _, s := range sorted {
		if assigned[s.ActivityID] {
			continue
		}

		var best *openGroup
		bestAffinity := -1.0
		for _, g := range groups {
			if s.Start.Sub(g.end) > cfg.MaxGap {
				continue
			}
			if a := g.affinity(s); a > bestAffinity {
				best, bestAffinity = g, a
			}
		}

		if best == nil || bestAffinity < cfg.MinAffinity {
			best = &openGroup{tags: map[string]bool{}}
			groups = append(groups, best)
		}
		best.add(s)
		assigned[s.ActivityID] = true
	}

	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		ids := make([]int64, 0, len(g.members))
		for _, m := range g.members {
			ids = append(ids, m.ActivityID)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		name := g.name
		if !g.carried {
			name = groupName(g.members)
		}
		out = append(out, Group{ActivityIDs: ids, Name: name, PublicID: g.publicID})
	}
	return out
}

// groupName picks the most frequent tag (ties broken lexically), or the
// name of the longest member when no member is tagged.
func groupName(members []Span) string {
	counts := make(map[string]int)
	for _, m := range members {
		seen := make(map[string]bool, len(m.Tags))
		for _, t := range m.Tags {
			if !seen[t] {
				counts[t]++
				seen[t] = true
			}
		}
	}

	if len(counts) > 0 {
		best, bestCount := "", 0
		for t, n := range counts {
			if n > bestCount || (n == bestCount && t < best) {
				best, bestCount = t, n
			}
		}
		return best
	}

	longest := members[0]
	for _, m := range members[1:] {
		if m.ActiveSeconds > longest.ActiveSeconds {
			longest = m
		}
	}
	return longest.Name
}
