package sessionize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tally/internal/domain"
)

func at(hh, mm int) time.Time {
	return time.Date(2025, 3, 3, hh, mm, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

func newSpan(id int64, start, end time.Time, tags ...string) Span {
	return Span{
		ActiveSeconds: end.Sub(start).Seconds(),
		ActivityID:    id,
		End:           end,
		Name:          "activity",
		Start:         start,
		Tags:          tags,
	}
}

func TestNextBounds(t *testing.T) {
	cfg := DefaultConfig()

	start, end, ok := NextBounds(nil, at(10, 0), cfg)
	require.True(t, ok)
	assert.Equal(t, at(9, 30), start)
	assert.Equal(t, at(10, 0), end)

	prev := &domain.SessionizationRun{CandidateCreationEnd: at(10, 0), OverlapStart: ptr(at(9, 45))}

	_, _, ok = NextBounds(prev, at(10, 0), cfg)
	assert.False(t, ok, "no window closed since the previous run")

	start, end, ok = NextBounds(prev, at(10, 5), cfg)
	require.True(t, ok)
	assert.Equal(t, at(9, 45), start, "next run starts at the previous overlap start")
	assert.Equal(t, at(10, 5), end)

	start, end, ok = NextBounds(&domain.SessionizationRun{CandidateCreationEnd: at(10, 0)}, at(12, 0), cfg)
	require.True(t, ok)
	assert.Equal(t, at(10, 0), start)
	assert.Equal(t, at(10, 30), end)
}

func TestBuildSpans(t *testing.T) {
	activities := []domain.Activity{
		{ID: 1, Name: "editor", Tags: []string{"code"}},
		{ID: 2, Name: "browser"},
		{ID: 3, Name: "idle"},
	}
	events := map[int64][]domain.ActivityEvent{
		1: {
			{ActivityID: 1, EventTime: at(9, 0), EventType: domain.EventOpen},
			{ActivityID: 1, EventTime: at(9, 10), EventType: domain.EventClose},
			{ActivityID: 1, EventTime: at(9, 20), EventType: domain.EventOpen},
			{ActivityID: 1, EventTime: at(9, 25), EventType: domain.EventClose},
		},
		2: {
			{ActivityID: 2, EventTime: at(9, 50), EventType: domain.EventOpen},
		},
	}

	spans, err := BuildSpans(activities, events, at(9, 0), at(10, 0))

	require.NoError(t, err)
	require.Len(t, spans, 2)
	assert.Equal(t, int64(1), spans[0].ActivityID)
	assert.Equal(t, at(9, 25), spans[0].End)
	assert.Equal(t, 900.0, spans[0].ActiveSeconds)
	assert.Equal(t, []string{"code"}, spans[0].Tags)
	assert.Equal(t, at(10, 0), spans[1].End, "ongoing activity closes at the run end")
}

func TestExtractIslands(t *testing.T) {
	spans := []Span{
		newSpan(4, at(10, 10), at(10, 20)),
		newSpan(1, at(9, 0), at(9, 10)),
		newSpan(2, at(9, 12), at(9, 20)),
		newSpan(3, at(9, 40), at(9, 45)),
	}

	islands := ExtractIslands(spans, at(10, 25), ptr(at(8, 55)), DefaultConfig())

	require.Len(t, islands, 2, "the single-activity middle island cannot hold a session")
	assert.True(t, islands[0].LeftConnected)
	assert.False(t, islands[0].RightConnected)
	assert.Len(t, islands[0].Spans, 2)
	assert.Equal(t, at(9, 0), islands[0].Start())
	assert.Equal(t, at(9, 20), islands[0].End())

	assert.False(t, islands[1].LeftConnected)
	assert.True(t, islands[1].RightConnected)
	assert.Equal(t, int64(4), islands[1].Spans[0].ActivityID)
}

func TestExtractIslands_RightIsolated(t *testing.T) {
	spans := []Span{newSpan(1, at(9, 0), at(9, 10))}

	islands := ExtractIslands(spans, at(9, 30), nil, DefaultConfig())

	require.Len(t, islands, 1)
	assert.False(t, islands[0].LeftConnected)
	assert.False(t, islands[0].RightConnected)
}

func proposalSpans() []Span {
	d := newSpan(4, at(9, 16), at(9, 25))
	d.Name = "Terminal"
	e := newSpan(5, at(9, 18), at(9, 30))
	e.Name = "Finder"
	return []Span{
		newSpan(1, at(9, 0), at(9, 10), "code", "go"),
		newSpan(2, at(9, 5), at(9, 15), "chat"),
		newSpan(3, at(9, 12), at(9, 20), "code"),
		d,
		e,
	}
}

func TestPropose_GroupsByTagAffinity(t *testing.T) {
	groups := Propose(proposalSpans(), nil, DefaultConfig())

	expected := []Group{
		{ActivityIDs: []int64{1, 3}, Name: "code"},
		{ActivityIDs: []int64{2}, Name: "chat"},
		{ActivityIDs: []int64{4, 5}, Name: "Finder"},
	}
	assert.Equal(t, expected, groups)
}

func TestPropose_SeedsCarryOverGroups(t *testing.T) {
	carry := []Group{{ActivityIDs: []int64{3, 2, 99}, Name: "review", PublicID: "abc"}}

	groups := Propose(proposalSpans(), carry, DefaultConfig())

	expected := []Group{
		{ActivityIDs: []int64{2, 3}, Name: "review", PublicID: "abc"},
		{ActivityIDs: []int64{1}, Name: "code"},
		{ActivityIDs: []int64{4, 5}, Name: "Finder"},
	}
	assert.Equal(t, expected, groups)
}

func TestPropose_RespectsMaxGap(t *testing.T) {
	spans := []Span{
		newSpan(1, at(9, 0), at(9, 10), "code"),
		newSpan(2, at(9, 30), at(9, 40), "code"),
	}

	groups := Propose(spans, nil, DefaultConfig())

	assert.Len(t, groups, 2)
}

func contiguous() []Span {
	return []Span{
		newSpan(1, at(9, 0), at(9, 10), "code"),
		newSpan(2, at(9, 10), at(9, 20), "code"),
		newSpan(3, at(9, 20), at(9, 30), "code"),
		newSpan(4, at(9, 30), at(9, 40), "music"),
	}
}

func TestSelectSessions_PurityBoundsTheWindow(t *testing.T) {
	windows := SelectSessions(contiguous(), []Group{{ActivityIDs: []int64{1, 2, 3}, Name: "code"}}, DefaultConfig())

	require.Len(t, windows, 1)
	assert.Equal(t, []int64{1, 2, 3}, windows[0].ActivityIDs)
	assert.Equal(t, at(9, 0), windows[0].Start)
	assert.Equal(t, at(9, 30), windows[0].End)
	assert.Equal(t, 1.0, windows[0].Purity)
	assert.Equal(t, "code", windows[0].Name)
}

func TestSelectSessions_MinActivities(t *testing.T) {
	windows := SelectSessions(contiguous(), []Group{{ActivityIDs: []int64{1, 2}}}, DefaultConfig())

	assert.Empty(t, windows)
}

func TestSelectSessions_GreedyPicksLargestCoverage(t *testing.T) {
	groups := []Group{
		{ActivityIDs: []int64{1, 2, 3}, Name: "small"},
		{ActivityIDs: []int64{1, 2, 3, 4}, Name: "large"},
	}

	windows := SelectSessions(contiguous(), groups, DefaultConfig())

	require.Len(t, windows, 1)
	assert.Equal(t, "large", windows[0].Name)
	assert.Equal(t, []int64{1, 2, 3, 4}, windows[0].ActivityIDs)
}

func TestSelectSessions_GapSplitsWindows(t *testing.T) {
	spans := []Span{
		newSpan(1, at(9, 0), at(9, 10)),
		newSpan(2, at(9, 10), at(9, 20)),
		newSpan(3, at(9, 20), at(9, 30)),
		newSpan(4, at(10, 0), at(10, 10)),
		newSpan(5, at(10, 10), at(10, 20)),
		newSpan(6, at(10, 20), at(10, 30)),
	}

	windows := SelectSessions(spans, []Group{{ActivityIDs: []int64{1, 2, 3, 4, 5, 6}}}, DefaultConfig())

	require.Len(t, windows, 2)
	assert.Equal(t, []int64{1, 2, 3}, windows[0].ActivityIDs)
	assert.Equal(t, []int64{4, 5, 6}, windows[1].ActivityIDs)
}

func TestFinalizeRightConnected_SafeWhenRightPartCannotBridge(t *testing.T) {
	spans := []Span{
		newSpan(1, at(9, 0), at(9, 10)),
		newSpan(2, at(9, 10), at(9, 20)),
		newSpan(3, at(9, 20), at(9, 30)),
		newSpan(4, at(9, 50), at(10, 0)),
	}
	groups := []Group{{ActivityIDs: []int64{1, 2, 3, 4}, Name: "work"}}

	sessions, deferred := FinalizeRightConnected(spans, groups, at(9, 45), DefaultConfig())

	require.Len(t, sessions, 1)
	assert.Equal(t, []int64{1, 2, 3}, sessions[0].ActivityIDs)
	assert.Empty(t, deferred)
}

func TestFinalizeRightConnected_UnsafeWhenBridgeIsPossible(t *testing.T) {
	spans := []Span{
		newSpan(1, at(9, 0), at(9, 10)),
		newSpan(2, at(9, 10), at(9, 20)),
		newSpan(3, at(9, 20), at(9, 30)),
		newSpan(4, at(9, 35), at(10, 0)),
	}
	groups := []Group{{ActivityIDs: []int64{1, 2, 3, 4}, Name: "work"}}

	sessions, deferred := FinalizeRightConnected(spans, groups, at(9, 45), DefaultConfig())

	assert.Empty(t, sessions)
	assert.Equal(t, []int64{1, 2, 3}, deferred)
}

func TestPlan_RightIsolatedIslandFinalizesEverything(t *testing.T) {
	plan := Plan(RunInput{
		Config: DefaultConfig(),
		End:    at(10, 0),
		Spans:  contiguous()[:3],
	})

	require.Len(t, plan.Sessions, 1)
	assert.Equal(t, []int64{1, 2, 3}, plan.Sessions[0].ActivityIDs)
	assert.Equal(t, "code", plan.Sessions[0].Name)
	assert.Empty(t, plan.Candidates)
	assert.Nil(t, plan.FinalizedHorizon)
	assert.Nil(t, plan.OverlapStart)
	assert.Nil(t, plan.RightTailEnd)
}

func TestPlan_RightConnectedIslandDefersBridgingGroup(t *testing.T) {
	spans := []Span{
		newSpan(1, at(9, 0), at(9, 20), "code"),
		newSpan(2, at(9, 20), at(9, 35), "code"),
		newSpan(3, at(9, 35), at(9, 50), "code"),
		newSpan(4, at(9, 50), at(10, 0), "code"),
	}

	plan := Plan(RunInput{Config: DefaultConfig(), End: at(10, 0), Spans: spans})

	assert.Empty(t, plan.Sessions)
	require.Len(t, plan.Candidates, 1)
	assert.Equal(t, []int64{1, 2, 3, 4}, plan.Candidates[0].ActivityIDs)
	assert.Equal(t, at(9, 45), *plan.FinalizedHorizon)
	assert.Equal(t, at(9, 0), *plan.OverlapStart, "deferred members are re-scanned")
	assert.Equal(t, at(10, 0), *plan.RightTailEnd)
}

func TestPlan_RightConnectedIslandFinalizesSafePrefix(t *testing.T) {
	spans := []Span{
		newSpan(1, at(9, 0), at(9, 10), "code"),
		newSpan(2, at(9, 10), at(9, 20), "code"),
		newSpan(3, at(9, 20), at(9, 30), "code"),
		newSpan(4, at(9, 38), at(10, 0), "music"),
	}

	plan := Plan(RunInput{Config: DefaultConfig(), End: at(10, 0), Spans: spans})

	require.Len(t, plan.Sessions, 1)
	assert.Equal(t, []int64{1, 2, 3}, plan.Sessions[0].ActivityIDs)
	require.Len(t, plan.Candidates, 1)
	assert.Equal(t, Group{ActivityIDs: []int64{4}, Name: "music"}, plan.Candidates[0])
	assert.Equal(t, at(9, 45), *plan.FinalizedHorizon)
	assert.Equal(t, at(9, 38), *plan.OverlapStart)
	assert.Equal(t, at(10, 0), *plan.RightTailEnd)
}

func TestPlan_ShortRightConnectedIslandIsDeferred(t *testing.T) {
	spans := []Span{newSpan(1, at(9, 50), at(10, 0), "code")}

	plan := Plan(RunInput{Config: DefaultConfig(), End: at(10, 0), Spans: spans})

	assert.Empty(t, plan.Sessions)
	require.Len(t, plan.Candidates, 1)
	assert.Equal(t, at(9, 50), *plan.FinalizedHorizon)
	assert.Equal(t, at(9, 50), *plan.OverlapStart)
}

func TestPlan_IsDeterministic(t *testing.T) {
	in := RunInput{
		Carry:  []Group{{ActivityIDs: []int64{2}, Name: "carried", PublicID: "p1"}},
		Config: DefaultConfig(),
		End:    at(10, 0),
		Spans:  append(proposalSpans(),
			newSpan(6, at(9, 32), at(9, 45), "code"),
			newSpan(7, at(9, 45), at(9, 58), "code", "go"),
			newSpan(8, at(9, 50), at(10, 0), "chat"),
		),
	}

	first := Plan(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Plan(in))
	}
}

func TestGroupsFromCandidates(t *testing.T) {
	groups := GroupsFromCandidates([]domain.CandidateSession{{ActivityIDs: []int64{5, 6}, Name: "n", PublicID: "x"}})

	assert.Equal(t, []Group{{ActivityIDs: []int64{5, 6}, Name: "n", PublicID: "x"}}, groups)
}
