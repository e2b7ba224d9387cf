package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tally/internal/adapters/storage"
	"github.com/renato0307/tally/internal/config"
	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/intervals"
	"github.com/renato0307/tally/internal/sessionize"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func newStore(t *testing.T) *storage.SQLiteRepository {
	t.Helper()
	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "tally.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func jan(day, hh, mm int) time.Time {
	return time.Date(2025, 1, day, hh, mm, 0, 0, time.UTC)
}

func seed(t *testing.T, ingest *IngestService, activities []ActivityInput, events []EventInput) {
	t.Helper()
	ctx := context.Background()
	_, err := ingest.ImportActivities(ctx, activities)
	require.NoError(t, err)
	report, err := ingest.IngestBatch(ctx, events)
	require.NoError(t, err)
	require.Equal(t, len(events), report.Accepted)
}

func open(id int64, at time.Time) EventInput {
	return EventInput{ActivityID: id, EventTime: at, EventType: "open"}
}

func closeAt(id int64, at time.Time) EventInput {
	return EventInput{ActivityID: id, EventTime: at, EventType: "close"}
}

func newGoalStack(t *testing.T, clock *fixedClock) (*GoalService, *IngestService) {
	repo := newStore(t)
	options := config.GoalOptions{Backfill: 1, Concurrency: 2, ProgressTTL: 60 * time.Second}
	return NewGoalService(repo, repo, repo, repo, repo, clock, options),
		NewIngestService(repo, repo, repo, clock)
}

func durationGoal(effective time.Time) GoalInput {
	return GoalInput{
		Definition: DefinitionInput{EffectiveFrom: &effective, TargetValue: 1800},
		Metric:     "total_activity_duration",
		Name:       "Deep work",
		Operator:   "greater_than",
		Period:     "day",
		Timezone:   "UTC",
	}
}

func TestGoalEvaluation_ProgressInCurrentPeriod(t *testing.T) {
	ctx := context.Background()
	clock := &fixedClock{now: jan(6, 12, 0)}
	goalService, ingest := newGoalStack(t, clock)

	seed(t, ingest,
		[]ActivityInput{{ID: 1, Name: "editor", Productivity: "very_productive", Tags: []string{"code"}}},
		[]EventInput{open(1, jan(6, 9, 0)), closeAt(1, jan(6, 10, 0))})

	created, err := goalService.CreateGoal(ctx, durationGoal(jan(6, 0, 0)))
	require.NoError(t, err)

	status, err := goalService.EvaluateGoal(ctx, created.Goal.ID, false)
	require.NoError(t, err)

	assert.Empty(t, status.Closed)
	require.NotNil(t, status.Progress)
	assert.Equal(t, domain.EvalPartial, status.Progress.EvalState)
	assert.InDelta(t, 3600, status.Progress.MetricValue, 0.001)
	require.NotNil(t, status.Progress.Success)
	assert.True(t, *status.Progress.Success)

	results, err := goalService.ListResults(ctx, created.Goal.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestGoalEvaluation_ReusesFreshProgress(t *testing.T) {
	ctx := context.Background()
	clock := &fixedClock{now: jan(6, 12, 0)}
	goalService, ingest := newGoalStack(t, clock)

	seed(t, ingest,
		[]ActivityInput{{ID: 1, Name: "editor", Productivity: "very_productive"}},
		[]EventInput{open(1, jan(6, 9, 0)), closeAt(1, jan(6, 10, 0))})

	created, err := goalService.CreateGoal(ctx, durationGoal(jan(6, 0, 0)))
	require.NoError(t, err)
	_, err = goalService.EvaluateGoal(ctx, created.Goal.ID, false)
	require.NoError(t, err)

	_, err = ingest.IngestBatch(ctx, []EventInput{open(1, jan(6, 11, 0)), closeAt(1, jan(6, 11, 30))})
	require.NoError(t, err)

	clock.now = jan(6, 12, 0).Add(30 * time.Second)
	status, err := goalService.EvaluateGoal(ctx, created.Goal.ID, false)
	require.NoError(t, err)
	assert.InDelta(t, 3600, status.Progress.MetricValue, 0.001)

	clock.now = jan(6, 12, 0).Add(61 * time.Second)
	status, err = goalService.EvaluateGoal(ctx, created.Goal.ID, false)
	require.NoError(t, err)
	assert.InDelta(t, 5400, status.Progress.MetricValue, 0.001)
}

func TestGoalEvaluation_ForceBypassesFreshProgress(t *testing.T) {
	ctx := context.Background()
	clock := &fixedClock{now: jan(6, 12, 0)}
	goalService, ingest := newGoalStack(t, clock)

	seed(t, ingest,
		[]ActivityInput{{ID: 1, Name: "editor", Productivity: "productive"}},
		[]EventInput{open(1, jan(6, 9, 0)), closeAt(1, jan(6, 10, 0))})

	created, err := goalService.CreateGoal(ctx, durationGoal(jan(6, 0, 0)))
	require.NoError(t, err)
	_, err = goalService.EvaluateGoal(ctx, created.Goal.ID, false)
	require.NoError(t, err)

	_, err = ingest.IngestBatch(ctx, []EventInput{open(1, jan(6, 11, 0)), closeAt(1, jan(6, 11, 30))})
	require.NoError(t, err)

	clock.now = jan(6, 12, 0).Add(10 * time.Second)
	status, err := goalService.EvaluateGoal(ctx, created.Goal.ID, true)
	require.NoError(t, err)
	assert.InDelta(t, 5400, status.Progress.MetricValue, 0.001)
}

func TestGoalEvaluation_PausedPeriodGetsPlaceholder(t *testing.T) {
	ctx := context.Background()
	clock := &fixedClock{now: jan(5, 8, 0)}
	goalService, ingest := newGoalStack(t, clock)

	seed(t, ingest,
		[]ActivityInput{{ID: 1, Name: "editor", Productivity: "very_productive"}},
		[]EventInput{open(1, jan(5, 9, 0)), closeAt(1, jan(5, 11, 0))})

	created, err := goalService.CreateGoal(ctx, durationGoal(jan(1, 0, 0)))
	require.NoError(t, err)

	clock.now = jan(5, 12, 0)
	_, err = goalService.Pause(ctx, created.Goal.ID)
	require.NoError(t, err)

	clock.now = jan(6, 12, 0)
	status, err := goalService.EvaluateGoal(ctx, created.Goal.ID, false)
	require.NoError(t, err)

	assert.True(t, status.Paused)
	require.Len(t, status.Closed, 1)
	assert.Equal(t, domain.EvalPaused, status.Closed[0].EvalState)
	assert.Nil(t, status.Closed[0].Success)
	assert.True(t, status.Closed[0].PeriodStart.Equal(jan(5, 0, 0)))
	require.NotNil(t, status.Progress)
	assert.Equal(t, domain.EvalPaused, status.Progress.EvalState)

	results, err := goalService.ListResults(ctx, created.Goal.ID, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Nil(t, results[0].Success)

	again, err := goalService.EvaluateGoal(ctx, created.Goal.ID, true)
	require.NoError(t, err)
	assert.Empty(t, again.Closed)
}

func TestGoalEvaluation_ClosesCompletePeriod(t *testing.T) {
	ctx := context.Background()
	clock := &fixedClock{now: jan(5, 8, 0)}
	repo := newStore(t)
	options := config.GoalOptions{Backfill: 1, Concurrency: 2, ProgressTTL: time.Minute}
	goalService := NewGoalService(repo, repo, repo, repo, repo, clock, options)
	ingest := NewIngestService(repo, repo, repo, clock)
	windows := NewWindowService(repo, repo, repo, repo, clock, 10*time.Minute)

	seed(t, ingest,
		[]ActivityInput{{ID: 1, Name: "editor", Productivity: "very_productive"}},
		[]EventInput{open(1, jan(5, 9, 0)), closeAt(1, jan(5, 9, 20))})

	created, err := goalService.CreateGoal(ctx, durationGoal(jan(1, 0, 0)))
	require.NoError(t, err)

	_, err = windows.ProcessWindow(ctx, jan(5, 0, 0), jan(6, 0, 0))
	require.NoError(t, err)

	clock.now = jan(6, 1, 0)
	status, err := goalService.EvaluateGoal(ctx, created.Goal.ID, false)
	require.NoError(t, err)

	require.Len(t, status.Closed, 1)
	closed := status.Closed[0]
	assert.Equal(t, domain.EvalOK, closed.EvalState)
	assert.InDelta(t, 1200, closed.MetricValue, 0.001)
	require.NotNil(t, closed.Success)
	assert.False(t, *closed.Success)
}

func TestGoalEvaluation_WaitsForWindowsBeforeClosing(t *testing.T) {
	ctx := context.Background()
	clock := &fixedClock{now: jan(5, 8, 0)}
	repo := newStore(t)
	options := config.GoalOptions{Backfill: 1, Concurrency: 2, ProgressTTL: time.Minute}
	goalService := NewGoalService(repo, repo, repo, repo, repo, clock, options)
	ingest := NewIngestService(repo, repo, repo, clock)
	windows := NewWindowService(repo, repo, repo, repo, clock, 10*time.Minute)

	seed(t, ingest,
		[]ActivityInput{{ID: 1, Name: "editor", Productivity: "very_productive"}},
		[]EventInput{open(1, jan(5, 9, 0)), closeAt(1, jan(5, 9, 20)), open(1, jan(5, 23, 0)), closeAt(1, jan(5, 23, 50))})

	created, err := goalService.CreateGoal(ctx, durationGoal(jan(1, 0, 0)))
	require.NoError(t, err)

	_, err = windows.ProcessWindow(ctx, jan(5, 0, 0), jan(5, 12, 0))
	require.NoError(t, err)

	clock.now = jan(6, 1, 0)
	status, err := goalService.EvaluateGoal(ctx, created.Goal.ID, false)
	require.NoError(t, err)
	assert.Empty(t, status.Closed)

	results, err := goalService.ListResults(ctx, created.Goal.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, results)

	_, err = windows.ProcessWindow(ctx, jan(5, 12, 0), jan(6, 0, 0))
	require.NoError(t, err)

	status, err = goalService.EvaluateGoal(ctx, created.Goal.ID, false)
	require.NoError(t, err)
	require.Len(t, status.Closed, 1)
	closed := status.Closed[0]
	assert.Equal(t, domain.EvalOK, closed.EvalState)
	assert.InDelta(t, 4200, closed.MetricValue, 0.001)
	require.NotNil(t, closed.Success)
	assert.True(t, *closed.Success)
}

func TestEvaluateAll_SkipsBrokenGoal(t *testing.T) {
	ctx := context.Background()
	clock := &fixedClock{now: jan(6, 12, 0)}
	repo := newStore(t)
	options := config.GoalOptions{Backfill: 1, Concurrency: 2, ProgressTTL: time.Minute}
	goalService := NewGoalService(repo, repo, repo, repo, repo, clock, options)

	_, err := goalService.CreateGoal(ctx, durationGoal(jan(6, 0, 0)))
	require.NoError(t, err)
	_, err = repo.CreateGoal(ctx,
		domain.Goal{CreatedAt: jan(6, 0, 0), Metric: domain.MetricTotalActivityDuration, Name: "broken", Operator: domain.OperatorLessThan, Period: domain.PeriodDay, Timezone: "Mars/Olympus"},
		domain.GoalDefinition{EffectiveFrom: jan(6, 0, 0), IncludeMode: domain.IncludeAny})
	require.NoError(t, err)

	statuses, err := goalService.EvaluateAll(ctx, false)
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, "Deep work", statuses[0].Goal.Name)
	assert.Equal(t, domain.EvalNA, statuses[0].Progress.EvalState)
}

func TestSessionization_FinalizesIsolatedIslandAndCarriesTail(t *testing.T) {
	ctx := context.Background()
	clock := &fixedClock{now: jan(6, 10, 31)}
	repo := newStore(t)
	ingest := NewIngestService(repo, repo, repo, clock)
	windows := NewWindowService(repo, repo, repo, repo, clock, 10*time.Minute)
	sessions := NewSessionizationService(repo, repo, repo, repo, repo, clock, sessionize.DefaultConfig())

	activities := []ActivityInput{
		{ID: 1, Name: "editor", Productivity: "very_productive", Tags: []string{"code"}},
		{ID: 2, Name: "terminal", Productivity: "very_productive", Tags: []string{"code"}},
		{ID: 3, Name: "docs", Productivity: "productive", Tags: []string{"code"}},
		{ID: 4, Name: "inbox", Productivity: "neutral", Tags: []string{"mail"}},
		{ID: 5, Name: "calendar", Productivity: "neutral", Tags: []string{"mail"}},
	}
	seed(t, ingest, activities, []EventInput{
		open(1, jan(6, 10, 0)), closeAt(1, jan(6, 10, 6)),
		open(2, jan(6, 10, 6)), closeAt(2, jan(6, 10, 12)),
		open(3, jan(6, 10, 12)), closeAt(3, jan(6, 10, 18)),
		open(4, jan(6, 10, 29)), closeAt(4, jan(6, 10, 29).Add(30*time.Second)),
		open(5, jan(6, 10, 29).Add(30*time.Second)),
	})

	_, err := windows.ProcessWindow(ctx, jan(6, 10, 0), jan(6, 10, 30))
	require.NoError(t, err)

	first, err := sessions.Run(ctx)
	require.NoError(t, err)
	require.False(t, first.Skipped)
	assert.Equal(t, 1, first.Sessions)
	assert.Equal(t, 1, first.Candidates)
	require.NotNil(t, first.Run.OverlapStart)
	assert.True(t, first.Run.OverlapStart.Equal(jan(6, 10, 29)))

	groupings, err := sessions.Groupings(ctx, jan(6, 10, 0), jan(6, 11, 0))
	require.NoError(t, err)
	require.Len(t, groupings.Sessions, 1)
	assert.Equal(t, "code", groupings.Sessions[0].Name)
	assert.ElementsMatch(t, []int64{1, 2, 3}, groupings.Sessions[0].ActivityIDs)
	assert.Equal(t, derivePublicID("", groupings.Sessions[0].ActivityIDs), groupings.Sessions[0].PublicID)
	require.Len(t, groupings.Candidates, 1)
	assert.Equal(t, "mail", groupings.Candidates[0].Name)
	assert.ElementsMatch(t, []int64{4, 5}, groupings.Candidates[0].ActivityIDs)

	skipped, err := sessions.Run(ctx)
	require.NoError(t, err)
	assert.True(t, skipped.Skipped)

	_, err = ingest.Ingest(ctx, closeAt(5, jan(6, 10, 35)))
	require.NoError(t, err)
	_, err = windows.ProcessWindow(ctx, jan(6, 10, 30), jan(6, 11, 0))
	require.NoError(t, err)

	second, err := sessions.Run(ctx)
	require.NoError(t, err)
	require.False(t, second.Skipped)
	assert.True(t, second.Run.CandidateCreationStart.Equal(jan(6, 10, 29)))
	assert.Zero(t, second.Sessions)

	candidates, err := repo.ListCandidates(ctx)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestInsights_FocusAndBuckets(t *testing.T) {
	ctx := context.Background()
	clock := &fixedClock{now: jan(6, 12, 0)}
	repo := newStore(t)
	ingest := NewIngestService(repo, repo, repo, clock)
	insights := NewInsightsService(repo, repo, clock, intervals.DefaultFocusConfig())

	seed(t, ingest,
		[]ActivityInput{
			{ID: 1, Name: "editor", Productivity: "very_productive"},
			{ID: 2, Name: "feed", Productivity: "distracting"},
		},
		[]EventInput{
			open(1, jan(6, 9, 0)), closeAt(1, jan(6, 9, 50)),
			open(2, jan(6, 9, 50)), closeAt(2, jan(6, 9, 52)),
			open(1, jan(6, 9, 52)), closeAt(1, jan(6, 10, 30)),
		})

	perActivity, err := insights.Intervals(ctx, jan(6, 9, 0), jan(6, 11, 0))
	require.NoError(t, err)
	require.Len(t, perActivity, 2)
	assert.Len(t, perActivity[0].Intervals, 2)

	report, err := insights.FocusSessions(ctx, jan(6, 9, 0), jan(6, 11, 0))
	require.NoError(t, err)
	require.Len(t, report.Sessions, 1)
	assert.Equal(t, 90*time.Minute, report.Sessions[0].Duration)
	assert.InDelta(t, 120, report.Sessions[0].DisruptedSec, 0.001)
	assert.Equal(t, 1, report.Summary.Count)
	assert.InDelta(t, 5400, report.Summary.TotalSec, 0.001)

	buckets, err := insights.Buckets(ctx, jan(6, 9, 0), jan(6, 11, 0), intervals.BucketHourOfDay, time.UTC)
	require.NoError(t, err)
	byHour := make(map[int]intervals.Bucket)
	for _, b := range buckets {
		byHour[b.Key] = b
	}
	assert.InDelta(t, 3600, byHour[9].ActiveSeconds, 0.001)
	assert.InDelta(t, 3480, byHour[9].ProductiveSeconds, 0.001)
	assert.InDelta(t, 1800, byHour[10].ActiveSeconds, 0.001)
}

func TestInsights_TimelineIsCached(t *testing.T) {
	ctx := context.Background()
	clock := &fixedClock{now: jan(6, 12, 0)}
	repo := newStore(t)
	ingest := NewIngestService(repo, repo, repo, clock)
	insights := NewInsightsService(repo, repo, clock, intervals.DefaultFocusConfig())

	seed(t, ingest,
		[]ActivityInput{{ID: 1, Name: "editor", Productivity: "productive"}},
		[]EventInput{open(1, jan(6, 9, 0)), closeAt(1, jan(6, 9, 30))})

	first, err := insights.Timeline(ctx, jan(6, 9, 0), jan(6, 11, 0))
	require.NoError(t, err)

	_, err = ingest.IngestBatch(ctx, []EventInput{open(1, jan(6, 10, 0)), closeAt(1, jan(6, 10, 30))})
	require.NoError(t, err)

	cached, err := insights.Timeline(ctx, jan(6, 9, 0), jan(6, 11, 0))
	require.NoError(t, err)
	assert.Equal(t, first, cached)

	clock.now = clock.now.Add(61 * time.Second)
	refreshed, err := insights.Timeline(ctx, jan(6, 9, 0), jan(6, 11, 0))
	require.NoError(t, err)
	assert.NotEqual(t, first, refreshed)
}

// staleSessionReader answers as if no run had been committed yet, like a
// second sessionizer that read the store before the first one saved
type staleSessionReader struct {
	*storage.SQLiteRepository
}

func (staleSessionReader) LatestRun(context.Context) (*domain.SessionizationRun, error) {
	return nil, nil
}

func (staleSessionReader) ListCandidates(context.Context) ([]domain.CandidateSession, error) {
	return nil, nil
}

func (staleSessionReader) FinalizedActivityIDs(context.Context, []int64) (map[int64]bool, error) {
	return map[int64]bool{}, nil
}

func TestSessionization_ConcurrentDuplicateRunIsNoOp(t *testing.T) {
	ctx := context.Background()
	clock := &fixedClock{now: jan(6, 10, 31)}
	repo := newStore(t)
	ingest := NewIngestService(repo, repo, repo, clock)
	windows := NewWindowService(repo, repo, repo, repo, clock, 10*time.Minute)
	sessions := NewSessionizationService(repo, repo, repo, repo, repo, clock, sessionize.DefaultConfig())
	stale := NewSessionizationService(repo, repo, repo, staleSessionReader{repo}, repo, clock, sessionize.DefaultConfig())

	seed(t, ingest, []ActivityInput{
		{ID: 1, Name: "editor", Productivity: "very_productive", Tags: []string{"code"}},
		{ID: 2, Name: "terminal", Productivity: "very_productive", Tags: []string{"code"}},
		{ID: 3, Name: "docs", Productivity: "productive", Tags: []string{"code"}},
	}, []EventInput{
		open(1, jan(6, 10, 0)), closeAt(1, jan(6, 10, 6)),
		open(2, jan(6, 10, 6)), closeAt(2, jan(6, 10, 12)),
		open(3, jan(6, 10, 12)), closeAt(3, jan(6, 10, 18)),
	})
	_, err := windows.ProcessWindow(ctx, jan(6, 10, 0), jan(6, 10, 30))
	require.NoError(t, err)

	first, err := sessions.Run(ctx)
	require.NoError(t, err)
	require.False(t, first.Skipped)
	require.Equal(t, 1, first.Sessions)

	again, err := stale.Run(ctx)
	require.NoError(t, err)
	require.NotNil(t, again.Run)
	assert.Equal(t, first.Run.ID, again.Run.ID)

	groupings, err := sessions.Groupings(ctx, jan(6, 10, 0), jan(6, 11, 0))
	require.NoError(t, err)
	require.Len(t, groupings.Sessions, 1)
	assert.ElementsMatch(t, []int64{1, 2, 3}, groupings.Sessions[0].ActivityIDs)

	latest, err := repo.LatestRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.Run.ID, latest.ID)
}
