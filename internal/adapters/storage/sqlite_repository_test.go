package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tally/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "tally.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func at(hh, mm int) time.Time {
	return time.Date(2025, 1, 6, hh, mm, 0, 0, time.UTC)
}

func seedActivities(t *testing.T, repo *SQLiteRepository, ids ...int64) {
	t.Helper()
	var activities []domain.Activity
	for _, id := range ids {
		activities = append(activities, domain.Activity{
			ID:           id,
			Name:         "activity",
			Productivity: domain.ProductivityProductive,
			Source:       domain.SourceAuto,
			Tags:         []string{"work"},
		})
	}
	_, err := repo.UpsertActivities(context.Background(), activities)
	require.NoError(t, err)
}

func ev(id int64, t time.Time, typ domain.EventType) domain.ActivityEvent {
	return domain.ActivityEvent{ActivityID: id, EventTime: t, EventType: typ}
}

func TestUpsertActivities_ProtectsManualEdits(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	touched := at(8, 0)

	n, err := repo.UpsertActivities(ctx, []domain.Activity{{
		ID:                   1,
		LastManualActionTime: &touched,
		Name:                 "Deep work",
		Productivity:         domain.ProductivityVeryProductive,
		Source:               domain.SourceManual,
		Tags:                 []string{"coding"},
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = repo.UpsertActivities(ctx, []domain.Activity{{
		ID:           1,
		Name:         "Editor",
		Productivity: domain.ProductivityNeutral,
		Source:       domain.SourceAuto,
		Tags:         []string{"coding", "go"},
	}})
	require.NoError(t, err)

	got, err := repo.GetActivity(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Deep work", got.Name)
	assert.Equal(t, domain.ProductivityVeryProductive, got.Productivity)
	assert.Equal(t, domain.SourceManual, got.Source)
	assert.Equal(t, []string{"coding", "go"}, got.Tags)
}

func TestUpsertActivities_AutoOverwritesAuto(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	seedActivities(t, repo, 1)

	_, err := repo.UpsertActivities(ctx, []domain.Activity{{
		ID:           1,
		Name:         "Browser",
		Productivity: domain.ProductivityDistracting,
		Source:       domain.SourceAuto,
	}})
	require.NoError(t, err)

	got, err := repo.GetActivity(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Browser", got.Name)
	assert.Equal(t, domain.ProductivityDistracting, got.Productivity)
}

func TestGetActivity_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetActivity(context.Background(), 42)

	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestInsertEvents_DuplicateIsNoOp(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	seedActivities(t, repo, 1)

	n, err := repo.InsertEvents(ctx, []domain.ActivityEvent{ev(1, at(9, 0), domain.EventOpen)})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = repo.InsertEvents(ctx, []domain.ActivityEvent{
		ev(1, at(9, 0), domain.EventOpen),
		ev(1, at(9, 0), domain.EventClose),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	events, err := repo.ListEvents(ctx, at(8, 0), at(10, 0))
	require.NoError(t, err)
	assert.Len(t, events[1], 2)
}

func TestListEvents_IncludesLatestEarlierEvent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	seedActivities(t, repo, 1, 2)

	_, err := repo.InsertEvents(ctx, []domain.ActivityEvent{
		ev(1, at(7, 0), domain.EventOpen),
		ev(1, at(7, 30), domain.EventClose),
		ev(1, at(8, 0), domain.EventOpen),
		ev(1, at(9, 30), domain.EventClose),
		ev(2, at(6, 0), domain.EventOpen),
		ev(2, at(6, 10), domain.EventClose),
	})
	require.NoError(t, err)

	events, err := repo.ListEvents(ctx, at(9, 0), at(10, 0))
	require.NoError(t, err)

	require.Len(t, events[1], 2)
	assert.True(t, events[1][0].EventTime.Equal(at(8, 0)))
	assert.Equal(t, domain.EventOpen, events[1][0].EventType)
	assert.True(t, events[1][1].EventTime.Equal(at(9, 30)))

	require.Len(t, events[2], 1)
	assert.Equal(t, domain.EventClose, events[2][0].EventType)
}

func TestListOpenActivities(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	seedActivities(t, repo, 1, 2, 3)

	_, err := repo.InsertEvents(ctx, []domain.ActivityEvent{
		ev(1, at(9, 0), domain.EventOpen),
		ev(2, at(9, 0), domain.EventOpen),
		ev(2, at(9, 10), domain.EventClose),
		ev(3, at(9, 20), domain.EventClose),
		ev(3, at(9, 20), domain.EventOpen),
	})
	require.NoError(t, err)

	open, err := repo.ListOpenActivities(ctx, at(10, 0))
	require.NoError(t, err)

	require.Len(t, open, 2)
	assert.Equal(t, int64(1), open[0].Activity.ID)
	assert.True(t, open[0].LastEventTime.Equal(at(9, 0)))
	assert.Equal(t, int64(3), open[1].Activity.ID)
}

func TestProcessWindow_IsIdempotent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	seedActivities(t, repo, 1)

	_, err := repo.InsertEvents(ctx, []domain.ActivityEvent{
		ev(1, at(9, 5), domain.EventOpen),
		ev(1, at(9, 10), domain.EventClose),
		ev(1, at(10, 0), domain.EventOpen),
	})
	require.NoError(t, err)

	first, assigned, err := repo.ProcessWindow(ctx, at(9, 0), at(10, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(2), assigned)
	require.NotNil(t, first.FirstTimestamp)
	assert.True(t, first.FirstTimestamp.Equal(at(9, 5)))
	assert.True(t, first.LastTimestamp.Equal(at(9, 10)))

	second, assigned, err := repo.ProcessWindow(ctx, at(9, 0), at(10, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(0), assigned)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.LastTimestamp.Equal(at(9, 10)))

	windows, err := repo.ListWindows(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, windows, 1)
}

func TestProcessWindow_WidensExtentsWithLateEvents(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	seedActivities(t, repo, 1)

	_, err := repo.InsertEvents(ctx, []domain.ActivityEvent{ev(1, at(9, 10), domain.EventOpen)})
	require.NoError(t, err)
	_, _, err = repo.ProcessWindow(ctx, at(9, 0), at(10, 0))
	require.NoError(t, err)

	_, err = repo.InsertEvents(ctx, []domain.ActivityEvent{ev(1, at(9, 2), domain.EventClose)})
	require.NoError(t, err)

	late, err := repo.CountUnassignedBefore(ctx, at(10, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(1), late)

	w, assigned, err := repo.ProcessWindow(ctx, at(9, 0), at(10, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(1), assigned)
	assert.True(t, w.FirstTimestamp.Equal(at(9, 2)))
	assert.True(t, w.LastTimestamp.Equal(at(9, 10)))
}

func TestProcessWindow_InvalidBounds(t *testing.T) {
	repo := newTestRepository(t)

	_, _, err := repo.ProcessWindow(context.Background(), at(10, 0), at(10, 0))

	assert.ErrorIs(t, err, domain.ErrInvalidWindowBounds)
}

func TestLastWindow(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	none, err := repo.LastWindow(ctx)
	require.NoError(t, err)
	assert.Nil(t, none)

	_, _, err = repo.ProcessWindow(ctx, at(9, 0), at(9, 30))
	require.NoError(t, err)
	_, _, err = repo.ProcessWindow(ctx, at(9, 30), at(10, 0))
	require.NoError(t, err)

	last, err := repo.LastWindow(ctx)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.True(t, last.EndTime.Equal(at(10, 0)))
	assert.True(t, last.IsEmpty())
}

func TestSaveOutcome_ReplacesCandidatesAndKeepsFirstOwner(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	seedActivities(t, repo, 1, 2, 3)
	horizon := at(9, 30)

	run, err := repo.SaveOutcome(ctx, domain.SessionizationOutcome{
		Candidates: []domain.CandidateSession{{ActivityIDs: []int64{3}, End: at(10, 0), Name: "tail", PublicID: "c1", Start: at(9, 40)}},
		Run:        domain.SessionizationRun{CandidateCreationEnd: at(10, 0), CandidateCreationStart: at(9, 0), FinalizedHorizon: &horizon},
		Sessions:   []domain.Session{{ActivityIDs: []int64{1, 2}, End: at(9, 30), Name: "work", PublicID: "s1", Start: at(9, 0)}},
	})
	require.NoError(t, err)
	assert.NotZero(t, run.ID)

	_, err = repo.SaveOutcome(ctx, domain.SessionizationOutcome{
		Candidates: []domain.CandidateSession{{ActivityIDs: []int64{3}, End: at(10, 30), Name: "tail", PublicID: "c2", Start: at(9, 40)}},
		Run:        domain.SessionizationRun{CandidateCreationEnd: at(10, 30), CandidateCreationStart: at(9, 30)},
		Sessions:   []domain.Session{{ActivityIDs: []int64{2}, End: at(9, 35), Name: "again", PublicID: "s2", Start: at(9, 20)}},
	})
	require.NoError(t, err)

	candidates, err := repo.ListCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "c2", candidates[0].PublicID)
	assert.Equal(t, []int64{3}, candidates[0].ActivityIDs)

	sessions, err := repo.ListSessions(ctx, at(0, 0), at(23, 0))
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, []int64{1, 2}, sessions[0].ActivityIDs)
	assert.Empty(t, sessions[1].ActivityIDs)

	owned, err := repo.FinalizedActivityIDs(ctx, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, map[int64]bool{1: true, 2: true}, owned)

	latest, err := repo.LatestRun(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.True(t, latest.CandidateCreationEnd.Equal(at(10, 30)))
	assert.Nil(t, latest.FinalizedHorizon)
}

func TestSaveOutcome_SameBoundsReturnsStoredRun(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	seedActivities(t, repo, 1, 2, 3)
	outcome := domain.SessionizationOutcome{
		Candidates: []domain.CandidateSession{{ActivityIDs: []int64{3}, End: at(10, 0), Name: "tail", PublicID: "c1", Start: at(9, 40)}},
		Run:        domain.SessionizationRun{CandidateCreationEnd: at(10, 0), CandidateCreationStart: at(9, 0)},
		Sessions:   []domain.Session{{ActivityIDs: []int64{1, 2}, End: at(9, 30), Name: "work", PublicID: "s1", Start: at(9, 0)}},
	}

	first, err := repo.SaveOutcome(ctx, outcome)
	require.NoError(t, err)

	outcome.Candidates[0].PublicID = "c-other"
	second, err := repo.SaveOutcome(ctx, outcome)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var runs int64
	require.NoError(t, repo.db.Model(&SessionizationRunModel{}).Count(&runs).Error)
	assert.Equal(t, int64(1), runs)

	candidates, err := repo.ListCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "c1", candidates[0].PublicID)
}

func TestSaveOutcome_SessionFinalizedTwiceIsKeptOnce(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	seedActivities(t, repo, 1, 2)
	session := domain.Session{ActivityIDs: []int64{1, 2}, End: at(9, 30), Name: "work", PublicID: "s1", Start: at(9, 0)}

	_, err := repo.SaveOutcome(ctx, domain.SessionizationOutcome{
		Run:      domain.SessionizationRun{CandidateCreationEnd: at(10, 0), CandidateCreationStart: at(9, 0)},
		Sessions: []domain.Session{session},
	})
	require.NoError(t, err)

	_, err = repo.SaveOutcome(ctx, domain.SessionizationOutcome{
		Run:      domain.SessionizationRun{CandidateCreationEnd: at(10, 0), CandidateCreationStart: at(8, 30)},
		Sessions: []domain.Session{session},
	})
	require.NoError(t, err)

	sessions, err := repo.ListSessions(ctx, at(0, 0), at(23, 0))
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, []int64{1, 2}, sessions[0].ActivityIDs)
}

func testGoal() (domain.Goal, domain.GoalDefinition) {
	return domain.Goal{
			Metric:   domain.MetricTotalActivityDuration,
			Name:     "less video",
			Operator: domain.OperatorLessThan,
			Period:   domain.PeriodDay,
			Timezone: "Europe/Lisbon",
		}, domain.GoalDefinition{
			EffectiveFrom: at(0, 0),
			Filters:       domain.GoalFilters{Tags: &domain.TagFilter{Include: []string{"video"}}},
			IncludeMode:   domain.IncludeAny,
			TargetValue:   7200,
		}
}

func TestCreateGoal(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	goal, def := testGoal()

	created, err := repo.CreateGoal(ctx, goal, def)
	require.NoError(t, err)
	require.Len(t, created.Definitions, 1)
	assert.Equal(t, created.Goal.ID, created.Definitions[0].GoalID)

	_, err = repo.CreateGoal(ctx, goal, def)
	assert.ErrorIs(t, err, domain.ErrGoalExists)

	got, err := repo.GetGoal(ctx, created.Goal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Lisbon", got.Goal.Timezone)
	assert.Equal(t, []string{"video"}, got.Definitions[0].Filters.Tags.Include)
	assert.Nil(t, got.Definitions[0].Filters.Days)
}

func TestGoalDefinitionsAndPauses(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	goal, def := testGoal()
	created, err := repo.CreateGoal(ctx, goal, def)
	require.NoError(t, err)
	id := created.Goal.ID

	def.GoalID = id
	def.EffectiveFrom = at(12, 0)
	def.TargetValue = 3600
	_, err = repo.AddDefinition(ctx, def)
	require.NoError(t, err)

	_, err = repo.AppendPauseEvent(ctx, domain.GoalPauseEvent{At: at(13, 0), EventType: domain.PauseEventPause, GoalID: id})
	require.NoError(t, err)

	def.GoalID = 999
	_, err = repo.AddDefinition(ctx, def)
	assert.ErrorIs(t, err, domain.ErrGoalNotFound)

	goals, err := repo.ListGoals(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	require.Len(t, goals[0].Definitions, 2)
	assert.Equal(t, 3600.0, goals[0].Definitions[1].TargetValue)
	require.Len(t, goals[0].PauseEvents, 1)
	assert.Equal(t, domain.PauseEventPause, goals[0].PauseEvents[0].EventType)

	_, err = repo.GetGoal(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrGoalNotFound)
}

func TestInsertResult_OnlyOnce(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	goal, def := testGoal()
	created, err := repo.CreateGoal(ctx, goal, def)
	require.NoError(t, err)
	defID := created.Definitions[0].ID

	success := true
	result := domain.GoalResult{
		CreatedAt:        at(23, 0),
		EvalState:        domain.EvalOK,
		GoalDefinitionID: defID,
		MetricValue:      1800,
		PeriodEnd:        at(0, 0).Add(24 * time.Hour),
		PeriodStart:      at(0, 0),
		Success:          &success,
	}

	inserted, err := repo.InsertResult(ctx, result)
	require.NoError(t, err)
	assert.True(t, inserted)

	result.MetricValue = 9999
	inserted, err = repo.InsertResult(ctx, result)
	require.NoError(t, err)
	assert.False(t, inserted)

	has, err := repo.HasResult(ctx, defID, at(0, 0))
	require.NoError(t, err)
	assert.True(t, has)

	results, err := repo.ListResults(ctx, created.Goal.ID, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1800.0, results[0].MetricValue)
	require.NotNil(t, results[0].Success)
	assert.True(t, *results[0].Success)
}

func TestUpsertProgress_KeepsOneRow(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	goal, def := testGoal()
	created, err := repo.CreateGoal(ctx, goal, def)
	require.NoError(t, err)
	defID := created.Definitions[0].ID

	success := true
	progress := domain.GoalProgress{
		EvalState:        domain.EvalPartial,
		EvalStateReason:  "period in progress",
		GoalDefinitionID: defID,
		MetricValue:      3600,
		PeriodEnd:        at(0, 0).Add(24 * time.Hour),
		PeriodStart:      at(0, 0),
		Success:          &success,
		UpdatedAt:        at(13, 0),
	}
	require.NoError(t, repo.UpsertProgress(ctx, progress))

	progress.EvalState = domain.EvalPaused
	progress.MetricValue = 0
	progress.Success = nil
	progress.UpdatedAt = at(14, 0)
	require.NoError(t, repo.UpsertProgress(ctx, progress))

	got, err := repo.GetProgress(ctx, defID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.EvalPaused, got.EvalState)
	assert.Equal(t, 0.0, got.MetricValue)
	assert.Nil(t, got.Success)
	assert.True(t, got.UpdatedAt.Equal(at(14, 0)))

	require.NoError(t, repo.DeleteProgress(ctx, defID, at(0, 0)))
	got, err = repo.GetProgress(ctx, defID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
