package ports

import (
	"context"
	"time"

	"github.com/renato0307/tally/internal/domain"
)

// GoalReader reads goals with their definitions, pause log and evaluations
type GoalReader interface {
	GetGoal(ctx context.Context, id int64) (*domain.GoalWithDefinitions, error)
	GetProgress(ctx context.Context, definitionID int64) (*domain.GoalProgress, error)
	HasResult(ctx context.Context, definitionID int64, periodStart time.Time) (bool, error)
	ListGoals(ctx context.Context) ([]domain.GoalWithDefinitions, error)
	ListResults(ctx context.Context, goalID int64, limit int) ([]domain.GoalResult, error)
}

// GoalWriter creates goals and records their evaluations
type GoalWriter interface {
	AddDefinition(ctx context.Context, def domain.GoalDefinition) (domain.GoalDefinition, error)
	AppendPauseEvent(ctx context.Context, event domain.GoalPauseEvent) (domain.GoalPauseEvent, error)
	CreateGoal(ctx context.Context, goal domain.Goal, def domain.GoalDefinition) (domain.GoalWithDefinitions, error)
	// DeleteProgress removes the progress row of a definition if it belongs to periodStart
	DeleteProgress(ctx context.Context, definitionID int64, periodStart time.Time) error
	// InsertResult stores a period result once; it reports false when one already existed
	InsertResult(ctx context.Context, result domain.GoalResult) (bool, error)
	UpsertProgress(ctx context.Context, progress domain.GoalProgress) error
}
