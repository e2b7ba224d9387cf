package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/renato0307/tally/internal/domain"
)

// CreateGoal implements GoalWriter.CreateGoal
func (r *SQLiteRepository) CreateGoal(ctx context.Context, goal domain.Goal, def domain.GoalDefinition) (domain.GoalWithDefinitions, error) {
	var goalModel GoalModel
	var defModel GoalDefinitionModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			goalModel = domainToGoalModel(goal)
			if err := tx.Create(&goalModel).Error; err != nil {
				if isUniqueConstraintError(err) {
					return fmt.Errorf("%w: %s", domain.ErrGoalExists, goal.Name)
				}
				return fmt.Errorf("failed to create goal: %w", err)
			}

			defModel = domainToDefinitionModel(def)
			defModel.GoalID = goalModel.ID
			if err := tx.Create(&defModel).Error; err != nil {
				return fmt.Errorf("failed to create goal definition: %w", err)
			}
			return nil
		})
	}, 3)
	if err != nil {
		return domain.GoalWithDefinitions{}, err
	}

	return domain.GoalWithDefinitions{
		Definitions: []domain.GoalDefinition{definitionModelToDomain(defModel)},
		Goal:        goalModelToDomain(goalModel),
	}, nil
}

// AddDefinition implements GoalWriter.AddDefinition
func (r *SQLiteRepository) AddDefinition(ctx context.Context, def domain.GoalDefinition) (domain.GoalDefinition, error) {
	model := domainToDefinitionModel(def)
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := ensureGoal(tx, def.GoalID); err != nil {
				return err
			}
			model.ID = 0
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to create goal definition: %w", err)
			}
			return nil
		})
	}, 3)
	if err != nil {
		return domain.GoalDefinition{}, err
	}
	return definitionModelToDomain(model), nil
}

// AppendPauseEvent implements GoalWriter.AppendPauseEvent
func (r *SQLiteRepository) AppendPauseEvent(ctx context.Context, event domain.GoalPauseEvent) (domain.GoalPauseEvent, error) {
	model := GoalPauseEventModel{
		At:        event.At.UTC(),
		EventType: string(event.EventType),
		GoalID:    event.GoalID,
	}
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := ensureGoal(tx, event.GoalID); err != nil {
				return err
			}
			model.ID = 0
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to append pause event: %w", err)
			}
			return nil
		})
	}, 3)
	if err != nil {
		return domain.GoalPauseEvent{}, err
	}
	return pauseModelToDomain(model), nil
}

func ensureGoal(tx *gorm.DB, goalID int64) error {
	var count int64
	if err := tx.Model(&GoalModel{}).Where("id = ?", goalID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check goal: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("%w: %d", domain.ErrGoalNotFound, goalID)
	}
	return nil
}

// GetGoal implements GoalReader.GetGoal
func (r *SQLiteRepository) GetGoal(ctx context.Context, id int64) (*domain.GoalWithDefinitions, error) {
	var goal GoalModel
	var defs []GoalDefinitionModel
	var pauses []GoalPauseEventModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("id = ?", id).First(&goal).Error; err != nil {
				return err
			}
			if err := tx.Where("goal_id = ?", id).Order("effective_from, id").Find(&defs).Error; err != nil {
				return err
			}
			return tx.Where("goal_id = ?", id).Order("at, id").Find(&pauses).Error
		})
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", domain.ErrGoalNotFound, id)
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}

	result := assembleGoal(goal, defs, pauses)
	return &result, nil
}

// ListGoals implements GoalReader.ListGoals
func (r *SQLiteRepository) ListGoals(ctx context.Context) ([]domain.GoalWithDefinitions, error) {
	var goals []GoalModel
	var defs []GoalDefinitionModel
	var pauses []GoalPauseEventModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Order("id").Find(&goals).Error; err != nil {
				return err
			}
			if err := tx.Order("effective_from, id").Find(&defs).Error; err != nil {
				return err
			}
			return tx.Order("at, id").Find(&pauses).Error
		})
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	defsByGoal := make(map[int64][]GoalDefinitionModel)
	for _, d := range defs {
		defsByGoal[d.GoalID] = append(defsByGoal[d.GoalID], d)
	}
	pausesByGoal := make(map[int64][]GoalPauseEventModel)
	for _, p := range pauses {
		pausesByGoal[p.GoalID] = append(pausesByGoal[p.GoalID], p)
	}

	result := make([]domain.GoalWithDefinitions, len(goals))
	for i, g := range goals {
		result[i] = assembleGoal(g, defsByGoal[g.ID], pausesByGoal[g.ID])
	}
	return result, nil
}

func assembleGoal(goal GoalModel, defs []GoalDefinitionModel, pauses []GoalPauseEventModel) domain.GoalWithDefinitions {
	result := domain.GoalWithDefinitions{Goal: goalModelToDomain(goal)}
	for _, d := range defs {
		result.Definitions = append(result.Definitions, definitionModelToDomain(d))
	}
	for _, p := range pauses {
		result.PauseEvents = append(result.PauseEvents, pauseModelToDomain(p))
	}
	return result
}

// ListResults implements GoalReader.ListResults, most recent period first
func (r *SQLiteRepository) ListResults(ctx context.Context, goalID int64, limit int) ([]domain.GoalResult, error) {
	var models []GoalResultModel
	err := withRetry(func() error {
		query := r.db.WithContext(ctx).
			Where("goal_definition_id IN (SELECT id FROM goal_definitions WHERE goal_id = ?)", goalID).
			Order("period_start DESC")
		if limit > 0 {
			query = query.Limit(limit)
		}
		return query.Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list goal results: %w", err)
	}

	result := make([]domain.GoalResult, len(models))
	for i, m := range models {
		result[i] = resultModelToDomain(m)
	}
	return result, nil
}

// HasResult implements GoalReader.HasResult
func (r *SQLiteRepository) HasResult(ctx context.Context, definitionID int64, periodStart time.Time) (bool, error) {
	var count int64
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Model(&GoalResultModel{}).
			Where("goal_definition_id = ? AND period_start = ?", definitionID, periodStart.UTC()).
			Count(&count).Error
	}, 3)
	if err != nil {
		return false, fmt.Errorf("failed to check goal result: %w", err)
	}
	return count > 0, nil
}

// InsertResult implements GoalWriter.InsertResult
func (r *SQLiteRepository) InsertResult(ctx context.Context, result domain.GoalResult) (bool, error) {
	var inserted bool
	err := withRetry(func() error {
		model := domainToResultModel(result)
		res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "goal_definition_id"}, {Name: "period_start"}},
			DoNothing: true,
		}).Create(&model)
		if res.Error != nil {
			return fmt.Errorf("failed to insert goal result: %w", res.Error)
		}
		inserted = res.RowsAffected > 0
		return nil
	}, 3)
	return inserted, err
}

// GetProgress implements GoalReader.GetProgress. It returns nil when no progress was recorded.
func (r *SQLiteRepository) GetProgress(ctx context.Context, definitionID int64) (*domain.GoalProgress, error) {
	var model GoalProgressModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("goal_definition_id = ?", definitionID).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get goal progress: %w", err)
	}

	progress := progressModelToDomain(model)
	return &progress, nil
}

// UpsertProgress implements GoalWriter.UpsertProgress
func (r *SQLiteRepository) UpsertProgress(ctx context.Context, progress domain.GoalProgress) error {
	return withRetry(func() error {
		model := domainToProgressModel(progress)
		if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "goal_definition_id"}},
			UpdateAll: true,
		}).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to upsert goal progress: %w", err)
		}
		return nil
	}, 3)
}

// DeleteProgress implements GoalWriter.DeleteProgress
func (r *SQLiteRepository) DeleteProgress(ctx context.Context, definitionID int64, periodStart time.Time) error {
	return withRetry(func() error {
		if err := r.db.WithContext(ctx).
			Where("goal_definition_id = ? AND period_start = ?", definitionID, periodStart.UTC()).
			Delete(&GoalProgressModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete goal progress: %w", err)
		}
		return nil
	}, 3)
}
