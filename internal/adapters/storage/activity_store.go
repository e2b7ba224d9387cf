package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/renato0307/tally/internal/domain"
)

// GetActivity implements ActivityReader.GetActivity
func (r *SQLiteRepository) GetActivity(ctx context.Context, id int64) (*domain.Activity, error) {
	var model ActivityModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", domain.ErrActivityNotFound, id)
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	activity := activityModelToDomain(model)
	return &activity, nil
}

// ListActivities implements ActivityReader.ListActivities
func (r *SQLiteRepository) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	var models []ActivityModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("id").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	result := make([]domain.Activity, len(models))
	for i, m := range models {
		result[i] = activityModelToDomain(m)
	}
	return result, nil
}

// ListActivitiesByID implements ActivityReader.ListActivitiesByID
func (r *SQLiteRepository) ListActivitiesByID(ctx context.Context, ids []int64) ([]domain.Activity, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []ActivityModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	result := make([]domain.Activity, len(models))
	for i, m := range models {
		result[i] = activityModelToDomain(m)
	}
	return result, nil
}

// UpsertActivities implements ActivityWriter.UpsertActivities.
// An automatic update of an activity that carries a manual action keeps the
// curated name, description and productivity; only tags are refreshed.
func (r *SQLiteRepository) UpsertActivities(ctx context.Context, activities []domain.Activity) (int, error) {
	changed := 0
	err := withRetry(func() error {
		changed = 0
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for _, a := range activities {
				incoming := domainToActivityModel(a)

				var existing ActivityModel
				err := tx.Where("id = ?", a.ID).First(&existing).Error
				if errors.Is(err, gorm.ErrRecordNotFound) {
					if err := tx.Create(&incoming).Error; err != nil {
						return fmt.Errorf("failed to create activity %d: %w", a.ID, err)
					}
					changed++
					continue
				}
				if err != nil {
					return fmt.Errorf("failed to load activity %d: %w", a.ID, err)
				}

				columns := []string{"tags"}
				protected := incoming.Source == string(domain.SourceAuto) && existing.LastManualActionTime != nil
				if !protected {
					columns = append(columns, "name", "description", "productivity", "source")
					if incoming.LastManualActionTime != nil {
						columns = append(columns, "last_manual_action_time")
					}
				}

				if err := tx.Model(&existing).Select(columns).Updates(&incoming).Error; err != nil {
					return fmt.Errorf("failed to update activity %d: %w", a.ID, err)
				}
				changed++
			}
			return nil
		})
	}, 3)
	if err != nil {
		return 0, err
	}
	return changed, nil
}
