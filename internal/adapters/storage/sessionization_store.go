package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/logging"
)

// LatestRun implements SessionizationReader.LatestRun. It returns nil before the first run.
func (r *SQLiteRepository) LatestRun(ctx context.Context) (*domain.SessionizationRun, error) {
	var model SessionizationRunModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("id DESC").First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest run: %w", err)
	}

	run := runModelToDomain(model)
	return &run, nil
}

// ListCandidates implements SessionizationReader.ListCandidates
func (r *SQLiteRepository) ListCandidates(ctx context.Context) ([]domain.CandidateSession, error) {
	var models []CandidateSessionModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Preload("Activities", func(db *gorm.DB) *gorm.DB { return db.Order("activity_id") }).
			Order("start_time, id").
			Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidate sessions: %w", err)
	}

	result := make([]domain.CandidateSession, len(models))
	for i, m := range models {
		result[i] = candidateModelToDomain(m)
	}
	return result, nil
}

// ListSessions implements SessionizationReader.ListSessions.
// Sessions overlapping [start, end) are returned in start order.
func (r *SQLiteRepository) ListSessions(ctx context.Context, start, end time.Time) ([]domain.Session, error) {
	var models []SessionModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Preload("Activities", func(db *gorm.DB) *gorm.DB { return db.Order("activity_id") }).
			Where("start_time < ? AND end_time > ?", end.UTC(), start.UTC()).
			Order("start_time, id").
			Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	result := make([]domain.Session, len(models))
	for i, m := range models {
		result[i] = sessionModelToDomain(m)
	}
	return result, nil
}

// FinalizedActivityIDs implements SessionizationReader.FinalizedActivityIDs
func (r *SQLiteRepository) FinalizedActivityIDs(ctx context.Context, ids []int64) (map[int64]bool, error) {
	result := make(map[int64]bool)
	if len(ids) == 0 {
		return result, nil
	}

	var found []int64
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Model(&SessionActivityModel{}).
			Where("activity_id IN ?", ids).
			Pluck("activity_id", &found).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to load finalized activities: %w", err)
	}

	for _, id := range found {
		result[id] = true
	}
	return result, nil
}

// SaveOutcome implements SessionizationWriter.SaveOutcome.
// The run row, the replacement of all candidates and the finalized sessions
// are written in one transaction. A run whose bounds were already saved is
// returned as stored and nothing is written. An activity already owned by a
// finalized session keeps its original owner.
func (r *SQLiteRepository) SaveOutcome(ctx context.Context, outcome domain.SessionizationOutcome) (domain.SessionizationRun, error) {
	var saved SessionizationRunModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			existing, err := findRunByBounds(tx, outcome.Run)
			if err != nil {
				return err
			}
			if existing != nil {
				logging.Logger.Debug("Sessionization run already saved",
					"run_id", existing.ID,
					"start", existing.CandidateCreationStart,
					"end", existing.CandidateCreationEnd)
				saved = *existing
				return nil
			}

			saved = domainToRunModel(outcome.Run)
			if err := tx.Create(&saved).Error; err != nil {
				if !isUniqueConstraintError(err) {
					return fmt.Errorf("failed to create run: %w", err)
				}
				// A concurrent writer saved the same run first
				winner, findErr := findRunByBounds(tx, outcome.Run)
				if findErr != nil || winner == nil {
					return fmt.Errorf("failed to create run: %w", err)
				}
				saved = *winner
				return nil
			}

			if err := tx.Where("1 = 1").Delete(&CandidateActivityModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear candidate activities: %w", err)
			}
			if err := tx.Where("1 = 1").Delete(&CandidateSessionModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear candidate sessions: %w", err)
			}

			for _, c := range outcome.Candidates {
				model := CandidateSessionModel{
					EndTime:   c.End.UTC(),
					Name:      c.Name,
					PublicID:  c.PublicID,
					RunID:     saved.ID,
					StartTime: c.Start.UTC(),
				}
				if err := tx.Omit("Activities").Create(&model).Error; err != nil {
					return fmt.Errorf("failed to create candidate session: %w", err)
				}
				for _, id := range c.ActivityIDs {
					link := CandidateActivityModel{ActivityID: id, CandidateSessionID: model.ID}
					if err := tx.Create(&link).Error; err != nil {
						return fmt.Errorf("failed to link candidate activity %d: %w", id, err)
					}
				}
			}

			for _, s := range outcome.Sessions {
				model := SessionModel{
					EndTime:   s.End.UTC(),
					Name:      s.Name,
					PublicID:  s.PublicID,
					RunID:     saved.ID,
					StartTime: s.Start.UTC(),
				}
				created := tx.Omit("Activities").Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "public_id"}},
					DoNothing: true,
				}).Create(&model)
				if created.Error != nil {
					return fmt.Errorf("failed to create session: %w", created.Error)
				}
				if created.RowsAffected == 0 {
					// Same grouping finalized by an earlier run
					continue
				}
				for _, id := range s.ActivityIDs {
					link := SessionActivityModel{ActivityID: id, SessionID: model.ID}
					if err := tx.Clauses(clause.OnConflict{
						Columns:   []clause.Column{{Name: "activity_id"}},
						DoNothing: true,
					}).Create(&link).Error; err != nil {
						return fmt.Errorf("failed to link session activity %d: %w", id, err)
					}
				}
			}
			return nil
		})
	}, 3)
	if err != nil {
		return domain.SessionizationRun{}, err
	}

	return runModelToDomain(saved), nil
}

// findRunByBounds returns the stored run with the same candidate creation
// range, nil when there is none
func findRunByBounds(tx *gorm.DB, run domain.SessionizationRun) (*SessionizationRunModel, error) {
	var found []SessionizationRunModel
	err := tx.Where("candidate_creation_start = ? AND candidate_creation_end = ?",
		run.CandidateCreationStart.UTC(), run.CandidateCreationEnd.UTC()).
		Limit(1).
		Find(&found).Error
	if err != nil {
		return nil, fmt.Errorf("failed to look up run: %w", err)
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}
