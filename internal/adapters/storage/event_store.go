package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/renato0307/tally/internal/domain"
)

// latestBeforeQuery selects, per activity, the events at its latest timestamp before ?
const latestBeforeQuery = `
	SELECT e.* FROM activity_events e
	JOIN (
		SELECT activity_id, MAX(event_time) AS last_time
		FROM activity_events
		WHERE event_time < ?
		GROUP BY activity_id
	) last ON e.activity_id = last.activity_id AND e.event_time = last.last_time`

// InsertEvents implements EventWriter.InsertEvents.
// Duplicates of (activity_id, event_time, event_type) are ignored.
func (r *SQLiteRepository) InsertEvents(ctx context.Context, events []domain.ActivityEvent) (int, error) {
	inserted := 0
	err := withRetry(func() error {
		inserted = 0
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for _, e := range events {
				model := domainToEventModel(e)
				res := tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "activity_id"}, {Name: "event_time"}, {Name: "event_type"}},
					DoNothing: true,
				}).Create(&model)
				if res.Error != nil {
					return fmt.Errorf("failed to insert event for activity %d: %w", e.ActivityID, res.Error)
				}
				inserted += int(res.RowsAffected)
			}
			return nil
		})
	}, 3)
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// ListEvents implements EventReader.ListEvents
func (r *SQLiteRepository) ListEvents(ctx context.Context, start, end time.Time) (map[int64][]domain.ActivityEvent, error) {
	var inRange, seeds []ActivityEventModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Raw(latestBeforeQuery, start.UTC()).Scan(&seeds).Error; err != nil {
				return err
			}
			return tx.Where("event_time >= ? AND event_time < ?", start.UTC(), end.UTC()).
				Order("event_time, id").
				Find(&inRange).Error
		})
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	result := make(map[int64][]domain.ActivityEvent)
	for _, m := range append(seeds, inRange...) {
		result[m.ActivityID] = append(result[m.ActivityID], eventModelToDomain(m))
	}
	for id := range result {
		events := result[id]
		sort.SliceStable(events, func(i, j int) bool { return events[i].EventTime.Before(events[j].EventTime) })
	}
	return result, nil
}

// ListOpenActivities implements EventReader.ListOpenActivities
func (r *SQLiteRepository) ListOpenActivities(ctx context.Context, before time.Time) ([]domain.OpenActivity, error) {
	var latest []ActivityEventModel
	var activities []ActivityModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Raw(latestBeforeQuery, before.UTC()).Scan(&latest).Error; err != nil {
				return err
			}
			ids := openActivityIDs(latest)
			if len(ids) == 0 {
				return nil
			}
			return tx.Where("id IN ?", ids).Order("id").Find(&activities).Error
		})
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list open activities: %w", err)
	}

	lastTime := make(map[int64]time.Time)
	for _, m := range latest {
		lastTime[m.ActivityID] = m.EventTime.UTC()
	}

	result := make([]domain.OpenActivity, len(activities))
	for i, a := range activities {
		result[i] = domain.OpenActivity{
			Activity:      activityModelToDomain(a),
			LastEventTime: lastTime[a.ID],
		}
	}
	return result, nil
}

// openActivityIDs returns the activities whose latest events include an open.
// A close and an open at the same instant leave the activity open.
func openActivityIDs(latest []ActivityEventModel) []int64 {
	open := make(map[int64]bool)
	for _, m := range latest {
		if m.EventType == string(domain.EventOpen) {
			open[m.ActivityID] = true
		}
	}
	ids := make([]int64, 0, len(open))
	for id := range open {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// CountUnassignedBefore implements EventReader.CountUnassignedBefore
func (r *SQLiteRepository) CountUnassignedBefore(ctx context.Context, t time.Time) (int64, error) {
	var count int64
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Model(&ActivityEventModel{}).
			Where("aggregation_id IS NULL AND event_time < ?", t.UTC()).
			Count(&count).Error
	}, 3)
	if err != nil {
		return 0, fmt.Errorf("failed to count unassigned events: %w", err)
	}
	return count, nil
}

// LastWindow implements WindowReader.LastWindow. It returns nil when no window was processed.
func (r *SQLiteRepository) LastWindow(ctx context.Context) (*domain.AggregationWindow, error) {
	var model AggregationWindowModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("end_time DESC").First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last window: %w", err)
	}

	window := windowModelToDomain(model)
	return &window, nil
}

// ListWindows implements WindowReader.ListWindows, most recent first
func (r *SQLiteRepository) ListWindows(ctx context.Context, limit int) ([]domain.AggregationWindow, error) {
	var models []AggregationWindowModel
	err := withRetry(func() error {
		query := r.db.WithContext(ctx).Order("end_time DESC")
		if limit > 0 {
			query = query.Limit(limit)
		}
		return query.Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list windows: %w", err)
	}

	result := make([]domain.AggregationWindow, len(models))
	for i, m := range models {
		result[i] = windowModelToDomain(m)
	}
	return result, nil
}

// ProcessWindow implements WindowWriter.ProcessWindow
func (r *SQLiteRepository) ProcessWindow(ctx context.Context, start, end time.Time) (domain.AggregationWindow, int64, error) {
	if !end.After(start) {
		return domain.AggregationWindow{}, 0, domain.ErrInvalidWindowBounds
	}
	start, end = start.UTC(), end.UTC()

	var window AggregationWindowModel
	var assigned int64
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			candidate := AggregationWindowModel{EndTime: end, StartTime: start}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "start_time"}, {Name: "end_time"}},
				DoNothing: true,
			}).Create(&candidate).Error; err != nil {
				return fmt.Errorf("failed to upsert window: %w", err)
			}
			if err := tx.Where("start_time = ? AND end_time = ?", start, end).First(&window).Error; err != nil {
				return fmt.Errorf("failed to load window: %w", err)
			}

			res := tx.Model(&ActivityEventModel{}).
				Where("aggregation_id IS NULL AND event_time >= ? AND event_time < ?", start, end).
				Update("aggregation_id", window.ID)
			if res.Error != nil {
				return fmt.Errorf("failed to assign events: %w", res.Error)
			}
			assigned = res.RowsAffected
			if assigned == 0 {
				return nil
			}

			var first, last ActivityEventModel
			if err := tx.Where("aggregation_id = ?", window.ID).Order("event_time ASC").First(&first).Error; err != nil {
				return fmt.Errorf("failed to load first event: %w", err)
			}
			if err := tx.Where("aggregation_id = ?", window.ID).Order("event_time DESC").First(&last).Error; err != nil {
				return fmt.Errorf("failed to load last event: %w", err)
			}

			firstTime, lastTime := first.EventTime.UTC(), last.EventTime.UTC()
			if window.FirstTimestamp != nil && window.FirstTimestamp.Before(firstTime) {
				firstTime = window.FirstTimestamp.UTC()
			}
			if window.LastTimestamp != nil && window.LastTimestamp.After(lastTime) {
				lastTime = window.LastTimestamp.UTC()
			}
			window.FirstTimestamp = &firstTime
			window.LastTimestamp = &lastTime

			return tx.Model(&window).Updates(map[string]any{
				"first_timestamp": firstTime,
				"last_timestamp":  lastTime,
			}).Error
		})
	}, 3)
	if err != nil {
		return domain.AggregationWindow{}, 0, err
	}

	return windowModelToDomain(window), assigned, nil
}
