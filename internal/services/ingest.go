package services

import (
	"context"
	"fmt"

	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/logging"
	"github.com/renato0307/tally/internal/ports"
)

// IngestService accepts raw events and activity metadata
type IngestService struct {
	activityReader ports.ActivityReader
	activityWriter ports.ActivityWriter
	clock          ports.Clock
	eventWriter    ports.EventWriter
}

// NewIngestService creates a new IngestService
func NewIngestService(
	activityReader ports.ActivityReader,
	activityWriter ports.ActivityWriter,
	eventWriter ports.EventWriter,
	clock ports.Clock,
) *IngestService {
	return &IngestService{
		activityReader: activityReader,
		activityWriter: activityWriter,
		clock:          clock,
		eventWriter:    eventWriter,
	}
}

// Ingest stores a single event
func (s *IngestService) Ingest(ctx context.Context, input EventInput) (IngestReport, error) {
	return s.IngestBatch(ctx, []EventInput{input})
}

// IngestBatch stores a batch of events. Invalid events and events of unknown
// activities are rejected one by one without aborting the batch; re-delivered
// events are counted as duplicates.
func (s *IngestService) IngestBatch(ctx context.Context, inputs []EventInput) (IngestReport, error) {
	var report IngestReport

	valid := make([]domain.ActivityEvent, 0, len(inputs))
	seen := make(map[int64]bool)
	var ids []int64
	for i, in := range inputs {
		if err := validateInput(in); err != nil {
			logging.Logger.Warn("Rejecting invalid event", "index", i, "error", err)
			report.Rejected++
			continue
		}
		valid = append(valid, in.ToDomain())
		if !seen[in.ActivityID] {
			seen[in.ActivityID] = true
			ids = append(ids, in.ActivityID)
		}
	}
	if len(valid) == 0 {
		return report, nil
	}

	known, err := s.activityReader.ListActivitiesByID(ctx, ids)
	if err != nil {
		return report, fmt.Errorf("failed to resolve activities: %w", err)
	}
	exists := make(map[int64]bool, len(known))
	for _, a := range known {
		exists[a.ID] = true
	}

	accepted := valid[:0]
	for _, e := range valid {
		if !exists[e.ActivityID] {
			logging.Logger.Warn("Rejecting event for unknown activity",
				"activity_id", e.ActivityID,
				"event_time", e.EventTime)
			report.Rejected++
			continue
		}
		accepted = append(accepted, e)
	}
	if len(accepted) == 0 {
		return report, nil
	}

	inserted, err := s.eventWriter.InsertEvents(ctx, accepted)
	if err != nil {
		return report, fmt.Errorf("failed to insert events: %w", err)
	}
	report.Accepted = inserted
	report.Duplicate = len(accepted) - inserted

	logging.Logger.Debug("Ingested event batch",
		"accepted", report.Accepted,
		"duplicate", report.Duplicate,
		"rejected", report.Rejected)
	return report, nil
}

// ImportActivities upserts activity metadata from the curation feed.
// Manual entries are stamped with the current time as their last manual action.
func (s *IngestService) ImportActivities(ctx context.Context, inputs []ActivityInput) (int, error) {
	now := s.clock.Now()
	activities := make([]domain.Activity, 0, len(inputs))
	for i, in := range inputs {
		if err := validateInput(in); err != nil {
			return 0, fmt.Errorf("activity %d: %w", i, err)
		}
		a := in.ToDomain()
		if a.IsManual() {
			touched := now
			a.LastManualActionTime = &touched
		}
		activities = append(activities, a)
	}

	changed, err := s.activityWriter.UpsertActivities(ctx, activities)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert activities: %w", err)
	}
	logging.Logger.Info("Imported activities", "count", changed)
	return changed, nil
}

// ListActivities returns all known activities
func (s *IngestService) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	return s.activityReader.ListActivities(ctx)
}
