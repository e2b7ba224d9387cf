package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/intervals"
	"github.com/renato0307/tally/internal/logging"
	"github.com/renato0307/tally/internal/ports"
)

const (
	// insightsCacheTTL is how long a computed timeline is reused
	insightsCacheTTL = 60 * time.Second
)

// ActivityIntervals is the reconstructed coverage of one activity
type ActivityIntervals struct {
	Activity  domain.Activity
	Intervals []intervals.Interval
}

// FocusReport lists focus sessions with their summary statistics
type FocusReport struct {
	Sessions []intervals.FocusSession
	Summary  intervals.FocusSummary
}

type timelineKey struct {
	end   int64
	start int64
}

type timelineEntry struct {
	refreshedAt time.Time
	segments    []intervals.Segment
}

// InsightsService computes read-only projections from the raw event log
type InsightsService struct {
	activityReader ports.ActivityReader
	cache          map[timelineKey]timelineEntry
	cacheMu        sync.RWMutex
	clock          ports.Clock
	eventReader    ports.EventReader
	focus          intervals.FocusConfig
}

// NewInsightsService creates a new InsightsService
func NewInsightsService(
	activityReader ports.ActivityReader,
	eventReader ports.EventReader,
	clock ports.Clock,
	focus intervals.FocusConfig,
) *InsightsService {
	return &InsightsService{
		activityReader: activityReader,
		cache:          make(map[timelineKey]timelineEntry),
		clock:          clock,
		eventReader:    eventReader,
		focus:          focus,
	}
}

// Intervals returns the intervals of every activity with coverage in [start, end)
func (s *InsightsService) Intervals(ctx context.Context, start, end time.Time) ([]ActivityIntervals, error) {
	if !end.After(start) {
		return nil, domain.ErrInvalidWindowBounds
	}

	events, err := s.eventReader.ListEvents(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(events))
	for id := range events {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	activities, err := s.activityReader.ListActivitiesByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	var out []ActivityIntervals
	for _, a := range activities {
		ivs, err := intervals.Build(intervals.EventsFromActivity(events[a.ID]), start, end, now)
		if err != nil {
			return nil, fmt.Errorf("failed to build intervals for activity %d: %w", a.ID, err)
		}
		if len(ivs) == 0 {
			continue
		}
		out = append(out, ActivityIntervals{Activity: a, Intervals: ivs})
	}
	return out, nil
}

// Timeline returns the max-productivity series over [start, end) (cached)
func (s *InsightsService) Timeline(ctx context.Context, start, end time.Time) ([]intervals.Segment, error) {
	if !end.After(start) {
		return nil, domain.ErrInvalidWindowBounds
	}
	key := timelineKey{end: end.UnixNano(), start: start.UnixNano()}

	s.cacheMu.RLock()
	entry, ok := s.cache[key]
	s.cacheMu.RUnlock()
	if ok && s.clock.Now().Sub(entry.refreshedAt) < insightsCacheTTL {
		return entry.segments, nil
	}

	return s.refreshTimeline(ctx, key, start, end)
}

func (s *InsightsService) refreshTimeline(ctx context.Context, key timelineKey, start, end time.Time) ([]intervals.Segment, error) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	// Double-check after acquiring write lock
	now := s.clock.Now()
	if entry, ok := s.cache[key]; ok && now.Sub(entry.refreshedAt) < insightsCacheTTL {
		return entry.segments, nil
	}

	logging.Logger.Debug("Refreshing insights timeline", "start", start, "end", end)

	perActivity, err := s.Intervals(ctx, start, end)
	if err != nil {
		return nil, err
	}

	type scored struct {
		intervals.Interval
		score float64
	}
	var items []scored
	for _, ai := range perActivity {
		score := ai.Activity.Productivity.Score()
		for _, iv := range ai.Intervals {
			items = append(items, scored{Interval: iv, score: score})
		}
	}
	segments := intervals.ReduceMaxConcurrency(items, func(x scored) float64 { return x.score })

	for k, e := range s.cache {
		if now.Sub(e.refreshedAt) >= insightsCacheTTL {
			delete(s.cache, k)
		}
	}
	s.cache[key] = timelineEntry{refreshedAt: now, segments: segments}
	return segments, nil
}

// Buckets aggregates the timeline into calendar slots in loc
func (s *InsightsService) Buckets(ctx context.Context, start, end time.Time, kind intervals.BucketKind, loc *time.Location) ([]intervals.Bucket, error) {
	segments, err := s.Timeline(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return intervals.Buckets(segments, kind, loc), nil
}

// FocusSessions detects focus sessions in [start, end) and summarizes them
func (s *InsightsService) FocusSessions(ctx context.Context, start, end time.Time) (FocusReport, error) {
	segments, err := s.Timeline(ctx, start, end)
	if err != nil {
		return FocusReport{}, err
	}

	sessions := intervals.DetectFocusSessions(segments, s.focus)
	summary, err := intervals.SummarizeFocus(sessions)
	if err != nil {
		return FocusReport{}, fmt.Errorf("failed to summarize focus sessions: %w", err)
	}
	return FocusReport{Sessions: sessions, Summary: summary}, nil
}
