package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/logging"
	"github.com/renato0307/tally/internal/ports"
	"github.com/renato0307/tally/internal/sessionize"
)

// sessionNamespace seeds the deterministic public ids of sessions and candidates
var sessionNamespace = uuid.MustParse("5b7e0c1a-3f0d-4c38-9a51-0f6f7d5e2c11")

// Run phases, recorded in logs
const (
	phaseCollecting = "collecting candidates"
	phaseAwaiting   = "awaiting watermark"
	phaseFinalizing = "finalizing"
	phaseClosed     = "closed"
)

// SessionizationResult describes one sessionization run
type SessionizationResult struct {
	Candidates int
	Run        *domain.SessionizationRun
	Sessions   int
	Skipped    bool
}

// SessionGroupings is the candidate vs finalized view of a time range
type SessionGroupings struct {
	Candidates []domain.CandidateSession
	Sessions   []domain.Session
}

// SessionizationService runs the watermark engine against the store
type SessionizationService struct {
	activityReader ports.ActivityReader
	clock          ports.Clock
	config         sessionize.Config
	eventReader    ports.EventReader
	sessionReader  ports.SessionizationReader
	sessionWriter  ports.SessionizationWriter
	windowReader   ports.WindowReader
}

// NewSessionizationService creates a new SessionizationService
func NewSessionizationService(
	activityReader ports.ActivityReader,
	eventReader ports.EventReader,
	windowReader ports.WindowReader,
	sessionReader ports.SessionizationReader,
	sessionWriter ports.SessionizationWriter,
	clock ports.Clock,
	config sessionize.Config,
) *SessionizationService {
	return &SessionizationService{
		activityReader: activityReader,
		clock:          clock,
		config:         config,
		eventReader:    eventReader,
		sessionReader:  sessionReader,
		sessionWriter:  sessionWriter,
		windowReader:   windowReader,
	}
}

// Run executes one sessionization cycle. Nothing is written when no window
// closed since the previous run.
func (s *SessionizationService) Run(ctx context.Context) (SessionizationResult, error) {
	prev, err := s.sessionReader.LatestRun(ctx)
	if err != nil {
		return SessionizationResult{}, err
	}
	last, err := s.windowReader.LastWindow(ctx)
	if err != nil {
		return SessionizationResult{}, err
	}
	if last == nil {
		logging.Logger.Debug("Skipping sessionization: no processed window")
		return SessionizationResult{Skipped: true}, nil
	}

	start, end, ok := sessionize.NextBounds(prev, last.EndTime, s.config)
	if !ok {
		logging.Logger.Debug("Skipping sessionization: no new window since last run",
			"last_window_end", last.EndTime)
		return SessionizationResult{Skipped: true}, nil
	}

	log := logging.Logger.With("run_start", start, "run_end", end)
	log.Info("Sessionization run", "phase", phaseCollecting)

	spans, err := s.collectSpans(ctx, start, end)
	if err != nil {
		return SessionizationResult{}, err
	}
	candidates, err := s.sessionReader.ListCandidates(ctx)
	if err != nil {
		return SessionizationResult{}, err
	}

	plan := sessionize.Plan(sessionize.RunInput{
		Carry:    sessionize.GroupsFromCandidates(candidates),
		Config:   s.config,
		End:      end,
		Previous: prev,
		Spans:    spans,
	})
	if plan.FinalizedHorizon != nil {
		log.Info("Sessionization run", "phase", phaseAwaiting,
			"finalized_horizon", *plan.FinalizedHorizon,
			"tail_candidates", len(plan.Candidates))
	}
	log.Info("Sessionization run", "phase", phaseFinalizing, "sessions", len(plan.Sessions))

	outcome := s.buildOutcome(start, end, spans, plan)
	saved, err := s.sessionWriter.SaveOutcome(ctx, outcome)
	if err != nil {
		return SessionizationResult{}, fmt.Errorf("failed to save sessionization outcome: %w", err)
	}
	log.Info("Sessionization run", "phase", phaseClosed, "run_id", saved.ID)

	return SessionizationResult{
		Candidates: len(outcome.Candidates),
		Run:        &saved,
		Sessions:   len(outcome.Sessions),
	}, nil
}

// collectSpans builds the spans of every activity with events in the range
// that is not yet part of a finalized session
func (s *SessionizationService) collectSpans(ctx context.Context, start, end time.Time) ([]sessionize.Span, error) {
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

	finalized, err := s.sessionReader.FinalizedActivityIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	open := ids[:0]
	for _, id := range ids {
		if !finalized[id] {
			open = append(open, id)
		}
	}
	if len(open) == 0 {
		return nil, nil
	}

	activities, err := s.activityReader.ListActivitiesByID(ctx, open)
	if err != nil {
		return nil, err
	}
	return sessionize.BuildSpans(activities, events, start, end)
}

func (s *SessionizationService) buildOutcome(start, end time.Time, spans []sessionize.Span, plan sessionize.RunPlan) domain.SessionizationOutcome {
	byID := make(map[int64]sessionize.Span, len(spans))
	for _, sp := range spans {
		byID[sp.ActivityID] = sp
	}

	outcome := domain.SessionizationOutcome{
		Run: domain.SessionizationRun{
			CandidateCreationEnd:   end,
			CandidateCreationStart: start,
			CreatedAt:              s.clock.Now(),
			FinalizedHorizon:       plan.FinalizedHorizon,
			OverlapStart:           plan.OverlapStart,
			RightTailEnd:           plan.RightTailEnd,
		},
	}

	used := make(map[string]bool)
	for _, g := range plan.Candidates {
		first, last := memberBounds(g.ActivityIDs, byID)
		id := g.PublicID
		if id == "" || used[id] {
			id = derivePublicID(g.PublicID, g.ActivityIDs)
		}
		used[id] = true
		outcome.Candidates = append(outcome.Candidates, domain.CandidateSession{
			ActivityIDs: g.ActivityIDs,
			End:         last,
			Name:        g.Name,
			PublicID:    id,
			Start:       first,
		})
	}

	// Member sets of sessions are disjoint, so derived ids never collide
	for _, w := range plan.Sessions {
		outcome.Sessions = append(outcome.Sessions, domain.Session{
			ActivityIDs: w.ActivityIDs,
			End:         w.End,
			Name:        w.Name,
			PublicID:    derivePublicID(w.PublicID, w.ActivityIDs),
			Start:       w.Start,
		})
	}
	return outcome
}

// memberBounds returns the earliest start and latest end of the members
func memberBounds(ids []int64, byID map[int64]sessionize.Span) (time.Time, time.Time) {
	var first, last time.Time
	for _, id := range ids {
		sp, ok := byID[id]
		if !ok {
			continue
		}
		if first.IsZero() || sp.Start.Before(first) {
			first = sp.Start
		}
		if sp.End.After(last) {
			last = sp.End
		}
	}
	return first, last
}

// derivePublicID hashes the carried id and the member set into a stable id
func derivePublicID(carried string, ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	name := carried + "|" + strings.Join(parts, ",")
	return uuid.NewSHA1(sessionNamespace, []byte(name)).String()
}

// CatchUp repeats runs until one is skipped
func (s *SessionizationService) CatchUp(ctx context.Context) ([]SessionizationResult, error) {
	var results []SessionizationResult
	for {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		result, err := s.Run(ctx)
		if err != nil {
			return results, err
		}
		if result.Skipped {
			return results, nil
		}
		results = append(results, result)
	}
}

// Groupings returns the candidates and the finalized sessions overlapping [start, end)
func (s *SessionizationService) Groupings(ctx context.Context, start, end time.Time) (SessionGroupings, error) {
	if !end.After(start) {
		return SessionGroupings{}, domain.ErrInvalidWindowBounds
	}

	sessions, err := s.sessionReader.ListSessions(ctx, start, end)
	if err != nil {
		return SessionGroupings{}, err
	}
	all, err := s.sessionReader.ListCandidates(ctx)
	if err != nil {
		return SessionGroupings{}, err
	}

	var candidates []domain.CandidateSession
	for _, c := range all {
		if c.Start.Before(end) && c.End.After(start) {
			candidates = append(candidates, c)
		}
	}
	return SessionGroupings{Candidates: candidates, Sessions: sessions}, nil
}

// LatestRun returns the most recent run, nil before the first one
func (s *SessionizationService) LatestRun(ctx context.Context) (*domain.SessionizationRun, error) {
	return s.sessionReader.LatestRun(ctx)
}
