package ports

import (
	"context"
	"time"

	"github.com/renato0307/tally/internal/domain"
)

// SessionizationReader reads runs, candidates and finalized sessions
type SessionizationReader interface {
	FinalizedActivityIDs(ctx context.Context, ids []int64) (map[int64]bool, error)
	LatestRun(ctx context.Context) (*domain.SessionizationRun, error)
	ListCandidates(ctx context.Context) ([]domain.CandidateSession, error)
	ListSessions(ctx context.Context, start, end time.Time) ([]domain.Session, error)
}

// SessionizationWriter persists the outcome of one run atomically
type SessionizationWriter interface {
	SaveOutcome(ctx context.Context, outcome domain.SessionizationOutcome) (domain.SessionizationRun, error)
}
