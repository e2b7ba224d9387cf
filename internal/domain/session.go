package domain

import "time"

// SessionizationRun records the bounds and watermarks of one sessionization cycle.
// Runs form an append-only log; the latest run seeds the next one.
type SessionizationRun struct {
	CandidateCreationEnd   time.Time
	CandidateCreationStart time.Time
	CreatedAt              time.Time
	FinalizedHorizon       *time.Time
	ID                     int64
	OverlapStart           *time.Time
	RightTailEnd           *time.Time
}

// NextStart returns where the following run must begin scanning
func (r SessionizationRun) NextStart() time.Time {
	if r.OverlapStart != nil {
		return *r.OverlapStart
	}
	return r.CandidateCreationEnd
}

// CandidateSession is a tentative grouping that later runs may regroup or finalize
type CandidateSession struct {
	ActivityIDs []int64
	End         time.Time
	ID          int64
	Name        string
	PublicID    string
	RunID       int64
	Start       time.Time
}

// Session is an immutable finalized grouping of activities
type Session struct {
	ActivityIDs []int64
	End         time.Time
	ID          int64
	Name        string
	PublicID    string
	RunID       int64
	Start       time.Time
}

// Duration returns the wall-clock length of the session
func (s Session) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// SessionizationOutcome is everything one run persists atomically
type SessionizationOutcome struct {
	Candidates []CandidateSession
	Run        SessionizationRun
	Sessions   []Session
}
