package domain

import "errors"

var (
	ErrActivityNotFound       = errors.New("activity not found")
	ErrGoalExists             = errors.New("goal already exists")
	ErrGoalNotFound           = errors.New("goal not found")
	ErrInvalidFilter          = errors.New("invalid goal filter")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidPauseTransition = errors.New("invalid pause transition")
	ErrInvalidTimezone        = errors.New("invalid timezone")
	ErrInvalidWindowBounds    = errors.New("invalid window bounds: end must be after start")
	ErrNoActiveDefinition     = errors.New("no goal definition active at evaluation time")
)
