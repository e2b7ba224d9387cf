package services

import (
	"time"

	"github.com/renato0307/tally/internal/ports"
)

// SystemClock reads the wall clock
type SystemClock struct{}

var _ ports.Clock = SystemClock{}

// Now returns the current UTC time
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
