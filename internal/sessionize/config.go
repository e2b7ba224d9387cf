// Package sessionize groups activity spans into sessions. It holds the pure
// half of the sessionization engine: run bounds, island extraction, grouping,
// window selection and the finalization split. Persistence lives in services.
package sessionize

import "time"

// Config tunes session detection
type Config struct {
	MaxGap        time.Duration
	MaxOverlap    time.Duration
	MinActivities int
	MinAffinity   float64
	MinLength     time.Duration
	MinPurity     float64
	WindowLength  time.Duration
}

// DefaultConfig returns the stock sessionization settings
func DefaultConfig() Config {
	return Config{
		MaxGap:        10 * time.Minute,
		MaxOverlap:    15 * time.Minute,
		MinActivities: 3,
		MinAffinity:   0.34,
		MinLength:     15 * time.Minute,
		MinPurity:     0.8,
		WindowLength:  30 * time.Minute,
	}
}
