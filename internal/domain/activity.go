package domain

import (
	"fmt"
	"time"
)

// ProductivityLevel is the ordered productivity classification of an activity
type ProductivityLevel string

const (
	ProductivityVeryProductive  ProductivityLevel = "very_productive"
	ProductivityProductive      ProductivityLevel = "productive"
	ProductivityNeutral         ProductivityLevel = "neutral"
	ProductivityDistracting     ProductivityLevel = "distracting"
	ProductivityVeryDistracting ProductivityLevel = "very_distracting"
)

// ProductivityLevels lists all levels from most to least productive
var ProductivityLevels = []ProductivityLevel{
	ProductivityVeryProductive,
	ProductivityProductive,
	ProductivityNeutral,
	ProductivityDistracting,
	ProductivityVeryDistracting,
}

// Score maps a level to its numeric value used by every reducer.
// Unknown levels score 0.
func (p ProductivityLevel) Score() float64 {
	switch p {
	case ProductivityVeryProductive:
		return 1.0
	case ProductivityProductive:
		return 0.8
	case ProductivityNeutral:
		return 0.6
	case ProductivityDistracting:
		return 0.4
	case ProductivityVeryDistracting:
		return 0.2
	default:
		return 0
	}
}

// Valid reports whether p is one of the known levels
func (p ProductivityLevel) Valid() bool {
	return p.Score() > 0
}

// ParseProductivityLevel converts a string to a ProductivityLevel
func ParseProductivityLevel(s string) (ProductivityLevel, error) {
	p := ProductivityLevel(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown productivity level %q", s)
	}
	return p, nil
}

// ActivitySource tells whether an activity was detected automatically or entered by a user
type ActivitySource string

const (
	SourceAuto   ActivitySource = "auto"
	SourceManual ActivitySource = "manual"
)

// Activity is a named unit of work or distraction whose open/close events are tracked
type Activity struct {
	Description          string
	ID                   int64
	LastManualActionTime *time.Time
	Name                 string
	Productivity         ProductivityLevel
	Source               ActivitySource
	Tags                 []string
}

// IsManual reports whether automatic processing must leave this activity alone
func (a Activity) IsManual() bool {
	return a.Source == SourceManual
}

// TouchedManuallyAfter reports whether a user edited the activity after t
func (a Activity) TouchedManuallyAfter(t time.Time) bool {
	return a.LastManualActionTime != nil && a.LastManualActionTime.After(t)
}

// HasTag reports whether the activity carries the given tag
func (a Activity) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
