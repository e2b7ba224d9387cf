package services

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/renato0307/tally/internal/domain"
)

var validate = validator.New()

// EventInput is one raw event as received from a device feed
type EventInput struct {
	ActivityID int64     `json:"activity_id" validate:"required,gt=0"`
	EventTime  time.Time `json:"event_time" validate:"required"`
	EventType  string    `json:"event_type" validate:"required,oneof=open close"`
}

// ToDomain converts the input, normalizing the time to UTC
func (e EventInput) ToDomain() domain.ActivityEvent {
	return domain.ActivityEvent{
		ActivityID: e.ActivityID,
		EventTime:  e.EventTime.UTC(),
		EventType:  domain.EventType(e.EventType),
	}
}

// ActivityInput is one activity upsert from the curation feed
type ActivityInput struct {
	Description  string   `json:"description,omitempty" validate:"max=2000"`
	ID           int64    `json:"id" validate:"required,gt=0"`
	Name         string   `json:"name" validate:"required,max=200"`
	Productivity string   `json:"productivity_level" validate:"required,oneof=very_productive productive neutral distracting very_distracting"`
	Source       string   `json:"source,omitempty" validate:"omitempty,oneof=auto manual"`
	Tags         []string `json:"tags,omitempty" validate:"dive,required,max=64"`
}

// ToDomain converts the input. An empty source means auto.
func (a ActivityInput) ToDomain() domain.Activity {
	source := domain.ActivitySource(a.Source)
	if source == "" {
		source = domain.SourceAuto
	}
	return domain.Activity{
		Description:  a.Description,
		ID:           a.ID,
		Name:         a.Name,
		Productivity: domain.ProductivityLevel(a.Productivity),
		Source:       source,
		Tags:         a.Tags,
	}
}

// DefinitionInput is one version of a goal's configuration
type DefinitionInput struct {
	EffectiveFrom *time.Time         `json:"effective_from,omitempty"`
	Filters       domain.GoalFilters `json:"filters"`
	IncludeMode   string             `json:"include_mode,omitempty" validate:"omitempty,oneof=any all"`
	TargetValue   float64            `json:"target_value" validate:"gte=0"`
}

// ToDomain converts the input, defaulting include mode to any and the effective time to now
func (d DefinitionInput) ToDomain(goalID int64, now time.Time) domain.GoalDefinition {
	mode := domain.IncludeMode(d.IncludeMode)
	if mode == "" {
		mode = domain.IncludeAny
	}
	effective := now
	if d.EffectiveFrom != nil {
		effective = *d.EffectiveFrom
	}
	return domain.GoalDefinition{
		EffectiveFrom: effective.UTC(),
		Filters:       d.Filters,
		GoalID:        goalID,
		IncludeMode:   mode,
		TargetValue:   d.TargetValue,
	}
}

// GoalInput creates a goal together with its first definition
type GoalInput struct {
	Definition DefinitionInput `json:"definition"`
	Metric     string          `json:"metric" validate:"required,oneof=total_activity_duration productivity_level"`
	Name       string          `json:"name" validate:"required,max=200"`
	Operator   string          `json:"operator" validate:"required,oneof=less_than greater_than"`
	Period     string          `json:"period" validate:"required,oneof=day week month"`
	Timezone   string          `json:"timezone" validate:"required,timezone"`
}

// IngestReport counts the outcome of an ingest batch
type IngestReport struct {
	Accepted  int `json:"accepted"`
	Duplicate int `json:"duplicate"`
	Rejected  int `json:"rejected"`
}

// validateInput runs the struct validator and wraps failures with the field names
func validateInput(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
