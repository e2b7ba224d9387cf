package storage

import (
	"time"

	"github.com/renato0307/tally/internal/domain"
)

// utcPtr normalises an optional timestamp to UTC
func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func activityModelToDomain(m ActivityModel) domain.Activity {
	return domain.Activity{
		Description:          m.Description,
		ID:                   m.ID,
		LastManualActionTime: utcPtr(m.LastManualActionTime),
		Name:                 m.Name,
		Productivity:         domain.ProductivityLevel(m.Productivity),
		Source:               domain.ActivitySource(m.Source),
		Tags:                 m.Tags,
	}
}

func domainToActivityModel(a domain.Activity) ActivityModel {
	source := a.Source
	if source == "" {
		source = domain.SourceAuto
	}
	return ActivityModel{
		Description:          a.Description,
		ID:                   a.ID,
		LastManualActionTime: utcPtr(a.LastManualActionTime),
		Name:                 a.Name,
		Productivity:         string(a.Productivity),
		Source:               string(source),
		Tags:                 a.Tags,
	}
}

func eventModelToDomain(m ActivityEventModel) domain.ActivityEvent {
	return domain.ActivityEvent{
		ActivityID:    m.ActivityID,
		AggregationID: m.AggregationID,
		EventTime:     m.EventTime.UTC(),
		EventType:     domain.EventType(m.EventType),
	}
}

func domainToEventModel(e domain.ActivityEvent) ActivityEventModel {
	return ActivityEventModel{
		ActivityID: e.ActivityID,
		EventTime:  e.EventTime.UTC(),
		EventType:  string(e.EventType),
	}
}

func windowModelToDomain(m AggregationWindowModel) domain.AggregationWindow {
	return domain.AggregationWindow{
		EndTime:        m.EndTime.UTC(),
		FirstTimestamp: utcPtr(m.FirstTimestamp),
		ID:             m.ID,
		LastTimestamp:  utcPtr(m.LastTimestamp),
		StartTime:      m.StartTime.UTC(),
	}
}

func runModelToDomain(m SessionizationRunModel) domain.SessionizationRun {
	return domain.SessionizationRun{
		CandidateCreationEnd:   m.CandidateCreationEnd.UTC(),
		CandidateCreationStart: m.CandidateCreationStart.UTC(),
		CreatedAt:              m.CreatedAt.UTC(),
		FinalizedHorizon:       utcPtr(m.FinalizedHorizon),
		ID:                     m.ID,
		OverlapStart:           utcPtr(m.OverlapStart),
		RightTailEnd:           utcPtr(m.RightTailEnd),
	}
}

func domainToRunModel(r domain.SessionizationRun) SessionizationRunModel {
	return SessionizationRunModel{
		CandidateCreationEnd:   r.CandidateCreationEnd.UTC(),
		CandidateCreationStart: r.CandidateCreationStart.UTC(),
		CreatedAt:              r.CreatedAt.UTC(),
		FinalizedHorizon:       utcPtr(r.FinalizedHorizon),
		OverlapStart:           utcPtr(r.OverlapStart),
		RightTailEnd:           utcPtr(r.RightTailEnd),
	}
}

func candidateModelToDomain(m CandidateSessionModel) domain.CandidateSession {
	ids := make([]int64, 0, len(m.Activities))
	for _, a := range m.Activities {
		ids = append(ids, a.ActivityID)
	}
	return domain.CandidateSession{
		ActivityIDs: ids,
		End:         m.EndTime.UTC(),
		ID:          m.ID,
		Name:        m.Name,
		PublicID:    m.PublicID,
		RunID:       m.RunID,
		Start:       m.StartTime.UTC(),
	}
}

func sessionModelToDomain(m SessionModel) domain.Session {
	ids := make([]int64, 0, len(m.Activities))
	for _, a := range m.Activities {
		ids = append(ids, a.ActivityID)
	}
	return domain.Session{
		ActivityIDs: ids,
		End:         m.EndTime.UTC(),
		ID:          m.ID,
		Name:        m.Name,
		PublicID:    m.PublicID,
		RunID:       m.RunID,
		Start:       m.StartTime.UTC(),
	}
}

func goalModelToDomain(m GoalModel) domain.Goal {
	return domain.Goal{
		CreatedAt: m.CreatedAt.UTC(),
		ID:        m.ID,
		Metric:    domain.GoalMetric(m.Metric),
		Name:      m.Name,
		Operator:  domain.GoalOperator(m.Operator),
		Period:    domain.GoalPeriod(m.Period),
		Timezone:  m.Timezone,
	}
}

func domainToGoalModel(g domain.Goal) GoalModel {
	return GoalModel{
		CreatedAt: g.CreatedAt.UTC(),
		Metric:    string(g.Metric),
		Name:      g.Name,
		Operator:  string(g.Operator),
		Period:    string(g.Period),
		Timezone:  g.Timezone,
	}
}

func definitionModelToDomain(m GoalDefinitionModel) domain.GoalDefinition {
	return domain.GoalDefinition{
		EffectiveFrom: m.EffectiveFrom.UTC(),
		Filters:       m.Filters,
		GoalID:        m.GoalID,
		ID:            m.ID,
		IncludeMode:   domain.IncludeMode(m.IncludeMode),
		TargetValue:   m.TargetValue,
	}
}

func domainToDefinitionModel(d domain.GoalDefinition) GoalDefinitionModel {
	mode := d.IncludeMode
	if mode == "" {
		mode = domain.IncludeAny
	}
	return GoalDefinitionModel{
		EffectiveFrom: d.EffectiveFrom.UTC(),
		Filters:       d.Filters,
		GoalID:        d.GoalID,
		IncludeMode:   string(mode),
		TargetValue:   d.TargetValue,
	}
}

func pauseModelToDomain(m GoalPauseEventModel) domain.GoalPauseEvent {
	return domain.GoalPauseEvent{
		At:        m.At.UTC(),
		EventType: domain.PauseEventType(m.EventType),
		GoalID:    m.GoalID,
		ID:        m.ID,
	}
}

func resultModelToDomain(m GoalResultModel) domain.GoalResult {
	return domain.GoalResult{
		CreatedAt:        m.CreatedAt.UTC(),
		EvalState:        domain.EvalState(m.EvalState),
		EvalStateReason:  m.EvalStateReason,
		GoalDefinitionID: m.GoalDefinitionID,
		MetricValue:      m.MetricValue,
		PeriodEnd:        m.PeriodEnd.UTC(),
		PeriodStart:      m.PeriodStart.UTC(),
		Success:          m.Success,
	}
}

func domainToResultModel(r domain.GoalResult) GoalResultModel {
	return GoalResultModel{
		CreatedAt:        r.CreatedAt.UTC(),
		EvalState:        string(r.EvalState),
		EvalStateReason:  r.EvalStateReason,
		GoalDefinitionID: r.GoalDefinitionID,
		MetricValue:      r.MetricValue,
		PeriodEnd:        r.PeriodEnd.UTC(),
		PeriodStart:      r.PeriodStart.UTC(),
		Success:          r.Success,
	}
}

func progressModelToDomain(m GoalProgressModel) domain.GoalProgress {
	return domain.GoalProgress{
		EvalState:        domain.EvalState(m.EvalState),
		EvalStateReason:  m.EvalStateReason,
		GoalDefinitionID: m.GoalDefinitionID,
		MetricValue:      m.MetricValue,
		PeriodEnd:        m.PeriodEnd.UTC(),
		PeriodStart:      m.PeriodStart.UTC(),
		Success:          m.Success,
		UpdatedAt:        m.UpdatedAt.UTC(),
	}
}

func domainToProgressModel(p domain.GoalProgress) GoalProgressModel {
	return GoalProgressModel{
		EvalState:        string(p.EvalState),
		EvalStateReason:  p.EvalStateReason,
		GoalDefinitionID: p.GoalDefinitionID,
		MetricValue:      p.MetricValue,
		PeriodEnd:        p.PeriodEnd.UTC(),
		PeriodStart:      p.PeriodStart.UTC(),
		Success:          p.Success,
		UpdatedAt:        p.UpdatedAt.UTC(),
	}
}
