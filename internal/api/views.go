package api

import (
	"time"

	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/intervals"
	"github.com/renato0307/tally/internal/services"
)

type activityView struct {
	Description       string   `json:"description,omitempty"`
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	ProductivityLevel string   `json:"productivity_level"`
	Source            string   `json:"source"`
	Tags              []string `json:"tags"`
}

func toActivityView(a domain.Activity) activityView {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return activityView{
		Description:       a.Description,
		ID:                a.ID,
		Name:              a.Name,
		ProductivityLevel: string(a.Productivity),
		Source:            string(a.Source),
		Tags:              tags,
	}
}

type intervalView struct {
	End            time.Time `json:"end"`
	IsOngoing      bool      `json:"is_ongoing"`
	Start          time.Time `json:"start"`
	TruncatedEnd   bool      `json:"truncated_end"`
	TruncatedStart bool      `json:"truncated_start"`
}

type activityIntervalsView struct {
	Activity  activityView   `json:"activity"`
	Intervals []intervalView `json:"intervals"`
}

func toActivityIntervalsViews(in []services.ActivityIntervals) []activityIntervalsView {
	out := make([]activityIntervalsView, 0, len(in))
	for _, ai := range in {
		ivs := make([]intervalView, 0, len(ai.Intervals))
		for _, iv := range ai.Intervals {
			ivs = append(ivs, intervalView{
				End:            iv.End,
				IsOngoing:      iv.IsOngoing,
				Start:          iv.Start,
				TruncatedEnd:   iv.TruncatedEnd,
				TruncatedStart: iv.TruncatedStart,
			})
		}
		out = append(out, activityIntervalsView{Activity: toActivityView(ai.Activity), Intervals: ivs})
	}
	return out
}

type focusView struct {
	Sessions []intervals.FocusSession `json:"sessions"`
	Summary  intervals.FocusSummary   `json:"summary"`
}

type groupView struct {
	ActivityIDs []int64   `json:"activity_ids"`
	End         time.Time `json:"end"`
	Name        string    `json:"name"`
	PublicID    string    `json:"public_id"`
	Start       time.Time `json:"start"`
}

type groupingsView struct {
	Candidates []groupView `json:"candidates"`
	Sessions   []groupView `json:"sessions"`
}

func toGroupingsView(g services.SessionGroupings) groupingsView {
	view := groupingsView{
		Candidates: make([]groupView, 0, len(g.Candidates)),
		Sessions:   make([]groupView, 0, len(g.Sessions)),
	}
	for _, c := range g.Candidates {
		view.Candidates = append(view.Candidates, groupView{
			ActivityIDs: c.ActivityIDs,
			End:         c.End,
			Name:        c.Name,
			PublicID:    c.PublicID,
			Start:       c.Start,
		})
	}
	for _, s := range g.Sessions {
		view.Sessions = append(view.Sessions, groupView{
			ActivityIDs: s.ActivityIDs,
			End:         s.End,
			Name:        s.Name,
			PublicID:    s.PublicID,
			Start:       s.Start,
		})
	}
	return view
}

type definitionView struct {
	EffectiveFrom time.Time          `json:"effective_from"`
	Filters       domain.GoalFilters `json:"filters"`
	ID            int64              `json:"id"`
	IncludeMode   string             `json:"include_mode"`
	TargetValue   float64            `json:"target_value"`
}

func toDefinitionView(d domain.GoalDefinition) definitionView {
	return definitionView{
		EffectiveFrom: d.EffectiveFrom,
		Filters:       d.Filters,
		ID:            d.ID,
		IncludeMode:   string(d.IncludeMode),
		TargetValue:   d.TargetValue,
	}
}

type goalView struct {
	CreatedAt   time.Time        `json:"created_at"`
	Definitions []definitionView `json:"definitions"`
	ID          int64            `json:"id"`
	Metric      string           `json:"metric"`
	Name        string           `json:"name"`
	Operator    string           `json:"operator"`
	Paused      bool             `json:"paused"`
	Period      string           `json:"period"`
	Timezone    string           `json:"timezone"`
}

func toGoalView(g domain.GoalWithDefinitions, paused bool) goalView {
	defs := make([]definitionView, 0, len(g.Definitions))
	for _, d := range g.Definitions {
		defs = append(defs, toDefinitionView(d))
	}
	return goalView{
		CreatedAt:   g.Goal.CreatedAt,
		Definitions: defs,
		ID:          g.Goal.ID,
		Metric:      string(g.Goal.Metric),
		Name:        g.Goal.Name,
		Operator:    string(g.Goal.Operator),
		Paused:      paused,
		Period:      string(g.Goal.Period),
		Timezone:    g.Goal.Timezone,
	}
}

type resultView struct {
	CreatedAt        time.Time `json:"created_at"`
	EvalState        string    `json:"eval_state"`
	EvalStateReason  string    `json:"eval_state_reason,omitempty"`
	GoalDefinitionID int64     `json:"goal_definition_id"`
	MetricValue      float64   `json:"metric_value"`
	PeriodEnd        time.Time `json:"period_end"`
	PeriodStart      time.Time `json:"period_start"`
	Success          *bool     `json:"success"`
}

func toResultView(r domain.GoalResult) resultView {
	return resultView{
		CreatedAt:        r.CreatedAt,
		EvalState:        string(r.EvalState),
		EvalStateReason:  r.EvalStateReason,
		GoalDefinitionID: r.GoalDefinitionID,
		MetricValue:      r.MetricValue,
		PeriodEnd:        r.PeriodEnd,
		PeriodStart:      r.PeriodStart,
		Success:          r.Success,
	}
}

type progressView struct {
	EvalState        string    `json:"eval_state"`
	EvalStateReason  string    `json:"eval_state_reason,omitempty"`
	GoalDefinitionID int64     `json:"goal_definition_id"`
	MetricValue      float64   `json:"metric_value"`
	PeriodEnd        time.Time `json:"period_end"`
	PeriodStart      time.Time `json:"period_start"`
	Success          *bool     `json:"success"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func toProgressView(p domain.GoalProgress) progressView {
	return progressView{
		EvalState:        string(p.EvalState),
		EvalStateReason:  p.EvalStateReason,
		GoalDefinitionID: p.GoalDefinitionID,
		MetricValue:      p.MetricValue,
		PeriodEnd:        p.PeriodEnd,
		PeriodStart:      p.PeriodStart,
		Success:          p.Success,
		UpdatedAt:        p.UpdatedAt,
	}
}

type goalStatusView struct {
	Closed   []resultView  `json:"closed"`
	Goal     goalView      `json:"goal"`
	Progress *progressView `json:"progress"`
}

// toGoalStatusView lists only the definition active at evaluation time
func toGoalStatusView(st services.GoalStatus) goalStatusView {
	g := domain.GoalWithDefinitions{Definitions: []domain.GoalDefinition{st.Definition}, Goal: st.Goal}
	view := goalStatusView{
		Closed: make([]resultView, 0, len(st.Closed)),
		Goal:   toGoalView(g, st.Paused),
	}
	for _, r := range st.Closed {
		view.Closed = append(view.Closed, toResultView(r))
	}
	if st.Progress != nil {
		p := toProgressView(*st.Progress)
		view.Progress = &p
	}
	return view
}

type windowView struct {
	EndTime        time.Time  `json:"end_time"`
	FirstTimestamp *time.Time `json:"first_timestamp"`
	ID             int64      `json:"id"`
	LastTimestamp  *time.Time `json:"last_timestamp"`
	StartTime      time.Time  `json:"start_time"`
}

func toWindowView(w domain.AggregationWindow) windowView {
	return windowView{
		EndTime:        w.EndTime,
		FirstTimestamp: w.FirstTimestamp,
		ID:             w.ID,
		LastTimestamp:  w.LastTimestamp,
		StartTime:      w.StartTime,
	}
}

type windowStatusView struct {
	LastWindow *windowView  `json:"last_window"`
	LateEvents int64        `json:"late_events"`
	Recent     []windowView `json:"recent"`
}
