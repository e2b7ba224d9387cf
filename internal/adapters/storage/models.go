package storage

import (
	"time"

	"github.com/renato0307/tally/internal/domain"
)

// ActivityModel is the GORM model for activities table
type ActivityModel struct {
	CreatedAt            time.Time
	Description          string     `gorm:"not null;default:''"`
	ID                   int64      `gorm:"primaryKey;autoIncrement:false"`
	LastManualActionTime *time.Time `gorm:"default:null"`
	Name                 string     `gorm:"not null"`
	Productivity         string     `gorm:"not null;check:productivity IN ('very_productive','productive','neutral','distracting','very_distracting')"`
	Source               string     `gorm:"not null;default:'auto';check:source IN ('auto','manual')"`
	Tags                 []string   `gorm:"serializer:json"`
	UpdatedAt            time.Time
}

// TableName specifies the table name for GORM
func (ActivityModel) TableName() string { return "activities" }

// ActivityEventModel is the GORM model for the raw event log
type ActivityEventModel struct {
	Activity      *ActivityModel `gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE"`
	ActivityID    int64          `gorm:"not null;uniqueIndex:idx_event_natural_key,priority:1"`
	AggregationID *int64         `gorm:"index:idx_event_aggregation;default:null"`
	CreatedAt     time.Time
	EventTime     time.Time `gorm:"not null;uniqueIndex:idx_event_natural_key,priority:2;index:idx_event_time"`
	EventType     string    `gorm:"not null;uniqueIndex:idx_event_natural_key,priority:3;check:event_type IN ('open','close')"`
	ID            int64     `gorm:"primaryKey"`
}

// TableName specifies the table name for GORM
func (ActivityEventModel) TableName() string { return "activity_events" }

// AggregationWindowModel is the GORM model for aggregation windows
type AggregationWindowModel struct {
	CreatedAt      time.Time
	EndTime        time.Time  `gorm:"not null;uniqueIndex:idx_window_bounds,priority:2"`
	FirstTimestamp *time.Time `gorm:"default:null"`
	ID             int64      `gorm:"primaryKey"`
	LastTimestamp  *time.Time `gorm:"default:null"`
	StartTime      time.Time  `gorm:"not null;uniqueIndex:idx_window_bounds,priority:1"`
}

// TableName specifies the table name for GORM
func (AggregationWindowModel) TableName() string { return "aggregation_windows" }

// SessionizationRunModel is the GORM model for the sessionization run log
type SessionizationRunModel struct {
	CandidateCreationEnd   time.Time `gorm:"not null;index:idx_run_end;uniqueIndex:idx_run_bounds,priority:2"`
	CandidateCreationStart time.Time `gorm:"not null;uniqueIndex:idx_run_bounds,priority:1"`
	CreatedAt              time.Time
	FinalizedHorizon       *time.Time `gorm:"default:null"`
	ID                     int64      `gorm:"primaryKey"`
	OverlapStart           *time.Time `gorm:"default:null"`
	RightTailEnd           *time.Time `gorm:"default:null"`
}

// TableName specifies the table name for GORM
func (SessionizationRunModel) TableName() string { return "sessionization_runs" }

// CandidateSessionModel is the GORM model for tentative session groupings
type CandidateSessionModel struct {
	Activities []CandidateActivityModel `gorm:"foreignKey:CandidateSessionID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
	EndTime    time.Time `gorm:"not null"`
	ID         int64     `gorm:"primaryKey"`
	Name       string    `gorm:"not null;default:''"`
	PublicID   string    `gorm:"not null;uniqueIndex:idx_candidate_public_id"`
	RunID      int64     `gorm:"not null;index:idx_candidate_run"`
	StartTime  time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (CandidateSessionModel) TableName() string { return "candidate_sessions" }

// CandidateActivityModel maps activities to candidate sessions
type CandidateActivityModel struct {
	ActivityID         int64 `gorm:"primaryKey;autoIncrement:false"`
	CandidateSessionID int64 `gorm:"primaryKey;autoIncrement:false"`
}

// TableName specifies the table name for GORM
func (CandidateActivityModel) TableName() string { return "candidate_session_activities" }

// SessionModel is the GORM model for finalized sessions
type SessionModel struct {
	Activities []SessionActivityModel `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
	EndTime    time.Time `gorm:"not null;index:idx_session_range,priority:2"`
	ID         int64     `gorm:"primaryKey"`
	Name       string    `gorm:"not null;default:''"`
	PublicID   string    `gorm:"not null;uniqueIndex:idx_session_public_id"`
	RunID      int64     `gorm:"not null;index:idx_session_run"`
	StartTime  time.Time `gorm:"not null;index:idx_session_range,priority:1"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string { return "sessions" }

// SessionActivityModel maps an activity to the single finalized session owning it
type SessionActivityModel struct {
	ActivityID int64 `gorm:"primaryKey;autoIncrement:false"`
	SessionID  int64 `gorm:"not null;index:idx_session_activity_session"`
}

// TableName specifies the table name for GORM
func (SessionActivityModel) TableName() string { return "session_activities" }

// GoalModel is the GORM model for goals table
type GoalModel struct {
	CreatedAt time.Time
	ID        int64  `gorm:"primaryKey"`
	Metric    string `gorm:"not null;check:metric IN ('total_activity_duration','productivity_level')"`
	Name      string `gorm:"not null;uniqueIndex:idx_goal_name"`
	Operator  string `gorm:"not null;check:operator IN ('less_than','greater_than')"`
	Period    string `gorm:"not null;check:period IN ('day','week','month')"`
	Timezone  string `gorm:"not null;default:'UTC'"`
}

// TableName specifies the table name for GORM
func (GoalModel) TableName() string { return "goals" }

// GoalDefinitionModel is the GORM model for versioned goal definitions
type GoalDefinitionModel struct {
	CreatedAt     time.Time
	EffectiveFrom time.Time          `gorm:"not null;index:idx_definition_goal,priority:2"`
	Filters       domain.GoalFilters `gorm:"serializer:json"`
	Goal          *GoalModel         `gorm:"foreignKey:GoalID;constraint:OnDelete:CASCADE"`
	GoalID        int64              `gorm:"not null;index:idx_definition_goal,priority:1"`
	ID            int64              `gorm:"primaryKey"`
	IncludeMode   string             `gorm:"not null;default:'any';check:include_mode IN ('any','all')"`
	TargetValue   float64            `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (GoalDefinitionModel) TableName() string { return "goal_definitions" }

// GoalPauseEventModel is the GORM model for the goal pause log
type GoalPauseEventModel struct {
	At        time.Time  `gorm:"not null;index:idx_pause_goal,priority:2"`
	EventType string     `gorm:"not null;check:event_type IN ('pause','resume')"`
	Goal      *GoalModel `gorm:"foreignKey:GoalID;constraint:OnDelete:CASCADE"`
	GoalID    int64      `gorm:"not null;index:idx_pause_goal,priority:1"`
	ID        int64      `gorm:"primaryKey"`
}

// TableName specifies the table name for GORM
func (GoalPauseEventModel) TableName() string { return "goal_pause_events" }

// GoalResultModel is the GORM model for closed goal periods
type GoalResultModel struct {
	CreatedAt        time.Time
	EvalState        string    `gorm:"not null;check:eval_state IN ('ok','partial','na','paused')"`
	EvalStateReason  string    `gorm:"not null;default:''"`
	GoalDefinitionID int64     `gorm:"not null;uniqueIndex:idx_result_period,priority:1"`
	ID               int64     `gorm:"primaryKey"`
	MetricValue      float64   `gorm:"not null;default:0"`
	PeriodEnd        time.Time `gorm:"not null"`
	PeriodStart      time.Time `gorm:"not null;uniqueIndex:idx_result_period,priority:2"`
	Success          *bool
}

// TableName specifies the table name for GORM
func (GoalResultModel) TableName() string { return "goal_results" }

// GoalProgressModel is the GORM model for the live progress of a goal definition
type GoalProgressModel struct {
	EvalState        string    `gorm:"not null;check:eval_state IN ('ok','partial','na','paused')"`
	EvalStateReason  string    `gorm:"not null;default:''"`
	GoalDefinitionID int64     `gorm:"primaryKey;autoIncrement:false"`
	MetricValue      float64   `gorm:"not null;default:0"`
	PeriodEnd        time.Time `gorm:"not null"`
	PeriodStart      time.Time `gorm:"not null"`
	Success          *bool
	UpdatedAt        time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the table name for GORM
func (GoalProgressModel) TableName() string { return "goal_progress_current" }
