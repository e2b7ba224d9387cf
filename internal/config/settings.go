package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Duration supports "90s" / "30m" strings or a number of seconds in JSON
type Duration time.Duration

// UnmarshalJSON implements custom unmarshaling for Duration
func (d *Duration) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		parsed, err := time.ParseDuration(str)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", str, err)
		}
		*d = Duration(parsed)
		return nil
	}

	// Fall back to seconds
	var secs float64
	if err := json.Unmarshal(data, &secs); err != nil {
		return err
	}
	*d = Duration(time.Duration(secs * float64(time.Second)))
	return nil
}

// MarshalJSON implements custom marshaling for Duration
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Std returns the standard library duration, or fallback when d is nil
func (d *Duration) Std(fallback time.Duration) time.Duration {
	if d == nil {
		return fallback
	}
	return time.Duration(*d)
}

// Settings represents the structure of ~/.tally/settings.json
type Settings struct {
	AggregationInterval   *Duration `json:"aggregation_interval,omitempty"`
	Debug                 *bool     `json:"debug,omitempty"`
	FocusMaxDisruptionPct *float64  `json:"focus_max_disruption_pct,omitempty"`
	FocusMaxInterruption  *Duration `json:"focus_max_interruption,omitempty"`
	FocusMinDuration      *Duration `json:"focus_min_duration,omitempty"`
	FocusThreshold        *float64  `json:"focus_threshold,omitempty"`
	GoalBackfill          *int      `json:"goal_backfill,omitempty"`
	GoalConcurrency       *int      `json:"goal_concurrency,omitempty"`
	GoalProgressTTL       *Duration `json:"goal_progress_ttl,omitempty"`
	HTTPAddr              string    `json:"http_addr,omitempty"`
	MaxLogFiles           *int      `json:"max_log_files,omitempty"`
	ScheduleGoals         *Duration `json:"schedule_goals,omitempty"`
	ScheduleSessionize    *Duration `json:"schedule_sessionize,omitempty"`
	ScheduleWindows       *Duration `json:"schedule_windows,omitempty"`
	SessionMaxGap         *Duration `json:"session_max_gap,omitempty"`
	SessionMaxOverlap     *Duration `json:"session_max_overlap,omitempty"`
	SessionMinActivities  *int      `json:"session_min_activities,omitempty"`
	SessionMinAffinity    *float64  `json:"session_min_affinity,omitempty"`
	SessionMinLength      *Duration `json:"session_min_length,omitempty"`
	SessionMinPurity      *float64  `json:"session_min_purity,omitempty"`
	SessionWindowLength   *Duration `json:"session_window_length,omitempty"`
	Timezone              string    `json:"timezone,omitempty"`
}

// LoadSettings loads settings from $TALLY_HOME/settings.json (or ~/.tally/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $TALLY_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
