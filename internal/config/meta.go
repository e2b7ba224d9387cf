package config

import (
	"reflect"
	"strings"
	"time"
)

// GetSettingsFilePath returns the path to the settings file
func GetSettingsFilePath() string {
	return GetSettingsPath()
}

// GetSettingsExample uses reflection to generate example settings.
// Values are the defaults, so the output doubles as documentation.
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// exampleDefaults are the documented values for settings whose default is not a zero value
var exampleDefaults = func() map[string]any {
	p := DefaultProcessing()
	return map[string]any{
		"aggregation_interval":     p.AggregationInterval.String(),
		"focus_max_disruption_pct": p.Focus.MaxDisruptionPct,
		"focus_max_interruption":   p.Focus.MaxSingleInterruption.String(),
		"focus_min_duration":       p.Focus.MinDuration.String(),
		"focus_threshold":          p.Focus.ProductiveThreshold,
		"goal_backfill":            p.Goals.Backfill,
		"goal_concurrency":         p.Goals.Concurrency,
		"goal_progress_ttl":        p.Goals.ProgressTTL.String(),
		"http_addr":                p.HTTPAddr,
		"max_log_files":            1000,
		"schedule_goals":           p.Schedule.Goals.String(),
		"schedule_sessionize":      p.Schedule.Sessionize.String(),
		"schedule_windows":         p.Schedule.Windows.String(),
		"session_max_gap":          p.Sessionization.MaxGap.String(),
		"session_max_overlap":      p.Sessionization.MaxOverlap.String(),
		"session_min_activities":   p.Sessionization.MinActivities,
		"session_min_affinity":     p.Sessionization.MinAffinity,
		"session_min_length":       p.Sessionization.MinLength.String(),
		"session_min_purity":       p.Sessionization.MinPurity,
		"session_window_length":    p.Sessionization.WindowLength.String(),
		"timezone":                 "Europe/Lisbon",
	}
}()

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if v, ok := exampleDefaults[fieldName]; ok {
		return v
	}

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Bool:
		return fieldName == "debug"
	case reflect.Int:
		return 10
	case reflect.Float64:
		return 0.5
	case reflect.Int64:
		if t == reflect.TypeOf(Duration(0)) {
			return time.Minute.String()
		}
		return 10
	case reflect.String:
		return "example"
	}

	return nil
}

// GetConfiguredValues returns the settings explicitly set in s, keyed by
// their JSON name. Unset fields are omitted.
func GetConfiguredValues(s *Settings) map[string]any {
	configured := make(map[string]any)
	if s == nil {
		return configured
	}

	v := reflect.ValueOf(*s)
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		jsonName := strings.Split(t.Field(i).Tag.Get("json"), ",")[0]
		if jsonName == "" {
			continue
		}

		field := v.Field(i)
		switch {
		case field.Kind() == reflect.Ptr && field.IsNil():
			continue
		case field.Kind() == reflect.Ptr:
			field = field.Elem()
		case field.IsZero():
			continue
		}

		if d, ok := field.Interface().(Duration); ok {
			configured[jsonName] = time.Duration(d).String()
			continue
		}
		configured[jsonName] = field.Interface()
	}
	return configured
}
