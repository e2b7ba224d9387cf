package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/tally/test/integration/harness"
)

func TestIngest(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, env *harness.TestEnvironment)
		stdin    string
		validate func(t *testing.T, result harness.CommandResult)
	}{
		{
			name: "json lines from stdin",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				path := env.WriteFile("activities.json", activitiesJSON)
				harness.AssertSuccess(t, harness.RunCommand(t, env, "activities", "import", path))
			},
			stdin: eventsJSONL,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertJSONContains(t, result, "accepted", float64(4))
				harness.AssertJSONContains(t, result, "duplicate", float64(0))
			},
		},
		{
			name: "re-delivered events are duplicates",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				path := env.WriteFile("activities.json", activitiesJSON)
				harness.AssertSuccess(t, harness.RunCommand(t, env, "activities", "import", path))
				harness.AssertSuccess(t, harness.RunCommandWithStdin(t, env, eventsJSONL, "ingest"))
			},
			stdin: eventsJSONL,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertJSONContains(t, result, "accepted", float64(0))
				harness.AssertJSONContains(t, result, "duplicate", float64(4))
			},
		},
		{
			name:  "unknown activity and bad type are rejected",
			stdin: `[{"activity_id": 9, "event_time": "2025-01-06T09:00:00Z", "event_type": "open"}, {"activity_id": 1, "event_time": "2025-01-06T09:00:00Z", "event_type": "pause"}]`,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertJSONContains(t, result, "accepted", float64(0))
				harness.AssertJSONContains(t, result, "rejected", float64(2))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			if tt.setup != nil {
				tt.setup(t, env)
			}

			result := harness.RunCommandWithStdin(t, env, tt.stdin, "ingest", "--format", "json")

			harness.AssertSuccess(t, result)
			tt.validate(t, result)
		})
	}
}

func TestIngest_MalformedInputFails(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommandWithStdin(t, env, "{not json", "ingest")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "malformed")
}

func TestWindowsAndReports(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	seedDay(t, env)

	dayRange := []string{"--from=2025-01-06", "--to=2025-01-07"}

	t.Run("windows status shows last window", func(t *testing.T) {
		result := harness.RunCommand(t, env, "windows", "status")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "Last window: 2025-01-06 09:00 - 2025-01-06 12:00")
		harness.AssertStdoutContains(t, result, "Late events: 0")
	})

	t.Run("re-processing a window is idempotent", func(t *testing.T) {
		result := harness.RunCommand(t, env, "windows", "process",
			"--start=2025-01-06T09:00:00Z", "--end=2025-01-06T12:00:00Z")
		harness.AssertSuccess(t, result)

		status := harness.RunCommand(t, env, "windows", "status", "--format", "json")
		var out struct {
			Recent []map[string]any `json:"recent"`
		}
		harness.AssertValidJSON(t, status, &out)
		assert.Len(t, out.Recent, 1)
	})

	t.Run("intervals per activity", func(t *testing.T) {
		result := harness.RunCommand(t, env, append([]string{"report", "intervals"}, dayRange...)...)
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "Deep work")
		harness.AssertStdoutContains(t, result, "1h30m")
		harness.AssertStdoutContains(t, result, "Social feed")
	})

	t.Run("weekday buckets are complete", func(t *testing.T) {
		args := append([]string{"report", "buckets", "--kind", "day_of_week", "--format", "json"}, dayRange...)
		result := harness.RunCommand(t, env, args...)
		var buckets []map[string]any
		harness.AssertValidJSON(t, result, &buckets)
		assert.Len(t, buckets, 7)
	})

	t.Run("hourly chart renders", func(t *testing.T) {
		args := append([]string{"report", "buckets", "--format", "chart"}, dayRange...)
		result := harness.RunCommand(t, env, args...)
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "Productivity by hour")
		harness.AssertStdoutContains(t, result, "Active:")
	})

	t.Run("focus sessions", func(t *testing.T) {
		args := append([]string{"report", "focus", "--format", "json"}, dayRange...)
		result := harness.RunCommand(t, env, args...)
		var out struct {
			Sessions []map[string]any `json:"sessions"`
			Summary  map[string]any   `json:"summary"`
		}
		harness.AssertValidJSON(t, result, &out)
		assert.Len(t, out.Sessions, 1)
		assert.Equal(t, float64(5400), out.Summary["total_sec"])
	})

	t.Run("invalid range fails", func(t *testing.T) {
		result := harness.RunCommand(t, env, "report", "intervals", "--from=2025-01-07", "--to=2025-01-06")
		harness.AssertFailure(t, result)
		harness.AssertStderrContains(t, result, "invalid window bounds")
	})
}
