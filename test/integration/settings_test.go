package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tally/test/integration/harness"
)

func TestSettingsMeta(t *testing.T) {
	t.Run("table lists defaults", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)

		result := harness.RunCommand(t, env, "settings", "meta")

		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result,
			"Settings file: "+env.SettingsPath(),
			"aggregation_interval",
			"session_window_length",
			"TALLY_<NAME>")
	})

	t.Run("json shows configured values", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		env.WriteSettings(`{"aggregation_interval": "30m", "session_min_purity": 0.9}`)

		result := harness.RunCommand(t, env, "settings", "meta", "--format", "json")
		harness.AssertSuccess(t, result)

		var out struct {
			Configured   map[string]any `json:"configured"`
			Defaults     map[string]any `json:"defaults"`
			SettingsFile string         `json:"settings_file"`
		}
		harness.AssertValidJSON(t, result, &out)
		assert.Equal(t, env.SettingsPath(), out.SettingsFile)
		assert.Equal(t, "30m0s", out.Configured["aggregation_interval"])
		assert.Equal(t, 0.9, out.Configured["session_min_purity"])
		assert.Equal(t, "10m0s", out.Defaults["aggregation_interval"])
	})

	t.Run("invalid settings file only warns", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		env.WriteSettings(`{not json`)

		result := harness.RunCommand(t, env, "settings")

		harness.AssertSuccess(t, result)
		harness.AssertStderrContains(t, result, "failed to load settings")
	})
}

// The window length decides where `windows process` ends a window when --end
// is omitted, which makes the precedence chain observable
func TestAggregationIntervalPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(env *harness.TestEnvironment)
		args     []string
		wantEnd  string
		wantFail string
	}{
		{
			name:    "default",
			wantEnd: "2025-01-06 09:10",
		},
		{
			name: "settings file",
			setup: func(env *harness.TestEnvironment) {
				env.WriteSettings(`{"aggregation_interval": "30m"}`)
			},
			wantEnd: "2025-01-06 09:30",
		},
		{
			name: "dotenv beats settings file",
			setup: func(env *harness.TestEnvironment) {
				env.WriteSettings(`{"aggregation_interval": "30m"}`)
				env.WriteFile(".env", "TALLY_AGGREGATION_INTERVAL=1h\n")
			},
			wantEnd: "2025-01-06 10:00",
		},
		{
			name: "environment beats dotenv",
			setup: func(env *harness.TestEnvironment) {
				env.WriteFile(".env", "TALLY_AGGREGATION_INTERVAL=1h\n")
				env.SetEnv("TALLY_AGGREGATION_INTERVAL", "15m")
			},
			wantEnd: "2025-01-06 09:15",
		},
		{
			name: "flag beats everything",
			setup: func(env *harness.TestEnvironment) {
				env.WriteSettings(`{"aggregation_interval": "30m"}`)
				env.SetEnv("TALLY_AGGREGATION_INTERVAL", "15m")
			},
			args:    []string{"--interval", "2h"},
			wantEnd: "2025-01-06 11:00",
		},
		{
			name: "bad environment value",
			setup: func(env *harness.TestEnvironment) {
				env.SetEnv("TALLY_AGGREGATION_INTERVAL", "soon")
			},
			wantFail: "TALLY_AGGREGATION_INTERVAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			if tt.setup != nil {
				tt.setup(env)
			}

			args := append([]string{}, tt.args...)
			args = append(args, "windows", "process", "--start", "2025-01-06T09:00:00Z")
			result := harness.RunCommand(t, env, args...)

			if tt.wantFail != "" {
				harness.AssertFailure(t, result)
				harness.AssertStderrContains(t, result, tt.wantFail)
				return
			}
			harness.AssertSuccess(t, result)
			harness.AssertStdoutContains(t, result, "2025-01-06 09:00", tt.wantEnd)
		})
	}
}

func TestReportingTimezone(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.SetEnv("TALLY_TIMEZONE", "Europe/Helsinki")

	result := harness.RunCommand(t, env, "windows", "process",
		"--start", "2025-01-06T09:00:00Z", "--end", "2025-01-06T10:00:00Z")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "2025-01-06 11:00", "2025-01-06 12:00")

	bad := harness.NewTestEnvironment(t)
	bad.SetEnv("TALLY_TIMEZONE", "Mars/Olympus")
	result = harness.RunCommand(t, bad, "windows", "status")
	harness.AssertFailure(t, result)
	require.NotEmpty(t, result.Stderr)
}

func TestVersion(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--version")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "tally "+harness.BuildVersion)
}
