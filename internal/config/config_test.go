package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsFrom_MissingFileIsEmpty(t *testing.T) {
	settings, err := LoadSettingsFrom(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettingsFrom_ParsesDurations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"aggregation_interval": "5m",
		"session_max_gap": 300,
		"goal_concurrency": 2,
		"timezone": "Europe/Lisbon"
	}`), 0644))

	settings, err := LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, settings.AggregationInterval.Std(0))
	assert.Equal(t, 5*time.Minute, settings.SessionMaxGap.Std(0))
	assert.Equal(t, 2, *settings.GoalConcurrency)
	assert.Equal(t, "Europe/Lisbon", settings.Timezone)
}

func TestLoadSettingsFrom_RejectsBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"session_max_gap": "ten minutes"}`), 0644))

	_, err := LoadSettingsFrom(path)
	assert.Error(t, err)
}

func TestSaveSettings_RoundTripsThroughHome(t *testing.T) {
	t.Setenv("TALLY_HOME", filepath.Join(t.TempDir(), "home"))

	gap := Duration(7 * time.Minute)
	require.NoError(t, SaveSettings(&Settings{SessionMaxGap: &gap}))

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, 7*time.Minute, loaded.SessionMaxGap.Std(0))
}

func TestResolveProcessing_Defaults(t *testing.T) {
	p, err := ResolveProcessing(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultProcessing(), p)
	assert.Equal(t, 10*time.Minute, p.Sessionization.MaxGap)
	assert.Equal(t, 120*time.Second, p.Focus.MaxSingleInterruption)
}

func TestResolveProcessing_EnvOverridesSettings(t *testing.T) {
	gap := Duration(5 * time.Minute)
	purity := 0.9
	settings := &Settings{
		SessionMaxGap:    &gap,
		SessionMinPurity: &purity,
		Timezone:         "UTC",
	}
	t.Setenv("TALLY_SESSION_MAX_GAP", "3m")
	t.Setenv("TALLY_GOAL_BACKFILL", "4")

	p, err := ResolveProcessing(settings)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Minute, p.Sessionization.MaxGap)
	assert.Equal(t, 0.9, p.Sessionization.MinPurity)
	assert.Equal(t, 4, p.Goals.Backfill)
	assert.Equal(t, "UTC", p.Timezone)
}

func TestResolveProcessing_InvalidEnv(t *testing.T) {
	t.Setenv("TALLY_GOAL_CONCURRENCY", "many")

	_, err := ResolveProcessing(nil)
	assert.ErrorContains(t, err, "TALLY_GOAL_CONCURRENCY")
}

func TestResolveProcessing_RejectsUnknownTimezone(t *testing.T) {
	_, err := ResolveProcessing(&Settings{Timezone: "Mars/Olympus"})
	assert.Error(t, err)
}

func TestResolveProcessing_RejectsZeroConcurrency(t *testing.T) {
	zero := 0
	_, err := ResolveProcessing(&Settings{GoalConcurrency: &zero})
	assert.ErrorContains(t, err, "goal_concurrency")
}

func TestGetSettingsExample_CoversEveryField(t *testing.T) {
	example := GetSettingsExample()
	assert.Equal(t, "10m0s", example["aggregation_interval"])
	assert.Equal(t, 3, example["session_min_activities"])
	assert.Equal(t, true, example["debug"])
	assert.Len(t, example, 22)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, ".tally"), ExpandPath("~/.tally"))
	assert.Equal(t, "/var/lib/tally", ExpandPath("/var/lib/tally"))
}

func TestGetConfiguredValues(t *testing.T) {
	interval := Duration(5 * time.Minute)
	purity := 0.9
	configured := GetConfiguredValues(&Settings{
		AggregationInterval: &interval,
		SessionMinPurity:    &purity,
		Timezone:            "Europe/Lisbon",
	})

	assert.Equal(t, map[string]any{
		"aggregation_interval": "5m0s",
		"session_min_purity":   0.9,
		"timezone":             "Europe/Lisbon",
	}, configured)
	assert.Empty(t, GetConfiguredValues(nil))
	assert.Empty(t, GetConfiguredValues(&Settings{}))
}
