package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tally/internal/domain"
)

func TestParseTimeFlag(t *testing.T) {
	now := time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)
	lisbon, err := time.LoadLocation("Europe/Lisbon")
	require.NoError(t, err)
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name    string
		value   string
		loc     *time.Location
		want    time.Time
		wantErr bool
	}{
		{name: "now", value: "now", loc: time.UTC, want: now},
		{name: "empty means now", value: "", loc: time.UTC, want: now},
		{name: "rfc3339", value: "2025-01-05T08:30:00+01:00", loc: time.UTC, want: time.Date(2025, 1, 5, 7, 30, 0, 0, time.UTC)},
		{name: "date in lisbon winter", value: "2025-01-05", loc: lisbon, want: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)},
		{name: "date in new york", value: "2025-01-05", loc: newYork, want: time.Date(2025, 1, 5, 5, 0, 0, 0, time.UTC)},
		{name: "negative duration", value: "-24h", loc: time.UTC, want: now.Add(-24 * time.Hour)},
		{name: "ago suffix", value: "90m ago", loc: time.UTC, want: now.Add(-90 * time.Minute)},
		{name: "garbage", value: "yesterday-ish", loc: time.UTC, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTimeFlag(tt.value, now, tt.loc)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestRangeFlags_Bounds(t *testing.T) {
	now := time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)

	from, to, err := RangeFlags{From: "-24h", To: "now"}.Bounds(now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, now.Add(-24*time.Hour), from)
	assert.Equal(t, now, to)

	_, _, err = RangeFlags{From: "bogus", To: "now"}.Bounds(now, time.UTC)
	assert.ErrorContains(t, err, "invalid --from")
}

func TestDefinitionFlags_Input(t *testing.T) {
	now := time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)

	t.Run("builds every filter", func(t *testing.T) {
		flags := DefinitionFlags{
			EffectiveFrom: "2025-01-01",
			ExcludeTags:   []string{"social"},
			IncludeMode:   "all",
			Levels:        []string{"very_productive"},
			Tags:          []string{"work"},
			Target:        3600,
			Times:         []string{"09:00-12:00"},
			Weekdays:      []int{1, 2},
		}

		input, err := flags.Input(now, time.UTC)

		require.NoError(t, err)
		require.NotNil(t, input.EffectiveFrom)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *input.EffectiveFrom)
		assert.Equal(t, "all", input.IncludeMode)
		assert.Equal(t, 3600.0, input.TargetValue)
		require.NotNil(t, input.Filters.Days)
		assert.Equal(t, []int{1, 2}, input.Filters.Days.Weekdays)
		require.NotNil(t, input.Filters.Times)
		assert.Equal(t, []domain.TimeRange{{End: "12:00", Start: "09:00"}}, input.Filters.Times.Ranges)
		require.NotNil(t, input.Filters.Productivity)
		assert.Equal(t, []domain.ProductivityLevel{"very_productive"}, input.Filters.Productivity.Levels)
		require.NotNil(t, input.Filters.Tags)
		assert.Equal(t, []string{"work"}, input.Filters.Tags.Include)
		assert.Equal(t, []string{"social"}, input.Filters.Tags.Exclude)
	})

	t.Run("no filters", func(t *testing.T) {
		input, err := DefinitionFlags{IncludeMode: "any", Target: 60}.Input(now, time.UTC)

		require.NoError(t, err)
		assert.Nil(t, input.EffectiveFrom)
		assert.Nil(t, input.Filters.Days)
		assert.Nil(t, input.Filters.Times)
		assert.Nil(t, input.Filters.Productivity)
		assert.Nil(t, input.Filters.Tags)
	})

	t.Run("malformed time range", func(t *testing.T) {
		_, err := DefinitionFlags{Target: 60, Times: []string{"0900"}}.Input(now, time.UTC)

		assert.ErrorIs(t, err, domain.ErrInvalidFilter)
	})
}

func TestGoalTimezone(t *testing.T) {
	lisbon, err := time.LoadLocation("Europe/Lisbon")
	require.NoError(t, err)

	tz, err := goalTimezone("Asia/Tokyo", lisbon)
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", tz)

	tz, err = goalTimezone("", lisbon)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Lisbon", tz)

	t.Setenv("TZ", "")
	_, err = goalTimezone("", time.Local)
	assert.ErrorIs(t, err, domain.ErrInvalidTimezone)
}
