package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductivityLevelScore(t *testing.T) {
	tests := []struct {
		level    ProductivityLevel
		expected float64
	}{
		{ProductivityVeryProductive, 1.0},
		{ProductivityProductive, 0.8},
		{ProductivityNeutral, 0.6},
		{ProductivityDistracting, 0.4},
		{ProductivityVeryDistracting, 0.2},
		{ProductivityLevel("bogus"), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.level.Score(), 1e-9)
		})
	}
}

func TestGoalOperatorCompare(t *testing.T) {
	assert.True(t, OperatorLessThan.Compare(3600, 7200))
	assert.False(t, OperatorLessThan.Compare(7200, 7200))
	assert.True(t, OperatorGreaterThan.Compare(0.9, 0.8))
	assert.False(t, OperatorGreaterThan.Compare(0.8, 0.8))
}

func TestParseClockTime(t *testing.T) {
	c, err := ParseClockTime("09:30")
	require.NoError(t, err)
	assert.Equal(t, ClockTime(570), c)
	assert.Equal(t, "09:30", c.String())

	end, err := ParseClockTime("24:00")
	require.NoError(t, err)
	assert.Equal(t, ClockTime(1440), end)

	for _, bad := range []string{"9", "25:00", "10:60", "aa:bb", "24:01"} {
		_, err := ParseClockTime(bad)
		assert.ErrorIs(t, err, ErrInvalidFilter, bad)
	}
}

func TestGoalDefinitionValidate(t *testing.T) {
	tests := []struct {
		name    string
		def     GoalDefinition
		metric  GoalMetric
		wantErr bool
	}{
		{
			name:   "no filters",
			def:    GoalDefinition{IncludeMode: IncludeAny, TargetValue: 7200},
			metric: MetricTotalActivityDuration,
		},
		{
			name:    "bad include mode",
			def:     GoalDefinition{IncludeMode: "some", TargetValue: 1},
			metric:  MetricTotalActivityDuration,
			wantErr: true,
		},
		{
			name:    "productivity target above one",
			def:     GoalDefinition{IncludeMode: IncludeAny, TargetValue: 1.5},
			metric:  MetricProductivityLevel,
			wantErr: true,
		},
		{
			name: "weekday out of range",
			def: GoalDefinition{
				IncludeMode: IncludeAny,
				Filters:     GoalFilters{Days: &DayFilter{Weekdays: []int{7}}},
			},
			metric:  MetricTotalActivityDuration,
			wantErr: true,
		},
		{
			name: "empty time range",
			def: GoalDefinition{
				IncludeMode: IncludeAny,
				Filters:     GoalFilters{Times: &TimeFilter{Ranges: []TimeRange{{Start: "09:00", End: "09:00"}}}},
			},
			metric:  MetricTotalActivityDuration,
			wantErr: true,
		},
		{
			name: "wrapping time range",
			def: GoalDefinition{
				IncludeMode: IncludeAny,
				Filters:     GoalFilters{Times: &TimeFilter{Ranges: []TimeRange{{Start: "22:00", End: "02:00"}}}},
			},
			metric: MetricTotalActivityDuration,
		},
		{
			name: "tag both included and excluded",
			def: GoalDefinition{
				IncludeMode: IncludeAll,
				Filters:     GoalFilters{Tags: &TagFilter{Include: []string{"work"}, Exclude: []string{"work"}}},
			},
			metric:  MetricTotalActivityDuration,
			wantErr: true,
		},
		{
			name: "unknown productivity level",
			def: GoalDefinition{
				IncludeMode: IncludeAny,
				Filters:     GoalFilters{Productivity: &ProductivityFilter{Levels: []ProductivityLevel{"meh"}}},
			},
			metric:  MetricTotalActivityDuration,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.Validate(tt.metric)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidFilter))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestGoalDefinitionMatchesActivity_TagModes(t *testing.T) {
	coding := Activity{Name: "editor", Tags: []string{"work", "code"}, Productivity: ProductivityVeryProductive}
	chat := Activity{Name: "chat", Tags: []string{"work", "social"}, Productivity: ProductivityNeutral}
	video := Activity{Name: "video", Tags: []string{"fun"}, Productivity: ProductivityVeryDistracting}

	anyDef := GoalDefinition{
		IncludeMode: IncludeAny,
		Filters:     GoalFilters{Tags: &TagFilter{Include: []string{"code", "fun"}, Exclude: []string{"social"}}},
	}
	assert.True(t, anyDef.MatchesActivity(coding))
	assert.False(t, anyDef.MatchesActivity(chat))
	assert.True(t, anyDef.MatchesActivity(video))

	allDef := GoalDefinition{
		IncludeMode: IncludeAll,
		Filters:     GoalFilters{Tags: &TagFilter{Include: []string{"work", "code"}}},
	}
	assert.True(t, allDef.MatchesActivity(coding))
	assert.False(t, allDef.MatchesActivity(chat))
	assert.False(t, allDef.MatchesActivity(video))

	excludeOnly := GoalDefinition{
		IncludeMode: IncludeAny,
		Filters:     GoalFilters{Tags: &TagFilter{Exclude: []string{"fun"}}},
	}
	assert.True(t, excludeOnly.MatchesActivity(chat))
	assert.False(t, excludeOnly.MatchesActivity(video))
}

func TestGoalDefinitionMatchesActivity_Productivity(t *testing.T) {
	def := GoalDefinition{
		IncludeMode: IncludeAny,
		Filters: GoalFilters{Productivity: &ProductivityFilter{
			Levels: []ProductivityLevel{ProductivityDistracting, ProductivityVeryDistracting},
		}},
	}

	assert.True(t, def.MatchesActivity(Activity{Productivity: ProductivityVeryDistracting}))
	assert.False(t, def.MatchesActivity(Activity{Productivity: ProductivityProductive}))
}

func TestGoalLocation(t *testing.T) {
	_, err := Goal{Timezone: "Europe/Lisbon"}.Location()
	require.NoError(t, err)

	_, err = Goal{Timezone: "Mars/Olympus"}.Location()
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}
