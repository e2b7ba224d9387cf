package intervals

import (
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tally/internal/domain"
)

func at(hh, mm int) time.Time {
	return time.Date(2025, 1, 6, hh, mm, 0, 0, time.UTC)
}

func openAt(t time.Time) Event  { return Event{At: t, Type: domain.EventOpen} }
func closeAt(t time.Time) Event { return Event{At: t, Type: domain.EventClose} }

func TestBuild_InvalidWindowBounds(t *testing.T) {
	_, err := Build(nil, at(10, 0), at(10, 0), at(11, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidWindowBounds)

	_, err = Build(nil, at(10, 0), at(9, 0), at(11, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidWindowBounds)
}

func TestBuild_CloseSortsBeforeOpenOnTies(t *testing.T) {
	events := []Event{openAt(at(9, 0)), openAt(at(9, 30)), closeAt(at(9, 30)), closeAt(at(10, 0))}

	ivs, err := Build(events, at(8, 0), at(12, 0), at(12, 0))

	require.NoError(t, err)
	require.Len(t, ivs, 2)
	assert.Equal(t, at(9, 0), ivs[0].Start)
	assert.Equal(t, at(9, 30), ivs[0].End)
	assert.Equal(t, at(9, 30), ivs[1].Start)
	assert.Equal(t, at(10, 0), ivs[1].End)
}

func TestBuild_IgnoresRedundantOpenAndOrphanClose(t *testing.T) {
	events := []Event{closeAt(at(8, 50)), openAt(at(9, 0)), openAt(at(9, 10)), closeAt(at(9, 30)), closeAt(at(9, 40))}

	ivs, err := Build(events, at(8, 0), at(12, 0), at(12, 0))

	require.NoError(t, err)
	require.Len(t, ivs, 1)
	assert.Equal(t, at(9, 0), ivs[0].Start)
	assert.Equal(t, at(9, 30), ivs[0].End)
	assert.False(t, ivs[0].IsOngoing)
}

func TestBuild_OngoingInterval(t *testing.T) {
	events := []Event{openAt(at(9, 0))}

	ivs, err := Build(events, at(9, 0), at(10, 0), at(9, 20))
	require.NoError(t, err)
	require.Len(t, ivs, 1)
	assert.True(t, ivs[0].IsOngoing)
	assert.Equal(t, at(9, 20), ivs[0].End)
	assert.False(t, ivs[0].TruncatedEnd)

	ivs, err = Build(events, at(9, 0), at(10, 0), at(11, 0))
	require.NoError(t, err)
	require.Len(t, ivs, 1)
	assert.Equal(t, at(10, 0), ivs[0].End)
	assert.True(t, ivs[0].TruncatedEnd)
}

func TestBuild_OngoingNeverEndsBeforeStart(t *testing.T) {
	ivs, err := Build([]Event{openAt(at(9, 30))}, at(9, 0), at(10, 0), at(9, 20))

	require.NoError(t, err)
	require.Len(t, ivs, 1)
	assert.Equal(t, ivs[0].Start, ivs[0].End)
	assert.True(t, ivs[0].IsOngoing)
}

func TestBuild_ClampsToWindow(t *testing.T) {
	events := []Event{
		openAt(at(7, 0)), closeAt(at(8, 0)), // outside
		openAt(at(8, 30)), closeAt(at(9, 15)), // crosses start
		openAt(at(9, 50)), closeAt(at(10, 20)), // crosses end
	}

	ivs, err := Build(events, at(9, 0), at(10, 0), at(12, 0))

	require.NoError(t, err)
	require.Len(t, ivs, 2)
	assert.Equal(t, at(9, 0), ivs[0].Start)
	assert.True(t, ivs[0].TruncatedStart)
	assert.False(t, ivs[0].TruncatedEnd)
	assert.Equal(t, at(10, 0), ivs[1].End)
	assert.True(t, ivs[1].TruncatedEnd)
	assert.Equal(t, 25*time.Minute, TotalDuration(ivs))
}

func TestBuild_DropsZeroWidthClosedIntervals(t *testing.T) {
	ivs, err := Build([]Event{openAt(at(8, 0)), closeAt(at(9, 0))}, at(9, 0), at(10, 0), at(10, 0))

	require.NoError(t, err)
	assert.Empty(t, ivs)
}

func TestBuild_NoSelfOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	windowStart, windowEnd := at(0, 0), at(23, 0)

	for round := 0; round < 200; round++ {
		var events []Event
		for i := 0; i < 30; i++ {
			ts := windowStart.Add(time.Duration(rng.Intn(24*60)) * time.Minute)
			if rng.Intn(2) == 0 {
				events = append(events, openAt(ts))
			} else {
				events = append(events, closeAt(ts))
			}
		}

		ivs, err := Build(events, windowStart, windowEnd, windowEnd)
		require.NoError(t, err)

		require.True(t, sort.SliceIsSorted(ivs, func(i, j int) bool { return ivs[i].Start.Before(ivs[j].Start) }))
		for i := 1; i < len(ivs); i++ {
			assert.False(t, ivs[i].Start.Before(ivs[i-1].End), "round %d: interval %d overlaps its predecessor", round, i)
		}
		for _, iv := range ivs {
			assert.False(t, iv.Start.Before(windowStart))
			assert.False(t, iv.End.After(windowEnd))
		}
	}
}

func TestEventsFromActivity(t *testing.T) {
	events := EventsFromActivity([]domain.ActivityEvent{
		{ActivityID: 1, EventTime: at(9, 0), EventType: domain.EventOpen},
	})

	require.Len(t, events, 1)
	assert.Equal(t, openAt(at(9, 0)), events[0])
}
