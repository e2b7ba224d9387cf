package sessionize

import (
	"fmt"
	"sort"
	"time"

	"github.com/renato0307/tally/internal/domain"
	"github.com/renato0307/tally/internal/intervals"
)

// Span is the coverage of one activity inside a run range
type Span struct {
	ActiveSeconds float64
	ActivityID    int64
	End           time.Time
	Name          string
	Start         time.Time
	Tags          []string
}

// BuildSpans reconstructs one span per activity inside [start, end), closing
// ongoing intervals at end. Activities without coverage are left out.
func BuildSpans(activities []domain.Activity, events map[int64][]domain.ActivityEvent, start, end time.Time) ([]Span, error) {
	var spans []Span
	for _, a := range activities {
		ivs, err := intervals.Build(intervals.EventsFromActivity(events[a.ID]), start, end, end)
		if err != nil {
			return nil, fmt.Errorf("failed to build intervals for activity %d: %w", a.ID, err)
		}
		if len(ivs) == 0 {
			continue
		}
		spans = append(spans, Span{
			ActiveSeconds: intervals.TotalDuration(ivs).Seconds(),
			ActivityID:    a.ID,
			End:           ivs[len(ivs)-1].End,
			Name:          a.Name,
			Start:         ivs[0].Start,
			Tags:          a.Tags,
		})
	}
	sortSpans(spans)
	return spans, nil
}

// sortSpans orders spans by start, then activity id
func sortSpans(spans []Span) {
	sort.SliceStable(spans, func(i, j int) bool {
		if !spans[i].Start.Equal(spans[j].Start) {
			return spans[i].Start.Before(spans[j].Start)
		}
		return spans[i].ActivityID < spans[j].ActivityID
	})
}

func maxEnd(spans []Span) time.Time {
	var end time.Time
	for _, s := range spans {
		if s.End.After(end) {
			end = s.End
		}
	}
	return end
}
