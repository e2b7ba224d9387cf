package intervals

import (
	"fmt"
	"time"
)

// BucketKind is the calendar dimension used to aggregate segments
type BucketKind string

const (
	BucketHourOfDay  BucketKind = "hour_of_day"
	BucketDayOfWeek  BucketKind = "day_of_week"
	BucketDayOfMonth BucketKind = "day_of_month"
)

// ProductiveThreshold is the lowest value counted as productive time
const ProductiveThreshold = 0.8

// ParseBucketKind converts a string to a BucketKind
func ParseBucketKind(s string) (BucketKind, error) {
	switch k := BucketKind(s); k {
	case BucketHourOfDay, BucketDayOfWeek, BucketDayOfMonth:
		return k, nil
	default:
		return "", fmt.Errorf("unknown bucket kind %q", s)
	}
}

// Bucket is the aggregate of all active time falling into one calendar slot
type Bucket struct {
	ActiveSeconds     float64 `json:"active_seconds"`
	Key               int     `json:"key"`
	MeanValue         float64 `json:"mean_value"`
	ProductiveSeconds float64 `json:"productive_seconds"`
}

// Buckets aggregates segments into a fully enumerated calendar domain in loc.
// Empty slots are returned with zero values so the domain never has holes.
func Buckets(segments []Segment, kind BucketKind, loc *time.Location) []Bucket {
	first, size := bucketDomain(segments, kind, loc)

	out := make([]Bucket, size)
	weighted := make([]float64, size)
	for i := range out {
		out[i].Key = first + i
	}

	boundary := NextHour(loc)
	if kind != BucketHourOfDay {
		boundary = NextDay(loc)
	}

	for _, s := range SliceSegments(segments, boundary) {
		if !s.Active {
			continue
		}
		idx := bucketKey(s.Start.In(loc), kind) - first
		if idx < 0 || idx >= size {
			continue
		}
		secs := s.Duration().Seconds()
		out[idx].ActiveSeconds += secs
		weighted[idx] += secs * s.Value
		if s.Value >= ProductiveThreshold {
			out[idx].ProductiveSeconds += secs
		}
	}

	for i := range out {
		if out[i].ActiveSeconds > 0 {
			out[i].MeanValue = weighted[i] / out[i].ActiveSeconds
		}
	}
	return out
}

func bucketKey(t time.Time, kind BucketKind) int {
	switch kind {
	case BucketHourOfDay:
		return t.Hour()
	case BucketDayOfWeek:
		return Weekday(t)
	default:
		return t.Day()
	}
}

// bucketDomain returns the first key and the number of keys for kind
func bucketDomain(segments []Segment, kind BucketKind, loc *time.Location) (int, int) {
	switch kind {
	case BucketHourOfDay:
		return 0, 24
	case BucketDayOfWeek:
		return 0, 7
	}

	if len(segments) == 0 {
		return 1, 31
	}
	start := segments[0].Start.In(loc)
	last := segments[len(segments)-1].End.Add(-time.Nanosecond).In(loc)
	if start.Year() != last.Year() || start.Month() != last.Month() {
		return 1, 31
	}
	return 1, daysIn(start.Year(), start.Month(), loc)
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
