package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// openInput opens path for reading; "-" or an empty path reads stdin
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}

// parseTimeFlag accepts RFC3339, a YYYY-MM-DD date in loc, "now", or a
// duration relative to now such as "-2h" or "90m ago"
func parseTimeFlag(value string, now time.Time, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" || value == "now" {
		return now.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.ParseInLocation("2006-01-02", value, loc); err == nil {
		return t.UTC(), nil
	}

	rel := value
	sign := time.Duration(1)
	if trimmed, ok := strings.CutSuffix(rel, " ago"); ok {
		rel, sign = strings.TrimSpace(trimmed), -1
	}
	d, err := time.ParseDuration(rel)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: use RFC3339, YYYY-MM-DD, now, or a relative duration", value)
	}
	return now.Add(sign * d).UTC(), nil
}

// RangeFlags selects a half-open [from, to) report range
type RangeFlags struct {
	From string `help:"Range start (RFC3339, YYYY-MM-DD, or relative like -24h)" default:"-24h"`
	To   string `help:"Range end (RFC3339, YYYY-MM-DD, or relative)" default:"now"`
}

// Bounds resolves the range against now
func (r RangeFlags) Bounds(now time.Time, loc *time.Location) (time.Time, time.Time, error) {
	from, err := parseTimeFlag(r.From, now, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --from: %w", err)
	}
	to, err := parseTimeFlag(r.To, now, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --to: %w", err)
	}
	return from, to, nil
}

// printJSON writes v as indented JSON to stdout
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// formatTime renders t in loc for tables
func formatTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02 15:04")
}

// truncate shortens s to max runes with an ellipsis
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
