package domain

import (
	"fmt"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

// timestampLayouts are tried in order. Layouts without a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	time.DateOnly,
}

// ParseTimestamp converts an NWS timestamp into a time, or nil when v is
// absent, not a string, or unparseable. An ISO-8601 interval
// ("<start>/<duration>" or "<start>/<end>") yields its start.
func ParseTimestamp(v any) *time.Time {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case *string:
		if t == nil {
			return nil
		}
		s = *t
	case time.Time:
		return &t
	default:
		return nil
	}
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// ParseValidTimes splits an ISO-8601 validity interval such as
// "2024-08-19T18:00:00+00:00/P7DT7H" into its start and duration.
func ParseValidTimes(val string) (time.Time, time.Duration, error) {
	start, period, ok := strings.Cut(val, "/")
	if !ok {
		return time.Time{}, 0, fmt.Errorf("valid times %q: expected two parts separated by /", val)
	}
	ts := ParseTimestamp(start)
	if ts == nil {
		return time.Time{}, 0, fmt.Errorf("valid times %q: unparseable start", val)
	}
	d, err := datetime.ParseISO8601Period(period)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("valid times %q: %w", val, err)
	}
	return *ts, d, nil
}
