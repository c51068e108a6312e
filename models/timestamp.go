package models

import (
	"strings"
	"time"
)

// TimestampLayout is the persisted timestamp format: ISO-8601 in UTC with
// millisecond precision, so lexical order equals chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// DateLayout is the calendar-date form accepted by date filters.
const DateLayout = "2006-01-02"

// FormatTimestamp renders t in [TimestampLayout].
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses a persisted timestamp. Any RFC 3339 value is
// accepted so that backups written by other tools can be imported.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// Now returns the current time truncated to the persisted precision.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// ParseDateBound parses an inclusive date-range bound.
//
// A calendar date (YYYY-MM-DD) is widened to the whole day: the start of the
// day for a lower bound, 23:59:59.999 for an upper bound. RFC 3339
// timestamps are used as-is. ok is false for blank or unparsable input.
func ParseDateBound(s string, upper bool) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if d, err := time.Parse(DateLayout, s); err == nil {
		if upper {
			return d.Add(24*time.Hour - time.Millisecond), true
		}
		return d, true
	}

	if ts, err := ParseTimestamp(s); err == nil {
		return ts, true
	}

	return time.Time{}, false
}
