// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package timeparse

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layouts accepted for race start times, tried in order after the
// Unix-seconds form.
var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// StartTime parses a race start time. Accepted forms, in order: Unix
// seconds (integer or fractional), RFC 3339, and the date/time layouts
// above. Anything else is an error — callers must not pass unparseable
// values through silently.
func StartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty start time")
	}

	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		sec := int64(secs)
		nsec := int64((secs - float64(sec)) * float64(time.Second))
		return time.Unix(sec, nsec).UTC(), nil
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized start time %q", s)
}

// FormatStartTime renders a start time in the backend's canonical
// layout.
func FormatStartTime(t time.Time) string {
	return t.Format("2006-01-02T15:04:05")
}
