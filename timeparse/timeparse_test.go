// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package timeparse

import (
	"testing"
	"time"
)

func TestStartTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unix seconds", "1756684800", "2025-09-01T00:00:00"},
		{"rfc3339", "2025-09-01T10:30:00Z", "2025-09-01T10:30:00"},
		{"local datetime", "2025-09-01T10:30:00", "2025-09-01T10:30:00"},
		{"space separated", "2025-09-01 10:30:00", "2025-09-01T10:30:00"},
		{"minute precision", "2025-09-01 10:30", "2025-09-01T10:30:00"},
		{"date only", "2025-09-01", "2025-09-01T00:00:00"},
		{"surrounding whitespace", "  2025-09-01  ", "2025-09-01T00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StartTime(tt.input)
			if err != nil {
				t.Fatalf("StartTime(%q) failed: %v", tt.input, err)
			}
			if FormatStartTime(got) != tt.want {
				t.Errorf("StartTime(%q) = %s, want %s", tt.input, FormatStartTime(got), tt.want)
			}
		})
	}
}

func TestStartTimeFractionalSeconds(t *testing.T) {
	got, err := StartTime("1756684800.5")
	if err != nil {
		t.Fatalf("StartTime failed: %v", err)
	}
	want := time.Unix(1756684800, int64(500*time.Millisecond)).UTC()
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestStartTimeRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "   ", "next tuesday", "01/09/2025"} {
		if _, err := StartTime(input); err == nil {
			t.Errorf("Expected error for %q", input)
		}
	}
}
