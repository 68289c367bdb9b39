package core

import (
	"testing"
	"time"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{0, "00:00"},
		{-time.Second, "00:00"},
		{59*time.Second + 999*time.Millisecond, "00:59"},
		{90 * time.Second, "01:30"},
		{90 * time.Minute, "90:00"},
		{125 * time.Minute, "125:00"},
	}

	for _, tt := range tests {
		if got := FormatClock(tt.d); got != tt.expected {
			t.Errorf("FormatClock(%v) = %q, expected %q", tt.d, got, tt.expected)
		}
	}
}
