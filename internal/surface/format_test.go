package surface

import (
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"zero", 0, "0:00"},
		{"seconds only", 7 * time.Second, "0:07"},
		{"minutes", 83 * time.Second, "1:23"},
		{"just under an hour", 59*time.Minute + 59*time.Second, "59:59"},
		{"exactly one hour", time.Hour, "1:00:00"},
		{"hours", 2*time.Hour + 5*time.Minute + 9*time.Second, "2:05:09"},
		{"negative clamps to zero", -5 * time.Second, "0:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatTime(tt.in); got != tt.want {
				t.Errorf("formatTime(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1x"},
		{2, "2x"},
		{0.25, "0.25x"},
		{1.5, "1.5x"},
	}
	for _, tt := range tests {
		if got := formatRate(tt.in); got != tt.want {
			t.Errorf("formatRate(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
