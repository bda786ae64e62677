package surface

import (
	"fmt"
	"time"
)

// formatTime renders a playback time as H:MM:SS for durations of an hour
// or more, M:SS otherwise.
func formatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
