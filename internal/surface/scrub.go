package surface

import (
	"time"

	"github.com/samber/lo"

	"github.com/tgrange/reel/internal/engine"
)

// scrubSession manages one drag-to-seek interaction. While active it
// captures pointer movement across the whole input surface, not just
// the track, so a fast drag leaving the track bounds keeps working.
// Its optimistic position is authoritative for display until release.
type scrubSession struct {
	active     bool
	wasPlaying bool
	position   time.Duration
}

// begin starts a session at the given track fraction. Playback is
// suspended for the duration of the drag and resumed on release iff it
// was running before.
func (s *scrubSession) begin(eng engine.Interface, snap engine.Snapshot, frac float64) {
	if s.active {
		return
	}
	s.active = true
	s.wasPlaying = !snap.Paused
	if s.wasPlaying {
		_ = eng.Pause()
	}
	s.position = snap.Position
	s.moveTo(eng, snap.Duration, frac)
}

// moveTo seeks to a clamped fractional position along the track and
// records it immediately, without waiting for the engine's own
// time-update echo.
func (s *scrubSession) moveTo(eng engine.Interface, duration time.Duration, frac float64) {
	if !s.active {
		return
	}
	frac = lo.Clamp(frac, 0, 1)
	s.position = time.Duration(frac * float64(duration))
	_ = eng.SeekTo(s.position)
}

// end releases the session and resumes playback iff it was running when
// the drag started. Safe to call on every exit path; release happens
// exactly once.
func (s *scrubSession) end(eng engine.Interface) {
	if !s.active {
		return
	}
	s.active = false
	if s.wasPlaying {
		_ = eng.Play()
	}
}
