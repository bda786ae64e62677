package surface

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// hideTickMsg is the firing of a hide deadline. The generation stamps
// which deadline fired; a stale generation is a superseded deadline and
// must be ignored.
type hideTickMsg struct {
	gen int
}

// visibility owns the single cancellable hide deadline for the on-screen
// controls. Arming a new deadline supersedes any earlier one via the
// generation counter, so at most one pending deadline is live and a late
// firing of an old one is a no-op.
type visibility struct {
	visible bool
	gen     int
}

// reveal shows the controls and rearms the hide deadline, but only while
// playing with no menu open. Any reveal invalidates the previous
// deadline. While not playing, controls stay visible and no deadline is
// armed.
func (v *visibility) reveal(playing, menuOpen bool) tea.Cmd {
	v.visible = true
	v.gen++ // invalidate any pending deadline
	if !playing || menuOpen {
		return nil
	}
	gen := v.gen
	return tea.Tick(hideDelay, func(time.Time) tea.Msg {
		return hideTickMsg{gen: gen}
	})
}

// handleTick processes a hide deadline firing. The blocking states are
// checked at fire time, not arm time: a menu may have opened or playback
// paused after the deadline was armed.
func (v *visibility) handleTick(msg hideTickMsg, playing, menuOpen, scrubbing bool) {
	if msg.gen != v.gen {
		return // superseded deadline
	}
	if !playing || menuOpen || scrubbing {
		return
	}
	v.visible = false
}

// cancel invalidates any pending deadline without changing visibility.
// Used on teardown and whenever playback stops.
func (v *visibility) cancel() {
	v.gen++
}
