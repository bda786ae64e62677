// Package surface implements the playback control surface: it merges the
// observed engine state, visibility state and scrub state into one
// renderable snapshot, and routes discrete user actions and keyboard
// shortcuts to engine commands.
package surface

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tgrange/reel/internal/engine"
	"github.com/tgrange/reel/internal/keymap"
	"github.com/tgrange/reel/internal/playback"
)

// Config constants of the control surface.
const (
	hideDelay  = 2800 * time.Millisecond // idle time before chrome hides
	seekStep   = 5 * time.Second         // keyboard seek
	skipStep   = 10 * time.Second        // skip buttons
	volumeStep = 0.1
)

// Speeds is the fixed playback rate set offered by the speed menu.
var Speeds = []float64{0.25, 0.5, 0.75, 1, 1.25, 1.5, 1.75, 2}

// Qualities is the fixed quality label set. Selection is display-only:
// the engine keeps playing the same source.
var Qualities = []string{"Auto", "1080p HD", "720p", "480p", "360p"}

// Model is the top-level coordinator for one playback surface instance.
// It owns the snapshot, the visibility timer, the scrub session and the
// menu state for its lifetime; the engine handle is used for commands
// only, never mutated directly.
type Model struct {
	eng engine.Interface
	sub *playback.Subscription

	snap  engine.Snapshot
	vis   visibility
	scrub scrubSession
	menu  menuState

	// Hover preview over the seek track. Defined only while the pointer
	// is within track bounds and no scrub session is active.
	hoverTime time.Duration
	hoverSet  bool

	quality string // display-only quality label

	// inputCaptured suppresses shortcuts while the host has focus inside
	// a text input.
	inputCaptured bool

	keys    *keymap.Resolver
	width   int
	originY int // terminal row of the surface's first line
}

// New creates a surface over the engine and subscribes to monitor
// updates. The subscription is released by the monitor on teardown.
func New(eng engine.Interface, mon *playback.Monitor) Model {
	bindings := append(keymap.ByContext("playback"), keymap.ByContext("display")...)
	return Model{
		eng:     eng,
		sub:     mon.Subscribe(),
		snap:    mon.Snapshot(),
		vis:     visibility{visible: true},
		quality: Qualities[0],
		keys:    keymap.NewResolver(bindings),
	}
}

// Init starts listening for snapshot updates.
func (m Model) Init() tea.Cmd {
	return waitForUpdate(m.sub)
}

// SetWidth sets the render width.
func (m *Model) SetWidth(w int) { m.width = w }

// SetOrigin tells the surface which terminal row its first line renders
// at, so mouse coordinates can be hit-tested.
func (m *Model) SetOrigin(y int) { m.originY = y }

// SetInputCaptured suppresses keyboard shortcuts while a text input has
// focus.
func (m *Model) SetInputCaptured(captured bool) { m.inputCaptured = captured }

// SetQuality restores a persisted quality label.
func (m *Model) SetQuality(label string) {
	for _, q := range Qualities {
		if q == label {
			m.quality = label
			return
		}
	}
}

// Snapshot returns the current observed state.
func (m Model) Snapshot() engine.Snapshot { return m.snap }

// Quality returns the selected display-only quality label.
func (m Model) Quality() string { return m.quality }

// ControlsVisible reports whether the chrome is currently shown.
func (m Model) ControlsVisible() bool { return m.vis.visible }

// Scrubbing reports whether a drag-to-seek session is in progress.
func (m Model) Scrubbing() bool { return m.scrub.active }

// Height returns the number of terminal rows the surface occupies.
func (m Model) Height() int {
	if !m.vis.visible {
		return 0
	}
	h := barHeight
	if m.menu.open != MenuNone {
		h += len(m.menu.items()) // overlay rows above the bar
	}
	return h
}

// displayPosition is the position shown to the user. During an active
// scrub the session's optimistic value is authoritative; engine time
// updates reporting unrelated times are superseded until release.
func (m Model) displayPosition() time.Duration {
	if m.scrub.active {
		return m.scrub.position
	}
	return m.snap.Position
}

// playing reports whether playback is running for visibility purposes.
func (m Model) playing() bool {
	return !m.snap.Paused && !m.snap.Ended
}
