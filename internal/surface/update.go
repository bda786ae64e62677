package surface

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"github.com/tgrange/reel/internal/engine"
	"github.com/tgrange/reel/internal/keymap"
)

// Update routes engine updates, scheduler firings and user input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case UpdateMsg:
		return m.handleSnapshot(msg)
	case SubscriptionClosedMsg:
		m.vis.cancel()
		return m, nil
	case hideTickMsg:
		m.vis.handleTick(msg, m.playing(), m.menu.open != MenuNone, m.scrub.active)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// Teardown cancels the pending hide deadline. The monitor releases the
// subscription separately.
func (m *Model) Teardown() {
	m.vis.cancel()
}

// handleSnapshot folds an observed-state update into the surface.
func (m Model) handleSnapshot(msg UpdateMsg) (Model, tea.Cmd) {
	wasPlaying := m.playing()
	m.snap = msg.Snapshot

	var visCmd tea.Cmd
	switch {
	case msg.Kind == engine.KindEnded:
		// Ended forces the controls back on screen.
		m.vis.cancel()
		m.vis.visible = true
	case !m.playing():
		// While not playing, controls are always visible and no hide is
		// ever armed.
		m.vis.cancel()
		m.vis.visible = true
	case !wasPlaying && m.playing():
		visCmd = m.vis.reveal(true, m.menu.open != MenuNone)
	}

	return m, tea.Batch(waitForUpdate(m.sub), visCmd)
}

// handleKey dispatches keyboard shortcuts. Shortcuts are ignored while
// focus is inside a text input; any other keyboard activity reveals the
// controls.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.inputCaptured {
		return m, nil
	}
	key := msg.String()

	if m.menu.open != MenuNone {
		m = m.handleMenuKey(key)
	} else if action := m.keys.Resolve(key); action != "" {
		m.applyAction(action)
	}

	return m, m.vis.reveal(m.playing(), m.menu.open != MenuNone)
}

// handleMenuKey navigates the open menu. Keys that mean nothing to the
// menu are an outside interaction and close it.
func (m Model) handleMenuKey(key string) Model {
	switch key {
	case "up", "k":
		m.menu.moveCursor(-1)
	case "down", "j":
		m.menu.moveCursor(1)
	case "enter":
		m.selectMenuItem(m.menu.cursor)
	case "esc":
		m.menu.closeMenu()
	default:
		action := m.keys.Resolve(key)
		if action == keymap.ActionSpeedMenu || action == keymap.ActionQualityMenu {
			// Menu toggles route through applyAction so the same key
			// closes its own menu and switches away from the other.
			m.applyAction(action)
			return m
		}
		m.menu.closeMenu()
		if action != "" {
			m.applyAction(action)
		}
	}
	return m
}

// applyAction maps a discrete action to engine commands. Local snapshot
// fields are updated optimistically so repeated actions accumulate
// without waiting for the engine echo; the next observed update
// overwrites them with engine truth.
func (m *Model) applyAction(action keymap.Action) {
	switch action {
	case keymap.ActionPlayPause:
		m.togglePlay()
	case keymap.ActionSeekBack:
		m.seekBy(-seekStep)
	case keymap.ActionSeekForward:
		m.seekBy(seekStep)
	case keymap.ActionSkipBack:
		m.seekBy(-skipStep)
	case keymap.ActionSkipForward:
		m.seekBy(skipStep)
	case keymap.ActionVolumeUp:
		m.setVolume(m.snap.Volume + volumeStep)
	case keymap.ActionVolumeDown:
		m.setVolume(m.snap.Volume - volumeStep)
	case keymap.ActionToggleMute:
		m.snap.Muted = !m.snap.Muted
		_ = m.eng.SetMuted(m.snap.Muted)
	case keymap.ActionToggleFullscreen:
		if m.snap.Fullscreen {
			m.eng.ExitFullscreen()
		} else {
			m.eng.RequestFullscreen()
		}
	case keymap.ActionTogglePiP:
		if !m.eng.SupportsPiP() {
			return
		}
		if m.snap.PiP {
			m.eng.ExitPiP()
		} else {
			m.eng.RequestPiP()
		}
	case keymap.ActionSpeedMenu:
		m.menu.toggle(MenuSpeed, lo.IndexOf(Speeds, m.snap.Rate))
	case keymap.ActionQualityMenu:
		m.menu.toggle(MenuQuality, lo.IndexOf(Qualities, m.quality))
	}
}

// togglePlay toggles play/pause. If playback has ended it restarts from
// the beginning.
func (m *Model) togglePlay() {
	if m.snap.Ended {
		_ = m.eng.SeekTo(0)
		_ = m.eng.Play()
		m.snap.Position = 0
		m.snap.Ended = false
		m.snap.Paused = false
		return
	}
	if m.snap.Paused {
		_ = m.eng.Play()
		m.snap.Paused = false
	} else {
		_ = m.eng.Pause()
		m.snap.Paused = true
	}
}

// seekBy seeks relative to the displayed position, clamped to the known
// duration.
func (m *Model) seekBy(delta time.Duration) {
	target := m.snap.Clamp(m.displayPosition() + delta)
	_ = m.eng.SeekTo(target)
	m.snap.Position = target
	if m.snap.Duration > 0 && target < m.snap.Duration {
		m.snap.Ended = false
	}
}

// setVolume clamps to [0, 1]. Reaching zero never touches the muted
// flag; the view shows the muted icon on its own.
func (m *Model) setVolume(v float64) {
	v = lo.Clamp(v, 0, 1)
	_ = m.eng.SetVolume(v)
	m.snap.Volume = v
}

// selectMenuItem commits the highlighted menu entry and closes the menu.
func (m *Model) selectMenuItem(index int) {
	switch m.menu.open {
	case MenuSpeed:
		if index >= 0 && index < len(Speeds) {
			rate := Speeds[index]
			_ = m.eng.SetRate(rate)
			m.snap.Rate = rate
		}
	case MenuQuality:
		if index >= 0 && index < len(Qualities) {
			// Display-only: no engine command is issued.
			m.quality = Qualities[index]
		}
	}
	m.menu.closeMenu()
}

// handleMouse processes pointer input. While a scrub session is active
// the whole surface tracks movement, not just the seek track.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	g := computeLayout(m)
	localY := msg.Y - m.originY

	switch msg.Action {
	case tea.MouseActionMotion:
		if m.scrub.active {
			m.scrub.moveTo(m.eng, m.snap.Duration, g.trackFraction(msg.X))
			m.hoverSet = false
			break
		}
		m.updateHover(g, msg.X, localY)

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			break
		}
		m = m.handlePress(g, msg.X, localY)

	case tea.MouseActionRelease:
		if m.scrub.active {
			m.scrub.end(m.eng)
			// Keep the committed position until the engine echo arrives.
			m.snap.Position = m.scrub.position
		}
	}

	return m, m.vis.reveal(m.playing(), m.menu.open != MenuNone)
}

// updateHover maintains the hover preview. It is defined only while the
// pointer is within track bounds and no scrub session is active.
func (m *Model) updateHover(g geometry, x, y int) {
	m.hoverSet = false
	if !m.vis.visible || m.snap.Duration == 0 {
		return
	}
	if r, ok := g.hit(x, y); ok && r.id == regionTrack {
		m.hoverSet = true
		m.hoverTime = time.Duration(g.trackFraction(x) * float64(m.snap.Duration))
	}
}

// handlePress routes a left-button press to whatever it landed on.
func (m Model) handlePress(g geometry, x, y int) Model {
	if m.menu.open != MenuNone {
		if r, ok := g.hit(x, y); ok && r.id == regionMenuItem {
			m.selectMenuItem(r.index)
		} else {
			// Outside interaction closes the menu.
			m.menu.closeMenu()
		}
		return m
	}

	if !m.vis.visible {
		return m // the reveal from handleMouse brings the chrome back
	}

	r, ok := g.hit(x, y)
	if !ok {
		return m
	}
	switch r.id {
	case regionTrack:
		m.hoverSet = false
		m.scrub.begin(m.eng, m.snap, g.trackFraction(x))
	case regionPlay:
		m.togglePlay()
	case regionSkipBack:
		m.seekBy(-skipStep)
	case regionSkipForward:
		m.seekBy(skipStep)
	case regionMute:
		m.snap.Muted = !m.snap.Muted
		_ = m.eng.SetMuted(m.snap.Muted)
	case regionVolume:
		span := r.x1 - r.x0 - 1
		if span > 0 {
			m.setVolume(float64(x-r.x0) / float64(span))
		}
	case regionSpeed:
		m.menu.toggle(MenuSpeed, lo.IndexOf(Speeds, m.snap.Rate))
	case regionQuality:
		m.menu.toggle(MenuQuality, lo.IndexOf(Qualities, m.quality))
	case regionFullscreen:
		if m.snap.Fullscreen {
			m.eng.ExitFullscreen()
		} else {
			m.eng.RequestFullscreen()
		}
	case regionPiP:
		if m.snap.PiP {
			m.eng.ExitPiP()
		} else {
			m.eng.RequestPiP()
		}
	}
	return m
}
