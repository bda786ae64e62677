// Package playback maintains the observed-state snapshot for one playback
// surface. A Monitor consumes engine and platform lifecycle events,
// applies them to the snapshot, and fans the result out to subscribers.
// Teardown releases every subscription: nothing is delivered after Close.
package playback

import (
	"sync"

	"github.com/tgrange/reel/internal/engine"
)

// ErrorHandler receives playback errors forwarded verbatim from the
// resource. Recovery, if any, is the host's responsibility.
type ErrorHandler func(error)

// Monitor subscribes to the engine event stream on activation and keeps
// the last successfully observed state. It is the only reader of the
// engine's event channel.
type Monitor struct {
	mu      sync.RWMutex
	eng     engine.Interface
	snap    engine.Snapshot
	onError ErrorHandler

	subsMu sync.RWMutex
	subs   []*Subscription

	done   chan struct{}
	closed bool
}

// NewMonitor activates a monitor over the engine. onError may be nil.
func NewMonitor(eng engine.Interface, onError ErrorHandler) *Monitor {
	m := &Monitor{
		eng:     eng,
		snap:    eng.Snapshot(),
		onError: onError,
		done:    make(chan struct{}),
	}
	go m.pump()
	return m
}

// Snapshot returns the last observed state.
func (m *Monitor) Snapshot() engine.Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap
}

// SetErrorHandler replaces the error callback. The pump may already be
// running, so the handler is swapped under the snapshot lock.
func (m *Monitor) SetErrorHandler(h ErrorHandler) {
	m.mu.Lock()
	m.onError = h
	m.mu.Unlock()
}

// Subscribe registers a new subscriber. The subscription is released by
// Monitor.Close.
func (m *Monitor) Subscribe() *Subscription {
	sub := newSubscription()
	m.subsMu.Lock()
	if m.closed {
		m.subsMu.Unlock()
		sub.close()
		return sub
	}
	m.subs = append(m.subs, sub)
	m.subsMu.Unlock()
	return sub
}

// Close detaches from the engine and releases every subscription. After
// Close returns no subscriber receives another update.
func (m *Monitor) Close() {
	m.subsMu.Lock()
	if m.closed {
		m.subsMu.Unlock()
		return
	}
	m.closed = true
	subs := m.subs
	m.subs = nil
	m.subsMu.Unlock()

	close(m.done)
	for _, sub := range subs {
		sub.close()
	}
}

func (m *Monitor) pump() {
	for {
		select {
		case <-m.done:
			return
		case ev, ok := <-m.eng.Events():
			if !ok {
				return
			}
			m.apply(ev)
		}
	}
}

// apply folds one event into the snapshot and broadcasts the result.
// Each event updates exactly the fields it reports; invariants
// (ended implies paused, buffered bounded by duration) are enforced here
// so subscribers never observe an inconsistent snapshot.
func (m *Monitor) apply(ev engine.Event) {
	if ev.Kind == engine.KindError {
		m.mu.RLock()
		h := m.onError
		m.mu.RUnlock()
		if h != nil {
			h(ev.Err)
		}
		return
	}

	m.mu.Lock()
	switch ev.Kind {
	case engine.KindPlay:
		m.snap.Paused = false
		m.snap.Ended = false
	case engine.KindPause:
		m.snap.Paused = true
	case engine.KindEnded:
		m.snap.Ended = true
		m.snap.Paused = true
	case engine.KindTimeUpdate:
		m.snap.Position = ev.Position
		m.snap.Buffered = ev.Buffered
	case engine.KindDurationChange, engine.KindMetadataLoaded:
		m.snap.Duration = ev.Duration
	case engine.KindVolumeChange:
		m.snap.Volume = ev.Volume
		m.snap.Muted = ev.Muted
	case engine.KindRateChange:
		m.snap.Rate = ev.Rate
	case engine.KindEnterPiP:
		m.snap.PiP = true
	case engine.KindLeavePiP:
		m.snap.PiP = false
	case engine.KindFullscreenChange:
		m.snap.Fullscreen = ev.Fullscreen
	}
	if m.snap.Duration > 0 && m.snap.Buffered > m.snap.Duration {
		m.snap.Buffered = m.snap.Duration
	}
	update := Update{Kind: ev.Kind, Snapshot: m.snap}
	m.mu.Unlock()

	m.broadcast(update)
}

func (m *Monitor) broadcast(u Update) {
	m.subsMu.RLock()
	defer m.subsMu.RUnlock()
	if m.closed {
		return
	}
	for _, sub := range m.subs {
		sub.send(u)
	}
}
