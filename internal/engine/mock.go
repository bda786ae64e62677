package engine

import (
	"sync"
	"time"
)

// Mock is a test double for the engine binding. Commands mutate the
// snapshot synchronously and echo the events a real engine would emit,
// so tests can drive the full event loop without an mpv process.
type Mock struct {
	mu     sync.Mutex
	snap   Snapshot
	events chan Event
	closed bool

	// Behavior switches
	RejectFullscreen bool // platform denies fullscreen requests
	PiPSupported     bool
	LoadErr          error

	// Recorded calls
	LoadCalls  []string
	PlayCalls  int
	PauseCalls int
	SeekCalls  []time.Duration
	RateCalls  []float64
}

// NewMock creates a mock engine with a known duration of zero and unit
// volume, matching a freshly constructed binding.
func NewMock() *Mock {
	return &Mock{
		snap: Snapshot{
			Volume: 1,
			Rate:   1,
			Paused: true,
		},
		events: make(chan Event, eventBufferSize),
	}
}

// SetDuration simulates metadata arrival.
func (m *Mock) SetDuration(d time.Duration) {
	m.mu.Lock()
	m.snap.Duration = d
	m.mu.Unlock()
	m.emit(Event{Kind: KindDurationChange, Duration: d})
	m.emit(Event{Kind: KindMetadataLoaded, Duration: d})
}

// Advance simulates engine progress, emitting a timeupdate.
func (m *Mock) Advance(to time.Duration) {
	m.mu.Lock()
	m.snap.Position = m.snap.Clamp(to)
	ev := Event{Kind: KindTimeUpdate, Position: m.snap.Position, Buffered: m.snap.Buffered}
	m.mu.Unlock()
	m.emit(ev)
}

// FinishPlayback simulates the media reaching its end.
func (m *Mock) FinishPlayback() {
	m.mu.Lock()
	m.snap.Position = m.snap.Duration
	m.snap.Ended = true
	m.snap.Paused = true
	m.mu.Unlock()
	m.emit(Event{Kind: KindEnded})
}

// Fail simulates a playback error from the resource.
func (m *Mock) Fail(err error) {
	m.emit(Event{Kind: KindError, Err: err})
}

func (m *Mock) Load(url string) error {
	m.mu.Lock()
	m.LoadCalls = append(m.LoadCalls, url)
	err := m.LoadErr
	m.mu.Unlock()
	return err
}

func (m *Mock) Play() error {
	m.mu.Lock()
	m.PlayCalls++
	m.snap.Paused = false
	m.snap.Ended = false
	m.mu.Unlock()
	m.emit(Event{Kind: KindPlay})
	return nil
}

func (m *Mock) Pause() error {
	m.mu.Lock()
	m.PauseCalls++
	m.snap.Paused = true
	m.mu.Unlock()
	m.emit(Event{Kind: KindPause})
	return nil
}

func (m *Mock) SeekTo(t time.Duration) error {
	m.mu.Lock()
	t = m.snap.Clamp(t)
	m.SeekCalls = append(m.SeekCalls, t)
	m.snap.Position = t
	if m.snap.Duration > 0 && t < m.snap.Duration {
		m.snap.Ended = false
	}
	ev := Event{Kind: KindTimeUpdate, Position: t, Buffered: m.snap.Buffered}
	m.mu.Unlock()
	m.emit(ev)
	return nil
}

func (m *Mock) SetVolume(v float64) error {
	m.mu.Lock()
	m.snap.Volume = clampVolume(v)
	ev := Event{Kind: KindVolumeChange, Volume: m.snap.Volume, Muted: m.snap.Muted}
	m.mu.Unlock()
	m.emit(ev)
	return nil
}

func (m *Mock) SetMuted(muted bool) error {
	m.mu.Lock()
	m.snap.Muted = muted
	ev := Event{Kind: KindVolumeChange, Volume: m.snap.Volume, Muted: muted}
	m.mu.Unlock()
	m.emit(ev)
	return nil
}

func (m *Mock) SetRate(rate float64) error {
	m.mu.Lock()
	m.RateCalls = append(m.RateCalls, rate)
	m.snap.Rate = rate
	m.mu.Unlock()
	m.emit(Event{Kind: KindRateChange, Rate: rate})
	return nil
}

func (m *Mock) RequestFullscreen() {
	if m.RejectFullscreen {
		return // rejection swallowed, no state change
	}
	m.mu.Lock()
	m.snap.Fullscreen = true
	m.mu.Unlock()
	m.emit(Event{Kind: KindFullscreenChange, Fullscreen: true})
}

func (m *Mock) ExitFullscreen() {
	m.mu.Lock()
	m.snap.Fullscreen = false
	m.mu.Unlock()
	m.emit(Event{Kind: KindFullscreenChange, Fullscreen: false})
}

func (m *Mock) SupportsPiP() bool { return m.PiPSupported }

func (m *Mock) RequestPiP() {
	if !m.PiPSupported {
		return
	}
	m.mu.Lock()
	m.snap.PiP = true
	m.mu.Unlock()
	m.emit(Event{Kind: KindEnterPiP})
}

func (m *Mock) ExitPiP() {
	if !m.PiPSupported {
		return
	}
	m.mu.Lock()
	m.snap.PiP = false
	m.mu.Unlock()
	m.emit(Event{Kind: KindLeavePiP})
}

func (m *Mock) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap
}

func (m *Mock) Events() <-chan Event {
	return m.events
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *Mock) emit(ev Event) {
	m.mu.Lock()
	closed := m.closed
	m.mu.Unlock()
	if closed {
		return
	}
	select {
	case m.events <- ev:
	default:
	}
}
