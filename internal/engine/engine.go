// Package engine wraps a single playback resource behind a fixed command
// set and a stream of observed events. The binding is the only writer of
// engine commands; everything above it works from snapshots and events.
package engine

import "time"

// Interface defines the engine binding contract for dependency injection
// and testing.
//
// Seek targets outside [0, duration] are clamped, never an error. Volume
// is clamped to [0, 1]. Fullscreen and picture-in-picture requests are
// asynchronous platform operations that may be rejected (unsupported,
// already in the requested state); rejections are swallowed: no state
// change, no error surfaced. Their outcome is observed later through the
// corresponding lifecycle event, never through the call itself.
type Interface interface {
	// Load opens a stream URL in the engine. Playback starts paused.
	Load(url string) error

	Play() error
	Pause() error
	SeekTo(t time.Duration) error
	SetVolume(v float64) error
	SetMuted(muted bool) error
	SetRate(rate float64) error

	RequestFullscreen()
	ExitFullscreen()
	RequestPiP()
	ExitPiP()
	SupportsPiP() bool

	// Snapshot returns the last observed engine state.
	Snapshot() Snapshot

	// Events returns the engine event stream. The channel is buffered;
	// the binding drops events rather than block the engine reader.
	Events() <-chan Event

	// Close releases the resource handle. No event is delivered after
	// Close returns.
	Close() error
}

// Verify implementations at compile time.
var (
	_ Interface = (*Mpv)(nil)
	_ Interface = (*Mock)(nil)
)

// Snapshot is the read-only observed state of the playback resource.
type Snapshot struct {
	Position time.Duration
	Duration time.Duration // 0 while unknown
	Buffered time.Duration
	Volume   float64 // 0..1
	Muted    bool
	Rate     float64
	Paused   bool
	Ended    bool

	Fullscreen bool
	PiP        bool
}

// Clamp returns t limited to [0, duration]. A zero duration means the
// media length is not known yet, in which case only the lower bound
// applies.
func (s Snapshot) Clamp(t time.Duration) time.Duration {
	if t < 0 {
		return 0
	}
	if s.Duration > 0 && t > s.Duration {
		return s.Duration
	}
	return t
}

// clampVolume limits v to [0, 1].
func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
