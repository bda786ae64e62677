package engine

import "time"

// Kind identifies an engine event.
type Kind int

const (
	KindPlay Kind = iota
	KindPause
	KindEnded
	KindTimeUpdate
	KindDurationChange
	KindMetadataLoaded
	KindVolumeChange
	KindRateChange
	KindEnterPiP
	KindLeavePiP
	KindFullscreenChange
	KindError
)

// String returns the event name for logging.
func (k Kind) String() string {
	switch k {
	case KindPlay:
		return "play"
	case KindPause:
		return "pause"
	case KindEnded:
		return "ended"
	case KindTimeUpdate:
		return "timeupdate"
	case KindDurationChange:
		return "durationchange"
	case KindMetadataLoaded:
		return "loadedmetadata"
	case KindVolumeChange:
		return "volumechange"
	case KindRateChange:
		return "ratechange"
	case KindEnterPiP:
		return "enterpictureinpicture"
	case KindLeavePiP:
		return "leavepictureinpicture"
	case KindFullscreenChange:
		return "fullscreenchange"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is a single engine or platform lifecycle notification. Only the
// fields relevant to the Kind are set.
type Event struct {
	Kind Kind

	Position   time.Duration // KindTimeUpdate
	Duration   time.Duration // KindDurationChange, KindMetadataLoaded
	Buffered   time.Duration // KindTimeUpdate
	Volume     float64       // KindVolumeChange
	Muted      bool          // KindVolumeChange
	Rate       float64       // KindRateChange
	Fullscreen bool          // KindFullscreenChange
	Err        error         // KindError, forwarded verbatim
}
