// Package notify announces playback transitions on the desktop.
package notify

// Notifier raises desktop notifications when playback starts.
// Implementations must tolerate an absent notification service.
type Notifier interface {
	// NowPlaying announces the video that just started. Repeated calls
	// replace the previous announcement instead of stacking bubbles.
	NowPlaying(title, uploader string) error
	// Clear dismisses the current announcement, if any.
	Clear() error
}

// noopNotifier stands in when no notification service is available.
type noopNotifier struct{}

func (noopNotifier) NowPlaying(string, string) error { return nil }
func (noopNotifier) Clear() error                    { return nil }
