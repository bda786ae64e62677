//go:build !linux

package mpris

import (
	"github.com/tgrange/reel/internal/engine"
	"github.com/tgrange/reel/internal/playback"
)

// NowPlaying describes the loaded video for desktop metadata.
type NowPlaying struct {
	VideoID      int
	Title        string
	Uploader     string
	ThumbnailURL string
}

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ engine.Interface, _ *playback.Monitor) (*Adapter, error) {
	return &Adapter{}, nil
}

// SetNowPlaying is a no-op on non-Linux platforms.
func (a *Adapter) SetNowPlaying(_ NowPlaying) {}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
