//go:build linux

// Package mpris exposes playback over D-Bus so desktop media controls
// (media keys, sound applets) can drive the player.
package mpris

import (
	"fmt"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

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

// Adapter connects the playback engine to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
	player *playerAdapter
}

// New creates and starts a new MPRIS adapter.
func New(eng engine.Interface, mon *playback.Monitor) (*Adapter, error) {
	player := &playerAdapter{eng: eng, mon: mon}

	a := &Adapter{
		server: server.NewServer("reel", &rootAdapter{}, player),
		player: player,
	}

	// Start the server in background
	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// SetNowPlaying updates the desktop metadata for the loaded video.
func (a *Adapter) SetNowPlaying(np NowPlaying) {
	a.player.setNowPlaying(np)
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Reel", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"http", "https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"video/mp4", "video/webm", "video/x-matroska"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter. D-Bus
// calls arrive on their own goroutine; playback state is read from the
// monitor which is safe for concurrent use.
type playerAdapter struct {
	eng engine.Interface
	mon *playback.Monitor

	mu  sync.Mutex
	now NowPlaying
}

func (p *playerAdapter) setNowPlaying(np NowPlaying) {
	p.mu.Lock()
	p.now = np
	p.mu.Unlock()
}

func (p *playerAdapter) nowPlaying() NowPlaying {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.now
}

func (p *playerAdapter) Next() error {
	return nil // Single video, no queue
}

func (p *playerAdapter) Previous() error {
	return nil // Single video, no queue
}

func (p *playerAdapter) Pause() error {
	return p.eng.Pause()
}

func (p *playerAdapter) PlayPause() error {
	if p.mon.Snapshot().Paused {
		return p.eng.Play()
	}
	return p.eng.Pause()
}

func (p *playerAdapter) Stop() error {
	if err := p.eng.SeekTo(0); err != nil {
		return err
	}
	return p.eng.Pause()
}

func (p *playerAdapter) Play() error {
	return p.eng.Play()
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	snap := p.mon.Snapshot()
	return p.eng.SeekTo(snap.Clamp(snap.Position + time.Duration(offset)*time.Microsecond))
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	return p.eng.SeekTo(time.Duration(position) * time.Microsecond)
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	snap := p.mon.Snapshot()
	switch {
	case snap.Ended:
		return types.PlaybackStatusStopped, nil
	case snap.Paused:
		return types.PlaybackStatusPaused, nil
	default:
		return types.PlaybackStatusPlaying, nil
	}
}

func (p *playerAdapter) Rate() (float64, error) {
	return p.mon.Snapshot().Rate, nil
}

func (p *playerAdapter) SetRate(rate float64) error {
	return p.eng.SetRate(rate)
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	now := p.nowPlaying()
	if now.Title == "" {
		return types.Metadata{}, nil
	}

	snap := p.mon.Snapshot()
	meta := types.Metadata{
		TrackId: dbus.ObjectPath(fmt.Sprintf("/org/mpris/MediaPlayer2/Video/%d", now.VideoID)),
		Length:  types.Microseconds(snap.Duration.Microseconds()),
		Title:   now.Title,
		Artist:  []string{now.Uploader},
	}
	if now.ThumbnailURL != "" {
		meta.ArtUrl = now.ThumbnailURL
	}

	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.mon.Snapshot().Volume, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	return p.eng.SetVolume(v)
}

func (p *playerAdapter) Position() (int64, error) {
	return p.mon.Snapshot().Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 0.25, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 2.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.nowPlaying().Title != "", nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}
