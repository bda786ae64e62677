package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Property observation ids. mpv echoes these back on every
// property-change event.
const (
	propTimePos = iota + 1
	propDuration
	propPause
	propEOFReached
	propVolume
	propMute
	propSpeed
	propFullscreen
	propCacheTime
)

const eventBufferSize = 64

// Options configures the mpv binding.
type Options struct {
	Binary     string   // mpv executable, default "mpv"
	SocketPath string   // IPC socket path, default under os.TempDir
	ExtraArgs  []string // appended to the mpv command line
	Logger     *logrus.Logger
}

// Mpv drives an external mpv process over its JSON IPC socket. mpv owns
// decoding and the video window; this binding owns the command channel
// and translates property changes into the engine event set.
type Mpv struct {
	mu   sync.RWMutex
	snap Snapshot

	conn   *ipcConn
	cmd    *exec.Cmd
	events chan Event
	log    *logrus.Entry

	metadataSeen bool
	closed       bool
}

// NewMpv spawns mpv in idle mode and connects to its IPC socket.
func NewMpv(opts Options) (*Mpv, error) {
	if opts.Binary == "" {
		opts.Binary = "mpv"
	}
	if opts.SocketPath == "" {
		opts.SocketPath = filepath.Join(os.TempDir(), fmt.Sprintf("reel-mpv-%d.sock", os.Getpid()))
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	m := &Mpv{
		events: make(chan Event, eventBufferSize),
		log:    opts.Logger.WithField("component", "engine"),
		snap: Snapshot{
			Volume: 1,
			Rate:   1,
			Paused: true,
		},
	}

	args := []string{
		"--idle=yes",
		"--no-terminal",
		"--force-window=yes",
		"--keep-open=yes", // EOF pauses on the last frame instead of closing
		"--input-ipc-server=" + opts.SocketPath,
	}
	args = append(args, opts.ExtraArgs...)
	cmd := exec.Command(opts.Binary, args...)
	cmd.Stdout = m.log.WriterLevel(logrus.DebugLevel)
	cmd.Stderr = m.log.WriterLevel(logrus.WarnLevel)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", opts.Binary, err)
	}
	m.cmd = cmd

	conn, err := dialIPC(opts.SocketPath, 5*time.Second, m.handleIPC)
	if err != nil {
		_ = cmd.Process.Kill()
		return nil, err
	}
	m.conn = conn

	if err := m.observeProperties(); err != nil {
		_ = conn.close()
		_ = cmd.Process.Kill()
		return nil, err
	}

	return m, nil
}

func (m *Mpv) observeProperties() error {
	observed := []struct {
		id   int
		name string
	}{
		{propTimePos, "time-pos"},
		{propDuration, "duration"},
		{propPause, "pause"},
		{propEOFReached, "eof-reached"},
		{propVolume, "volume"},
		{propMute, "mute"},
		{propSpeed, "speed"},
		{propFullscreen, "fullscreen"},
		{propCacheTime, "demuxer-cache-time"},
	}
	for _, p := range observed {
		if _, err := m.conn.call("observe_property", p.id, p.name); err != nil {
			return fmt.Errorf("observe %s: %w", p.name, err)
		}
	}
	return nil
}

// Load opens a stream URL. Playback starts paused; the caller decides
// when to start.
func (m *Mpv) Load(url string) error {
	if err := m.conn.send("set_property", "pause", true); err != nil {
		return err
	}
	if _, err := m.conn.call("loadfile", url); err != nil {
		return fmt.Errorf("loadfile: %w", err)
	}
	return nil
}

func (m *Mpv) Play() error {
	return m.conn.send("set_property", "pause", false)
}

func (m *Mpv) Pause() error {
	return m.conn.send("set_property", "pause", true)
}

// SeekTo moves the playhead. Targets outside [0, duration] are clamped.
func (m *Mpv) SeekTo(t time.Duration) error {
	m.mu.RLock()
	t = m.snap.Clamp(t)
	m.mu.RUnlock()
	return m.conn.send("seek", t.Seconds(), "absolute")
}

// SetVolume sets the volume, clamped to [0, 1]. mpv speaks percent.
func (m *Mpv) SetVolume(v float64) error {
	return m.conn.send("set_property", "volume", clampVolume(v)*100)
}

func (m *Mpv) SetMuted(muted bool) error {
	return m.conn.send("set_property", "mute", muted)
}

func (m *Mpv) SetRate(rate float64) error {
	return m.conn.send("set_property", "speed", rate)
}

// RequestFullscreen asks the platform for fullscreen. A rejection leaves
// state unchanged; the outcome arrives as a fullscreenchange event.
func (m *Mpv) RequestFullscreen() {
	if err := m.conn.send("set_property", "fullscreen", true); err != nil {
		m.log.WithError(err).Debug("fullscreen request rejected")
	}
}

func (m *Mpv) ExitFullscreen() {
	if err := m.conn.send("set_property", "fullscreen", false); err != nil {
		m.log.WithError(err).Debug("fullscreen exit rejected")
	}
}

// SupportsPiP reports false: mpv has no picture-in-picture mode, so the
// surface never offers the affordance.
func (m *Mpv) SupportsPiP() bool { return false }

// RequestPiP is a swallowed rejection on this platform.
func (m *Mpv) RequestPiP() {
	m.log.Debug("pip request rejected: unsupported")
}

func (m *Mpv) ExitPiP() {}

func (m *Mpv) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap
}

func (m *Mpv) Events() <-chan Event {
	return m.events
}

// Close quits mpv and releases the socket. No event is delivered after
// Close returns.
func (m *Mpv) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	m.mu.Unlock()

	_ = m.conn.send("quit")
	err := m.conn.close()

	// Give mpv a moment to exit on its own before killing it.
	waited := make(chan struct{})
	go func() {
		_ = m.cmd.Wait()
		close(waited)
	}()
	select {
	case <-waited:
	case <-time.After(2 * time.Second):
		_ = m.cmd.Process.Kill()
		<-waited
	}
	return err
}

// handleIPC runs on the socket read loop.
func (m *Mpv) handleIPC(msg ipcMessage) {
	switch msg.Event {
	case "property-change":
		m.handlePropertyChange(msg)
	case "file-loaded":
		m.mu.Lock()
		m.metadataSeen = true
		dur := m.snap.Duration
		m.mu.Unlock()
		m.emit(Event{Kind: KindMetadataLoaded, Duration: dur})
	case "end-file":
		if msg.Reason == "error" {
			m.emit(Event{Kind: KindError, Err: fmt.Errorf("playback failed: end-file reason=error")})
		}
	}
}

func (m *Mpv) handlePropertyChange(msg ipcMessage) {
	switch msg.ID {
	case propTimePos:
		pos, ok := asFloat(msg.Data)
		if !ok {
			return
		}
		m.mu.Lock()
		m.snap.Position = secs(pos)
		ev := Event{Kind: KindTimeUpdate, Position: m.snap.Position, Buffered: m.snap.Buffered}
		m.mu.Unlock()
		m.emit(ev)

	case propDuration:
		dur, ok := asFloat(msg.Data)
		if !ok {
			return
		}
		m.mu.Lock()
		m.snap.Duration = secs(dur)
		if m.snap.Buffered > m.snap.Duration {
			m.snap.Buffered = m.snap.Duration
		}
		ev := Event{Kind: KindDurationChange, Duration: m.snap.Duration}
		m.mu.Unlock()
		m.emit(ev)

	case propPause:
		paused, ok := asBool(msg.Data)
		if !ok {
			return
		}
		m.mu.Lock()
		m.snap.Paused = paused
		if !paused {
			m.snap.Ended = false
		}
		m.mu.Unlock()
		if paused {
			m.emit(Event{Kind: KindPause})
		} else {
			m.emit(Event{Kind: KindPlay})
		}

	case propEOFReached:
		eof, ok := asBool(msg.Data)
		if !ok || !eof {
			return
		}
		m.mu.Lock()
		m.snap.Ended = true
		m.snap.Paused = true // ended implies paused
		m.mu.Unlock()
		m.emit(Event{Kind: KindEnded})

	case propVolume:
		vol, ok := asFloat(msg.Data)
		if !ok {
			return
		}
		m.mu.Lock()
		m.snap.Volume = clampVolume(vol / 100)
		ev := Event{Kind: KindVolumeChange, Volume: m.snap.Volume, Muted: m.snap.Muted}
		m.mu.Unlock()
		m.emit(ev)

	case propMute:
		muted, ok := asBool(msg.Data)
		if !ok {
			return
		}
		m.mu.Lock()
		m.snap.Muted = muted
		ev := Event{Kind: KindVolumeChange, Volume: m.snap.Volume, Muted: muted}
		m.mu.Unlock()
		m.emit(ev)

	case propSpeed:
		rate, ok := asFloat(msg.Data)
		if !ok {
			return
		}
		m.mu.Lock()
		m.snap.Rate = rate
		m.mu.Unlock()
		m.emit(Event{Kind: KindRateChange, Rate: rate})

	case propFullscreen:
		fs, ok := asBool(msg.Data)
		if !ok {
			return
		}
		m.mu.Lock()
		m.snap.Fullscreen = fs
		m.mu.Unlock()
		m.emit(Event{Kind: KindFullscreenChange, Fullscreen: fs})

	case propCacheTime:
		buf, ok := asFloat(msg.Data)
		if !ok {
			return
		}
		m.mu.Lock()
		m.snap.Buffered = secs(buf)
		if m.snap.Duration > 0 && m.snap.Buffered > m.snap.Duration {
			m.snap.Buffered = m.snap.Duration
		}
		m.mu.Unlock()
	}
}

// emit sends without blocking the socket reader; a full buffer drops the
// event. Nothing is emitted once closed.
func (m *Mpv) emit(ev Event) {
	m.mu.RLock()
	closed := m.closed
	m.mu.RUnlock()
	if closed {
		return
	}
	select {
	case m.events <- ev:
	default:
		m.log.WithField("event", ev.Kind.String()).Debug("event buffer full, dropped")
	}
}

func secs(s float64) time.Duration {
	if s < 0 {
		return 0
	}
	return time.Duration(s * float64(time.Second))
}

func asFloat(raw json.RawMessage) (float64, bool) {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	return f, true
}

func asBool(raw json.RawMessage) (bool, bool) {
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, false
	}
	return b, true
}
