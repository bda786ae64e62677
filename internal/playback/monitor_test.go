package playback

import (
	"errors"
	"testing"
	"time"

	"github.com/tgrange/reel/internal/engine"
)

func waitUpdate(t *testing.T, sub *Subscription) Update {
	t.Helper()
	select {
	case u := <-sub.Updates:
		return u
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for update")
		return Update{}
	}
}

// waitFor drains updates until one matches the kind.
func waitFor(t *testing.T, sub *Subscription, kind engine.Kind) Update {
	t.Helper()
	deadline := time.After(time.Second)
	for {
		select {
		case u := <-sub.Updates:
			if u.Kind == kind {
				return u
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %v", kind)
		}
	}
}

func TestMonitor_AppliesEngineEvents(t *testing.T) {
	eng := engine.NewMock()
	m := NewMonitor(eng, nil)
	defer m.Close()
	sub := m.Subscribe()

	eng.SetDuration(125 * time.Second)
	u := waitFor(t, sub, engine.KindDurationChange)
	if u.Snapshot.Duration != 125*time.Second {
		t.Errorf("Duration = %v, want 125s", u.Snapshot.Duration)
	}

	eng.Play()
	u = waitFor(t, sub, engine.KindPlay)
	if u.Snapshot.Paused {
		t.Error("Paused = true after play event")
	}

	eng.Advance(30 * time.Second)
	u = waitFor(t, sub, engine.KindTimeUpdate)
	if u.Snapshot.Position != 30*time.Second {
		t.Errorf("Position = %v, want 30s", u.Snapshot.Position)
	}
}

func TestMonitor_EndedImpliesPaused(t *testing.T) {
	eng := engine.NewMock()
	m := NewMonitor(eng, nil)
	defer m.Close()
	sub := m.Subscribe()

	eng.SetDuration(10 * time.Second)
	eng.Play()
	eng.FinishPlayback()

	u := waitFor(t, sub, engine.KindEnded)
	if !u.Snapshot.Ended {
		t.Error("Ended = false, want true")
	}
	if !u.Snapshot.Paused {
		t.Error("Paused = false, want true (ended implies paused)")
	}
}

func TestMonitor_VolumeAndMute(t *testing.T) {
	eng := engine.NewMock()
	m := NewMonitor(eng, nil)
	defer m.Close()
	sub := m.Subscribe()

	eng.SetVolume(0.4)
	u := waitFor(t, sub, engine.KindVolumeChange)
	if u.Snapshot.Volume != 0.4 {
		t.Errorf("Volume = %v, want 0.4", u.Snapshot.Volume)
	}

	eng.SetMuted(true)
	u = waitFor(t, sub, engine.KindVolumeChange)
	if !u.Snapshot.Muted {
		t.Error("Muted = false, want true")
	}
	if u.Snapshot.Volume != 0.4 {
		t.Errorf("Volume = %v after mute, want 0.4 (unchanged)", u.Snapshot.Volume)
	}
}

func TestMonitor_ForwardsErrorsVerbatim(t *testing.T) {
	eng := engine.NewMock()
	playbackErr := errors.New("decoder gave up")
	got := make(chan error, 1)
	m := NewMonitor(eng, func(err error) { got <- err })
	defer m.Close()

	eng.Fail(playbackErr)

	select {
	case err := <-got:
		if !errors.Is(err, playbackErr) {
			t.Errorf("forwarded error = %v, want %v", err, playbackErr)
		}
	case <-time.After(time.Second):
		t.Fatal("error was not forwarded")
	}
}

func TestMonitor_SetErrorHandlerAfterStart(t *testing.T) {
	eng := engine.NewMock()
	m := NewMonitor(eng, nil)
	defer m.Close()

	playbackErr := errors.New("decoder gave up")
	got := make(chan error, 1)
	m.SetErrorHandler(func(err error) { got <- err })

	eng.Fail(playbackErr)

	select {
	case err := <-got:
		if !errors.Is(err, playbackErr) {
			t.Errorf("forwarded error = %v, want %v", err, playbackErr)
		}
	case <-time.After(time.Second):
		t.Fatal("error was not forwarded to the installed handler")
	}
}

func TestMonitor_CloseReleasesSubscriptions(t *testing.T) {
	eng := engine.NewMock()
	m := NewMonitor(eng, nil)
	sub := m.Subscribe()

	m.Close()

	select {
	case <-sub.Done:
	case <-time.After(time.Second):
		t.Fatal("Done not closed after Close")
	}

	// Events arriving after teardown must not be delivered.
	eng.Play()
	time.Sleep(20 * time.Millisecond)
	select {
	case u, ok := <-sub.Updates:
		if ok {
			t.Errorf("update %v delivered after Close", u.Kind)
		}
	default:
	}
}

func TestMonitor_CloseIsIdempotent(t *testing.T) {
	m := NewMonitor(engine.NewMock(), nil)
	m.Close()
	m.Close() // must not panic
}

func TestMonitor_SubscribeAfterClose(t *testing.T) {
	m := NewMonitor(engine.NewMock(), nil)
	m.Close()

	sub := m.Subscribe()
	select {
	case <-sub.Done:
	default:
		t.Error("subscription created after Close should be released immediately")
	}
}

func TestMonitor_SlowSubscriberConvergesOnLatest(t *testing.T) {
	eng := engine.NewMock()
	m := NewMonitor(eng, nil)
	defer m.Close()
	sub := m.Subscribe()

	eng.SetDuration(1000 * time.Second)
	// Overflow the buffer without reading.
	for i := 1; i <= updateBufferSize*3; i++ {
		eng.Advance(time.Duration(i) * time.Second)
	}

	// Allow the pump goroutine to drain the engine channel.
	deadline := time.Now().Add(time.Second)
	var last Update
	for time.Now().Before(deadline) {
		if m.Snapshot().Position == time.Duration(updateBufferSize*3)*time.Second {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	for {
		select {
		case u := <-sub.Updates:
			last = u
			continue
		default:
		}
		break
	}
	if last.Kind == engine.KindTimeUpdate && last.Snapshot.Position == 0 {
		t.Error("latest update lost under buffer pressure")
	}
}
