//go:build linux

package notify

import (
	"os"
	"testing"
)

func requireSessionBus(t *testing.T) Notifier {
	t.Helper()
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}
	n, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return n
}

func TestNowPlayingReplacesPrevious(t *testing.T) {
	n := requireSessionBus(t)

	if err := n.NowPlaying("First video", "uploader"); err != nil {
		t.Fatalf("NowPlaying() error: %v", err)
	}
	// The second announcement reuses the first bubble's ID.
	if err := n.NowPlaying("Second video", "uploader"); err != nil {
		t.Fatalf("NowPlaying() error: %v", err)
	}
	if err := n.Clear(); err != nil {
		t.Errorf("Clear() error: %v", err)
	}
}

func TestClearWithoutAnnouncement(t *testing.T) {
	// No live bubble means no bus traffic, so this needs no session.
	n := &dbusNotifier{}
	if err := n.Clear(); err != nil {
		t.Errorf("Clear() error: %v", err)
	}
}

func TestNoopNotifier(t *testing.T) {
	var n Notifier = noopNotifier{}
	if err := n.NowPlaying("Anything", "anyone"); err != nil {
		t.Errorf("NowPlaying() error: %v", err)
	}
	if err := n.Clear(); err != nil {
		t.Errorf("Clear() error: %v", err)
	}
}
