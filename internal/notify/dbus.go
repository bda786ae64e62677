//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	notifyDest  = "org.freedesktop.Notifications"
	notifyPath  = "/org/freedesktop/Notifications"
	notifyIface = "org.freedesktop.Notifications"

	// Now-playing bubbles are informational; low urgency keeps them out
	// of do-not-disturb exemptions.
	urgencyLow byte = 0
)

// dbusNotifier talks to the freedesktop notification service. lastID
// tracks the live bubble so the next announcement replaces it.
type dbusNotifier struct {
	obj    dbus.BusObject
	lastID uint32
}

// New returns a Notifier backed by the session notification service, or
// a no-op one when no session bus is reachable.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return noopNotifier{}, nil //nolint:nilerr // headless sessions run without notifications
	}
	return &dbusNotifier{obj: conn.Object(notifyDest, notifyPath)}, nil
}

func (n *dbusNotifier) NowPlaying(title, uploader string) error {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(urgencyLow),
		"desktop-entry": dbus.MakeVariant("reel"),
	}

	// Notify(app_name, replaces_id, icon, summary, body, actions, hints, timeout)
	call := n.obj.Call(notifyIface+".Notify", 0,
		"Reel",
		n.lastID,
		"video-display",
		title,
		uploader,
		[]string{},
		hints,
		int32(-1), // server default expiry
	)
	if call.Err != nil {
		return call.Err
	}
	return call.Store(&n.lastID)
}

func (n *dbusNotifier) Clear() error {
	if n.lastID == 0 {
		return nil
	}
	call := n.obj.Call(notifyIface+".CloseNotification", 0, n.lastID)
	n.lastID = 0
	return call.Err
}
