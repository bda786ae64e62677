package surface

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tgrange/reel/internal/playback"
)

// UpdateMsg carries a snapshot update from the playback monitor into the
// bubbletea loop.
type UpdateMsg playback.Update

// SubscriptionClosedMsg signals that the monitor released our
// subscription; the surface stops listening.
type SubscriptionClosedMsg struct{}

// waitForUpdate blocks on the subscription and converts the next update
// into a message. Re-armed by Update after each delivery.
func waitForUpdate(sub *playback.Subscription) tea.Cmd {
	return func() tea.Msg {
		select {
		case u := <-sub.Updates:
			return UpdateMsg(u)
		case <-sub.Done:
			return SubscriptionClosedMsg{}
		}
	}
}
