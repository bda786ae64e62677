package playback

import "github.com/tgrange/reel/internal/engine"

const updateBufferSize = 16

// Update pairs the event that occurred with the snapshot after it was
// applied. Subscribers that only care about the resulting state can
// ignore Kind; the surface uses it to force controls visible on ended.
type Update struct {
	Kind     engine.Kind
	Snapshot engine.Snapshot
}

// Subscription delivers snapshot updates to one subscriber. Done is
// closed on teardown; a closed Done guarantees no further sends.
type Subscription struct {
	Updates <-chan Update
	Done    <-chan struct{}

	updateCh chan Update
	doneCh   chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		updateCh: make(chan Update, updateBufferSize),
		doneCh:   make(chan struct{}),
	}
	s.Updates = s.updateCh
	s.Done = s.doneCh
	return s
}

// send delivers an update without blocking the monitor; when the buffer
// is full the oldest pending update is dropped in favor of the new one,
// so a slow subscriber converges on the latest state.
func (s *Subscription) send(u Update) {
	select {
	case s.updateCh <- u:
	default:
		select {
		case <-s.updateCh:
		default:
		}
		select {
		case s.updateCh <- u:
		default:
		}
	}
}

func (s *Subscription) close() {
	close(s.doneCh)
}
