//go:build !linux

package notify

// New returns a no-op Notifier on platforms without a desktop
// notification service.
func New() (Notifier, error) {
	return noopNotifier{}, nil
}
