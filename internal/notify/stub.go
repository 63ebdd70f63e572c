//go:build !linux

package notify

// New returns a notifier that does nothing; only Linux desktops are supported.
func New() (Notifier, error) {
	return stubNotifier{}, nil
}
