package notify

import (
	"fmt"
	"time"

	"github.com/llehouerou/pipctl/internal/pip"
)

const shellTimeout = 3000

// Shell announces sessions as desktop notifications. The start bubble is
// replaced by the close announcement and withdrawn when the user restores
// the full UI, since they are looking at the player again.
type Shell struct {
	notifier Notifier
	shown    uint32
}

// NewShell wraps a notifier.
func NewShell(n Notifier) *Shell {
	return &Shell{notifier: n}
}

// OnPipEvent implements pip.Shell.
func (s *Shell) OnPipEvent(n pip.Notification) error {
	switch n.Event {
	case pip.RequestedStart:
		return s.show(Notification{
			Title:   "Picture-in-picture",
			Body:    fmt.Sprintf("Player %d moved to the floating window", n.PlayerID),
			Urgency: UrgencyLow,
		})
	case pip.AlreadyExited:
		return s.show(Notification{
			Title:   "Picture-in-picture closed",
			Body:    stoppedAt(n),
			Urgency: UrgencyNormal,
		})
	case pip.UiRestoreRequested:
		return s.withdraw()
	case pip.AlreadyEntered, pip.ControlUpdateRequested:
	}
	return nil
}

func (s *Shell) show(notif Notification) error {
	notif.ReplacesID = s.shown
	notif.Timeout = shellTimeout
	notif.Category = CategorySession
	notif.Transient = notif.Urgency == UrgencyLow
	id, err := s.notifier.Notify(notif)
	if err != nil {
		return fmt.Errorf("desktop notification: %w", err)
	}
	s.shown = id
	return nil
}

func (s *Shell) withdraw() error {
	id := s.shown
	if id == 0 {
		return nil
	}
	s.shown = 0
	if err := s.notifier.Close(id); err != nil {
		return fmt.Errorf("withdraw notification: %w", err)
	}
	return nil
}

func stoppedAt(n pip.Notification) string {
	if n.PlayTime == nil {
		return ""
	}
	d := time.Duration(float64(*n.PlayTime) * float64(time.Second)).Truncate(time.Second)
	return fmt.Sprintf("Player %d at %s", n.PlayerID, d)
}
