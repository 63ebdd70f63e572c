package shell

import (
	"errors"
	"fmt"
	"time"

	"github.com/llehouerou/pipctl/internal/pip"
)

// Status keeps the last lifecycle notification for display. It implements
// pip.Shell and is called on the update loop.
type Status struct {
	Last      pip.LifecycleTag
	EnteredAt time.Time
	Message   string

	now func() time.Time
}

// NewStatus creates an empty status.
func NewStatus() *Status {
	return &Status{now: time.Now}
}

// OnPipEvent implements pip.Shell.
func (s *Status) OnPipEvent(n pip.Notification) error {
	s.Last = n.Event
	switch n.Event {
	case pip.RequestedStart:
		s.EnteredAt = s.now()
		s.Message = fmt.Sprintf("Player %d moved to the floating window", n.PlayerID)
	case pip.AlreadyEntered:
		s.Message = "Floating window shown"
	case pip.AlreadyExited:
		s.Message = "Floating window closed" + at(n.PlayTime)
	case pip.UiRestoreRequested:
		s.Message = "Back from the floating window" + at(n.PlayTime)
	case pip.ControlUpdateRequested:
		s.Message = "Floating window controls updated"
	default:
		s.Message = n.Event.String()
	}
	return nil
}

func at(playTime *float32) string {
	if playTime == nil {
		return ""
	}
	return " at " + formatDuration(time.Duration(float64(*playTime)*float64(time.Second)))
}

// Fanout forwards notifications to several shells.
type Fanout []pip.Shell

// OnPipEvent implements pip.Shell. Every shell is called even when an
// earlier one fails.
func (f Fanout) OnPipEvent(n pip.Notification) error {
	var errs []error
	for _, s := range f {
		if s == nil {
			continue
		}
		if err := s.OnPipEvent(n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
