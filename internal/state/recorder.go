package state

import (
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/pipctl/internal/pip"
)

// Store is the session persistence used by Recorder.
type Store interface {
	SaveActive(cfg *pip.Configuration) error
	FinishActive(playTime float32) error
}

// Recorder mirrors lifecycle notifications into a Store. active returns the
// configuration of the running session.
type Recorder struct {
	store  Store
	active func() *pip.Configuration
}

func NewRecorder(store Store, active func() *pip.Configuration) *Recorder {
	return &Recorder{store: store, active: active}
}

// OnPipEvent implements pip.Shell.
func (r *Recorder) OnPipEvent(n pip.Notification) error {
	switch n.Event {
	case pip.RequestedStart, pip.ControlUpdateRequested:
		cfg := r.active()
		if cfg == nil {
			return nil
		}
		return r.store.SaveActive(cfg)
	case pip.AlreadyExited, pip.UiRestoreRequested:
		var playTime float32
		if n.PlayTime != nil {
			playTime = *n.PlayTime
		}
		return r.store.FinishActive(playTime)
	case pip.AlreadyEntered:
	default:
		log.Debug().Stringer("event", n.Event).Msg("state: ignored notification")
	}
	return nil
}

var _ pip.Shell = (*Recorder)(nil)
