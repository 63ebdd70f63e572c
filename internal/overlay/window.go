// Package overlay is the platform side of a picture-in-picture session: it
// presents the floating controls, turns control taps into player events and
// confirms lifecycle changes back to the coordinator.
package overlay

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/llehouerou/pipctl/internal/eventbus"
	"github.com/llehouerou/pipctl/internal/pip"
)

// Presenter shows the floating window controls somewhere.
type Presenter interface {
	Present(params pip.Params) error
	Dismiss()
}

// Scheduler runs fn later on the UI goroutine. Lifecycle confirmations go
// through it so they arrive as independent events, never inside the call
// that caused them.
type Scheduler func(fn func())

// Window is the floating window of the active session. Work it scheduled for
// a session is dropped once the window is started again.
type Window struct {
	bus        pip.Bus
	later      Scheduler
	presenters []Presenter

	active     bool
	cfg        *pip.Configuration
	params     pip.Params
	subscribed bool
	gen        uint64
}

// New creates a closed window.
func New(bus pip.Bus, later Scheduler, presenters ...Presenter) *Window {
	return &Window{bus: bus, later: later, presenters: presenters}
}

// StartPip implements pip.SessionStarter.
func (w *Window) StartPip(activity pip.Activity, cfg *pip.Configuration, params pip.Params, _ pip.PlayerHandle) pip.Result {
	if activity == nil || activity.Destroyed() {
		return pip.ActivityDestroyed
	}
	if w.active {
		w.dismiss()
	}

	if err := w.present(params); err != nil {
		log.Error().Err(err).Msg("overlay: present failed")
		w.dismiss()
		return pip.FeatureNotSupported
	}

	w.gen++
	w.active = true
	w.cfg = cfg
	w.params = params
	w.subscribe()

	w.post(pip.LifecycleEvent{Tag: pip.AlreadyEntered})
	return pip.NoError
}

// Active reports whether the window is shown.
func (w *Window) Active() bool { return w.active }

// Params returns the action set currently presented.
func (w *Window) Params() pip.Params { return w.params }

// Tap triggers the control op as if the user pressed it. It reports whether
// the control is shown.
func (w *Window) Tap(op pip.Opcode) bool {
	if !w.active {
		return false
	}
	a, ok := w.params.Action(op)
	if !ok {
		return false
	}
	a.Trigger()
	return true
}

// Restore closes the window because the user went back to the full UI.
func (w *Window) Restore() { w.finish(pip.UiRestoreRequested) }

// Close closes the window without restoring the full UI.
func (w *Window) Close() { w.finish(pip.AlreadyExited) }

// OnEvent implements eventbus.Subscriber.
func (w *Window) OnEvent(topic eventbus.Topic, data any) {
	if !w.active {
		return
	}
	switch topic {
	case pip.TopicExit:
		// There is a single process-wide session, any target closes it.
		w.Close()
	case pip.TopicUpdate:
		req, ok := data.(pip.UpdateRequest)
		if !ok {
			return
		}
		w.update(req)
	case pip.TopicControl:
		ev, ok := data.(pip.ControlEvent)
		if !ok {
			return
		}
		w.bus.Post(pip.TopicPlayerEvent, pip.PlayerEvent{
			PlayerID: ev.PlayerID,
			EventID:  int(ev.Op),
		})
	}
}

func (w *Window) update(req pip.UpdateRequest) {
	if err := w.present(req.Params); err != nil {
		log.Error().Err(err).Msg("overlay: refresh failed")
		return
	}
	w.params = req.Params
	if req.Config != nil {
		w.cfg = req.Config
	}
	w.post(pip.LifecycleEvent{Tag: pip.ControlUpdateRequested, Config: w.cfg})
}

func (w *Window) finish(tag pip.LifecycleTag) {
	if !w.active {
		return
	}
	ev := pip.LifecycleEvent{
		Tag: tag,
		Result: &pip.PipResult{
			PlayerID: w.cfg.PlayerID(),
			PlayTime: w.cfg.PlayTime(),
			Playing:  w.cfg.Playing(),
		},
	}
	w.post(ev)
	w.dismiss()
}

// post confirms ev later, stamped with the current session. The confirmation
// is dropped if the window is started again before it runs.
func (w *Window) post(ev pip.LifecycleEvent) {
	ev.Session = w.params.Session
	gen := w.gen
	w.later(func() {
		if w.gen != gen {
			log.Debug().Stringer("event", ev.Tag).Msg("overlay: confirmation of a replaced session dropped")
			return
		}
		if ev.Tag == pip.AlreadyEntered && !w.active {
			return
		}
		w.bus.Post(pip.TopicLifecycle, ev)
	})
}

func (w *Window) present(params pip.Params) error {
	var errs []error
	for _, p := range w.presenters {
		if err := p.Present(params); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (w *Window) dismiss() {
	for _, p := range w.presenters {
		p.Dismiss()
	}
	w.active = false
	w.cfg = nil
	w.params = pip.Params{}
	w.unsubscribe()
}

func (w *Window) subscribe() {
	if w.subscribed {
		return
	}
	for _, t := range []eventbus.Topic{pip.TopicExit, pip.TopicUpdate, pip.TopicControl} {
		w.bus.Register(t, w)
	}
	w.subscribed = true
}

func (w *Window) unsubscribe() {
	if !w.subscribed {
		return
	}
	for _, t := range []eventbus.Topic{pip.TopicExit, pip.TopicUpdate, pip.TopicControl} {
		if err := w.bus.Unregister(t, w); err != nil {
			log.Error().Err(err).Str("topic", string(t)).Msg("overlay: unregister")
		}
	}
	w.subscribed = false
}
