package pip

import (
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/pipctl/internal/eventbus"
)

// OnEvent implements eventbus.Subscriber.
func (m *Manager) OnEvent(topic eventbus.Topic, data any) {
	switch topic {
	case TopicLifecycle:
		ev, ok := data.(LifecycleEvent)
		if !ok {
			log.Warn().Type("data", data).Msg("pip: unexpected lifecycle payload")
			return
		}
		m.handleLifecycle(ev)
	case TopicPlayerEvent:
		ev, ok := data.(PlayerEvent)
		if !ok {
			log.Warn().Type("data", data).Msg("pip: unexpected player event payload")
			return
		}
		m.handlePlayerEvent(ev)
	}
}

func (m *Manager) handleLifecycle(ev LifecycleEvent) {
	if m.stale(ev) {
		log.Debug().Stringer("event", ev.Tag).Uint64("session", ev.Session).
			Uint64("current", m.rt.Session()).Msg("pip: stale lifecycle event dropped")
		return
	}

	n := Notification{Event: ev.Tag, PlayerID: -1}
	if cfg := m.rt.Active(); cfg != nil {
		n.PlayerID = cfg.PlayerID()
	}

	switch {
	case ev.Tag.ends():
		if ev.Result != nil {
			playTime := ev.Result.PlayTime
			n.PlayTime = &playTime
			n.PlayerID = ev.Result.PlayerID
			if obs, ok := m.registry.Get(ev.Result.PlayerID); ok {
				obs.OnPipResult(*ev.Result)
			}
		}
		m.rt.reset()
	case ev.Tag == ControlUpdateRequested && ev.Config != nil && m.rt.InPip():
		m.rt.active = ev.Config
	}

	notifyShell(m.shell, n)
}

// stale reports whether ev was raised by a session that has since been
// replaced. Such events must not end or rewrite the running one.
func (m *Manager) stale(ev LifecycleEvent) bool {
	if !m.rt.current(ev.Session) {
		return true
	}
	cfg := m.rt.Active()
	if cfg == nil {
		return false
	}
	switch {
	case ev.Tag.ends() && ev.Result != nil:
		return ev.Result.PlayerID != cfg.PlayerID()
	case ev.Tag == ControlUpdateRequested && ev.Config != nil:
		return ev.Config.PlayerID() != cfg.PlayerID()
	}
	return false
}

func (m *Manager) handlePlayerEvent(ev PlayerEvent) {
	obs, ok := m.registry.Get(ev.PlayerID)
	if !ok {
		log.Debug().Int("player", ev.PlayerID).Int("event", ev.EventID).Msg("pip: no observer, event dropped")
		return
	}
	obs.OnPipPlayerEvent(ev.EventID, ev.Payload)
}
