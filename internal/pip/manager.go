package pip

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Options configures a Manager.
type Options struct {
	Bus     Bus
	Host    Host
	Starter SessionStarter
	Shell   Shell
	Icons   IconResolver

	// MinPlatformLevel defaults to DefaultMinPlatformLevel.
	MinPlatformLevel int
	// PermissionPlatformLevel defaults to DefaultPermissionPlatformLevel.
	PermissionPlatformLevel int
}

// Manager coordinates picture-in-picture for all players of the process:
// it owns the session driver and the observer registry and routes the
// platform's events to them.
type Manager struct {
	rt       *Runtime
	gate     *Gate
	driver   *Driver
	registry *Registry
	shell    Shell

	registered bool
}

// NewManager creates a manager and subscribes it to the bus.
func NewManager(opts Options) *Manager {
	if opts.MinPlatformLevel == 0 {
		opts.MinPlatformLevel = DefaultMinPlatformLevel
	}
	if opts.PermissionPlatformLevel == 0 {
		opts.PermissionPlatformLevel = DefaultPermissionPlatformLevel
	}

	rt := NewRuntime(opts.Bus)
	gate := NewGate(opts.Host, opts.MinPlatformLevel, opts.PermissionPlatformLevel)
	builder := NewBuilder(opts.Icons, opts.Bus)

	m := &Manager{
		rt:       rt,
		gate:     gate,
		driver:   NewDriver(rt, opts.Host, gate, builder, opts.Starter, opts.Shell),
		registry: NewRegistry(),
		shell:    opts.Shell,
	}
	m.Register()
	return m
}

// Register subscribes to the lifecycle and player-event topics. Calling it
// again is a no-op.
func (m *Manager) Register() {
	if m.registered {
		return
	}
	m.rt.bus.Register(TopicLifecycle, m)
	m.rt.bus.Register(TopicPlayerEvent, m)
	m.registered = true
}

// Release unsubscribes from the bus. It never fails: errors and panics from
// the bus are logged so the host can finish its own teardown.
func (m *Manager) Release() {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("panic", fmt.Sprint(r)).Msg("pip: release failed")
		}
	}()
	if !m.registered {
		return
	}
	m.registered = false
	if err := m.rt.bus.Unregister(TopicLifecycle, m); err != nil {
		log.Error().Err(err).Msg("pip: unregister lifecycle")
	}
	if err := m.rt.bus.Unregister(TopicPlayerEvent, m); err != nil {
		log.Error().Err(err).Msg("pip: unregister player events")
	}
}

// CheckSupport reports whether PIP could be entered right now.
func (m *Manager) CheckSupport() Result { return m.gate.Check() }

// Enter starts a session for cfg.
func (m *Manager) Enter(cfg *Configuration, player PlayerHandle) Result {
	return m.driver.Enter(cfg, player)
}

// ExitCurrent asks the platform to close whatever session is active.
func (m *Manager) ExitCurrent() { m.driver.Exit(-1) }

// Exit asks the platform to close the session; -1 closes any session.
func (m *Manager) Exit(playerID int) { m.driver.Exit(playerID) }

// UpdateActions refreshes the floating window controls from cfg.
func (m *Manager) UpdateActions(cfg *Configuration) { m.driver.UpdateActions(cfg) }

// NotifyPlayState reports a play state change of playerID.
func (m *Manager) NotifyPlayState(playerID int, playing bool) {
	m.driver.NotifyPlayState(playerID, playing)
}

// UpdatePlayTime reports the current position of playerID in seconds.
func (m *Manager) UpdatePlayTime(playerID int, seconds float32) {
	m.driver.UpdatePlayTime(playerID, seconds)
}

// IsInPip reports whether a session is active.
func (m *Manager) IsInPip() bool { return m.rt.InPip() }

// State returns the session state.
func (m *Manager) State() SessionState { return m.rt.State() }

// Active returns the configuration of the running session, or nil.
func (m *Manager) Active() *Configuration { return m.rt.Active() }

// Session returns the number of the latest session.
func (m *Manager) Session() uint64 { return m.rt.Session() }

// AddObserver sets the observer of playerID. Setting it again for the same
// player replaces the previous one.
func (m *Manager) AddObserver(playerID int, obs Observer) { m.registry.Add(playerID, obs) }

// RemoveObserver drops the observer of playerID.
func (m *Manager) RemoveObserver(playerID int) { m.registry.Remove(playerID) }
