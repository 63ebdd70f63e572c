package pip

import "github.com/rs/zerolog/log"

// PlayerHandle is the player instance a session plays from. The core does
// not inspect it.
type PlayerHandle any

// SessionStarter is the platform layer that opens the floating window.
type SessionStarter interface {
	StartPip(activity Activity, cfg *Configuration, params Params, player PlayerHandle) Result
}

// Driver moves the session between Idle, InPip and ExitRequested.
type Driver struct {
	rt      *Runtime
	host    Host
	gate    *Gate
	builder *Builder
	starter SessionStarter
	shell   Shell
}

// NewDriver creates a session driver.
func NewDriver(rt *Runtime, host Host, gate *Gate, builder *Builder, starter SessionStarter, shell Shell) *Driver {
	return &Driver{
		rt:      rt,
		host:    host,
		gate:    gate,
		builder: builder,
		starter: starter,
		shell:   shell,
	}
}

// Enter starts a session for cfg. Any failure leaves the state untouched.
func (d *Driver) Enter(cfg *Configuration, player PlayerHandle) Result {
	if res := d.gate.Check(); !res.OK() {
		return res
	}

	params := d.builder.Build(cfg)
	params.Session = d.rt.session + 1
	res := d.starter.StartPip(d.host.CurrentActivity(), cfg, params, player)
	if !res.OK() {
		log.Error().Stringer("result", res).Int("player", cfg.PlayerID()).Msg("pip: platform refused session")
		return res
	}

	if d.rt.InPip() {
		log.Debug().Int("player", cfg.PlayerID()).Msg("pip: replacing running session")
	}
	d.rt.enter(cfg)
	notifyShell(d.shell, Notification{Event: RequestedStart, PlayerID: cfg.PlayerID()})
	return NoError
}

// Exit asks the platform to close the session. The state returns to Idle
// only when the platform confirms with a lifecycle exit event; calling Exit
// again before that re-sends the request.
func (d *Driver) Exit(playerID int) {
	if !d.rt.InPip() {
		return
	}
	d.rt.requestExit()
	d.rt.bus.Post(TopicExit, ExitRequest{PlayerID: playerID})
}

// UpdateActions rebuilds the action set from cfg and hands it to the
// platform. No-op outside PIP.
func (d *Driver) UpdateActions(cfg *Configuration) {
	if !d.rt.InPip() {
		return
	}
	params := d.builder.Build(cfg)
	params.Session = d.rt.session
	d.rt.bus.Post(TopicUpdate, UpdateRequest{Config: cfg, Params: params})
}

// NotifyPlayState records a play state change of playerID and refreshes the
// controls when that player owns the session.
func (d *Driver) NotifyPlayState(playerID int, playing bool) {
	cfg := d.rt.Active()
	if cfg == nil || cfg.PlayerID() != playerID || !d.rt.InPip() {
		return
	}
	if cfg.Playing() == playing {
		return
	}
	cfg.SetPlaying(playing)
	d.UpdateActions(cfg)
}

// UpdatePlayTime records the position of playerID for the exit result.
func (d *Driver) UpdatePlayTime(playerID int, seconds float32) {
	if cfg := d.rt.Active(); cfg != nil && cfg.PlayerID() == playerID {
		cfg.SetPlayTime(seconds)
	}
}

// IsInPip reports whether a session is active.
func (d *Driver) IsInPip() bool { return d.rt.InPip() }

func notifyShell(shell Shell, n Notification) {
	if shell == nil {
		return
	}
	if err := shell.OnPipEvent(n); err != nil {
		log.Error().Err(err).Stringer("event", n.Event).Msg("pip: host notification failed")
	}
}
