package pip

import "github.com/rs/zerolog/log"

// Activity is the foreground host window a session attaches to.
type Activity interface {
	Destroyed() bool
}

// Host reports the platform facts that decide whether PIP may start.
type Host interface {
	// CurrentActivity returns the foreground window, or nil.
	CurrentActivity() Activity
	PlatformLevel() int
	HasPipFeature() bool
	PipPermitted(a Activity) bool
}

// Platform levels used by the gate.
const (
	DefaultMinPlatformLevel        = 24
	DefaultPermissionPlatformLevel = 26
)

// Gate decides whether entering PIP is currently legal. It holds no state
// and re-evaluates the host on every call.
type Gate struct {
	host            Host
	minLevel        int
	permissionLevel int
}

// NewGate creates a gate. minLevel is the lowest platform level that
// supports PIP; permissionLevel is the first level with a runtime
// permission, below it the permission check always passes.
func NewGate(host Host, minLevel, permissionLevel int) *Gate {
	return &Gate{host: host, minLevel: minLevel, permissionLevel: permissionLevel}
}

// Check evaluates, in order: foreground window, platform level, feature
// flag, permission.
func (g *Gate) Check() Result {
	activity := g.host.CurrentActivity()
	if activity == nil {
		log.Error().Msg("pip: no current window")
		return NoActiveActivity
	}
	if activity.Destroyed() {
		log.Error().Msg("pip: current window is destroyed")
		return ActivityDestroyed
	}

	level := g.host.PlatformLevel()
	if level < g.minLevel {
		log.Error().
			Int("level", level).
			Int("min_level", g.minLevel).
			Msg("pip: platform level too low")
		return OsVersionTooLow
	}

	if !g.host.HasPipFeature() {
		log.Error().Msg("pip: feature disabled")
		return FeatureNotSupported
	}

	if level >= g.permissionLevel && !g.host.PipPermitted(activity) {
		log.Error().Msg("pip: permission denied")
		return PermissionDenied
	}

	return NoError
}
