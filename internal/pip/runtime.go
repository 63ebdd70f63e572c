package pip

import "github.com/llehouerou/pipctl/internal/eventbus"

// SessionState is the session driver state.
type SessionState int

const (
	Idle SessionState = iota
	InPip
	ExitRequested
)

func (s SessionState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case InPip:
		return "InPip"
	case ExitRequested:
		return "ExitRequested"
	default:
		return "Unknown"
	}
}

// Bus is the event hub the core subscribes to and posts on.
type Bus interface {
	eventbus.Poster
	Register(topic eventbus.Topic, sub eventbus.Subscriber)
	Unregister(topic eventbus.Topic, sub eventbus.Subscriber) error
}

// Runtime is the state shared by the driver and the router: the bus and the
// session state. It is not safe for concurrent use; all callers run on the
// UI goroutine.
type Runtime struct {
	bus     Bus
	state   SessionState
	active  *Configuration
	session uint64
}

// NewRuntime creates an idle runtime on bus.
func NewRuntime(bus Bus) *Runtime {
	return &Runtime{bus: bus}
}

// InPip reports whether a session is active or awaiting exit confirmation.
func (rt *Runtime) InPip() bool { return rt.state != Idle }

// State returns the session state.
func (rt *Runtime) State() SessionState { return rt.state }

// Active returns the configuration of the running session, or nil.
func (rt *Runtime) Active() *Configuration { return rt.active }

// Session returns the number of the latest session, 0 before the first one.
func (rt *Runtime) Session() uint64 { return rt.session }

// current reports whether an event stamped with session belongs to the
// latest session. Unstamped events (0) always do.
func (rt *Runtime) current(session uint64) bool {
	return session == 0 || session == rt.session
}

func (rt *Runtime) enter(cfg *Configuration) {
	rt.session++
	rt.state = InPip
	rt.active = cfg
}

func (rt *Runtime) requestExit() {
	rt.state = ExitRequested
}

func (rt *Runtime) reset() {
	rt.state = Idle
	rt.active = nil
}
