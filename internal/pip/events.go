package pip

import "github.com/llehouerou/pipctl/internal/eventbus"

// Bus topics used between the coordinator and the platform session.
const (
	// TopicLifecycle carries LifecycleEvent from the platform to the core.
	TopicLifecycle eventbus.Topic = "pip.lifecycle"
	// TopicPlayerEvent carries PlayerEvent from the platform to the core.
	TopicPlayerEvent eventbus.Topic = "pip.player_event"
	// TopicControl carries ControlEvent from action triggers and play state
	// changes to the platform session.
	TopicControl eventbus.Topic = "pip.control"
	// TopicExit carries ExitRequest from the core to the platform session.
	TopicExit eventbus.Topic = "pip.exit"
	// TopicUpdate carries UpdateRequest from the core to the platform session.
	TopicUpdate eventbus.Topic = "pip.update"
)

// LifecycleTag identifies a lifecycle event. Values are part of the host
// contract.
type LifecycleTag int

const (
	AlreadyEntered         LifecycleTag = 1
	AlreadyExited          LifecycleTag = 2
	RequestedStart         LifecycleTag = 3
	UiRestoreRequested     LifecycleTag = 5
	ControlUpdateRequested LifecycleTag = 6
)

func (t LifecycleTag) String() string {
	switch t {
	case AlreadyEntered:
		return "AlreadyEntered"
	case AlreadyExited:
		return "AlreadyExited"
	case RequestedStart:
		return "RequestedStart"
	case UiRestoreRequested:
		return "UiRestoreRequested"
	case ControlUpdateRequested:
		return "ControlUpdateRequested"
	default:
		return "Unknown"
	}
}

// ends reports whether the tag closes the session.
func (t LifecycleTag) ends() bool {
	return t == AlreadyExited || t == UiRestoreRequested
}

// Opcode identifies a floating window control. The values double as player
// event ids.
type Opcode int

const (
	OpBack          Opcode = 101
	OpResumeOrPause Opcode = 102
	OpForward       Opcode = 103
)

func (o Opcode) String() string {
	switch o {
	case OpBack:
		return "Back"
	case OpResumeOrPause:
		return "ResumeOrPause"
	case OpForward:
		return "Forward"
	default:
		return "Unknown"
	}
}

// PipResult is reported when a session ends.
type PipResult struct {
	PlayerID int
	PlayTime float32
	Playing  bool
}

// LifecycleEvent is raised by the platform session.
// Session is the number of the session it belongs to, taken from
// Params.Session; 0 means the running session.
type LifecycleEvent struct {
	Tag     LifecycleTag
	Session uint64
	Result  *PipResult     // AlreadyExited, UiRestoreRequested
	Config  *Configuration // ControlUpdateRequested
}

// ControlEvent is posted when a floating window control is tapped.
type ControlEvent struct {
	Op       Opcode
	PlayerID int
}

// PlayerEvent is a player-targeted event raised from inside the session.
// Payload is passed to the observer untouched.
type PlayerEvent struct {
	PlayerID int
	EventID  int
	Payload  any
}

// ExitRequest asks the platform to close the session. PlayerID -1 closes
// whatever session is active.
type ExitRequest struct {
	PlayerID int
}

// UpdateRequest asks the platform to re-present a freshly built action set.
type UpdateRequest struct {
	Config *Configuration
	Params Params
}

// Notification is the normalized lifecycle record sent to the host shell.
type Notification struct {
	Event    LifecycleTag
	PlayerID int
	PlayTime *float32
}

// Observer receives the results and events of one player. Use a comparable
// type (usually a pointer) so re-registration is recognised.
type Observer interface {
	OnPipResult(result PipResult)
	OnPipPlayerEvent(eventID int, payload any)
}

// Shell is the one-way channel to the host UI. Errors are logged by the
// caller and never retried.
type Shell interface {
	OnPipEvent(n Notification) error
}
