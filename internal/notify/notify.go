// Package notify announces picture-in-picture sessions as freedesktop
// desktop notifications.
package notify

// Urgency is the freedesktop notification priority level.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// CategorySession tags every session notification so notification daemons
// can group or filter them.
const CategorySession = "x-pipctl.session"

// Notification is one desktop notification bubble.
type Notification struct {
	Title      string
	Body       string
	Icon       string // icon name or image path
	Timeout    int32  // ms, -1 = server default, 0 = never expire
	ReplacesID uint32 // 0 = new bubble
	Urgency    Urgency
	Category   string
	Transient  bool // skip the daemon's history
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify shows n and returns its id, 0 when notifications are unavailable.
	Notify(n Notification) (uint32, error)
	// Close removes a shown notification.
	Close(id uint32) error
}

// stubNotifier is used when no notification daemon is reachable.
type stubNotifier struct{}

func (stubNotifier) Notify(Notification) (uint32, error) { return 0, nil }

func (stubNotifier) Close(uint32) error { return nil }
