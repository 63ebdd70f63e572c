package player

// State represents the playback state machine.
//
//	Stopped ──play──▶ Playing ◀──resume── Paused
//	   ▲                 │ pause             ▲
//	   │                 └───────────────────┘
//	   └──────────── stop (from any) ────────
//
// Toggle cycles Playing ↔ Paused and is a no-op when Stopped.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}
