package player

// State is the play state of one surface.
//
//	┌──────────┐      load       ┌──────────┐
//	│  Stopped │ ───────────────▶│  Paused  │◀──┐
//	└──────────┘                 └──────────┘   │
//	     ▲                          │    ▲      │ pause
//	     │ close               play │    │      │ end of stream
//	     │                          ▼    │      │
//	     │                       ┌──────────┐   │
//	     └───────────────────────│  Playing │───┘
//	                             └──────────┘
//
// Stopped means no audio is bound. A loaded surface is always Playing or
// Paused; reaching the end of the stream pauses at the last position.
//
// Toggle cycles Playing ↔ Paused and fails while Stopped.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

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

// IsActive reports whether audio is bound.
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// CanPause reports whether Pause changes anything.
func (s State) CanPause() bool {
	return s == Playing
}
