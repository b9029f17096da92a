package player

import "time"

const (
	eventBufferSize = 64
	// positionHeadroom slots are reserved for events other than
	// PositionChange.
	positionHeadroom = 16
)

// Event is a notification from a surface. It is one of StateChange,
// PositionChange, DurationChange or ErrorEvent.
type Event interface {
	event()
}

// StateChange is emitted when the play state changes.
type StateChange struct {
	Previous State
	Current  State
}

// PositionChange is emitted periodically while playing, after every seek,
// and once more when the stream ends.
type PositionChange struct {
	Position time.Duration
}

// DurationChange is emitted once the duration of newly loaded audio is known.
// A zero Duration means the decoder could not tell.
type DurationChange struct {
	Duration time.Duration
}

// ErrorEvent is emitted when an operation fails asynchronously.
type ErrorEvent struct {
	Op   string // e.g. "load", "seek", "decode"
	Path string
	Err  error
}

func (StateChange) event()    {}
func (PositionChange) event() {}
func (DurationChange) event() {}
func (ErrorEvent) event()     {}

// Subscription delivers the events of one surface in emission order.
type Subscription struct {
	Events <-chan Event
	Done   <-chan struct{}

	eventCh chan Event
	doneCh  chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		eventCh: make(chan Event, eventBufferSize),
		doneCh:  make(chan struct{}),
	}
	s.Events = s.eventCh
	s.Done = s.doneCh
	return s
}

// send delivers e without blocking. Position updates are dropped once the
// buffer is within positionHeadroom of full, anything else only when it is
// full.
func (s *Subscription) send(e Event) {
	if _, ok := e.(PositionChange); ok && len(s.eventCh) >= eventBufferSize-positionHeadroom {
		return
	}
	select {
	case s.eventCh <- e:
	default:
	}
}

func (s *Subscription) close() {
	close(s.doneCh)
}
