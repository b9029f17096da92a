// Package mpris exposes the full-track player to the desktop over MPRIS.
//
// Properties are read straight from the playback surface. Control calls
// arrive on D-Bus goroutines and are turned into Commands that the UI loop
// applies, so only the UI loop ever drives the full-track player.
package mpris

import "time"

// Kind identifies a control request.
type Kind int

const (
	Play Kind = iota
	Pause
	PlayPause
	Stop
	Seek        // relative, Offset
	SetPosition // absolute, Offset
)

func (k Kind) String() string {
	switch k {
	case Play:
		return "Play"
	case Pause:
		return "Pause"
	case PlayPause:
		return "PlayPause"
	case Stop:
		return "Stop"
	case Seek:
		return "Seek"
	case SetPosition:
		return "SetPosition"
	}
	return "Unknown"
}

// Command is a control request received from the desktop.
type Command struct {
	Kind   Kind
	Offset time.Duration
}

// Target is what a Command drives.
type Target interface {
	Play() error
	Pause()
	Toggle() error
	SeekTo(time.Duration)
	Seek(time.Duration)
}

// Apply runs c against t.
func Apply(c Command, t Target) error {
	switch c.Kind {
	case Play:
		return t.Play()
	case Pause:
		t.Pause()
	case PlayPause:
		return t.Toggle()
	case Stop:
		t.Pause()
		t.SeekTo(0)
	case Seek:
		t.Seek(c.Offset)
	case SetPosition:
		t.SeekTo(c.Offset)
	}
	return nil
}
