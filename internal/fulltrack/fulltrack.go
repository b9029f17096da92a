// Package fulltrack drives the unbounded player bar: the whole audio file,
// with play/pause, a progress fill, elapsed and total time, and scrubbing.
package fulltrack

import (
	"time"

	"github.com/llehouerou/clipnotes/internal/binding"
	"github.com/llehouerou/clipnotes/internal/player"
	"github.com/llehouerou/clipnotes/internal/timefmt"
)

// Sinks are the display elements of the full-track bar. Any may be nil.
type Sinks struct {
	Icon     binding.Icon
	Progress binding.Progress
	Elapsed  binding.Text
	Duration binding.Text
}

// Snapshot is the state of the full-track cursor at one instant.
type Snapshot struct {
	State    player.State
	Position time.Duration
	Duration time.Duration
}

// Adapter binds one surface to the full-track display.
type Adapter struct {
	surface player.Interface
	sinks   Sinks
}

// New returns an adapter over surface. The surface is expected to be
// loaded with the shared audio by the caller.
func New(surface player.Interface, sinks Sinks) *Adapter {
	return &Adapter{surface: surface, sinks: sinks}
}

// Toggle plays when paused and pauses when playing. The icon follows on the
// resulting StateChange, not here.
func (a *Adapter) Toggle() error {
	return a.surface.Toggle()
}

// HandleEvent updates the display from one surface notification.
func (a *Adapter) HandleEvent(e player.Event) {
	switch e := e.(type) {
	case player.StateChange:
		binding.SetPlaying(a.sinks.Icon, e.Current == player.Playing)
	case player.DurationChange:
		if e.Duration > 0 {
			binding.SetText(a.sinks.Duration, timefmt.Duration(e.Duration))
		}
		a.showPosition()
	case player.PositionChange:
		a.showPosition()
	}
}

// showPosition reads the live cursor; a queued event may already be stale.
// Nothing is shown until the duration is known.
func (a *Adapter) showPosition() {
	d := a.surface.Duration()
	if d <= 0 {
		return
	}
	pos := a.surface.Position()
	binding.SetPercent(a.sinks.Progress, float64(pos)/float64(d)*100)
	binding.SetText(a.sinks.Elapsed, timefmt.Duration(pos))
}

// Scrub seeks to the point x cells into a progress track width cells wide.
func (a *Adapter) Scrub(x, width int) {
	d := a.surface.Duration()
	if width <= 0 || d <= 0 {
		return
	}
	x = max(0, min(x, width))
	a.surface.SeekTo(time.Duration(float64(d) * float64(x) / float64(width)))
}

// Seek moves the cursor by delta.
func (a *Adapter) Seek(delta time.Duration) {
	if a.surface.State() == player.Stopped {
		return
	}
	a.surface.Seek(delta)
}

// Snapshot reports the cursor state.
func (a *Adapter) Snapshot() Snapshot {
	return Snapshot{
		State:    a.surface.State(),
		Position: a.surface.Position(),
		Duration: a.surface.Duration(),
	}
}

// TrackInfo returns the metadata of the bound audio.
func (a *Adapter) TrackInfo() *player.TrackInfo {
	return a.surface.TrackInfo()
}
