// Package snippet drives the clip-scoped player bar. It plays the same audio
// as the full track on its own surface, restricted to the clip of the
// focused section.
package snippet

import (
	"errors"

	"github.com/llehouerou/clipnotes/internal/binding"
	"github.com/llehouerou/clipnotes/internal/clip"
	"github.com/llehouerou/clipnotes/internal/player"
	"github.com/llehouerou/clipnotes/internal/timefmt"
)

// ErrNoSource is returned when there is no shared audio to bind to.
var ErrNoSource = errors.New("no audio source")

// Sinks are the display elements of the snippet bar. Any may be nil.
type Sinks struct {
	Icon     binding.Icon
	Progress binding.Progress
	Time     binding.Text
	Active   binding.Flag
}

// Adapter binds one surface to the snippet display and keeps playback
// inside the active clip.
type Adapter struct {
	surface player.Interface
	source  string
	sinks   Sinks

	clip   clip.Clip
	active bool
	// finished holds the 100% fill after a clip ran out, until the next
	// play or reassignment.
	finished bool
}

// New returns an adapter that lazily binds surface to the audio at source.
func New(surface player.Interface, source string, sinks Sinks) *Adapter {
	return &Adapter{surface: surface, source: source, sinks: sinks}
}

// IsPlaying reports whether the snippet cursor is playing.
func (a *Adapter) IsPlaying() bool {
	return a.surface.State() == player.Playing
}

// TogglePlay pauses when playing. Otherwise it binds the audio if needed,
// rewinds to the clip start when a clip is active, and plays. Without an
// active clip it resumes at the current position.
func (a *Adapter) TogglePlay() error {
	if a.IsPlaying() {
		a.surface.Pause()
		return nil
	}
	if err := a.bind(); err != nil {
		return err
	}
	if a.active {
		a.surface.SeekTo(a.clip.Start)
	}
	a.finished = false
	return a.surface.Play()
}

// SetActiveClip re-points the snippet at c. The cursor moves to the clip
// start and the display resets to 0%. With resume set playback continues
// from there, otherwise the cursor stays paused.
func (a *Adapter) SetActiveClip(c clip.Clip, resume bool) error {
	a.clip = c
	a.active = true
	a.finished = false

	err := a.bind()
	if err == nil {
		a.surface.SeekTo(c.Start)
	}

	binding.SetPercent(a.sinks.Progress, 0)
	binding.SetText(a.sinks.Time, timefmt.Pair(0, c.Len()))
	binding.SetActive(a.sinks.Active, true)

	if err != nil {
		return err
	}
	if resume {
		return a.surface.Play()
	}
	return nil
}

// HandleEvent updates the display from one surface notification and
// enforces the clip end on every position update.
func (a *Adapter) HandleEvent(e player.Event) {
	switch e := e.(type) {
	case player.StateChange:
		binding.SetPlaying(a.sinks.Icon, e.Current == player.Playing)
	case player.PositionChange:
		a.enforce()
	}
}

// enforce reads the live cursor rather than the event payload: after a
// reassignment, queued positions belong to the previous clip.
func (a *Adapter) enforce() {
	if !a.active || !a.clip.Bounded() || a.finished {
		return
	}

	pos := a.surface.Position()
	if pos >= a.clip.End {
		a.surface.Pause()
		a.surface.SeekTo(a.clip.Start)
		binding.SetPercent(a.sinks.Progress, 100)
		a.finished = true
		return
	}

	binding.SetPercent(a.sinks.Progress, a.clip.Progress(pos))
	binding.SetText(a.sinks.Time, timefmt.Pair(a.clip.Elapsed(pos), a.clip.Len()))
}

// bind loads the shared audio when the surface is unbound or bound to
// something else.
func (a *Adapter) bind() error {
	if a.source == "" {
		return ErrNoSource
	}
	if a.surface.Source() == a.source {
		return nil
	}
	return a.surface.Load(a.source)
}
