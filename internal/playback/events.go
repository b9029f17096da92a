package playback

import "github.com/llehouerou/clipnotes/internal/clip"

// SnippetSnapshot is the snippet cursor state captured before a transition
// mutates anything.
type SnippetSnapshot struct {
	Playing bool
}

// Event is an input to Reduce: Init or FocusChanged.
type Event interface {
	event()
}

// Init focuses the first section before any visibility signal arrives.
type Init struct {
	Snippet SnippetSnapshot
}

// FocusChanged reports that section Index entered the activation band.
type FocusChanged struct {
	Index   int
	Snippet SnippetSnapshot
}

func (Init) event()         {}
func (FocusChanged) event() {}

// Effect is an output of Reduce, applied in order by the Coordinator.
type Effect interface {
	effect()
}

// SetLabel shows the label of the newly focused clip.
type SetLabel struct {
	Label string
}

// ConfigureClip re-points the snippet at Clip. Resume carries the
// captured play state so playback continues across the switch.
type ConfigureClip struct {
	Clip   clip.Clip
	Resume bool
}

// MarkActive highlights section Index and clears every other section.
type MarkActive struct {
	Index int
}

func (SetLabel) effect()      {}
func (ConfigureClip) effect() {}
func (MarkActive) effect()    {}
