package playback

import "github.com/llehouerou/clipnotes/internal/clip"

// State is the focus state of a document: which section drives the snippet.
//
// A State starts Uninitialized and becomes Focused on Init or on the first
// FocusChanged. There is no terminal state.
type State struct {
	// Clips is read-only; states only ever share it.
	Clips   *clip.Registry
	Section int
	Focused bool
}

// NewState returns the Uninitialized state over clips.
func NewState(clips *clip.Registry) State {
	return State{Clips: clips, Section: -1}
}

// String returns the state name for debugging.
func (s State) String() string {
	if !s.Focused {
		return "Uninitialized"
	}
	return "Focused"
}
