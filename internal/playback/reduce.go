package playback

import "github.com/llehouerou/clipnotes/internal/clip"

// Reduce computes the transition for e. It has no side effects: the
// returned effects describe every change the caller must apply.
//
// Focusing the already focused section, an unknown section, or initializing
// twice yields the unchanged state and no effects.
func Reduce(s State, e Event) (State, []Effect) {
	switch e := e.(type) {
	case Init:
		if s.Focused || s.Clips == nil {
			return s, nil
		}
		if c, ok := s.Clips.First(); ok {
			return focus(s, c, e.Snippet)
		}
	case FocusChanged:
		if s.Clips == nil || (s.Focused && s.Section == e.Index) {
			return s, nil
		}
		if c, ok := s.Clips.SectionAt(e.Index); ok {
			return focus(s, c, e.Snippet)
		}
	}
	return s, nil
}

func focus(s State, c clip.Clip, snap SnippetSnapshot) (State, []Effect) {
	s.Section = c.Index
	s.Focused = true
	return s, []Effect{
		SetLabel{Label: c.Label},
		ConfigureClip{Clip: c, Resume: snap.Playing},
		MarkActive{Index: c.Index},
	}
}
