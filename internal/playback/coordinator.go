// Package playback decides which section drives the snippet player.
//
// Reduce is the pure transition function; Coordinator owns the current
// state and applies the effects to the snippet and the display.
package playback

import (
	"github.com/llehouerou/clipnotes/internal/binding"
	"github.com/llehouerou/clipnotes/internal/clip"
)

// Snippet is the part of the snippet adapter the coordinator drives.
type Snippet interface {
	IsPlaying() bool
	SetActiveClip(c clip.Clip, resume bool) error
}

// Sinks are the display elements owned by the coordinator. Any may be nil.
type Sinks struct {
	Label    binding.Text
	Sections binding.Marker
}

// Coordinator is the only writer of the focus state.
type Coordinator struct {
	state   State
	snippet Snippet
	sinks   Sinks
}

// NewCoordinator returns an uninitialized coordinator over clips.
func NewCoordinator(clips *clip.Registry, snippet Snippet, sinks Sinks) *Coordinator {
	return &Coordinator{
		state:   NewState(clips),
		snippet: snippet,
		sinks:   sinks,
	}
}

// Init focuses the first section. Call it once, before feeding any
// visibility observation.
func (c *Coordinator) Init() error {
	return c.dispatch(Init{Snippet: c.snapshot()})
}

// OnFocusChange handles one focus candidate. Candidates from one observation
// must be fed in delivery order; the last real change wins.
func (c *Coordinator) OnFocusChange(index int) error {
	return c.dispatch(FocusChanged{Index: index, Snippet: c.snapshot()})
}

// Section returns the focused section index, false before Init.
func (c *Coordinator) Section() (int, bool) {
	return c.state.Section, c.state.Focused
}

func (c *Coordinator) snapshot() SnippetSnapshot {
	if c.snippet == nil {
		return SnippetSnapshot{}
	}
	return SnippetSnapshot{Playing: c.snippet.IsPlaying()}
}

func (c *Coordinator) dispatch(e Event) error {
	next, effects := Reduce(c.state, e)
	c.state = next
	return c.apply(effects)
}

// apply runs every effect even if configuring the snippet fails, so the
// display never lags behind the focus state.
func (c *Coordinator) apply(effects []Effect) error {
	var err error
	for _, eff := range effects {
		switch eff := eff.(type) {
		case SetLabel:
			binding.SetText(c.sinks.Label, eff.Label)
		case ConfigureClip:
			if c.snippet != nil {
				err = c.snippet.SetActiveClip(eff.Clip, eff.Resume)
			}
		case MarkActive:
			binding.MarkActive(c.sinks.Sections, eff.Index)
		}
	}
	return err
}
