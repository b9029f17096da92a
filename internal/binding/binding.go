// Package binding holds the display sinks the player adapters write to.
//
// Adapters receive their sinks at construction time. Every sink is optional:
// a nil sink means the element is absent and updates to it are skipped.
package binding

import "math"

// Text receives a display string.
type Text interface {
	SetText(s string)
}

// Progress receives a fill percentage in [0, 100].
type Progress interface {
	SetPercent(p float64)
}

// Icon receives the play/pause state of a toggle control.
type Icon interface {
	SetPlaying(playing bool)
}

// Marker marks one item of a group as active, clearing the others.
type Marker interface {
	MarkActive(index int)
}

// Flag receives an on/off visual state.
type Flag interface {
	SetActive(active bool)
}

// SetText writes s to t if the sink is present.
func SetText(t Text, s string) {
	if t != nil {
		t.SetText(s)
	}
}

// SetPercent writes p, clamped to [0, 100], to the sink if present.
func SetPercent(p Progress, pct float64) {
	if p == nil {
		return
	}
	if math.IsNaN(pct) {
		pct = 0
	}
	p.SetPercent(math.Max(0, math.Min(100, pct)))
}

// SetPlaying writes the play state to the sink if present.
func SetPlaying(i Icon, playing bool) {
	if i != nil {
		i.SetPlaying(playing)
	}
}

// MarkActive forwards to the marker if present.
func MarkActive(m Marker, index int) {
	if m != nil {
		m.MarkActive(index)
	}
}

// SetActive writes the flag if present.
func SetActive(f Flag, active bool) {
	if f != nil {
		f.SetActive(active)
	}
}
