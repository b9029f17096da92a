// Package visibility decides which content section the reader is looking at.
//
// A section is focused when it crosses the activation band, a horizontal
// strip of the viewport that excludes a top and a bottom margin. Only
// entering the band is reported; leaving it is silent, so the last section to
// enter wins.
package visibility

import (
	"errors"
	"math"
)

// ErrInvalidBand is returned when margins leave no room for a band.
var ErrInvalidBand = errors.New("activation band margins must be in [0,1) and sum below 1")

// Band describes the activation band as fractions of the viewport height.
type Band struct {
	TopMargin    float64
	BottomMargin float64
}

// DefaultBand spans from 25% to 45% of the viewport, measured from the top.
var DefaultBand = Band{TopMargin: 0.25, BottomMargin: 0.55}

// Validate checks that the margins describe a non-empty band.
func (b Band) Validate() error {
	if b.TopMargin < 0 || b.BottomMargin < 0 || b.TopMargin >= 1 || b.BottomMargin >= 1 ||
		b.TopMargin+b.BottomMargin >= 1 {
		return ErrInvalidBand
	}
	return nil
}

// Rect is the vertical extent of an element in document lines, [Top, Bottom).
type Rect struct {
	Top    int
	Bottom int
}

// Viewport is the visible window over the document.
type Viewport struct {
	Offset int // first visible document line
	Height int // number of visible lines
}

// Area returns the band rectangle for the given viewport, in document lines.
// The band always covers at least the line at its top edge.
func (b Band) Area(v Viewport) Rect {
	top := v.Offset + int(math.Floor(float64(v.Height)*b.TopMargin))
	bottom := v.Offset + int(math.Ceil(float64(v.Height)*(1-b.BottomMargin)))
	if bottom <= top {
		bottom = top + 1
	}
	return Rect{Top: top, Bottom: bottom}
}

// Intersects reports whether r overlaps the band rectangle area.
func (r Rect) Intersects(area Rect) bool {
	return r.Top < area.Bottom && r.Bottom > area.Top
}

// Tracker turns viewport observations into focus candidates.
type Tracker struct {
	band   Band
	bounds []Rect
	inside []bool
}

// NewTracker creates a tracker over the given section bounds.
func NewTracker(band Band, bounds []Rect) *Tracker {
	t := &Tracker{band: band}
	t.SetBounds(bounds)
	return t
}

// SetBounds replaces the observed element bounds, e.g. after a re-layout.
// Sections that were inside the band stay marked so a re-layout alone does
// not re-announce them.
func (t *Tracker) SetBounds(bounds []Rect) {
	inside := make([]bool, len(bounds))
	copy(inside, t.inside)
	t.bounds = append([]Rect(nil), bounds...)
	t.inside = inside
}

// Observe evaluates the viewport and returns the indices of sections that
// entered the band since the previous observation, in document order.
// The first observation reports every section already inside the band.
func (t *Tracker) Observe(v Viewport) []int {
	area := t.band.Area(v)

	var entered []int
	for i, r := range t.bounds {
		in := r.Bottom > r.Top && r.Intersects(area)
		if in && !t.inside[i] {
			entered = append(entered, i)
		}
		t.inside[i] = in
	}
	return entered
}
