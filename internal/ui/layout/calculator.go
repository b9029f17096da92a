// Package layout provides pure functions for UI dimension calculations.
package layout

import "github.com/llehouerou/clipnotes/internal/ui"

// Opts contains the heights of the fixed rows around the scrolling content.
type Opts struct {
	HeaderHeight int
	BarHeight    int // each player bar; 0 on screens without players
	StatusHeight int
	HelpHeight   int
}

// ReaderOpts returns the fixed rows of the reader screen.
func ReaderOpts() Opts {
	return Opts{
		HeaderHeight: ui.HeaderHeight,
		BarHeight:    ui.BarHeight,
		StatusHeight: ui.StatusHeight,
		HelpHeight:   1,
	}
}

// ListOpts returns the fixed rows of the post list screen.
func ListOpts() Opts {
	return Opts{
		HeaderHeight: ui.HeaderHeight,
		StatusHeight: ui.StatusHeight,
		HelpHeight:   1,
	}
}

// Rows holds the first row (0-based, as in mouse events) of each area and
// the height of the content between header and bars.
type Rows struct {
	Content       int
	ContentHeight int
	FullBar       int
	SnippetBar    int
	Status        int
	Help          int
}

// Compute lays out a screen windowHeight rows tall, top to bottom: header,
// content, full-track bar, snippet bar, status line, help. Content is never
// shorter than one row.
func Compute(windowHeight int, o Opts) Rows {
	fixed := o.HeaderHeight + 2*o.BarHeight + o.StatusHeight + o.HelpHeight
	r := Rows{
		Content:       o.HeaderHeight,
		ContentHeight: max(windowHeight-fixed, 1),
	}
	r.FullBar = r.Content + r.ContentHeight
	r.SnippetBar = r.FullBar + o.BarHeight
	r.Status = r.SnippetBar + o.BarHeight
	r.Help = r.Status + o.StatusHeight
	return r
}

// OnFullBar reports whether row y is the full-track bar.
func (r Rows) OnFullBar(y int, o Opts) bool {
	return o.BarHeight > 0 && y >= r.FullBar && y < r.FullBar+o.BarHeight
}

// ContentWidth caps the text column for readability.
func ContentWidth(windowWidth int) int {
	return max(min(windowWidth, ui.MaxArticleWidth), 0)
}

// LeftMargin centers a column of ContentWidth in the window.
func LeftMargin(windowWidth int) int {
	return (windowWidth - ContentWidth(windowWidth)) / 2
}
