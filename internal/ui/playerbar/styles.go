package playerbar

// Glyphs of the two progress tracks.
const (
	fullFill     = "━"
	fullEmpty    = "─"
	snippetFill  = "▓"
	snippetEmpty = "░"
)

// Fixed column widths, so the track of the full bar sits at a position that
// depends on the terminal width only.
const (
	iconWidth  = 3
	timeWidth  = 6
	fullPrefix = iconWidth + timeWidth + 1 // icon, elapsed, space
	fullSuffix = 1 + timeWidth             // space, duration
	labelMax   = 24
	pairWidth  = 13 // "12:34 / 56:78"
)
