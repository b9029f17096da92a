// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// HeaderHeight is the title line plus its separator.
	HeaderHeight = 2

	// BarHeight is the height of one player bar.
	BarHeight = 1

	// StatusHeight is the status line under the player bars.
	StatusHeight = 1

	// GutterWidth is the column reserved left of article text for the
	// active-section marker.
	GutterWidth = 2

	// MinTextWidth keeps wrapping usable on very narrow terminals.
	MinTextWidth = 10

	// MinProgressBarWidth is the minimum width for a usable progress bar.
	MinProgressBarWidth = 5

	// MaxArticleWidth caps the reading column on wide terminals.
	MaxArticleWidth = 100
)
