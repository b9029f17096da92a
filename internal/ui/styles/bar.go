package styles

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Bar renders a progress track of width cells, the first filled of them
// drawn with the fill glyph on a Primary to Secondary ramp.
func Bar(filled, width int, fill, empty string) string {
	if width <= 0 {
		return ""
	}
	filled = max(0, min(filled, width))
	t := T()
	return gradientFill(fill, filled, width, t.Primary, t.Secondary) +
		t.S().Empty.Render(strings.Repeat(empty, width-filled))
}

// Filled returns how many of width cells a percentage covers.
func Filled(percent float64, width int) int {
	if width <= 0 || percent != percent || percent <= 0 {
		return 0
	}
	if percent >= 100 {
		return width
	}
	return int(float64(width) * percent / 100)
}

// Dim renders s faded, used while leaving a screen. Existing styling is
// dropped, otherwise its resets would cancel the fade.
func Dim(s string) string {
	return T().S().Leaving.Render(ansi.Strip(s))
}
