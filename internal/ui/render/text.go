// Package render provides text rendering utilities for TUI components.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Ellipsis is appended to truncated text.
const Ellipsis = "…"

// Sanitize removes control characters (except tab) and invalid UTF-8 bytes,
// and turns non-breaking spaces into plain spaces. Post text and audio tags
// come from files we don't control.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
		case r != '\t' && unicode.IsControl(r):
		case r == '\u00a0':
			b.WriteByte(' ')
		default:
			b.WriteString(s[i : i+size])
		}
		i += max(size, 1)
	}
	return b.String()
}

func needsSanitize(s string) bool {
	for i := range len(s) {
		b := s[i]
		if b < 0x20 && b != '\t' {
			return true
		}
		if b >= 0x80 && b <= 0x9f {
			return true
		}
		if b == 0xc2 && i+1 < len(s) && s[i+1] == 0xa0 {
			return true
		}
	}
	return !utf8.ValidString(s)
}

// Truncate shortens s to at most maxWidth cells, ending in an ellipsis when
// something was cut. ANSI sequences are kept intact.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, Ellipsis)
}

// Pad fills a string with spaces to reach the specified width.
// Uses runewidth for proper handling of wide characters.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// PadLeft right-aligns s within width.
func PadLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}

// Fit truncates s if necessary, then pads it to exactly width cells.
func Fit(s string, width int) string {
	s = Truncate(s, width)
	if w := lipgloss.Width(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// Row creates a row with left and right aligned content separated by spaces.
// The right side wins when both don't fit: the left side is truncated.
func Row(left, right string, width int) string {
	rightWidth := lipgloss.Width(right)
	if rightWidth >= width {
		return Truncate(right, width)
	}
	left = Truncate(left, width-rightWidth-1)
	gap := max(width-lipgloss.Width(left)-rightWidth, 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator creates a horizontal separator line of the specified width.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}
