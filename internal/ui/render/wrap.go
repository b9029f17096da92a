package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Wrap breaks plain text into lines of at most width cells, at spaces where
// possible. Words longer than a line are split.
func Wrap(s string, width int) []string {
	s = Sanitize(s)
	if width <= 0 {
		return []string{s}
	}

	var lines []string
	for para := range strings.SplitSeq(s, "\n") {
		wrapped := ansi.Wrap(strings.TrimSpace(para), width, "")
		for line := range strings.SplitSeq(wrapped, "\n") {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	return lines
}

// Hanging wraps s with first in front of the first line and an indent of
// the same width in front of the others, as for list items and quotes.
func Hanging(s, first string, width int) []string {
	indent := strings.Repeat(" ", lipgloss.Width(first))
	lines := Wrap(s, max(width-lipgloss.Width(first), 1))
	for i := range lines {
		if i == 0 {
			lines[i] = first + lines[i]
		} else {
			lines[i] = indent + lines[i]
		}
	}
	return lines
}

// Prefixed wraps s with prefix in front of every line.
func Prefixed(s, prefix string, width int) []string {
	lines := Wrap(s, max(width-lipgloss.Width(prefix), 1))
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return lines
}

// Hard splits preformatted text at newlines and hard-wraps lines wider than
// width, keeping indentation.
func Hard(s string, width int) []string {
	s = strings.ReplaceAll(Sanitize(s), "\t", "    ")
	var lines []string
	for line := range strings.SplitSeq(s, "\n") {
		if width > 0 && lipgloss.Width(line) > width {
			lines = append(lines, strings.Split(ansi.Hardwrap(line, width, true), "\n")...)
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
