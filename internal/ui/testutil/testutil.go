// Package testutil provides common testing utilities for UI components.
package testutil

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes from a string for easier testing.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// MeasureWidth returns the visual width of s without its escape codes.
func MeasureWidth(s string) int {
	return lipgloss.Width(StripANSI(s))
}

var specialKeys = map[string]tea.KeyType{
	"enter":       tea.KeyEnter,
	"esc":         tea.KeyEscape,
	"up":          tea.KeyUp,
	"down":        tea.KeyDown,
	"left":        tea.KeyLeft,
	"right":       tea.KeyRight,
	"pgup":        tea.KeyPgUp,
	"pgdown":      tea.KeyPgDown,
	"home":        tea.KeyHome,
	"end":         tea.KeyEnd,
	"shift+left":  tea.KeyShiftLeft,
	"shift+right": tea.KeyShiftRight,
	"ctrl+c":      tea.KeyCtrlC,
	"ctrl+d":      tea.KeyCtrlD,
	"ctrl+u":      tea.KeyCtrlU,
}

// Key builds the KeyMsg whose String() is k.
func Key(k string) tea.KeyMsg {
	if t, ok := specialKeys[k]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) != ""
}

// FindLine returns the first line containing the given substring, or empty string.
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// LineIndex returns the index of the first line containing substr, or -1.
func LineIndex(output, substr string) int {
	for i, line := range strings.Split(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return i
		}
	}
	return -1
}

// SplitLines splits output into lines, removing trailing empty lines.
func SplitLines(output string) []string {
	lines := strings.Split(output, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
