package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean text untouched", "So What", "So What"},
		{"control chars removed", "So\x00 What\x07", "So What"},
		{"tab kept", "a\tb", "a\tb"},
		{"nbsp becomes space", "Miles\u00a0Davis", "Miles Davis"},
		{"invalid utf8 dropped", "caf\xe9", "caf"},
		{"unicode kept", "Café Müller", "Café Müller"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "hello world", 8, "hello w…"},
		{"zero width", "hello", 0, ""},
		{"empty string", "", 5, ""},
		{"wide characters", "日本語テキスト", 5, "日本…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
			if w := lipgloss.Width(got); w > tt.maxWidth {
				t.Errorf("width %d exceeds %d", w, tt.maxWidth)
			}
		})
	}
}

func TestPad(t *testing.T) {
	if got := Pad("ab", 5); got != "ab   " {
		t.Errorf("Pad = %q", got)
	}
	if got := PadLeft("ab", 5); got != "   ab" {
		t.Errorf("PadLeft = %q", got)
	}
	if got := Pad("abcdef", 3); got != "abcdef" {
		t.Errorf("Pad should not truncate, got %q", got)
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		input string
		width int
	}{
		{"short", 10},
		{"exactly10!", 10},
		{"this is far too long", 10},
		{"日本語", 8},
	}
	for _, tt := range tests {
		if got := lipgloss.Width(Fit(tt.input, tt.width)); got != tt.width {
			t.Errorf("Fit(%q, %d) width = %d", tt.input, tt.width, got)
		}
	}
}

func TestRow(t *testing.T) {
	got := Row("left", "right", 20)
	if lipgloss.Width(got) != 20 {
		t.Errorf("Row width = %d, want 20", lipgloss.Width(got))
	}
	if !strings.HasPrefix(got, "left") || !strings.HasSuffix(got, "right") {
		t.Errorf("Row = %q", got)
	}

	narrow := Row("a long left side", "1:23", 10)
	if !strings.HasSuffix(narrow, "1:23") {
		t.Errorf("right side should survive, got %q", narrow)
	}
	if lipgloss.Width(narrow) > 10 {
		t.Errorf("Row width = %d, want <= 10", lipgloss.Width(narrow))
	}
}

func TestSeparator(t *testing.T) {
	if got := Separator(3); got != "───" {
		t.Errorf("Separator(3) = %q", got)
	}
	if got := Separator(-1); got != "" {
		t.Errorf("Separator(-1) = %q", got)
	}
}
