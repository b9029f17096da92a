package render

import (
	"slices"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  []string
	}{
		{"fits", "So What", 20, []string{"So What"}},
		{"breaks at spaces", "the quick brown fox", 10, []string{"the quick", "brown fox"}},
		{"keeps paragraphs", "one\ntwo", 20, []string{"one", "two"}},
		{"empty", "", 10, []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.input, tt.width)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Wrap(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrap_NeverExceedsWidth(t *testing.T) {
	text := "Coltrane enters at bar seventeen with a supercalifragilistic run over the modal vamp"
	for _, width := range []int{5, 12, 30} {
		for _, line := range Wrap(text, width) {
			if w := lipgloss.Width(line); w > width {
				t.Errorf("width %d: line %q is %d wide", width, line, w)
			}
		}
	}
}

func TestHanging(t *testing.T) {
	got := Hanging("alpha beta gamma", "• ", 9)
	want := []string{"• alpha", "  beta", "  gamma"}
	if !slices.Equal(got, want) {
		t.Errorf("Hanging = %q, want %q", got, want)
	}
}

func TestPrefixed(t *testing.T) {
	got := Prefixed("alpha beta", "│ ", 8)
	want := []string{"│ alpha", "│ beta"}
	if !slices.Equal(got, want) {
		t.Errorf("Prefixed = %q, want %q", got, want)
	}
}

func TestHard(t *testing.T) {
	got := Hard("  indented\n\tx", 40)
	want := []string{"  indented", "    x"}
	if !slices.Equal(got, want) {
		t.Errorf("Hard = %q, want %q", got, want)
	}

	for _, line := range Hard("0123456789abcdef", 6) {
		if w := lipgloss.Width(line); w > 6 {
			t.Errorf("line %q is %d wide", line, w)
		}
	}
}
