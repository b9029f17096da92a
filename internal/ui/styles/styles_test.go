package styles

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestFilled(t *testing.T) {
	tests := []struct {
		percent float64
		width   int
		want    int
	}{
		{0, 10, 0},
		{50, 10, 5},
		{99, 10, 9},
		{100, 10, 10},
		{150, 10, 10},
		{-5, 10, 0},
		{math.NaN(), 10, 0},
		{50, 0, 0},
	}
	for _, tt := range tests {
		if got := Filled(tt.percent, tt.width); got != tt.want {
			t.Errorf("Filled(%v, %d) = %d, want %d", tt.percent, tt.width, got, tt.want)
		}
	}
}

func TestBar(t *testing.T) {
	got := ansi.Strip(Bar(3, 8, "━", "─"))
	if got != "━━━─────" {
		t.Errorf("Bar = %q", got)
	}
	if got := ansi.Strip(Bar(20, 4, "▓", "░")); got != "▓▓▓▓" {
		t.Errorf("overfull Bar = %q", got)
	}
	if Bar(1, 0, "▓", "░") != "" {
		t.Error("zero width bar should be empty")
	}
}

func TestGradientText_PreservesText(t *testing.T) {
	text := "naïve café"
	got := ansi.Strip(GradientText(text, true, lipgloss.Color("#a78bfa"), lipgloss.Color("#f1a208")))
	if got != text {
		t.Errorf("gradient changed text: %q", got)
	}
	if GradientText("", false, "#000000", "#ffffff") != "" {
		t.Error("empty input should render empty")
	}
}

func TestRamp(t *testing.T) {
	colors := Ramp(5, lipgloss.Color("#000000"), lipgloss.Color("#ffffff"))
	if len(colors) != 5 {
		t.Fatalf("len = %d, want 5", len(colors))
	}
	first, last := string(colors[0]), string(colors[4])
	if first != "#000000" || last != "#ffffff" {
		t.Errorf("endpoints = %s, %s", first, last)
	}
	for _, c := range colors {
		if !strings.HasPrefix(string(c), "#") || len(c) != 7 {
			t.Errorf("%q is not a hex color", c)
		}
	}

	if got := Ramp(1, "#123456", "#ffffff"); len(got) != 1 || got[0] != "#123456" {
		t.Errorf("Ramp(1) = %v", got)
	}
	if Ramp(0, "#000000", "#ffffff") != nil {
		t.Error("Ramp(0) should be nil")
	}
	if got := Ramp(2, "9", "#ffffff"); got[0] != lipgloss.Color(neutral.Hex()) {
		t.Errorf("ANSI color should blend from neutral, got %s", got[0])
	}
}

func TestDim_StripsStyling(t *testing.T) {
	styled := lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")).Render("hello")
	if got := ansi.Strip(Dim(styled)); got != "hello" {
		t.Errorf("Dim = %q", got)
	}
}

func TestInit(t *testing.T) {
	t.Cleanup(func() { Init(ThemeDark) })

	Init(ThemeLight)
	if T().Primary != lightTheme.Primary {
		t.Errorf("light Primary = %s, want %s", T().Primary, lightTheme.Primary)
	}
	if got := T().S().Gutter.GetForeground(); got != lightTheme.Primary {
		t.Errorf("styles not rebuilt after Init: gutter = %v", got)
	}

	Init("solarized")
	if T().Primary != darkTheme.Primary {
		t.Errorf("unknown theme should fall back to dark, got %s", T().Primary)
	}
}
