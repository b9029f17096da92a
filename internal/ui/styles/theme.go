package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme names accepted by Init.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Theme is a palette and the styles built from it.
type Theme struct {
	Primary   lipgloss.Color // active section, playing state, gradient start
	Secondary lipgloss.Color // headings, gradient end

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	TrackEmpty lipgloss.Color
	Code       lipgloss.Color
	Error      lipgloss.Color

	styles *Styles
}

// Styles are the rendering styles shared by the views.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Heading lipgloss.Style
	Quote   lipgloss.Style
	Code    lipgloss.Style
	Gutter  lipgloss.Style // active-section marker
	Clip    lipgloss.Style // clip header of an inactive section
	ClipOn  lipgloss.Style // clip header of the active section
	Playing lipgloss.Style
	Time    lipgloss.Style
	Empty   lipgloss.Style // unfilled part of a progress track
	Leaving lipgloss.Style // whole screen during a transition
	Error   lipgloss.Style
}

var (
	darkTheme = Theme{
		Primary:    "#a78bfa",
		Secondary:  "#f1a208",
		FgBase:     "#c0c0c0",
		FgMuted:    "#808080",
		FgSubtle:   "#585858",
		TrackEmpty: "#3a3a3a",
		Code:       "#42b883",
		Error:      "#ff5555",
	}

	lightTheme = Theme{
		Primary:    "#6d28d9",
		Secondary:  "#b45309",
		FgBase:     "#303030",
		FgMuted:    "#606060",
		FgSubtle:   "#9a9a9a",
		TrackEmpty: "#d0d0d0",
		Code:       "#2f7d5b",
		Error:      "#c62828",
	}

	current = darkTheme
)

// Init selects the theme. "auto" asks the terminal for its background;
// unknown names keep the dark theme.
func Init(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ThemeLight:
		current = lightTheme
	case ThemeAuto:
		if lipgloss.HasDarkBackground() {
			current = darkTheme
		} else {
			current = lightTheme
		}
	default:
		current = darkTheme
	}
	current.styles = nil
}

// T returns the current theme.
func T() *Theme {
	return &current
}

// S returns the styles of t, building them on first use.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.build()
	}
	return t.styles
}

func (t *Theme) build() *Styles {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	return &Styles{
		Base:    fg(t.FgBase),
		Muted:   fg(t.FgMuted),
		Subtle:  fg(t.FgSubtle),
		Title:   fg(t.FgBase).Bold(true),
		Heading: fg(t.Secondary).Bold(true),
		Quote:   fg(t.FgMuted).Italic(true),
		Code:    fg(t.Code),
		Gutter:  fg(t.Primary).Bold(true),
		Clip:    fg(t.FgSubtle),
		ClipOn:  fg(t.Primary),
		Playing: fg(t.Primary).Bold(true),
		Time:    fg(t.FgMuted),
		Empty:   fg(t.TrackEmpty),
		Leaving: lipgloss.NewStyle().Faint(true),
		Error:   fg(t.Error),
	}
}
