package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// neutral stands in for colors that are not "#rrggbb", such as ANSI indexes.
var neutral = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Ramp returns n colors blended from → to in HCL space.
func Ramp(n int, from, to lipgloss.Color) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []lipgloss.Color{from}
	}
	c1, c2 := toColorful(from), toColorful(to)
	out := make([]lipgloss.Color, n)
	for i := range n {
		out[i] = lipgloss.Color(c1.BlendHcl(c2, float64(i)/float64(n-1)).Clamped().Hex())
	}
	return out
}

// GradientText colors text one grapheme at a time along a from → to ramp.
func GradientText(text string, bold bool, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	var b strings.Builder
	for i, c := range Ramp(len(clusters), from, to) {
		b.WriteString(lipgloss.NewStyle().Foreground(c).Bold(bold).Render(clusters[i]))
	}
	return b.String()
}

// gradientFill draws filled glyph cells of a track width cells long. The ramp
// spans the whole track, so the head of the fill shows how far along it is.
func gradientFill(glyph string, filled, width int, from, to lipgloss.Color) string {
	ramp := Ramp(width, from, to)
	var b strings.Builder
	for i := range filled {
		b.WriteString(lipgloss.NewStyle().Foreground(ramp[i]).Render(glyph))
	}
	return b.String()
}

func toColorful(c lipgloss.Color) colorful.Color {
	s := string(c)
	if len(s) != 7 || s[0] != '#' {
		return neutral
	}
	col, err := colorful.Hex(s)
	if err != nil {
		return neutral
	}
	return col
}
