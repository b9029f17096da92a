package playerbar

import (
	"strings"

	"github.com/llehouerou/clipnotes/internal/binding"
	"github.com/llehouerou/clipnotes/internal/icons"
	"github.com/llehouerou/clipnotes/internal/ui"
	"github.com/llehouerou/clipnotes/internal/ui/render"
	"github.com/llehouerou/clipnotes/internal/ui/styles"
)

// SnippetValues are the sinks the snippet adapter and the coordinator write
// into.
type SnippetValues struct {
	Icon     binding.IconValue
	Progress binding.ProgressValue
	Time     binding.TextValue
	Active   binding.FlagValue
	Label    binding.TextValue
}

// Snippet holds everything needed to render the snippet bar.
type Snippet struct {
	Active  bool
	Playing bool
	Percent float64
	Label   string
	Time    string
}

// NewSnippet reads the current display values.
func NewSnippet(v *SnippetValues) Snippet {
	return Snippet{
		Active:  v.Active.Active(),
		Playing: v.Icon.Playing(),
		Percent: v.Progress.Percent(),
		Label:   v.Label.Value(),
		Time:    v.Time.Value(),
	}
}

// RenderSnippet renders the snippet bar on one line.
// Format: ▶  Verse            0:04 / 0:15 ▓▓▓▓▓░░░░░░░
func RenderSnippet(sn Snippet, width int) string {
	st := styles.T().S()

	lead := render.Fit(icons.Snippet(), iconWidth)
	if !sn.Active {
		return st.Subtle.Render(render.Fit(lead+"no clip", width))
	}

	icon := render.Fit(icons.PlayPause(sn.Playing), iconWidth)
	if sn.Playing {
		icon = st.Playing.Render(icon)
	}

	labelWidth := min(labelMax, max(width/4, 0))
	label := sn.Label
	if label == "" {
		label = icons.Snippet()
	}

	fixed := iconWidth + labelWidth + 1 + pairWidth + 1
	barWidth := width - fixed

	var b strings.Builder
	b.WriteString(icon)
	b.WriteString(st.Title.Render(render.Fit(label, labelWidth)))
	b.WriteString(" ")
	b.WriteString(st.Time.Render(render.PadLeft(sn.Time, pairWidth)))
	if barWidth >= ui.MinProgressBarWidth {
		b.WriteString(" ")
		b.WriteString(styles.Bar(styles.Filled(sn.Percent, barWidth), barWidth, snippetFill, snippetEmpty))
	}
	return b.String()
}
