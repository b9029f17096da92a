// Package playerbar renders the full-track and snippet player bars from the
// values their adapters write.
package playerbar

import (
	"strings"

	"github.com/llehouerou/clipnotes/internal/binding"
	"github.com/llehouerou/clipnotes/internal/icons"
	"github.com/llehouerou/clipnotes/internal/ui"
	"github.com/llehouerou/clipnotes/internal/ui/render"
	"github.com/llehouerou/clipnotes/internal/ui/styles"
)

// FullValues are the sinks the full-track adapter writes into.
type FullValues struct {
	Icon     binding.IconValue
	Progress binding.ProgressValue
	Elapsed  binding.TextValue
	Duration binding.TextValue
}

// Full holds everything needed to render the full-track bar.
type Full struct {
	Playing  bool
	Percent  float64
	Elapsed  string
	Duration string
}

// NewFull reads the current display values.
func NewFull(v *FullValues) Full {
	f := Full{
		Playing:  v.Icon.Playing(),
		Percent:  v.Progress.Percent(),
		Elapsed:  "-:--",
		Duration: "-:--",
	}
	if v.Elapsed.IsSet() {
		f.Elapsed = v.Elapsed.Value()
	}
	if v.Duration.IsSet() {
		f.Duration = v.Duration.Value()
	}
	return f
}

// TrackSpan returns the column where the full bar's progress track starts
// and how many cells it spans, for a bar width cells wide. A zero length
// means the bar is too narrow for a track.
func TrackSpan(width int) (start, length int) {
	length = width - fullPrefix - fullSuffix
	if length < ui.MinProgressBarWidth {
		return fullPrefix, 0
	}
	return fullPrefix, length
}

// RenderFull renders the full-track bar on one line.
// Format: ▶   1:23 ━━━━━━━━━━──────── 4:56
func RenderFull(f Full, width int) string {
	st := styles.T().S()

	icon := render.Fit(icons.PlayPause(f.Playing), iconWidth)
	if f.Playing {
		icon = st.Playing.Render(icon)
	}

	_, length := TrackSpan(width)
	if length == 0 {
		return render.Fit(icon+f.Elapsed+" / "+f.Duration, width)
	}

	var b strings.Builder
	b.WriteString(icon)
	b.WriteString(st.Time.Render(render.PadLeft(f.Elapsed, timeWidth)))
	b.WriteString(" ")
	b.WriteString(styles.Bar(styles.Filled(f.Percent, length), length, fullFill, fullEmpty))
	b.WriteString(" ")
	b.WriteString(st.Time.Render(render.Pad(f.Duration, timeWidth)))
	return b.String()
}
