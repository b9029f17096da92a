package app

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/llehouerou/clipnotes/internal/binding"
	"github.com/llehouerou/clipnotes/internal/clip"
	"github.com/llehouerou/clipnotes/internal/fulltrack"
	"github.com/llehouerou/clipnotes/internal/icons"
	"github.com/llehouerou/clipnotes/internal/playback"
	"github.com/llehouerou/clipnotes/internal/player"
	"github.com/llehouerou/clipnotes/internal/post"
	"github.com/llehouerou/clipnotes/internal/posts"
	"github.com/llehouerou/clipnotes/internal/snippet"
	"github.com/llehouerou/clipnotes/internal/ui/article"
	"github.com/llehouerou/clipnotes/internal/ui/layout"
	"github.com/llehouerou/clipnotes/internal/ui/playerbar"
	"github.com/llehouerou/clipnotes/internal/ui/render"
	"github.com/llehouerou/clipnotes/internal/ui/styles"
	"github.com/llehouerou/clipnotes/internal/visibility"
)

// reader is one open post: the laid out article, the visibility tracker and
// the two player bars bound to the shared audio.
type reader struct {
	entry posts.Entry
	path  string
	doc   *post.Document
	clips *clip.Registry

	article  article.Layout
	viewport viewport.Model
	tracker  *visibility.Tracker
	band     visibility.Band
	rows     layout.Rows
	width    int

	full    *fulltrack.Adapter
	snippet *snippet.Adapter
	coord   *playback.Coordinator

	fullVals    *playerbar.FullValues
	snippetVals *playerbar.SnippetValues
	sections    *binding.MarkerSet
}

func newReader(msg PostOpenedMsg, full, snip player.Interface, band visibility.Band) *reader {
	r := &reader{
		entry:       msg.Entry,
		path:        msg.Path,
		doc:         msg.Doc,
		clips:       clip.NewRegistry(msg.Doc.Sections),
		viewport:    viewport.New(0, 0),
		tracker:     visibility.NewTracker(band, nil),
		band:        band,
		fullVals:    &playerbar.FullValues{},
		snippetVals: &playerbar.SnippetValues{},
		sections:    binding.NewMarkerSet(),
	}

	r.full = fulltrack.New(full, fulltrack.Sinks{
		Icon:     &r.fullVals.Icon,
		Progress: &r.fullVals.Progress,
		Elapsed:  &r.fullVals.Elapsed,
		Duration: &r.fullVals.Duration,
	})
	r.snippet = snippet.New(snip, msg.Doc.Audio, snippet.Sinks{
		Icon:     &r.snippetVals.Icon,
		Progress: &r.snippetVals.Progress,
		Time:     &r.snippetVals.Time,
		Active:   &r.snippetVals.Active,
	})
	r.coord = playback.NewCoordinator(r.clips, r.snippet, playback.Sinks{
		Label:    &r.snippetVals.Label,
		Sections: r.sections,
	})
	return r
}

// start focuses the first section, then feeds the first observation.
func (r *reader) start() error {
	err := r.coord.Init()
	if oerr := r.observe(); oerr != nil {
		err = oerr
	}
	return err
}

// resize lays the article out for a new window size.
func (r *reader) resize(width, height int) {
	r.width = width
	r.rows = layout.Compute(height, layout.ReaderOpts())
	r.article = article.Build(r.doc, r.clips, layout.ContentWidth(width))
	r.viewport.Width = width
	r.viewport.Height = r.rows.ContentHeight
	r.tracker.SetBounds(r.article.Bounds)
	r.refresh()
}

// refresh re-renders the article with the current active section. The
// trailing padding lets the last line scroll up to the top of the band.
func (r *reader) refresh() {
	margin := strings.Repeat(" ", layout.LeftMargin(r.width))
	lines := strings.Split(r.article.Render(r.sections.Active()), "\n")
	for i := range lines {
		lines[i] = margin + lines[i]
	}
	pad := max(r.viewport.Height-r.bandTop()-1, 0)
	lines = append(lines, make([]string, pad)...)
	r.viewport.SetContent(strings.Join(lines, "\n"))
}

// bandTop is the band's distance from the top of the viewport.
func (r *reader) bandTop() int {
	return int(math.Floor(float64(r.viewport.Height) * r.band.TopMargin))
}

// observe feeds every section that entered the band to the coordinator, in
// document order.
func (r *reader) observe() error {
	var err error
	entered := r.tracker.Observe(visibility.Viewport{
		Offset: r.viewport.YOffset,
		Height: r.viewport.Height,
	})
	for _, i := range entered {
		if ferr := r.coord.OnFocusChange(i); ferr != nil {
			err = ferr
		}
	}
	r.refresh()
	return err
}

func (r *reader) scrollTo(offset int) error {
	r.viewport.SetYOffset(offset)
	return r.observe()
}

func (r *reader) scrollBy(n int) error {
	return r.scrollTo(r.viewport.YOffset + n)
}

func (r *reader) scrollToBottom() error {
	return r.scrollTo(math.MaxInt32)
}

// section returns the focused section, -1 before any focus.
func (r *reader) section() int {
	if i, ok := r.coord.Section(); ok {
		return i
	}
	return -1
}

// jumpToSection scrolls section i to the top of the band and focuses it,
// even when shorter sections after it enter the band too.
func (r *reader) jumpToSection(i int) error {
	top := r.article.SectionTop(i)
	if top < 0 {
		return nil
	}
	err := r.scrollTo(top - r.bandTop())
	if ferr := r.coord.OnFocusChange(i); ferr != nil {
		err = ferr
	}
	r.refresh()
	return err
}

func (r *reader) handleEvent(id surfaceID, e player.Event) {
	if id == surfaceSnippet {
		r.snippet.HandleEvent(e)
		return
	}
	r.full.HandleEvent(e)
}

// scrub seeks the full track when x falls on its progress track.
func (r *reader) scrub(x int) bool {
	start, length := playerbar.TrackSpan(r.width)
	if length == 0 || x < start || x >= start+length {
		return false
	}
	r.full.Scrub(x-start, length)
	return true
}

func (r *reader) seek(d time.Duration) {
	r.full.Seek(d)
}

// nowPlaying returns the label of the section the full track is in.
func (r *reader) nowPlaying() string {
	snap := r.full.Snapshot()
	if snap.State == player.Stopped {
		return ""
	}
	i := r.clips.At(snap.Position)
	c, ok := r.clips.SectionAt(i)
	if !ok {
		return ""
	}
	if c.Label != "" {
		return c.Label
	}
	if h := r.doc.Sections[i].Heading; h != "" {
		return h
	}
	return "Section " + strconv.Itoa(i+1)
}

func (r *reader) headerView() string {
	st := styles.T().S()

	title := r.doc.Title
	if title == "" {
		title = r.entry.Title
	}
	track := ""
	if h := r.full.TrackInfo().Header(); h != "" {
		track = st.Muted.Render(icons.FormatAudio(render.Sanitize(h)))
	}
	top := render.Row(st.Title.Render(icons.FormatPost(render.Sanitize(title))), track, r.width)

	meta := []string{}
	date := r.doc.Date
	if date == "" {
		date = r.entry.Date
	}
	if date != "" {
		meta = append(meta, posts.FormatDate(date))
	}
	category := r.doc.Category
	if category == "" {
		category = r.entry.Category
	}
	if c := icons.FormatCategory(category); c != "" {
		meta = append(meta, c)
	}
	now := ""
	if label := r.nowPlaying(); label != "" {
		now = icons.PlayPause(true) + " " + render.Sanitize(label)
	}
	sub := render.Row(st.Muted.Render(strings.Join(meta, " · ")), st.Playing.Render(now), r.width)

	return top + "\n" + sub
}

func (r *reader) barsView() string {
	full := playerbar.RenderFull(playerbar.NewFull(r.fullVals), r.width)
	snip := playerbar.RenderSnippet(playerbar.NewSnippet(r.snippetVals), r.width)
	return full + "\n" + snip
}

func (r *reader) view() string {
	return r.headerView() + "\n" + r.viewport.View() + "\n" + r.barsView()
}
