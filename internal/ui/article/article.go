// Package article lays a post out as terminal lines and records where each
// section lands, which is what the visibility tracker observes.
package article

import (
	"strings"

	"github.com/llehouerou/clipnotes/internal/clip"
	"github.com/llehouerou/clipnotes/internal/icons"
	"github.com/llehouerou/clipnotes/internal/post"
	"github.com/llehouerou/clipnotes/internal/timefmt"
	"github.com/llehouerou/clipnotes/internal/ui"
	"github.com/llehouerou/clipnotes/internal/ui/render"
	"github.com/llehouerou/clipnotes/internal/ui/styles"
	"github.com/llehouerou/clipnotes/internal/visibility"
)

// Kind is how a line is styled.
type Kind int

const (
	KindBlank Kind = iota
	KindText
	KindHeading
	KindQuote
	KindCode
	KindClip // header line opening a section
)

// Line is one laid out terminal line.
type Line struct {
	Text    string
	Kind    Kind
	Section int // -1 outside any section
}

// Layout is a post laid out for one width.
type Layout struct {
	Lines  []Line
	Bounds []visibility.Rect // per section, in line numbers
	Width  int
}

// Build lays doc out for a terminal width cells wide. Every section starts
// with a clip header line, so even a section without text has a height.
func Build(doc *post.Document, clips *clip.Registry, width int) Layout {
	b := &builder{
		width:  textWidth(width),
		clips:  clips,
		layout: Layout{Width: width},
		tops:   make([]int, len(doc.Sections)),
		ends:   make([]int, len(doc.Sections)),
		opened: make([]bool, len(doc.Sections)),
	}

	prev := -2
	for _, blk := range doc.Blocks {
		if blk.Section >= 0 && blk.Section < len(doc.Sections) {
			b.openThrough(blk.Section)
		}
		if prev != -2 && len(b.layout.Lines) > 0 && !b.justOpened {
			sec := -1
			if prev == blk.Section {
				sec = blk.Section
			}
			b.add("", KindBlank, sec)
		}
		b.block(blk)
		prev = blk.Section
	}
	b.openThrough(len(doc.Sections) - 1)

	b.layout.Bounds = make([]visibility.Rect, len(doc.Sections))
	for i := range doc.Sections {
		b.layout.Bounds[i] = visibility.Rect{Top: b.tops[i], Bottom: b.ends[i]}
	}
	return b.layout
}

// textWidth is the wrapping width left after the gutter.
func textWidth(width int) int {
	return max(min(width, ui.MaxArticleWidth)-ui.GutterWidth, ui.MinTextWidth)
}

type builder struct {
	width      int
	clips      *clip.Registry
	layout     Layout
	tops       []int
	ends       []int
	opened     []bool
	justOpened bool
}

// openThrough emits the clip headers of every section up to last that has
// not been opened yet, so empty sections still get their place.
func (b *builder) openThrough(last int) {
	for i := 0; i <= last; i++ {
		if b.opened[i] {
			continue
		}
		if len(b.layout.Lines) > 0 {
			b.add("", KindBlank, -1)
		}
		b.opened[i] = true
		b.tops[i] = len(b.layout.Lines)
		b.add(clipHeader(b.clips, i), KindClip, i)
		b.justOpened = true
	}
}

func (b *builder) block(blk post.Block) {
	var (
		lines []string
		kind  Kind
	)
	switch blk.Kind {
	case post.BlockHeading:
		lines, kind = render.Wrap(blk.Text, b.width), KindHeading
	case post.BlockListItem:
		lines, kind = render.Hanging(blk.Text, "• ", b.width), KindText
	case post.BlockQuote:
		lines, kind = render.Prefixed(blk.Text, "│ ", b.width), KindQuote
	case post.BlockCode:
		lines, kind = render.Hard(blk.Text, b.width), KindCode
	default:
		lines, kind = render.Wrap(blk.Text, b.width), KindText
	}
	for _, l := range lines {
		b.add(l, kind, blk.Section)
	}
	b.justOpened = false
}

func (b *builder) add(text string, kind Kind, section int) {
	b.layout.Lines = append(b.layout.Lines, Line{Text: text, Kind: kind, Section: section})
	if section >= 0 && section < len(b.ends) && kind != KindBlank {
		b.ends[section] = len(b.layout.Lines)
	}
}

func clipHeader(clips *clip.Registry, i int) string {
	c, ok := clips.SectionAt(i)
	if !ok {
		return icons.Snippet()
	}
	span := timefmt.Duration(c.Start)
	if c.Bounded() {
		span += " – " + timefmt.Duration(c.End)
	}
	if c.Label == "" {
		return icons.Snippet() + " " + span
	}
	return icons.Snippet() + " " + c.Label + "  " + span
}

// Height returns the number of laid out lines.
func (l Layout) Height() int {
	return len(l.Lines)
}

// SectionTop returns the first line of section i, or -1.
func (l Layout) SectionTop(i int) int {
	if i < 0 || i >= len(l.Bounds) {
		return -1
	}
	return l.Bounds[i].Top
}

// Render styles every line, marking the lines of the active section in the
// gutter. Pass -1 when no section is active.
func (l Layout) Render(active int) string {
	s := styles.T().S()
	var sb strings.Builder
	for i, line := range l.Lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		on := line.Section >= 0 && line.Section == active
		gutter := render.Pad(icons.SectionGutter(on), ui.GutterWidth)
		if on {
			gutter = s.Gutter.Render(gutter)
		}
		sb.WriteString(gutter)
		sb.WriteString(styleLine(line, on))
	}
	return sb.String()
}

func styleLine(line Line, active bool) string {
	s := styles.T().S()
	switch line.Kind {
	case KindBlank:
		return ""
	case KindHeading:
		return s.Heading.Render(line.Text)
	case KindQuote:
		return s.Quote.Render(line.Text)
	case KindCode:
		return s.Code.Render(line.Text)
	case KindClip:
		if active {
			return s.ClipOn.Render(line.Text)
		}
		return s.Clip.Render(line.Text)
	case KindText:
	}
	return s.Base.Render(line.Text)
}
