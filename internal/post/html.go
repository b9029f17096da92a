package post

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	sectionClass  = "analysis-section"
	fullTrackID   = "fullTrack"
	attrDataStart = "data-start"
	attrDataEnd   = "data-end"
	attrDataLabel = "data-label"
)

// skipped subtrees never contribute text.
var skipped = map[atom.Atom]bool{
	atom.Script: true, atom.Style: true, atom.Nav: true, atom.Header: true,
	atom.Footer: true, atom.Audio: true, atom.Button: true, atom.Svg: true,
	atom.Noscript: true, atom.Template: true,
}

type htmlWalker struct {
	doc      *Document
	audio    string
	anyAudio string
	h1       string
	section  int
}

func parseHTML(data []byte) (*Document, error) {
	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	w := &htmlWalker{doc: &Document{}, section: -1}
	w.walk(root)

	if w.audio == "" {
		w.audio = w.anyAudio
	}
	w.doc.Audio = w.audio
	if w.doc.Title == "" {
		w.doc.Title = w.h1
	}
	return w.doc, nil
}

func (w *htmlWalker) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Title:
			if w.doc.Title == "" {
				w.doc.Title = normalizeSpace(textOf(n))
			}
			return
		case atom.Audio:
			w.recordAudio(n)
			return
		case atom.Meta:
			w.recordMeta(n)
			return
		}
		if skipped[n.DataAtom] {
			return
		}

		if hasClass(n, sectionClass) && w.section < 0 {
			w.enterSection(n)
			return
		}

		if kind, level, ok := blockKind(n); ok {
			w.addBlock(n, kind, level)
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
}

func (w *htmlWalker) enterSection(n *html.Node) {
	w.doc.Sections = append(w.doc.Sections, Section{
		Start: attr(n, attrDataStart),
		End:   attr(n, attrDataEnd),
		Label: attr(n, attrDataLabel),
	})
	w.section = len(w.doc.Sections) - 1
	before := len(w.doc.Blocks)

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}

	// A section made only of inline content still gets its text.
	if len(w.doc.Blocks) == before {
		if text := normalizeSpace(textOf(n)); text != "" {
			w.doc.Blocks = append(w.doc.Blocks, Block{Kind: BlockParagraph, Text: text, Section: w.section})
		}
	}
	w.section = -1
}

func (w *htmlWalker) addBlock(n *html.Node, kind BlockKind, level int) {
	text := normalizeSpace(textOf(n))
	if kind == BlockCode {
		text = strings.TrimRight(textOf(n), "\n")
	}
	if text == "" {
		return
	}
	if kind == BlockHeading && level == 1 && w.h1 == "" {
		w.h1 = text
	}
	if kind == BlockHeading && w.section >= 0 {
		s := &w.doc.Sections[w.section]
		if s.Heading == "" {
			s.Heading = text
		}
	}
	w.doc.Blocks = append(w.doc.Blocks, Block{Kind: kind, Level: level, Text: text, Section: w.section})
}

func (w *htmlWalker) recordAudio(n *html.Node) {
	src := attr(n, "src")
	if src == "" {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == atom.Source {
				if src = attr(c, "src"); src != "" {
					break
				}
			}
		}
	}
	if src == "" {
		return
	}
	if attr(n, "id") == fullTrackID && w.audio == "" {
		w.audio = src
	}
	if w.anyAudio == "" {
		w.anyAudio = src
	}
}

func (w *htmlWalker) recordMeta(n *html.Node) {
	switch attr(n, "name") {
	case "date":
		w.doc.Date = attr(n, "content")
	case "category":
		w.doc.Category = attr(n, "content")
	}
}

func blockKind(n *html.Node) (BlockKind, int, bool) {
	switch n.DataAtom {
	case atom.P:
		return BlockParagraph, 0, true
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return BlockHeading, int(n.Data[1] - '0'), true
	case atom.Li:
		return BlockListItem, 0, true
	case atom.Blockquote:
		return BlockQuote, 0, true
	case atom.Pre:
		return BlockCode, 0, true
	case atom.Figcaption:
		return BlockParagraph, 0, true
	}
	return 0, 0, false
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		if n.Type == html.ElementNode {
			if skipped[n.DataAtom] {
				return
			}
			if n.DataAtom == atom.Br {
				b.WriteByte('\n')
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return b.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}
