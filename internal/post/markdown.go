package post

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// frontMatter is the YAML header of a Markdown post.
type frontMatter struct {
	Title    string `yaml:"title"`
	Date     string `yaml:"date"`
	Category string `yaml:"category"`
	Audio    string `yaml:"audio"`
}

var markdown = goldmark.New(
	goldmark.WithParserOptions(
		parser.WithAttribute(),
		parser.WithHeadingAttribute(),
	),
)

func parseMarkdown(data []byte) (*Document, error) {
	meta, body, err := splitFrontMatter(data)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Title:    meta.Title,
		Date:     meta.Date,
		Category: meta.Category,
		Audio:    meta.Audio,
	}

	root := markdown.Parser().Parse(text.NewReader(body))

	section, sectionLevel := -1, 0
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			title := normalizeSpace(inlineText(h, body))
			if isSectionHeading(h) {
				doc.Sections = append(doc.Sections, Section{
					Start:   attrString(h, attrDataStart),
					End:     attrString(h, attrDataEnd),
					Label:   attrString(h, attrDataLabel),
					Heading: title,
				})
				section, sectionLevel = len(doc.Sections)-1, h.Level
			} else if section >= 0 && h.Level <= sectionLevel {
				section = -1
			}
			if doc.Title == "" && h.Level == 1 {
				doc.Title = title
			}
			doc.Blocks = append(doc.Blocks, Block{Kind: BlockHeading, Level: h.Level, Text: title, Section: section})
			continue
		}
		doc.Blocks = append(doc.Blocks, markdownBlocks(n, body, section)...)
	}

	return doc, nil
}

// splitFrontMatter separates a leading "---" YAML block from the body.
func splitFrontMatter(data []byte) (frontMatter, []byte, error) {
	var meta frontMatter
	trimmed := bytes.TrimPrefix(data, []byte("\ufeff"))
	if !bytes.HasPrefix(trimmed, []byte("---\n")) && !bytes.HasPrefix(trimmed, []byte("---\r\n")) {
		return meta, data, nil
	}

	rest := trimmed[bytes.IndexByte(trimmed, '\n')+1:]
	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return meta, data, nil
	}

	if err := yaml.Unmarshal(rest[:end], &meta); err != nil {
		return meta, nil, fmt.Errorf("front matter: %w", err)
	}

	body := rest[end+len("\n---"):]
	if i := bytes.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else {
		body = nil
	}
	return meta, body, nil
}

func isSectionHeading(h *ast.Heading) bool {
	for _, name := range []string{attrDataStart, attrDataEnd, attrDataLabel} {
		if _, ok := h.AttributeString(name); ok {
			return true
		}
	}
	return false
}

func attrString(n ast.Node, name string) string {
	v, ok := n.AttributeString(name)
	if !ok {
		return ""
	}
	switch v := v.(type) {
	case []byte:
		return string(v)
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

func markdownBlocks(n ast.Node, src []byte, section int) []Block {
	switch n := n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		if t := normalizeSpace(inlineText(n, src)); t != "" {
			return []Block{{Kind: BlockParagraph, Text: t, Section: section}}
		}
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		var b strings.Builder
		lines := n.Lines()
		for i := range lines.Len() {
			seg := lines.At(i)
			b.Write(seg.Value(src))
		}
		if t := strings.TrimRight(b.String(), "\n"); t != "" {
			return []Block{{Kind: BlockCode, Text: t, Section: section}}
		}
	case *ast.Blockquote:
		var out []Block
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			for _, b := range markdownBlocks(c, src, section) {
				b.Kind = BlockQuote
				out = append(out, b)
			}
		}
		return out
	case *ast.List:
		var out []Block
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			if t := normalizeSpace(inlineText(item, src)); t != "" {
				out = append(out, Block{Kind: BlockListItem, Text: t, Section: section})
			}
		}
		return out
	}
	return nil
}

func inlineText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Kind() == ast.KindParagraph || n.Kind() == ast.KindTextBlock {
				b.WriteByte(' ')
			}
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Text:
			b.Write(n.Segment.Value(src))
			if n.SoftLineBreak() || n.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(n.Value)
		case *ast.CodeSpan:
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					b.Write(t.Segment.Value(src))
				}
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
