// Package post loads music-analysis posts: a shared audio locator plus an
// ordered list of content sections, each declaring the clip it is bound to.
package post

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNoAudio is returned when a document declares no audio source.
	ErrNoAudio = errors.New("post declares no audio source")
	// ErrRemoteAudio is returned for http(s) audio sources.
	ErrRemoteAudio = errors.New("remote audio sources are not supported")
	// ErrUnsupportedFormat is returned for unknown document extensions.
	ErrUnsupportedFormat = errors.New("unsupported post format")
)

// Format identifies the markup a post is written in.
type Format int

const (
	FormatHTML Format = iota
	FormatMarkdown
)

// BlockKind classifies a rendered block of text.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockListItem
	BlockQuote
	BlockCode
)

// Block is one paragraph-like piece of text in document order.
type Block struct {
	Kind    BlockKind
	Level   int // heading level, 0 otherwise
	Text    string
	Section int // index into Document.Sections, -1 outside any section
}

// Section is the declared metadata of one content section.
// Start, End and Label are kept verbatim; interpreting them is the clip
// registry's job.
type Section struct {
	Start   string
	End     string
	Label   string
	Heading string
}

// Document is a parsed post.
type Document struct {
	Path     string
	Title    string
	Date     string
	Category string
	Audio    string // resolved locator of the shared audio resource
	Blocks   []Block
	Sections []Section
}

// SectionBlocks returns the blocks belonging to section i.
func (d *Document) SectionBlocks(i int) []Block {
	var out []Block
	for _, b := range d.Blocks {
		if b.Section == i {
			out = append(out, b)
		}
	}
	return out
}

// FormatFor returns the format implied by a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FormatHTML, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and parses the post at path.
func Load(path string) (*Document, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read post: %w", err)
	}

	doc, err := Parse(data, format, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	doc.Path = path
	if doc.Title == "" {
		doc.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return doc, nil
}

// Parse parses a post body. Relative audio sources resolve against baseDir.
func Parse(data []byte, format Format, baseDir string) (*Document, error) {
	var (
		doc *Document
		err error
	)
	switch format {
	case FormatHTML:
		doc, err = parseHTML(data)
	case FormatMarkdown:
		doc, err = parseMarkdown(data)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}

	doc.Audio, err = ResolveAudio(baseDir, doc.Audio)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ResolveAudio turns a declared audio source into a local locator.
func ResolveAudio(baseDir, src string) (string, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return "", ErrNoAudio
	}

	if u, err := url.Parse(src); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		switch strings.ToLower(u.Scheme) {
		case "file":
			return filepath.FromSlash(u.Path), nil
		case "http", "https":
			return "", fmt.Errorf("%w: %s", ErrRemoteAudio, src)
		}
	}

	if filepath.IsAbs(src) {
		return filepath.Clean(src), nil
	}
	return filepath.Join(baseDir, filepath.FromSlash(src)), nil
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
