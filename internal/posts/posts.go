// Package posts reads the post index (posts.json) of one or more post
// sources and selects what the post list shows.
package posts

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
)

// IndexFile is the index file name inside a post source.
const IndexFile = "posts.json"

// Messages shown in place of the list.
const (
	EmptyMessage = "No posts yet."
	ErrorMessage = "Could not load posts."
)

const dateLayout = "2006-01-02"

// ErrPostNotFound is returned when neither an HTML nor a Markdown file
// exists for a slug.
var ErrPostNotFound = errors.New("post file not found")

// Entry is one post listed in an index.
type Entry struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Snippet  string `json:"snippet"`

	// Dir is the source directory the entry was read from.
	Dir string `json:"-"`
}

// Path returns the document file of the entry: <slug>.html, <slug>.htm or
// <slug>.md in its source directory.
func (e Entry) Path() (string, error) {
	for _, ext := range []string{".html", ".htm", ".md"} {
		p := filepath.Join(e.Dir, e.Slug+ext)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrPostNotFound, e.Slug)
}

// Parse decodes an index. Both {"posts": [...]} and a bare array are
// accepted.
func Parse(data []byte) ([]Entry, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var entries []Entry
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("parse index: %w", err)
		}
		return entries, nil
	}

	var wrapped struct {
		Posts []Entry `json:"posts"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("parse index: %w", err)
	}
	return wrapped.Posts, nil
}

// Load reads the index of the source at dir.
func Load(dir string) ([]Entry, error) {
	data, err := os.ReadFile(filepath.Join(dir, IndexFile))
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}
	entries, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dir, err)
	}
	for i := range entries {
		entries[i].Dir = dir
	}
	return entries, nil
}

// LoadAll reads every source concurrently and merges the entries in source
// order. The first failure cancels the rest.
func LoadAll(ctx context.Context, dirs []string) ([]Entry, error) {
	results := make([][]Entry, len(dirs))

	g, ctx := errgroup.WithContext(ctx)
	for i, dir := range dirs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entries, err := Load(dir)
			if err != nil {
				return err
			}
			results[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slices.Concat(results...), nil
}

// Query selects entries for display.
type Query struct {
	Category string // empty means all
	Limit    int    // <= 0 means no limit
}

// Apply sorts newest first, filters by category (case-insensitive) and
// truncates to the limit. The input is not modified.
func (q Query) Apply(entries []Entry) []Entry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b Entry) int {
		return cmp.Compare(b.Date, a.Date)
	})

	if q.Category != "" {
		out = slices.DeleteFunc(out, func(e Entry) bool {
			return !strings.EqualFold(e.Category, q.Category)
		})
	}

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}

// Categories returns the distinct categories, lowercased and sorted.
func Categories(entries []Entry) []string {
	var cats []string
	for _, e := range entries {
		c := strings.ToLower(strings.TrimSpace(e.Category))
		if c != "" && !slices.Contains(cats, c) {
			cats = append(cats, c)
		}
	}
	slices.Sort(cats)
	return cats
}

// NextCategory cycles "" → first → ... → last → "".
func NextCategory(cats []string, current string) string {
	if len(cats) == 0 {
		return ""
	}
	if current == "" {
		return cats[0]
	}
	i := slices.Index(cats, strings.ToLower(current))
	if i < 0 || i == len(cats)-1 {
		return ""
	}
	return cats[i+1]
}

// FormatDate renders "2024-03-05" as "Mar 5, 2024". Unparseable dates are
// returned unchanged.
func FormatDate(s string) string {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2, 2006")
}

// Relative renders the date relative to now, e.g. "3 days ago".
func Relative(s string, now time.Time) string {
	t, err := time.ParseInLocation(dateLayout, s, now.Location())
	if err != nil {
		return ""
	}
	return humanize.RelTime(t, now, "ago", "from now")
}
