// Package postlist shows the post index as a bubbles list.
package postlist

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/clipnotes/internal/icons"
	"github.com/llehouerou/clipnotes/internal/posts"
	"github.com/llehouerou/clipnotes/internal/ui"
	"github.com/llehouerou/clipnotes/internal/ui/render"
	"github.com/llehouerou/clipnotes/internal/ui/styles"
)

// item implements list.DefaultItem for one post.
type item struct {
	entry posts.Entry
	open  bool
	now   time.Time
}

func (i item) FilterValue() string { return i.entry.Title }

func (i item) Title() string {
	return icons.SectionGutter(i.open) + " " + icons.FormatPost(render.Sanitize(i.entry.Title))
}

func (i item) Description() string {
	parts := []string{posts.FormatDate(i.entry.Date)}
	if rel := posts.Relative(i.entry.Date, i.now); rel != "" {
		parts = append(parts, rel)
	}
	if c := icons.FormatCategory(i.entry.Category); c != "" {
		parts = append(parts, c)
	}
	if s := render.Sanitize(i.entry.Snippet); s != "" {
		parts = append(parts, s)
	}
	return "  " + strings.Join(parts, " · ")
}

// Model is the post list screen body.
type Model struct {
	ui.Area
	list       list.Model
	entries    []posts.Entry
	categories []string
	query      posts.Query
	open       string // Dir+Slug of the post open in the reader
	loaded     bool
	err        error
	now        func() time.Time
}

// New returns an empty list filtered by query.
func New(query posts.Query) Model {
	st := styles.T().S()

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(styles.T().Primary).
		BorderLeftForeground(styles.T().Primary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(styles.T().FgMuted).
		BorderLeftForeground(styles.T().Primary)
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(styles.T().FgBase)
	delegate.Styles.NormalDesc = delegate.Styles.NormalDesc.Foreground(styles.T().FgSubtle)

	l := list.New(nil, delegate, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)
	l.Styles.PaginationStyle = st.Muted.PaddingLeft(2)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)

	return Model{list: l, query: query, now: time.Now}
}

// SetSize sets the dimensions of the list.
func (m *Model) SetSize(width, height int) {
	m.Area.SetSize(width, height)
	m.list.SetSize(width, height)
}

// SetEntries replaces the listed posts and clears any load error.
func (m *Model) SetEntries(entries []posts.Entry) {
	m.entries = entries
	m.categories = posts.Categories(entries)
	m.loaded = true
	m.err = nil
	m.refresh()
}

// SetError shows the load failure message in place of the list.
func (m *Model) SetError(err error) {
	m.err = err
	m.loaded = true
	m.entries = nil
	m.refresh()
}

// Category returns the active category filter, "" for all.
func (m Model) Category() string {
	return m.query.Category
}

// Categories returns the distinct categories of the loaded posts.
func (m Model) Categories() []string {
	return m.categories
}

// CycleCategory moves to the next category filter.
func (m *Model) CycleCategory() {
	m.query.Category = posts.NextCategory(m.categories, m.query.Category)
	m.refresh()
	m.list.Select(0)
}

// SetOpen highlights the post shown in the reader.
func (m *Model) SetOpen(e posts.Entry) {
	m.open = key(e)
	m.refresh()
}

// Selected returns the post under the cursor.
func (m Model) Selected() (posts.Entry, bool) {
	it, ok := m.list.SelectedItem().(item)
	if !ok {
		return posts.Entry{}, false
	}
	return it.entry, true
}

// SelectSlug moves the cursor to the first post with slug.
func (m *Model) SelectSlug(slug string) bool {
	for i, it := range m.list.Items() {
		if it.(item).entry.Slug == slug {
			m.list.Select(i)
			return true
		}
	}
	return false
}

// Len returns the number of listed posts.
func (m Model) Len() int {
	return len(m.list.Items())
}

// Update forwards navigation to the list.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the list, or a message when there is nothing to list.
func (m Model) View() string {
	st := styles.T().S()
	switch {
	case m.err != nil:
		return st.Error.Render("  " + posts.ErrorMessage)
	case !m.loaded:
		return st.Muted.Render("  Loading…")
	case len(m.list.Items()) == 0:
		return st.Muted.Render("  " + posts.EmptyMessage)
	}
	return m.list.View()
}

func (m *Model) refresh() {
	now := m.now()
	visible := m.query.Apply(m.entries)
	items := make([]list.Item, len(visible))
	for i, e := range visible {
		items[i] = item{entry: e, open: m.open != "" && key(e) == m.open, now: now}
	}
	m.list.SetItems(items)
}

func key(e posts.Entry) string {
	return e.Dir + "\x00" + e.Slug
}
