// Package helpbindings renders the key bindings: a short footer through
// bubbles/help and a scrollable full page.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/clipnotes/internal/keymap"
	"github.com/llehouerou/clipnotes/internal/ui"
	"github.com/llehouerou/clipnotes/internal/ui/styles"
)

// CloseMsg signals the help page should close.
type CloseMsg struct{}

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{
	keymap.ContextGlobal,
	keymap.ContextList,
	keymap.ContextReader,
	keymap.ContextPlayback,
}

var categoryLabels = map[string]string{
	keymap.ContextGlobal:   "Global",
	keymap.ContextList:     "Post List",
	keymap.ContextReader:   "Reader",
	keymap.ContextPlayback: "Playback",
}

// Model is the full help page.
type Model struct {
	ui.Area
	keys         *keymap.Resolver
	bindings     []keymap.Binding
	scrollOffset int
}

// New creates a help page listing the bindings known to keys.
func New(keys *keymap.Resolver) Model {
	return Model{keys: keys}
}

// SetContexts sets which binding contexts to display.
func (m *Model) SetContexts(contexts []string) {
	m.bindings = collect(m.keys, contexts)
	m.scrollOffset = 0
}

func collect(keys *keymap.Resolver, contexts []string) []keymap.Binding {
	var out []keymap.Binding
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			out = append(out, keys.InContext(ctx)...)
		}
	}
	return out
}

// Update handles scrolling and closing.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return CloseMsg{} }
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// View renders the page.
func (m Model) View() string {
	if m.Empty() {
		return ""
	}
	st := styles.T().S()

	lines := strings.Split(m.buildContent(), "\n")
	visible := m.visibleHeight()
	start := min(m.scrollOffset, len(lines))
	end := min(start+visible, len(lines))

	var sb strings.Builder
	sb.WriteString(st.Title.Render("Help"))
	sb.WriteString("\n\n")
	sb.WriteString(strings.Join(lines[start:end], "\n"))
	sb.WriteString("\n\n")
	sb.WriteString(st.Muted.Render(m.buildFooter()))

	return lipgloss.NewStyle().Padding(1, 2).Render(sb.String())
}

func (m Model) buildContent() string {
	st := styles.T().S()
	var sb strings.Builder

	maxKeyWidth := 0
	for _, b := range m.bindings {
		maxKeyWidth = max(maxKeyWidth, lipgloss.Width(displayKeys(b.Keys)))
	}

	current := ""
	for _, b := range m.bindings {
		if b.Context != current {
			if current != "" {
				sb.WriteString("\n")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			sb.WriteString(st.Heading.Render(label))
			sb.WriteString("\n")
			sb.WriteString(st.Subtle.Render(strings.Repeat("─", maxKeyWidth+15)))
			sb.WriteString("\n")
			current = b.Context
		}

		keys := displayKeys(b.Keys)
		padded := keys + strings.Repeat(" ", maxKeyWidth-lipgloss.Width(keys))
		sb.WriteString(st.Playing.Render(padded))
		sb.WriteString("  ")
		sb.WriteString(st.Base.Render(b.Description))
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func (m Model) buildFooter() string {
	if m.totalLines() <= m.visibleHeight() {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m Model) visibleHeight() int {
	// title, footer and padding
	return max(m.Height()-6, 3)
}

func (m Model) totalLines() int {
	return strings.Count(m.buildContent(), "\n") + 1
}

func (m Model) maxScroll() int {
	return max(m.totalLines()-m.visibleHeight(), 0)
}
