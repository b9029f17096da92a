package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/clipnotes/internal/ui/headerbar"
	"github.com/llehouerou/clipnotes/internal/ui/helpbindings"
	"github.com/llehouerou/clipnotes/internal/ui/render"
	"github.com/llehouerou/clipnotes/internal/ui/styles"
)

const appTitle = "clipnotes"

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.showHelp {
		return m.helpPage.View()
	}

	var body string
	if m.screen == screenReader && m.reader != nil {
		body = m.reader.view()
	} else {
		body = m.listView()
	}
	if m.leaving {
		body = styles.Dim(body)
	}

	return body + "\n" + m.statusView() + "\n" + m.helpView()
}

func (m Model) listView() string {
	title := styles.GradientText(appTitle, true, styles.T().Primary, styles.T().Secondary)
	tabs := headerbar.Render(m.list.Categories(), m.list.Category(), max(m.width-lipgloss.Width(title)-1, 0))
	top := render.Row(title, tabs, m.width)

	rows := m.list.Height()
	content := lipgloss.NewStyle().Height(rows).MaxHeight(rows).Render(m.list.View())

	return top + "\n" + m.recentView() + "\n" + content
}

// recentView names the last opened posts, or draws a separator.
func (m Model) recentView() string {
	st := styles.T().S()
	if len(m.recent) == 0 {
		return st.Subtle.Render(render.Separator(m.width))
	}
	titles := make([]string, len(m.recent))
	for i, r := range m.recent {
		titles[i] = render.Sanitize(r.Title)
	}
	return st.Subtle.Render(render.Truncate("recent: "+strings.Join(titles, " · "), m.width))
}

func (m Model) statusView() string {
	st := styles.T().S()
	if m.status == "" {
		return ""
	}
	line := render.Truncate(render.Sanitize(m.status), m.width)
	if m.statusErr {
		return st.Error.Render(line)
	}
	return st.Muted.Render(line)
}

func (m Model) helpView() string {
	keys := helpbindings.NewKeyMap(m.keys, m.contexts()...)
	return strings.TrimRight(m.help.View(keys), "\n")
}
