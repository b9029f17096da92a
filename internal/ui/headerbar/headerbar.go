// Package headerbar renders the category tabs of the post list.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/clipnotes/internal/icons"
	"github.com/llehouerou/clipnotes/internal/ui/styles"
)

// AllTab names the unfiltered list.
const AllTab = "All"

var (
	activeStyle = lipgloss.NewStyle().
			Foreground(styles.T().Primary).
			Bold(true)

	inactiveStyle = lipgloss.NewStyle().
			Foreground(styles.T().FgMuted)

	separatorStyle = lipgloss.NewStyle().
			Foreground(styles.T().FgSubtle)
)

// Render returns "All │ #cat1 │ #cat2 …" with the active category
// highlighted, "" meaning All. When the tabs do not fit in width only the
// active one is shown.
func Render(categories []string, active string, width int) string {
	if width <= 0 {
		return ""
	}

	names := make([]string, 0, len(categories)+1)
	names = append(names, AllTab)
	current := 0
	for i, c := range categories {
		names = append(names, icons.FormatCategory(c))
		if strings.EqualFold(c, active) {
			current = i + 1
		}
	}

	parts := make([]string, len(names))
	for i, n := range names {
		if i == current {
			parts[i] = activeStyle.Render(n)
		} else {
			parts[i] = inactiveStyle.Render(n)
		}
	}

	content := strings.Join(parts, separatorStyle.Render(" │ "))
	if lipgloss.Width(content) <= width {
		return content
	}
	if lipgloss.Width(names[current]) <= width {
		return activeStyle.Render(names[current])
	}
	return ""
}
