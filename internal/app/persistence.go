package app

import (
	"time"

	"github.com/llehouerou/clipnotes/internal/errmsg"
	"github.com/llehouerou/clipnotes/internal/state"
)

// recentShown is how many recent posts the list header names.
const recentShown = 3

// saveNavigation records the filter, the open post and its focused section.
// The state manager debounces writes.
func (m *Model) saveNavigation() {
	if m.opts.State == nil {
		return
	}
	nav := state.NavigationState{Category: m.category(), Section: -1}
	if m.screen == screenReader && m.reader != nil {
		nav.PostPath = m.reader.path
		nav.Section = m.reader.section()
	}
	m.opts.State.SaveNavigation(nav)
}

func (m *Model) addRecent(msg PostOpenedMsg) {
	if m.opts.State == nil {
		return
	}
	err := m.opts.State.AddRecent(state.RecentPost{
		Path:     msg.Path,
		Slug:     msg.Entry.Slug,
		Title:    entryTitle(msg.Entry),
		OpenedAt: time.Now(),
	})
	if err != nil {
		m.logger.Warnf("record recent post: %v", err)
		m.setError(errmsg.Format(errmsg.OpStateSave, err))
		return
	}
	m.refreshRecent()
}

func (m *Model) refreshRecent() {
	if m.opts.State == nil {
		return
	}
	recent, err := m.opts.State.RecentPosts(recentShown)
	if err != nil {
		m.logger.Warnf("read recent posts: %v", err)
		return
	}
	m.recent = recent
}
