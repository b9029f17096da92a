package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/clipnotes/internal/app/handler"
	"github.com/llehouerou/clipnotes/internal/errmsg"
	"github.com/llehouerou/clipnotes/internal/keymap"
	"github.com/llehouerou/clipnotes/internal/ui/layout"
)

// keyString returns the binding form of a key press.
func keyString(msg tea.KeyMsg) string {
	if msg.Type == tea.KeySpace {
		return " "
	}
	return msg.String()
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		var cmd tea.Cmd
		m.helpPage, cmd = m.helpPage.Update(msg)
		return m, cmd
	}

	action := m.keys.Resolve(keyString(msg), m.contexts()...)

	r := handler.Chain(action,
		m.handleGlobalKeys,
		m.handleListKeys,
		m.handleReaderKeys,
		m.handlePlaybackKeys,
	)
	if r.Moved {
		m.saveNavigation()
	}
	if r.Handled {
		return m, r.Cmd
	}

	if m.screen == screenList && !m.leaving {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleGlobalKeys handles quit, help and back.
func (m *Model) handleGlobalKeys(action keymap.Action) handler.Result {
	switch action { //nolint:exhaustive // only handling global actions
	case keymap.ActionQuit:
		return handler.Handled(m.quit())
	case keymap.ActionHelp:
		m.showHelp = true
		m.helpPage.SetContexts(m.contexts())
		m.helpPage.SetSize(m.width, m.height)
		return handler.HandledNoCmd
	case keymap.ActionBack:
		if m.screen != screenReader || m.leaving {
			return handler.HandledNoCmd
		}
		m.pendingOpen = nil
		m.pendingBack = true
		return handler.Handled(m.startLeaving())
	}
	return handler.NotHandled
}

// handleListKeys handles the post list actions.
func (m *Model) handleListKeys(action keymap.Action) handler.Result {
	if m.screen != screenList {
		return handler.NotHandled
	}
	switch action { //nolint:exhaustive // only handling list actions
	case keymap.ActionOpenPost:
		if m.leaving {
			return handler.HandledNoCmd
		}
		return handler.Handled(m.openSelected())
	case keymap.ActionCycleCategory:
		m.list.CycleCategory()
		return handler.Moved
	case keymap.ActionReloadPosts:
		m.setStatus("Reloading posts…")
		return handler.Handled(LoadPostsCmd(m.opts.Sources))
	}
	return handler.NotHandled
}

// handleReaderKeys handles scrolling, section jumps and the snippet toggle.
func (m *Model) handleReaderKeys(action keymap.Action) handler.Result {
	if m.screen != screenReader || m.reader == nil {
		return handler.NotHandled
	}
	r := m.reader
	height := r.viewport.Height

	var err error
	switch action { //nolint:exhaustive // only handling reader actions
	case keymap.ActionScrollDown:
		err = r.scrollBy(1)
	case keymap.ActionScrollUp:
		err = r.scrollBy(-1)
	case keymap.ActionPageDown:
		err = r.scrollBy(height)
	case keymap.ActionPageUp:
		err = r.scrollBy(-height)
	case keymap.ActionHalfPageDn:
		err = r.scrollBy(max(height/2, 1))
	case keymap.ActionHalfPageUp:
		err = r.scrollBy(-max(height/2, 1))
	case keymap.ActionJumpStart:
		err = r.scrollTo(0)
	case keymap.ActionJumpEnd:
		err = r.scrollToBottom()
	case keymap.ActionNextSection:
		err = r.jumpToSection(r.section() + 1)
	case keymap.ActionPrevSection:
		err = r.jumpToSection(r.section() - 1)
	case keymap.ActionSnippetToggle:
		if err := r.snippet.TogglePlay(); err != nil {
			m.logger.Warnf("snippet toggle: %v", err)
			m.setError(errmsg.Format(errmsg.OpSnippetStart, err))
		}
		return handler.HandledNoCmd
	default:
		return handler.NotHandled
	}

	if err != nil {
		m.logger.Warnf("focus change: %v", err)
	}
	return handler.Moved
}

// handlePlaybackKeys handles the full-track controls.
func (m *Model) handlePlaybackKeys(action keymap.Action) handler.Result {
	if m.screen != screenReader || m.reader == nil {
		return handler.NotHandled
	}
	pb := m.opts.Playback
	switch action { //nolint:exhaustive // only handling playback actions
	case keymap.ActionPlayPause:
		if err := m.reader.full.Toggle(); err != nil {
			m.logger.Warnf("full track toggle: %v", err)
			m.setError(errmsg.Format(errmsg.OpPlaybackStart, err))
		}
	case keymap.ActionSeekBack:
		m.reader.seek(-pb.SeekStep())
	case keymap.ActionSeekForward:
		m.reader.seek(pb.SeekStep())
	case keymap.ActionSeekBackLong:
		m.reader.seek(-pb.LongSeekStep())
	case keymap.ActionSeekForwardLong:
		m.reader.seek(pb.LongSeekStep())
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || m.leaving {
		return m, nil
	}
	if m.screen == screenList {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	if m.reader == nil {
		return m, nil
	}

	var err error
	switch msg.Button { //nolint:exhaustive // wheel and left click only
	case tea.MouseButtonWheelDown:
		err = m.reader.scrollBy(3)
	case tea.MouseButtonWheelUp:
		err = m.reader.scrollBy(-3)
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress && m.reader.rows.OnFullBar(msg.Y, layout.ReaderOpts()) {
			m.reader.scrub(msg.X)
		}
		return m, nil
	default:
		return m, nil
	}
	if err != nil {
		m.logger.Warnf("focus change: %v", err)
	}
	m.saveNavigation()
	return m, nil
}
