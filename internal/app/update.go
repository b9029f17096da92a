package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/clipnotes/internal/errmsg"
	"github.com/llehouerou/clipnotes/internal/mpris"
	"github.com/llehouerou/clipnotes/internal/player"
	"github.com/llehouerou/clipnotes/internal/posts"
	"github.com/llehouerou/clipnotes/internal/ui/helpbindings"
	"github.com/llehouerou/clipnotes/internal/ui/layout"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case PostsLoadedMsg:
		return m.handlePostsLoaded(msg)

	case PostOpenedMsg:
		return m.handlePostOpened(msg)

	case LeaveDoneMsg:
		return m.handleLeaveDone(msg)

	case SurfaceEventMsg:
		m.handleSurfaceEvent(msg)
		sub := m.fullSub
		if msg.Surface == surfaceSnippet {
			sub = m.snipSub
		}
		return m, WatchSurface(msg.Surface, sub)

	case SurfaceClosedMsg:
		m.logger.Debugf("%s surface closed", msg.Surface)
		return m, nil

	case MPRISCommandMsg:
		m.handleMPRIS(mpris.Command(msg))
		return m, WatchMPRIS(m.opts.MPRIS)

	case StderrMsg:
		m.logger.Warnf("stderr: %s", msg.Line)
		m.setError(msg.Line)
		return m, WatchStderr(m.opts.Stderr)

	case helpbindings.CloseMsg:
		m.showHelp = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	rows := layout.Compute(height, layout.ListOpts())
	m.list.SetSize(width, rows.ContentHeight)
	m.help.Width = width
	m.helpPage.SetSize(width, height)
	if m.reader != nil {
		m.reader.resize(width, height)
		m.observe()
	}
}

func (m Model) handlePostsLoaded(msg PostsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Errorf("load posts: %v", msg.Err)
		m.list.SetError(msg.Err)
		m.setError(errmsg.Format(errmsg.OpPostsLoad, msg.Err))
		return m, nil
	}

	m.list.SetEntries(msg.Entries)
	m.logger.Infof("loaded %d posts from %d sources", len(msg.Entries), len(m.opts.Sources))
	if m.reader != nil {
		m.list.SetOpen(m.reader.entry)
	}

	nav := m.restore
	m.restore = nil
	if nav == nil || nav.PostPath == "" {
		return m, nil
	}
	for _, e := range msg.Entries {
		if p, err := e.Path(); err == nil && p == nav.PostPath {
			m.list.SelectSlug(e.Slug)
			m.reopen = nav
			return m, OpenPostCmd(e)
		}
	}
	return m, nil
}

// openSelected starts the fade and loads the selected post concurrently.
func (m *Model) openSelected() tea.Cmd {
	e, ok := m.list.Selected()
	if !ok {
		return nil
	}
	m.pendingOpen = nil
	m.pendingBack = false
	return tea.Batch(m.startLeaving(), OpenPostCmd(e))
}

func (m Model) handlePostOpened(msg PostOpenedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Errorf("open post %s: %v", msg.Entry.Slug, msg.Err)
		m.setError(errmsg.FormatWith(errmsg.OpPostOpen, entryTitle(msg.Entry), msg.Err))
		m.leaving = false
		return m, nil
	}
	if m.leaving {
		m.pendingOpen = &msg
		return m, nil
	}
	m.showReader(msg)
	return m, nil
}

func (m Model) handleLeaveDone(msg LeaveDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Version != m.leaveVersion || !m.leaving {
		return m, nil
	}
	m.leaving = false

	switch {
	case m.pendingBack:
		m.pendingBack = false
		m.showList()
	case m.pendingOpen != nil:
		open := *m.pendingOpen
		m.pendingOpen = nil
		m.showReader(open)
	}
	return m, nil
}

func (m *Model) startLeaving() tea.Cmd {
	m.leaving = true
	m.leaveVersion++
	return LeaveCmd(m.leaveVersion)
}

// showReader binds the surfaces to the post's audio and swaps screens.
func (m *Model) showReader(msg PostOpenedMsg) {
	m.opts.Full.Pause()
	m.opts.Snippet.Pause()

	m.reader = newReader(msg, m.opts.Full, m.opts.Snippet, m.opts.Band)
	m.screen = screenReader
	m.status = ""
	m.list.SetOpen(msg.Entry)

	if err := m.opts.Full.Load(msg.Doc.Audio); err != nil {
		m.logger.Errorf("load audio %s: %v", msg.Doc.Audio, err)
		m.setError(errmsg.Format(errmsg.OpAudioLoad, err))
	}

	m.reader.resize(m.width, m.height)
	if err := m.reader.start(); err != nil {
		m.logger.Warnf("select clip: %v", err)
	}
	if nav := m.reopen; nav != nil && nav.PostPath == msg.Path && nav.Section > 0 {
		if err := m.reader.jumpToSection(nav.Section); err != nil {
			m.logger.Warnf("select clip: %v", err)
		}
	}
	m.reopen = nil
	m.logger.Infof("opened %s (%d sections)", msg.Path, len(msg.Doc.Sections))

	m.addRecent(msg)
	m.saveNavigation()
}

// showList leaves the reader. Both players stop with the page.
func (m *Model) showList() {
	m.opts.Full.Pause()
	m.opts.Snippet.Pause()
	m.screen = screenList
	m.saveNavigation()
}

// observe runs a visibility observation and persists the new focus.
func (m *Model) observe() {
	if m.reader == nil {
		return
	}
	before := m.reader.section()
	if err := m.reader.observe(); err != nil {
		m.logger.Warnf("focus change: %v", err)
	}
	if m.reader.section() != before {
		m.saveNavigation()
	}
}

func (m *Model) handleSurfaceEvent(msg SurfaceEventMsg) {
	if e, ok := msg.Event.(player.ErrorEvent); ok {
		m.logger.Errorf("%s surface %s %s: %v", msg.Surface, e.Op, e.Path, e.Err)
		if e.Op == "load" && msg.Surface == surfaceFull {
			m.setError(errmsg.Format(errmsg.OpAudioLoad, e.Err))
		}
	}
	if m.reader != nil {
		m.reader.handleEvent(msg.Surface, msg.Event)
	}
}

func (m *Model) handleMPRIS(c mpris.Command) {
	if m.opts.Full.Source() == "" {
		return
	}
	if err := mpris.Apply(c, m.opts.Full); err != nil {
		m.logger.Warnf("mpris %s: %v", c.Kind, err)
		if !errors.Is(err, player.ErrNotLoaded) {
			m.setError(errmsg.Format(errmsg.OpPlaybackStart, err))
		}
	}
}

// Quit releases what the model owns before quitting.
func (m Model) quit() tea.Cmd {
	m.opts.Full.Pause()
	m.opts.Snippet.Pause()
	m.saveNavigation()
	return tea.Quit
}

func (m Model) category() string {
	return m.list.Category()
}

func entryTitle(e posts.Entry) string {
	if e.Title != "" {
		return e.Title
	}
	return e.Slug
}
