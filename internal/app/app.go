package app

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/clipnotes/internal/config"
	"github.com/llehouerou/clipnotes/internal/keymap"
	"github.com/llehouerou/clipnotes/internal/logging"
	"github.com/llehouerou/clipnotes/internal/mpris"
	"github.com/llehouerou/clipnotes/internal/player"
	"github.com/llehouerou/clipnotes/internal/posts"
	"github.com/llehouerou/clipnotes/internal/state"
	"github.com/llehouerou/clipnotes/internal/ui/helpbindings"
	"github.com/llehouerou/clipnotes/internal/ui/postlist"
	"github.com/llehouerou/clipnotes/internal/ui/styles"
	"github.com/llehouerou/clipnotes/internal/visibility"
)

type screen int

const (
	screenList screen = iota
	screenReader
)

// Options holds the collaborators of the model. Full and Snippet must be two
// distinct surfaces; State, MPRIS and Stderr may be nil. Nil Bindings means
// the defaults.
type Options struct {
	Sources  []string
	Bindings []keymap.Binding
	Query    posts.Query
	Band     visibility.Band
	Playback config.PlaybackConfig
	Full     player.Interface
	Snippet  player.Interface
	State    state.Interface
	Logger   logging.Logger
	MPRIS    <-chan mpris.Command
	Stderr   <-chan string
}

// Model is the application state.
type Model struct {
	opts     Options
	keys     *keymap.Resolver
	fullSub  *player.Subscription
	snipSub  *player.Subscription
	logger   logging.Logger
	screen   screen
	list     postlist.Model
	reader   *reader
	help     help.Model
	helpPage helpbindings.Model
	showHelp bool

	// leaving is set during the fade that precedes a screen swap.
	leaving      bool
	leaveVersion int
	pendingOpen  *PostOpenedMsg
	pendingBack  bool

	// restore is the saved position to reopen once posts are loaded.
	restore *state.NavigationState
	reopen  *state.NavigationState
	recent  []state.RecentPost

	status    string
	statusErr bool
	width     int
	height    int
}

// New creates the model and subscribes to both surfaces.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = styles.T().S().Muted
	h.Styles.ShortDesc = styles.T().S().Subtle
	h.Styles.ShortSeparator = styles.T().S().Subtle

	bindings := opts.Bindings
	if bindings == nil {
		bindings = keymap.Bindings
	}
	keys := keymap.NewResolver(bindings)

	m := Model{
		opts:     opts,
		keys:     keys,
		fullSub:  opts.Full.Subscribe(),
		snipSub:  opts.Snippet.Subscribe(),
		logger:   logger,
		help:     h,
		helpPage: helpbindings.New(keys),
	}

	if opts.State != nil {
		nav, err := opts.State.GetNavigation()
		if err != nil {
			logger.Warnf("read navigation state: %v", err)
		}
		if nav != nil {
			opts.Query.Category = nav.Category
			m.restore = nav
		}
	}
	m.list = postlist.New(opts.Query)
	m.refreshRecent()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadPostsCmd(m.opts.Sources),
		WatchSurface(surfaceFull, m.fullSub),
		WatchSurface(surfaceSnippet, m.snipSub),
		WatchMPRIS(m.opts.MPRIS),
		WatchStderr(m.opts.Stderr),
	)
}

// contexts returns the key binding contexts of the current screen, most
// specific first.
func (m Model) contexts() []string {
	if m.screen == screenReader {
		return []string{keymap.ContextReader, keymap.ContextPlayback, keymap.ContextGlobal}
	}
	return []string{keymap.ContextList, keymap.ContextGlobal}
}

func (m *Model) setStatus(s string) {
	m.status, m.statusErr = s, false
}

func (m *Model) setError(s string) {
	m.status, m.statusErr = s, true
}
