package keymap

// Binding contexts.
const (
	ContextGlobal   = "global"
	ContextList     = "list"
	ContextReader   = "reader"
	ContextPlayback = "playback"
)

// Binding maps keys to an action within a context.
// Keys use bubbletea's KeyMsg.String() form, so space is " ".
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// Bindings contains every key binding of the application.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionHelp, []string{"?"}, "Toggle help", ContextGlobal},
	{ActionBack, []string{"esc"}, "Back to posts", ContextGlobal},

	// Post list
	{ActionOpenPost, []string{"enter", "l", "right"}, "Open post", ContextList},
	{ActionCycleCategory, []string{"c"}, "Cycle category", ContextList},
	{ActionReloadPosts, []string{"r"}, "Reload posts", ContextList},

	// Reader
	{ActionScrollDown, []string{"j", "down"}, "Scroll down", ContextReader},
	{ActionScrollUp, []string{"k", "up"}, "Scroll up", ContextReader},
	{ActionPageDown, []string{"pgdown", "f"}, "Page down", ContextReader},
	{ActionPageUp, []string{"pgup", "b"}, "Page up", ContextReader},
	{ActionHalfPageDn, []string{"ctrl+d"}, "Half page down", ContextReader},
	{ActionHalfPageUp, []string{"ctrl+u"}, "Half page up", ContextReader},
	{ActionJumpStart, []string{"g", "home"}, "Top", ContextReader},
	{ActionJumpEnd, []string{"G", "end"}, "Bottom", ContextReader},
	{ActionNextSection, []string{"n"}, "Next section", ContextReader},
	{ActionPrevSection, []string{"N"}, "Previous section", ContextReader},
	{ActionSnippetToggle, []string{"enter", "p"}, "Play/pause snippet", ContextReader},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause full track", ContextPlayback},
	{ActionSeekBack, []string{"shift+left"}, "Seek back", ContextPlayback},
	{ActionSeekForward, []string{"shift+right"}, "Seek forward", ContextPlayback},
	{ActionSeekBackLong, []string{"["}, "Seek back (long)", ContextPlayback},
	{ActionSeekForwardLong, []string{"]"}, "Seek forward (long)", ContextPlayback},
}

// DisplayKey returns the label shown in help for a key.
func DisplayKey(key string) string {
	switch key {
	case " ":
		return "space"
	case "shift+left":
		return "S-←"
	case "shift+right":
		return "S-→"
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "left":
		return "←"
	case "right":
		return "→"
	}
	return key
}
