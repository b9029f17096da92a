// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"
	ActionBack Action = "back"

	// Post list actions
	ActionOpenPost      Action = "open_post"
	ActionCycleCategory Action = "cycle_category"
	ActionReloadPosts   Action = "reload_posts"

	// Reader navigation
	ActionScrollUp    Action = "scroll_up"
	ActionScrollDown  Action = "scroll_down"
	ActionPageUp      Action = "page_up"
	ActionPageDown    Action = "page_down"
	ActionHalfPageUp  Action = "half_page_up"
	ActionHalfPageDn  Action = "half_page_down"
	ActionJumpStart   Action = "jump_start"
	ActionJumpEnd     Action = "jump_end"
	ActionNextSection Action = "next_section"
	ActionPrevSection Action = "prev_section"

	// Playback actions
	ActionPlayPause       Action = "play_pause"     // full track
	ActionSnippetToggle   Action = "snippet_toggle" // clip of the focused section
	ActionSeekForward     Action = "seek_forward"
	ActionSeekBack        Action = "seek_back"
	ActionSeekForwardLong Action = "seek_forward_long"
	ActionSeekBackLong    Action = "seek_back_long"
)
