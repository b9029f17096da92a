package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Play     string
	Pause    string
	Snippet  string
	Active   string
	Inactive string
	Post     string
	Category string
	Audio    string
}

var (
	nerdIcons = Icons{
		Play:     "\uf04b",     // nf-fa-play
		Pause:    "\uf04c",     // nf-fa-pause
		Snippet:  "\U000f0388", // nf-md-music_note
		Active:   "\uf0da",     // nf-fa-caret_right
		Inactive: " ",
		Post:     "\uf15c ", // nf-fa-file_text
		Category: "\uf02b ", // nf-fa-tag
		Audio:    "\uf001 ", // nf-fa-music
	}

	unicodeIcons = Icons{
		Play:     "▶",
		Pause:    "⏸",
		Snippet:  "♪",
		Active:   "▌",
		Inactive: " ",
		Post:     "📝 ",
		Category: "🏷 ",
		Audio:    "🎵 ",
	}

	noneIcons = Icons{
		Play:     ">",
		Pause:    "||",
		Snippet:  "~",
		Active:   "|",
		Inactive: " ",
		Post:     "",
		Category: "#",
		Audio:    "",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// PlayPause returns the glyph for the control: pause while playing, play
// otherwise.
func PlayPause(playing bool) string {
	if playing {
		return current.Pause
	}
	return current.Play
}

// Snippet returns the snippet player glyph.
func Snippet() string {
	return current.Snippet
}

// SectionGutter returns the left gutter for an article section.
func SectionGutter(active bool) string {
	if active {
		return current.Active
	}
	return current.Inactive
}

// FormatPost formats a post title with the appropriate icon.
func FormatPost(title string) string {
	return current.Post + title
}

// FormatCategory formats a category name with the appropriate icon.
func FormatCategory(name string) string {
	if name == "" {
		return ""
	}
	return current.Category + name
}

// FormatAudio formats an audio file name with the appropriate icon.
func FormatAudio(name string) string {
	return current.Audio + name
}
