// Package errmsg words failures for the status line and the terminal.
package errmsg

import "fmt"

// Op names what the user was doing when something failed.
type Op string

const (
	OpPostsLoad Op = "load posts"
	OpPostOpen  Op = "open post"

	OpAudioLoad     Op = "load audio"
	OpPlaybackStart Op = "start playback"
	OpSnippetStart  Op = "play snippet"

	OpStateOpen Op = "open state database"
	OpStateSave Op = "save reading position"

	OpMPRISStart Op = "start media controls"

	OpConfigLoad Op = "load configuration"
	OpLogOpen    Op = "open log file"
	OpInitialize Op = "initialize application"
)

// Format renders "Failed to <op>: <err>", or "" when err is nil.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith is Format naming the object of the operation, typically a post
// title.
func FormatWith(op Op, subject string, err error) string {
	if err == nil {
		return ""
	}
	if subject == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, subject, err)
}

// Error is a failure tagged with its operation. Its message is Format's.
type Error struct {
	Op  Op
	Err error
}

func (e *Error) Error() string { return Format(e.Op, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// Wrap tags err with op. It returns nil when err is nil.
func Wrap(op Op, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}
