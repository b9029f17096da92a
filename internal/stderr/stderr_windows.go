//go:build windows

package stderr

import "os"

// Start returns a capture that never yields lines. The Windows audio backend
// does not write to the console.
func Start() (*Capture, error) {
	c := &Capture{
		lines: make(chan string),
		done:  make(chan struct{}),
	}
	c.stop = func() {
		close(c.lines)
		close(c.done)
	}
	return c, nil
}

// WriteOriginal writes to stderr.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}
