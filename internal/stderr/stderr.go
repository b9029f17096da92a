// Package stderr captures output that native audio backends write straight to
// file descriptor 2. Left alone it would be painted over the TUI.
package stderr

import (
	"bufio"
	"io"
	"strings"
)

// bufferSize bounds the number of lines waiting for the UI.
const bufferSize = 100

// Capture owns a redirected stderr. Lines are delivered on Lines until Stop.
type Capture struct {
	lines chan string
	done  chan struct{}
	stop  func()
}

// Lines returns the captured, trimmed, non-empty lines.
// The channel is closed once the capture has been stopped.
func (c *Capture) Lines() <-chan string {
	return c.lines
}

// Stop restores the original stderr. Safe to call more than once and on a
// nil Capture.
func (c *Capture) Stop() {
	if c == nil || c.stop == nil {
		return
	}
	c.stop()
	c.stop = nil
	<-c.done
}

// forward copies lines from r to out, dropping blank lines and anything that
// would block. It closes out and done when r is exhausted.
func forward(r io.Reader, out chan<- string, done chan<- struct{}) {
	defer close(done)
	defer close(out)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case out <- line:
		default:
		}
	}
}
