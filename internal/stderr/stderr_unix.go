//go:build !windows

package stderr

import (
	"fmt"
	"os"
	"sync"
	"syscall"
)

var (
	origMu sync.Mutex
	origFD = -1
)

// Start redirects fd 2 into a pipe. Call it early in main, before the audio
// backend is initialized. On error stderr is left untouched.
func Start() (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("create pipe: %w", err)
	}

	saved, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return nil, fmt.Errorf("dup stderr: %w", err)
	}

	if err := dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(saved)
		r.Close()
		w.Close()
		return nil, fmt.Errorf("redirect stderr: %w", err)
	}

	origMu.Lock()
	origFD = saved
	origMu.Unlock()

	c := &Capture{
		lines: make(chan string, bufferSize),
		done:  make(chan struct{}),
	}
	c.stop = func() {
		origMu.Lock()
		_ = dup2(saved, int(os.Stderr.Fd()))
		_ = syscall.Close(saved)
		origFD = -1
		origMu.Unlock()

		// fd 2 no longer refers to the pipe, so closing w ends the reader
		w.Close()
	}
	go func() {
		forward(r, c.lines, c.done)
		r.Close()
	}()
	return c, nil
}

// WriteOriginal writes to the terminal's stderr even while capturing.
func WriteOriginal(msg string) {
	origMu.Lock()
	defer origMu.Unlock()

	if origFD >= 0 {
		_, _ = syscall.Write(origFD, []byte(msg))
		return
	}
	_, _ = os.Stderr.WriteString(msg)
}
