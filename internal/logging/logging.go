package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/adrg/xdg"
)

// Logger defines a standard interface for logging.
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)
}

// SlogLogger is a wrapper around Go's structured logger.
type SlogLogger struct {
	*slog.Logger
}

// ParseLevel maps a config level name to a slog level, info by default.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a JSON logger writing to w.
func New(w io.Writer, level string) *SlogLogger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return &SlogLogger{slog.New(handler)}
}

// Nop returns a logger that discards everything.
func Nop() *SlogLogger {
	return New(io.Discard, "error")
}

// DefaultPath returns the log file under the XDG state directory.
func DefaultPath() (string, error) {
	return xdg.StateFile("clipnotes/clipnotes.log")
}

// Open creates a logger appending to the file at path, or to DefaultPath
// when path is empty. The terminal belongs to the UI, so logs never go to
// stdout. Close the returned file on exit.
func Open(path, level string) (*SlogLogger, io.Closer, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, nil, fmt.Errorf("log path: %w", err)
		}
		path = p
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return New(f, level), f, nil
}

// Debugf logs a message at the debug level.
func (l *SlogLogger) Debugf(format string, v ...any) {
	l.Debug(fmt.Sprintf(format, v...))
}

// Infof logs a message at the info level.
func (l *SlogLogger) Infof(format string, v ...any) {
	l.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a message at the warn level.
func (l *SlogLogger) Warnf(format string, v ...any) {
	l.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs a message at the error level.
func (l *SlogLogger) Errorf(format string, v ...any) {
	l.Error(fmt.Sprintf(format, v...))
}
