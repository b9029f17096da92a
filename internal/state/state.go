// Package state persists where the reader was between runs: the list filter,
// the open post and its focused section, and a short reading history.
package state

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"

	dbutil "github.com/llehouerou/clipnotes/internal/db"
)

const saveDebounce = 500 * time.Millisecond

// Manager is the SQLite-backed state store.
type Manager struct {
	db  *sql.DB
	nav *navWriter
}

// Open opens the state database under the XDG data directory.
func Open() (*Manager, error) {
	path, err := xdg.DataFile(filepath.Join("clipnotes", "clipnotes.db"))
	if err != nil {
		return nil, err
	}
	return OpenAt(path)
}

// OpenAt opens the state database at path, creating it when missing.
func OpenAt(path string) (*Manager, error) {
	if path != dbutil.Memory {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := dbutil.Open(path)
	if err != nil {
		return nil, err
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{
		db:  db,
		nav: &navWriter{delay: saveDebounce, save: func(s NavigationState) error { return saveNavigation(db, s) }},
	}, nil
}

// Close writes any navigation still waiting for its debounce, then closes
// the database.
func (m *Manager) Close() error {
	return errors.Join(m.nav.flush(), m.db.Close())
}

func (m *Manager) GetNavigation() (*NavigationState, error) {
	return getNavigation(m.db)
}

// SaveNavigation stores s once no newer navigation arrived for a short
// while. Errors from the delayed write surface through Err.
func (m *Manager) SaveNavigation(s NavigationState) {
	m.nav.put(s)
}

// Err returns the error of the last delayed navigation write, if it failed.
func (m *Manager) Err() error {
	return m.nav.lastErr()
}

func (m *Manager) AddRecent(p RecentPost) error {
	return addRecent(m.db, p)
}

func (m *Manager) RecentPosts(limit int) ([]RecentPost, error) {
	return recentPosts(m.db, limit)
}

// navWriter coalesces navigation saves: only the latest pending state is
// written, delay after the last put.
type navWriter struct {
	delay time.Duration
	save  func(NavigationState) error

	// saveMu is held from taking pending until save returns, so a flush
	// waits for a delayed write already in flight.
	saveMu sync.Mutex

	mu      sync.Mutex
	timer   *time.Timer
	pending *NavigationState
	err     error
}

func (w *navWriter) put(s NavigationState) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending = &s
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, func() {
		err := w.flush()
		w.mu.Lock()
		w.err = err
		w.mu.Unlock()
	})
}

func (w *navWriter) flush() error {
	w.saveMu.Lock()
	defer w.saveMu.Unlock()

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	pending := w.pending
	w.pending = nil
	w.mu.Unlock()

	if pending == nil {
		return nil
	}
	return w.save(*pending)
}

func (w *navWriter) lastErr() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}
