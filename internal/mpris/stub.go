//go:build !linux

package mpris

import (
	"time"

	"github.com/llehouerou/clipnotes/internal/player"
)

// Source is the read side of the full-track player.
type Source interface {
	State() player.State
	Position() time.Duration
	Duration() time.Duration
	TrackInfo() *player.TrackInfo
}

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ Source) (*Adapter, error) {
	return &Adapter{}, nil
}

// Commands returns nil; receiving from it blocks forever.
func (a *Adapter) Commands() <-chan Command {
	return nil
}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
