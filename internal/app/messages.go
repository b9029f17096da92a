// Package app contains the bubbletea model of the reader.
package app

import (
	"github.com/llehouerou/clipnotes/internal/mpris"
	"github.com/llehouerou/clipnotes/internal/player"
	"github.com/llehouerou/clipnotes/internal/post"
	"github.com/llehouerou/clipnotes/internal/posts"
)

// surfaceID names one of the two playback surfaces.
type surfaceID int

const (
	surfaceFull surfaceID = iota
	surfaceSnippet
)

func (s surfaceID) String() string {
	if s == surfaceSnippet {
		return "snippet"
	}
	return "full"
}

// PostsLoadedMsg carries the merged post index.
type PostsLoadedMsg struct {
	Entries []posts.Entry
	Err     error
}

// PostOpenedMsg carries a parsed post document.
type PostOpenedMsg struct {
	Entry posts.Entry
	Path  string
	Doc   *post.Document
	Err   error
}

// SurfaceEventMsg wraps one notification of a playback surface.
type SurfaceEventMsg struct {
	Surface surfaceID
	Event   player.Event
}

// SurfaceClosedMsg is sent when a surface subscription ends.
type SurfaceClosedMsg struct {
	Surface surfaceID
}

// MPRISCommandMsg is a desktop media control request.
type MPRISCommandMsg mpris.Command

// StderrMsg is sent when stderr output is captured from C libraries.
type StderrMsg struct {
	Line string
}

// LeaveDoneMsg ends a screen transition. Stale versions are ignored.
type LeaveDoneMsg struct {
	Version int
}
