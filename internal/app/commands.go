package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/clipnotes/internal/mpris"
	"github.com/llehouerou/clipnotes/internal/player"
	"github.com/llehouerou/clipnotes/internal/post"
	"github.com/llehouerou/clipnotes/internal/posts"
)

// LeaveDuration is how long the leaving fade lasts before a screen swap.
const LeaveDuration = 250 * time.Millisecond

// LoadPostsCmd reads every post source.
func LoadPostsCmd(sources []string) tea.Cmd {
	return func() tea.Msg {
		entries, err := posts.LoadAll(context.Background(), sources)
		return PostsLoadedMsg{Entries: entries, Err: err}
	}
}

// OpenPostCmd locates and parses the document of e.
func OpenPostCmd(e posts.Entry) tea.Cmd {
	return func() tea.Msg {
		path, err := e.Path()
		if err != nil {
			return PostOpenedMsg{Entry: e, Err: err}
		}
		doc, err := post.Load(path)
		return PostOpenedMsg{Entry: e, Path: path, Doc: doc, Err: err}
	}
}

// LeaveCmd returns a command that ends the transition after LeaveDuration.
func LeaveCmd(version int) tea.Cmd {
	return tea.Tick(LeaveDuration, func(_ time.Time) tea.Msg {
		return LeaveDoneMsg{Version: version}
	})
}

// WatchSurface waits for the next surface event.
func WatchSurface(id surfaceID, sub *player.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.Events:
			return SurfaceEventMsg{Surface: id, Event: e}
		case <-sub.Done:
			return SurfaceClosedMsg{Surface: id}
		}
	}
}

// WatchMPRIS waits for the next desktop control request.
func WatchMPRIS(ch <-chan mpris.Command) tea.Cmd {
	return waitForChannel(ch, func(c mpris.Command, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return MPRISCommandMsg(c)
	})
}

// WatchStderr waits for stderr output from C libraries.
func WatchStderr(ch <-chan string) tea.Cmd {
	return waitForChannel(ch, func(line string, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return StderrMsg{Line: line}
	})
}

// waitForChannel creates a command that waits for a value from a channel and converts it to a message.
// onResult receives the value and a boolean indicating if the channel is still open (false means channel closed).
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}
