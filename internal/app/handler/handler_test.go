package handler

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/clipnotes/internal/keymap"
)

func only(want keymap.Action, r Result, calls *[]keymap.Action) Handler {
	return func(a keymap.Action) Result {
		*calls = append(*calls, a)
		if a == want {
			return r
		}
		return NotHandled
	}
}

func TestChain_FirstHandlerWins(t *testing.T) {
	var calls []keymap.Action
	quit := Handled(tea.Quit)

	r := Chain(keymap.ActionQuit,
		only(keymap.ActionHelp, HandledNoCmd, &calls),
		only(keymap.ActionQuit, quit, &calls),
		only(keymap.ActionQuit, Moved, &calls),
	)

	if !r.Handled || r.Cmd == nil || r.Moved {
		t.Errorf("Chain() = %+v, want the quit result", r)
	}
	if len(calls) != 2 {
		t.Errorf("handlers called %d times, want 2", len(calls))
	}
}

func TestChain_NotHandled(t *testing.T) {
	var calls []keymap.Action
	r := Chain(keymap.ActionNextSection,
		only(keymap.ActionHelp, HandledNoCmd, &calls),
		only(keymap.ActionQuit, HandledNoCmd, &calls),
	)
	if r.Handled || r.Cmd != nil {
		t.Errorf("Chain() = %+v, want NotHandled", r)
	}
	if len(calls) != 2 {
		t.Errorf("handlers called %d times, want 2", len(calls))
	}
}

func TestChain_EmptyAction(t *testing.T) {
	var calls []keymap.Action
	r := Chain("", only("", HandledNoCmd, &calls))
	if r.Handled {
		t.Error("unbound keys must not be handled")
	}
	if len(calls) != 0 {
		t.Error("no handler should be offered an empty action")
	}
}

func TestResults(t *testing.T) {
	tests := []struct {
		name    string
		r       Result
		handled bool
		moved   bool
		hasCmd  bool
	}{
		{"not handled", NotHandled, false, false, false},
		{"handled no cmd", HandledNoCmd, true, false, false},
		{"moved", Moved, true, true, false},
		{"handled nil", Handled(nil), true, false, false},
		{"handled cmd", Handled(func() tea.Msg { return nil }), true, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.r.Handled != tt.handled || tt.r.Moved != tt.moved || (tt.r.Cmd != nil) != tt.hasCmd {
				t.Errorf("got %+v", tt.r)
			}
		})
	}
}
