// Package handler chains the per-screen key handlers of the app.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/clipnotes/internal/keymap"
)

// Result is the outcome of one handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
	// Moved reports a change of filter, scroll position or focused section,
	// which the caller persists.
	Moved bool
}

// NotHandled passes the action on to the next handler.
var NotHandled = Result{}

// HandledNoCmd stops the chain without a command.
var HandledNoCmd = Result{Handled: true}

// Moved stops the chain and asks for the navigation state to be saved.
var Moved = Result{Handled: true, Moved: true}

// Handled stops the chain with cmd.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler reacts to a resolved action.
type Handler func(keymap.Action) Result

// Chain offers action to each handler in turn and returns the first result
// that handled it. An empty action is never offered.
func Chain(action keymap.Action, handlers ...Handler) Result {
	if action == "" {
		return NotHandled
	}
	for _, h := range handlers {
		if r := h(action); r.Handled {
			return r
		}
	}
	return NotHandled
}
