package helpbindings

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/llehouerou/clipnotes/internal/keymap"
)

// shortActions are the actions listed in the one-line footer.
var shortActions = []keymap.Action{
	keymap.ActionOpenPost,
	keymap.ActionCycleCategory,
	keymap.ActionPlayPause,
	keymap.ActionSnippetToggle,
	keymap.ActionNextSection,
	keymap.ActionBack,
	keymap.ActionHelp,
	keymap.ActionQuit,
}

// KeyMap adapts the bindings of a set of contexts to bubbles/help.
type KeyMap struct {
	bindings []keymap.Binding
}

var _ help.KeyMap = KeyMap{}

// NewKeyMap returns the key map for the given contexts, in display order.
func NewKeyMap(keys *keymap.Resolver, contexts ...string) KeyMap {
	return KeyMap{bindings: collect(keys, contexts)}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, action := range shortActions {
		for _, b := range k.bindings {
			if b.Action == action {
				out = append(out, toKey(b))
				break
			}
		}
	}
	return out
}

// FullHelp implements help.KeyMap with one column per context.
func (k KeyMap) FullHelp() [][]key.Binding {
	var cols [][]key.Binding
	ctx := ""
	for _, b := range k.bindings {
		if b.Context != ctx || len(cols) == 0 {
			cols = append(cols, nil)
			ctx = b.Context
		}
		cols[len(cols)-1] = append(cols[len(cols)-1], toKey(b))
	}
	return cols
}

func toKey(b keymap.Binding) key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(displayKeys(b.Keys), strings.ToLower(b.Description)),
	)
}

func displayKeys(keys []string) string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = keymap.DisplayKey(k)
	}
	return strings.Join(labels, "/")
}
