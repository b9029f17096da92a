package keymap

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Override returns a copy of bindings in which every action named in keys
// is bound to those keys instead, in each context it appears in. Keys are
// written as bubbletea names them; "space" stands for " ".
func Override(bindings []Binding, keys map[string][]string) ([]Binding, error) {
	known := make(map[Action]bool, len(bindings))
	for _, b := range bindings {
		known[b.Action] = true
	}
	for _, name := range slices.Sorted(maps.Keys(keys)) {
		if !known[Action(name)] {
			return nil, fmt.Errorf("keys: unknown action %q", name)
		}
		if len(keys[name]) == 0 {
			return nil, fmt.Errorf("keys: %s has no keys", name)
		}
	}

	out := make([]Binding, len(bindings))
	for i, b := range bindings {
		if ks, ok := keys[string(b.Action)]; ok {
			b.Keys = normalizeKeys(ks)
		}
		out[i] = b
	}

	seen := make(map[[2]string]Action)
	for _, b := range out {
		for _, k := range b.Keys {
			id := [2]string{b.Context, k}
			if prev, ok := seen[id]; ok && prev != b.Action {
				return nil, fmt.Errorf("keys: %s is bound to both %s and %s in %s",
					DisplayKey(k), prev, b.Action, b.Context)
			}
			seen[id] = b.Action
		}
	}
	return out, nil
}

func normalizeKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if strings.TrimSpace(k) == "space" {
			k = " "
		}
		if k != " " {
			k = strings.TrimSpace(k)
		}
		if k != "" && !slices.Contains(out, k) {
			out = append(out, k)
		}
	}
	return out
}
