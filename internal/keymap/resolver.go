package keymap

// Resolver maps key strings to actions.
//
// A key may mean different things in different contexts ("enter" opens a
// post in the list but toggles the snippet in the reader), so lookups are
// scoped to the contexts that are currently active.
type Resolver struct {
	bindings  []Binding
	byContext map[string]map[string]Action // context -> key -> action
}

// NewResolver creates a resolver over bindings. A key repeated within one
// context resolves to its last binding.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings:  bindings,
		byContext: make(map[string]map[string]Action),
	}
	for _, b := range bindings {
		keys := r.byContext[b.Context]
		if keys == nil {
			keys = make(map[string]Action)
			r.byContext[b.Context] = keys
		}
		for _, k := range b.Keys {
			keys[k] = b.Action
		}
	}
	return r
}

// Resolve returns the action bound to key in the first of contexts that
// binds it, or "" when none does.
func (r *Resolver) Resolve(key string, contexts ...string) Action {
	for _, c := range contexts {
		if action, ok := r.byContext[c][key]; ok {
			return action
		}
	}
	return ""
}

// InContext returns the bindings of one context in declaration order.
func (r *Resolver) InContext(context string) []Binding {
	var out []Binding
	for _, b := range r.bindings {
		if b.Context == context {
			out = append(out, b)
		}
	}
	return out
}
