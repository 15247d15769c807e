package keymap

import "github.com/samber/lo"

// Resolver maps key strings to actions and back.
type Resolver struct {
	actions map[string]Action
	keys    map[Action][]string
	help    map[Action]string
}

// NewResolver indexes bindings. A key bound twice resolves to the later
// binding; an action keeps the description of its first binding.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action),
		keys:    make(map[Action][]string),
		help:    make(map[Action]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.actions[key] = b.Action
		}
		r.keys[b.Action] = lo.Uniq(append(r.keys[b.Action], b.Keys...))
		if _, ok := r.help[b.Action]; !ok {
			r.help[b.Action] = b.Description
		}
	}
	return r
}

// Resolve returns the action bound to key, or "" when unbound.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor returns the keys bound to action in binding order.
func (r *Resolver) KeysFor(action Action) []string {
	return append([]string(nil), r.keys[action]...)
}

// Describe returns the help text of action.
func (r *Resolver) Describe(action Action) string {
	return r.help[action]
}
