package cmd

import "sort"

// Registry maps every declared command name and alias to its command. Build
// one explicitly per bot instance; there is no package-level default, so
// independent bots can coexist in one process. A registry is meant to be
// populated during startup and read-only once dispatch begins; late
// registration must be serialized against lookups by the caller.
type Registry struct {
	commands map[string]*Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]*Command)}
}

// Register adds commands. Every name and alias across the whole batch must
// be unused; on any collision nothing is registered and a
// *DuplicateNameError identifies the offending name.
func (r *Registry) Register(cmds ...*Command) error {
	seen := make(map[string]struct{})
	for _, c := range cmds {
		for _, n := range c.Names() {
			if _, ok := r.commands[n]; ok {
				return &DuplicateNameError{Name: n}
			}
			if _, ok := seen[n]; ok {
				return &DuplicateNameError{Name: n}
			}
			seen[n] = struct{}{}
		}
	}
	for _, c := range cmds {
		for _, n := range c.Names() {
			r.commands[n] = c
		}
	}
	return nil
}

// Load registers every command of an extension as one atomic batch.
func (r *Registry) Load(ext *Extension) error {
	return r.Register(ext.Commands()...)
}

// Lookup returns the command registered under a name or alias.
func (r *Registry) Lookup(name string) (*Command, bool) {
	c, ok := r.commands[name]
	return c, ok
}

// All returns each registered command once, sorted by canonical name.
func (r *Registry) All() []*Command {
	seen := make(map[*Command]struct{}, len(r.commands))
	list := make([]*Command, 0, len(r.commands))
	for _, c := range r.commands {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
	return list
}
