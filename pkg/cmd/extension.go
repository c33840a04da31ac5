package cmd

// Extension is a named batch of commands, the unit a bot loads as a group to
// split its codebase across packages. Loading an extension is nothing more
// than registering its commands atomically (Registry.Load).
type Extension struct {
	name        string
	description string
	commands    []*Command
	names       map[string]struct{}
}

// NewExtension returns an empty extension.
func NewExtension(name, description string) *Extension {
	return &Extension{
		name:        name,
		description: description,
		names:       make(map[string]struct{}),
	}
}

// Name returns the extension's name.
func (e *Extension) Name() string { return e.name }

// Description returns the extension's description.
func (e *Extension) Description() string { return e.description }

// Add appends commands, enforcing keyword uniqueness within the extension.
// On a collision nothing is added and a *DuplicateNameError is returned.
func (e *Extension) Add(cmds ...*Command) error {
	seen := make(map[string]struct{})
	for _, c := range cmds {
		for _, n := range c.Names() {
			if _, ok := e.names[n]; ok {
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
			e.names[n] = struct{}{}
		}
		e.commands = append(e.commands, c)
	}
	return nil
}

// MustAdd is Add for static command tables; it panics on a duplicate name,
// aborting startup.
func (e *Extension) MustAdd(cmds ...*Command) {
	if err := e.Add(cmds...); err != nil {
		panic(err)
	}
}

// Lookup returns the extension's command for an invocation keyword.
func (e *Extension) Lookup(name string) (*Command, bool) {
	if _, ok := e.names[name]; !ok {
		return nil, false
	}
	for _, c := range e.commands {
		for _, n := range c.Names() {
			if n == name {
				return c, true
			}
		}
	}
	return nil, false
}

// Commands returns the extension's commands in insertion order.
func (e *Extension) Commands() []*Command {
	return append([]*Command(nil), e.commands...)
}
