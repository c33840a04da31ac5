package cmd

import (
	"context"
	"strings"
)

// Dispatcher resolves which command an incoming message invokes. A message
// participates only when its content starts with the configured prefix and
// the word right after it names a registered command; everything else is
// ignored without error.
type Dispatcher struct {
	registry *Registry
	prefix   string
}

// NewDispatcher wires a registry to a command prefix.
func NewDispatcher(registry *Registry, prefix string) *Dispatcher {
	return &Dispatcher{registry: registry, prefix: prefix}
}

// Prefix returns the configured command prefix.
func (d *Dispatcher) Prefix() string { return d.prefix }

// Match returns the command the message would invoke, if any.
func (d *Dispatcher) Match(msg Message) (*Command, bool) {
	if d.prefix == "" || !strings.HasPrefix(msg.Content, d.prefix) {
		return nil, false
	}
	keyword, _, _ := strings.Cut(msg.Content[len(d.prefix):], " ")
	return d.registry.Lookup(keyword)
}

// Dispatch routes one message. Non-command text and unknown keywords are
// no-ops; a matched command is invoked with data attached to its Invocation.
// Each message is independent, so callers may dispatch concurrently.
func (d *Dispatcher) Dispatch(ctx context.Context, msg Message, data any) error {
	c, ok := d.Match(msg)
	if !ok {
		return nil
	}
	return c.Invoke(ctx, msg, d.prefix, data)
}
