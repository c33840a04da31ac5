package cmd

import (
	"context"
	"strings"
)

// Command binds a named argument grammar to a handler. Its structure is
// immutable after construction except for the error-handler slot, which can
// be set once.
type Command struct {
	name        string
	aliases     []string
	description string
	params      []*Param
	handler     Handler
	errHandler  ErrorHandler
}

// Option adjusts a Command under construction.
type Option func(*Command)

// Aliases adds alternative invocation keywords.
func Aliases(names ...string) Option {
	return func(c *Command) { c.aliases = append(c.aliases, names...) }
}

// Description sets the human-readable description shown by help output.
func Description(text string) Option {
	return func(c *Command) { c.description = text }
}

// Params declares the command's parameters. Declaration order decides both
// positional assignment and the order help output lists them in.
func Params(params ...*Param) Option {
	return func(c *Command) { c.params = append(c.params, params...) }
}

// OnError sets the command's error handler at construction time.
func OnError(h ErrorHandler) Option {
	return func(c *Command) { c.errHandler = h }
}

// New builds a command. The handler must not be nil.
func New(name string, handler Handler, opts ...Option) *Command {
	c := &Command{name: name, handler: handler}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the canonical name.
func (c *Command) Name() string { return c.name }

// Description returns the human-readable description.
func (c *Command) Description() string { return c.description }

// Names returns the canonical name followed by the aliases: the command's
// full invocation keyword set.
func (c *Command) Names() []string {
	return append([]string{c.name}, c.aliases...)
}

// SetErrorHandler sets the per-command failure handler. Only the first
// non-nil handler takes effect; later calls are ignored.
func (c *Command) SetErrorHandler(h ErrorHandler) {
	if c.errHandler == nil {
		c.errHandler = h
	}
}

// Invoke parses msg.Content and runs the handler with the bound argument
// set. prefix is the configured command prefix used to strip the invocation
// keyword; data is attached to the Invocation untouched. Failures during
// binding or handler execution go to the command's error handler when one is
// set, otherwise they are returned to the caller.
func (c *Command) Invoke(ctx context.Context, msg Message, prefix string, data any) error {
	inv := &Invocation{Message: msg, Data: data}
	err := c.run(ctx, inv, prefix)
	if err != nil && c.errHandler != nil {
		c.errHandler(ctx, inv, err)
		return nil
	}
	return err
}

func (c *Command) run(ctx context.Context, inv *Invocation, prefix string) error {
	// Drop the prefix and the matched keyword from the front of the text.
	rest := strings.TrimPrefix(inv.Message.Content, prefix)
	if i := strings.IndexByte(rest, ' '); i >= 0 {
		rest = rest[i+1:]
	} else {
		rest = ""
	}

	args, flags := Tokenize(rest)

	var positional, flagged []*Param
	for _, p := range c.params {
		if p.flag {
			flagged = append(flagged, p)
		} else {
			positional = append(positional, p)
		}
	}

	bound := make(Args, len(c.params))
	for i, p := range positional {
		var raw []string
		if i < len(args) {
			raw = args[i : i+1]
		}
		v, err := p.bind(raw)
		if err != nil {
			return err
		}
		bound[p.name] = v
	}
	for _, p := range flagged {
		raw, present := flags[p.name]
		if p.short != 0 {
			if sv, ok := flags[string(p.short)]; ok {
				// Merge long-name values first, then short-alias values.
				raw = append(raw[:len(raw):len(raw)], sv...)
				present = true
			}
		}
		v, err := p.bindFlag(raw, present)
		if err != nil {
			return err
		}
		bound[p.name] = v
	}

	inv.Args = bound
	return c.handler(ctx, inv)
}
