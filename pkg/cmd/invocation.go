// Package cmd implements a transport-agnostic command-invocation engine for
// chat bots: a tokenizer that splits a raw message line into positional and
// flag tokens, pluggable value parsers, a parameter binder with cardinality
// and defaulting rules, and a registry/dispatcher that ties keywords to
// handlers. How messages arrive and how replies are sent is defined by
// adapters that wrap this.
package cmd

import "context"

// Message is the minimal inbound shape the engine reads. Adapters map their
// wire payloads onto it; dispatch inspects only Content.
type Message struct {
	Author  string
	Content string
}

// Invocation carries one command execution: the triggering message, the
// bound typed arguments, and an opaque adapter payload (e.g. the client a
// handler replies through).
type Invocation struct {
	Message Message
	Args    Args
	Data    any
}

// Handler executes a command with its bound argument set.
type Handler func(ctx context.Context, inv *Invocation) error

// ErrorHandler receives failures raised while binding or running a command.
// inv.Args is nil when binding itself failed.
type ErrorHandler func(ctx context.Context, inv *Invocation, err error)
