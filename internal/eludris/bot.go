// Package eludris is the transport adapter around the command engine: a
// gateway websocket client, a REST sender, and the bot loop that feeds
// inbound messages through listeners and the command dispatcher.
package eludris

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/EnokiUN/godris/internal/config"
	"github.com/EnokiUN/godris/pkg/cmd"
)

// ListenerFunc handles a message that passed its listener's predicate.
type ListenerFunc func(ctx context.Context, bot *Bot, msg cmd.Message)

type listener struct {
	pred func(msg cmd.Message) bool
	fn   ListenerFunc
}

// Bot glues the Eludris client to a command registry. Register commands and
// listeners before calling Run; the registry is not safe for mutation while
// the bot is serving.
type Bot struct {
	client     *Client
	registry   *cmd.Registry
	dispatcher *cmd.Dispatcher
	listeners  []listener
}

// NewBot builds a bot from configuration with an empty registry.
func NewBot(cfg *config.Config) *Bot {
	registry := cmd.NewRegistry()
	return &Bot{
		client:     NewClient(cfg.BotName, cfg.RestURL, cfg.GatewayURL),
		registry:   registry,
		dispatcher: cmd.NewDispatcher(registry, cfg.Prefix),
	}
}

// Registry exposes the bot's command registry, e.g. for the help command.
func (b *Bot) Registry() *cmd.Registry { return b.registry }

// Prefix returns the configured command prefix.
func (b *Bot) Prefix() string { return b.dispatcher.Prefix() }

// Load registers the commands of each extension as an atomic batch.
func (b *Bot) Load(exts ...*cmd.Extension) error {
	for _, ext := range exts {
		if err := b.registry.Load(ext); err != nil {
			return fmt.Errorf("failed to load extension %s: %w", ext.Name(), err)
		}
		log.Printf("[INFO] Loaded extension %s (%d commands)", ext.Name(), len(ext.Commands()))
	}
	return nil
}

// Listen registers a listener called for every inbound message matching
// pred. A nil pred matches everything.
func (b *Bot) Listen(pred func(msg cmd.Message) bool, fn ListenerFunc) {
	b.listeners = append(b.listeners, listener{pred: pred, fn: fn})
}

// Send replies on the bot's behalf.
func (b *Bot) Send(ctx context.Context, content string) error {
	return b.client.SendMessage(ctx, content)
}

// Run connects to the gateway and serves until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	log.Printf("[INFO] %s is serving with prefix %q", b.client.Name(), b.Prefix())
	return b.client.Run(ctx, func(msg cmd.Message) {
		b.handleMessage(ctx, msg)
	})
}

// handleMessage runs one inbound message through listeners and dispatch.
// Failures are reported and never stop the loop.
func (b *Bot) handleMessage(ctx context.Context, msg cmd.Message) {
	for _, l := range b.listeners {
		if l.pred == nil || l.pred(msg) {
			l.fn(ctx, b, msg)
		}
	}

	if strings.HasPrefix(msg.Content, b.Prefix()) {
		log.Printf("[INFO] %s: %s", msg.Author, msg.Content)
	}
	if err := b.dispatcher.Dispatch(ctx, msg, b); err != nil {
		// The command had no error handler of its own.
		log.Println("[ERR] Error running command:", err)
	}
}
