package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/EnokiUN/godris/internal/command/core"
	"github.com/EnokiUN/godris/internal/command/echo"
	"github.com/EnokiUN/godris/internal/command/roll"
	"github.com/EnokiUN/godris/internal/config"
	"github.com/EnokiUN/godris/internal/eludris"
	"github.com/EnokiUN/godris/internal/version"
	"github.com/EnokiUN/godris/pkg/cmd"
)

func main() {
	log.Printf("[INFO] Starting %v bot...", version.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.New()

	bot := eludris.NewBot(cfg)
	if err := bot.Load(core.Ext(), roll.Ext(), echo.Ext()); err != nil {
		log.Fatal("[ERR] Command registration failed: ", err)
	}

	bot.Listen(func(m cmd.Message) bool {
		return strings.Contains(strings.ToLower(m.Content), strings.ToLower(cfg.BotName))
	}, func(ctx context.Context, b *eludris.Bot, m cmd.Message) {
		log.Printf("[INFO] Mentioned by %s", m.Author)
	})

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Eludris bot error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Eludris bot exited cleanly")
}
