package core

import (
	"context"

	"github.com/EnokiUN/godris/internal/eludris"
	"github.com/EnokiUN/godris/pkg/cmd"
)

func pingCommand() *cmd.Command {
	return cmd.New("ping", func(ctx context.Context, inv *cmd.Invocation) error {
		return inv.Data.(*eludris.Bot).Send(ctx, "Pong!")
	},
		cmd.Aliases("pong"),
		cmd.Description("Checks that the bot is alive."),
	)
}
