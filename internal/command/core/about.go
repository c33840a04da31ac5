package core

import (
	"context"
	"fmt"

	"github.com/EnokiUN/godris/internal/eludris"
	"github.com/EnokiUN/godris/internal/version"
	"github.com/EnokiUN/godris/pkg/cmd"
)

func aboutCommand() *cmd.Command {
	return cmd.New("about", func(ctx context.Context, inv *cmd.Invocation) error {
		bot := inv.Data.(*eludris.Bot)
		return bot.Send(ctx, fmt.Sprintf("%s v%s — %s", version.AppName, version.AppVersion, version.Description))
	},
		cmd.Aliases("version"),
		cmd.Description("Shows what this bot is and which version is running."),
	)
}
