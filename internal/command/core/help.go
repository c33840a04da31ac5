package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/EnokiUN/godris/internal/eludris"
	"github.com/EnokiUN/godris/pkg/cmd"
)

func helpCommand() *cmd.Command {
	topic := cmd.MustParam("command", cmd.StringParser{}, cmd.Default(""))

	return cmd.New("help", func(ctx context.Context, inv *cmd.Invocation) error {
		bot := inv.Data.(*eludris.Bot)

		if name := inv.Args.String("command"); name != "" {
			c, ok := bot.Registry().Lookup(name)
			if !ok {
				return bot.Send(ctx, fmt.Sprintf("No command named %q.", name))
			}
			return bot.Send(ctx, fmt.Sprintf("%s%s — %s", bot.Prefix(), c.Name(), c.Description()))
		}

		var sb strings.Builder
		sb.WriteString("Available commands:\n")
		for _, c := range bot.Registry().All() {
			fmt.Fprintf(&sb, "%s%s — %s\n", bot.Prefix(), c.Name(), c.Description())
		}
		return bot.Send(ctx, sb.String())
	},
		cmd.Aliases("h", "commands"),
		cmd.Description("Lists commands, or describes the one you name."),
		cmd.Params(topic),
	)
}
