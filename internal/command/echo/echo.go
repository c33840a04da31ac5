// Package echo implements the say command group.
package echo

import (
	"context"
	"fmt"
	"strings"

	"github.com/EnokiUN/godris/internal/eludris"
	"github.com/EnokiUN/godris/pkg/cmd"
)

const maxRepeat = 5

// Ext returns the echo command group.
func Ext() *cmd.Extension {
	ext := cmd.NewExtension("echo", "Repeating things back.")
	ext.MustAdd(sayCommand())
	return ext
}

func sayCommand() *cmd.Command {
	text := cmd.MustParam("text", cmd.StringParser{})
	repeat := cmd.MustParam("repeat", cmd.NumberParser{}, cmd.Short('r'), cmd.Default(int64(1)))
	shout := cmd.MustParam("shout", cmd.BoolParser{}, cmd.Short('s'), cmd.Default(false), cmd.PresenceImpliesTrue())
	suffix := cmd.MustParam("suffix", cmd.StringParser{}, cmd.Flag(true), cmd.Multiple(), cmd.Required(false))

	return cmd.New("say", func(ctx context.Context, inv *cmd.Invocation) error {
		bot := inv.Data.(*eludris.Bot)

		out := inv.Args.String("text")
		if n := inv.Args.Int("repeat"); n > 1 {
			if n > maxRepeat {
				n = maxRepeat
			}
			parts := make([]string, n)
			for i := range parts {
				parts[i] = out
			}
			out = strings.Join(parts, " ")
		}
		if suffixes := inv.Args.Strings("suffix"); len(suffixes) > 0 {
			out += " " + strings.Join(suffixes, " ")
		}
		if inv.Args.Bool("shout") {
			out = strings.ToUpper(out) + "!"
		}
		return bot.Send(ctx, out)
	},
		cmd.Aliases("echo"),
		cmd.Description("Says something back, optionally repeated or shouted."),
		cmd.Params(text, repeat, shout, suffix),
		cmd.OnError(func(ctx context.Context, inv *cmd.Invocation, err error) {
			bot, ok := inv.Data.(*eludris.Bot)
			if !ok {
				return
			}
			_ = bot.Send(ctx, fmt.Sprintf("Can't say that: %v", err))
		}),
	)
}
