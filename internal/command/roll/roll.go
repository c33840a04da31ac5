// Package roll implements the dice rolling command group.
package roll

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/EnokiUN/godris/internal/eludris"
	"github.com/EnokiUN/godris/pkg/cmd"
)

const (
	maxDice  = 20
	maxSides = 1000
)

// Ext returns the dice command group.
func Ext() *cmd.Extension {
	ext := cmd.NewExtension("roll", "Dice rolling.")
	ext.MustAdd(rollCommand())
	return ext
}

func rollCommand() *cmd.Command {
	sides := cmd.MustParam("sides", cmd.NumberParser{}, cmd.Default(int64(6)))
	count := cmd.MustParam("count", cmd.NumberParser{}, cmd.Short('c'), cmd.Default(int64(1)))
	verbose := cmd.MustParam("verbose", cmd.BoolParser{}, cmd.Short('v'), cmd.Default(false), cmd.PresenceImpliesTrue())

	c := cmd.New("roll", func(ctx context.Context, inv *cmd.Invocation) error {
		bot := inv.Data.(*eludris.Bot)

		n := clamp(inv.Args.Int("count"), 1, maxDice)
		s := clamp(inv.Args.Int("sides"), 2, maxSides)

		var total int64
		rolls := make([]string, 0, n)
		for i := int64(0); i < n; i++ {
			r := rand.Int63n(s) + 1
			total += r
			rolls = append(rolls, fmt.Sprint(r))
		}

		if inv.Args.Bool("verbose") {
			return bot.Send(ctx, fmt.Sprintf("%s rolled %dd%d: %s = %d",
				inv.Message.Author, n, s, strings.Join(rolls, " + "), total))
		}
		return bot.Send(ctx, fmt.Sprintf("%s rolled %dd%d: %d", inv.Message.Author, n, s, total))
	},
		cmd.Aliases("r", "dice"),
		cmd.Description("Rolls dice, a single d6 by default."),
		cmd.Params(sides, count, verbose),
		cmd.OnError(func(ctx context.Context, inv *cmd.Invocation, err error) {
			bot, ok := inv.Data.(*eludris.Bot)
			if !ok {
				return
			}
			_ = bot.Send(ctx, fmt.Sprintf("Can't roll that: %v", err))
		}),
	)
	return c
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
