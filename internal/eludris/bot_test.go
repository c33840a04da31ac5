package eludris

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EnokiUN/godris/internal/config"
	"github.com/EnokiUN/godris/pkg/cmd"
)

func testBot(t *testing.T) *Bot {
	t.Helper()
	return NewBot(&config.Config{
		BotName:    "testbot",
		Prefix:     "!",
		RestURL:    "http://localhost:0/",
		GatewayURL: "ws://localhost:0/ws/",
	})
}

func TestHandleMessageDispatchesCommands(t *testing.T) {
	bot := testBot(t)

	var gotWho string
	var gotData any
	c := cmd.New("greet", func(ctx context.Context, inv *cmd.Invocation) error {
		gotWho = inv.Args.String("who")
		gotData = inv.Data
		return nil
	}, cmd.Params(cmd.MustParam("who", cmd.StringParser{})))
	require.NoError(t, bot.Registry().Register(c))

	bot.handleMessage(context.Background(), cmd.Message{Author: "amy", Content: "!greet world"})

	require.Equal(t, "world", gotWho)
	require.Same(t, bot, gotData)
}

func TestHandleMessageIgnoresNonCommands(t *testing.T) {
	bot := testBot(t)

	c := cmd.New("greet", func(ctx context.Context, inv *cmd.Invocation) error {
		t.Fatal("must not be invoked")
		return nil
	})
	require.NoError(t, bot.Registry().Register(c))

	bot.handleMessage(context.Background(), cmd.Message{Author: "amy", Content: "just chatting"})
	bot.handleMessage(context.Background(), cmd.Message{Author: "amy", Content: "!unknown"})
}

func TestHandleMessageSurvivesHandlerFailure(t *testing.T) {
	bot := testBot(t)

	c := cmd.New("boom", func(ctx context.Context, inv *cmd.Invocation) error {
		return errors.New("exploded")
	})
	require.NoError(t, bot.Registry().Register(c))

	// Must not panic; the failure is logged and the loop keeps serving.
	bot.handleMessage(context.Background(), cmd.Message{Author: "amy", Content: "!boom"})
}

func TestListenersGateOnPredicate(t *testing.T) {
	bot := testBot(t)

	var heard []string
	bot.Listen(func(m cmd.Message) bool { return m.Author == "amy" }, func(ctx context.Context, b *Bot, m cmd.Message) {
		heard = append(heard, m.Content)
	})
	bot.Listen(nil, func(ctx context.Context, b *Bot, m cmd.Message) {
		heard = append(heard, "any:"+m.Content)
	})

	bot.handleMessage(context.Background(), cmd.Message{Author: "amy", Content: "one"})
	bot.handleMessage(context.Background(), cmd.Message{Author: "bob", Content: "two"})

	require.Equal(t, []string{"one", "any:one", "any:two"}, heard)
}

func TestLoadReportsDuplicateExtensionCommands(t *testing.T) {
	bot := testBot(t)

	a := cmd.NewExtension("a", "")
	a.MustAdd(cmd.New("up", func(ctx context.Context, inv *cmd.Invocation) error { return nil }))
	b := cmd.NewExtension("b", "")
	b.MustAdd(cmd.New("up", func(ctx context.Context, inv *cmd.Invocation) error { return nil }))

	require.NoError(t, bot.Load(a))
	err := bot.Load(b)

	var dup *cmd.DuplicateNameError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "up", dup.Name)
}

func TestMessagePayloadRoundTrip(t *testing.T) {
	var payload messagePayload
	require.NoError(t, json.Unmarshal([]byte(`{"author":"amy","content":"!ping"}`), &payload))
	require.Equal(t, "amy", payload.Author)
	require.Equal(t, "!ping", payload.Content)

	data, err := json.Marshal(messagePayload{Author: "testbot", Content: "Pong!"})
	require.NoError(t, err)
	require.JSONEq(t, `{"author":"testbot","content":"Pong!"}`, string(data))
}
