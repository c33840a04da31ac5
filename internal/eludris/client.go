package eludris

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/EnokiUN/godris/pkg/cmd"
	"github.com/EnokiUN/godris/pkg/retry"
)

const (
	heartbeatInterval = 20 * time.Second
	writeTimeout      = 10 * time.Second
)

// messagePayload is the wire shape of a message, shared by the gateway and
// the REST endpoint.
type messagePayload struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

// Client talks to the Eludris API: the gateway websocket for receiving
// messages and REST for sending them.
type Client struct {
	name       string
	restURL    string
	gatewayURL string
	http       *http.Client
	limiter    *retry.Limiter
}

// NewClient creates a client that sends messages under the given name.
func NewClient(name, restURL, gatewayURL string) *Client {
	return &Client{
		name:       name,
		restURL:    strings.TrimSuffix(restURL, "/"),
		gatewayURL: gatewayURL,
		http:       &http.Client{Timeout: 30 * time.Second},
		limiter:    retry.NewLimiter(5, 1, 20),
	}
}

// Name returns the author name the client sends messages under.
func (c *Client) Name() string { return c.name }

// Run connects to the gateway and feeds every inbound message to handle,
// each in its own goroutine, until ctx is cancelled or the connection drops.
// The client's own messages are skipped.
func (c *Client) Run(ctx context.Context, handle func(msg cmd.Message)) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.gatewayURL, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to gateway: %w", err)
	}
	defer conn.Close()
	log.Println("[INFO] Connected to gateway:", c.gatewayURL)

	go c.heartbeat(ctx, conn)
	go func() {
		// Closing the socket unblocks ReadMessage on shutdown.
		<-ctx.Done()
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("gateway read error: %w", err)
		}

		var payload messagePayload
		if err := json.Unmarshal(data, &payload); err != nil {
			log.Println("[WARN] Dropping malformed gateway frame:", err)
			continue
		}
		if payload.Author == c.name {
			continue
		}
		go handle(cmd.Message{Author: payload.Author, Content: payload.Content})
	}
}

// heartbeat pings the gateway on a fixed cadence to keep the connection
// alive.
func (c *Client) heartbeat(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deadline := time.Now().Add(writeTimeout)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				log.Println("[WARN] Gateway ping failed:", err)
				return
			}
		}
	}
}
