package eludris

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/EnokiUN/godris/pkg/retry"
)

// SendMessage posts a message to the REST API under the client's name.
// Attempts are paced through the adaptive limiter and transient failures are
// retried with backoff.
func (c *Client) SendMessage(ctx context.Context, content string) error {
	body, err := json.Marshal(messagePayload{Author: c.name, Content: content})
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	return retry.Do(ctx, c.limiter, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.restURL+"/messages/", bytes.NewReader(body))
		if err != nil {
			return &retry.StatusError{Code: http.StatusBadRequest}
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)

		if resp.StatusCode >= 400 {
			return &retry.StatusError{Code: resp.StatusCode}
		}
		return nil
	})
}
