package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client calls the chat relay endpoint over HTTP. It is the programmatic
// equivalent of the widget's fetch to /api/chat.
type Client struct {
	Endpoint string
	client   *http.Client
}

// NewClient creates a relay client. The timeout bounds the whole
// client -> relay exchange so a stuck relay cannot leave a conversation
// pending forever.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		Endpoint: endpoint,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// relayPayload is the subset of the relay response the client consumes:
// the normalized error string on failure, or the first completion
// choice's message content on success.
type relayPayload struct {
	Error   string `json:"error"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Send posts one message to the relay and returns the bot reply text.
// Any failure (network, relay-reported error, or a success payload with
// no usable choice) is returned as an error for the conversation to
// collapse into its fallback reply.
func (c *Client) Send(ctx context.Context, message string) (string, error) {
	body, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.Endpoint, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// The relay reports failures in the body; decode regardless of status.
	var payload relayPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if payload.Error != "" {
		return "", fmt.Errorf("relay responded with an error: %s", payload.Error)
	}

	if len(payload.Choices) == 0 || payload.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("relay response carried no completion choice")
	}

	return payload.Choices[0].Message.Content, nil
}
