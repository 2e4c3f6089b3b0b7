package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is a client for the OpenRouter chat completions API.
type Client struct {
	BaseURL      string
	APIKey       string
	Model        string
	SystemPrompt string
	client       *http.Client
}

// NewClient creates a new upstream completion client.
// The timeout bounds every call to the provider; a zero timeout leaves
// the call unbounded, which the relay never wants.
func NewClient(baseURL, apiKey, model, systemPrompt string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:      baseURL,
		APIKey:       apiKey,
		Model:        model,
		SystemPrompt: systemPrompt,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Complete sends a single-turn chat completion request to the provider and
// returns the provider's response body verbatim. The relay passes the body
// through to its caller unreshaped, so Complete does not validate the
// success schema; it only inspects the body for a provider-reported error.
//
// Failure modes:
//   - network-level failure, or an unreadable/undecodable body: a plain
//     wrapped error (transport failure);
//   - a decodable body carrying an "error" field: *UpstreamError with the
//     provider's message (semantic failure).
func (c *Client) Complete(ctx context.Context, message string) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/v1/chat/completions", c.BaseURL)

	payload := CompletionRequest{
		Model: c.Model,
		Messages: []ChatMessage{
			{Role: "system", Content: c.SystemPrompt},
			{Role: "user", Content: message},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.APIKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	// The provider signals request-level failures inside the payload, not
	// via the HTTP status, so the body is decoded regardless of status.
	var envelope errorEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if envelope.Error != nil {
		return nil, &UpstreamError{Message: envelope.Error.Message}
	}

	return raw, nil
}
