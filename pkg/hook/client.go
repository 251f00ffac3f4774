package hook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout bounds a single forwarding attempt.
const DefaultTimeout = 10 * time.Second

// Client posts decision events to a downstream webhook. A zero URL disables
// forwarding; Enabled() lets callers skip the goroutine entirely.
type Client struct {
	url        string
	token      string
	source     string
	httpClient *http.Client
}

// NewClient creates a webhook client. token is optional; timeout falls back
// to DefaultTimeout when zero.
func NewClient(url, token, source string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		url:        url,
		token:      token,
		source:     source,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SetURL overrides the target URL for testing purposes.
func (c *Client) SetURL(url string) {
	c.url = url
}

// Enabled reports whether a target URL is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.url != ""
}

// Forward posts the decision and the original request payload downstream.
// Best-effort: the caller treats any returned error as log-and-drop, the
// primary response has already been computed.
func (c *Client) Forward(ctx context.Context, decision, payload json.RawMessage) error {
	if !c.Enabled() {
		return nil
	}

	event := Event{
		Source:   c.source,
		EventID:  uuid.NewString(),
		Decision: decision,
		Payload:  payload,
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal hook event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build hook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post hook event: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("hook endpoint returned %d: %s", resp.StatusCode, raw)
	}
	return nil
}
