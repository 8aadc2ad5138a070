package datastream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL prefixes bare datastream IDs.
const DefaultBaseURL = "https://datastream.singular.live/datastreams"

// ErrNoStreamURL indicates no datastream URL is configured.
var ErrNoStreamURL = errors.New("no data stream url configured")

// Result reports what happened to one PUT. It is populated even when the
// remote failed, so callers can show the status and body either way.
type Result struct {
	StreamURL string `json:"stream_url"`
	Status    int    `json:"status"`
	Response  string `json:"response"`
	Error     string `json:"error,omitempty"`
}

// NormalizeURL turns a bare stream ID into a full datastream URL and
// passes complete URLs through unchanged.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.HasPrefix(raw, "http") {
		return raw
	}
	return fmt.Sprintf("%s/%s", DefaultBaseURL, raw)
}

// Client pushes JSON payloads to a Singular datastream.
type Client struct {
	http *http.Client
}

// NewClient creates a datastream Client.
func NewClient() *Client {
	return &Client{http: &http.Client{Timeout: 10 * time.Second}}
}

// Put sends payload to streamURL as a JSON PUT. Transport failures are
// reported inside the Result rather than as a hard error so a flaky
// stream doesn't break the relay loop.
func (c *Client) Put(ctx context.Context, streamURL string, payload any) (*Result, error) {
	if streamURL == "" {
		return nil, ErrNoStreamURL
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, streamURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("bad stream url: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	result := &Result{StreamURL: streamURL}
	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Str("stream_url", streamURL).Msg("Datastream PUT failed")
		result.Error = err.Error()
		return result, nil
	}
	defer func() { _ = resp.Body.Close() }()

	text, _ := io.ReadAll(resp.Body)
	result.Status = resp.StatusCode
	result.Response = string(text)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		result.Error = fmt.Sprintf("datastream returned status %d", resp.StatusCode)
	}
	return result, nil
}
