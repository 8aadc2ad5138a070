package singular

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the Singular.live v2 API root.
const DefaultBaseURL = "https://app.singular.live/apiv2"

const requestTimeout = 10 * time.Second

// ModelFetcher fetches the current control app model tree.
type ModelFetcher interface {
	FetchModel(ctx context.Context) (any, error)
}

// ControlSender issues control mutations against the control app.
type ControlSender interface {
	Control(ctx context.Context, items []ControlItem) (*ControlResult, error)
}

// Client talks to the Singular control app API. The token is read through
// a provider func so configuration changes take effect without rebuilding
// the client. A Client makes exactly one attempt per call; retry policy
// belongs to the caller.
type Client struct {
	baseURL string
	token   func() string
	http    *http.Client
}

// NewClient creates a Client against baseURL (DefaultBaseURL if empty).
func NewClient(baseURL string, token func() string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// FetchModel retrieves the control app's current model tree as decoded
// JSON. Returns ErrNoToken when no token is configured, ErrRemoteUnavailable
// on transport or non-success status, ErrMalformedResponse on unparseable
// bodies.
func (c *Client) FetchModel(ctx context.Context) (any, error) {
	token := c.token()
	if token == "" {
		return nil, ErrNoToken
	}

	url := fmt.Sprintf("%s/controlapps/%s/model", c.baseURL, token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("Model fetch failed")
		return nil, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error().Int("status", resp.StatusCode).Msg("Model fetch returned non-success status")
		return nil, fmt.Errorf("%w: status %d", ErrRemoteUnavailable, resp.StatusCode)
	}

	var model any
	if err := json.NewDecoder(resp.Body).Decode(&model); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return model, nil
}

// Control sends a PATCH with the given items to the control endpoint.
// A non-success status surfaces as *RemoteError carrying the remote
// status and body.
func (c *Client) Control(ctx context.Context, items []ControlItem) (*ControlResult, error) {
	token := c.token()
	if token == "" {
		return nil, ErrNoToken
	}

	body, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode control items: %w", err)
	}

	url := fmt.Sprintf("%s/controlapps/%s/control", c.baseURL, token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("Control PATCH failed")
		return nil, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	text, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RemoteError{Status: resp.StatusCode, Body: string(text)}
	}

	log.Debug().Int("items", len(items)).Int("status", resp.StatusCode).Msg("Control PATCH sent")
	return &ControlResult{Status: resp.StatusCode, Response: string(text)}, nil
}
