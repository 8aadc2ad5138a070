package tfl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultStatusURL covers every mode the bridge relays in one call.
const DefaultStatusURL = "https://api.tfl.gov.uk/Line/Mode/" +
	"tube,overground,dlr,elizabeth-line,tram,cable-car/Status"

// Client fetches line statuses from the TfL unified API. Registered app
// credentials are optional; anonymous calls work at a lower rate limit.
type Client struct {
	statusURL string
	http      *http.Client
}

// NewClient creates a Client against statusURL (DefaultStatusURL if empty).
func NewClient(statusURL string) *Client {
	if statusURL == "" {
		statusURL = DefaultStatusURL
	}
	return &Client{
		statusURL: statusURL,
		http:      &http.Client{Timeout: 10 * time.Second},
	}
}

// lineStatus mirrors the slice of the TfL response the bridge cares about.
type lineStatus struct {
	Name         string `json:"name"`
	LineStatuses []struct {
		StatusSeverityDescription string `json:"statusSeverityDescription"`
	} `json:"lineStatuses"`
}

// FetchStatuses returns a line name to severity description map for every
// line in the response. Lines with no reported status come back "Unknown".
func (c *Client) FetchStatuses(ctx context.Context, appID, appKey string) (map[string]string, error) {
	u := c.statusURL
	if appID != "" && appKey != "" {
		params := url.Values{}
		params.Set("app_id", appID)
		params.Set("app_key", appKey)
		u = u + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("tfl request failed: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("TfL API request failed")
		return nil, fmt.Errorf("tfl request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("tfl request failed: status %d", resp.StatusCode)
	}

	var lines []lineStatus
	if err := json.NewDecoder(resp.Body).Decode(&lines); err != nil {
		return nil, fmt.Errorf("tfl response unparseable: %w", err)
	}

	out := make(map[string]string, len(lines))
	for _, line := range lines {
		severity := "Unknown"
		if len(line.LineStatuses) > 0 && line.LineStatuses[0].StatusSeverityDescription != "" {
			severity = line.LineStatuses[0].StatusSeverityDescription
		}
		out[line.Name] = severity
	}
	return out, nil
}
