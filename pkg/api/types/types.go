package types

import (
	"github.com/blueelliott/singular-controls/pkg/singular"
)

// --- Request DTOs ---

// TokenRequest is the request body for POST /config/singular
type TokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// StreamRequest is the request body for POST /config/stream
type StreamRequest struct {
	StreamURL string `json:"stream_url" binding:"required"`
}

// TfLConfigRequest is the request body for POST /config/tfl
type TfLConfigRequest struct {
	AppID  string `json:"app_id" binding:"required"`
	AppKey string `json:"app_key" binding:"required"`
}

// ModuleToggleRequest is the request body for the module toggle endpoints
type ModuleToggleRequest struct {
	Enabled bool `json:"enabled"`
}

// SettingsRequest is the request body for POST /settings
type SettingsRequest struct {
	Port      *int    `json:"port"`
	EnableTfL bool    `json:"enable_tfl"`
	Theme     *string `json:"theme"`
}

// --- Response DTOs ---

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	// Remote status/body are passed through for rejected control calls
	RemoteStatus int    `json:"remote_status,omitempty"`
	RemoteBody   string `json:"remote_body,omitempty"`
}

// HealthResponse is returned from GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Port    int    `json:"port"`
}

// RefreshResponse is returned from POST /registry/refresh
type RefreshResponse struct {
	OK    bool `json:"ok"`
	Count int  `json:"count"`
}

// ListEntry is one registry entry in GET /registry/list
type ListEntry struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// CommandsResponse is returned from GET /registry/commands
type CommandsResponse struct {
	Note    string                           `json:"note"`
	Catalog map[string]singular.CatalogEntry `json:"catalog"`
}

// HelpResponse is returned from GET /:key/help
type HelpResponse struct {
	Commands singular.CatalogEntry `json:"commands"`
}

// PingResponse is returned from GET /singular/ping
type PingResponse struct {
	OK           bool     `json:"ok"`
	Message      string   `json:"message"`
	ModelType    string   `json:"model_type"`
	TopLevelKeys []string `json:"top_level_keys"`
	Subs         int      `json:"subs"`
}

// EventsResponse is returned from GET /events
type EventsResponse struct {
	Events []string `json:"events"`
}

// ConfigResponse is returned from GET /config
type ConfigResponse struct {
	Singular SingularConfig `json:"singular"`
	TfL      TfLConfig      `json:"tfl"`
	Settings SettingsInfo   `json:"settings"`
}

// SingularConfig reports the Singular section of the configuration
type SingularConfig struct {
	TokenSet  bool   `json:"token_set"`
	Token     string `json:"token"`
	StreamURL string `json:"stream_url"`
}

// TfLConfig reports whether TfL credentials are present
type TfLConfig struct {
	AppIDSet  bool `json:"app_id_set"`
	AppKeySet bool `json:"app_key_set"`
}

// SettingsInfo reports the general settings
type SettingsInfo struct {
	Port           int    `json:"port"`
	EnableTfL      bool   `json:"enable_tfl"`
	TfLAutoRefresh bool   `json:"tfl_auto_refresh"`
	Theme          string `json:"theme"`
}

// ConfigUpdateResponse is returned from the config mutation endpoints
type ConfigUpdateResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Subs    *int   `json:"subs,omitempty"`
	URL     string `json:"url,omitempty"`
	Enabled *bool  `json:"enabled,omitempty"`
}

// RelayResponse is returned from the datastream relay endpoints
type RelayResponse struct {
	SentTo    string            `json:"sent_to"`
	Payload   map[string]string `json:"payload"`
	StreamURL string            `json:"stream_url"`
	Status    int               `json:"status"`
	Response  string            `json:"response"`
	Error     string            `json:"error,omitempty"`
}

// LinesResponse is returned from GET /tfl/lines
type LinesResponse struct {
	Lines []string `json:"lines"`
}
