package singular

import (
	"fmt"
	"net/url"
)

// FieldCommands is the set of ready-to-call URLs for one field.
type FieldCommands struct {
	SetURL              string `json:"set_url"`
	TimeControlStartURL string `json:"timecontrol_start_url,omitempty"`
	TimeControlStopURL  string `json:"timecontrol_stop_url,omitempty"`
	StartTenSecondsURL  string `json:"start_10s_if_supported,omitempty"`
}

// CatalogEntry lists every command URL for one registry entry.
type CatalogEntry struct {
	ID     string                   `json:"id"`
	Name   string                   `json:"name"`
	InURL  string                   `json:"in_url"`
	OutURL string                   `json:"out_url"`
	Fields map[string]FieldCommands `json:"fields"`
}

// BuildCatalog derives command URLs for every entry of the live registry
// generation. Pure derivation from registry state at call time: no remote
// calls, no caching, no mutation.
func BuildCatalog(registry *Registry, baseURL string) map[string]CatalogEntry {
	catalog := make(map[string]CatalogEntry)
	registry.Each(func(key string, asset *Asset) {
		catalog[key] = BuildCatalogEntry(key, asset, baseURL)
	})
	return catalog
}

// BuildCatalogEntry derives the command URLs for a single asset.
func BuildCatalogEntry(key string, asset *Asset, baseURL string) CatalogEntry {
	entry := CatalogEntry{
		ID:     asset.ID,
		Name:   asset.Name,
		InURL:  fmt.Sprintf("%s/%s/in", baseURL, key),
		OutURL: fmt.Sprintf("%s/%s/out", baseURL, key),
		Fields: make(map[string]FieldCommands),
	}
	for fid, field := range asset.Fields {
		if fid == "" {
			continue
		}
		entry.Fields[fid] = fieldCommands(baseURL, key, fid, field)
	}
	return entry
}

func fieldCommands(baseURL, key, fieldID string, field Field) FieldCommands {
	escaped := url.QueryEscape(fieldID)
	cmds := FieldCommands{
		SetURL: fmt.Sprintf("%s/%s/set?field=%s&value=VALUE", baseURL, key, escaped),
	}
	if field.IsTimeControl() {
		cmds.TimeControlStartURL = fmt.Sprintf("%s/%s/timecontrol?field=%s&run=true&value=0", baseURL, key, escaped)
		cmds.TimeControlStopURL = fmt.Sprintf("%s/%s/timecontrol?field=%s&run=false&value=0", baseURL, key, escaped)
		cmds.StartTenSecondsURL = fmt.Sprintf("%s/%s/timecontrol?field=%s&run=true&value=0&seconds=10", baseURL, key, escaped)
	}
	return cmds
}
