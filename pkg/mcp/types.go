package mcp

// --- List Assets Tool ---

// AssetInfo represents a registry entry in tool outputs
type AssetInfo struct {
	Key    string   `json:"key" jsonschema:"description=Stable registry key (slug)"`
	ID     string   `json:"id" jsonschema:"description=Subcomposition id"`
	Name   string   `json:"name" jsonschema:"description=Display name"`
	Fields []string `json:"fields" jsonschema:"description=Payload field ids"`
}

// ListAssetsOutput is the output for the list_assets tool
type ListAssetsOutput struct {
	Assets []AssetInfo `json:"assets" jsonschema:"description=Registered compositions"`
	Count  int         `json:"count" jsonschema:"description=Total number of compositions"`
}

// --- Refresh Registry Tool ---

// RefreshRegistryOutput is the output for the refresh_registry tool
type RefreshRegistryOutput struct {
	Success bool `json:"success"`
	Count   int  `json:"count" jsonschema:"description=Number of compositions registered"`
}

// --- Get Asset Tool ---

// FieldInfo describes one payload field
type FieldInfo struct {
	ID   string `json:"id"`
	Type string `json:"type" jsonschema:"description=Declared field type (text/number/timecontrol/...)"`
}

// GetAssetOutput is the output for the get_asset tool
type GetAssetOutput struct {
	Key    string      `json:"key"`
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Fields []FieldInfo `json:"fields"`
}

// --- Animate Tools ---

// AnimateOutput is the output for the animate_in and animate_out tools
type AnimateOutput struct {
	Success bool   `json:"success"`
	Key     string `json:"key"`
	ID      string `json:"id"`
	State   string `json:"state" jsonschema:"description=Transition sent (In or Out)"`
	Status  int    `json:"status" jsonschema:"description=Upstream HTTP status"`
}

// --- Set Field Tool ---

// SetFieldOutput is the output for the set_field tool
type SetFieldOutput struct {
	Success bool           `json:"success"`
	Key     string         `json:"key"`
	ID      string         `json:"id"`
	Sent    map[string]any `json:"sent" jsonschema:"description=Payload actually sent after coercion"`
	Status  int            `json:"status" jsonschema:"description=Upstream HTTP status"`
}

// --- Time Control Tool ---

// TimeControlOutput is the output for the time_control tool
type TimeControlOutput struct {
	Success bool           `json:"success"`
	Key     string         `json:"key"`
	ID      string         `json:"id"`
	Sent    map[string]any `json:"sent" jsonschema:"description=Payload actually sent"`
	Status  int            `json:"status" jsonschema:"description=Upstream HTTP status"`
}

// --- Recent Events Tool ---

// RecentEventsOutput is the output for the recent_events tool
type RecentEventsOutput struct {
	Events []string `json:"events" jsonschema:"description=Formatted event lines, oldest first"`
	Count  int      `json:"count"`
}
