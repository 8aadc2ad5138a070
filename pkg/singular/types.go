package singular

// Asset represents one addressable subcomposition discovered in the
// control app model.
type Asset struct {
	ID     string           `json:"id"`   // Identifier assigned by Singular, stable across rebuilds
	Name   string           `json:"name"` // Display name as reported at last fetch, may repeat
	Fields map[string]Field `json:"fields"`
}

// Field is the remote-declared metadata for one controllable field.
// Everything beyond the type tag is carried opaquely in Meta.
type Field struct {
	ID   string         `json:"id"`
	Type string         `json:"type"`
	Meta map[string]any `json:"meta,omitempty"`
}

// Field type constants as declared by the control app model. Matching is
// case-insensitive; unrecognized types are treated as free text.
const (
	FieldTypeNumber      = "number"
	FieldTypeRange       = "range"
	FieldTypeSlider      = "slider"
	FieldTypeCheckbox    = "checkbox"
	FieldTypeToggle      = "toggle"
	FieldTypeBool        = "bool"
	FieldTypeBoolean     = "boolean"
	FieldTypeTimeControl = "timecontrol"
)

// ControlItem is one mutation in a control PATCH. Singular accepts an
// array of these in a single call.
type ControlItem struct {
	SubCompositionID string         `json:"subCompositionId"`
	State            string         `json:"state,omitempty"`
	Payload          map[string]any `json:"payload,omitempty"`
}

// Subcomposition states accepted by the control API.
const (
	StateIn  = "In"
	StateOut = "Out"
)

// ControlResult carries the remote response to a successful control call.
type ControlResult struct {
	Status   int    `json:"status"`
	Response string `json:"response"`
}

// TimeControlValue is the structured value sent for a timecontrol field.
type TimeControlValue struct {
	UTC       float64 `json:"UTC"`
	IsRunning bool    `json:"isRunning"`
	Value     int     `json:"value"`
}

// CountdownSecondsField is the companion field Singular reads for
// countdown durations. It expects the number as a string.
const CountdownSecondsField = "Countdown Seconds"
