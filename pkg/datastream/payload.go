package datastream

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// payloadSchema constrains manual relay payloads: a flat object of line
// name to status text. Overlays bind each key to one text field, so
// nested or non-string values would silently render as garbage.
const payloadSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"additionalProperties": {"type": "string"},
	"minProperties": 1
}`

// PayloadValidator validates manually submitted relay payloads before
// they are forwarded to the datastream.
type PayloadValidator struct {
	once     sync.Once
	compiled *jsonschema.Schema
	compErr  error
}

// NewPayloadValidator creates a PayloadValidator. The schema is compiled
// lazily on first use.
func NewPayloadValidator() *PayloadValidator {
	return &PayloadValidator{}
}

// Validate returns nil when payload is a valid relay payload.
func (v *PayloadValidator) Validate(payload map[string]any) error {
	v.once.Do(func() {
		var doc any
		if err := json.Unmarshal([]byte(payloadSchema), &doc); err != nil {
			v.compErr = fmt.Errorf("failed to unmarshal schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("payload.json", doc); err != nil {
			v.compErr = fmt.Errorf("failed to add resource: %w", err)
			return
		}
		v.compiled, v.compErr = c.Compile("payload.json")
	})
	if v.compErr != nil {
		return fmt.Errorf("failed to compile schema: %w", v.compErr)
	}
	return v.compiled.Validate(payload)
}
