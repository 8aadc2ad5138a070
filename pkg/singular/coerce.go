package singular

import (
	"strconv"
	"strings"
)

// CoerceValue converts a raw query string into the value type implied by
// the field's declared type. asString is an escape hatch that skips all
// coercion. Numeric parse failures fall back to the raw string instead of
// failing the dispatch: Singular itself will accept or reject the value,
// the bridge's job is forwarding, not strict validation.
func CoerceValue(field Field, raw string, asString bool) any {
	if asString {
		return raw
	}
	switch strings.ToLower(field.Type) {
	case FieldTypeNumber, FieldTypeRange, FieldTypeSlider:
		if strings.Contains(raw, ".") {
			if f, err := strconv.ParseFloat(raw, 64); err == nil {
				return f
			}
			return raw
		}
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n
		}
		return raw
	case FieldTypeCheckbox, FieldTypeToggle, FieldTypeBool, FieldTypeBoolean:
		switch strings.ToLower(raw) {
		case "1", "true", "yes", "on":
			return true
		}
		return false
	}
	return raw
}

// IsTimeControl reports whether the field's declared type is timecontrol.
func (f Field) IsTimeControl() bool {
	return strings.EqualFold(f.Type, FieldTypeTimeControl)
}
