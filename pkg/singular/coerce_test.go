package singular

import "testing"

func TestCoerceValue_NumberInteger(t *testing.T) {
	got := CoerceValue(Field{Type: "number"}, "10", false)
	if got != int64(10) {
		t.Errorf("got %v (%T), want int64 10", got, got)
	}
}

func TestCoerceValue_NumberFloat(t *testing.T) {
	got := CoerceValue(Field{Type: "number"}, "10.5", false)
	if got != 10.5 {
		t.Errorf("got %v (%T), want float64 10.5", got, got)
	}
}

func TestCoerceValue_NumberParseFailureFallsBack(t *testing.T) {
	got := CoerceValue(Field{Type: "number"}, "abc", false)
	if got != "abc" {
		t.Errorf("got %v, want raw string passthrough", got)
	}
}

func TestCoerceValue_NumericFamily(t *testing.T) {
	for _, ftype := range []string{"number", "range", "slider", "Slider", "RANGE"} {
		got := CoerceValue(Field{Type: ftype}, "3", false)
		if got != int64(3) {
			t.Errorf("type %q: got %v (%T), want int64 3", ftype, got, got)
		}
	}
}

func TestCoerceValue_BooleanTruthy(t *testing.T) {
	for _, raw := range []string{"1", "true", "True", "yes", "YES", "on", "On"} {
		got := CoerceValue(Field{Type: "toggle"}, raw, false)
		if got != true {
			t.Errorf("toggle %q: got %v, want true", raw, got)
		}
	}
}

func TestCoerceValue_BooleanFalsy(t *testing.T) {
	for _, raw := range []string{"nope", "0", "false", "off", ""} {
		got := CoerceValue(Field{Type: "checkbox"}, raw, false)
		if got != false {
			t.Errorf("checkbox %q: got %v, want false", raw, got)
		}
	}
}

func TestCoerceValue_UnknownTypePassthrough(t *testing.T) {
	for _, ftype := range []string{"text", "", "color", "mystery"} {
		got := CoerceValue(Field{Type: ftype}, "42", false)
		if got != "42" {
			t.Errorf("type %q: got %v, want raw string", ftype, got)
		}
	}
}

func TestCoerceValue_AsStringBypassesCoercion(t *testing.T) {
	got := CoerceValue(Field{Type: "number"}, "10", true)
	if got != "10" {
		t.Errorf("got %v (%T), want string \"10\"", got, got)
	}
}
