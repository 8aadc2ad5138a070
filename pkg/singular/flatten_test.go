package singular

import (
	"encoding/json"
	"testing"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("failed to decode fixture: %v", err)
	}
	return v
}

func TestFlattenNodes_ParentBeforeChild(t *testing.T) {
	tree := decode(t, `{
		"id": "root", "name": "Root", "model": [],
		"subcompositions": [
			{"id": "a", "name": "A", "model": [],
			 "subcompositions": [{"id": "a1", "name": "A1", "model": []}]},
			{"id": "b", "name": "B", "model": []}
		]
	}`)

	nodes := flattenNodes(tree)
	var ids []string
	for _, n := range nodes {
		id, _ := n.node["id"].(string)
		ids = append(ids, id)
	}

	want := []string{"root", "a", "a1", "b"}
	if len(ids) != len(want) {
		t.Fatalf("flattened %d nodes, want %d: %v", len(ids), len(want), ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestFlattenNodes_ListRootNotEmitted(t *testing.T) {
	tree := decode(t, `[
		{"id": "x", "name": "X", "model": []},
		{"id": "y", "name": "Y", "model": []}
	]`)

	nodes := flattenNodes(tree)
	if len(nodes) != 2 {
		t.Fatalf("flattened %d nodes, want 2", len(nodes))
	}
}

func TestFlattenNodes_UppercaseChildCollection(t *testing.T) {
	tree := decode(t, `{
		"id": "root", "name": "Root", "model": [],
		"Subcompositions": [{"id": "c", "name": "C", "model": []}]
	}`)

	nodes := flattenNodes(tree)
	if len(nodes) != 2 {
		t.Fatalf("flattened %d nodes, want 2", len(nodes))
	}
}

func TestFlattenNodes_DoesNotDescendOtherFields(t *testing.T) {
	tree := decode(t, `{
		"id": "root", "name": "Root", "model": [],
		"children": [{"id": "hidden", "name": "Hidden", "model": []}]
	}`)

	nodes := flattenNodes(tree)
	if len(nodes) != 1 {
		t.Fatalf("flattened %d nodes, want 1 (must not descend into unrecognized fields)", len(nodes))
	}
}

func TestAdmit_RejectsNonAddressableNodes(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing id", `{"name": "N", "model": []}`},
		{"empty id", `{"id": "", "name": "N", "model": []}`},
		{"missing name", `{"id": "x", "model": []}`},
		{"missing model", `{"id": "x", "name": "N"}`},
	}
	for _, tc := range cases {
		node := decode(t, tc.raw).(map[string]any)
		if _, ok := (rawNode{node: node}).admit(); ok {
			t.Errorf("%s: node admitted, want rejected", tc.name)
		}
	}
}

func TestAdmit_BuildsFieldMap(t *testing.T) {
	node := decode(t, `{
		"id": "x", "name": "X",
		"model": [
			{"id": "Title", "type": "text"},
			{"id": "Countdown", "type": "timecontrol", "title": "Clock"}
		]
	}`).(map[string]any)

	asset, ok := (rawNode{node: node}).admit()
	if !ok {
		t.Fatal("node rejected, want admitted")
	}
	if len(asset.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(asset.Fields))
	}
	if asset.Fields["Title"].Type != "text" {
		t.Errorf("Title type = %q, want text", asset.Fields["Title"].Type)
	}
	cd := asset.Fields["Countdown"]
	if !cd.IsTimeControl() {
		t.Error("Countdown should be a timecontrol field")
	}
	if cd.Meta["title"] != "Clock" {
		t.Errorf("opaque metadata not carried: %v", cd.Meta)
	}
}
