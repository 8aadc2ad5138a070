package singular

import (
	"context"
	"strings"
	"testing"
)

func TestBuildCatalog(t *testing.T) {
	reg := testRegistry(t)
	catalog := BuildCatalog(reg, "http://localhost:3113")

	entry, ok := catalog["lower-third"]
	if !ok {
		t.Fatalf("catalog missing lower-third: %v", catalog)
	}
	if entry.InURL != "http://localhost:3113/lower-third/in" {
		t.Errorf("in_url = %q", entry.InURL)
	}
	if entry.OutURL != "http://localhost:3113/lower-third/out" {
		t.Errorf("out_url = %q", entry.OutURL)
	}

	title := entry.Fields["Title"]
	if !strings.Contains(title.SetURL, "/lower-third/set?field=Title&value=VALUE") {
		t.Errorf("set_url = %q", title.SetURL)
	}
	if title.TimeControlStartURL != "" {
		t.Error("text field should not get timecontrol URLs")
	}

	cd := entry.Fields["Countdown"]
	if !strings.Contains(cd.TimeControlStartURL, "run=true") {
		t.Errorf("start url = %q", cd.TimeControlStartURL)
	}
	if !strings.Contains(cd.TimeControlStopURL, "run=false") {
		t.Errorf("stop url = %q", cd.TimeControlStopURL)
	}
	if !strings.Contains(cd.StartTenSecondsURL, "seconds=10") {
		t.Errorf("10s url = %q", cd.StartTenSecondsURL)
	}
}

func TestBuildCatalog_EscapesFieldIDs(t *testing.T) {
	fetcher := &fakeFetcher{model: []any{
		modelNode("A", "Clock", []any{
			map[string]any{"id": "Time Left", "type": "timecontrol"},
		}),
	}}
	reg := NewRegistry(fetcher)
	if _, err := reg.Rebuild(context.Background()); err != nil {
		t.Fatal(err)
	}

	catalog := BuildCatalog(reg, "http://h")
	set := catalog["clock"].Fields["Time Left"].SetURL
	if strings.Contains(set, "Time Left") {
		t.Errorf("field id not escaped in %q", set)
	}
}

func TestBuildCatalog_SkipsEmptyFieldIDs(t *testing.T) {
	fetcher := &fakeFetcher{model: []any{
		modelNode("A", "Clock", []any{
			map[string]any{"type": "text"},
			map[string]any{"id": "Label", "type": "text"},
		}),
	}}
	reg := NewRegistry(fetcher)
	if _, err := reg.Rebuild(context.Background()); err != nil {
		t.Fatal(err)
	}

	catalog := BuildCatalog(reg, "http://h")
	if len(catalog["clock"].Fields) != 1 {
		t.Errorf("got %d catalog fields, want 1 (empty ids skipped)", len(catalog["clock"].Fields))
	}
}

func TestBuildCatalog_ReflectsCurrentGeneration(t *testing.T) {
	fetcher := &fakeFetcher{model: []any{modelNode("A", "One", []any{})}}
	reg := NewRegistry(fetcher)
	if _, err := reg.Rebuild(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, ok := BuildCatalog(reg, "http://h")["one"]; !ok {
		t.Fatal("catalog missing entry from first generation")
	}

	fetcher.model = []any{modelNode("B", "Two", []any{})}
	if _, err := reg.Rebuild(context.Background()); err != nil {
		t.Fatal(err)
	}

	catalog := BuildCatalog(reg, "http://h")
	if _, stale := catalog["one"]; stale {
		t.Error("catalog still contains entry from replaced generation")
	}
	if _, ok := catalog["two"]; !ok {
		t.Error("catalog missing entry from new generation")
	}
}
