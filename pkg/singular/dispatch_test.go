package singular

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeSender records control calls and returns a canned result.
type fakeSender struct {
	calls  [][]ControlItem
	result *ControlResult
	err    error
}

func (s *fakeSender) Control(ctx context.Context, items []ControlItem) (*ControlResult, error) {
	s.calls = append(s.calls, items)
	if s.err != nil {
		return nil, s.err
	}
	if s.result != nil {
		return s.result, nil
	}
	return &ControlResult{Status: 200, Response: "ok"}, nil
}

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	fetcher := &fakeFetcher{model: []any{
		modelNode("A", "Lower Third", []any{
			map[string]any{"id": "Title", "type": "text"},
			map[string]any{"id": "Score", "type": "number"},
			map[string]any{"id": "Countdown", "type": "timecontrol"},
		}),
	}}
	reg := NewRegistry(fetcher)
	if _, err := reg.Rebuild(context.Background()); err != nil {
		t.Fatal(err)
	}
	return reg
}

func TestDispatcher_InOut(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(testRegistry(t), sender, nil)

	res, err := d.In(context.Background(), "lower-third")
	if err != nil {
		t.Fatal(err)
	}
	if res.ID != "A" || res.Status != 200 {
		t.Errorf("unexpected result: %+v", res)
	}

	if _, err := d.Out(context.Background(), "A"); err != nil {
		t.Fatalf("dispatch by id failed: %v", err)
	}

	if len(sender.calls) != 2 {
		t.Fatalf("sent %d calls, want 2", len(sender.calls))
	}
	if got := sender.calls[0][0]; got.SubCompositionID != "A" || got.State != StateIn {
		t.Errorf("first call = %+v, want state In for A", got)
	}
	if got := sender.calls[1][0]; got.State != StateOut {
		t.Errorf("second call = %+v, want state Out", got)
	}
}

func TestDispatcher_UnknownAsset(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(testRegistry(t), sender, nil)

	if _, err := d.In(context.Background(), "nope"); !errors.Is(err, ErrAssetNotFound) {
		t.Errorf("expected ErrAssetNotFound, got %v", err)
	}
	if len(sender.calls) != 0 {
		t.Error("remote called for unknown asset")
	}
}

func TestDispatcher_SetFieldCoerces(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(testRegistry(t), sender, nil)

	res, err := d.SetField(context.Background(), "lower-third", "Score", "10", false)
	if err != nil {
		t.Fatal(err)
	}
	if res.Sent["Score"] != int64(10) {
		t.Errorf("sent %v (%T), want int64 10", res.Sent["Score"], res.Sent["Score"])
	}

	payload := sender.calls[0][0].Payload
	if payload["Score"] != int64(10) {
		t.Errorf("forwarded payload %v, want coerced integer", payload)
	}
}

func TestDispatcher_SetFieldUnknownField(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(testRegistry(t), sender, nil)

	_, err := d.SetField(context.Background(), "lower-third", "Missing", "x", false)
	if !errors.Is(err, ErrFieldNotFound) {
		t.Fatalf("expected ErrFieldNotFound, got %v", err)
	}
	if len(sender.calls) != 0 {
		t.Error("remote called despite unknown field")
	}
}

func TestDispatcher_TimeControlRejectsWrongType(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(testRegistry(t), sender, nil)

	_, err := d.TimeControl(context.Background(), "lower-third", TimeControlRequest{FieldID: "Title", Run: true})
	if !errors.Is(err, ErrNotTimeControl) {
		t.Fatalf("expected ErrNotTimeControl, got %v", err)
	}
	if len(sender.calls) != 0 {
		t.Error("remote called despite non-timecontrol field")
	}
}

func TestDispatcher_TimeControlPayload(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(testRegistry(t), sender, nil)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return fixed }

	seconds := 10
	res, err := d.TimeControl(context.Background(), "lower-third", TimeControlRequest{
		FieldID: "Countdown",
		Run:     true,
		Value:   0,
		Seconds: &seconds,
	})
	if err != nil {
		t.Fatal(err)
	}

	if res.Sent[CountdownSecondsField] != "10" {
		t.Errorf("countdown companion = %v, want string \"10\"", res.Sent[CountdownSecondsField])
	}
	tc, ok := res.Sent["Countdown"].(TimeControlValue)
	if !ok {
		t.Fatalf("Countdown payload is %T, want TimeControlValue", res.Sent["Countdown"])
	}
	if !tc.IsRunning || tc.Value != 0 {
		t.Errorf("unexpected timecontrol value: %+v", tc)
	}
	if tc.UTC != float64(fixed.UnixMilli()) {
		t.Errorf("UTC = %v, want %v", tc.UTC, float64(fixed.UnixMilli()))
	}
}

func TestDispatcher_TimeControlUTCOverride(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(testRegistry(t), sender, nil)

	override := 1234567890.0
	res, err := d.TimeControl(context.Background(), "lower-third", TimeControlRequest{
		FieldID:   "Countdown",
		Run:       false,
		UTCMillis: &override,
	})
	if err != nil {
		t.Fatal(err)
	}
	tc := res.Sent["Countdown"].(TimeControlValue)
	if tc.UTC != override {
		t.Errorf("UTC = %v, want override %v", tc.UTC, override)
	}
	if tc.IsRunning {
		t.Error("isRunning = true, want false")
	}
}

func TestDispatcher_RemoteRejectionPassesThrough(t *testing.T) {
	sender := &fakeSender{err: &RemoteError{Status: 422, Body: "bad value"}}
	d := NewDispatcher(testRegistry(t), sender, nil)

	_, err := d.SetField(context.Background(), "lower-third", "Title", "x", false)
	var remoteErr *RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("expected *RemoteError, got %v", err)
	}
	if remoteErr.Status != 422 || remoteErr.Body != "bad value" {
		t.Errorf("remote status/body not passed through: %+v", remoteErr)
	}
}

func TestDispatcher_LogsSuccessfulCommands(t *testing.T) {
	sender := &fakeSender{}
	events := NewEventLog(10)
	d := NewDispatcher(testRegistry(t), sender, events)

	if _, err := d.In(context.Background(), "lower-third"); err != nil {
		t.Fatal(err)
	}
	if _, err := d.SetField(context.Background(), "lower-third", "Missing", "x", false); err == nil {
		t.Fatal("expected error")
	}

	entries := events.Recent(0)
	if len(entries) != 1 {
		t.Fatalf("logged %d entries, want 1 (failures are not logged)", len(entries))
	}
	if entries[0].Kind != StateIn {
		t.Errorf("entry kind = %q, want In", entries[0].Kind)
	}
}
