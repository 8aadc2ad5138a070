package singular

import (
	"context"
	"fmt"
	"time"
)

// CommandResult describes one completed dispatch: the resolved asset id,
// what was sent, and the remote's response.
type CommandResult struct {
	Key      string         `json:"key"`
	ID       string         `json:"id"`
	Sent     map[string]any `json:"sent,omitempty"`
	Status   int            `json:"status"`
	Response string         `json:"response"`
}

// Dispatcher validates commands against the registry and forwards them as
// control mutations. Dispatches are independent of one another and safe to
// run concurrently; the only shared read is the registry snapshot.
type Dispatcher struct {
	registry *Registry
	sender   ControlSender
	events   *EventLog
	now      func() time.Time
}

// NewDispatcher creates a Dispatcher. events may be nil to disable command
// logging.
func NewDispatcher(registry *Registry, sender ControlSender, events *EventLog) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		sender:   sender,
		events:   events,
		now:      time.Now,
	}
}

// In transitions the subcomposition to the In state.
func (d *Dispatcher) In(ctx context.Context, keyOrID string) (*CommandResult, error) {
	return d.transition(ctx, keyOrID, StateIn)
}

// Out transitions the subcomposition to the Out state.
func (d *Dispatcher) Out(ctx context.Context, keyOrID string) (*CommandResult, error) {
	return d.transition(ctx, keyOrID, StateOut)
}

func (d *Dispatcher) transition(ctx context.Context, keyOrID, state string) (*CommandResult, error) {
	key, asset, err := d.registry.Resolve(keyOrID)
	if err != nil {
		return nil, err
	}
	res, err := d.sender.Control(ctx, []ControlItem{{SubCompositionID: asset.ID, State: state}})
	if err != nil {
		return nil, err
	}
	d.logEvent(state, fmt.Sprintf("%s (%s)", key, asset.ID))
	return &CommandResult{Key: key, ID: asset.ID, Status: res.Status, Response: res.Response}, nil
}

// SetField coerces raw per the field's declared type and forwards it as a
// payload mutation. Fails with ErrFieldNotFound before any remote call
// when the field is absent from the asset's model.
func (d *Dispatcher) SetField(ctx context.Context, keyOrID, fieldID, raw string, asString bool) (*CommandResult, error) {
	key, asset, err := d.registry.Resolve(keyOrID)
	if err != nil {
		return nil, err
	}
	field, ok := asset.Fields[fieldID]
	if !ok {
		return nil, fmt.Errorf("%w on %s: %s", ErrFieldNotFound, key, fieldID)
	}

	payload := map[string]any{fieldID: CoerceValue(field, raw, asString)}
	res, err := d.sender.Control(ctx, []ControlItem{{SubCompositionID: asset.ID, Payload: payload}})
	if err != nil {
		return nil, err
	}
	d.logEvent("SET", fmt.Sprintf("%s (%s) field=%s value=%s", key, asset.ID, fieldID, raw))
	return &CommandResult{Key: key, ID: asset.ID, Sent: payload, Status: res.Status, Response: res.Response}, nil
}

// TimeControlRequest carries the parameters of a timecontrol dispatch.
// UTCMillis overrides the wall clock when set; Seconds adds the companion
// countdown duration field.
type TimeControlRequest struct {
	FieldID   string
	Run       bool
	Value     int
	UTCMillis *float64
	Seconds   *int
}

// TimeControl starts or stops a timecontrol field. Fails with
// ErrFieldNotFound or ErrNotTimeControl before any remote call.
func (d *Dispatcher) TimeControl(ctx context.Context, keyOrID string, req TimeControlRequest) (*CommandResult, error) {
	key, asset, err := d.registry.Resolve(keyOrID)
	if err != nil {
		return nil, err
	}
	field, ok := asset.Fields[req.FieldID]
	if !ok {
		return nil, fmt.Errorf("%w on %s: %s", ErrFieldNotFound, key, req.FieldID)
	}
	if !field.IsTimeControl() {
		return nil, fmt.Errorf("%w: %s", ErrNotTimeControl, req.FieldID)
	}

	utc := float64(d.now().UnixMilli())
	if req.UTCMillis != nil {
		utc = *req.UTCMillis
	}

	payload := map[string]any{}
	if req.Seconds != nil {
		payload[CountdownSecondsField] = fmt.Sprintf("%d", *req.Seconds)
	}
	payload[req.FieldID] = TimeControlValue{UTC: utc, IsRunning: req.Run, Value: req.Value}

	res, err := d.sender.Control(ctx, []ControlItem{{SubCompositionID: asset.ID, Payload: payload}})
	if err != nil {
		return nil, err
	}
	d.logEvent("TIMECONTROL", fmt.Sprintf("%s (%s) field=%s run=%t", key, asset.ID, req.FieldID, req.Run))
	return &CommandResult{Key: key, ID: asset.ID, Sent: payload, Status: res.Status, Response: res.Response}, nil
}

func (d *Dispatcher) logEvent(kind, detail string) {
	if d.events != nil {
		d.events.Append(kind, detail)
	}
}
