package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blueelliott/singular-controls/pkg/config"
	"github.com/blueelliott/singular-controls/pkg/datastream"
	"github.com/blueelliott/singular-controls/pkg/db"
	"github.com/blueelliott/singular-controls/pkg/relay"
	"github.com/blueelliott/singular-controls/pkg/singular"
)

// memStore is an in-memory SettingsStore for tests.
type memStore struct {
	settings db.Settings
}

func (m *memStore) Get(ctx context.Context) (*db.Settings, error) {
	s := m.settings
	return &s, nil
}

func (m *memStore) Save(ctx context.Context, s *db.Settings) error {
	m.settings = *s
	return nil
}

type fakeFetcher struct {
	model any
	err   error
}

func (f *fakeFetcher) FetchModel(ctx context.Context) (any, error) {
	return f.model, f.err
}

type fakeSender struct {
	calls [][]singular.ControlItem
	err   error
}

func (f *fakeSender) Control(ctx context.Context, items []singular.ControlItem) (*singular.ControlResult, error) {
	f.calls = append(f.calls, items)
	if f.err != nil {
		return nil, f.err
	}
	return &singular.ControlResult{Status: 200, Response: "ok"}, nil
}

type fakeStatusFetcher struct {
	statuses map[string]string
}

func (f *fakeStatusFetcher) FetchStatuses(ctx context.Context, appID, appKey string) (map[string]string, error) {
	return f.statuses, nil
}

type fakePutter struct {
	calls int
}

func (p *fakePutter) Put(ctx context.Context, streamURL string, payload any) (*datastream.Result, error) {
	p.calls++
	if streamURL == "" {
		return nil, datastream.ErrNoStreamURL
	}
	return &datastream.Result{StreamURL: streamURL, Status: 200, Response: "ok"}, nil
}

func testModel() any {
	return map[string]any{
		"id":    "root",
		"name":  "Show",
		"model": []any{},
		"subcompositions": []any{
			map[string]any{
				"id":   "A",
				"name": "Lower Third",
				"model": []any{
					map[string]any{"id": "Title", "type": "text"},
					map[string]any{"id": "Score", "type": "number"},
					map[string]any{"id": "Countdown", "type": "timecontrol"},
				},
			},
		},
	}
}

type testEnv struct {
	router *Router
	sender *fakeSender
	store  *memStore
	putter *fakePutter
}

func newTestEnv(t *testing.T, settings db.Settings) *testEnv {
	t.Helper()
	store := &memStore{settings: settings}
	cfg, err := config.Load(context.Background(), store)
	if err != nil {
		t.Fatal(err)
	}

	fetcher := &fakeFetcher{model: testModel()}
	registry := singular.NewRegistry(fetcher)
	if _, err := registry.Rebuild(context.Background()); err != nil {
		t.Fatal(err)
	}

	sender := &fakeSender{}
	events := singular.NewEventLog(singular.DefaultLogCapacity)
	dispatcher := singular.NewDispatcher(registry, sender, events)

	putter := &fakePutter{}
	relaySvc := relay.NewService(cfg, &fakeStatusFetcher{statuses: map[string]string{"Victoria": "Good Service"}}, putter)

	return &testEnv{
		router: NewRouter(cfg, registry, dispatcher, fetcher, events, relaySvc),
		sender: sender,
		store:  store,
		putter: putter,
	}
}

func (e *testEnv) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.Engine().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding %q: %v", w.Body.String(), err)
	}
	return out
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, db.Settings{Port: 3113})

	w := env.do(t, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decode[map[string]any](t, w)
	if body["status"] != "ok" || body["port"] != float64(3113) {
		t.Errorf("body = %v", body)
	}
}

func TestRegistryListAndRefresh(t *testing.T) {
	env := newTestEnv(t, db.Settings{})

	w := env.do(t, http.MethodGet, "/registry/list", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	list := decode[map[string]struct {
		ID     string   `json:"id"`
		Fields []string `json:"fields"`
	}](t, w)
	entry, ok := list["lower-third"]
	if !ok {
		t.Fatalf("lower-third missing from %v", list)
	}
	if entry.ID != "A" || len(entry.Fields) != 3 {
		t.Errorf("entry = %+v", entry)
	}

	w = env.do(t, http.MethodPost, "/registry/refresh", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("refresh status = %d", w.Code)
	}
	refresh := decode[map[string]any](t, w)
	if refresh["ok"] != true || refresh["count"] != float64(2) {
		t.Errorf("refresh = %v", refresh)
	}
}

func TestControlInOutViaGETAndPOST(t *testing.T) {
	env := newTestEnv(t, db.Settings{})

	if w := env.do(t, http.MethodGet, "/lower-third/in", nil); w.Code != http.StatusOK {
		t.Fatalf("in status = %d: %s", w.Code, w.Body.String())
	}
	if w := env.do(t, http.MethodPost, "/A/out", nil); w.Code != http.StatusOK {
		t.Fatalf("out status = %d: %s", w.Code, w.Body.String())
	}

	if len(env.sender.calls) != 2 {
		t.Fatalf("sender called %d times", len(env.sender.calls))
	}
	if env.sender.calls[0][0].State != singular.StateIn {
		t.Errorf("first call state = %q", env.sender.calls[0][0].State)
	}
	if env.sender.calls[1][0].State != singular.StateOut {
		t.Errorf("second call state = %q", env.sender.calls[1][0].State)
	}
}

func TestControlSetCoercesValue(t *testing.T) {
	env := newTestEnv(t, db.Settings{})

	w := env.do(t, http.MethodGet, "/lower-third/set?field=Score&value=10", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	payload := env.sender.calls[0][0].Payload
	if payload["Score"] != int64(10) {
		t.Errorf("payload = %#v", payload)
	}
}

func TestControlSetMissingValue(t *testing.T) {
	env := newTestEnv(t, db.Settings{})

	w := env.do(t, http.MethodGet, "/lower-third/set?field=Score", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if len(env.sender.calls) != 0 {
		t.Error("sender should not be called on a bad request")
	}
}

func TestControlUnknownAssetIs404(t *testing.T) {
	env := newTestEnv(t, db.Settings{})

	w := env.do(t, http.MethodGet, "/no-such-thing/in", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	body := decode[map[string]any](t, w)
	if body["error"] != "not_found" {
		t.Errorf("body = %v", body)
	}
}

func TestControlTimeControlWrongField(t *testing.T) {
	env := newTestEnv(t, db.Settings{})

	w := env.do(t, http.MethodGet, "/lower-third/timecontrol?field=Title", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	body := decode[map[string]any](t, w)
	if body["error"] != "not_timecontrol" {
		t.Errorf("body = %v", body)
	}
}

func TestHelpBuildsCommandURLs(t *testing.T) {
	env := newTestEnv(t, db.Settings{})

	w := env.do(t, http.MethodGet, "/lower-third/help", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "/lower-third/set?field=Title") {
		t.Errorf("help missing set url: %s", w.Body.String())
	}
}

func TestCommandsCatalog(t *testing.T) {
	env := newTestEnv(t, db.Settings{})

	w := env.do(t, http.MethodGet, "/registry/commands", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "lower-third") {
		t.Errorf("catalog missing entry: %s", w.Body.String())
	}
}

func TestPingReportsModelShape(t *testing.T) {
	env := newTestEnv(t, db.Settings{})

	w := env.do(t, http.MethodGet, "/singular/ping", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	body := decode[map[string]any](t, w)
	if body["ok"] != true || body["model_type"] != "object" {
		t.Errorf("body = %v", body)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	env := newTestEnv(t, db.Settings{Port: 3113, Theme: "dark"})

	w := env.do(t, http.MethodPost, "/config/singular", map[string]string{"token": "tok123"})
	if w.Code != http.StatusOK {
		t.Fatalf("set token status = %d: %s", w.Code, w.Body.String())
	}
	if env.store.settings.SingularToken != "tok123" {
		t.Errorf("token not persisted: %+v", env.store.settings)
	}

	w = env.do(t, http.MethodPost, "/config/stream", map[string]string{"stream_url": "abc123"})
	if w.Code != http.StatusOK {
		t.Fatalf("set stream status = %d: %s", w.Code, w.Body.String())
	}
	if !strings.HasSuffix(env.store.settings.StreamURL, "/abc123") {
		t.Errorf("bare stream id not expanded: %q", env.store.settings.StreamURL)
	}

	w = env.do(t, http.MethodGet, "/config", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get config status = %d", w.Code)
	}
	cfg := decode[map[string]map[string]any](t, w)
	if cfg["singular"]["token_set"] != true {
		t.Errorf("config = %v", cfg)
	}
}

func TestConfigTokenRequired(t *testing.T) {
	env := newTestEnv(t, db.Settings{})

	w := env.do(t, http.MethodPost, "/config/singular", map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestModuleToggle(t *testing.T) {
	env := newTestEnv(t, db.Settings{})

	w := env.do(t, http.MethodPost, "/config/modules/tfl", map[string]bool{"enabled": true})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if !env.store.settings.EnableTfL {
		t.Error("toggle not persisted")
	}

	// Module state is read live, so the relay works right after the toggle.
	if w := env.do(t, http.MethodGet, "/status", nil); w.Code != http.StatusOK {
		t.Fatalf("status after enable = %d: %s", w.Code, w.Body.String())
	}
}

func TestRelayDisabledIs403(t *testing.T) {
	env := newTestEnv(t, db.Settings{})

	w := env.do(t, http.MethodGet, "/status", nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
}

func TestRelayUpdateForwards(t *testing.T) {
	env := newTestEnv(t, db.Settings{EnableTfL: true, StreamURL: "https://datastream.example/ds1"})

	w := env.do(t, http.MethodPost, "/update", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if env.putter.calls != 1 {
		t.Errorf("putter called %d times", env.putter.calls)
	}
	body := decode[map[string]any](t, w)
	if body["status"] != float64(200) {
		t.Errorf("body = %v", body)
	}
}

func TestRelayManualRejectsEmptyPayload(t *testing.T) {
	env := newTestEnv(t, db.Settings{StreamURL: "https://datastream.example/ds1"})

	w := env.do(t, http.MethodPost, "/manual", map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if env.putter.calls != 0 {
		t.Error("invalid payload was forwarded")
	}
}

func TestTfLLines(t *testing.T) {
	env := newTestEnv(t, db.Settings{})

	w := env.do(t, http.MethodGet, "/tfl/lines", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decode[map[string][]string](t, w)
	if len(body["lines"]) == 0 {
		t.Error("no lines returned")
	}
}

func TestEventsRecordDispatches(t *testing.T) {
	env := newTestEnv(t, db.Settings{})

	if w := env.do(t, http.MethodGet, "/lower-third/in", nil); w.Code != http.StatusOK {
		t.Fatalf("in status = %d", w.Code)
	}

	w := env.do(t, http.MethodGet, "/events", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("events status = %d", w.Code)
	}
	body := decode[map[string][]string](t, w)
	if len(body["events"]) != 1 || !strings.Contains(body["events"][0], "lower-third") {
		t.Errorf("events = %v", body["events"])
	}
}

func TestStaticRoutesWinOverKey(t *testing.T) {
	env := newTestEnv(t, db.Settings{})

	// /registry/list must route to the registry handler, not be read as
	// key "registry" with an unknown subpath.
	w := env.do(t, http.MethodGet, "/registry/list", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}
