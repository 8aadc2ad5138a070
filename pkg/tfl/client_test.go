package tfl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchStatuses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"name": "Victoria", "lineStatuses": [{"statusSeverityDescription": "Good Service"}]},
			{"name": "Northern", "lineStatuses": [{"statusSeverityDescription": "Minor Delays"}]},
			{"name": "Tram", "lineStatuses": []}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	statuses, err := c.FetchStatuses(context.Background(), "", "")
	if err != nil {
		t.Fatal(err)
	}

	if statuses["Victoria"] != "Good Service" {
		t.Errorf("Victoria = %q", statuses["Victoria"])
	}
	if statuses["Northern"] != "Minor Delays" {
		t.Errorf("Northern = %q", statuses["Northern"])
	}
	if statuses["Tram"] != "Unknown" {
		t.Errorf("Tram = %q, want Unknown for missing status", statuses["Tram"])
	}
}

func TestFetchStatuses_AppCredentialsSent(t *testing.T) {
	var gotID, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.URL.Query().Get("app_id")
		gotKey = r.URL.Query().Get("app_key")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.FetchStatuses(context.Background(), "id1", "key1"); err != nil {
		t.Fatal(err)
	}
	if gotID != "id1" || gotKey != "key1" {
		t.Errorf("credentials not forwarded: id=%q key=%q", gotID, gotKey)
	}
}

func TestFetchStatuses_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.FetchStatuses(context.Background(), "", ""); err == nil {
		t.Error("expected error for non-success status")
	}
}

func TestLineTables(t *testing.T) {
	if len(Lines) != len(UndergroundLines)+len(OvergroundLines) {
		t.Errorf("Lines length %d does not cover both groups", len(Lines))
	}
	for _, line := range Lines {
		if _, ok := LineColours[line]; !ok {
			t.Errorf("no colour for line %q", line)
		}
	}
}
