package holidays

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"stehauf/internal/clock"
	"stehauf/internal/logging"
	"stehauf/internal/storage"
)

var fixture = []Holiday{
	{Date: "2024-01-01", LocalName: "Neujahr", Name: "New Year's Day", CountryCode: "DE"},
	{Date: "2024-10-03", LocalName: "Tag der Deutschen Einheit", Name: "German Unity Day", CountryCode: "DE"},
}

func newTestServer(t *testing.T, requests *atomic.Int32, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		_ = json.NewEncoder(w).Encode(fixture)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_FetchAndCache(t *testing.T) {
	var requests atomic.Int32
	srv := newTestServer(t, &requests, http.StatusOK)

	clk := clock.NewManual(time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC))
	c := NewClient(storage.NewMemoryStore(), logging.Nop(), clk, "DE", WithBaseURL(srv.URL))

	got := c.Holidays(context.Background(), 2024)
	if len(got) != 2 || got[0].LocalName != "Neujahr" {
		t.Fatalf("Holidays = %+v", got)
	}
	if requests.Load() != 1 {
		t.Fatalf("expected 1 request, got %d", requests.Load())
	}

	// Within the TTL the cache answers, no second request.
	clk.Advance(23 * time.Hour)
	c.Holidays(context.Background(), 2024)
	if requests.Load() != 1 {
		t.Errorf("fresh cache was bypassed, %d requests", requests.Load())
	}

	// Past the TTL the list is refetched.
	clk.Advance(2 * time.Hour)
	c.Holidays(context.Background(), 2024)
	if requests.Load() != 2 {
		t.Errorf("stale cache was not refreshed, %d requests", requests.Load())
	}
}

func TestClient_CacheSurvivesNewClient(t *testing.T) {
	var requests atomic.Int32
	srv := newTestServer(t, &requests, http.StatusOK)

	clk := clock.NewManual(time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC))
	kv := storage.NewMemoryStore()

	NewClient(kv, logging.Nop(), clk, "DE", WithBaseURL(srv.URL)).Holidays(context.Background(), 2024)

	fresh := NewClient(kv, logging.Nop(), clk, "DE", WithBaseURL(srv.URL))
	got := fresh.Holidays(context.Background(), 2024)
	if len(got) != 2 {
		t.Fatalf("Holidays from persisted cache = %+v", got)
	}
	if requests.Load() != 1 {
		t.Errorf("persisted cache was bypassed, %d requests", requests.Load())
	}
}

func TestClient_FailureFallsBackToStaleCache(t *testing.T) {
	var requests atomic.Int32
	srv := newTestServer(t, &requests, http.StatusOK)

	clk := clock.NewManual(time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC))
	kv := storage.NewMemoryStore()
	c := NewClient(kv, logging.Nop(), clk, "DE", WithBaseURL(srv.URL))

	c.Holidays(context.Background(), 2024)
	srv.Close()
	clk.Advance(25 * time.Hour)

	got := c.Holidays(context.Background(), 2024)
	if len(got) != 2 {
		t.Errorf("stale cache not served on fetch failure: %+v", got)
	}
}

func TestClient_FailureWithoutCacheYieldsEmpty(t *testing.T) {
	var requests atomic.Int32
	srv := newTestServer(t, &requests, http.StatusInternalServerError)

	clk := clock.NewManual(time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC))
	c := NewClient(storage.NewMemoryStore(), logging.Nop(), clk, "DE", WithBaseURL(srv.URL))

	got := c.Holidays(context.Background(), 2024)
	if len(got) != 0 {
		t.Errorf("expected empty list on failure without cache, got %+v", got)
	}
}

func TestIsHoliday(t *testing.T) {
	if !IsHoliday("2024-10-03", fixture) {
		t.Error("2024-10-03 not recognized")
	}
	if IsHoliday("2024-10-04", fixture) {
		t.Error("2024-10-04 wrongly recognized")
	}
	if IsHoliday("2024-10-03", nil) {
		t.Error("empty list matched")
	}
}
