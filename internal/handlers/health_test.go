package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	Health(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected Content-Type application/json, got %q", ct)
	}

	var resp healthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Fatalf("expected status ok, got %q", resp.Status)
	}
	if resp.Time.IsZero() {
		t.Fatal("expected response time to be populated")
	}
	if resp.Themes != 3 || resp.DefaultTheme != "theme1" {
		t.Fatalf("unexpected theme summary: %+v", resp)
	}
}

func TestHealthReportsPreferenceBackend(t *testing.T) {
	if got := preferenceBackend(); got != "memory" {
		t.Fatalf("expected memory backend without a session manager, got %q", got)
	}

	_, cleanup := withTestSessionManager(t)
	t.Cleanup(cleanup)
	if got := preferenceBackend(); got != "session" {
		t.Fatalf("expected session backend, got %q", got)
	}

	_, cleanupDB := withTestDatabase(t)
	t.Cleanup(cleanupDB)
	if got := preferenceBackend(); got != "session+database" {
		t.Fatalf("expected layered backend, got %q", got)
	}
}
