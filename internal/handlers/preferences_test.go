package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"vitrine/models"
)

func themeRequest(values url.Values, htmx bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/theme", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return req
}

func TestUpdateThemePersistsToSession(t *testing.T) {
	sm, cleanup := withTestSessionManager(t)
	t.Cleanup(cleanup)

	req := themeRequest(url.Values{"theme": {"theme3"}, "page": {"about"}}, true)
	ctx := loadSession(t, sm, req)
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()
	UpdateTheme(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if got := sm.GetString(ctx, "pref:theme"); got != "theme3" {
		t.Fatalf("expected session to store theme3, got %q", got)
	}
	body := w.Body.String()
	if !strings.Contains(body, `data-theme="theme3"`) || !strings.Contains(body, `data-page="about"`) {
		t.Fatal("expected frame to render theme3 on the about page")
	}

	next := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	Index(rec, next)
	if !strings.Contains(rec.Body.String(), `data-theme="theme3"`) {
		t.Fatal("expected next request to restore theme3")
	}
}

func TestUpdateThemeSetsBodyClassTrigger(t *testing.T) {

	w := httptest.NewRecorder()
	UpdateTheme(w, themeRequest(url.Values{"theme": {"theme2"}}, true))

	header := w.Header().Get("HX-Trigger")
	if header == "" {
		t.Fatal("expected HX-Trigger header")
	}
	var payload map[string]themeChangedEvent
	if err := json.Unmarshal([]byte(header), &payload); err != nil {
		t.Fatalf("failed to decode trigger: %v", err)
	}
	event, ok := payload["themeChanged"]
	if !ok {
		t.Fatalf("expected themeChanged event, got %v", payload)
	}
	if event.Theme != "theme2" {
		t.Fatalf("expected theme2, got %q", event.Theme)
	}
	if !strings.Contains(event.BodyClass, "bg-gray-900") || !strings.Contains(event.BodyClass, "font-serif") {
		t.Fatalf("unexpected body class %q", event.BodyClass)
	}
}

func TestUpdateThemeRejectsUnknownTheme(t *testing.T) {
	sm, cleanup := withTestSessionManager(t)
	t.Cleanup(cleanup)

	req := themeRequest(url.Values{"theme": {"theme9"}}, true)
	ctx := loadSession(t, sm, req)
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()
	UpdateTheme(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if sm.Exists(ctx, "pref:theme") {
		t.Fatal("expected nothing to be persisted for an invalid theme")
	}
	if w.Header().Get("HX-Trigger") != "" {
		t.Fatal("expected no trigger for an invalid theme")
	}
}

func TestUpdateThemeRejectsUnknownPage(t *testing.T) {

	w := httptest.NewRecorder()
	UpdateTheme(w, themeRequest(url.Values{"theme": {"theme2"}, "page": {"nowhere"}}, true))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestUpdateThemeRedirectsWithoutHTMX(t *testing.T) {

	w := httptest.NewRecorder()
	UpdateTheme(w, themeRequest(url.Values{"theme": {"theme2"}, "page": {"contact"}}, false))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/?page=contact" {
		t.Fatalf("expected redirect to /?page=contact, got %q", loc)
	}
}

func TestUpdateThemePersistsToDatabase(t *testing.T) {
	db, cleanupDB := withTestDatabase(t)
	t.Cleanup(cleanupDB)
	sm, cleanup := withTestSessionManager(t)
	t.Cleanup(cleanup)

	req := themeRequest(url.Values{"theme": {"theme2"}}, true)
	ctx := loadSession(t, sm, req)
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()
	UpdateTheme(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	visitorID := sm.GetString(ctx, "visitor:id")
	if visitorID == "" {
		t.Fatal("expected a visitor id to be assigned")
	}
	var pref models.Preference
	if err := db.Where("visitor_id = ? AND name = ?", visitorID, "theme").First(&pref).Error; err != nil {
		t.Fatalf("failed to load preference row: %v", err)
	}
	if pref.Value != "theme2" {
		t.Fatalf("expected stored value theme2, got %q", pref.Value)
	}
}

func TestUpdateThemeRequiresPost(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/theme", nil)
	w := httptest.NewRecorder()
	UpdateTheme(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", w.Code)
	}
}
