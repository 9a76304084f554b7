package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	applog "vitrine/internal/log"
	"vitrine/internal/theme"
	"vitrine/internal/views/layout"
)

type themeChangedEvent struct {
	Theme     string `json:"theme"`
	BodyClass string `json:"bodyClass"`
}

// bodyClassTrigger returns a theme subscriber that asks the browser, through
// an HX-Trigger header, to swap the document body classes.
func bodyClassTrigger(w http.ResponseWriter, r *http.Request) func(theme.Bundle) {
	return func(b theme.Bundle) {
		payload, err := json.Marshal(map[string]themeChangedEvent{
			"themeChanged": {Theme: b.ID, BodyClass: layout.BodyClass(b)},
		})
		if err != nil {
			applog.Error(r.Context(), "failed to encode theme trigger", "error", err)
			return
		}
		w.Header().Set("HX-Trigger", string(payload))
	}
}

// UpdateTheme persists the selected theme and re-renders the shell with it.
func UpdateTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		applog.Debug(r.Context(), "theme update with unsupported method", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		applog.Error(r.Context(), "failed to parse theme form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	s := openShell(r)
	if page := strings.TrimSpace(r.FormValue("page")); page != "" {
		if err := s.navigator.Navigate(page); err != nil {
			applog.Error(r.Context(), "rejected page selection", "page", page, "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	unsubscribe := s.themes.Subscribe(bodyClassTrigger(w, r))
	defer unsubscribe()

	themeValue := strings.TrimSpace(r.FormValue("theme"))
	if err := s.themes.SetTheme(r.Context(), themeValue); err != nil {
		if errors.Is(err, theme.ErrInvalidTheme) {
			applog.Error(r.Context(), "received invalid theme selection", "value", themeValue, "error", err)
			http.Error(w, "invalid theme selection", http.StatusBadRequest)
			return
		}
		applog.Error(r.Context(), "failed to persist theme preference", "error", err)
		http.Error(w, "failed to save preferences", http.StatusInternalServerError)
		return
	}

	applog.Info(r.Context(), "theme updated", "theme", themeValue)
	respondWithShell(w, r, s)
}
