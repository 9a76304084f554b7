package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	applog "vitrine/internal/log"
)

type healthResponse struct {
	Status       string    `json:"status"`
	Time         time.Time `json:"time"`
	Themes       int       `json:"themes"`
	DefaultTheme string    `json:"defaultTheme"`
	Products     bool      `json:"products"`
	Preferences  string    `json:"preferences"`
}

// Health reports readiness along with which optional backends are wired.
func Health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:       "ok",
		Time:         time.Now().UTC(),
		Themes:       len(themeCatalog.Identifiers()),
		DefaultTheme: themeCatalog.DefaultID(),
		Products:     productFetcher != nil,
		Preferences:  preferenceBackend(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		applog.Error(r.Context(), "failed to encode health response", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func preferenceBackend() string {
	switch {
	case sessionManager == nil:
		return "memory"
	case database == nil:
		return "session"
	default:
		return "session+database"
	}
}
