package handlers

import (
	"net/http"

	applog "vitrine/internal/log"
	"vitrine/internal/nav"
	"vitrine/internal/prefs"
	"vitrine/internal/theme"
	"vitrine/internal/views/layout"
)

// shell is the state owned by one browser session for the duration of a request.
type shell struct {
	themes    *theme.Store
	navigator *nav.Navigator
}

func openShell(r *http.Request) *shell {
	store := theme.NewStore(themeCatalog, preferenceStore(r))
	if err := store.Initialize(r.Context()); err != nil {
		applog.Error(r.Context(), "failed to restore theme preference", "error", err)
	}
	return &shell{themes: store, navigator: nav.New()}
}

func (s *shell) view() layout.View {
	return layout.View{
		Bundle:  s.themes.Current(),
		Options: layout.ThemeOptions(themeCatalog),
		Page:    s.navigator.Current(),
	}
}

func preferenceStore(r *http.Request) prefs.Store {
	if sessionManager == nil {
		applog.Debug(r.Context(), "session manager not configured; preferences are not persisted")
		return prefs.NewMemory()
	}

	layers := []prefs.Store{prefs.NewSession(sessionManager)}
	if database == nil {
		return prefs.NewLayered(layers...)
	}

	visitorID, err := prefs.VisitorID(r.Context(), sessionManager)
	if err != nil {
		applog.Error(r.Context(), "unable to resolve visitor id", "error", err)
		return prefs.NewLayered(layers...)
	}
	dbStore, err := prefs.NewDatabase(database, visitorID)
	if err != nil {
		applog.Error(r.Context(), "unable to open database preferences", "error", err)
		return prefs.NewLayered(layers...)
	}
	return prefs.NewLayered(append(layers, dbStore)...)
}
