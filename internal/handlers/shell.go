package handlers

import (
	"net/http"
	"net/url"

	applog "vitrine/internal/log"
	"vitrine/internal/nav"
	"vitrine/internal/views/layout"
)

const documentTitle = "MyApp"

// Index renders the full shell. An optional page query parameter selects the
// initial page.
func Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	s := openShell(r)
	if page := r.URL.Query().Get("page"); page != "" {
		if err := s.navigator.Navigate(page); err != nil {
			applog.Error(r.Context(), "rejected page selection", "page", page, "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	renderComponent(w, r, layout.Document(documentTitle, s.view()))
}

// FragmentView applies a URL fragment change and renders the application
// frame for the derived page.
func FragmentView(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	s := openShell(r)
	events := nav.NewEvents()
	detach := s.navigator.Attach(events)
	defer detach()

	fragment := r.URL.Query().Get("fragment")
	events.Emit(fragment)
	applog.Debug(r.Context(), "fragment applied", "fragment", fragment, "page", s.navigator.Current())

	renderComponent(w, r, layout.App(s.view()))
}

// Navigate handles explicit navigation requests.
func Navigate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		applog.Error(r.Context(), "failed to parse navigation form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	s := openShell(r)
	page := r.FormValue("page")
	if err := s.navigator.Navigate(page); err != nil {
		applog.Error(r.Context(), "rejected page selection", "page", page, "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	respondWithShell(w, r, s)
}

// respondWithShell re-renders the frame for htmx callers and redirects
// everyone else to the shell on the current page.
func respondWithShell(w http.ResponseWriter, r *http.Request, s *shell) {
	if isHTMX(r) {
		renderComponent(w, r, layout.App(s.view()))
		return
	}
	q := url.Values{}
	q.Set("page", string(s.navigator.Current()))
	http.Redirect(w, r, "/?"+q.Encode(), http.StatusSeeOther)
}
