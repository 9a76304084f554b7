package handlers

import (
	"net/http"

	"vitrine/internal/catalog"
	applog "vitrine/internal/log"
	"vitrine/internal/views/pages"
)

// Products mounts a product loader for the lifetime of the request and
// renders its settled state. A request cancelled before the fetch settles
// unmounts the loader and writes nothing.
func Products(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if productFetcher == nil {
		http.Error(w, "product catalog not configured", http.StatusServiceUnavailable)
		return
	}

	s := openShell(r)
	loader := catalog.NewLoader(productFetcher)
	if err := loader.Mount(r.Context()); err != nil {
		applog.Error(r.Context(), "failed to mount product loader", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer loader.Unmount()

	state, err := loader.Wait(r.Context())
	if err == nil {
		err = r.Context().Err()
	}
	if err != nil {
		applog.Debug(r.Context(), "product request ended before catalog responded", "error", err)
		return
	}
	if state.Status == catalog.StatusError {
		applog.Error(r.Context(), "catalog fetch failed", "error", state.Message)
	}

	renderComponent(w, r, pages.Products(s.themes.Current(), state))
}
