package server

import (
	"context"
	"net/http"

	"vitrine/internal/assets"
	"vitrine/internal/handlers"
	applog "vitrine/internal/log"
)

func newRouter() http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")
	mux.HandleFunc("/healthz", handlers.Health)
	mux.HandleFunc("/view", handlers.FragmentView)
	mux.HandleFunc("/navigate", handlers.Navigate)
	mux.HandleFunc("/theme", handlers.UpdateTheme)
	mux.HandleFunc("/products", handlers.Products)
	mux.HandleFunc("/", handlers.Index)
	applog.Debug(context.Background(), "routes registered", "paths", []string{"/healthz", "/view", "/navigate", "/theme", "/products", "/"})
	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(assets.FS()))))
	applog.Debug(context.Background(), "route registered", "path", "/assets/", "static", true)
	return mux
}
