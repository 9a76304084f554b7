// Package layout renders the application shell around a page.
package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"vitrine/internal/nav"
	"vitrine/internal/theme"
	"vitrine/internal/views/components"
	"vitrine/internal/views/pages"
)

// View is everything the shell reads: the active bundle, the selector
// entries and the current page.
type View struct {
	Bundle  theme.Bundle
	Options []components.ThemeOption
	Page    nav.Page
}

// App renders the swappable application frame: header, optional sidebar and
// the content area holding the current page.
func App(v View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		h.Raw(`<div id="app" class="min-h-screen" data-theme="`)
		h.Text(v.Bundle.ID)
		h.Raw(`" data-page="` + string(v.Page) + `">`)
		h.Render(ctx, components.Header(components.HeaderData{Bundle: v.Bundle, Options: v.Options, Page: v.Page}))
		h.Raw(`<div class="`)
		h.Text(v.Bundle.Slot(theme.SlotLayout))
		h.Raw(`">`)
		h.Render(ctx, components.Sidebar(v.Bundle))
		h.Raw(`<main id="content" class="`)
		h.Text(v.Bundle.Slot(theme.SlotContent))
		h.Raw(`">`)
		h.Render(ctx, pages.Content(v.Page, v.Bundle))
		h.Raw(`</main></div></div>`)
		return h.Err()
	})
}

// Document renders the full HTML page around App.
func Document(title string, v View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		h.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.Text(title)
		h.Raw(`</title><script src="https://cdn.tailwindcss.com"></script>`)
		h.Raw(`<script src="https://unpkg.com/htmx.org@2.0.4"></script>`)
		h.Raw(`<script src="/assets/shell.js" defer></script></head><body class="`)
		h.Text(BodyClass(v.Bundle))
		h.Raw(`">`)
		h.Render(ctx, App(v))
		h.Raw(`</body></html>`)
		return h.Err()
	})
}
