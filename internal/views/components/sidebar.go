package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"vitrine/internal/nav"
	"vitrine/internal/theme"
)

// Sidebar renders the secondary navigation when the bundle styles a sidebar
// and nothing otherwise. Its links only change the URL fragment.
func Sidebar(bundle theme.Bundle) templ.Component {
	slot := bundle.Slot(theme.SlotSidebar)
	if slot == "" {
		return templ.NopComponent
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := NewHTML(w)
		h.Raw(`<aside class="`)
		h.Text(slot)
		h.Raw(`"><h2 class="text-xl font-bold mb-5">Navigation</h2><nav class="flex flex-col space-y-3">`)
		for _, p := range nav.Pages() {
			h.Raw(`<a href="#` + string(p) + `" class="`)
			h.Text(bundle.Slot(theme.SlotLink))
			h.Raw(`">`)
			h.Text(PageLabel(p))
			h.Raw(`</a>`)
		}
		h.Raw(`</nav></aside>`)
		return h.Err()
	})
}
