package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"vitrine/internal/nav"
	"vitrine/internal/theme"
)

// ThemeOption is one entry of the theme selector.
type ThemeOption struct {
	ID    string
	Label string
}

// HeaderData drives the header: selector entries, the active theme and page.
type HeaderData struct {
	Bundle  theme.Bundle
	Options []ThemeOption
	Page    nav.Page
}

var pageLabels = map[nav.Page]string{
	nav.Home:    "Home",
	nav.About:   "About",
	nav.Contact: "Contact",
}

// PageLabel returns the navigation label for p.
func PageLabel(p nav.Page) string {
	return pageLabels[p]
}

func linkState(page, active nav.Page) string {
	if page == active {
		return "active"
	}
	return "inactive"
}

// Header renders the title, the navigation links and the theme selector.
// Header links navigate explicitly and push the matching fragment.
func Header(data HeaderData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := NewHTML(w)
		h.Raw(`<header class="`)
		h.Text(Class(data.Bundle.Slot(theme.SlotHeader), "p-4 flex justify-between items-center"))
		h.Raw(`"><h1 class="text-2xl font-bold">MyApp</h1><nav class="hidden md:flex items-center space-x-4">`)
		for _, p := range nav.Pages() {
			bold := ""
			if p == data.Page {
				bold = "font-bold"
			}
			h.Raw(`<a href="#` + string(p) + `" hx-post="/navigate" hx-vals='{"page":"` + string(p) + `"}'`)
			h.Raw(` hx-target="#app" hx-swap="outerHTML" hx-push-url="#` + string(p) + `"`)
			h.Raw(` data-nav-page="` + string(p) + `" data-state="` + linkState(p, data.Page) + `" class="`)
			h.Text(Class(data.Bundle.Slot(theme.SlotLink), bold))
			h.Raw(`">`)
			h.Text(PageLabel(p))
			h.Raw(`</a>`)
		}
		h.Raw(`</nav><form hx-post="/theme" hx-trigger="change" hx-target="#app" hx-swap="outerHTML">`)
		h.Raw(`<input type="hidden" name="page" value="` + string(data.Page) + `">`)
		h.Raw(`<select name="theme" aria-label="Theme" class="bg-transparent border rounded p-2">`)
		for _, opt := range data.Options {
			h.Raw(`<option value="`)
			h.Text(opt.ID)
			h.Raw(`" class="text-gray-800"`)
			if opt.ID == data.Bundle.ID {
				h.Raw(` selected`)
			}
			h.Raw(`>`)
			h.Text(opt.Label)
			h.Raw(`</option>`)
		}
		h.Raw(`</select><noscript><button type="submit">Apply</button></noscript></form></header>`)
		return h.Err()
	})
}
