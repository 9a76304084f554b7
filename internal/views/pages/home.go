package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"vitrine/internal/catalog"
	"vitrine/internal/theme"
	"vitrine/internal/views/components"
)

// Home renders the welcome card and a product area that loads itself once
// mounted in the browser.
func Home(bundle theme.Bundle) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		span := bundle.Slot(theme.SlotSpan)
		h := components.NewHTML(w)
		h.Raw(`<div class="`)
		h.Text(bundle.Slot(theme.SlotLayout))
		h.Raw(`" data-page="home"><div class="`)
		h.Text(span)
		h.Raw(`"><h2 class="text-4xl font-bold mb-4">Home Page</h2>`)
		h.Raw(`<p class="mb-6">Welcome to our awesome application! Here's some dynamic content.</p><button class="`)
		h.Text(bundle.Slot(theme.SlotButton))
		h.Raw(`">Get Started</button></div>`)
		h.Raw(`<p id="products" hx-get="/products" hx-trigger="load" hx-swap="outerHTML" class="`)
		h.Text(span)
		h.Raw(`">Loading products...</p></div>`)
		return h.Err()
	})
}

// Products renders the settled state of a product loader: an inline error
// message, or one card per product.
func Products(bundle theme.Bundle, state catalog.State) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		span := bundle.Slot(theme.SlotSpan)
		h := components.NewHTML(w)
		switch state.Status {
		case catalog.StatusLoading:
			h.Raw(`<p class="`)
			h.Text(span)
			h.Raw(`">Loading products...</p>`)
		case catalog.StatusError:
			h.Raw(`<p class="`)
			h.Text(span)
			h.Raw(`" data-state="error">Error: `)
			h.Text(state.Message)
			h.Raw(`</p>`)
		default:
			for _, p := range state.Products {
				h.Render(ctx, components.ProductCard(bundle, p))
			}
		}
		return h.Err()
	})
}
