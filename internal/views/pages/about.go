package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"vitrine/internal/theme"
	"vitrine/internal/views/components"
)

func About(bundle theme.Bundle) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		h.Raw(`<div class="`)
		h.Text(bundle.Slot(theme.SlotLayout))
		h.Raw(`" data-page="about"><div class="`)
		h.Text(components.Class(bundle.Slot(theme.SlotCard), bundle.Slot(theme.SlotSpan)))
		h.Raw(`"><h2 class="text-4xl font-bold mb-4">About Us</h2><p class="mb-4">`)
		h.Raw(`We are a team of passionate developers dedicated to creating beautiful and functional web applications. `)
		h.Raw(`This project demonstrates our ability to work with modern web technologies.</p><p class="mb-6">`)
		h.Raw(`Our mission is to build user-centric products that are not only powerful but also a delight to use. `)
		h.Raw(`We believe in clean code, thoughtful design, and continuous learning.</p><button class="`)
		h.Text(bundle.Slot(theme.SlotButton))
		h.Raw(`">Learn More</button></div></div>`)
		return h.Err()
	})
}
