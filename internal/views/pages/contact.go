package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"vitrine/internal/theme"
	"vitrine/internal/views/components"
)

const contactFieldClass = "w-full p-3 rounded-lg bg-gray-200 dark:bg-gray-700 border border-transparent focus:outline-none focus:ring-2 focus:ring-blue-500"

// Contact renders the contact card. The form has no submission endpoint.
func Contact(bundle theme.Bundle) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		h.Raw(`<div class="`)
		h.Text(bundle.Slot(theme.SlotLayout))
		h.Raw(`" data-page="contact"><div class="`)
		h.Text(components.Class(bundle.Slot(theme.SlotCard), bundle.Slot(theme.SlotSpan)))
		h.Raw(`"><h2 class="text-4xl font-bold mb-4">Contact Us</h2>`)
		h.Raw(`<p class="mb-6">Have a question or want to work with us? Drop us a line!</p>`)
		h.Raw(`<form class="space-y-4" onsubmit="return false">`)
		h.Raw(`<input type="text" name="name" placeholder="Your Name" class="` + contactFieldClass + `">`)
		h.Raw(`<input type="email" name="email" placeholder="Your Email" class="` + contactFieldClass + `">`)
		h.Raw(`<textarea name="message" placeholder="Your Message" rows="5" class="` + contactFieldClass + `"></textarea>`)
		h.Raw(`<button type="submit" class="`)
		h.Text(bundle.Slot(theme.SlotButton))
		h.Raw(`">Send Message</button></form></div></div>`)
		return h.Err()
	})
}
