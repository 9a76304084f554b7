package components

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"

	"vitrine/internal/catalog"
	"vitrine/internal/theme"
)

// FormatPrice renders a price with thousands separators and two decimals.
func FormatPrice(price float64) string {
	return "$" + humanize.FormatFloat("#,###.##", price)
}

// ProductCard renders one catalog product.
func ProductCard(bundle theme.Bundle, p catalog.Product) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := NewHTML(w)
		h.Raw(`<div class="`)
		h.Text(bundle.Slot(theme.SlotCard))
		h.Raw(`" data-product-id="`)
		h.Text(strconv.Itoa(p.ID))
		h.Raw(`"><img src="`)
		h.Text(p.Image)
		h.Raw(`" alt="`)
		h.Text(p.Title)
		h.Raw(`" class="w-full h-48 object-contain mb-4 rounded-md"><h3 class="text-lg font-bold mb-2">`)
		h.Text(p.Title)
		h.Raw(`</h3><p class="text-sm opacity-80 mb-4 line-clamp-3">`)
		h.Text(p.Description)
		h.Raw(`</p><div class="flex justify-between items-center"><span class="font-bold text-xl">`)
		h.Text(FormatPrice(p.Price))
		h.Raw(`</span><button class="`)
		h.Text(bundle.Slot(theme.SlotButton))
		h.Raw(`">Buy Now</button></div></div>`)
		return h.Err()
	})
}
