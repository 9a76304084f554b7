package layout

import (
	"vitrine/internal/theme"
	"vitrine/internal/views/components"
)

const bodyTransition = "transition-all duration-500"

// ThemeOptions lists catalog bundles for the selector in definition order.
func ThemeOptions(catalog *theme.Catalog) []components.ThemeOption {
	ids := catalog.Identifiers()
	options := make([]components.ThemeOption, 0, len(ids))
	for _, id := range ids {
		b, err := catalog.Get(id)
		if err != nil {
			continue
		}
		options = append(options, components.ThemeOption{ID: b.ID, Label: b.Name})
	}
	return options
}

// BodyClass is the document-wide class list derived from a bundle's
// background, text and font slots.
func BodyClass(b theme.Bundle) string {
	return components.Class(
		b.Slot(theme.SlotBackground),
		b.Slot(theme.SlotText),
		b.Slot(theme.SlotFont),
		bodyTransition,
	)
}
