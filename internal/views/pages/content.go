// Package pages renders the shell's page bodies.
package pages

import (
	"github.com/a-h/templ"

	"vitrine/internal/nav"
	"vitrine/internal/theme"
)

// Content returns the component for page p.
func Content(p nav.Page, bundle theme.Bundle) templ.Component {
	switch p {
	case nav.About:
		return About(bundle)
	case nav.Contact:
		return Contact(bundle)
	default:
		return Home(bundle)
	}
}
