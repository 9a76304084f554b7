package handlers

import (
	"github.com/alexedwards/scs/v2"
	"gorm.io/gorm"

	"vitrine/internal/catalog"
	"vitrine/internal/theme"
)

var (
	sessionManager *scs.SessionManager
	database       *gorm.DB
	productFetcher catalog.Fetcher
	themeCatalog   = theme.Builtin()
)

// Configure installs the shared dependencies used by the HTTP handlers. A nil
// database keeps preferences in the session only; a nil fetcher disables the
// product listing.
func Configure(sm *scs.SessionManager, db *gorm.DB, fetcher catalog.Fetcher) {
	sessionManager = sm
	database = db
	productFetcher = fetcher
}
