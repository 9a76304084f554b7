package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"vitrine/internal/catalog"
	"vitrine/models"
)

func withTestSessionManager(t *testing.T) (*scs.SessionManager, func()) {
	t.Helper()
	original := sessionManager
	sm := scs.New()
	sessionManager = sm
	return sm, func() {
		sessionManager = original
	}
}

func withTestDatabase(t *testing.T) (*gorm.DB, func()) {
	t.Helper()
	original := database
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	if err := db.AutoMigrate(&models.Preference{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	database = db
	return db, func() {
		database = original
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

func withTestFetcher(t *testing.T, f catalog.Fetcher) {
	t.Helper()
	original := productFetcher
	productFetcher = f
	t.Cleanup(func() { productFetcher = original })
}

// loadSession attaches a fresh session to req and returns the context so later
// requests can share it.
func loadSession(t *testing.T, sm *scs.SessionManager, req *http.Request) context.Context {
	t.Helper()
	ctx, err := sm.Load(req.Context(), "")
	if err != nil {
		t.Fatalf("failed to load session context: %v", err)
	}
	return ctx
}

type stubFetcher struct {
	products []catalog.Product
	err      error
	calls    int
}

func (s *stubFetcher) FetchProducts(context.Context) ([]catalog.Product, error) {
	s.calls++
	return s.products, s.err
}

type blockingFetcher struct{}

func (blockingFetcher) FetchProducts(ctx context.Context) ([]catalog.Product, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

var errStubNetwork = errors.New("Failed to fetch")
