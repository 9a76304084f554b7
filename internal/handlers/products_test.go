package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/goleak"

	"vitrine/internal/catalog"
)

func TestProductsRendersCards(t *testing.T) {
	defer goleak.VerifyNone(t)

	fetcher := &stubFetcher{products: []catalog.Product{
		{ID: 1, Title: "Backpack", Price: 109.95, Image: "https://example.com/1.jpg"},
		{ID: 2, Title: "Jacket", Price: 1055.5, Image: "https://example.com/2.jpg"},
	}}
	withTestFetcher(t, fetcher)

	w := httptest.NewRecorder()
	Products(w, httptest.NewRequest(http.MethodGet, "/products", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Backpack", "$109.95", "Jacket", "$1,055.50"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected body to contain %q", want)
		}
	}
	if fetcher.calls != 1 {
		t.Fatalf("expected one fetch, got %d", fetcher.calls)
	}
}

func TestProductsRendersFetchError(t *testing.T) {
	defer goleak.VerifyNone(t)

	withTestFetcher(t, &stubFetcher{err: &catalog.HTTPError{StatusCode: http.StatusInternalServerError}})

	w := httptest.NewRecorder()
	Products(w, httptest.NewRequest(http.MethodGet, "/products", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Error: HTTP error! status: 500") {
		t.Fatalf("expected error message, got %q", w.Body.String())
	}
}

func TestProductsRendersNetworkError(t *testing.T) {

	withTestFetcher(t, &stubFetcher{err: &catalog.NetworkError{Err: errStubNetwork}})

	w := httptest.NewRecorder()
	Products(w, httptest.NewRequest(http.MethodGet, "/products", nil))

	if !strings.Contains(w.Body.String(), "Error: Failed to fetch") {
		t.Fatalf("expected network error message, got %q", w.Body.String())
	}
}

func TestProductsCancelledRequestWritesNothing(t *testing.T) {
	defer goleak.VerifyNone(t)

	withTestFetcher(t, blockingFetcher{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/products", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	Products(w, req)

	if w.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", w.Body.String())
	}
}

func TestProductsWithoutFetcher(t *testing.T) {
	withTestFetcher(t, nil)

	w := httptest.NewRecorder()
	Products(w, httptest.NewRequest(http.MethodGet, "/products", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", w.Code)
	}
}
