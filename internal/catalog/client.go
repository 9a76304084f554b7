// Package catalog fetches product summaries from the remote catalog API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	applog "vitrine/internal/log"
)

const (
	defaultBaseURL = "https://fakestoreapi.com"
	defaultLimit   = 6
)

// Product is the summary shape returned by the catalog API.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

// Config describes how the catalog client should be initialised.
type Config struct {
	BaseURL string
	Limit   int
	// Timeout bounds a single request. Zero means no timeout.
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client issues bounded product listing requests.
type Client struct {
	baseURL    string
	limit      int
	httpClient *http.Client
}

// NewClient builds a Client, applying defaults for unset fields.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	limit := cfg.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		limit:      limit,
		httpClient: httpClient,
	}
}

func (c *Client) productsURL() string {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(c.limit))
	return c.baseURL + "/products?" + q.Encode()
}

// FetchProducts requests the product listing. Failures are reported as
// *NetworkError, *HTTPError or *ParseError.
func (c *Client) FetchProducts(ctx context.Context) ([]Product, error) {
	endpoint := c.productsURL()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	applog.Debug(ctx, "fetching catalog products", "url", endpoint)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{StatusCode: resp.StatusCode}
	}

	var products []Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, &ParseError{Err: err}
	}
	applog.Debug(ctx, "catalog products fetched", "count", len(products))
	return products, nil
}
