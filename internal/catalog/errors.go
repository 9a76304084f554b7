package catalog

import "fmt"

// NetworkError reports a request that never produced a response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError reports a response outside the 2xx range.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// ParseError reports a response body that is not a product list.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "invalid catalog response: " + e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }
