//go:generate mockgen -destination=mocks/http.go . Client
package http

import (
	"context"
	"net/url"
)

// Client defines the interface for HTTP operations against the artifact server.
type Client interface {
	// Get performs an authenticated GET request against the given URL with the
	// given query parameters and returns the raw response body. A response with
	// a non-2xx status code is returned as a *StatusError.
	Get(ctx context.Context, rawURL string, query url.Values) ([]byte, error)
}
