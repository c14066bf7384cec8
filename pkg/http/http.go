package http

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/smarter-travel-media/artificium/pkg/auth"
	"github.com/smarter-travel-media/artificium/pkg/errors"
)

// DefaultTimeout is the default timeout for requests to the artifact server.
const DefaultTimeout = 30 * time.Second

// StatusError is returned when the server answers with a non-2xx status code.
// It exposes the offending status so callers can distinguish a 404 from other
// failures.
type StatusError struct {
	StatusCode int
	URL        string
	Body       string
}

// Error returns the error message for the status error.
func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s", e.StatusCode, e.URL)
}

// IsNotFound reports whether err carries an HTTP 404 status.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return stderrors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}

// HTTPClient performs authenticated GET requests against the artifact server.
// Transient failures are retried by the underlying retryablehttp transport;
// the rest of the library never retries on its own.
type HTTPClient struct {
	client    *http.Client
	auth      auth.Authenticator
	userAgent string
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a new HTTP client for artifact server operations. The
// authenticator may be nil for anonymous access.
func NewHTTPClient(timeout time.Duration, authenticator auth.Authenticator) *HTTPClient {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = timeout

	return &HTTPClient{
		client:    retryClient.StandardClient(),
		auth:      authenticator,
		userAgent: "artificium/1.0",
	}
}

// Get performs a GET request and returns the response body. Non-2xx responses
// yield a *StatusError carrying the status code and body.
func (hc *HTTPClient) Get(ctx context.Context, rawURL string, query url.Values) ([]byte, error) {
	reqURL := rawURL
	if len(query) > 0 {
		reqURL = rawURL + "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("User-Agent", hc.userAgent)
	req.Header.Set("Accept", "application/json, text/plain")

	if hc.auth != nil {
		if err := hc.auth.Apply(req); err != nil {
			return nil, errors.Wrap(err, "failed to apply authentication")
		}
	}

	resp, err := hc.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: reqURL, Body: string(body)}
	}

	return body, nil
}
