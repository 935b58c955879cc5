// Package http wraps the standard HTTP client so callers control deadlines
// through contexts rather than a client-wide timeout.
package http

import (
	"context"
	"net/http"
)

type Client struct {
	httpClient *http.Client
}

// NewClient returns a client with no transport-level timeout; each request
// is bounded by its own context deadline so cancelling one attempt never
// affects another.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
	}
}

func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	return c.httpClient.Do(req.WithContext(ctx))
}
