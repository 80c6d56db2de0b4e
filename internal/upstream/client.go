package upstream

import (
	"net/http"
	"time"
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=upstream_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "mflive/1.0"
)

// client carries the settings shared by every upstream client.
type client struct {
	httpClient HTTPClient
	timeout    time.Duration
	header     http.Header
}

// Option configures an upstream client.
type Option func(*client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// WithTimeout bounds every single upstream call.
func WithTimeout(d time.Duration) Option {
	return func(c *client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) Option {
	return func(c *client) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

func newClient(options ...Option) client {
	c := client{
		httpClient: http.DefaultClient,
		timeout:    defaultTimeout,
		header:     http.Header{},
	}
	c.header.Set("User-Agent", defaultUserAgent)
	c.header.Set("Accept", "application/json")
	for _, option := range options {
		option(&c)
	}
	return c
}
