package gateway

import (
	"log/slog"
	"net/http"
	"time"
)

// Option is a functional option for configuring the gateway client.
type Option func(*Client)

// WithHTTPClient sets a custom underlying HTTP client. The client's own
// Timeout should normally stay zero; the gateway bounds requests through
// context deadlines so callers can override per call.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the default per-request timeout, applied only when the
// caller's context carries no deadline of its own.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithLogger sets the logger for request/failure records.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithRequestIDGenerator overrides the per-request id generator.
func WithRequestIDGenerator(gen func() string) Option {
	return func(c *Client) {
		if gen != nil {
			c.newID = gen
		}
	}
}
