package api

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/fittrack/internal/logging"
)

// DefaultTimeout bounds every request.
const DefaultTimeout = 10 * time.Second

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

func WithTokenStore(s TokenStore) Option {
	return func(c *Client) { c.tokens = s }
}

func WithNavigator(n Navigator) Option {
	return func(c *Client) { c.navigator = n }
}

// RequestOption customises a single call.
type RequestOption func(*requestConfig)

type requestConfig struct {
	headers      http.Header
	skipSanitize bool
}

// WithHeader sets a header on one request. The bearer token from the token
// store still takes precedence for Authorization.
func WithHeader(key, value string) RequestOption {
	return func(rc *requestConfig) {
		rc.headers.Set(key, value)
	}
}

// SkipSanitize sends the body as is. Use it only for bodies that were
// already escaped, to avoid double encoding.
func SkipSanitize() RequestOption {
	return func(rc *requestConfig) {
		rc.skipSanitize = true
	}
}

func newRequestConfig(opts []RequestOption) *requestConfig {
	rc := &requestConfig{headers: make(http.Header)}
	for _, o := range opts {
		o(rc)
	}
	return rc
}
