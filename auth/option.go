package auth

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/skribble-sdk/skribble-go/auth/cache"
)

// ClientOption configures the login client.
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client used for the login exchange.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTokenTTL overrides the assumed token lifetime.
func WithTokenTTL(ttl time.Duration) ClientOption {
	return func(c *Client) {
		c.tokenTTL = ttl
	}
}

// WithUserAgent sets the User-Agent header on login requests.
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// ManagerOption configures the token manager.
type ManagerOption func(*Manager)

// WithStore sets the token store.
func WithStore(store cache.Store) ManagerOption {
	return func(m *Manager) {
		m.store = store
	}
}

// WithCachePrefix sets the cache key namespace.
func WithCachePrefix(prefix string) ManagerOption {
	return func(m *Manager) {
		m.prefix = prefix
	}
}

// WithLogger sets the logger; the manager is silent by default.
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}
