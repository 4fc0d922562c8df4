package skribble

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/skribble-sdk/skribble-go/auth/cache"
)

// Option customises a Client.
type Option func(*Client)

// WithConfig replaces the endpoint and transport settings wholesale, e.g.
// with NewEUConfig() for the EU-hosted API.
func WithConfig(config *Config) Option {
	return func(c *Client) {
		if config != nil {
			c.config = config
		}
	}
}

// WithTokenStore shares a token cache across clients or processes, e.g. a
// cache.RedisStore. The default is a process-local memory store.
func WithTokenStore(store cache.Store) Option {
	return func(c *Client) {
		c.store = store
	}
}

// WithTokenTTL overrides how long issued tokens are trusted. The login
// endpoint reports no expiry, so this window is the only staleness bound.
func WithTokenTTL(ttl time.Duration) Option {
	return func(c *Client) {
		if ttl > 0 {
			c.tokenTTL = ttl
		}
	}
}

// WithHTTPClient sets the HTTP client used for all traffic, including logins.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.baseClient = client
		}
	}
}

// WithLogger enables the SDK's debug logging; by default the SDK is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTenantID scopes token cache keys for multi-tenant setups, so the same
// username can hold independent tokens per tenant.
func WithTenantID(tenantID string) Option {
	return func(c *Client) {
		c.credentials.TenantID = tenantID
	}
}
