package skribble

import (
	"time"

	"github.com/skribble-sdk/skribble-go/auth"
)

const (
	// DefaultAPIBaseURL is the Skribble SaaS business API endpoint.
	DefaultAPIBaseURL = "https://api.skribble.com/v2"
	// DefaultManagementBaseURL is the Skribble SaaS management API endpoint.
	DefaultManagementBaseURL = "https://api.skribble.com/management"
	// DefaultAPIBaseEUURL is the EU-hosted business API endpoint.
	DefaultAPIBaseEUURL = "https://api.skribble.de/v2"
	// DefaultManagementBaseEUURL is the EU-hosted management API endpoint.
	DefaultManagementBaseEUURL = "https://api.skribble.de/management"
	// DefaultTimeout bounds every API round-trip, including logins.
	DefaultTimeout = 30 * time.Second
)

// Config defines endpoint and transport settings for a Client.
type Config struct {
	APIBaseURL        string
	ManagementBaseURL string
	Timeout           time.Duration
	UserAgent         string
	// CachePrefix namespaces token cache keys, so several SDKs can share one
	// Redis instance.
	CachePrefix string
}

// Init fills unset fields with the SaaS defaults.
func (c *Config) Init() {
	if c.APIBaseURL == "" {
		c.APIBaseURL = DefaultAPIBaseURL
	}
	if c.ManagementBaseURL == "" {
		c.ManagementBaseURL = DefaultManagementBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = "skribble-go/" + Version
	}
	if c.CachePrefix == "" {
		c.CachePrefix = auth.DefaultCachePrefix
	}
}

// NewConfig returns a Config with the SaaS defaults.
func NewConfig() *Config {
	ret := &Config{}
	ret.Init()
	return ret
}

// NewEUConfig returns a Config pointing at the EU-hosted (skribble.de)
// endpoints.
func NewEUConfig() *Config {
	ret := &Config{
		APIBaseURL:        DefaultAPIBaseEUURL,
		ManagementBaseURL: DefaultManagementBaseEUURL,
	}
	ret.Init()
	return ret
}
