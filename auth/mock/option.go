package mock

import "time"

// Option customises the mock signing service.
type Option func(*SigningService)

// WithCredentials sets the username and api key pair the login endpoint accepts.
func WithCredentials(username, apiKey string) Option {
	return func(s *SigningService) {
		s.Username = username
		s.APIKey = apiKey
	}
}

// WithTokenTTL sets the lifetime of minted tokens.
func WithTokenTTL(ttl time.Duration) Option {
	return func(s *SigningService) {
		s.TokenTTL = ttl
	}
}
