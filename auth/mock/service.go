package mock

import (
	"crypto/rand"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"
)

// SigningService is a test server that simulates the Skribble signing API:
// the login endpoint, a bearer-protected resource and the management health
// probe. Handlers are overridable per test; unset handlers fall back to the
// defaults.
type SigningService struct {
	// Secret signs and verifies issued tokens (HS256).
	Secret   []byte
	Issuer   string
	Username string
	APIKey   string
	TokenTTL time.Duration

	LoginHandler    func(w http.ResponseWriter, r *http.Request)
	HealthHandler   func(w http.ResponseWriter, r *http.Request)
	ResourceHandler func(w http.ResponseWriter, r *http.Request)

	logins int32
}

// NewSigningService creates a new mock signing service with a random HS256 secret.
func NewSigningService(opts ...Option) (*SigningService, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate signing secret: %v", err)
	}
	service := &SigningService{
		Secret:   secret,
		Username: "api_demo_mock",
		APIKey:   "test_api_key",
		TokenTTL: 20 * time.Minute,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service, nil
}

// LoginCount reports how many tokens the default login handler has issued.
func (m *SigningService) LoginCount() int {
	return int(atomic.LoadInt32(&m.logins))
}

// Register registers HTTP handlers for all mock endpoints onto the given ServeMux.
func (m *SigningService) Register(mux *http.ServeMux) {
	mux.Handle("/", &Handler{Service: m})
}

// Handler returns an http.Handler for all mock endpoints, suitable for any HTTP server.
func (m *SigningService) Handler() http.Handler {
	mux := http.NewServeMux()
	m.Register(mux)
	return mux
}
