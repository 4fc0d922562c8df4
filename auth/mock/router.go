package mock

import (
	"net/http"
)

// Handler routes HTTP requests to the appropriate mock signing service endpoints.
type Handler struct {
	// Service is the mock signing service with endpoint handlers.
	Service *SigningService
}

// ServeHTTP dispatches incoming HTTP requests based on URL path.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/access/login":
		if h.Service.LoginHandler != nil {
			h.Service.LoginHandler(w, r)
		} else {
			h.Service.defaultLoginHandler(w, r)
		}
	case "/health":
		if h.Service.HealthHandler != nil {
			h.Service.HealthHandler(w, r)
		} else {
			h.Service.defaultHealthHandler(w, r)
		}
	case "/resource":
		if h.Service.ResourceHandler != nil {
			h.Service.ResourceHandler(w, r)
		} else {
			h.Service.defaultResourceHandler(w, r)
		}
	default:
		http.NotFound(w, r)
	}
}
