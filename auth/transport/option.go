package transport

import (
	"log/slog"
	"net/http"
)

type Option func(*RoundTripper)

// WithTransport sets the underlying round tripper.
func WithTransport(transport http.RoundTripper) Option {
	return func(r *RoundTripper) {
		r.transport = transport
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *RoundTripper) {
		if logger != nil {
			r.logger = logger
		}
	}
}
