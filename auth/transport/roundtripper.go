package transport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// Provider supplies bearer tokens for outgoing requests. *auth.Manager is the
// production implementation.
type Provider interface {
	AccessToken(ctx context.Context) (string, error)
	Refresh(ctx context.Context) (string, error)
	Invalidate(ctx context.Context) error
}

// RoundTripper attaches an Authorization header to every request it sends.
// The token is acquired before the request goes out, so a failed acquisition
// fails closed: the request never reaches the wire unauthenticated. When the
// API answers 401 the cached token is dropped, one coalesced re-login runs
// and the request is replayed exactly once.
type RoundTripper struct {
	provider  Provider
	transport http.RoundTripper
	logger    *slog.Logger
}

func New(provider Provider, options ...Option) (*RoundTripper, error) {
	if provider == nil {
		return nil, errors.New("token provider is required")
	}
	ret := &RoundTripper{
		provider:  provider,
		transport: http.DefaultTransport,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret, nil
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	accessToken, err := r.provider.AccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire access token: %w", err)
	}

	attempt := clone(req)
	attempt.Header.Set("Authorization", "Bearer "+accessToken)
	resp, err := r.transport.RoundTrip(attempt)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	resp.Body.Close()

	// The API rejected a token the cache considered valid. Drop it, force a
	// re-login and replay once; a second 401 is returned to the caller.
	r.logger.Debug("bearer token rejected, replaying once", "path", req.URL.Path)
	if err := r.provider.Invalidate(ctx); err != nil {
		return nil, err
	}
	if accessToken, err = r.provider.Refresh(ctx); err != nil {
		return nil, err
	}
	retry := clone(req)
	retry.Header.Set("Authorization", "Bearer "+accessToken)
	return r.transport.RoundTrip(retry)
}
