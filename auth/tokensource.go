package auth

import (
	"context"

	"golang.org/x/oauth2"
)

// TokenSource adapts the manager to golang.org/x/oauth2 so the SDK plugs
// into any oauth2-aware HTTP stack:
//
//	httpClient := oauth2.NewClient(ctx, manager.TokenSource(ctx))
//
// Caching and coalescing already happen in the manager; do not wrap the
// result in oauth2.ReuseTokenSource or Invalidate stops taking effect.
func (m *Manager) TokenSource(ctx context.Context) oauth2.TokenSource {
	return &tokenSource{ctx: ctx, manager: m}
}

type tokenSource struct {
	ctx     context.Context
	manager *Manager
}

func (s *tokenSource) Token() (*oauth2.Token, error) {
	token, err := s.manager.token(s.ctx)
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{
		AccessToken: token.AccessToken,
		TokenType:   "Bearer",
		Expiry:      token.ExpiresAt,
	}, nil
}

var _ oauth2.TokenSource = (*tokenSource)(nil)
