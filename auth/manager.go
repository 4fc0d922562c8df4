package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/skribble-sdk/skribble-go/auth/cache"
)

// Manager hands out valid access tokens backed by a pluggable store. Reads
// are the fast path: a cached, unexpired token is returned without touching
// the login endpoint. On a miss the manager performs a coalesced login, at
// most one in flight per cache key per process, and all concurrent callers
// receive that attempt's outcome. Refresh is purely reactive; no background
// timers run between calls.
//
// Each manager is an explicit instance owned by its client: there is no
// package-level default store, so independently configured clients in one
// process never share state unless handed the same Store.
type Manager struct {
	credentials Credentials
	auth        Authenticator
	store       cache.Store
	prefix      string
	logger      *slog.Logger
	group       singleflight.Group
	now         func() time.Time
}

// NewManager creates a token manager for one credential set. The default
// store is process-local memory; pass WithStore to share tokens across
// processes.
func NewManager(authenticator Authenticator, credentials Credentials, options ...ManagerOption) (*Manager, error) {
	if authenticator == nil {
		return nil, errors.New("authenticator is required")
	}
	if err := credentials.Validate(); err != nil {
		return nil, err
	}
	ret := &Manager{
		credentials: credentials,
		auth:        authenticator,
		store:       cache.NewMemoryStore(),
		prefix:      DefaultCachePrefix,
		logger:      slog.New(slog.DiscardHandler),
		now:         time.Now,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.store == nil {
		return nil, errors.New("token store is required")
	}
	return ret, nil
}

// AccessToken returns a valid bearer token, logging in only when the store
// holds no usable one. AuthenticationError, NetworkError and
// cache.ErrUnavailable propagate unchanged; nothing is cached on failure.
func (m *Manager) AccessToken(ctx context.Context) (string, error) {
	token, err := m.token(ctx)
	if err != nil {
		return "", err
	}
	return token.AccessToken, nil
}

// Refresh forces a coalesced re-login, bypassing any cached value. The store
// entry is overwritten on success and left untouched on failure.
func (m *Manager) Refresh(ctx context.Context) (string, error) {
	token, err := m.refresh(ctx, m.credentials.CacheKey(m.prefix))
	if err != nil {
		return "", err
	}
	return token.AccessToken, nil
}

// Invalidate drops the cached token so the next AccessToken call logs in
// again. Used by the HTTP transport after the API rejects a token.
func (m *Manager) Invalidate(ctx context.Context) error {
	return m.store.SetWithTTL(ctx, m.credentials.CacheKey(m.prefix), "", 0)
}

func (m *Manager) token(ctx context.Context) (Token, error) {
	key := m.credentials.CacheKey(m.prefix)
	value, found, err := m.store.Get(ctx, key)
	if err != nil {
		// a store outage is not a miss; surface it instead of re-logging in
		return Token{}, err
	}
	if found {
		// expiry is re-checked here even though the store enforces TTL, so a
		// backend without native eviction still never serves a stale token
		if token, ok := decodeToken(value); ok && token.Valid(m.now()) {
			m.logger.Debug("token cache hit", "key", key)
			return token, nil
		}
	}
	m.logger.Debug("token cache miss", "key", key)
	return m.refresh(ctx, key)
}

// refresh coalesces concurrent logins per cache key: racing callers join one
// flight and share its result. An abandoned caller gets its context error
// while the flight continues detached and still populates the store for
// future callers.
func (m *Manager) refresh(ctx context.Context, key string) (Token, error) {
	ch := m.group.DoChan(key, func() (interface{}, error) {
		return m.login(context.WithoutCancel(ctx), key)
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return Token{}, res.Err
		}
		return res.Val.(Token), nil
	case <-ctx.Done():
		return Token{}, ctx.Err()
	}
}

func (m *Manager) login(ctx context.Context, key string) (Token, error) {
	token, err := m.auth.Login(ctx, m.credentials)
	if err != nil {
		return Token{}, err
	}
	value, err := token.encode()
	if err != nil {
		return Token{}, err
	}
	if err := m.store.SetWithTTL(ctx, key, value, token.ExpiresAt.Sub(m.now())); err != nil {
		return Token{}, err
	}
	m.logger.Debug("login completed", "key", key, "expiresAt", token.ExpiresAt)
	return token, nil
}
