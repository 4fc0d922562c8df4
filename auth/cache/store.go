package cache

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable signals that a shared store could not be reached. It is
// distinct from a cache miss: callers must not treat an unreachable store as
// "token absent" and fall through to a fresh login. Wrapped errors are
// errors.Is-checkable.
var ErrUnavailable = errors.New("token store unavailable")

// Store is a pluggable persistence layer for cached tokens. Values are opaque
// strings; the store enforces expiry and knows nothing about token semantics.
// The in-memory default is fine for single-process use; swap with Redis for
// fleets that share one token pool per credential set.
type Store interface {
	// Get returns the value stored under key, or found=false when the key is
	// absent or its TTL has lapsed. A non-nil error means the store could not
	// be consulted at all and wraps ErrUnavailable.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// SetWithTTL stores value under key for the given duration, overwriting
	// any previous entry. A ttl <= 0 deletes the entry (immediate expiry)
	// rather than failing.
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
}
