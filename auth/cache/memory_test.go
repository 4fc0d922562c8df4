package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, found, err := store.Get(ctx, "skribble:token:api_demo")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.SetWithTTL(ctx, "skribble:token:api_demo", "tok_abc", 20*time.Minute))

	value, found, err := store.Get(ctx, "skribble:token:api_demo")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "tok_abc", value)
}

func TestMemoryStore_Overwrite(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.SetWithTTL(ctx, "k", "v1", time.Minute))
	require.NoError(t, store.SetWithTTL(ctx, "k", "v2", time.Minute))

	value, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v2", value)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	require.NoError(t, store.SetWithTTL(ctx, "k", "v", time.Second))

	_, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)

	now = now.Add(1500 * time.Millisecond)
	_, found, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	// lazy eviction removed the expired entry
	_, ok := store.entries.Get("k")
	assert.False(t, ok)
}

func TestMemoryStore_ZeroTTLDeletes(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.SetWithTTL(ctx, "k", "v", time.Minute))
	require.NoError(t, store.SetWithTTL(ctx, "k", "", 0))

	_, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}
