package cache

import (
	"context"
	"time"

	"github.com/skribble-sdk/skribble-go/internal/collection"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryStore keeps entries in a process-local map with a wall-clock expiry
// per entry. Entries whose expiry has passed are treated as absent and lazily
// evicted on Get. State is lost on process restart and is not shared across
// processes. Get never returns ErrUnavailable.
type MemoryStore struct {
	entries *collection.SyncMap[string, memoryEntry]
	now     func() time.Time
}

// NewMemoryStore creates the default in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: collection.NewSyncMap[string, memoryEntry](),
		now:     time.Now,
	}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	entry, ok := m.entries.Get(key)
	if !ok {
		return "", false, nil
	}
	if m.now().After(entry.expiresAt) {
		m.entries.Delete(key)
		return "", false, nil
	}
	return entry.value, true, nil
}

func (m *MemoryStore) SetWithTTL(_ context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		m.entries.Delete(key)
		return nil
	}
	m.entries.Put(key, memoryEntry{value: value, expiresAt: m.now().Add(ttl)})
	return nil
}

var _ Store = (*MemoryStore)(nil)
