package cache

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileStore persists entries to a JSON snapshot on disk. It is a lightweight
// way to survive process restarts in CLI or single-host services. Every entry
// self-describes its expiry, so stale entries left behind by a previous run
// are treated as absent on Get.
type FileStore struct {
	mu      sync.Mutex
	path    string
	entries map[string]fileEntry
	now     func() time.Time
}

type fileEntry struct {
	Value     string    `json:"value"`
	ExpiresAt time.Time `json:"expires_at"`
}

type fileSnapshot struct {
	Entries map[string]fileEntry `json:"entries"`
}

// NewFileStore creates a Store that persists entries at the given path. A
// missing or corrupt snapshot is discarded and replaced on the next write.
func NewFileStore(path string) *FileStore {
	fs := &FileStore{path: path, entries: map[string]fileEntry{}, now: time.Now}
	fs.load()
	return fs
}

func (f *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.entries[key]
	if !ok {
		return "", false, nil
	}
	if f.now().After(entry.ExpiresAt) {
		delete(f.entries, key)
		return "", false, nil
	}
	return entry.Value, true, nil
}

func (f *FileStore) SetWithTTL(_ context.Context, key, value string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ttl <= 0 {
		delete(f.entries, key)
	} else {
		f.entries[key] = fileEntry{Value: value, ExpiresAt: f.now().Add(ttl)}
	}
	return f.save()
}

// save writes the snapshot atomically via tmp file + rename.
func (f *FileStore) save() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(fileSnapshot{Entries: f.entries}, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

func (f *FileStore) load() {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			f.entries = map[string]fileEntry{}
		}
		return
	}
	var snap fileSnapshot
	if err = json.Unmarshal(data, &snap); err != nil || snap.Entries == nil {
		// corrupt snapshot; start empty rather than failing construction
		f.entries = map[string]fileEntry{}
		return
	}
	f.entries = snap.Entries
}

var _ Store = (*FileStore)(nil)
