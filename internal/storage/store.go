// Package storage provides the durable key-value store behind all persisted
// state: session history, day sets, the cooldown deadline, and the holiday
// cache. Every write is a full-value overwrite under a single logical key,
// so there is no partial-update surface to reason about.
package storage

import "sync"

// Store is the synchronous key-value port. Values are opaque blobs; callers
// serialize with the JSON helpers in this package.
type Store interface {
	// Get returns the value for key. The second result is false when the
	// key is absent.
	Get(key string) ([]byte, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	Close() error
}

// MemoryStore is an in-memory Store. It backs tests and serves as the
// fallback when the SQLite store cannot be opened.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore ready for use.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (ms *MemoryStore) Get(key string) ([]byte, bool, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	v, ok := ms.values[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, true, nil
}

func (ms *MemoryStore) Set(key string, value []byte) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	ms.values[key] = cp
	return nil
}

func (ms *MemoryStore) Delete(key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.values, key)
	return nil
}

func (ms *MemoryStore) Close() error { return nil }
