package store

import (
	"context"
	"sync"
)

// MemoryStore keeps keys in process memory. It backs tests and serves as the
// degraded fallback when the persistent medium is unavailable: dependent
// operations keep working for the life of the process instead of failing.
// It intentionally favors clarity over performance.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

func (m *MemoryStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Update applies fn's writes directly; the in-memory fallback offers no
// transactional grouping.
func (m *MemoryStore) Update(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	return fn(ctx, m)
}
