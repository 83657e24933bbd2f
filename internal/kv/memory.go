package kv

import (
	"context"
	"sync"
)

// MemoryBackend is an in-process Backend used in tests and as the last-resort
// fallback when no local store could be opened.
type MemoryBackend struct {
	mu    sync.RWMutex
	store map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{store: make(map[string][]byte)}
}

func (m *MemoryBackend) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.store[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryBackend) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.store[key] = v
	return nil
}

func (m *MemoryBackend) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, key)
	return nil
}
