// Package memory provides an in-process Medium used by tests and the testing environment.
package memory

import (
	"context"
	"sort"
	"sync"
)

// Medium keeps collections in a map. It is safe for concurrent use.
type Medium struct {
	mu   sync.RWMutex
	data map[string]string
}

// New creates an empty in-memory medium.
func New() *Medium {
	return &Medium{data: make(map[string]string)}
}

// Read returns the text stored under key.
func (m *Medium) Read(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	text, ok := m.data[key]
	return text, ok, nil
}

// Write stores text under key.
func (m *Medium) Write(_ context.Context, key string, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = text
	return nil
}

// Remove deletes key.
func (m *Medium) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Keys returns the stored keys in sorted order.
func (m *Medium) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Close is a no-op.
func (m *Medium) Close() error {
	return nil
}
