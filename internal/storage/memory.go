// internal/storage/memory.go
package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MemoryStore holds blobs in-process. Used in development and tests.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		objects: make(map[string][]byte),
	}
}

func (m *MemoryStore) Put(_ context.Context, key string, body []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	buf := make([]byte, len(body))
	copy(buf, body)
	m.objects[key] = buf
	return "memory://" + key, nil
}

func (m *MemoryStore) Delete(_ context.Context, storageURL string) error {
	key, ok := strings.CutPrefix(storageURL, "memory://")
	if !ok {
		return fmt.Errorf("not a memory url: %q", storageURL)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.objects[key]; !ok {
		return fmt.Errorf("object not found: %q", key)
	}
	delete(m.objects, key)
	return nil
}

// Object returns the stored blob for a storage URL. Test helper.
func (m *MemoryStore) Object(storageURL string) ([]byte, bool) {
	key, ok := strings.CutPrefix(storageURL, "memory://")
	if !ok {
		return nil, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	body, ok := m.objects[key]
	return body, ok
}

// Len reports how many objects are stored. Test helper.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}
