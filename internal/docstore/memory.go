package docstore

import (
	"context"
	"sync"

	"github.com/goliatone/go-sections/internal/catalog"
	"github.com/goliatone/go-sections/pkg/interfaces"
)

// MemoryStore keeps documents in-memory. Useful for tests and
// single-process deployments without a database.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]map[string]any
}

// NewMemoryStore constructs an empty in-memory document store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: map[string]map[string]any{}}
}

// Get returns the stored document for key. A missing key yields a
// Document with Exists false and a nil error.
func (s *MemoryStore) Get(_ context.Context, key string) (interfaces.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.docs[key]
	if !ok {
		return interfaces.Document{}, nil
	}
	return interfaces.Document{Exists: true, Data: catalog.CloneMap(data)}, nil
}

// Set writes value under key, merging over the existing document when
// opts.MergeExistingFields is set.
func (s *MemoryStore) Set(_ context.Context, key string, value map[string]any, opts interfaces.SetOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing := interfaces.Document{}
	if data, ok := s.docs[key]; ok {
		existing = interfaces.Document{Exists: true, Data: data}
	}
	s.docs[key] = resolvePayload(existing, value, opts)
	return nil
}
