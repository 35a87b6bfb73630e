package storage

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// MemoryStorage is an in-memory StorageInterface for local development and
// tests, used when no Azure storage account is configured.
type MemoryStorage struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

var _ StorageInterface = (*MemoryStorage)(nil)

// NewMemoryStorage creates an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{blobs: make(map[string][]byte)}
}

// Store saves a blob, overwriting any existing one.
func (s *MemoryStorage) Store(filename string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[filename] = append([]byte(nil), data...)
	return nil
}

// Retrieve returns a stored blob or an error when absent.
func (s *MemoryStorage) Retrieve(filename string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[filename]
	if !ok {
		return nil, fmt.Errorf("blob %s not found", filename)
	}
	return append([]byte(nil), data...), nil
}

// List returns blob names under a prefix, sorted.
func (s *MemoryStorage) List(prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var names []string
	for name := range s.blobs {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes a blob; deleting a missing blob is not an error.
func (s *MemoryStorage) Delete(filename string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, filename)
	return nil
}
