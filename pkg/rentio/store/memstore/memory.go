package memstore

import (
	"context"
	"sync"

	"github.com/rentio/rentio/pkg/rentio/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu      sync.RWMutex
	entries []store.Entry
	byName  map[string]int
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{byName: make(map[string]int)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// AppendEntry stores one catalog entry, preserving insertion order.
func (s *Store) AppendEntry(ctx context.Context, e store.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, e)
	s.byName[e.Product] = len(s.entries) - 1
	return nil
}

// ListEntries returns all entries in insertion order.
func (s *Store) ListEntries(ctx context.Context) ([]store.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// GetEntry returns the last entry stored under a product name.
func (s *Store) GetEntry(ctx context.Context, product string) (store.Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i, ok := s.byName[product]; ok {
		return s.entries[i], true, nil
	}
	return store.Entry{}, false, nil
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}
