// Package recordstore provides the bounded in-memory store backing the
// simulator's card, profile and payment records. Capacity is fixed at
// construction; inserting past it evicts the oldest-inserted entry.
// Eviction is by insertion order only: overwriting a key does not renew
// its position, and reads never reorder anything.
package recordstore

import "sync"

// Store is a capacity-bounded ordered key-value store. The zero value is
// not usable; construct with New.
type Store[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	entries  map[K]V
	order    []K
}

// New returns an empty store holding at most capacity entries.
// A non-positive capacity is treated as 1.
func New[K comparable, V any](capacity int) *Store[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Store[K, V]{
		capacity: capacity,
		entries:  make(map[K]V),
	}
}

// Put inserts or overwrites the value for key. An overwrite keeps the
// key's original insertion position. After a fresh insert, the oldest
// surviving entries are evicted until the store is back within capacity.
func (s *Store[K, V]) Put(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[key]; exists {
		s.entries[key] = value
		return
	}

	s.entries[key] = value
	s.order = append(s.order, key)
	for len(s.entries) > s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.entries, oldest)
	}
}

// Get returns the value for key and whether it was present. Absence does
// not distinguish "never stored" from "evicted".
func (s *Store[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.entries[key]
	return v, ok
}

// Contains reports whether key is currently stored.
func (s *Store[K, V]) Contains(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[key]
	return ok
}

// Len returns the number of stored entries.
func (s *Store[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
