package dashboard

import (
	"sync"
	"time"

	"CryptoBit/internal/model"
)

// Store holds the most recent dashboard snapshot. The poll job swaps it in;
// HTTP handlers read it without blocking the poller.
type Store struct {
	mu        sync.RWMutex
	snap      *model.Snapshot
	updatedAt time.Time
}

// NewStore creates an empty snapshot store.
func NewStore() *Store { return &Store{} }

// Set replaces the latest snapshot.
func (s *Store) Set(snap *model.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	s.updatedAt = time.Now()
}

// Get returns the latest snapshot, or nil before the first completed cycle.
func (s *Store) Get() *model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// UpdatedAt returns when the snapshot was last replaced (zero before the
// first cycle).
func (s *Store) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}
