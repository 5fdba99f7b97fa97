package store

import (
	"sync"

	"amongus-stats-service/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot of the latest normalized dataset.
// The poller replaces it wholesale; readers always see one consistent
// snapshot and never a half-applied refresh.
type MemoryStore struct {
	mu      sync.RWMutex
	dataset domain.Dataset
	loaded  bool
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Dataset returns the current snapshot and whether one has been loaded yet.
func (s *MemoryStore) Dataset() (domain.Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset, s.loaded
}

// SetDataset replaces the snapshot.
func (s *MemoryStore) SetDataset(dataset domain.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = dataset
	s.loaded = true
}
