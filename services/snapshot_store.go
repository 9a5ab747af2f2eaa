package services

import (
	"sync"

	"github.com/Dosada05/tournament-site/models"
)

// SnapshotStore holds the latest successful snapshot for the preview server.
type SnapshotStore struct {
	mu       sync.RWMutex
	snapshot *models.Snapshot
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

func (s *SnapshotStore) Set(snapshot *models.Snapshot) {
	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()
}

// Get returns the current snapshot, or nil before the first build.
func (s *SnapshotStore) Get() *models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
