package snapshot

import (
	"context"
	"sync"

	"github.com/noah-isme/campus-erp-api/internal/models"
)

// MemoryStore keeps the aggregate in process memory. State is lost on
// exit, which suits tests and throwaway environments.
type MemoryStore struct {
	mu      sync.RWMutex
	snap    *models.Snapshot
	session string
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) (*models.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil, ErrNotFound
	}
	return s.snap.Clone(), nil
}

func (s *MemoryStore) Save(ctx context.Context, snap *models.Snapshot) error {
	clone := snap.Clone()
	s.mu.Lock()
	s.snap = clone
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) LoadSession(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == "" {
		return "", ErrNotFound
	}
	return s.session, nil
}

func (s *MemoryStore) SaveSession(ctx context.Context, accountID string) error {
	s.mu.Lock()
	s.session = accountID
	s.mu.Unlock()
	return nil
}
