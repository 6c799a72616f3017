package promo

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

type memoryStore struct {
	mu      sync.RWMutex
	windows map[uuid.UUID][]Window
}

// NewMemoryStore returns an in-memory Store for tests and development.
func NewMemoryStore() Store {
	return &memoryStore{windows: make(map[uuid.UUID][]Window)}
}

func (s *memoryStore) GetWindows(ctx context.Context, entityID uuid.UUID) ([]Window, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ws, exists := s.windows[entityID]
	if !exists {
		return nil, ErrNotFound
	}
	return slices.Clone(ws), nil
}

func (s *memoryStore) SaveWindows(ctx context.Context, entityID uuid.UUID, windows []Window) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.windows[entityID] = slices.Clone(windows)
	return nil
}
