package trial

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memoryStore is an in-memory Store for tests and development.
type memoryStore struct {
	mu      sync.RWMutex
	windows map[uuid.UUID]Window
}

// NewMemoryStore returns an empty in-memory Store.
func NewMemoryStore() Store {
	return &memoryStore{windows: make(map[uuid.UUID]Window)}
}

func (s *memoryStore) Get(ctx context.Context, tenantID uuid.UUID) (*Window, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, exists := s.windows[tenantID]
	if !exists {
		return nil, ErrNotFound
	}
	return &w, nil
}

func (s *memoryStore) Save(ctx context.Context, w *Window) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.windows[w.TenantID] = *w
	return nil
}

func (s *memoryStore) ListExpired(ctx context.Context, now time.Time) ([]Window, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Window
	for _, w := range s.windows {
		if w.Used && !w.Finalized && w.ExpiredAt(now) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *memoryStore) ListExpiring(ctx context.Context, now time.Time, withinDays int) ([]Window, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Window
	for _, w := range s.windows {
		if w.ActiveAt(now) && w.DaysRemainingAt(now) <= withinDays {
			out = append(out, w)
		}
	}
	return out, nil
}
