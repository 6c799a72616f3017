package tier

import (
	"context"
	"sync"
)

// inMemSource implements the Source interface using an in-memory definition list.
type inMemSource struct {
	mu   sync.RWMutex
	defs []Definition
}

// NewMemorySource returns an in-memory Source holding a deep copy of the
// given definitions. Slice order defines the per-class upgrade ladder.
func NewMemorySource(defs []Definition) Source {
	defsCopy := make([]Definition, len(defs))
	for i, d := range defs {
		defsCopy[i] = d.clone()
	}

	return &inMemSource{defs: defsCopy}
}

// Load returns a copy of all definitions from memory.
// The returned slice is not protected by the mutex after return.
func (s *inMemSource) Load(ctx context.Context) ([]Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	defsCopy := make([]Definition, len(s.defs))
	for i, d := range s.defs {
		defsCopy[i] = d.clone()
	}
	return defsCopy, nil
}
