package promo

import (
	"context"

	"github.com/google/uuid"
)

// Store persists the full set of promotion windows per entity. Windows are
// read and written as one unit so multi-kind updates stay consistent.
type Store interface {
	// GetWindows returns every window attached to an entity.
	// Returns ErrNotFound when the entity has none.
	GetWindows(ctx context.Context, entityID uuid.UUID) ([]Window, error)

	// SaveWindows replaces the entity's windows with the given set.
	SaveWindows(ctx context.Context, entityID uuid.UUID, windows []Window) error
}
