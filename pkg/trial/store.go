package trial

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store defines the interface for trial window persistence.
// Each tenant has at most one window, so TenantID serves as the primary key.
type Store interface {
	// Get retrieves the window for a tenant.
	// Returns ErrNotFound if the tenant has no window.
	Get(ctx context.Context, tenantID uuid.UUID) (*Window, error)

	// Save creates or updates a window keyed by its TenantID.
	Save(ctx context.Context, w *Window) error

	// ListExpired returns used, non-finalized windows whose end has passed.
	// Consumed by the daily sweep.
	ListExpired(ctx context.Context, now time.Time) ([]Window, error)

	// ListExpiring returns active windows ending within the given number of
	// days. Consumed by the pre-expiry warning pass.
	ListExpiring(ctx context.Context, now time.Time, withinDays int) ([]Window, error)
}
