package promo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Manager runs the promotion lifecycle for listings and agency profiles.
// Expiry is reconciled lazily on read; there is no background job.
type Manager struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the logger used for lifecycle and invariant logging.
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithClock overrides the time source, primarily for tests.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// NewManager creates a promotion lifecycle manager. Panics if store is nil.
func NewManager(store Store, opts ...ManagerOption) *Manager {
	if store == nil {
		panic("promo: store is required")
	}

	m := &Manager{
		store:  store,
		logger: slog.Default(),
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Activate turns on a promotion kind for the standard paid duration of that
// kind. Kinds are independent; activating one never touches the others.
// Activating an already active kind restarts its clock.
func (m *Manager) Activate(ctx context.Context, entityID uuid.UUID, kind Kind) (*Window, error) {
	return m.ActivateFor(ctx, entityID, kind, DefaultDurationDays(kind))
}

// ActivateFor turns on a promotion kind for an explicit number of days.
func (m *Manager) ActivateFor(ctx context.Context, entityID uuid.UUID, kind Kind, days int) (*Window, error) {
	if !kind.Valid() {
		return nil, ErrUnknownKind
	}
	if days <= 0 {
		return nil, ErrInvalidDays
	}

	now := m.now()
	expires := now.AddDate(0, 0, days)
	return m.putWindow(ctx, entityID, Window{
		Kind:        kind,
		Active:      true,
		ActivatedAt: now,
		ExpiresAt:   &expires,
	})
}

// ActivateUntilCleared turns on a promotion kind with no expiry; it stays
// active until Deactivate is called.
func (m *Manager) ActivateUntilCleared(ctx context.Context, entityID uuid.UUID, kind Kind) (*Window, error) {
	if !kind.Valid() {
		return nil, ErrUnknownKind
	}

	return m.putWindow(ctx, entityID, Window{
		Kind:        kind,
		Active:      true,
		ActivatedAt: m.now(),
	})
}

// Renew extends a promotion by additionalDays counted from the later of now
// and the current expiry, so renewing early never loses paid days and
// renewing late restarts from now. An expired window is reactivated.
func (m *Manager) Renew(ctx context.Context, entityID uuid.UUID, kind Kind, additionalDays int) (*Window, error) {
	if additionalDays <= 0 {
		return nil, ErrInvalidDays
	}

	windows, err := m.loadWindows(ctx, entityID)
	if err != nil {
		return nil, err
	}

	idx := indexOfKind(windows, kind)
	if idx < 0 {
		return nil, ErrNotFound
	}

	now := m.now()
	w := windows[idx]

	base := now
	if w.ExpiresAt != nil && w.ExpiresAt.After(now) {
		base = *w.ExpiresAt
	}
	expires := base.AddDate(0, 0, additionalDays)

	w.Active = true
	w.ExpiresAt = &expires
	if w.ActivatedAt.IsZero() {
		w.ActivatedAt = now
	}
	windows[idx] = w

	if err := m.store.SaveWindows(ctx, entityID, windows); err != nil {
		return nil, err
	}

	m.logger.InfoContext(ctx, "promotion renewed",
		slog.String("entity_id", entityID.String()),
		slog.String("kind", string(kind)),
		slog.Time("expires_at", expires))

	return &w, nil
}

// Deactivate turns off a promotion kind before its natural expiry.
func (m *Manager) Deactivate(ctx context.Context, entityID uuid.UUID, kind Kind) error {
	windows, err := m.loadWindows(ctx, entityID)
	if err != nil {
		return err
	}

	idx := indexOfKind(windows, kind)
	if idx < 0 {
		return ErrNotFound
	}

	windows[idx].Active = false
	return m.store.SaveWindows(ctx, entityID, windows)
}

// Reconcile normalizes the entity's windows: expired ones get Active=false
// and corrupt ones (active with no activation timestamp) are deactivated and
// logged. The store is written only when something changed, so repeated
// calls on a settled entity are free and the operation is idempotent.
func (m *Manager) Reconcile(ctx context.Context, entityID uuid.UUID) ([]Window, error) {
	windows, err := m.loadWindows(ctx, entityID)
	if err != nil {
		return nil, err
	}

	now := m.now()
	changed := false

	for i := range windows {
		w := windows[i]
		if !w.Active {
			continue
		}

		if w.corrupt() {
			m.logger.ErrorContext(ctx, "promotion window active without activation timestamp",
				slog.String("entity_id", entityID.String()),
				slog.String("kind", string(w.Kind)),
				slog.Any("error", ErrInvariantViolation))
			windows[i].Active = false
			changed = true
			continue
		}

		if w.ExpiredAt(now) {
			windows[i].Active = false
			changed = true
		}
	}

	if changed {
		if err := m.store.SaveWindows(ctx, entityID, windows); err != nil {
			return nil, err
		}
	}

	return windows, nil
}

// ActiveKinds reconciles the entity and returns the set of kinds active
// right now. Entities with no windows get an empty set, not an error.
func (m *Manager) ActiveKinds(ctx context.Context, entityID uuid.UUID) (map[Kind]struct{}, error) {
	windows, err := m.Reconcile(ctx, entityID)
	if err != nil {
		return nil, err
	}

	now := m.now()
	active := make(map[Kind]struct{})
	for _, w := range windows {
		if w.ActiveAt(now) {
			active[w.Kind] = struct{}{}
		}
	}
	return active, nil
}

// Windows returns the entity's windows without reconciling. Entities with
// no windows get an empty slice.
func (m *Manager) Windows(ctx context.Context, entityID uuid.UUID) ([]Window, error) {
	return m.loadWindows(ctx, entityID)
}

// loadWindows reads the entity's windows, mapping absence to an empty slice.
func (m *Manager) loadWindows(ctx context.Context, entityID uuid.UUID) ([]Window, error) {
	windows, err := m.store.GetWindows(ctx, entityID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return windows, nil
}

// putWindow upserts one window by kind and persists the full set.
func (m *Manager) putWindow(ctx context.Context, entityID uuid.UUID, w Window) (*Window, error) {
	windows, err := m.loadWindows(ctx, entityID)
	if err != nil {
		return nil, err
	}

	if idx := indexOfKind(windows, w.Kind); idx >= 0 {
		windows[idx] = w
	} else {
		windows = append(windows, w)
	}

	if err := m.store.SaveWindows(ctx, entityID, windows); err != nil {
		return nil, err
	}

	m.logger.InfoContext(ctx, "promotion activated",
		slog.String("entity_id", entityID.String()),
		slog.String("kind", string(w.Kind)))

	return &w, nil
}

func indexOfKind(windows []Window, kind Kind) int {
	for i := range windows {
		if windows[i].Kind == kind {
			return i
		}
	}
	return -1
}
