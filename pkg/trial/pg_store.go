package trial

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/estately/entitlements/pkg/tier"
)

// pgStore persists trial windows in the trial_windows table.
// Schema lives in pkg/pg/migrations.
type pgStore struct {
	pool *pgxpool.Pool
}

// NewPGStore returns a postgres-backed Store.
func NewPGStore(pool *pgxpool.Pool) Store {
	if pool == nil {
		panic("trial: pgxpool.Pool is required")
	}
	return &pgStore{pool: pool}
}

func (s *pgStore) Get(ctx context.Context, tenantID uuid.UUID) (*Window, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT tenant_id, class, used, starts_at, ends_at, last_notified_threshold, finalized
		FROM trial_windows
		WHERE tenant_id = $1`, tenantID)

	w, err := scanWindow(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (s *pgStore) Save(ctx context.Context, w *Window) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO trial_windows (tenant_id, class, used, starts_at, ends_at, last_notified_threshold, finalized)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (tenant_id) DO UPDATE SET
			class = EXCLUDED.class,
			used = EXCLUDED.used,
			starts_at = EXCLUDED.starts_at,
			ends_at = EXCLUDED.ends_at,
			last_notified_threshold = EXCLUDED.last_notified_threshold,
			finalized = EXCLUDED.finalized`,
		w.TenantID, string(w.Class), w.Used, w.StartsAt, w.EndsAt, w.LastNotifiedThreshold, w.Finalized)
	return err
}

func (s *pgStore) ListExpired(ctx context.Context, now time.Time) ([]Window, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT tenant_id, class, used, starts_at, ends_at, last_notified_threshold, finalized
		FROM trial_windows
		WHERE used AND NOT finalized AND ends_at IS NOT NULL AND ends_at <= $1`, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectWindows(rows)
}

func (s *pgStore) ListExpiring(ctx context.Context, now time.Time, withinDays int) ([]Window, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT tenant_id, class, used, starts_at, ends_at, last_notified_threshold, finalized
		FROM trial_windows
		WHERE used AND ends_at IS NOT NULL AND ends_at > $1 AND ends_at <= $2`,
		now, now.AddDate(0, 0, withinDays))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectWindows(rows)
}

func scanWindow(row pgx.Row) (*Window, error) {
	var (
		w     Window
		class string
	)
	if err := row.Scan(&w.TenantID, &class, &w.Used, &w.StartsAt, &w.EndsAt,
		&w.LastNotifiedThreshold, &w.Finalized); err != nil {
		return nil, err
	}
	w.Class = tier.Class(class)
	return &w, nil
}

func collectWindows(rows pgx.Rows) ([]Window, error) {
	var out []Window
	for rows.Next() {
		w, err := scanWindow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *w)
	}
	return out, rows.Err()
}
