package promo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgStore persists promotion windows in the promotion_windows table, one
// row per (entity, kind). SaveWindows replaces the entity's rows inside a
// transaction so multi-kind updates land atomically.
type pgStore struct {
	pool *pgxpool.Pool
}

// NewPGStore returns a postgres-backed Store.
func NewPGStore(pool *pgxpool.Pool) Store {
	if pool == nil {
		panic("promo: pgxpool.Pool is required")
	}
	return &pgStore{pool: pool}
}

func (s *pgStore) GetWindows(ctx context.Context, entityID uuid.UUID) ([]Window, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT kind, active, activated_at, expires_at
		FROM promotion_windows
		WHERE entity_id = $1
		ORDER BY kind`, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Window
	for rows.Next() {
		var (
			w    Window
			kind string
		)
		if err := rows.Scan(&kind, &w.Active, &w.ActivatedAt, &w.ExpiresAt); err != nil {
			return nil, err
		}
		w.Kind = Kind(kind)
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

func (s *pgStore) SaveWindows(ctx context.Context, entityID uuid.UUID, windows []Window) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM promotion_windows WHERE entity_id = $1`, entityID); err != nil {
			return err
		}

		for _, w := range windows {
			if _, err := tx.Exec(ctx, `
				INSERT INTO promotion_windows (entity_id, kind, active, activated_at, expires_at)
				VALUES ($1, $2, $3, $4, $5)`,
				entityID, string(w.Kind), w.Active, w.ActivatedAt, w.ExpiresAt); err != nil {
				return err
			}
		}
		return nil
	})
}
