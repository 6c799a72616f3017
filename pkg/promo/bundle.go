package promo

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Bundle is a named package of promotion kinds sold together.
type Bundle string

const (
	BundleBronze Bundle = "bronze"
	BundleSilver Bundle = "silver"
	BundleGold   Bundle = "gold"
)

// bundleKinds maps each bundle to the kinds it activates. Every kind runs
// for its own standard duration.
var bundleKinds = map[Bundle][]Kind{
	BundleBronze: {KindFeatured, KindUrgent},
	BundleSilver: {KindFeatured, KindUrgent, KindHighlighted, KindCategoryFeatured},
	BundleGold: {
		KindFeatured, KindUrgent, KindHighlighted,
		KindCategoryFeatured, KindCrossPromotion, KindShowcase, KindPremiumBadge,
	},
}

// Valid reports whether b is a known bundle.
func (b Bundle) Valid() bool {
	_, ok := bundleKinds[b]
	return ok
}

// Kinds returns the promotion kinds a bundle activates.
func (b Bundle) Kinds() []Kind {
	return bundleKinds[b]
}

// ApplyBundle activates every kind in the bundle through a single store
// write, each for its standard duration. Kinds already active have their
// clocks restarted.
func (m *Manager) ApplyBundle(ctx context.Context, entityID uuid.UUID, bundle Bundle) ([]Window, error) {
	kinds, ok := bundleKinds[bundle]
	if !ok {
		return nil, ErrUnknownBundle
	}

	windows, err := m.loadWindows(ctx, entityID)
	if err != nil {
		return nil, err
	}

	now := m.now()
	for _, kind := range kinds {
		expires := now.AddDate(0, 0, DefaultDurationDays(kind))
		w := Window{
			Kind:        kind,
			Active:      true,
			ActivatedAt: now,
			ExpiresAt:   &expires,
		}
		if idx := indexOfKind(windows, kind); idx >= 0 {
			windows[idx] = w
		} else {
			windows = append(windows, w)
		}
	}

	if err := m.store.SaveWindows(ctx, entityID, windows); err != nil {
		return nil, err
	}

	m.logger.InfoContext(ctx, "promotion bundle applied",
		slog.String("entity_id", entityID.String()),
		slog.String("bundle", string(bundle)),
		slog.Int("kinds", len(kinds)))

	return windows, nil
}
