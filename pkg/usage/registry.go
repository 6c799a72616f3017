package usage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/estately/entitlements/pkg/entitlement"
)

// CounterFunc reports one tenant's current count for a single dimension.
// Counters are owned by the surrounding system (listing store, team store);
// this package only aggregates them.
type CounterFunc func(ctx context.Context, tenantID uuid.UUID) (int64, error)

// ErrCounterNotRegistered is returned by Collect for dimensions without a
// counter.
var ErrCounterNotRegistered = errors.New("usage.errors.counter_not_registered")

// Registry maps quota dimensions to their counters. Register everything at
// startup; the registry is not safe for concurrent mutation afterwards.
type Registry struct {
	counters map[entitlement.Dimension]CounterFunc
}

// NewRegistry creates an empty counter registry.
func NewRegistry() *Registry {
	return &Registry{counters: make(map[entitlement.Dimension]CounterFunc)}
}

// Register attaches a counter to a dimension, replacing any previous one.
// Panics on a nil counter: a missing counter is a wiring bug, not a
// runtime condition.
func (r *Registry) Register(dim entitlement.Dimension, fn CounterFunc) {
	if fn == nil {
		panic(fmt.Sprintf("usage: nil counter for dimension %q", dim))
	}
	r.counters[dim] = fn
}

// Collect reads every registered counter and assembles the usage snapshot.
// All five dimensions must be registered.
func (r *Registry) Collect(ctx context.Context, tenantID uuid.UUID) (entitlement.Usage, error) {
	var u entitlement.Usage

	for _, d := range []struct {
		dim  entitlement.Dimension
		dest *int64
	}{
		{entitlement.DimensionListings, &u.Listings},
		{entitlement.DimensionImages, &u.Images},
		{entitlement.DimensionAgents, &u.Agents},
		{entitlement.DimensionSuperAgents, &u.SuperAgents},
		{entitlement.DimensionFeaturedListings, &u.FeaturedListings},
	} {
		fn, exists := r.counters[d.dim]
		if !exists {
			return entitlement.Usage{}, fmt.Errorf("%w: %s", ErrCounterNotRegistered, d.dim)
		}

		n, err := fn(ctx, tenantID)
		if err != nil {
			return entitlement.Usage{}, fmt.Errorf("count %s: %w", d.dim, err)
		}
		*d.dest = n
	}

	return u, nil
}
