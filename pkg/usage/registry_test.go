package usage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estately/entitlements/pkg/entitlement"
	"github.com/estately/entitlements/pkg/usage"
)

func fixedCounter(n int64) usage.CounterFunc {
	return func(context.Context, uuid.UUID) (int64, error) { return n, nil }
}

func TestRegistry_Collect(t *testing.T) {
	t.Parallel()

	t.Run("assembles all dimensions", func(t *testing.T) {
		t.Parallel()

		reg := usage.NewRegistry()
		reg.Register(entitlement.DimensionListings, fixedCounter(12))
		reg.Register(entitlement.DimensionImages, fixedCounter(140))
		reg.Register(entitlement.DimensionAgents, fixedCounter(2))
		reg.Register(entitlement.DimensionSuperAgents, fixedCounter(1))
		reg.Register(entitlement.DimensionFeaturedListings, fixedCounter(3))

		got, err := reg.Collect(context.Background(), uuid.New())
		require.NoError(t, err)
		assert.Equal(t, entitlement.Usage{
			Listings:         12,
			Images:           140,
			Agents:           2,
			SuperAgents:      1,
			FeaturedListings: 3,
		}, got)
	})

	t.Run("missing dimension fails", func(t *testing.T) {
		t.Parallel()

		reg := usage.NewRegistry()
		reg.Register(entitlement.DimensionListings, fixedCounter(1))

		_, err := reg.Collect(context.Background(), uuid.New())
		require.ErrorIs(t, err, usage.ErrCounterNotRegistered)
	})

	t.Run("counter failure surfaces", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("listing store down")
		reg := usage.NewRegistry()
		reg.Register(entitlement.DimensionListings, func(context.Context, uuid.UUID) (int64, error) {
			return 0, boom
		})
		reg.Register(entitlement.DimensionImages, fixedCounter(0))
		reg.Register(entitlement.DimensionAgents, fixedCounter(0))
		reg.Register(entitlement.DimensionSuperAgents, fixedCounter(0))
		reg.Register(entitlement.DimensionFeaturedListings, fixedCounter(0))

		_, err := reg.Collect(context.Background(), uuid.New())
		require.ErrorIs(t, err, boom)
	})

	t.Run("nil counter panics at wiring time", func(t *testing.T) {
		t.Parallel()

		reg := usage.NewRegistry()
		assert.Panics(t, func() {
			reg.Register(entitlement.DimensionListings, nil)
		})
	})
}
