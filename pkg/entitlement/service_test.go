package entitlement_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estately/entitlements/pkg/entitlement"
	"github.com/estately/entitlements/pkg/tier"
)

// stubSource serves fixed snapshots keyed by tenant.
type stubSource struct {
	snapshots map[uuid.UUID]entitlement.TenantSnapshot
	usage     map[uuid.UUID]entitlement.Usage
}

func (s *stubSource) Load(_ context.Context, tenantID uuid.UUID) (entitlement.TenantSnapshot, entitlement.Usage, error) {
	snap, exists := s.snapshots[tenantID]
	if !exists {
		return entitlement.TenantSnapshot{}, entitlement.Usage{}, entitlement.ErrTenantNotFound
	}
	return snap, s.usage[tenantID], nil
}

type stubBalance struct {
	balance int64
}

func (s *stubBalance) HasSufficientBalance(_ context.Context, _ uuid.UUID, amount int64) (bool, error) {
	return s.balance >= amount, nil
}

func TestService_Authorize(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	tenantID := uuid.New()

	source := &stubSource{
		snapshots: map[uuid.UUID]entitlement.TenantSnapshot{
			tenantID: {
				TenantID: tenantID,
				Class:    tier.ClassAgency,
				BaseTier: tier.AgencyFree,
				Trial:    trialWindow(tier.ClassAgency, start, 45),
			},
		},
		usage: map[uuid.UUID]entitlement.Usage{
			tenantID: {Listings: 10},
		},
	}

	t.Run("trial grants the pro limits", func(t *testing.T) {
		t.Parallel()

		svc := entitlement.NewService(defaultCatalog(t), source,
			entitlement.WithClock(func() time.Time { return start.AddDate(0, 0, 10) }))

		// 10 listings would exceed the free tier's 3 but fit pro's 60.
		d, err := svc.Authorize(context.Background(), tenantID, entitlement.CreateListing())
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	})

	t.Run("expired trial enforces the base tier", func(t *testing.T) {
		t.Parallel()

		svc := entitlement.NewService(defaultCatalog(t), source,
			entitlement.WithClock(func() time.Time { return start.AddDate(0, 0, 50) }))

		d, err := svc.Authorize(context.Background(), tenantID, entitlement.CreateListing())
		require.NoError(t, err)
		assert.False(t, d.Allowed)
		assert.Equal(t, entitlement.ReasonListingLimit, d.Reason)
	})

	t.Run("unknown tenant", func(t *testing.T) {
		t.Parallel()

		svc := entitlement.NewService(defaultCatalog(t), source)

		_, err := svc.Authorize(context.Background(), uuid.New(), entitlement.CreateListing())
		require.ErrorIs(t, err, entitlement.ErrTenantNotFound)
	})
}

func TestService_AuthorizeFunded(t *testing.T) {
	t.Parallel()

	tenantID := uuid.New()
	source := &stubSource{
		snapshots: map[uuid.UUID]entitlement.TenantSnapshot{
			tenantID: {TenantID: tenantID, Class: tier.ClassAgency, BaseTier: tier.AgencyBasic},
		},
		usage: map[uuid.UUID]entitlement.Usage{
			tenantID: {FeaturedListings: 3}, // basic allowance exhausted
		},
	}

	t.Run("sufficient credits fund featuring past the allowance", func(t *testing.T) {
		t.Parallel()

		svc := entitlement.NewService(defaultCatalog(t), source,
			entitlement.WithCreditFunding(&stubBalance{balance: 500}, 100))

		d, err := svc.AuthorizeFunded(context.Background(), tenantID, entitlement.FeatureListing())
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	})

	t.Run("insufficient credits keep the refusal", func(t *testing.T) {
		t.Parallel()

		svc := entitlement.NewService(defaultCatalog(t), source,
			entitlement.WithCreditFunding(&stubBalance{balance: 50}, 100))

		d, err := svc.AuthorizeFunded(context.Background(), tenantID, entitlement.FeatureListing())
		require.NoError(t, err)
		assert.False(t, d.Allowed)
		assert.Equal(t, entitlement.ReasonFeatureLimit, d.Reason)
	})

	t.Run("credits never fund tiers without featuring at all", func(t *testing.T) {
		t.Parallel()

		freeTenant := uuid.New()
		freeSource := &stubSource{
			snapshots: map[uuid.UUID]entitlement.TenantSnapshot{
				freeTenant: {TenantID: freeTenant, Class: tier.ClassAgency, BaseTier: tier.AgencyFree},
			},
			usage: map[uuid.UUID]entitlement.Usage{},
		}
		svc := entitlement.NewService(defaultCatalog(t), freeSource,
			entitlement.WithCreditFunding(&stubBalance{balance: 500}, 100))

		d, err := svc.AuthorizeFunded(context.Background(), freeTenant, entitlement.FeatureListing())
		require.NoError(t, err)
		assert.False(t, d.Allowed)
		assert.Equal(t, entitlement.ReasonFeatureNotAllowed, d.Reason)
	})
}

func TestService_UsagePercentages(t *testing.T) {
	t.Parallel()

	tenantID := uuid.New()
	source := &stubSource{
		snapshots: map[uuid.UUID]entitlement.TenantSnapshot{
			tenantID: {TenantID: tenantID, Class: tier.ClassAgency, BaseTier: tier.AgencyPremium},
		},
		usage: map[uuid.UUID]entitlement.Usage{
			tenantID: {Listings: 500, Images: 900, Agents: 30},
		},
	}
	svc := entitlement.NewService(defaultCatalog(t), source)

	pcts, err := svc.UsagePercentages(context.Background(), tenantID)
	require.NoError(t, err)

	assert.Equal(t, -1, pcts[entitlement.DimensionListings]) // unlimited
	assert.Equal(t, 90, pcts[entitlement.DimensionImages])
	assert.Equal(t, 100, pcts[entitlement.DimensionAgents]) // capped
	assert.Equal(t, 0, pcts[entitlement.DimensionSuperAgents])
}
