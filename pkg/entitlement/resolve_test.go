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
	"github.com/estately/entitlements/pkg/trial"
)

func defaultCatalog(t *testing.T) *tier.Catalog {
	t.Helper()

	catalog, err := tier.NewCatalog(context.Background(), tier.NewMemorySource(tier.DefaultDefinitions()))
	require.NoError(t, err)
	return catalog
}

func trialWindow(class tier.Class, start time.Time, days int) *trial.Window {
	end := start.AddDate(0, 0, days)
	return &trial.Window{
		TenantID: uuid.New(),
		Class:    class,
		Used:     true,
		StartsAt: start,
		EndsAt:   &end,
	}
}

func TestResolveEffectiveTier(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("agency on trial resolves to pro", func(t *testing.T) {
		t.Parallel()

		snap := entitlement.TenantSnapshot{
			Class:    tier.ClassAgency,
			BaseTier: tier.AgencyFree,
			Trial:    trialWindow(tier.ClassAgency, start, 45),
		}

		assert.Equal(t, tier.AgencyPro, entitlement.ResolveEffectiveTier(snap, start.AddDate(0, 0, 10)))
	})

	t.Run("expired trial falls back to base with no write", func(t *testing.T) {
		t.Parallel()

		snap := entitlement.TenantSnapshot{
			Class:    tier.ClassAgency,
			BaseTier: tier.AgencyFree,
			Trial:    trialWindow(tier.ClassAgency, start, 45),
		}

		assert.Equal(t, tier.AgencyFree, entitlement.ResolveEffectiveTier(snap, start.AddDate(0, 0, 50)))
	})

	t.Run("individual on trial keeps base tier", func(t *testing.T) {
		t.Parallel()

		snap := entitlement.TenantSnapshot{
			Class:    tier.ClassIndividual,
			BaseTier: tier.UserFree,
			Trial:    trialWindow(tier.ClassIndividual, start, 45),
		}

		assert.Equal(t, tier.UserFree, entitlement.ResolveEffectiveTier(snap, start.AddDate(0, 0, 10)))
	})

	t.Run("no trial resolves to base", func(t *testing.T) {
		t.Parallel()

		snap := entitlement.TenantSnapshot{
			Class:    tier.ClassAgency,
			BaseTier: tier.AgencyBasic,
		}

		assert.Equal(t, tier.AgencyBasic, entitlement.ResolveEffectiveTier(snap, start))
	})
}

func TestTrialFeatures(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("individual trial unlocks flags without changing tier", func(t *testing.T) {
		t.Parallel()

		catalog := defaultCatalog(t)
		snap := entitlement.TenantSnapshot{
			Class:    tier.ClassIndividual,
			BaseTier: tier.UserFree,
			Trial:    trialWindow(tier.ClassIndividual, start, 45),
		}
		now := start.AddDate(0, 0, 10)

		assert.True(t, entitlement.HasFeature(snap, catalog, now, tier.FeatureAnalytics))

		// Once the trial lapses the unlocked flags go away.
		later := start.AddDate(0, 0, 50)
		assert.False(t, entitlement.HasFeature(snap, catalog, later, tier.FeatureAnalytics))
	})

	t.Run("trial only adds features on top of the base set", func(t *testing.T) {
		t.Parallel()

		catalog := defaultCatalog(t)
		base := entitlement.TenantSnapshot{Class: tier.ClassAgency, BaseTier: tier.AgencyBasic}
		onTrial := base
		onTrial.Trial = trialWindow(tier.ClassAgency, start, 45)
		now := start.AddDate(0, 0, 10)

		for _, f := range entitlement.TrialFeatures(base, catalog, now) {
			assert.True(t, entitlement.HasFeature(onTrial, catalog, now, f),
				"feature %s lost during trial", f)
		}
	})
}
