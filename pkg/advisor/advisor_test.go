package advisor_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estately/entitlements/pkg/advisor"
	"github.com/estately/entitlements/pkg/entitlement"
	"github.com/estately/entitlements/pkg/tier"
	"github.com/estately/entitlements/pkg/trial"
)

func newAdvisor(t *testing.T) *advisor.Advisor {
	t.Helper()

	catalog, err := tier.NewCatalog(context.Background(), tier.NewMemorySource(tier.DefaultDefinitions()))
	require.NoError(t, err)
	return advisor.New(catalog)
}

func basicAgency() entitlement.TenantSnapshot {
	return entitlement.TenantSnapshot{
		TenantID: uuid.New(),
		Class:    tier.ClassAgency,
		BaseTier: tier.AgencyBasic,
	}
}

func TestAdvisor_Suggest(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("listings past ninety percent yield one critical naming the successor", func(t *testing.T) {
		t.Parallel()

		a := newAdvisor(t)
		// 18 of the basic tier's 20 listings, nothing else elevated.
		usage := entitlement.Usage{Listings: 18, Images: 40}

		got := a.Suggest(basicAgency(), usage, now)
		require.Len(t, got, 1)
		assert.Equal(t, advisor.CodeListingLimit, got[0].Code)
		assert.Equal(t, advisor.SeverityCritical, got[0].Severity)
		assert.Equal(t, tier.AgencyPro, got[0].SuggestedTier)
		assert.Equal(t, 90, got[0].UtilizationPct)
	})

	t.Run("below the warning threshold nothing fires", func(t *testing.T) {
		t.Parallel()

		a := newAdvisor(t)

		got := a.Suggest(basicAgency(), entitlement.Usage{Listings: 10}, now)
		assert.Empty(t, got)
	})

	t.Run("critical suggestions rank ahead of warnings", func(t *testing.T) {
		t.Parallel()

		a := newAdvisor(t)
		// Listings at 80% (warning), images at 95% (critical).
		usage := entitlement.Usage{Listings: 16, Images: 190}

		got := a.Suggest(basicAgency(), usage, now)
		require.Len(t, got, 2)
		assert.Equal(t, advisor.CodeImageLimit, got[0].Code)
		assert.Equal(t, advisor.SeverityCritical, got[0].Severity)
		assert.Equal(t, advisor.CodeListingLimit, got[1].Code)
		assert.Equal(t, advisor.SeverityWarning, got[1].Severity)
	})

	t.Run("top tier gets no quota suggestions", func(t *testing.T) {
		t.Parallel()

		a := newAdvisor(t)
		snap := basicAgency()
		snap.BaseTier = tier.AgencyPremium
		usage := entitlement.Usage{Images: 990, Agents: 24}

		got := a.Suggest(snap, usage, now)
		assert.Empty(t, got)
	})

	t.Run("trial ending escalates from warning to critical", func(t *testing.T) {
		t.Parallel()

		a := newAdvisor(t)
		snap := basicAgency()
		end := now.AddDate(0, 0, 6)
		snap.Trial = &trial.Window{
			TenantID: snap.TenantID,
			Class:    tier.ClassAgency,
			Used:     true,
			StartsAt: now.AddDate(0, 0, -39),
			EndsAt:   &end,
		}

		got := a.Suggest(snap, entitlement.Usage{}, now)
		require.Len(t, got, 1)
		assert.Equal(t, advisor.CodeTrialEnding, got[0].Code)
		assert.Equal(t, advisor.SeverityWarning, got[0].Severity)

		// Two days left now.
		got = a.Suggest(snap, entitlement.Usage{}, now.AddDate(0, 0, 4))
		require.Len(t, got, 1)
		assert.Equal(t, advisor.SeverityCritical, got[0].Severity)
	})

	t.Run("successor is named from the base tier, not the trial override", func(t *testing.T) {
		t.Parallel()

		a := newAdvisor(t)
		snap := basicAgency()
		snap.BaseTier = tier.AgencyFree
		end := now.AddDate(0, 0, 30)
		snap.Trial = &trial.Window{
			TenantID: snap.TenantID,
			Class:    tier.ClassAgency,
			Used:     true,
			StartsAt: now.AddDate(0, 0, -15),
			EndsAt:   &end,
		}
		// 55 of the pro tier's 60 listings used while on trial.
		usage := entitlement.Usage{Listings: 55}

		got := a.Suggest(snap, usage, now)
		require.Len(t, got, 1)
		assert.Equal(t, advisor.SeverityCritical, got[0].Severity)
		assert.Equal(t, tier.AgencyBasic, got[0].SuggestedTier)
	})
}
