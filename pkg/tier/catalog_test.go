package tier_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estately/entitlements/pkg/tier"
)

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	t.Run("loads default definitions", func(t *testing.T) {
		t.Parallel()
		catalog, err := tier.NewCatalog(context.Background(), tier.NewMemorySource(tier.DefaultDefinitions()))
		require.NoError(t, err)

		def, err := catalog.Get(tier.AgencyBasic)
		require.NoError(t, err)
		assert.Equal(t, int64(20), def.MaxListings)
		assert.Equal(t, int64(200), def.MaxImagesTotal)
		assert.Equal(t, int64(3), def.MaxAgents)
		assert.True(t, def.CanFeatureListings)
	})

	t.Run("rejects duplicate IDs", func(t *testing.T) {
		t.Parallel()
		defs := []tier.Definition{
			{ID: tier.AgencyFree, Class: tier.ClassAgency},
			{ID: tier.AgencyFree, Class: tier.ClassAgency},
		}
		_, err := tier.NewCatalog(context.Background(), tier.NewMemorySource(defs))
		assert.ErrorIs(t, err, tier.ErrInvalidTierConfiguration)
	})

	t.Run("rejects unknown class", func(t *testing.T) {
		t.Parallel()
		defs := []tier.Definition{{ID: "custom", Class: "enterprise"}}
		_, err := tier.NewCatalog(context.Background(), tier.NewMemorySource(defs))
		assert.ErrorIs(t, err, tier.ErrInvalidTierConfiguration)
	})

	t.Run("rejects limits below unlimited sentinel", func(t *testing.T) {
		t.Parallel()
		defs := []tier.Definition{{ID: "custom", Class: tier.ClassAgency, MaxListings: -2}}
		_, err := tier.NewCatalog(context.Background(), tier.NewMemorySource(defs))
		assert.ErrorIs(t, err, tier.ErrInvalidTierConfiguration)
	})

	t.Run("unknown tier lookup", func(t *testing.T) {
		t.Parallel()
		catalog, err := tier.NewCatalog(context.Background(), tier.NewMemorySource(tier.DefaultDefinitions()))
		require.NoError(t, err)

		_, err = catalog.Get("nonexistent")
		assert.ErrorIs(t, err, tier.ErrTierNotFound)
		assert.False(t, catalog.Has("nonexistent"))
	})
}

func TestCatalog_Next(t *testing.T) {
	t.Parallel()

	catalog, err := tier.NewCatalog(context.Background(), tier.NewMemorySource(tier.DefaultDefinitions()))
	require.NoError(t, err)

	t.Run("follows the agency ladder", func(t *testing.T) {
		t.Parallel()
		next, ok := catalog.Next(tier.AgencyFree)
		require.True(t, ok)
		assert.Equal(t, tier.AgencyBasic, next)

		next, ok = catalog.Next(tier.AgencyBasic)
		require.True(t, ok)
		assert.Equal(t, tier.AgencyPro, next)

		next, ok = catalog.Next(tier.AgencyPro)
		require.True(t, ok)
		assert.Equal(t, tier.AgencyPremium, next)
	})

	t.Run("no successor at the top tier", func(t *testing.T) {
		t.Parallel()
		_, ok := catalog.Next(tier.AgencyPremium)
		assert.False(t, ok)
	})

	t.Run("ladder never crosses class boundaries", func(t *testing.T) {
		t.Parallel()
		_, ok := catalog.Next(tier.UserFree)
		assert.False(t, ok, "sole individual tier has no successor")
	})

	t.Run("unknown tier has no successor", func(t *testing.T) {
		t.Parallel()
		_, ok := catalog.Next("nonexistent")
		assert.False(t, ok)
	})
}

func TestCatalog_HasFeature(t *testing.T) {
	t.Parallel()

	catalog, err := tier.NewCatalog(context.Background(), tier.NewMemorySource(tier.DefaultDefinitions()))
	require.NoError(t, err)

	assert.True(t, catalog.HasFeature(tier.AgencyBasic, tier.FeatureAnalytics))
	assert.False(t, catalog.HasFeature(tier.AgencyFree, tier.FeatureAnalytics))
	assert.False(t, catalog.HasFeature("nonexistent", tier.FeatureAnalytics), "fails closed for unknown tiers")
}

func TestYAMLSource(t *testing.T) {
	t.Parallel()

	raw := []byte(`
tiers:
  - id: agency_free
    name: Free Agency
    class: agency
    max_listings: 3
    max_images_total: 30
    max_images_per_listing: 20
    max_agents: 1
  - id: agency_basic
    name: Basic Agency
    class: agency
    monthly_price_amount: 240000
    currency: RSD
    max_listings: 20
    max_images_total: 200
    max_images_per_listing: 20
    max_agents: 3
    max_super_agents: 1
    max_featured_listings: 3
    can_feature_listings: true
    features: [list_properties, analytics]
`)

	t.Run("parses catalog and keeps ladder order", func(t *testing.T) {
		t.Parallel()
		catalog, err := tier.NewCatalog(context.Background(), tier.NewYAMLSourceFromBytes(raw))
		require.NoError(t, err)

		def, err := catalog.Get(tier.AgencyBasic)
		require.NoError(t, err)
		assert.Equal(t, int64(240000), def.MonthlyPrice.Amount)
		assert.True(t, def.HasFeature(tier.FeatureAnalytics))

		next, ok := catalog.Next(tier.AgencyFree)
		require.True(t, ok)
		assert.Equal(t, tier.AgencyBasic, next)
	})

	t.Run("rejects empty catalog", func(t *testing.T) {
		t.Parallel()
		_, err := tier.NewCatalog(context.Background(), tier.NewYAMLSourceFromBytes([]byte("tiers: []")))
		assert.ErrorIs(t, err, tier.ErrFailedToLoadTierCatalog)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()
		_, err := tier.NewCatalog(context.Background(), tier.NewYAMLSourceFromBytes([]byte("tiers: {broken")))
		assert.ErrorIs(t, err, tier.ErrFailedToLoadTierCatalog)
	})
}
