package entitlement

import (
	"time"

	"github.com/google/uuid"

	"github.com/estately/entitlements/pkg/tier"
	"github.com/estately/entitlements/pkg/trial"
)

// TenantSnapshot is everything needed to resolve a tenant's capabilities at
// one instant: who they are, what they pay for, and whether a trial runs.
type TenantSnapshot struct {
	TenantID uuid.UUID
	Class    tier.Class
	BaseTier tier.ID
	Trial    *trial.Window
}

// trialUnlockedFeatures are the flags an individual-class trial turns on.
// Individuals keep their base tier during a trial; only features change.
var trialUnlockedFeatures = []tier.Feature{
	tier.FeatureAnalytics,
	tier.FeaturePrioritySupport,
}

// ResolveEffectiveTier computes the tier a tenant operates at right now.
// An active trial overlays the base tier for agencies (they resolve to the
// PRO tier for its duration); individuals keep their base tier. The result
// is computed fresh on every call and must never be cached: a trial that
// ran out at 03:00 resolves to the base tier at 03:01 with no write in
// between.
func ResolveEffectiveTier(snap TenantSnapshot, now time.Time) tier.ID {
	if snap.Trial != nil && snap.Trial.ActiveAt(now) && snap.Class == tier.ClassAgency {
		return tier.AgencyPro
	}
	return snap.BaseTier
}

// TrialFeatures returns the feature flags available to the tenant at the
// given time: the effective tier's features, plus the trial-unlocked flags
// for individuals with a running trial. A trial only ever adds features on
// top of the base tier, never removes one.
func TrialFeatures(snap TenantSnapshot, catalog *tier.Catalog, now time.Time) []tier.Feature {
	def, err := catalog.Get(ResolveEffectiveTier(snap, now))
	if err != nil {
		return nil
	}

	features := make([]tier.Feature, len(def.Features))
	copy(features, def.Features)

	if snap.Class == tier.ClassIndividual && snap.Trial != nil && snap.Trial.ActiveAt(now) {
		for _, f := range trialUnlockedFeatures {
			if !def.HasFeature(f) {
				features = append(features, f)
			}
		}
	}
	return features
}

// HasFeature reports whether the tenant can use a feature at the given time.
func HasFeature(snap TenantSnapshot, catalog *tier.Catalog, now time.Time, f tier.Feature) bool {
	for _, have := range TrialFeatures(snap, catalog, now) {
		if have == f {
			return true
		}
	}
	return false
}
