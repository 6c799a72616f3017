package advisor

import (
	"fmt"
	"sort"
	"time"

	"github.com/estately/entitlements/pkg/entitlement"
	"github.com/estately/entitlements/pkg/tier"
)

// Severity grades how urgent a suggestion is.
type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Suggestion codes, one per trigger.
type Code string

const (
	CodeListingLimit    Code = "listing_limit"
	CodeImageLimit      Code = "image_limit"
	CodeAgentLimit      Code = "agent_limit"
	CodeSuperAgentLimit Code = "super_agent_limit"
	CodeFeatureLimit    Code = "feature_limit"
	CodeTrialEnding     Code = "trial_ending"
)

// Suggestion is one upgrade prompt, ready to render.
type Suggestion struct {
	Code           Code
	Severity       Severity
	Dimension      entitlement.Dimension
	Message        string
	SuggestedTier  tier.ID
	UtilizationPct int
}

// Utilization thresholds and trial warning bands.
const (
	warnUtilizationPct     = 75
	criticalUtilizationPct = 90
	warnTrialDays          = 7
	criticalTrialDays      = 3
)

// Advisor turns utilization and trial state into ranked upgrade prompts.
type Advisor struct {
	catalog *tier.Catalog
}

// New creates an Advisor over a tier catalog. Panics if catalog is nil.
func New(catalog *tier.Catalog) *Advisor {
	if catalog == nil {
		panic("advisor: tier catalog is required")
	}
	return &Advisor{catalog: catalog}
}

// Suggest emits at most one suggestion per quota dimension plus one for an
// ending trial, ranked critical first and within a severity by utilization
// descending. The successor named is the one above the tenant's *base*
// tier: a trial tenant already operating at pro should be sold the upgrade
// from what they pay for, not from what they borrowed. Tenants at the top
// of their ladder get no quota suggestions.
func (a *Advisor) Suggest(snap entitlement.TenantSnapshot, usage entitlement.Usage, now time.Time) []Suggestion {
	var out []Suggestion

	def, err := a.catalog.Get(entitlement.ResolveEffectiveTier(snap, now))
	if err == nil {
		if next, ok := a.catalog.Next(snap.BaseTier); ok {
			out = append(out, quotaSuggestions(def, usage, next)...)
		}
	}

	if s, ok := trialSuggestion(snap, now); ok {
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Severity != out[j].Severity {
			return out[i].Severity == SeverityCritical
		}
		return out[i].UtilizationPct > out[j].UtilizationPct
	})

	return out
}

func quotaSuggestions(def tier.Definition, usage entitlement.Usage, next tier.ID) []Suggestion {
	dims := []struct {
		code    Code
		dim     entitlement.Dimension
		label   string
		current int64
		max     int64
	}{
		{CodeListingLimit, entitlement.DimensionListings, "listing", usage.Listings, def.MaxListings},
		{CodeImageLimit, entitlement.DimensionImages, "image", usage.Images, def.MaxImagesTotal},
		{CodeAgentLimit, entitlement.DimensionAgents, "agent seat", usage.Agents, def.MaxAgents},
		{CodeSuperAgentLimit, entitlement.DimensionSuperAgents, "super-agent seat", usage.SuperAgents, def.MaxSuperAgents},
		{CodeFeatureLimit, entitlement.DimensionFeaturedListings, "featured listing", usage.FeaturedListings, def.MaxFeaturedListings},
	}

	var out []Suggestion
	for _, d := range dims {
		if d.max == tier.Unlimited || d.max <= 0 {
			continue
		}

		pct := int(d.current * 100 / d.max)
		severity, ok := utilizationSeverity(pct)
		if !ok {
			continue
		}

		out = append(out, Suggestion{
			Code:      d.code,
			Severity:  severity,
			Dimension: d.dim,
			Message: fmt.Sprintf("approaching %s limit (%d/%d), consider upgrading to %s",
				d.label, d.current, d.max, next),
			SuggestedTier:  next,
			UtilizationPct: min(pct, 100),
		})
	}
	return out
}

func utilizationSeverity(pct int) (Severity, bool) {
	switch {
	case pct >= criticalUtilizationPct:
		return SeverityCritical, true
	case pct >= warnUtilizationPct:
		return SeverityWarning, true
	default:
		return "", false
	}
}

func trialSuggestion(snap entitlement.TenantSnapshot, now time.Time) (Suggestion, bool) {
	if snap.Trial == nil || !snap.Trial.ActiveAt(now) {
		return Suggestion{}, false
	}

	days := snap.Trial.DaysRemainingAt(now)
	severity := SeverityWarning
	switch {
	case days <= criticalTrialDays:
		severity = SeverityCritical
	case days <= warnTrialDays:
	default:
		return Suggestion{}, false
	}

	return Suggestion{
		Code:     CodeTrialEnding,
		Severity: severity,
		Message:  fmt.Sprintf("trial ends in %d days, pick a plan to keep your benefits", days),
	}, true
}
