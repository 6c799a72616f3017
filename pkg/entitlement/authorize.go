package entitlement

import "github.com/estately/entitlements/pkg/tier"

// Authorize decides whether an operation fits within the tier's quotas
// given current usage. Pure function: no clock, no I/O.
//
// The check is advisory by design. Usage is read before the operation
// executes, so two concurrent requests at limit-1 may both pass; the
// surrounding system tolerates a tenant briefly exceeding a quota by one.
func Authorize(def tier.Definition, usage Usage, op Operation) Decision {
	switch o := op.(type) {
	case opCreateListing:
		return checkDimension(ReasonListingLimit, usage.Listings, 1, def.MaxListings)

	case opAddImages:
		// Both ceilings apply independently: the batch may not exceed the
		// per-listing cap, and the account-wide total may not overflow.
		if def.MaxImagesPerListing != tier.Unlimited && o.count > def.MaxImagesPerListing {
			return Deny(ReasonImageLimit, o.count, def.MaxImagesPerListing)
		}
		return checkDimension(ReasonImageLimit, usage.Images, o.count, def.MaxImagesTotal)

	case opAddAgent:
		return checkDimension(ReasonAgentLimit, usage.Agents, 1, def.MaxAgents)

	case opPromoteToSuperAgent:
		return checkDimension(ReasonSuperAgentLimit, usage.SuperAgents, 1, def.MaxSuperAgents)

	case opFeatureListing:
		if !def.CanFeatureListings {
			return Deny(ReasonFeatureNotAllowed, usage.FeaturedListings, def.MaxFeaturedListings)
		}
		return checkDimension(ReasonFeatureLimit, usage.FeaturedListings, 1, def.MaxFeaturedListings)

	default:
		// The Operation interface is closed; an unknown value means a bug
		// in this package, so fail closed.
		return Deny(ReasonFeatureNotAllowed, 0, 0)
	}
}

// checkDimension applies one quota dimension. Unlimited always passes; a
// zero limit always refuses.
func checkDimension(reason DenyReason, current, delta, max int64) Decision {
	if max == tier.Unlimited {
		return Allow()
	}
	if current+delta > max {
		return Deny(reason, current, max)
	}
	return Allow()
}
