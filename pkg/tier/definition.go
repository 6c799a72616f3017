package tier

import "slices"

// Definition describes a tier and its quota/feature constraints.
// Definitions are immutable once loaded into a Catalog.
type Definition struct {
	ID                  ID
	Name                string
	Class               Class
	MonthlyPrice        Money
	MaxListings         int64 // -1 represents unlimited
	MaxImagesTotal      int64
	MaxImagesPerListing int64
	MaxAgents           int64
	MaxSuperAgents      int64
	MaxFeaturedListings int64
	CanFeatureListings  bool
	Features            []Feature
}

// HasFeature reports whether the tier enables the given feature flag.
func (d Definition) HasFeature(f Feature) bool {
	return slices.Contains(d.Features, f)
}

// AllowsUnlimitedListings reports whether the listing quota is uncapped.
func (d Definition) AllowsUnlimitedListings() bool {
	return d.MaxListings == Unlimited
}

func (d Definition) clone() Definition {
	d.Features = slices.Clone(d.Features)
	return d
}
