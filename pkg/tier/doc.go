// Package tier provides the static tier catalog for the listings marketplace:
// quota limits, feature flags and the fixed upgrade ladder per account class.
//
// The catalog is loaded once from a Source (in-memory, YAML file, or the
// built-in defaults) and is immutable afterwards, making it safe for
// concurrent reads without locking.
//
// Usage:
//
//	catalog, err := tier.NewCatalog(ctx, tier.NewMemorySource(tier.DefaultDefinitions()))
//	if err != nil {
//		// handle error
//	}
//
//	def, err := catalog.Get(tier.AgencyBasic)
//	next, ok := catalog.Next(tier.AgencyBasic) // tier.AgencyPro, true
package tier
