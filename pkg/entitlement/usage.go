package entitlement

// Usage holds a tenant's current consumption per quota dimension. Counters
// are owned by the surrounding system; this package only reads them.
type Usage struct {
	Listings         int64
	Images           int64
	Agents           int64
	SuperAgents      int64
	FeaturedListings int64
}
