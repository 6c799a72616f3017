package tier

// ID identifies a subscription tier.
type ID string

// Predefined tier identifiers, ordered from lowest to highest within each class.
const (
	UserFree      ID = "user_free"
	AgencyFree    ID = "agency_free"
	AgencyBasic   ID = "agency_basic"
	AgencyPro     ID = "agency_pro"
	AgencyPremium ID = "agency_premium"
)

// Class separates individual accounts from agency accounts. Tier ladders,
// trial overrides and upgrade suggestions never cross class boundaries.
type Class string

const (
	ClassIndividual Class = "individual"
	ClassAgency     Class = "agency"
)

const (
	// Unlimited indicates no limit for a quota dimension (-1 chosen for SQL compatibility).
	Unlimited int64 = -1
)

// Feature represents a tier-specific capability that can be enabled/disabled.
type Feature string

const (
	FeatureListProperties  Feature = "list_properties"
	FeatureAnalytics       Feature = "analytics"
	FeaturePrioritySupport Feature = "priority_support"
	FeatureCustomBranding  Feature = "custom_branding"
	FeatureAPIAccess       Feature = "api_access"
)

// Money represents a monetary amount in the smallest currency unit.
// For example, 2400.00 RSD would be Amount: 240000, Currency: "RSD".
type Money struct {
	Amount   int64
	Currency string
}
