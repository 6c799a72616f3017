package tier

// DefaultDefinitions returns the built-in marketplace catalog.
// Projects with custom pricing should load their own Source instead.
func DefaultDefinitions() []Definition {
	return []Definition{
		{
			ID:                  UserFree,
			Name:                "Free User",
			Class:               ClassIndividual,
			MonthlyPrice:        Money{Amount: 0, Currency: "RSD"},
			MaxListings:         3,
			MaxImagesTotal:      30,
			MaxImagesPerListing: 10,
			MaxAgents:           0,
			MaxSuperAgents:      0,
			MaxFeaturedListings: 0,
			CanFeatureListings:  false,
			Features:            nil,
		},
		{
			ID:                  AgencyFree,
			Name:                "Free Agency",
			Class:               ClassAgency,
			MonthlyPrice:        Money{Amount: 0, Currency: "RSD"},
			MaxListings:         3,
			MaxImagesTotal:      30,
			MaxImagesPerListing: 20,
			MaxAgents:           1,
			MaxSuperAgents:      0,
			MaxFeaturedListings: 0,
			CanFeatureListings:  false,
			Features:            []Feature{FeatureListProperties},
		},
		{
			ID:                  AgencyBasic,
			Name:                "Basic Agency",
			Class:               ClassAgency,
			MonthlyPrice:        Money{Amount: 240000, Currency: "RSD"},
			MaxListings:         20,
			MaxImagesTotal:      200,
			MaxImagesPerListing: 20,
			MaxAgents:           3,
			MaxSuperAgents:      1,
			MaxFeaturedListings: 3,
			CanFeatureListings:  true,
			Features:            []Feature{FeatureListProperties, FeatureAnalytics},
		},
		{
			ID:                  AgencyPro,
			Name:                "Professional Agency",
			Class:               ClassAgency,
			MonthlyPrice:        Money{Amount: 350000, Currency: "RSD"},
			MaxListings:         60,
			MaxImagesTotal:      500,
			MaxImagesPerListing: 20,
			MaxAgents:           10,
			MaxSuperAgents:      3,
			MaxFeaturedListings: 10,
			CanFeatureListings:  true,
			Features: []Feature{
				FeatureListProperties, FeatureAnalytics, FeaturePrioritySupport,
			},
		},
		{
			ID:                  AgencyPremium,
			Name:                "Premium Agency",
			Class:               ClassAgency,
			MonthlyPrice:        Money{Amount: 840000, Currency: "RSD"},
			MaxListings:         Unlimited,
			MaxImagesTotal:      1000,
			MaxImagesPerListing: 30,
			MaxAgents:           25,
			MaxSuperAgents:      5,
			MaxFeaturedListings: 25,
			CanFeatureListings:  true,
			Features: []Feature{
				FeatureListProperties, FeatureAnalytics, FeaturePrioritySupport,
				FeatureCustomBranding, FeatureAPIAccess,
			},
		},
	}
}
