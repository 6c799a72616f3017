package tier

import "errors"

// Domain errors for catalog operations.
var (
	ErrTierNotFound             = errors.New("tier.errors.tier_not_found")
	ErrInvalidTierConfiguration = errors.New("tier.errors.invalid_tier_configuration")
	ErrFailedToLoadTierCatalog  = errors.New("tier.errors.failed_to_load_catalog")
)
