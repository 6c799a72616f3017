package entitlement

import "errors"

var (
	// ErrTenantNotFound is returned when the snapshot source has no record
	// of the tenant.
	ErrTenantNotFound = errors.New("entitlement.errors.tenant_not_found")

	// ErrFailedToLoadSnapshot wraps snapshot source failures.
	ErrFailedToLoadSnapshot = errors.New("entitlement.errors.failed_to_load_snapshot")

	// ErrFailedToCheckBalance wraps credit ledger failures during funded
	// authorization.
	ErrFailedToCheckBalance = errors.New("entitlement.errors.failed_to_check_balance")
)
