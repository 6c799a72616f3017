package promo

import "errors"

var (
	// ErrNotFound is returned when an entity has no promotion windows.
	ErrNotFound = errors.New("promo.errors.not_found")

	// ErrUnknownKind is returned for promotion kinds outside the catalog.
	ErrUnknownKind = errors.New("promo.errors.unknown_kind")

	// ErrUnknownBundle is returned for bundle names outside the catalog.
	ErrUnknownBundle = errors.New("promo.errors.unknown_bundle")

	// ErrInvalidDays is returned when a duration is zero or negative.
	ErrInvalidDays = errors.New("promo.errors.invalid_days")

	// ErrInvariantViolation marks a window flagged active without an
	// activation timestamp. Read paths treat such windows as inactive;
	// the error surfaces only through Reconcile logging.
	ErrInvariantViolation = errors.New("promo.errors.invariant_violation")
)
