package team

import "errors"

var (
	// ErrInsufficientRole is returned when the actor does not outrank the
	// target.
	ErrInsufficientRole = errors.New("team.errors.insufficient_role")

	// ErrLastOwnerProtection is returned when an action would remove or
	// demote an agency's sole owner. No actor may do this.
	ErrLastOwnerProtection = errors.New("team.errors.last_owner_protection")

	// ErrInactiveMember is returned when a deactivated member attempts a
	// team action.
	ErrInactiveMember = errors.New("team.errors.inactive_member")

	// ErrDifferentAgency is returned when the actor and target belong to
	// different agencies.
	ErrDifferentAgency = errors.New("team.errors.different_agency")
)
