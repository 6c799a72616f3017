package team

// Action is a team-management operation gated by the role hierarchy.
type Action string

const (
	ActionChangeRole     Action = "change_role"
	ActionRemoveMember   Action = "remove_member"
	ActionDeactivate     Action = "deactivate"
	ActionManageListings Action = "manage_listings"
)

// removesTarget reports whether the action takes the target out of play,
// which is what the last-owner rule protects against.
func (a Action) removesTarget() bool {
	switch a {
	case ActionChangeRole, ActionRemoveMember, ActionDeactivate:
		return true
	default:
		return false
	}
}

// AuthorizeAction decides whether the actor may perform the action on the
// target. ownerCount is the agency's current number of active owners.
//
// The last-owner rule is absolute: if the action would remove or demote the
// only owner it fails regardless of who asks, before any rank comparison.
func AuthorizeAction(actor, target Member, action Action, ownerCount int) error {
	if !actor.Active {
		return ErrInactiveMember
	}
	if actor.AgencyID != target.AgencyID {
		return ErrDifferentAgency
	}
	if target.Role == RoleOwner && ownerCount <= 1 && action.removesTarget() {
		return ErrLastOwnerProtection
	}
	if !CanManage(actor.Role, target.Role) {
		return ErrInsufficientRole
	}
	return nil
}
