package team

// Role is a member's position inside an agency. Exactly one role per
// membership.
type Role string

const (
	RoleOwner      Role = "owner"
	RoleSuperAgent Role = "super_agent"
	RoleAgent      Role = "agent"
)

// roleRank encodes the management hierarchy as data. Higher outranks lower;
// the values themselves carry no meaning beyond ordering.
var roleRank = map[Role]int{
	RoleOwner:      3,
	RoleSuperAgent: 2,
	RoleAgent:      1,
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// CanManage reports whether the actor role outranks the target role.
// Strictly higher rank is required: equal roles cannot manage each other,
// so one owner can never act on another owner through this check.
func CanManage(actor, target Role) bool {
	return roleRank[actor] > roleRank[target]
}

// ManageableRoles returns the roles an actor role may manage, highest
// first. Unknown and bottom roles get nothing.
func ManageableRoles(actor Role) []Role {
	switch actor {
	case RoleOwner:
		return []Role{RoleSuperAgent, RoleAgent}
	case RoleSuperAgent:
		return []Role{RoleAgent}
	default:
		return nil
	}
}

// Capabilities are coarse permission flags derived from a role. They are
// assigned when the role is, not recomputed on read, so a stored member
// keeps the flags of the role it was given.
type Capabilities struct {
	CanManageBilling bool
	CanViewAnalytics bool
	CanInviteAgents  bool
}

// DefaultCapabilities returns the flags a role receives at assignment.
func DefaultCapabilities(r Role) Capabilities {
	switch r {
	case RoleOwner:
		return Capabilities{CanManageBilling: true, CanViewAnalytics: true, CanInviteAgents: true}
	case RoleSuperAgent:
		return Capabilities{CanViewAnalytics: true, CanInviteAgents: true}
	default:
		return Capabilities{}
	}
}
