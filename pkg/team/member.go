package team

import "github.com/google/uuid"

// Member is one (user, agency) membership with its role and derived
// capability flags.
type Member struct {
	UserID       uuid.UUID
	AgencyID     uuid.UUID
	Role         Role
	Capabilities Capabilities
	Active       bool
}

// NewMember creates an active membership with the role's default
// capabilities.
func NewMember(userID, agencyID uuid.UUID, role Role) Member {
	return Member{
		UserID:       userID,
		AgencyID:     agencyID,
		Role:         role,
		Capabilities: DefaultCapabilities(role),
		Active:       true,
	}
}

// AssignRole changes the member's role and re-derives the capability
// flags. Flags granted by the old role do not survive the change.
func (m *Member) AssignRole(role Role) {
	m.Role = role
	m.Capabilities = DefaultCapabilities(role)
}
