package domain

// Role is the closed set of user roles. Stored as its string form; anything
// outside the three constants is rejected at signup and resolves to no
// capabilities anywhere else.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleCommander Role = "commander"
	RoleLogistics Role = "logistics"
)

// ParseRole validates a role string
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleCommander, RoleLogistics:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// Capability names a permitted action
type Capability string

const (
	CapViewAll         Capability = "view_all"
	CapManageAll       Capability = "manage_all"
	CapViewEquipment   Capability = "view_equipment"
	CapManageEquipment Capability = "manage_equipment"
	CapRecordPurchase  Capability = "record_purchase"
	CapAssignEquipment Capability = "assign_equipment"
	CapViewReports     Capability = "view_reports"
)

// roleCapabilities is the fixed role → capability table
var roleCapabilities = map[Role][]Capability{
	RoleAdmin: {
		CapViewAll, CapManageAll,
		CapViewEquipment, CapManageEquipment,
		CapRecordPurchase, CapAssignEquipment,
		CapViewReports,
	},
	RoleLogistics: {
		CapRecordPurchase,
		CapAssignEquipment,
		CapViewReports,
	},
	RoleCommander: {
		CapViewEquipment,
		CapViewReports,
	},
}

// Capabilities returns the capability set for a role.
// Unknown roles get an empty set.
func Capabilities(role Role) []Capability {
	caps, ok := roleCapabilities[role]
	if !ok {
		return nil
	}
	out := make([]Capability, len(caps))
	copy(out, caps)
	return out
}

// HasCapability reports whether the role grants the capability
func HasCapability(role Role, cap Capability) bool {
	for _, c := range roleCapabilities[role] {
		if c == cap {
			return true
		}
	}
	return false
}
