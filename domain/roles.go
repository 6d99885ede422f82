package domain

// Role is an enumerated authorization tier
type Role string

const (
	RoleCustomer   Role = "Customer"
	RoleAdmin      Role = "Admin"
	RoleSuperAdmin Role = "SuperAdmin"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// In is the capability check: it reports whether the caller role is one of
// the required roles. Authorization decisions go through this function so
// they stay decoupled from any transport mechanism.
func (r Role) In(required ...Role) bool {
	for _, req := range required {
		if r == req {
			return true
		}
	}
	return false
}
