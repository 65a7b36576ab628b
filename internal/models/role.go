package models

// Role is a closed set. admin and super_admin are peers everywhere in the
// current API; the distinction is kept for a future user-management scope.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCustomer, RoleAdmin, RoleSuperAdmin:
		return Role(s), true
	}
	return "", false
}

func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

func (r Role) IsAdmin() bool {
	return r.In(RoleAdmin, RoleSuperAdmin)
}
