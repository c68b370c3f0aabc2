package domain

// Role is the closed set of caller roles understood by the catalog.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleCustomer Role = "customer"
)

// ParseRole maps the raw role claim onto a known Role. The second return
// value is false for unknown or empty values.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleCustomer:
		return Role(s), true
	default:
		return "", false
	}
}

// Identity is the decoded, already-verified set of claims attached to an
// authenticated request. TenantID is empty for admins unless their token
// carries one; customers never act on write paths.
type Identity struct {
	Subject  string
	Role     Role
	TenantID string
}
