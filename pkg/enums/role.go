package enums

import "fmt"

// Role represents the capability role carried in a bearer token.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

var validRoles = []Role{
	RoleCustomer,
	RoleManager,
	RoleAdmin,
}

// registerableRoles are the roles self-service registration may assign.
// Admin accounts are provisioned through seeding, never through the API.
var registerableRoles = []Role{
	RoleCustomer,
	RoleManager,
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the value is a known Role.
func (r Role) IsValid() bool {
	for _, candidate := range validRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// IsRegisterable reports whether the role may be chosen at registration time.
func (r Role) IsRegisterable() bool {
	for _, candidate := range registerableRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRole converts raw input into a Role.
func ParseRole(value string) (Role, error) {
	for _, candidate := range validRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid role %q", value)
}
