package types

import "fmt"

// Role represents the role of an authenticated principal
type Role string

const (
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
	RoleViewer   Role = "viewer"
)

// AllRoles returns all valid roles
func AllRoles() []Role {
	return []Role{
		RoleManager,
		RoleEmployee,
		RoleViewer,
	}
}

// IsValid checks if the role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleManager,
		RoleEmployee,
		RoleViewer:
		return true
	default:
		return false
	}
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// ParseRole parses a string into a Role
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return role, nil
}
