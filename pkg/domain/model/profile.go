package model

import (
	"time"

	"github.com/maham-hq/maham/pkg/domain/types"
)

// Profile represents the authenticated principal performing actions.
// It is created on first sign-up and the role is never changed by the
// profile owner.
type Profile struct {
	ID           types.ProfileID
	Name         string
	Email        string
	Role         types.Role
	DepartmentID types.DepartmentID
	AvatarURL    string
	CreatedAt    time.Time
}

// IsManager reports whether the profile carries the manager role
func (p *Profile) IsManager() bool {
	return p.Role == types.RoleManager
}
