package interfaces

import (
	"context"

	"github.com/maham-hq/maham/pkg/domain/model"
	"github.com/maham-hq/maham/pkg/domain/types"
)

// ProfileRepository defines the interface for principal profile access
type ProfileRepository interface {
	// Create creates a new profile with an auto-generated ID
	Create(ctx context.Context, profile *model.Profile) (*model.Profile, error)

	// Get retrieves a profile by ID
	Get(ctx context.Context, id types.ProfileID) (*model.Profile, error)

	// GetByEmail retrieves a profile by email
	GetByEmail(ctx context.Context, email string) (*model.Profile, error)

	// Update updates an existing profile, preserving ID, Role, and CreatedAt
	Update(ctx context.Context, profile *model.Profile) (*model.Profile, error)
}
