package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/maham-hq/maham/pkg/domain/model"
	"github.com/maham-hq/maham/pkg/domain/types"
)

type profileRepository struct {
	mu       sync.RWMutex
	profiles map[types.ProfileID]*model.Profile
}

func newProfileRepository() *profileRepository {
	return &profileRepository{
		profiles: make(map[types.ProfileID]*model.Profile),
	}
}

// copyProfile creates a deep copy of a profile
func copyProfile(p *model.Profile) *model.Profile {
	copied := *p
	return &copied
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyProfile(profile)
	if created.ID == "" {
		created.ID = types.NewProfileID()
	}
	created.CreatedAt = time.Now().UTC()

	r.profiles[created.ID] = created
	return copyProfile(created), nil
}

func (r *profileRepository) Get(ctx context.Context, id types.ProfileID) (*model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, exists := r.profiles[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "profile not found", goerr.V("id", id))
	}

	return copyProfile(profile), nil
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.profiles {
		if p.Email == email {
			return copyProfile(p), nil
		}
	}

	return nil, goerr.Wrap(ErrNotFound, "profile not found", goerr.V("email", email))
}

func (r *profileRepository) Update(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.profiles[profile.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "profile not found", goerr.V("id", profile.ID))
	}

	updated := copyProfile(profile)
	updated.Role = existing.Role
	updated.CreatedAt = existing.CreatedAt

	r.profiles[updated.ID] = updated
	return copyProfile(updated), nil
}
