package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/maham-hq/maham/pkg/domain/model"
	"github.com/maham-hq/maham/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type profileRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newProfileRepository(client *firestore.Client) *profileRepository {
	return &profileRepository{client: client}
}

func (r *profileRepository) collection() string {
	return collectionName(r.collectionPrefix, "profiles")
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	created := *profile
	if created.ID == "" {
		created.ID = types.NewProfileID()
	}
	created.CreatedAt = time.Now().UTC()

	if _, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, created); err != nil {
		return nil, goerr.Wrap(err, "failed to create profile", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *profileRepository) Get(ctx context.Context, id types.ProfileID) (*model.Profile, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "profile not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get profile", goerr.V("id", id))
	}

	var p model.Profile
	if err := docSnap.DataTo(&p); err != nil {
		return nil, goerr.Wrap(err, "failed to decode profile", goerr.V("id", id))
	}

	return &p, nil
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	iter := r.client.Collection(r.collection()).Where("Email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	docSnap, err := iter.Next()
	if err == iterator.Done {
		return nil, goerr.Wrap(ErrNotFound, "profile not found", goerr.V("email", email))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query profile by email", goerr.V("email", email))
	}

	var p model.Profile
	if err := docSnap.DataTo(&p); err != nil {
		return nil, goerr.Wrap(err, "failed to decode profile", goerr.V("email", email))
	}

	return &p, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	existing, err := r.Get(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	updated := *profile
	updated.Role = existing.Role
	updated.CreatedAt = existing.CreatedAt

	if _, err := r.client.Collection(r.collection()).Doc(updated.ID.String()).Set(ctx, updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update profile", goerr.V("id", updated.ID))
	}

	return &updated, nil
}
