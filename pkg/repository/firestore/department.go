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

type departmentRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newDepartmentRepository(client *firestore.Client) *departmentRepository {
	return &departmentRepository{client: client}
}

func (r *departmentRepository) collection() string {
	return collectionName(r.collectionPrefix, "departments")
}

func (r *departmentRepository) Create(ctx context.Context, department *model.Department) (*model.Department, error) {
	// Name uniqueness check and insert are not transactional; concurrent
	// creates of the same name can race. Single-writer sessions make this
	// acceptable for now.
	if existing, err := r.GetByName(ctx, department.Name); err == nil && existing != nil {
		return nil, goerr.Wrap(ErrAlreadyExists, "department name already exists", goerr.V("name", department.Name))
	}

	created := *department
	if created.ID == "" {
		created.ID = types.NewDepartmentID()
	}
	created.CreatedAt = time.Now().UTC()

	if _, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, created); err != nil {
		return nil, goerr.Wrap(err, "failed to create department", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *departmentRepository) Get(ctx context.Context, id types.DepartmentID) (*model.Department, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "department not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get department", goerr.V("id", id))
	}

	var d model.Department
	if err := docSnap.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to decode department", goerr.V("id", id))
	}

	return &d, nil
}

func (r *departmentRepository) GetByName(ctx context.Context, name string) (*model.Department, error) {
	iter := r.client.Collection(r.collection()).Where("Name", "==", name).Limit(1).Documents(ctx)
	defer iter.Stop()

	docSnap, err := iter.Next()
	if err == iterator.Done {
		return nil, goerr.Wrap(ErrNotFound, "department not found", goerr.V("name", name))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query department by name", goerr.V("name", name))
	}

	var d model.Department
	if err := docSnap.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to decode department", goerr.V("name", name))
	}

	return &d, nil
}

func (r *departmentRepository) List(ctx context.Context) ([]*model.Department, error) {
	iter := r.client.Collection(r.collection()).OrderBy("Name", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	departments := make([]*model.Department, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate departments")
		}

		var d model.Department
		if err := docSnap.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to decode department", goerr.V("doc_id", docSnap.Ref.ID))
		}

		departments = append(departments, &d)
	}

	return departments, nil
}

func (r *departmentRepository) Delete(ctx context.Context, id types.DepartmentID) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}

	if _, err := r.client.Collection(r.collection()).Doc(id.String()).Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete department", goerr.V("id", id))
	}

	return nil
}
