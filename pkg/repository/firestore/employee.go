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

type employeeRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newEmployeeRepository(client *firestore.Client) *employeeRepository {
	return &employeeRepository{client: client}
}

func (r *employeeRepository) collection() string {
	return collectionName(r.collectionPrefix, "employees")
}

func (r *employeeRepository) Create(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	now := time.Now().UTC()
	created := *employee
	if created.ID == "" {
		created.ID = types.NewEmployeeID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	if _, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, created); err != nil {
		return nil, goerr.Wrap(err, "failed to create employee", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *employeeRepository) Get(ctx context.Context, id types.EmployeeID) (*model.Employee, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "employee not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get employee", goerr.V("id", id))
	}

	var e model.Employee
	if err := docSnap.DataTo(&e); err != nil {
		return nil, goerr.Wrap(err, "failed to decode employee", goerr.V("id", id))
	}

	return &e, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]*model.Employee, error) {
	iter := r.client.Collection(r.collection()).OrderBy("CreatedAt", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	employees := make([]*model.Employee, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate employees")
		}

		var e model.Employee
		if err := docSnap.DataTo(&e); err != nil {
			return nil, goerr.Wrap(err, "failed to decode employee", goerr.V("doc_id", docSnap.Ref.ID))
		}

		employees = append(employees, &e)
	}

	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	existing, err := r.Get(ctx, employee.ID)
	if err != nil {
		return nil, err
	}

	updated := *employee
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := r.client.Collection(r.collection()).Doc(updated.ID.String()).Set(ctx, updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update employee", goerr.V("id", updated.ID))
	}

	return &updated, nil
}

func (r *employeeRepository) Delete(ctx context.Context, id types.EmployeeID) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}

	if _, err := r.client.Collection(r.collection()).Doc(id.String()).Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete employee", goerr.V("id", id))
	}

	return nil
}
