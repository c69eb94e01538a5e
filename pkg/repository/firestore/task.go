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

type taskRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newTaskRepository(client *firestore.Client) *taskRepository {
	return &taskRepository{client: client}
}

func (r *taskRepository) collection() string {
	return collectionName(r.collectionPrefix, "tasks")
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	now := time.Now().UTC()
	created := *task
	if created.ID == "" {
		created.ID = types.NewTaskID()
	}
	created.Status = created.Status.Normalize()
	created.Priority = created.Priority.Normalize()
	created.CreatedAt = now
	created.UpdatedAt = now

	if _, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, created); err != nil {
		return nil, goerr.Wrap(err, "failed to create task", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *taskRepository) Get(ctx context.Context, id types.TaskID) (*model.Task, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "task not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get task", goerr.V("id", id))
	}

	var t model.Task
	if err := docSnap.DataTo(&t); err != nil {
		return nil, goerr.Wrap(err, "failed to decode task", goerr.V("id", id))
	}

	return &t, nil
}

func (r *taskRepository) List(ctx context.Context) ([]*model.Task, error) {
	iter := r.client.Collection(r.collection()).OrderBy("CreatedAt", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	tasks := make([]*model.Task, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate tasks")
		}

		var t model.Task
		if err := docSnap.DataTo(&t); err != nil {
			return nil, goerr.Wrap(err, "failed to decode task", goerr.V("doc_id", docSnap.Ref.ID))
		}

		tasks = append(tasks, &t)
	}

	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, task *model.Task) (*model.Task, error) {
	existing, err := r.Get(ctx, task.ID)
	if err != nil {
		return nil, err
	}

	updated := *task
	updated.CreatedAt = existing.CreatedAt
	updated.AssignedBy = existing.AssignedBy
	updated.UpdatedAt = time.Now().UTC()

	if _, err := r.client.Collection(r.collection()).Doc(updated.ID.String()).Set(ctx, updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update task", goerr.V("id", updated.ID))
	}

	return &updated, nil
}

func (r *taskRepository) Delete(ctx context.Context, id types.TaskID) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}

	if _, err := r.client.Collection(r.collection()).Doc(id.String()).Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete task", goerr.V("id", id))
	}

	return nil
}
