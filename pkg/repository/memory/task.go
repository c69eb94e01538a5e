package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/maham-hq/maham/pkg/domain/model"
	"github.com/maham-hq/maham/pkg/domain/types"
)

type taskRepository struct {
	mu    sync.RWMutex
	tasks map[types.TaskID]*model.Task
}

func newTaskRepository() *taskRepository {
	return &taskRepository{
		tasks: make(map[types.TaskID]*model.Task),
	}
}

// copyTask creates a deep copy of a task
func copyTask(t *model.Task) *model.Task {
	copied := *t
	return &copied
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyTask(task)
	if created.ID == "" {
		created.ID = types.NewTaskID()
	}
	created.Status = created.Status.Normalize()
	created.Priority = created.Priority.Normalize()
	created.CreatedAt = now
	created.UpdatedAt = now

	r.tasks[created.ID] = created
	return copyTask(created), nil
}

func (r *taskRepository) Get(ctx context.Context, id types.TaskID) (*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, exists := r.tasks[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "task not found", goerr.V("id", id))
	}

	return copyTask(task), nil
}

func (r *taskRepository) List(ctx context.Context) ([]*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		tasks = append(tasks, copyTask(t))
	}

	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].ID < tasks[j].ID
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})

	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, task *model.Task) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.tasks[task.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "task not found", goerr.V("id", task.ID))
	}

	updated := copyTask(task)
	updated.CreatedAt = existing.CreatedAt
	updated.AssignedBy = existing.AssignedBy
	updated.UpdatedAt = time.Now().UTC()

	r.tasks[updated.ID] = updated
	return copyTask(updated), nil
}

func (r *taskRepository) Delete(ctx context.Context, id types.TaskID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[id]; !exists {
		return goerr.Wrap(ErrNotFound, "task not found", goerr.V("id", id))
	}

	delete(r.tasks, id)
	return nil
}
