package interfaces

import (
	"context"

	"github.com/maham-hq/maham/pkg/domain/model"
	"github.com/maham-hq/maham/pkg/domain/types"
)

// TaskRepository defines the interface for Task data access
type TaskRepository interface {
	// Create creates a new task with an auto-generated ID
	Create(ctx context.Context, task *model.Task) (*model.Task, error)

	// Get retrieves a task by ID
	Get(ctx context.Context, id types.TaskID) (*model.Task, error)

	// List retrieves all tasks ordered by creation time
	List(ctx context.Context) ([]*model.Task, error)

	// Update updates an existing task, preserving ID, CreatedAt, and AssignedBy
	Update(ctx context.Context, task *model.Task) (*model.Task, error)

	// Delete deletes a task by ID
	Delete(ctx context.Context, id types.TaskID) error
}
