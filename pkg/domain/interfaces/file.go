package interfaces

import (
	"context"

	"github.com/maham-hq/maham/pkg/domain/model"
	"github.com/maham-hq/maham/pkg/domain/types"
)

// FileRepository defines the interface for FileAttachment metadata access
type FileRepository interface {
	// Create creates a new file attachment record with an auto-generated ID
	Create(ctx context.Context, file *model.FileAttachment) (*model.FileAttachment, error)

	// Get retrieves a file attachment by ID
	Get(ctx context.Context, id types.FileID) (*model.FileAttachment, error)

	// List retrieves all file attachments ordered by upload time
	List(ctx context.Context) ([]*model.FileAttachment, error)

	// ListByTask retrieves the attachments of a single task
	ListByTask(ctx context.Context, taskID types.TaskID) ([]*model.FileAttachment, error)

	// Delete deletes a file attachment by ID
	Delete(ctx context.Context, id types.FileID) error
}
