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

type fileRepository struct {
	mu    sync.RWMutex
	files map[types.FileID]*model.FileAttachment
}

func newFileRepository() *fileRepository {
	return &fileRepository{
		files: make(map[types.FileID]*model.FileAttachment),
	}
}

// copyFile creates a deep copy of a file attachment
func copyFile(f *model.FileAttachment) *model.FileAttachment {
	copied := *f
	return &copied
}

func (r *fileRepository) Create(ctx context.Context, file *model.FileAttachment) (*model.FileAttachment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyFile(file)
	if created.ID == "" {
		created.ID = types.NewFileID()
	}
	created.UploadedAt = time.Now().UTC()

	r.files[created.ID] = created
	return copyFile(created), nil
}

func (r *fileRepository) Get(ctx context.Context, id types.FileID) (*model.FileAttachment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	file, exists := r.files[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "file not found", goerr.V("id", id))
	}

	return copyFile(file), nil
}

func (r *fileRepository) List(ctx context.Context) ([]*model.FileAttachment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	files := make([]*model.FileAttachment, 0, len(r.files))
	for _, f := range r.files {
		files = append(files, copyFile(f))
	}

	sortFiles(files)
	return files, nil
}

func (r *fileRepository) ListByTask(ctx context.Context, taskID types.TaskID) ([]*model.FileAttachment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	files := make([]*model.FileAttachment, 0)
	for _, f := range r.files {
		if f.TaskID == taskID {
			files = append(files, copyFile(f))
		}
	}

	sortFiles(files)
	return files, nil
}

func sortFiles(files []*model.FileAttachment) {
	sort.Slice(files, func(i, j int) bool {
		if files[i].UploadedAt.Equal(files[j].UploadedAt) {
			return files[i].ID < files[j].ID
		}
		return files[i].UploadedAt.Before(files[j].UploadedAt)
	})
}

func (r *fileRepository) Delete(ctx context.Context, id types.FileID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.files[id]; !exists {
		return goerr.Wrap(ErrNotFound, "file not found", goerr.V("id", id))
	}

	delete(r.files, id)
	return nil
}
