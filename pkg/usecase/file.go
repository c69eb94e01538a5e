package usecase

import (
	"context"
	"errors"
	"io"
	"path"

	"github.com/m-mizutani/goerr/v2"
	"github.com/maham-hq/maham/pkg/domain/filter"
	"github.com/maham-hq/maham/pkg/domain/interfaces"
	"github.com/maham-hq/maham/pkg/domain/model"
	"github.com/maham-hq/maham/pkg/domain/types"
	"github.com/maham-hq/maham/pkg/service/storage"
	"github.com/maham-hq/maham/pkg/utils/logging"
)

type FileUseCase struct {
	repo       interfaces.Repository
	storageSvc storage.Client
}

func NewFileUseCase(repo interfaces.Repository, storageSvc storage.Client) *FileUseCase {
	return &FileUseCase{repo: repo, storageSvc: storageSvc}
}

// Upload stores the payload in object storage, then the metadata row.
// Viewers cannot upload. If the row insert fails the object is removed
// again so no orphan payload is left behind.
func (uc *FileUseCase) Upload(ctx context.Context, actor *model.Profile, input *model.FileAttachment, r io.Reader) (*model.FileAttachment, error) {
	if actor.Role == types.RoleViewer {
		return nil, goerr.Wrap(ErrPermission, "viewers cannot upload files", goerr.V("role", actor.Role))
	}

	var missing []string
	if input.Name == "" {
		missing = append(missing, "name")
	}
	if input.TaskID == "" {
		missing = append(missing, "taskId")
	}
	if err := validate(missing); err != nil {
		return nil, err
	}

	task, err := uc.repo.Task().Get(ctx, input.TaskID)
	if err != nil {
		return nil, wrapStore(err, "failed to get task for attachment", goerr.V("task_id", input.TaskID))
	}
	if actor.Role == types.RoleEmployee && !task.IsAssignedTo(actor) {
		return nil, goerr.Wrap(ErrPermission, "task is assigned to someone else", goerr.V("task_id", task.ID))
	}

	input.TaskTitle = task.Title
	input.UploadedBy = actor.Name
	input.ObjectPath = path.Join("files", types.NewFileID().String(), input.Name)

	if err := uc.storageSvc.Put(ctx, input.ObjectPath, r); err != nil {
		return nil, goerr.Wrap(errors.Join(ErrUpstream, err), "failed to store file payload",
			goerr.V("path", input.ObjectPath))
	}

	created, err := uc.repo.File().Create(ctx, input)
	if err != nil {
		if delErr := uc.storageSvc.Delete(ctx, input.ObjectPath); delErr != nil {
			logging.From(ctx).Error("failed to clean up orphan object",
				"path", input.ObjectPath, "error", delErr.Error())
		}
		return nil, wrapStore(err, "failed to create file record")
	}

	return created, nil
}

// List returns file attachments narrowed by the query, newest upload first
func (uc *FileUseCase) List(ctx context.Context, actor *model.Profile, query filter.FileQuery) ([]*model.FileAttachment, error) {
	files, err := uc.repo.File().List(ctx)
	if err != nil {
		return nil, wrapStore(err, "failed to list files")
	}

	return filter.Apply(files, query.Match), nil
}

// ListByTask returns the attachments of a single task
func (uc *FileUseCase) ListByTask(ctx context.Context, actor *model.Profile, taskID types.TaskID) ([]*model.FileAttachment, error) {
	files, err := uc.repo.File().ListByTask(ctx, taskID)
	if err != nil {
		return nil, wrapStore(err, "failed to list task files", goerr.V("task_id", taskID))
	}
	return files, nil
}

// Download opens the payload of an attachment. The caller must close the
// returned reader.
func (uc *FileUseCase) Download(ctx context.Context, actor *model.Profile, id types.FileID) (*model.FileAttachment, io.ReadCloser, error) {
	file, err := uc.repo.File().Get(ctx, id)
	if err != nil {
		return nil, nil, wrapStore(err, "failed to get file", goerr.V("id", id))
	}

	r, err := uc.storageSvc.Get(ctx, file.ObjectPath)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, nil, goerr.Wrap(ErrNotFound, "file payload missing", goerr.V("id", id))
		}
		return nil, nil, goerr.Wrap(errors.Join(ErrUpstream, err), "failed to open file payload", goerr.V("id", id))
	}

	return file, r, nil
}

// Delete removes the metadata row and then the payload. Only the uploader
// or a manager may delete.
func (uc *FileUseCase) Delete(ctx context.Context, actor *model.Profile, id types.FileID) error {
	file, err := uc.repo.File().Get(ctx, id)
	if err != nil {
		return wrapStore(err, "failed to get file", goerr.V("id", id))
	}

	if !actor.IsManager() && file.UploadedBy != actor.Name {
		return goerr.Wrap(ErrPermission, "only the uploader or a manager can delete files", goerr.V("id", id))
	}

	if err := uc.repo.File().Delete(ctx, id); err != nil {
		return wrapStore(err, "failed to delete file record", goerr.V("id", id))
	}

	if err := uc.storageSvc.Delete(ctx, file.ObjectPath); err != nil {
		// The row is gone; a leftover object is harmless but logged
		logging.From(ctx).Error("failed to delete file payload",
			"path", file.ObjectPath, "error", err.Error())
	}

	return nil
}
