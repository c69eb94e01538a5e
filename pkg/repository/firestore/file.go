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

type fileRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newFileRepository(client *firestore.Client) *fileRepository {
	return &fileRepository{client: client}
}

func (r *fileRepository) collection() string {
	return collectionName(r.collectionPrefix, "files")
}

func (r *fileRepository) Create(ctx context.Context, file *model.FileAttachment) (*model.FileAttachment, error) {
	created := *file
	if created.ID == "" {
		created.ID = types.NewFileID()
	}
	created.UploadedAt = time.Now().UTC()

	if _, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, created); err != nil {
		return nil, goerr.Wrap(err, "failed to create file", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *fileRepository) Get(ctx context.Context, id types.FileID) (*model.FileAttachment, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "file not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get file", goerr.V("id", id))
	}

	var f model.FileAttachment
	if err := docSnap.DataTo(&f); err != nil {
		return nil, goerr.Wrap(err, "failed to decode file", goerr.V("id", id))
	}

	return &f, nil
}

func (r *fileRepository) List(ctx context.Context) ([]*model.FileAttachment, error) {
	iter := r.client.Collection(r.collection()).OrderBy("UploadedAt", firestore.Asc).Documents(ctx)
	return r.collect(iter)
}

func (r *fileRepository) ListByTask(ctx context.Context, taskID types.TaskID) ([]*model.FileAttachment, error) {
	// Composite index (TaskID, UploadedAt) is managed by the migrate command.
	iter := r.client.Collection(r.collection()).
		Where("TaskID", "==", taskID.String()).
		OrderBy("UploadedAt", firestore.Asc).
		Documents(ctx)
	return r.collect(iter)
}

func (r *fileRepository) collect(iter *firestore.DocumentIterator) ([]*model.FileAttachment, error) {
	defer iter.Stop()

	files := make([]*model.FileAttachment, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate files")
		}

		var f model.FileAttachment
		if err := docSnap.DataTo(&f); err != nil {
			return nil, goerr.Wrap(err, "failed to decode file", goerr.V("doc_id", docSnap.Ref.ID))
		}

		files = append(files, &f)
	}

	return files, nil
}

func (r *fileRepository) Delete(ctx context.Context, id types.FileID) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}

	if _, err := r.client.Collection(r.collection()).Doc(id.String()).Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete file", goerr.V("id", id))
	}

	return nil
}
