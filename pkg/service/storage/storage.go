package storage

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned by Get when no object exists at the path
var ErrObjectNotFound = errors.New("object not found")

// Client is the object storage boundary for file attachment payloads.
// Repository rows only keep the object path; the bytes live behind this
// interface.
type Client interface {
	// Put stores the object under the given path, replacing any existing one
	Put(ctx context.Context, path string, r io.Reader) error

	// Get opens the object for reading. The caller must close the returned
	// reader.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, path string) error

	Close() error
}
