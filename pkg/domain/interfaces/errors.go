package interfaces

import "errors"

var (
	// ErrNotFound is returned by repositories when a record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned by repositories when a uniqueness
	// constraint is violated
	ErrAlreadyExists = errors.New("record already exists")
)
