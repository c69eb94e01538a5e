package memory

import "github.com/maham-hq/maham/pkg/domain/interfaces"

var (
	// ErrNotFound is returned when a record does not exist
	ErrNotFound = interfaces.ErrNotFound

	// ErrAlreadyExists is returned when a uniqueness constraint is violated
	ErrAlreadyExists = interfaces.ErrAlreadyExists
)
