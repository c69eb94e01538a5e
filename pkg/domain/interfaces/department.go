package interfaces

import (
	"context"

	"github.com/maham-hq/maham/pkg/domain/model"
	"github.com/maham-hq/maham/pkg/domain/types"
)

// DepartmentRepository defines the interface for Department data access.
// Department names are unique among live records; Create rejects a
// duplicate name with ErrAlreadyExists. Re-creating a deleted name yields
// an independent record with a fresh ID.
type DepartmentRepository interface {
	// Create creates a new department with an auto-generated ID
	Create(ctx context.Context, department *model.Department) (*model.Department, error)

	// Get retrieves a department by ID
	Get(ctx context.Context, id types.DepartmentID) (*model.Department, error)

	// GetByName retrieves a department by its unique name
	GetByName(ctx context.Context, name string) (*model.Department, error)

	// List retrieves all departments ordered by name
	List(ctx context.Context) ([]*model.Department, error)

	// Delete deletes a department by ID
	Delete(ctx context.Context, id types.DepartmentID) error
}
