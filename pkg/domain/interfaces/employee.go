package interfaces

import (
	"context"

	"github.com/maham-hq/maham/pkg/domain/model"
	"github.com/maham-hq/maham/pkg/domain/types"
)

// EmployeeRepository defines the interface for Employee data access
type EmployeeRepository interface {
	// Create creates a new employee with an auto-generated ID
	Create(ctx context.Context, employee *model.Employee) (*model.Employee, error)

	// Get retrieves an employee by ID
	Get(ctx context.Context, id types.EmployeeID) (*model.Employee, error)

	// List retrieves all employees ordered by creation time
	List(ctx context.Context) ([]*model.Employee, error)

	// Update updates an existing employee, preserving CreatedAt
	Update(ctx context.Context, employee *model.Employee) (*model.Employee, error)

	// Delete deletes an employee by ID
	Delete(ctx context.Context, id types.EmployeeID) error
}
