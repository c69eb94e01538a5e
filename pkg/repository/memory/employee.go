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

type employeeRepository struct {
	mu        sync.RWMutex
	employees map[types.EmployeeID]*model.Employee
}

func newEmployeeRepository() *employeeRepository {
	return &employeeRepository{
		employees: make(map[types.EmployeeID]*model.Employee),
	}
}

// copyEmployee creates a deep copy of an employee
func copyEmployee(e *model.Employee) *model.Employee {
	copied := *e
	return &copied
}

func (r *employeeRepository) Create(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyEmployee(employee)
	if created.ID == "" {
		created.ID = types.NewEmployeeID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.employees[created.ID] = created
	return copyEmployee(created), nil
}

func (r *employeeRepository) Get(ctx context.Context, id types.EmployeeID) (*model.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employee, exists := r.employees[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "employee not found", goerr.V("id", id))
	}

	return copyEmployee(employee), nil
}

func (r *employeeRepository) List(ctx context.Context) ([]*model.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employees := make([]*model.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		employees = append(employees, copyEmployee(e))
	}

	sort.Slice(employees, func(i, j int) bool {
		if employees[i].CreatedAt.Equal(employees[j].CreatedAt) {
			return employees[i].ID < employees[j].ID
		}
		return employees[i].CreatedAt.Before(employees[j].CreatedAt)
	})

	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.employees[employee.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "employee not found", goerr.V("id", employee.ID))
	}

	updated := copyEmployee(employee)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.employees[updated.ID] = updated
	return copyEmployee(updated), nil
}

func (r *employeeRepository) Delete(ctx context.Context, id types.EmployeeID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.employees[id]; !exists {
		return goerr.Wrap(ErrNotFound, "employee not found", goerr.V("id", id))
	}

	delete(r.employees, id)
	return nil
}
