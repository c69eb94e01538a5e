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

type departmentRepository struct {
	mu          sync.RWMutex
	departments map[types.DepartmentID]*model.Department
}

func newDepartmentRepository() *departmentRepository {
	return &departmentRepository{
		departments: make(map[types.DepartmentID]*model.Department),
	}
}

// copyDepartment creates a deep copy of a department
func copyDepartment(d *model.Department) *model.Department {
	copied := *d
	return &copied
}

func (r *departmentRepository) Create(ctx context.Context, department *model.Department) (*model.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range r.departments {
		if d.Name == department.Name {
			return nil, goerr.Wrap(ErrAlreadyExists, "department name already exists", goerr.V("name", department.Name))
		}
	}

	created := copyDepartment(department)
	if created.ID == "" {
		created.ID = types.NewDepartmentID()
	}
	created.CreatedAt = time.Now().UTC()

	r.departments[created.ID] = created
	return copyDepartment(created), nil
}

func (r *departmentRepository) Get(ctx context.Context, id types.DepartmentID) (*model.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	department, exists := r.departments[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "department not found", goerr.V("id", id))
	}

	return copyDepartment(department), nil
}

func (r *departmentRepository) GetByName(ctx context.Context, name string) (*model.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.departments {
		if d.Name == name {
			return copyDepartment(d), nil
		}
	}

	return nil, goerr.Wrap(ErrNotFound, "department not found", goerr.V("name", name))
}

func (r *departmentRepository) List(ctx context.Context) ([]*model.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	departments := make([]*model.Department, 0, len(r.departments))
	for _, d := range r.departments {
		departments = append(departments, copyDepartment(d))
	}

	sort.Slice(departments, func(i, j int) bool {
		return departments[i].Name < departments[j].Name
	})

	return departments, nil
}

func (r *departmentRepository) Delete(ctx context.Context, id types.DepartmentID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.departments[id]; !exists {
		return goerr.Wrap(ErrNotFound, "department not found", goerr.V("id", id))
	}

	delete(r.departments, id)
	return nil
}
