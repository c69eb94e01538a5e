package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/maham-hq/maham/pkg/domain/filter"
	"github.com/maham-hq/maham/pkg/domain/interfaces"
	"github.com/maham-hq/maham/pkg/domain/model"
	"github.com/maham-hq/maham/pkg/domain/types"
)

type EmployeeUseCase struct {
	repo interfaces.Repository
}

func NewEmployeeUseCase(repo interfaces.Repository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create adds an employee record. Manager only. Nothing is written when
// validation fails.
func (uc *EmployeeUseCase) Create(ctx context.Context, actor *model.Profile, input *model.Employee) (*model.Employee, error) {
	if !actor.IsManager() {
		return nil, goerr.Wrap(ErrPermission, "only managers can create employees", goerr.V("role", actor.Role))
	}

	var missing []string
	if input.Name == "" {
		missing = append(missing, "name")
	}
	if input.Email == "" {
		missing = append(missing, "email")
	}
	if input.Department == "" {
		missing = append(missing, "department")
	}
	if input.JobTitle == "" {
		missing = append(missing, "jobTitle")
	}
	if err := validate(missing); err != nil {
		return nil, err
	}

	created, err := uc.repo.Employee().Create(ctx, input)
	if err != nil {
		return nil, wrapStore(err, "failed to create employee")
	}

	return created, nil
}

// Get retrieves a single employee
func (uc *EmployeeUseCase) Get(ctx context.Context, actor *model.Profile, id types.EmployeeID) (*model.Employee, error) {
	employee, err := uc.repo.Employee().Get(ctx, id)
	if err != nil {
		return nil, wrapStore(err, "failed to get employee", goerr.V("id", id))
	}
	return employee, nil
}

// List returns employees narrowed by the query, in creation order. All
// roles may read the employee list.
func (uc *EmployeeUseCase) List(ctx context.Context, actor *model.Profile, query filter.EmployeeQuery) ([]*model.Employee, error) {
	employees, err := uc.repo.Employee().List(ctx)
	if err != nil {
		return nil, wrapStore(err, "failed to list employees")
	}

	return filter.Apply(employees, query.Match), nil
}

// Update rewrites an employee record. Manager only; CreatedAt is preserved
// by the repository, and the derived task counters are carried over from
// the stored record: only the stats worker recomputes them.
func (uc *EmployeeUseCase) Update(ctx context.Context, actor *model.Profile, input *model.Employee) (*model.Employee, error) {
	if !actor.IsManager() {
		return nil, goerr.Wrap(ErrPermission, "only managers can update employees", goerr.V("role", actor.Role))
	}
	if input.ID == "" {
		return nil, goerr.Wrap(ErrValidation, "employee ID is required")
	}

	existing, err := uc.repo.Employee().Get(ctx, input.ID)
	if err != nil {
		return nil, wrapStore(err, "failed to get employee", goerr.V("id", input.ID))
	}

	edited := *input
	edited.TasksCount = existing.TasksCount
	edited.CompletedTasks = existing.CompletedTasks

	updated, err := uc.repo.Employee().Update(ctx, &edited)
	if err != nil {
		return nil, wrapStore(err, "failed to update employee", goerr.V("id", input.ID))
	}

	return updated, nil
}

// Delete removes an employee record. Manager only. Tasks keep their
// assignee name; they are not rewritten.
func (uc *EmployeeUseCase) Delete(ctx context.Context, actor *model.Profile, id types.EmployeeID) error {
	if !actor.IsManager() {
		return goerr.Wrap(ErrPermission, "only managers can delete employees", goerr.V("role", actor.Role))
	}

	if err := uc.repo.Employee().Delete(ctx, id); err != nil {
		return wrapStore(err, "failed to delete employee", goerr.V("id", id))
	}

	return nil
}
