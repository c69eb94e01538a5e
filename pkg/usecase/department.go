package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/maham-hq/maham/pkg/domain/interfaces"
	"github.com/maham-hq/maham/pkg/domain/model"
	"github.com/maham-hq/maham/pkg/domain/types"
)

type DepartmentUseCase struct {
	repo interfaces.Repository
}

func NewDepartmentUseCase(repo interfaces.Repository) *DepartmentUseCase {
	return &DepartmentUseCase{repo: repo}
}

// Create adds a department. Manager only. Names must be unique among live
// departments; a duplicate surfaces as a validation failure.
func (uc *DepartmentUseCase) Create(ctx context.Context, actor *model.Profile, name string) (*model.Department, error) {
	if !actor.IsManager() {
		return nil, goerr.Wrap(ErrPermission, "only managers can create departments", goerr.V("role", actor.Role))
	}
	if name == "" {
		return nil, goerr.Wrap(ErrValidation, "missing required fields", goerr.V("missing", []string{"name"}))
	}

	created, err := uc.repo.Department().Create(ctx, &model.Department{Name: name})
	if err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return nil, goerr.Wrap(ErrValidation, "department name already exists", goerr.V("name", name))
		}
		return nil, wrapStore(err, "failed to create department")
	}

	return created, nil
}

// List returns all departments ordered by name
func (uc *DepartmentUseCase) List(ctx context.Context, actor *model.Profile) ([]*model.Department, error) {
	departments, err := uc.repo.Department().List(ctx)
	if err != nil {
		return nil, wrapStore(err, "failed to list departments")
	}
	return departments, nil
}

// Delete removes a department. Manager only. Employees and tasks keep
// their department name; nothing cascades.
func (uc *DepartmentUseCase) Delete(ctx context.Context, actor *model.Profile, id types.DepartmentID) error {
	if !actor.IsManager() {
		return goerr.Wrap(ErrPermission, "only managers can delete departments", goerr.V("role", actor.Role))
	}

	if err := uc.repo.Department().Delete(ctx, id); err != nil {
		return wrapStore(err, "failed to delete department", goerr.V("id", id))
	}

	return nil
}
