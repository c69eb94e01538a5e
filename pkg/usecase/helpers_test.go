package usecase_test

import (
	"context"
	"errors"

	"github.com/maham-hq/maham/pkg/domain/interfaces"
	"github.com/maham-hq/maham/pkg/domain/model"
	"github.com/maham-hq/maham/pkg/domain/types"
	"github.com/maham-hq/maham/pkg/repository/memory"
)

func manager(name string) *model.Profile {
	return &model.Profile{
		ID:    types.NewProfileID(),
		Name:  name,
		Email: name + "@example.com",
		Role:  types.RoleManager,
	}
}

func employee(name string) *model.Profile {
	return &model.Profile{
		ID:    types.NewProfileID(),
		Name:  name,
		Email: name + "@example.com",
		Role:  types.RoleEmployee,
	}
}

func viewer(name string) *model.Profile {
	return &model.Profile{
		ID:    types.NewProfileID(),
		Name:  name,
		Email: name + "@example.com",
		Role:  types.RoleViewer,
	}
}

var errInjected = errors.New("injected store failure")

// failingRepo wraps the memory backend and fails selected task operations
// to exercise the upstream error path
type failingRepo struct {
	*memory.Memory
	failTaskCreate bool
	failTaskList   bool
	failFileCreate bool
}

func newFailingRepo() *failingRepo {
	return &failingRepo{Memory: memory.New()}
}

func (r *failingRepo) Task() interfaces.TaskRepository {
	return &failingTaskRepo{TaskRepository: r.Memory.Task(), parent: r}
}

func (r *failingRepo) File() interfaces.FileRepository {
	return &failingFileRepo{FileRepository: r.Memory.File(), parent: r}
}

type failingTaskRepo struct {
	interfaces.TaskRepository
	parent *failingRepo
}

func (r *failingTaskRepo) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	if r.parent.failTaskCreate {
		return nil, errInjected
	}
	return r.TaskRepository.Create(ctx, task)
}

func (r *failingTaskRepo) List(ctx context.Context) ([]*model.Task, error) {
	if r.parent.failTaskList {
		return nil, errInjected
	}
	return r.TaskRepository.List(ctx)
}

type failingFileRepo struct {
	interfaces.FileRepository
	parent *failingRepo
}

func (r *failingFileRepo) Create(ctx context.Context, file *model.FileAttachment) (*model.FileAttachment, error) {
	if r.parent.failFileCreate {
		return nil, errInjected
	}
	return r.FileRepository.Create(ctx, file)
}
