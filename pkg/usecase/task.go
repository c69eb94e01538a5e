package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/maham-hq/maham/pkg/domain/filter"
	"github.com/maham-hq/maham/pkg/domain/interfaces"
	"github.com/maham-hq/maham/pkg/domain/model"
	"github.com/maham-hq/maham/pkg/domain/policy"
	"github.com/maham-hq/maham/pkg/domain/types"
	"github.com/maham-hq/maham/pkg/utils/async"
	"github.com/maham-hq/maham/pkg/utils/logging"
)

// TransitionHook runs after every accepted transition, asynchronously.
// A failing hook is logged and never rolls the transition back.
type TransitionHook func(ctx context.Context, task *model.Task, actor *model.Profile, action types.TaskAction) error

type TaskUseCase struct {
	repo interfaces.Repository
	hook TransitionHook
}

func NewTaskUseCase(repo interfaces.Repository, hook TransitionHook) *TaskUseCase {
	return &TaskUseCase{repo: repo, hook: hook}
}

// Create adds a task. Manager only; the task always starts pending and
// AssignedBy is pinned to the acting manager's name.
func (uc *TaskUseCase) Create(ctx context.Context, actor *model.Profile, input *model.Task) (*model.Task, error) {
	if !actor.IsManager() {
		return nil, goerr.Wrap(ErrPermission, "only managers can create tasks", goerr.V("role", actor.Role))
	}

	var missing []string
	if input.Title == "" {
		missing = append(missing, "title")
	}
	if input.Description == "" {
		missing = append(missing, "description")
	}
	if input.Deadline.IsZero() {
		missing = append(missing, "deadline")
	}
	if input.AssignedTo == "" {
		missing = append(missing, "assignedTo")
	}
	if err := validate(missing); err != nil {
		return nil, err
	}

	input.Status = types.TaskStatusPending
	input.Priority = input.Priority.Normalize()
	input.AssignedBy = actor.Name

	created, err := uc.repo.Task().Create(ctx, input)
	if err != nil {
		return nil, wrapStore(err, "failed to create task")
	}

	return created, nil
}

// Get retrieves a single task. Employee actors may only read tasks
// assigned to them.
func (uc *TaskUseCase) Get(ctx context.Context, actor *model.Profile, id types.TaskID) (*model.Task, error) {
	task, err := uc.repo.Task().Get(ctx, id)
	if err != nil {
		return nil, wrapStore(err, "failed to get task", goerr.V("id", id))
	}

	if actor.Role == types.RoleEmployee && !task.IsAssignedTo(actor) {
		return nil, goerr.Wrap(ErrPermission, "task is assigned to someone else", goerr.V("id", id))
	}

	return task, nil
}

// List returns tasks narrowed by the query, in creation order. The actor
// is forced into the query so employee visibility cannot be bypassed.
func (uc *TaskUseCase) List(ctx context.Context, actor *model.Profile, query filter.TaskQuery) ([]*model.Task, error) {
	query.Actor = actor

	tasks, err := uc.repo.Task().List(ctx)
	if err != nil {
		return nil, wrapStore(err, "failed to list tasks")
	}

	return filter.Apply(tasks, query.Match), nil
}

// AllowedActions returns the transitions the actor may apply to the task
func (uc *TaskUseCase) AllowedActions(ctx context.Context, actor *model.Profile, id types.TaskID) ([]types.TaskAction, error) {
	task, err := uc.repo.Task().Get(ctx, id)
	if err != nil {
		return nil, wrapStore(err, "failed to get task", goerr.V("id", id))
	}

	return policy.AllowedActions(task, actor), nil
}

// Transition applies a lifecycle action to the task. Rejected transitions
// leave the record untouched; accepted ones fire the hook asynchronously.
func (uc *TaskUseCase) Transition(ctx context.Context, actor *model.Profile, id types.TaskID, action types.TaskAction) (*model.Task, error) {
	task, err := uc.repo.Task().Get(ctx, id)
	if err != nil {
		return nil, wrapStore(err, "failed to get task", goerr.V("id", id))
	}

	target, err := policy.Transition(task, actor, action)
	if err != nil {
		return nil, err
	}

	task.Status = target
	updated, err := uc.repo.Task().Update(ctx, task)
	if err != nil {
		return nil, wrapStore(err, "failed to persist transition", goerr.V("id", id))
	}

	logging.From(ctx).Info("task transitioned",
		"task_id", updated.ID,
		"action", action,
		"status", updated.Status,
		"actor", actor.Name)

	if uc.hook != nil {
		hookTask := *updated
		hookActor := *actor
		async.Dispatch(ctx, func(ctx context.Context) error {
			return uc.hook(ctx, &hookTask, &hookActor, action)
		})
	}

	return updated, nil
}

// Update rewrites task fields. Manager only; ID, CreatedAt, and AssignedBy
// are preserved by the repository. Status is carried over from the stored
// record: it only changes through Transition.
func (uc *TaskUseCase) Update(ctx context.Context, actor *model.Profile, input *model.Task) (*model.Task, error) {
	if !actor.IsManager() {
		return nil, goerr.Wrap(ErrPermission, "only managers can update tasks", goerr.V("role", actor.Role))
	}
	if input.ID == "" {
		return nil, goerr.Wrap(ErrValidation, "task ID is required")
	}

	existing, err := uc.repo.Task().Get(ctx, input.ID)
	if err != nil {
		return nil, wrapStore(err, "failed to get task", goerr.V("id", input.ID))
	}

	edited := *input
	edited.Status = existing.Status

	updated, err := uc.repo.Task().Update(ctx, &edited)
	if err != nil {
		return nil, wrapStore(err, "failed to update task", goerr.V("id", input.ID))
	}

	return updated, nil
}

// Delete removes a task. Manager only.
func (uc *TaskUseCase) Delete(ctx context.Context, actor *model.Profile, id types.TaskID) error {
	if !actor.IsManager() {
		return goerr.Wrap(ErrPermission, "only managers can delete tasks", goerr.V("role", actor.Role))
	}

	if err := uc.repo.Task().Delete(ctx, id); err != nil {
		return wrapStore(err, "failed to delete task", goerr.V("id", id))
	}

	return nil
}
