package policy

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/maham-hq/maham/pkg/domain/model"
	"github.com/maham-hq/maham/pkg/domain/types"
)

// ErrInvalidTransition is returned when a status change violates the
// transition table or its role/ownership guard. The task is left untouched.
var ErrInvalidTransition = errors.New("invalid task transition")

// actionTarget maps each action to the status it leaves the task in
var actionTarget = map[types.TaskAction]types.TaskStatus{
	types.TaskActionStart:    types.TaskStatusProgress,
	types.TaskActionComplete: types.TaskStatusCompleted,
	types.TaskActionDecline:  types.TaskStatusDeclined,
	types.TaskActionApprove:  types.TaskStatusApproved,
}

// AllowedActions returns the transitions the actor may apply to the task.
// Employees may only act on tasks assigned to them (matched by name);
// managers may only approve completed tasks; viewers get nothing.
func AllowedActions(task *model.Task, actor *model.Profile) []types.TaskAction {
	if task == nil || actor == nil {
		return nil
	}

	switch actor.Role {
	case types.RoleManager:
		if task.Status.Normalize() == types.TaskStatusCompleted {
			return []types.TaskAction{types.TaskActionApprove}
		}
		return nil

	case types.RoleEmployee:
		if !task.IsAssignedTo(actor) {
			return nil
		}
		switch task.Status.Normalize() {
		case types.TaskStatusPending:
			return []types.TaskAction{types.TaskActionStart}
		case types.TaskStatusProgress:
			return []types.TaskAction{types.TaskActionComplete, types.TaskActionDecline}
		}
		return nil

	default:
		return nil
	}
}

// Transition returns the status the task moves to when the actor applies
// the action, or ErrInvalidTransition if the transition table or its guard
// rejects it.
func Transition(task *model.Task, actor *model.Profile, action types.TaskAction) (types.TaskStatus, error) {
	target, ok := actionTarget[action]
	if !ok {
		return "", goerr.Wrap(ErrInvalidTransition, "unknown action", goerr.V("action", action))
	}

	if task == nil || actor == nil {
		return "", goerr.Wrap(ErrInvalidTransition, "missing task or actor", goerr.V("action", action))
	}

	for _, allowed := range AllowedActions(task, actor) {
		if allowed == action {
			return target, nil
		}
	}

	return "", goerr.Wrap(ErrInvalidTransition, "transition not allowed",
		goerr.V("action", action),
		goerr.V("status", task.Status),
		goerr.V("role", actor.Role),
	)
}
