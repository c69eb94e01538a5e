package types

import "fmt"

// TaskAction represents a requested status transition on a task
type TaskAction string

const (
	TaskActionStart    TaskAction = "start"    // pending -> progress
	TaskActionComplete TaskAction = "complete" // progress -> completed
	TaskActionDecline  TaskAction = "decline"  // progress -> declined
	TaskActionApprove  TaskAction = "approve"  // completed -> approved, manager only
)

// AllTaskActions returns all valid task actions
func AllTaskActions() []TaskAction {
	return []TaskAction{
		TaskActionStart,
		TaskActionComplete,
		TaskActionDecline,
		TaskActionApprove,
	}
}

// IsValid checks if the task action is valid
func (a TaskAction) IsValid() bool {
	switch a {
	case TaskActionStart,
		TaskActionComplete,
		TaskActionDecline,
		TaskActionApprove:
		return true
	default:
		return false
	}
}

// String returns the string representation of the task action
func (a TaskAction) String() string {
	return string(a)
}

// ParseTaskAction parses a string into a TaskAction
func ParseTaskAction(s string) (TaskAction, error) {
	action := TaskAction(s)
	if !action.IsValid() {
		return "", fmt.Errorf("invalid task action: %s", s)
	}
	return action, nil
}
