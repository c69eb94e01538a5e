package types

import "fmt"

// TaskStatus represents the stored lifecycle state of a task.
// Approved is a terminal manager acknowledgement on top of completion;
// it is a distinct status, not a flag on a completed task.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusProgress  TaskStatus = "progress"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusDeclined  TaskStatus = "declined"
	TaskStatusApproved  TaskStatus = "approved"
)

// AllTaskStatuses returns all valid task statuses
func AllTaskStatuses() []TaskStatus {
	return []TaskStatus{
		TaskStatusPending,
		TaskStatusProgress,
		TaskStatusCompleted,
		TaskStatusDeclined,
		TaskStatusApproved,
	}
}

// IsValid checks if the task status is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending,
		TaskStatusProgress,
		TaskStatusCompleted,
		TaskStatusDeclined,
		TaskStatusApproved:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is defined from the status
func (s TaskStatus) IsTerminal() bool {
	switch s {
	case TaskStatusDeclined, TaskStatusApproved:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as TaskStatusPending
func (s TaskStatus) Normalize() TaskStatus {
	if s == "" {
		return TaskStatusPending
	}
	return s
}

// String returns the string representation of the task status
func (s TaskStatus) String() string {
	return string(s)
}

// ParseTaskStatus parses a string into a TaskStatus
func ParseTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid task status: %s", s)
	}
	return status, nil
}
