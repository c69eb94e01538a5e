package types

import "fmt"

// TaskPriority represents the priority assigned to a task at creation
type TaskPriority string

const (
	TaskPriorityNormal TaskPriority = "normal"
	TaskPriorityUrgent TaskPriority = "urgent"
)

// AllTaskPriorities returns all valid task priorities
func AllTaskPriorities() []TaskPriority {
	return []TaskPriority{
		TaskPriorityNormal,
		TaskPriorityUrgent,
	}
}

// IsValid checks if the task priority is valid
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityNormal,
		TaskPriorityUrgent:
		return true
	default:
		return false
	}
}

// Normalize returns the priority, treating empty as TaskPriorityNormal
func (p TaskPriority) Normalize() TaskPriority {
	if p == "" {
		return TaskPriorityNormal
	}
	return p
}

// String returns the string representation of the task priority
func (p TaskPriority) String() string {
	return string(p)
}

// ParseTaskPriority parses a string into a TaskPriority
func ParseTaskPriority(s string) (TaskPriority, error) {
	priority := TaskPriority(s)
	if !priority.IsValid() {
		return "", fmt.Errorf("invalid task priority: %s", s)
	}
	return priority, nil
}
