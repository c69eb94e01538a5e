package model

import (
	"time"

	"github.com/maham-hq/maham/pkg/domain/types"
)

// Task represents a unit of work assigned to an employee.
// ID, CreatedAt and AssignedBy are immutable after creation.
// Assignment is matched by display name; see the ownership note in
// DESIGN.md about migrating to id-based matching.
type Task struct {
	ID          types.TaskID
	Title       string
	Description string
	Deadline    time.Time
	AssignedTo  string // assignee display name
	AssignedBy  string
	Priority    types.TaskPriority
	Status      types.TaskStatus
	Department  string // department name, soft reference
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsAssignedTo reports whether the task is assigned to the given principal
func (t *Task) IsAssignedTo(p *Profile) bool {
	return p != nil && t.AssignedTo == p.Name
}
