package model

import (
	"time"

	"github.com/maham-hq/maham/pkg/domain/types"
)

// Employee represents an employee record managed by managers.
// TasksCount and CompletedTasks are derived from task records and
// recomputed by the stats worker; CompletedTasks <= TasksCount is
// expected but not enforced transactionally.
type Employee struct {
	ID             types.EmployeeID
	Name           string
	Email          string
	Phone          string
	Department     string // department name, soft reference
	JobTitle       string
	AvatarURL      string
	TasksCount     int
	CompletedTasks int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
