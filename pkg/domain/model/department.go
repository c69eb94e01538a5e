package model

import (
	"time"

	"github.com/maham-hq/maham/pkg/domain/types"
)

// Department represents an organizational unit. Names are unique among
// live departments; employees and tasks reference departments by name,
// so deleting a department does not rewrite existing records.
type Department struct {
	ID        types.DepartmentID
	Name      string
	CreatedAt time.Time
}
