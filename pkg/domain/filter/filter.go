package filter

import (
	"strings"

	"github.com/maham-hq/maham/pkg/domain/model"
	"github.com/maham-hq/maham/pkg/domain/types"
)

// Apply returns the records matching the predicate, preserving the input
// order. It never re-sorts; callers own ordering.
func Apply[T any](records []T, match func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if match(r) {
			out = append(out, r)
		}
	}
	return out
}

// containsFold is a case-insensitive substring match. ToLower is sufficient
// for the supported locales; Arabic has no letter case.
func containsFold(s, sub string) bool {
	if sub == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// TaskQuery narrows a task list. All set filters are ANDed; empty fields
// pass through. If the actor carries the employee role, results are further
// restricted to tasks assigned to them regardless of other filters.
type TaskQuery struct {
	Search     string
	Status     types.TaskStatus
	Priority   types.TaskPriority
	Department string
	Actor      *model.Profile
}

// Match reports whether the task satisfies the query
func (q TaskQuery) Match(t *model.Task) bool {
	if q.Actor != nil && q.Actor.Role == types.RoleEmployee && !t.IsAssignedTo(q.Actor) {
		return false
	}
	if q.Status != "" && t.Status != q.Status {
		return false
	}
	if q.Priority != "" && t.Priority != q.Priority {
		return false
	}
	if q.Department != "" && t.Department != q.Department {
		return false
	}
	if q.Search == "" {
		return true
	}
	return containsFold(t.Title, q.Search) ||
		containsFold(t.Description, q.Search) ||
		containsFold(t.AssignedTo, q.Search)
}

// EmployeeQuery narrows an employee list by text search and department
type EmployeeQuery struct {
	Search     string
	Department string
}

// Match reports whether the employee satisfies the query
func (q EmployeeQuery) Match(e *model.Employee) bool {
	if q.Department != "" && e.Department != q.Department {
		return false
	}
	if q.Search == "" {
		return true
	}
	return containsFold(e.Name, q.Search) ||
		containsFold(e.Email, q.Search) ||
		containsFold(e.JobTitle, q.Search)
}

// FileQuery narrows a file attachment list by text search and mime category
type FileQuery struct {
	Search   string
	Category types.MimeCategory
}

// Match reports whether the file satisfies the query
func (q FileQuery) Match(f *model.FileAttachment) bool {
	if q.Category != "" && f.MimeCategory != q.Category {
		return false
	}
	if q.Search == "" {
		return true
	}
	return containsFold(f.Name, q.Search) ||
		containsFold(f.UploadedBy, q.Search)
}
