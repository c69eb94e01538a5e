package usecase

import (
	"context"
	"time"

	"github.com/maham-hq/maham/pkg/domain/filter"
	"github.com/maham-hq/maham/pkg/domain/interfaces"
	"github.com/maham-hq/maham/pkg/domain/model"
	"github.com/maham-hq/maham/pkg/domain/types"
)

type DashboardUseCase struct {
	repo interfaces.Repository
}

func NewDashboardUseCase(repo interfaces.Repository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Stats aggregates the dashboard counters. Employee actors get counts over
// their own tasks only; employee, department, and file totals are global.
func (uc *DashboardUseCase) Stats(ctx context.Context, actor *model.Profile, now time.Time) (*model.DashboardStats, error) {
	tasks, err := uc.repo.Task().List(ctx)
	if err != nil {
		return nil, wrapStore(err, "failed to list tasks")
	}
	tasks = filter.Apply(tasks, filter.TaskQuery{Actor: actor}.Match)

	stats := &model.DashboardStats{
		TotalTasks: len(tasks),
	}
	for _, task := range tasks {
		status := task.Status.Normalize()
		switch status {
		case types.TaskStatusCompleted, types.TaskStatusApproved:
			stats.CompletedTasks++
		case types.TaskStatusProgress:
			stats.InProgressTasks++
		case types.TaskStatusPending:
			stats.PendingTasks++
		}
		done := status == types.TaskStatusCompleted || status == types.TaskStatusApproved
		if !done && task.Deadline.Before(now) {
			stats.OverdueTasks++
		}
	}

	employees, err := uc.repo.Employee().List(ctx)
	if err != nil {
		return nil, wrapStore(err, "failed to list employees")
	}
	stats.Employees = len(employees)

	departments, err := uc.repo.Department().List(ctx)
	if err != nil {
		return nil, wrapStore(err, "failed to list departments")
	}
	stats.Departments = len(departments)

	files, err := uc.repo.File().List(ctx)
	if err != nil {
		return nil, wrapStore(err, "failed to list files")
	}
	stats.Files = len(files)

	return stats, nil
}
