package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/maham-hq/maham/pkg/domain/model"
	"github.com/maham-hq/maham/pkg/domain/types"
	"github.com/maham-hq/maham/pkg/repository/memory"
	"github.com/maham-hq/maham/pkg/usecase"
)

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo)
	now := time.Now()
	future := now.Add(60 * 24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	seed := []*model.Task{
		{Title: "p1", Deadline: future, AssignedTo: "أحمد محمد", Status: types.TaskStatusPending},
		{Title: "p2 overdue", Deadline: past, AssignedTo: "أحمد محمد", Status: types.TaskStatusPending},
		{Title: "wip", Deadline: future, AssignedTo: "سارة علي", Status: types.TaskStatusProgress},
		{Title: "done", Deadline: past, AssignedTo: "سارة علي", Status: types.TaskStatusCompleted},
		{Title: "acked", Deadline: past, AssignedTo: "أحمد محمد", Status: types.TaskStatusApproved},
	}
	for _, task := range seed {
		_, err := repo.Task().Create(ctx, task)
		gt.NoError(t, err).Required()
	}

	_, err := repo.Employee().Create(ctx, &model.Employee{Name: "أحمد محمد", Email: "a@example.com"})
	gt.NoError(t, err).Required()
	_, err = repo.Department().Create(ctx, &model.Department{Name: "Engineering"})
	gt.NoError(t, err).Required()

	t.Run("manager sees global counts", func(t *testing.T) {
		stats, err := uc.Dashboard.Stats(ctx, manager("boss"), now)
		gt.NoError(t, err).Required()
		gt.Value(t, stats.TotalTasks).Equal(5)
		gt.Value(t, stats.CompletedTasks).Equal(2) // completed + approved
		gt.Value(t, stats.InProgressTasks).Equal(1)
		gt.Value(t, stats.PendingTasks).Equal(2)
		gt.Value(t, stats.OverdueTasks).Equal(1) // only the pending past-deadline task
		gt.Value(t, stats.Employees).Equal(1)
		gt.Value(t, stats.Departments).Equal(1)
	})

	t.Run("employees see counts over their own tasks", func(t *testing.T) {
		stats, err := uc.Dashboard.Stats(ctx, employee("أحمد محمد"), now)
		gt.NoError(t, err).Required()
		gt.Value(t, stats.TotalTasks).Equal(3)
		gt.Value(t, stats.CompletedTasks).Equal(1)
		gt.Value(t, stats.PendingTasks).Equal(2)
		gt.Value(t, stats.OverdueTasks).Equal(1)
	})
}
