package worker_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/maham-hq/maham/pkg/domain/model"
	"github.com/maham-hq/maham/pkg/domain/types"
	"github.com/maham-hq/maham/pkg/repository/memory"
	"github.com/maham-hq/maham/pkg/service/worker"
)

func TestStatsRefresh(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	deadline := time.Now().Add(60 * 24 * time.Hour)

	employee, err := repo.Employee().Create(ctx, &model.Employee{
		Name:  "أحمد محمد",
		Email: "ahmed@example.com",
	})
	gt.NoError(t, err).Required()

	idle, err := repo.Employee().Create(ctx, &model.Employee{
		Name:  "سارة علي",
		Email: "sara@example.com",
	})
	gt.NoError(t, err).Required()

	for _, status := range []types.TaskStatus{
		types.TaskStatusPending,
		types.TaskStatusProgress,
		types.TaskStatusCompleted,
		types.TaskStatusApproved,
		types.TaskStatusDeclined,
	} {
		_, err := repo.Task().Create(ctx, &model.Task{
			Title:      "task " + status.String(),
			Deadline:   deadline,
			AssignedTo: "أحمد محمد",
			Status:     status,
		})
		gt.NoError(t, err).Required()
	}

	w := worker.NewStatsRefreshWorker(repo, time.Minute)
	gt.NoError(t, w.Refresh(ctx)).Required()

	got, err := repo.Employee().Get(ctx, employee.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, got.TasksCount).Equal(5)
	// approved counts as completed for the counters
	gt.Value(t, got.CompletedTasks).Equal(2)

	gotIdle, err := repo.Employee().Get(ctx, idle.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, gotIdle.TasksCount).Equal(0)
	gt.Value(t, gotIdle.CompletedTasks).Equal(0)
}

func TestStatsRefreshClearsStaleCounters(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	employee, err := repo.Employee().Create(ctx, &model.Employee{
		Name:           "stale",
		Email:          "stale@example.com",
		TasksCount:     9,
		CompletedTasks: 9,
	})
	gt.NoError(t, err).Required()

	w := worker.NewStatsRefreshWorker(repo, time.Minute)
	gt.NoError(t, w.Refresh(ctx)).Required()

	got, err := repo.Employee().Get(ctx, employee.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, got.TasksCount).Equal(0)
	gt.Value(t, got.CompletedTasks).Equal(0)
}

func TestStatsRefreshWorkerLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	w := worker.NewStatsRefreshWorker(repo, 10*time.Millisecond)
	gt.NoError(t, w.Start(ctx)).Required()

	time.Sleep(30 * time.Millisecond)
	w.Stop()
}
