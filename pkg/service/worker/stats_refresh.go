package worker

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/maham-hq/maham/pkg/domain/interfaces"
	"github.com/maham-hq/maham/pkg/domain/types"
	"github.com/maham-hq/maham/pkg/utils/logging"
)

// StatsRefreshWorker recomputes the per-employee task counters from the
// task records in the background.
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
// - Counters are derived data; a missed cycle only delays freshness
type StatsRefreshWorker struct {
	repo     interfaces.Repository
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewStatsRefreshWorker creates a worker refreshing employee task counters
func NewStatsRefreshWorker(repo interfaces.Repository, interval time.Duration) *StatsRefreshWorker {
	return &StatsRefreshWorker{
		repo:     repo,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background refresh loop
// - Initial sync and periodic refresh both run in a background goroutine
// - Does not block server startup
func (w *StatsRefreshWorker) Start(ctx context.Context) error {
	logging.Default().Info("Stats refresh worker starting",
		"interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion
func (w *StatsRefreshWorker) Stop() {
	logging.Default().Info("Stats refresh worker stopping")
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("Stats refresh worker stopped")
}

// run is the main worker loop (runs in goroutine)
func (w *StatsRefreshWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	if err := w.Refresh(ctx); err != nil {
		logging.Default().Error("Initial stats refresh failed (will retry next interval)",
			"error", err.Error())
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.Refresh(ctx); err != nil {
				// Log error but continue worker
				logging.Default().Error("Stats refresh failed (will retry next interval)",
					"error", err.Error())
			}

		case <-w.stopCh:
			logging.Default().Info("Stats refresh worker received stop signal")
			return

		case <-ctx.Done():
			logging.Default().Info("Stats refresh worker context cancelled")
			return
		}
	}
}

// Refresh performs a single recomputation cycle. Tasks are grouped by
// assignee name; only employees whose counters drifted are written back.
func (w *StatsRefreshWorker) Refresh(ctx context.Context) error {
	startTime := time.Now()

	tasks, err := w.repo.Task().List(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to list tasks")
	}

	type counters struct {
		total     int
		completed int
	}
	byAssignee := make(map[string]counters)
	for _, task := range tasks {
		c := byAssignee[task.AssignedTo]
		c.total++
		if task.Status == types.TaskStatusCompleted || task.Status == types.TaskStatusApproved {
			c.completed++
		}
		byAssignee[task.AssignedTo] = c
	}

	employees, err := w.repo.Employee().List(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to list employees")
	}

	var updated int
	for _, employee := range employees {
		c := byAssignee[employee.Name]
		if employee.TasksCount == c.total && employee.CompletedTasks == c.completed {
			continue
		}

		employee.TasksCount = c.total
		employee.CompletedTasks = c.completed
		if _, err := w.repo.Employee().Update(ctx, employee); err != nil {
			return goerr.Wrap(err, "failed to update employee counters",
				goerr.V("employee_id", employee.ID))
		}
		updated++
	}

	logging.Default().Info("Stats refresh completed",
		"employees", len(employees),
		"tasks", len(tasks),
		"updated", updated,
		"duration", time.Since(startTime).String())

	return nil
}
