package cli

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/maham-hq/maham/pkg/domain/types"
	"github.com/maham-hq/maham/pkg/repository/memory"
)

func TestSeedManager(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	manager, err := seedManager(ctx, repo, "مدير النظام", "admin@example.com", "s3cret-password")
	gt.NoError(t, err).Required()
	gt.Value(t, manager.Role).Equal(types.RoleManager)

	cred, err := repo.GetCredentialByEmail(ctx, "admin@example.com")
	gt.NoError(t, err).Required()
	gt.NoError(t, cred.Verify("s3cret-password"))
	gt.Error(t, cred.Verify("wrong-password"))
}

func TestSeedDemoData(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	manager, err := seedManager(ctx, repo, "Manager", "admin@example.com", "s3cret-password")
	gt.NoError(t, err).Required()

	gt.NoError(t, seedDemoData(ctx, repo, manager))

	departments, err := repo.Department().List(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, departments).Length(3)

	employees, err := repo.Employee().List(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, employees).Length(3)

	tasks, err := repo.Task().List(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, tasks).Length(3)
	for _, task := range tasks {
		gt.Value(t, task.Status).Equal(types.TaskStatusPending)
		gt.Value(t, task.AssignedBy).Equal(manager.Name)
	}
}
