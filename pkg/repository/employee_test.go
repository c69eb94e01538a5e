package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/maham-hq/maham/pkg/domain/interfaces"
	"github.com/maham-hq/maham/pkg/domain/model"
	"github.com/maham-hq/maham/pkg/domain/types"
)

func TestEmployeeRepository(t *testing.T) {
	runBackends(t, runEmployeeRepositoryTest)
}

func runEmployeeRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	ctx := context.Background()

	t.Run("create assigns ID and timestamps", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.Employee().Create(ctx, &model.Employee{
			Name:       "أحمد محمد",
			Email:      "ahmed@example.com",
			Department: "Engineering",
			JobTitle:   "Backend Engineer",
		})
		gt.NoError(t, err).Required()
		gt.NoError(t, created.ID.Validate())
		gt.Bool(t, created.CreatedAt.IsZero()).False()
		gt.Bool(t, created.UpdatedAt.IsZero()).False()
		gt.Value(t, created.Name).Equal("أحمد محمد")

		got, err := repo.Employee().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Email).Equal("ahmed@example.com")
		gt.Value(t, got.Department).Equal("Engineering")
	})

	t.Run("get missing employee returns ErrNotFound", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Employee().Get(ctx, types.NewEmployeeID())
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
	})

	t.Run("update preserves CreatedAt", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.Employee().Create(ctx, &model.Employee{
			Name:       "سارة علي",
			Email:      "sara@example.com",
			Department: "Design",
		})
		gt.NoError(t, err).Required()

		created.JobTitle = "Lead Designer"
		created.TasksCount = 4
		created.CompletedTasks = 2
		updated, err := repo.Employee().Update(ctx, created)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.JobTitle).Equal("Lead Designer")
		gt.Value(t, updated.TasksCount).Equal(4)
		gt.Value(t, updated.CreatedAt.Unix()).Equal(created.CreatedAt.Unix())
		gt.Bool(t, updated.UpdatedAt.Before(created.CreatedAt)).False()
	})

	t.Run("update missing employee returns ErrNotFound", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Employee().Update(ctx, &model.Employee{
			ID:   types.NewEmployeeID(),
			Name: "ghost",
		})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
	})

	t.Run("list returns employees in creation order", func(t *testing.T) {
		repo := newRepo(t)

		first, err := repo.Employee().Create(ctx, &model.Employee{Name: "first", Email: "a@example.com"})
		gt.NoError(t, err).Required()
		second, err := repo.Employee().Create(ctx, &model.Employee{Name: "second", Email: "b@example.com"})
		gt.NoError(t, err).Required()

		listed, err := repo.Employee().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, listed).Length(2)
		gt.Value(t, listed[0].ID).Equal(first.ID)
		gt.Value(t, listed[1].ID).Equal(second.ID)
	})

	t.Run("delete removes the employee", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.Employee().Create(ctx, &model.Employee{Name: "temp", Email: "temp@example.com"})
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Employee().Delete(ctx, created.ID))

		_, err = repo.Employee().Get(ctx, created.ID)
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
	})
}
