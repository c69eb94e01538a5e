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

func TestProfileRepository(t *testing.T) {
	runBackends(t, runProfileRepositoryTest)
}

func runProfileRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	ctx := context.Background()

	t.Run("create and get by email", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.Profile().Create(ctx, &model.Profile{
			Name:  "أحمد محمد",
			Email: "ahmed@example.com",
			Role:  types.RoleEmployee,
		})
		gt.NoError(t, err).Required()
		gt.NoError(t, created.ID.Validate())

		got, err := repo.Profile().GetByEmail(ctx, "ahmed@example.com")
		gt.NoError(t, err).Required()
		gt.Value(t, got.ID).Equal(created.ID)
		gt.Value(t, got.Role).Equal(types.RoleEmployee)
	})

	t.Run("update preserves role", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.Profile().Create(ctx, &model.Profile{
			Name:  "سارة علي",
			Email: "sara@example.com",
			Role:  types.RoleManager,
		})
		gt.NoError(t, err).Required()

		created.Name = "سارة العلي"
		created.Role = types.RoleViewer
		updated, err := repo.Profile().Update(ctx, created)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Name).Equal("سارة العلي")
		gt.Value(t, updated.Role).Equal(types.RoleManager)
	})

	t.Run("missing profile returns ErrNotFound", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Profile().Get(ctx, types.NewProfileID())
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()

		_, err = repo.Profile().GetByEmail(ctx, "missing@example.com")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
	})
}
