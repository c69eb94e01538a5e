package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/maham-hq/maham/pkg/repository/memory"
	"github.com/maham-hq/maham/pkg/usecase"
)

func TestDepartmentCreate(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())
	boss := manager("boss")

	created, err := uc.Department.Create(ctx, boss, "الموارد البشرية")
	gt.NoError(t, err).Required()
	gt.NoError(t, created.ID.Validate())

	t.Run("duplicate name is a validation failure", func(t *testing.T) {
		_, err := uc.Department.Create(ctx, boss, "الموارد البشرية")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrValidation)).True()
	})

	t.Run("empty name is a validation failure", func(t *testing.T) {
		_, err := uc.Department.Create(ctx, boss, "")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrValidation)).True()
	})

	t.Run("non-managers are rejected", func(t *testing.T) {
		_, err := uc.Department.Create(ctx, employee("worker"), "Sales")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrPermission)).True()
	})
}

func TestDepartmentDeleteAndReAdd(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())
	boss := manager("boss")

	first, err := uc.Department.Create(ctx, boss, "Operations")
	gt.NoError(t, err).Required()

	gt.NoError(t, uc.Department.Delete(ctx, boss, first.ID)).Required()

	second, err := uc.Department.Create(ctx, boss, "Operations")
	gt.NoError(t, err).Required()
	if second.ID == first.ID {
		t.Error("re-added department must be an independent record")
	}

	listed, err := uc.Department.List(ctx, boss)
	gt.NoError(t, err).Required()
	gt.Array(t, listed).Length(1)
}
