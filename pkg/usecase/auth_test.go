package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/maham-hq/maham/pkg/domain/types"
	"github.com/maham-hq/maham/pkg/repository/memory"
	"github.com/maham-hq/maham/pkg/usecase"
)

func TestSignUpAndSignIn(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New(), usecase.WithJWTSecret([]byte("test-secret-key-0123456789abcdef")))

	profile, err := uc.Auth.SignUp(ctx, "ahmed@example.com", "p4ssw0rd!", "أحمد محمد")
	gt.NoError(t, err).Required()
	gt.Value(t, profile.Role).Equal(types.RoleEmployee)
	gt.Value(t, profile.Name).Equal("أحمد محمد")

	t.Run("duplicate email is a validation failure", func(t *testing.T) {
		_, err := uc.Auth.SignUp(ctx, "ahmed@example.com", "other", "someone else")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrValidation)).True()
	})

	t.Run("sign in issues a verifiable token", func(t *testing.T) {
		session, token, err := uc.Auth.SignIn(ctx, "ahmed@example.com", "p4ssw0rd!")
		gt.NoError(t, err).Required()
		gt.Value(t, session.ProfileID).Equal(profile.ID)
		gt.Value(t, session.Role).Equal(types.RoleEmployee)

		got, err := uc.Auth.ValidateToken(ctx, token)
		gt.NoError(t, err).Required()
		gt.Value(t, got.ID).Equal(session.ID)
		gt.Value(t, got.Email).Equal("ahmed@example.com")
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, _, err := uc.Auth.SignIn(ctx, "ahmed@example.com", "wrong")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrUnauthenticated)).True()
	})

	t.Run("unknown account is rejected", func(t *testing.T) {
		_, _, err := uc.Auth.SignIn(ctx, "nobody@example.com", "p4ssw0rd!")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrUnauthenticated)).True()
	})
}

func TestSignOutRevokesSession(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New(), usecase.WithJWTSecret([]byte("test-secret-key-0123456789abcdef")))

	_, err := uc.Auth.SignUp(ctx, "sara@example.com", "p4ssw0rd!", "سارة علي")
	gt.NoError(t, err).Required()

	session, token, err := uc.Auth.SignIn(ctx, "sara@example.com", "p4ssw0rd!")
	gt.NoError(t, err).Required()

	gt.NoError(t, uc.Auth.SignOut(ctx, session.ID)).Required()

	_, err = uc.Auth.ValidateToken(ctx, token)
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, usecase.ErrUnauthenticated)).True()

	// sign-out is idempotent
	gt.NoError(t, uc.Auth.SignOut(ctx, session.ID))
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New(), usecase.WithJWTSecret([]byte("test-secret-key-0123456789abcdef")))

	_, err := uc.Auth.ValidateToken(ctx, "not-a-jwt")
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, usecase.ErrUnauthenticated)).True()
}

func TestExpiredSessionIsRejected(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New(),
		usecase.WithJWTSecret([]byte("test-secret-key-0123456789abcdef")),
		usecase.WithSessionTTL(-time.Minute))

	_, err := uc.Auth.SignUp(ctx, "old@example.com", "p4ssw0rd!", "old timer")
	gt.NoError(t, err).Required()

	_, token, err := uc.Auth.SignIn(ctx, "old@example.com", "p4ssw0rd!")
	gt.NoError(t, err).Required()

	_, err = uc.Auth.ValidateToken(ctx, token)
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, usecase.ErrUnauthenticated)).True()
}
