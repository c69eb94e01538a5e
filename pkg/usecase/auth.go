package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"
	"github.com/maham-hq/maham/pkg/domain/interfaces"
	"github.com/maham-hq/maham/pkg/domain/model"
	"github.com/maham-hq/maham/pkg/domain/model/auth"
	"github.com/maham-hq/maham/pkg/domain/types"
	"github.com/maham-hq/maham/pkg/utils/logging"
)

const tokenIssuer = "maham"

type AuthUseCase struct {
	repo      interfaces.Repository
	jwtSecret []byte
	ttl       time.Duration
}

func NewAuthUseCase(repo interfaces.Repository, jwtSecret []byte, ttl time.Duration) *AuthUseCase {
	return &AuthUseCase{
		repo:      repo,
		jwtSecret: jwtSecret,
		ttl:       ttl,
	}
}

// SignUp registers a new account and seeds its profile. New profiles always
// get the employee role; promoting to manager is an operator action.
func (uc *AuthUseCase) SignUp(ctx context.Context, email, password, name string) (*model.Profile, error) {
	var missing []string
	if email == "" {
		missing = append(missing, "email")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if name == "" {
		missing = append(missing, "name")
	}
	if err := validate(missing); err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetCredentialByEmail(ctx, email); err == nil {
		return nil, goerr.Wrap(ErrValidation, "email already registered", goerr.V("email", email))
	} else if !errors.Is(err, interfaces.ErrNotFound) {
		return nil, wrapStore(err, "failed to check existing credential")
	}

	profile, err := uc.repo.Profile().Create(ctx, &model.Profile{
		Name:  name,
		Email: email,
		Role:  types.RoleEmployee,
	})
	if err != nil {
		return nil, wrapStore(err, "failed to create profile")
	}

	cred, err := auth.NewCredential(profile.ID, email, password)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build credential")
	}
	if err := uc.repo.PutCredential(ctx, cred); err != nil {
		return nil, wrapStore(err, "failed to store credential")
	}

	logging.From(ctx).Info("account registered", "profile_id", profile.ID, "email", email)

	return profile, nil
}

// SignIn verifies the password, stores a server-side session, and returns
// the session together with its signed cookie token
func (uc *AuthUseCase) SignIn(ctx context.Context, email, password string) (*auth.Session, string, error) {
	cred, err := uc.repo.GetCredentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, "", goerr.Wrap(ErrUnauthenticated, "unknown account", goerr.V("email", email))
		}
		return nil, "", wrapStore(err, "failed to get credential")
	}

	if err := cred.Verify(password); err != nil {
		return nil, "", goerr.Wrap(ErrUnauthenticated, "password mismatch", goerr.V("email", email))
	}

	profile, err := uc.repo.Profile().Get(ctx, cred.ProfileID)
	if err != nil {
		return nil, "", wrapStore(err, "failed to get profile", goerr.V("profile_id", cred.ProfileID))
	}

	session := auth.NewSession(profile.ID, profile.Name, profile.Email, profile.Role, uc.ttl)
	if err := uc.repo.PutSession(ctx, session); err != nil {
		return nil, "", wrapStore(err, "failed to store session")
	}

	token, err := uc.signToken(session)
	if err != nil {
		return nil, "", err
	}

	logging.From(ctx).Info("signed in", "profile_id", profile.ID, "role", profile.Role)

	return session, token, nil
}

// SignOut revokes the session record. A missing session is not an error so
// sign-out stays idempotent.
func (uc *AuthUseCase) SignOut(ctx context.Context, id auth.SessionID) error {
	if err := uc.repo.DeleteSession(ctx, id); err != nil && !errors.Is(err, interfaces.ErrNotFound) {
		return wrapStore(err, "failed to delete session", goerr.V("session_id", id))
	}
	return nil
}

// ValidateToken verifies the signed cookie token and resolves the live
// session record behind it
func (uc *AuthUseCase) ValidateToken(ctx context.Context, token string) (*auth.Session, error) {
	parsed, err := jwt.Parse([]byte(token),
		jwt.WithKey(jwa.HS256, uc.jwtSecret),
		jwt.WithValidate(true),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAcceptableSkew(10*time.Second),
	)
	if err != nil {
		return nil, goerr.Wrap(ErrUnauthenticated, "invalid session token")
	}

	session, err := uc.repo.GetSession(ctx, auth.SessionID(parsed.Subject()))
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrUnauthenticated, "session revoked")
		}
		return nil, wrapStore(err, "failed to get session")
	}

	if session.Expired(time.Now()) {
		return nil, goerr.Wrap(ErrUnauthenticated, "session expired", goerr.V("session_id", session.ID))
	}

	return session, nil
}

// Profile resolves the current profile of the session's principal
func (uc *AuthUseCase) Profile(ctx context.Context, session *auth.Session) (*model.Profile, error) {
	profile, err := uc.repo.Profile().Get(ctx, session.ProfileID)
	if err != nil {
		return nil, wrapStore(err, "failed to get profile", goerr.V("profile_id", session.ProfileID))
	}
	return profile, nil
}

func (uc *AuthUseCase) signToken(session *auth.Session) (string, error) {
	tok, err := jwt.NewBuilder().
		Issuer(tokenIssuer).
		Subject(session.ID.String()).
		IssuedAt(session.CreatedAt).
		Expiration(session.ExpiresAt).
		Build()
	if err != nil {
		return "", goerr.Wrap(err, "failed to build session token")
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, uc.jwtSecret))
	if err != nil {
		return "", goerr.Wrap(err, "failed to sign session token")
	}

	return string(signed), nil
}
