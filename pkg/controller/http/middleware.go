package http

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/maham-hq/maham/pkg/domain/model"
	"github.com/maham-hq/maham/pkg/domain/model/auth"
	"github.com/maham-hq/maham/pkg/usecase"
)

const sessionCookieName = "maham_session"

// authMiddleware resolves the session cookie and attaches the session to
// the request context. Requests without a valid session get 401.
func authMiddleware(authUC *usecase.AuthUseCase) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err != nil {
				respondError(w, r, goerr.Wrap(usecase.ErrUnauthenticated, "authentication required"))
				return
			}

			session, err := authUC.ValidateToken(r.Context(), cookie.Value)
			if err != nil {
				respondError(w, r, err)
				return
			}

			ctx := auth.ContextWithSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// actorFromRequest rebuilds the acting principal from the session snapshot
func actorFromRequest(r *http.Request) (*model.Profile, error) {
	session, err := auth.SessionFromContext(r.Context())
	if err != nil {
		return nil, err
	}

	return &model.Profile{
		ID:    session.ProfileID,
		Name:  session.Name,
		Email: session.Email,
		Role:  session.Role,
	}, nil
}

func setSessionCookie(w http.ResponseWriter, r *http.Request, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}
