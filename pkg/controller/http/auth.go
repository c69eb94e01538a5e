package http

import (
	"net/http"

	"github.com/maham-hq/maham/pkg/domain/model/auth"
	"github.com/maham-hq/maham/pkg/usecase"
)

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func signUpHandler(authUC *usecase.AuthUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signUpRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}

		profile, err := authUC.SignUp(r.Context(), req.Email, req.Password, req.Name)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusCreated, profileResponse{
			ID:    profile.ID.String(),
			Name:  profile.Name,
			Email: profile.Email,
			Role:  profile.Role.String(),
		})
	}
}

func signInHandler(authUC *usecase.AuthUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signInRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}

		session, token, err := authUC.SignIn(r.Context(), req.Email, req.Password)
		if err != nil {
			respondError(w, r, err)
			return
		}

		setSessionCookie(w, r, token, int(session.ExpiresAt.Sub(session.CreatedAt).Seconds()))
		respondJSON(w, http.StatusOK, profileResponse{
			ID:    session.ProfileID.String(),
			Name:  session.Name,
			Email: session.Email,
			Role:  session.Role.String(),
		})
	}
}

func signOutHandler(authUC *usecase.AuthUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := auth.SessionFromContext(r.Context())
		if err == nil {
			if err := authUC.SignOut(r.Context(), session.ID); err != nil {
				respondError(w, r, err)
				return
			}
		}

		setSessionCookie(w, r, "", -1)
		respondJSON(w, http.StatusOK, successResponse{Success: true})
	}
}

func meHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := auth.SessionFromContext(r.Context())
		if err != nil {
			respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
			return
		}

		respondJSON(w, http.StatusOK, profileResponse{
			ID:    session.ProfileID.String(),
			Name:  session.Name,
			Email: session.Email,
			Role:  session.Role.String(),
		})
	}
}
