package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/maham-hq/maham/pkg/domain/model"
	"github.com/maham-hq/maham/pkg/domain/types"
	"github.com/maham-hq/maham/pkg/usecase"
)

type departmentRequest struct {
	Name string `json:"name"`
}

type departmentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func toDepartmentResponse(d *model.Department) departmentResponse {
	return departmentResponse{
		ID:        d.ID.String(),
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
	}
}

func listDepartmentsHandler(uc *usecase.DepartmentUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorFromRequest(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		departments, err := uc.List(r.Context(), actor)
		if err != nil {
			respondError(w, r, err)
			return
		}

		resp := make([]departmentResponse, len(departments))
		for i, d := range departments {
			resp[i] = toDepartmentResponse(d)
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

func createDepartmentHandler(uc *usecase.DepartmentUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorFromRequest(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		var req departmentRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}

		created, err := uc.Create(r.Context(), actor, req.Name)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusCreated, toDepartmentResponse(created))
	}
}

func deleteDepartmentHandler(uc *usecase.DepartmentUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorFromRequest(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		if err := uc.Delete(r.Context(), actor, types.DepartmentID(chi.URLParam(r, "id"))); err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, successResponse{Success: true})
	}
}
