package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/maham-hq/maham/pkg/domain/filter"
	"github.com/maham-hq/maham/pkg/domain/model"
	"github.com/maham-hq/maham/pkg/domain/types"
	"github.com/maham-hq/maham/pkg/usecase"
)

type employeeRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	JobTitle   string `json:"jobTitle"`
	AvatarURL  string `json:"avatarUrl"`
}

type employeeResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Department     string    `json:"department"`
	JobTitle       string    `json:"jobTitle"`
	AvatarURL      string    `json:"avatarUrl,omitempty"`
	TasksCount     int       `json:"tasksCount"`
	CompletedTasks int       `json:"completedTasks"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toEmployeeResponse(e *model.Employee) employeeResponse {
	return employeeResponse{
		ID:             e.ID.String(),
		Name:           e.Name,
		Email:          e.Email,
		Phone:          e.Phone,
		Department:     e.Department,
		JobTitle:       e.JobTitle,
		AvatarURL:      e.AvatarURL,
		TasksCount:     e.TasksCount,
		CompletedTasks: e.CompletedTasks,
		CreatedAt:      e.CreatedAt,
	}
}

func listEmployeesHandler(uc *usecase.EmployeeUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorFromRequest(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		query := filter.EmployeeQuery{
			Search:     r.URL.Query().Get("search"),
			Department: r.URL.Query().Get("department"),
		}

		employees, err := uc.List(r.Context(), actor, query)
		if err != nil {
			respondError(w, r, err)
			return
		}

		resp := make([]employeeResponse, len(employees))
		for i, e := range employees {
			resp[i] = toEmployeeResponse(e)
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

func createEmployeeHandler(uc *usecase.EmployeeUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorFromRequest(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		var req employeeRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}

		created, err := uc.Create(r.Context(), actor, &model.Employee{
			Name:       req.Name,
			Email:      req.Email,
			Phone:      req.Phone,
			Department: req.Department,
			JobTitle:   req.JobTitle,
			AvatarURL:  req.AvatarURL,
		})
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusCreated, toEmployeeResponse(created))
	}
}

func updateEmployeeHandler(uc *usecase.EmployeeUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorFromRequest(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		var req employeeRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}

		updated, err := uc.Update(r.Context(), actor, &model.Employee{
			ID:         types.EmployeeID(chi.URLParam(r, "id")),
			Name:       req.Name,
			Email:      req.Email,
			Phone:      req.Phone,
			Department: req.Department,
			JobTitle:   req.JobTitle,
			AvatarURL:  req.AvatarURL,
		})
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, toEmployeeResponse(updated))
	}
}

func deleteEmployeeHandler(uc *usecase.EmployeeUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorFromRequest(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		if err := uc.Delete(r.Context(), actor, types.EmployeeID(chi.URLParam(r, "id"))); err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, successResponse{Success: true})
	}
}
