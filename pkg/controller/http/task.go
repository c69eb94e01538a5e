package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/maham-hq/maham/pkg/domain/filter"
	"github.com/maham-hq/maham/pkg/domain/model"
	"github.com/maham-hq/maham/pkg/domain/policy"
	"github.com/maham-hq/maham/pkg/domain/types"
	"github.com/maham-hq/maham/pkg/usecase"
)

type taskRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"`
	AssignedTo  string    `json:"assignedTo"`
	Priority    string    `json:"priority"`
	Department  string    `json:"department"`
}

type taskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"`
	AssignedTo  string    `json:"assignedTo"`
	AssignedBy  string    `json:"assignedBy"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	Urgency     string    `json:"urgency"`
	Department  string    `json:"department,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toTaskResponse(t *model.Task, now time.Time) taskResponse {
	return taskResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Deadline:    t.Deadline,
		AssignedTo:  t.AssignedTo,
		AssignedBy:  t.AssignedBy,
		Priority:    t.Priority.String(),
		Status:      t.Status.String(),
		Urgency:     policy.DeriveUrgency(t.Deadline, t.Status, now).String(),
		Department:  t.Department,
		CreatedAt:   t.CreatedAt,
	}
}

func taskQueryFromRequest(r *http.Request) (filter.TaskQuery, error) {
	query := filter.TaskQuery{
		Search:     r.URL.Query().Get("search"),
		Department: r.URL.Query().Get("department"),
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := types.ParseTaskStatus(raw)
		if err != nil {
			return query, goerr.Wrap(usecase.ErrValidation, "invalid status filter", goerr.V("status", raw))
		}
		query.Status = status
	}
	if raw := r.URL.Query().Get("priority"); raw != "" {
		priority, err := types.ParseTaskPriority(raw)
		if err != nil {
			return query, goerr.Wrap(usecase.ErrValidation, "invalid priority filter", goerr.V("priority", raw))
		}
		query.Priority = priority
	}

	return query, nil
}

func listTasksHandler(uc *usecase.TaskUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorFromRequest(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		query, err := taskQueryFromRequest(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		tasks, err := uc.List(r.Context(), actor, query)
		if err != nil {
			respondError(w, r, err)
			return
		}

		now := time.Now()
		resp := make([]taskResponse, len(tasks))
		for i, t := range tasks {
			resp[i] = toTaskResponse(t, now)
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

func createTaskHandler(uc *usecase.TaskUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorFromRequest(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		var req taskRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}

		created, err := uc.Create(r.Context(), actor, &model.Task{
			Title:       req.Title,
			Description: req.Description,
			Deadline:    req.Deadline,
			AssignedTo:  req.AssignedTo,
			Priority:    types.TaskPriority(req.Priority),
			Department:  req.Department,
		})
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusCreated, toTaskResponse(created, time.Now()))
	}
}

func updateTaskHandler(uc *usecase.TaskUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorFromRequest(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		var req taskRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}

		updated, err := uc.Update(r.Context(), actor, &model.Task{
			ID:          types.TaskID(chi.URLParam(r, "id")),
			Title:       req.Title,
			Description: req.Description,
			Deadline:    req.Deadline,
			AssignedTo:  req.AssignedTo,
			Priority:    types.TaskPriority(req.Priority).Normalize(),
			Department:  req.Department,
		})
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, toTaskResponse(updated, time.Now()))
	}
}

func deleteTaskHandler(uc *usecase.TaskUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorFromRequest(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		if err := uc.Delete(r.Context(), actor, types.TaskID(chi.URLParam(r, "id"))); err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, successResponse{Success: true})
	}
}

type transitionRequest struct {
	Action string `json:"action"`
}

func transitionTaskHandler(uc *usecase.TaskUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorFromRequest(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		var req transitionRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}

		action, err := types.ParseTaskAction(req.Action)
		if err != nil {
			respondError(w, r, goerr.Wrap(usecase.ErrValidation, "invalid action", goerr.V("action", req.Action)))
			return
		}

		updated, err := uc.Transition(r.Context(), actor, types.TaskID(chi.URLParam(r, "id")), action)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, toTaskResponse(updated, time.Now()))
	}
}

func taskActionsHandler(uc *usecase.TaskUseCase) http.HandlerFunc {
	type actionsResponse struct {
		Actions []string `json:"actions"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorFromRequest(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		actions, err := uc.AllowedActions(r.Context(), actor, types.TaskID(chi.URLParam(r, "id")))
		if err != nil {
			respondError(w, r, err)
			return
		}

		resp := actionsResponse{Actions: make([]string, len(actions))}
		for i, action := range actions {
			resp.Actions[i] = action.String()
		}
		respondJSON(w, http.StatusOK, resp)
	}
}
