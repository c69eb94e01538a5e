package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/maham-hq/maham/pkg/usecase"
	"github.com/maham-hq/maham/pkg/utils/errutil"
)

type errorResponse struct {
	Error  string `json:"error"`
	Notice string `json:"notice,omitempty"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func respondJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// respondError maps the use case error taxonomy to HTTP status codes and
// attaches a notice localized for the request's language.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := http.StatusInternalServerError
	key := "error.upstream"
	switch {
	case errors.Is(err, usecase.ErrInvalidTransition):
		statusCode = http.StatusBadRequest
		key = "error.invalidTransition"
	case errors.Is(err, usecase.ErrValidation):
		statusCode = http.StatusBadRequest
		key = "error.validation"
	case errors.Is(err, usecase.ErrNotFound):
		statusCode = http.StatusNotFound
		key = "error.notFound"
	case errors.Is(err, usecase.ErrPermission):
		statusCode = http.StatusForbidden
		key = "error.permission"
	case errors.Is(err, usecase.ErrUnauthenticated):
		statusCode = http.StatusUnauthorized
		key = "error.unauthenticated"
	}

	_ = errutil.Handle(r.Context(), err, "request failed")
	respondJSON(w, statusCode, errorResponse{
		Error:  err.Error(),
		Notice: noticeFromContext(r.Context(), key),
	})
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return goerr.Wrap(usecase.ErrValidation, "invalid request body")
	}
	return nil
}
