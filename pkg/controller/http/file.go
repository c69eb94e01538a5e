package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/maham-hq/maham/pkg/domain/filter"
	"github.com/maham-hq/maham/pkg/domain/model"
	"github.com/maham-hq/maham/pkg/domain/types"
	"github.com/maham-hq/maham/pkg/usecase"
	"github.com/maham-hq/maham/pkg/utils/safe"
)

// maxUploadBytes caps multipart uploads at 32 MiB
const maxUploadBytes = 32 << 20

type fileResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	MimeCategory string    `json:"mimeCategory"`
	SizeBytes    int64     `json:"sizeBytes"`
	UploadedBy   string    `json:"uploadedBy"`
	UploadedAt   time.Time `json:"uploadedAt"`
	TaskID       string    `json:"taskId"`
	TaskTitle    string    `json:"taskTitle"`
}

func toFileResponse(f *model.FileAttachment) fileResponse {
	return fileResponse{
		ID:           f.ID.String(),
		Name:         f.Name,
		MimeCategory: f.MimeCategory.String(),
		SizeBytes:    f.SizeBytes,
		UploadedBy:   f.UploadedBy,
		UploadedAt:   f.UploadedAt,
		TaskID:       f.TaskID.String(),
		TaskTitle:    f.TaskTitle,
	}
}

func listFilesHandler(uc *usecase.FileUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorFromRequest(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		query := filter.FileQuery{
			Search:   r.URL.Query().Get("search"),
			Category: types.MimeCategory(r.URL.Query().Get("category")),
		}
		if query.Category != "" && !query.Category.IsValid() {
			respondError(w, r, goerr.Wrap(usecase.ErrValidation, "invalid category filter",
				goerr.V("category", query.Category)))
			return
		}

		files, err := uc.List(r.Context(), actor, query)
		if err != nil {
			respondError(w, r, err)
			return
		}

		resp := make([]fileResponse, len(files))
		for i, f := range files {
			resp[i] = toFileResponse(f)
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

func listTaskFilesHandler(uc *usecase.FileUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorFromRequest(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		files, err := uc.ListByTask(r.Context(), actor, types.TaskID(chi.URLParam(r, "id")))
		if err != nil {
			respondError(w, r, err)
			return
		}

		resp := make([]fileResponse, len(files))
		for i, f := range files {
			resp[i] = toFileResponse(f)
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

func uploadFileHandler(uc *usecase.FileUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorFromRequest(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			respondError(w, r, goerr.Wrap(usecase.ErrValidation, "invalid multipart form"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			respondError(w, r, goerr.Wrap(usecase.ErrValidation, "missing file part"))
			return
		}
		defer safe.Close(r.Context(), file)

		created, err := uc.Upload(r.Context(), actor, &model.FileAttachment{
			Name:         header.Filename,
			MimeCategory: types.CategorizeMime(header.Header.Get("Content-Type")),
			SizeBytes:    header.Size,
			TaskID:       types.TaskID(r.FormValue("taskId")),
		}, file)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusCreated, toFileResponse(created))
	}
}

func downloadFileHandler(uc *usecase.FileUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorFromRequest(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		file, payload, err := uc.Download(r.Context(), actor, types.FileID(chi.URLParam(r, "id")))
		if err != nil {
			respondError(w, r, err)
			return
		}
		defer safe.Close(r.Context(), payload)

		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Disposition", `attachment; filename="`+file.Name+`"`)
		if file.SizeBytes > 0 {
			w.Header().Set("Content-Length", strconv.FormatInt(file.SizeBytes, 10))
		}
		safe.Copy(r.Context(), w, payload)
	}
}

func deleteFileHandler(uc *usecase.FileUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorFromRequest(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		if err := uc.Delete(r.Context(), actor, types.FileID(chi.URLParam(r, "id"))); err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, successResponse{Success: true})
	}
}
