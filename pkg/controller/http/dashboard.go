package http

import (
	"net/http"
	"time"

	"github.com/maham-hq/maham/pkg/usecase"
)

type dashboardResponse struct {
	TotalTasks      int `json:"totalTasks"`
	CompletedTasks  int `json:"completedTasks"`
	InProgressTasks int `json:"inProgressTasks"`
	PendingTasks    int `json:"pendingTasks"`
	OverdueTasks    int `json:"overdueTasks"`
	Employees       int `json:"employees"`
	Departments     int `json:"departments"`
	Files           int `json:"files"`
}

func dashboardStatsHandler(uc *usecase.DashboardUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorFromRequest(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		stats, err := uc.Stats(r.Context(), actor, time.Now())
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, dashboardResponse{
			TotalTasks:      stats.TotalTasks,
			CompletedTasks:  stats.CompletedTasks,
			InProgressTasks: stats.InProgressTasks,
			PendingTasks:    stats.PendingTasks,
			OverdueTasks:    stats.OverdueTasks,
			Employees:       stats.Employees,
			Departments:     stats.Departments,
			Files:           stats.Files,
		})
	}
}
