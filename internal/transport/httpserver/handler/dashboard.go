package handler

import (
	"net/http"

	dashboarddomain "care-app-go/internal/domain/dashboard"
)

func (h *Handlers) DashboardMetrics(w http.ResponseWriter, r *http.Request) {
	result, err := h.Dashboard.Metrics(r.Context())
	if err != nil {
		h.internalError(w, "dashboard.metrics: aggregation failed", err)
		return
	}

	writeJSON(w, http.StatusOK, toDashboardResponse(result))
}

type dashboardResponse struct {
	TotalPrograms           int64                       `json:"totalPrograms"`
	TotalClients            int64                       `json:"totalClients"`
	TotalReviews            int64                       `json:"totalReviews"`
	TopProgramsByEnrollment []programEnrollmentResponse `json:"topProgramsByEnrollment"`
}

type programEnrollmentResponse struct {
	Name         string `json:"name"`
	TotalClients int64  `json:"totalClients"`
}

func toDashboardResponse(model dashboarddomain.Metrics) dashboardResponse {
	top := make([]programEnrollmentResponse, 0, len(model.TopProgramsByEnrollment))
	for _, item := range model.TopProgramsByEnrollment {
		top = append(top, programEnrollmentResponse{
			Name:         item.Name,
			TotalClients: item.TotalClients,
		})
	}

	return dashboardResponse{
		TotalPrograms:           model.TotalPrograms,
		TotalClients:            model.TotalClients,
		TotalReviews:            model.TotalReviews,
		TopProgramsByEnrollment: top,
	}
}
