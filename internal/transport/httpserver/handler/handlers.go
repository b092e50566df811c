package handler

import (
	"net/http"

	clientdomain "care-app-go/internal/domain/client"
	dashboarddomain "care-app-go/internal/domain/dashboard"
	programdomain "care-app-go/internal/domain/program"
	reviewdomain "care-app-go/internal/domain/review"
	"care-app-go/internal/validation"
	"care-app-go/pkg/logger"
)

type Handlers struct {
	Programs  *programdomain.Service
	Clients   *clientdomain.Service
	Reviews   *reviewdomain.Service
	Dashboard *dashboarddomain.Service

	validate *validation.Validator
	log      logger.Logger
}

func New(
	programs *programdomain.Service,
	clients *clientdomain.Service,
	reviews *reviewdomain.Service,
	dashboard *dashboarddomain.Service,
	validate *validation.Validator,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Programs:  programs,
		Clients:   clients,
		Reviews:   reviews,
		Dashboard: dashboard,
		validate:  validate,
		log:       log,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
