package httpserver

import (
	"net/http"
	"time"

	"care-app-go/internal/config"
	"care-app-go/internal/observability"
	"care-app-go/internal/transport/httpserver/handler"
	appmw "care-app-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, metrics *observability.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(appmw.NewCORS(cfg.AllowedOrigins))
	r.Use(appmw.Metrics(metrics))

	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Get("/dashboard/metrics", handlers.DashboardMetrics)

		r.Get("/programs", handlers.ListPrograms)
		r.Post("/programs", handlers.CreateProgram)
		r.Get("/programs/{program_id}", handlers.GetProgram)
		r.Patch("/programs/{program_id}", handlers.UpdateProgram)
		r.Delete("/programs/{program_id}", handlers.DeleteProgram)

		r.Get("/clients", handlers.ListClients)
		r.Post("/clients", handlers.CreateClient)
		r.Get("/clients/{client_id}", handlers.GetClient)
		r.Patch("/clients/{client_id}", handlers.UpdateClient)
		r.Delete("/clients/{client_id}", handlers.DeleteClient)

		r.Get("/clients/{client_id}/reviews", handlers.ListReviews)
		r.Post("/clients/{client_id}/reviews", handlers.CreateReview)
	})

	return r
}
