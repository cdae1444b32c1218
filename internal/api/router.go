package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	// swagger docs
	_ "github.com/samandr77/microservices/certification/docs"
	"github.com/samandr77/microservices/certification/internal/entity"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Cors, mw.WithIP)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)
			r.Handle("/metrics", promhttp.Handler())
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth)

			r.Get("/me", h.Me)
			r.Get("/courses", h.ListCourses)

			r.Group(func(r chi.Router) {
				r.Use(mw.RequireRole(entity.RoleSupplier))

				r.Get("/personnel", h.ListPersonnel)
				r.With(mw.RateLimit).Post("/personnel", h.CreatePersonnel)
				r.With(mw.RateLimit).Put("/personnel/{id}", h.UpdatePersonnel)
				r.Delete("/personnel/{id}", h.DeletePersonnel)
				r.Post("/training-requests", h.SubmitTrainingRequest)
			})

			r.Group(func(r chi.Router) {
				r.Use(mw.RequireRole(entity.RoleSafety))

				r.Post("/courses", h.CreateCourse)
				r.Get("/review/queue", h.ReviewQueue)
				r.Get("/review/history", h.ReviewHistory)
				r.Post("/personnel/{id}/approve", h.ApprovePersonnel)
				r.Post("/personnel/{id}/reject", h.RejectPersonnel)
				r.Post("/personnel/{id}/training-records", h.RecordTraining)
				r.Post("/training-requests/{id}/approve", h.ApproveTrainingRequest)
				r.Post("/training-requests/{id}/reject", h.RejectTrainingRequest)
			})

			r.Group(func(r chi.Router) {
				r.Use(mw.RequireRole(entity.RoleAdmin))

				r.Get("/users/pending", h.PendingUsers)
				r.Put("/users/{id}/role", h.AssignRole)
			})
		})
	})

	return router
}
