package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Transactions *TransactionHandler
	Containers   *ContainerHandler
	Units        *UnitHandler
	Approvals    *ApprovalHandler
}

// NewRouter wires the API surface. Actor identity is required on every
// business route; /metrics and /healthz stay open for scrapers.
func NewRouter(h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Actor-ID", "X-Actor-Roles"},
		AllowCredentials: false,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ActorMiddleware)

		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", h.Transactions.Create)
			r.Get("/", h.Transactions.List)
			r.Get("/{id}", h.Transactions.Get)
			r.Patch("/{id}", h.Transactions.Update)
			r.Delete("/{id}", h.Transactions.Delete)
			r.Post("/{id}/restore", h.Transactions.Restore)
			r.Post("/{id}/approve", h.Transactions.Approve)
		})

		r.Route("/containers", func(r chi.Router) {
			r.Post("/", h.Containers.Create)
			r.Get("/", h.Containers.List)
			r.Get("/{id}", h.Containers.Get)
			r.Patch("/{id}", h.Containers.Update)
			r.Delete("/{id}", h.Containers.Retire)
			r.Get("/{id}/capacity", h.Containers.Capacity)
			r.Post("/{id}/corrections", h.Containers.Correct)
			r.Get("/{id}/corrections", h.Containers.Corrections)
		})

		r.Route("/units", func(r chi.Router) {
			r.Post("/", h.Units.Create)
			r.Get("/", h.Units.List)
			r.Get("/{id}", h.Units.Get)
			r.Patch("/{id}", h.Units.Update)
			r.Delete("/{id}", h.Units.Retire)
			r.Get("/{id}/consumption", h.Units.Consumption)
		})

		r.Route("/approval-requests", func(r chi.Router) {
			r.Post("/", h.Approvals.Create)
			r.Get("/", h.Approvals.List)
			r.Get("/{id}", h.Approvals.Get)
			r.Post("/{id}/decide", h.Approvals.Decide)
			r.Post("/{id}/cancel", h.Approvals.Cancel)
		})
	})

	return r
}
