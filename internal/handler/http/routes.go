package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-item-sync/internal/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, metrics.Middleware)

	router.Get("/api/version", h.getVersion)
	router.Method("GET", "/metrics", metrics.Handler())

	// sync routes
	router.Group(func(r chi.Router) {
		r.Use(withGZip, h.withHashing)

		r.Get("/api/sync/status", h.getSyncStatus)
		r.Post("/api/sync/push", h.push)
		r.Post("/api/sync/pull", h.pull)
		r.Post("/api/sync/merge", h.merge)
		r.Get("/api/sync/conflicts", h.getConflicts)
		r.Post("/api/sync/conflicts/resolve", h.resolveConflict)
	})

	router.MethodNotAllowed(hideWrongMethod(router))

	return router
}
