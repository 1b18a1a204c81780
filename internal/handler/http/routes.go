package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressionLevel is the gzip level of compressed responses.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		if h.metrics != nil {
			r.Handle("/metrics", h.metrics)
		}
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth, middleware.Compress(compressionLevel, "application/json"))
		r.Post("/api/commands", h.command)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
