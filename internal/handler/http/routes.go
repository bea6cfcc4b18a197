package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressionLevel is the gzip level used for response bodies.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGzipRequest)
	router.Use(middleware.Compress(compressionLevel, "application/json", "text/plain"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/eggs", h.importEgg)
		r.Post("/api/eggs/{eggID}/variables/validate", h.validateVariables)

		r.Post("/api/servers", h.createServer)
		r.Get("/api/servers/{serverID}/startup", h.getStartup)
		r.Put("/api/servers/{serverID}/startup", h.updateStartup)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
