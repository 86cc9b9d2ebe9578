package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version", h.getBuildInfo)
	})

	// run archive, owner-scoped
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.With(h.verifySignature).Post("/api/runs", h.saveRun)
		r.With(h.verifySignature).Post("/api/runs/{runID}/episodes", h.saveEpisodes)

		r.Get("/api/runs", h.listRuns)
		r.Get("/api/runs/{runID}", h.getRun)
		r.Get("/api/runs/{runID}/episodes", h.getEpisodes)
		r.Get("/api/runs/{runID}/metrics", h.getMetrics)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
