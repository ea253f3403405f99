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

	// routes that work without an active account
	router.Group(func(r chi.Router) {
		r.Get("/api/status", h.status)
		r.Post("/api/login/token", h.loginWithToken)
	})

	// routes of the active account
	router.Group(func(r chi.Router) {
		r.Use(h.withActiveAccount)

		r.With(h.withRateLimit(h.unlockLimiter)).Post("/api/unlock", h.unlock)
		r.Post("/api/lock", h.lock)
		r.Post("/api/logout", h.logout)
		r.Get("/api/fingerprint", h.fingerprint)
		r.Post("/api/sync", h.sync)
		r.Post("/api/migrate", h.migrate)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
