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
	router.Use(h.withBodyLimit)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes requiring a Bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/me", h.getProfile)
		r.Put("/api/users/me", h.updateProfile)

		r.Get("/api/leaderboard", h.leaderboard)

		r.Get("/api/messages", h.getMessages)
		r.Post("/api/messages", h.sendMessage)
	})

	return router
}
