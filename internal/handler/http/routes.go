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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
	})

	// routes requiring a valid token only
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users", h.listUsers)

		r.Get("/messages/{id}", h.getMessage)
		r.Post("/messages", h.sendMessage)
		r.Post("/messages/{id}/read", h.markMessageRead)
	})

	// routes requiring the caller to own the {username} resource
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.ownUser)

		r.Get("/users/{username}", h.getUser)
		r.Get("/users/{username}/to", h.listMessagesTo)
		r.Get("/users/{username}/from", h.listMessagesFrom)
	})

	return router
}
