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
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// published content is public; personal state is not
	router.Group(func(r chi.Router) {
		r.Get("/api/content/manifest", h.manifest)
		r.Get("/api/content/entities", h.entityMetas)
		r.Get("/api/content/entities/{entityID}", h.entityContent)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/player/state", h.playerState)
		r.Post("/api/player/mutations", h.applyMutation)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
