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

	router.Route("/passwords", func(r chi.Router) {
		r.Post("/", h.createPassword)
		r.Put("/", h.updatePassword)
		r.Get("/{title}", h.listPasswords)
		r.Get("/{title}/{username}", h.getPassword)
		r.Delete("/{title}/{username}", h.deletePassword)
	})

	router.Get("/titles/", h.listTitles)
	router.Get("/healthz", h.health)

	router.Get("/", h.index)
	router.Handle("/static/*", staticHandler())

	return router
}
