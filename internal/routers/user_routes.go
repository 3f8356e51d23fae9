package routers

import (
	"croner/backend/internal/handlers"

	"github.com/go-chi/chi/v5"
)

func UserRoutes(r *chi.Mux, h *handlers.UsersHandler) {
	r.Route("/user", func(r chi.Router) {
		r.Post("/create", h.Create)
		r.Post("/authenticate", h.Authenticate)
		r.Get("/oneByEmail", h.FindOneByEmail)
		r.Get("/oneById", h.FindOneByID)
		r.Get("/all", h.FindAll)
		r.Put("/update", h.Update)
		r.Delete("/delete", h.Delete)
	})
}
