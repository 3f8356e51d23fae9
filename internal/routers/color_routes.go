package routers

import (
	"croner/backend/internal/handlers"

	"github.com/go-chi/chi/v5"
)

func ColorRoutes(r *chi.Mux, h *handlers.ColorsHandler) {
	r.Route("/color", func(r chi.Router) {
		r.Post("/create", h.Create)
		r.Get("/oneById", h.FindOneByID)
		r.Get("/oneByHex", h.FindOneByHex)
		r.Get("/all", h.FindAll)
		r.Get("/allByWorkspace", h.FindAllByWorkspace)
		r.Put("/update", h.Update)
		r.Delete("/delete", h.Delete)
	})
}
