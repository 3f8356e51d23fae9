package routers

import (
	"croner/backend/internal/handlers"

	"github.com/go-chi/chi/v5"
)

func InvitationRoutes(r *chi.Mux, h *handlers.InvitationsHandler) {
	r.Route("/invitation", func(r chi.Router) {
		r.Post("/create", h.Create)
		r.Get("/oneById", h.FindOneByID)
		r.Get("/all", h.FindAll)
		r.Get("/allByGuest", h.FindAllByGuest)
		r.Get("/allByItem", h.FindAllByItem)
		r.Get("/allByAdmin", h.FindAllByAdmin)
		r.Put("/update", h.Update)
		r.Delete("/delete", h.Delete)
	})
}
