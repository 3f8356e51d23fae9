package routers

import (
	"croner/backend/internal/handlers"
	"croner/backend/internal/tokens"

	"github.com/go-chi/chi/v5"
)

func WorkspaceRoutes(r *chi.Mux, h *handlers.WorkspacesHandler, th *tokens.Handler) {
	r.Route("/workspace", func(r chi.Router) {
		r.Post("/create", h.Create)
		r.Get("/oneById", h.FindOneByID)
		r.Get("/oneByName", h.FindOneByName)
		r.Get("/all", h.FindAll)
		r.Get("/allByAdmin", h.FindAllByAdmin)
		r.With(th.Validate).Put("/update", h.Update)
		r.With(th.Validate).Delete("/delete", h.Delete)
	})
}
