package routers

import (
	"croner/backend/internal/handlers"
	"croner/backend/internal/tokens"

	"github.com/go-chi/chi/v5"
)

func TestRoutes(r *chi.Mux, h *handlers.TestsHandler, th *tokens.Handler) {
	r.Route("/test", func(r chi.Router) {
		r.With(th.Validate).Post("/create", h.Create)
		r.Get("/oneById", h.FindOneByID)
		r.Get("/all", h.FindAll)
		r.Get("/allByAdmin", h.FindAllByAdmin)
		r.Get("/allByWorkspace", h.FindAllByWorkspace)
		r.With(th.Validate).Put("/update", h.Update)
		r.With(th.Validate).Delete("/delete", h.Delete)
	})
}
