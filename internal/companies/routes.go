package companies

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/companies", h.List)
	r.Get("/companies/{code}", h.Show)
	r.Post("/companies", h.Create)
	r.Put("/companies/{code}", h.Update)
	r.Delete("/companies/{code}", h.Delete)
}
