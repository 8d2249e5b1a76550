package industries

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/industries", h.List)
	r.Post("/industries", h.Create)
}
