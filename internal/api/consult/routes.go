package consult

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the consultation route
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/api/consult", h.Consult)
}
