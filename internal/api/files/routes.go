package files

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers folder browsing routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/api/files", func(r chi.Router) {
		r.Get("/", h.ListRoot)
		r.Get("/{folderId}", h.ListFolder)
	})
}
