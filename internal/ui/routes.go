package ui

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all UI routes on the given router.
func (ui *UI) RegisterRoutes(r chi.Router) {
	r.Get("/", ui.HandleWorkspace)
	r.Get("/algorithms", ui.HandleAlgorithms)

	// Form actions. Each redirects back to the workspace page.
	r.Route("/ui", func(r chi.Router) {
		r.Post("/requests", ui.HandleAddRequest)
		r.Post("/requests/{track}/delete", ui.HandleRemoveRequest)
		r.Post("/clear", ui.HandleClear)
		r.Post("/head", ui.HandleSetHead)
		r.Post("/algorithm", ui.HandleSetAlgorithm)
		r.Post("/direction", ui.HandleSetDirection)
		r.Post("/start", ui.HandleStart)
		r.Post("/stop", ui.HandleStop)
	})
}
