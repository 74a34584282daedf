package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public endpoints and the JWT-guarded admin group.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public endpoints
		r.Get("/projects", handlers.publicHandler.listProjects())
		r.Post("/contact", handlers.contactHandler.submitMessage())
		r.Post("/admin/login", handlers.authHandler.login())

		// Admin endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Get("/admin/projects", handlers.projectHandler.listProjects())
			r.Post("/admin/project", handlers.projectHandler.createProject())
			r.Post("/admin/project/update", handlers.projectHandler.updateProject())
			r.Post("/admin/project/delete", handlers.projectHandler.deleteProject())
		})
	})
}
