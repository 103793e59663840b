package handler

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the catalog. Reads are public; writes run
// requireAuth first.
func RegisterRoutes(app fiber.Router, h *ProductHandler, requireAuth fiber.Handler) {
	app.Get("/products", h.List)
	app.Get("/products/:id", h.Get)
	app.Post("/products", requireAuth, h.Create)
	app.Put("/products/:id", requireAuth, h.Update)
	app.Delete("/products/:id", requireAuth, h.Delete)
}
