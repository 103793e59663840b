package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the auth and profile endpoints. RequireAuth is
// attached per route rather than per group: fiber group middleware matches
// by string prefix and would otherwise catch unrelated paths like /users.
func RegisterRoutes(app fiber.Router, h *AuthHandler) {
	requireAuth := h.RequireAuth()

	app.Post("/auth/signup", h.Signup)
	app.Post("/auth/login", h.Login)
	app.Post("/auth/logout", requireAuth, h.Logout)
	app.Post("/auth/refresh", h.Refresh)

	app.Get("/user/profile", requireAuth, h.GetProfile)
	app.Put("/user/profile", requireAuth, h.UpdateProfile)
	app.Delete("/user/account", requireAuth, h.DeleteAccount)
}
