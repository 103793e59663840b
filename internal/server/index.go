package server

import "github.com/gofiber/fiber/v2"

func index(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "API Server Running",
		"endpoints": fiber.Map{
			"auth": fiber.Map{
				"login":   "POST /auth/login",
				"signup":  "POST /auth/signup",
				"logout":  "POST /auth/logout",
				"refresh": "POST /auth/refresh",
			},
			"user": fiber.Map{
				"profile":       "GET /user/profile",
				"updateProfile": "PUT /user/profile",
				"deleteAccount": "DELETE /user/account",
			},
			"products": fiber.Map{
				"list":   "GET /products",
				"detail": "GET /products/:id",
				"create": "POST /products",
				"update": "PUT /products/:id",
				"delete": "DELETE /products/:id",
			},
		},
	})
}
