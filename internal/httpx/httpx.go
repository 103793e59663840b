// Package httpx holds the fiber helpers shared by the HTTP handlers: body
// binding and conversion of service errors into JSON responses.
package httpx

import (
	autherror "github.com/AnthoniusHendriyanto/shop-service/internal/errors"
	"github.com/AnthoniusHendriyanto/shop-service/internal/logging"
	"github.com/gofiber/fiber/v2"
)

// Bind parses the request body into out. An empty body leaves out untouched.
func Bind(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return autherror.ErrInvalidInput
	}
	return nil
}

// Error writes err as {"message": ...} with the mapped status code. Errors
// that map to 500 are logged and replaced by a generic message.
func Error(c *fiber.Ctx, logger logging.Logger, err error) error {
	status, msg := autherror.HTTPStatus(err)
	if status == fiber.StatusInternalServerError {
		logger.Error(c.UserContext(), "request failed",
			"method", c.Method(),
			"path", c.Path(),
			"request_id", RequestID(c),
			"error", err,
		)
	}
	return c.Status(status).JSON(fiber.Map{"message": msg})
}

// Message writes {"message": msg} with the given status.
func Message(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"message": msg})
}

// RequestID returns the id assigned by the requestid middleware, if any.
func RequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
