package server

import (
	"time"

	"github.com/AnthoniusHendriyanto/shop-service/internal/httpx"
	"github.com/gofiber/fiber/v2"
)

// requestLogger logs one line per request. Errors from further down the
// chain are resolved through the app error handler first so the logged
// status matches the response.
func (s *Server) requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		args := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"request_id", httpx.RequestID(c),
			"ip", c.IP(),
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			s.logger.Error(c.UserContext(), "request", args...)
		case status >= fiber.StatusBadRequest:
			s.logger.Warn(c.UserContext(), "request", args...)
		default:
			s.logger.Info(c.UserContext(), "request", args...)
		}
		return nil
	}
}
