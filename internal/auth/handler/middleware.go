package handler

import (
	"strings"

	autherror "github.com/AnthoniusHendriyanto/shop-service/internal/errors"
	"github.com/AnthoniusHendriyanto/shop-service/internal/httpx"
	"github.com/gofiber/fiber/v2"
)

// LocalUserID is the Locals key RequireAuth stores the caller's id under.
const LocalUserID = "userID"

// RequireAuth verifies the bearer access token. A missing token is answered
// with 401, an invalid or expired one with 403.
func (h *AuthHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			h.logger.Debug(c.UserContext(), "auth rejected", "reason", "missing token", "path", c.Path())
			return httpx.Error(c, h.logger, autherror.ErrMissingToken)
		}

		claims, err := h.tokenService.VerifyAccessToken(token)
		if err != nil {
			h.logger.Info(c.UserContext(), "auth rejected", "reason", err.Error(), "path", c.Path())
			return httpx.Error(c, h.logger, err)
		}

		c.Locals(LocalUserID, claims.UserID)
		return c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func currentUserID(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals(LocalUserID).(string)
	if !ok || userID == "" {
		return "", autherror.ErrMissingToken
	}
	return userID, nil
}
