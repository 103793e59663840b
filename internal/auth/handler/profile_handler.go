package handler

import (
	"github.com/AnthoniusHendriyanto/shop-service/internal/auth/dto"
	"github.com/AnthoniusHendriyanto/shop-service/internal/httpx"
	"github.com/gofiber/fiber/v2"
)

func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return httpx.Error(c, h.logger, err)
	}

	profile, err := h.userService.GetProfile(c.UserContext(), userID)
	if err != nil {
		return httpx.Error(c, h.logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return httpx.Error(c, h.logger, err)
	}

	var input dto.UpdateProfileInput
	if err := httpx.Bind(c, &input); err != nil {
		return httpx.Error(c, h.logger, err)
	}

	profile, err := h.userService.UpdateProfile(c.UserContext(), userID, input)
	if err != nil {
		return httpx.Error(c, h.logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *AuthHandler) DeleteAccount(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return httpx.Error(c, h.logger, err)
	}

	if err := h.userService.DeleteAccount(c.UserContext(), userID); err != nil {
		return httpx.Error(c, h.logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: "Account deleted successfully"})
}
