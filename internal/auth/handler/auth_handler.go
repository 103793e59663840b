package handler

import (
	"github.com/AnthoniusHendriyanto/shop-service/internal/auth/dto"
	"github.com/AnthoniusHendriyanto/shop-service/internal/auth/service"
	"github.com/AnthoniusHendriyanto/shop-service/internal/httpx"
	"github.com/AnthoniusHendriyanto/shop-service/internal/logging"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	userService  *service.UserService
	tokenService service.TokenGenerator
	logger       logging.Logger
}

func NewAuthHandler(userService *service.UserService, tokenService service.TokenGenerator, logger logging.Logger) *AuthHandler {
	return &AuthHandler{userService: userService, tokenService: tokenService, logger: logger}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input dto.SignupInput
	if err := httpx.Bind(c, &input); err != nil {
		return httpx.Error(c, h.logger, err)
	}

	resp, err := h.userService.Signup(c.UserContext(), input)
	if err != nil {
		return httpx.Error(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := httpx.Bind(c, &input); err != nil {
		return httpx.Error(c, h.logger, err)
	}

	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	resp, err := h.userService.Login(c.UserContext(), input)
	if err != nil {
		return httpx.Error(c, h.logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return httpx.Error(c, h.logger, err)
	}

	if err := h.userService.Logout(c.UserContext(), userID); err != nil {
		return httpx.Error(c, h.logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: "Logged out successfully"})
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := httpx.Bind(c, &input); err != nil {
		return httpx.Error(c, h.logger, err)
	}

	resp, err := h.userService.Refresh(c.UserContext(), input)
	if err != nil {
		return httpx.Error(c, h.logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
