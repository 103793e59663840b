package handler

import (
	"github.com/AnthoniusHendriyanto/shop-service/internal/httpx"
	"github.com/AnthoniusHendriyanto/shop-service/internal/logging"
	"github.com/AnthoniusHendriyanto/shop-service/internal/product/dto"
	"github.com/AnthoniusHendriyanto/shop-service/internal/product/service"
	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	productService *service.ProductService
	logger         logging.Logger
}

func NewProductHandler(productService *service.ProductService, logger logging.Logger) *ProductHandler {
	return &ProductHandler{productService: productService, logger: logger}
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	query := dto.ListQuery{
		Page:     c.QueryInt("page", dto.DefaultPage),
		Limit:    c.QueryInt("limit", dto.DefaultLimit),
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	resp, err := h.productService.List(c.UserContext(), query)
	if err != nil {
		return httpx.Error(c, h.logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	product, err := h.productService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return httpx.Error(c, h.logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(product)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateProductInput
	if err := httpx.Bind(c, &input); err != nil {
		return httpx.Error(c, h.logger, err)
	}

	product, err := h.productService.Create(c.UserContext(), input)
	if err != nil {
		return httpx.Error(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdateProductInput
	if err := httpx.Bind(c, &input); err != nil {
		return httpx.Error(c, h.logger, err)
	}

	product, err := h.productService.Update(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return httpx.Error(c, h.logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(product)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.productService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return httpx.Error(c, h.logger, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
