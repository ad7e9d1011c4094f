package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fintrack/expense-tracker/internal/category/dto"
	"github.com/fintrack/expense-tracker/internal/category/service"
	apperror "github.com/fintrack/expense-tracker/internal/errors"
	"github.com/fintrack/expense-tracker/internal/middleware"
	"github.com/fintrack/expense-tracker/internal/validation"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func RegisterRoutes(router fiber.Router, h *CategoryHandler) {
	router.Get("/", h.List)
	router.Post("/", h.Create)
	router.Put("/:id", h.Update)
	router.Delete("/:id", h.Delete)
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	principal, _ := middleware.PrincipalFrom(c)

	categories, err := h.categoryService.List(c.UserContext(), principal.UserID, c.Query("type"))
	if err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{"error": apperror.Message(err)})
	}

	return c.Status(fiber.StatusOK).JSON(categories)
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	principal, _ := middleware.PrincipalFrom(c)

	var input dto.CategoryInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if fields := validation.Struct(input); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fields})
	}

	category, err := h.categoryService.Create(c.UserContext(), principal.UserID, input)
	if err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{"error": apperror.Message(err)})
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	principal, _ := middleware.PrincipalFrom(c)

	var input dto.CategoryInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if fields := validation.Struct(input); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fields})
	}

	category, err := h.categoryService.Update(c.UserContext(), principal.UserID, c.Params("id"), input)
	if err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{"error": apperror.Message(err)})
	}

	return c.Status(fiber.StatusOK).JSON(category)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	principal, _ := middleware.PrincipalFrom(c)

	if err := h.categoryService.Delete(c.UserContext(), principal.UserID, c.Params("id")); err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{"error": apperror.Message(err)})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
