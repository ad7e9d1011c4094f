package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fintrack/expense-tracker/internal/budget/dto"
	"github.com/fintrack/expense-tracker/internal/budget/service"
	apperror "github.com/fintrack/expense-tracker/internal/errors"
	"github.com/fintrack/expense-tracker/internal/middleware"
	"github.com/fintrack/expense-tracker/internal/validation"
)

type BudgetHandler struct {
	budgetService *service.BudgetService
}

func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

func RegisterRoutes(router fiber.Router, h *BudgetHandler) {
	router.Post("/", h.Create)
	router.Get("/", h.List)
	router.Put("/:id", h.Update)
	router.Delete("/:id", h.Delete)
}

func (h *BudgetHandler) Create(c *fiber.Ctx) error {
	principal, _ := middleware.PrincipalFrom(c)

	var input dto.BudgetInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if fields := validation.Struct(input); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fields})
	}

	budget, err := h.budgetService.Create(c.UserContext(), principal.UserID, input)
	if err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{"error": apperror.Message(err)})
	}

	return c.Status(fiber.StatusCreated).JSON(budget)
}

func (h *BudgetHandler) List(c *fiber.Ctx) error {
	principal, _ := middleware.PrincipalFrom(c)

	budgets, err := h.budgetService.List(c.UserContext(), principal.UserID, c.Query("month"))
	if err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{"error": apperror.Message(err)})
	}

	return c.Status(fiber.StatusOK).JSON(budgets)
}

func (h *BudgetHandler) Update(c *fiber.Ctx) error {
	principal, _ := middleware.PrincipalFrom(c)

	var input dto.BudgetUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if fields := validation.Struct(input); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fields})
	}

	budget, err := h.budgetService.Update(c.UserContext(), principal.UserID, c.Params("id"), input)
	if err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{"error": apperror.Message(err)})
	}

	return c.Status(fiber.StatusOK).JSON(budget)
}

func (h *BudgetHandler) Delete(c *fiber.Ctx) error {
	principal, _ := middleware.PrincipalFrom(c)

	if err := h.budgetService.Delete(c.UserContext(), principal.UserID, c.Params("id")); err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{"error": apperror.Message(err)})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
