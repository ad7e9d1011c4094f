package handler

import (
	"github.com/gofiber/fiber/v2"

	apperror "github.com/fintrack/expense-tracker/internal/errors"
	"github.com/fintrack/expense-tracker/internal/middleware"
	"github.com/fintrack/expense-tracker/internal/transaction/dto"
	"github.com/fintrack/expense-tracker/internal/transaction/service"
	"github.com/fintrack/expense-tracker/internal/validation"
)

type TransactionHandler struct {
	transactionService *service.TransactionService
}

func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

func RegisterRoutes(router fiber.Router, h *TransactionHandler) {
	router.Post("/", h.Create)
	router.Get("/", h.List)
	router.Get("/:id", h.Get)
	router.Put("/:id", h.Update)
	router.Delete("/:id", h.Delete)
}

func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	principal, _ := middleware.PrincipalFrom(c)

	var input dto.TransactionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if fields := validation.Struct(input); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fields})
	}

	transaction, err := h.transactionService.Create(c.UserContext(), principal.UserID, input)
	if err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{"error": apperror.Message(err)})
	}

	return c.Status(fiber.StatusCreated).JSON(transaction)
}

func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	principal, _ := middleware.PrincipalFrom(c)

	transaction, err := h.transactionService.Get(c.UserContext(), principal.UserID, c.Params("id"))
	if err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{"error": apperror.Message(err)})
	}

	return c.Status(fiber.StatusOK).JSON(transaction)
}

func (h *TransactionHandler) List(c *fiber.Ctx) error {
	principal, _ := middleware.PrincipalFrom(c)

	var query dto.ListQuery
	if err := c.QueryParser(&query); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid query"})
	}

	transactions, err := h.transactionService.List(c.UserContext(), principal.UserID, query)
	if err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{"error": apperror.Message(err)})
	}

	return c.Status(fiber.StatusOK).JSON(transactions)
}

func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	principal, _ := middleware.PrincipalFrom(c)

	var input dto.TransactionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if fields := validation.Struct(input); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fields})
	}

	transaction, err := h.transactionService.Update(c.UserContext(), principal.UserID, c.Params("id"), input)
	if err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{"error": apperror.Message(err)})
	}

	return c.Status(fiber.StatusOK).JSON(transaction)
}

func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	principal, _ := middleware.PrincipalFrom(c)

	if err := h.transactionService.Delete(c.UserContext(), principal.UserID, c.Params("id")); err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{"error": apperror.Message(err)})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
