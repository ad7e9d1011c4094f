package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/fintrack/expense-tracker/internal/auth/dto"
	autherror "github.com/fintrack/expense-tracker/internal/errors"
	"github.com/fintrack/expense-tracker/internal/validation"
)

// AuthProvider is the service boundary the handler depends on.
type AuthProvider interface {
	Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthOutput, error)
	Login(ctx context.Context, input dto.LoginInput) (*dto.AuthOutput, error)
	Refresh(ctx context.Context, input dto.RefreshInput) (*dto.AuthOutput, error)
}

type AuthHandler struct {
	userService AuthProvider
}

func NewAuthHandler(userService AuthProvider) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if fields := validation.Struct(input); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fields})
	}

	out, err := h.userService.Register(c.UserContext(), input)
	if err != nil {
		return c.Status(autherror.StatusCode(err)).JSON(fiber.Map{
			"error": autherror.Message(err),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if fields := validation.Struct(input); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fields})
	}

	out, err := h.userService.Login(c.UserContext(), input)
	if err != nil {
		return c.Status(autherror.StatusCode(err)).JSON(fiber.Map{
			"error": autherror.Message(err),
		})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if fields := validation.Struct(input); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fields})
	}

	out, err := h.userService.Refresh(c.UserContext(), input)
	if err != nil {
		return c.Status(autherror.StatusCode(err)).JSON(fiber.Map{
			"error": autherror.Message(err),
		})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}
