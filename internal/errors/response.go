package errors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// StatusCode maps a service error to the HTTP status the endpoint layer
// should return. Unknown errors map to 500 so internals never leak.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrEmailAlreadyInUse),
		errors.Is(err, ErrBudgetExists):
		return fiber.StatusConflict
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrUserNotFound):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrTransactionNotFound),
		errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrBudgetNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrCategoryTypeMismatch),
		errors.Is(err, ErrDefaultCategoryImmutable),
		errors.Is(err, ErrInvalidMonth),
		errors.Is(err, ErrInvalidDate):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// Message returns the client-visible message for an error. Anything that is
// not part of the known taxonomy is replaced with a generic message.
func Message(err error) string {
	for _, known := range []error{
		ErrEmailAlreadyInUse, ErrInvalidCredentials, ErrInvalidToken, ErrUserNotFound,
		ErrCategoryNotFound, ErrCategoryTypeMismatch, ErrDefaultCategoryImmutable,
		ErrTransactionNotFound, ErrInvalidDate, ErrBudgetNotFound, ErrBudgetExists, ErrInvalidMonth,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return "internal server error"
}
