package errors

import (
	"errors"
)

var (
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")

	ErrCategoryNotFound         = errors.New("category not found")
	ErrCategoryTypeMismatch     = errors.New("category type does not match transaction type")
	ErrDefaultCategoryImmutable = errors.New("default categories cannot be modified")

	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidDate         = errors.New("date must be in YYYY-MM-DD format")

	ErrBudgetNotFound = errors.New("budget not found")
	ErrBudgetExists   = errors.New("budget already exists for this category and month")
	ErrInvalidMonth   = errors.New("month must be in YYYY-MM format")
)
