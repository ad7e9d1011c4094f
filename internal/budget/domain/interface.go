package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_budget_repository.go -package=mocks github.com/fintrack/expense-tracker/internal/budget/domain BudgetRepository

type BudgetRepository interface {
	// Create returns ErrBudgetExists when the (user, category, month) slot is
	// already taken.
	Create(ctx context.Context, budget *Budget) error
	// GetByID returns (nil, nil) when the budget does not exist.
	GetByID(ctx context.Context, id string) (*Budget, error)
	ListByMonth(ctx context.Context, userID, month string) ([]BudgetWithSpent, error)
	Update(ctx context.Context, budget *Budget) error
	Delete(ctx context.Context, id string) error
}
