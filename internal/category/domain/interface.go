package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_category_repository.go -package=mocks github.com/fintrack/expense-tracker/internal/category/domain CategoryRepository

type CategoryRepository interface {
	// ListVisible returns default categories plus the user's own, optionally
	// filtered by type.
	ListVisible(ctx context.Context, userID, typeFilter string) ([]Category, error)
	// GetByID returns (nil, nil) when the category does not exist.
	GetByID(ctx context.Context, id string) (*Category, error)
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id string) error
}
