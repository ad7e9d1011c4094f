package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_transaction_repository.go -package=mocks github.com/fintrack/expense-tracker/internal/transaction/domain TransactionRepository

type TransactionRepository interface {
	Create(ctx context.Context, transaction *Transaction) error
	// GetByID returns (nil, nil) when the transaction does not exist.
	GetByID(ctx context.Context, id string) (*Transaction, error)
	List(ctx context.Context, userID string, filter Filter) ([]Transaction, error)
	Update(ctx context.Context, transaction *Transaction) error
	Delete(ctx context.Context, id string) error
}
