package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fintrack/expense-tracker/internal/transaction/domain"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DBTX
}

func NewPostgresRepository(db DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, t *domain.Transaction) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO transactions (id, user_id, category_id, amount, type, description, transaction_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, t.ID, t.UserID, t.CategoryID, t.Amount, t.Type, t.Description,
		t.TransactionDate, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `
		SELECT id, user_id, category_id, amount, type, description, transaction_date, created_at, updated_at
		FROM transactions
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	var t domain.Transaction
	err := row.Scan(&t.ID, &t.UserID, &t.CategoryID, &t.Amount, &t.Type,
		&t.Description, &t.TransactionDate, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &t, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string, filter domain.Filter) ([]domain.Transaction, error) {
	query := `
		SELECT id, user_id, category_id, amount, type, description, transaction_date, created_at, updated_at
		FROM transactions
		WHERE user_id = $1
		  AND ($2 = '' OR type = $2)
		  AND ($3::date IS NULL OR transaction_date >= $3)
		  AND ($4::date IS NULL OR transaction_date <= $4)
		ORDER BY transaction_date DESC, created_at DESC
		LIMIT $5 OFFSET $6;
	`
	rows, err := r.db.Query(ctx, query, userID, filter.Type,
		filter.StartDate, filter.EndDate, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.CategoryID, &t.Amount, &t.Type,
			&t.Description, &t.TransactionDate, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}

	return transactions, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, t *domain.Transaction) error {
	_, err := r.db.Exec(ctx, `
		UPDATE transactions
		SET category_id = $2, amount = $3, type = $4, description = $5, transaction_date = $6, updated_at = $7
		WHERE id = $1
	`, t.ID, t.CategoryID, t.Amount, t.Type, t.Description, t.TransactionDate, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return nil
}
