package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fintrack/expense-tracker/internal/budget/domain"
	apperror "github.com/fintrack/expense-tracker/internal/errors"
)

const uniqueViolation = "23505"

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

func (r *PostgresRepository) Create(ctx context.Context, b *domain.Budget) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO budgets (id, user_id, category_id, amount, month, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, b.ID, b.UserID, b.CategoryID, b.Amount, b.Month, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperror.ErrBudgetExists
		}

		return fmt.Errorf("failed to create budget: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Budget, error) {
	query := `
		SELECT id, user_id, category_id, amount, month, created_at, updated_at
		FROM budgets
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	var b domain.Budget
	err := row.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Amount, &b.Month, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	return &b, nil
}

// ListByMonth returns the user's budgets for a month together with the sum of
// that month's expense transactions in each budgeted category.
func (r *PostgresRepository) ListByMonth(ctx context.Context, userID, month string) ([]domain.BudgetWithSpent, error) {
	query := `
		SELECT b.id, b.user_id, b.category_id, b.amount, b.month, b.created_at, b.updated_at,
		       COALESCE(SUM(t.amount), 0) AS spent
		FROM budgets b
		LEFT JOIN transactions t
		       ON t.user_id = b.user_id
		      AND t.category_id = b.category_id
		      AND t.type = 'EXPENSE'
		      AND to_char(t.transaction_date, 'YYYY-MM') = b.month
		WHERE b.user_id = $1 AND b.month = $2
		GROUP BY b.id, b.user_id, b.category_id, b.amount, b.month, b.created_at, b.updated_at
		ORDER BY b.created_at;
	`
	rows, err := r.db.Query(ctx, query, userID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer rows.Close()

	var budgets []domain.BudgetWithSpent
	for rows.Next() {
		var b domain.BudgetWithSpent
		if err := rows.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Amount, &b.Month,
			&b.CreatedAt, &b.UpdatedAt, &b.Spent); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}

	return budgets, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, b *domain.Budget) error {
	_, err := r.db.Exec(ctx, `
		UPDATE budgets
		SET amount = $2, updated_at = $3
		WHERE id = $1
	`, b.ID, b.Amount, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM budgets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	return nil
}
