package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fintrack/expense-tracker/internal/category/domain"
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

func (r *PostgresRepository) ListVisible(ctx context.Context, userID, typeFilter string) ([]domain.Category, error) {
	query := `
		SELECT id, user_id, name, type, is_default, created_at, updated_at
		FROM categories
		WHERE (is_default = TRUE OR user_id = $1)
		  AND ($2 = '' OR type = $2)
		ORDER BY is_default DESC, name;
	`
	rows, err := r.db.Query(ctx, query, userID, typeFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Type, &c.IsDefault, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	query := `
		SELECT id, user_id, name, type, is_default, created_at, updated_at
		FROM categories
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	var c domain.Category
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Type, &c.IsDefault, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return &c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, category *domain.Category) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO categories (id, user_id, name, type, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, category.ID, category.UserID, category.Name, category.Type,
		category.IsDefault, category.CreatedAt, category.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, category *domain.Category) error {
	_, err := r.db.Exec(ctx, `
		UPDATE categories
		SET name = $2, type = $3, updated_at = $4
		WHERE id = $1
	`, category.ID, category.Name, category.Type, category.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}
