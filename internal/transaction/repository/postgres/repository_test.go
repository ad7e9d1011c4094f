package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/expense-tracker/internal/transaction/domain"
	repo "github.com/fintrack/expense-tracker/internal/transaction/repository/postgres"
	"github.com/fintrack/expense-tracker/pkg/constant"
)

var columns = []string{
	"id", "user_id", "category_id", "amount", "type",
	"description", "transaction_date", "created_at", "updated_at",
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id").
			WithArgs("tx-1").
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow("tx-1", "user-123", "cat-1", 42.50, constant.TypeExpense,
					"groceries", date(2026, 8, 20), time.Now(), time.Now()))

		tx, err := r.GetByID(ctx, "tx-1")
		require.NoError(t, err)
		assert.Equal(t, "user-123", tx.UserID)
		assert.Equal(t, 42.50, tx.Amount)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id").
			WithArgs("tx-1").
			WillReturnError(pgx.ErrNoRows)

		tx, err := r.GetByID(ctx, "tx-1")
		require.NoError(t, err)
		assert.Nil(t, tx)
	})
}

func TestList(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("passes filter through", func(t *testing.T) {
		start := date(2026, 8, 1)
		end := date(2026, 8, 31)
		filter := domain.Filter{
			Type:      constant.TypeExpense,
			StartDate: &start,
			EndDate:   &end,
			Limit:     20,
			Offset:    0,
		}

		mock.ExpectQuery("SELECT id, user_id").
			WithArgs("user-123", constant.TypeExpense, &start, &end, 20, 0).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow("tx-1", "user-123", "cat-1", 42.50, constant.TypeExpense,
					"groceries", date(2026, 8, 20), time.Now(), time.Now()).
				AddRow("tx-2", "user-123", "cat-1", 9.99, constant.TypeExpense,
					"coffee", date(2026, 8, 19), time.Now(), time.Now()))

		transactions, err := r.List(ctx, "user-123", filter)
		require.NoError(t, err)
		require.Len(t, transactions, 2)
		assert.Equal(t, "tx-1", transactions[0].ID)
		assert.Equal(t, "tx-2", transactions[1].ID)
	})

	t.Run("empty result", func(t *testing.T) {
		filter := domain.Filter{Limit: 20}

		mock.ExpectQuery("SELECT id, user_id").
			WithArgs("user-123", "", (*time.Time)(nil), (*time.Time)(nil), 20, 0).
			WillReturnRows(pgxmock.NewRows(columns))

		transactions, err := r.List(ctx, "user-123", filter)
		require.NoError(t, err)
		assert.Empty(t, transactions)
	})

	t.Run("query error", func(t *testing.T) {
		filter := domain.Filter{Limit: 20}

		mock.ExpectQuery("SELECT id, user_id").
			WithArgs("user-123", "", (*time.Time)(nil), (*time.Time)(nil), 20, 0).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.List(ctx, "user-123", filter)
		assert.Error(t, err)
	})
}

func TestCreateTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	tx := &domain.Transaction{
		ID:              "tx-1",
		UserID:          "user-123",
		CategoryID:      "cat-1",
		Amount:          42.50,
		Type:            constant.TypeExpense,
		Description:     "groceries",
		TransactionDate: date(2026, 8, 20),
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO transactions").
			WithArgs(tx.ID, tx.UserID, tx.CategoryID, tx.Amount, tx.Type,
				tx.Description, tx.TransactionDate, tx.CreatedAt, tx.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, r.Create(ctx, tx))
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO transactions").
			WithArgs(tx.ID, tx.UserID, tx.CategoryID, tx.Amount, tx.Type,
				tx.Description, tx.TransactionDate, tx.CreatedAt, tx.UpdatedAt).
			WillReturnError(fmt.Errorf("db error"))

		assert.Error(t, r.Create(ctx, tx))
	})
}

func TestDeleteTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)

	mock.ExpectExec("DELETE FROM transactions").
		WithArgs("tx-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, r.Delete(context.Background(), "tx-1"))
}
