package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	categorydomain "github.com/fintrack/expense-tracker/internal/category/domain"
	apperror "github.com/fintrack/expense-tracker/internal/errors"
	"github.com/fintrack/expense-tracker/internal/transaction/domain"
	"github.com/fintrack/expense-tracker/internal/transaction/dto"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	dateLayout = "2006-01-02"
)

// CategoryFinder is the slice of the category repository this service needs
// to validate that a referenced category exists and is usable.
type CategoryFinder interface {
	GetByID(ctx context.Context, id string) (*categorydomain.Category, error)
}

type TransactionService struct {
	repo       domain.TransactionRepository
	categories CategoryFinder
}

func NewTransactionService(repo domain.TransactionRepository, categories CategoryFinder) *TransactionService {
	return &TransactionService{repo: repo, categories: categories}
}

func (s *TransactionService) Create(ctx context.Context, userID string, input dto.TransactionInput) (*dto.TransactionOutput, error) {
	if err := s.checkCategory(ctx, userID, input.CategoryID, input.Type); err != nil {
		return nil, err
	}

	transactionDate, err := parseDate(input.TransactionDate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	t := &domain.Transaction{
		ID:              uuid.NewString(),
		UserID:          userID,
		CategoryID:      input.CategoryID,
		Amount:          input.Amount,
		Type:            input.Type,
		Description:     input.Description,
		TransactionDate: transactionDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	result := toOutput(t)

	return &result, nil
}

func (s *TransactionService) Get(ctx context.Context, userID, transactionID string) (*dto.TransactionOutput, error) {
	t, err := s.ownedTransaction(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	result := toOutput(t)

	return &result, nil
}

func (s *TransactionService) List(ctx context.Context, userID string, query dto.ListQuery) ([]dto.TransactionOutput, error) {
	filter := domain.Filter{
		Type:   query.Type,
		Limit:  query.Limit,
		Offset: query.Offset,
	}

	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	if query.StartDate != "" {
		start, err := parseDate(query.StartDate)
		if err != nil {
			return nil, err
		}
		filter.StartDate = &start
	}
	if query.EndDate != "" {
		end, err := parseDate(query.EndDate)
		if err != nil {
			return nil, err
		}
		filter.EndDate = &end
	}

	transactions, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.TransactionOutput, 0, len(transactions))
	for i := range transactions {
		out = append(out, toOutput(&transactions[i]))
	}

	return out, nil
}

func (s *TransactionService) Update(ctx context.Context, userID, transactionID string, input dto.TransactionInput) (*dto.TransactionOutput, error) {
	t, err := s.ownedTransaction(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	if err := s.checkCategory(ctx, userID, input.CategoryID, input.Type); err != nil {
		return nil, err
	}

	transactionDate, err := parseDate(input.TransactionDate)
	if err != nil {
		return nil, err
	}

	t.CategoryID = input.CategoryID
	t.Amount = input.Amount
	t.Type = input.Type
	t.Description = input.Description
	t.TransactionDate = transactionDate
	t.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}

	result := toOutput(t)

	return &result, nil
}

func (s *TransactionService) Delete(ctx context.Context, userID, transactionID string) error {
	if _, err := s.ownedTransaction(ctx, userID, transactionID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, transactionID)
}

// ownedTransaction resolves a transaction owned by the user. Someone else's
// transaction reads as not found so existence is not leaked.
func (s *TransactionService) ownedTransaction(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	t, err := s.repo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if t == nil || t.UserID != userID {
		return nil, apperror.ErrTransactionNotFound
	}

	return t, nil
}

// checkCategory validates that the category exists, is visible to the user
// (their own or a default) and carries the same type as the transaction.
func (s *TransactionService) checkCategory(ctx context.Context, userID, categoryID, transactionType string) error {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil || !category.VisibleTo(userID) {
		return apperror.ErrCategoryNotFound
	}
	if category.Type != transactionType {
		return apperror.ErrCategoryTypeMismatch
	}

	return nil
}

// parseDate interprets an empty date as today, matching the create default.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperror.ErrInvalidDate
	}

	return parsed, nil
}

func toOutput(t *domain.Transaction) dto.TransactionOutput {
	return dto.TransactionOutput{
		ID:              t.ID,
		CategoryID:      t.CategoryID,
		Amount:          t.Amount,
		Type:            t.Type,
		Description:     t.Description,
		TransactionDate: t.TransactionDate.Format(dateLayout),
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
