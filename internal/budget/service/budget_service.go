package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fintrack/expense-tracker/internal/budget/domain"
	"github.com/fintrack/expense-tracker/internal/budget/dto"
	categorydomain "github.com/fintrack/expense-tracker/internal/category/domain"
	apperror "github.com/fintrack/expense-tracker/internal/errors"
)

const monthLayout = "2006-01"

type CategoryFinder interface {
	GetByID(ctx context.Context, id string) (*categorydomain.Category, error)
}

type BudgetService struct {
	repo       domain.BudgetRepository
	categories CategoryFinder
}

func NewBudgetService(repo domain.BudgetRepository, categories CategoryFinder) *BudgetService {
	return &BudgetService{repo: repo, categories: categories}
}

func (s *BudgetService) Create(ctx context.Context, userID string, input dto.BudgetInput) (*dto.BudgetOutput, error) {
	if _, err := time.Parse(monthLayout, input.Month); err != nil {
		return nil, apperror.ErrInvalidMonth
	}

	category, err := s.categories.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil || !category.VisibleTo(userID) {
		return nil, apperror.ErrCategoryNotFound
	}

	now := time.Now()
	budget := &domain.Budget{
		ID:         uuid.NewString(),
		UserID:     userID,
		CategoryID: input.CategoryID,
		Amount:     input.Amount,
		Month:      input.Month,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, budget); err != nil {
		return nil, err
	}

	result := toOutput(&domain.BudgetWithSpent{Budget: *budget})

	return &result, nil
}

// List returns the month's budgets with spent totals. An empty month defaults
// to the current one.
func (s *BudgetService) List(ctx context.Context, userID, month string) ([]dto.BudgetOutput, error) {
	if month == "" {
		month = time.Now().Format(monthLayout)
	} else if _, err := time.Parse(monthLayout, month); err != nil {
		return nil, apperror.ErrInvalidMonth
	}

	budgets, err := s.repo.ListByMonth(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BudgetOutput, 0, len(budgets))
	for i := range budgets {
		out = append(out, toOutput(&budgets[i]))
	}

	return out, nil
}

func (s *BudgetService) Update(ctx context.Context, userID, budgetID string, input dto.BudgetUpdateInput) (*dto.BudgetOutput, error) {
	budget, err := s.ownedBudget(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	budget.Amount = input.Amount
	budget.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, budget); err != nil {
		return nil, err
	}

	result := toOutput(&domain.BudgetWithSpent{Budget: *budget})

	return &result, nil
}

func (s *BudgetService) Delete(ctx context.Context, userID, budgetID string) error {
	if _, err := s.ownedBudget(ctx, userID, budgetID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, budgetID)
}

func (s *BudgetService) ownedBudget(ctx context.Context, userID, budgetID string) (*domain.Budget, error) {
	budget, err := s.repo.GetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	if budget == nil || budget.UserID != userID {
		return nil, apperror.ErrBudgetNotFound
	}

	return budget, nil
}

func toOutput(b *domain.BudgetWithSpent) dto.BudgetOutput {
	return dto.BudgetOutput{
		ID:         b.ID,
		CategoryID: b.CategoryID,
		Amount:     b.Amount,
		Month:      b.Month,
		Spent:      b.Spent,
		Remaining:  b.Amount - b.Spent,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}
