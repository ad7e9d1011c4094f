package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fintrack/expense-tracker/internal/category/domain"
	"github.com/fintrack/expense-tracker/internal/category/dto"
	apperror "github.com/fintrack/expense-tracker/internal/errors"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context, userID, typeFilter string) ([]dto.CategoryOutput, error) {
	categories, err := s.repo.ListVisible(ctx, userID, typeFilter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CategoryOutput, 0, len(categories))
	for i := range categories {
		out = append(out, toOutput(&categories[i]))
	}

	return out, nil
}

func (s *CategoryService) Create(ctx context.Context, userID string, input dto.CategoryInput) (*dto.CategoryOutput, error) {
	now := time.Now()
	category := &domain.Category{
		ID:        uuid.NewString(),
		UserID:    &userID,
		Name:      input.Name,
		Type:      input.Type,
		IsDefault: false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	result := toOutput(category)

	return &result, nil
}

func (s *CategoryService) Update(ctx context.Context, userID, categoryID string, input dto.CategoryInput) (*dto.CategoryOutput, error) {
	category, err := s.ownedCategory(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	category.Name = input.Name
	category.Type = input.Type
	category.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}

	result := toOutput(category)

	return &result, nil
}

func (s *CategoryService) Delete(ctx context.Context, userID, categoryID string) error {
	if _, err := s.ownedCategory(ctx, userID, categoryID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, categoryID)
}

// ownedCategory resolves a category the user may modify. A category owned by
// someone else reads as not found so existence is not leaked.
func (s *CategoryService) ownedCategory(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	category, err := s.repo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.ErrCategoryNotFound
	}
	if category.IsDefault {
		return nil, apperror.ErrDefaultCategoryImmutable
	}
	if !category.OwnedBy(userID) {
		return nil, apperror.ErrCategoryNotFound
	}

	return category, nil
}

func toOutput(c *domain.Category) dto.CategoryOutput {
	return dto.CategoryOutput{
		ID:        c.ID,
		Name:      c.Name,
		Type:      c.Type,
		IsDefault: c.IsDefault,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
