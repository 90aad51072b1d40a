package service

import (
	"context"
	"fmt"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// CategoryService handles category-related operations
type CategoryService struct {
	categoryRepo domain.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo domain.CategoryRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
	}
}

// Map returns every category as an id to label mapping
func (s *CategoryService) Map(ctx context.Context) (map[int]string, error) {
	return categoryMap(ctx, s.categoryRepo)
}

func categoryMap(ctx context.Context, repo domain.CategoryRepository) (map[int]string, error) {
	categories, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return domain.CategoryMap(categories), nil
}
