package services

import (
	"context"

	model "todo-hub.com/todo-hub/internal/models"
	repository "todo-hub.com/todo-hub/internal/repositories"
)

type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) Create(ctx context.Context, name, color string) (*model.Category, error) {
	category := &model.Category{
		Name:  name,
		Color: color,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) Update(ctx context.Context, id string, patch model.CategoryPatch) (*model.Category, error) {
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

// Delete detaches the category from its todos and removes it; the todos
// are kept.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
