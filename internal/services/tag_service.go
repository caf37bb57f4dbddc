package services

import (
	"context"

	model "todo-hub.com/todo-hub/internal/models"
	repository "todo-hub.com/todo-hub/internal/repositories"
)

type TagService struct {
	repo *repository.TagRepository
}

func NewTagService(repo *repository.TagRepository) *TagService {
	return &TagService{repo: repo}
}

func (s *TagService) Create(ctx context.Context, name string) (*model.Tag, error) {
	tag := &model.Tag{Name: name}
	if err := s.repo.Create(ctx, tag); err != nil {
		return nil, err
	}

	return tag, nil
}

func (s *TagService) List(ctx context.Context) ([]model.Tag, error) {
	return s.repo.List(ctx)
}

// Delete removes the tag everywhere it is assigned along with the tag
// itself.
func (s *TagService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
