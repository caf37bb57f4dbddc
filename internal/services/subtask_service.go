package services

import (
	"context"

	model "todo-hub.com/todo-hub/internal/models"
	repository "todo-hub.com/todo-hub/internal/repositories"
)

type SubtaskService struct {
	repo  *repository.SubtaskRepository
	todos *repository.TodoRepository
}

func NewSubtaskService(repo *repository.SubtaskRepository, todos *repository.TodoRepository) *SubtaskService {
	return &SubtaskService{repo: repo, todos: todos}
}

func (s *SubtaskService) Create(ctx context.Context, todoID, title string) (*model.Subtask, error) {
	subtask := &model.Subtask{
		TodoID: todoID,
		Title:  title,
	}
	if err := s.repo.Create(ctx, subtask); err != nil {
		return nil, err
	}

	return subtask, nil
}

// List returns a todo's checklist in position order together with its
// completion stats.
func (s *SubtaskService) List(ctx context.Context, todoID string) ([]model.Subtask, model.CompletionStats, error) {
	if _, err := s.todos.FindByID(ctx, todoID); err != nil {
		return nil, model.CompletionStats{}, err
	}

	subtasks, err := s.repo.ListByTodo(ctx, todoID)
	if err != nil {
		return nil, model.CompletionStats{}, err
	}

	return subtasks, model.Completion(subtasks), nil
}

func (s *SubtaskService) Update(ctx context.Context, id string, patch model.SubtaskPatch) (*model.Subtask, error) {
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

func (s *SubtaskService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
