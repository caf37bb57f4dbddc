package services

import (
	"context"

	"todo-hub.com/todo-hub/internal/constants"
	apperrors "todo-hub.com/todo-hub/internal/errors"
	model "todo-hub.com/todo-hub/internal/models"
	repository "todo-hub.com/todo-hub/internal/repositories"
	"todo-hub.com/todo-hub/internal/storage"
)

type TodoService struct {
	repo             *repository.TodoRepository
	categories       *repository.CategoryRepository
	attachments      *repository.AttachmentRepository
	store            storage.ObjectStorage
	defaultIncrement int
}

func NewTodoService(
	repo *repository.TodoRepository,
	categories *repository.CategoryRepository,
	attachments *repository.AttachmentRepository,
	store storage.ObjectStorage,
	defaultIncrementMinutes int,
) *TodoService {
	return &TodoService{
		repo:             repo,
		categories:       categories,
		attachments:      attachments,
		store:            store,
		defaultIncrement: defaultIncrementMinutes,
	}
}

func (s *TodoService) Create(ctx context.Context, todo *model.Todo, tagIDs []string) (*model.Todo, error) {
	if todo.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *todo.CategoryID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, todo); err != nil {
		return nil, err
	}

	if len(tagIDs) > 0 {
		if err := s.repo.ReplaceTags(ctx, todo.ID, dedupeIDs(tagIDs)); err != nil {
			return nil, err
		}
	}

	return s.repo.FindByID(ctx, todo.ID)
}

// List fetches with status/priority/category pushed down to the store,
// then refines the result client-side: free-text search, tag-set filter,
// and finally the sort comparator.
func (s *TodoService) List(ctx context.Context, filter model.TodoFilter, query string, tagIDs []string, mode constants.SortMode) ([]model.Todo, error) {
	todos, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	todos = SearchTodos(todos, query)
	todos = FilterByTags(todos, tagIDs)
	SortTodos(todos, mode)

	return todos, nil
}

func (s *TodoService) Get(ctx context.Context, id string) (*model.Todo, error) {
	return s.repo.FindDetail(ctx, id)
}

func (s *TodoService) Update(ctx context.Context, id string, patch model.TodoPatch) (*model.Todo, error) {
	if patch.Empty() {
		return s.repo.FindByID(ctx, id)
	}
	if patch.CategoryIDSet && patch.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *patch.CategoryID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

// Delete removes the todo and everything it owns. Stored objects go first:
// the storage service and the database are not transactionally linked, so
// a failed object delete aborts before any rows disappear.
func (s *TodoService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	attachments, err := s.attachments.ListByTodo(ctx, id)
	if err != nil {
		return err
	}
	for _, attachment := range attachments {
		if err := s.store.Delete(ctx, attachment.FilePath); err != nil {
			return err
		}
	}

	return s.repo.Delete(ctx, id)
}

// AddTime adds minutes to the todo's tracked time; the total never
// decreases. Zero minutes means the configured default increment.
func (s *TodoService) AddTime(ctx context.Context, id string, minutes int) (int, error) {
	if minutes < 0 {
		return 0, apperrors.ErrInvalidMinutes
	}
	if minutes == 0 {
		minutes = s.defaultIncrement
	}

	return s.repo.AddTime(ctx, id, minutes)
}

func (s *TodoService) ReplaceTags(ctx context.Context, id string, tagIDs []string) (*model.Todo, error) {
	if err := s.repo.ReplaceTags(ctx, id, dedupeIDs(tagIDs)); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
