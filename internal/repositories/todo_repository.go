package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"todo-hub.com/todo-hub/internal/constants"
	apperrors "todo-hub.com/todo-hub/internal/errors"
	model "todo-hub.com/todo-hub/internal/models"
)

type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) Create(ctx context.Context, todo *model.Todo) error {
	todo.ID = uuid.NewString()
	todo.CreatedAt = time.Now().UTC()
	if todo.Priority == "" {
		todo.Priority = constants.PriorityMedium
	}

	return r.db.WithContext(ctx).Create(todo).Error
}

// List fetches todos with the filter criteria pushed down to the store.
// Zero-valued criteria are omitted from the query. Category and tags come
// back in the same call.
func (r *TodoRepository) List(ctx context.Context, filter model.TodoFilter) ([]model.Todo, error) {
	query := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags")

	switch filter.Status {
	case constants.StatusActive:
		query = query.Where("completed = ?", false)
	case constants.StatusCompleted:
		query = query.Where("completed = ?", true)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}

	var todos []model.Todo
	err := query.Order("completed").Order("created_at desc").Find(&todos).Error
	return todos, err
}

func (r *TodoRepository) FindByID(ctx context.Context, id string) (*model.Todo, error) {
	var todo model.Todo
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		First(&todo, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTodoNotFound
		}
		return nil, err
	}

	return &todo, nil
}

// FindDetail join-fetches a todo together with its category, tags, ordered
// subtasks, and attachments in one call.
func (r *TodoRepository) FindDetail(ctx context.Context, id string) (*model.Todo, error) {
	var todo model.Todo
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		Preload("Subtasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Preload("Attachments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at desc")
		}).
		First(&todo, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTodoNotFound
		}
		return nil, err
	}

	return &todo, nil
}

func (r *TodoRepository) Update(ctx context.Context, id string, patch model.TodoPatch) error {
	updates := map[string]interface{}{}
	if patch.Task != nil {
		updates["task"] = *patch.Task
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Completed != nil {
		updates["completed"] = *patch.Completed
	}
	if patch.Priority != nil {
		updates["priority"] = *patch.Priority
	}
	if patch.DueDateSet {
		updates["due_date"] = patch.DueDate
	}
	if patch.CategoryIDSet {
		updates["category_id"] = patch.CategoryID
	}
	if len(updates) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).Model(&model.Todo{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTodoNotFound
	}

	return nil
}

// AddTime increments the tracked minutes atomically in the store and
// returns the new total.
func (r *TodoRepository) AddTime(ctx context.Context, id string, minutes int) (int, error) {
	res := r.db.WithContext(ctx).Model(&model.Todo{}).
		Where("id = ?", id).
		Update("time_spent_minutes", gorm.Expr("time_spent_minutes + ?", minutes))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, apperrors.ErrTodoNotFound
	}

	var todo model.Todo
	if err := r.db.WithContext(ctx).Select("time_spent_minutes").First(&todo, "id = ?", id).Error; err != nil {
		return 0, err
	}

	return todo.TimeSpentMinutes, nil
}

// ReplaceTags swaps the todo's tag assignment for the given set. An empty
// set clears the assignment. Every tag id must exist.
func (r *TodoRepository) ReplaceTags(ctx context.Context, id string, tagIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var todo model.Todo
		if err := tx.First(&todo, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTodoNotFound
			}
			return err
		}

		if len(tagIDs) == 0 {
			return tx.Model(&todo).Association("Tags").Clear()
		}

		var tags []model.Tag
		if err := tx.Find(&tags, "id IN ?", tagIDs).Error; err != nil {
			return err
		}
		if len(tags) != len(tagIDs) {
			return apperrors.ErrTagNotFound
		}

		return tx.Model(&todo).Association("Tags").Replace(&tags)
	})
}

// Delete removes the todo together with its subtasks, attachment rows, and
// tag associations in one transaction. The stored objects behind the
// attachments must already be gone; the storage service and the database
// are not transactionally linked.
func (r *TodoRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var todo model.Todo
		if err := tx.First(&todo, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTodoNotFound
			}
			return err
		}

		if err := tx.Model(&todo).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Where("todo_id = ?", id).Delete(&model.Subtask{}).Error; err != nil {
			return err
		}
		if err := tx.Where("todo_id = ?", id).Delete(&model.Attachment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&todo).Error
	})
}
