package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "todo-hub.com/todo-hub/internal/errors"
	model "todo-hub.com/todo-hub/internal/models"
)

type SubtaskRepository struct {
	db *gorm.DB
}

func NewSubtaskRepository(db *gorm.DB) *SubtaskRepository {
	return &SubtaskRepository{db: db}
}

// Create appends the subtask to its todo's checklist: the position is
// assigned as current max + 1, starting at 0, inside the same transaction
// as the insert.
func (r *SubtaskRepository) Create(ctx context.Context, subtask *model.Subtask) error {
	subtask.ID = uuid.NewString()
	subtask.CreatedAt = time.Now().UTC()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var todo model.Todo
		if err := tx.First(&todo, "id = ?", subtask.TodoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTodoNotFound
			}
			return err
		}

		var next int
		if err := tx.Model(&model.Subtask{}).
			Where("todo_id = ?", subtask.TodoID).
			Select("COALESCE(MAX(position) + 1, 0)").
			Scan(&next).Error; err != nil {
			return err
		}
		subtask.Position = next

		return tx.Create(subtask).Error
	})
}

func (r *SubtaskRepository) ListByTodo(ctx context.Context, todoID string) ([]model.Subtask, error) {
	var subtasks []model.Subtask
	err := r.db.WithContext(ctx).
		Where("todo_id = ?", todoID).
		Order("position asc").
		Find(&subtasks).Error
	return subtasks, err
}

func (r *SubtaskRepository) FindByID(ctx context.Context, id string) (*model.Subtask, error) {
	var subtask model.Subtask
	err := r.db.WithContext(ctx).First(&subtask, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubtaskNotFound
		}
		return nil, err
	}

	return &subtask, nil
}

func (r *SubtaskRepository) Update(ctx context.Context, id string, patch model.SubtaskPatch) error {
	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Completed != nil {
		updates["completed"] = *patch.Completed
	}
	if patch.Position != nil {
		updates["position"] = *patch.Position
	}
	if len(updates) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).Model(&model.Subtask{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrSubtaskNotFound
	}

	return nil
}

func (r *SubtaskRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Subtask{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrSubtaskNotFound
	}

	return nil
}
