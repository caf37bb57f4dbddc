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

type AttachmentRepository struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

func (r *AttachmentRepository) Create(ctx context.Context, attachment *model.Attachment) error {
	attachment.ID = uuid.NewString()
	attachment.CreatedAt = time.Now().UTC()

	return r.db.WithContext(ctx).Create(attachment).Error
}

func (r *AttachmentRepository) ListByTodo(ctx context.Context, todoID string) ([]model.Attachment, error) {
	var attachments []model.Attachment
	err := r.db.WithContext(ctx).
		Where("todo_id = ?", todoID).
		Order("created_at desc").
		Find(&attachments).Error
	return attachments, err
}

func (r *AttachmentRepository) FindByID(ctx context.Context, id string) (*model.Attachment, error) {
	var attachment model.Attachment
	err := r.db.WithContext(ctx).First(&attachment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAttachmentNotFound
		}
		return nil, err
	}

	return &attachment, nil
}

// Delete removes the metadata row only; the caller is responsible for
// deleting the stored object first.
func (r *AttachmentRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Attachment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrAttachmentNotFound
	}

	return nil
}
