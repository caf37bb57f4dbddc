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

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) Create(ctx context.Context, tag *model.Tag) error {
	tag.ID = uuid.NewString()
	tag.CreatedAt = time.Now().UTC()

	return r.db.WithContext(ctx).Create(tag).Error
}

func (r *TagRepository) List(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	err := r.db.WithContext(ctx).Order("name asc").Find(&tags).Error
	return tags, err
}

func (r *TagRepository) FindByID(ctx context.Context, id string) (*model.Tag, error) {
	var tag model.Tag
	err := r.db.WithContext(ctx).First(&tag, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTagNotFound
		}
		return nil, err
	}

	return &tag, nil
}

// Delete removes the tag and cascades removal of its join rows; the tagged
// todos themselves survive.
func (r *TagRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tag model.Tag
		if err := tx.First(&tag, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTagNotFound
			}
			return err
		}

		if err := tx.Model(&tag).Association("Todos").Clear(); err != nil {
			return err
		}

		return tx.Delete(&tag).Error
	})
}
