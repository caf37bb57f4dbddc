package services

import (
	"context"
	"io"
	"time"

	model "todo-hub.com/todo-hub/internal/models"
	repository "todo-hub.com/todo-hub/internal/repositories"
	"todo-hub.com/todo-hub/internal/storage"
)

type AttachmentService struct {
	repo          *repository.AttachmentRepository
	todos         *repository.TodoRepository
	store         storage.ObjectStorage
	maxFileSizeMB int
	defaultTTL    time.Duration
}

func NewAttachmentService(
	repo *repository.AttachmentRepository,
	todos *repository.TodoRepository,
	store storage.ObjectStorage,
	maxFileSizeMB int,
	defaultTTL time.Duration,
) *AttachmentService {
	return &AttachmentService{
		repo:          repo,
		todos:         todos,
		store:         store,
		maxFileSizeMB: maxFileSizeMB,
		defaultTTL:    defaultTTL,
	}
}

// Upload validates the file, writes it to object storage, and then records
// the metadata row. Validation failures reject before any backend call.
func (s *AttachmentService) Upload(ctx context.Context, todoID, fileName string, size int64, contentType string, r io.Reader) (*model.Attachment, error) {
	if _, err := s.todos.FindByID(ctx, todoID); err != nil {
		return nil, err
	}

	if err := storage.ValidateFile(size, fileName, s.maxFileSizeMB); err != nil {
		return nil, err
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectPath := storage.ObjectPath(todoID, fileName, time.Now().UTC())
	if _, err := s.store.Upload(ctx, objectPath, r, size, contentType); err != nil {
		return nil, err
	}

	attachment := &model.Attachment{
		TodoID:   todoID,
		FileName: fileName,
		FilePath: objectPath,
		FileSize: size,
		MimeType: contentType,
	}
	if err := s.repo.Create(ctx, attachment); err != nil {
		return nil, err
	}

	return attachment, nil
}

func (s *AttachmentService) List(ctx context.Context, todoID string) ([]model.Attachment, error) {
	if _, err := s.todos.FindByID(ctx, todoID); err != nil {
		return nil, err
	}

	return s.repo.ListByTodo(ctx, todoID)
}

// Download opens the stored object for streaming back to the caller, who
// owns closing the reader.
func (s *AttachmentService) Download(ctx context.Context, id string) (*model.Attachment, io.ReadCloser, error) {
	attachment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	r, err := s.store.Download(ctx, attachment.FilePath)
	if err != nil {
		return nil, nil, err
	}

	return attachment, r, nil
}

// SignedURL issues a time-limited download link for the stored object and
// reports the effective lifetime. A non-positive ttl means the configured
// default.
func (s *AttachmentService) SignedURL(ctx context.Context, id string, ttl time.Duration) (string, time.Duration, error) {
	attachment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", 0, err
	}

	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	url, err := s.store.SignedURL(ctx, attachment.FilePath, ttl)
	if err != nil {
		return "", 0, err
	}

	return url, ttl, nil
}

// Delete removes the stored object before the metadata row; a failed
// object delete leaves the row in place so the attachment stays visible.
func (s *AttachmentService) Delete(ctx context.Context, id string) error {
	attachment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, attachment.FilePath); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}
