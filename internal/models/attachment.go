package model

import (
	"time"

	"todo-hub.com/todo-hub/internal/constants"
)

type Attachment struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	TodoID    string    `gorm:"size:36;not null;index" json:"todo_id"`
	FileName  string    `gorm:"not null" json:"file_name"`
	FilePath  string    `gorm:"not null" json:"file_path"`
	FileSize  int64     `gorm:"not null" json:"file_size"`
	MimeType  string    `json:"mime_type"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *Attachment) SizeDisplay() string {
	return FormatFileSize(a.FileSize)
}

func (a *Attachment) Icon() string {
	return constants.FileIcon(constants.ExtensionOf(a.FileName))
}
