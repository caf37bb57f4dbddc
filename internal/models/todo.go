package model

import (
	"time"

	"todo-hub.com/todo-hub/internal/constants"
)

type Todo struct {
	ID               string             `gorm:"primaryKey;size:36" json:"id"`
	Task             string             `gorm:"not null" json:"task"`
	Description      string             `json:"description,omitempty"`
	Completed        bool               `gorm:"not null;default:false" json:"completed"`
	Priority         constants.Priority `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	DueDate          *time.Time         `json:"due_date,omitempty"`
	CategoryID       *string            `gorm:"size:36" json:"category_id,omitempty"`
	TimeSpentMinutes int                `gorm:"not null;default:0" json:"time_spent_minutes"`
	CreatedAt        time.Time          `json:"created_at"`

	Category    *Category    `gorm:"constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Tags        []Tag        `gorm:"many2many:todo_tags;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
	Subtasks    []Subtask    `gorm:"constraint:OnDelete:CASCADE" json:"subtasks,omitempty"`
	Attachments []Attachment `gorm:"constraint:OnDelete:CASCADE" json:"attachments,omitempty"`
}

// DueStatus classifies the due date against now. Completed state is not
// considered; callers decide whether to render a status for finished todos.
func (t *Todo) DueStatus(now time.Time) constants.DueStatus {
	if t.DueDate == nil {
		return constants.DueStatusNone
	}
	if t.DueDate.Before(now) {
		return constants.DueStatusOverdue
	}
	if t.DueDate.Sub(now) <= constants.DueSoonWindow {
		return constants.DueStatusDueSoon
	}
	return constants.DueStatusOnTrack
}

func (t *Todo) TimeSpentDisplay() string {
	return FormatTimeSpent(t.TimeSpentMinutes)
}

// TagIDs returns the ids of the todo's loaded tags.
func (t *Todo) TagIDs() []string {
	if len(t.Tags) == 0 {
		return nil
	}
	ids := make([]string, 0, len(t.Tags))
	for _, tag := range t.Tags {
		ids = append(ids, tag.ID)
	}
	return ids
}
