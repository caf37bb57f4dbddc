package model

import "time"

type Tag struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`

	Todos []Todo `gorm:"many2many:todo_tags" json:"-"`
}
