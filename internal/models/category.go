package model

import "time"

type Category struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"not null;uniqueIndex" json:"name"`
	Color     string    `gorm:"size:7;not null" json:"color"`
	CreatedAt time.Time `json:"created_at"`
}
