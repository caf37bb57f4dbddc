package model

import (
	"math"
	"time"
)

type Subtask struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	TodoID    string    `gorm:"size:36;not null;index" json:"todo_id"`
	Title     string    `gorm:"not null" json:"title"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	Position  int       `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// CompletionStats summarizes how much of a todo's checklist is done.
type CompletionStats struct {
	Total      int     `json:"total"`
	Completed  int     `json:"completed"`
	Percentage float64 `json:"percentage"`
}

// Completion computes checklist progress. The percentage is rounded half
// away from zero to one decimal; with no subtasks it stays 0.
func Completion(subtasks []Subtask) CompletionStats {
	stats := CompletionStats{Total: len(subtasks)}
	for _, s := range subtasks {
		if s.Completed {
			stats.Completed++
		}
	}
	if stats.Total == 0 {
		return stats
	}
	pct := float64(stats.Completed) / float64(stats.Total) * 100
	stats.Percentage = math.Round(pct*10) / 10
	return stats
}
