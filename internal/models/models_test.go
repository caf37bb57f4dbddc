package model

import (
	"strings"
	"testing"
	"time"

	"todo-hub.com/todo-hub/internal/constants"
)

func TestFormatTimeSpent(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{59, "59m"},
		{60, "1h"},
		{61, "1h 1m"},
		{90, "1h 30m"},
		{120, "2h"},
		{150, "2h 30m"},
	}

	for _, tt := range tests {
		if got := FormatTimeSpent(tt.minutes); got != tt.want {
			t.Errorf("FormatTimeSpent(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}

	// hours appear iff the value reaches a full hour, and an exact hour
	// never shows a zero-minute remainder
	for _, m := range []int{1, 59, 60, 61, 119, 120, 121} {
		got := FormatTimeSpent(m)
		if hasHours := strings.Contains(got, "h"); hasHours != (m >= 60) {
			t.Errorf("FormatTimeSpent(%d) = %q: hours shown = %v", m, got, hasHours)
		}
		if strings.HasSuffix(got, " 0m") {
			t.Errorf("FormatTimeSpent(%d) = %q shows a zero-minute remainder", m, got)
		}
	}
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{24576, "24.0 KB"},
		{1048575, "1024.0 KB"},
		{1048576, "1.0 MB"},
		{1572864, "1.5 MB"},
		{10 * 1024 * 1024, "10.0 MB"},
	}

	for _, tt := range tests {
		if got := FormatFileSize(tt.bytes); got != tt.want {
			t.Errorf("FormatFileSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestTodoDueStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		due := now.Add(d)
		return &due
	}

	tests := []struct {
		name string
		due  *time.Time
		want constants.DueStatus
	}{
		{"no due date", nil, constants.DueStatusNone},
		{"one second past", at(-time.Second), constants.DueStatusOverdue},
		{"two days out", at(2 * 24 * time.Hour), constants.DueStatusDueSoon},
		{"exactly three days out", at(3 * 24 * time.Hour), constants.DueStatusDueSoon},
		{"just over three days", at(3*24*time.Hour + time.Second), constants.DueStatusOnTrack},
		{"ten days out", at(10 * 24 * time.Hour), constants.DueStatusOnTrack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todo := Todo{DueDate: tt.due}
			if got := todo.DueStatus(now); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompletion(t *testing.T) {
	checklist := func(completed, total int) []Subtask {
		subtasks := make([]Subtask, total)
		for i := range subtasks {
			subtasks[i].Completed = i < completed
		}
		return subtasks
	}

	tests := []struct {
		name       string
		subtasks   []Subtask
		total      int
		completed  int
		percentage float64
	}{
		{"no subtasks", nil, 0, 0, 0},
		{"one of three", checklist(1, 3), 3, 1, 33.3},
		{"two of three", checklist(2, 3), 3, 2, 66.7},
		{"all done", checklist(3, 3), 3, 3, 100},
		{"half rounds away from zero", checklist(1, 16), 16, 1, 6.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Completion(tt.subtasks)
			if got.Total != tt.total || got.Completed != tt.completed {
				t.Errorf("counts: got %d/%d, want %d/%d", got.Completed, got.Total, tt.completed, tt.total)
			}
			if got.Percentage != tt.percentage {
				t.Errorf("percentage: got %v, want %v", got.Percentage, tt.percentage)
			}
		})
	}
}
