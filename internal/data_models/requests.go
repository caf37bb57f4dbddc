package dto

import (
	"errors"
	"time"
)

type CreateTodoRequest struct {
	Task        string   `json:"task"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	DueDate     string   `json:"due_date"`
	CategoryID  string   `json:"category_id"`
	TagIDs      []string `json:"tag_ids"`
}

// UpdateTodoRequest is a partial update: nil leaves a field unchanged. For
// due_date and category_id an empty string clears the field.
type UpdateTodoRequest struct {
	Task        *string `json:"task"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"due_date"`
	CategoryID  *string `json:"category_id"`
}

type AddTimeRequest struct {
	Minutes *int `json:"minutes"`
}

type ReplaceTagsRequest struct {
	TagIDs []string `json:"tag_ids"`
}

type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

type CreateTagRequest struct {
	Name string `json:"name"`
}

type CreateSubtaskRequest struct {
	Title string `json:"title"`
}

type UpdateSubtaskRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
	Position  *int    `json:"position"`
}

var errBadDueDate = errors.New("due_date must be RFC3339 or YYYY-MM-DD")

// ParseDueDate parses a request due date; an empty value yields nil.
func ParseDueDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t, err = time.Parse("2006-01-02", value)
		if err != nil {
			return nil, errBadDueDate
		}
	}

	u := t.UTC()
	return &u, nil
}
