package model

import (
	"time"

	"todo-hub.com/todo-hub/internal/constants"
)

// TodoFilter holds the criteria pushed down to the backend query. Zero
// values mean the constraint is not applied. It lives in model for reuse by
// repository, service, and http layers.
type TodoFilter struct {
	Status     constants.StatusFilter
	Priority   constants.Priority // empty = all priorities
	CategoryID string             // empty = all categories
}

// TodoPatch carries a partial todo update. Nil pointers leave the field
// unchanged; DueDateSet/CategoryIDSet distinguish "clear" from "absent".
type TodoPatch struct {
	Task        *string
	Description *string
	Completed   *bool
	Priority    *constants.Priority

	DueDate    *time.Time
	DueDateSet bool

	CategoryID    *string
	CategoryIDSet bool
}

func (p TodoPatch) Empty() bool {
	return p.Task == nil && p.Description == nil && p.Completed == nil &&
		p.Priority == nil && !p.DueDateSet && !p.CategoryIDSet
}

// SubtaskPatch carries a partial subtask update.
type SubtaskPatch struct {
	Title     *string
	Completed *bool
	Position  *int
}

func (p SubtaskPatch) Empty() bool {
	return p.Title == nil && p.Completed == nil && p.Position == nil
}

// CategoryPatch carries a partial category update.
type CategoryPatch struct {
	Name  *string
	Color *string
}

func (p CategoryPatch) Empty() bool {
	return p.Name == nil && p.Color == nil
}
