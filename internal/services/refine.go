package services

import (
	"sort"
	"strings"
	"time"

	"todo-hub.com/todo-hub/internal/constants"
	model "todo-hub.com/todo-hub/internal/models"
)

// Missing due dates sort after every real one.
var farFutureDue = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

// SearchTodos refines an already-fetched list with a case-insensitive
// substring match over task text, then description, then tag names; the
// first hit includes the todo. An empty query returns the input unchanged.
func SearchTodos(todos []model.Todo, query string) []model.Todo {
	if query == "" {
		return todos
	}

	q := strings.ToLower(query)
	filtered := make([]model.Todo, 0, len(todos))
	for _, todo := range todos {
		if matchesQuery(&todo, q) {
			filtered = append(filtered, todo)
		}
	}

	return filtered
}

func matchesQuery(todo *model.Todo, q string) bool {
	if strings.Contains(strings.ToLower(todo.Task), q) {
		return true
	}
	if todo.Description != "" && strings.Contains(strings.ToLower(todo.Description), q) {
		return true
	}
	for _, tag := range todo.Tags {
		if strings.Contains(strings.ToLower(tag.Name), q) {
			return true
		}
	}

	return false
}

// FilterByTags retains the todos whose tag set intersects the selection;
// any shared tag is enough. An empty selection returns the input unchanged.
func FilterByTags(todos []model.Todo, tagIDs []string) []model.Todo {
	if len(tagIDs) == 0 {
		return todos
	}

	selected := make(map[string]struct{}, len(tagIDs))
	for _, id := range tagIDs {
		selected[id] = struct{}{}
	}

	filtered := make([]model.Todo, 0, len(todos))
	for _, todo := range todos {
		for _, tag := range todo.Tags {
			if _, ok := selected[tag.ID]; ok {
				filtered = append(filtered, todo)
				break
			}
		}
	}

	return filtered
}

// SortTodos orders the list in place with a stable sort. The default mode
// puts unfinished todos first, then ranks priority high before medium
// before low, then due date ascending with missing due dates last.
func SortTodos(todos []model.Todo, mode constants.SortMode) {
	switch mode {
	case constants.SortPriority:
		sort.SliceStable(todos, func(i, j int) bool {
			if todos[i].Completed != todos[j].Completed {
				return !todos[i].Completed
			}
			return todos[i].Priority.Rank() < todos[j].Priority.Rank()
		})
	case constants.SortDueDate:
		sort.SliceStable(todos, func(i, j int) bool {
			if todos[i].Completed != todos[j].Completed {
				return !todos[i].Completed
			}
			return dueOrFarFuture(&todos[i]).Before(dueOrFarFuture(&todos[j]))
		})
	case constants.SortCreated:
		sort.SliceStable(todos, func(i, j int) bool {
			return todos[i].CreatedAt.After(todos[j].CreatedAt)
		})
	default:
		sort.SliceStable(todos, func(i, j int) bool {
			if todos[i].Completed != todos[j].Completed {
				return !todos[i].Completed
			}
			if ri, rj := todos[i].Priority.Rank(), todos[j].Priority.Rank(); ri != rj {
				return ri < rj
			}
			return dueOrFarFuture(&todos[i]).Before(dueOrFarFuture(&todos[j]))
		})
	}
}

func dueOrFarFuture(todo *model.Todo) time.Time {
	if todo.DueDate == nil {
		return farFutureDue
	}
	return *todo.DueDate
}
