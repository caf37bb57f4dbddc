package services

import (
	"testing"
	"time"

	"todo-hub.com/todo-hub/internal/constants"
	model "todo-hub.com/todo-hub/internal/models"
)

func TestSearchTodos(t *testing.T) {
	todos := []model.Todo{
		{Task: "buy milk"},
		{Task: "write report", Description: "quarterly numbers"},
		{Task: "call plumber", Tags: []model.Tag{{ID: "t1", Name: "home"}}},
	}

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"empty query returns input unchanged", "", "buy milk,write report,call plumber"},
		{"case-insensitive task match", "MILK", "buy milk"},
		{"description match", "quarterly", "write report"},
		{"tag name match", "home", "call plumber"},
		{"no match", "garden", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := taskNames(SearchTodos(todos, tt.query))
			if got != tt.want {
				t.Errorf("got [%s], want [%s]", got, tt.want)
			}
		})
	}
}

func TestFilterByTags(t *testing.T) {
	todos := []model.Todo{
		{Task: "a", Tags: []model.Tag{{ID: "1"}, {ID: "2"}}},
		{Task: "b", Tags: []model.Tag{{ID: "3"}}},
		{Task: "c"},
	}

	tests := []struct {
		name   string
		tagIDs []string
		want   string
	}{
		{"empty selection returns input unchanged", nil, "a,b,c"},
		{"any shared tag retains", []string{"2", "3"}, "a,b"},
		{"no shared tag excludes", []string{"4", "5"}, ""},
		{"untagged todos never match", []string{"1"}, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := taskNames(FilterByTags(todos, tt.tagIDs))
			if got != tt.want {
				t.Errorf("got [%s], want [%s]", got, tt.want)
			}
		})
	}
}

func TestSortTodos_Default(t *testing.T) {
	now := time.Now().UTC()
	due := func(d time.Duration) *time.Time {
		at := now.Add(d)
		return &at
	}

	todos := []model.Todo{
		{Task: "done", Completed: true, Priority: constants.PriorityHigh},
		{Task: "low soon", Priority: constants.PriorityLow, DueDate: due(24 * time.Hour)},
		{Task: "high no due", Priority: constants.PriorityHigh},
		{Task: "high due", Priority: constants.PriorityHigh, DueDate: due(48 * time.Hour)},
		{Task: "medium", Priority: constants.PriorityMedium, DueDate: due(time.Hour)},
	}

	SortTodos(todos, constants.SortDefault)

	want := "high due,high no due,medium,low soon,done"
	if got := taskNames(todos); got != want {
		t.Errorf("got [%s], want [%s]", got, want)
	}

	// sorting an already sorted list must not reorder it
	SortTodos(todos, constants.SortDefault)
	if got := taskNames(todos); got != want {
		t.Errorf("sort is not idempotent: got [%s], want [%s]", got, want)
	}
}

func TestSortTodos_IsStable(t *testing.T) {
	todos := []model.Todo{
		{Task: "first", Priority: constants.PriorityMedium},
		{Task: "second", Priority: constants.PriorityMedium},
		{Task: "third", Priority: constants.PriorityMedium},
	}

	SortTodos(todos, constants.SortDefault)

	want := "first,second,third"
	if got := taskNames(todos); got != want {
		t.Errorf("equal todos must keep their order: got [%s], want [%s]", got, want)
	}
}

func TestSortTodos_Priority(t *testing.T) {
	later := time.Now().UTC().Add(time.Hour)
	todos := []model.Todo{
		{Task: "low", Priority: constants.PriorityLow, DueDate: &later},
		{Task: "done high", Completed: true, Priority: constants.PriorityHigh},
		{Task: "high", Priority: constants.PriorityHigh},
		{Task: "medium", Priority: constants.PriorityMedium},
	}

	SortTodos(todos, constants.SortPriority)

	want := "high,medium,low,done high"
	if got := taskNames(todos); got != want {
		t.Errorf("got [%s], want [%s]", got, want)
	}
}

func TestSortTodos_DueDate(t *testing.T) {
	now := time.Now().UTC()
	soon := now.Add(2 * time.Hour)
	later := now.Add(72 * time.Hour)

	todos := []model.Todo{
		{Task: "no due", Priority: constants.PriorityHigh},
		{Task: "later", Priority: constants.PriorityLow, DueDate: &later},
		{Task: "soon", Priority: constants.PriorityLow, DueDate: &soon},
	}

	SortTodos(todos, constants.SortDueDate)

	want := "soon,later,no due"
	if got := taskNames(todos); got != want {
		t.Errorf("missing due dates must sort last: got [%s], want [%s]", got, want)
	}
}

func TestSortTodos_Created(t *testing.T) {
	base := time.Now().UTC()
	todos := []model.Todo{
		{Task: "oldest", CreatedAt: base.Add(-2 * time.Hour), Completed: true},
		{Task: "newest", CreatedAt: base},
		{Task: "middle", CreatedAt: base.Add(-time.Hour)},
	}

	SortTodos(todos, constants.SortCreated)

	want := "newest,middle,oldest"
	if got := taskNames(todos); got != want {
		t.Errorf("got [%s], want [%s]", got, want)
	}
}
