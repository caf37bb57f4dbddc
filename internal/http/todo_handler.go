package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"todo-hub.com/todo-hub/internal/constants"
	dto "todo-hub.com/todo-hub/internal/data_models"
	"todo-hub.com/todo-hub/internal/http/validators"
	model "todo-hub.com/todo-hub/internal/models"
)

func (h *Handler) CreateTodo(c echo.Context) error {
	var req dto.CreateTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTodoRequest(&req); err != nil {
		return err
	}

	dueDate, err := dto.ParseDueDate(req.DueDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	todo := &model.Todo{
		Task:        strings.TrimSpace(req.Task),
		Description: req.Description,
		Priority:    constants.Priority(req.Priority),
		DueDate:     dueDate,
	}
	if req.CategoryID != "" {
		todo.CategoryID = &req.CategoryID
	}

	created, err := h.todos.Create(c.Request().Context(), todo, req.TagIDs)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewTodoResponse(*created, time.Now().UTC()))
}

// ListTodos narrows by status/priority/category in the store query, then
// refines the fetched list with the q and tags params before sorting.
func (h *Handler) ListTodos(c echo.Context) error {
	status, ok := constants.ParseStatusFilter(c.QueryParam("status"))
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "status must be all, active, or completed")
	}

	var priority constants.Priority
	if v := c.QueryParam("priority"); v != "" && v != "all" {
		priority = constants.Priority(v)
		if !priority.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "priority must be low, medium, or high")
		}
	}

	categoryID := c.QueryParam("category_id")
	if categoryID == "all" {
		categoryID = ""
	}

	mode, ok := constants.ParseSortMode(c.QueryParam("sort"))
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "sort must be default, priority, due_date, or created")
	}

	filter := model.TodoFilter{
		Status:     status,
		Priority:   priority,
		CategoryID: categoryID,
	}

	todos, err := h.todos.List(c.Request().Context(), filter, c.QueryParam("q"), splitTagIDs(c.QueryParam("tags")), mode)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(todos),
		"todos": dto.NewTodoResponses(todos, time.Now().UTC()),
	})
}

func (h *Handler) GetTodo(c echo.Context) error {
	todo, err := h.todos.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTodoDetailResponse(*todo, time.Now().UTC()))
}

func (h *Handler) UpdateTodo(c echo.Context) error {
	var req dto.UpdateTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateTodoRequest(&req); err != nil {
		return err
	}

	patch := model.TodoPatch{
		Task:        req.Task,
		Description: req.Description,
		Completed:   req.Completed,
	}
	if req.Priority != nil {
		priority := constants.Priority(*req.Priority)
		patch.Priority = &priority
	}
	if req.DueDate != nil {
		patch.DueDateSet = true
		dueDate, err := dto.ParseDueDate(*req.DueDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		patch.DueDate = dueDate
	}
	if req.CategoryID != nil {
		patch.CategoryIDSet = true
		if *req.CategoryID != "" {
			patch.CategoryID = req.CategoryID
		}
	}

	todo, err := h.todos.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTodoResponse(*todo, time.Now().UTC()))
}

func (h *Handler) DeleteTodo(c echo.Context) error {
	if err := h.todos.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) AddTime(c echo.Context) error {
	var req dto.AddTimeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateAddTimeRequest(&req); err != nil {
		return err
	}

	minutes := 0
	if req.Minutes != nil {
		minutes = *req.Minutes
	}

	total, err := h.todos.AddTime(c.Request().Context(), c.Param("id"), minutes)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"time_spent_minutes": total,
		"time_spent_display": model.FormatTimeSpent(total),
	})
}

func (h *Handler) ReplaceTags(c echo.Context) error {
	var req dto.ReplaceTagsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	todo, err := h.todos.ReplaceTags(c.Request().Context(), c.Param("id"), req.TagIDs)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTodoResponse(*todo, time.Now().UTC()))
}

func splitTagIDs(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}

	return ids
}
