package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "todo-hub.com/todo-hub/internal/data_models"
	"todo-hub.com/todo-hub/internal/http/validators"
	model "todo-hub.com/todo-hub/internal/models"
)

func (h *Handler) CreateSubtask(c echo.Context) error {
	var req dto.CreateSubtaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateSubtaskRequest(&req); err != nil {
		return err
	}

	subtask, err := h.subtasks.Create(c.Request().Context(), c.Param("id"), req.Title)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, subtask)
}

func (h *Handler) ListSubtasks(c echo.Context) error {
	subtasks, completion, err := h.subtasks.List(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":      len(subtasks),
		"subtasks":   subtasks,
		"completion": completion,
	})
}

func (h *Handler) UpdateSubtask(c echo.Context) error {
	var req dto.UpdateSubtaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateSubtaskRequest(&req); err != nil {
		return err
	}

	subtask, err := h.subtasks.Update(c.Request().Context(), c.Param("id"), model.SubtaskPatch{
		Title:     req.Title,
		Completed: req.Completed,
		Position:  req.Position,
	})
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, subtask)
}

func (h *Handler) DeleteSubtask(c echo.Context) error {
	if err := h.subtasks.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
