package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "todo-hub.com/todo-hub/internal/data_models"
	"todo-hub.com/todo-hub/internal/http/validators"
)

func (h *Handler) CreateTag(c echo.Context) error {
	var req dto.CreateTagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTagRequest(&req); err != nil {
		return err
	}

	tag, err := h.tags.Create(c.Request().Context(), req.Name)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, tag)
}

func (h *Handler) ListTags(c echo.Context) error {
	tags, err := h.tags.List(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tags),
		"tags":  tags,
	})
}

func (h *Handler) DeleteTag(c echo.Context) error {
	if err := h.tags.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
