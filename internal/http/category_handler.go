package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "todo-hub.com/todo-hub/internal/data_models"
	"todo-hub.com/todo-hub/internal/http/validators"
	model "todo-hub.com/todo-hub/internal/models"
)

func (h *Handler) CreateCategory(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateCategoryRequest(&req); err != nil {
		return err
	}

	category, err := h.categories.Create(c.Request().Context(), req.Name, req.Color)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, category)
}

func (h *Handler) ListCategories(c echo.Context) error {
	categories, err := h.categories.List(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":      len(categories),
		"categories": categories,
	})
}

func (h *Handler) UpdateCategory(c echo.Context) error {
	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateCategoryRequest(&req); err != nil {
		return err
	}

	category, err := h.categories.Update(c.Request().Context(), c.Param("id"), model.CategoryPatch{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, category)
}

func (h *Handler) DeleteCategory(c echo.Context) error {
	if err := h.categories.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
