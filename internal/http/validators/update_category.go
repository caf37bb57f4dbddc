package validators

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	dto "todo-hub.com/todo-hub/internal/data_models"
)

func ValidateUpdateCategoryRequest(r *dto.UpdateCategoryRequest) error {
	if r.Name == nil && r.Color == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no fields to update")
	}
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name must not be empty")
	}
	return nil
}
