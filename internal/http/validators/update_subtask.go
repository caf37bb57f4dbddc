package validators

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	dto "todo-hub.com/todo-hub/internal/data_models"
)

func ValidateUpdateSubtaskRequest(r *dto.UpdateSubtaskRequest) error {
	if r.Title == nil && r.Completed == nil && r.Position == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no fields to update")
	}
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title must not be empty")
	}
	if r.Position != nil && *r.Position < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "position must not be negative")
	}
	return nil
}
