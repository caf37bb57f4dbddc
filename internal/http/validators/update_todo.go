package validators

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"todo-hub.com/todo-hub/internal/constants"
	dto "todo-hub.com/todo-hub/internal/data_models"
)

func ValidateUpdateTodoRequest(r *dto.UpdateTodoRequest) error {
	if r.Task == nil && r.Description == nil && r.Completed == nil &&
		r.Priority == nil && r.DueDate == nil && r.CategoryID == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no fields to update")
	}
	if r.Task != nil && strings.TrimSpace(*r.Task) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task must not be empty")
	}
	if r.Priority != nil && !constants.Priority(*r.Priority).Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "priority must be low, medium, or high")
	}
	return nil
}
