package validators

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"todo-hub.com/todo-hub/internal/constants"
	dto "todo-hub.com/todo-hub/internal/data_models"
)

func ValidateCreateTodoRequest(r *dto.CreateTodoRequest) error {
	if strings.TrimSpace(r.Task) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task is required")
	}
	if r.Priority == "" {
		r.Priority = string(constants.PriorityMedium)
	}
	if !constants.Priority(r.Priority).Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "priority must be low, medium, or high")
	}
	return nil
}
