package validators

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	dto "todo-hub.com/todo-hub/internal/data_models"
)

func ValidateCreateSubtaskRequest(r *dto.CreateSubtaskRequest) error {
	if strings.TrimSpace(r.Title) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	return nil
}
