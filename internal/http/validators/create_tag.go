package validators

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	dto "todo-hub.com/todo-hub/internal/data_models"
)

func ValidateCreateTagRequest(r *dto.CreateTagRequest) error {
	if strings.TrimSpace(r.Name) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	return nil
}
