package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "todo-hub.com/todo-hub/internal/data_models"
)

// ValidateAddTimeRequest allows an omitted minutes field; the service
// substitutes the configured increment for it.
func ValidateAddTimeRequest(r *dto.AddTimeRequest) error {
	if r.Minutes != nil && *r.Minutes <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "minutes must be greater than 0")
	}
	return nil
}
