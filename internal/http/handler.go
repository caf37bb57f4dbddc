package http

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "todo-hub.com/todo-hub/internal/errors"
	"todo-hub.com/todo-hub/internal/services"
)

type Handler struct {
	todos       *services.TodoService
	categories  *services.CategoryService
	tags        *services.TagService
	subtasks    *services.SubtaskService
	attachments *services.AttachmentService
	logger      *zap.Logger
}

func NewHandler(
	todos *services.TodoService,
	categories *services.CategoryService,
	tags *services.TagService,
	subtasks *services.SubtaskService,
	attachments *services.AttachmentService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		todos:       todos,
		categories:  categories,
		tags:        tags,
		subtasks:    subtasks,
		attachments: attachments,
		logger:      logger,
	}
}

// respondError maps a service error onto the HTTP response. Client errors
// carry their reason; anything else is logged here, surfaced as a generic
// failure, and the operation is abandoned.
func (h *Handler) respondError(c echo.Context, err error) error {
	code := apperrors.StatusCode(err)
	if apperrors.IsClientError(err) {
		return echo.NewHTTPError(code, err.Error())
	}

	h.logger.Error("request failed",
		zap.String("method", c.Request().Method),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return echo.NewHTTPError(code, "internal server error")
}
