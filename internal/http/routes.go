package http

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	middleware "todo-hub.com/todo-hub/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, logger *zap.Logger, metrics *middleware.Metrics, rateLimitPerMinute int) {
	e.Use(middleware.RequestLogger(logger))
	e.Use(metrics.Middleware())
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	e.POST("/todos", h.CreateTodo)
	e.GET("/todos", h.ListTodos)
	e.GET("/todos/:id", h.GetTodo)
	e.PATCH("/todos/:id", h.UpdateTodo)
	e.DELETE("/todos/:id", h.DeleteTodo)
	e.POST("/todos/:id/time", h.AddTime)
	e.PUT("/todos/:id/tags", h.ReplaceTags)

	e.GET("/todos/:id/subtasks", h.ListSubtasks)
	e.POST("/todos/:id/subtasks", h.CreateSubtask)
	e.PATCH("/subtasks/:id", h.UpdateSubtask)
	e.DELETE("/subtasks/:id", h.DeleteSubtask)

	e.GET("/todos/:id/attachments", h.ListAttachments)
	e.POST("/todos/:id/attachments", h.UploadAttachment)
	e.GET("/attachments/:id/download", h.DownloadAttachment)
	e.GET("/attachments/:id/url", h.AttachmentURL)
	e.DELETE("/attachments/:id", h.DeleteAttachment)

	e.GET("/categories", h.ListCategories)
	e.POST("/categories", h.CreateCategory)
	e.PATCH("/categories/:id", h.UpdateCategory)
	e.DELETE("/categories/:id", h.DeleteCategory)

	e.GET("/tags", h.ListTags)
	e.POST("/tags", h.CreateTag)
	e.DELETE("/tags/:id", h.DeleteTag)
}
