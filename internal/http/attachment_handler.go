package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	dto "todo-hub.com/todo-hub/internal/data_models"
)

// UploadAttachment takes a multipart "file" part, validates it, stores the
// bytes, and records the attachment metadata.
func (h *Handler) UploadAttachment(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read uploaded file")
	}
	defer src.Close()

	attachment, err := h.attachments.Upload(
		c.Request().Context(),
		c.Param("id"),
		fileHeader.Filename,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
		src,
	)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewAttachmentResponse(*attachment))
}

func (h *Handler) ListAttachments(c echo.Context) error {
	attachments, err := h.attachments.List(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":       len(attachments),
		"attachments": dto.NewAttachmentResponses(attachments),
	})
}

// DownloadAttachment streams the stored object back under its original
// file name.
func (h *Handler) DownloadAttachment(c echo.Context) error {
	attachment, src, err := h.attachments.Download(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.respondError(c, err)
	}
	defer src.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", attachment.FileName))
	return c.Stream(http.StatusOK, attachment.MimeType, src)
}

// AttachmentURL issues a signed download link. The optional ttl query
// param is in seconds and must be positive; omitted means the configured
// default.
func (h *Handler) AttachmentURL(c echo.Context) error {
	var ttl time.Duration
	if v := c.QueryParam("ttl"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "ttl must be a positive number of seconds")
		}
		ttl = time.Duration(parsed) * time.Second
	}

	url, effectiveTTL, err := h.attachments.SignedURL(c.Request().Context(), c.Param("id"), ttl)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SignedURLResponse{
		URL:       url,
		ExpiresIn: int(effectiveTTL.Seconds()),
	})
}

func (h *Handler) DeleteAttachment(c echo.Context) error {
	if err := h.attachments.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
