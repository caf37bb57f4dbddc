package errors

import (
	"fmt"
	"net/http"
	"strings"
)

var ErrMissingExtension = &Exception{
	Message:    "file must have an extension",
	StatusCode: http.StatusBadRequest,
}

// FileTooLarge names both the actual size and the limit, in MB.
func FileTooLarge(sizeBytes int64, maxMB int) *Exception {
	return New(http.StatusBadRequest, fmt.Sprintf(
		"file size (%.1f MB) exceeds maximum allowed size (%d MB)",
		float64(sizeBytes)/(1024*1024), maxMB,
	))
}

func FileTypeNotAllowed(ext string, allowed []string) *Exception {
	return New(http.StatusBadRequest, fmt.Sprintf(
		"file type '.%s' is not allowed. Allowed types: %s",
		ext, strings.Join(allowed, ", "),
	))
}
