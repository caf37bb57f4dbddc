package errors

import "net/http"

var ErrSubtaskNotFound = &Exception{
	Message:    "subtask not found",
	StatusCode: http.StatusNotFound,
}
