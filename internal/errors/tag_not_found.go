package errors

import "net/http"

var ErrTagNotFound = &Exception{
	Message:    "tag not found",
	StatusCode: http.StatusNotFound,
}
