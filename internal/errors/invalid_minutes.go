package errors

import "net/http"

var ErrInvalidMinutes = &Exception{
	Message:    "minutes must be greater than 0",
	StatusCode: http.StatusBadRequest,
}
