package errors

import "net/http"

var ErrUnknown = &Exception{
	Code:       "UNKNOWN_ERROR",
	Message:    "internal server error",
	StatusCode: http.StatusInternalServerError,
}
