package errors

import "net/http"

var ErrVersionMismatch = &Exception{
	Code:       "VERSION_MISMATCH",
	Message:    "task was modified, refetch and retry",
	StatusCode: http.StatusConflict,
}
