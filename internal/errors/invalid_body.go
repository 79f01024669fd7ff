package errors

import "net/http"

var ErrInvalidBody = &Exception{
	Code:       "INVALID_BODY",
	Message:    "invalid request body",
	StatusCode: http.StatusBadRequest,
}

// InvalidBody keeps the INVALID_BODY code while naming the exact field
// problem for the caller.
func InvalidBody(message string) *Exception {
	return &Exception{
		Code:       ErrInvalidBody.Code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}
