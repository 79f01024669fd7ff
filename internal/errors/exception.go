package errors

import (
	"errors"
	"net/http"
)

// Exception is an error the API boundary knows how to report: a stable
// machine-readable code plus the HTTP status class it maps to.
type Exception struct {
	Code       string
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

func Code(err error) string {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrUnknown.Code
}
