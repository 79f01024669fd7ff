package errors

import "net/http"

var ErrMaxClaimsReached = &Exception{
	Code:       "MAX_CLAIMS_REACHED",
	Message:    "task has reached its claim limit",
	StatusCode: http.StatusConflict,
}
