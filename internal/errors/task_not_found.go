package errors

import "net/http"

var ErrTaskNotFound = &Exception{
	Code:       "TASK_NOT_FOUND",
	Message:    "task not found",
	StatusCode: http.StatusNotFound,
}
