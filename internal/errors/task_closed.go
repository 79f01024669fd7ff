package errors

import "net/http"

var ErrTaskClosed = &Exception{
	Code:       "TASK_CLOSED",
	Message:    "task is no longer accepting claims",
	StatusCode: http.StatusConflict,
}
