package dto

import model "taskforperks.com/taskforperks/internal/models"

type TaskDetailResponse struct {
	*model.Task
	PendingClaims int64 `json:"pendingClaims"`
}
