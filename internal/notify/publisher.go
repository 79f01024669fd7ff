package notify

import "context"

// TaskEvent is what downstream consumers (live dashboards) receive on the
// task-change channel.
type TaskEvent struct {
	TaskID string `json:"taskId"`
	Event  string `json:"event"`
}

const (
	EventClaimCreated  = "claim.created"
	EventClaimsExpired = "claims.expired"
)

type Publisher interface {
	PublishTaskChanged(ctx context.Context, event TaskEvent) error
}
