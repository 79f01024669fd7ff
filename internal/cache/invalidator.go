package cache

import "context"

// Invalidator drops the cached task-detail view after a commit changed it.
type Invalidator interface {
	InvalidateTaskDetail(ctx context.Context, taskID string) error
}
