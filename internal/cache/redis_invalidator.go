package cache

import (
	"context"

	"github.com/redis/rueidis"
)

type RedisInvalidator struct {
	client    rueidis.Client
	keyPrefix string
}

func NewRedisInvalidator(client rueidis.Client, keyPrefix string) *RedisInvalidator {
	return &RedisInvalidator{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (i *RedisInvalidator) InvalidateTaskDetail(ctx context.Context, taskID string) error {
	cmd := i.client.B().Del().Key(i.keyPrefix + taskID).Build()
	return i.client.Do(ctx, cmd).Error()
}
