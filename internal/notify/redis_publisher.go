package notify

import (
	"context"
	"encoding/json"

	"github.com/redis/rueidis"
)

type RedisPublisher struct {
	client  rueidis.Client
	channel string
}

func NewRedisPublisher(client rueidis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{
		client:  client,
		channel: channel,
	}
}

func (p *RedisPublisher) PublishTaskChanged(ctx context.Context, event TaskEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	cmd := p.client.B().Publish().Channel(p.channel).Message(string(payload)).Build()
	return p.client.Do(ctx, cmd).Error()
}
