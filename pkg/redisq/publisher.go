package redisq

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Publisher enqueues payloads.
type Publisher struct {
	client redis.UniversalClient
	queue  string
}

// NewPublisher creates a Publisher for queue; empty selects DefaultQueue.
func NewPublisher(client redis.UniversalClient, queue string) *Publisher {
	if queue == "" {
		queue = DefaultQueue
	}
	return &Publisher{client: client, queue: queue}
}

// Publish appends payload to the queue.
func (p *Publisher) Publish(ctx context.Context, payload []byte) error {
	if len(payload) == 0 {
		return ErrEmptyPayload
	}
	if err := p.client.LPush(ctx, p.queue, payload).Err(); err != nil {
		return errors.Join(ErrPublish, err)
	}
	return nil
}
