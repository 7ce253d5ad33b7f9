package redisq

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/pushfan/pkg/logger"
)

// Handler processes one payload.
type Handler func(ctx context.Context, payload []byte) error

// Consumer reads a queue sequentially until its context is canceled.
type Consumer struct {
	client       redis.UniversalClient
	handler      Handler
	queue        string
	pollTimeout  time.Duration
	errorBackoff time.Duration
	logger       *slog.Logger
}

// NewConsumer creates a Consumer.
func NewConsumer(client redis.UniversalClient, handler Handler, opts ...Option) *Consumer {
	c := &Consumer{
		client:       client,
		handler:      handler,
		queue:        DefaultQueue,
		pollTimeout:  5 * time.Second,
		errorBackoff: time.Second,
		logger:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(logger.Component("redisq"), logger.Queue(c.queue))
	return c
}

// NewConsumerFromConfig creates a Consumer using cfg; explicit opts win.
func NewConsumerFromConfig(cfg Config, client redis.UniversalClient, handler Handler, opts ...Option) *Consumer {
	base := []Option{WithQueue(cfg.Queue), WithPollTimeout(cfg.PollTimeout)}
	return NewConsumer(client, handler, append(base, opts...)...)
}

// Run returns a function suitable for errgroup. It returns nil once ctx is
// canceled; the payload being handled at that moment is finished first.
func (c *Consumer) Run(ctx context.Context) func() error {
	return func() error {
		c.logger.InfoContext(ctx, "consumer started")
		defer c.logger.InfoContext(ctx, "consumer stopped")

		for ctx.Err() == nil {
			payload, err := c.pop(ctx)
			switch {
			case errors.Is(err, redis.Nil):
				continue
			case err != nil:
				if ctx.Err() != nil {
					return nil
				}
				c.logger.WarnContext(ctx, "queue read failed", logger.Error(err))
				select {
				case <-ctx.Done():
				case <-time.After(c.errorBackoff):
				}
				continue
			}

			c.handle(ctx, payload)
		}
		return nil
	}
}

func (c *Consumer) pop(ctx context.Context) ([]byte, error) {
	res, err := c.client.BRPop(ctx, c.pollTimeout, c.queue).Result()
	if err != nil {
		return nil, err
	}
	// BRPOP replies with [key, value].
	return []byte(res[1]), nil
}

func (c *Consumer) handle(ctx context.Context, payload []byte) {
	start := time.Now()
	err := c.handler(ctx, payload)
	if err == nil {
		c.logger.DebugContext(ctx, "message handled", logger.Duration(time.Since(start)))
		return
	}

	c.logger.ErrorContext(ctx, "message handling failed", logger.Error(err))

	// The dead letter must be stored even when shutdown canceled ctx.
	dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if derr := c.client.LPush(dctx, DeadLetterQueue(c.queue), payload).Err(); derr != nil {
		c.logger.ErrorContext(ctx, "dead letter lost", logger.Error(errors.Join(ErrDeadLetter, derr)))
	}
}
