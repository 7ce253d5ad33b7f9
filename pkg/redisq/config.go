package redisq

import (
	"log/slog"
	"time"
)

// DefaultQueue is the list transaction events are read from.
const DefaultQueue = "transactions-queue"

// Config holds queue settings read from the environment.
type Config struct {
	Queue       string        `env:"PUSH_QUEUE_NAME" envDefault:"transactions-queue"`
	PollTimeout time.Duration `env:"PUSH_QUEUE_POLL_TIMEOUT" envDefault:"5s"`
}

// DeadLetterQueue returns the dead-letter list name for queue.
func DeadLetterQueue(queue string) string {
	return queue + ":dead"
}

// Option configures a Consumer.
type Option func(*Consumer)

// WithQueue sets the list to consume. Empty names are ignored.
func WithQueue(name string) Option {
	return func(c *Consumer) {
		if name != "" {
			c.queue = name
		}
	}
}

// WithPollTimeout sets how long a single BRPOP blocks. Shorter values make
// shutdown more responsive.
func WithPollTimeout(d time.Duration) Option {
	return func(c *Consumer) {
		if d > 0 {
			c.pollTimeout = d
		}
	}
}

// WithErrorBackoff sets the pause after a failed read.
func WithErrorBackoff(d time.Duration) Option {
	return func(c *Consumer) {
		if d > 0 {
			c.errorBackoff = d
		}
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Consumer) {
		if l != nil {
			c.logger = l
		}
	}
}
