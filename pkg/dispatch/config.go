package dispatch

import (
	"log/slog"
	"time"
)

// DefaultDeliveryTimeout bounds a single delivery unless configured otherwise.
const DefaultDeliveryTimeout = 30 * time.Second

// Config holds engine settings read from the environment.
type Config struct {
	DeliveryTimeout time.Duration `env:"PUSH_DELIVERY_TIMEOUT" envDefault:"30s"`
	// MaxConcurrency caps deliveries awaited at once; 0 starts one per subscription.
	MaxConcurrency int `env:"PUSH_MAX_CONCURRENCY" envDefault:"0"`
}

// Option configures an Engine.
type Option func(*Engine)

// WithDeliveryTimeout sets the per-delivery deadline. Non-positive values are ignored.
func WithDeliveryTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithMaxConcurrency caps the number of deliveries awaited at once.
// Zero or negative means unbounded.
func WithMaxConcurrency(n int) Option {
	return func(e *Engine) {
		e.maxConcurrency = max(n, 0)
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}
