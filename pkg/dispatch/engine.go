package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/pushfan/pkg/async"
	"github.com/dmitrymomot/pushfan/pkg/logger"
	"github.com/dmitrymomot/pushfan/pkg/subscription"
	"github.com/dmitrymomot/pushfan/pkg/vapid"
)

// Sender delivers one encrypted message to one subscription.
// Implementations must be safe for concurrent use and should return promptly
// once ctx is done.
type Sender interface {
	Send(ctx context.Context, sub subscription.Subscription, payload []byte, creds vapid.Credentials) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, sub subscription.Subscription, payload []byte, creds vapid.Credentials) error

func (f SenderFunc) Send(ctx context.Context, sub subscription.Subscription, payload []byte, creds vapid.Credentials) error {
	return f(ctx, sub, payload, creds)
}

// Snapshotter provides the subscriptions to dispatch to.
type Snapshotter interface {
	Snapshot() []subscription.Subscription
}

// Engine runs dispatches. It holds no per-dispatch state and is safe for
// concurrent use.
type Engine struct {
	source         Snapshotter
	sender         Sender
	timeout        time.Duration
	maxConcurrency int
	logger         *slog.Logger
}

// NewEngine creates an Engine.
func NewEngine(source Snapshotter, sender Sender, opts ...Option) *Engine {
	e := &Engine{
		source:  source,
		sender:  sender,
		timeout: DefaultDeliveryTimeout,
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With(logger.Component("dispatch"))
	return e
}

// NewEngineFromConfig creates an Engine using cfg; explicit opts win.
func NewEngineFromConfig(cfg Config, source Snapshotter, sender Sender, opts ...Option) *Engine {
	base := []Option{
		WithDeliveryTimeout(cfg.DeliveryTimeout),
		WithMaxConcurrency(cfg.MaxConcurrency),
	}
	return NewEngine(source, sender, append(base, opts...)...)
}

// Dispatch sends payload to every subscription present when it is called.
// The only error it returns is a missing-credentials error, in which case
// nothing is sent. Delivery failures are reported in the Report.
func (e *Engine) Dispatch(ctx context.Context, payload []byte, creds vapid.Credentials) (Report, error) {
	if err := creds.Validate(); err != nil {
		e.logger.ErrorContext(ctx, "dispatch skipped", logger.Error(err))
		return Report{}, err
	}

	id := uuid.New()
	ctx = context.WithValue(ctx, contextKey{}, id)
	log := e.logger.With(logger.DispatchID(id.String()))

	subs := e.source.Snapshot()
	report := Report{
		ID:        id,
		Attempted: len(subs),
		Outcomes:  make([]Outcome, len(subs)),
		StartedAt: time.Now(),
	}

	var slots chan struct{}
	if e.maxConcurrency > 0 {
		slots = make(chan struct{}, e.maxConcurrency)
	}

	futures := make([]*async.Future[time.Duration], len(subs))
	for i, sub := range subs {
		futures[i] = async.Async(ctx, sub, func(ctx context.Context, sub subscription.Subscription) (time.Duration, error) {
			return e.deliver(ctx, slots, sub, payload, creds)
		})
	}

	durations, errs := async.WaitAll(futures...)
	for i, sub := range subs {
		out := Outcome{
			Index:    i,
			Endpoint: sub.Endpoint,
			Status:   StatusDelivered,
			Duration: durations[i],
		}
		if err := errs[i]; err != nil {
			// Deliveries that never started carry the bare context error.
			if ctx.Err() != nil && isContextError(err) && !errors.Is(err, ErrDeliveryCanceled) {
				err = fmt.Errorf("%w: %w", ErrDeliveryCanceled, err)
			}
			out.Status = StatusFailed
			out.Err = &DeliveryError{Endpoint: sub.Endpoint, Err: err}
			report.Failed++
			log.WarnContext(ctx, "delivery failed",
				logger.Endpoint(sub.Endpoint),
				logger.Count("index", i),
				logger.Duration(out.Duration),
				logger.Error(err),
			)
		} else {
			report.Delivered++
		}
		report.Outcomes[i] = out
	}
	report.Duration = time.Since(report.StartedAt)

	log.InfoContext(ctx, "dispatch completed",
		logger.Count("attempted", report.Attempted),
		logger.Count("delivered", report.Delivered),
		logger.Count("failed", report.Failed),
		logger.Duration(report.Duration),
	)

	return report, nil
}

// deliver waits for a concurrency slot, then runs one send under its own
// deadline. The send runs in a separate goroutine so a sender that ignores
// its context cannot hold the dispatch past the deadline.
func (e *Engine) deliver(ctx context.Context, slots chan struct{}, sub subscription.Subscription, payload []byte, creds vapid.Credentials) (time.Duration, error) {
	if slots != nil {
		select {
		case slots <- struct{}{}:
			defer func() { <-slots }()
		case <-ctx.Done():
			return 0, fmt.Errorf("%w: %w", ErrDeliveryCanceled, ctx.Err())
		}
	}

	start := time.Now()
	dctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	send := async.Async(dctx, sub, func(ctx context.Context, sub subscription.Subscription) (struct{}, error) {
		return struct{}{}, e.sender.Send(ctx, sub, payload, creds)
	})
	_, err := send.AwaitContext(dctx)
	elapsed := time.Since(start)

	switch {
	case err == nil:
		return elapsed, nil
	case ctx.Err() != nil && isContextError(err):
		return elapsed, fmt.Errorf("%w: %w", ErrDeliveryCanceled, err)
	case errors.Is(dctx.Err(), context.DeadlineExceeded) && isContextError(err):
		return elapsed, fmt.Errorf("%w after %s", ErrDeliveryTimeout, e.timeout)
	default:
		return elapsed, err
	}
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
