package async_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pushfan/pkg/async"
)

func TestAsync_ReturnsResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	future := async.Async(ctx, 42, func(_ context.Context, num int) (string, error) {
		time.Sleep(10 * time.Millisecond)
		return fmt.Sprintf("Number: %d", num), nil
	})

	res, err := future.Await()
	require.NoError(t, err)
	assert.Equal(t, "Number: 42", res)
}

func TestAsync_PropagatesError(t *testing.T) {
	t.Parallel()
	expected := errors.New("push service rejected")

	future := async.Async(context.Background(), 1, func(context.Context, int) (int, error) {
		return 0, expected
	})

	res, err := future.Await()
	assert.ErrorIs(t, err, expected)
	assert.Zero(t, res)
}

func TestAsync_SkipsWorkWhenContextAlreadyDone(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var called atomic.Bool
	future := async.Async(ctx, 1, func(context.Context, int) (int, error) {
		called.Store(true)
		return 1, nil
	})

	_, err := future.Await()
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called.Load())
}

func TestFuture_AwaitContext(t *testing.T) {
	t.Parallel()

	t.Run("returns context error when the computation outlives it", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)

		future := async.Async(context.Background(), 1, func(context.Context, int) (int, error) {
			<-release
			return 1, nil
		})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		start := time.Now()
		_, err := future.AwaitContext(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("returns the result when it completes first", func(t *testing.T) {
		future := async.Async(context.Background(), 7, func(_ context.Context, v int) (int, error) {
			return v * 2, nil
		})

		res, err := future.AwaitContext(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 14, res)
	})
}

func TestWaitAll_KeepsOrderAndEveryError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")

	futures := make([]*async.Future[int], 5)
	for i := range futures {
		futures[i] = async.Async(ctx, i, func(_ context.Context, v int) (int, error) {
			// Reverse completion order.
			time.Sleep(time.Duration(5-v) * 5 * time.Millisecond)
			if v == 2 {
				return 0, boom
			}
			return v * 10, nil
		})
	}

	results, errs := async.WaitAll(futures...)
	assert.Equal(t, []int{0, 10, 0, 30, 40}, results)
	require.Len(t, errs, 5)
	for i, err := range errs {
		if i == 2 {
			assert.ErrorIs(t, err, boom)
			continue
		}
		assert.NoError(t, err)
	}
}

func TestAsync_RunsConcurrently(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	start := time.Now()

	futures := make([]*async.Future[int], 10)
	for i := range futures {
		futures[i] = async.Async(ctx, i, func(_ context.Context, v int) (int, error) {
			time.Sleep(50 * time.Millisecond)
			return v, nil
		})
	}
	async.WaitAll(futures...)

	assert.Less(t, time.Since(start), 400*time.Millisecond)
}
