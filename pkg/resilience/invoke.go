package resilience

import (
	"context"

	"github.com/taskwire/taskwire/pkg/config"
)

// Invoke runs fn guarded by cb and retried per cfg. Every attempt first asks
// the breaker for admission and reports its outcome back, so consecutive
// failures across retries accumulate toward opening the circuit. A rejection
// by an open breaker aborts the retry loop immediately (ErrCircuitOpen is
// non-transient), letting the caller walk its fallback chain without waiting
// out backoff sleeps.
func Invoke[T any](ctx context.Context, cb *CircuitBreaker, cfg config.RetryConfig, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	return RetryWithResult(ctx, cfg, op, func(ctx context.Context) (T, error) {
		var zero T
		if err := cb.Allow(); err != nil {
			return zero, err
		}
		result, err := fn(ctx)
		cb.Mark(err)
		return result, err
	})
}
