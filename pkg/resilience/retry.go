package resilience

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/taskwire/taskwire/pkg/config"
)

// Retry executes fn with exponential backoff and full jitter until it
// succeeds, returns a non-transient error, exhausts cfg.MaxAttempts, or ctx
// is cancelled.
func Retry(ctx context.Context, cfg config.RetryConfig, op string, fn func(ctx context.Context) error) error {
	_, err := RetryWithResult(ctx, cfg, op, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// RetryWithResult is Retry for functions returning a value.
func RetryWithResult[T any](ctx context.Context, cfg config.RetryConfig, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, fmt.Errorf("%s cancelled: %w", op, err)
		}

		result, err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				slog.Info("Retry succeeded", "operation", op, "attempt", attempt+1)
			}
			return result, nil
		}
		lastErr = err

		if !IsTransient(err) {
			return zero, err
		}
		if attempt == attempts-1 {
			break
		}

		delay := backoffDelay(attempt, cfg)
		slog.Debug("Transient failure, backing off",
			"operation", op,
			"attempt", attempt+1,
			"max_attempts", attempts,
			"delay", delay,
			"error", err)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return zero, fmt.Errorf("%s cancelled during backoff: %w", op, ctx.Err())
		}
	}

	return zero, fmt.Errorf("%s failed after %d attempts: %w", op, attempts, lastErr)
}

// backoffDelay computes the sleep before retry number attempt+2. The ceiling
// grows as base*expBase^attempt capped at MaxDelay; the actual delay is drawn
// uniformly from [0.1*base, ceiling] (full jitter with a floor so retries
// never stampede immediately).
func backoffDelay(attempt int, cfg config.RetryConfig) time.Duration {
	base := cfg.BaseDelay
	if base <= 0 {
		base = time.Second
	}
	expBase := cfg.ExpBase
	if expBase < 1 {
		expBase = 2
	}

	ceiling := time.Duration(float64(base) * math.Pow(expBase, float64(attempt)))
	if cfg.MaxDelay > 0 && ceiling > cfg.MaxDelay {
		ceiling = cfg.MaxDelay
	}

	floor := time.Duration(float64(base) * 0.1)
	if ceiling <= floor {
		return ceiling
	}
	return floor + rand.N(ceiling-floor)
}
