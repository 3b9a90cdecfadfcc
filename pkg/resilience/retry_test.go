package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/pkg/config"
)

// fastRetry keeps test backoffs in the microsecond range.
func fastRetry(attempts int) config.RetryConfig {
	return config.RetryConfig{
		MaxAttempts: attempts,
		BaseDelay:   time.Microsecond,
		MaxDelay:    time.Millisecond,
		ExpBase:     2,
	}
}

func TestRetry_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), fastRetry(3), "test op", func(ctx context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetry_RecoversFromTransientFailure(t *testing.T) {
	calls := 0
	result, err := RetryWithResult(context.Background(), fastRetry(3), "test op", func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", NewTransientError(errors.New("blip"), "")
		}
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 3, calls)
}

func TestRetry_StopsOnPermanentError(t *testing.T) {
	calls := 0
	permErr := NewPermanentError(errors.New("bad request"), "")
	err := Retry(context.Background(), fastRetry(5), "test op", func(ctx context.Context) error {
		calls++
		return permErr
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls, "permanent errors must not be retried")

	var permanent *PermanentError
	assert.ErrorAs(t, err, &permanent)
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), fastRetry(4), "test op", func(ctx context.Context) error {
		calls++
		return NewTransientError(errors.New("still down"), "")
	})
	require.Error(t, err)
	assert.Equal(t, 4, calls)
	assert.Contains(t, err.Error(), "after 4 attempts")
}

func TestRetry_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	cfg := config.RetryConfig{MaxAttempts: 10, BaseDelay: time.Hour, MaxDelay: time.Hour, ExpBase: 2}
	errCh := make(chan error, 1)
	go func() {
		errCh <- Retry(ctx, cfg, "test op", func(ctx context.Context) error {
			calls++
			return NewTransientError(errors.New("blip"), "")
		})
	}()

	// Give the first attempt time to land in the backoff sleep, then cancel.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	case <-time.After(5 * time.Second):
		t.Fatal("retry did not stop after context cancellation")
	}
}

func TestRetry_OpenBreakerFailsFast(t *testing.T) {
	cb := newTestBreaker(1, time.Hour)
	require.NoError(t, cb.Allow())
	cb.Mark(errors.New("boom"))
	require.Equal(t, StateOpen, cb.State())

	calls := 0
	_, err := Invoke(context.Background(), cb, fastRetry(5), "test op", func(ctx context.Context) (int, error) {
		calls++
		return 0, nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, 0, calls, "an open breaker must short-circuit without invoking the target")
}

func TestInvoke_MarksBreakerAcrossAttempts(t *testing.T) {
	cb := newTestBreaker(3, time.Hour)

	calls := 0
	_, err := Invoke(context.Background(), cb, fastRetry(5), "test op", func(ctx context.Context) (int, error) {
		calls++
		return 0, NewTransientError(errors.New("blip"), "")
	})

	// The third consecutive failure opens the breaker; the fourth attempt is
	// rejected without calling the target and aborts the retry loop.
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, 3, calls)
	assert.Equal(t, StateOpen, cb.State())
}

// Backoff delays must stay within [0.1*base, ceiling] where the ceiling
// grows exponentially and is capped by MaxDelay.
func TestBackoffDelay_Envelope(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("delay stays within the jitter envelope", prop.ForAll(
		func(attempt int, baseMs int, maxMs int) bool {
			cfg := config.RetryConfig{
				MaxAttempts: 10,
				BaseDelay:   time.Duration(baseMs) * time.Millisecond,
				MaxDelay:    time.Duration(maxMs) * time.Millisecond,
				ExpBase:     2,
			}

			ceiling := cfg.BaseDelay
			for i := 0; i < attempt; i++ {
				ceiling *= 2
				if ceiling > cfg.MaxDelay {
					break
				}
			}
			if ceiling > cfg.MaxDelay {
				ceiling = cfg.MaxDelay
			}

			delay := backoffDelay(attempt, cfg)
			floor := time.Duration(float64(cfg.BaseDelay) * 0.1)
			if floor > ceiling {
				floor = ceiling
			}
			return delay >= floor && delay <= ceiling
		},
		gen.IntRange(0, 8),
		gen.IntRange(1, 1000),
		gen.IntRange(1000, 60000),
	))

	properties.TestingRun(t)
}
