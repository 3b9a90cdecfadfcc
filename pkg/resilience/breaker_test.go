package resilience

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/pkg/config"
)

func newTestBreaker(threshold int, recovery time.Duration) *CircuitBreaker {
	return NewCircuitBreaker("test-agent", config.BreakerConfig{
		FailureThreshold: threshold,
		RecoveryTimeout:  recovery,
	})
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	cb := newTestBreaker(3, time.Minute)
	boom := errors.New("boom")

	for i := 0; i < 2; i++ {
		require.NoError(t, cb.Allow())
		cb.Mark(boom)
		assert.Equal(t, StateClosed, cb.State(), "breaker must stay closed below the threshold")
	}

	require.NoError(t, cb.Allow())
	cb.Mark(boom)
	assert.Equal(t, StateOpen, cb.State())

	// Open breaker rejects immediately.
	err := cb.Allow()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCircuitOpen)
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb := newTestBreaker(3, time.Minute)
	boom := errors.New("boom")

	require.NoError(t, cb.Allow())
	cb.Mark(boom)
	require.NoError(t, cb.Allow())
	cb.Mark(boom)

	// A success in closed state clears the streak.
	require.NoError(t, cb.Allow())
	cb.Mark(nil)

	require.NoError(t, cb.Allow())
	cb.Mark(boom)
	require.NoError(t, cb.Allow())
	cb.Mark(boom)
	assert.Equal(t, StateClosed, cb.State(), "two failures after a success must not open a threshold-3 breaker")
}

func TestCircuitBreaker_HalfOpenAdmitsSingleProbe(t *testing.T) {
	cb := newTestBreaker(1, 10*time.Millisecond)

	require.NoError(t, cb.Allow())
	cb.Mark(errors.New("boom"))
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(20 * time.Millisecond)

	// First caller after the recovery timeout gets the probe slot.
	require.NoError(t, cb.Allow())
	assert.Equal(t, StateHalfOpen, cb.State())

	// Concurrent callers are rejected while the probe is in flight.
	assert.ErrorIs(t, cb.Allow(), ErrCircuitOpen)

	// Probe success closes the circuit.
	cb.Mark(nil)
	assert.Equal(t, StateClosed, cb.State())
	assert.NoError(t, cb.Allow())
}

func TestCircuitBreaker_FailedProbeReopens(t *testing.T) {
	cb := newTestBreaker(1, 10*time.Millisecond)

	require.NoError(t, cb.Allow())
	cb.Mark(errors.New("boom"))
	time.Sleep(20 * time.Millisecond)

	require.NoError(t, cb.Allow())
	cb.Mark(errors.New("still down"))

	assert.Equal(t, StateOpen, cb.State())
	assert.ErrorIs(t, cb.Allow(), ErrCircuitOpen, "freshly reopened breaker must reject until the timeout elapses again")
}

func TestCircuitBreaker_SnapshotCounters(t *testing.T) {
	cb := newTestBreaker(2, time.Hour)
	boom := errors.New("boom")

	require.NoError(t, cb.Allow())
	cb.Mark(nil)
	require.NoError(t, cb.Allow())
	cb.Mark(boom)
	require.NoError(t, cb.Allow())
	cb.Mark(boom)

	// Open now; the next attempt is a rejection, not a call.
	require.ErrorIs(t, cb.Allow(), ErrCircuitOpen)

	snap := cb.Snapshot()
	assert.Equal(t, "open", snap.State)
	assert.Equal(t, 2, snap.ConsecutiveFailures)
	assert.Equal(t, int64(3), snap.Calls)
	assert.Equal(t, int64(1), snap.Successes)
	assert.Equal(t, int64(2), snap.Failures)
	assert.Equal(t, int64(1), snap.Rejections)
}

func TestBreakerManager_ReusesPerTarget(t *testing.T) {
	m := NewBreakerManager(config.BreakerConfig{FailureThreshold: 3, RecoveryTimeout: time.Minute})

	a := m.Get("coder")
	b := m.Get("coder")
	c := m.Get("tester")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)

	snapshots := m.Snapshots()
	assert.Len(t, snapshots, 2)
}

func TestBreakerManager_ResetAll(t *testing.T) {
	m := NewBreakerManager(config.BreakerConfig{FailureThreshold: 1, RecoveryTimeout: time.Hour})

	cb := m.Get("coder")
	require.NoError(t, cb.Allow())
	cb.Mark(errors.New("boom"))
	require.Equal(t, StateOpen, cb.State())

	m.ResetAll()
	assert.Equal(t, StateClosed, cb.State())
	assert.NoError(t, cb.Allow())
}
