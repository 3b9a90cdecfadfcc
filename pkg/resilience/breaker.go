package resilience

import (
	"log/slog"
	"sync"
	"time"

	"github.com/taskwire/taskwire/pkg/config"
)

// State is the circuit breaker state.
type State int

const (
	// StateClosed allows all calls.
	StateClosed State = iota
	// StateOpen rejects all calls until the recovery timeout elapses.
	StateOpen
	// StateHalfOpen allows a single probe call.
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

// CircuitBreaker tracks consecutive failures for one target (an agent
// profile or a remote endpoint). Consecutive failures reaching the threshold
// open the circuit; after the recovery timeout one probe is let through, and
// its outcome decides between closed and open again.
type CircuitBreaker struct {
	name             string
	failureThreshold int
	recoveryTimeout  time.Duration

	mu            sync.Mutex
	state         State
	failures      int
	probeInFlight bool
	openedAt      time.Time

	// Lifetime counters, exposed through Snapshot.
	calls      int64
	successes  int64
	failCount  int64
	rejections int64
}

// NewCircuitBreaker creates a breaker for name using cfg thresholds.
func NewCircuitBreaker(name string, cfg config.BreakerConfig) *CircuitBreaker {
	return &CircuitBreaker{
		name:             name,
		failureThreshold: cfg.FailureThreshold,
		recoveryTimeout:  cfg.RecoveryTimeout,
		state:            StateClosed,
	}
}

// Allow reports whether a call may proceed. When the breaker is open and the
// recovery timeout has elapsed it transitions to half-open and admits exactly
// one probe; concurrent callers get ErrCircuitOpen until the probe resolves.
func (cb *CircuitBreaker) Allow() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		cb.calls++
		return nil

	case StateOpen:
		if time.Since(cb.openedAt) < cb.recoveryTimeout {
			cb.rejections++
			return ErrCircuitOpen
		}
		cb.setState(StateHalfOpen)
		cb.probeInFlight = true
		cb.calls++
		return nil

	case StateHalfOpen:
		if cb.probeInFlight {
			cb.rejections++
			return ErrCircuitOpen
		}
		cb.probeInFlight = true
		cb.calls++
		return nil
	}

	return nil
}

// Mark records the outcome of a call admitted by Allow. Pass nil for success.
func (cb *CircuitBreaker) Mark(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err == nil {
		cb.successes++
		cb.onSuccess()
		return
	}
	cb.failCount++
	cb.onFailure()
}

func (cb *CircuitBreaker) onSuccess() {
	switch cb.state {
	case StateClosed:
		cb.failures = 0
	case StateHalfOpen:
		cb.probeInFlight = false
		cb.failures = 0
		cb.setState(StateClosed)
		slog.Info("Circuit breaker closed after successful probe", "target", cb.name)
	}
}

func (cb *CircuitBreaker) onFailure() {
	switch cb.state {
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.failureThreshold {
			cb.openedAt = time.Now()
			cb.setState(StateOpen)
			slog.Warn("Circuit breaker opened",
				"target", cb.name,
				"consecutive_failures", cb.failures,
				"recovery_timeout", cb.recoveryTimeout)
		}
	case StateHalfOpen:
		cb.probeInFlight = false
		cb.openedAt = time.Now()
		cb.setState(StateOpen)
		slog.Warn("Circuit breaker reopened after failed probe", "target", cb.name)
	case StateOpen:
		cb.openedAt = time.Now()
	}
}

func (cb *CircuitBreaker) setState(s State) {
	cb.state = s
}

// State returns the current state without mutating it. An open breaker past
// its recovery timeout still reports open; the transition happens in Allow.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Snapshot captures breaker state for health reporting.
type Snapshot struct {
	Target              string    `json:"target"`
	State               string    `json:"state"`
	ConsecutiveFailures int       `json:"consecutive_failures"`
	Calls               int64     `json:"calls"`
	Successes           int64     `json:"successes"`
	Failures            int64     `json:"failures"`
	Rejections          int64     `json:"rejections"`
	OpenedAt            time.Time `json:"opened_at,omitempty"`
}

// Snapshot returns the breaker's current observable state.
func (cb *CircuitBreaker) Snapshot() Snapshot {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return Snapshot{
		Target:              cb.name,
		State:               cb.state.String(),
		ConsecutiveFailures: cb.failures,
		Calls:               cb.calls,
		Successes:           cb.successes,
		Failures:            cb.failCount,
		Rejections:          cb.rejections,
		OpenedAt:            cb.openedAt,
	}
}

// Reset closes the breaker and clears its counters.
func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.state = StateClosed
	cb.failures = 0
	cb.probeInFlight = false
}

// BreakerManager hands out one circuit breaker per target, creating them
// lazily with a shared config.
type BreakerManager struct {
	cfg config.BreakerConfig

	mu       sync.RWMutex
	breakers map[string]*CircuitBreaker
}

// NewBreakerManager creates an empty manager.
func NewBreakerManager(cfg config.BreakerConfig) *BreakerManager {
	return &BreakerManager{
		cfg:      cfg,
		breakers: make(map[string]*CircuitBreaker),
	}
}

// Get returns the breaker for name, creating it on first use.
func (m *BreakerManager) Get(name string) *CircuitBreaker {
	m.mu.RLock()
	if cb, ok := m.breakers[name]; ok {
		m.mu.RUnlock()
		return cb
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if cb, ok := m.breakers[name]; ok {
		return cb
	}
	cb := NewCircuitBreaker(name, m.cfg)
	m.breakers[name] = cb
	return cb
}

// Snapshots returns the state of every breaker created so far.
func (m *BreakerManager) Snapshots() []Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Snapshot, 0, len(m.breakers))
	for _, cb := range m.breakers {
		out = append(out, cb.Snapshot())
	}
	return out
}

// ResetAll closes every breaker. Used by the admin breaker-reset endpoint.
func (m *BreakerManager) ResetAll() {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, cb := range m.breakers {
		cb.Reset()
	}
}
