package config

import "time"

// BreakerConfig tunes the per-agent circuit breaker.
type BreakerConfig struct {
	// FailureThreshold is the consecutive-failure count that opens the breaker.
	FailureThreshold int `yaml:"failure_threshold"`

	// RecoveryTimeout is how long an open breaker blocks before allowing
	// the half-open probe.
	RecoveryTimeout time.Duration `yaml:"recovery_timeout"`
}

// RetryConfig tunes exponential backoff with full jitter.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	BaseDelay   time.Duration `yaml:"base_delay"`
	MaxDelay    time.Duration `yaml:"max_delay"`
	ExpBase     float64       `yaml:"exp_base"`
}

// ResilienceConfig groups breaker, retry, and fallback settings.
type ResilienceConfig struct {
	Breaker BreakerConfig `yaml:"breaker"`

	// AgentRetry applies to LLM agent invocations.
	AgentRetry RetryConfig `yaml:"agent_retry"`

	// RemoteRetry applies to webhook/API style outbound calls (mail
	// delivery, memory backends).
	RemoteRetry RetryConfig `yaml:"remote_retry"`

	// FallbackChains maps agent id → ordered fallback agents.
	FallbackChains map[string][]string `yaml:"fallback_chains,omitempty"`
}

// DefaultResilienceConfig returns the built-in resilience settings.
func DefaultResilienceConfig() *ResilienceConfig {
	return &ResilienceConfig{
		Breaker: BreakerConfig{
			FailureThreshold: 3,
			RecoveryTimeout:  45 * time.Second,
		},
		AgentRetry: RetryConfig{
			MaxAttempts: 3,
			BaseDelay:   1500 * time.Millisecond,
			MaxDelay:    45 * time.Second,
			ExpBase:     2,
		},
		RemoteRetry: RetryConfig{
			MaxAttempts: 5,
			BaseDelay:   1 * time.Second,
			MaxDelay:    30 * time.Second,
			ExpBase:     2,
		},
		FallbackChains: map[string][]string{
			"coder":  {"general"},
			"bug":    {"tester", "general"},
			"devops": {"general"},
			"docs":   {"general"},
		},
	}
}
