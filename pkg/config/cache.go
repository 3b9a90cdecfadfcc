package config

import "time"

// CacheBackend selects the result/replay cache implementation.
type CacheBackend string

const (
	CacheBackendMemory CacheBackend = "memory"
	CacheBackendRedis  CacheBackend = "redis"
)

// Valid reports whether b is a known cache backend.
func (b CacheBackend) Valid() bool {
	return b == CacheBackendMemory || b == CacheBackendRedis
}

// CacheConfig tunes the result cache and the replay cache backends.
type CacheConfig struct {
	Backend CacheBackend `yaml:"backend"`

	// Redis connection settings, used when Backend is redis.
	RedisAddr     string `yaml:"redis_addr,omitempty"`
	RedisPassword string `yaml:"redis_password,omitempty"`
	RedisDB       int    `yaml:"redis_db,omitempty"`

	// MaxEntries bounds each memory namespace (LRU eviction).
	MaxEntries int `yaml:"max_entries"`

	// Namespace TTLs.
	AgentResponseTTL time.Duration `yaml:"agent_response_ttl"`
	TaskTTL          time.Duration `yaml:"task_ttl"`
	WorkflowTTL      time.Duration `yaml:"workflow_ttl"`

	// ReplayTTL is the webhook replay window.
	ReplayTTL time.Duration `yaml:"replay_ttl"`
}

// DefaultCacheConfig returns the built-in cache settings.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		Backend:          CacheBackendMemory,
		MaxEntries:       4096,
		AgentResponseTTL: 30 * time.Minute,
		TaskTTL:          5 * time.Minute,
		WorkflowTTL:      10 * time.Minute,
		ReplayTTL:        15 * time.Minute,
	}
}
