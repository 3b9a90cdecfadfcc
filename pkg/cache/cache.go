// Package cache provides the namespaced result cache used to short-circuit
// repeated agent invocations and hot API reads. Backends are
// interchangeable: an in-process LRU for single-replica deployments and
// Redis for shared state across replicas.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/taskwire/taskwire/pkg/config"
)

// Namespaces. Each carries its own TTL from config.
const (
	// NamespaceAgentResponses keys agent outputs by (agent id, prompt hash).
	NamespaceAgentResponses = "agent_responses"
	// NamespaceTasks caches task detail reads; invalidated on status change.
	NamespaceTasks = "tasks"
	// NamespaceWorkflows caches the template catalog.
	NamespaceWorkflows = "workflows"
)

// Cache is the namespaced byte cache. A miss is (nil, false, nil); backend
// failures surface as errors so callers can log and fall through to direct
// computation. Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, namespace, key string) ([]byte, bool, error)
	Set(ctx context.Context, namespace, key string, value []byte) error
	Delete(ctx context.Context, namespace, key string) error
	Stats() []NamespaceStats
	Close() error
}

// NamespaceStats reports per-namespace effectiveness counters.
type NamespaceStats struct {
	Namespace string `json:"namespace"`
	Hits      int64  `json:"hits"`
	Misses    int64  `json:"misses"`
	Size      int    `json:"size"`
}

// New builds the cache selected by cfg.Backend.
func New(cfg *config.CacheConfig) (Cache, error) {
	switch cfg.Backend {
	case config.CacheBackendMemory, "":
		return NewMemoryCache(cfg)
	case config.CacheBackendRedis:
		return NewRedisCache(cfg)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// namespaceTTLs maps each namespace to its configured TTL, with a
// conservative default for namespaces added later.
func namespaceTTLs(cfg *config.CacheConfig) map[string]time.Duration {
	return map[string]time.Duration{
		NamespaceAgentResponses: cfg.AgentResponseTTL,
		NamespaceTasks:          cfg.TaskTTL,
		NamespaceWorkflows:      cfg.WorkflowTTL,
	}
}

const defaultNamespaceTTL = 5 * time.Minute

func ttlFor(ttls map[string]time.Duration, namespace string) time.Duration {
	if ttl, ok := ttls[namespace]; ok && ttl > 0 {
		return ttl
	}
	return defaultNamespaceTTL
}
