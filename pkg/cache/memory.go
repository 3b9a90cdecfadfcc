package cache

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/taskwire/taskwire/pkg/config"
)

// memoryEntry holds a cached value with its absolute expiry.
type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// namespaceLRU is one size-bounded LRU with hit/miss counters.
type namespaceLRU struct {
	entries *lru.Cache[string, memoryEntry]
	ttl     time.Duration
	hits    atomic.Int64
	misses  atomic.Int64
}

// MemoryCache is the in-process backend: one LRU per namespace, entries
// expire lazily on read. Suitable for single-replica deployments; replicas
// that must share results use the Redis backend instead.
type MemoryCache struct {
	maxEntries int
	ttls       map[string]time.Duration

	mu         sync.RWMutex
	namespaces map[string]*namespaceLRU
}

// NewMemoryCache creates the memory backend from cfg.
func NewMemoryCache(cfg *config.CacheConfig) (*MemoryCache, error) {
	maxEntries := cfg.MaxEntries
	if maxEntries <= 0 {
		maxEntries = 4096
	}
	return &MemoryCache{
		maxEntries: maxEntries,
		ttls:       namespaceTTLs(cfg),
		namespaces: make(map[string]*namespaceLRU),
	}, nil
}

// namespace returns the LRU for ns, creating it on first use.
func (m *MemoryCache) namespace(ns string) (*namespaceLRU, error) {
	m.mu.RLock()
	if n, ok := m.namespaces[ns]; ok {
		m.mu.RUnlock()
		return n, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if n, ok := m.namespaces[ns]; ok {
		return n, nil
	}

	entries, err := lru.New[string, memoryEntry](m.maxEntries)
	if err != nil {
		return nil, err
	}
	n := &namespaceLRU{entries: entries, ttl: ttlFor(m.ttls, ns)}
	m.namespaces[ns] = n
	return n, nil
}

// Get returns the value for namespace/key if present and unexpired. Expired
// entries are evicted on the way out so LRU bookkeeping stays clean.
func (m *MemoryCache) Get(_ context.Context, namespace, key string) ([]byte, bool, error) {
	n, err := m.namespace(namespace)
	if err != nil {
		return nil, false, err
	}

	entry, ok := n.entries.Get(key)
	if !ok {
		n.misses.Add(1)
		return nil, false, nil
	}
	if time.Now().After(entry.expiresAt) {
		n.entries.Remove(key)
		n.misses.Add(1)
		return nil, false, nil
	}

	n.hits.Add(1)
	return entry.value, true, nil
}

// Set stores the value with the namespace TTL.
func (m *MemoryCache) Set(_ context.Context, namespace, key string, value []byte) error {
	n, err := m.namespace(namespace)
	if err != nil {
		return err
	}
	n.entries.Add(key, memoryEntry{value: value, expiresAt: time.Now().Add(n.ttl)})
	return nil
}

// Delete removes namespace/key if present.
func (m *MemoryCache) Delete(_ context.Context, namespace, key string) error {
	n, err := m.namespace(namespace)
	if err != nil {
		return err
	}
	n.entries.Remove(key)
	return nil
}

// Stats reports counters per namespace, sorted for stable output.
func (m *MemoryCache) Stats() []NamespaceStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := make([]NamespaceStats, 0, len(m.namespaces))
	for ns, n := range m.namespaces {
		stats = append(stats, NamespaceStats{
			Namespace: ns,
			Hits:      n.hits.Load(),
			Misses:    n.misses.Load(),
			Size:      n.entries.Len(),
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Namespace < stats[j].Namespace })
	return stats
}

// Close releases nothing for the memory backend.
func (m *MemoryCache) Close() error {
	return nil
}
