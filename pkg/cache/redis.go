package cache

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taskwire/taskwire/pkg/config"
)

// RedisCache is the shared backend for multi-replica deployments. Expiry is
// native Redis TTL; counters are process-local.
type RedisCache struct {
	client redis.UniversalClient
	ttls   map[string]time.Duration
	prefix string

	mu       sync.RWMutex
	counters map[string]*redisCounters
}

type redisCounters struct {
	hits   atomic.Int64
	misses atomic.Int64
	sets   atomic.Int64
}

// NewRedisCache connects to Redis using cfg and verifies the connection.
func NewRedisCache(cfg *config.CacheConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}

	return NewRedisCacheWithClient(client, cfg), nil
}

// NewRedisCacheWithClient wraps an existing client. Used by tests and by
// deployments that share one client between the replay cache and this one.
func NewRedisCacheWithClient(client redis.UniversalClient, cfg *config.CacheConfig) *RedisCache {
	return &RedisCache{
		client:   client,
		ttls:     namespaceTTLs(cfg),
		prefix:   "taskwire:cache:",
		counters: make(map[string]*redisCounters),
	}
}

func (r *RedisCache) key(namespace, key string) string {
	return r.prefix + namespace + ":" + key
}

func (r *RedisCache) counter(namespace string) *redisCounters {
	r.mu.RLock()
	if c, ok := r.counters[namespace]; ok {
		r.mu.RUnlock()
		return c
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.counters[namespace]; ok {
		return c
	}
	c := &redisCounters{}
	r.counters[namespace] = c
	return c
}

// Get fetches namespace/key. redis.Nil is a miss, not an error.
func (r *RedisCache) Get(ctx context.Context, namespace, key string) ([]byte, bool, error) {
	c := r.counter(namespace)

	raw, err := r.client.Get(ctx, r.key(namespace, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.misses.Add(1)
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	c.hits.Add(1)
	return raw, true, nil
}

// Set stores the value with the namespace TTL.
func (r *RedisCache) Set(ctx context.Context, namespace, key string, value []byte) error {
	if err := r.client.Set(ctx, r.key(namespace, key), value, ttlFor(r.ttls, namespace)).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	r.counter(namespace).sets.Add(1)
	return nil
}

// Delete removes namespace/key.
func (r *RedisCache) Delete(ctx context.Context, namespace, key string) error {
	if err := r.client.Del(ctx, r.key(namespace, key)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Stats reports process-local counters per namespace. Size is the number of
// sets issued by this process, an upper bound on live keys (Redis expires
// server-side and a SCAN per stats call is not worth it).
func (r *RedisCache) Stats() []NamespaceStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := make([]NamespaceStats, 0, len(r.counters))
	for ns, c := range r.counters {
		stats = append(stats, NamespaceStats{
			Namespace: ns,
			Hits:      c.hits.Load(),
			Misses:    c.misses.Load(),
			Size:      int(c.sets.Load()),
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Namespace < stats[j].Namespace })
	return stats
}

// Close releases the Redis connection.
func (r *RedisCache) Close() error {
	return r.client.Close()
}
