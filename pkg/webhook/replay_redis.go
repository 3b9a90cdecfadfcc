package webhook

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisReplayCache is a shared ReplayCache backed by Redis. Atomicity of the
// check-and-record comes from SET NX with a TTL: exactly one of any set of
// concurrent identical tokens wins the set.
type RedisReplayCache struct {
	client   redis.UniversalClient
	ttl      time.Duration
	prefix   string
	logger   *slog.Logger
	recorded atomic.Int64
}

// NewRedisReplayCache creates a Redis-backed replay cache.
// ttl <= 0 selects DefaultReplayTTL.
func NewRedisReplayCache(client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *RedisReplayCache {
	if ttl <= 0 {
		ttl = DefaultReplayTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisReplayCache{
		client: client,
		ttl:    ttl,
		prefix: "taskwire:replay:",
		logger: logger.With("component", "replay_cache"),
	}
}

// Seen records the token hash with SET NX. On backend failure it fails open:
// the delivery is treated as unseen and a warning is logged.
func (c *RedisReplayCache) Seen(ctx context.Context, token string) (bool, error) {
	key := c.prefix + hashToken(token)

	set, err := c.client.SetNX(ctx, key, "1", c.ttl).Result()
	if err != nil {
		c.logger.Warn("replay cache unavailable, failing open", "error", err)
		return false, nil
	}
	if set {
		c.recorded.Add(1)
		return false, nil
	}
	return true, nil
}

// Revoke stores the token hash with the extended TTL. Unlike Seen, failures
// are returned: a caller revoking a token needs to know it did not stick.
func (c *RedisReplayCache) Revoke(ctx context.Context, token string) error {
	key := c.prefix + hashToken(token)
	if err := c.client.Set(ctx, key, "revoked", time.Duration(revokeTTLFactor)*c.ttl).Err(); err != nil {
		return err
	}
	c.recorded.Add(1)
	return nil
}

// Stats reports a process-local count of successful records. Keys expire
// server-side, so this is an upper bound, not a live size.
func (c *RedisReplayCache) Stats() ReplayStats {
	return ReplayStats{Type: "redis", Size: int(c.recorded.Load())}
}
