package webhook

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

const (
	// DefaultReplayTTL is how long a webhook token is remembered.
	DefaultReplayTTL = 15 * time.Minute

	// revokeTTLFactor extends the TTL for explicitly revoked tokens.
	revokeTTLFactor = 24

	// memorySweepInterval is how often the in-memory backend removes
	// expired hashes.
	memorySweepInterval = 60 * time.Second
)

// ReplayStats describes the cache backend and its current size.
type ReplayStats struct {
	Type string `json:"type"`
	Size int    `json:"size"`
}

// ReplayCache records webhook tokens so that duplicate deliveries inside the
// TTL window can be rejected. Implementations must make the check-and-record
// in Seen atomic: two concurrent calls with the same token yield exactly one
// false. Backends never store the raw token, only its SHA-256.
type ReplayCache interface {
	// Seen reports whether the token was recorded within TTL. When it was
	// not, Seen records it as a side effect. Backend failures fail open
	// (unseen) after logging; the signature verifier remains the primary
	// defense.
	Seen(ctx context.Context, token string) (bool, error)

	// Revoke force-records the token with an extended TTL.
	Revoke(ctx context.Context, token string) error

	// Stats returns the backend type and approximate size.
	Stats() ReplayStats
}

// hashToken derives the storage key. Raw tokens never leave this function.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// MemoryReplayCache is a process-local ReplayCache. Expired hashes are
// dropped by a periodic sweep and re-checked lazily on access.
type MemoryReplayCache struct {
	mu      sync.Mutex
	entries map[string]time.Time // token hash → expiry
	ttl     time.Duration
	now     func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemoryReplayCache creates a memory-backed replay cache and starts its
// sweep goroutine. ttl <= 0 selects DefaultReplayTTL. Call Close to stop the
// sweeper.
func NewMemoryReplayCache(ttl time.Duration) *MemoryReplayCache {
	if ttl <= 0 {
		ttl = DefaultReplayTTL
	}
	c := &MemoryReplayCache{
		entries: make(map[string]time.Time),
		ttl:     ttl,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go c.sweep()
	return c
}

// Seen checks and records under a single lock, so concurrent duplicates
// serialize and exactly one caller observes false.
func (c *MemoryReplayCache) Seen(_ context.Context, token string) (bool, error) {
	key := hashToken(token)
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if expiry, ok := c.entries[key]; ok && now.Before(expiry) {
		return true, nil
	}
	c.entries[key] = now.Add(c.ttl)
	return false, nil
}

// Revoke records the token hash with an extended TTL regardless of prior state.
func (c *MemoryReplayCache) Revoke(_ context.Context, token string) error {
	key := hashToken(token)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = c.now().Add(time.Duration(revokeTTLFactor) * c.ttl)
	return nil
}

// Stats returns the live entry count, excluding entries awaiting sweep.
func (c *MemoryReplayCache) Stats() ReplayStats {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	size := 0
	for _, expiry := range c.entries {
		if now.Before(expiry) {
			size++
		}
	}
	return ReplayStats{Type: "memory", Size: size}
}

// Close stops the sweep goroutine.
func (c *MemoryReplayCache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *MemoryReplayCache) sweep() {
	ticker := time.NewTicker(memorySweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			now := c.now()
			c.mu.Lock()
			for key, expiry := range c.entries {
				if !now.Before(expiry) {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		}
	}
}
