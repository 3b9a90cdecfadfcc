package webhook

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryReplaySeenRecords(t *testing.T) {
	c := NewMemoryReplayCache(time.Minute)
	defer c.Close()
	ctx := context.Background()

	seen, err := c.Seen(ctx, "token-1")
	require.NoError(t, err)
	assert.False(t, seen)

	seen, err = c.Seen(ctx, "token-1")
	require.NoError(t, err)
	assert.True(t, seen)

	// different token is independent
	seen, err = c.Seen(ctx, "token-2")
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestMemoryReplayExpiry(t *testing.T) {
	c := NewMemoryReplayCache(time.Minute)
	defer c.Close()
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	current := base
	c.now = func() time.Time { return current }

	seen, _ := c.Seen(ctx, "tok")
	require.False(t, seen)

	current = base.Add(59 * time.Second)
	seen, _ = c.Seen(ctx, "tok")
	assert.True(t, seen, "still inside TTL")

	current = base.Add(2 * time.Minute)
	seen, _ = c.Seen(ctx, "tok")
	assert.False(t, seen, "expired entries read as unseen and re-record")
}

func TestMemoryReplayRevokeExtendsTTL(t *testing.T) {
	c := NewMemoryReplayCache(time.Minute)
	defer c.Close()
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	current := base
	c.now = func() time.Time { return current }

	require.NoError(t, c.Revoke(ctx, "tok"))

	current = base.Add(23 * time.Hour)
	seen, _ := c.Seen(ctx, "tok")
	assert.True(t, seen, "revoked token holds for 24x TTL")

	current = base.Add(25 * time.Hour)
	seen, _ = c.Seen(ctx, "tok")
	assert.False(t, seen)
}

// TestMemoryReplayConcurrentSeen drives the atomicity contract: N concurrent
// checks of one fresh token must produce exactly one unseen result.
func TestMemoryReplayConcurrentSeen(t *testing.T) {
	c := NewMemoryReplayCache(time.Minute)
	defer c.Close()
	ctx := context.Background()

	const callers = 64
	var wg sync.WaitGroup
	results := make(chan bool, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen, err := c.Seen(ctx, "contended-token")
			assert.NoError(t, err)
			results <- seen
		}()
	}
	wg.Wait()
	close(results)

	unseen := 0
	for seen := range results {
		if !seen {
			unseen++
		}
	}
	assert.Equal(t, 1, unseen, "exactly one caller may observe the token as new")
}

func TestMemoryReplayStats(t *testing.T) {
	c := NewMemoryReplayCache(time.Minute)
	defer c.Close()
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	current := base
	c.now = func() time.Time { return current }

	_, _ = c.Seen(ctx, "a")
	_, _ = c.Seen(ctx, "b")
	_, _ = c.Seen(ctx, "a")

	stats := c.Stats()
	assert.Equal(t, "memory", stats.Type)
	assert.Equal(t, 2, stats.Size)

	// expired entries drop out of the reported size even before the sweep
	current = base.Add(2 * time.Minute)
	assert.Equal(t, 0, c.Stats().Size)
}

func TestHashTokenNeverEchoesToken(t *testing.T) {
	h := hashToken("super-secret-token")
	assert.NotContains(t, h, "super-secret-token")
	assert.Len(t, h, 64)
	assert.Equal(t, h, hashToken("super-secret-token"), "stable")
	assert.NotEqual(t, h, hashToken("other-token"))
}
