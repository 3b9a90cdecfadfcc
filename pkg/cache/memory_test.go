package cache

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/pkg/config"
)

func testMemoryCache(t *testing.T, cfg *config.CacheConfig) *MemoryCache {
	t.Helper()
	if cfg == nil {
		cfg = config.DefaultCacheConfig()
	}
	c, err := NewMemoryCache(cfg)
	require.NoError(t, err)
	return c
}

func TestMemoryCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c := testMemoryCache(t, nil)

	_, ok, err := c.Get(ctx, NamespaceTasks, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, NamespaceTasks, "t1", []byte("hello")))

	got, ok, err := c.Get(ctx, NamespaceTasks, "t1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("hello"), got)
}

func TestMemoryCache_NamespacesAreIsolated(t *testing.T) {
	ctx := context.Background()
	c := testMemoryCache(t, nil)

	require.NoError(t, c.Set(ctx, NamespaceTasks, "k", []byte("task")))
	require.NoError(t, c.Set(ctx, NamespaceAgentResponses, "k", []byte("response")))

	got, ok, err := c.Get(ctx, NamespaceTasks, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("task"), got)

	got, ok, err = c.Get(ctx, NamespaceAgentResponses, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("response"), got)
}

func TestMemoryCache_ExpiryIsLazy(t *testing.T) {
	ctx := context.Background()
	cfg := config.DefaultCacheConfig()
	cfg.TaskTTL = 10 * time.Millisecond
	c := testMemoryCache(t, cfg)

	require.NoError(t, c.Set(ctx, NamespaceTasks, "t1", []byte("x")))
	time.Sleep(25 * time.Millisecond)

	_, ok, err := c.Get(ctx, NamespaceTasks, "t1")
	require.NoError(t, err)
	assert.False(t, ok, "expired entry must read as a miss")

	// The expired read evicted the entry.
	for _, s := range c.Stats() {
		if s.Namespace == NamespaceTasks {
			assert.Equal(t, 0, s.Size)
		}
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	ctx := context.Background()
	c := testMemoryCache(t, nil)

	require.NoError(t, c.Set(ctx, NamespaceTasks, "t1", []byte("x")))
	require.NoError(t, c.Delete(ctx, NamespaceTasks, "t1"))

	_, ok, err := c.Get(ctx, NamespaceTasks, "t1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCache_LRUEviction(t *testing.T) {
	ctx := context.Background()
	cfg := config.DefaultCacheConfig()
	cfg.MaxEntries = 2
	c := testMemoryCache(t, cfg)

	require.NoError(t, c.Set(ctx, NamespaceTasks, "a", []byte("1")))
	require.NoError(t, c.Set(ctx, NamespaceTasks, "b", []byte("2")))
	require.NoError(t, c.Set(ctx, NamespaceTasks, "c", []byte("3")))

	_, ok, err := c.Get(ctx, NamespaceTasks, "a")
	require.NoError(t, err)
	assert.False(t, ok, "oldest entry must be evicted at capacity")

	_, ok, err = c.Get(ctx, NamespaceTasks, "c")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryCache_Stats(t *testing.T) {
	ctx := context.Background()
	c := testMemoryCache(t, nil)

	require.NoError(t, c.Set(ctx, NamespaceTasks, "t1", []byte("x")))
	_, _, _ = c.Get(ctx, NamespaceTasks, "t1")      // hit
	_, _, _ = c.Get(ctx, NamespaceTasks, "missing") // miss

	stats := c.Stats()
	require.Len(t, stats, 1)
	assert.Equal(t, NamespaceTasks, stats[0].Namespace)
	assert.Equal(t, int64(1), stats[0].Hits)
	assert.Equal(t, int64(1), stats[0].Misses)
	assert.Equal(t, 1, stats[0].Size)
}

func TestCodec_JSONRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := testMemoryCache(t, nil)

	type payload struct {
		Agent  string `json:"agent"`
		Tokens int    `json:"tokens"`
	}

	require.NoError(t, SetJSON(ctx, c, NamespaceAgentResponses, "k", payload{Agent: "coder", Tokens: 42}))

	var out payload
	ok, err := GetJSON(ctx, c, NamespaceAgentResponses, "k", &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, payload{Agent: "coder", Tokens: 42}, out)
}

func TestCodec_GobFallbackForNonJSONValues(t *testing.T) {
	// math.NaN cannot be marshaled as JSON; the codec must fall back to gob.
	encoded, err := encodeValue(map[string]float64{"score": math.NaN()})
	require.NoError(t, err)
	require.NotEmpty(t, encoded)
	assert.Equal(t, byte(codecGob), encoded[0])

	var out map[string]float64
	require.NoError(t, decodeValue(encoded, &out))
	assert.True(t, math.IsNaN(out["score"]), "NaN survives the round trip")
}

func TestCodec_MissReturnsFalseWithoutError(t *testing.T) {
	ctx := context.Background()
	c := testMemoryCache(t, nil)

	var out string
	ok, err := GetJSON(ctx, c, NamespaceTasks, "missing", &out)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCodec_RejectsUnknownPrefix(t *testing.T) {
	var out string
	err := decodeValue([]byte{'x', '1'}, &out)
	assert.Error(t, err)
}
