package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLMClient struct {
	chunks  []Chunk
	callErr error
	lastIn  *GenerateInput
}

func (f *fakeLLMClient) Generate(_ context.Context, input *GenerateInput) (<-chan Chunk, error) {
	f.lastIn = input
	if f.callErr != nil {
		return nil, f.callErr
	}
	ch := make(chan Chunk, len(f.chunks))
	for _, c := range f.chunks {
		ch <- c
	}
	close(ch)
	return ch, nil
}

func (f *fakeLLMClient) Close() error { return nil }

func TestCollect(t *testing.T) {
	t.Run("concatenates deltas and captures metadata", func(t *testing.T) {
		ch := make(chan Chunk, 4)
		ch <- Chunk{Delta: "Hello, "}
		ch <- Chunk{Delta: "world."}
		ch <- Chunk{Delta: "", FinishReason: "stop"}
		ch <- Chunk{Usage: &Usage{InputTokens: 10, OutputTokens: 4, TotalTokens: 14}}
		close(ch)

		resp, err := Collect(context.Background(), ch)
		require.NoError(t, err)
		assert.Equal(t, "Hello, world.", resp.Text)
		assert.Equal(t, "stop", resp.FinishReason)
		assert.Equal(t, int32(14), resp.Usage.TotalTokens)
	})

	t.Run("stream error aborts collection", func(t *testing.T) {
		ch := make(chan Chunk, 2)
		ch <- Chunk{Delta: "partial"}
		ch <- Chunk{Err: errors.New("connection reset")}
		close(ch)

		resp, err := Collect(context.Background(), ch)
		require.Error(t, err)
		assert.Nil(t, resp)
		assert.Contains(t, err.Error(), "connection reset")
	})

	t.Run("context cancellation mid-stream", func(t *testing.T) {
		ch := make(chan Chunk) // never closed
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		resp, err := Collect(ctx, ch)
		require.Error(t, err)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("empty stream yields empty response", func(t *testing.T) {
		ch := make(chan Chunk)
		close(ch)

		resp, err := Collect(context.Background(), ch)
		require.NoError(t, err)
		assert.Equal(t, "", resp.Text)
	})
}

func TestGenerateText(t *testing.T) {
	t.Run("collects a full response", func(t *testing.T) {
		client := &fakeLLMClient{chunks: []Chunk{
			{Delta: "done", FinishReason: "stop"},
		}}

		resp, err := GenerateText(context.Background(), client, &GenerateInput{AgentID: "coder"})
		require.NoError(t, err)
		assert.Equal(t, "done", resp.Text)
		assert.Equal(t, "coder", client.lastIn.AgentID)
	})

	t.Run("propagates call errors", func(t *testing.T) {
		client := &fakeLLMClient{callErr: errors.New("sidecar unavailable")}

		_, err := GenerateText(context.Background(), client, &GenerateInput{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sidecar unavailable")
	})
}

func TestFingerprint(t *testing.T) {
	base := func() *GenerateInput {
		return &GenerateInput{
			AgentID:      "coder",
			Model:        "default",
			SystemPrompt: "You are a senior software engineer.",
			Messages: []Message{
				{Role: RoleUser, Content: "Fix the login bug."},
			},
		}
	}

	t.Run("stable for identical inputs", func(t *testing.T) {
		a, b := base(), base()
		assert.Equal(t, a.Fingerprint(), b.Fingerprint())
		assert.Len(t, a.Fingerprint(), 64)
	})

	t.Run("model changes the digest", func(t *testing.T) {
		a, b := base(), base()
		b.Model = "large"
		assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	})

	t.Run("message content changes the digest", func(t *testing.T) {
		a, b := base(), base()
		b.Messages[0].Content = "Fix the logout bug."
		assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	})

	t.Run("system prompt changes the digest", func(t *testing.T) {
		a, b := base(), base()
		b.SystemPrompt = "You are a QA engineer."
		assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	})

	t.Run("agent id does not change the digest", func(t *testing.T) {
		// The cache key is (agent_id, fingerprint); the id is not folded in twice.
		a, b := base(), base()
		b.AgentID = "tester"
		assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	})
}
