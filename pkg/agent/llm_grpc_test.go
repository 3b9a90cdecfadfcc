package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/pkg/config"
	llmv1 "github.com/taskwire/taskwire/proto"
)

func grpcClientWithDefaults() *GRPCLLMClient {
	return &GRPCLLMClient{
		defaults: &config.LLMConfig{
			DefaultModel: "default",
			MaxTokens:    4096,
			Temperature:  0.2,
		},
	}
}

func TestToProtoRequest(t *testing.T) {
	c := grpcClientWithDefaults()

	t.Run("defaults fill unset fields", func(t *testing.T) {
		req := c.toProtoRequest(&GenerateInput{
			AgentID:      "coder",
			SystemPrompt: "You are a senior software engineer.",
			Messages:     []Message{{Role: RoleUser, Content: "hello"}},
		})

		assert.Equal(t, "coder", req.AgentId)
		assert.Equal(t, "default", req.Model)
		assert.Equal(t, int32(4096), req.MaxTokens)
		assert.InDelta(t, 0.2, float64(req.Temperature), 1e-6)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "hello", req.Messages[0].Content)
	})

	t.Run("explicit values win", func(t *testing.T) {
		temp := float32(0.9)
		req := c.toProtoRequest(&GenerateInput{
			AgentID:     "tester",
			Model:       "large",
			MaxTokens:   512,
			Temperature: &temp,
		})

		assert.Equal(t, "large", req.Model)
		assert.Equal(t, int32(512), req.MaxTokens)
		assert.InDelta(t, 0.9, float64(req.Temperature), 1e-6)
	})
}

func TestFromProtoChunk(t *testing.T) {
	t.Run("delta only", func(t *testing.T) {
		chunk := fromProtoChunk(&llmv1.GenerateChunk{Delta: "text"})
		assert.Equal(t, "text", chunk.Delta)
		assert.Empty(t, chunk.FinishReason)
		assert.Nil(t, chunk.Usage)
	})

	t.Run("finish reason and usage", func(t *testing.T) {
		reason := "stop"
		chunk := fromProtoChunk(&llmv1.GenerateChunk{
			FinishReason: &reason,
			Usage: &llmv1.Usage{
				InputTokens:  100,
				OutputTokens: 40,
				TotalTokens:  140,
			},
		})
		assert.Equal(t, "stop", chunk.FinishReason)
		require.NotNil(t, chunk.Usage)
		assert.Equal(t, int32(140), chunk.Usage.TotalTokens)
	})
}
