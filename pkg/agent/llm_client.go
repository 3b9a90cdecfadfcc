// Package agent provides the LLM sidecar transport and per-agent prompt
// construction. The task executor resolves an agent profile, builds the
// step prompt here, and calls the model through LLMClient; everything
// above that (caching, breakers, retries, fallbacks) lives in the
// executor and pkg/resilience.
package agent

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Conversation roles. The system prompt travels as its own request field,
// so only user and assistant turns appear in Messages.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one conversation turn sent to the model.
type Message struct {
	Role    string
	Content string
}

// GenerateInput describes one agent invocation. Zero-valued Model and
// MaxTokens fall back to the client's configured defaults; a nil
// Temperature does the same.
type GenerateInput struct {
	AgentID      string
	Model        string
	SystemPrompt string
	Messages     []Message
	MaxTokens    int32
	Temperature  *float32
}

// Fingerprint returns a stable hex digest of everything that determines
// the model output: model, system prompt, and the conversation. The
// executor keys the response cache on (agent_id, fingerprint), so the
// serialization here must not change between releases without flushing
// the cache namespace.
func (in *GenerateInput) Fingerprint() string {
	h := sha256.New()
	h.Write([]byte(in.Model))
	h.Write([]byte{0})
	h.Write([]byte(in.SystemPrompt))
	for _, m := range in.Messages {
		h.Write([]byte{0})
		h.Write([]byte(m.Role))
		h.Write([]byte{0})
		h.Write([]byte(m.Content))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Chunk is one streamed fragment of a model response.
type Chunk struct {
	// Delta is incremental response text, possibly empty on the final chunk.
	Delta string

	// FinishReason is set on the last content chunk ("stop", "length", ...).
	FinishReason string

	// Usage is non-nil once the provider reports token accounting.
	Usage *Usage

	// Err terminates the stream; no further chunks follow it.
	Err error
}

// Usage reports token consumption for one call.
type Usage struct {
	InputTokens  int32
	OutputTokens int32
	TotalTokens  int32
}

// Response is the accumulated result of one invocation.
type Response struct {
	Text         string
	FinishReason string
	Usage        Usage
}

// LLMClient is the transport to the model sidecar.
type LLMClient interface {
	// Generate sends one invocation and returns a stream of chunks. The
	// channel is closed when the stream completes; a stream failure is
	// delivered as a final chunk with Err set.
	Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error)

	// Close releases the underlying connection.
	Close() error
}

// Collect drains a chunk stream into a single response. It returns the
// first stream error, or the context error if the caller's deadline
// expires mid-stream.
func Collect(ctx context.Context, ch <-chan Chunk) (*Response, error) {
	var sb strings.Builder
	resp := &Response{}
	for {
		select {
		case chunk, ok := <-ch:
			if !ok {
				resp.Text = sb.String()
				return resp, nil
			}
			if chunk.Err != nil {
				return nil, chunk.Err
			}
			sb.WriteString(chunk.Delta)
			if chunk.FinishReason != "" {
				resp.FinishReason = chunk.FinishReason
			}
			if chunk.Usage != nil {
				resp.Usage = *chunk.Usage
			}
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// GenerateText runs one invocation end to end: start the stream and
// collect it into a response.
func GenerateText(ctx context.Context, client LLMClient, input *GenerateInput) (*Response, error) {
	ch, err := client.Generate(ctx, input)
	if err != nil {
		return nil, err
	}
	return Collect(ctx, ch)
}
