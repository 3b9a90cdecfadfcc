package agent

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/taskwire/taskwire/pkg/config"
	llmv1 "github.com/taskwire/taskwire/proto"
)

// GRPCLLMClient implements LLMClient over the sidecar's streaming RPC.
type GRPCLLMClient struct {
	conn     *grpc.ClientConn
	client   llmv1.LLMServiceClient
	defaults *config.LLMConfig
}

// NewGRPCLLMClient dials the sidecar address from config. The connection
// is lazy; a sidecar that is down surfaces as a Generate error, not here.
func NewGRPCLLMClient(cfg *config.LLMConfig) (*GRPCLLMClient, error) {
	conn, err := grpc.NewClient(cfg.Address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service at %s: %w", cfg.Address, err)
	}
	return &GRPCLLMClient{
		conn:     conn,
		client:   llmv1.NewLLMServiceClient(conn),
		defaults: cfg,
	}, nil
}

// Generate sends one invocation and returns a channel of chunks.
func (c *GRPCLLMClient) Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	stream, err := c.client.Generate(ctx, c.toProtoRequest(input))
	if err != nil {
		return nil, fmt.Errorf("llm generate call failed: %w", err)
	}

	ch := make(chan Chunk, 32)
	go func() {
		defer close(ch)
		for {
			resp, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				select {
				case ch <- Chunk{Err: fmt.Errorf("llm stream: %w", err)}:
				case <-ctx.Done():
				}
				return
			}
			select {
			case ch <- fromProtoChunk(resp):
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, nil
}

// Close releases the gRPC connection.
func (c *GRPCLLMClient) Close() error {
	return c.conn.Close()
}

func (c *GRPCLLMClient) toProtoRequest(input *GenerateInput) *llmv1.GenerateRequest {
	req := &llmv1.GenerateRequest{
		AgentId:      input.AgentID,
		Model:        input.Model,
		SystemPrompt: input.SystemPrompt,
		MaxTokens:    input.MaxTokens,
	}
	if req.Model == "" {
		req.Model = c.defaults.DefaultModel
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = int32(c.defaults.MaxTokens)
	}
	if input.Temperature != nil {
		req.Temperature = *input.Temperature
	} else {
		req.Temperature = float32(c.defaults.Temperature)
	}
	for _, m := range input.Messages {
		req.Messages = append(req.Messages, &llmv1.Message{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	return req
}

func fromProtoChunk(resp *llmv1.GenerateChunk) Chunk {
	chunk := Chunk{
		Delta:        resp.GetDelta(),
		FinishReason: resp.GetFinishReason(),
	}
	if u := resp.GetUsage(); u != nil {
		chunk.Usage = &Usage{
			InputTokens:  u.GetInputTokens(),
			OutputTokens: u.GetOutputTokens(),
			TotalTokens:  u.GetTotalTokens(),
		}
	}
	return chunk
}
