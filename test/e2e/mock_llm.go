package e2e

import (
	"context"
	"fmt"
	"sync"

	"github.com/taskwire/taskwire/pkg/agent"
)

// LLMScriptEntry defines a single scripted LLM response.
type LLMScriptEntry struct {
	// Response content (exactly one must be set)
	Chunks []agent.Chunk // Pre-built chunks to stream
	Text   string        // Shorthand: auto-wrapped as a delta chunk plus a stop chunk
	Error  error         // Return error from Generate()

	// Test control
	BlockUntilCancelled bool            // Hold the stream open until ctx is cancelled
	WaitCh              <-chan struct{} // Hold Generate() until closed, then return the normal response
	OnBlock             chan<- struct{} // Notified when Generate() enters a blocking path
}

// ScriptedLLMClient implements agent.LLMClient with a dual-dispatch mock:
// agent-aware routing keyed on GenerateInput.AgentID for workflows where
// call order is non-deterministic (parallel stages, fallback chains), plus
// sequential fallback for tests that do not care which agent is calling.
type ScriptedLLMClient struct {
	mu       sync.Mutex
	script   []LLMScriptEntry // consumed in order for non-routed calls
	seqNext  int
	routed   map[string][]LLMScriptEntry // agent id to per-agent script
	routeIdx map[string]int
	calls    []*agent.GenerateInput
}

// NewScriptedLLMClient creates a new ScriptedLLMClient.
func NewScriptedLLMClient() *ScriptedLLMClient {
	return &ScriptedLLMClient{
		routed:   make(map[string][]LLMScriptEntry),
		routeIdx: make(map[string]int),
	}
}

// AddSequential adds an entry consumed in order for calls that have no
// routed script. Used for single-step workflows and draft composition.
func (c *ScriptedLLMClient) AddSequential(entry LLMScriptEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.script = append(c.script, entry)
}

// AddRouted adds an entry for a specific agent id. Fallback candidates call
// with their own id, so a routed script addresses exactly one agent even
// when the chain degrades.
func (c *ScriptedLLMClient) AddRouted(agentID string, entry LLMScriptEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.routed[agentID] = append(c.routed[agentID], entry)
}

// Generate implements agent.LLMClient.
func (c *ScriptedLLMClient) Generate(ctx context.Context, input *agent.GenerateInput) (<-chan agent.Chunk, error) {
	c.mu.Lock()
	c.calls = append(c.calls, input)
	entry, err := c.takeEntry(input)
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if entry.BlockUntilCancelled {
		return holdUntilCancelled(ctx, entry), nil
	}
	if entry.WaitCh != nil {
		if !waitForRelease(ctx, entry) {
			return closedStream(), nil
		}
	}
	if entry.Error != nil {
		return nil, entry.Error
	}
	return preloadedStream(entry), nil
}

// Close implements agent.LLMClient.
func (c *ScriptedLLMClient) Close() error { return nil }

// CallCount returns the total number of Generate() calls made.
func (c *ScriptedLLMClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

// CallsFor returns how many Generate() calls carried the given agent id.
func (c *ScriptedLLMClient) CallsFor(agentID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, input := range c.calls {
		if input.AgentID == agentID {
			n++
		}
	}
	return n
}

// Inputs returns a copy of every captured GenerateInput in call order.
func (c *ScriptedLLMClient) Inputs() []*agent.GenerateInput {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*agent.GenerateInput, len(c.calls))
	copy(out, c.calls)
	return out
}

// takeEntry selects the next script entry: routed dispatch first, then the
// sequential script. Must be called with c.mu held.
func (c *ScriptedLLMClient) takeEntry(input *agent.GenerateInput) (*LLMScriptEntry, error) {
	if input.AgentID != "" {
		if entries, ok := c.routed[input.AgentID]; ok {
			idx := c.routeIdx[input.AgentID]
			if idx < len(entries) {
				c.routeIdx[input.AgentID] = idx + 1
				return &entries[idx], nil
			}
		}
	}

	if c.seqNext < len(c.script) {
		entry := &c.script[c.seqNext]
		c.seqNext++
		return entry, nil
	}

	return nil, fmt.Errorf("ScriptedLLMClient: no more entries (agent=%q, sequential=%d/%d)",
		input.AgentID, c.seqNext, len(c.script))
}

// holdUntilCancelled returns a stream that yields nothing and closes only
// when the caller's context is cancelled.
func holdUntilCancelled(ctx context.Context, entry *LLMScriptEntry) <-chan agent.Chunk {
	ch := make(chan agent.Chunk)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	if entry.OnBlock != nil {
		entry.OnBlock <- struct{}{}
	}
	return ch
}

// waitForRelease parks until the entry's WaitCh is closed. Reports false if
// the context was cancelled first.
func waitForRelease(ctx context.Context, entry *LLMScriptEntry) bool {
	if entry.OnBlock != nil {
		entry.OnBlock <- struct{}{}
	}
	select {
	case <-entry.WaitCh:
		return true
	case <-ctx.Done():
		return false
	}
}

func closedStream() <-chan agent.Chunk {
	ch := make(chan agent.Chunk)
	close(ch)
	return ch
}

// preloadedStream buffers the entry's chunks into a channel that is already
// closed, so consumers drain it without coordination. A bare Text entry
// expands to one delta chunk and a stop chunk with token usage.
func preloadedStream(entry *LLMScriptEntry) <-chan agent.Chunk {
	chunks := entry.Chunks
	if len(chunks) == 0 && entry.Text != "" {
		chunks = []agent.Chunk{
			{Delta: entry.Text},
			{FinishReason: "stop", Usage: &agent.Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		}
	}

	ch := make(chan agent.Chunk, len(chunks))
	for _, chunk := range chunks {
		ch <- chunk
	}
	close(ch)
	return ch
}
