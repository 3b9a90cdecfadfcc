package queue

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/pkg/agent"
	"github.com/taskwire/taskwire/pkg/cache"
	"github.com/taskwire/taskwire/pkg/config"
	"github.com/taskwire/taskwire/pkg/models"
	"github.com/taskwire/taskwire/pkg/resilience"
	"github.com/taskwire/taskwire/pkg/router"
	"github.com/taskwire/taskwire/pkg/workflow"
)

// scriptedLLMClient fails per agent id and succeeds with fixed text otherwise.
type scriptedLLMClient struct {
	mu      sync.Mutex
	text    string
	failFor map[string]error
	calls   map[string]int
}

func (f *scriptedLLMClient) Generate(_ context.Context, input *agent.GenerateInput) (<-chan agent.Chunk, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[input.AgentID]++
	if err := f.failFor[input.AgentID]; err != nil {
		return nil, err
	}
	ch := make(chan agent.Chunk, 2)
	ch <- agent.Chunk{Delta: f.text}
	ch <- agent.Chunk{FinishReason: "stop"}
	close(ch)
	return ch, nil
}

func (f *scriptedLLMClient) Close() error { return nil }

func (f *scriptedLLMClient) callCount(agentID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[agentID]
}

// newTestExecutor builds an executor with an in-memory cache, real breakers,
// and millisecond retry backoff. No database behind it, so only the paths
// that stop short of task bookkeeping are exercised here.
func newTestExecutor(t *testing.T, llm agent.LLMClient) *RealTaskExecutor {
	t.Helper()

	builtin := config.GetBuiltinConfig()
	cfg := &config.Config{
		Keywords:         config.DefaultKeywordConfig(),
		Resilience:       config.DefaultResilienceConfig(),
		LLM:              config.DefaultLLMConfig(),
		Cache:            config.DefaultCacheConfig(),
		AgentRegistry:    config.NewAgentRegistry(builtin.Agents),
		Assignments:      config.NewAssignmentMap(builtin.Assignments),
		TemplateRegistry: config.NewTemplateRegistry(builtin.Templates),
	}
	cfg.Resilience.AgentRetry = config.RetryConfig{
		MaxAttempts: 2,
		BaseDelay:   time.Millisecond,
		MaxDelay:    5 * time.Millisecond,
		ExpBase:     2,
	}

	mem, err := cache.NewMemoryCache(cfg.Cache)
	require.NoError(t, err)

	return &RealTaskExecutor{
		cfg:           cfg,
		router:        router.NewRouter(cfg),
		engine:        workflow.NewEngine(cfg.TemplateRegistry),
		llmClient:     llm,
		promptBuilder: agent.NewPromptBuilder(),
		breakers:      resilience.NewBreakerManager(cfg.Resilience.Breaker),
		resultCache:   mem,
	}
}

func testStep(agentID string) *workflow.Step {
	return &workflow.Step{
		Agent:          agentID,
		Task:           "Implement the requested change.",
		TimeoutSeconds: 60,
	}
}

func testModelTask() *models.Task {
	return &models.Task{
		TaskID:      "task-1",
		Title:       "Fix the login crash",
		Description: "Login panics when the session cookie is expired.",
		TaskType:    models.TaskTypeBugReport,
		Priority:    models.PriorityHigh,
		Status:      models.StatusRunning,
	}
}

func TestInvokeWithFallback(t *testing.T) {
	logger := slog.Default()

	t.Run("assigned agent succeeds", func(t *testing.T) {
		llm := &scriptedLLMClient{text: "patched"}
		e := newTestExecutor(t, llm)

		outcome := e.invokeWithFallback(context.Background(), testModelTask(), testStep("coder"), nil, logger)
		require.NoError(t, outcome.err)
		assert.Equal(t, "patched", outcome.text)
		assert.Equal(t, "coder", outcome.servedBy)
		assert.False(t, outcome.degraded)
		assert.False(t, outcome.cacheHit)
		assert.Equal(t, 1, llm.callCount("coder"))
	})

	t.Run("falls back to the next agent in the chain", func(t *testing.T) {
		llm := &scriptedLLMClient{
			text:    "handled by fallback",
			failFor: map[string]error{"coder": resilience.NewPermanentError(errors.New("model rejected request"), "bad request")},
		}
		e := newTestExecutor(t, llm)

		outcome := e.invokeWithFallback(context.Background(), testModelTask(), testStep("coder"), nil, logger)
		require.NoError(t, outcome.err)
		assert.Equal(t, "general", outcome.servedBy, "default chain routes coder to general")
		assert.True(t, outcome.degraded)
		// Permanent errors are not retried
		assert.Equal(t, 1, llm.callCount("coder"))
		assert.Equal(t, 1, llm.callCount("general"))
	})

	t.Run("transient errors are retried before falling back", func(t *testing.T) {
		llm := &scriptedLLMClient{
			text:    "ok",
			failFor: map[string]error{"coder": resilience.NewTransientError(errors.New("connection refused"), "sidecar unavailable")},
		}
		e := newTestExecutor(t, llm)

		outcome := e.invokeWithFallback(context.Background(), testModelTask(), testStep("coder"), nil, logger)
		require.NoError(t, outcome.err)
		assert.Equal(t, "general", outcome.servedBy)
		assert.Equal(t, 2, llm.callCount("coder"), "retry budget is spent before handing over")
	})

	t.Run("cache hit short-circuits the call", func(t *testing.T) {
		llm := &scriptedLLMClient{text: "fresh"}
		e := newTestExecutor(t, llm)

		task := testModelTask()
		step := testStep("coder")
		input := e.buildInput("coder", task, step, nil)
		key := "coder:" + input.Fingerprint()
		require.NoError(t, cache.SetJSON(context.Background(), e.resultCache, cache.NamespaceAgentResponses, key, "cached answer"))

		outcome := e.invokeWithFallback(context.Background(), task, step, nil, logger)
		require.NoError(t, outcome.err)
		assert.Equal(t, "cached answer", outcome.text)
		assert.True(t, outcome.cacheHit)
		assert.False(t, outcome.degraded)
		assert.Equal(t, 0, llm.callCount("coder"), "cache hit must not reach the model")
	})

	t.Run("every candidate failing surfaces the last error", func(t *testing.T) {
		llm := &scriptedLLMClient{
			failFor: map[string]error{
				"coder":   resilience.NewPermanentError(errors.New("boom"), "coder down"),
				"general": resilience.NewPermanentError(errors.New("boom"), "general down"),
			},
		}
		e := newTestExecutor(t, llm)

		outcome := e.invokeWithFallback(context.Background(), testModelTask(), testStep("coder"), nil, logger)
		require.Error(t, outcome.err)
		assert.Contains(t, outcome.err.Error(), "general down")
	})

	t.Run("cancelled context stops the walk", func(t *testing.T) {
		llm := &scriptedLLMClient{text: "never"}
		e := newTestExecutor(t, llm)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		outcome := e.invokeWithFallback(ctx, testModelTask(), testStep("coder"), nil, logger)
		require.Error(t, outcome.err)
		assert.ErrorIs(t, outcome.err, context.Canceled)
		assert.Equal(t, 0, llm.callCount("coder"))
	})

	t.Run("open breaker hands over without calling the model", func(t *testing.T) {
		llm := &scriptedLLMClient{
			text:    "served elsewhere",
			failFor: map[string]error{"coder": resilience.NewPermanentError(errors.New("boom"), "coder down")},
		}
		e := newTestExecutor(t, llm)
		e.cfg.Resilience.Breaker.FailureThreshold = 1
		e.breakers = resilience.NewBreakerManager(e.cfg.Resilience.Breaker)

		// First walk records the failure and opens coder's breaker.
		first := e.invokeWithFallback(context.Background(), testModelTask(), testStep("coder"), nil, logger)
		require.NoError(t, first.err)
		assert.Equal(t, 1, llm.callCount("coder"))

		// Second walk is rejected by the open breaker before the call.
		second := e.invokeWithFallback(context.Background(), testModelTask(), testStep("coder"), nil, logger)
		require.NoError(t, second.err)
		assert.Equal(t, "general", second.servedBy)
		assert.True(t, second.degraded)
		assert.Equal(t, 1, llm.callCount("coder"), "open breaker must fail fast")
	})
}

func TestBuildInput(t *testing.T) {
	e := newTestExecutor(t, &scriptedLLMClient{})

	t.Run("fills transport defaults", func(t *testing.T) {
		input := e.buildInput("coder", testModelTask(), testStep("coder"), nil)
		assert.Equal(t, "coder", input.AgentID)
		assert.NotEmpty(t, input.Model)
		assert.Equal(t, int32(e.cfg.LLM.MaxTokens), input.MaxTokens)
		require.NotNil(t, input.Temperature)
		assert.InDelta(t, e.cfg.LLM.Temperature, float64(*input.Temperature), 0.001)
	})

	t.Run("unknown agent falls back to the default model", func(t *testing.T) {
		input := e.buildInput("nonexistent", testModelTask(), testStep("nonexistent"), nil)
		assert.Equal(t, e.cfg.LLM.DefaultModel, input.Model)
		assert.NotEmpty(t, input.SystemPrompt, "unknown agents still get a generic prompt")
	})
}

func TestAgentChain(t *testing.T) {
	e := newTestExecutor(t, &scriptedLLMClient{})

	t.Run("assigned agent first, then configured fallbacks", func(t *testing.T) {
		assert.Equal(t, []string{"bug", "tester", "general"}, e.agentChain("bug"))
	})

	t.Run("agent without fallbacks stands alone", func(t *testing.T) {
		assert.Equal(t, []string{"general"}, e.agentChain("general"))
	})

	t.Run("duplicates are dropped in order", func(t *testing.T) {
		e.cfg.Resilience.FallbackChains["looper"] = []string{"general", "looper", "general"}
		assert.Equal(t, []string{"looper", "general"}, e.agentChain("looper"))
	})
}

func TestMapCancellation(t *testing.T) {
	executor := &RealTaskExecutor{}

	t.Run("active context returns nil", func(t *testing.T) {
		result := executor.mapCancellation(context.Background())
		assert.Nil(t, result)
	})

	t.Run("cancelled context returns failed with Canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result := executor.mapCancellation(ctx)
		require.NotNil(t, result)
		assert.Equal(t, models.StatusFailed, result.Status)
		assert.ErrorIs(t, result.Error, context.Canceled)
	})

	t.Run("deadline exceeded returns failed with timeout cause", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 0)
		defer cancel()
		// Wait for the deadline to pass
		<-ctx.Done()

		result := executor.mapCancellation(ctx)
		require.NotNil(t, result)
		assert.Equal(t, models.StatusFailed, result.Status)
		assert.Contains(t, result.Error.Error(), "timed out")
	})
}

func TestStepFailureError(t *testing.T) {
	t.Run("no failed steps returns nil", func(t *testing.T) {
		exec := &workflow.Execution{Steps: []*workflow.Step{
			{Agent: "coder", Status: workflow.StepCompleted},
		}}
		assert.NoError(t, stepFailureError(exec))
	})

	t.Run("failed steps are listed with their errors", func(t *testing.T) {
		exec := &workflow.Execution{Steps: []*workflow.Step{
			{Agent: "coder", Status: workflow.StepCompleted},
			{Agent: "tester", Status: workflow.StepFailed, Error: "suite crashed"},
			{Agent: "docs", Status: workflow.StepFailed, Error: "no template"},
		}}
		err := stepFailureError(exec)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "2 step(s) failed")
		assert.Contains(t, err.Error(), "tester: suite crashed")
		assert.Contains(t, err.Error(), "docs: no template")
	})
}

func TestRenderSummary(t *testing.T) {
	exec := &workflow.Execution{
		WorkflowID: "bug_investigation",
		Mode:       "staged",
		Steps: []*workflow.Step{
			{Agent: "bug", Task: "Reproduce the crash.", Status: workflow.StepCompleted, Result: "Reproduced on v1.4.2.", CacheHit: true},
			{Agent: "coder", Task: "Fix the crash.", Status: workflow.StepCompleted, Result: strings.Repeat("x", maxDigestChars+100), Degraded: true, ServedBy: "general"},
		},
	}

	summary := renderSummary(exec)
	assert.Contains(t, summary, "Workflow bug_investigation completed 2 step(s) in staged mode.")
	assert.Contains(t, summary, "1 served from cache.")
	assert.Contains(t, summary, "1 handled by fallback agents.")
	assert.Contains(t, summary, "[bug] Reproduce the crash.")
	assert.Contains(t, summary, "Reproduced on v1.4.2.")
	assert.Contains(t, summary, "truncated; full output in the conversation log")
}

func TestDeliveryRecipient(t *testing.T) {
	t.Run("no email metadata means no recipient", func(t *testing.T) {
		assert.Equal(t, "", deliveryRecipient(&models.Task{}))
	})

	t.Run("sender is the default recipient", func(t *testing.T) {
		task := &models.Task{EmailMetadata: &models.EmailMetadata{Sender: "dev@example.com"}}
		assert.Equal(t, "dev@example.com", deliveryRecipient(task))
	})

	t.Run("reply-to wins over sender", func(t *testing.T) {
		task := &models.Task{EmailMetadata: &models.EmailMetadata{
			Sender:  "dev@example.com",
			ReplyTo: "team@example.com",
		}}
		assert.Equal(t, "team@example.com", deliveryRecipient(task))
	})
}

func TestRedriveEntryID(t *testing.T) {
	t.Run("first-run task has no entry", func(t *testing.T) {
		assert.Equal(t, "", redriveEntryID(&models.Task{}))
	})

	t.Run("redrive task carries its entry id", func(t *testing.T) {
		task := &models.Task{Context: map[string]any{"dlq_entry_id": "dlq-42"}}
		assert.Equal(t, "dlq-42", redriveEntryID(task))
	})

	t.Run("non-string value is ignored", func(t *testing.T) {
		task := &models.Task{Context: map[string]any{"dlq_entry_id": 42}}
		assert.Equal(t, "", redriveEntryID(task))
	})
}

func TestFirstFailedAgent(t *testing.T) {
	exec := &workflow.Execution{Steps: []*workflow.Step{
		{Agent: "coder", Status: workflow.StepCompleted},
		{Agent: "tester", Status: workflow.StepFailed, Error: "boom"},
		{Agent: "docs", Status: workflow.StepFailed, Error: "boom"},
	}}
	assert.Equal(t, "tester", firstFailedAgent(exec))

	empty := &workflow.Execution{Steps: []*workflow.Step{
		{Agent: "coder", Status: workflow.StepCompleted},
	}}
	assert.Equal(t, "", firstFailedAgent(empty))
}

func TestRouteContext(t *testing.T) {
	e := &RealTaskExecutor{}

	t.Run("valid priority is pinned", func(t *testing.T) {
		rc := e.routeContext(&models.Task{Priority: models.PriorityUrgent})
		assert.Equal(t, models.PriorityUrgent, rc.Priority)
	})

	t.Run("working dir comes from task context", func(t *testing.T) {
		rc := e.routeContext(&models.Task{
			Priority: models.PriorityMedium,
			Context:  map[string]any{"working_dir": "/srv/app"},
		})
		assert.Equal(t, "/srv/app", rc.WorkingDir)
	})

	t.Run("invalid priority is left to the router", func(t *testing.T) {
		rc := e.routeContext(&models.Task{Priority: "screaming"})
		assert.Equal(t, models.Priority(""), rc.Priority)
	})
}

