package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskwire/taskwire/pkg/agent"
	"github.com/taskwire/taskwire/pkg/cache"
	"github.com/taskwire/taskwire/pkg/models"
	"github.com/taskwire/taskwire/pkg/resilience"
	"github.com/taskwire/taskwire/pkg/services"
	"github.com/taskwire/taskwire/pkg/workflow"
)

// ────────────────────────────────────────────────────────────
// executeStep — single workflow step
// ────────────────────────────────────────────────────────────

// executeStep runs one step end to end: cache lookup, guarded agent call with
// fallback, then bookkeeping (step status, conversation entry, progress).
// Safe to call concurrently for steps of the same execution.
func (e *RealTaskExecutor) executeStep(
	ctx context.Context,
	task *models.Task,
	exec *workflow.Execution,
	step *workflow.Step,
	prior []agent.StepOutput,
) stepOutcome {
	logger := slog.With(
		"task_id", task.TaskID,
		"agent", step.Agent,
	)

	if err := exec.UpdateStepStatus(step.Agent, workflow.StepRunning, workflow.StepUpdate{}); err != nil {
		return stepOutcome{agentID: step.Agent, err: err}
	}
	e.publishProgress(ctx, task.TaskID, exec.Progress(), step.Agent, "Running step: "+step.Agent)

	// Per-step deadline on top of the task-level one
	stepCtx, cancel := context.WithTimeout(ctx, step.Timeout())
	defer cancel()

	outcome := e.invokeWithFallback(stepCtx, task, step, prior, logger)
	outcome.agentID = step.Agent

	if outcome.err != nil {
		e.recordStepFailure(task.TaskID, exec, step, outcome, logger)
	} else {
		e.recordStepSuccess(task.TaskID, exec, step, outcome, logger)
	}
	return outcome
}

// invokeWithFallback tries the step's assigned agent, then walks its fallback
// chain. Every candidate gets the full breaker+retry treatment; a candidate
// whose breaker is open fails fast and hands over to the next one. A dead
// context stops the walk immediately.
func (e *RealTaskExecutor) invokeWithFallback(
	ctx context.Context,
	task *models.Task,
	step *workflow.Step,
	prior []agent.StepOutput,
	logger *slog.Logger,
) stepOutcome {
	chain := e.agentChain(step.Agent)

	var lastErr error
	for i, candidate := range chain {
		if err := ctx.Err(); err != nil {
			if lastErr == nil {
				lastErr = err
			}
			break
		}

		input := e.buildInput(candidate, task, step, prior)
		cacheKey := candidate + ":" + input.Fingerprint()

		// Cache lookup short-circuits the call entirely
		var cachedText string
		if found, err := cache.GetJSON(ctx, e.resultCache, cache.NamespaceAgentResponses, cacheKey, &cachedText); err != nil {
			logger.Warn("Agent response cache lookup failed", "error", err)
		} else if found {
			logger.Info("Agent response served from cache", "served_by", candidate)
			return stepOutcome{
				text:     cachedText,
				cacheHit: true,
				degraded: i > 0,
				servedBy: candidate,
			}
		}

		resp, err := resilience.Invoke(ctx, e.breakers.Get(candidate), e.cfg.Resilience.AgentRetry, "agent "+candidate,
			func(ctx context.Context) (*agent.Response, error) {
				callCtx := ctx
				if e.cfg.LLM.CallTimeout > 0 {
					var cancel context.CancelFunc
					callCtx, cancel = context.WithTimeout(ctx, e.cfg.LLM.CallTimeout)
					defer cancel()
				}
				return agent.GenerateText(callCtx, e.llmClient, input)
			})
		if err != nil {
			lastErr = err
			logger.Warn("Agent invocation failed",
				"served_by", candidate,
				"fallback_position", i,
				"error", err,
			)
			if e.warnings != nil && errors.Is(err, resilience.ErrCircuitOpen) {
				e.warnings.AddWarning(services.WarningCategoryAgentHealth,
					fmt.Sprintf("circuit open for agent %q", candidate), err.Error(), "executor")
			}
			continue
		}

		if err := cache.SetJSON(ctx, e.resultCache, cache.NamespaceAgentResponses, cacheKey, resp.Text); err != nil {
			logger.Warn("Agent response cache store failed", "error", err)
		}
		return stepOutcome{
			text:     resp.Text,
			degraded: i > 0,
			servedBy: candidate,
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no agent available for step %q", step.Agent)
	}
	return stepOutcome{err: lastErr}
}

// agentChain returns the step's agent followed by its configured fallbacks,
// de-duplicated in order.
func (e *RealTaskExecutor) agentChain(agentID string) []string {
	chain := []string{agentID}
	seen := map[string]bool{agentID: true}
	for _, fb := range e.cfg.Resilience.FallbackChains[agentID] {
		if seen[fb] {
			continue
		}
		seen[fb] = true
		chain = append(chain, fb)
	}
	return chain
}

// buildInput assembles the generation request, applying the transport-level
// defaults the agent profile leaves unset. An unknown candidate still gets a
// generic prompt; its id keys the breaker and the cache either way.
func (e *RealTaskExecutor) buildInput(agentID string, task *models.Task, step *workflow.Step, prior []agent.StepOutput) *agent.GenerateInput {
	profile, err := e.cfg.GetAgent(agentID)
	if err != nil {
		profile = nil
	}
	input := e.promptBuilder.BuildStepInput(agentID, profile, task, step, prior)
	if input.Model == "" {
		input.Model = e.cfg.LLM.DefaultModel
	}
	if e.cfg.LLM.MaxTokens > 0 {
		input.MaxTokens = int32(e.cfg.LLM.MaxTokens)
	}
	temperature := float32(e.cfg.LLM.Temperature)
	input.Temperature = &temperature
	return input
}

// ────────────────────────────────────────────────────────────
// Step bookkeeping
// ────────────────────────────────────────────────────────────

// recordStepSuccess persists the completed step: execution state, a response
// conversation entry, and refreshed progress. Writes use a background context
// so a cancellation arriving mid-bookkeeping cannot lose the result.
func (e *RealTaskExecutor) recordStepSuccess(taskID string, exec *workflow.Execution, step *workflow.Step, outcome stepOutcome, logger *slog.Logger) {
	if err := exec.UpdateStepStatus(step.Agent, workflow.StepCompleted, workflow.StepUpdate{
		Result:   outcome.text,
		CacheHit: outcome.cacheHit,
		Degraded: outcome.degraded,
		ServedBy: outcome.servedBy,
	}); err != nil {
		logger.Warn("Failed to update step status", "error", err)
	}

	metadata := map[string]interface{}{"step": step.Agent}
	if outcome.cacheHit {
		metadata["cache_hit"] = true
	}
	if outcome.degraded {
		metadata["degraded"] = true
		metadata["served_by"] = outcome.servedBy
	}
	entry, err := e.taskService.AppendConversation(context.Background(), models.AppendConversationRequest{
		TaskID:   taskID,
		AgentID:  outcome.servedBy,
		Role:     string(models.RoleResponse),
		Content:  outcome.text,
		Metadata: metadata,
	})
	if err != nil {
		logger.Warn("Failed to append conversation entry", "error", err)
	} else {
		e.publishConversation(taskID, entry)
	}

	e.recordProgress(taskID, exec, step.Agent, "Step completed: "+step.Agent)

	logger.Info("Step completed",
		"served_by", outcome.servedBy,
		"cache_hit", outcome.cacheHit,
		"degraded", outcome.degraded,
	)
}

// recordStepFailure persists the failed step: execution state, an error
// conversation entry, a processing note, and refreshed progress.
func (e *RealTaskExecutor) recordStepFailure(taskID string, exec *workflow.Execution, step *workflow.Step, outcome stepOutcome, logger *slog.Logger) {
	if err := exec.UpdateStepStatus(step.Agent, workflow.StepFailed, workflow.StepUpdate{
		Error: outcome.err.Error(),
	}); err != nil {
		logger.Warn("Failed to update step status", "error", err)
	}

	entry, err := e.taskService.AppendConversation(context.Background(), models.AppendConversationRequest{
		TaskID:  taskID,
		AgentID: step.Agent,
		Role:    string(models.RoleError),
		Content: outcome.err.Error(),
	})
	if err != nil {
		logger.Warn("Failed to append conversation entry", "error", err)
	} else {
		e.publishConversation(taskID, entry)
	}

	if _, err := e.taskService.AppendNote(context.Background(), taskID, fmt.Sprintf("Step %s failed: %s", step.Agent, outcome.err)); err != nil {
		logger.Warn("Failed to record step failure note", "error", err)
	}

	e.recordProgress(taskID, exec, step.Agent, "Step failed: "+step.Agent)

	logger.Error("Step failed", "error", outcome.err)
}

// recordProgress persists the monotonic progress value and mirrors it as a
// transient event.
func (e *RealTaskExecutor) recordProgress(taskID string, exec *workflow.Execution, agentID, statusText string) {
	progress := exec.Progress()
	ctx := context.Background()
	if err := e.taskService.UpdateProgress(ctx, taskID, progress); err != nil {
		slog.Warn("Failed to update task progress",
			"task_id", taskID,
			"progress", progress,
			"error", err,
		)
	}
	e.publishProgress(ctx, taskID, progress, agentID, statusText)
}
