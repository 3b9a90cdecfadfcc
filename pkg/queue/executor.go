package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/taskwire/taskwire/ent"
	"github.com/taskwire/taskwire/pkg/agent"
	"github.com/taskwire/taskwire/pkg/cache"
	"github.com/taskwire/taskwire/pkg/config"
	"github.com/taskwire/taskwire/pkg/events"
	"github.com/taskwire/taskwire/pkg/mailer"
	"github.com/taskwire/taskwire/pkg/models"
	"github.com/taskwire/taskwire/pkg/resilience"
	"github.com/taskwire/taskwire/pkg/router"
	"github.com/taskwire/taskwire/pkg/services"
	"github.com/taskwire/taskwire/pkg/workflow"
)

// RealTaskExecutor implements TaskExecutor using the router, the workflow
// engine, and the agent framework.
type RealTaskExecutor struct {
	cfg            *config.Config
	router         *router.Router
	engine         *workflow.Engine
	llmClient      agent.LLMClient
	promptBuilder  *agent.PromptBuilder
	taskService    *services.TaskService
	dlqService     *services.DLQService
	breakers       *resilience.BreakerManager
	resultCache    cache.Cache
	mailer         *mailer.Service
	eventPublisher EventPublisher
	warnings       *services.SystemWarningsService
}

// NewRealTaskExecutor creates a new task executor.
// dlqService may be nil (failed runs are not parked for redrive).
// mailerService may be nil (results are never delivered by mail).
// eventPublisher may be nil (live updates disabled).
// warnings may be nil (degradations are only logged).
func NewRealTaskExecutor(
	cfg *config.Config,
	llmClient agent.LLMClient,
	taskService *services.TaskService,
	dlqService *services.DLQService,
	breakers *resilience.BreakerManager,
	resultCache cache.Cache,
	mailerService *mailer.Service,
	eventPublisher EventPublisher,
	warnings *services.SystemWarningsService,
) *RealTaskExecutor {
	return &RealTaskExecutor{
		cfg:            cfg,
		router:         router.NewRouter(cfg),
		engine:         workflow.NewEngine(cfg.TemplateRegistry),
		llmClient:      llmClient,
		promptBuilder:  agent.NewPromptBuilder(),
		taskService:    taskService,
		dlqService:     dlqService,
		breakers:       breakers,
		resultCache:    resultCache,
		mailer:         mailerService,
		eventPublisher: eventPublisher,
		warnings:       warnings,
	}
}

// ────────────────────────────────────────────────────────────
// Internal types
// ────────────────────────────────────────────────────────────

// stepOutcome captures the result of a single workflow step.
type stepOutcome struct {
	agentID  string // the step's assigned agent (stable step identity)
	text     string
	cacheHit bool
	degraded bool   // served by a fallback agent instead of the assigned one
	servedBy string // the agent that actually produced the text
	err      error  // non-nil only when every candidate in the chain failed
}

// indexedStepOutcome pairs a stepOutcome with its original launch index.
type indexedStepOutcome struct {
	index   int
	outcome stepOutcome
}

// ────────────────────────────────────────────────────────────
// Execute — main entry point
// ────────────────────────────────────────────────────────────

// Execute runs the task end to end: route, materialize the workflow, run the
// steps in the template's mode, then deliver the result. Terminal step
// failures park the task in the dead-letter queue. The returned status is
// written by the worker; everything else (conversation, notes, progress,
// result summary) is persisted here as the run advances.
func (e *RealTaskExecutor) Execute(ctx context.Context, row *ent.Task) *ExecutionResult {
	logger := slog.With(
		"task_id", row.ID,
		"task_type", row.TaskType,
		"priority", row.Priority,
	)
	logger.Info("Task executor: starting execution")

	task := models.TaskFromRow(row)

	// 1. Build the execution plan
	plan, err := e.router.Route(ctx, task, e.routeContext(task))
	if err != nil {
		if r := e.mapCancellation(ctx); r != nil {
			return r
		}
		return e.failBeforeRun(row.ID, fmt.Errorf("routing failed: %w", err))
	}

	// 2. Persist the routing decision (best-effort; the plan itself is the
	// source of truth for this run)
	primary := config.FallbackAgentID
	if len(plan.RoutingDecision.PrimaryAgents) > 0 {
		primary = plan.RoutingDecision.PrimaryAgents[0]
	}
	if err := e.taskService.RecordAssignment(ctx, row.ID, primary, plan.RoutingDecision.SecondaryAgents, plan.RoutingDecision.Reasoning); err != nil {
		logger.Warn("Failed to record assignment", "error", err)
	}
	if _, err := e.taskService.AppendNote(ctx, row.ID, "Routing: "+plan.RoutingDecision.Reasoning); err != nil {
		logger.Warn("Failed to record routing note", "error", err)
	}
	// Keep the in-memory copies aligned with what was just persisted; the
	// dead-letter snapshot reads from the row, failure bookkeeping from the model.
	row.PrimaryAgent = primary
	row.SupportingAgents = plan.RoutingDecision.SecondaryAgents
	row.AssignmentReason = plan.RoutingDecision.Reasoning
	task.PrimaryAgent = primary
	task.SupportingAgents = plan.RoutingDecision.SecondaryAgents
	task.AssignmentReason = plan.RoutingDecision.Reasoning

	// 3. Materialize the workflow
	exec, err := e.engine.CreateExecution(row.ID, plan.RoutingDecision.WorkflowType, config.ExecutionMode(plan.Mode), plan.ExecutionSteps)
	if err != nil {
		return e.failBeforeRun(row.ID, fmt.Errorf("workflow %q: %w", plan.RoutingDecision.WorkflowType, err))
	}

	logger.Info("Workflow materialized",
		"workflow_id", exec.WorkflowID,
		"mode", exec.Mode,
		"steps", len(exec.Steps),
	)

	// 4. Run the steps in the template's mode
	var runErr error
	switch config.ExecutionMode(exec.Mode) {
	case config.ModeParallel:
		runErr = e.runParallel(ctx, task, exec)
	case config.ModeSequential:
		runErr = e.runSequential(ctx, task, exec)
	default:
		runErr = e.runStaged(ctx, task, exec)
	}

	// 5. Cancellation trumps step errors: a cancelled run reports the
	// cancellation whatever state the steps were left in
	if r := e.mapCancellation(ctx); r != nil {
		r.Report = exec.ExportReport()
		return r
	}

	// 6. Terminal failure: park in the dead-letter queue and fail
	if runErr != nil {
		return e.recordTerminalFailure(row, task, exec, runErr)
	}

	// 7. Success: digest, persist the result, settle redrive, deliver
	return e.finishRun(row, task, exec, logger)
}

// ────────────────────────────────────────────────────────────
// Mode runners
// ────────────────────────────────────────────────────────────

// runParallel launches every step at once. Steps see no prior outputs; the
// run fails only after all of them have finished.
func (e *RealTaskExecutor) runParallel(ctx context.Context, task *models.Task, exec *workflow.Execution) error {
	e.fanOutSteps(ctx, task, exec, exec.Steps, nil)
	return stepFailureError(exec)
}

// runSequential executes steps in declaration order, feeding each one the
// outputs of all earlier steps. Fail-fast: the first failed step stops the run.
func (e *RealTaskExecutor) runSequential(ctx context.Context, task *models.Task, exec *workflow.Execution) error {
	var prior []agent.StepOutput
	for _, step := range exec.Steps {
		// Check for cancellation between steps
		if ctx.Err() != nil {
			return ctx.Err()
		}
		outcome := e.executeStep(ctx, task, exec, step, prior)
		if outcome.err != nil {
			return stepFailureError(exec)
		}
		prior = append(prior, agent.StepOutput{Agent: step.Agent, Result: outcome.text})
	}
	return nil
}

// runStaged groups steps by their dependency depth and runs each stage as a
// parallel fan-out. Later stages see the outputs of all earlier stages; a
// stage with failures finishes its in-flight steps before the run stops.
func (e *RealTaskExecutor) runStaged(ctx context.Context, task *models.Task, exec *workflow.Execution) error {
	stages, err := workflow.ExecutionStages(exec.Steps)
	if err != nil {
		return fmt.Errorf("staging steps: %w", err)
	}

	var prior []agent.StepOutput
	for _, stage := range stages {
		// Check for cancellation between stages
		if ctx.Err() != nil {
			return ctx.Err()
		}

		outcomes := e.fanOutSteps(ctx, task, exec, stage, prior)
		exec.AdvanceStage()

		if err := stepFailureError(exec); err != nil {
			return err
		}
		for i, step := range stage {
			prior = append(prior, agent.StepOutput{Agent: step.Agent, Result: outcomes[i].text})
		}
	}
	return nil
}

// fanOutSteps runs a set of steps concurrently and returns their outcomes in
// launch order. All steps in the set share the same prior outputs.
func (e *RealTaskExecutor) fanOutSteps(ctx context.Context, task *models.Task, exec *workflow.Execution, steps []*workflow.Step, prior []agent.StepOutput) []stepOutcome {
	results := make(chan indexedStepOutcome, len(steps))
	var wg sync.WaitGroup

	for i, step := range steps {
		wg.Add(1)
		go func(idx int, st *workflow.Step) {
			defer wg.Done()
			results <- indexedStepOutcome{index: idx, outcome: e.executeStep(ctx, task, exec, st, prior)}
		}(i, step)
	}

	wg.Wait()
	close(results)

	var indexed []indexedStepOutcome
	for r := range results {
		indexed = append(indexed, r)
	}
	sort.Slice(indexed, func(i, j int) bool {
		return indexed[i].index < indexed[j].index
	})

	outcomes := make([]stepOutcome, len(indexed))
	for i, r := range indexed {
		outcomes[i] = r.outcome
	}
	return outcomes
}

// stepFailureError summarizes the execution's failed steps as a single error,
// or nil when none failed.
func stepFailureError(exec *workflow.Execution) error {
	failed := exec.FailedSteps()
	if len(failed) == 0 {
		return nil
	}
	parts := make([]string, 0, len(failed))
	for _, s := range failed {
		parts = append(parts, fmt.Sprintf("%s: %s", s.Agent, s.Error))
	}
	return fmt.Errorf("%d step(s) failed: %s", len(failed), strings.Join(parts, "; "))
}

// ────────────────────────────────────────────────────────────
// Helper methods
// ────────────────────────────────────────────────────────────

// routeContext carries the claimed row's settled priority into routing so the
// plan cannot downgrade what ingestion already decided.
func (e *RealTaskExecutor) routeContext(task *models.Task) *router.RouteContext {
	rc := &router.RouteContext{}
	if task.Priority.Valid() {
		rc.Priority = task.Priority
	}
	if task.Context != nil {
		if wd, ok := task.Context["working_dir"].(string); ok {
			rc.WorkingDir = wd
		}
	}
	return rc
}

// mapCancellation translates a cancelled or expired context into a terminal
// result, or nil while ctx is live. The cause lands in the task's
// error_message when the worker finalizes; an API cancel has already written
// its own note.
func (e *RealTaskExecutor) mapCancellation(ctx context.Context) *ExecutionResult {
	if ctx.Err() == nil {
		return nil
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &ExecutionResult{
			Status: models.StatusFailed,
			Error:  fmt.Errorf("task execution timed out"),
		}
	}
	return &ExecutionResult{
		Status: models.StatusFailed,
		Error:  context.Canceled,
	}
}

// failBeforeRun fails a task that never reached its workflow: routing or
// materialization fell over. These are deterministic configuration failures a
// redrive cannot fix, so no dead-letter entry is created.
func (e *RealTaskExecutor) failBeforeRun(taskID string, cause error) *ExecutionResult {
	slog.Error("Task failed before workflow start", "task_id", taskID, "error", cause)
	if _, err := e.taskService.AppendNote(context.Background(), taskID, "Execution failed: "+cause.Error()); err != nil {
		slog.Warn("Failed to record failure note", "task_id", taskID, "error", err)
	}
	return &ExecutionResult{
		Status: models.StatusFailed,
		Error:  cause,
	}
}

// ────────────────────────────────────────────────────────────
// Event publishing (nil-safe, best-effort)
// ────────────────────────────────────────────────────────────

// publishProgress publishes a task.progress transient event.
func (e *RealTaskExecutor) publishProgress(ctx context.Context, taskID string, progress int, agentID, statusText string) {
	if e.eventPublisher == nil {
		return
	}
	if err := e.eventPublisher.PublishTaskProgress(ctx, taskID, events.TaskProgressPayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeTaskProgress,
			TaskID:    taskID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		Progress:   progress,
		StepName:   agentID,
		AgentID:    agentID,
		StatusText: statusText,
	}); err != nil {
		slog.Warn("Failed to publish task progress",
			"task_id", taskID,
			"status_text", statusText,
			"error", err,
		)
	}
}

// publishConversation mirrors a persisted conversation entry as an event so
// live listeners can fetch the new entry.
func (e *RealTaskExecutor) publishConversation(taskID string, entry *ent.ConversationEntry) {
	if e.eventPublisher == nil || entry == nil {
		return
	}
	if err := e.eventPublisher.PublishConversationAppended(context.Background(), taskID, events.ConversationAppendedPayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeConversationAppended,
			TaskID:    taskID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		Sequence: entry.Sequence,
		AgentID:  entry.AgentID,
		Role:     string(entry.Role),
	}); err != nil {
		slog.Warn("Failed to publish conversation event",
			"task_id", taskID,
			"sequence", entry.Sequence,
			"error", err,
		)
	}
}

// publishDeadLetter publishes a dead_letter.status event for an entry this
// run created or settled.
func (e *RealTaskExecutor) publishDeadLetter(taskID, entryID, status string, attempts int, agentID, reason string) {
	if e.eventPublisher == nil {
		return
	}
	if err := e.eventPublisher.PublishDeadLetterStatus(context.Background(), taskID, events.DeadLetterStatusPayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeDeadLetterStatus,
			TaskID:    taskID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		EntryID:  entryID,
		Status:   status,
		Attempts: attempts,
		AgentID:  agentID,
		Reason:   reason,
	}); err != nil {
		slog.Warn("Failed to publish dead-letter status",
			"task_id", taskID,
			"entry_id", entryID,
			"status", status,
			"error", err,
		)
	}
}
