package queue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taskwire/taskwire/ent"
	"github.com/taskwire/taskwire/pkg/events"
	"github.com/taskwire/taskwire/pkg/mailer"
	"github.com/taskwire/taskwire/pkg/models"
	"github.com/taskwire/taskwire/pkg/resilience"
	"github.com/taskwire/taskwire/pkg/services"
	"github.com/taskwire/taskwire/pkg/workflow"
)

// ────────────────────────────────────────────────────────────
// Terminal failure — dead-letter bookkeeping
// ────────────────────────────────────────────────────────────

// recordTerminalFailure parks the failed run in the dead-letter queue and
// reports the failure. A redrive run instead returns its existing entry to
// pending with the error attached, so the attempt counter keeps climbing
// toward auto-abandon. Writes use a background context: the run is over, and
// the bookkeeping must land even when ctx died with it.
func (e *RealTaskExecutor) recordTerminalFailure(row *ent.Task, task *models.Task, exec *workflow.Execution, runErr error) *ExecutionResult {
	logger := slog.With("task_id", row.ID)
	ctx := context.Background()

	logger.Error("Task execution failed", "error", runErr)

	if _, err := e.taskService.AppendNote(ctx, row.ID, "Execution failed: "+runErr.Error()); err != nil {
		logger.Warn("Failed to record failure note", "error", err)
	}

	if entryID := redriveEntryID(task); entryID != "" && e.dlqService != nil {
		// This run WAS the redrive; the entry already counted the attempt.
		if err := e.dlqService.MarkRetryFailed(ctx, entryID, runErr.Error()); err != nil {
			logger.Error("Failed to return dead-letter entry to pending", "entry_id", entryID, "error", err)
		} else {
			logger.Info("Redrive failed, dead-letter entry returned to pending", "entry_id", entryID)
		}
	} else if e.dlqService != nil {
		agentID := firstFailedAgent(exec)
		if agentID == "" {
			agentID = task.PrimaryAgent
		}
		entry, err := e.dlqService.Add(ctx, row.ID, agentID, services.SnapshotTask(row), runErr.Error(), 0, string(task.Priority))
		if err != nil {
			logger.Error("Failed to add dead-letter entry", "error", err)
		} else {
			logger.Info("Task parked in dead-letter queue", "entry_id", entry.ID)
			e.publishDeadLetter(row.ID, entry.ID, events.DeadLetterAdded, entry.Attempts, agentID, runErr.Error())
		}
	}

	return &ExecutionResult{
		Status: models.StatusFailed,
		Report: exec.ExportReport(),
		Error:  runErr,
	}
}

// redriveEntryID extracts the dead-letter entry id a redrive task carries in
// its context, or "" for first-run tasks.
func redriveEntryID(task *models.Task) string {
	if task.Context == nil {
		return ""
	}
	if v, ok := task.Context["dlq_entry_id"].(string); ok {
		return v
	}
	return ""
}

// firstFailedAgent returns the agent of the first failed step, or "".
func firstFailedAgent(exec *workflow.Execution) string {
	failed := exec.FailedSteps()
	if len(failed) == 0 {
		return ""
	}
	return failed[0].Agent
}

// ────────────────────────────────────────────────────────────
// Success — digest, redrive settlement, delivery
// ────────────────────────────────────────────────────────────

// finishRun persists the result digest, settles redrive bookkeeping, and
// attempts delivery. All writes use background contexts: the run succeeded,
// and a cancellation arriving now must not lose the result.
func (e *RealTaskExecutor) finishRun(row *ent.Task, task *models.Task, exec *workflow.Execution, logger *slog.Logger) *ExecutionResult {
	ctx := context.Background()

	summary := renderSummary(exec)
	exec.SetSummary(summary)

	entry, err := e.taskService.AppendConversation(ctx, models.AppendConversationRequest{
		TaskID:  row.ID,
		AgentID: "orchestrator",
		Role:    string(models.RoleSynthesis),
		Content: summary,
		Metadata: map[string]interface{}{
			"workflow_id": exec.WorkflowID,
			"mode":        exec.Mode,
		},
	})
	if err != nil {
		logger.Warn("Failed to append synthesis entry", "error", err)
	} else {
		e.publishConversation(row.ID, entry)
	}

	if err := e.taskService.SetResult(ctx, row.ID, summary); err != nil {
		logger.Error("Failed to persist result summary", "error", err)
	}
	if err := e.taskService.UpdateProgress(ctx, row.ID, 100); err != nil {
		logger.Warn("Failed to finalize progress", "error", err)
	}
	e.publishProgress(ctx, row.ID, 100, "", "Workflow complete")

	// A successful redrive resolves its dead-letter entry
	if entryID := redriveEntryID(task); entryID != "" && e.dlqService != nil {
		if err := e.dlqService.Resolve(ctx, entryID); err != nil {
			logger.Warn("Failed to resolve dead-letter entry", "entry_id", entryID, "error", err)
		} else {
			logger.Info("Dead-letter entry resolved", "entry_id", entryID)
			e.publishDeadLetter(row.ID, entryID, events.DeadLetterResolved, 0, "", "")
		}
	}

	report := exec.ExportReport()
	status := e.deliver(ctx, row.ID, task, report, logger)

	logger.Info("Task executor: execution completed",
		"status", status,
		"steps", len(exec.Steps),
		"cache_hits", report.CacheHits,
		"degraded", report.Degraded,
	)

	return &ExecutionResult{
		Status:  status,
		Summary: summary,
		Report:  report,
	}
}

// deliver mails the result when a mailer and a recipient exist. A run that
// was actually delivered advances to dispatched; a skipped or failed delivery
// leaves the task completed, so the result is never lost to a mail outage.
func (e *RealTaskExecutor) deliver(ctx context.Context, taskID string, task *models.Task, report *workflow.Report, logger *slog.Logger) models.TaskStatus {
	recipient := deliveryRecipient(task)

	if !e.mailer.Enabled() || recipient == "" {
		logger.Info("Result delivery skipped",
			"mailer_enabled", e.mailer.Enabled(),
			"has_recipient", recipient != "",
		)
		return models.StatusCompleted
	}

	input := mailer.DeliveryInput{
		TaskID:    taskID,
		Title:     task.Title,
		Recipient: recipient,
		Report:    report,
	}
	if meta := task.EmailMetadata; meta != nil {
		input.CC = meta.CC
		input.Subject = meta.Subject
		input.MessageID = meta.MessageID
	}

	cb := e.breakers.Get("mailer")
	err := resilience.Retry(ctx, e.cfg.Resilience.RemoteRetry, "mail delivery", func(ctx context.Context) error {
		if err := cb.Allow(); err != nil {
			return err
		}
		err := e.mailer.DeliverResult(ctx, input)
		cb.Mark(err)
		return err
	})
	if err != nil {
		logger.Error("Result delivery failed", "recipient", recipient, "error", err)
		if _, noteErr := e.taskService.AppendNote(ctx, taskID, "Result delivery failed: "+err.Error()); noteErr != nil {
			logger.Warn("Failed to record delivery failure note", "error", noteErr)
		}
		if e.warnings != nil {
			e.warnings.AddWarning(services.WarningCategoryMailDelivery,
				"result delivery failed for task "+taskID, err.Error(), "executor")
		}
		return models.StatusCompleted
	}

	if _, err := e.taskService.AppendNote(ctx, taskID, "Result delivered to "+recipient); err != nil {
		logger.Warn("Failed to record delivery note", "error", err)
	}
	logger.Info("Result delivered", "recipient", recipient)
	return models.StatusDispatched
}

// deliveryRecipient resolves where the result goes: reply-to wins over the
// sender; no email metadata means nothing to deliver to.
func deliveryRecipient(task *models.Task) string {
	meta := task.EmailMetadata
	if meta == nil {
		return ""
	}
	if meta.ReplyTo != "" {
		return meta.ReplyTo
	}
	return meta.Sender
}

// ────────────────────────────────────────────────────────────
// Result digest
// ────────────────────────────────────────────────────────────

// maxDigestChars bounds each step's contribution to the digest. The full
// output stays in the conversation log.
const maxDigestChars = 4000

// renderSummary builds the per-step digest persisted as the task result and
// rendered into the delivery mail.
func renderSummary(exec *workflow.Execution) string {
	var sb strings.Builder

	cacheHits, degraded := 0, 0
	for _, s := range exec.Steps {
		if s.CacheHit {
			cacheHits++
		}
		if s.Degraded {
			degraded++
		}
	}

	fmt.Fprintf(&sb, "Workflow %s completed %d step(s) in %s mode.", exec.WorkflowID, len(exec.Steps), exec.Mode)
	if cacheHits > 0 {
		fmt.Fprintf(&sb, " %d served from cache.", cacheHits)
	}
	if degraded > 0 {
		fmt.Fprintf(&sb, " %d handled by fallback agents.", degraded)
	}
	sb.WriteString("\n")

	for _, s := range exec.Steps {
		fmt.Fprintf(&sb, "\n[%s] %s\n", s.Agent, s.Task)
		result := strings.TrimSpace(s.Result)
		if result == "" {
			continue
		}
		if len(result) > maxDigestChars {
			result = result[:maxDigestChars] + "\n… (truncated; full output in the conversation log)"
		}
		sb.WriteString(result)
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String())
}
