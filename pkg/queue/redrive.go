package queue

import (
	"context"
	"log/slog"
	"time"

	"github.com/taskwire/taskwire/ent"
	"github.com/taskwire/taskwire/ent/deadletter"
	"github.com/taskwire/taskwire/pkg/events"
)

// redriveBatchSize caps how many dead-letter entries one drain touches, so a
// large backlog reenters the queue gradually instead of flooding it.
const redriveBatchSize = 10

// runDeadLetterRedrive periodically drains retryable dead-letter entries back
// into the queue. All pods run this independently — RetryNext claims entries
// with SKIP LOCKED, so no entry is redriven twice.
func (p *WorkerPool) runDeadLetterRedrive(ctx context.Context) {
	ticker := time.NewTicker(p.config.DLQRedriveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			p.redriveDeadLetters(ctx)
		}
	}
}

// redriveDeadLetters runs one drain batch and publishes an event per touched
// entry. Entries past the attempt ceiling come back abandoned instead of
// retrying; both outcomes are reported.
func (p *WorkerPool) redriveDeadLetters(ctx context.Context) {
	entries, err := p.dlqService.RetryNext(ctx, redriveBatchSize)
	if err != nil {
		slog.Error("Dead-letter redrive failed", "error", err, "drained", len(entries))
	}
	if len(entries) == 0 {
		return
	}

	slog.Info("Dead-letter redrive drained entries", "count", len(entries))

	for _, entry := range entries {
		p.publishDeadLetterStatus(ctx, entry)
	}
}

// publishDeadLetterStatus emits the lifecycle event matching an entry's state
// after a drain touched it.
func (p *WorkerPool) publishDeadLetterStatus(ctx context.Context, entry *ent.DeadLetter) {
	if p.eventPublisher == nil {
		return
	}

	status := events.DeadLetterRedriven
	reason := ""
	if entry.Status == deadletter.StatusAbandoned {
		status = events.DeadLetterAbandoned
		if entry.AbandonReason != nil {
			reason = *entry.AbandonReason
		}
	}

	if err := p.eventPublisher.PublishDeadLetterStatus(ctx, entry.TaskID, events.DeadLetterStatusPayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeDeadLetterStatus,
			TaskID:    entry.TaskID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		EntryID:  entry.ID,
		Status:   status,
		Attempts: entry.Attempts,
		AgentID:  entry.AgentID,
		Reason:   reason,
	}); err != nil {
		slog.Warn("Failed to publish dead-letter status",
			"entry_id", entry.ID, "status", status, "error", err)
	}
}
