package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// PostgreSQL rejects NOTIFY payloads close to 8000 bytes. Anything larger
// is collapsed to a stub carrying just the routing fields, and consumers
// fetch the full event from the audit log.
const notifyByteLimit = 7900

// EventPublisher fans task lifecycle events out over PostgreSQL NOTIFY.
// Events that belong in the audit trail are written to audit_events in the
// same transaction that fires the notification; progress ticks skip the
// table and go straight to the wire. Payload structs live in payloads.go.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher wraps the pool obtained from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// PublishTaskStatus records a status transition on the task channel and
// mirrors a transient copy onto the global tasks channel for list views.
// Both sends are attempted even when the first fails; the first error wins.
func (p *EventPublisher) PublishTaskStatus(ctx context.Context, taskID string, payload TaskStatusPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal task status event: %w", err)
	}

	var firstErr error
	if err := p.record(ctx, taskID, TaskChannel(taskID), raw); err != nil {
		slog.Warn("Failed to publish task status to task channel",
			"task_id", taskID, "status", payload.Status, "error", err)
		firstErr = err
	}
	if err := p.broadcast(ctx, GlobalTasksChannel, raw); err != nil {
		slog.Warn("Failed to publish task status to global channel",
			"task_id", taskID, "status", payload.Status, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// PublishTaskProgress pushes a transient progress tick onto the task
// channel. Progress is never persisted; a missed tick is superseded by the
// next one.
func (p *EventPublisher) PublishTaskProgress(ctx context.Context, taskID string, payload TaskProgressPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal task progress event: %w", err)
	}
	return p.broadcast(ctx, TaskChannel(taskID), raw)
}

// PublishConversationAppended records that an agent exchange was appended
// to the task's conversation log.
func (p *EventPublisher) PublishConversationAppended(ctx context.Context, taskID string, payload ConversationAppendedPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal conversation event: %w", err)
	}
	return p.record(ctx, taskID, TaskChannel(taskID), raw)
}

// PublishDeadLetterStatus records a dead letter transition (added,
// redriven, abandoned, resolved) on the shared dead letter channel.
func (p *EventPublisher) PublishDeadLetterStatus(ctx context.Context, taskID string, payload DeadLetterStatusPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal dead letter event: %w", err)
	}
	return p.record(ctx, taskID, DeadLetterChannel, raw)
}

// record appends the event to audit_events and fires NOTIFY on channel in
// one transaction. pg_notify queues the notification until COMMIT, so a
// listener never observes an event the audit log does not have.
func (p *EventPublisher) record(ctx context.Context, taskID, channel string, raw []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	if err := tx.QueryRowContext(ctx,
		`INSERT INTO audit_events (task_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		taskID, channel, string(raw), time.Now(),
	).Scan(&eventID); err != nil {
		return fmt.Errorf("persist audit event: %w", err)
	}

	wire, err := stampEventID(raw, eventID)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, wire); err != nil {
		return fmt.Errorf("pg_notify: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit event transaction: %w", err)
	}
	return nil
}

// broadcast fires NOTIFY without touching the audit log.
func (p *EventPublisher) broadcast(ctx context.Context, channel string, raw []byte) error {
	wire, err := fitNotifyLimit(string(raw))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, wire); err != nil {
		return fmt.Errorf("pg_notify: %w", err)
	}
	return nil
}

// stampEventID re-encodes the payload with db_event_id set so listeners can
// resume from the audit log after a dropped connection.
func stampEventID(raw []byte, eventID int64) (string, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return "", fmt.Errorf("decode payload for event id stamp: %w", err)
	}
	fields["db_event_id"] = eventID

	stamped, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("encode stamped payload: %w", err)
	}
	return fitNotifyLimit(string(stamped))
}

// fitNotifyLimit passes the payload through untouched when it fits on the
// NOTIFY wire. Oversized payloads are replaced by a stub holding type,
// task_id and db_event_id; the truncated flag tells consumers to fetch the
// stored row instead.
func fitNotifyLimit(payload string) (string, error) {
	if len(payload) <= notifyByteLimit {
		return payload, nil
	}

	var routing struct {
		Type      string `json:"type"`
		TaskID    string `json:"task_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal([]byte(payload), &routing); err != nil {
		return "", fmt.Errorf("extract routing fields from oversized payload: %w", err)
	}

	stub := map[string]any{
		"type":      routing.Type,
		"task_id":   routing.TaskID,
		"truncated": true,
	}
	if routing.DBEventID != nil {
		stub["db_event_id"] = *routing.DBEventID
	}
	out, err := json.Marshal(stub)
	if err != nil {
		return "", fmt.Errorf("encode truncation stub: %w", err)
	}
	return string(out), nil
}
