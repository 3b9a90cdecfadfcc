package services

import (
	"context"
	"fmt"
	"time"

	"github.com/taskwire/taskwire/ent"
	"github.com/taskwire/taskwire/ent/auditevent"
)

// AuditService manages the persisted audit event log. Lifecycle events are
// normally written by the event publisher inside the mutating transaction;
// this service covers standalone writes, catchup reads, and retention.
type AuditService struct {
	client *ent.Client
}

// NewAuditService creates a new AuditService
func NewAuditService(client *ent.Client) *AuditService {
	return &AuditService{client: client}
}

// RecordEvent persists an audit event outside any caller transaction.
func (s *AuditService) RecordEvent(httpCtx context.Context, taskID, channel, payload string) (*ent.AuditEvent, error) {
	if taskID == "" {
		return nil, NewValidationError("task_id", "required")
	}
	if channel == "" {
		return nil, NewValidationError("channel", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	evt, err := s.client.AuditEvent.Create().
		SetTaskID(taskID).
		SetChannel(channel).
		SetPayload(payload).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to record audit event: %w", err)
	}

	return evt, nil
}

// GetEventsSince retrieves events on a channel after the given cursor. The
// auto-increment ID is the cursor, so consumers that missed notifications
// can catch up in order.
func (s *AuditService) GetEventsSince(ctx context.Context, channel string, sinceID int) ([]*ent.AuditEvent, error) {
	events, err := s.client.AuditEvent.Query().
		Where(
			auditevent.ChannelEQ(channel),
			auditevent.IDGT(sinceID),
		).
		Order(ent.Asc(auditevent.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit events: %w", err)
	}

	return events, nil
}

// CleanupExpiredEvents removes events older than maxAge. Per-task event
// removal needs no counterpart: deleting a task cascades to its events.
func (s *AuditService) CleanupExpiredEvents(ctx context.Context, maxAge time.Duration) (int, error) {
	if maxAge <= 0 {
		return 0, NewValidationError("max_age", "must be positive")
	}
	cutoff := time.Now().Add(-maxAge)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.AuditEvent.Delete().
		Where(auditevent.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup expired events: %w", err)
	}

	return count, nil
}
