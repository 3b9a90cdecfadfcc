package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/taskwire/taskwire/ent"
	"github.com/taskwire/taskwire/ent/deadletter"
	"github.com/taskwire/taskwire/ent/task"
	"github.com/taskwire/taskwire/pkg/models"
)

// DefaultDLQMaxAttempts is the retry ceiling after which an entry is
// abandoned automatically.
const DefaultDLQMaxAttempts = 5

// DLQService manages the dead-letter queue. Entries are persisted rows, so
// the queue survives restarts. A redrive never resurrects the failed task
// row: it creates a fresh queued task carrying redrive markers in its
// context, because the status machine has no path out of failed except
// abandoned.
type DLQService struct {
	client      *ent.Client
	maxAttempts int
}

// NewDLQService creates a new DLQService. maxAttempts <= 0 selects the
// default ceiling.
func NewDLQService(client *ent.Client, maxAttempts int) *DLQService {
	if maxAttempts <= 0 {
		maxAttempts = DefaultDLQMaxAttempts
	}
	return &DLQService{client: client, maxAttempts: maxAttempts}
}

// SnapshotTask captures the fields a redrive needs to reconstruct a task.
// The snapshot deliberately omits the message_id column so redrive runs do
// not shadow the original ingest record.
func SnapshotTask(t *ent.Task) map[string]interface{} {
	snapshot := map[string]interface{}{
		"title":       t.Title,
		"description": t.Description,
		"task_type":   t.TaskType,
		"priority":    t.Priority,
	}
	if len(t.Tags) > 0 {
		snapshot["tags"] = t.Tags
	}
	if len(t.Context) > 0 {
		snapshot["context"] = t.Context
	}
	if t.EmailMetadata != nil {
		snapshot["email_metadata"] = t.EmailMetadata
	}
	if t.PrimaryAgent != "" {
		snapshot["primary_agent"] = t.PrimaryAgent
	}
	if len(t.SupportingAgents) > 0 {
		snapshot["supporting_agents"] = t.SupportingAgents
	}
	if t.AssignmentReason != "" {
		snapshot["assignment_reason"] = t.AssignmentReason
	}
	if t.Deadline != nil {
		snapshot["deadline"] = t.Deadline.Format(time.RFC3339)
	}
	return snapshot
}

// Add records a terminal dispatch failure in the dead-letter queue.
func (s *DLQService) Add(httpCtx context.Context, taskID, agentID string, payload map[string]interface{}, lastError string, attempts int, priority string) (*ent.DeadLetter, error) {
	if taskID == "" {
		return nil, NewValidationError("task_id", "required")
	}
	if lastError == "" {
		return nil, NewValidationError("last_error", "required")
	}
	if !models.Priority(priority).Valid() {
		priority = string(models.PriorityMedium)
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.DeadLetter.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetAgentID(agentID).
		SetLastError(lastError).
		SetAttempts(attempts).
		SetPriority(priority).
		SetStatus(deadletter.StatusPending)
	if payload != nil {
		builder.SetPayload(payload)
	}

	entry, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to add dead-letter entry: %w", err)
	}
	return entry, nil
}

// RetryNext drains up to max pending entries, oldest first. Each retryable
// entry is marked retrying with its attempt counted, and a fresh task is
// queued from its payload snapshot. Entries at the attempt ceiling are
// abandoned instead, and their source task moves failed → abandoned. The
// touched entries are returned in claim order.
func (s *DLQService) RetryNext(ctx context.Context, max int) ([]*ent.DeadLetter, error) {
	if max <= 0 {
		max = 1
	}

	var drained []*ent.DeadLetter
	for i := 0; i < max; i++ {
		entry, err := s.retryOne(ctx)
		if err != nil {
			return drained, err
		}
		if entry == nil {
			break
		}
		drained = append(drained, entry)
	}
	return drained, nil
}

// retryOne claims and processes a single pending entry. Returns (nil, nil)
// when the queue has no pending entries.
func (s *DLQService) retryOne(httpCtx context.Context) (*ent.DeadLetter, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// SKIP LOCKED keeps concurrent redrive loops from fighting over the
	// same entry.
	entry, err := tx.DeadLetter.Query().
		Where(deadletter.StatusEQ(deadletter.StatusPending)).
		Order(ent.Asc(deadletter.FieldFirstSeenAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to claim dead-letter entry: %w", err)
	}

	if entry.Attempts >= s.maxAttempts {
		updated, err := s.abandonInTx(ctx, tx, entry, fmt.Sprintf("retry ceiling reached (%d attempts)", entry.Attempts))
		if err != nil {
			return nil, err
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit abandon: %w", err)
		}
		return updated, nil
	}

	attempt := entry.Attempts + 1
	updated, err := entry.Update().
		SetStatus(deadletter.StatusRetrying).
		SetAttempts(attempt).
		SetLastRetryAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark entry retrying: %w", err)
	}

	if err := s.queueRedrive(ctx, tx, updated, attempt); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit redrive: %w", err)
	}
	return updated, nil
}

// queueRedrive creates a fresh queued task from the entry's payload
// snapshot, in the same transaction as the entry state change.
func (s *DLQService) queueRedrive(ctx context.Context, tx *ent.Tx, entry *ent.DeadLetter, attempt int) error {
	payload := entry.Payload

	title := snapshotString(payload, "title")
	if title == "" {
		title = "Redrive of task " + entry.TaskID
	}
	priority := snapshotString(payload, "priority")
	if !models.Priority(priority).Valid() {
		priority = entry.Priority
	}
	taskType := snapshotString(payload, "task_type")
	if taskType == "" {
		taskType = string(models.TaskTypeGeneral)
	}

	taskCtx := map[string]interface{}{}
	for k, v := range snapshotMap(payload, "context") {
		taskCtx[k] = v
	}
	taskCtx["redrive_of"] = entry.TaskID
	taskCtx["dlq_entry_id"] = entry.ID
	taskCtx["redrive_attempt"] = attempt

	builder := tx.Task.Create().
		SetID(uuid.New().String()).
		SetTitle(title).
		SetDescription(snapshotString(payload, "description")).
		SetTaskType(taskType).
		SetPriority(priority).
		SetPriorityRank(models.Priority(priority).Rank()).
		SetStatus(task.StatusPending).
		SetContext(taskCtx)

	if meta := snapshotMap(payload, "email_metadata"); meta != nil {
		builder.SetEmailMetadata(meta)
	}
	if tags := snapshotStrings(payload, "tags"); len(tags) > 0 {
		builder.SetTags(tags)
	}
	if agent := snapshotString(payload, "primary_agent"); agent != "" {
		builder.SetPrimaryAgent(agent)
	}
	if supporting := snapshotStrings(payload, "supporting_agents"); len(supporting) > 0 {
		builder.SetSupportingAgents(supporting)
	}
	if reason := snapshotString(payload, "assignment_reason"); reason != "" {
		builder.SetAssignmentReason(reason)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create redrive task: %w", err)
	}

	if err := created.Update().SetStatus(task.StatusQueued).Exec(ctx); err != nil {
		return fmt.Errorf("failed to enqueue redrive task: %w", err)
	}

	note := fmt.Sprintf("Redriven from dead-letter queue (attempt %d/%d)", attempt, s.maxAttempts)
	if _, err := tx.TaskNote.Create().
		SetID(uuid.New().String()).
		SetTaskID(created.ID).
		SetNote(note).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to record redrive note: %w", err)
	}
	return nil
}

// Abandon marks an entry abandoned with a reason and moves its source task
// failed → abandoned.
func (s *DLQService) Abandon(httpCtx context.Context, entryID, reason string) (*ent.DeadLetter, error) {
	if entryID == "" {
		return nil, NewValidationError("entry_id", "required")
	}
	if reason == "" {
		reason = "abandoned by operator"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	entry, err := tx.DeadLetter.Query().
		Where(deadletter.IDEQ(entryID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock dead-letter entry: %w", err)
	}
	if entry.Status == deadletter.StatusAbandoned {
		return entry, nil
	}

	updated, err := s.abandonInTx(ctx, tx, entry, reason)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit abandon: %w", err)
	}
	return updated, nil
}

// abandonInTx flips an already-locked entry to abandoned and, when legal,
// moves the source task to abandoned too. The task may be gone (retention)
// or already abandoned; both are tolerated.
func (s *DLQService) abandonInTx(ctx context.Context, tx *ent.Tx, entry *ent.DeadLetter, reason string) (*ent.DeadLetter, error) {
	updated, err := entry.Update().
		SetStatus(deadletter.StatusAbandoned).
		SetAbandonReason(reason).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to abandon entry: %w", err)
	}

	row, err := tx.Task.Query().
		Where(task.IDEQ(entry.TaskID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return updated, nil
		}
		return nil, fmt.Errorf("failed to lock source task: %w", err)
	}

	if models.CanTransition(models.TaskStatus(row.Status), models.StatusAbandoned) {
		upd := row.Update().
			SetStatus(task.StatusAbandoned).
			SetProcessed(true)
		if row.CompletedAt == nil {
			upd.SetCompletedAt(time.Now())
		}
		if err := upd.Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to abandon source task: %w", err)
		}
		if _, err := tx.TaskNote.Create().
			SetID(uuid.New().String()).
			SetTaskID(row.ID).
			SetNote("Dead-letter entry abandoned: " + reason).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to record abandon note: %w", err)
		}
	}
	return updated, nil
}

// Resolve removes an entry after its redrive run completed.
func (s *DLQService) Resolve(httpCtx context.Context, entryID string) error {
	if entryID == "" {
		return NewValidationError("entry_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.DeadLetter.DeleteOneID(entryID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to resolve dead-letter entry: %w", err)
	}
	return nil
}

// MarkRetryFailed returns a retrying entry to pending after its redrive run
// failed, so the next drain picks it up again. The attempt stays counted.
func (s *DLQService) MarkRetryFailed(httpCtx context.Context, entryID, lastError string) error {
	if entryID == "" {
		return NewValidationError("entry_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.DeadLetter.UpdateOneID(entryID).
		SetStatus(deadletter.StatusPending)
	if lastError != "" {
		update.SetLastError(lastError)
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark retry failed: %w", err)
	}
	return nil
}

// List returns entries filtered by status (empty = all), newest first.
func (s *DLQService) List(ctx context.Context, status string, limit, offset int) ([]*ent.DeadLetter, error) {
	query := s.client.DeadLetter.Query()
	if status != "" {
		query = query.Where(deadletter.StatusEQ(deadletter.Status(status)))
	}
	if limit <= 0 {
		limit = 20 // Default
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := query.
		Order(ent.Desc(deadletter.FieldFirstSeenAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list dead-letter entries: %w", err)
	}
	return entries, nil
}

// Stats summarizes the queue. Oldest is the first-seen time of the oldest
// pending entry.
func (s *DLQService) Stats(ctx context.Context) (*models.DeadLetterStats, error) {
	pending, err := s.client.DeadLetter.Query().
		Where(deadletter.StatusEQ(deadletter.StatusPending)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending entries: %w", err)
	}
	retrying, err := s.client.DeadLetter.Query().
		Where(deadletter.StatusEQ(deadletter.StatusRetrying)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count retrying entries: %w", err)
	}
	abandoned, err := s.client.DeadLetter.Query().
		Where(deadletter.StatusEQ(deadletter.StatusAbandoned)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count abandoned entries: %w", err)
	}

	stats := &models.DeadLetterStats{
		Pending:   pending,
		Retrying:  retrying,
		Abandoned: abandoned,
		Total:     pending + retrying + abandoned,
	}

	oldest, err := s.client.DeadLetter.Query().
		Where(deadletter.StatusEQ(deadletter.StatusPending)).
		Order(ent.Asc(deadletter.FieldFirstSeenAt)).
		First(ctx)
	if err == nil {
		stats.Oldest = &oldest.FirstSeenAt
	} else if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to find oldest pending entry: %w", err)
	}
	return stats, nil
}

func snapshotString(payload map[string]interface{}, key string) string {
	if payload == nil {
		return ""
	}
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}

// snapshotStrings reads a string list that may arrive as []string (fresh)
// or []interface{} (after a JSON round trip through the database).
func snapshotStrings(payload map[string]interface{}, key string) []string {
	if payload == nil {
		return nil
	}
	switch v := payload[key].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func snapshotMap(payload map[string]interface{}, key string) map[string]interface{} {
	if payload == nil {
		return nil
	}
	if v, ok := payload[key].(map[string]interface{}); ok {
		return v
	}
	return nil
}
