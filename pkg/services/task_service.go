package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/google/uuid"

	"github.com/taskwire/taskwire/ent"
	"github.com/taskwire/taskwire/ent/conversationentry"
	"github.com/taskwire/taskwire/ent/task"
	"github.com/taskwire/taskwire/ent/tasknote"
	"github.com/taskwire/taskwire/pkg/cache"
	"github.com/taskwire/taskwire/pkg/models"
)

// TaskService manages the task lifecycle. Every mutation runs in a
// transaction that locks the task row, so concurrent writers serialize and
// the status machine is enforced at exactly one place.
type TaskService struct {
	client *ent.Client

	// resultCache holds task snapshots in the tasks namespace; nil disables
	// caching. Every row mutation invalidates the snapshot.
	resultCache cache.Cache
}

// NewTaskService creates a new TaskService. resultCache may be nil.
func NewTaskService(client *ent.Client, resultCache cache.Cache) *TaskService {
	return &TaskService{client: client, resultCache: resultCache}
}

// CreateTask persists a parsed task and enqueues it in one transaction:
// either the task lands queued with its parse notes, or nothing durable is
// written. The returned row is in status queued.
func (s *TaskService) CreateTask(httpCtx context.Context, t *models.Task) (*ent.Task, error) {
	if t == nil {
		return nil, NewValidationError("task", "required")
	}
	if err := t.Validate(); err != nil {
		return nil, NewValidationError("task", err.Error())
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	taskID := t.TaskID
	if taskID == "" {
		taskID = uuid.New().String()
	}

	builder := tx.Task.Create().
		SetID(taskID).
		SetTitle(t.Title).
		SetDescription(t.Description).
		SetTaskType(string(t.TaskType)).
		SetPriority(string(t.Priority)).
		SetPriorityRank(t.Priority.Rank()).
		SetStatus(task.StatusPending)

	if !t.CreatedAt.IsZero() {
		builder.SetCreatedAt(t.CreatedAt)
	}
	if t.EmailMetadata != nil {
		emailMeta, err := toJSONMap(t.EmailMetadata)
		if err != nil {
			return nil, fmt.Errorf("failed to encode email_metadata: %w", err)
		}
		builder.SetMessageID(t.EmailMetadata.MessageID)
		builder.SetEmailMetadata(emailMeta)
	}
	if t.Deadline != nil {
		builder.SetDeadline(*t.Deadline)
	}
	if len(t.Dependencies) > 0 {
		builder.SetDependencies(t.Dependencies)
	}
	if len(t.SuccessCriteria) > 0 {
		builder.SetSuccessCriteria(t.SuccessCriteria)
	}
	if len(t.Constraints) > 0 {
		builder.SetConstraints(t.Constraints)
	}
	if len(t.Deliverables) > 0 {
		builder.SetDeliverables(t.Deliverables)
	}
	if t.PrimaryAgent != "" {
		builder.SetPrimaryAgent(t.PrimaryAgent)
	}
	if len(t.SupportingAgents) > 0 {
		builder.SetSupportingAgents(t.SupportingAgents)
	}
	if t.AssignmentReason != "" {
		builder.SetAssignmentReason(t.AssignmentReason)
	}
	if len(t.Tags) > 0 {
		builder.SetTags(t.Tags)
	}
	if len(t.Context) > 0 {
		builder.SetContext(t.Context)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	// Carry the parser's processing notes into the durable note trail.
	for _, note := range t.ProcessingNotes {
		noteBuilder := tx.TaskNote.Create().
			SetID(uuid.New().String()).
			SetTaskID(created.ID).
			SetNote(note.Note)
		if !note.Timestamp.IsZero() {
			noteBuilder.SetCreatedAt(note.Timestamp)
		}
		if _, err := noteBuilder.Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to persist parse note: %w", err)
		}
	}

	created, err = created.Update().
		SetStatus(task.StatusQueued).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue task: %w", err)
	}

	_, err = tx.TaskNote.Create().
		SetID(uuid.New().String()).
		SetTaskID(created.ID).
		SetNote("Task queued for execution").
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record queue note: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return created, nil
}

// GetTask retrieves a task by ID with optional edge loading. Edge-free reads
// go through the result cache.
func (s *TaskService) GetTask(ctx context.Context, taskID string, withEdges bool) (*ent.Task, error) {
	if !withEdges && s.resultCache != nil {
		var cached ent.Task
		if ok, err := cache.GetJSON(ctx, s.resultCache, cache.NamespaceTasks, taskID, &cached); err == nil && ok {
			return &cached, nil
		}
	}

	query := s.client.Task.Query().Where(task.IDEQ(taskID))
	if withEdges {
		query = query.
			WithNotes(func(q *ent.TaskNoteQuery) {
				q.Order(ent.Asc(tasknote.FieldCreatedAt))
			}).
			WithConversationEntries(func(q *ent.ConversationEntryQuery) {
				q.Order(ent.Asc(conversationentry.FieldSequence))
			})
	}

	row, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	if !withEdges && s.resultCache != nil {
		if err := cache.SetJSON(ctx, s.resultCache, cache.NamespaceTasks, taskID, row); err != nil {
			slog.Warn("task snapshot cache write failed", "task_id", taskID, "error", err)
		}
	}
	return row, nil
}

// GetTaskByMessageID returns the most recent task ingested from the given
// email Message-ID.
func (s *TaskService) GetTaskByMessageID(ctx context.Context, messageID string) (*ent.Task, error) {
	if messageID == "" {
		return nil, NewValidationError("message_id", "required")
	}

	row, err := s.client.Task.Query().
		Where(task.MessageIDEQ(messageID)).
		Order(ent.Desc(task.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task by message id: %w", err)
	}
	return row, nil
}

// ListTasks lists tasks with filtering and pagination
func (s *TaskService) ListTasks(ctx context.Context, filters models.TaskFilters) (*models.TaskListResponse, error) {
	query := s.client.Task.Query()

	if filters.Status != "" {
		query = query.Where(task.StatusEQ(task.Status(filters.Status)))
	}
	if filters.Priority != "" {
		query = query.Where(task.PriorityEQ(filters.Priority))
	}
	if filters.TaskType != "" {
		query = query.Where(task.TaskTypeEQ(filters.TaskType))
	}
	if filters.PrimaryAgent != "" {
		query = query.Where(task.PrimaryAgentEQ(filters.PrimaryAgent))
	}
	if filters.Sender != "" {
		query = query.Where(func(sel *sql.Selector) {
			sel.Where(sqljson.ValueEQ(task.FieldEmailMetadata, filters.Sender, sqljson.Path("sender")))
		})
	}
	if filters.CreatedAfter != nil {
		query = query.Where(task.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(task.CreatedAtLT(*filters.CreatedBefore))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	tasks, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return &models.TaskListResponse{
		Tasks:      tasks,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// ListActive returns non-terminal tasks in queue order (highest priority
// class first, FIFO within a class).
func (s *TaskService) ListActive(ctx context.Context) ([]*ent.Task, error) {
	tasks, err := s.client.Task.Query().
		Where(task.StatusIn(task.StatusPending, task.StatusQueued, task.StatusRunning)).
		Order(ent.Desc(task.FieldPriorityRank), ent.Asc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active tasks: %w", err)
	}
	return tasks, nil
}

// SearchTasks runs a full-text search over task descriptions and result
// summaries, newest first. Both predicates are backed by the GIN indexes the
// migration hooks create, so a search is an index scan even on large tables.
func (s *TaskService) SearchTasks(ctx context.Context, query string, limit int) ([]*ent.Task, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, NewValidationError("query", "required")
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := s.client.Task.Query().
		Where(func(sel *sql.Selector) {
			sel.Where(sql.P(func(b *sql.Builder) {
				b.WriteString("to_tsvector('english', ")
				b.Ident(task.FieldDescription)
				b.WriteString(") @@ plainto_tsquery('english', ")
				b.Arg(query)
				b.WriteString(") OR to_tsvector('english', COALESCE(")
				b.Ident(task.FieldResultSummary)
				b.WriteString(", '')) @@ plainto_tsquery('english', ")
				b.Arg(query)
				b.WriteString(")")
			}))
		}).
		Order(ent.Desc(task.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search tasks: %w", err)
	}
	return rows, nil
}

// UpdateStatus transitions a task through the lifecycle machine. The row is
// locked for the duration of the transition; illegal transitions return
// ErrInvalidTransition. errorMsg is recorded when non-empty.
func (s *TaskService) UpdateStatus(ctx context.Context, taskID string, to models.TaskStatus, errorMsg string) (*ent.Task, error) {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.Task.Query().
		Where(task.IDEQ(taskID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock task: %w", err)
	}

	from := models.TaskStatus(row.Status)
	if !models.CanTransition(from, to) {
		return nil, fmt.Errorf("%w: %s → %s", ErrInvalidTransition, from, to)
	}

	now := time.Now()
	update := row.Update().SetStatus(task.Status(to))

	switch to {
	case models.StatusRunning:
		if row.StartedAt == nil {
			update.SetStartedAt(now)
		}
		update.SetLastHeartbeatAt(now)
	case models.StatusQueued:
		// Requeue path: release the dead worker's claim.
		update.ClearWorkerID().ClearLastHeartbeatAt()
	case models.StatusDispatched, models.StatusCompleted, models.StatusFailed, models.StatusAbandoned:
		update.SetProcessed(true)
		if row.CompletedAt == nil {
			update.SetCompletedAt(now)
		}
	}
	if errorMsg != "" {
		update.SetErrorMessage(errorMsg)
	}

	updated, err := update.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit status update: %w", err)
	}

	s.invalidate(ctx, taskID)
	return updated, nil
}

// UpdateProgress raises the task's progress. Progress is monotonic: a value
// at or below the current one is dropped silently, so stale updates from
// racing steps never rewind the bar.
func (s *TaskService) UpdateProgress(ctx context.Context, taskID string, progress int) error {
	if progress < 0 || progress > 100 {
		return NewValidationError("progress", "must be within [0,100]")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.Task.Query().
		Where(task.IDEQ(taskID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock task: %w", err)
	}

	if progress <= row.Progress {
		return nil
	}

	if err := row.Update().SetProgress(progress).Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to update progress: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit progress update: %w", err)
	}

	s.invalidate(ctx, taskID)
	return nil
}

// RecordAssignment persists the routing decision on the task row.
func (s *TaskService) RecordAssignment(ctx context.Context, taskID, primaryAgent string, supportingAgents []string, reason string) error {
	if taskID == "" {
		return NewValidationError("task_id", "required")
	}
	if primaryAgent == "" {
		return NewValidationError("primary_agent", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Task.UpdateOneID(taskID).
		SetPrimaryAgent(primaryAgent).
		SetAssignmentReason(reason)
	if len(supportingAgents) > 0 {
		update.SetSupportingAgents(supportingAgents)
	}
	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record assignment: %w", err)
	}

	s.invalidate(ctx, taskID)
	return nil
}

// AppendNote records a processing milestone on a task.
func (s *TaskService) AppendNote(ctx context.Context, taskID, note string) (*ent.TaskNote, error) {
	if taskID == "" {
		return nil, NewValidationError("task_id", "required")
	}
	if strings.TrimSpace(note) == "" {
		return nil, NewValidationError("note", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := s.client.TaskNote.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetNote(note).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// FK violation: the task does not exist.
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to append note: %w", err)
	}
	return created, nil
}

// ListNotes returns a task's notes in chronological order.
func (s *TaskService) ListNotes(ctx context.Context, taskID string) ([]*ent.TaskNote, error) {
	notes, err := s.client.TaskNote.Query().
		Where(tasknote.TaskIDEQ(taskID)).
		Order(ent.Asc(tasknote.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// AppendConversation appends an agent exchange to the task's conversation.
// The per-task sequence is allocated under the task row lock, so concurrent
// appends serialize and the (task_id, sequence) uniqueness never trips.
func (s *TaskService) AppendConversation(ctx context.Context, req models.AppendConversationRequest) (*ent.ConversationEntry, error) {
	if req.TaskID == "" {
		return nil, NewValidationError("task_id", "required")
	}
	if req.AgentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}
	if req.Content == "" {
		return nil, NewValidationError("content", "required")
	}
	role := conversationentry.Role(req.Role)
	if err := conversationentry.RoleValidator(role); err != nil {
		return nil, NewValidationError("role", err.Error())
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Task.Query().
		Where(task.IDEQ(req.TaskID)).
		ForUpdate().
		Only(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock task: %w", err)
	}

	next := 1
	last, err := tx.ConversationEntry.Query().
		Where(conversationentry.TaskIDEQ(req.TaskID)).
		Order(ent.Desc(conversationentry.FieldSequence)).
		First(writeCtx)
	if err == nil {
		next = last.Sequence + 1
	} else if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to read conversation sequence: %w", err)
	}

	builder := tx.ConversationEntry.Create().
		SetID(uuid.New().String()).
		SetTaskID(req.TaskID).
		SetAgentID(req.AgentID).
		SetRole(role).
		SetContent(req.Content).
		SetSequence(next)
	if req.Metadata != nil {
		builder.SetMetadata(req.Metadata)
	}

	entry, err := builder.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to append conversation entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit conversation append: %w", err)
	}
	return entry, nil
}

// ListConversation returns a task's conversation in sequence order.
func (s *TaskService) ListConversation(ctx context.Context, taskID string) ([]*ent.ConversationEntry, error) {
	entries, err := s.client.ConversationEntry.Query().
		Where(conversationentry.TaskIDEQ(taskID)).
		Order(ent.Asc(conversationentry.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversation: %w", err)
	}
	return entries, nil
}

// SetResult stores the synthesized result summary.
func (s *TaskService) SetResult(ctx context.Context, taskID, summary string) error {
	if strings.TrimSpace(summary) == "" {
		return NewValidationError("result_summary", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Task.UpdateOneID(taskID).
		SetResultSummary(summary).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set result: %w", err)
	}

	s.invalidate(ctx, taskID)
	return nil
}

// MarkDispatched marks a completed run whose result was delivered by mail.
func (s *TaskService) MarkDispatched(ctx context.Context, taskID string) (*ent.Task, error) {
	return s.UpdateStatus(ctx, taskID, models.StatusDispatched, "")
}

// CancelTask ends a non-terminal task as failed with a cancellation note.
// In-flight work is interrupted by the worker pool; this records the outcome.
func (s *TaskService) CancelTask(ctx context.Context, taskID, reason string) (*ent.Task, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.Task.Query().
		Where(task.IDEQ(taskID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock task: %w", err)
	}

	from := models.TaskStatus(row.Status)
	if !models.CanTransition(from, models.StatusFailed) {
		return nil, fmt.Errorf("%w: cannot cancel task in status %s", ErrInvalidTransition, from)
	}

	msg := "cancelled"
	noteText := "Task cancelled"
	if reason != "" {
		msg = "cancelled: " + reason
		noteText = "Task cancelled: " + reason
	}

	updated, err := row.Update().
		SetStatus(task.StatusFailed).
		SetErrorMessage(msg).
		SetProcessed(true).
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel task: %w", err)
	}

	_, err = tx.TaskNote.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetNote(noteText).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to record cancellation note: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit cancellation: %w", err)
	}

	s.invalidate(ctx, taskID)
	return updated, nil
}

// FindOrphanedTasks finds running tasks whose worker heartbeat went stale.
func (s *TaskService) FindOrphanedTasks(ctx context.Context, heartbeatTimeout time.Duration) ([]*ent.Task, error) {
	threshold := time.Now().Add(-heartbeatTimeout)

	tasks, err := s.client.Task.Query().
		Where(
			task.StatusEQ(task.StatusRunning),
			task.LastHeartbeatAtNotNil(),
			task.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned tasks: %w", err)
	}
	return tasks, nil
}

// RequeueOrphan returns an orphaned running task to the queue, or fails it
// once the requeue budget is exhausted. Returns (nil, nil) when the task was
// already handled by a concurrent sweep.
func (s *TaskService) RequeueOrphan(ctx context.Context, taskID string, maxRequeues int) (*ent.Task, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.Task.Query().
		Where(task.IDEQ(taskID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock task: %w", err)
	}

	// Another sweep (or the worker itself) already moved it on.
	if row.Status != task.StatusRunning {
		return nil, nil
	}

	var updated *ent.Task
	var noteText string
	if row.RequeueCount >= maxRequeues {
		updated, err = row.Update().
			SetStatus(task.StatusFailed).
			SetErrorMessage("worker heartbeat lost and requeue budget exhausted").
			SetProcessed(true).
			SetCompletedAt(time.Now()).
			Save(writeCtx)
		noteText = "Task failed: worker heartbeat lost and requeue budget exhausted"
	} else {
		updated, err = row.Update().
			SetStatus(task.StatusQueued).
			AddRequeueCount(1).
			ClearWorkerID().
			ClearLastHeartbeatAt().
			Save(writeCtx)
		noteText = "Task requeued after worker heartbeat loss"
	}
	if err != nil {
		return nil, fmt.Errorf("failed to recover orphaned task: %w", err)
	}

	_, err = tx.TaskNote.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetNote(noteText).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to record orphan note: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit orphan recovery: %w", err)
	}

	s.invalidate(ctx, taskID)
	return updated, nil
}

// PurgeTerminalTasks hard-deletes processed tasks whose terminal timestamp
// is older than maxAge. Notes, conversation entries, dead letters, and audit
// events go with them via the cascade.
func (s *TaskService) PurgeTerminalTasks(ctx context.Context, maxAge time.Duration) (int, error) {
	if maxAge <= 0 {
		return 0, NewValidationError("max_age", "must be positive")
	}
	cutoff := time.Now().Add(-maxAge)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Task.Delete().
		Where(
			task.ProcessedEQ(true),
			task.CompletedAtNotNil(),
			task.CompletedAtLT(cutoff),
		).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge old tasks: %w", err)
	}
	return count, nil
}

// invalidate drops the cached task snapshot. Cache failures only log: the
// store stays the source of truth.
func (s *TaskService) invalidate(ctx context.Context, taskID string) {
	if s.resultCache == nil {
		return
	}
	if err := s.resultCache.Delete(ctx, cache.NamespaceTasks, taskID); err != nil {
		slog.Warn("task snapshot invalidation failed", "task_id", taskID, "error", err)
	}
}

// toJSONMap round-trips a struct through JSON into a generic map for storage
// in a JSON column.
func toJSONMap(v interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
