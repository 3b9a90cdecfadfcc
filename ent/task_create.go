// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/taskwire/taskwire/ent/auditevent"
	"github.com/taskwire/taskwire/ent/conversationentry"
	"github.com/taskwire/taskwire/ent/deadletter"
	"github.com/taskwire/taskwire/ent/task"
	"github.com/taskwire/taskwire/ent/tasknote"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *TaskCreate) SetTitle(v string) *TaskCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TaskCreate) SetDescription(v string) *TaskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetTaskType sets the "task_type" field.
func (_c *TaskCreate) SetTaskType(v string) *TaskCreate {
	_c.mutation.SetTaskType(v)
	return _c
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_c *TaskCreate) SetNillableTaskType(v *string) *TaskCreate {
	if v != nil {
		_c.SetTaskType(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *TaskCreate) SetPriority(v string) *TaskCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePriority(v *string) *TaskCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetPriorityRank sets the "priority_rank" field.
func (_c *TaskCreate) SetPriorityRank(v int) *TaskCreate {
	_c.mutation.SetPriorityRank(v)
	return _c
}

// SetNillablePriorityRank sets the "priority_rank" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePriorityRank(v *int) *TaskCreate {
	if v != nil {
		_c.SetPriorityRank(*v)
	}
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *TaskCreate) SetMessageID(v string) *TaskCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableMessageID(v *string) *TaskCreate {
	if v != nil {
		_c.SetMessageID(*v)
	}
	return _c
}

// SetEmailMetadata sets the "email_metadata" field.
func (_c *TaskCreate) SetEmailMetadata(v map[string]interface{}) *TaskCreate {
	_c.mutation.SetEmailMetadata(v)
	return _c
}

// SetDeadline sets the "deadline" field.
func (_c *TaskCreate) SetDeadline(v time.Time) *TaskCreate {
	_c.mutation.SetDeadline(v)
	return _c
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDeadline(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetDeadline(*v)
	}
	return _c
}

// SetDependencies sets the "dependencies" field.
func (_c *TaskCreate) SetDependencies(v []string) *TaskCreate {
	_c.mutation.SetDependencies(v)
	return _c
}

// SetSuccessCriteria sets the "success_criteria" field.
func (_c *TaskCreate) SetSuccessCriteria(v []string) *TaskCreate {
	_c.mutation.SetSuccessCriteria(v)
	return _c
}

// SetConstraints sets the "constraints" field.
func (_c *TaskCreate) SetConstraints(v []string) *TaskCreate {
	_c.mutation.SetConstraints(v)
	return _c
}

// SetDeliverables sets the "deliverables" field.
func (_c *TaskCreate) SetDeliverables(v []string) *TaskCreate {
	_c.mutation.SetDeliverables(v)
	return _c
}

// SetPrimaryAgent sets the "primary_agent" field.
func (_c *TaskCreate) SetPrimaryAgent(v string) *TaskCreate {
	_c.mutation.SetPrimaryAgent(v)
	return _c
}

// SetNillablePrimaryAgent sets the "primary_agent" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePrimaryAgent(v *string) *TaskCreate {
	if v != nil {
		_c.SetPrimaryAgent(*v)
	}
	return _c
}

// SetSupportingAgents sets the "supporting_agents" field.
func (_c *TaskCreate) SetSupportingAgents(v []string) *TaskCreate {
	_c.mutation.SetSupportingAgents(v)
	return _c
}

// SetAssignmentReason sets the "assignment_reason" field.
func (_c *TaskCreate) SetAssignmentReason(v string) *TaskCreate {
	_c.mutation.SetAssignmentReason(v)
	return _c
}

// SetNillableAssignmentReason sets the "assignment_reason" field if the given value is not nil.
func (_c *TaskCreate) SetNillableAssignmentReason(v *string) *TaskCreate {
	if v != nil {
		_c.SetAssignmentReason(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskCreate) SetStatus(v task.Status) *TaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStatus(v *task.Status) *TaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProcessed sets the "processed" field.
func (_c *TaskCreate) SetProcessed(v bool) *TaskCreate {
	_c.mutation.SetProcessed(v)
	return _c
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_c *TaskCreate) SetNillableProcessed(v *bool) *TaskCreate {
	if v != nil {
		_c.SetProcessed(*v)
	}
	return _c
}

// SetProgress sets the "progress" field.
func (_c *TaskCreate) SetProgress(v int) *TaskCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *TaskCreate) SetNillableProgress(v *int) *TaskCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *TaskCreate) SetErrorMessage(v string) *TaskCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *TaskCreate) SetNillableErrorMessage(v *string) *TaskCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetResultSummary sets the "result_summary" field.
func (_c *TaskCreate) SetResultSummary(v string) *TaskCreate {
	_c.mutation.SetResultSummary(v)
	return _c
}

// SetNillableResultSummary sets the "result_summary" field if the given value is not nil.
func (_c *TaskCreate) SetNillableResultSummary(v *string) *TaskCreate {
	if v != nil {
		_c.SetResultSummary(*v)
	}
	return _c
}

// SetWorkerID sets the "worker_id" field.
func (_c *TaskCreate) SetWorkerID(v string) *TaskCreate {
	_c.mutation.SetWorkerID(v)
	return _c
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableWorkerID(v *string) *TaskCreate {
	if v != nil {
		_c.SetWorkerID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *TaskCreate) SetLastHeartbeatAt(v time.Time) *TaskCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableLastHeartbeatAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetRequeueCount sets the "requeue_count" field.
func (_c *TaskCreate) SetRequeueCount(v int) *TaskCreate {
	_c.mutation.SetRequeueCount(v)
	return _c
}

// SetNillableRequeueCount sets the "requeue_count" field if the given value is not nil.
func (_c *TaskCreate) SetNillableRequeueCount(v *int) *TaskCreate {
	if v != nil {
		_c.SetRequeueCount(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *TaskCreate) SetTags(v []string) *TaskCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetContext sets the "context" field.
func (_c *TaskCreate) SetContext(v map[string]interface{}) *TaskCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TaskCreate) SetUpdatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableUpdatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TaskCreate) SetStartedAt(v time.Time) *TaskCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStartedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TaskCreate) SetCompletedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCompletedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskCreate) SetID(v string) *TaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddNoteIDs adds the "notes" edge to the TaskNote entity by IDs.
func (_c *TaskCreate) AddNoteIDs(ids ...string) *TaskCreate {
	_c.mutation.AddNoteIDs(ids...)
	return _c
}

// AddNotes adds the "notes" edges to the TaskNote entity.
func (_c *TaskCreate) AddNotes(v ...*TaskNote) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddNoteIDs(ids...)
}

// AddConversationEntryIDs adds the "conversation_entries" edge to the ConversationEntry entity by IDs.
func (_c *TaskCreate) AddConversationEntryIDs(ids ...string) *TaskCreate {
	_c.mutation.AddConversationEntryIDs(ids...)
	return _c
}

// AddConversationEntries adds the "conversation_entries" edges to the ConversationEntry entity.
func (_c *TaskCreate) AddConversationEntries(v ...*ConversationEntry) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddConversationEntryIDs(ids...)
}

// AddDeadLetterIDs adds the "dead_letters" edge to the DeadLetter entity by IDs.
func (_c *TaskCreate) AddDeadLetterIDs(ids ...string) *TaskCreate {
	_c.mutation.AddDeadLetterIDs(ids...)
	return _c
}

// AddDeadLetters adds the "dead_letters" edges to the DeadLetter entity.
func (_c *TaskCreate) AddDeadLetters(v ...*DeadLetter) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDeadLetterIDs(ids...)
}

// AddAuditEventIDs adds the "audit_events" edge to the AuditEvent entity by IDs.
func (_c *TaskCreate) AddAuditEventIDs(ids ...int) *TaskCreate {
	_c.mutation.AddAuditEventIDs(ids...)
	return _c
}

// AddAuditEvents adds the "audit_events" edges to the AuditEvent entity.
func (_c *TaskCreate) AddAuditEvents(v ...*AuditEvent) *TaskCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAuditEventIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.TaskType(); !ok {
		v := task.DefaultTaskType
		_c.mutation.SetTaskType(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := task.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.PriorityRank(); !ok {
		v := task.DefaultPriorityRank
		_c.mutation.SetPriorityRank(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := task.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Processed(); !ok {
		v := task.DefaultProcessed
		_c.mutation.SetProcessed(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := task.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.RequeueCount(); !ok {
		v := task.DefaultRequeueCount
		_c.mutation.SetRequeueCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := task.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Task.title"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Task.description"`)}
	}
	if _, ok := _c.mutation.TaskType(); !ok {
		return &ValidationError{Name: "task_type", err: errors.New(`ent: missing required field "Task.task_type"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Task.priority"`)}
	}
	if _, ok := _c.mutation.PriorityRank(); !ok {
		return &ValidationError{Name: "priority_rank", err: errors.New(`ent: missing required field "Task.priority_rank"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Task.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Processed(); !ok {
		return &ValidationError{Name: "processed", err: errors.New(`ent: missing required field "Task.processed"`)}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "Task.progress"`)}
	}
	if _, ok := _c.mutation.RequeueCount(); !ok {
		return &ValidationError{Name: "requeue_count", err: errors.New(`ent: missing required field "Task.requeue_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Task.updated_at"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Task.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.TaskType(); ok {
		_spec.SetField(task.FieldTaskType, field.TypeString, value)
		_node.TaskType = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeString, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.PriorityRank(); ok {
		_spec.SetField(task.FieldPriorityRank, field.TypeInt, value)
		_node.PriorityRank = value
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(task.FieldMessageID, field.TypeString, value)
		_node.MessageID = value
	}
	if value, ok := _c.mutation.EmailMetadata(); ok {
		_spec.SetField(task.FieldEmailMetadata, field.TypeJSON, value)
		_node.EmailMetadata = value
	}
	if value, ok := _c.mutation.Deadline(); ok {
		_spec.SetField(task.FieldDeadline, field.TypeTime, value)
		_node.Deadline = &value
	}
	if value, ok := _c.mutation.Dependencies(); ok {
		_spec.SetField(task.FieldDependencies, field.TypeJSON, value)
		_node.Dependencies = value
	}
	if value, ok := _c.mutation.SuccessCriteria(); ok {
		_spec.SetField(task.FieldSuccessCriteria, field.TypeJSON, value)
		_node.SuccessCriteria = value
	}
	if value, ok := _c.mutation.Constraints(); ok {
		_spec.SetField(task.FieldConstraints, field.TypeJSON, value)
		_node.Constraints = value
	}
	if value, ok := _c.mutation.Deliverables(); ok {
		_spec.SetField(task.FieldDeliverables, field.TypeJSON, value)
		_node.Deliverables = value
	}
	if value, ok := _c.mutation.PrimaryAgent(); ok {
		_spec.SetField(task.FieldPrimaryAgent, field.TypeString, value)
		_node.PrimaryAgent = value
	}
	if value, ok := _c.mutation.SupportingAgents(); ok {
		_spec.SetField(task.FieldSupportingAgents, field.TypeJSON, value)
		_node.SupportingAgents = value
	}
	if value, ok := _c.mutation.AssignmentReason(); ok {
		_spec.SetField(task.FieldAssignmentReason, field.TypeString, value)
		_node.AssignmentReason = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Processed(); ok {
		_spec.SetField(task.FieldProcessed, field.TypeBool, value)
		_node.Processed = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(task.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ResultSummary(); ok {
		_spec.SetField(task.FieldResultSummary, field.TypeString, value)
		_node.ResultSummary = &value
	}
	if value, ok := _c.mutation.WorkerID(); ok {
		_spec.SetField(task.FieldWorkerID, field.TypeString, value)
		_node.WorkerID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(task.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.RequeueCount(); ok {
		_spec.SetField(task.FieldRequeueCount, field.TypeInt, value)
		_node.RequeueCount = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(task.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(task.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.NotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.NotesTable,
			Columns: []string{task.NotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tasknote.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ConversationEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ConversationEntriesTable,
			Columns: []string{task.ConversationEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversationentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DeadLettersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.DeadLettersTable,
			Columns: []string{task.DeadLettersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deadletter.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AuditEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AuditEventsTable,
			Columns: []string{task.AuditEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
