// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/taskwire/taskwire/ent/auditevent"
	"github.com/taskwire/taskwire/ent/conversationentry"
	"github.com/taskwire/taskwire/ent/deadletter"
	"github.com/taskwire/taskwire/ent/predicate"
	"github.com/taskwire/taskwire/ent/task"
	"github.com/taskwire/taskwire/ent/tasknote"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdate) SetTitle(v string) *TaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTitle(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdate) SetDescription(v string) *TaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDescription(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *TaskUpdate) SetTaskType(v string) *TaskUpdate {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTaskType(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdate) SetPriority(v string) *TaskUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePriority(v *string) *TaskUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetPriorityRank sets the "priority_rank" field.
func (_u *TaskUpdate) SetPriorityRank(v int) *TaskUpdate {
	_u.mutation.ResetPriorityRank()
	_u.mutation.SetPriorityRank(v)
	return _u
}

// SetNillablePriorityRank sets the "priority_rank" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePriorityRank(v *int) *TaskUpdate {
	if v != nil {
		_u.SetPriorityRank(*v)
	}
	return _u
}

// AddPriorityRank adds value to the "priority_rank" field.
func (_u *TaskUpdate) AddPriorityRank(v int) *TaskUpdate {
	_u.mutation.AddPriorityRank(v)
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *TaskUpdate) SetMessageID(v string) *TaskUpdate {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableMessageID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// ClearMessageID clears the value of the "message_id" field.
func (_u *TaskUpdate) ClearMessageID() *TaskUpdate {
	_u.mutation.ClearMessageID()
	return _u
}

// SetEmailMetadata sets the "email_metadata" field.
func (_u *TaskUpdate) SetEmailMetadata(v map[string]interface{}) *TaskUpdate {
	_u.mutation.SetEmailMetadata(v)
	return _u
}

// ClearEmailMetadata clears the value of the "email_metadata" field.
func (_u *TaskUpdate) ClearEmailMetadata() *TaskUpdate {
	_u.mutation.ClearEmailMetadata()
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *TaskUpdate) SetDeadline(v time.Time) *TaskUpdate {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDeadline(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// ClearDeadline clears the value of the "deadline" field.
func (_u *TaskUpdate) ClearDeadline() *TaskUpdate {
	_u.mutation.ClearDeadline()
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *TaskUpdate) SetDependencies(v []string) *TaskUpdate {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *TaskUpdate) AppendDependencies(v []string) *TaskUpdate {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *TaskUpdate) ClearDependencies() *TaskUpdate {
	_u.mutation.ClearDependencies()
	return _u
}

// SetSuccessCriteria sets the "success_criteria" field.
func (_u *TaskUpdate) SetSuccessCriteria(v []string) *TaskUpdate {
	_u.mutation.SetSuccessCriteria(v)
	return _u
}

// AppendSuccessCriteria appends value to the "success_criteria" field.
func (_u *TaskUpdate) AppendSuccessCriteria(v []string) *TaskUpdate {
	_u.mutation.AppendSuccessCriteria(v)
	return _u
}

// ClearSuccessCriteria clears the value of the "success_criteria" field.
func (_u *TaskUpdate) ClearSuccessCriteria() *TaskUpdate {
	_u.mutation.ClearSuccessCriteria()
	return _u
}

// SetConstraints sets the "constraints" field.
func (_u *TaskUpdate) SetConstraints(v []string) *TaskUpdate {
	_u.mutation.SetConstraints(v)
	return _u
}

// AppendConstraints appends value to the "constraints" field.
func (_u *TaskUpdate) AppendConstraints(v []string) *TaskUpdate {
	_u.mutation.AppendConstraints(v)
	return _u
}

// ClearConstraints clears the value of the "constraints" field.
func (_u *TaskUpdate) ClearConstraints() *TaskUpdate {
	_u.mutation.ClearConstraints()
	return _u
}

// SetDeliverables sets the "deliverables" field.
func (_u *TaskUpdate) SetDeliverables(v []string) *TaskUpdate {
	_u.mutation.SetDeliverables(v)
	return _u
}

// AppendDeliverables appends value to the "deliverables" field.
func (_u *TaskUpdate) AppendDeliverables(v []string) *TaskUpdate {
	_u.mutation.AppendDeliverables(v)
	return _u
}

// ClearDeliverables clears the value of the "deliverables" field.
func (_u *TaskUpdate) ClearDeliverables() *TaskUpdate {
	_u.mutation.ClearDeliverables()
	return _u
}

// SetPrimaryAgent sets the "primary_agent" field.
func (_u *TaskUpdate) SetPrimaryAgent(v string) *TaskUpdate {
	_u.mutation.SetPrimaryAgent(v)
	return _u
}

// SetNillablePrimaryAgent sets the "primary_agent" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePrimaryAgent(v *string) *TaskUpdate {
	if v != nil {
		_u.SetPrimaryAgent(*v)
	}
	return _u
}

// ClearPrimaryAgent clears the value of the "primary_agent" field.
func (_u *TaskUpdate) ClearPrimaryAgent() *TaskUpdate {
	_u.mutation.ClearPrimaryAgent()
	return _u
}

// SetSupportingAgents sets the "supporting_agents" field.
func (_u *TaskUpdate) SetSupportingAgents(v []string) *TaskUpdate {
	_u.mutation.SetSupportingAgents(v)
	return _u
}

// AppendSupportingAgents appends value to the "supporting_agents" field.
func (_u *TaskUpdate) AppendSupportingAgents(v []string) *TaskUpdate {
	_u.mutation.AppendSupportingAgents(v)
	return _u
}

// ClearSupportingAgents clears the value of the "supporting_agents" field.
func (_u *TaskUpdate) ClearSupportingAgents() *TaskUpdate {
	_u.mutation.ClearSupportingAgents()
	return _u
}

// SetAssignmentReason sets the "assignment_reason" field.
func (_u *TaskUpdate) SetAssignmentReason(v string) *TaskUpdate {
	_u.mutation.SetAssignmentReason(v)
	return _u
}

// SetNillableAssignmentReason sets the "assignment_reason" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAssignmentReason(v *string) *TaskUpdate {
	if v != nil {
		_u.SetAssignmentReason(*v)
	}
	return _u
}

// ClearAssignmentReason clears the value of the "assignment_reason" field.
func (_u *TaskUpdate) ClearAssignmentReason() *TaskUpdate {
	_u.mutation.ClearAssignmentReason()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProcessed sets the "processed" field.
func (_u *TaskUpdate) SetProcessed(v bool) *TaskUpdate {
	_u.mutation.SetProcessed(v)
	return _u
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableProcessed(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetProcessed(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *TaskUpdate) SetProgress(v int) *TaskUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableProgress(v *int) *TaskUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *TaskUpdate) AddProgress(v int) *TaskUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskUpdate) SetErrorMessage(v string) *TaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableErrorMessage(v *string) *TaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskUpdate) ClearErrorMessage() *TaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetResultSummary sets the "result_summary" field.
func (_u *TaskUpdate) SetResultSummary(v string) *TaskUpdate {
	_u.mutation.SetResultSummary(v)
	return _u
}

// SetNillableResultSummary sets the "result_summary" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableResultSummary(v *string) *TaskUpdate {
	if v != nil {
		_u.SetResultSummary(*v)
	}
	return _u
}

// ClearResultSummary clears the value of the "result_summary" field.
func (_u *TaskUpdate) ClearResultSummary() *TaskUpdate {
	_u.mutation.ClearResultSummary()
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *TaskUpdate) SetWorkerID(v string) *TaskUpdate {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableWorkerID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *TaskUpdate) ClearWorkerID() *TaskUpdate {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *TaskUpdate) SetLastHeartbeatAt(v time.Time) *TaskUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableLastHeartbeatAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *TaskUpdate) ClearLastHeartbeatAt() *TaskUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetRequeueCount sets the "requeue_count" field.
func (_u *TaskUpdate) SetRequeueCount(v int) *TaskUpdate {
	_u.mutation.ResetRequeueCount()
	_u.mutation.SetRequeueCount(v)
	return _u
}

// SetNillableRequeueCount sets the "requeue_count" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableRequeueCount(v *int) *TaskUpdate {
	if v != nil {
		_u.SetRequeueCount(*v)
	}
	return _u
}

// AddRequeueCount adds value to the "requeue_count" field.
func (_u *TaskUpdate) AddRequeueCount(v int) *TaskUpdate {
	_u.mutation.AddRequeueCount(v)
	return _u
}

// SetTags sets the "tags" field.
func (_u *TaskUpdate) SetTags(v []string) *TaskUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *TaskUpdate) AppendTags(v []string) *TaskUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *TaskUpdate) ClearTags() *TaskUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetContext sets the "context" field.
func (_u *TaskUpdate) SetContext(v map[string]interface{}) *TaskUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *TaskUpdate) ClearContext() *TaskUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdate) SetStartedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStartedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdate) ClearStartedAt() *TaskUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdate) SetCompletedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCompletedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdate) ClearCompletedAt() *TaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddNoteIDs adds the "notes" edge to the TaskNote entity by IDs.
func (_u *TaskUpdate) AddNoteIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddNoteIDs(ids...)
	return _u
}

// AddNotes adds the "notes" edges to the TaskNote entity.
func (_u *TaskUpdate) AddNotes(v ...*TaskNote) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNoteIDs(ids...)
}

// AddConversationEntryIDs adds the "conversation_entries" edge to the ConversationEntry entity by IDs.
func (_u *TaskUpdate) AddConversationEntryIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddConversationEntryIDs(ids...)
	return _u
}

// AddConversationEntries adds the "conversation_entries" edges to the ConversationEntry entity.
func (_u *TaskUpdate) AddConversationEntries(v ...*ConversationEntry) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConversationEntryIDs(ids...)
}

// AddDeadLetterIDs adds the "dead_letters" edge to the DeadLetter entity by IDs.
func (_u *TaskUpdate) AddDeadLetterIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddDeadLetterIDs(ids...)
	return _u
}

// AddDeadLetters adds the "dead_letters" edges to the DeadLetter entity.
func (_u *TaskUpdate) AddDeadLetters(v ...*DeadLetter) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeadLetterIDs(ids...)
}

// AddAuditEventIDs adds the "audit_events" edge to the AuditEvent entity by IDs.
func (_u *TaskUpdate) AddAuditEventIDs(ids ...int) *TaskUpdate {
	_u.mutation.AddAuditEventIDs(ids...)
	return _u
}

// AddAuditEvents adds the "audit_events" edges to the AuditEvent entity.
func (_u *TaskUpdate) AddAuditEvents(v ...*AuditEvent) *TaskUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditEventIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearNotes clears all "notes" edges to the TaskNote entity.
func (_u *TaskUpdate) ClearNotes() *TaskUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// RemoveNoteIDs removes the "notes" edge to TaskNote entities by IDs.
func (_u *TaskUpdate) RemoveNoteIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveNoteIDs(ids...)
	return _u
}

// RemoveNotes removes "notes" edges to TaskNote entities.
func (_u *TaskUpdate) RemoveNotes(v ...*TaskNote) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNoteIDs(ids...)
}

// ClearConversationEntries clears all "conversation_entries" edges to the ConversationEntry entity.
func (_u *TaskUpdate) ClearConversationEntries() *TaskUpdate {
	_u.mutation.ClearConversationEntries()
	return _u
}

// RemoveConversationEntryIDs removes the "conversation_entries" edge to ConversationEntry entities by IDs.
func (_u *TaskUpdate) RemoveConversationEntryIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveConversationEntryIDs(ids...)
	return _u
}

// RemoveConversationEntries removes "conversation_entries" edges to ConversationEntry entities.
func (_u *TaskUpdate) RemoveConversationEntries(v ...*ConversationEntry) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConversationEntryIDs(ids...)
}

// ClearDeadLetters clears all "dead_letters" edges to the DeadLetter entity.
func (_u *TaskUpdate) ClearDeadLetters() *TaskUpdate {
	_u.mutation.ClearDeadLetters()
	return _u
}

// RemoveDeadLetterIDs removes the "dead_letters" edge to DeadLetter entities by IDs.
func (_u *TaskUpdate) RemoveDeadLetterIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveDeadLetterIDs(ids...)
	return _u
}

// RemoveDeadLetters removes "dead_letters" edges to DeadLetter entities.
func (_u *TaskUpdate) RemoveDeadLetters(v ...*DeadLetter) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeadLetterIDs(ids...)
}

// ClearAuditEvents clears all "audit_events" edges to the AuditEvent entity.
func (_u *TaskUpdate) ClearAuditEvents() *TaskUpdate {
	_u.mutation.ClearAuditEvents()
	return _u
}

// RemoveAuditEventIDs removes the "audit_events" edge to AuditEvent entities by IDs.
func (_u *TaskUpdate) RemoveAuditEventIDs(ids ...int) *TaskUpdate {
	_u.mutation.RemoveAuditEventIDs(ids...)
	return _u
}

// RemoveAuditEvents removes "audit_events" edges to AuditEvent entities.
func (_u *TaskUpdate) RemoveAuditEvents(v ...*AuditEvent) *TaskUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(task.FieldTaskType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeString, value)
	}
	if value, ok := _u.mutation.PriorityRank(); ok {
		_spec.SetField(task.FieldPriorityRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorityRank(); ok {
		_spec.AddField(task.FieldPriorityRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(task.FieldMessageID, field.TypeString, value)
	}
	if _u.mutation.MessageIDCleared() {
		_spec.ClearField(task.FieldMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.EmailMetadata(); ok {
		_spec.SetField(task.FieldEmailMetadata, field.TypeJSON, value)
	}
	if _u.mutation.EmailMetadataCleared() {
		_spec.ClearField(task.FieldEmailMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(task.FieldDeadline, field.TypeTime, value)
	}
	if _u.mutation.DeadlineCleared() {
		_spec.ClearField(task.FieldDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(task.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(task.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.SuccessCriteria(); ok {
		_spec.SetField(task.FieldSuccessCriteria, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuccessCriteria(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldSuccessCriteria, value)
		})
	}
	if _u.mutation.SuccessCriteriaCleared() {
		_spec.ClearField(task.FieldSuccessCriteria, field.TypeJSON)
	}
	if value, ok := _u.mutation.Constraints(); ok {
		_spec.SetField(task.FieldConstraints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConstraints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldConstraints, value)
		})
	}
	if _u.mutation.ConstraintsCleared() {
		_spec.ClearField(task.FieldConstraints, field.TypeJSON)
	}
	if value, ok := _u.mutation.Deliverables(); ok {
		_spec.SetField(task.FieldDeliverables, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDeliverables(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldDeliverables, value)
		})
	}
	if _u.mutation.DeliverablesCleared() {
		_spec.ClearField(task.FieldDeliverables, field.TypeJSON)
	}
	if value, ok := _u.mutation.PrimaryAgent(); ok {
		_spec.SetField(task.FieldPrimaryAgent, field.TypeString, value)
	}
	if _u.mutation.PrimaryAgentCleared() {
		_spec.ClearField(task.FieldPrimaryAgent, field.TypeString)
	}
	if value, ok := _u.mutation.SupportingAgents(); ok {
		_spec.SetField(task.FieldSupportingAgents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSupportingAgents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldSupportingAgents, value)
		})
	}
	if _u.mutation.SupportingAgentsCleared() {
		_spec.ClearField(task.FieldSupportingAgents, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssignmentReason(); ok {
		_spec.SetField(task.FieldAssignmentReason, field.TypeString, value)
	}
	if _u.mutation.AssignmentReasonCleared() {
		_spec.ClearField(task.FieldAssignmentReason, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Processed(); ok {
		_spec.SetField(task.FieldProcessed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(task.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(task.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(task.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ResultSummary(); ok {
		_spec.SetField(task.FieldResultSummary, field.TypeString, value)
	}
	if _u.mutation.ResultSummaryCleared() {
		_spec.ClearField(task.FieldResultSummary, field.TypeString)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(task.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(task.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(task.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(task.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RequeueCount(); ok {
		_spec.SetField(task.FieldRequeueCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequeueCount(); ok {
		_spec.AddField(task.FieldRequeueCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(task.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(task.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(task.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(task.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.NotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNotesIDs(); len(nodes) > 0 && !_u.mutation.NotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NotesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConversationEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConversationEntriesIDs(); len(nodes) > 0 && !_u.mutation.ConversationEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DeadLettersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeadLettersIDs(); len(nodes) > 0 && !_u.mutation.DeadLettersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeadLettersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditEventsIDs(); len(nodes) > 0 && !_u.mutation.AuditEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetTitle sets the "title" field.
func (_u *TaskUpdateOne) SetTitle(v string) *TaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTitle(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdateOne) SetDescription(v string) *TaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDescription(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *TaskUpdateOne) SetTaskType(v string) *TaskUpdateOne {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTaskType(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdateOne) SetPriority(v string) *TaskUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePriority(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetPriorityRank sets the "priority_rank" field.
func (_u *TaskUpdateOne) SetPriorityRank(v int) *TaskUpdateOne {
	_u.mutation.ResetPriorityRank()
	_u.mutation.SetPriorityRank(v)
	return _u
}

// SetNillablePriorityRank sets the "priority_rank" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePriorityRank(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetPriorityRank(*v)
	}
	return _u
}

// AddPriorityRank adds value to the "priority_rank" field.
func (_u *TaskUpdateOne) AddPriorityRank(v int) *TaskUpdateOne {
	_u.mutation.AddPriorityRank(v)
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *TaskUpdateOne) SetMessageID(v string) *TaskUpdateOne {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableMessageID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// ClearMessageID clears the value of the "message_id" field.
func (_u *TaskUpdateOne) ClearMessageID() *TaskUpdateOne {
	_u.mutation.ClearMessageID()
	return _u
}

// SetEmailMetadata sets the "email_metadata" field.
func (_u *TaskUpdateOne) SetEmailMetadata(v map[string]interface{}) *TaskUpdateOne {
	_u.mutation.SetEmailMetadata(v)
	return _u
}

// ClearEmailMetadata clears the value of the "email_metadata" field.
func (_u *TaskUpdateOne) ClearEmailMetadata() *TaskUpdateOne {
	_u.mutation.ClearEmailMetadata()
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *TaskUpdateOne) SetDeadline(v time.Time) *TaskUpdateOne {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDeadline(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// ClearDeadline clears the value of the "deadline" field.
func (_u *TaskUpdateOne) ClearDeadline() *TaskUpdateOne {
	_u.mutation.ClearDeadline()
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *TaskUpdateOne) SetDependencies(v []string) *TaskUpdateOne {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *TaskUpdateOne) AppendDependencies(v []string) *TaskUpdateOne {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *TaskUpdateOne) ClearDependencies() *TaskUpdateOne {
	_u.mutation.ClearDependencies()
	return _u
}

// SetSuccessCriteria sets the "success_criteria" field.
func (_u *TaskUpdateOne) SetSuccessCriteria(v []string) *TaskUpdateOne {
	_u.mutation.SetSuccessCriteria(v)
	return _u
}

// AppendSuccessCriteria appends value to the "success_criteria" field.
func (_u *TaskUpdateOne) AppendSuccessCriteria(v []string) *TaskUpdateOne {
	_u.mutation.AppendSuccessCriteria(v)
	return _u
}

// ClearSuccessCriteria clears the value of the "success_criteria" field.
func (_u *TaskUpdateOne) ClearSuccessCriteria() *TaskUpdateOne {
	_u.mutation.ClearSuccessCriteria()
	return _u
}

// SetConstraints sets the "constraints" field.
func (_u *TaskUpdateOne) SetConstraints(v []string) *TaskUpdateOne {
	_u.mutation.SetConstraints(v)
	return _u
}

// AppendConstraints appends value to the "constraints" field.
func (_u *TaskUpdateOne) AppendConstraints(v []string) *TaskUpdateOne {
	_u.mutation.AppendConstraints(v)
	return _u
}

// ClearConstraints clears the value of the "constraints" field.
func (_u *TaskUpdateOne) ClearConstraints() *TaskUpdateOne {
	_u.mutation.ClearConstraints()
	return _u
}

// SetDeliverables sets the "deliverables" field.
func (_u *TaskUpdateOne) SetDeliverables(v []string) *TaskUpdateOne {
	_u.mutation.SetDeliverables(v)
	return _u
}

// AppendDeliverables appends value to the "deliverables" field.
func (_u *TaskUpdateOne) AppendDeliverables(v []string) *TaskUpdateOne {
	_u.mutation.AppendDeliverables(v)
	return _u
}

// ClearDeliverables clears the value of the "deliverables" field.
func (_u *TaskUpdateOne) ClearDeliverables() *TaskUpdateOne {
	_u.mutation.ClearDeliverables()
	return _u
}

// SetPrimaryAgent sets the "primary_agent" field.
func (_u *TaskUpdateOne) SetPrimaryAgent(v string) *TaskUpdateOne {
	_u.mutation.SetPrimaryAgent(v)
	return _u
}

// SetNillablePrimaryAgent sets the "primary_agent" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePrimaryAgent(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetPrimaryAgent(*v)
	}
	return _u
}

// ClearPrimaryAgent clears the value of the "primary_agent" field.
func (_u *TaskUpdateOne) ClearPrimaryAgent() *TaskUpdateOne {
	_u.mutation.ClearPrimaryAgent()
	return _u
}

// SetSupportingAgents sets the "supporting_agents" field.
func (_u *TaskUpdateOne) SetSupportingAgents(v []string) *TaskUpdateOne {
	_u.mutation.SetSupportingAgents(v)
	return _u
}

// AppendSupportingAgents appends value to the "supporting_agents" field.
func (_u *TaskUpdateOne) AppendSupportingAgents(v []string) *TaskUpdateOne {
	_u.mutation.AppendSupportingAgents(v)
	return _u
}

// ClearSupportingAgents clears the value of the "supporting_agents" field.
func (_u *TaskUpdateOne) ClearSupportingAgents() *TaskUpdateOne {
	_u.mutation.ClearSupportingAgents()
	return _u
}

// SetAssignmentReason sets the "assignment_reason" field.
func (_u *TaskUpdateOne) SetAssignmentReason(v string) *TaskUpdateOne {
	_u.mutation.SetAssignmentReason(v)
	return _u
}

// SetNillableAssignmentReason sets the "assignment_reason" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAssignmentReason(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetAssignmentReason(*v)
	}
	return _u
}

// ClearAssignmentReason clears the value of the "assignment_reason" field.
func (_u *TaskUpdateOne) ClearAssignmentReason() *TaskUpdateOne {
	_u.mutation.ClearAssignmentReason()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProcessed sets the "processed" field.
func (_u *TaskUpdateOne) SetProcessed(v bool) *TaskUpdateOne {
	_u.mutation.SetProcessed(v)
	return _u
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableProcessed(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetProcessed(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *TaskUpdateOne) SetProgress(v int) *TaskUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableProgress(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *TaskUpdateOne) AddProgress(v int) *TaskUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskUpdateOne) SetErrorMessage(v string) *TaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableErrorMessage(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskUpdateOne) ClearErrorMessage() *TaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetResultSummary sets the "result_summary" field.
func (_u *TaskUpdateOne) SetResultSummary(v string) *TaskUpdateOne {
	_u.mutation.SetResultSummary(v)
	return _u
}

// SetNillableResultSummary sets the "result_summary" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableResultSummary(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetResultSummary(*v)
	}
	return _u
}

// ClearResultSummary clears the value of the "result_summary" field.
func (_u *TaskUpdateOne) ClearResultSummary() *TaskUpdateOne {
	_u.mutation.ClearResultSummary()
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *TaskUpdateOne) SetWorkerID(v string) *TaskUpdateOne {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableWorkerID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *TaskUpdateOne) ClearWorkerID() *TaskUpdateOne {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *TaskUpdateOne) SetLastHeartbeatAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *TaskUpdateOne) ClearLastHeartbeatAt() *TaskUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetRequeueCount sets the "requeue_count" field.
func (_u *TaskUpdateOne) SetRequeueCount(v int) *TaskUpdateOne {
	_u.mutation.ResetRequeueCount()
	_u.mutation.SetRequeueCount(v)
	return _u
}

// SetNillableRequeueCount sets the "requeue_count" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableRequeueCount(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetRequeueCount(*v)
	}
	return _u
}

// AddRequeueCount adds value to the "requeue_count" field.
func (_u *TaskUpdateOne) AddRequeueCount(v int) *TaskUpdateOne {
	_u.mutation.AddRequeueCount(v)
	return _u
}

// SetTags sets the "tags" field.
func (_u *TaskUpdateOne) SetTags(v []string) *TaskUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *TaskUpdateOne) AppendTags(v []string) *TaskUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *TaskUpdateOne) ClearTags() *TaskUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetContext sets the "context" field.
func (_u *TaskUpdateOne) SetContext(v map[string]interface{}) *TaskUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *TaskUpdateOne) ClearContext() *TaskUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdateOne) SetStartedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStartedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdateOne) ClearStartedAt() *TaskUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdateOne) SetCompletedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdateOne) ClearCompletedAt() *TaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddNoteIDs adds the "notes" edge to the TaskNote entity by IDs.
func (_u *TaskUpdateOne) AddNoteIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddNoteIDs(ids...)
	return _u
}

// AddNotes adds the "notes" edges to the TaskNote entity.
func (_u *TaskUpdateOne) AddNotes(v ...*TaskNote) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNoteIDs(ids...)
}

// AddConversationEntryIDs adds the "conversation_entries" edge to the ConversationEntry entity by IDs.
func (_u *TaskUpdateOne) AddConversationEntryIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddConversationEntryIDs(ids...)
	return _u
}

// AddConversationEntries adds the "conversation_entries" edges to the ConversationEntry entity.
func (_u *TaskUpdateOne) AddConversationEntries(v ...*ConversationEntry) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConversationEntryIDs(ids...)
}

// AddDeadLetterIDs adds the "dead_letters" edge to the DeadLetter entity by IDs.
func (_u *TaskUpdateOne) AddDeadLetterIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddDeadLetterIDs(ids...)
	return _u
}

// AddDeadLetters adds the "dead_letters" edges to the DeadLetter entity.
func (_u *TaskUpdateOne) AddDeadLetters(v ...*DeadLetter) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeadLetterIDs(ids...)
}

// AddAuditEventIDs adds the "audit_events" edge to the AuditEvent entity by IDs.
func (_u *TaskUpdateOne) AddAuditEventIDs(ids ...int) *TaskUpdateOne {
	_u.mutation.AddAuditEventIDs(ids...)
	return _u
}

// AddAuditEvents adds the "audit_events" edges to the AuditEvent entity.
func (_u *TaskUpdateOne) AddAuditEvents(v ...*AuditEvent) *TaskUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditEventIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearNotes clears all "notes" edges to the TaskNote entity.
func (_u *TaskUpdateOne) ClearNotes() *TaskUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// RemoveNoteIDs removes the "notes" edge to TaskNote entities by IDs.
func (_u *TaskUpdateOne) RemoveNoteIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveNoteIDs(ids...)
	return _u
}

// RemoveNotes removes "notes" edges to TaskNote entities.
func (_u *TaskUpdateOne) RemoveNotes(v ...*TaskNote) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNoteIDs(ids...)
}

// ClearConversationEntries clears all "conversation_entries" edges to the ConversationEntry entity.
func (_u *TaskUpdateOne) ClearConversationEntries() *TaskUpdateOne {
	_u.mutation.ClearConversationEntries()
	return _u
}

// RemoveConversationEntryIDs removes the "conversation_entries" edge to ConversationEntry entities by IDs.
func (_u *TaskUpdateOne) RemoveConversationEntryIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveConversationEntryIDs(ids...)
	return _u
}

// RemoveConversationEntries removes "conversation_entries" edges to ConversationEntry entities.
func (_u *TaskUpdateOne) RemoveConversationEntries(v ...*ConversationEntry) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConversationEntryIDs(ids...)
}

// ClearDeadLetters clears all "dead_letters" edges to the DeadLetter entity.
func (_u *TaskUpdateOne) ClearDeadLetters() *TaskUpdateOne {
	_u.mutation.ClearDeadLetters()
	return _u
}

// RemoveDeadLetterIDs removes the "dead_letters" edge to DeadLetter entities by IDs.
func (_u *TaskUpdateOne) RemoveDeadLetterIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveDeadLetterIDs(ids...)
	return _u
}

// RemoveDeadLetters removes "dead_letters" edges to DeadLetter entities.
func (_u *TaskUpdateOne) RemoveDeadLetters(v ...*DeadLetter) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeadLetterIDs(ids...)
}

// ClearAuditEvents clears all "audit_events" edges to the AuditEvent entity.
func (_u *TaskUpdateOne) ClearAuditEvents() *TaskUpdateOne {
	_u.mutation.ClearAuditEvents()
	return _u
}

// RemoveAuditEventIDs removes the "audit_events" edge to AuditEvent entities by IDs.
func (_u *TaskUpdateOne) RemoveAuditEventIDs(ids ...int) *TaskUpdateOne {
	_u.mutation.RemoveAuditEventIDs(ids...)
	return _u
}

// RemoveAuditEvents removes "audit_events" edges to AuditEvent entities.
func (_u *TaskUpdateOne) RemoveAuditEvents(v ...*AuditEvent) *TaskUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditEventIDs(ids...)
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(task.FieldTaskType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeString, value)
	}
	if value, ok := _u.mutation.PriorityRank(); ok {
		_spec.SetField(task.FieldPriorityRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorityRank(); ok {
		_spec.AddField(task.FieldPriorityRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(task.FieldMessageID, field.TypeString, value)
	}
	if _u.mutation.MessageIDCleared() {
		_spec.ClearField(task.FieldMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.EmailMetadata(); ok {
		_spec.SetField(task.FieldEmailMetadata, field.TypeJSON, value)
	}
	if _u.mutation.EmailMetadataCleared() {
		_spec.ClearField(task.FieldEmailMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(task.FieldDeadline, field.TypeTime, value)
	}
	if _u.mutation.DeadlineCleared() {
		_spec.ClearField(task.FieldDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(task.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(task.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.SuccessCriteria(); ok {
		_spec.SetField(task.FieldSuccessCriteria, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuccessCriteria(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldSuccessCriteria, value)
		})
	}
	if _u.mutation.SuccessCriteriaCleared() {
		_spec.ClearField(task.FieldSuccessCriteria, field.TypeJSON)
	}
	if value, ok := _u.mutation.Constraints(); ok {
		_spec.SetField(task.FieldConstraints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConstraints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldConstraints, value)
		})
	}
	if _u.mutation.ConstraintsCleared() {
		_spec.ClearField(task.FieldConstraints, field.TypeJSON)
	}
	if value, ok := _u.mutation.Deliverables(); ok {
		_spec.SetField(task.FieldDeliverables, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDeliverables(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldDeliverables, value)
		})
	}
	if _u.mutation.DeliverablesCleared() {
		_spec.ClearField(task.FieldDeliverables, field.TypeJSON)
	}
	if value, ok := _u.mutation.PrimaryAgent(); ok {
		_spec.SetField(task.FieldPrimaryAgent, field.TypeString, value)
	}
	if _u.mutation.PrimaryAgentCleared() {
		_spec.ClearField(task.FieldPrimaryAgent, field.TypeString)
	}
	if value, ok := _u.mutation.SupportingAgents(); ok {
		_spec.SetField(task.FieldSupportingAgents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSupportingAgents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldSupportingAgents, value)
		})
	}
	if _u.mutation.SupportingAgentsCleared() {
		_spec.ClearField(task.FieldSupportingAgents, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssignmentReason(); ok {
		_spec.SetField(task.FieldAssignmentReason, field.TypeString, value)
	}
	if _u.mutation.AssignmentReasonCleared() {
		_spec.ClearField(task.FieldAssignmentReason, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Processed(); ok {
		_spec.SetField(task.FieldProcessed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(task.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(task.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(task.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ResultSummary(); ok {
		_spec.SetField(task.FieldResultSummary, field.TypeString, value)
	}
	if _u.mutation.ResultSummaryCleared() {
		_spec.ClearField(task.FieldResultSummary, field.TypeString)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(task.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(task.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(task.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(task.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RequeueCount(); ok {
		_spec.SetField(task.FieldRequeueCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequeueCount(); ok {
		_spec.AddField(task.FieldRequeueCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(task.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(task.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(task.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(task.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.NotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNotesIDs(); len(nodes) > 0 && !_u.mutation.NotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NotesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConversationEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConversationEntriesIDs(); len(nodes) > 0 && !_u.mutation.ConversationEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DeadLettersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeadLettersIDs(); len(nodes) > 0 && !_u.mutation.DeadLettersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeadLettersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditEventsIDs(); len(nodes) > 0 && !_u.mutation.AuditEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
