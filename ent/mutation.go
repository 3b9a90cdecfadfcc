// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/taskwire/taskwire/ent/auditevent"
	"github.com/taskwire/taskwire/ent/conversationentry"
	"github.com/taskwire/taskwire/ent/deadletter"
	"github.com/taskwire/taskwire/ent/predicate"
	"github.com/taskwire/taskwire/ent/task"
	"github.com/taskwire/taskwire/ent/tasknote"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditEvent        = "AuditEvent"
	TypeConversationEntry = "ConversationEntry"
	TypeDeadLetter        = "DeadLetter"
	TypeTask              = "Task"
	TypeTaskNote          = "TaskNote"
)

// AuditEventMutation represents an operation that mutates the AuditEvent nodes in the graph.
type AuditEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	channel       *string
	payload       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	task          *string
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*AuditEvent, error)
	predicates    []predicate.AuditEvent
}

var _ ent.Mutation = (*AuditEventMutation)(nil)

// auditeventOption allows management of the mutation configuration using functional options.
type auditeventOption func(*AuditEventMutation)

// newAuditEventMutation creates new mutation for the AuditEvent entity.
func newAuditEventMutation(c config, op Op, opts ...auditeventOption) *AuditEventMutation {
	m := &AuditEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditEventID sets the ID field of the mutation.
func withAuditEventID(id int) auditeventOption {
	return func(m *AuditEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditEvent
		)
		m.oldValue = func(ctx context.Context) (*AuditEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditEvent sets the old AuditEvent of the mutation.
func withAuditEvent(node *AuditEvent) auditeventOption {
	return func(m *AuditEventMutation) {
		m.oldValue = func(context.Context) (*AuditEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *AuditEventMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *AuditEventMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *AuditEventMutation) ResetTaskID() {
	m.task = nil
}

// SetChannel sets the "channel" field.
func (m *AuditEventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *AuditEventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *AuditEventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *AuditEventMutation) SetPayload(s string) {
	m.payload = &s
}

// Payload returns the value of the "payload" field in the mutation.
func (m *AuditEventMutation) Payload() (r string, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldPayload(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *AuditEventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *AuditEventMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[auditevent.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *AuditEventMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *AuditEventMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *AuditEventMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the AuditEventMutation builder.
func (m *AuditEventMutation) Where(ps ...predicate.AuditEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditEvent).
func (m *AuditEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditEventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.task != nil {
		fields = append(fields, auditevent.FieldTaskID)
	}
	if m.channel != nil {
		fields = append(fields, auditevent.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, auditevent.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, auditevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditevent.FieldTaskID:
		return m.TaskID()
	case auditevent.FieldChannel:
		return m.Channel()
	case auditevent.FieldPayload:
		return m.Payload()
	case auditevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditevent.FieldTaskID:
		return m.OldTaskID(ctx)
	case auditevent.FieldChannel:
		return m.OldChannel(ctx)
	case auditevent.FieldPayload:
		return m.OldPayload(ctx)
	case auditevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditevent.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case auditevent.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case auditevent.FieldPayload:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case auditevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AuditEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditEventMutation) ResetField(name string) error {
	switch name {
	case auditevent.FieldTaskID:
		m.ResetTaskID()
		return nil
	case auditevent.FieldChannel:
		m.ResetChannel()
		return nil
	case auditevent.FieldPayload:
		m.ResetPayload()
		return nil
	case auditevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, auditevent.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditevent.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, auditevent.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditEventMutation) EdgeCleared(name string) bool {
	switch name {
	case auditevent.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditEventMutation) ClearEdge(name string) error {
	switch name {
	case auditevent.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown AuditEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditEventMutation) ResetEdge(name string) error {
	switch name {
	case auditevent.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown AuditEvent edge %s", name)
}

// ConversationEntryMutation represents an operation that mutates the ConversationEntry nodes in the graph.
type ConversationEntryMutation struct {
	config
	op            Op
	typ           string
	id            *string
	agent_id      *string
	role          *conversationentry.Role
	content       *string
	metadata      *map[string]interface{}
	sequence      *int
	addsequence   *int
	created_at    *time.Time
	clearedFields map[string]struct{}
	task          *string
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*ConversationEntry, error)
	predicates    []predicate.ConversationEntry
}

var _ ent.Mutation = (*ConversationEntryMutation)(nil)

// conversationentryOption allows management of the mutation configuration using functional options.
type conversationentryOption func(*ConversationEntryMutation)

// newConversationEntryMutation creates new mutation for the ConversationEntry entity.
func newConversationEntryMutation(c config, op Op, opts ...conversationentryOption) *ConversationEntryMutation {
	m := &ConversationEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeConversationEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationEntryID sets the ID field of the mutation.
func withConversationEntryID(id string) conversationentryOption {
	return func(m *ConversationEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *ConversationEntry
		)
		m.oldValue = func(ctx context.Context) (*ConversationEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConversationEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversationEntry sets the old ConversationEntry of the mutation.
func withConversationEntry(node *ConversationEntry) conversationentryOption {
	return func(m *ConversationEntryMutation) {
		m.oldValue = func(context.Context) (*ConversationEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConversationEntry entities.
func (m *ConversationEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConversationEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *ConversationEntryMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ConversationEntryMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the ConversationEntry entity.
// If the ConversationEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationEntryMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ConversationEntryMutation) ResetTaskID() {
	m.task = nil
}

// SetAgentID sets the "agent_id" field.
func (m *ConversationEntryMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ConversationEntryMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the ConversationEntry entity.
// If the ConversationEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationEntryMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ConversationEntryMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetRole sets the "role" field.
func (m *ConversationEntryMutation) SetRole(c conversationentry.Role) {
	m.role = &c
}

// Role returns the value of the "role" field in the mutation.
func (m *ConversationEntryMutation) Role() (r conversationentry.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the ConversationEntry entity.
// If the ConversationEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationEntryMutation) OldRole(ctx context.Context) (v conversationentry.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ConversationEntryMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *ConversationEntryMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ConversationEntryMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ConversationEntry entity.
// If the ConversationEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationEntryMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ConversationEntryMutation) ResetContent() {
	m.content = nil
}

// SetMetadata sets the "metadata" field.
func (m *ConversationEntryMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ConversationEntryMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ConversationEntry entity.
// If the ConversationEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationEntryMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ConversationEntryMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[conversationentry.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ConversationEntryMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[conversationentry.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ConversationEntryMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, conversationentry.FieldMetadata)
}

// SetSequence sets the "sequence" field.
func (m *ConversationEntryMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ConversationEntryMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ConversationEntry entity.
// If the ConversationEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationEntryMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ConversationEntryMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ConversationEntryMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ConversationEntryMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversationEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversationEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConversationEntry entity.
// If the ConversationEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversationEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *ConversationEntryMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[conversationentry.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *ConversationEntryMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *ConversationEntryMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *ConversationEntryMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the ConversationEntryMutation builder.
func (m *ConversationEntryMutation) Where(ps ...predicate.ConversationEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConversationEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConversationEntry).
func (m *ConversationEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationEntryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.task != nil {
		fields = append(fields, conversationentry.FieldTaskID)
	}
	if m.agent_id != nil {
		fields = append(fields, conversationentry.FieldAgentID)
	}
	if m.role != nil {
		fields = append(fields, conversationentry.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, conversationentry.FieldContent)
	}
	if m.metadata != nil {
		fields = append(fields, conversationentry.FieldMetadata)
	}
	if m.sequence != nil {
		fields = append(fields, conversationentry.FieldSequence)
	}
	if m.created_at != nil {
		fields = append(fields, conversationentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversationentry.FieldTaskID:
		return m.TaskID()
	case conversationentry.FieldAgentID:
		return m.AgentID()
	case conversationentry.FieldRole:
		return m.Role()
	case conversationentry.FieldContent:
		return m.Content()
	case conversationentry.FieldMetadata:
		return m.Metadata()
	case conversationentry.FieldSequence:
		return m.Sequence()
	case conversationentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversationentry.FieldTaskID:
		return m.OldTaskID(ctx)
	case conversationentry.FieldAgentID:
		return m.OldAgentID(ctx)
	case conversationentry.FieldRole:
		return m.OldRole(ctx)
	case conversationentry.FieldContent:
		return m.OldContent(ctx)
	case conversationentry.FieldMetadata:
		return m.OldMetadata(ctx)
	case conversationentry.FieldSequence:
		return m.OldSequence(ctx)
	case conversationentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConversationEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversationentry.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case conversationentry.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case conversationentry.FieldRole:
		v, ok := value.(conversationentry.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case conversationentry.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case conversationentry.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case conversationentry.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case conversationentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConversationEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationEntryMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, conversationentry.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case conversationentry.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case conversationentry.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown ConversationEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversationentry.FieldMetadata) {
		fields = append(fields, conversationentry.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationEntryMutation) ClearField(name string) error {
	switch name {
	case conversationentry.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown ConversationEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationEntryMutation) ResetField(name string) error {
	switch name {
	case conversationentry.FieldTaskID:
		m.ResetTaskID()
		return nil
	case conversationentry.FieldAgentID:
		m.ResetAgentID()
		return nil
	case conversationentry.FieldRole:
		m.ResetRole()
		return nil
	case conversationentry.FieldContent:
		m.ResetContent()
		return nil
	case conversationentry.FieldMetadata:
		m.ResetMetadata()
		return nil
	case conversationentry.FieldSequence:
		m.ResetSequence()
		return nil
	case conversationentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ConversationEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, conversationentry.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case conversationentry.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, conversationentry.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case conversationentry.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationEntryMutation) ClearEdge(name string) error {
	switch name {
	case conversationentry.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown ConversationEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationEntryMutation) ResetEdge(name string) error {
	switch name {
	case conversationentry.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown ConversationEntry edge %s", name)
}

// DeadLetterMutation represents an operation that mutates the DeadLetter nodes in the graph.
type DeadLetterMutation struct {
	config
	op             Op
	typ            string
	id             *string
	agent_id       *string
	payload        *map[string]interface{}
	last_error     *string
	attempts       *int
	addattempts    *int
	priority       *string
	status         *deadletter.Status
	abandon_reason *string
	first_seen_at  *time.Time
	last_retry_at  *time.Time
	clearedFields  map[string]struct{}
	task           *string
	clearedtask    bool
	done           bool
	oldValue       func(context.Context) (*DeadLetter, error)
	predicates     []predicate.DeadLetter
}

var _ ent.Mutation = (*DeadLetterMutation)(nil)

// deadletterOption allows management of the mutation configuration using functional options.
type deadletterOption func(*DeadLetterMutation)

// newDeadLetterMutation creates new mutation for the DeadLetter entity.
func newDeadLetterMutation(c config, op Op, opts ...deadletterOption) *DeadLetterMutation {
	m := &DeadLetterMutation{
		config:        c,
		op:            op,
		typ:           TypeDeadLetter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeadLetterID sets the ID field of the mutation.
func withDeadLetterID(id string) deadletterOption {
	return func(m *DeadLetterMutation) {
		var (
			err   error
			once  sync.Once
			value *DeadLetter
		)
		m.oldValue = func(ctx context.Context) (*DeadLetter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DeadLetter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeadLetter sets the old DeadLetter of the mutation.
func withDeadLetter(node *DeadLetter) deadletterOption {
	return func(m *DeadLetterMutation) {
		m.oldValue = func(context.Context) (*DeadLetter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeadLetterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeadLetterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DeadLetter entities.
func (m *DeadLetterMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeadLetterMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeadLetterMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DeadLetter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *DeadLetterMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *DeadLetterMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *DeadLetterMutation) ResetTaskID() {
	m.task = nil
}

// SetAgentID sets the "agent_id" field.
func (m *DeadLetterMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *DeadLetterMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *DeadLetterMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetPayload sets the "payload" field.
func (m *DeadLetterMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *DeadLetterMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *DeadLetterMutation) ResetPayload() {
	m.payload = nil
}

// SetLastError sets the "last_error" field.
func (m *DeadLetterMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *DeadLetterMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldLastError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ResetLastError resets all changes to the "last_error" field.
func (m *DeadLetterMutation) ResetLastError() {
	m.last_error = nil
}

// SetAttempts sets the "attempts" field.
func (m *DeadLetterMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *DeadLetterMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *DeadLetterMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *DeadLetterMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *DeadLetterMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetPriority sets the "priority" field.
func (m *DeadLetterMutation) SetPriority(s string) {
	m.priority = &s
}

// Priority returns the value of the "priority" field in the mutation.
func (m *DeadLetterMutation) Priority() (r string, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldPriority(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *DeadLetterMutation) ResetPriority() {
	m.priority = nil
}

// SetStatus sets the "status" field.
func (m *DeadLetterMutation) SetStatus(d deadletter.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DeadLetterMutation) Status() (r deadletter.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldStatus(ctx context.Context) (v deadletter.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DeadLetterMutation) ResetStatus() {
	m.status = nil
}

// SetAbandonReason sets the "abandon_reason" field.
func (m *DeadLetterMutation) SetAbandonReason(s string) {
	m.abandon_reason = &s
}

// AbandonReason returns the value of the "abandon_reason" field in the mutation.
func (m *DeadLetterMutation) AbandonReason() (r string, exists bool) {
	v := m.abandon_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldAbandonReason returns the old "abandon_reason" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldAbandonReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAbandonReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAbandonReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAbandonReason: %w", err)
	}
	return oldValue.AbandonReason, nil
}

// ClearAbandonReason clears the value of the "abandon_reason" field.
func (m *DeadLetterMutation) ClearAbandonReason() {
	m.abandon_reason = nil
	m.clearedFields[deadletter.FieldAbandonReason] = struct{}{}
}

// AbandonReasonCleared returns if the "abandon_reason" field was cleared in this mutation.
func (m *DeadLetterMutation) AbandonReasonCleared() bool {
	_, ok := m.clearedFields[deadletter.FieldAbandonReason]
	return ok
}

// ResetAbandonReason resets all changes to the "abandon_reason" field.
func (m *DeadLetterMutation) ResetAbandonReason() {
	m.abandon_reason = nil
	delete(m.clearedFields, deadletter.FieldAbandonReason)
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (m *DeadLetterMutation) SetFirstSeenAt(t time.Time) {
	m.first_seen_at = &t
}

// FirstSeenAt returns the value of the "first_seen_at" field in the mutation.
func (m *DeadLetterMutation) FirstSeenAt() (r time.Time, exists bool) {
	v := m.first_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenAt returns the old "first_seen_at" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldFirstSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenAt: %w", err)
	}
	return oldValue.FirstSeenAt, nil
}

// ResetFirstSeenAt resets all changes to the "first_seen_at" field.
func (m *DeadLetterMutation) ResetFirstSeenAt() {
	m.first_seen_at = nil
}

// SetLastRetryAt sets the "last_retry_at" field.
func (m *DeadLetterMutation) SetLastRetryAt(t time.Time) {
	m.last_retry_at = &t
}

// LastRetryAt returns the value of the "last_retry_at" field in the mutation.
func (m *DeadLetterMutation) LastRetryAt() (r time.Time, exists bool) {
	v := m.last_retry_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRetryAt returns the old "last_retry_at" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldLastRetryAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRetryAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRetryAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRetryAt: %w", err)
	}
	return oldValue.LastRetryAt, nil
}

// ClearLastRetryAt clears the value of the "last_retry_at" field.
func (m *DeadLetterMutation) ClearLastRetryAt() {
	m.last_retry_at = nil
	m.clearedFields[deadletter.FieldLastRetryAt] = struct{}{}
}

// LastRetryAtCleared returns if the "last_retry_at" field was cleared in this mutation.
func (m *DeadLetterMutation) LastRetryAtCleared() bool {
	_, ok := m.clearedFields[deadletter.FieldLastRetryAt]
	return ok
}

// ResetLastRetryAt resets all changes to the "last_retry_at" field.
func (m *DeadLetterMutation) ResetLastRetryAt() {
	m.last_retry_at = nil
	delete(m.clearedFields, deadletter.FieldLastRetryAt)
}

// ClearTask clears the "task" edge to the Task entity.
func (m *DeadLetterMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[deadletter.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *DeadLetterMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *DeadLetterMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *DeadLetterMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the DeadLetterMutation builder.
func (m *DeadLetterMutation) Where(ps ...predicate.DeadLetter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeadLetterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeadLetterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DeadLetter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeadLetterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeadLetterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DeadLetter).
func (m *DeadLetterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeadLetterMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.task != nil {
		fields = append(fields, deadletter.FieldTaskID)
	}
	if m.agent_id != nil {
		fields = append(fields, deadletter.FieldAgentID)
	}
	if m.payload != nil {
		fields = append(fields, deadletter.FieldPayload)
	}
	if m.last_error != nil {
		fields = append(fields, deadletter.FieldLastError)
	}
	if m.attempts != nil {
		fields = append(fields, deadletter.FieldAttempts)
	}
	if m.priority != nil {
		fields = append(fields, deadletter.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, deadletter.FieldStatus)
	}
	if m.abandon_reason != nil {
		fields = append(fields, deadletter.FieldAbandonReason)
	}
	if m.first_seen_at != nil {
		fields = append(fields, deadletter.FieldFirstSeenAt)
	}
	if m.last_retry_at != nil {
		fields = append(fields, deadletter.FieldLastRetryAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeadLetterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deadletter.FieldTaskID:
		return m.TaskID()
	case deadletter.FieldAgentID:
		return m.AgentID()
	case deadletter.FieldPayload:
		return m.Payload()
	case deadletter.FieldLastError:
		return m.LastError()
	case deadletter.FieldAttempts:
		return m.Attempts()
	case deadletter.FieldPriority:
		return m.Priority()
	case deadletter.FieldStatus:
		return m.Status()
	case deadletter.FieldAbandonReason:
		return m.AbandonReason()
	case deadletter.FieldFirstSeenAt:
		return m.FirstSeenAt()
	case deadletter.FieldLastRetryAt:
		return m.LastRetryAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeadLetterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deadletter.FieldTaskID:
		return m.OldTaskID(ctx)
	case deadletter.FieldAgentID:
		return m.OldAgentID(ctx)
	case deadletter.FieldPayload:
		return m.OldPayload(ctx)
	case deadletter.FieldLastError:
		return m.OldLastError(ctx)
	case deadletter.FieldAttempts:
		return m.OldAttempts(ctx)
	case deadletter.FieldPriority:
		return m.OldPriority(ctx)
	case deadletter.FieldStatus:
		return m.OldStatus(ctx)
	case deadletter.FieldAbandonReason:
		return m.OldAbandonReason(ctx)
	case deadletter.FieldFirstSeenAt:
		return m.OldFirstSeenAt(ctx)
	case deadletter.FieldLastRetryAt:
		return m.OldLastRetryAt(ctx)
	}
	return nil, fmt.Errorf("unknown DeadLetter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeadLetterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deadletter.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case deadletter.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case deadletter.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case deadletter.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case deadletter.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case deadletter.FieldPriority:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case deadletter.FieldStatus:
		v, ok := value.(deadletter.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case deadletter.FieldAbandonReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAbandonReason(v)
		return nil
	case deadletter.FieldFirstSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenAt(v)
		return nil
	case deadletter.FieldLastRetryAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRetryAt(v)
		return nil
	}
	return fmt.Errorf("unknown DeadLetter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeadLetterMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, deadletter.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeadLetterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case deadletter.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeadLetterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case deadletter.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown DeadLetter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeadLetterMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(deadletter.FieldAbandonReason) {
		fields = append(fields, deadletter.FieldAbandonReason)
	}
	if m.FieldCleared(deadletter.FieldLastRetryAt) {
		fields = append(fields, deadletter.FieldLastRetryAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeadLetterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeadLetterMutation) ClearField(name string) error {
	switch name {
	case deadletter.FieldAbandonReason:
		m.ClearAbandonReason()
		return nil
	case deadletter.FieldLastRetryAt:
		m.ClearLastRetryAt()
		return nil
	}
	return fmt.Errorf("unknown DeadLetter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeadLetterMutation) ResetField(name string) error {
	switch name {
	case deadletter.FieldTaskID:
		m.ResetTaskID()
		return nil
	case deadletter.FieldAgentID:
		m.ResetAgentID()
		return nil
	case deadletter.FieldPayload:
		m.ResetPayload()
		return nil
	case deadletter.FieldLastError:
		m.ResetLastError()
		return nil
	case deadletter.FieldAttempts:
		m.ResetAttempts()
		return nil
	case deadletter.FieldPriority:
		m.ResetPriority()
		return nil
	case deadletter.FieldStatus:
		m.ResetStatus()
		return nil
	case deadletter.FieldAbandonReason:
		m.ResetAbandonReason()
		return nil
	case deadletter.FieldFirstSeenAt:
		m.ResetFirstSeenAt()
		return nil
	case deadletter.FieldLastRetryAt:
		m.ResetLastRetryAt()
		return nil
	}
	return fmt.Errorf("unknown DeadLetter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeadLetterMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, deadletter.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeadLetterMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case deadletter.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeadLetterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeadLetterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeadLetterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, deadletter.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeadLetterMutation) EdgeCleared(name string) bool {
	switch name {
	case deadletter.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeadLetterMutation) ClearEdge(name string) error {
	switch name {
	case deadletter.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown DeadLetter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeadLetterMutation) ResetEdge(name string) error {
	switch name {
	case deadletter.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown DeadLetter edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	title                       *string
	description                 *string
	task_type                   *string
	priority                    *string
	priority_rank               *int
	addpriority_rank            *int
	message_id                  *string
	email_metadata              *map[string]interface{}
	deadline                    *time.Time
	dependencies                *[]string
	appenddependencies          []string
	success_criteria            *[]string
	appendsuccess_criteria      []string
	constraints                 *[]string
	appendconstraints           []string
	deliverables                *[]string
	appenddeliverables          []string
	primary_agent               *string
	supporting_agents           *[]string
	appendsupporting_agents     []string
	assignment_reason           *string
	status                      *task.Status
	processed                   *bool
	progress                    *int
	addprogress                 *int
	error_message               *string
	result_summary              *string
	worker_id                   *string
	last_heartbeat_at           *time.Time
	requeue_count               *int
	addrequeue_count            *int
	tags                        *[]string
	appendtags                  []string
	context                     *map[string]interface{}
	created_at                  *time.Time
	updated_at                  *time.Time
	started_at                  *time.Time
	completed_at                *time.Time
	clearedFields               map[string]struct{}
	notes                       map[string]struct{}
	removednotes                map[string]struct{}
	clearednotes                bool
	conversation_entries        map[string]struct{}
	removedconversation_entries map[string]struct{}
	clearedconversation_entries bool
	dead_letters                map[string]struct{}
	removeddead_letters         map[string]struct{}
	cleareddead_letters         bool
	audit_events                map[int]struct{}
	removedaudit_events         map[int]struct{}
	clearedaudit_events         bool
	done                        bool
	oldValue                    func(context.Context) (*Task, error)
	predicates                  []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
}

// SetTaskType sets the "task_type" field.
func (m *TaskMutation) SetTaskType(s string) {
	m.task_type = &s
}

// TaskType returns the value of the "task_type" field in the mutation.
func (m *TaskMutation) TaskType() (r string, exists bool) {
	v := m.task_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskType returns the old "task_type" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTaskType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskType: %w", err)
	}
	return oldValue.TaskType, nil
}

// ResetTaskType resets all changes to the "task_type" field.
func (m *TaskMutation) ResetTaskType() {
	m.task_type = nil
}

// SetPriority sets the "priority" field.
func (m *TaskMutation) SetPriority(s string) {
	m.priority = &s
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TaskMutation) Priority() (r string, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPriority(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *TaskMutation) ResetPriority() {
	m.priority = nil
}

// SetPriorityRank sets the "priority_rank" field.
func (m *TaskMutation) SetPriorityRank(i int) {
	m.priority_rank = &i
	m.addpriority_rank = nil
}

// PriorityRank returns the value of the "priority_rank" field in the mutation.
func (m *TaskMutation) PriorityRank() (r int, exists bool) {
	v := m.priority_rank
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorityRank returns the old "priority_rank" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPriorityRank(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorityRank is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorityRank requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorityRank: %w", err)
	}
	return oldValue.PriorityRank, nil
}

// AddPriorityRank adds i to the "priority_rank" field.
func (m *TaskMutation) AddPriorityRank(i int) {
	if m.addpriority_rank != nil {
		*m.addpriority_rank += i
	} else {
		m.addpriority_rank = &i
	}
}

// AddedPriorityRank returns the value that was added to the "priority_rank" field in this mutation.
func (m *TaskMutation) AddedPriorityRank() (r int, exists bool) {
	v := m.addpriority_rank
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriorityRank resets all changes to the "priority_rank" field.
func (m *TaskMutation) ResetPriorityRank() {
	m.priority_rank = nil
	m.addpriority_rank = nil
}

// SetMessageID sets the "message_id" field.
func (m *TaskMutation) SetMessageID(s string) {
	m.message_id = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *TaskMutation) MessageID() (r string, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ClearMessageID clears the value of the "message_id" field.
func (m *TaskMutation) ClearMessageID() {
	m.message_id = nil
	m.clearedFields[task.FieldMessageID] = struct{}{}
}

// MessageIDCleared returns if the "message_id" field was cleared in this mutation.
func (m *TaskMutation) MessageIDCleared() bool {
	_, ok := m.clearedFields[task.FieldMessageID]
	return ok
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *TaskMutation) ResetMessageID() {
	m.message_id = nil
	delete(m.clearedFields, task.FieldMessageID)
}

// SetEmailMetadata sets the "email_metadata" field.
func (m *TaskMutation) SetEmailMetadata(value map[string]interface{}) {
	m.email_metadata = &value
}

// EmailMetadata returns the value of the "email_metadata" field in the mutation.
func (m *TaskMutation) EmailMetadata() (r map[string]interface{}, exists bool) {
	v := m.email_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailMetadata returns the old "email_metadata" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldEmailMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailMetadata: %w", err)
	}
	return oldValue.EmailMetadata, nil
}

// ClearEmailMetadata clears the value of the "email_metadata" field.
func (m *TaskMutation) ClearEmailMetadata() {
	m.email_metadata = nil
	m.clearedFields[task.FieldEmailMetadata] = struct{}{}
}

// EmailMetadataCleared returns if the "email_metadata" field was cleared in this mutation.
func (m *TaskMutation) EmailMetadataCleared() bool {
	_, ok := m.clearedFields[task.FieldEmailMetadata]
	return ok
}

// ResetEmailMetadata resets all changes to the "email_metadata" field.
func (m *TaskMutation) ResetEmailMetadata() {
	m.email_metadata = nil
	delete(m.clearedFields, task.FieldEmailMetadata)
}

// SetDeadline sets the "deadline" field.
func (m *TaskMutation) SetDeadline(t time.Time) {
	m.deadline = &t
}

// Deadline returns the value of the "deadline" field in the mutation.
func (m *TaskMutation) Deadline() (r time.Time, exists bool) {
	v := m.deadline
	if v == nil {
		return
	}
	return *v, true
}

// OldDeadline returns the old "deadline" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDeadline(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeadline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeadline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeadline: %w", err)
	}
	return oldValue.Deadline, nil
}

// ClearDeadline clears the value of the "deadline" field.
func (m *TaskMutation) ClearDeadline() {
	m.deadline = nil
	m.clearedFields[task.FieldDeadline] = struct{}{}
}

// DeadlineCleared returns if the "deadline" field was cleared in this mutation.
func (m *TaskMutation) DeadlineCleared() bool {
	_, ok := m.clearedFields[task.FieldDeadline]
	return ok
}

// ResetDeadline resets all changes to the "deadline" field.
func (m *TaskMutation) ResetDeadline() {
	m.deadline = nil
	delete(m.clearedFields, task.FieldDeadline)
}

// SetDependencies sets the "dependencies" field.
func (m *TaskMutation) SetDependencies(s []string) {
	m.dependencies = &s
	m.appenddependencies = nil
}

// Dependencies returns the value of the "dependencies" field in the mutation.
func (m *TaskMutation) Dependencies() (r []string, exists bool) {
	v := m.dependencies
	if v == nil {
		return
	}
	return *v, true
}

// OldDependencies returns the old "dependencies" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDependencies(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependencies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependencies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependencies: %w", err)
	}
	return oldValue.Dependencies, nil
}

// AppendDependencies adds s to the "dependencies" field.
func (m *TaskMutation) AppendDependencies(s []string) {
	m.appenddependencies = append(m.appenddependencies, s...)
}

// AppendedDependencies returns the list of values that were appended to the "dependencies" field in this mutation.
func (m *TaskMutation) AppendedDependencies() ([]string, bool) {
	if len(m.appenddependencies) == 0 {
		return nil, false
	}
	return m.appenddependencies, true
}

// ClearDependencies clears the value of the "dependencies" field.
func (m *TaskMutation) ClearDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	m.clearedFields[task.FieldDependencies] = struct{}{}
}

// DependenciesCleared returns if the "dependencies" field was cleared in this mutation.
func (m *TaskMutation) DependenciesCleared() bool {
	_, ok := m.clearedFields[task.FieldDependencies]
	return ok
}

// ResetDependencies resets all changes to the "dependencies" field.
func (m *TaskMutation) ResetDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	delete(m.clearedFields, task.FieldDependencies)
}

// SetSuccessCriteria sets the "success_criteria" field.
func (m *TaskMutation) SetSuccessCriteria(s []string) {
	m.success_criteria = &s
	m.appendsuccess_criteria = nil
}

// SuccessCriteria returns the value of the "success_criteria" field in the mutation.
func (m *TaskMutation) SuccessCriteria() (r []string, exists bool) {
	v := m.success_criteria
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessCriteria returns the old "success_criteria" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSuccessCriteria(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessCriteria is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessCriteria requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessCriteria: %w", err)
	}
	return oldValue.SuccessCriteria, nil
}

// AppendSuccessCriteria adds s to the "success_criteria" field.
func (m *TaskMutation) AppendSuccessCriteria(s []string) {
	m.appendsuccess_criteria = append(m.appendsuccess_criteria, s...)
}

// AppendedSuccessCriteria returns the list of values that were appended to the "success_criteria" field in this mutation.
func (m *TaskMutation) AppendedSuccessCriteria() ([]string, bool) {
	if len(m.appendsuccess_criteria) == 0 {
		return nil, false
	}
	return m.appendsuccess_criteria, true
}

// ClearSuccessCriteria clears the value of the "success_criteria" field.
func (m *TaskMutation) ClearSuccessCriteria() {
	m.success_criteria = nil
	m.appendsuccess_criteria = nil
	m.clearedFields[task.FieldSuccessCriteria] = struct{}{}
}

// SuccessCriteriaCleared returns if the "success_criteria" field was cleared in this mutation.
func (m *TaskMutation) SuccessCriteriaCleared() bool {
	_, ok := m.clearedFields[task.FieldSuccessCriteria]
	return ok
}

// ResetSuccessCriteria resets all changes to the "success_criteria" field.
func (m *TaskMutation) ResetSuccessCriteria() {
	m.success_criteria = nil
	m.appendsuccess_criteria = nil
	delete(m.clearedFields, task.FieldSuccessCriteria)
}

// SetConstraints sets the "constraints" field.
func (m *TaskMutation) SetConstraints(s []string) {
	m.constraints = &s
	m.appendconstraints = nil
}

// Constraints returns the value of the "constraints" field in the mutation.
func (m *TaskMutation) Constraints() (r []string, exists bool) {
	v := m.constraints
	if v == nil {
		return
	}
	return *v, true
}

// OldConstraints returns the old "constraints" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldConstraints(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConstraints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConstraints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConstraints: %w", err)
	}
	return oldValue.Constraints, nil
}

// AppendConstraints adds s to the "constraints" field.
func (m *TaskMutation) AppendConstraints(s []string) {
	m.appendconstraints = append(m.appendconstraints, s...)
}

// AppendedConstraints returns the list of values that were appended to the "constraints" field in this mutation.
func (m *TaskMutation) AppendedConstraints() ([]string, bool) {
	if len(m.appendconstraints) == 0 {
		return nil, false
	}
	return m.appendconstraints, true
}

// ClearConstraints clears the value of the "constraints" field.
func (m *TaskMutation) ClearConstraints() {
	m.constraints = nil
	m.appendconstraints = nil
	m.clearedFields[task.FieldConstraints] = struct{}{}
}

// ConstraintsCleared returns if the "constraints" field was cleared in this mutation.
func (m *TaskMutation) ConstraintsCleared() bool {
	_, ok := m.clearedFields[task.FieldConstraints]
	return ok
}

// ResetConstraints resets all changes to the "constraints" field.
func (m *TaskMutation) ResetConstraints() {
	m.constraints = nil
	m.appendconstraints = nil
	delete(m.clearedFields, task.FieldConstraints)
}

// SetDeliverables sets the "deliverables" field.
func (m *TaskMutation) SetDeliverables(s []string) {
	m.deliverables = &s
	m.appenddeliverables = nil
}

// Deliverables returns the value of the "deliverables" field in the mutation.
func (m *TaskMutation) Deliverables() (r []string, exists bool) {
	v := m.deliverables
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliverables returns the old "deliverables" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDeliverables(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliverables is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliverables requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliverables: %w", err)
	}
	return oldValue.Deliverables, nil
}

// AppendDeliverables adds s to the "deliverables" field.
func (m *TaskMutation) AppendDeliverables(s []string) {
	m.appenddeliverables = append(m.appenddeliverables, s...)
}

// AppendedDeliverables returns the list of values that were appended to the "deliverables" field in this mutation.
func (m *TaskMutation) AppendedDeliverables() ([]string, bool) {
	if len(m.appenddeliverables) == 0 {
		return nil, false
	}
	return m.appenddeliverables, true
}

// ClearDeliverables clears the value of the "deliverables" field.
func (m *TaskMutation) ClearDeliverables() {
	m.deliverables = nil
	m.appenddeliverables = nil
	m.clearedFields[task.FieldDeliverables] = struct{}{}
}

// DeliverablesCleared returns if the "deliverables" field was cleared in this mutation.
func (m *TaskMutation) DeliverablesCleared() bool {
	_, ok := m.clearedFields[task.FieldDeliverables]
	return ok
}

// ResetDeliverables resets all changes to the "deliverables" field.
func (m *TaskMutation) ResetDeliverables() {
	m.deliverables = nil
	m.appenddeliverables = nil
	delete(m.clearedFields, task.FieldDeliverables)
}

// SetPrimaryAgent sets the "primary_agent" field.
func (m *TaskMutation) SetPrimaryAgent(s string) {
	m.primary_agent = &s
}

// PrimaryAgent returns the value of the "primary_agent" field in the mutation.
func (m *TaskMutation) PrimaryAgent() (r string, exists bool) {
	v := m.primary_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldPrimaryAgent returns the old "primary_agent" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPrimaryAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrimaryAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrimaryAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrimaryAgent: %w", err)
	}
	return oldValue.PrimaryAgent, nil
}

// ClearPrimaryAgent clears the value of the "primary_agent" field.
func (m *TaskMutation) ClearPrimaryAgent() {
	m.primary_agent = nil
	m.clearedFields[task.FieldPrimaryAgent] = struct{}{}
}

// PrimaryAgentCleared returns if the "primary_agent" field was cleared in this mutation.
func (m *TaskMutation) PrimaryAgentCleared() bool {
	_, ok := m.clearedFields[task.FieldPrimaryAgent]
	return ok
}

// ResetPrimaryAgent resets all changes to the "primary_agent" field.
func (m *TaskMutation) ResetPrimaryAgent() {
	m.primary_agent = nil
	delete(m.clearedFields, task.FieldPrimaryAgent)
}

// SetSupportingAgents sets the "supporting_agents" field.
func (m *TaskMutation) SetSupportingAgents(s []string) {
	m.supporting_agents = &s
	m.appendsupporting_agents = nil
}

// SupportingAgents returns the value of the "supporting_agents" field in the mutation.
func (m *TaskMutation) SupportingAgents() (r []string, exists bool) {
	v := m.supporting_agents
	if v == nil {
		return
	}
	return *v, true
}

// OldSupportingAgents returns the old "supporting_agents" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSupportingAgents(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupportingAgents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupportingAgents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupportingAgents: %w", err)
	}
	return oldValue.SupportingAgents, nil
}

// AppendSupportingAgents adds s to the "supporting_agents" field.
func (m *TaskMutation) AppendSupportingAgents(s []string) {
	m.appendsupporting_agents = append(m.appendsupporting_agents, s...)
}

// AppendedSupportingAgents returns the list of values that were appended to the "supporting_agents" field in this mutation.
func (m *TaskMutation) AppendedSupportingAgents() ([]string, bool) {
	if len(m.appendsupporting_agents) == 0 {
		return nil, false
	}
	return m.appendsupporting_agents, true
}

// ClearSupportingAgents clears the value of the "supporting_agents" field.
func (m *TaskMutation) ClearSupportingAgents() {
	m.supporting_agents = nil
	m.appendsupporting_agents = nil
	m.clearedFields[task.FieldSupportingAgents] = struct{}{}
}

// SupportingAgentsCleared returns if the "supporting_agents" field was cleared in this mutation.
func (m *TaskMutation) SupportingAgentsCleared() bool {
	_, ok := m.clearedFields[task.FieldSupportingAgents]
	return ok
}

// ResetSupportingAgents resets all changes to the "supporting_agents" field.
func (m *TaskMutation) ResetSupportingAgents() {
	m.supporting_agents = nil
	m.appendsupporting_agents = nil
	delete(m.clearedFields, task.FieldSupportingAgents)
}

// SetAssignmentReason sets the "assignment_reason" field.
func (m *TaskMutation) SetAssignmentReason(s string) {
	m.assignment_reason = &s
}

// AssignmentReason returns the value of the "assignment_reason" field in the mutation.
func (m *TaskMutation) AssignmentReason() (r string, exists bool) {
	v := m.assignment_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignmentReason returns the old "assignment_reason" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAssignmentReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignmentReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignmentReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignmentReason: %w", err)
	}
	return oldValue.AssignmentReason, nil
}

// ClearAssignmentReason clears the value of the "assignment_reason" field.
func (m *TaskMutation) ClearAssignmentReason() {
	m.assignment_reason = nil
	m.clearedFields[task.FieldAssignmentReason] = struct{}{}
}

// AssignmentReasonCleared returns if the "assignment_reason" field was cleared in this mutation.
func (m *TaskMutation) AssignmentReasonCleared() bool {
	_, ok := m.clearedFields[task.FieldAssignmentReason]
	return ok
}

// ResetAssignmentReason resets all changes to the "assignment_reason" field.
func (m *TaskMutation) ResetAssignmentReason() {
	m.assignment_reason = nil
	delete(m.clearedFields, task.FieldAssignmentReason)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetProcessed sets the "processed" field.
func (m *TaskMutation) SetProcessed(b bool) {
	m.processed = &b
}

// Processed returns the value of the "processed" field in the mutation.
func (m *TaskMutation) Processed() (r bool, exists bool) {
	v := m.processed
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessed returns the old "processed" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldProcessed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessed: %w", err)
	}
	return oldValue.Processed, nil
}

// ResetProcessed resets all changes to the "processed" field.
func (m *TaskMutation) ResetProcessed() {
	m.processed = nil
}

// SetProgress sets the "progress" field.
func (m *TaskMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *TaskMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *TaskMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *TaskMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *TaskMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *TaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[task.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[task.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, task.FieldErrorMessage)
}

// SetResultSummary sets the "result_summary" field.
func (m *TaskMutation) SetResultSummary(s string) {
	m.result_summary = &s
}

// ResultSummary returns the value of the "result_summary" field in the mutation.
func (m *TaskMutation) ResultSummary() (r string, exists bool) {
	v := m.result_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldResultSummary returns the old "result_summary" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldResultSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultSummary: %w", err)
	}
	return oldValue.ResultSummary, nil
}

// ClearResultSummary clears the value of the "result_summary" field.
func (m *TaskMutation) ClearResultSummary() {
	m.result_summary = nil
	m.clearedFields[task.FieldResultSummary] = struct{}{}
}

// ResultSummaryCleared returns if the "result_summary" field was cleared in this mutation.
func (m *TaskMutation) ResultSummaryCleared() bool {
	_, ok := m.clearedFields[task.FieldResultSummary]
	return ok
}

// ResetResultSummary resets all changes to the "result_summary" field.
func (m *TaskMutation) ResetResultSummary() {
	m.result_summary = nil
	delete(m.clearedFields, task.FieldResultSummary)
}

// SetWorkerID sets the "worker_id" field.
func (m *TaskMutation) SetWorkerID(s string) {
	m.worker_id = &s
}

// WorkerID returns the value of the "worker_id" field in the mutation.
func (m *TaskMutation) WorkerID() (r string, exists bool) {
	v := m.worker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerID returns the old "worker_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldWorkerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerID: %w", err)
	}
	return oldValue.WorkerID, nil
}

// ClearWorkerID clears the value of the "worker_id" field.
func (m *TaskMutation) ClearWorkerID() {
	m.worker_id = nil
	m.clearedFields[task.FieldWorkerID] = struct{}{}
}

// WorkerIDCleared returns if the "worker_id" field was cleared in this mutation.
func (m *TaskMutation) WorkerIDCleared() bool {
	_, ok := m.clearedFields[task.FieldWorkerID]
	return ok
}

// ResetWorkerID resets all changes to the "worker_id" field.
func (m *TaskMutation) ResetWorkerID() {
	m.worker_id = nil
	delete(m.clearedFields, task.FieldWorkerID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *TaskMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *TaskMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *TaskMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[task.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *TaskMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[task.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *TaskMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, task.FieldLastHeartbeatAt)
}

// SetRequeueCount sets the "requeue_count" field.
func (m *TaskMutation) SetRequeueCount(i int) {
	m.requeue_count = &i
	m.addrequeue_count = nil
}

// RequeueCount returns the value of the "requeue_count" field in the mutation.
func (m *TaskMutation) RequeueCount() (r int, exists bool) {
	v := m.requeue_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRequeueCount returns the old "requeue_count" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRequeueCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequeueCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequeueCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequeueCount: %w", err)
	}
	return oldValue.RequeueCount, nil
}

// AddRequeueCount adds i to the "requeue_count" field.
func (m *TaskMutation) AddRequeueCount(i int) {
	if m.addrequeue_count != nil {
		*m.addrequeue_count += i
	} else {
		m.addrequeue_count = &i
	}
}

// AddedRequeueCount returns the value that was added to the "requeue_count" field in this mutation.
func (m *TaskMutation) AddedRequeueCount() (r int, exists bool) {
	v := m.addrequeue_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequeueCount resets all changes to the "requeue_count" field.
func (m *TaskMutation) ResetRequeueCount() {
	m.requeue_count = nil
	m.addrequeue_count = nil
}

// SetTags sets the "tags" field.
func (m *TaskMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *TaskMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *TaskMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *TaskMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *TaskMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[task.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *TaskMutation) TagsCleared() bool {
	_, ok := m.clearedFields[task.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *TaskMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, task.FieldTags)
}

// SetContext sets the "context" field.
func (m *TaskMutation) SetContext(value map[string]interface{}) {
	m.context = &value
}

// Context returns the value of the "context" field in the mutation.
func (m *TaskMutation) Context() (r map[string]interface{}, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *TaskMutation) ClearContext() {
	m.context = nil
	m.clearedFields[task.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *TaskMutation) ContextCleared() bool {
	_, ok := m.clearedFields[task.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *TaskMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, task.FieldContext)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[task.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, task.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// AddNoteIDs adds the "notes" edge to the TaskNote entity by ids.
func (m *TaskMutation) AddNoteIDs(ids ...string) {
	if m.notes == nil {
		m.notes = make(map[string]struct{})
	}
	for i := range ids {
		m.notes[ids[i]] = struct{}{}
	}
}

// ClearNotes clears the "notes" edge to the TaskNote entity.
func (m *TaskMutation) ClearNotes() {
	m.clearednotes = true
}

// NotesCleared reports if the "notes" edge to the TaskNote entity was cleared.
func (m *TaskMutation) NotesCleared() bool {
	return m.clearednotes
}

// RemoveNoteIDs removes the "notes" edge to the TaskNote entity by IDs.
func (m *TaskMutation) RemoveNoteIDs(ids ...string) {
	if m.removednotes == nil {
		m.removednotes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.notes, ids[i])
		m.removednotes[ids[i]] = struct{}{}
	}
}

// RemovedNotes returns the removed IDs of the "notes" edge to the TaskNote entity.
func (m *TaskMutation) RemovedNotesIDs() (ids []string) {
	for id := range m.removednotes {
		ids = append(ids, id)
	}
	return
}

// NotesIDs returns the "notes" edge IDs in the mutation.
func (m *TaskMutation) NotesIDs() (ids []string) {
	for id := range m.notes {
		ids = append(ids, id)
	}
	return
}

// ResetNotes resets all changes to the "notes" edge.
func (m *TaskMutation) ResetNotes() {
	m.notes = nil
	m.clearednotes = false
	m.removednotes = nil
}

// AddConversationEntryIDs adds the "conversation_entries" edge to the ConversationEntry entity by ids.
func (m *TaskMutation) AddConversationEntryIDs(ids ...string) {
	if m.conversation_entries == nil {
		m.conversation_entries = make(map[string]struct{})
	}
	for i := range ids {
		m.conversation_entries[ids[i]] = struct{}{}
	}
}

// ClearConversationEntries clears the "conversation_entries" edge to the ConversationEntry entity.
func (m *TaskMutation) ClearConversationEntries() {
	m.clearedconversation_entries = true
}

// ConversationEntriesCleared reports if the "conversation_entries" edge to the ConversationEntry entity was cleared.
func (m *TaskMutation) ConversationEntriesCleared() bool {
	return m.clearedconversation_entries
}

// RemoveConversationEntryIDs removes the "conversation_entries" edge to the ConversationEntry entity by IDs.
func (m *TaskMutation) RemoveConversationEntryIDs(ids ...string) {
	if m.removedconversation_entries == nil {
		m.removedconversation_entries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.conversation_entries, ids[i])
		m.removedconversation_entries[ids[i]] = struct{}{}
	}
}

// RemovedConversationEntries returns the removed IDs of the "conversation_entries" edge to the ConversationEntry entity.
func (m *TaskMutation) RemovedConversationEntriesIDs() (ids []string) {
	for id := range m.removedconversation_entries {
		ids = append(ids, id)
	}
	return
}

// ConversationEntriesIDs returns the "conversation_entries" edge IDs in the mutation.
func (m *TaskMutation) ConversationEntriesIDs() (ids []string) {
	for id := range m.conversation_entries {
		ids = append(ids, id)
	}
	return
}

// ResetConversationEntries resets all changes to the "conversation_entries" edge.
func (m *TaskMutation) ResetConversationEntries() {
	m.conversation_entries = nil
	m.clearedconversation_entries = false
	m.removedconversation_entries = nil
}

// AddDeadLetterIDs adds the "dead_letters" edge to the DeadLetter entity by ids.
func (m *TaskMutation) AddDeadLetterIDs(ids ...string) {
	if m.dead_letters == nil {
		m.dead_letters = make(map[string]struct{})
	}
	for i := range ids {
		m.dead_letters[ids[i]] = struct{}{}
	}
}

// ClearDeadLetters clears the "dead_letters" edge to the DeadLetter entity.
func (m *TaskMutation) ClearDeadLetters() {
	m.cleareddead_letters = true
}

// DeadLettersCleared reports if the "dead_letters" edge to the DeadLetter entity was cleared.
func (m *TaskMutation) DeadLettersCleared() bool {
	return m.cleareddead_letters
}

// RemoveDeadLetterIDs removes the "dead_letters" edge to the DeadLetter entity by IDs.
func (m *TaskMutation) RemoveDeadLetterIDs(ids ...string) {
	if m.removeddead_letters == nil {
		m.removeddead_letters = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.dead_letters, ids[i])
		m.removeddead_letters[ids[i]] = struct{}{}
	}
}

// RemovedDeadLetters returns the removed IDs of the "dead_letters" edge to the DeadLetter entity.
func (m *TaskMutation) RemovedDeadLettersIDs() (ids []string) {
	for id := range m.removeddead_letters {
		ids = append(ids, id)
	}
	return
}

// DeadLettersIDs returns the "dead_letters" edge IDs in the mutation.
func (m *TaskMutation) DeadLettersIDs() (ids []string) {
	for id := range m.dead_letters {
		ids = append(ids, id)
	}
	return
}

// ResetDeadLetters resets all changes to the "dead_letters" edge.
func (m *TaskMutation) ResetDeadLetters() {
	m.dead_letters = nil
	m.cleareddead_letters = false
	m.removeddead_letters = nil
}

// AddAuditEventIDs adds the "audit_events" edge to the AuditEvent entity by ids.
func (m *TaskMutation) AddAuditEventIDs(ids ...int) {
	if m.audit_events == nil {
		m.audit_events = make(map[int]struct{})
	}
	for i := range ids {
		m.audit_events[ids[i]] = struct{}{}
	}
}

// ClearAuditEvents clears the "audit_events" edge to the AuditEvent entity.
func (m *TaskMutation) ClearAuditEvents() {
	m.clearedaudit_events = true
}

// AuditEventsCleared reports if the "audit_events" edge to the AuditEvent entity was cleared.
func (m *TaskMutation) AuditEventsCleared() bool {
	return m.clearedaudit_events
}

// RemoveAuditEventIDs removes the "audit_events" edge to the AuditEvent entity by IDs.
func (m *TaskMutation) RemoveAuditEventIDs(ids ...int) {
	if m.removedaudit_events == nil {
		m.removedaudit_events = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.audit_events, ids[i])
		m.removedaudit_events[ids[i]] = struct{}{}
	}
}

// RemovedAuditEvents returns the removed IDs of the "audit_events" edge to the AuditEvent entity.
func (m *TaskMutation) RemovedAuditEventsIDs() (ids []int) {
	for id := range m.removedaudit_events {
		ids = append(ids, id)
	}
	return
}

// AuditEventsIDs returns the "audit_events" edge IDs in the mutation.
func (m *TaskMutation) AuditEventsIDs() (ids []int) {
	for id := range m.audit_events {
		ids = append(ids, id)
	}
	return
}

// ResetAuditEvents resets all changes to the "audit_events" edge.
func (m *TaskMutation) ResetAuditEvents() {
	m.audit_events = nil
	m.clearedaudit_events = false
	m.removedaudit_events = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 29)
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.task_type != nil {
		fields = append(fields, task.FieldTaskType)
	}
	if m.priority != nil {
		fields = append(fields, task.FieldPriority)
	}
	if m.priority_rank != nil {
		fields = append(fields, task.FieldPriorityRank)
	}
	if m.message_id != nil {
		fields = append(fields, task.FieldMessageID)
	}
	if m.email_metadata != nil {
		fields = append(fields, task.FieldEmailMetadata)
	}
	if m.deadline != nil {
		fields = append(fields, task.FieldDeadline)
	}
	if m.dependencies != nil {
		fields = append(fields, task.FieldDependencies)
	}
	if m.success_criteria != nil {
		fields = append(fields, task.FieldSuccessCriteria)
	}
	if m.constraints != nil {
		fields = append(fields, task.FieldConstraints)
	}
	if m.deliverables != nil {
		fields = append(fields, task.FieldDeliverables)
	}
	if m.primary_agent != nil {
		fields = append(fields, task.FieldPrimaryAgent)
	}
	if m.supporting_agents != nil {
		fields = append(fields, task.FieldSupportingAgents)
	}
	if m.assignment_reason != nil {
		fields = append(fields, task.FieldAssignmentReason)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.processed != nil {
		fields = append(fields, task.FieldProcessed)
	}
	if m.progress != nil {
		fields = append(fields, task.FieldProgress)
	}
	if m.error_message != nil {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.result_summary != nil {
		fields = append(fields, task.FieldResultSummary)
	}
	if m.worker_id != nil {
		fields = append(fields, task.FieldWorkerID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, task.FieldLastHeartbeatAt)
	}
	if m.requeue_count != nil {
		fields = append(fields, task.FieldRequeueCount)
	}
	if m.tags != nil {
		fields = append(fields, task.FieldTags)
	}
	if m.context != nil {
		fields = append(fields, task.FieldContext)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldTitle:
		return m.Title()
	case task.FieldDescription:
		return m.Description()
	case task.FieldTaskType:
		return m.TaskType()
	case task.FieldPriority:
		return m.Priority()
	case task.FieldPriorityRank:
		return m.PriorityRank()
	case task.FieldMessageID:
		return m.MessageID()
	case task.FieldEmailMetadata:
		return m.EmailMetadata()
	case task.FieldDeadline:
		return m.Deadline()
	case task.FieldDependencies:
		return m.Dependencies()
	case task.FieldSuccessCriteria:
		return m.SuccessCriteria()
	case task.FieldConstraints:
		return m.Constraints()
	case task.FieldDeliverables:
		return m.Deliverables()
	case task.FieldPrimaryAgent:
		return m.PrimaryAgent()
	case task.FieldSupportingAgents:
		return m.SupportingAgents()
	case task.FieldAssignmentReason:
		return m.AssignmentReason()
	case task.FieldStatus:
		return m.Status()
	case task.FieldProcessed:
		return m.Processed()
	case task.FieldProgress:
		return m.Progress()
	case task.FieldErrorMessage:
		return m.ErrorMessage()
	case task.FieldResultSummary:
		return m.ResultSummary()
	case task.FieldWorkerID:
		return m.WorkerID()
	case task.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case task.FieldRequeueCount:
		return m.RequeueCount()
	case task.FieldTags:
		return m.Tags()
	case task.FieldContext:
		return m.Context()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	case task.FieldStartedAt:
		return m.StartedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldTaskType:
		return m.OldTaskType(ctx)
	case task.FieldPriority:
		return m.OldPriority(ctx)
	case task.FieldPriorityRank:
		return m.OldPriorityRank(ctx)
	case task.FieldMessageID:
		return m.OldMessageID(ctx)
	case task.FieldEmailMetadata:
		return m.OldEmailMetadata(ctx)
	case task.FieldDeadline:
		return m.OldDeadline(ctx)
	case task.FieldDependencies:
		return m.OldDependencies(ctx)
	case task.FieldSuccessCriteria:
		return m.OldSuccessCriteria(ctx)
	case task.FieldConstraints:
		return m.OldConstraints(ctx)
	case task.FieldDeliverables:
		return m.OldDeliverables(ctx)
	case task.FieldPrimaryAgent:
		return m.OldPrimaryAgent(ctx)
	case task.FieldSupportingAgents:
		return m.OldSupportingAgents(ctx)
	case task.FieldAssignmentReason:
		return m.OldAssignmentReason(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldProcessed:
		return m.OldProcessed(ctx)
	case task.FieldProgress:
		return m.OldProgress(ctx)
	case task.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case task.FieldResultSummary:
		return m.OldResultSummary(ctx)
	case task.FieldWorkerID:
		return m.OldWorkerID(ctx)
	case task.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case task.FieldRequeueCount:
		return m.OldRequeueCount(ctx)
	case task.FieldTags:
		return m.OldTags(ctx)
	case task.FieldContext:
		return m.OldContext(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case task.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldTaskType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskType(v)
		return nil
	case task.FieldPriority:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case task.FieldPriorityRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorityRank(v)
		return nil
	case task.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case task.FieldEmailMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailMetadata(v)
		return nil
	case task.FieldDeadline:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeadline(v)
		return nil
	case task.FieldDependencies:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependencies(v)
		return nil
	case task.FieldSuccessCriteria:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessCriteria(v)
		return nil
	case task.FieldConstraints:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConstraints(v)
		return nil
	case task.FieldDeliverables:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliverables(v)
		return nil
	case task.FieldPrimaryAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrimaryAgent(v)
		return nil
	case task.FieldSupportingAgents:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupportingAgents(v)
		return nil
	case task.FieldAssignmentReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignmentReason(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldProcessed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessed(v)
		return nil
	case task.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case task.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case task.FieldResultSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultSummary(v)
		return nil
	case task.FieldWorkerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerID(v)
		return nil
	case task.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case task.FieldRequeueCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequeueCount(v)
		return nil
	case task.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case task.FieldContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case task.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addpriority_rank != nil {
		fields = append(fields, task.FieldPriorityRank)
	}
	if m.addprogress != nil {
		fields = append(fields, task.FieldProgress)
	}
	if m.addrequeue_count != nil {
		fields = append(fields, task.FieldRequeueCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldPriorityRank:
		return m.AddedPriorityRank()
	case task.FieldProgress:
		return m.AddedProgress()
	case task.FieldRequeueCount:
		return m.AddedRequeueCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldPriorityRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriorityRank(v)
		return nil
	case task.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	case task.FieldRequeueCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequeueCount(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldMessageID) {
		fields = append(fields, task.FieldMessageID)
	}
	if m.FieldCleared(task.FieldEmailMetadata) {
		fields = append(fields, task.FieldEmailMetadata)
	}
	if m.FieldCleared(task.FieldDeadline) {
		fields = append(fields, task.FieldDeadline)
	}
	if m.FieldCleared(task.FieldDependencies) {
		fields = append(fields, task.FieldDependencies)
	}
	if m.FieldCleared(task.FieldSuccessCriteria) {
		fields = append(fields, task.FieldSuccessCriteria)
	}
	if m.FieldCleared(task.FieldConstraints) {
		fields = append(fields, task.FieldConstraints)
	}
	if m.FieldCleared(task.FieldDeliverables) {
		fields = append(fields, task.FieldDeliverables)
	}
	if m.FieldCleared(task.FieldPrimaryAgent) {
		fields = append(fields, task.FieldPrimaryAgent)
	}
	if m.FieldCleared(task.FieldSupportingAgents) {
		fields = append(fields, task.FieldSupportingAgents)
	}
	if m.FieldCleared(task.FieldAssignmentReason) {
		fields = append(fields, task.FieldAssignmentReason)
	}
	if m.FieldCleared(task.FieldErrorMessage) {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.FieldCleared(task.FieldResultSummary) {
		fields = append(fields, task.FieldResultSummary)
	}
	if m.FieldCleared(task.FieldWorkerID) {
		fields = append(fields, task.FieldWorkerID)
	}
	if m.FieldCleared(task.FieldLastHeartbeatAt) {
		fields = append(fields, task.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(task.FieldTags) {
		fields = append(fields, task.FieldTags)
	}
	if m.FieldCleared(task.FieldContext) {
		fields = append(fields, task.FieldContext)
	}
	if m.FieldCleared(task.FieldStartedAt) {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldMessageID:
		m.ClearMessageID()
		return nil
	case task.FieldEmailMetadata:
		m.ClearEmailMetadata()
		return nil
	case task.FieldDeadline:
		m.ClearDeadline()
		return nil
	case task.FieldDependencies:
		m.ClearDependencies()
		return nil
	case task.FieldSuccessCriteria:
		m.ClearSuccessCriteria()
		return nil
	case task.FieldConstraints:
		m.ClearConstraints()
		return nil
	case task.FieldDeliverables:
		m.ClearDeliverables()
		return nil
	case task.FieldPrimaryAgent:
		m.ClearPrimaryAgent()
		return nil
	case task.FieldSupportingAgents:
		m.ClearSupportingAgents()
		return nil
	case task.FieldAssignmentReason:
		m.ClearAssignmentReason()
		return nil
	case task.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case task.FieldResultSummary:
		m.ClearResultSummary()
		return nil
	case task.FieldWorkerID:
		m.ClearWorkerID()
		return nil
	case task.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case task.FieldTags:
		m.ClearTags()
		return nil
	case task.FieldContext:
		m.ClearContext()
		return nil
	case task.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldTaskType:
		m.ResetTaskType()
		return nil
	case task.FieldPriority:
		m.ResetPriority()
		return nil
	case task.FieldPriorityRank:
		m.ResetPriorityRank()
		return nil
	case task.FieldMessageID:
		m.ResetMessageID()
		return nil
	case task.FieldEmailMetadata:
		m.ResetEmailMetadata()
		return nil
	case task.FieldDeadline:
		m.ResetDeadline()
		return nil
	case task.FieldDependencies:
		m.ResetDependencies()
		return nil
	case task.FieldSuccessCriteria:
		m.ResetSuccessCriteria()
		return nil
	case task.FieldConstraints:
		m.ResetConstraints()
		return nil
	case task.FieldDeliverables:
		m.ResetDeliverables()
		return nil
	case task.FieldPrimaryAgent:
		m.ResetPrimaryAgent()
		return nil
	case task.FieldSupportingAgents:
		m.ResetSupportingAgents()
		return nil
	case task.FieldAssignmentReason:
		m.ResetAssignmentReason()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldProcessed:
		m.ResetProcessed()
		return nil
	case task.FieldProgress:
		m.ResetProgress()
		return nil
	case task.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case task.FieldResultSummary:
		m.ResetResultSummary()
		return nil
	case task.FieldWorkerID:
		m.ResetWorkerID()
		return nil
	case task.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case task.FieldRequeueCount:
		m.ResetRequeueCount()
		return nil
	case task.FieldTags:
		m.ResetTags()
		return nil
	case task.FieldContext:
		m.ResetContext()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case task.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.notes != nil {
		edges = append(edges, task.EdgeNotes)
	}
	if m.conversation_entries != nil {
		edges = append(edges, task.EdgeConversationEntries)
	}
	if m.dead_letters != nil {
		edges = append(edges, task.EdgeDeadLetters)
	}
	if m.audit_events != nil {
		edges = append(edges, task.EdgeAuditEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeNotes:
		ids := make([]ent.Value, 0, len(m.notes))
		for id := range m.notes {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeConversationEntries:
		ids := make([]ent.Value, 0, len(m.conversation_entries))
		for id := range m.conversation_entries {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeDeadLetters:
		ids := make([]ent.Value, 0, len(m.dead_letters))
		for id := range m.dead_letters {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeAuditEvents:
		ids := make([]ent.Value, 0, len(m.audit_events))
		for id := range m.audit_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removednotes != nil {
		edges = append(edges, task.EdgeNotes)
	}
	if m.removedconversation_entries != nil {
		edges = append(edges, task.EdgeConversationEntries)
	}
	if m.removeddead_letters != nil {
		edges = append(edges, task.EdgeDeadLetters)
	}
	if m.removedaudit_events != nil {
		edges = append(edges, task.EdgeAuditEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeNotes:
		ids := make([]ent.Value, 0, len(m.removednotes))
		for id := range m.removednotes {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeConversationEntries:
		ids := make([]ent.Value, 0, len(m.removedconversation_entries))
		for id := range m.removedconversation_entries {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeDeadLetters:
		ids := make([]ent.Value, 0, len(m.removeddead_letters))
		for id := range m.removeddead_letters {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeAuditEvents:
		ids := make([]ent.Value, 0, len(m.removedaudit_events))
		for id := range m.removedaudit_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearednotes {
		edges = append(edges, task.EdgeNotes)
	}
	if m.clearedconversation_entries {
		edges = append(edges, task.EdgeConversationEntries)
	}
	if m.cleareddead_letters {
		edges = append(edges, task.EdgeDeadLetters)
	}
	if m.clearedaudit_events {
		edges = append(edges, task.EdgeAuditEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeNotes:
		return m.clearednotes
	case task.EdgeConversationEntries:
		return m.clearedconversation_entries
	case task.EdgeDeadLetters:
		return m.cleareddead_letters
	case task.EdgeAuditEvents:
		return m.clearedaudit_events
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeNotes:
		m.ResetNotes()
		return nil
	case task.EdgeConversationEntries:
		m.ResetConversationEntries()
		return nil
	case task.EdgeDeadLetters:
		m.ResetDeadLetters()
		return nil
	case task.EdgeAuditEvents:
		m.ResetAuditEvents()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TaskNoteMutation represents an operation that mutates the TaskNote nodes in the graph.
type TaskNoteMutation struct {
	config
	op            Op
	typ           string
	id            *string
	note          *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	task          *string
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*TaskNote, error)
	predicates    []predicate.TaskNote
}

var _ ent.Mutation = (*TaskNoteMutation)(nil)

// tasknoteOption allows management of the mutation configuration using functional options.
type tasknoteOption func(*TaskNoteMutation)

// newTaskNoteMutation creates new mutation for the TaskNote entity.
func newTaskNoteMutation(c config, op Op, opts ...tasknoteOption) *TaskNoteMutation {
	m := &TaskNoteMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskNote,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskNoteID sets the ID field of the mutation.
func withTaskNoteID(id string) tasknoteOption {
	return func(m *TaskNoteMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskNote
		)
		m.oldValue = func(ctx context.Context) (*TaskNote, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskNote.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskNote sets the old TaskNote of the mutation.
func withTaskNote(node *TaskNote) tasknoteOption {
	return func(m *TaskNoteMutation) {
		m.oldValue = func(context.Context) (*TaskNote, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskNoteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskNoteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskNote entities.
func (m *TaskNoteMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskNoteMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskNoteMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskNote.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *TaskNoteMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TaskNoteMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TaskNote entity.
// If the TaskNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskNoteMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TaskNoteMutation) ResetTaskID() {
	m.task = nil
}

// SetNote sets the "note" field.
func (m *TaskNoteMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *TaskNoteMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the TaskNote entity.
// If the TaskNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskNoteMutation) OldNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ResetNote resets all changes to the "note" field.
func (m *TaskNoteMutation) ResetNote() {
	m.note = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskNoteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskNoteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TaskNote entity.
// If the TaskNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskNoteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskNoteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *TaskNoteMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[tasknote.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *TaskNoteMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *TaskNoteMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *TaskNoteMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the TaskNoteMutation builder.
func (m *TaskNoteMutation) Where(ps ...predicate.TaskNote) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskNoteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskNoteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskNote, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskNoteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskNoteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskNote).
func (m *TaskNoteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskNoteMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.task != nil {
		fields = append(fields, tasknote.FieldTaskID)
	}
	if m.note != nil {
		fields = append(fields, tasknote.FieldNote)
	}
	if m.created_at != nil {
		fields = append(fields, tasknote.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskNoteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tasknote.FieldTaskID:
		return m.TaskID()
	case tasknote.FieldNote:
		return m.Note()
	case tasknote.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskNoteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tasknote.FieldTaskID:
		return m.OldTaskID(ctx)
	case tasknote.FieldNote:
		return m.OldNote(ctx)
	case tasknote.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskNote field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskNoteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tasknote.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case tasknote.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	case tasknote.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskNote field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskNoteMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskNoteMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskNoteMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TaskNote numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskNoteMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskNoteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskNoteMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TaskNote nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskNoteMutation) ResetField(name string) error {
	switch name {
	case tasknote.FieldTaskID:
		m.ResetTaskID()
		return nil
	case tasknote.FieldNote:
		m.ResetNote()
		return nil
	case tasknote.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskNote field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskNoteMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, tasknote.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskNoteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tasknote.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskNoteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskNoteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskNoteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, tasknote.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskNoteMutation) EdgeCleared(name string) bool {
	switch name {
	case tasknote.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskNoteMutation) ClearEdge(name string) error {
	switch name {
	case tasknote.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown TaskNote unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskNoteMutation) ResetEdge(name string) error {
	switch name {
	case tasknote.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown TaskNote edge %s", name)
}
