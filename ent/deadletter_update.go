// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/taskwire/taskwire/ent/deadletter"
	"github.com/taskwire/taskwire/ent/predicate"
)

// DeadLetterUpdate is the builder for updating DeadLetter entities.
type DeadLetterUpdate struct {
	config
	hooks    []Hook
	mutation *DeadLetterMutation
}

// Where appends a list predicates to the DeadLetterUpdate builder.
func (_u *DeadLetterUpdate) Where(ps ...predicate.DeadLetter) *DeadLetterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *DeadLetterUpdate) SetAgentID(v string) *DeadLetterUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *DeadLetterUpdate) SetNillableAgentID(v *string) *DeadLetterUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *DeadLetterUpdate) SetPayload(v map[string]interface{}) *DeadLetterUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *DeadLetterUpdate) SetLastError(v string) *DeadLetterUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *DeadLetterUpdate) SetNillableLastError(v *string) *DeadLetterUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *DeadLetterUpdate) SetAttempts(v int) *DeadLetterUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *DeadLetterUpdate) SetNillableAttempts(v *int) *DeadLetterUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *DeadLetterUpdate) AddAttempts(v int) *DeadLetterUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *DeadLetterUpdate) SetPriority(v string) *DeadLetterUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *DeadLetterUpdate) SetNillablePriority(v *string) *DeadLetterUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DeadLetterUpdate) SetStatus(v deadletter.Status) *DeadLetterUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DeadLetterUpdate) SetNillableStatus(v *deadletter.Status) *DeadLetterUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAbandonReason sets the "abandon_reason" field.
func (_u *DeadLetterUpdate) SetAbandonReason(v string) *DeadLetterUpdate {
	_u.mutation.SetAbandonReason(v)
	return _u
}

// SetNillableAbandonReason sets the "abandon_reason" field if the given value is not nil.
func (_u *DeadLetterUpdate) SetNillableAbandonReason(v *string) *DeadLetterUpdate {
	if v != nil {
		_u.SetAbandonReason(*v)
	}
	return _u
}

// ClearAbandonReason clears the value of the "abandon_reason" field.
func (_u *DeadLetterUpdate) ClearAbandonReason() *DeadLetterUpdate {
	_u.mutation.ClearAbandonReason()
	return _u
}

// SetLastRetryAt sets the "last_retry_at" field.
func (_u *DeadLetterUpdate) SetLastRetryAt(v time.Time) *DeadLetterUpdate {
	_u.mutation.SetLastRetryAt(v)
	return _u
}

// SetNillableLastRetryAt sets the "last_retry_at" field if the given value is not nil.
func (_u *DeadLetterUpdate) SetNillableLastRetryAt(v *time.Time) *DeadLetterUpdate {
	if v != nil {
		_u.SetLastRetryAt(*v)
	}
	return _u
}

// ClearLastRetryAt clears the value of the "last_retry_at" field.
func (_u *DeadLetterUpdate) ClearLastRetryAt() *DeadLetterUpdate {
	_u.mutation.ClearLastRetryAt()
	return _u
}

// Mutation returns the DeadLetterMutation object of the builder.
func (_u *DeadLetterUpdate) Mutation() *DeadLetterMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeadLetterUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeadLetterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeadLetterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeadLetterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeadLetterUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := deadletter.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DeadLetter.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DeadLetter.task"`)
	}
	return nil
}

func (_u *DeadLetterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deadletter.Table, deadletter.Columns, sqlgraph.NewFieldSpec(deadletter.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(deadletter.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(deadletter.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(deadletter.FieldLastError, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(deadletter.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(deadletter.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(deadletter.FieldPriority, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(deadletter.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AbandonReason(); ok {
		_spec.SetField(deadletter.FieldAbandonReason, field.TypeString, value)
	}
	if _u.mutation.AbandonReasonCleared() {
		_spec.ClearField(deadletter.FieldAbandonReason, field.TypeString)
	}
	if value, ok := _u.mutation.LastRetryAt(); ok {
		_spec.SetField(deadletter.FieldLastRetryAt, field.TypeTime, value)
	}
	if _u.mutation.LastRetryAtCleared() {
		_spec.ClearField(deadletter.FieldLastRetryAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deadletter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeadLetterUpdateOne is the builder for updating a single DeadLetter entity.
type DeadLetterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeadLetterMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *DeadLetterUpdateOne) SetAgentID(v string) *DeadLetterUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *DeadLetterUpdateOne) SetNillableAgentID(v *string) *DeadLetterUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *DeadLetterUpdateOne) SetPayload(v map[string]interface{}) *DeadLetterUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *DeadLetterUpdateOne) SetLastError(v string) *DeadLetterUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *DeadLetterUpdateOne) SetNillableLastError(v *string) *DeadLetterUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *DeadLetterUpdateOne) SetAttempts(v int) *DeadLetterUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *DeadLetterUpdateOne) SetNillableAttempts(v *int) *DeadLetterUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *DeadLetterUpdateOne) AddAttempts(v int) *DeadLetterUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *DeadLetterUpdateOne) SetPriority(v string) *DeadLetterUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *DeadLetterUpdateOne) SetNillablePriority(v *string) *DeadLetterUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DeadLetterUpdateOne) SetStatus(v deadletter.Status) *DeadLetterUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DeadLetterUpdateOne) SetNillableStatus(v *deadletter.Status) *DeadLetterUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAbandonReason sets the "abandon_reason" field.
func (_u *DeadLetterUpdateOne) SetAbandonReason(v string) *DeadLetterUpdateOne {
	_u.mutation.SetAbandonReason(v)
	return _u
}

// SetNillableAbandonReason sets the "abandon_reason" field if the given value is not nil.
func (_u *DeadLetterUpdateOne) SetNillableAbandonReason(v *string) *DeadLetterUpdateOne {
	if v != nil {
		_u.SetAbandonReason(*v)
	}
	return _u
}

// ClearAbandonReason clears the value of the "abandon_reason" field.
func (_u *DeadLetterUpdateOne) ClearAbandonReason() *DeadLetterUpdateOne {
	_u.mutation.ClearAbandonReason()
	return _u
}

// SetLastRetryAt sets the "last_retry_at" field.
func (_u *DeadLetterUpdateOne) SetLastRetryAt(v time.Time) *DeadLetterUpdateOne {
	_u.mutation.SetLastRetryAt(v)
	return _u
}

// SetNillableLastRetryAt sets the "last_retry_at" field if the given value is not nil.
func (_u *DeadLetterUpdateOne) SetNillableLastRetryAt(v *time.Time) *DeadLetterUpdateOne {
	if v != nil {
		_u.SetLastRetryAt(*v)
	}
	return _u
}

// ClearLastRetryAt clears the value of the "last_retry_at" field.
func (_u *DeadLetterUpdateOne) ClearLastRetryAt() *DeadLetterUpdateOne {
	_u.mutation.ClearLastRetryAt()
	return _u
}

// Mutation returns the DeadLetterMutation object of the builder.
func (_u *DeadLetterUpdateOne) Mutation() *DeadLetterMutation {
	return _u.mutation
}

// Where appends a list predicates to the DeadLetterUpdate builder.
func (_u *DeadLetterUpdateOne) Where(ps ...predicate.DeadLetter) *DeadLetterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeadLetterUpdateOne) Select(field string, fields ...string) *DeadLetterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DeadLetter entity.
func (_u *DeadLetterUpdateOne) Save(ctx context.Context) (*DeadLetter, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeadLetterUpdateOne) SaveX(ctx context.Context) *DeadLetter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeadLetterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeadLetterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeadLetterUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := deadletter.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DeadLetter.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DeadLetter.task"`)
	}
	return nil
}

func (_u *DeadLetterUpdateOne) sqlSave(ctx context.Context) (_node *DeadLetter, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deadletter.Table, deadletter.Columns, sqlgraph.NewFieldSpec(deadletter.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DeadLetter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deadletter.FieldID)
		for _, f := range fields {
			if !deadletter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != deadletter.FieldID {
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
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(deadletter.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(deadletter.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(deadletter.FieldLastError, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(deadletter.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(deadletter.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(deadletter.FieldPriority, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(deadletter.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AbandonReason(); ok {
		_spec.SetField(deadletter.FieldAbandonReason, field.TypeString, value)
	}
	if _u.mutation.AbandonReasonCleared() {
		_spec.ClearField(deadletter.FieldAbandonReason, field.TypeString)
	}
	if value, ok := _u.mutation.LastRetryAt(); ok {
		_spec.SetField(deadletter.FieldLastRetryAt, field.TypeTime, value)
	}
	if _u.mutation.LastRetryAtCleared() {
		_spec.ClearField(deadletter.FieldLastRetryAt, field.TypeTime)
	}
	_node = &DeadLetter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deadletter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
