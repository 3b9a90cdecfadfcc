// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/taskwire/taskwire/ent/deadletter"
	"github.com/taskwire/taskwire/ent/task"
)

// DeadLetterCreate is the builder for creating a DeadLetter entity.
type DeadLetterCreate struct {
	config
	mutation *DeadLetterMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *DeadLetterCreate) SetTaskID(v string) *DeadLetterCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *DeadLetterCreate) SetAgentID(v string) *DeadLetterCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *DeadLetterCreate) SetPayload(v map[string]interface{}) *DeadLetterCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *DeadLetterCreate) SetLastError(v string) *DeadLetterCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *DeadLetterCreate) SetAttempts(v int) *DeadLetterCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *DeadLetterCreate) SetNillableAttempts(v *int) *DeadLetterCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *DeadLetterCreate) SetPriority(v string) *DeadLetterCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *DeadLetterCreate) SetNillablePriority(v *string) *DeadLetterCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DeadLetterCreate) SetStatus(v deadletter.Status) *DeadLetterCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DeadLetterCreate) SetNillableStatus(v *deadletter.Status) *DeadLetterCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAbandonReason sets the "abandon_reason" field.
func (_c *DeadLetterCreate) SetAbandonReason(v string) *DeadLetterCreate {
	_c.mutation.SetAbandonReason(v)
	return _c
}

// SetNillableAbandonReason sets the "abandon_reason" field if the given value is not nil.
func (_c *DeadLetterCreate) SetNillableAbandonReason(v *string) *DeadLetterCreate {
	if v != nil {
		_c.SetAbandonReason(*v)
	}
	return _c
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_c *DeadLetterCreate) SetFirstSeenAt(v time.Time) *DeadLetterCreate {
	_c.mutation.SetFirstSeenAt(v)
	return _c
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_c *DeadLetterCreate) SetNillableFirstSeenAt(v *time.Time) *DeadLetterCreate {
	if v != nil {
		_c.SetFirstSeenAt(*v)
	}
	return _c
}

// SetLastRetryAt sets the "last_retry_at" field.
func (_c *DeadLetterCreate) SetLastRetryAt(v time.Time) *DeadLetterCreate {
	_c.mutation.SetLastRetryAt(v)
	return _c
}

// SetNillableLastRetryAt sets the "last_retry_at" field if the given value is not nil.
func (_c *DeadLetterCreate) SetNillableLastRetryAt(v *time.Time) *DeadLetterCreate {
	if v != nil {
		_c.SetLastRetryAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DeadLetterCreate) SetID(v string) *DeadLetterCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *DeadLetterCreate) SetTask(v *Task) *DeadLetterCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the DeadLetterMutation object of the builder.
func (_c *DeadLetterCreate) Mutation() *DeadLetterMutation {
	return _c.mutation
}

// Save creates the DeadLetter in the database.
func (_c *DeadLetterCreate) Save(ctx context.Context) (*DeadLetter, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeadLetterCreate) SaveX(ctx context.Context) *DeadLetter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeadLetterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeadLetterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeadLetterCreate) defaults() {
	if _, ok := _c.mutation.Attempts(); !ok {
		v := deadletter.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := deadletter.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := deadletter.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		v := deadletter.DefaultFirstSeenAt()
		_c.mutation.SetFirstSeenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeadLetterCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "DeadLetter.task_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "DeadLetter.agent_id"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "DeadLetter.payload"`)}
	}
	if _, ok := _c.mutation.LastError(); !ok {
		return &ValidationError{Name: "last_error", err: errors.New(`ent: missing required field "DeadLetter.last_error"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "DeadLetter.attempts"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "DeadLetter.priority"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DeadLetter.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := deadletter.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DeadLetter.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		return &ValidationError{Name: "first_seen_at", err: errors.New(`ent: missing required field "DeadLetter.first_seen_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "DeadLetter.task"`)}
	}
	return nil
}

func (_c *DeadLetterCreate) sqlSave(ctx context.Context) (*DeadLetter, error) {
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
			return nil, fmt.Errorf("unexpected DeadLetter.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DeadLetterCreate) createSpec() (*DeadLetter, *sqlgraph.CreateSpec) {
	var (
		_node = &DeadLetter{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deadletter.Table, sqlgraph.NewFieldSpec(deadletter.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(deadletter.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(deadletter.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(deadletter.FieldLastError, field.TypeString, value)
		_node.LastError = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(deadletter.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(deadletter.FieldPriority, field.TypeString, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(deadletter.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AbandonReason(); ok {
		_spec.SetField(deadletter.FieldAbandonReason, field.TypeString, value)
		_node.AbandonReason = &value
	}
	if value, ok := _c.mutation.FirstSeenAt(); ok {
		_spec.SetField(deadletter.FieldFirstSeenAt, field.TypeTime, value)
		_node.FirstSeenAt = value
	}
	if value, ok := _c.mutation.LastRetryAt(); ok {
		_spec.SetField(deadletter.FieldLastRetryAt, field.TypeTime, value)
		_node.LastRetryAt = &value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deadletter.TaskTable,
			Columns: []string{deadletter.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DeadLetterCreateBulk is the builder for creating many DeadLetter entities in bulk.
type DeadLetterCreateBulk struct {
	config
	err      error
	builders []*DeadLetterCreate
}

// Save creates the DeadLetter entities in the database.
func (_c *DeadLetterCreateBulk) Save(ctx context.Context) ([]*DeadLetter, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DeadLetter, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeadLetterMutation)
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
func (_c *DeadLetterCreateBulk) SaveX(ctx context.Context) []*DeadLetter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeadLetterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeadLetterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
