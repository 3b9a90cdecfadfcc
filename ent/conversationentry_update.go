// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/taskwire/taskwire/ent/conversationentry"
	"github.com/taskwire/taskwire/ent/predicate"
)

// ConversationEntryUpdate is the builder for updating ConversationEntry entities.
type ConversationEntryUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationEntryMutation
}

// Where appends a list predicates to the ConversationEntryUpdate builder.
func (_u *ConversationEntryUpdate) Where(ps ...predicate.ConversationEntry) *ConversationEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *ConversationEntryUpdate) SetRole(v conversationentry.Role) *ConversationEntryUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ConversationEntryUpdate) SetNillableRole(v *conversationentry.Role) *ConversationEntryUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ConversationEntryUpdate) SetContent(v string) *ConversationEntryUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ConversationEntryUpdate) SetNillableContent(v *string) *ConversationEntryUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ConversationEntryUpdate) SetMetadata(v map[string]interface{}) *ConversationEntryUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ConversationEntryUpdate) ClearMetadata() *ConversationEntryUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *ConversationEntryUpdate) SetSequence(v int) *ConversationEntryUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *ConversationEntryUpdate) SetNillableSequence(v *int) *ConversationEntryUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *ConversationEntryUpdate) AddSequence(v int) *ConversationEntryUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// Mutation returns the ConversationEntryMutation object of the builder.
func (_u *ConversationEntryUpdate) Mutation() *ConversationEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationEntryUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := conversationentry.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ConversationEntry.role": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConversationEntry.task"`)
	}
	return nil
}

func (_u *ConversationEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversationentry.Table, conversationentry.Columns, sqlgraph.NewFieldSpec(conversationentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(conversationentry.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(conversationentry.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(conversationentry.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(conversationentry.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(conversationentry.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(conversationentry.FieldSequence, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversationentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationEntryUpdateOne is the builder for updating a single ConversationEntry entity.
type ConversationEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationEntryMutation
}

// SetRole sets the "role" field.
func (_u *ConversationEntryUpdateOne) SetRole(v conversationentry.Role) *ConversationEntryUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ConversationEntryUpdateOne) SetNillableRole(v *conversationentry.Role) *ConversationEntryUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ConversationEntryUpdateOne) SetContent(v string) *ConversationEntryUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ConversationEntryUpdateOne) SetNillableContent(v *string) *ConversationEntryUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ConversationEntryUpdateOne) SetMetadata(v map[string]interface{}) *ConversationEntryUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ConversationEntryUpdateOne) ClearMetadata() *ConversationEntryUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *ConversationEntryUpdateOne) SetSequence(v int) *ConversationEntryUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *ConversationEntryUpdateOne) SetNillableSequence(v *int) *ConversationEntryUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *ConversationEntryUpdateOne) AddSequence(v int) *ConversationEntryUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// Mutation returns the ConversationEntryMutation object of the builder.
func (_u *ConversationEntryUpdateOne) Mutation() *ConversationEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConversationEntryUpdate builder.
func (_u *ConversationEntryUpdateOne) Where(ps ...predicate.ConversationEntry) *ConversationEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationEntryUpdateOne) Select(field string, fields ...string) *ConversationEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConversationEntry entity.
func (_u *ConversationEntryUpdateOne) Save(ctx context.Context) (*ConversationEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationEntryUpdateOne) SaveX(ctx context.Context) *ConversationEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := conversationentry.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ConversationEntry.role": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConversationEntry.task"`)
	}
	return nil
}

func (_u *ConversationEntryUpdateOne) sqlSave(ctx context.Context) (_node *ConversationEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversationentry.Table, conversationentry.Columns, sqlgraph.NewFieldSpec(conversationentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConversationEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversationentry.FieldID)
		for _, f := range fields {
			if !conversationentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversationentry.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(conversationentry.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(conversationentry.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(conversationentry.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(conversationentry.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(conversationentry.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(conversationentry.FieldSequence, field.TypeInt, value)
	}
	_node = &ConversationEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversationentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
