// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentmaestro/agentmaestro/ent/agentstep"
	"github.com/agentmaestro/agentmaestro/ent/predicate"
	"github.com/agentmaestro/agentmaestro/ent/toolcall"
)

// AgentStepUpdate is the builder for updating AgentStep entities.
type AgentStepUpdate struct {
	config
	hooks    []Hook
	mutation *AgentStepMutation
}

// Where appends a list predicates to the AgentStepUpdate builder.
func (_u *AgentStepUpdate) Where(ps ...predicate.AgentStep) *AgentStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *AgentStepUpdate) SetPayload(v map[string]interface{}) *AgentStepUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *AgentStepUpdate) ClearPayload() *AgentStepUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetToolCallID sets the "tool_call" edge to the ToolCall entity by ID.
func (_u *AgentStepUpdate) SetToolCallID(id string) *AgentStepUpdate {
	_u.mutation.SetToolCallID(id)
	return _u
}

// SetNillableToolCallID sets the "tool_call" edge to the ToolCall entity by ID if the given value is not nil.
func (_u *AgentStepUpdate) SetNillableToolCallID(id *string) *AgentStepUpdate {
	if id != nil {
		_u = _u.SetToolCallID(*id)
	}
	return _u
}

// SetToolCall sets the "tool_call" edge to the ToolCall entity.
func (_u *AgentStepUpdate) SetToolCall(v *ToolCall) *AgentStepUpdate {
	return _u.SetToolCallID(v.ID)
}

// Mutation returns the AgentStepMutation object of the builder.
func (_u *AgentStepUpdate) Mutation() *AgentStepMutation {
	return _u.mutation
}

// ClearToolCall clears the "tool_call" edge to the ToolCall entity.
func (_u *AgentStepUpdate) ClearToolCall() *AgentStepUpdate {
	_u.mutation.ClearToolCall()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentStepUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentStep.run"`)
	}
	return nil
}

func (_u *AgentStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentstep.Table, agentstep.Columns, sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(agentstep.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(agentstep.FieldPayload, field.TypeJSON)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(agentstep.FieldCorrelationID, field.TypeString)
	}
	if _u.mutation.ToolCallCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   agentstep.ToolCallTable,
			Columns: []string{agentstep.ToolCallColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolCallIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   agentstep.ToolCallTable,
			Columns: []string{agentstep.ToolCallColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentStepUpdateOne is the builder for updating a single AgentStep entity.
type AgentStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentStepMutation
}

// SetPayload sets the "payload" field.
func (_u *AgentStepUpdateOne) SetPayload(v map[string]interface{}) *AgentStepUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *AgentStepUpdateOne) ClearPayload() *AgentStepUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetToolCallID sets the "tool_call" edge to the ToolCall entity by ID.
func (_u *AgentStepUpdateOne) SetToolCallID(id string) *AgentStepUpdateOne {
	_u.mutation.SetToolCallID(id)
	return _u
}

// SetNillableToolCallID sets the "tool_call" edge to the ToolCall entity by ID if the given value is not nil.
func (_u *AgentStepUpdateOne) SetNillableToolCallID(id *string) *AgentStepUpdateOne {
	if id != nil {
		_u = _u.SetToolCallID(*id)
	}
	return _u
}

// SetToolCall sets the "tool_call" edge to the ToolCall entity.
func (_u *AgentStepUpdateOne) SetToolCall(v *ToolCall) *AgentStepUpdateOne {
	return _u.SetToolCallID(v.ID)
}

// Mutation returns the AgentStepMutation object of the builder.
func (_u *AgentStepUpdateOne) Mutation() *AgentStepMutation {
	return _u.mutation
}

// ClearToolCall clears the "tool_call" edge to the ToolCall entity.
func (_u *AgentStepUpdateOne) ClearToolCall() *AgentStepUpdateOne {
	_u.mutation.ClearToolCall()
	return _u
}

// Where appends a list predicates to the AgentStepUpdate builder.
func (_u *AgentStepUpdateOne) Where(ps ...predicate.AgentStep) *AgentStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentStepUpdateOne) Select(field string, fields ...string) *AgentStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentStep entity.
func (_u *AgentStepUpdateOne) Save(ctx context.Context) (*AgentStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentStepUpdateOne) SaveX(ctx context.Context) *AgentStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentStepUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentStep.run"`)
	}
	return nil
}

func (_u *AgentStepUpdateOne) sqlSave(ctx context.Context) (_node *AgentStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentstep.Table, agentstep.Columns, sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentstep.FieldID)
		for _, f := range fields {
			if !agentstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentstep.FieldID {
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
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(agentstep.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(agentstep.FieldPayload, field.TypeJSON)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(agentstep.FieldCorrelationID, field.TypeString)
	}
	if _u.mutation.ToolCallCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   agentstep.ToolCallTable,
			Columns: []string{agentstep.ToolCallColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolCallIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   agentstep.ToolCallTable,
			Columns: []string{agentstep.ToolCallColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
