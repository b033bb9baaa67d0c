// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/ent/agentstep"
	"github.com/agentmaestro/agentmaestro/ent/toolcall"
)

// AgentStepCreate is the builder for creating a AgentStep entity.
type AgentStepCreate struct {
	config
	mutation *AgentStepMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *AgentStepCreate) SetRunID(v string) *AgentStepCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetStepIndex sets the "step_index" field.
func (_c *AgentStepCreate) SetStepIndex(v int) *AgentStepCreate {
	_c.mutation.SetStepIndex(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *AgentStepCreate) SetKind(v agentstep.Kind) *AgentStepCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *AgentStepCreate) SetPayload(v map[string]interface{}) *AgentStepCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *AgentStepCreate) SetCorrelationID(v string) *AgentStepCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_c *AgentStepCreate) SetNillableCorrelationID(v *string) *AgentStepCreate {
	if v != nil {
		_c.SetCorrelationID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentStepCreate) SetCreatedAt(v time.Time) *AgentStepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentStepCreate) SetNillableCreatedAt(v *time.Time) *AgentStepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentStepCreate) SetID(v string) *AgentStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the AgentRun entity.
func (_c *AgentStepCreate) SetRun(v *AgentRun) *AgentStepCreate {
	return _c.SetRunID(v.ID)
}

// SetToolCallID sets the "tool_call" edge to the ToolCall entity by ID.
func (_c *AgentStepCreate) SetToolCallID(id string) *AgentStepCreate {
	_c.mutation.SetToolCallID(id)
	return _c
}

// SetNillableToolCallID sets the "tool_call" edge to the ToolCall entity by ID if the given value is not nil.
func (_c *AgentStepCreate) SetNillableToolCallID(id *string) *AgentStepCreate {
	if id != nil {
		_c = _c.SetToolCallID(*id)
	}
	return _c
}

// SetToolCall sets the "tool_call" edge to the ToolCall entity.
func (_c *AgentStepCreate) SetToolCall(v *ToolCall) *AgentStepCreate {
	return _c.SetToolCallID(v.ID)
}

// Mutation returns the AgentStepMutation object of the builder.
func (_c *AgentStepCreate) Mutation() *AgentStepMutation {
	return _c.mutation
}

// Save creates the AgentStep in the database.
func (_c *AgentStepCreate) Save(ctx context.Context) (*AgentStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentStepCreate) SaveX(ctx context.Context) *AgentStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentStepCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentstep.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentStepCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "AgentStep.run_id"`)}
	}
	if _, ok := _c.mutation.StepIndex(); !ok {
		return &ValidationError{Name: "step_index", err: errors.New(`ent: missing required field "AgentStep.step_index"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "AgentStep.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := agentstep.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AgentStep.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentStep.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "AgentStep.run"`)}
	}
	return nil
}

func (_c *AgentStepCreate) sqlSave(ctx context.Context) (*AgentStep, error) {
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
			return nil, fmt.Errorf("unexpected AgentStep.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentStepCreate) createSpec() (*AgentStep, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentstep.Table, sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StepIndex(); ok {
		_spec.SetField(agentstep.FieldStepIndex, field.TypeInt, value)
		_node.StepIndex = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(agentstep.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(agentstep.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(agentstep.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentstep.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentstep.RunTable,
			Columns: []string{agentstep.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ToolCallIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentStepCreateBulk is the builder for creating many AgentStep entities in bulk.
type AgentStepCreateBulk struct {
	config
	err      error
	builders []*AgentStepCreate
}

// Save creates the AgentStep entities in the database.
func (_c *AgentStepCreateBulk) Save(ctx context.Context) ([]*AgentStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentStepMutation)
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
func (_c *AgentStepCreateBulk) SaveX(ctx context.Context) []*AgentStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
