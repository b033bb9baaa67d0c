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

// ToolCallCreate is the builder for creating a ToolCall entity.
type ToolCallCreate struct {
	config
	mutation *ToolCallMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *ToolCallCreate) SetRunID(v string) *ToolCallCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *ToolCallCreate) SetStepID(v string) *ToolCallCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *ToolCallCreate) SetToolName(v string) *ToolCallCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetArgs sets the "args" field.
func (_c *ToolCallCreate) SetArgs(v map[string]interface{}) *ToolCallCreate {
	_c.mutation.SetArgs(v)
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *ToolCallCreate) SetRiskLevel(v toolcall.RiskLevel) *ToolCallCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableRiskLevel(v *toolcall.RiskLevel) *ToolCallCreate {
	if v != nil {
		_c.SetRiskLevel(*v)
	}
	return _c
}

// SetRequiresApproval sets the "requires_approval" field.
func (_c *ToolCallCreate) SetRequiresApproval(v bool) *ToolCallCreate {
	_c.mutation.SetRequiresApproval(v)
	return _c
}

// SetNillableRequiresApproval sets the "requires_approval" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableRequiresApproval(v *bool) *ToolCallCreate {
	if v != nil {
		_c.SetRequiresApproval(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ToolCallCreate) SetStatus(v toolcall.Status) *ToolCallCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableStatus(v *toolcall.Status) *ToolCallCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetApprovedBy sets the "approved_by" field.
func (_c *ToolCallCreate) SetApprovedBy(v string) *ToolCallCreate {
	_c.mutation.SetApprovedBy(v)
	return _c
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableApprovedBy(v *string) *ToolCallCreate {
	if v != nil {
		_c.SetApprovedBy(*v)
	}
	return _c
}

// SetApprovedAt sets the "approved_at" field.
func (_c *ToolCallCreate) SetApprovedAt(v time.Time) *ToolCallCreate {
	_c.mutation.SetApprovedAt(v)
	return _c
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableApprovedAt(v *time.Time) *ToolCallCreate {
	if v != nil {
		_c.SetApprovedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ToolCallCreate) SetStartedAt(v time.Time) *ToolCallCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableStartedAt(v *time.Time) *ToolCallCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *ToolCallCreate) SetEndedAt(v time.Time) *ToolCallCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableEndedAt(v *time.Time) *ToolCallCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetExitCode sets the "exit_code" field.
func (_c *ToolCallCreate) SetExitCode(v int) *ToolCallCreate {
	_c.mutation.SetExitCode(v)
	return _c
}

// SetNillableExitCode sets the "exit_code" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableExitCode(v *int) *ToolCallCreate {
	if v != nil {
		_c.SetExitCode(*v)
	}
	return _c
}

// SetStdout sets the "stdout" field.
func (_c *ToolCallCreate) SetStdout(v string) *ToolCallCreate {
	_c.mutation.SetStdout(v)
	return _c
}

// SetNillableStdout sets the "stdout" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableStdout(v *string) *ToolCallCreate {
	if v != nil {
		_c.SetStdout(*v)
	}
	return _c
}

// SetStderr sets the "stderr" field.
func (_c *ToolCallCreate) SetStderr(v string) *ToolCallCreate {
	_c.mutation.SetStderr(v)
	return _c
}

// SetNillableStderr sets the "stderr" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableStderr(v *string) *ToolCallCreate {
	if v != nil {
		_c.SetStderr(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *ToolCallCreate) SetResult(v map[string]interface{}) *ToolCallCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ToolCallCreate) SetCreatedAt(v time.Time) *ToolCallCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableCreatedAt(v *time.Time) *ToolCallCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ToolCallCreate) SetID(v string) *ToolCallCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the AgentRun entity.
func (_c *ToolCallCreate) SetRun(v *AgentRun) *ToolCallCreate {
	return _c.SetRunID(v.ID)
}

// SetStep sets the "step" edge to the AgentStep entity.
func (_c *ToolCallCreate) SetStep(v *AgentStep) *ToolCallCreate {
	return _c.SetStepID(v.ID)
}

// Mutation returns the ToolCallMutation object of the builder.
func (_c *ToolCallCreate) Mutation() *ToolCallMutation {
	return _c.mutation
}

// Save creates the ToolCall in the database.
func (_c *ToolCallCreate) Save(ctx context.Context) (*ToolCall, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ToolCallCreate) SaveX(ctx context.Context) *ToolCall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolCallCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolCallCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ToolCallCreate) defaults() {
	if _, ok := _c.mutation.RiskLevel(); !ok {
		v := toolcall.DefaultRiskLevel
		_c.mutation.SetRiskLevel(v)
	}
	if _, ok := _c.mutation.RequiresApproval(); !ok {
		v := toolcall.DefaultRequiresApproval
		_c.mutation.SetRequiresApproval(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := toolcall.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Stdout(); !ok {
		v := toolcall.DefaultStdout
		_c.mutation.SetStdout(v)
	}
	if _, ok := _c.mutation.Stderr(); !ok {
		v := toolcall.DefaultStderr
		_c.mutation.SetStderr(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := toolcall.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ToolCallCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "ToolCall.run_id"`)}
	}
	if _, ok := _c.mutation.StepID(); !ok {
		return &ValidationError{Name: "step_id", err: errors.New(`ent: missing required field "ToolCall.step_id"`)}
	}
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "ToolCall.tool_name"`)}
	}
	if v, ok := _c.mutation.ToolName(); ok {
		if err := toolcall.ToolNameValidator(v); err != nil {
			return &ValidationError{Name: "tool_name", err: fmt.Errorf(`ent: validator failed for field "ToolCall.tool_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		return &ValidationError{Name: "risk_level", err: errors.New(`ent: missing required field "ToolCall.risk_level"`)}
	}
	if v, ok := _c.mutation.RiskLevel(); ok {
		if err := toolcall.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "ToolCall.risk_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequiresApproval(); !ok {
		return &ValidationError{Name: "requires_approval", err: errors.New(`ent: missing required field "ToolCall.requires_approval"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ToolCall.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := toolcall.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolCall.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stdout(); !ok {
		return &ValidationError{Name: "stdout", err: errors.New(`ent: missing required field "ToolCall.stdout"`)}
	}
	if _, ok := _c.mutation.Stderr(); !ok {
		return &ValidationError{Name: "stderr", err: errors.New(`ent: missing required field "ToolCall.stderr"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ToolCall.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "ToolCall.run"`)}
	}
	if len(_c.mutation.StepIDs()) == 0 {
		return &ValidationError{Name: "step", err: errors.New(`ent: missing required edge "ToolCall.step"`)}
	}
	return nil
}

func (_c *ToolCallCreate) sqlSave(ctx context.Context) (*ToolCall, error) {
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
			return nil, fmt.Errorf("unexpected ToolCall.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ToolCallCreate) createSpec() (*ToolCall, *sqlgraph.CreateSpec) {
	var (
		_node = &ToolCall{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(toolcall.Table, sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(toolcall.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.Args(); ok {
		_spec.SetField(toolcall.FieldArgs, field.TypeJSON, value)
		_node.Args = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(toolcall.FieldRiskLevel, field.TypeEnum, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.RequiresApproval(); ok {
		_spec.SetField(toolcall.FieldRequiresApproval, field.TypeBool, value)
		_node.RequiresApproval = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(toolcall.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ApprovedBy(); ok {
		_spec.SetField(toolcall.FieldApprovedBy, field.TypeString, value)
		_node.ApprovedBy = &value
	}
	if value, ok := _c.mutation.ApprovedAt(); ok {
		_spec.SetField(toolcall.FieldApprovedAt, field.TypeTime, value)
		_node.ApprovedAt = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(toolcall.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(toolcall.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.ExitCode(); ok {
		_spec.SetField(toolcall.FieldExitCode, field.TypeInt, value)
		_node.ExitCode = &value
	}
	if value, ok := _c.mutation.Stdout(); ok {
		_spec.SetField(toolcall.FieldStdout, field.TypeString, value)
		_node.Stdout = value
	}
	if value, ok := _c.mutation.Stderr(); ok {
		_spec.SetField(toolcall.FieldStderr, field.TypeString, value)
		_node.Stderr = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(toolcall.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(toolcall.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   toolcall.RunTable,
			Columns: []string{toolcall.RunColumn},
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
	if nodes := _c.mutation.StepIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   toolcall.StepTable,
			Columns: []string{toolcall.StepColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.StepID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ToolCallCreateBulk is the builder for creating many ToolCall entities in bulk.
type ToolCallCreateBulk struct {
	config
	err      error
	builders []*ToolCallCreate
}

// Save creates the ToolCall entities in the database.
func (_c *ToolCallCreateBulk) Save(ctx context.Context) ([]*ToolCall, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ToolCall, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ToolCallMutation)
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
func (_c *ToolCallCreateBulk) SaveX(ctx context.Context) []*ToolCall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolCallCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolCallCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
