// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentmaestro/agentmaestro/ent/tooldefinition"
	"github.com/agentmaestro/agentmaestro/ent/workspace"
)

// ToolDefinitionCreate is the builder for creating a ToolDefinition entity.
type ToolDefinitionCreate struct {
	config
	mutation *ToolDefinitionMutation
	hooks    []Hook
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *ToolDefinitionCreate) SetWorkspaceID(v string) *ToolDefinitionCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ToolDefinitionCreate) SetName(v string) *ToolDefinitionCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetArgsSchema sets the "args_schema" field.
func (_c *ToolDefinitionCreate) SetArgsSchema(v map[string]interface{}) *ToolDefinitionCreate {
	_c.mutation.SetArgsSchema(v)
	return _c
}

// SetDefaultRiskLevel sets the "default_risk_level" field.
func (_c *ToolDefinitionCreate) SetDefaultRiskLevel(v tooldefinition.DefaultRiskLevel) *ToolDefinitionCreate {
	_c.mutation.SetDefaultRiskLevel(v)
	return _c
}

// SetNillableDefaultRiskLevel sets the "default_risk_level" field if the given value is not nil.
func (_c *ToolDefinitionCreate) SetNillableDefaultRiskLevel(v *tooldefinition.DefaultRiskLevel) *ToolDefinitionCreate {
	if v != nil {
		_c.SetDefaultRiskLevel(*v)
	}
	return _c
}

// SetDefaultRequiresApproval sets the "default_requires_approval" field.
func (_c *ToolDefinitionCreate) SetDefaultRequiresApproval(v bool) *ToolDefinitionCreate {
	_c.mutation.SetDefaultRequiresApproval(v)
	return _c
}

// SetNillableDefaultRequiresApproval sets the "default_requires_approval" field if the given value is not nil.
func (_c *ToolDefinitionCreate) SetNillableDefaultRequiresApproval(v *bool) *ToolDefinitionCreate {
	if v != nil {
		_c.SetDefaultRequiresApproval(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *ToolDefinitionCreate) SetEnabled(v bool) *ToolDefinitionCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *ToolDefinitionCreate) SetNillableEnabled(v *bool) *ToolDefinitionCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ToolDefinitionCreate) SetCreatedAt(v time.Time) *ToolDefinitionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ToolDefinitionCreate) SetNillableCreatedAt(v *time.Time) *ToolDefinitionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ToolDefinitionCreate) SetID(v string) *ToolDefinitionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_c *ToolDefinitionCreate) SetWorkspace(v *Workspace) *ToolDefinitionCreate {
	return _c.SetWorkspaceID(v.ID)
}

// Mutation returns the ToolDefinitionMutation object of the builder.
func (_c *ToolDefinitionCreate) Mutation() *ToolDefinitionMutation {
	return _c.mutation
}

// Save creates the ToolDefinition in the database.
func (_c *ToolDefinitionCreate) Save(ctx context.Context) (*ToolDefinition, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ToolDefinitionCreate) SaveX(ctx context.Context) *ToolDefinition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolDefinitionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolDefinitionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ToolDefinitionCreate) defaults() {
	if _, ok := _c.mutation.DefaultRiskLevel(); !ok {
		v := tooldefinition.DefaultDefaultRiskLevel
		_c.mutation.SetDefaultRiskLevel(v)
	}
	if _, ok := _c.mutation.DefaultRequiresApproval(); !ok {
		v := tooldefinition.DefaultDefaultRequiresApproval
		_c.mutation.SetDefaultRequiresApproval(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := tooldefinition.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tooldefinition.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ToolDefinitionCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "ToolDefinition.workspace_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ToolDefinition.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := tooldefinition.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ToolDefinition.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DefaultRiskLevel(); !ok {
		return &ValidationError{Name: "default_risk_level", err: errors.New(`ent: missing required field "ToolDefinition.default_risk_level"`)}
	}
	if v, ok := _c.mutation.DefaultRiskLevel(); ok {
		if err := tooldefinition.DefaultRiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "default_risk_level", err: fmt.Errorf(`ent: validator failed for field "ToolDefinition.default_risk_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DefaultRequiresApproval(); !ok {
		return &ValidationError{Name: "default_requires_approval", err: errors.New(`ent: missing required field "ToolDefinition.default_requires_approval"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "ToolDefinition.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ToolDefinition.created_at"`)}
	}
	if len(_c.mutation.WorkspaceIDs()) == 0 {
		return &ValidationError{Name: "workspace", err: errors.New(`ent: missing required edge "ToolDefinition.workspace"`)}
	}
	return nil
}

func (_c *ToolDefinitionCreate) sqlSave(ctx context.Context) (*ToolDefinition, error) {
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
			return nil, fmt.Errorf("unexpected ToolDefinition.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ToolDefinitionCreate) createSpec() (*ToolDefinition, *sqlgraph.CreateSpec) {
	var (
		_node = &ToolDefinition{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tooldefinition.Table, sqlgraph.NewFieldSpec(tooldefinition.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(tooldefinition.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.ArgsSchema(); ok {
		_spec.SetField(tooldefinition.FieldArgsSchema, field.TypeJSON, value)
		_node.ArgsSchema = value
	}
	if value, ok := _c.mutation.DefaultRiskLevel(); ok {
		_spec.SetField(tooldefinition.FieldDefaultRiskLevel, field.TypeEnum, value)
		_node.DefaultRiskLevel = value
	}
	if value, ok := _c.mutation.DefaultRequiresApproval(); ok {
		_spec.SetField(tooldefinition.FieldDefaultRequiresApproval, field.TypeBool, value)
		_node.DefaultRequiresApproval = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(tooldefinition.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tooldefinition.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tooldefinition.WorkspaceTable,
			Columns: []string{tooldefinition.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WorkspaceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ToolDefinitionCreateBulk is the builder for creating many ToolDefinition entities in bulk.
type ToolDefinitionCreateBulk struct {
	config
	err      error
	builders []*ToolDefinitionCreate
}

// Save creates the ToolDefinition entities in the database.
func (_c *ToolDefinitionCreateBulk) Save(ctx context.Context) ([]*ToolDefinition, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ToolDefinition, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ToolDefinitionMutation)
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
func (_c *ToolDefinitionCreateBulk) SaveX(ctx context.Context) []*ToolDefinition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolDefinitionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolDefinitionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
