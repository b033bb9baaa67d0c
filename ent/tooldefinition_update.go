// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentmaestro/agentmaestro/ent/predicate"
	"github.com/agentmaestro/agentmaestro/ent/tooldefinition"
)

// ToolDefinitionUpdate is the builder for updating ToolDefinition entities.
type ToolDefinitionUpdate struct {
	config
	hooks    []Hook
	mutation *ToolDefinitionMutation
}

// Where appends a list predicates to the ToolDefinitionUpdate builder.
func (_u *ToolDefinitionUpdate) Where(ps ...predicate.ToolDefinition) *ToolDefinitionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ToolDefinitionUpdate) SetName(v string) *ToolDefinitionUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ToolDefinitionUpdate) SetNillableName(v *string) *ToolDefinitionUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetArgsSchema sets the "args_schema" field.
func (_u *ToolDefinitionUpdate) SetArgsSchema(v map[string]interface{}) *ToolDefinitionUpdate {
	_u.mutation.SetArgsSchema(v)
	return _u
}

// ClearArgsSchema clears the value of the "args_schema" field.
func (_u *ToolDefinitionUpdate) ClearArgsSchema() *ToolDefinitionUpdate {
	_u.mutation.ClearArgsSchema()
	return _u
}

// SetDefaultRiskLevel sets the "default_risk_level" field.
func (_u *ToolDefinitionUpdate) SetDefaultRiskLevel(v tooldefinition.DefaultRiskLevel) *ToolDefinitionUpdate {
	_u.mutation.SetDefaultRiskLevel(v)
	return _u
}

// SetNillableDefaultRiskLevel sets the "default_risk_level" field if the given value is not nil.
func (_u *ToolDefinitionUpdate) SetNillableDefaultRiskLevel(v *tooldefinition.DefaultRiskLevel) *ToolDefinitionUpdate {
	if v != nil {
		_u.SetDefaultRiskLevel(*v)
	}
	return _u
}

// SetDefaultRequiresApproval sets the "default_requires_approval" field.
func (_u *ToolDefinitionUpdate) SetDefaultRequiresApproval(v bool) *ToolDefinitionUpdate {
	_u.mutation.SetDefaultRequiresApproval(v)
	return _u
}

// SetNillableDefaultRequiresApproval sets the "default_requires_approval" field if the given value is not nil.
func (_u *ToolDefinitionUpdate) SetNillableDefaultRequiresApproval(v *bool) *ToolDefinitionUpdate {
	if v != nil {
		_u.SetDefaultRequiresApproval(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ToolDefinitionUpdate) SetEnabled(v bool) *ToolDefinitionUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ToolDefinitionUpdate) SetNillableEnabled(v *bool) *ToolDefinitionUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// Mutation returns the ToolDefinitionMutation object of the builder.
func (_u *ToolDefinitionUpdate) Mutation() *ToolDefinitionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ToolDefinitionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolDefinitionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ToolDefinitionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolDefinitionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolDefinitionUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := tooldefinition.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ToolDefinition.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DefaultRiskLevel(); ok {
		if err := tooldefinition.DefaultRiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "default_risk_level", err: fmt.Errorf(`ent: validator failed for field "ToolDefinition.default_risk_level": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToolDefinition.workspace"`)
	}
	return nil
}

func (_u *ToolDefinitionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tooldefinition.Table, tooldefinition.Columns, sqlgraph.NewFieldSpec(tooldefinition.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(tooldefinition.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArgsSchema(); ok {
		_spec.SetField(tooldefinition.FieldArgsSchema, field.TypeJSON, value)
	}
	if _u.mutation.ArgsSchemaCleared() {
		_spec.ClearField(tooldefinition.FieldArgsSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.DefaultRiskLevel(); ok {
		_spec.SetField(tooldefinition.FieldDefaultRiskLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DefaultRequiresApproval(); ok {
		_spec.SetField(tooldefinition.FieldDefaultRequiresApproval, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(tooldefinition.FieldEnabled, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tooldefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ToolDefinitionUpdateOne is the builder for updating a single ToolDefinition entity.
type ToolDefinitionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ToolDefinitionMutation
}

// SetName sets the "name" field.
func (_u *ToolDefinitionUpdateOne) SetName(v string) *ToolDefinitionUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ToolDefinitionUpdateOne) SetNillableName(v *string) *ToolDefinitionUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetArgsSchema sets the "args_schema" field.
func (_u *ToolDefinitionUpdateOne) SetArgsSchema(v map[string]interface{}) *ToolDefinitionUpdateOne {
	_u.mutation.SetArgsSchema(v)
	return _u
}

// ClearArgsSchema clears the value of the "args_schema" field.
func (_u *ToolDefinitionUpdateOne) ClearArgsSchema() *ToolDefinitionUpdateOne {
	_u.mutation.ClearArgsSchema()
	return _u
}

// SetDefaultRiskLevel sets the "default_risk_level" field.
func (_u *ToolDefinitionUpdateOne) SetDefaultRiskLevel(v tooldefinition.DefaultRiskLevel) *ToolDefinitionUpdateOne {
	_u.mutation.SetDefaultRiskLevel(v)
	return _u
}

// SetNillableDefaultRiskLevel sets the "default_risk_level" field if the given value is not nil.
func (_u *ToolDefinitionUpdateOne) SetNillableDefaultRiskLevel(v *tooldefinition.DefaultRiskLevel) *ToolDefinitionUpdateOne {
	if v != nil {
		_u.SetDefaultRiskLevel(*v)
	}
	return _u
}

// SetDefaultRequiresApproval sets the "default_requires_approval" field.
func (_u *ToolDefinitionUpdateOne) SetDefaultRequiresApproval(v bool) *ToolDefinitionUpdateOne {
	_u.mutation.SetDefaultRequiresApproval(v)
	return _u
}

// SetNillableDefaultRequiresApproval sets the "default_requires_approval" field if the given value is not nil.
func (_u *ToolDefinitionUpdateOne) SetNillableDefaultRequiresApproval(v *bool) *ToolDefinitionUpdateOne {
	if v != nil {
		_u.SetDefaultRequiresApproval(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ToolDefinitionUpdateOne) SetEnabled(v bool) *ToolDefinitionUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ToolDefinitionUpdateOne) SetNillableEnabled(v *bool) *ToolDefinitionUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// Mutation returns the ToolDefinitionMutation object of the builder.
func (_u *ToolDefinitionUpdateOne) Mutation() *ToolDefinitionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ToolDefinitionUpdate builder.
func (_u *ToolDefinitionUpdateOne) Where(ps ...predicate.ToolDefinition) *ToolDefinitionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ToolDefinitionUpdateOne) Select(field string, fields ...string) *ToolDefinitionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ToolDefinition entity.
func (_u *ToolDefinitionUpdateOne) Save(ctx context.Context) (*ToolDefinition, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolDefinitionUpdateOne) SaveX(ctx context.Context) *ToolDefinition {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ToolDefinitionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolDefinitionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolDefinitionUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := tooldefinition.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ToolDefinition.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DefaultRiskLevel(); ok {
		if err := tooldefinition.DefaultRiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "default_risk_level", err: fmt.Errorf(`ent: validator failed for field "ToolDefinition.default_risk_level": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToolDefinition.workspace"`)
	}
	return nil
}

func (_u *ToolDefinitionUpdateOne) sqlSave(ctx context.Context) (_node *ToolDefinition, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tooldefinition.Table, tooldefinition.Columns, sqlgraph.NewFieldSpec(tooldefinition.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ToolDefinition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tooldefinition.FieldID)
		for _, f := range fields {
			if !tooldefinition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tooldefinition.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(tooldefinition.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArgsSchema(); ok {
		_spec.SetField(tooldefinition.FieldArgsSchema, field.TypeJSON, value)
	}
	if _u.mutation.ArgsSchemaCleared() {
		_spec.ClearField(tooldefinition.FieldArgsSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.DefaultRiskLevel(); ok {
		_spec.SetField(tooldefinition.FieldDefaultRiskLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DefaultRequiresApproval(); ok {
		_spec.SetField(tooldefinition.FieldDefaultRequiresApproval, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(tooldefinition.FieldEnabled, field.TypeBool, value)
	}
	_node = &ToolDefinition{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tooldefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
