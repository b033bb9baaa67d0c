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
	"github.com/agentmaestro/agentmaestro/ent/subrunlink"
)

// SubrunLinkCreate is the builder for creating a SubrunLink entity.
type SubrunLinkCreate struct {
	config
	mutation *SubrunLinkMutation
	hooks    []Hook
}

// SetParentRunID sets the "parent_run_id" field.
func (_c *SubrunLinkCreate) SetParentRunID(v string) *SubrunLinkCreate {
	_c.mutation.SetParentRunID(v)
	return _c
}

// SetChildRunID sets the "child_run_id" field.
func (_c *SubrunLinkCreate) SetChildRunID(v string) *SubrunLinkCreate {
	_c.mutation.SetChildRunID(v)
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *SubrunLinkCreate) SetGroupID(v string) *SubrunLinkCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetJoinPolicy sets the "join_policy" field.
func (_c *SubrunLinkCreate) SetJoinPolicy(v subrunlink.JoinPolicy) *SubrunLinkCreate {
	_c.mutation.SetJoinPolicy(v)
	return _c
}

// SetNillableJoinPolicy sets the "join_policy" field if the given value is not nil.
func (_c *SubrunLinkCreate) SetNillableJoinPolicy(v *subrunlink.JoinPolicy) *SubrunLinkCreate {
	if v != nil {
		_c.SetJoinPolicy(*v)
	}
	return _c
}

// SetQuorum sets the "quorum" field.
func (_c *SubrunLinkCreate) SetQuorum(v int) *SubrunLinkCreate {
	_c.mutation.SetQuorum(v)
	return _c
}

// SetNillableQuorum sets the "quorum" field if the given value is not nil.
func (_c *SubrunLinkCreate) SetNillableQuorum(v *int) *SubrunLinkCreate {
	if v != nil {
		_c.SetQuorum(*v)
	}
	return _c
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_c *SubrunLinkCreate) SetTimeoutSeconds(v int) *SubrunLinkCreate {
	_c.mutation.SetTimeoutSeconds(v)
	return _c
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_c *SubrunLinkCreate) SetNillableTimeoutSeconds(v *int) *SubrunLinkCreate {
	if v != nil {
		_c.SetTimeoutSeconds(*v)
	}
	return _c
}

// SetFailurePolicy sets the "failure_policy" field.
func (_c *SubrunLinkCreate) SetFailurePolicy(v subrunlink.FailurePolicy) *SubrunLinkCreate {
	_c.mutation.SetFailurePolicy(v)
	return _c
}

// SetNillableFailurePolicy sets the "failure_policy" field if the given value is not nil.
func (_c *SubrunLinkCreate) SetNillableFailurePolicy(v *subrunlink.FailurePolicy) *SubrunLinkCreate {
	if v != nil {
		_c.SetFailurePolicy(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *SubrunLinkCreate) SetMetadata(v map[string]interface{}) *SubrunLinkCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubrunLinkCreate) SetCreatedAt(v time.Time) *SubrunLinkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubrunLinkCreate) SetNillableCreatedAt(v *time.Time) *SubrunLinkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SubrunLinkCreate) SetID(v string) *SubrunLinkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetParentID sets the "parent" edge to the AgentRun entity by ID.
func (_c *SubrunLinkCreate) SetParentID(id string) *SubrunLinkCreate {
	_c.mutation.SetParentID(id)
	return _c
}

// SetParent sets the "parent" edge to the AgentRun entity.
func (_c *SubrunLinkCreate) SetParent(v *AgentRun) *SubrunLinkCreate {
	return _c.SetParentID(v.ID)
}

// Mutation returns the SubrunLinkMutation object of the builder.
func (_c *SubrunLinkCreate) Mutation() *SubrunLinkMutation {
	return _c.mutation
}

// Save creates the SubrunLink in the database.
func (_c *SubrunLinkCreate) Save(ctx context.Context) (*SubrunLink, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubrunLinkCreate) SaveX(ctx context.Context) *SubrunLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubrunLinkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubrunLinkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubrunLinkCreate) defaults() {
	if _, ok := _c.mutation.JoinPolicy(); !ok {
		v := subrunlink.DefaultJoinPolicy
		_c.mutation.SetJoinPolicy(v)
	}
	if _, ok := _c.mutation.FailurePolicy(); !ok {
		v := subrunlink.DefaultFailurePolicy
		_c.mutation.SetFailurePolicy(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := subrunlink.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubrunLinkCreate) check() error {
	if _, ok := _c.mutation.ParentRunID(); !ok {
		return &ValidationError{Name: "parent_run_id", err: errors.New(`ent: missing required field "SubrunLink.parent_run_id"`)}
	}
	if _, ok := _c.mutation.ChildRunID(); !ok {
		return &ValidationError{Name: "child_run_id", err: errors.New(`ent: missing required field "SubrunLink.child_run_id"`)}
	}
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "SubrunLink.group_id"`)}
	}
	if _, ok := _c.mutation.JoinPolicy(); !ok {
		return &ValidationError{Name: "join_policy", err: errors.New(`ent: missing required field "SubrunLink.join_policy"`)}
	}
	if v, ok := _c.mutation.JoinPolicy(); ok {
		if err := subrunlink.JoinPolicyValidator(v); err != nil {
			return &ValidationError{Name: "join_policy", err: fmt.Errorf(`ent: validator failed for field "SubrunLink.join_policy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FailurePolicy(); !ok {
		return &ValidationError{Name: "failure_policy", err: errors.New(`ent: missing required field "SubrunLink.failure_policy"`)}
	}
	if v, ok := _c.mutation.FailurePolicy(); ok {
		if err := subrunlink.FailurePolicyValidator(v); err != nil {
			return &ValidationError{Name: "failure_policy", err: fmt.Errorf(`ent: validator failed for field "SubrunLink.failure_policy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SubrunLink.created_at"`)}
	}
	if len(_c.mutation.ParentIDs()) == 0 {
		return &ValidationError{Name: "parent", err: errors.New(`ent: missing required edge "SubrunLink.parent"`)}
	}
	return nil
}

func (_c *SubrunLinkCreate) sqlSave(ctx context.Context) (*SubrunLink, error) {
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
			return nil, fmt.Errorf("unexpected SubrunLink.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubrunLinkCreate) createSpec() (*SubrunLink, *sqlgraph.CreateSpec) {
	var (
		_node = &SubrunLink{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subrunlink.Table, sqlgraph.NewFieldSpec(subrunlink.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ChildRunID(); ok {
		_spec.SetField(subrunlink.FieldChildRunID, field.TypeString, value)
		_node.ChildRunID = value
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(subrunlink.FieldGroupID, field.TypeString, value)
		_node.GroupID = value
	}
	if value, ok := _c.mutation.JoinPolicy(); ok {
		_spec.SetField(subrunlink.FieldJoinPolicy, field.TypeEnum, value)
		_node.JoinPolicy = value
	}
	if value, ok := _c.mutation.Quorum(); ok {
		_spec.SetField(subrunlink.FieldQuorum, field.TypeInt, value)
		_node.Quorum = &value
	}
	if value, ok := _c.mutation.TimeoutSeconds(); ok {
		_spec.SetField(subrunlink.FieldTimeoutSeconds, field.TypeInt, value)
		_node.TimeoutSeconds = &value
	}
	if value, ok := _c.mutation.FailurePolicy(); ok {
		_spec.SetField(subrunlink.FieldFailurePolicy, field.TypeEnum, value)
		_node.FailurePolicy = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(subrunlink.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(subrunlink.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subrunlink.ParentTable,
			Columns: []string{subrunlink.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ParentRunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SubrunLinkCreateBulk is the builder for creating many SubrunLink entities in bulk.
type SubrunLinkCreateBulk struct {
	config
	err      error
	builders []*SubrunLinkCreate
}

// Save creates the SubrunLink entities in the database.
func (_c *SubrunLinkCreateBulk) Save(ctx context.Context) ([]*SubrunLink, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubrunLink, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubrunLinkMutation)
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
func (_c *SubrunLinkCreateBulk) SaveX(ctx context.Context) []*SubrunLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubrunLinkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubrunLinkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
