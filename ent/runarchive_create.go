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
	"github.com/agentmaestro/agentmaestro/ent/runarchive"
)

// RunArchiveCreate is the builder for creating a RunArchive entity.
type RunArchiveCreate struct {
	config
	mutation *RunArchiveMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *RunArchiveCreate) SetRunID(v string) *RunArchiveCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetArchivePath sets the "archive_path" field.
func (_c *RunArchiveCreate) SetArchivePath(v string) *RunArchiveCreate {
	_c.mutation.SetArchivePath(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *RunArchiveCreate) SetSummary(v string) *RunArchiveCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *RunArchiveCreate) SetNillableSummary(v *string) *RunArchiveCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *RunArchiveCreate) SetNotes(v string) *RunArchiveCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *RunArchiveCreate) SetNillableNotes(v *string) *RunArchiveCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunArchiveCreate) SetCreatedAt(v time.Time) *RunArchiveCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunArchiveCreate) SetNillableCreatedAt(v *time.Time) *RunArchiveCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunArchiveCreate) SetID(v string) *RunArchiveCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the AgentRun entity.
func (_c *RunArchiveCreate) SetRun(v *AgentRun) *RunArchiveCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the RunArchiveMutation object of the builder.
func (_c *RunArchiveCreate) Mutation() *RunArchiveMutation {
	return _c.mutation
}

// Save creates the RunArchive in the database.
func (_c *RunArchiveCreate) Save(ctx context.Context) (*RunArchive, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunArchiveCreate) SaveX(ctx context.Context) *RunArchive {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunArchiveCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunArchiveCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunArchiveCreate) defaults() {
	if _, ok := _c.mutation.Summary(); !ok {
		v := runarchive.DefaultSummary
		_c.mutation.SetSummary(v)
	}
	if _, ok := _c.mutation.Notes(); !ok {
		v := runarchive.DefaultNotes
		_c.mutation.SetNotes(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := runarchive.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunArchiveCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "RunArchive.run_id"`)}
	}
	if _, ok := _c.mutation.ArchivePath(); !ok {
		return &ValidationError{Name: "archive_path", err: errors.New(`ent: missing required field "RunArchive.archive_path"`)}
	}
	if v, ok := _c.mutation.ArchivePath(); ok {
		if err := runarchive.ArchivePathValidator(v); err != nil {
			return &ValidationError{Name: "archive_path", err: fmt.Errorf(`ent: validator failed for field "RunArchive.archive_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "RunArchive.summary"`)}
	}
	if _, ok := _c.mutation.Notes(); !ok {
		return &ValidationError{Name: "notes", err: errors.New(`ent: missing required field "RunArchive.notes"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RunArchive.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "RunArchive.run"`)}
	}
	return nil
}

func (_c *RunArchiveCreate) sqlSave(ctx context.Context) (*RunArchive, error) {
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
			return nil, fmt.Errorf("unexpected RunArchive.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunArchiveCreate) createSpec() (*RunArchive, *sqlgraph.CreateSpec) {
	var (
		_node = &RunArchive{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(runarchive.Table, sqlgraph.NewFieldSpec(runarchive.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ArchivePath(); ok {
		_spec.SetField(runarchive.FieldArchivePath, field.TypeString, value)
		_node.ArchivePath = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(runarchive.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(runarchive.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(runarchive.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   runarchive.RunTable,
			Columns: []string{runarchive.RunColumn},
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
	return _node, _spec
}

// RunArchiveCreateBulk is the builder for creating many RunArchive entities in bulk.
type RunArchiveCreateBulk struct {
	config
	err      error
	builders []*RunArchiveCreate
}

// Save creates the RunArchive entities in the database.
func (_c *RunArchiveCreateBulk) Save(ctx context.Context) ([]*RunArchive, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RunArchive, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunArchiveMutation)
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
func (_c *RunArchiveCreateBulk) SaveX(ctx context.Context) []*RunArchive {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunArchiveCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunArchiveCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
