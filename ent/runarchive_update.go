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
	"github.com/agentmaestro/agentmaestro/ent/runarchive"
)

// RunArchiveUpdate is the builder for updating RunArchive entities.
type RunArchiveUpdate struct {
	config
	hooks    []Hook
	mutation *RunArchiveMutation
}

// Where appends a list predicates to the RunArchiveUpdate builder.
func (_u *RunArchiveUpdate) Where(ps ...predicate.RunArchive) *RunArchiveUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *RunArchiveUpdate) SetSummary(v string) *RunArchiveUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *RunArchiveUpdate) SetNillableSummary(v *string) *RunArchiveUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *RunArchiveUpdate) SetNotes(v string) *RunArchiveUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *RunArchiveUpdate) SetNillableNotes(v *string) *RunArchiveUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// Mutation returns the RunArchiveMutation object of the builder.
func (_u *RunArchiveUpdate) Mutation() *RunArchiveMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunArchiveUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunArchiveUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunArchiveUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunArchiveUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunArchiveUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunArchive.run"`)
	}
	return nil
}

func (_u *RunArchiveUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runarchive.Table, runarchive.Columns, sqlgraph.NewFieldSpec(runarchive.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(runarchive.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(runarchive.FieldNotes, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runarchive.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunArchiveUpdateOne is the builder for updating a single RunArchive entity.
type RunArchiveUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunArchiveMutation
}

// SetSummary sets the "summary" field.
func (_u *RunArchiveUpdateOne) SetSummary(v string) *RunArchiveUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *RunArchiveUpdateOne) SetNillableSummary(v *string) *RunArchiveUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *RunArchiveUpdateOne) SetNotes(v string) *RunArchiveUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *RunArchiveUpdateOne) SetNillableNotes(v *string) *RunArchiveUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// Mutation returns the RunArchiveMutation object of the builder.
func (_u *RunArchiveUpdateOne) Mutation() *RunArchiveMutation {
	return _u.mutation
}

// Where appends a list predicates to the RunArchiveUpdate builder.
func (_u *RunArchiveUpdateOne) Where(ps ...predicate.RunArchive) *RunArchiveUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunArchiveUpdateOne) Select(field string, fields ...string) *RunArchiveUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RunArchive entity.
func (_u *RunArchiveUpdateOne) Save(ctx context.Context) (*RunArchive, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunArchiveUpdateOne) SaveX(ctx context.Context) *RunArchive {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunArchiveUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunArchiveUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunArchiveUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunArchive.run"`)
	}
	return nil
}

func (_u *RunArchiveUpdateOne) sqlSave(ctx context.Context) (_node *RunArchive, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runarchive.Table, runarchive.Columns, sqlgraph.NewFieldSpec(runarchive.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RunArchive.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runarchive.FieldID)
		for _, f := range fields {
			if !runarchive.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runarchive.FieldID {
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
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(runarchive.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(runarchive.FieldNotes, field.TypeString, value)
	}
	_node = &RunArchive{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runarchive.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
