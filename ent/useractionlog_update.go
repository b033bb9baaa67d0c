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
	"github.com/agentmaestro/agentmaestro/ent/useractionlog"
)

// UserActionLogUpdate is the builder for updating UserActionLog entities.
type UserActionLogUpdate struct {
	config
	hooks    []Hook
	mutation *UserActionLogMutation
}

// Where appends a list predicates to the UserActionLogUpdate builder.
func (_u *UserActionLogUpdate) Where(ps ...predicate.UserActionLog) *UserActionLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDetail sets the "detail" field.
func (_u *UserActionLogUpdate) SetDetail(v map[string]interface{}) *UserActionLogUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *UserActionLogUpdate) ClearDetail() *UserActionLogUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// Mutation returns the UserActionLogMutation object of the builder.
func (_u *UserActionLogUpdate) Mutation() *UserActionLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserActionLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserActionLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserActionLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserActionLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserActionLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(useractionlog.Table, useractionlog.Columns, sqlgraph.NewFieldSpec(useractionlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(useractionlog.FieldDetail, field.TypeJSON, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(useractionlog.FieldDetail, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{useractionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserActionLogUpdateOne is the builder for updating a single UserActionLog entity.
type UserActionLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserActionLogMutation
}

// SetDetail sets the "detail" field.
func (_u *UserActionLogUpdateOne) SetDetail(v map[string]interface{}) *UserActionLogUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *UserActionLogUpdateOne) ClearDetail() *UserActionLogUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// Mutation returns the UserActionLogMutation object of the builder.
func (_u *UserActionLogUpdateOne) Mutation() *UserActionLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserActionLogUpdate builder.
func (_u *UserActionLogUpdateOne) Where(ps ...predicate.UserActionLog) *UserActionLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserActionLogUpdateOne) Select(field string, fields ...string) *UserActionLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserActionLog entity.
func (_u *UserActionLogUpdateOne) Save(ctx context.Context) (*UserActionLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserActionLogUpdateOne) SaveX(ctx context.Context) *UserActionLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserActionLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserActionLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserActionLogUpdateOne) sqlSave(ctx context.Context) (_node *UserActionLog, err error) {
	_spec := sqlgraph.NewUpdateSpec(useractionlog.Table, useractionlog.Columns, sqlgraph.NewFieldSpec(useractionlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserActionLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, useractionlog.FieldID)
		for _, f := range fields {
			if !useractionlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != useractionlog.FieldID {
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
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(useractionlog.FieldDetail, field.TypeJSON, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(useractionlog.FieldDetail, field.TypeJSON)
	}
	_node = &UserActionLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{useractionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
