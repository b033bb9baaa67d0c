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
	"github.com/agentmaestro/agentmaestro/ent/subrunlink"
)

// SubrunLinkUpdate is the builder for updating SubrunLink entities.
type SubrunLinkUpdate struct {
	config
	hooks    []Hook
	mutation *SubrunLinkMutation
}

// Where appends a list predicates to the SubrunLinkUpdate builder.
func (_u *SubrunLinkUpdate) Where(ps ...predicate.SubrunLink) *SubrunLinkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJoinPolicy sets the "join_policy" field.
func (_u *SubrunLinkUpdate) SetJoinPolicy(v subrunlink.JoinPolicy) *SubrunLinkUpdate {
	_u.mutation.SetJoinPolicy(v)
	return _u
}

// SetNillableJoinPolicy sets the "join_policy" field if the given value is not nil.
func (_u *SubrunLinkUpdate) SetNillableJoinPolicy(v *subrunlink.JoinPolicy) *SubrunLinkUpdate {
	if v != nil {
		_u.SetJoinPolicy(*v)
	}
	return _u
}

// SetQuorum sets the "quorum" field.
func (_u *SubrunLinkUpdate) SetQuorum(v int) *SubrunLinkUpdate {
	_u.mutation.ResetQuorum()
	_u.mutation.SetQuorum(v)
	return _u
}

// SetNillableQuorum sets the "quorum" field if the given value is not nil.
func (_u *SubrunLinkUpdate) SetNillableQuorum(v *int) *SubrunLinkUpdate {
	if v != nil {
		_u.SetQuorum(*v)
	}
	return _u
}

// AddQuorum adds value to the "quorum" field.
func (_u *SubrunLinkUpdate) AddQuorum(v int) *SubrunLinkUpdate {
	_u.mutation.AddQuorum(v)
	return _u
}

// ClearQuorum clears the value of the "quorum" field.
func (_u *SubrunLinkUpdate) ClearQuorum() *SubrunLinkUpdate {
	_u.mutation.ClearQuorum()
	return _u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_u *SubrunLinkUpdate) SetTimeoutSeconds(v int) *SubrunLinkUpdate {
	_u.mutation.ResetTimeoutSeconds()
	_u.mutation.SetTimeoutSeconds(v)
	return _u
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_u *SubrunLinkUpdate) SetNillableTimeoutSeconds(v *int) *SubrunLinkUpdate {
	if v != nil {
		_u.SetTimeoutSeconds(*v)
	}
	return _u
}

// AddTimeoutSeconds adds value to the "timeout_seconds" field.
func (_u *SubrunLinkUpdate) AddTimeoutSeconds(v int) *SubrunLinkUpdate {
	_u.mutation.AddTimeoutSeconds(v)
	return _u
}

// ClearTimeoutSeconds clears the value of the "timeout_seconds" field.
func (_u *SubrunLinkUpdate) ClearTimeoutSeconds() *SubrunLinkUpdate {
	_u.mutation.ClearTimeoutSeconds()
	return _u
}

// SetFailurePolicy sets the "failure_policy" field.
func (_u *SubrunLinkUpdate) SetFailurePolicy(v subrunlink.FailurePolicy) *SubrunLinkUpdate {
	_u.mutation.SetFailurePolicy(v)
	return _u
}

// SetNillableFailurePolicy sets the "failure_policy" field if the given value is not nil.
func (_u *SubrunLinkUpdate) SetNillableFailurePolicy(v *subrunlink.FailurePolicy) *SubrunLinkUpdate {
	if v != nil {
		_u.SetFailurePolicy(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SubrunLinkUpdate) SetMetadata(v map[string]interface{}) *SubrunLinkUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SubrunLinkUpdate) ClearMetadata() *SubrunLinkUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the SubrunLinkMutation object of the builder.
func (_u *SubrunLinkUpdate) Mutation() *SubrunLinkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubrunLinkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubrunLinkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubrunLinkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubrunLinkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubrunLinkUpdate) check() error {
	if v, ok := _u.mutation.JoinPolicy(); ok {
		if err := subrunlink.JoinPolicyValidator(v); err != nil {
			return &ValidationError{Name: "join_policy", err: fmt.Errorf(`ent: validator failed for field "SubrunLink.join_policy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailurePolicy(); ok {
		if err := subrunlink.FailurePolicyValidator(v); err != nil {
			return &ValidationError{Name: "failure_policy", err: fmt.Errorf(`ent: validator failed for field "SubrunLink.failure_policy": %w`, err)}
		}
	}
	if _u.mutation.ParentCleared() && len(_u.mutation.ParentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubrunLink.parent"`)
	}
	return nil
}

func (_u *SubrunLinkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subrunlink.Table, subrunlink.Columns, sqlgraph.NewFieldSpec(subrunlink.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JoinPolicy(); ok {
		_spec.SetField(subrunlink.FieldJoinPolicy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Quorum(); ok {
		_spec.SetField(subrunlink.FieldQuorum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuorum(); ok {
		_spec.AddField(subrunlink.FieldQuorum, field.TypeInt, value)
	}
	if _u.mutation.QuorumCleared() {
		_spec.ClearField(subrunlink.FieldQuorum, field.TypeInt)
	}
	if value, ok := _u.mutation.TimeoutSeconds(); ok {
		_spec.SetField(subrunlink.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSeconds(); ok {
		_spec.AddField(subrunlink.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if _u.mutation.TimeoutSecondsCleared() {
		_spec.ClearField(subrunlink.FieldTimeoutSeconds, field.TypeInt)
	}
	if value, ok := _u.mutation.FailurePolicy(); ok {
		_spec.SetField(subrunlink.FieldFailurePolicy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(subrunlink.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(subrunlink.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subrunlink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubrunLinkUpdateOne is the builder for updating a single SubrunLink entity.
type SubrunLinkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubrunLinkMutation
}

// SetJoinPolicy sets the "join_policy" field.
func (_u *SubrunLinkUpdateOne) SetJoinPolicy(v subrunlink.JoinPolicy) *SubrunLinkUpdateOne {
	_u.mutation.SetJoinPolicy(v)
	return _u
}

// SetNillableJoinPolicy sets the "join_policy" field if the given value is not nil.
func (_u *SubrunLinkUpdateOne) SetNillableJoinPolicy(v *subrunlink.JoinPolicy) *SubrunLinkUpdateOne {
	if v != nil {
		_u.SetJoinPolicy(*v)
	}
	return _u
}

// SetQuorum sets the "quorum" field.
func (_u *SubrunLinkUpdateOne) SetQuorum(v int) *SubrunLinkUpdateOne {
	_u.mutation.ResetQuorum()
	_u.mutation.SetQuorum(v)
	return _u
}

// SetNillableQuorum sets the "quorum" field if the given value is not nil.
func (_u *SubrunLinkUpdateOne) SetNillableQuorum(v *int) *SubrunLinkUpdateOne {
	if v != nil {
		_u.SetQuorum(*v)
	}
	return _u
}

// AddQuorum adds value to the "quorum" field.
func (_u *SubrunLinkUpdateOne) AddQuorum(v int) *SubrunLinkUpdateOne {
	_u.mutation.AddQuorum(v)
	return _u
}

// ClearQuorum clears the value of the "quorum" field.
func (_u *SubrunLinkUpdateOne) ClearQuorum() *SubrunLinkUpdateOne {
	_u.mutation.ClearQuorum()
	return _u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_u *SubrunLinkUpdateOne) SetTimeoutSeconds(v int) *SubrunLinkUpdateOne {
	_u.mutation.ResetTimeoutSeconds()
	_u.mutation.SetTimeoutSeconds(v)
	return _u
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_u *SubrunLinkUpdateOne) SetNillableTimeoutSeconds(v *int) *SubrunLinkUpdateOne {
	if v != nil {
		_u.SetTimeoutSeconds(*v)
	}
	return _u
}

// AddTimeoutSeconds adds value to the "timeout_seconds" field.
func (_u *SubrunLinkUpdateOne) AddTimeoutSeconds(v int) *SubrunLinkUpdateOne {
	_u.mutation.AddTimeoutSeconds(v)
	return _u
}

// ClearTimeoutSeconds clears the value of the "timeout_seconds" field.
func (_u *SubrunLinkUpdateOne) ClearTimeoutSeconds() *SubrunLinkUpdateOne {
	_u.mutation.ClearTimeoutSeconds()
	return _u
}

// SetFailurePolicy sets the "failure_policy" field.
func (_u *SubrunLinkUpdateOne) SetFailurePolicy(v subrunlink.FailurePolicy) *SubrunLinkUpdateOne {
	_u.mutation.SetFailurePolicy(v)
	return _u
}

// SetNillableFailurePolicy sets the "failure_policy" field if the given value is not nil.
func (_u *SubrunLinkUpdateOne) SetNillableFailurePolicy(v *subrunlink.FailurePolicy) *SubrunLinkUpdateOne {
	if v != nil {
		_u.SetFailurePolicy(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SubrunLinkUpdateOne) SetMetadata(v map[string]interface{}) *SubrunLinkUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SubrunLinkUpdateOne) ClearMetadata() *SubrunLinkUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the SubrunLinkMutation object of the builder.
func (_u *SubrunLinkUpdateOne) Mutation() *SubrunLinkMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubrunLinkUpdate builder.
func (_u *SubrunLinkUpdateOne) Where(ps ...predicate.SubrunLink) *SubrunLinkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubrunLinkUpdateOne) Select(field string, fields ...string) *SubrunLinkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubrunLink entity.
func (_u *SubrunLinkUpdateOne) Save(ctx context.Context) (*SubrunLink, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubrunLinkUpdateOne) SaveX(ctx context.Context) *SubrunLink {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubrunLinkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubrunLinkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubrunLinkUpdateOne) check() error {
	if v, ok := _u.mutation.JoinPolicy(); ok {
		if err := subrunlink.JoinPolicyValidator(v); err != nil {
			return &ValidationError{Name: "join_policy", err: fmt.Errorf(`ent: validator failed for field "SubrunLink.join_policy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailurePolicy(); ok {
		if err := subrunlink.FailurePolicyValidator(v); err != nil {
			return &ValidationError{Name: "failure_policy", err: fmt.Errorf(`ent: validator failed for field "SubrunLink.failure_policy": %w`, err)}
		}
	}
	if _u.mutation.ParentCleared() && len(_u.mutation.ParentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubrunLink.parent"`)
	}
	return nil
}

func (_u *SubrunLinkUpdateOne) sqlSave(ctx context.Context) (_node *SubrunLink, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subrunlink.Table, subrunlink.Columns, sqlgraph.NewFieldSpec(subrunlink.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubrunLink.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subrunlink.FieldID)
		for _, f := range fields {
			if !subrunlink.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subrunlink.FieldID {
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
	if value, ok := _u.mutation.JoinPolicy(); ok {
		_spec.SetField(subrunlink.FieldJoinPolicy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Quorum(); ok {
		_spec.SetField(subrunlink.FieldQuorum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuorum(); ok {
		_spec.AddField(subrunlink.FieldQuorum, field.TypeInt, value)
	}
	if _u.mutation.QuorumCleared() {
		_spec.ClearField(subrunlink.FieldQuorum, field.TypeInt)
	}
	if value, ok := _u.mutation.TimeoutSeconds(); ok {
		_spec.SetField(subrunlink.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSeconds(); ok {
		_spec.AddField(subrunlink.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if _u.mutation.TimeoutSecondsCleared() {
		_spec.ClearField(subrunlink.FieldTimeoutSeconds, field.TypeInt)
	}
	if value, ok := _u.mutation.FailurePolicy(); ok {
		_spec.SetField(subrunlink.FieldFailurePolicy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(subrunlink.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(subrunlink.FieldMetadata, field.TypeJSON)
	}
	_node = &SubrunLink{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subrunlink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
