// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentmaestro/agentmaestro/ent/predicate"
	"github.com/agentmaestro/agentmaestro/ent/toolcall"
)

// ToolCallUpdate is the builder for updating ToolCall entities.
type ToolCallUpdate struct {
	config
	hooks    []Hook
	mutation *ToolCallMutation
}

// Where appends a list predicates to the ToolCallUpdate builder.
func (_u *ToolCallUpdate) Where(ps ...predicate.ToolCall) *ToolCallUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetArgs sets the "args" field.
func (_u *ToolCallUpdate) SetArgs(v map[string]interface{}) *ToolCallUpdate {
	_u.mutation.SetArgs(v)
	return _u
}

// ClearArgs clears the value of the "args" field.
func (_u *ToolCallUpdate) ClearArgs() *ToolCallUpdate {
	_u.mutation.ClearArgs()
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *ToolCallUpdate) SetRiskLevel(v toolcall.RiskLevel) *ToolCallUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableRiskLevel(v *toolcall.RiskLevel) *ToolCallUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetRequiresApproval sets the "requires_approval" field.
func (_u *ToolCallUpdate) SetRequiresApproval(v bool) *ToolCallUpdate {
	_u.mutation.SetRequiresApproval(v)
	return _u
}

// SetNillableRequiresApproval sets the "requires_approval" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableRequiresApproval(v *bool) *ToolCallUpdate {
	if v != nil {
		_u.SetRequiresApproval(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ToolCallUpdate) SetStatus(v toolcall.Status) *ToolCallUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableStatus(v *toolcall.Status) *ToolCallUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *ToolCallUpdate) SetApprovedBy(v string) *ToolCallUpdate {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableApprovedBy(v *string) *ToolCallUpdate {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *ToolCallUpdate) ClearApprovedBy() *ToolCallUpdate {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *ToolCallUpdate) SetApprovedAt(v time.Time) *ToolCallUpdate {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableApprovedAt(v *time.Time) *ToolCallUpdate {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *ToolCallUpdate) ClearApprovedAt() *ToolCallUpdate {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ToolCallUpdate) SetStartedAt(v time.Time) *ToolCallUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableStartedAt(v *time.Time) *ToolCallUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ToolCallUpdate) ClearStartedAt() *ToolCallUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *ToolCallUpdate) SetEndedAt(v time.Time) *ToolCallUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableEndedAt(v *time.Time) *ToolCallUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *ToolCallUpdate) ClearEndedAt() *ToolCallUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetExitCode sets the "exit_code" field.
func (_u *ToolCallUpdate) SetExitCode(v int) *ToolCallUpdate {
	_u.mutation.ResetExitCode()
	_u.mutation.SetExitCode(v)
	return _u
}

// SetNillableExitCode sets the "exit_code" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableExitCode(v *int) *ToolCallUpdate {
	if v != nil {
		_u.SetExitCode(*v)
	}
	return _u
}

// AddExitCode adds value to the "exit_code" field.
func (_u *ToolCallUpdate) AddExitCode(v int) *ToolCallUpdate {
	_u.mutation.AddExitCode(v)
	return _u
}

// ClearExitCode clears the value of the "exit_code" field.
func (_u *ToolCallUpdate) ClearExitCode() *ToolCallUpdate {
	_u.mutation.ClearExitCode()
	return _u
}

// SetStdout sets the "stdout" field.
func (_u *ToolCallUpdate) SetStdout(v string) *ToolCallUpdate {
	_u.mutation.SetStdout(v)
	return _u
}

// SetNillableStdout sets the "stdout" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableStdout(v *string) *ToolCallUpdate {
	if v != nil {
		_u.SetStdout(*v)
	}
	return _u
}

// SetStderr sets the "stderr" field.
func (_u *ToolCallUpdate) SetStderr(v string) *ToolCallUpdate {
	_u.mutation.SetStderr(v)
	return _u
}

// SetNillableStderr sets the "stderr" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableStderr(v *string) *ToolCallUpdate {
	if v != nil {
		_u.SetStderr(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *ToolCallUpdate) SetResult(v map[string]interface{}) *ToolCallUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ToolCallUpdate) ClearResult() *ToolCallUpdate {
	_u.mutation.ClearResult()
	return _u
}

// Mutation returns the ToolCallMutation object of the builder.
func (_u *ToolCallUpdate) Mutation() *ToolCallMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ToolCallUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolCallUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ToolCallUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolCallUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolCallUpdate) check() error {
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := toolcall.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "ToolCall.risk_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := toolcall.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolCall.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToolCall.run"`)
	}
	if _u.mutation.StepCleared() && len(_u.mutation.StepIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToolCall.step"`)
	}
	return nil
}

func (_u *ToolCallUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolcall.Table, toolcall.Columns, sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Args(); ok {
		_spec.SetField(toolcall.FieldArgs, field.TypeJSON, value)
	}
	if _u.mutation.ArgsCleared() {
		_spec.ClearField(toolcall.FieldArgs, field.TypeJSON)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(toolcall.FieldRiskLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RequiresApproval(); ok {
		_spec.SetField(toolcall.FieldRequiresApproval, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(toolcall.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(toolcall.FieldApprovedBy, field.TypeString, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(toolcall.FieldApprovedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(toolcall.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(toolcall.FieldApprovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(toolcall.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(toolcall.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(toolcall.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(toolcall.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExitCode(); ok {
		_spec.SetField(toolcall.FieldExitCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExitCode(); ok {
		_spec.AddField(toolcall.FieldExitCode, field.TypeInt, value)
	}
	if _u.mutation.ExitCodeCleared() {
		_spec.ClearField(toolcall.FieldExitCode, field.TypeInt)
	}
	if value, ok := _u.mutation.Stdout(); ok {
		_spec.SetField(toolcall.FieldStdout, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stderr(); ok {
		_spec.SetField(toolcall.FieldStderr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(toolcall.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(toolcall.FieldResult, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolcall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ToolCallUpdateOne is the builder for updating a single ToolCall entity.
type ToolCallUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ToolCallMutation
}

// SetArgs sets the "args" field.
func (_u *ToolCallUpdateOne) SetArgs(v map[string]interface{}) *ToolCallUpdateOne {
	_u.mutation.SetArgs(v)
	return _u
}

// ClearArgs clears the value of the "args" field.
func (_u *ToolCallUpdateOne) ClearArgs() *ToolCallUpdateOne {
	_u.mutation.ClearArgs()
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *ToolCallUpdateOne) SetRiskLevel(v toolcall.RiskLevel) *ToolCallUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableRiskLevel(v *toolcall.RiskLevel) *ToolCallUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetRequiresApproval sets the "requires_approval" field.
func (_u *ToolCallUpdateOne) SetRequiresApproval(v bool) *ToolCallUpdateOne {
	_u.mutation.SetRequiresApproval(v)
	return _u
}

// SetNillableRequiresApproval sets the "requires_approval" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableRequiresApproval(v *bool) *ToolCallUpdateOne {
	if v != nil {
		_u.SetRequiresApproval(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ToolCallUpdateOne) SetStatus(v toolcall.Status) *ToolCallUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableStatus(v *toolcall.Status) *ToolCallUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *ToolCallUpdateOne) SetApprovedBy(v string) *ToolCallUpdateOne {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableApprovedBy(v *string) *ToolCallUpdateOne {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *ToolCallUpdateOne) ClearApprovedBy() *ToolCallUpdateOne {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *ToolCallUpdateOne) SetApprovedAt(v time.Time) *ToolCallUpdateOne {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableApprovedAt(v *time.Time) *ToolCallUpdateOne {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *ToolCallUpdateOne) ClearApprovedAt() *ToolCallUpdateOne {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ToolCallUpdateOne) SetStartedAt(v time.Time) *ToolCallUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableStartedAt(v *time.Time) *ToolCallUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ToolCallUpdateOne) ClearStartedAt() *ToolCallUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *ToolCallUpdateOne) SetEndedAt(v time.Time) *ToolCallUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableEndedAt(v *time.Time) *ToolCallUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *ToolCallUpdateOne) ClearEndedAt() *ToolCallUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetExitCode sets the "exit_code" field.
func (_u *ToolCallUpdateOne) SetExitCode(v int) *ToolCallUpdateOne {
	_u.mutation.ResetExitCode()
	_u.mutation.SetExitCode(v)
	return _u
}

// SetNillableExitCode sets the "exit_code" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableExitCode(v *int) *ToolCallUpdateOne {
	if v != nil {
		_u.SetExitCode(*v)
	}
	return _u
}

// AddExitCode adds value to the "exit_code" field.
func (_u *ToolCallUpdateOne) AddExitCode(v int) *ToolCallUpdateOne {
	_u.mutation.AddExitCode(v)
	return _u
}

// ClearExitCode clears the value of the "exit_code" field.
func (_u *ToolCallUpdateOne) ClearExitCode() *ToolCallUpdateOne {
	_u.mutation.ClearExitCode()
	return _u
}

// SetStdout sets the "stdout" field.
func (_u *ToolCallUpdateOne) SetStdout(v string) *ToolCallUpdateOne {
	_u.mutation.SetStdout(v)
	return _u
}

// SetNillableStdout sets the "stdout" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableStdout(v *string) *ToolCallUpdateOne {
	if v != nil {
		_u.SetStdout(*v)
	}
	return _u
}

// SetStderr sets the "stderr" field.
func (_u *ToolCallUpdateOne) SetStderr(v string) *ToolCallUpdateOne {
	_u.mutation.SetStderr(v)
	return _u
}

// SetNillableStderr sets the "stderr" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableStderr(v *string) *ToolCallUpdateOne {
	if v != nil {
		_u.SetStderr(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *ToolCallUpdateOne) SetResult(v map[string]interface{}) *ToolCallUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ToolCallUpdateOne) ClearResult() *ToolCallUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// Mutation returns the ToolCallMutation object of the builder.
func (_u *ToolCallUpdateOne) Mutation() *ToolCallMutation {
	return _u.mutation
}

// Where appends a list predicates to the ToolCallUpdate builder.
func (_u *ToolCallUpdateOne) Where(ps ...predicate.ToolCall) *ToolCallUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ToolCallUpdateOne) Select(field string, fields ...string) *ToolCallUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ToolCall entity.
func (_u *ToolCallUpdateOne) Save(ctx context.Context) (*ToolCall, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolCallUpdateOne) SaveX(ctx context.Context) *ToolCall {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ToolCallUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolCallUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolCallUpdateOne) check() error {
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := toolcall.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "ToolCall.risk_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := toolcall.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolCall.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToolCall.run"`)
	}
	if _u.mutation.StepCleared() && len(_u.mutation.StepIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToolCall.step"`)
	}
	return nil
}

func (_u *ToolCallUpdateOne) sqlSave(ctx context.Context) (_node *ToolCall, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolcall.Table, toolcall.Columns, sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ToolCall.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, toolcall.FieldID)
		for _, f := range fields {
			if !toolcall.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != toolcall.FieldID {
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
	if value, ok := _u.mutation.Args(); ok {
		_spec.SetField(toolcall.FieldArgs, field.TypeJSON, value)
	}
	if _u.mutation.ArgsCleared() {
		_spec.ClearField(toolcall.FieldArgs, field.TypeJSON)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(toolcall.FieldRiskLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RequiresApproval(); ok {
		_spec.SetField(toolcall.FieldRequiresApproval, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(toolcall.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(toolcall.FieldApprovedBy, field.TypeString, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(toolcall.FieldApprovedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(toolcall.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(toolcall.FieldApprovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(toolcall.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(toolcall.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(toolcall.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(toolcall.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExitCode(); ok {
		_spec.SetField(toolcall.FieldExitCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExitCode(); ok {
		_spec.AddField(toolcall.FieldExitCode, field.TypeInt, value)
	}
	if _u.mutation.ExitCodeCleared() {
		_spec.ClearField(toolcall.FieldExitCode, field.TypeInt)
	}
	if value, ok := _u.mutation.Stdout(); ok {
		_spec.SetField(toolcall.FieldStdout, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stderr(); ok {
		_spec.SetField(toolcall.FieldStderr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(toolcall.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(toolcall.FieldResult, field.TypeJSON)
	}
	_node = &ToolCall{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolcall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
