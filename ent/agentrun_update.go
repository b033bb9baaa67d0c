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
	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/ent/agentstep"
	"github.com/agentmaestro/agentmaestro/ent/predicate"
	"github.com/agentmaestro/agentmaestro/ent/runarchive"
	"github.com/agentmaestro/agentmaestro/ent/runevent"
	"github.com/agentmaestro/agentmaestro/ent/subrunlink"
	"github.com/agentmaestro/agentmaestro/ent/toolcall"
)

// AgentRunUpdate is the builder for updating AgentRun entities.
type AgentRunUpdate struct {
	config
	hooks    []Hook
	mutation *AgentRunMutation
}

// Where appends a list predicates to the AgentRunUpdate builder.
func (_u *AgentRunUpdate) Where(ps ...predicate.AgentRun) *AgentRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStartedBy sets the "started_by" field.
func (_u *AgentRunUpdate) SetStartedBy(v string) *AgentRunUpdate {
	_u.mutation.SetStartedBy(v)
	return _u
}

// SetNillableStartedBy sets the "started_by" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableStartedBy(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetStartedBy(*v)
	}
	return _u
}

// ClearStartedBy clears the value of the "started_by" field.
func (_u *AgentRunUpdate) ClearStartedBy() *AgentRunUpdate {
	_u.mutation.ClearStartedBy()
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *AgentRunUpdate) SetCorrelationID(v string) *AgentRunUpdate {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableCorrelationID(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentRunUpdate) SetStatus(v agentrun.Status) *AgentRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableStatus(v *agentrun.Status) *AgentRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *AgentRunUpdate) SetChannel(v agentrun.Channel) *AgentRunUpdate {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableChannel(v *agentrun.Channel) *AgentRunUpdate {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *AgentRunUpdate) SetCancelRequested(v bool) *AgentRunUpdate {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableCancelRequested(v *bool) *AgentRunUpdate {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetMaxSteps sets the "max_steps" field.
func (_u *AgentRunUpdate) SetMaxSteps(v int) *AgentRunUpdate {
	_u.mutation.ResetMaxSteps()
	_u.mutation.SetMaxSteps(v)
	return _u
}

// SetNillableMaxSteps sets the "max_steps" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableMaxSteps(v *int) *AgentRunUpdate {
	if v != nil {
		_u.SetMaxSteps(*v)
	}
	return _u
}

// AddMaxSteps adds value to the "max_steps" field.
func (_u *AgentRunUpdate) AddMaxSteps(v int) *AgentRunUpdate {
	_u.mutation.AddMaxSteps(v)
	return _u
}

// SetMaxToolCalls sets the "max_tool_calls" field.
func (_u *AgentRunUpdate) SetMaxToolCalls(v int) *AgentRunUpdate {
	_u.mutation.ResetMaxToolCalls()
	_u.mutation.SetMaxToolCalls(v)
	return _u
}

// SetNillableMaxToolCalls sets the "max_tool_calls" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableMaxToolCalls(v *int) *AgentRunUpdate {
	if v != nil {
		_u.SetMaxToolCalls(*v)
	}
	return _u
}

// AddMaxToolCalls adds value to the "max_tool_calls" field.
func (_u *AgentRunUpdate) AddMaxToolCalls(v int) *AgentRunUpdate {
	_u.mutation.AddMaxToolCalls(v)
	return _u
}

// SetCurrentStepIndex sets the "current_step_index" field.
func (_u *AgentRunUpdate) SetCurrentStepIndex(v int) *AgentRunUpdate {
	_u.mutation.ResetCurrentStepIndex()
	_u.mutation.SetCurrentStepIndex(v)
	return _u
}

// SetNillableCurrentStepIndex sets the "current_step_index" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableCurrentStepIndex(v *int) *AgentRunUpdate {
	if v != nil {
		_u.SetCurrentStepIndex(*v)
	}
	return _u
}

// AddCurrentStepIndex adds value to the "current_step_index" field.
func (_u *AgentRunUpdate) AddCurrentStepIndex(v int) *AgentRunUpdate {
	_u.mutation.AddCurrentStepIndex(v)
	return _u
}

// SetLockedBy sets the "locked_by" field.
func (_u *AgentRunUpdate) SetLockedBy(v string) *AgentRunUpdate {
	_u.mutation.SetLockedBy(v)
	return _u
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableLockedBy(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetLockedBy(*v)
	}
	return _u
}

// ClearLockedBy clears the value of the "locked_by" field.
func (_u *AgentRunUpdate) ClearLockedBy() *AgentRunUpdate {
	_u.mutation.ClearLockedBy()
	return _u
}

// SetLockedAt sets the "locked_at" field.
func (_u *AgentRunUpdate) SetLockedAt(v time.Time) *AgentRunUpdate {
	_u.mutation.SetLockedAt(v)
	return _u
}

// SetNillableLockedAt sets the "locked_at" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableLockedAt(v *time.Time) *AgentRunUpdate {
	if v != nil {
		_u.SetLockedAt(*v)
	}
	return _u
}

// ClearLockedAt clears the value of the "locked_at" field.
func (_u *AgentRunUpdate) ClearLockedAt() *AgentRunUpdate {
	_u.mutation.ClearLockedAt()
	return _u
}

// SetLockExpiresAt sets the "lock_expires_at" field.
func (_u *AgentRunUpdate) SetLockExpiresAt(v time.Time) *AgentRunUpdate {
	_u.mutation.SetLockExpiresAt(v)
	return _u
}

// SetNillableLockExpiresAt sets the "lock_expires_at" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableLockExpiresAt(v *time.Time) *AgentRunUpdate {
	if v != nil {
		_u.SetLockExpiresAt(*v)
	}
	return _u
}

// ClearLockExpiresAt clears the value of the "lock_expires_at" field.
func (_u *AgentRunUpdate) ClearLockExpiresAt() *AgentRunUpdate {
	_u.mutation.ClearLockExpiresAt()
	return _u
}

// SetLockedTaskID sets the "locked_task_id" field.
func (_u *AgentRunUpdate) SetLockedTaskID(v string) *AgentRunUpdate {
	_u.mutation.SetLockedTaskID(v)
	return _u
}

// SetNillableLockedTaskID sets the "locked_task_id" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableLockedTaskID(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetLockedTaskID(*v)
	}
	return _u
}

// ClearLockedTaskID clears the value of the "locked_task_id" field.
func (_u *AgentRunUpdate) ClearLockedTaskID() *AgentRunUpdate {
	_u.mutation.ClearLockedTaskID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentRunUpdate) SetStartedAt(v time.Time) *AgentRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableStartedAt(v *time.Time) *AgentRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AgentRunUpdate) ClearStartedAt() *AgentRunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *AgentRunUpdate) SetEndedAt(v time.Time) *AgentRunUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableEndedAt(v *time.Time) *AgentRunUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *AgentRunUpdate) ClearEndedAt() *AgentRunUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *AgentRunUpdate) SetArchivedAt(v time.Time) *AgentRunUpdate {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableArchivedAt(v *time.Time) *AgentRunUpdate {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *AgentRunUpdate) ClearArchivedAt() *AgentRunUpdate {
	_u.mutation.ClearArchivedAt()
	return _u
}

// SetErrorSummary sets the "error_summary" field.
func (_u *AgentRunUpdate) SetErrorSummary(v string) *AgentRunUpdate {
	_u.mutation.SetErrorSummary(v)
	return _u
}

// SetNillableErrorSummary sets the "error_summary" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableErrorSummary(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetErrorSummary(*v)
	}
	return _u
}

// ClearErrorSummary clears the value of the "error_summary" field.
func (_u *AgentRunUpdate) ClearErrorSummary() *AgentRunUpdate {
	_u.mutation.ClearErrorSummary()
	return _u
}

// SetInputText sets the "input_text" field.
func (_u *AgentRunUpdate) SetInputText(v string) *AgentRunUpdate {
	_u.mutation.SetInputText(v)
	return _u
}

// SetNillableInputText sets the "input_text" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableInputText(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetInputText(*v)
	}
	return _u
}

// SetFinalText sets the "final_text" field.
func (_u *AgentRunUpdate) SetFinalText(v string) *AgentRunUpdate {
	_u.mutation.SetFinalText(v)
	return _u
}

// SetNillableFinalText sets the "final_text" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableFinalText(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetFinalText(*v)
	}
	return _u
}

// ClearFinalText clears the value of the "final_text" field.
func (_u *AgentRunUpdate) ClearFinalText() *AgentRunUpdate {
	_u.mutation.ClearFinalText()
	return _u
}

// AddStepIDs adds the "steps" edge to the AgentStep entity by IDs.
func (_u *AgentRunUpdate) AddStepIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the AgentStep entity.
func (_u *AgentRunUpdate) AddSteps(v ...*AgentStep) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddEventIDs adds the "events" edge to the RunEvent entity by IDs.
func (_u *AgentRunUpdate) AddEventIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the RunEvent entity.
func (_u *AgentRunUpdate) AddEvents(v ...*RunEvent) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddToolCallIDs adds the "tool_calls" edge to the ToolCall entity by IDs.
func (_u *AgentRunUpdate) AddToolCallIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.AddToolCallIDs(ids...)
	return _u
}

// AddToolCalls adds the "tool_calls" edges to the ToolCall entity.
func (_u *AgentRunUpdate) AddToolCalls(v ...*ToolCall) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolCallIDs(ids...)
}

// AddChildLinkIDs adds the "child_links" edge to the SubrunLink entity by IDs.
func (_u *AgentRunUpdate) AddChildLinkIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.AddChildLinkIDs(ids...)
	return _u
}

// AddChildLinks adds the "child_links" edges to the SubrunLink entity.
func (_u *AgentRunUpdate) AddChildLinks(v ...*SubrunLink) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildLinkIDs(ids...)
}

// AddArchiveIDs adds the "archives" edge to the RunArchive entity by IDs.
func (_u *AgentRunUpdate) AddArchiveIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.AddArchiveIDs(ids...)
	return _u
}

// AddArchives adds the "archives" edges to the RunArchive entity.
func (_u *AgentRunUpdate) AddArchives(v ...*RunArchive) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArchiveIDs(ids...)
}

// Mutation returns the AgentRunMutation object of the builder.
func (_u *AgentRunUpdate) Mutation() *AgentRunMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the AgentStep entity.
func (_u *AgentRunUpdate) ClearSteps() *AgentRunUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to AgentStep entities by IDs.
func (_u *AgentRunUpdate) RemoveStepIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to AgentStep entities.
func (_u *AgentRunUpdate) RemoveSteps(v ...*AgentStep) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearEvents clears all "events" edges to the RunEvent entity.
func (_u *AgentRunUpdate) ClearEvents() *AgentRunUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to RunEvent entities by IDs.
func (_u *AgentRunUpdate) RemoveEventIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to RunEvent entities.
func (_u *AgentRunUpdate) RemoveEvents(v ...*RunEvent) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearToolCalls clears all "tool_calls" edges to the ToolCall entity.
func (_u *AgentRunUpdate) ClearToolCalls() *AgentRunUpdate {
	_u.mutation.ClearToolCalls()
	return _u
}

// RemoveToolCallIDs removes the "tool_calls" edge to ToolCall entities by IDs.
func (_u *AgentRunUpdate) RemoveToolCallIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.RemoveToolCallIDs(ids...)
	return _u
}

// RemoveToolCalls removes "tool_calls" edges to ToolCall entities.
func (_u *AgentRunUpdate) RemoveToolCalls(v ...*ToolCall) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolCallIDs(ids...)
}

// ClearChildLinks clears all "child_links" edges to the SubrunLink entity.
func (_u *AgentRunUpdate) ClearChildLinks() *AgentRunUpdate {
	_u.mutation.ClearChildLinks()
	return _u
}

// RemoveChildLinkIDs removes the "child_links" edge to SubrunLink entities by IDs.
func (_u *AgentRunUpdate) RemoveChildLinkIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.RemoveChildLinkIDs(ids...)
	return _u
}

// RemoveChildLinks removes "child_links" edges to SubrunLink entities.
func (_u *AgentRunUpdate) RemoveChildLinks(v ...*SubrunLink) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildLinkIDs(ids...)
}

// ClearArchives clears all "archives" edges to the RunArchive entity.
func (_u *AgentRunUpdate) ClearArchives() *AgentRunUpdate {
	_u.mutation.ClearArchives()
	return _u
}

// RemoveArchiveIDs removes the "archives" edge to RunArchive entities by IDs.
func (_u *AgentRunUpdate) RemoveArchiveIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.RemoveArchiveIDs(ids...)
	return _u
}

// RemoveArchives removes "archives" edges to RunArchive entities.
func (_u *AgentRunUpdate) RemoveArchives(v ...*RunArchive) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArchiveIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRun.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Channel(); ok {
		if err := agentrun.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`ent: validator failed for field "AgentRun.channel": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentRun.workspace"`)
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentRun.agent"`)
	}
	return nil
}

func (_u *AgentRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrun.Table, agentrun.Columns, sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ParentRunIDCleared() {
		_spec.ClearField(agentrun.FieldParentRunID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedBy(); ok {
		_spec.SetField(agentrun.FieldStartedBy, field.TypeString, value)
	}
	if _u.mutation.StartedByCleared() {
		_spec.ClearField(agentrun.FieldStartedBy, field.TypeString)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(agentrun.FieldCorrelationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(agentrun.FieldChannel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(agentrun.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxSteps(); ok {
		_spec.SetField(agentrun.FieldMaxSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxSteps(); ok {
		_spec.AddField(agentrun.FieldMaxSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxToolCalls(); ok {
		_spec.SetField(agentrun.FieldMaxToolCalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxToolCalls(); ok {
		_spec.AddField(agentrun.FieldMaxToolCalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStepIndex(); ok {
		_spec.SetField(agentrun.FieldCurrentStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStepIndex(); ok {
		_spec.AddField(agentrun.FieldCurrentStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LockedBy(); ok {
		_spec.SetField(agentrun.FieldLockedBy, field.TypeString, value)
	}
	if _u.mutation.LockedByCleared() {
		_spec.ClearField(agentrun.FieldLockedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LockedAt(); ok {
		_spec.SetField(agentrun.FieldLockedAt, field.TypeTime, value)
	}
	if _u.mutation.LockedAtCleared() {
		_spec.ClearField(agentrun.FieldLockedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LockExpiresAt(); ok {
		_spec.SetField(agentrun.FieldLockExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LockExpiresAtCleared() {
		_spec.ClearField(agentrun.FieldLockExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LockedTaskID(); ok {
		_spec.SetField(agentrun.FieldLockedTaskID, field.TypeString, value)
	}
	if _u.mutation.LockedTaskIDCleared() {
		_spec.ClearField(agentrun.FieldLockedTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(agentrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(agentrun.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(agentrun.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(agentrun.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(agentrun.FieldArchivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorSummary(); ok {
		_spec.SetField(agentrun.FieldErrorSummary, field.TypeString, value)
	}
	if _u.mutation.ErrorSummaryCleared() {
		_spec.ClearField(agentrun.FieldErrorSummary, field.TypeString)
	}
	if value, ok := _u.mutation.InputText(); ok {
		_spec.SetField(agentrun.FieldInputText, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinalText(); ok {
		_spec.SetField(agentrun.FieldFinalText, field.TypeString, value)
	}
	if _u.mutation.FinalTextCleared() {
		_spec.ClearField(agentrun.FieldFinalText, field.TypeString)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.StepsTable,
			Columns: []string{agentrun.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.StepsTable,
			Columns: []string{agentrun.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.StepsTable,
			Columns: []string{agentrun.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.EventsTable,
			Columns: []string{agentrun.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.EventsTable,
			Columns: []string{agentrun.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.EventsTable,
			Columns: []string{agentrun.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ToolCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ToolCallsTable,
			Columns: []string{agentrun.ToolCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedToolCallsIDs(); len(nodes) > 0 && !_u.mutation.ToolCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ToolCallsTable,
			Columns: []string{agentrun.ToolCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolCallsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ToolCallsTable,
			Columns: []string{agentrun.ToolCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChildLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ChildLinksTable,
			Columns: []string{agentrun.ChildLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subrunlink.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildLinksIDs(); len(nodes) > 0 && !_u.mutation.ChildLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ChildLinksTable,
			Columns: []string{agentrun.ChildLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subrunlink.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ChildLinksTable,
			Columns: []string{agentrun.ChildLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subrunlink.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArchivesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ArchivesTable,
			Columns: []string{agentrun.ArchivesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runarchive.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArchivesIDs(); len(nodes) > 0 && !_u.mutation.ArchivesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ArchivesTable,
			Columns: []string{agentrun.ArchivesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runarchive.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArchivesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ArchivesTable,
			Columns: []string{agentrun.ArchivesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runarchive.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentRunUpdateOne is the builder for updating a single AgentRun entity.
type AgentRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentRunMutation
}

// SetStartedBy sets the "started_by" field.
func (_u *AgentRunUpdateOne) SetStartedBy(v string) *AgentRunUpdateOne {
	_u.mutation.SetStartedBy(v)
	return _u
}

// SetNillableStartedBy sets the "started_by" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableStartedBy(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetStartedBy(*v)
	}
	return _u
}

// ClearStartedBy clears the value of the "started_by" field.
func (_u *AgentRunUpdateOne) ClearStartedBy() *AgentRunUpdateOne {
	_u.mutation.ClearStartedBy()
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *AgentRunUpdateOne) SetCorrelationID(v string) *AgentRunUpdateOne {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableCorrelationID(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentRunUpdateOne) SetStatus(v agentrun.Status) *AgentRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableStatus(v *agentrun.Status) *AgentRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *AgentRunUpdateOne) SetChannel(v agentrun.Channel) *AgentRunUpdateOne {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableChannel(v *agentrun.Channel) *AgentRunUpdateOne {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *AgentRunUpdateOne) SetCancelRequested(v bool) *AgentRunUpdateOne {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableCancelRequested(v *bool) *AgentRunUpdateOne {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetMaxSteps sets the "max_steps" field.
func (_u *AgentRunUpdateOne) SetMaxSteps(v int) *AgentRunUpdateOne {
	_u.mutation.ResetMaxSteps()
	_u.mutation.SetMaxSteps(v)
	return _u
}

// SetNillableMaxSteps sets the "max_steps" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableMaxSteps(v *int) *AgentRunUpdateOne {
	if v != nil {
		_u.SetMaxSteps(*v)
	}
	return _u
}

// AddMaxSteps adds value to the "max_steps" field.
func (_u *AgentRunUpdateOne) AddMaxSteps(v int) *AgentRunUpdateOne {
	_u.mutation.AddMaxSteps(v)
	return _u
}

// SetMaxToolCalls sets the "max_tool_calls" field.
func (_u *AgentRunUpdateOne) SetMaxToolCalls(v int) *AgentRunUpdateOne {
	_u.mutation.ResetMaxToolCalls()
	_u.mutation.SetMaxToolCalls(v)
	return _u
}

// SetNillableMaxToolCalls sets the "max_tool_calls" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableMaxToolCalls(v *int) *AgentRunUpdateOne {
	if v != nil {
		_u.SetMaxToolCalls(*v)
	}
	return _u
}

// AddMaxToolCalls adds value to the "max_tool_calls" field.
func (_u *AgentRunUpdateOne) AddMaxToolCalls(v int) *AgentRunUpdateOne {
	_u.mutation.AddMaxToolCalls(v)
	return _u
}

// SetCurrentStepIndex sets the "current_step_index" field.
func (_u *AgentRunUpdateOne) SetCurrentStepIndex(v int) *AgentRunUpdateOne {
	_u.mutation.ResetCurrentStepIndex()
	_u.mutation.SetCurrentStepIndex(v)
	return _u
}

// SetNillableCurrentStepIndex sets the "current_step_index" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableCurrentStepIndex(v *int) *AgentRunUpdateOne {
	if v != nil {
		_u.SetCurrentStepIndex(*v)
	}
	return _u
}

// AddCurrentStepIndex adds value to the "current_step_index" field.
func (_u *AgentRunUpdateOne) AddCurrentStepIndex(v int) *AgentRunUpdateOne {
	_u.mutation.AddCurrentStepIndex(v)
	return _u
}

// SetLockedBy sets the "locked_by" field.
func (_u *AgentRunUpdateOne) SetLockedBy(v string) *AgentRunUpdateOne {
	_u.mutation.SetLockedBy(v)
	return _u
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableLockedBy(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetLockedBy(*v)
	}
	return _u
}

// ClearLockedBy clears the value of the "locked_by" field.
func (_u *AgentRunUpdateOne) ClearLockedBy() *AgentRunUpdateOne {
	_u.mutation.ClearLockedBy()
	return _u
}

// SetLockedAt sets the "locked_at" field.
func (_u *AgentRunUpdateOne) SetLockedAt(v time.Time) *AgentRunUpdateOne {
	_u.mutation.SetLockedAt(v)
	return _u
}

// SetNillableLockedAt sets the "locked_at" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableLockedAt(v *time.Time) *AgentRunUpdateOne {
	if v != nil {
		_u.SetLockedAt(*v)
	}
	return _u
}

// ClearLockedAt clears the value of the "locked_at" field.
func (_u *AgentRunUpdateOne) ClearLockedAt() *AgentRunUpdateOne {
	_u.mutation.ClearLockedAt()
	return _u
}

// SetLockExpiresAt sets the "lock_expires_at" field.
func (_u *AgentRunUpdateOne) SetLockExpiresAt(v time.Time) *AgentRunUpdateOne {
	_u.mutation.SetLockExpiresAt(v)
	return _u
}

// SetNillableLockExpiresAt sets the "lock_expires_at" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableLockExpiresAt(v *time.Time) *AgentRunUpdateOne {
	if v != nil {
		_u.SetLockExpiresAt(*v)
	}
	return _u
}

// ClearLockExpiresAt clears the value of the "lock_expires_at" field.
func (_u *AgentRunUpdateOne) ClearLockExpiresAt() *AgentRunUpdateOne {
	_u.mutation.ClearLockExpiresAt()
	return _u
}

// SetLockedTaskID sets the "locked_task_id" field.
func (_u *AgentRunUpdateOne) SetLockedTaskID(v string) *AgentRunUpdateOne {
	_u.mutation.SetLockedTaskID(v)
	return _u
}

// SetNillableLockedTaskID sets the "locked_task_id" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableLockedTaskID(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetLockedTaskID(*v)
	}
	return _u
}

// ClearLockedTaskID clears the value of the "locked_task_id" field.
func (_u *AgentRunUpdateOne) ClearLockedTaskID() *AgentRunUpdateOne {
	_u.mutation.ClearLockedTaskID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentRunUpdateOne) SetStartedAt(v time.Time) *AgentRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableStartedAt(v *time.Time) *AgentRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AgentRunUpdateOne) ClearStartedAt() *AgentRunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *AgentRunUpdateOne) SetEndedAt(v time.Time) *AgentRunUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableEndedAt(v *time.Time) *AgentRunUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *AgentRunUpdateOne) ClearEndedAt() *AgentRunUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *AgentRunUpdateOne) SetArchivedAt(v time.Time) *AgentRunUpdateOne {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableArchivedAt(v *time.Time) *AgentRunUpdateOne {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *AgentRunUpdateOne) ClearArchivedAt() *AgentRunUpdateOne {
	_u.mutation.ClearArchivedAt()
	return _u
}

// SetErrorSummary sets the "error_summary" field.
func (_u *AgentRunUpdateOne) SetErrorSummary(v string) *AgentRunUpdateOne {
	_u.mutation.SetErrorSummary(v)
	return _u
}

// SetNillableErrorSummary sets the "error_summary" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableErrorSummary(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetErrorSummary(*v)
	}
	return _u
}

// ClearErrorSummary clears the value of the "error_summary" field.
func (_u *AgentRunUpdateOne) ClearErrorSummary() *AgentRunUpdateOne {
	_u.mutation.ClearErrorSummary()
	return _u
}

// SetInputText sets the "input_text" field.
func (_u *AgentRunUpdateOne) SetInputText(v string) *AgentRunUpdateOne {
	_u.mutation.SetInputText(v)
	return _u
}

// SetNillableInputText sets the "input_text" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableInputText(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetInputText(*v)
	}
	return _u
}

// SetFinalText sets the "final_text" field.
func (_u *AgentRunUpdateOne) SetFinalText(v string) *AgentRunUpdateOne {
	_u.mutation.SetFinalText(v)
	return _u
}

// SetNillableFinalText sets the "final_text" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableFinalText(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetFinalText(*v)
	}
	return _u
}

// ClearFinalText clears the value of the "final_text" field.
func (_u *AgentRunUpdateOne) ClearFinalText() *AgentRunUpdateOne {
	_u.mutation.ClearFinalText()
	return _u
}

// AddStepIDs adds the "steps" edge to the AgentStep entity by IDs.
func (_u *AgentRunUpdateOne) AddStepIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the AgentStep entity.
func (_u *AgentRunUpdateOne) AddSteps(v ...*AgentStep) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddEventIDs adds the "events" edge to the RunEvent entity by IDs.
func (_u *AgentRunUpdateOne) AddEventIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the RunEvent entity.
func (_u *AgentRunUpdateOne) AddEvents(v ...*RunEvent) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddToolCallIDs adds the "tool_calls" edge to the ToolCall entity by IDs.
func (_u *AgentRunUpdateOne) AddToolCallIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.AddToolCallIDs(ids...)
	return _u
}

// AddToolCalls adds the "tool_calls" edges to the ToolCall entity.
func (_u *AgentRunUpdateOne) AddToolCalls(v ...*ToolCall) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolCallIDs(ids...)
}

// AddChildLinkIDs adds the "child_links" edge to the SubrunLink entity by IDs.
func (_u *AgentRunUpdateOne) AddChildLinkIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.AddChildLinkIDs(ids...)
	return _u
}

// AddChildLinks adds the "child_links" edges to the SubrunLink entity.
func (_u *AgentRunUpdateOne) AddChildLinks(v ...*SubrunLink) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildLinkIDs(ids...)
}

// AddArchiveIDs adds the "archives" edge to the RunArchive entity by IDs.
func (_u *AgentRunUpdateOne) AddArchiveIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.AddArchiveIDs(ids...)
	return _u
}

// AddArchives adds the "archives" edges to the RunArchive entity.
func (_u *AgentRunUpdateOne) AddArchives(v ...*RunArchive) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArchiveIDs(ids...)
}

// Mutation returns the AgentRunMutation object of the builder.
func (_u *AgentRunUpdateOne) Mutation() *AgentRunMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the AgentStep entity.
func (_u *AgentRunUpdateOne) ClearSteps() *AgentRunUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to AgentStep entities by IDs.
func (_u *AgentRunUpdateOne) RemoveStepIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to AgentStep entities.
func (_u *AgentRunUpdateOne) RemoveSteps(v ...*AgentStep) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearEvents clears all "events" edges to the RunEvent entity.
func (_u *AgentRunUpdateOne) ClearEvents() *AgentRunUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to RunEvent entities by IDs.
func (_u *AgentRunUpdateOne) RemoveEventIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to RunEvent entities.
func (_u *AgentRunUpdateOne) RemoveEvents(v ...*RunEvent) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearToolCalls clears all "tool_calls" edges to the ToolCall entity.
func (_u *AgentRunUpdateOne) ClearToolCalls() *AgentRunUpdateOne {
	_u.mutation.ClearToolCalls()
	return _u
}

// RemoveToolCallIDs removes the "tool_calls" edge to ToolCall entities by IDs.
func (_u *AgentRunUpdateOne) RemoveToolCallIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.RemoveToolCallIDs(ids...)
	return _u
}

// RemoveToolCalls removes "tool_calls" edges to ToolCall entities.
func (_u *AgentRunUpdateOne) RemoveToolCalls(v ...*ToolCall) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolCallIDs(ids...)
}

// ClearChildLinks clears all "child_links" edges to the SubrunLink entity.
func (_u *AgentRunUpdateOne) ClearChildLinks() *AgentRunUpdateOne {
	_u.mutation.ClearChildLinks()
	return _u
}

// RemoveChildLinkIDs removes the "child_links" edge to SubrunLink entities by IDs.
func (_u *AgentRunUpdateOne) RemoveChildLinkIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.RemoveChildLinkIDs(ids...)
	return _u
}

// RemoveChildLinks removes "child_links" edges to SubrunLink entities.
func (_u *AgentRunUpdateOne) RemoveChildLinks(v ...*SubrunLink) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildLinkIDs(ids...)
}

// ClearArchives clears all "archives" edges to the RunArchive entity.
func (_u *AgentRunUpdateOne) ClearArchives() *AgentRunUpdateOne {
	_u.mutation.ClearArchives()
	return _u
}

// RemoveArchiveIDs removes the "archives" edge to RunArchive entities by IDs.
func (_u *AgentRunUpdateOne) RemoveArchiveIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.RemoveArchiveIDs(ids...)
	return _u
}

// RemoveArchives removes "archives" edges to RunArchive entities.
func (_u *AgentRunUpdateOne) RemoveArchives(v ...*RunArchive) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArchiveIDs(ids...)
}

// Where appends a list predicates to the AgentRunUpdate builder.
func (_u *AgentRunUpdateOne) Where(ps ...predicate.AgentRun) *AgentRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentRunUpdateOne) Select(field string, fields ...string) *AgentRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentRun entity.
func (_u *AgentRunUpdateOne) Save(ctx context.Context) (*AgentRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRunUpdateOne) SaveX(ctx context.Context) *AgentRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRun.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Channel(); ok {
		if err := agentrun.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`ent: validator failed for field "AgentRun.channel": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentRun.workspace"`)
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentRun.agent"`)
	}
	return nil
}

func (_u *AgentRunUpdateOne) sqlSave(ctx context.Context) (_node *AgentRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrun.Table, agentrun.Columns, sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentrun.FieldID)
		for _, f := range fields {
			if !agentrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentrun.FieldID {
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
	if _u.mutation.ParentRunIDCleared() {
		_spec.ClearField(agentrun.FieldParentRunID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedBy(); ok {
		_spec.SetField(agentrun.FieldStartedBy, field.TypeString, value)
	}
	if _u.mutation.StartedByCleared() {
		_spec.ClearField(agentrun.FieldStartedBy, field.TypeString)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(agentrun.FieldCorrelationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(agentrun.FieldChannel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(agentrun.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxSteps(); ok {
		_spec.SetField(agentrun.FieldMaxSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxSteps(); ok {
		_spec.AddField(agentrun.FieldMaxSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxToolCalls(); ok {
		_spec.SetField(agentrun.FieldMaxToolCalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxToolCalls(); ok {
		_spec.AddField(agentrun.FieldMaxToolCalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStepIndex(); ok {
		_spec.SetField(agentrun.FieldCurrentStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStepIndex(); ok {
		_spec.AddField(agentrun.FieldCurrentStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LockedBy(); ok {
		_spec.SetField(agentrun.FieldLockedBy, field.TypeString, value)
	}
	if _u.mutation.LockedByCleared() {
		_spec.ClearField(agentrun.FieldLockedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LockedAt(); ok {
		_spec.SetField(agentrun.FieldLockedAt, field.TypeTime, value)
	}
	if _u.mutation.LockedAtCleared() {
		_spec.ClearField(agentrun.FieldLockedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LockExpiresAt(); ok {
		_spec.SetField(agentrun.FieldLockExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LockExpiresAtCleared() {
		_spec.ClearField(agentrun.FieldLockExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LockedTaskID(); ok {
		_spec.SetField(agentrun.FieldLockedTaskID, field.TypeString, value)
	}
	if _u.mutation.LockedTaskIDCleared() {
		_spec.ClearField(agentrun.FieldLockedTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(agentrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(agentrun.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(agentrun.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(agentrun.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(agentrun.FieldArchivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorSummary(); ok {
		_spec.SetField(agentrun.FieldErrorSummary, field.TypeString, value)
	}
	if _u.mutation.ErrorSummaryCleared() {
		_spec.ClearField(agentrun.FieldErrorSummary, field.TypeString)
	}
	if value, ok := _u.mutation.InputText(); ok {
		_spec.SetField(agentrun.FieldInputText, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinalText(); ok {
		_spec.SetField(agentrun.FieldFinalText, field.TypeString, value)
	}
	if _u.mutation.FinalTextCleared() {
		_spec.ClearField(agentrun.FieldFinalText, field.TypeString)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.StepsTable,
			Columns: []string{agentrun.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.StepsTable,
			Columns: []string{agentrun.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.StepsTable,
			Columns: []string{agentrun.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.EventsTable,
			Columns: []string{agentrun.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.EventsTable,
			Columns: []string{agentrun.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.EventsTable,
			Columns: []string{agentrun.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ToolCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ToolCallsTable,
			Columns: []string{agentrun.ToolCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedToolCallsIDs(); len(nodes) > 0 && !_u.mutation.ToolCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ToolCallsTable,
			Columns: []string{agentrun.ToolCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolCallsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ToolCallsTable,
			Columns: []string{agentrun.ToolCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChildLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ChildLinksTable,
			Columns: []string{agentrun.ChildLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subrunlink.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildLinksIDs(); len(nodes) > 0 && !_u.mutation.ChildLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ChildLinksTable,
			Columns: []string{agentrun.ChildLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subrunlink.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ChildLinksTable,
			Columns: []string{agentrun.ChildLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subrunlink.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArchivesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ArchivesTable,
			Columns: []string{agentrun.ArchivesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runarchive.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArchivesIDs(); len(nodes) > 0 && !_u.mutation.ArchivesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ArchivesTable,
			Columns: []string{agentrun.ArchivesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runarchive.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArchivesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ArchivesTable,
			Columns: []string{agentrun.ArchivesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runarchive.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
