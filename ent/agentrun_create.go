// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentmaestro/agentmaestro/ent/agent"
	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/ent/agentstep"
	"github.com/agentmaestro/agentmaestro/ent/runarchive"
	"github.com/agentmaestro/agentmaestro/ent/runevent"
	"github.com/agentmaestro/agentmaestro/ent/subrunlink"
	"github.com/agentmaestro/agentmaestro/ent/toolcall"
	"github.com/agentmaestro/agentmaestro/ent/workspace"
)

// AgentRunCreate is the builder for creating a AgentRun entity.
type AgentRunCreate struct {
	config
	mutation *AgentRunMutation
	hooks    []Hook
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *AgentRunCreate) SetWorkspaceID(v string) *AgentRunCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *AgentRunCreate) SetAgentID(v string) *AgentRunCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetParentRunID sets the "parent_run_id" field.
func (_c *AgentRunCreate) SetParentRunID(v string) *AgentRunCreate {
	_c.mutation.SetParentRunID(v)
	return _c
}

// SetNillableParentRunID sets the "parent_run_id" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableParentRunID(v *string) *AgentRunCreate {
	if v != nil {
		_c.SetParentRunID(*v)
	}
	return _c
}

// SetStartedBy sets the "started_by" field.
func (_c *AgentRunCreate) SetStartedBy(v string) *AgentRunCreate {
	_c.mutation.SetStartedBy(v)
	return _c
}

// SetNillableStartedBy sets the "started_by" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableStartedBy(v *string) *AgentRunCreate {
	if v != nil {
		_c.SetStartedBy(*v)
	}
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *AgentRunCreate) SetCorrelationID(v string) *AgentRunCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentRunCreate) SetStatus(v agentrun.Status) *AgentRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableStatus(v *agentrun.Status) *AgentRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetChannel sets the "channel" field.
func (_c *AgentRunCreate) SetChannel(v agentrun.Channel) *AgentRunCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableChannel(v *agentrun.Channel) *AgentRunCreate {
	if v != nil {
		_c.SetChannel(*v)
	}
	return _c
}

// SetCancelRequested sets the "cancel_requested" field.
func (_c *AgentRunCreate) SetCancelRequested(v bool) *AgentRunCreate {
	_c.mutation.SetCancelRequested(v)
	return _c
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableCancelRequested(v *bool) *AgentRunCreate {
	if v != nil {
		_c.SetCancelRequested(*v)
	}
	return _c
}

// SetMaxSteps sets the "max_steps" field.
func (_c *AgentRunCreate) SetMaxSteps(v int) *AgentRunCreate {
	_c.mutation.SetMaxSteps(v)
	return _c
}

// SetNillableMaxSteps sets the "max_steps" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableMaxSteps(v *int) *AgentRunCreate {
	if v != nil {
		_c.SetMaxSteps(*v)
	}
	return _c
}

// SetMaxToolCalls sets the "max_tool_calls" field.
func (_c *AgentRunCreate) SetMaxToolCalls(v int) *AgentRunCreate {
	_c.mutation.SetMaxToolCalls(v)
	return _c
}

// SetNillableMaxToolCalls sets the "max_tool_calls" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableMaxToolCalls(v *int) *AgentRunCreate {
	if v != nil {
		_c.SetMaxToolCalls(*v)
	}
	return _c
}

// SetCurrentStepIndex sets the "current_step_index" field.
func (_c *AgentRunCreate) SetCurrentStepIndex(v int) *AgentRunCreate {
	_c.mutation.SetCurrentStepIndex(v)
	return _c
}

// SetNillableCurrentStepIndex sets the "current_step_index" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableCurrentStepIndex(v *int) *AgentRunCreate {
	if v != nil {
		_c.SetCurrentStepIndex(*v)
	}
	return _c
}

// SetLockedBy sets the "locked_by" field.
func (_c *AgentRunCreate) SetLockedBy(v string) *AgentRunCreate {
	_c.mutation.SetLockedBy(v)
	return _c
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableLockedBy(v *string) *AgentRunCreate {
	if v != nil {
		_c.SetLockedBy(*v)
	}
	return _c
}

// SetLockedAt sets the "locked_at" field.
func (_c *AgentRunCreate) SetLockedAt(v time.Time) *AgentRunCreate {
	_c.mutation.SetLockedAt(v)
	return _c
}

// SetNillableLockedAt sets the "locked_at" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableLockedAt(v *time.Time) *AgentRunCreate {
	if v != nil {
		_c.SetLockedAt(*v)
	}
	return _c
}

// SetLockExpiresAt sets the "lock_expires_at" field.
func (_c *AgentRunCreate) SetLockExpiresAt(v time.Time) *AgentRunCreate {
	_c.mutation.SetLockExpiresAt(v)
	return _c
}

// SetNillableLockExpiresAt sets the "lock_expires_at" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableLockExpiresAt(v *time.Time) *AgentRunCreate {
	if v != nil {
		_c.SetLockExpiresAt(*v)
	}
	return _c
}

// SetLockedTaskID sets the "locked_task_id" field.
func (_c *AgentRunCreate) SetLockedTaskID(v string) *AgentRunCreate {
	_c.mutation.SetLockedTaskID(v)
	return _c
}

// SetNillableLockedTaskID sets the "locked_task_id" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableLockedTaskID(v *string) *AgentRunCreate {
	if v != nil {
		_c.SetLockedTaskID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentRunCreate) SetCreatedAt(v time.Time) *AgentRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableCreatedAt(v *time.Time) *AgentRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AgentRunCreate) SetStartedAt(v time.Time) *AgentRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableStartedAt(v *time.Time) *AgentRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *AgentRunCreate) SetEndedAt(v time.Time) *AgentRunCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableEndedAt(v *time.Time) *AgentRunCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetArchivedAt sets the "archived_at" field.
func (_c *AgentRunCreate) SetArchivedAt(v time.Time) *AgentRunCreate {
	_c.mutation.SetArchivedAt(v)
	return _c
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableArchivedAt(v *time.Time) *AgentRunCreate {
	if v != nil {
		_c.SetArchivedAt(*v)
	}
	return _c
}

// SetErrorSummary sets the "error_summary" field.
func (_c *AgentRunCreate) SetErrorSummary(v string) *AgentRunCreate {
	_c.mutation.SetErrorSummary(v)
	return _c
}

// SetNillableErrorSummary sets the "error_summary" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableErrorSummary(v *string) *AgentRunCreate {
	if v != nil {
		_c.SetErrorSummary(*v)
	}
	return _c
}

// SetInputText sets the "input_text" field.
func (_c *AgentRunCreate) SetInputText(v string) *AgentRunCreate {
	_c.mutation.SetInputText(v)
	return _c
}

// SetNillableInputText sets the "input_text" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableInputText(v *string) *AgentRunCreate {
	if v != nil {
		_c.SetInputText(*v)
	}
	return _c
}

// SetFinalText sets the "final_text" field.
func (_c *AgentRunCreate) SetFinalText(v string) *AgentRunCreate {
	_c.mutation.SetFinalText(v)
	return _c
}

// SetNillableFinalText sets the "final_text" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableFinalText(v *string) *AgentRunCreate {
	if v != nil {
		_c.SetFinalText(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentRunCreate) SetID(v string) *AgentRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_c *AgentRunCreate) SetWorkspace(v *Workspace) *AgentRunCreate {
	return _c.SetWorkspaceID(v.ID)
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_c *AgentRunCreate) SetAgent(v *Agent) *AgentRunCreate {
	return _c.SetAgentID(v.ID)
}

// AddStepIDs adds the "steps" edge to the AgentStep entity by IDs.
func (_c *AgentRunCreate) AddStepIDs(ids ...string) *AgentRunCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the AgentStep entity.
func (_c *AgentRunCreate) AddSteps(v ...*AgentStep) *AgentRunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// AddEventIDs adds the "events" edge to the RunEvent entity by IDs.
func (_c *AgentRunCreate) AddEventIDs(ids ...string) *AgentRunCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the RunEvent entity.
func (_c *AgentRunCreate) AddEvents(v ...*RunEvent) *AgentRunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddToolCallIDs adds the "tool_calls" edge to the ToolCall entity by IDs.
func (_c *AgentRunCreate) AddToolCallIDs(ids ...string) *AgentRunCreate {
	_c.mutation.AddToolCallIDs(ids...)
	return _c
}

// AddToolCalls adds the "tool_calls" edges to the ToolCall entity.
func (_c *AgentRunCreate) AddToolCalls(v ...*ToolCall) *AgentRunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddToolCallIDs(ids...)
}

// AddChildLinkIDs adds the "child_links" edge to the SubrunLink entity by IDs.
func (_c *AgentRunCreate) AddChildLinkIDs(ids ...string) *AgentRunCreate {
	_c.mutation.AddChildLinkIDs(ids...)
	return _c
}

// AddChildLinks adds the "child_links" edges to the SubrunLink entity.
func (_c *AgentRunCreate) AddChildLinks(v ...*SubrunLink) *AgentRunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChildLinkIDs(ids...)
}

// AddArchiveIDs adds the "archives" edge to the RunArchive entity by IDs.
func (_c *AgentRunCreate) AddArchiveIDs(ids ...string) *AgentRunCreate {
	_c.mutation.AddArchiveIDs(ids...)
	return _c
}

// AddArchives adds the "archives" edges to the RunArchive entity.
func (_c *AgentRunCreate) AddArchives(v ...*RunArchive) *AgentRunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddArchiveIDs(ids...)
}

// Mutation returns the AgentRunMutation object of the builder.
func (_c *AgentRunCreate) Mutation() *AgentRunMutation {
	return _c.mutation
}

// Save creates the AgentRun in the database.
func (_c *AgentRunCreate) Save(ctx context.Context) (*AgentRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentRunCreate) SaveX(ctx context.Context) *AgentRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agentrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Channel(); !ok {
		v := agentrun.DefaultChannel
		_c.mutation.SetChannel(v)
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		v := agentrun.DefaultCancelRequested
		_c.mutation.SetCancelRequested(v)
	}
	if _, ok := _c.mutation.MaxSteps(); !ok {
		v := agentrun.DefaultMaxSteps
		_c.mutation.SetMaxSteps(v)
	}
	if _, ok := _c.mutation.MaxToolCalls(); !ok {
		v := agentrun.DefaultMaxToolCalls
		_c.mutation.SetMaxToolCalls(v)
	}
	if _, ok := _c.mutation.CurrentStepIndex(); !ok {
		v := agentrun.DefaultCurrentStepIndex
		_c.mutation.SetCurrentStepIndex(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.InputText(); !ok {
		v := agentrun.DefaultInputText
		_c.mutation.SetInputText(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentRunCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "AgentRun.workspace_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "AgentRun.agent_id"`)}
	}
	if _, ok := _c.mutation.CorrelationID(); !ok {
		return &ValidationError{Name: "correlation_id", err: errors.New(`ent: missing required field "AgentRun.correlation_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`ent: missing required field "AgentRun.channel"`)}
	}
	if v, ok := _c.mutation.Channel(); ok {
		if err := agentrun.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`ent: validator failed for field "AgentRun.channel": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		return &ValidationError{Name: "cancel_requested", err: errors.New(`ent: missing required field "AgentRun.cancel_requested"`)}
	}
	if _, ok := _c.mutation.MaxSteps(); !ok {
		return &ValidationError{Name: "max_steps", err: errors.New(`ent: missing required field "AgentRun.max_steps"`)}
	}
	if _, ok := _c.mutation.MaxToolCalls(); !ok {
		return &ValidationError{Name: "max_tool_calls", err: errors.New(`ent: missing required field "AgentRun.max_tool_calls"`)}
	}
	if _, ok := _c.mutation.CurrentStepIndex(); !ok {
		return &ValidationError{Name: "current_step_index", err: errors.New(`ent: missing required field "AgentRun.current_step_index"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentRun.created_at"`)}
	}
	if _, ok := _c.mutation.InputText(); !ok {
		return &ValidationError{Name: "input_text", err: errors.New(`ent: missing required field "AgentRun.input_text"`)}
	}
	if len(_c.mutation.WorkspaceIDs()) == 0 {
		return &ValidationError{Name: "workspace", err: errors.New(`ent: missing required edge "AgentRun.workspace"`)}
	}
	if len(_c.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "AgentRun.agent"`)}
	}
	return nil
}

func (_c *AgentRunCreate) sqlSave(ctx context.Context) (*AgentRun, error) {
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
			return nil, fmt.Errorf("unexpected AgentRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentRunCreate) createSpec() (*AgentRun, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentrun.Table, sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ParentRunID(); ok {
		_spec.SetField(agentrun.FieldParentRunID, field.TypeString, value)
		_node.ParentRunID = &value
	}
	if value, ok := _c.mutation.StartedBy(); ok {
		_spec.SetField(agentrun.FieldStartedBy, field.TypeString, value)
		_node.StartedBy = &value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(agentrun.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(agentrun.FieldChannel, field.TypeEnum, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.CancelRequested(); ok {
		_spec.SetField(agentrun.FieldCancelRequested, field.TypeBool, value)
		_node.CancelRequested = value
	}
	if value, ok := _c.mutation.MaxSteps(); ok {
		_spec.SetField(agentrun.FieldMaxSteps, field.TypeInt, value)
		_node.MaxSteps = value
	}
	if value, ok := _c.mutation.MaxToolCalls(); ok {
		_spec.SetField(agentrun.FieldMaxToolCalls, field.TypeInt, value)
		_node.MaxToolCalls = value
	}
	if value, ok := _c.mutation.CurrentStepIndex(); ok {
		_spec.SetField(agentrun.FieldCurrentStepIndex, field.TypeInt, value)
		_node.CurrentStepIndex = value
	}
	if value, ok := _c.mutation.LockedBy(); ok {
		_spec.SetField(agentrun.FieldLockedBy, field.TypeString, value)
		_node.LockedBy = &value
	}
	if value, ok := _c.mutation.LockedAt(); ok {
		_spec.SetField(agentrun.FieldLockedAt, field.TypeTime, value)
		_node.LockedAt = &value
	}
	if value, ok := _c.mutation.LockExpiresAt(); ok {
		_spec.SetField(agentrun.FieldLockExpiresAt, field.TypeTime, value)
		_node.LockExpiresAt = &value
	}
	if value, ok := _c.mutation.LockedTaskID(); ok {
		_spec.SetField(agentrun.FieldLockedTaskID, field.TypeString, value)
		_node.LockedTaskID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(agentrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(agentrun.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.ArchivedAt(); ok {
		_spec.SetField(agentrun.FieldArchivedAt, field.TypeTime, value)
		_node.ArchivedAt = &value
	}
	if value, ok := _c.mutation.ErrorSummary(); ok {
		_spec.SetField(agentrun.FieldErrorSummary, field.TypeString, value)
		_node.ErrorSummary = &value
	}
	if value, ok := _c.mutation.InputText(); ok {
		_spec.SetField(agentrun.FieldInputText, field.TypeString, value)
		_node.InputText = value
	}
	if value, ok := _c.mutation.FinalText(); ok {
		_spec.SetField(agentrun.FieldFinalText, field.TypeString, value)
		_node.FinalText = &value
	}
	if nodes := _c.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentrun.WorkspaceTable,
			Columns: []string{agentrun.WorkspaceColumn},
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
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentrun.AgentTable,
			Columns: []string{agentrun.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AgentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ToolCallsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChildLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ArchivesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentRunCreateBulk is the builder for creating many AgentRun entities in bulk.
type AgentRunCreateBulk struct {
	config
	err      error
	builders []*AgentRunCreate
}

// Save creates the AgentRun entities in the database.
func (_c *AgentRunCreateBulk) Save(ctx context.Context) ([]*AgentRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentRunMutation)
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
func (_c *AgentRunCreateBulk) SaveX(ctx context.Context) []*AgentRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
