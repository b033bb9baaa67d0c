// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentmaestro/agentmaestro/ent/agent"
	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/ent/agentstep"
	"github.com/agentmaestro/agentmaestro/ent/membership"
	"github.com/agentmaestro/agentmaestro/ent/predicate"
	"github.com/agentmaestro/agentmaestro/ent/runarchive"
	"github.com/agentmaestro/agentmaestro/ent/runevent"
	"github.com/agentmaestro/agentmaestro/ent/subrunlink"
	"github.com/agentmaestro/agentmaestro/ent/toolcall"
	"github.com/agentmaestro/agentmaestro/ent/tooldefinition"
	"github.com/agentmaestro/agentmaestro/ent/useractionlog"
	"github.com/agentmaestro/agentmaestro/ent/workspace"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent          = "Agent"
	TypeAgentRun       = "AgentRun"
	TypeAgentStep      = "AgentStep"
	TypeMembership     = "Membership"
	TypeRunArchive     = "RunArchive"
	TypeRunEvent       = "RunEvent"
	TypeSubrunLink     = "SubrunLink"
	TypeToolCall       = "ToolCall"
	TypeToolDefinition = "ToolDefinition"
	TypeUserActionLog  = "UserActionLog"
	TypeWorkspace      = "Workspace"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op               Op
	typ              string
	id               *string
	name             *string
	system_prompt    *string
	default_model    *string
	temperature      *float64
	addtemperature   *float64
	tool_policy      *map[string]interface{}
	created_at       *time.Time
	clearedFields    map[string]struct{}
	workspace        *string
	clearedworkspace bool
	runs             map[string]struct{}
	removedruns      map[string]struct{}
	clearedruns      bool
	done             bool
	oldValue         func(context.Context) (*Agent, error)
	predicates       []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id string) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *AgentMutation) SetWorkspaceID(s string) {
	m.workspace = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *AgentMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *AgentMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetName sets the "name" field.
func (m *AgentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentMutation) ResetName() {
	m.name = nil
}

// SetSystemPrompt sets the "system_prompt" field.
func (m *AgentMutation) SetSystemPrompt(s string) {
	m.system_prompt = &s
}

// SystemPrompt returns the value of the "system_prompt" field in the mutation.
func (m *AgentMutation) SystemPrompt() (r string, exists bool) {
	v := m.system_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemPrompt returns the old "system_prompt" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldSystemPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemPrompt: %w", err)
	}
	return oldValue.SystemPrompt, nil
}

// ResetSystemPrompt resets all changes to the "system_prompt" field.
func (m *AgentMutation) ResetSystemPrompt() {
	m.system_prompt = nil
}

// SetDefaultModel sets the "default_model" field.
func (m *AgentMutation) SetDefaultModel(s string) {
	m.default_model = &s
}

// DefaultModel returns the value of the "default_model" field in the mutation.
func (m *AgentMutation) DefaultModel() (r string, exists bool) {
	v := m.default_model
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultModel returns the old "default_model" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldDefaultModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultModel: %w", err)
	}
	return oldValue.DefaultModel, nil
}

// ResetDefaultModel resets all changes to the "default_model" field.
func (m *AgentMutation) ResetDefaultModel() {
	m.default_model = nil
}

// SetTemperature sets the "temperature" field.
func (m *AgentMutation) SetTemperature(f float64) {
	m.temperature = &f
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *AgentMutation) Temperature() (r float64, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTemperature(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds f to the "temperature" field.
func (m *AgentMutation) AddTemperature(f float64) {
	if m.addtemperature != nil {
		*m.addtemperature += f
	} else {
		m.addtemperature = &f
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *AgentMutation) AddedTemperature() (r float64, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *AgentMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
}

// SetToolPolicy sets the "tool_policy" field.
func (m *AgentMutation) SetToolPolicy(value map[string]interface{}) {
	m.tool_policy = &value
}

// ToolPolicy returns the value of the "tool_policy" field in the mutation.
func (m *AgentMutation) ToolPolicy() (r map[string]interface{}, exists bool) {
	v := m.tool_policy
	if v == nil {
		return
	}
	return *v, true
}

// OldToolPolicy returns the old "tool_policy" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldToolPolicy(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolPolicy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolPolicy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolPolicy: %w", err)
	}
	return oldValue.ToolPolicy, nil
}

// ClearToolPolicy clears the value of the "tool_policy" field.
func (m *AgentMutation) ClearToolPolicy() {
	m.tool_policy = nil
	m.clearedFields[agent.FieldToolPolicy] = struct{}{}
}

// ToolPolicyCleared returns if the "tool_policy" field was cleared in this mutation.
func (m *AgentMutation) ToolPolicyCleared() bool {
	_, ok := m.clearedFields[agent.FieldToolPolicy]
	return ok
}

// ResetToolPolicy resets all changes to the "tool_policy" field.
func (m *AgentMutation) ResetToolPolicy() {
	m.tool_policy = nil
	delete(m.clearedFields, agent.FieldToolPolicy)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *AgentMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[agent.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *AgentMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *AgentMutation) WorkspaceIDs() (ids []string) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *AgentMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// AddRunIDs adds the "runs" edge to the AgentRun entity by ids.
func (m *AgentMutation) AddRunIDs(ids ...string) {
	if m.runs == nil {
		m.runs = make(map[string]struct{})
	}
	for i := range ids {
		m.runs[ids[i]] = struct{}{}
	}
}

// ClearRuns clears the "runs" edge to the AgentRun entity.
func (m *AgentMutation) ClearRuns() {
	m.clearedruns = true
}

// RunsCleared reports if the "runs" edge to the AgentRun entity was cleared.
func (m *AgentMutation) RunsCleared() bool {
	return m.clearedruns
}

// RemoveRunIDs removes the "runs" edge to the AgentRun entity by IDs.
func (m *AgentMutation) RemoveRunIDs(ids ...string) {
	if m.removedruns == nil {
		m.removedruns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.runs, ids[i])
		m.removedruns[ids[i]] = struct{}{}
	}
}

// RemovedRuns returns the removed IDs of the "runs" edge to the AgentRun entity.
func (m *AgentMutation) RemovedRunsIDs() (ids []string) {
	for id := range m.removedruns {
		ids = append(ids, id)
	}
	return
}

// RunsIDs returns the "runs" edge IDs in the mutation.
func (m *AgentMutation) RunsIDs() (ids []string) {
	for id := range m.runs {
		ids = append(ids, id)
	}
	return
}

// ResetRuns resets all changes to the "runs" edge.
func (m *AgentMutation) ResetRuns() {
	m.runs = nil
	m.clearedruns = false
	m.removedruns = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.workspace != nil {
		fields = append(fields, agent.FieldWorkspaceID)
	}
	if m.name != nil {
		fields = append(fields, agent.FieldName)
	}
	if m.system_prompt != nil {
		fields = append(fields, agent.FieldSystemPrompt)
	}
	if m.default_model != nil {
		fields = append(fields, agent.FieldDefaultModel)
	}
	if m.temperature != nil {
		fields = append(fields, agent.FieldTemperature)
	}
	if m.tool_policy != nil {
		fields = append(fields, agent.FieldToolPolicy)
	}
	if m.created_at != nil {
		fields = append(fields, agent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldWorkspaceID:
		return m.WorkspaceID()
	case agent.FieldName:
		return m.Name()
	case agent.FieldSystemPrompt:
		return m.SystemPrompt()
	case agent.FieldDefaultModel:
		return m.DefaultModel()
	case agent.FieldTemperature:
		return m.Temperature()
	case agent.FieldToolPolicy:
		return m.ToolPolicy()
	case agent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case agent.FieldName:
		return m.OldName(ctx)
	case agent.FieldSystemPrompt:
		return m.OldSystemPrompt(ctx)
	case agent.FieldDefaultModel:
		return m.OldDefaultModel(ctx)
	case agent.FieldTemperature:
		return m.OldTemperature(ctx)
	case agent.FieldToolPolicy:
		return m.OldToolPolicy(ctx)
	case agent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case agent.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agent.FieldSystemPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemPrompt(v)
		return nil
	case agent.FieldDefaultModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultModel(v)
		return nil
	case agent.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case agent.FieldToolPolicy:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolPolicy(v)
		return nil
	case agent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	var fields []string
	if m.addtemperature != nil {
		fields = append(fields, agent.FieldTemperature)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldTemperature:
		return m.AddedTemperature()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agent.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldToolPolicy) {
		fields = append(fields, agent.FieldToolPolicy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldToolPolicy:
		m.ClearToolPolicy()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case agent.FieldName:
		m.ResetName()
		return nil
	case agent.FieldSystemPrompt:
		m.ResetSystemPrompt()
		return nil
	case agent.FieldDefaultModel:
		m.ResetDefaultModel()
		return nil
	case agent.FieldTemperature:
		m.ResetTemperature()
		return nil
	case agent.FieldToolPolicy:
		m.ResetToolPolicy()
		return nil
	case agent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.workspace != nil {
		edges = append(edges, agent.EdgeWorkspace)
	}
	if m.runs != nil {
		edges = append(edges, agent.EdgeRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	case agent.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.runs))
		for id := range m.runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedruns != nil {
		edges = append(edges, agent.EdgeRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.removedruns))
		for id := range m.removedruns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedworkspace {
		edges = append(edges, agent.EdgeWorkspace)
	}
	if m.clearedruns {
		edges = append(edges, agent.EdgeRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	switch name {
	case agent.EdgeWorkspace:
		return m.clearedworkspace
	case agent.EdgeRuns:
		return m.clearedruns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	switch name {
	case agent.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	switch name {
	case agent.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	case agent.EdgeRuns:
		m.ResetRuns()
		return nil
	}
	return fmt.Errorf("unknown Agent edge %s", name)
}

// AgentRunMutation represents an operation that mutates the AgentRun nodes in the graph.
type AgentRunMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	parent_run_id         *string
	started_by            *string
	correlation_id        *string
	status                *agentrun.Status
	channel               *agentrun.Channel
	cancel_requested      *bool
	max_steps             *int
	addmax_steps          *int
	max_tool_calls        *int
	addmax_tool_calls     *int
	current_step_index    *int
	addcurrent_step_index *int
	locked_by             *string
	locked_at             *time.Time
	lock_expires_at       *time.Time
	locked_task_id        *string
	created_at            *time.Time
	started_at            *time.Time
	ended_at              *time.Time
	archived_at           *time.Time
	error_summary         *string
	input_text            *string
	final_text            *string
	clearedFields         map[string]struct{}
	workspace             *string
	clearedworkspace      bool
	agent                 *string
	clearedagent          bool
	steps                 map[string]struct{}
	removedsteps          map[string]struct{}
	clearedsteps          bool
	events                map[string]struct{}
	removedevents         map[string]struct{}
	clearedevents         bool
	tool_calls            map[string]struct{}
	removedtool_calls     map[string]struct{}
	clearedtool_calls     bool
	child_links           map[string]struct{}
	removedchild_links    map[string]struct{}
	clearedchild_links    bool
	archives              map[string]struct{}
	removedarchives       map[string]struct{}
	clearedarchives       bool
	done                  bool
	oldValue              func(context.Context) (*AgentRun, error)
	predicates            []predicate.AgentRun
}

var _ ent.Mutation = (*AgentRunMutation)(nil)

// agentrunOption allows management of the mutation configuration using functional options.
type agentrunOption func(*AgentRunMutation)

// newAgentRunMutation creates new mutation for the AgentRun entity.
func newAgentRunMutation(c config, op Op, opts ...agentrunOption) *AgentRunMutation {
	m := &AgentRunMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentRunID sets the ID field of the mutation.
func withAgentRunID(id string) agentrunOption {
	return func(m *AgentRunMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentRun
		)
		m.oldValue = func(ctx context.Context) (*AgentRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentRun sets the old AgentRun of the mutation.
func withAgentRun(node *AgentRun) agentrunOption {
	return func(m *AgentRunMutation) {
		m.oldValue = func(context.Context) (*AgentRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentRun entities.
func (m *AgentRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *AgentRunMutation) SetWorkspaceID(s string) {
	m.workspace = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *AgentRunMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *AgentRunMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetAgentID sets the "agent_id" field.
func (m *AgentRunMutation) SetAgentID(s string) {
	m.agent = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *AgentRunMutation) AgentID() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *AgentRunMutation) ResetAgentID() {
	m.agent = nil
}

// SetParentRunID sets the "parent_run_id" field.
func (m *AgentRunMutation) SetParentRunID(s string) {
	m.parent_run_id = &s
}

// ParentRunID returns the value of the "parent_run_id" field in the mutation.
func (m *AgentRunMutation) ParentRunID() (r string, exists bool) {
	v := m.parent_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentRunID returns the old "parent_run_id" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldParentRunID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentRunID: %w", err)
	}
	return oldValue.ParentRunID, nil
}

// ClearParentRunID clears the value of the "parent_run_id" field.
func (m *AgentRunMutation) ClearParentRunID() {
	m.parent_run_id = nil
	m.clearedFields[agentrun.FieldParentRunID] = struct{}{}
}

// ParentRunIDCleared returns if the "parent_run_id" field was cleared in this mutation.
func (m *AgentRunMutation) ParentRunIDCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldParentRunID]
	return ok
}

// ResetParentRunID resets all changes to the "parent_run_id" field.
func (m *AgentRunMutation) ResetParentRunID() {
	m.parent_run_id = nil
	delete(m.clearedFields, agentrun.FieldParentRunID)
}

// SetStartedBy sets the "started_by" field.
func (m *AgentRunMutation) SetStartedBy(s string) {
	m.started_by = &s
}

// StartedBy returns the value of the "started_by" field in the mutation.
func (m *AgentRunMutation) StartedBy() (r string, exists bool) {
	v := m.started_by
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedBy returns the old "started_by" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldStartedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedBy: %w", err)
	}
	return oldValue.StartedBy, nil
}

// ClearStartedBy clears the value of the "started_by" field.
func (m *AgentRunMutation) ClearStartedBy() {
	m.started_by = nil
	m.clearedFields[agentrun.FieldStartedBy] = struct{}{}
}

// StartedByCleared returns if the "started_by" field was cleared in this mutation.
func (m *AgentRunMutation) StartedByCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldStartedBy]
	return ok
}

// ResetStartedBy resets all changes to the "started_by" field.
func (m *AgentRunMutation) ResetStartedBy() {
	m.started_by = nil
	delete(m.clearedFields, agentrun.FieldStartedBy)
}

// SetCorrelationID sets the "correlation_id" field.
func (m *AgentRunMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *AgentRunMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *AgentRunMutation) ResetCorrelationID() {
	m.correlation_id = nil
}

// SetStatus sets the "status" field.
func (m *AgentRunMutation) SetStatus(a agentrun.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentRunMutation) Status() (r agentrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldStatus(ctx context.Context) (v agentrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentRunMutation) ResetStatus() {
	m.status = nil
}

// SetChannel sets the "channel" field.
func (m *AgentRunMutation) SetChannel(a agentrun.Channel) {
	m.channel = &a
}

// Channel returns the value of the "channel" field in the mutation.
func (m *AgentRunMutation) Channel() (r agentrun.Channel, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldChannel(ctx context.Context) (v agentrun.Channel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *AgentRunMutation) ResetChannel() {
	m.channel = nil
}

// SetCancelRequested sets the "cancel_requested" field.
func (m *AgentRunMutation) SetCancelRequested(b bool) {
	m.cancel_requested = &b
}

// CancelRequested returns the value of the "cancel_requested" field in the mutation.
func (m *AgentRunMutation) CancelRequested() (r bool, exists bool) {
	v := m.cancel_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequested returns the old "cancel_requested" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldCancelRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequested: %w", err)
	}
	return oldValue.CancelRequested, nil
}

// ResetCancelRequested resets all changes to the "cancel_requested" field.
func (m *AgentRunMutation) ResetCancelRequested() {
	m.cancel_requested = nil
}

// SetMaxSteps sets the "max_steps" field.
func (m *AgentRunMutation) SetMaxSteps(i int) {
	m.max_steps = &i
	m.addmax_steps = nil
}

// MaxSteps returns the value of the "max_steps" field in the mutation.
func (m *AgentRunMutation) MaxSteps() (r int, exists bool) {
	v := m.max_steps
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxSteps returns the old "max_steps" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldMaxSteps(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxSteps: %w", err)
	}
	return oldValue.MaxSteps, nil
}

// AddMaxSteps adds i to the "max_steps" field.
func (m *AgentRunMutation) AddMaxSteps(i int) {
	if m.addmax_steps != nil {
		*m.addmax_steps += i
	} else {
		m.addmax_steps = &i
	}
}

// AddedMaxSteps returns the value that was added to the "max_steps" field in this mutation.
func (m *AgentRunMutation) AddedMaxSteps() (r int, exists bool) {
	v := m.addmax_steps
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxSteps resets all changes to the "max_steps" field.
func (m *AgentRunMutation) ResetMaxSteps() {
	m.max_steps = nil
	m.addmax_steps = nil
}

// SetMaxToolCalls sets the "max_tool_calls" field.
func (m *AgentRunMutation) SetMaxToolCalls(i int) {
	m.max_tool_calls = &i
	m.addmax_tool_calls = nil
}

// MaxToolCalls returns the value of the "max_tool_calls" field in the mutation.
func (m *AgentRunMutation) MaxToolCalls() (r int, exists bool) {
	v := m.max_tool_calls
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxToolCalls returns the old "max_tool_calls" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldMaxToolCalls(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxToolCalls is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxToolCalls requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxToolCalls: %w", err)
	}
	return oldValue.MaxToolCalls, nil
}

// AddMaxToolCalls adds i to the "max_tool_calls" field.
func (m *AgentRunMutation) AddMaxToolCalls(i int) {
	if m.addmax_tool_calls != nil {
		*m.addmax_tool_calls += i
	} else {
		m.addmax_tool_calls = &i
	}
}

// AddedMaxToolCalls returns the value that was added to the "max_tool_calls" field in this mutation.
func (m *AgentRunMutation) AddedMaxToolCalls() (r int, exists bool) {
	v := m.addmax_tool_calls
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxToolCalls resets all changes to the "max_tool_calls" field.
func (m *AgentRunMutation) ResetMaxToolCalls() {
	m.max_tool_calls = nil
	m.addmax_tool_calls = nil
}

// SetCurrentStepIndex sets the "current_step_index" field.
func (m *AgentRunMutation) SetCurrentStepIndex(i int) {
	m.current_step_index = &i
	m.addcurrent_step_index = nil
}

// CurrentStepIndex returns the value of the "current_step_index" field in the mutation.
func (m *AgentRunMutation) CurrentStepIndex() (r int, exists bool) {
	v := m.current_step_index
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStepIndex returns the old "current_step_index" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldCurrentStepIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStepIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStepIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStepIndex: %w", err)
	}
	return oldValue.CurrentStepIndex, nil
}

// AddCurrentStepIndex adds i to the "current_step_index" field.
func (m *AgentRunMutation) AddCurrentStepIndex(i int) {
	if m.addcurrent_step_index != nil {
		*m.addcurrent_step_index += i
	} else {
		m.addcurrent_step_index = &i
	}
}

// AddedCurrentStepIndex returns the value that was added to the "current_step_index" field in this mutation.
func (m *AgentRunMutation) AddedCurrentStepIndex() (r int, exists bool) {
	v := m.addcurrent_step_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentStepIndex resets all changes to the "current_step_index" field.
func (m *AgentRunMutation) ResetCurrentStepIndex() {
	m.current_step_index = nil
	m.addcurrent_step_index = nil
}

// SetLockedBy sets the "locked_by" field.
func (m *AgentRunMutation) SetLockedBy(s string) {
	m.locked_by = &s
}

// LockedBy returns the value of the "locked_by" field in the mutation.
func (m *AgentRunMutation) LockedBy() (r string, exists bool) {
	v := m.locked_by
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedBy returns the old "locked_by" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldLockedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedBy: %w", err)
	}
	return oldValue.LockedBy, nil
}

// ClearLockedBy clears the value of the "locked_by" field.
func (m *AgentRunMutation) ClearLockedBy() {
	m.locked_by = nil
	m.clearedFields[agentrun.FieldLockedBy] = struct{}{}
}

// LockedByCleared returns if the "locked_by" field was cleared in this mutation.
func (m *AgentRunMutation) LockedByCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldLockedBy]
	return ok
}

// ResetLockedBy resets all changes to the "locked_by" field.
func (m *AgentRunMutation) ResetLockedBy() {
	m.locked_by = nil
	delete(m.clearedFields, agentrun.FieldLockedBy)
}

// SetLockedAt sets the "locked_at" field.
func (m *AgentRunMutation) SetLockedAt(t time.Time) {
	m.locked_at = &t
}

// LockedAt returns the value of the "locked_at" field in the mutation.
func (m *AgentRunMutation) LockedAt() (r time.Time, exists bool) {
	v := m.locked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedAt returns the old "locked_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldLockedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedAt: %w", err)
	}
	return oldValue.LockedAt, nil
}

// ClearLockedAt clears the value of the "locked_at" field.
func (m *AgentRunMutation) ClearLockedAt() {
	m.locked_at = nil
	m.clearedFields[agentrun.FieldLockedAt] = struct{}{}
}

// LockedAtCleared returns if the "locked_at" field was cleared in this mutation.
func (m *AgentRunMutation) LockedAtCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldLockedAt]
	return ok
}

// ResetLockedAt resets all changes to the "locked_at" field.
func (m *AgentRunMutation) ResetLockedAt() {
	m.locked_at = nil
	delete(m.clearedFields, agentrun.FieldLockedAt)
}

// SetLockExpiresAt sets the "lock_expires_at" field.
func (m *AgentRunMutation) SetLockExpiresAt(t time.Time) {
	m.lock_expires_at = &t
}

// LockExpiresAt returns the value of the "lock_expires_at" field in the mutation.
func (m *AgentRunMutation) LockExpiresAt() (r time.Time, exists bool) {
	v := m.lock_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLockExpiresAt returns the old "lock_expires_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldLockExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockExpiresAt: %w", err)
	}
	return oldValue.LockExpiresAt, nil
}

// ClearLockExpiresAt clears the value of the "lock_expires_at" field.
func (m *AgentRunMutation) ClearLockExpiresAt() {
	m.lock_expires_at = nil
	m.clearedFields[agentrun.FieldLockExpiresAt] = struct{}{}
}

// LockExpiresAtCleared returns if the "lock_expires_at" field was cleared in this mutation.
func (m *AgentRunMutation) LockExpiresAtCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldLockExpiresAt]
	return ok
}

// ResetLockExpiresAt resets all changes to the "lock_expires_at" field.
func (m *AgentRunMutation) ResetLockExpiresAt() {
	m.lock_expires_at = nil
	delete(m.clearedFields, agentrun.FieldLockExpiresAt)
}

// SetLockedTaskID sets the "locked_task_id" field.
func (m *AgentRunMutation) SetLockedTaskID(s string) {
	m.locked_task_id = &s
}

// LockedTaskID returns the value of the "locked_task_id" field in the mutation.
func (m *AgentRunMutation) LockedTaskID() (r string, exists bool) {
	v := m.locked_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedTaskID returns the old "locked_task_id" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldLockedTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedTaskID: %w", err)
	}
	return oldValue.LockedTaskID, nil
}

// ClearLockedTaskID clears the value of the "locked_task_id" field.
func (m *AgentRunMutation) ClearLockedTaskID() {
	m.locked_task_id = nil
	m.clearedFields[agentrun.FieldLockedTaskID] = struct{}{}
}

// LockedTaskIDCleared returns if the "locked_task_id" field was cleared in this mutation.
func (m *AgentRunMutation) LockedTaskIDCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldLockedTaskID]
	return ok
}

// ResetLockedTaskID resets all changes to the "locked_task_id" field.
func (m *AgentRunMutation) ResetLockedTaskID() {
	m.locked_task_id = nil
	delete(m.clearedFields, agentrun.FieldLockedTaskID)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AgentRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *AgentRunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[agentrun.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *AgentRunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentRunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, agentrun.FieldStartedAt)
}

// SetEndedAt sets the "ended_at" field.
func (m *AgentRunMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *AgentRunMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *AgentRunMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[agentrun.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *AgentRunMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *AgentRunMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, agentrun.FieldEndedAt)
}

// SetArchivedAt sets the "archived_at" field.
func (m *AgentRunMutation) SetArchivedAt(t time.Time) {
	m.archived_at = &t
}

// ArchivedAt returns the value of the "archived_at" field in the mutation.
func (m *AgentRunMutation) ArchivedAt() (r time.Time, exists bool) {
	v := m.archived_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivedAt returns the old "archived_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldArchivedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivedAt: %w", err)
	}
	return oldValue.ArchivedAt, nil
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (m *AgentRunMutation) ClearArchivedAt() {
	m.archived_at = nil
	m.clearedFields[agentrun.FieldArchivedAt] = struct{}{}
}

// ArchivedAtCleared returns if the "archived_at" field was cleared in this mutation.
func (m *AgentRunMutation) ArchivedAtCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldArchivedAt]
	return ok
}

// ResetArchivedAt resets all changes to the "archived_at" field.
func (m *AgentRunMutation) ResetArchivedAt() {
	m.archived_at = nil
	delete(m.clearedFields, agentrun.FieldArchivedAt)
}

// SetErrorSummary sets the "error_summary" field.
func (m *AgentRunMutation) SetErrorSummary(s string) {
	m.error_summary = &s
}

// ErrorSummary returns the value of the "error_summary" field in the mutation.
func (m *AgentRunMutation) ErrorSummary() (r string, exists bool) {
	v := m.error_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorSummary returns the old "error_summary" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldErrorSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorSummary: %w", err)
	}
	return oldValue.ErrorSummary, nil
}

// ClearErrorSummary clears the value of the "error_summary" field.
func (m *AgentRunMutation) ClearErrorSummary() {
	m.error_summary = nil
	m.clearedFields[agentrun.FieldErrorSummary] = struct{}{}
}

// ErrorSummaryCleared returns if the "error_summary" field was cleared in this mutation.
func (m *AgentRunMutation) ErrorSummaryCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldErrorSummary]
	return ok
}

// ResetErrorSummary resets all changes to the "error_summary" field.
func (m *AgentRunMutation) ResetErrorSummary() {
	m.error_summary = nil
	delete(m.clearedFields, agentrun.FieldErrorSummary)
}

// SetInputText sets the "input_text" field.
func (m *AgentRunMutation) SetInputText(s string) {
	m.input_text = &s
}

// InputText returns the value of the "input_text" field in the mutation.
func (m *AgentRunMutation) InputText() (r string, exists bool) {
	v := m.input_text
	if v == nil {
		return
	}
	return *v, true
}

// OldInputText returns the old "input_text" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldInputText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputText: %w", err)
	}
	return oldValue.InputText, nil
}

// ResetInputText resets all changes to the "input_text" field.
func (m *AgentRunMutation) ResetInputText() {
	m.input_text = nil
}

// SetFinalText sets the "final_text" field.
func (m *AgentRunMutation) SetFinalText(s string) {
	m.final_text = &s
}

// FinalText returns the value of the "final_text" field in the mutation.
func (m *AgentRunMutation) FinalText() (r string, exists bool) {
	v := m.final_text
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalText returns the old "final_text" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldFinalText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalText: %w", err)
	}
	return oldValue.FinalText, nil
}

// ClearFinalText clears the value of the "final_text" field.
func (m *AgentRunMutation) ClearFinalText() {
	m.final_text = nil
	m.clearedFields[agentrun.FieldFinalText] = struct{}{}
}

// FinalTextCleared returns if the "final_text" field was cleared in this mutation.
func (m *AgentRunMutation) FinalTextCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldFinalText]
	return ok
}

// ResetFinalText resets all changes to the "final_text" field.
func (m *AgentRunMutation) ResetFinalText() {
	m.final_text = nil
	delete(m.clearedFields, agentrun.FieldFinalText)
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *AgentRunMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[agentrun.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *AgentRunMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *AgentRunMutation) WorkspaceIDs() (ids []string) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *AgentRunMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *AgentRunMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[agentrun.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *AgentRunMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *AgentRunMutation) AgentIDs() (ids []string) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *AgentRunMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// AddStepIDs adds the "steps" edge to the AgentStep entity by ids.
func (m *AgentRunMutation) AddStepIDs(ids ...string) {
	if m.steps == nil {
		m.steps = make(map[string]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the AgentStep entity.
func (m *AgentRunMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the AgentStep entity was cleared.
func (m *AgentRunMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the AgentStep entity by IDs.
func (m *AgentRunMutation) RemoveStepIDs(ids ...string) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the AgentStep entity.
func (m *AgentRunMutation) RemovedStepsIDs() (ids []string) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *AgentRunMutation) StepsIDs() (ids []string) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *AgentRunMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// AddEventIDs adds the "events" edge to the RunEvent entity by ids.
func (m *AgentRunMutation) AddEventIDs(ids ...string) {
	if m.events == nil {
		m.events = make(map[string]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the RunEvent entity.
func (m *AgentRunMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the RunEvent entity was cleared.
func (m *AgentRunMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the RunEvent entity by IDs.
func (m *AgentRunMutation) RemoveEventIDs(ids ...string) {
	if m.removedevents == nil {
		m.removedevents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the RunEvent entity.
func (m *AgentRunMutation) RemovedEventsIDs() (ids []string) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *AgentRunMutation) EventsIDs() (ids []string) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *AgentRunMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddToolCallIDs adds the "tool_calls" edge to the ToolCall entity by ids.
func (m *AgentRunMutation) AddToolCallIDs(ids ...string) {
	if m.tool_calls == nil {
		m.tool_calls = make(map[string]struct{})
	}
	for i := range ids {
		m.tool_calls[ids[i]] = struct{}{}
	}
}

// ClearToolCalls clears the "tool_calls" edge to the ToolCall entity.
func (m *AgentRunMutation) ClearToolCalls() {
	m.clearedtool_calls = true
}

// ToolCallsCleared reports if the "tool_calls" edge to the ToolCall entity was cleared.
func (m *AgentRunMutation) ToolCallsCleared() bool {
	return m.clearedtool_calls
}

// RemoveToolCallIDs removes the "tool_calls" edge to the ToolCall entity by IDs.
func (m *AgentRunMutation) RemoveToolCallIDs(ids ...string) {
	if m.removedtool_calls == nil {
		m.removedtool_calls = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tool_calls, ids[i])
		m.removedtool_calls[ids[i]] = struct{}{}
	}
}

// RemovedToolCalls returns the removed IDs of the "tool_calls" edge to the ToolCall entity.
func (m *AgentRunMutation) RemovedToolCallsIDs() (ids []string) {
	for id := range m.removedtool_calls {
		ids = append(ids, id)
	}
	return
}

// ToolCallsIDs returns the "tool_calls" edge IDs in the mutation.
func (m *AgentRunMutation) ToolCallsIDs() (ids []string) {
	for id := range m.tool_calls {
		ids = append(ids, id)
	}
	return
}

// ResetToolCalls resets all changes to the "tool_calls" edge.
func (m *AgentRunMutation) ResetToolCalls() {
	m.tool_calls = nil
	m.clearedtool_calls = false
	m.removedtool_calls = nil
}

// AddChildLinkIDs adds the "child_links" edge to the SubrunLink entity by ids.
func (m *AgentRunMutation) AddChildLinkIDs(ids ...string) {
	if m.child_links == nil {
		m.child_links = make(map[string]struct{})
	}
	for i := range ids {
		m.child_links[ids[i]] = struct{}{}
	}
}

// ClearChildLinks clears the "child_links" edge to the SubrunLink entity.
func (m *AgentRunMutation) ClearChildLinks() {
	m.clearedchild_links = true
}

// ChildLinksCleared reports if the "child_links" edge to the SubrunLink entity was cleared.
func (m *AgentRunMutation) ChildLinksCleared() bool {
	return m.clearedchild_links
}

// RemoveChildLinkIDs removes the "child_links" edge to the SubrunLink entity by IDs.
func (m *AgentRunMutation) RemoveChildLinkIDs(ids ...string) {
	if m.removedchild_links == nil {
		m.removedchild_links = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.child_links, ids[i])
		m.removedchild_links[ids[i]] = struct{}{}
	}
}

// RemovedChildLinks returns the removed IDs of the "child_links" edge to the SubrunLink entity.
func (m *AgentRunMutation) RemovedChildLinksIDs() (ids []string) {
	for id := range m.removedchild_links {
		ids = append(ids, id)
	}
	return
}

// ChildLinksIDs returns the "child_links" edge IDs in the mutation.
func (m *AgentRunMutation) ChildLinksIDs() (ids []string) {
	for id := range m.child_links {
		ids = append(ids, id)
	}
	return
}

// ResetChildLinks resets all changes to the "child_links" edge.
func (m *AgentRunMutation) ResetChildLinks() {
	m.child_links = nil
	m.clearedchild_links = false
	m.removedchild_links = nil
}

// AddArchiveIDs adds the "archives" edge to the RunArchive entity by ids.
func (m *AgentRunMutation) AddArchiveIDs(ids ...string) {
	if m.archives == nil {
		m.archives = make(map[string]struct{})
	}
	for i := range ids {
		m.archives[ids[i]] = struct{}{}
	}
}

// ClearArchives clears the "archives" edge to the RunArchive entity.
func (m *AgentRunMutation) ClearArchives() {
	m.clearedarchives = true
}

// ArchivesCleared reports if the "archives" edge to the RunArchive entity was cleared.
func (m *AgentRunMutation) ArchivesCleared() bool {
	return m.clearedarchives
}

// RemoveArchiveIDs removes the "archives" edge to the RunArchive entity by IDs.
func (m *AgentRunMutation) RemoveArchiveIDs(ids ...string) {
	if m.removedarchives == nil {
		m.removedarchives = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.archives, ids[i])
		m.removedarchives[ids[i]] = struct{}{}
	}
}

// RemovedArchives returns the removed IDs of the "archives" edge to the RunArchive entity.
func (m *AgentRunMutation) RemovedArchivesIDs() (ids []string) {
	for id := range m.removedarchives {
		ids = append(ids, id)
	}
	return
}

// ArchivesIDs returns the "archives" edge IDs in the mutation.
func (m *AgentRunMutation) ArchivesIDs() (ids []string) {
	for id := range m.archives {
		ids = append(ids, id)
	}
	return
}

// ResetArchives resets all changes to the "archives" edge.
func (m *AgentRunMutation) ResetArchives() {
	m.archives = nil
	m.clearedarchives = false
	m.removedarchives = nil
}

// Where appends a list predicates to the AgentRunMutation builder.
func (m *AgentRunMutation) Where(ps ...predicate.AgentRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentRun).
func (m *AgentRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentRunMutation) Fields() []string {
	fields := make([]string, 0, 22)
	if m.workspace != nil {
		fields = append(fields, agentrun.FieldWorkspaceID)
	}
	if m.agent != nil {
		fields = append(fields, agentrun.FieldAgentID)
	}
	if m.parent_run_id != nil {
		fields = append(fields, agentrun.FieldParentRunID)
	}
	if m.started_by != nil {
		fields = append(fields, agentrun.FieldStartedBy)
	}
	if m.correlation_id != nil {
		fields = append(fields, agentrun.FieldCorrelationID)
	}
	if m.status != nil {
		fields = append(fields, agentrun.FieldStatus)
	}
	if m.channel != nil {
		fields = append(fields, agentrun.FieldChannel)
	}
	if m.cancel_requested != nil {
		fields = append(fields, agentrun.FieldCancelRequested)
	}
	if m.max_steps != nil {
		fields = append(fields, agentrun.FieldMaxSteps)
	}
	if m.max_tool_calls != nil {
		fields = append(fields, agentrun.FieldMaxToolCalls)
	}
	if m.current_step_index != nil {
		fields = append(fields, agentrun.FieldCurrentStepIndex)
	}
	if m.locked_by != nil {
		fields = append(fields, agentrun.FieldLockedBy)
	}
	if m.locked_at != nil {
		fields = append(fields, agentrun.FieldLockedAt)
	}
	if m.lock_expires_at != nil {
		fields = append(fields, agentrun.FieldLockExpiresAt)
	}
	if m.locked_task_id != nil {
		fields = append(fields, agentrun.FieldLockedTaskID)
	}
	if m.created_at != nil {
		fields = append(fields, agentrun.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, agentrun.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, agentrun.FieldEndedAt)
	}
	if m.archived_at != nil {
		fields = append(fields, agentrun.FieldArchivedAt)
	}
	if m.error_summary != nil {
		fields = append(fields, agentrun.FieldErrorSummary)
	}
	if m.input_text != nil {
		fields = append(fields, agentrun.FieldInputText)
	}
	if m.final_text != nil {
		fields = append(fields, agentrun.FieldFinalText)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentrun.FieldWorkspaceID:
		return m.WorkspaceID()
	case agentrun.FieldAgentID:
		return m.AgentID()
	case agentrun.FieldParentRunID:
		return m.ParentRunID()
	case agentrun.FieldStartedBy:
		return m.StartedBy()
	case agentrun.FieldCorrelationID:
		return m.CorrelationID()
	case agentrun.FieldStatus:
		return m.Status()
	case agentrun.FieldChannel:
		return m.Channel()
	case agentrun.FieldCancelRequested:
		return m.CancelRequested()
	case agentrun.FieldMaxSteps:
		return m.MaxSteps()
	case agentrun.FieldMaxToolCalls:
		return m.MaxToolCalls()
	case agentrun.FieldCurrentStepIndex:
		return m.CurrentStepIndex()
	case agentrun.FieldLockedBy:
		return m.LockedBy()
	case agentrun.FieldLockedAt:
		return m.LockedAt()
	case agentrun.FieldLockExpiresAt:
		return m.LockExpiresAt()
	case agentrun.FieldLockedTaskID:
		return m.LockedTaskID()
	case agentrun.FieldCreatedAt:
		return m.CreatedAt()
	case agentrun.FieldStartedAt:
		return m.StartedAt()
	case agentrun.FieldEndedAt:
		return m.EndedAt()
	case agentrun.FieldArchivedAt:
		return m.ArchivedAt()
	case agentrun.FieldErrorSummary:
		return m.ErrorSummary()
	case agentrun.FieldInputText:
		return m.InputText()
	case agentrun.FieldFinalText:
		return m.FinalText()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentrun.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case agentrun.FieldAgentID:
		return m.OldAgentID(ctx)
	case agentrun.FieldParentRunID:
		return m.OldParentRunID(ctx)
	case agentrun.FieldStartedBy:
		return m.OldStartedBy(ctx)
	case agentrun.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case agentrun.FieldStatus:
		return m.OldStatus(ctx)
	case agentrun.FieldChannel:
		return m.OldChannel(ctx)
	case agentrun.FieldCancelRequested:
		return m.OldCancelRequested(ctx)
	case agentrun.FieldMaxSteps:
		return m.OldMaxSteps(ctx)
	case agentrun.FieldMaxToolCalls:
		return m.OldMaxToolCalls(ctx)
	case agentrun.FieldCurrentStepIndex:
		return m.OldCurrentStepIndex(ctx)
	case agentrun.FieldLockedBy:
		return m.OldLockedBy(ctx)
	case agentrun.FieldLockedAt:
		return m.OldLockedAt(ctx)
	case agentrun.FieldLockExpiresAt:
		return m.OldLockExpiresAt(ctx)
	case agentrun.FieldLockedTaskID:
		return m.OldLockedTaskID(ctx)
	case agentrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agentrun.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case agentrun.FieldArchivedAt:
		return m.OldArchivedAt(ctx)
	case agentrun.FieldErrorSummary:
		return m.OldErrorSummary(ctx)
	case agentrun.FieldInputText:
		return m.OldInputText(ctx)
	case agentrun.FieldFinalText:
		return m.OldFinalText(ctx)
	}
	return nil, fmt.Errorf("unknown AgentRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentrun.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case agentrun.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case agentrun.FieldParentRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentRunID(v)
		return nil
	case agentrun.FieldStartedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedBy(v)
		return nil
	case agentrun.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case agentrun.FieldStatus:
		v, ok := value.(agentrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentrun.FieldChannel:
		v, ok := value.(agentrun.Channel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case agentrun.FieldCancelRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequested(v)
		return nil
	case agentrun.FieldMaxSteps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxSteps(v)
		return nil
	case agentrun.FieldMaxToolCalls:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxToolCalls(v)
		return nil
	case agentrun.FieldCurrentStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStepIndex(v)
		return nil
	case agentrun.FieldLockedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedBy(v)
		return nil
	case agentrun.FieldLockedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedAt(v)
		return nil
	case agentrun.FieldLockExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockExpiresAt(v)
		return nil
	case agentrun.FieldLockedTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedTaskID(v)
		return nil
	case agentrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agentrun.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case agentrun.FieldArchivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivedAt(v)
		return nil
	case agentrun.FieldErrorSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorSummary(v)
		return nil
	case agentrun.FieldInputText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputText(v)
		return nil
	case agentrun.FieldFinalText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalText(v)
		return nil
	}
	return fmt.Errorf("unknown AgentRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentRunMutation) AddedFields() []string {
	var fields []string
	if m.addmax_steps != nil {
		fields = append(fields, agentrun.FieldMaxSteps)
	}
	if m.addmax_tool_calls != nil {
		fields = append(fields, agentrun.FieldMaxToolCalls)
	}
	if m.addcurrent_step_index != nil {
		fields = append(fields, agentrun.FieldCurrentStepIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentrun.FieldMaxSteps:
		return m.AddedMaxSteps()
	case agentrun.FieldMaxToolCalls:
		return m.AddedMaxToolCalls()
	case agentrun.FieldCurrentStepIndex:
		return m.AddedCurrentStepIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentrun.FieldMaxSteps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxSteps(v)
		return nil
	case agentrun.FieldMaxToolCalls:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxToolCalls(v)
		return nil
	case agentrun.FieldCurrentStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentStepIndex(v)
		return nil
	}
	return fmt.Errorf("unknown AgentRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentrun.FieldParentRunID) {
		fields = append(fields, agentrun.FieldParentRunID)
	}
	if m.FieldCleared(agentrun.FieldStartedBy) {
		fields = append(fields, agentrun.FieldStartedBy)
	}
	if m.FieldCleared(agentrun.FieldLockedBy) {
		fields = append(fields, agentrun.FieldLockedBy)
	}
	if m.FieldCleared(agentrun.FieldLockedAt) {
		fields = append(fields, agentrun.FieldLockedAt)
	}
	if m.FieldCleared(agentrun.FieldLockExpiresAt) {
		fields = append(fields, agentrun.FieldLockExpiresAt)
	}
	if m.FieldCleared(agentrun.FieldLockedTaskID) {
		fields = append(fields, agentrun.FieldLockedTaskID)
	}
	if m.FieldCleared(agentrun.FieldStartedAt) {
		fields = append(fields, agentrun.FieldStartedAt)
	}
	if m.FieldCleared(agentrun.FieldEndedAt) {
		fields = append(fields, agentrun.FieldEndedAt)
	}
	if m.FieldCleared(agentrun.FieldArchivedAt) {
		fields = append(fields, agentrun.FieldArchivedAt)
	}
	if m.FieldCleared(agentrun.FieldErrorSummary) {
		fields = append(fields, agentrun.FieldErrorSummary)
	}
	if m.FieldCleared(agentrun.FieldFinalText) {
		fields = append(fields, agentrun.FieldFinalText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentRunMutation) ClearField(name string) error {
	switch name {
	case agentrun.FieldParentRunID:
		m.ClearParentRunID()
		return nil
	case agentrun.FieldStartedBy:
		m.ClearStartedBy()
		return nil
	case agentrun.FieldLockedBy:
		m.ClearLockedBy()
		return nil
	case agentrun.FieldLockedAt:
		m.ClearLockedAt()
		return nil
	case agentrun.FieldLockExpiresAt:
		m.ClearLockExpiresAt()
		return nil
	case agentrun.FieldLockedTaskID:
		m.ClearLockedTaskID()
		return nil
	case agentrun.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case agentrun.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case agentrun.FieldArchivedAt:
		m.ClearArchivedAt()
		return nil
	case agentrun.FieldErrorSummary:
		m.ClearErrorSummary()
		return nil
	case agentrun.FieldFinalText:
		m.ClearFinalText()
		return nil
	}
	return fmt.Errorf("unknown AgentRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentRunMutation) ResetField(name string) error {
	switch name {
	case agentrun.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case agentrun.FieldAgentID:
		m.ResetAgentID()
		return nil
	case agentrun.FieldParentRunID:
		m.ResetParentRunID()
		return nil
	case agentrun.FieldStartedBy:
		m.ResetStartedBy()
		return nil
	case agentrun.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case agentrun.FieldStatus:
		m.ResetStatus()
		return nil
	case agentrun.FieldChannel:
		m.ResetChannel()
		return nil
	case agentrun.FieldCancelRequested:
		m.ResetCancelRequested()
		return nil
	case agentrun.FieldMaxSteps:
		m.ResetMaxSteps()
		return nil
	case agentrun.FieldMaxToolCalls:
		m.ResetMaxToolCalls()
		return nil
	case agentrun.FieldCurrentStepIndex:
		m.ResetCurrentStepIndex()
		return nil
	case agentrun.FieldLockedBy:
		m.ResetLockedBy()
		return nil
	case agentrun.FieldLockedAt:
		m.ResetLockedAt()
		return nil
	case agentrun.FieldLockExpiresAt:
		m.ResetLockExpiresAt()
		return nil
	case agentrun.FieldLockedTaskID:
		m.ResetLockedTaskID()
		return nil
	case agentrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agentrun.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case agentrun.FieldArchivedAt:
		m.ResetArchivedAt()
		return nil
	case agentrun.FieldErrorSummary:
		m.ResetErrorSummary()
		return nil
	case agentrun.FieldInputText:
		m.ResetInputText()
		return nil
	case agentrun.FieldFinalText:
		m.ResetFinalText()
		return nil
	}
	return fmt.Errorf("unknown AgentRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 7)
	if m.workspace != nil {
		edges = append(edges, agentrun.EdgeWorkspace)
	}
	if m.agent != nil {
		edges = append(edges, agentrun.EdgeAgent)
	}
	if m.steps != nil {
		edges = append(edges, agentrun.EdgeSteps)
	}
	if m.events != nil {
		edges = append(edges, agentrun.EdgeEvents)
	}
	if m.tool_calls != nil {
		edges = append(edges, agentrun.EdgeToolCalls)
	}
	if m.child_links != nil {
		edges = append(edges, agentrun.EdgeChildLinks)
	}
	if m.archives != nil {
		edges = append(edges, agentrun.EdgeArchives)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentrun.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	case agentrun.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	case agentrun.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	case agentrun.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case agentrun.EdgeToolCalls:
		ids := make([]ent.Value, 0, len(m.tool_calls))
		for id := range m.tool_calls {
			ids = append(ids, id)
		}
		return ids
	case agentrun.EdgeChildLinks:
		ids := make([]ent.Value, 0, len(m.child_links))
		for id := range m.child_links {
			ids = append(ids, id)
		}
		return ids
	case agentrun.EdgeArchives:
		ids := make([]ent.Value, 0, len(m.archives))
		for id := range m.archives {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 7)
	if m.removedsteps != nil {
		edges = append(edges, agentrun.EdgeSteps)
	}
	if m.removedevents != nil {
		edges = append(edges, agentrun.EdgeEvents)
	}
	if m.removedtool_calls != nil {
		edges = append(edges, agentrun.EdgeToolCalls)
	}
	if m.removedchild_links != nil {
		edges = append(edges, agentrun.EdgeChildLinks)
	}
	if m.removedarchives != nil {
		edges = append(edges, agentrun.EdgeArchives)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentRunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agentrun.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	case agentrun.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case agentrun.EdgeToolCalls:
		ids := make([]ent.Value, 0, len(m.removedtool_calls))
		for id := range m.removedtool_calls {
			ids = append(ids, id)
		}
		return ids
	case agentrun.EdgeChildLinks:
		ids := make([]ent.Value, 0, len(m.removedchild_links))
		for id := range m.removedchild_links {
			ids = append(ids, id)
		}
		return ids
	case agentrun.EdgeArchives:
		ids := make([]ent.Value, 0, len(m.removedarchives))
		for id := range m.removedarchives {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 7)
	if m.clearedworkspace {
		edges = append(edges, agentrun.EdgeWorkspace)
	}
	if m.clearedagent {
		edges = append(edges, agentrun.EdgeAgent)
	}
	if m.clearedsteps {
		edges = append(edges, agentrun.EdgeSteps)
	}
	if m.clearedevents {
		edges = append(edges, agentrun.EdgeEvents)
	}
	if m.clearedtool_calls {
		edges = append(edges, agentrun.EdgeToolCalls)
	}
	if m.clearedchild_links {
		edges = append(edges, agentrun.EdgeChildLinks)
	}
	if m.clearedarchives {
		edges = append(edges, agentrun.EdgeArchives)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentRunMutation) EdgeCleared(name string) bool {
	switch name {
	case agentrun.EdgeWorkspace:
		return m.clearedworkspace
	case agentrun.EdgeAgent:
		return m.clearedagent
	case agentrun.EdgeSteps:
		return m.clearedsteps
	case agentrun.EdgeEvents:
		return m.clearedevents
	case agentrun.EdgeToolCalls:
		return m.clearedtool_calls
	case agentrun.EdgeChildLinks:
		return m.clearedchild_links
	case agentrun.EdgeArchives:
		return m.clearedarchives
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentRunMutation) ClearEdge(name string) error {
	switch name {
	case agentrun.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	case agentrun.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown AgentRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentRunMutation) ResetEdge(name string) error {
	switch name {
	case agentrun.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	case agentrun.EdgeAgent:
		m.ResetAgent()
		return nil
	case agentrun.EdgeSteps:
		m.ResetSteps()
		return nil
	case agentrun.EdgeEvents:
		m.ResetEvents()
		return nil
	case agentrun.EdgeToolCalls:
		m.ResetToolCalls()
		return nil
	case agentrun.EdgeChildLinks:
		m.ResetChildLinks()
		return nil
	case agentrun.EdgeArchives:
		m.ResetArchives()
		return nil
	}
	return fmt.Errorf("unknown AgentRun edge %s", name)
}

// AgentStepMutation represents an operation that mutates the AgentStep nodes in the graph.
type AgentStepMutation struct {
	config
	op               Op
	typ              string
	id               *string
	step_index       *int
	addstep_index    *int
	kind             *agentstep.Kind
	payload          *map[string]interface{}
	correlation_id   *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	run              *string
	clearedrun       bool
	tool_call        *string
	clearedtool_call bool
	done             bool
	oldValue         func(context.Context) (*AgentStep, error)
	predicates       []predicate.AgentStep
}

var _ ent.Mutation = (*AgentStepMutation)(nil)

// agentstepOption allows management of the mutation configuration using functional options.
type agentstepOption func(*AgentStepMutation)

// newAgentStepMutation creates new mutation for the AgentStep entity.
func newAgentStepMutation(c config, op Op, opts ...agentstepOption) *AgentStepMutation {
	m := &AgentStepMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentStepID sets the ID field of the mutation.
func withAgentStepID(id string) agentstepOption {
	return func(m *AgentStepMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentStep
		)
		m.oldValue = func(ctx context.Context) (*AgentStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentStep sets the old AgentStep of the mutation.
func withAgentStep(node *AgentStep) agentstepOption {
	return func(m *AgentStepMutation) {
		m.oldValue = func(context.Context) (*AgentStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentStep entities.
func (m *AgentStepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentStepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentStepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *AgentStepMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *AgentStepMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *AgentStepMutation) ResetRunID() {
	m.run = nil
}

// SetStepIndex sets the "step_index" field.
func (m *AgentStepMutation) SetStepIndex(i int) {
	m.step_index = &i
	m.addstep_index = nil
}

// StepIndex returns the value of the "step_index" field in the mutation.
func (m *AgentStepMutation) StepIndex() (r int, exists bool) {
	v := m.step_index
	if v == nil {
		return
	}
	return *v, true
}

// OldStepIndex returns the old "step_index" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldStepIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepIndex: %w", err)
	}
	return oldValue.StepIndex, nil
}

// AddStepIndex adds i to the "step_index" field.
func (m *AgentStepMutation) AddStepIndex(i int) {
	if m.addstep_index != nil {
		*m.addstep_index += i
	} else {
		m.addstep_index = &i
	}
}

// AddedStepIndex returns the value that was added to the "step_index" field in this mutation.
func (m *AgentStepMutation) AddedStepIndex() (r int, exists bool) {
	v := m.addstep_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepIndex resets all changes to the "step_index" field.
func (m *AgentStepMutation) ResetStepIndex() {
	m.step_index = nil
	m.addstep_index = nil
}

// SetKind sets the "kind" field.
func (m *AgentStepMutation) SetKind(a agentstep.Kind) {
	m.kind = &a
}

// Kind returns the value of the "kind" field in the mutation.
func (m *AgentStepMutation) Kind() (r agentstep.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldKind(ctx context.Context) (v agentstep.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *AgentStepMutation) ResetKind() {
	m.kind = nil
}

// SetPayload sets the "payload" field.
func (m *AgentStepMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *AgentStepMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *AgentStepMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[agentstep.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *AgentStepMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[agentstep.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *AgentStepMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, agentstep.FieldPayload)
}

// SetCorrelationID sets the "correlation_id" field.
func (m *AgentStepMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *AgentStepMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (m *AgentStepMutation) ClearCorrelationID() {
	m.correlation_id = nil
	m.clearedFields[agentstep.FieldCorrelationID] = struct{}{}
}

// CorrelationIDCleared returns if the "correlation_id" field was cleared in this mutation.
func (m *AgentStepMutation) CorrelationIDCleared() bool {
	_, ok := m.clearedFields[agentstep.FieldCorrelationID]
	return ok
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *AgentStepMutation) ResetCorrelationID() {
	m.correlation_id = nil
	delete(m.clearedFields, agentstep.FieldCorrelationID)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentStepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentStepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentStepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the AgentRun entity.
func (m *AgentStepMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[agentstep.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the AgentRun entity was cleared.
func (m *AgentStepMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *AgentStepMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *AgentStepMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// SetToolCallID sets the "tool_call" edge to the ToolCall entity by id.
func (m *AgentStepMutation) SetToolCallID(id string) {
	m.tool_call = &id
}

// ClearToolCall clears the "tool_call" edge to the ToolCall entity.
func (m *AgentStepMutation) ClearToolCall() {
	m.clearedtool_call = true
}

// ToolCallCleared reports if the "tool_call" edge to the ToolCall entity was cleared.
func (m *AgentStepMutation) ToolCallCleared() bool {
	return m.clearedtool_call
}

// ToolCallID returns the "tool_call" edge ID in the mutation.
func (m *AgentStepMutation) ToolCallID() (id string, exists bool) {
	if m.tool_call != nil {
		return *m.tool_call, true
	}
	return
}

// ToolCallIDs returns the "tool_call" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ToolCallID instead. It exists only for internal usage by the builders.
func (m *AgentStepMutation) ToolCallIDs() (ids []string) {
	if id := m.tool_call; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetToolCall resets all changes to the "tool_call" edge.
func (m *AgentStepMutation) ResetToolCall() {
	m.tool_call = nil
	m.clearedtool_call = false
}

// Where appends a list predicates to the AgentStepMutation builder.
func (m *AgentStepMutation) Where(ps ...predicate.AgentStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentStep).
func (m *AgentStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentStepMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.run != nil {
		fields = append(fields, agentstep.FieldRunID)
	}
	if m.step_index != nil {
		fields = append(fields, agentstep.FieldStepIndex)
	}
	if m.kind != nil {
		fields = append(fields, agentstep.FieldKind)
	}
	if m.payload != nil {
		fields = append(fields, agentstep.FieldPayload)
	}
	if m.correlation_id != nil {
		fields = append(fields, agentstep.FieldCorrelationID)
	}
	if m.created_at != nil {
		fields = append(fields, agentstep.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentstep.FieldRunID:
		return m.RunID()
	case agentstep.FieldStepIndex:
		return m.StepIndex()
	case agentstep.FieldKind:
		return m.Kind()
	case agentstep.FieldPayload:
		return m.Payload()
	case agentstep.FieldCorrelationID:
		return m.CorrelationID()
	case agentstep.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentstep.FieldRunID:
		return m.OldRunID(ctx)
	case agentstep.FieldStepIndex:
		return m.OldStepIndex(ctx)
	case agentstep.FieldKind:
		return m.OldKind(ctx)
	case agentstep.FieldPayload:
		return m.OldPayload(ctx)
	case agentstep.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case agentstep.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentstep.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case agentstep.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepIndex(v)
		return nil
	case agentstep.FieldKind:
		v, ok := value.(agentstep.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case agentstep.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case agentstep.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case agentstep.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentStepMutation) AddedFields() []string {
	var fields []string
	if m.addstep_index != nil {
		fields = append(fields, agentstep.FieldStepIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentstep.FieldStepIndex:
		return m.AddedStepIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentstep.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepIndex(v)
		return nil
	}
	return fmt.Errorf("unknown AgentStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentstep.FieldPayload) {
		fields = append(fields, agentstep.FieldPayload)
	}
	if m.FieldCleared(agentstep.FieldCorrelationID) {
		fields = append(fields, agentstep.FieldCorrelationID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentStepMutation) ClearField(name string) error {
	switch name {
	case agentstep.FieldPayload:
		m.ClearPayload()
		return nil
	case agentstep.FieldCorrelationID:
		m.ClearCorrelationID()
		return nil
	}
	return fmt.Errorf("unknown AgentStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentStepMutation) ResetField(name string) error {
	switch name {
	case agentstep.FieldRunID:
		m.ResetRunID()
		return nil
	case agentstep.FieldStepIndex:
		m.ResetStepIndex()
		return nil
	case agentstep.FieldKind:
		m.ResetKind()
		return nil
	case agentstep.FieldPayload:
		m.ResetPayload()
		return nil
	case agentstep.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case agentstep.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.run != nil {
		edges = append(edges, agentstep.EdgeRun)
	}
	if m.tool_call != nil {
		edges = append(edges, agentstep.EdgeToolCall)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentstep.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	case agentstep.EdgeToolCall:
		if id := m.tool_call; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrun {
		edges = append(edges, agentstep.EdgeRun)
	}
	if m.clearedtool_call {
		edges = append(edges, agentstep.EdgeToolCall)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentStepMutation) EdgeCleared(name string) bool {
	switch name {
	case agentstep.EdgeRun:
		return m.clearedrun
	case agentstep.EdgeToolCall:
		return m.clearedtool_call
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentStepMutation) ClearEdge(name string) error {
	switch name {
	case agentstep.EdgeRun:
		m.ClearRun()
		return nil
	case agentstep.EdgeToolCall:
		m.ClearToolCall()
		return nil
	}
	return fmt.Errorf("unknown AgentStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentStepMutation) ResetEdge(name string) error {
	switch name {
	case agentstep.EdgeRun:
		m.ResetRun()
		return nil
	case agentstep.EdgeToolCall:
		m.ResetToolCall()
		return nil
	}
	return fmt.Errorf("unknown AgentStep edge %s", name)
}

// MembershipMutation represents an operation that mutates the Membership nodes in the graph.
type MembershipMutation struct {
	config
	op               Op
	typ              string
	id               *string
	user_id          *string
	role             *membership.Role
	active           *bool
	created_at       *time.Time
	clearedFields    map[string]struct{}
	workspace        *string
	clearedworkspace bool
	done             bool
	oldValue         func(context.Context) (*Membership, error)
	predicates       []predicate.Membership
}

var _ ent.Mutation = (*MembershipMutation)(nil)

// membershipOption allows management of the mutation configuration using functional options.
type membershipOption func(*MembershipMutation)

// newMembershipMutation creates new mutation for the Membership entity.
func newMembershipMutation(c config, op Op, opts ...membershipOption) *MembershipMutation {
	m := &MembershipMutation{
		config:        c,
		op:            op,
		typ:           TypeMembership,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMembershipID sets the ID field of the mutation.
func withMembershipID(id string) membershipOption {
	return func(m *MembershipMutation) {
		var (
			err   error
			once  sync.Once
			value *Membership
		)
		m.oldValue = func(ctx context.Context) (*Membership, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Membership.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMembership sets the old Membership of the mutation.
func withMembership(node *Membership) membershipOption {
	return func(m *MembershipMutation) {
		m.oldValue = func(context.Context) (*Membership, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MembershipMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MembershipMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Membership entities.
func (m *MembershipMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MembershipMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MembershipMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Membership.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *MembershipMutation) SetWorkspaceID(s string) {
	m.workspace = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *MembershipMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Membership entity.
// If the Membership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MembershipMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *MembershipMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetUserID sets the "user_id" field.
func (m *MembershipMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MembershipMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Membership entity.
// If the Membership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MembershipMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MembershipMutation) ResetUserID() {
	m.user_id = nil
}

// SetRole sets the "role" field.
func (m *MembershipMutation) SetRole(value membership.Role) {
	m.role = &value
}

// Role returns the value of the "role" field in the mutation.
func (m *MembershipMutation) Role() (r membership.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Membership entity.
// If the Membership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MembershipMutation) OldRole(ctx context.Context) (v membership.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *MembershipMutation) ResetRole() {
	m.role = nil
}

// SetActive sets the "active" field.
func (m *MembershipMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *MembershipMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Membership entity.
// If the Membership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MembershipMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *MembershipMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MembershipMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MembershipMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Membership entity.
// If the Membership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MembershipMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MembershipMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *MembershipMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[membership.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *MembershipMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *MembershipMutation) WorkspaceIDs() (ids []string) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *MembershipMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// Where appends a list predicates to the MembershipMutation builder.
func (m *MembershipMutation) Where(ps ...predicate.Membership) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MembershipMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MembershipMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Membership, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MembershipMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MembershipMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Membership).
func (m *MembershipMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MembershipMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.workspace != nil {
		fields = append(fields, membership.FieldWorkspaceID)
	}
	if m.user_id != nil {
		fields = append(fields, membership.FieldUserID)
	}
	if m.role != nil {
		fields = append(fields, membership.FieldRole)
	}
	if m.active != nil {
		fields = append(fields, membership.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, membership.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MembershipMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case membership.FieldWorkspaceID:
		return m.WorkspaceID()
	case membership.FieldUserID:
		return m.UserID()
	case membership.FieldRole:
		return m.Role()
	case membership.FieldActive:
		return m.Active()
	case membership.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MembershipMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case membership.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case membership.FieldUserID:
		return m.OldUserID(ctx)
	case membership.FieldRole:
		return m.OldRole(ctx)
	case membership.FieldActive:
		return m.OldActive(ctx)
	case membership.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Membership field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MembershipMutation) SetField(name string, value ent.Value) error {
	switch name {
	case membership.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case membership.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case membership.FieldRole:
		v, ok := value.(membership.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case membership.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case membership.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Membership field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MembershipMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MembershipMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MembershipMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Membership numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MembershipMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MembershipMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MembershipMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Membership nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MembershipMutation) ResetField(name string) error {
	switch name {
	case membership.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case membership.FieldUserID:
		m.ResetUserID()
		return nil
	case membership.FieldRole:
		m.ResetRole()
		return nil
	case membership.FieldActive:
		m.ResetActive()
		return nil
	case membership.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Membership field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MembershipMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workspace != nil {
		edges = append(edges, membership.EdgeWorkspace)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MembershipMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case membership.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MembershipMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MembershipMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MembershipMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkspace {
		edges = append(edges, membership.EdgeWorkspace)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MembershipMutation) EdgeCleared(name string) bool {
	switch name {
	case membership.EdgeWorkspace:
		return m.clearedworkspace
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MembershipMutation) ClearEdge(name string) error {
	switch name {
	case membership.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown Membership unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MembershipMutation) ResetEdge(name string) error {
	switch name {
	case membership.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	}
	return fmt.Errorf("unknown Membership edge %s", name)
}

// RunArchiveMutation represents an operation that mutates the RunArchive nodes in the graph.
type RunArchiveMutation struct {
	config
	op            Op
	typ           string
	id            *string
	archive_path  *string
	summary       *string
	notes         *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*RunArchive, error)
	predicates    []predicate.RunArchive
}

var _ ent.Mutation = (*RunArchiveMutation)(nil)

// runarchiveOption allows management of the mutation configuration using functional options.
type runarchiveOption func(*RunArchiveMutation)

// newRunArchiveMutation creates new mutation for the RunArchive entity.
func newRunArchiveMutation(c config, op Op, opts ...runarchiveOption) *RunArchiveMutation {
	m := &RunArchiveMutation{
		config:        c,
		op:            op,
		typ:           TypeRunArchive,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunArchiveID sets the ID field of the mutation.
func withRunArchiveID(id string) runarchiveOption {
	return func(m *RunArchiveMutation) {
		var (
			err   error
			once  sync.Once
			value *RunArchive
		)
		m.oldValue = func(ctx context.Context) (*RunArchive, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunArchive.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunArchive sets the old RunArchive of the mutation.
func withRunArchive(node *RunArchive) runarchiveOption {
	return func(m *RunArchiveMutation) {
		m.oldValue = func(context.Context) (*RunArchive, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunArchiveMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunArchiveMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RunArchive entities.
func (m *RunArchiveMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunArchiveMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunArchiveMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunArchive.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *RunArchiveMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *RunArchiveMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the RunArchive entity.
// If the RunArchive object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunArchiveMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *RunArchiveMutation) ResetRunID() {
	m.run = nil
}

// SetArchivePath sets the "archive_path" field.
func (m *RunArchiveMutation) SetArchivePath(s string) {
	m.archive_path = &s
}

// ArchivePath returns the value of the "archive_path" field in the mutation.
func (m *RunArchiveMutation) ArchivePath() (r string, exists bool) {
	v := m.archive_path
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivePath returns the old "archive_path" field's value of the RunArchive entity.
// If the RunArchive object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunArchiveMutation) OldArchivePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivePath: %w", err)
	}
	return oldValue.ArchivePath, nil
}

// ResetArchivePath resets all changes to the "archive_path" field.
func (m *RunArchiveMutation) ResetArchivePath() {
	m.archive_path = nil
}

// SetSummary sets the "summary" field.
func (m *RunArchiveMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *RunArchiveMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the RunArchive entity.
// If the RunArchive object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunArchiveMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *RunArchiveMutation) ResetSummary() {
	m.summary = nil
}

// SetNotes sets the "notes" field.
func (m *RunArchiveMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *RunArchiveMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the RunArchive entity.
// If the RunArchive object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunArchiveMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ResetNotes resets all changes to the "notes" field.
func (m *RunArchiveMutation) ResetNotes() {
	m.notes = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RunArchiveMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunArchiveMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RunArchive entity.
// If the RunArchive object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunArchiveMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunArchiveMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the AgentRun entity.
func (m *RunArchiveMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[runarchive.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the AgentRun entity was cleared.
func (m *RunArchiveMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *RunArchiveMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *RunArchiveMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the RunArchiveMutation builder.
func (m *RunArchiveMutation) Where(ps ...predicate.RunArchive) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunArchiveMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunArchiveMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunArchive, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunArchiveMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunArchiveMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunArchive).
func (m *RunArchiveMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunArchiveMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.run != nil {
		fields = append(fields, runarchive.FieldRunID)
	}
	if m.archive_path != nil {
		fields = append(fields, runarchive.FieldArchivePath)
	}
	if m.summary != nil {
		fields = append(fields, runarchive.FieldSummary)
	}
	if m.notes != nil {
		fields = append(fields, runarchive.FieldNotes)
	}
	if m.created_at != nil {
		fields = append(fields, runarchive.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunArchiveMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runarchive.FieldRunID:
		return m.RunID()
	case runarchive.FieldArchivePath:
		return m.ArchivePath()
	case runarchive.FieldSummary:
		return m.Summary()
	case runarchive.FieldNotes:
		return m.Notes()
	case runarchive.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunArchiveMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runarchive.FieldRunID:
		return m.OldRunID(ctx)
	case runarchive.FieldArchivePath:
		return m.OldArchivePath(ctx)
	case runarchive.FieldSummary:
		return m.OldSummary(ctx)
	case runarchive.FieldNotes:
		return m.OldNotes(ctx)
	case runarchive.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RunArchive field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunArchiveMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runarchive.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case runarchive.FieldArchivePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivePath(v)
		return nil
	case runarchive.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case runarchive.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case runarchive.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RunArchive field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunArchiveMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunArchiveMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunArchiveMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RunArchive numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunArchiveMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunArchiveMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunArchiveMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RunArchive nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunArchiveMutation) ResetField(name string) error {
	switch name {
	case runarchive.FieldRunID:
		m.ResetRunID()
		return nil
	case runarchive.FieldArchivePath:
		m.ResetArchivePath()
		return nil
	case runarchive.FieldSummary:
		m.ResetSummary()
		return nil
	case runarchive.FieldNotes:
		m.ResetNotes()
		return nil
	case runarchive.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RunArchive field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunArchiveMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, runarchive.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunArchiveMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case runarchive.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunArchiveMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunArchiveMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunArchiveMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, runarchive.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunArchiveMutation) EdgeCleared(name string) bool {
	switch name {
	case runarchive.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunArchiveMutation) ClearEdge(name string) error {
	switch name {
	case runarchive.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown RunArchive unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunArchiveMutation) ResetEdge(name string) error {
	switch name {
	case runarchive.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown RunArchive edge %s", name)
}

// RunEventMutation represents an operation that mutates the RunEvent nodes in the graph.
type RunEventMutation struct {
	config
	op             Op
	typ            string
	id             *string
	seq            *int
	addseq         *int
	event_type     *string
	payload        *map[string]interface{}
	correlation_id *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	run            *string
	clearedrun     bool
	done           bool
	oldValue       func(context.Context) (*RunEvent, error)
	predicates     []predicate.RunEvent
}

var _ ent.Mutation = (*RunEventMutation)(nil)

// runeventOption allows management of the mutation configuration using functional options.
type runeventOption func(*RunEventMutation)

// newRunEventMutation creates new mutation for the RunEvent entity.
func newRunEventMutation(c config, op Op, opts ...runeventOption) *RunEventMutation {
	m := &RunEventMutation{
		config:        c,
		op:            op,
		typ:           TypeRunEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunEventID sets the ID field of the mutation.
func withRunEventID(id string) runeventOption {
	return func(m *RunEventMutation) {
		var (
			err   error
			once  sync.Once
			value *RunEvent
		)
		m.oldValue = func(ctx context.Context) (*RunEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunEvent sets the old RunEvent of the mutation.
func withRunEvent(node *RunEvent) runeventOption {
	return func(m *RunEventMutation) {
		m.oldValue = func(context.Context) (*RunEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RunEvent entities.
func (m *RunEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *RunEventMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *RunEventMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *RunEventMutation) ResetRunID() {
	m.run = nil
}

// SetSeq sets the "seq" field.
func (m *RunEventMutation) SetSeq(i int) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *RunEventMutation) Seq() (r int, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *RunEventMutation) AddSeq(i int) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *RunEventMutation) AddedSeq() (r int, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *RunEventMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetEventType sets the "event_type" field.
func (m *RunEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *RunEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *RunEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *RunEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *RunEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *RunEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[runevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *RunEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[runevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *RunEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, runevent.FieldPayload)
}

// SetCorrelationID sets the "correlation_id" field.
func (m *RunEventMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *RunEventMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (m *RunEventMutation) ClearCorrelationID() {
	m.correlation_id = nil
	m.clearedFields[runevent.FieldCorrelationID] = struct{}{}
}

// CorrelationIDCleared returns if the "correlation_id" field was cleared in this mutation.
func (m *RunEventMutation) CorrelationIDCleared() bool {
	_, ok := m.clearedFields[runevent.FieldCorrelationID]
	return ok
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *RunEventMutation) ResetCorrelationID() {
	m.correlation_id = nil
	delete(m.clearedFields, runevent.FieldCorrelationID)
}

// SetCreatedAt sets the "created_at" field.
func (m *RunEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the AgentRun entity.
func (m *RunEventMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[runevent.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the AgentRun entity was cleared.
func (m *RunEventMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *RunEventMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *RunEventMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the RunEventMutation builder.
func (m *RunEventMutation) Where(ps ...predicate.RunEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunEvent).
func (m *RunEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.run != nil {
		fields = append(fields, runevent.FieldRunID)
	}
	if m.seq != nil {
		fields = append(fields, runevent.FieldSeq)
	}
	if m.event_type != nil {
		fields = append(fields, runevent.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, runevent.FieldPayload)
	}
	if m.correlation_id != nil {
		fields = append(fields, runevent.FieldCorrelationID)
	}
	if m.created_at != nil {
		fields = append(fields, runevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runevent.FieldRunID:
		return m.RunID()
	case runevent.FieldSeq:
		return m.Seq()
	case runevent.FieldEventType:
		return m.EventType()
	case runevent.FieldPayload:
		return m.Payload()
	case runevent.FieldCorrelationID:
		return m.CorrelationID()
	case runevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runevent.FieldRunID:
		return m.OldRunID(ctx)
	case runevent.FieldSeq:
		return m.OldSeq(ctx)
	case runevent.FieldEventType:
		return m.OldEventType(ctx)
	case runevent.FieldPayload:
		return m.OldPayload(ctx)
	case runevent.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case runevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RunEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runevent.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case runevent.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case runevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case runevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case runevent.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case runevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RunEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunEventMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, runevent.FieldSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case runevent.FieldSeq:
		return m.AddedSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case runevent.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	}
	return fmt.Errorf("unknown RunEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(runevent.FieldPayload) {
		fields = append(fields, runevent.FieldPayload)
	}
	if m.FieldCleared(runevent.FieldCorrelationID) {
		fields = append(fields, runevent.FieldCorrelationID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunEventMutation) ClearField(name string) error {
	switch name {
	case runevent.FieldPayload:
		m.ClearPayload()
		return nil
	case runevent.FieldCorrelationID:
		m.ClearCorrelationID()
		return nil
	}
	return fmt.Errorf("unknown RunEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunEventMutation) ResetField(name string) error {
	switch name {
	case runevent.FieldRunID:
		m.ResetRunID()
		return nil
	case runevent.FieldSeq:
		m.ResetSeq()
		return nil
	case runevent.FieldEventType:
		m.ResetEventType()
		return nil
	case runevent.FieldPayload:
		m.ResetPayload()
		return nil
	case runevent.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case runevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RunEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, runevent.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case runevent.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, runevent.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunEventMutation) EdgeCleared(name string) bool {
	switch name {
	case runevent.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunEventMutation) ClearEdge(name string) error {
	switch name {
	case runevent.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown RunEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunEventMutation) ResetEdge(name string) error {
	switch name {
	case runevent.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown RunEvent edge %s", name)
}

// SubrunLinkMutation represents an operation that mutates the SubrunLink nodes in the graph.
type SubrunLinkMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	child_run_id       *string
	group_id           *string
	join_policy        *subrunlink.JoinPolicy
	quorum             *int
	addquorum          *int
	timeout_seconds    *int
	addtimeout_seconds *int
	failure_policy     *subrunlink.FailurePolicy
	metadata           *map[string]interface{}
	created_at         *time.Time
	clearedFields      map[string]struct{}
	parent             *string
	clearedparent      bool
	done               bool
	oldValue           func(context.Context) (*SubrunLink, error)
	predicates         []predicate.SubrunLink
}

var _ ent.Mutation = (*SubrunLinkMutation)(nil)

// subrunlinkOption allows management of the mutation configuration using functional options.
type subrunlinkOption func(*SubrunLinkMutation)

// newSubrunLinkMutation creates new mutation for the SubrunLink entity.
func newSubrunLinkMutation(c config, op Op, opts ...subrunlinkOption) *SubrunLinkMutation {
	m := &SubrunLinkMutation{
		config:        c,
		op:            op,
		typ:           TypeSubrunLink,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubrunLinkID sets the ID field of the mutation.
func withSubrunLinkID(id string) subrunlinkOption {
	return func(m *SubrunLinkMutation) {
		var (
			err   error
			once  sync.Once
			value *SubrunLink
		)
		m.oldValue = func(ctx context.Context) (*SubrunLink, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SubrunLink.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubrunLink sets the old SubrunLink of the mutation.
func withSubrunLink(node *SubrunLink) subrunlinkOption {
	return func(m *SubrunLinkMutation) {
		m.oldValue = func(context.Context) (*SubrunLink, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubrunLinkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubrunLinkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SubrunLink entities.
func (m *SubrunLinkMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubrunLinkMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubrunLinkMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SubrunLink.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetParentRunID sets the "parent_run_id" field.
func (m *SubrunLinkMutation) SetParentRunID(s string) {
	m.parent = &s
}

// ParentRunID returns the value of the "parent_run_id" field in the mutation.
func (m *SubrunLinkMutation) ParentRunID() (r string, exists bool) {
	v := m.parent
	if v == nil {
		return
	}
	return *v, true
}

// OldParentRunID returns the old "parent_run_id" field's value of the SubrunLink entity.
// If the SubrunLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubrunLinkMutation) OldParentRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentRunID: %w", err)
	}
	return oldValue.ParentRunID, nil
}

// ResetParentRunID resets all changes to the "parent_run_id" field.
func (m *SubrunLinkMutation) ResetParentRunID() {
	m.parent = nil
}

// SetChildRunID sets the "child_run_id" field.
func (m *SubrunLinkMutation) SetChildRunID(s string) {
	m.child_run_id = &s
}

// ChildRunID returns the value of the "child_run_id" field in the mutation.
func (m *SubrunLinkMutation) ChildRunID() (r string, exists bool) {
	v := m.child_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChildRunID returns the old "child_run_id" field's value of the SubrunLink entity.
// If the SubrunLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubrunLinkMutation) OldChildRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildRunID: %w", err)
	}
	return oldValue.ChildRunID, nil
}

// ResetChildRunID resets all changes to the "child_run_id" field.
func (m *SubrunLinkMutation) ResetChildRunID() {
	m.child_run_id = nil
}

// SetGroupID sets the "group_id" field.
func (m *SubrunLinkMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *SubrunLinkMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the SubrunLink entity.
// If the SubrunLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubrunLinkMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *SubrunLinkMutation) ResetGroupID() {
	m.group_id = nil
}

// SetJoinPolicy sets the "join_policy" field.
func (m *SubrunLinkMutation) SetJoinPolicy(sp subrunlink.JoinPolicy) {
	m.join_policy = &sp
}

// JoinPolicy returns the value of the "join_policy" field in the mutation.
func (m *SubrunLinkMutation) JoinPolicy() (r subrunlink.JoinPolicy, exists bool) {
	v := m.join_policy
	if v == nil {
		return
	}
	return *v, true
}

// OldJoinPolicy returns the old "join_policy" field's value of the SubrunLink entity.
// If the SubrunLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubrunLinkMutation) OldJoinPolicy(ctx context.Context) (v subrunlink.JoinPolicy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJoinPolicy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJoinPolicy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJoinPolicy: %w", err)
	}
	return oldValue.JoinPolicy, nil
}

// ResetJoinPolicy resets all changes to the "join_policy" field.
func (m *SubrunLinkMutation) ResetJoinPolicy() {
	m.join_policy = nil
}

// SetQuorum sets the "quorum" field.
func (m *SubrunLinkMutation) SetQuorum(i int) {
	m.quorum = &i
	m.addquorum = nil
}

// Quorum returns the value of the "quorum" field in the mutation.
func (m *SubrunLinkMutation) Quorum() (r int, exists bool) {
	v := m.quorum
	if v == nil {
		return
	}
	return *v, true
}

// OldQuorum returns the old "quorum" field's value of the SubrunLink entity.
// If the SubrunLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubrunLinkMutation) OldQuorum(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuorum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuorum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuorum: %w", err)
	}
	return oldValue.Quorum, nil
}

// AddQuorum adds i to the "quorum" field.
func (m *SubrunLinkMutation) AddQuorum(i int) {
	if m.addquorum != nil {
		*m.addquorum += i
	} else {
		m.addquorum = &i
	}
}

// AddedQuorum returns the value that was added to the "quorum" field in this mutation.
func (m *SubrunLinkMutation) AddedQuorum() (r int, exists bool) {
	v := m.addquorum
	if v == nil {
		return
	}
	return *v, true
}

// ClearQuorum clears the value of the "quorum" field.
func (m *SubrunLinkMutation) ClearQuorum() {
	m.quorum = nil
	m.addquorum = nil
	m.clearedFields[subrunlink.FieldQuorum] = struct{}{}
}

// QuorumCleared returns if the "quorum" field was cleared in this mutation.
func (m *SubrunLinkMutation) QuorumCleared() bool {
	_, ok := m.clearedFields[subrunlink.FieldQuorum]
	return ok
}

// ResetQuorum resets all changes to the "quorum" field.
func (m *SubrunLinkMutation) ResetQuorum() {
	m.quorum = nil
	m.addquorum = nil
	delete(m.clearedFields, subrunlink.FieldQuorum)
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (m *SubrunLinkMutation) SetTimeoutSeconds(i int) {
	m.timeout_seconds = &i
	m.addtimeout_seconds = nil
}

// TimeoutSeconds returns the value of the "timeout_seconds" field in the mutation.
func (m *SubrunLinkMutation) TimeoutSeconds() (r int, exists bool) {
	v := m.timeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutSeconds returns the old "timeout_seconds" field's value of the SubrunLink entity.
// If the SubrunLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubrunLinkMutation) OldTimeoutSeconds(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutSeconds: %w", err)
	}
	return oldValue.TimeoutSeconds, nil
}

// AddTimeoutSeconds adds i to the "timeout_seconds" field.
func (m *SubrunLinkMutation) AddTimeoutSeconds(i int) {
	if m.addtimeout_seconds != nil {
		*m.addtimeout_seconds += i
	} else {
		m.addtimeout_seconds = &i
	}
}

// AddedTimeoutSeconds returns the value that was added to the "timeout_seconds" field in this mutation.
func (m *SubrunLinkMutation) AddedTimeoutSeconds() (r int, exists bool) {
	v := m.addtimeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearTimeoutSeconds clears the value of the "timeout_seconds" field.
func (m *SubrunLinkMutation) ClearTimeoutSeconds() {
	m.timeout_seconds = nil
	m.addtimeout_seconds = nil
	m.clearedFields[subrunlink.FieldTimeoutSeconds] = struct{}{}
}

// TimeoutSecondsCleared returns if the "timeout_seconds" field was cleared in this mutation.
func (m *SubrunLinkMutation) TimeoutSecondsCleared() bool {
	_, ok := m.clearedFields[subrunlink.FieldTimeoutSeconds]
	return ok
}

// ResetTimeoutSeconds resets all changes to the "timeout_seconds" field.
func (m *SubrunLinkMutation) ResetTimeoutSeconds() {
	m.timeout_seconds = nil
	m.addtimeout_seconds = nil
	delete(m.clearedFields, subrunlink.FieldTimeoutSeconds)
}

// SetFailurePolicy sets the "failure_policy" field.
func (m *SubrunLinkMutation) SetFailurePolicy(sp subrunlink.FailurePolicy) {
	m.failure_policy = &sp
}

// FailurePolicy returns the value of the "failure_policy" field in the mutation.
func (m *SubrunLinkMutation) FailurePolicy() (r subrunlink.FailurePolicy, exists bool) {
	v := m.failure_policy
	if v == nil {
		return
	}
	return *v, true
}

// OldFailurePolicy returns the old "failure_policy" field's value of the SubrunLink entity.
// If the SubrunLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubrunLinkMutation) OldFailurePolicy(ctx context.Context) (v subrunlink.FailurePolicy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailurePolicy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailurePolicy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailurePolicy: %w", err)
	}
	return oldValue.FailurePolicy, nil
}

// ResetFailurePolicy resets all changes to the "failure_policy" field.
func (m *SubrunLinkMutation) ResetFailurePolicy() {
	m.failure_policy = nil
}

// SetMetadata sets the "metadata" field.
func (m *SubrunLinkMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *SubrunLinkMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the SubrunLink entity.
// If the SubrunLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubrunLinkMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *SubrunLinkMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[subrunlink.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *SubrunLinkMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[subrunlink.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *SubrunLinkMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, subrunlink.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *SubrunLinkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubrunLinkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SubrunLink entity.
// If the SubrunLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubrunLinkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubrunLinkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetParentID sets the "parent" edge to the AgentRun entity by id.
func (m *SubrunLinkMutation) SetParentID(id string) {
	m.parent = &id
}

// ClearParent clears the "parent" edge to the AgentRun entity.
func (m *SubrunLinkMutation) ClearParent() {
	m.clearedparent = true
	m.clearedFields[subrunlink.FieldParentRunID] = struct{}{}
}

// ParentCleared reports if the "parent" edge to the AgentRun entity was cleared.
func (m *SubrunLinkMutation) ParentCleared() bool {
	return m.clearedparent
}

// ParentID returns the "parent" edge ID in the mutation.
func (m *SubrunLinkMutation) ParentID() (id string, exists bool) {
	if m.parent != nil {
		return *m.parent, true
	}
	return
}

// ParentIDs returns the "parent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParentID instead. It exists only for internal usage by the builders.
func (m *SubrunLinkMutation) ParentIDs() (ids []string) {
	if id := m.parent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParent resets all changes to the "parent" edge.
func (m *SubrunLinkMutation) ResetParent() {
	m.parent = nil
	m.clearedparent = false
}

// Where appends a list predicates to the SubrunLinkMutation builder.
func (m *SubrunLinkMutation) Where(ps ...predicate.SubrunLink) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubrunLinkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubrunLinkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SubrunLink, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubrunLinkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubrunLinkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SubrunLink).
func (m *SubrunLinkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubrunLinkMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.parent != nil {
		fields = append(fields, subrunlink.FieldParentRunID)
	}
	if m.child_run_id != nil {
		fields = append(fields, subrunlink.FieldChildRunID)
	}
	if m.group_id != nil {
		fields = append(fields, subrunlink.FieldGroupID)
	}
	if m.join_policy != nil {
		fields = append(fields, subrunlink.FieldJoinPolicy)
	}
	if m.quorum != nil {
		fields = append(fields, subrunlink.FieldQuorum)
	}
	if m.timeout_seconds != nil {
		fields = append(fields, subrunlink.FieldTimeoutSeconds)
	}
	if m.failure_policy != nil {
		fields = append(fields, subrunlink.FieldFailurePolicy)
	}
	if m.metadata != nil {
		fields = append(fields, subrunlink.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, subrunlink.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubrunLinkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subrunlink.FieldParentRunID:
		return m.ParentRunID()
	case subrunlink.FieldChildRunID:
		return m.ChildRunID()
	case subrunlink.FieldGroupID:
		return m.GroupID()
	case subrunlink.FieldJoinPolicy:
		return m.JoinPolicy()
	case subrunlink.FieldQuorum:
		return m.Quorum()
	case subrunlink.FieldTimeoutSeconds:
		return m.TimeoutSeconds()
	case subrunlink.FieldFailurePolicy:
		return m.FailurePolicy()
	case subrunlink.FieldMetadata:
		return m.Metadata()
	case subrunlink.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubrunLinkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subrunlink.FieldParentRunID:
		return m.OldParentRunID(ctx)
	case subrunlink.FieldChildRunID:
		return m.OldChildRunID(ctx)
	case subrunlink.FieldGroupID:
		return m.OldGroupID(ctx)
	case subrunlink.FieldJoinPolicy:
		return m.OldJoinPolicy(ctx)
	case subrunlink.FieldQuorum:
		return m.OldQuorum(ctx)
	case subrunlink.FieldTimeoutSeconds:
		return m.OldTimeoutSeconds(ctx)
	case subrunlink.FieldFailurePolicy:
		return m.OldFailurePolicy(ctx)
	case subrunlink.FieldMetadata:
		return m.OldMetadata(ctx)
	case subrunlink.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SubrunLink field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubrunLinkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subrunlink.FieldParentRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentRunID(v)
		return nil
	case subrunlink.FieldChildRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildRunID(v)
		return nil
	case subrunlink.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case subrunlink.FieldJoinPolicy:
		v, ok := value.(subrunlink.JoinPolicy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJoinPolicy(v)
		return nil
	case subrunlink.FieldQuorum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuorum(v)
		return nil
	case subrunlink.FieldTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutSeconds(v)
		return nil
	case subrunlink.FieldFailurePolicy:
		v, ok := value.(subrunlink.FailurePolicy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailurePolicy(v)
		return nil
	case subrunlink.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case subrunlink.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SubrunLink field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubrunLinkMutation) AddedFields() []string {
	var fields []string
	if m.addquorum != nil {
		fields = append(fields, subrunlink.FieldQuorum)
	}
	if m.addtimeout_seconds != nil {
		fields = append(fields, subrunlink.FieldTimeoutSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubrunLinkMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case subrunlink.FieldQuorum:
		return m.AddedQuorum()
	case subrunlink.FieldTimeoutSeconds:
		return m.AddedTimeoutSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubrunLinkMutation) AddField(name string, value ent.Value) error {
	switch name {
	case subrunlink.FieldQuorum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuorum(v)
		return nil
	case subrunlink.FieldTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeoutSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown SubrunLink numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubrunLinkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(subrunlink.FieldQuorum) {
		fields = append(fields, subrunlink.FieldQuorum)
	}
	if m.FieldCleared(subrunlink.FieldTimeoutSeconds) {
		fields = append(fields, subrunlink.FieldTimeoutSeconds)
	}
	if m.FieldCleared(subrunlink.FieldMetadata) {
		fields = append(fields, subrunlink.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubrunLinkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubrunLinkMutation) ClearField(name string) error {
	switch name {
	case subrunlink.FieldQuorum:
		m.ClearQuorum()
		return nil
	case subrunlink.FieldTimeoutSeconds:
		m.ClearTimeoutSeconds()
		return nil
	case subrunlink.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown SubrunLink nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubrunLinkMutation) ResetField(name string) error {
	switch name {
	case subrunlink.FieldParentRunID:
		m.ResetParentRunID()
		return nil
	case subrunlink.FieldChildRunID:
		m.ResetChildRunID()
		return nil
	case subrunlink.FieldGroupID:
		m.ResetGroupID()
		return nil
	case subrunlink.FieldJoinPolicy:
		m.ResetJoinPolicy()
		return nil
	case subrunlink.FieldQuorum:
		m.ResetQuorum()
		return nil
	case subrunlink.FieldTimeoutSeconds:
		m.ResetTimeoutSeconds()
		return nil
	case subrunlink.FieldFailurePolicy:
		m.ResetFailurePolicy()
		return nil
	case subrunlink.FieldMetadata:
		m.ResetMetadata()
		return nil
	case subrunlink.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SubrunLink field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubrunLinkMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.parent != nil {
		edges = append(edges, subrunlink.EdgeParent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubrunLinkMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case subrunlink.EdgeParent:
		if id := m.parent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubrunLinkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubrunLinkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubrunLinkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedparent {
		edges = append(edges, subrunlink.EdgeParent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubrunLinkMutation) EdgeCleared(name string) bool {
	switch name {
	case subrunlink.EdgeParent:
		return m.clearedparent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubrunLinkMutation) ClearEdge(name string) error {
	switch name {
	case subrunlink.EdgeParent:
		m.ClearParent()
		return nil
	}
	return fmt.Errorf("unknown SubrunLink unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubrunLinkMutation) ResetEdge(name string) error {
	switch name {
	case subrunlink.EdgeParent:
		m.ResetParent()
		return nil
	}
	return fmt.Errorf("unknown SubrunLink edge %s", name)
}

// ToolCallMutation represents an operation that mutates the ToolCall nodes in the graph.
type ToolCallMutation struct {
	config
	op                Op
	typ               string
	id                *string
	tool_name         *string
	args              *map[string]interface{}
	risk_level        *toolcall.RiskLevel
	requires_approval *bool
	status            *toolcall.Status
	approved_by       *string
	approved_at       *time.Time
	started_at        *time.Time
	ended_at          *time.Time
	exit_code         *int
	addexit_code      *int
	stdout            *string
	stderr            *string
	result            *map[string]interface{}
	created_at        *time.Time
	clearedFields     map[string]struct{}
	run               *string
	clearedrun        bool
	step              *string
	clearedstep       bool
	done              bool
	oldValue          func(context.Context) (*ToolCall, error)
	predicates        []predicate.ToolCall
}

var _ ent.Mutation = (*ToolCallMutation)(nil)

// toolcallOption allows management of the mutation configuration using functional options.
type toolcallOption func(*ToolCallMutation)

// newToolCallMutation creates new mutation for the ToolCall entity.
func newToolCallMutation(c config, op Op, opts ...toolcallOption) *ToolCallMutation {
	m := &ToolCallMutation{
		config:        c,
		op:            op,
		typ:           TypeToolCall,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withToolCallID sets the ID field of the mutation.
func withToolCallID(id string) toolcallOption {
	return func(m *ToolCallMutation) {
		var (
			err   error
			once  sync.Once
			value *ToolCall
		)
		m.oldValue = func(ctx context.Context) (*ToolCall, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ToolCall.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withToolCall sets the old ToolCall of the mutation.
func withToolCall(node *ToolCall) toolcallOption {
	return func(m *ToolCallMutation) {
		m.oldValue = func(context.Context) (*ToolCall, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ToolCallMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ToolCallMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ToolCall entities.
func (m *ToolCallMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ToolCallMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ToolCallMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ToolCall.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *ToolCallMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ToolCallMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ToolCallMutation) ResetRunID() {
	m.run = nil
}

// SetStepID sets the "step_id" field.
func (m *ToolCallMutation) SetStepID(s string) {
	m.step = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *ToolCallMutation) StepID() (r string, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldStepID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ResetStepID resets all changes to the "step_id" field.
func (m *ToolCallMutation) ResetStepID() {
	m.step = nil
}

// SetToolName sets the "tool_name" field.
func (m *ToolCallMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *ToolCallMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *ToolCallMutation) ResetToolName() {
	m.tool_name = nil
}

// SetArgs sets the "args" field.
func (m *ToolCallMutation) SetArgs(value map[string]interface{}) {
	m.args = &value
}

// Args returns the value of the "args" field in the mutation.
func (m *ToolCallMutation) Args() (r map[string]interface{}, exists bool) {
	v := m.args
	if v == nil {
		return
	}
	return *v, true
}

// OldArgs returns the old "args" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldArgs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArgs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArgs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArgs: %w", err)
	}
	return oldValue.Args, nil
}

// ClearArgs clears the value of the "args" field.
func (m *ToolCallMutation) ClearArgs() {
	m.args = nil
	m.clearedFields[toolcall.FieldArgs] = struct{}{}
}

// ArgsCleared returns if the "args" field was cleared in this mutation.
func (m *ToolCallMutation) ArgsCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldArgs]
	return ok
}

// ResetArgs resets all changes to the "args" field.
func (m *ToolCallMutation) ResetArgs() {
	m.args = nil
	delete(m.clearedFields, toolcall.FieldArgs)
}

// SetRiskLevel sets the "risk_level" field.
func (m *ToolCallMutation) SetRiskLevel(tl toolcall.RiskLevel) {
	m.risk_level = &tl
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *ToolCallMutation) RiskLevel() (r toolcall.RiskLevel, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldRiskLevel(ctx context.Context) (v toolcall.RiskLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *ToolCallMutation) ResetRiskLevel() {
	m.risk_level = nil
}

// SetRequiresApproval sets the "requires_approval" field.
func (m *ToolCallMutation) SetRequiresApproval(b bool) {
	m.requires_approval = &b
}

// RequiresApproval returns the value of the "requires_approval" field in the mutation.
func (m *ToolCallMutation) RequiresApproval() (r bool, exists bool) {
	v := m.requires_approval
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiresApproval returns the old "requires_approval" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldRequiresApproval(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiresApproval is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiresApproval requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiresApproval: %w", err)
	}
	return oldValue.RequiresApproval, nil
}

// ResetRequiresApproval resets all changes to the "requires_approval" field.
func (m *ToolCallMutation) ResetRequiresApproval() {
	m.requires_approval = nil
}

// SetStatus sets the "status" field.
func (m *ToolCallMutation) SetStatus(t toolcall.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *ToolCallMutation) Status() (r toolcall.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldStatus(ctx context.Context) (v toolcall.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ToolCallMutation) ResetStatus() {
	m.status = nil
}

// SetApprovedBy sets the "approved_by" field.
func (m *ToolCallMutation) SetApprovedBy(s string) {
	m.approved_by = &s
}

// ApprovedBy returns the value of the "approved_by" field in the mutation.
func (m *ToolCallMutation) ApprovedBy() (r string, exists bool) {
	v := m.approved_by
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedBy returns the old "approved_by" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldApprovedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedBy: %w", err)
	}
	return oldValue.ApprovedBy, nil
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (m *ToolCallMutation) ClearApprovedBy() {
	m.approved_by = nil
	m.clearedFields[toolcall.FieldApprovedBy] = struct{}{}
}

// ApprovedByCleared returns if the "approved_by" field was cleared in this mutation.
func (m *ToolCallMutation) ApprovedByCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldApprovedBy]
	return ok
}

// ResetApprovedBy resets all changes to the "approved_by" field.
func (m *ToolCallMutation) ResetApprovedBy() {
	m.approved_by = nil
	delete(m.clearedFields, toolcall.FieldApprovedBy)
}

// SetApprovedAt sets the "approved_at" field.
func (m *ToolCallMutation) SetApprovedAt(t time.Time) {
	m.approved_at = &t
}

// ApprovedAt returns the value of the "approved_at" field in the mutation.
func (m *ToolCallMutation) ApprovedAt() (r time.Time, exists bool) {
	v := m.approved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedAt returns the old "approved_at" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldApprovedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedAt: %w", err)
	}
	return oldValue.ApprovedAt, nil
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (m *ToolCallMutation) ClearApprovedAt() {
	m.approved_at = nil
	m.clearedFields[toolcall.FieldApprovedAt] = struct{}{}
}

// ApprovedAtCleared returns if the "approved_at" field was cleared in this mutation.
func (m *ToolCallMutation) ApprovedAtCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldApprovedAt]
	return ok
}

// ResetApprovedAt resets all changes to the "approved_at" field.
func (m *ToolCallMutation) ResetApprovedAt() {
	m.approved_at = nil
	delete(m.clearedFields, toolcall.FieldApprovedAt)
}

// SetStartedAt sets the "started_at" field.
func (m *ToolCallMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ToolCallMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ToolCallMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[toolcall.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ToolCallMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ToolCallMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, toolcall.FieldStartedAt)
}

// SetEndedAt sets the "ended_at" field.
func (m *ToolCallMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *ToolCallMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *ToolCallMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[toolcall.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *ToolCallMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *ToolCallMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, toolcall.FieldEndedAt)
}

// SetExitCode sets the "exit_code" field.
func (m *ToolCallMutation) SetExitCode(i int) {
	m.exit_code = &i
	m.addexit_code = nil
}

// ExitCode returns the value of the "exit_code" field in the mutation.
func (m *ToolCallMutation) ExitCode() (r int, exists bool) {
	v := m.exit_code
	if v == nil {
		return
	}
	return *v, true
}

// OldExitCode returns the old "exit_code" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldExitCode(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExitCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExitCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExitCode: %w", err)
	}
	return oldValue.ExitCode, nil
}

// AddExitCode adds i to the "exit_code" field.
func (m *ToolCallMutation) AddExitCode(i int) {
	if m.addexit_code != nil {
		*m.addexit_code += i
	} else {
		m.addexit_code = &i
	}
}

// AddedExitCode returns the value that was added to the "exit_code" field in this mutation.
func (m *ToolCallMutation) AddedExitCode() (r int, exists bool) {
	v := m.addexit_code
	if v == nil {
		return
	}
	return *v, true
}

// ClearExitCode clears the value of the "exit_code" field.
func (m *ToolCallMutation) ClearExitCode() {
	m.exit_code = nil
	m.addexit_code = nil
	m.clearedFields[toolcall.FieldExitCode] = struct{}{}
}

// ExitCodeCleared returns if the "exit_code" field was cleared in this mutation.
func (m *ToolCallMutation) ExitCodeCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldExitCode]
	return ok
}

// ResetExitCode resets all changes to the "exit_code" field.
func (m *ToolCallMutation) ResetExitCode() {
	m.exit_code = nil
	m.addexit_code = nil
	delete(m.clearedFields, toolcall.FieldExitCode)
}

// SetStdout sets the "stdout" field.
func (m *ToolCallMutation) SetStdout(s string) {
	m.stdout = &s
}

// Stdout returns the value of the "stdout" field in the mutation.
func (m *ToolCallMutation) Stdout() (r string, exists bool) {
	v := m.stdout
	if v == nil {
		return
	}
	return *v, true
}

// OldStdout returns the old "stdout" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldStdout(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStdout is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStdout requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStdout: %w", err)
	}
	return oldValue.Stdout, nil
}

// ResetStdout resets all changes to the "stdout" field.
func (m *ToolCallMutation) ResetStdout() {
	m.stdout = nil
}

// SetStderr sets the "stderr" field.
func (m *ToolCallMutation) SetStderr(s string) {
	m.stderr = &s
}

// Stderr returns the value of the "stderr" field in the mutation.
func (m *ToolCallMutation) Stderr() (r string, exists bool) {
	v := m.stderr
	if v == nil {
		return
	}
	return *v, true
}

// OldStderr returns the old "stderr" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldStderr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStderr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStderr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStderr: %w", err)
	}
	return oldValue.Stderr, nil
}

// ResetStderr resets all changes to the "stderr" field.
func (m *ToolCallMutation) ResetStderr() {
	m.stderr = nil
}

// SetResult sets the "result" field.
func (m *ToolCallMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *ToolCallMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *ToolCallMutation) ClearResult() {
	m.result = nil
	m.clearedFields[toolcall.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *ToolCallMutation) ResultCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *ToolCallMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, toolcall.FieldResult)
}

// SetCreatedAt sets the "created_at" field.
func (m *ToolCallMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ToolCallMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ToolCallMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the AgentRun entity.
func (m *ToolCallMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[toolcall.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the AgentRun entity was cleared.
func (m *ToolCallMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *ToolCallMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *ToolCallMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// ClearStep clears the "step" edge to the AgentStep entity.
func (m *ToolCallMutation) ClearStep() {
	m.clearedstep = true
	m.clearedFields[toolcall.FieldStepID] = struct{}{}
}

// StepCleared reports if the "step" edge to the AgentStep entity was cleared.
func (m *ToolCallMutation) StepCleared() bool {
	return m.clearedstep
}

// StepIDs returns the "step" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StepID instead. It exists only for internal usage by the builders.
func (m *ToolCallMutation) StepIDs() (ids []string) {
	if id := m.step; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStep resets all changes to the "step" edge.
func (m *ToolCallMutation) ResetStep() {
	m.step = nil
	m.clearedstep = false
}

// Where appends a list predicates to the ToolCallMutation builder.
func (m *ToolCallMutation) Where(ps ...predicate.ToolCall) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ToolCallMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ToolCallMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ToolCall, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ToolCallMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ToolCallMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ToolCall).
func (m *ToolCallMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ToolCallMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.run != nil {
		fields = append(fields, toolcall.FieldRunID)
	}
	if m.step != nil {
		fields = append(fields, toolcall.FieldStepID)
	}
	if m.tool_name != nil {
		fields = append(fields, toolcall.FieldToolName)
	}
	if m.args != nil {
		fields = append(fields, toolcall.FieldArgs)
	}
	if m.risk_level != nil {
		fields = append(fields, toolcall.FieldRiskLevel)
	}
	if m.requires_approval != nil {
		fields = append(fields, toolcall.FieldRequiresApproval)
	}
	if m.status != nil {
		fields = append(fields, toolcall.FieldStatus)
	}
	if m.approved_by != nil {
		fields = append(fields, toolcall.FieldApprovedBy)
	}
	if m.approved_at != nil {
		fields = append(fields, toolcall.FieldApprovedAt)
	}
	if m.started_at != nil {
		fields = append(fields, toolcall.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, toolcall.FieldEndedAt)
	}
	if m.exit_code != nil {
		fields = append(fields, toolcall.FieldExitCode)
	}
	if m.stdout != nil {
		fields = append(fields, toolcall.FieldStdout)
	}
	if m.stderr != nil {
		fields = append(fields, toolcall.FieldStderr)
	}
	if m.result != nil {
		fields = append(fields, toolcall.FieldResult)
	}
	if m.created_at != nil {
		fields = append(fields, toolcall.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ToolCallMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case toolcall.FieldRunID:
		return m.RunID()
	case toolcall.FieldStepID:
		return m.StepID()
	case toolcall.FieldToolName:
		return m.ToolName()
	case toolcall.FieldArgs:
		return m.Args()
	case toolcall.FieldRiskLevel:
		return m.RiskLevel()
	case toolcall.FieldRequiresApproval:
		return m.RequiresApproval()
	case toolcall.FieldStatus:
		return m.Status()
	case toolcall.FieldApprovedBy:
		return m.ApprovedBy()
	case toolcall.FieldApprovedAt:
		return m.ApprovedAt()
	case toolcall.FieldStartedAt:
		return m.StartedAt()
	case toolcall.FieldEndedAt:
		return m.EndedAt()
	case toolcall.FieldExitCode:
		return m.ExitCode()
	case toolcall.FieldStdout:
		return m.Stdout()
	case toolcall.FieldStderr:
		return m.Stderr()
	case toolcall.FieldResult:
		return m.Result()
	case toolcall.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ToolCallMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case toolcall.FieldRunID:
		return m.OldRunID(ctx)
	case toolcall.FieldStepID:
		return m.OldStepID(ctx)
	case toolcall.FieldToolName:
		return m.OldToolName(ctx)
	case toolcall.FieldArgs:
		return m.OldArgs(ctx)
	case toolcall.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case toolcall.FieldRequiresApproval:
		return m.OldRequiresApproval(ctx)
	case toolcall.FieldStatus:
		return m.OldStatus(ctx)
	case toolcall.FieldApprovedBy:
		return m.OldApprovedBy(ctx)
	case toolcall.FieldApprovedAt:
		return m.OldApprovedAt(ctx)
	case toolcall.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case toolcall.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case toolcall.FieldExitCode:
		return m.OldExitCode(ctx)
	case toolcall.FieldStdout:
		return m.OldStdout(ctx)
	case toolcall.FieldStderr:
		return m.OldStderr(ctx)
	case toolcall.FieldResult:
		return m.OldResult(ctx)
	case toolcall.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ToolCall field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolCallMutation) SetField(name string, value ent.Value) error {
	switch name {
	case toolcall.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case toolcall.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case toolcall.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case toolcall.FieldArgs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArgs(v)
		return nil
	case toolcall.FieldRiskLevel:
		v, ok := value.(toolcall.RiskLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case toolcall.FieldRequiresApproval:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiresApproval(v)
		return nil
	case toolcall.FieldStatus:
		v, ok := value.(toolcall.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case toolcall.FieldApprovedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedBy(v)
		return nil
	case toolcall.FieldApprovedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedAt(v)
		return nil
	case toolcall.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case toolcall.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case toolcall.FieldExitCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExitCode(v)
		return nil
	case toolcall.FieldStdout:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStdout(v)
		return nil
	case toolcall.FieldStderr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStderr(v)
		return nil
	case toolcall.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case toolcall.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ToolCall field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ToolCallMutation) AddedFields() []string {
	var fields []string
	if m.addexit_code != nil {
		fields = append(fields, toolcall.FieldExitCode)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ToolCallMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case toolcall.FieldExitCode:
		return m.AddedExitCode()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolCallMutation) AddField(name string, value ent.Value) error {
	switch name {
	case toolcall.FieldExitCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExitCode(v)
		return nil
	}
	return fmt.Errorf("unknown ToolCall numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ToolCallMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(toolcall.FieldArgs) {
		fields = append(fields, toolcall.FieldArgs)
	}
	if m.FieldCleared(toolcall.FieldApprovedBy) {
		fields = append(fields, toolcall.FieldApprovedBy)
	}
	if m.FieldCleared(toolcall.FieldApprovedAt) {
		fields = append(fields, toolcall.FieldApprovedAt)
	}
	if m.FieldCleared(toolcall.FieldStartedAt) {
		fields = append(fields, toolcall.FieldStartedAt)
	}
	if m.FieldCleared(toolcall.FieldEndedAt) {
		fields = append(fields, toolcall.FieldEndedAt)
	}
	if m.FieldCleared(toolcall.FieldExitCode) {
		fields = append(fields, toolcall.FieldExitCode)
	}
	if m.FieldCleared(toolcall.FieldResult) {
		fields = append(fields, toolcall.FieldResult)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ToolCallMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ToolCallMutation) ClearField(name string) error {
	switch name {
	case toolcall.FieldArgs:
		m.ClearArgs()
		return nil
	case toolcall.FieldApprovedBy:
		m.ClearApprovedBy()
		return nil
	case toolcall.FieldApprovedAt:
		m.ClearApprovedAt()
		return nil
	case toolcall.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case toolcall.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case toolcall.FieldExitCode:
		m.ClearExitCode()
		return nil
	case toolcall.FieldResult:
		m.ClearResult()
		return nil
	}
	return fmt.Errorf("unknown ToolCall nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ToolCallMutation) ResetField(name string) error {
	switch name {
	case toolcall.FieldRunID:
		m.ResetRunID()
		return nil
	case toolcall.FieldStepID:
		m.ResetStepID()
		return nil
	case toolcall.FieldToolName:
		m.ResetToolName()
		return nil
	case toolcall.FieldArgs:
		m.ResetArgs()
		return nil
	case toolcall.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case toolcall.FieldRequiresApproval:
		m.ResetRequiresApproval()
		return nil
	case toolcall.FieldStatus:
		m.ResetStatus()
		return nil
	case toolcall.FieldApprovedBy:
		m.ResetApprovedBy()
		return nil
	case toolcall.FieldApprovedAt:
		m.ResetApprovedAt()
		return nil
	case toolcall.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case toolcall.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case toolcall.FieldExitCode:
		m.ResetExitCode()
		return nil
	case toolcall.FieldStdout:
		m.ResetStdout()
		return nil
	case toolcall.FieldStderr:
		m.ResetStderr()
		return nil
	case toolcall.FieldResult:
		m.ResetResult()
		return nil
	case toolcall.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ToolCall field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ToolCallMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.run != nil {
		edges = append(edges, toolcall.EdgeRun)
	}
	if m.step != nil {
		edges = append(edges, toolcall.EdgeStep)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ToolCallMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case toolcall.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	case toolcall.EdgeStep:
		if id := m.step; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ToolCallMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ToolCallMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ToolCallMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrun {
		edges = append(edges, toolcall.EdgeRun)
	}
	if m.clearedstep {
		edges = append(edges, toolcall.EdgeStep)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ToolCallMutation) EdgeCleared(name string) bool {
	switch name {
	case toolcall.EdgeRun:
		return m.clearedrun
	case toolcall.EdgeStep:
		return m.clearedstep
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ToolCallMutation) ClearEdge(name string) error {
	switch name {
	case toolcall.EdgeRun:
		m.ClearRun()
		return nil
	case toolcall.EdgeStep:
		m.ClearStep()
		return nil
	}
	return fmt.Errorf("unknown ToolCall unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ToolCallMutation) ResetEdge(name string) error {
	switch name {
	case toolcall.EdgeRun:
		m.ResetRun()
		return nil
	case toolcall.EdgeStep:
		m.ResetStep()
		return nil
	}
	return fmt.Errorf("unknown ToolCall edge %s", name)
}

// ToolDefinitionMutation represents an operation that mutates the ToolDefinition nodes in the graph.
type ToolDefinitionMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	name                      *string
	args_schema               *map[string]interface{}
	default_risk_level        *tooldefinition.DefaultRiskLevel
	default_requires_approval *bool
	enabled                   *bool
	created_at                *time.Time
	clearedFields             map[string]struct{}
	workspace                 *string
	clearedworkspace          bool
	done                      bool
	oldValue                  func(context.Context) (*ToolDefinition, error)
	predicates                []predicate.ToolDefinition
}

var _ ent.Mutation = (*ToolDefinitionMutation)(nil)

// tooldefinitionOption allows management of the mutation configuration using functional options.
type tooldefinitionOption func(*ToolDefinitionMutation)

// newToolDefinitionMutation creates new mutation for the ToolDefinition entity.
func newToolDefinitionMutation(c config, op Op, opts ...tooldefinitionOption) *ToolDefinitionMutation {
	m := &ToolDefinitionMutation{
		config:        c,
		op:            op,
		typ:           TypeToolDefinition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withToolDefinitionID sets the ID field of the mutation.
func withToolDefinitionID(id string) tooldefinitionOption {
	return func(m *ToolDefinitionMutation) {
		var (
			err   error
			once  sync.Once
			value *ToolDefinition
		)
		m.oldValue = func(ctx context.Context) (*ToolDefinition, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ToolDefinition.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withToolDefinition sets the old ToolDefinition of the mutation.
func withToolDefinition(node *ToolDefinition) tooldefinitionOption {
	return func(m *ToolDefinitionMutation) {
		m.oldValue = func(context.Context) (*ToolDefinition, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ToolDefinitionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ToolDefinitionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ToolDefinition entities.
func (m *ToolDefinitionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ToolDefinitionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ToolDefinitionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ToolDefinition.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *ToolDefinitionMutation) SetWorkspaceID(s string) {
	m.workspace = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *ToolDefinitionMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the ToolDefinition entity.
// If the ToolDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolDefinitionMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *ToolDefinitionMutation) ResetWorkspaceID() {
	m.workspace = nil
}

// SetName sets the "name" field.
func (m *ToolDefinitionMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ToolDefinitionMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ToolDefinition entity.
// If the ToolDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolDefinitionMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ToolDefinitionMutation) ResetName() {
	m.name = nil
}

// SetArgsSchema sets the "args_schema" field.
func (m *ToolDefinitionMutation) SetArgsSchema(value map[string]interface{}) {
	m.args_schema = &value
}

// ArgsSchema returns the value of the "args_schema" field in the mutation.
func (m *ToolDefinitionMutation) ArgsSchema() (r map[string]interface{}, exists bool) {
	v := m.args_schema
	if v == nil {
		return
	}
	return *v, true
}

// OldArgsSchema returns the old "args_schema" field's value of the ToolDefinition entity.
// If the ToolDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolDefinitionMutation) OldArgsSchema(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArgsSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArgsSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArgsSchema: %w", err)
	}
	return oldValue.ArgsSchema, nil
}

// ClearArgsSchema clears the value of the "args_schema" field.
func (m *ToolDefinitionMutation) ClearArgsSchema() {
	m.args_schema = nil
	m.clearedFields[tooldefinition.FieldArgsSchema] = struct{}{}
}

// ArgsSchemaCleared returns if the "args_schema" field was cleared in this mutation.
func (m *ToolDefinitionMutation) ArgsSchemaCleared() bool {
	_, ok := m.clearedFields[tooldefinition.FieldArgsSchema]
	return ok
}

// ResetArgsSchema resets all changes to the "args_schema" field.
func (m *ToolDefinitionMutation) ResetArgsSchema() {
	m.args_schema = nil
	delete(m.clearedFields, tooldefinition.FieldArgsSchema)
}

// SetDefaultRiskLevel sets the "default_risk_level" field.
func (m *ToolDefinitionMutation) SetDefaultRiskLevel(trl tooldefinition.DefaultRiskLevel) {
	m.default_risk_level = &trl
}

// DefaultRiskLevel returns the value of the "default_risk_level" field in the mutation.
func (m *ToolDefinitionMutation) DefaultRiskLevel() (r tooldefinition.DefaultRiskLevel, exists bool) {
	v := m.default_risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultRiskLevel returns the old "default_risk_level" field's value of the ToolDefinition entity.
// If the ToolDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolDefinitionMutation) OldDefaultRiskLevel(ctx context.Context) (v tooldefinition.DefaultRiskLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultRiskLevel: %w", err)
	}
	return oldValue.DefaultRiskLevel, nil
}

// ResetDefaultRiskLevel resets all changes to the "default_risk_level" field.
func (m *ToolDefinitionMutation) ResetDefaultRiskLevel() {
	m.default_risk_level = nil
}

// SetDefaultRequiresApproval sets the "default_requires_approval" field.
func (m *ToolDefinitionMutation) SetDefaultRequiresApproval(b bool) {
	m.default_requires_approval = &b
}

// DefaultRequiresApproval returns the value of the "default_requires_approval" field in the mutation.
func (m *ToolDefinitionMutation) DefaultRequiresApproval() (r bool, exists bool) {
	v := m.default_requires_approval
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultRequiresApproval returns the old "default_requires_approval" field's value of the ToolDefinition entity.
// If the ToolDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolDefinitionMutation) OldDefaultRequiresApproval(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultRequiresApproval is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultRequiresApproval requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultRequiresApproval: %w", err)
	}
	return oldValue.DefaultRequiresApproval, nil
}

// ResetDefaultRequiresApproval resets all changes to the "default_requires_approval" field.
func (m *ToolDefinitionMutation) ResetDefaultRequiresApproval() {
	m.default_requires_approval = nil
}

// SetEnabled sets the "enabled" field.
func (m *ToolDefinitionMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *ToolDefinitionMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the ToolDefinition entity.
// If the ToolDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolDefinitionMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *ToolDefinitionMutation) ResetEnabled() {
	m.enabled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ToolDefinitionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ToolDefinitionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ToolDefinition entity.
// If the ToolDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolDefinitionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ToolDefinitionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (m *ToolDefinitionMutation) ClearWorkspace() {
	m.clearedworkspace = true
	m.clearedFields[tooldefinition.FieldWorkspaceID] = struct{}{}
}

// WorkspaceCleared reports if the "workspace" edge to the Workspace entity was cleared.
func (m *ToolDefinitionMutation) WorkspaceCleared() bool {
	return m.clearedworkspace
}

// WorkspaceIDs returns the "workspace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkspaceID instead. It exists only for internal usage by the builders.
func (m *ToolDefinitionMutation) WorkspaceIDs() (ids []string) {
	if id := m.workspace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkspace resets all changes to the "workspace" edge.
func (m *ToolDefinitionMutation) ResetWorkspace() {
	m.workspace = nil
	m.clearedworkspace = false
}

// Where appends a list predicates to the ToolDefinitionMutation builder.
func (m *ToolDefinitionMutation) Where(ps ...predicate.ToolDefinition) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ToolDefinitionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ToolDefinitionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ToolDefinition, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ToolDefinitionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ToolDefinitionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ToolDefinition).
func (m *ToolDefinitionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ToolDefinitionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.workspace != nil {
		fields = append(fields, tooldefinition.FieldWorkspaceID)
	}
	if m.name != nil {
		fields = append(fields, tooldefinition.FieldName)
	}
	if m.args_schema != nil {
		fields = append(fields, tooldefinition.FieldArgsSchema)
	}
	if m.default_risk_level != nil {
		fields = append(fields, tooldefinition.FieldDefaultRiskLevel)
	}
	if m.default_requires_approval != nil {
		fields = append(fields, tooldefinition.FieldDefaultRequiresApproval)
	}
	if m.enabled != nil {
		fields = append(fields, tooldefinition.FieldEnabled)
	}
	if m.created_at != nil {
		fields = append(fields, tooldefinition.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ToolDefinitionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tooldefinition.FieldWorkspaceID:
		return m.WorkspaceID()
	case tooldefinition.FieldName:
		return m.Name()
	case tooldefinition.FieldArgsSchema:
		return m.ArgsSchema()
	case tooldefinition.FieldDefaultRiskLevel:
		return m.DefaultRiskLevel()
	case tooldefinition.FieldDefaultRequiresApproval:
		return m.DefaultRequiresApproval()
	case tooldefinition.FieldEnabled:
		return m.Enabled()
	case tooldefinition.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ToolDefinitionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tooldefinition.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case tooldefinition.FieldName:
		return m.OldName(ctx)
	case tooldefinition.FieldArgsSchema:
		return m.OldArgsSchema(ctx)
	case tooldefinition.FieldDefaultRiskLevel:
		return m.OldDefaultRiskLevel(ctx)
	case tooldefinition.FieldDefaultRequiresApproval:
		return m.OldDefaultRequiresApproval(ctx)
	case tooldefinition.FieldEnabled:
		return m.OldEnabled(ctx)
	case tooldefinition.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ToolDefinition field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolDefinitionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tooldefinition.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case tooldefinition.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case tooldefinition.FieldArgsSchema:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArgsSchema(v)
		return nil
	case tooldefinition.FieldDefaultRiskLevel:
		v, ok := value.(tooldefinition.DefaultRiskLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultRiskLevel(v)
		return nil
	case tooldefinition.FieldDefaultRequiresApproval:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultRequiresApproval(v)
		return nil
	case tooldefinition.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case tooldefinition.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ToolDefinition field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ToolDefinitionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ToolDefinitionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolDefinitionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ToolDefinition numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ToolDefinitionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tooldefinition.FieldArgsSchema) {
		fields = append(fields, tooldefinition.FieldArgsSchema)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ToolDefinitionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ToolDefinitionMutation) ClearField(name string) error {
	switch name {
	case tooldefinition.FieldArgsSchema:
		m.ClearArgsSchema()
		return nil
	}
	return fmt.Errorf("unknown ToolDefinition nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ToolDefinitionMutation) ResetField(name string) error {
	switch name {
	case tooldefinition.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case tooldefinition.FieldName:
		m.ResetName()
		return nil
	case tooldefinition.FieldArgsSchema:
		m.ResetArgsSchema()
		return nil
	case tooldefinition.FieldDefaultRiskLevel:
		m.ResetDefaultRiskLevel()
		return nil
	case tooldefinition.FieldDefaultRequiresApproval:
		m.ResetDefaultRequiresApproval()
		return nil
	case tooldefinition.FieldEnabled:
		m.ResetEnabled()
		return nil
	case tooldefinition.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ToolDefinition field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ToolDefinitionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workspace != nil {
		edges = append(edges, tooldefinition.EdgeWorkspace)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ToolDefinitionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tooldefinition.EdgeWorkspace:
		if id := m.workspace; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ToolDefinitionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ToolDefinitionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ToolDefinitionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkspace {
		edges = append(edges, tooldefinition.EdgeWorkspace)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ToolDefinitionMutation) EdgeCleared(name string) bool {
	switch name {
	case tooldefinition.EdgeWorkspace:
		return m.clearedworkspace
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ToolDefinitionMutation) ClearEdge(name string) error {
	switch name {
	case tooldefinition.EdgeWorkspace:
		m.ClearWorkspace()
		return nil
	}
	return fmt.Errorf("unknown ToolDefinition unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ToolDefinitionMutation) ResetEdge(name string) error {
	switch name {
	case tooldefinition.EdgeWorkspace:
		m.ResetWorkspace()
		return nil
	}
	return fmt.Errorf("unknown ToolDefinition edge %s", name)
}

// UserActionLogMutation represents an operation that mutates the UserActionLog nodes in the graph.
type UserActionLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	workspace_id  *string
	user_id       *string
	action        *string
	target_type   *string
	target_id     *string
	detail        *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*UserActionLog, error)
	predicates    []predicate.UserActionLog
}

var _ ent.Mutation = (*UserActionLogMutation)(nil)

// useractionlogOption allows management of the mutation configuration using functional options.
type useractionlogOption func(*UserActionLogMutation)

// newUserActionLogMutation creates new mutation for the UserActionLog entity.
func newUserActionLogMutation(c config, op Op, opts ...useractionlogOption) *UserActionLogMutation {
	m := &UserActionLogMutation{
		config:        c,
		op:            op,
		typ:           TypeUserActionLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserActionLogID sets the ID field of the mutation.
func withUserActionLogID(id string) useractionlogOption {
	return func(m *UserActionLogMutation) {
		var (
			err   error
			once  sync.Once
			value *UserActionLog
		)
		m.oldValue = func(ctx context.Context) (*UserActionLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserActionLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserActionLog sets the old UserActionLog of the mutation.
func withUserActionLog(node *UserActionLog) useractionlogOption {
	return func(m *UserActionLogMutation) {
		m.oldValue = func(context.Context) (*UserActionLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserActionLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserActionLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserActionLog entities.
func (m *UserActionLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserActionLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserActionLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserActionLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *UserActionLogMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *UserActionLogMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the UserActionLog entity.
// If the UserActionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserActionLogMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *UserActionLogMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetUserID sets the "user_id" field.
func (m *UserActionLogMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserActionLogMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserActionLog entity.
// If the UserActionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserActionLogMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserActionLogMutation) ResetUserID() {
	m.user_id = nil
}

// SetAction sets the "action" field.
func (m *UserActionLogMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *UserActionLogMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the UserActionLog entity.
// If the UserActionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserActionLogMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *UserActionLogMutation) ResetAction() {
	m.action = nil
}

// SetTargetType sets the "target_type" field.
func (m *UserActionLogMutation) SetTargetType(s string) {
	m.target_type = &s
}

// TargetType returns the value of the "target_type" field in the mutation.
func (m *UserActionLogMutation) TargetType() (r string, exists bool) {
	v := m.target_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetType returns the old "target_type" field's value of the UserActionLog entity.
// If the UserActionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserActionLogMutation) OldTargetType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetType: %w", err)
	}
	return oldValue.TargetType, nil
}

// ResetTargetType resets all changes to the "target_type" field.
func (m *UserActionLogMutation) ResetTargetType() {
	m.target_type = nil
}

// SetTargetID sets the "target_id" field.
func (m *UserActionLogMutation) SetTargetID(s string) {
	m.target_id = &s
}

// TargetID returns the value of the "target_id" field in the mutation.
func (m *UserActionLogMutation) TargetID() (r string, exists bool) {
	v := m.target_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetID returns the old "target_id" field's value of the UserActionLog entity.
// If the UserActionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserActionLogMutation) OldTargetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetID: %w", err)
	}
	return oldValue.TargetID, nil
}

// ResetTargetID resets all changes to the "target_id" field.
func (m *UserActionLogMutation) ResetTargetID() {
	m.target_id = nil
}

// SetDetail sets the "detail" field.
func (m *UserActionLogMutation) SetDetail(value map[string]interface{}) {
	m.detail = &value
}

// Detail returns the value of the "detail" field in the mutation.
func (m *UserActionLogMutation) Detail() (r map[string]interface{}, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the UserActionLog entity.
// If the UserActionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserActionLogMutation) OldDetail(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *UserActionLogMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[useractionlog.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *UserActionLogMutation) DetailCleared() bool {
	_, ok := m.clearedFields[useractionlog.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *UserActionLogMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, useractionlog.FieldDetail)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserActionLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserActionLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserActionLog entity.
// If the UserActionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserActionLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserActionLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the UserActionLogMutation builder.
func (m *UserActionLogMutation) Where(ps ...predicate.UserActionLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserActionLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserActionLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserActionLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserActionLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserActionLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserActionLog).
func (m *UserActionLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserActionLogMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.workspace_id != nil {
		fields = append(fields, useractionlog.FieldWorkspaceID)
	}
	if m.user_id != nil {
		fields = append(fields, useractionlog.FieldUserID)
	}
	if m.action != nil {
		fields = append(fields, useractionlog.FieldAction)
	}
	if m.target_type != nil {
		fields = append(fields, useractionlog.FieldTargetType)
	}
	if m.target_id != nil {
		fields = append(fields, useractionlog.FieldTargetID)
	}
	if m.detail != nil {
		fields = append(fields, useractionlog.FieldDetail)
	}
	if m.created_at != nil {
		fields = append(fields, useractionlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserActionLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case useractionlog.FieldWorkspaceID:
		return m.WorkspaceID()
	case useractionlog.FieldUserID:
		return m.UserID()
	case useractionlog.FieldAction:
		return m.Action()
	case useractionlog.FieldTargetType:
		return m.TargetType()
	case useractionlog.FieldTargetID:
		return m.TargetID()
	case useractionlog.FieldDetail:
		return m.Detail()
	case useractionlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserActionLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case useractionlog.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case useractionlog.FieldUserID:
		return m.OldUserID(ctx)
	case useractionlog.FieldAction:
		return m.OldAction(ctx)
	case useractionlog.FieldTargetType:
		return m.OldTargetType(ctx)
	case useractionlog.FieldTargetID:
		return m.OldTargetID(ctx)
	case useractionlog.FieldDetail:
		return m.OldDetail(ctx)
	case useractionlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserActionLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserActionLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case useractionlog.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case useractionlog.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case useractionlog.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case useractionlog.FieldTargetType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetType(v)
		return nil
	case useractionlog.FieldTargetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetID(v)
		return nil
	case useractionlog.FieldDetail:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case useractionlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserActionLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserActionLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserActionLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserActionLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserActionLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserActionLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(useractionlog.FieldDetail) {
		fields = append(fields, useractionlog.FieldDetail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserActionLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserActionLogMutation) ClearField(name string) error {
	switch name {
	case useractionlog.FieldDetail:
		m.ClearDetail()
		return nil
	}
	return fmt.Errorf("unknown UserActionLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserActionLogMutation) ResetField(name string) error {
	switch name {
	case useractionlog.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case useractionlog.FieldUserID:
		m.ResetUserID()
		return nil
	case useractionlog.FieldAction:
		m.ResetAction()
		return nil
	case useractionlog.FieldTargetType:
		m.ResetTargetType()
		return nil
	case useractionlog.FieldTargetID:
		m.ResetTargetID()
		return nil
	case useractionlog.FieldDetail:
		m.ResetDetail()
		return nil
	case useractionlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserActionLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserActionLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserActionLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserActionLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserActionLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserActionLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserActionLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserActionLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserActionLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserActionLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserActionLog edge %s", name)
}

// WorkspaceMutation represents an operation that mutates the Workspace nodes in the graph.
type WorkspaceMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	name                    *string
	active                  *bool
	created_at              *time.Time
	clearedFields           map[string]struct{}
	memberships             map[string]struct{}
	removedmemberships      map[string]struct{}
	clearedmemberships      bool
	agents                  map[string]struct{}
	removedagents           map[string]struct{}
	clearedagents           bool
	runs                    map[string]struct{}
	removedruns             map[string]struct{}
	clearedruns             bool
	tool_definitions        map[string]struct{}
	removedtool_definitions map[string]struct{}
	clearedtool_definitions bool
	done                    bool
	oldValue                func(context.Context) (*Workspace, error)
	predicates              []predicate.Workspace
}

var _ ent.Mutation = (*WorkspaceMutation)(nil)

// workspaceOption allows management of the mutation configuration using functional options.
type workspaceOption func(*WorkspaceMutation)

// newWorkspaceMutation creates new mutation for the Workspace entity.
func newWorkspaceMutation(c config, op Op, opts ...workspaceOption) *WorkspaceMutation {
	m := &WorkspaceMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkspace,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkspaceID sets the ID field of the mutation.
func withWorkspaceID(id string) workspaceOption {
	return func(m *WorkspaceMutation) {
		var (
			err   error
			once  sync.Once
			value *Workspace
		)
		m.oldValue = func(ctx context.Context) (*Workspace, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Workspace.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkspace sets the old Workspace of the mutation.
func withWorkspace(node *Workspace) workspaceOption {
	return func(m *WorkspaceMutation) {
		m.oldValue = func(context.Context) (*Workspace, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkspaceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkspaceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Workspace entities.
func (m *WorkspaceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkspaceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkspaceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Workspace.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *WorkspaceMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WorkspaceMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WorkspaceMutation) ResetName() {
	m.name = nil
}

// SetActive sets the "active" field.
func (m *WorkspaceMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *WorkspaceMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *WorkspaceMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkspaceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkspaceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkspaceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddMembershipIDs adds the "memberships" edge to the Membership entity by ids.
func (m *WorkspaceMutation) AddMembershipIDs(ids ...string) {
	if m.memberships == nil {
		m.memberships = make(map[string]struct{})
	}
	for i := range ids {
		m.memberships[ids[i]] = struct{}{}
	}
}

// ClearMemberships clears the "memberships" edge to the Membership entity.
func (m *WorkspaceMutation) ClearMemberships() {
	m.clearedmemberships = true
}

// MembershipsCleared reports if the "memberships" edge to the Membership entity was cleared.
func (m *WorkspaceMutation) MembershipsCleared() bool {
	return m.clearedmemberships
}

// RemoveMembershipIDs removes the "memberships" edge to the Membership entity by IDs.
func (m *WorkspaceMutation) RemoveMembershipIDs(ids ...string) {
	if m.removedmemberships == nil {
		m.removedmemberships = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.memberships, ids[i])
		m.removedmemberships[ids[i]] = struct{}{}
	}
}

// RemovedMemberships returns the removed IDs of the "memberships" edge to the Membership entity.
func (m *WorkspaceMutation) RemovedMembershipsIDs() (ids []string) {
	for id := range m.removedmemberships {
		ids = append(ids, id)
	}
	return
}

// MembershipsIDs returns the "memberships" edge IDs in the mutation.
func (m *WorkspaceMutation) MembershipsIDs() (ids []string) {
	for id := range m.memberships {
		ids = append(ids, id)
	}
	return
}

// ResetMemberships resets all changes to the "memberships" edge.
func (m *WorkspaceMutation) ResetMemberships() {
	m.memberships = nil
	m.clearedmemberships = false
	m.removedmemberships = nil
}

// AddAgentIDs adds the "agents" edge to the Agent entity by ids.
func (m *WorkspaceMutation) AddAgentIDs(ids ...string) {
	if m.agents == nil {
		m.agents = make(map[string]struct{})
	}
	for i := range ids {
		m.agents[ids[i]] = struct{}{}
	}
}

// ClearAgents clears the "agents" edge to the Agent entity.
func (m *WorkspaceMutation) ClearAgents() {
	m.clearedagents = true
}

// AgentsCleared reports if the "agents" edge to the Agent entity was cleared.
func (m *WorkspaceMutation) AgentsCleared() bool {
	return m.clearedagents
}

// RemoveAgentIDs removes the "agents" edge to the Agent entity by IDs.
func (m *WorkspaceMutation) RemoveAgentIDs(ids ...string) {
	if m.removedagents == nil {
		m.removedagents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.agents, ids[i])
		m.removedagents[ids[i]] = struct{}{}
	}
}

// RemovedAgents returns the removed IDs of the "agents" edge to the Agent entity.
func (m *WorkspaceMutation) RemovedAgentsIDs() (ids []string) {
	for id := range m.removedagents {
		ids = append(ids, id)
	}
	return
}

// AgentsIDs returns the "agents" edge IDs in the mutation.
func (m *WorkspaceMutation) AgentsIDs() (ids []string) {
	for id := range m.agents {
		ids = append(ids, id)
	}
	return
}

// ResetAgents resets all changes to the "agents" edge.
func (m *WorkspaceMutation) ResetAgents() {
	m.agents = nil
	m.clearedagents = false
	m.removedagents = nil
}

// AddRunIDs adds the "runs" edge to the AgentRun entity by ids.
func (m *WorkspaceMutation) AddRunIDs(ids ...string) {
	if m.runs == nil {
		m.runs = make(map[string]struct{})
	}
	for i := range ids {
		m.runs[ids[i]] = struct{}{}
	}
}

// ClearRuns clears the "runs" edge to the AgentRun entity.
func (m *WorkspaceMutation) ClearRuns() {
	m.clearedruns = true
}

// RunsCleared reports if the "runs" edge to the AgentRun entity was cleared.
func (m *WorkspaceMutation) RunsCleared() bool {
	return m.clearedruns
}

// RemoveRunIDs removes the "runs" edge to the AgentRun entity by IDs.
func (m *WorkspaceMutation) RemoveRunIDs(ids ...string) {
	if m.removedruns == nil {
		m.removedruns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.runs, ids[i])
		m.removedruns[ids[i]] = struct{}{}
	}
}

// RemovedRuns returns the removed IDs of the "runs" edge to the AgentRun entity.
func (m *WorkspaceMutation) RemovedRunsIDs() (ids []string) {
	for id := range m.removedruns {
		ids = append(ids, id)
	}
	return
}

// RunsIDs returns the "runs" edge IDs in the mutation.
func (m *WorkspaceMutation) RunsIDs() (ids []string) {
	for id := range m.runs {
		ids = append(ids, id)
	}
	return
}

// ResetRuns resets all changes to the "runs" edge.
func (m *WorkspaceMutation) ResetRuns() {
	m.runs = nil
	m.clearedruns = false
	m.removedruns = nil
}

// AddToolDefinitionIDs adds the "tool_definitions" edge to the ToolDefinition entity by ids.
func (m *WorkspaceMutation) AddToolDefinitionIDs(ids ...string) {
	if m.tool_definitions == nil {
		m.tool_definitions = make(map[string]struct{})
	}
	for i := range ids {
		m.tool_definitions[ids[i]] = struct{}{}
	}
}

// ClearToolDefinitions clears the "tool_definitions" edge to the ToolDefinition entity.
func (m *WorkspaceMutation) ClearToolDefinitions() {
	m.clearedtool_definitions = true
}

// ToolDefinitionsCleared reports if the "tool_definitions" edge to the ToolDefinition entity was cleared.
func (m *WorkspaceMutation) ToolDefinitionsCleared() bool {
	return m.clearedtool_definitions
}

// RemoveToolDefinitionIDs removes the "tool_definitions" edge to the ToolDefinition entity by IDs.
func (m *WorkspaceMutation) RemoveToolDefinitionIDs(ids ...string) {
	if m.removedtool_definitions == nil {
		m.removedtool_definitions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tool_definitions, ids[i])
		m.removedtool_definitions[ids[i]] = struct{}{}
	}
}

// RemovedToolDefinitions returns the removed IDs of the "tool_definitions" edge to the ToolDefinition entity.
func (m *WorkspaceMutation) RemovedToolDefinitionsIDs() (ids []string) {
	for id := range m.removedtool_definitions {
		ids = append(ids, id)
	}
	return
}

// ToolDefinitionsIDs returns the "tool_definitions" edge IDs in the mutation.
func (m *WorkspaceMutation) ToolDefinitionsIDs() (ids []string) {
	for id := range m.tool_definitions {
		ids = append(ids, id)
	}
	return
}

// ResetToolDefinitions resets all changes to the "tool_definitions" edge.
func (m *WorkspaceMutation) ResetToolDefinitions() {
	m.tool_definitions = nil
	m.clearedtool_definitions = false
	m.removedtool_definitions = nil
}

// Where appends a list predicates to the WorkspaceMutation builder.
func (m *WorkspaceMutation) Where(ps ...predicate.Workspace) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkspaceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkspaceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Workspace, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkspaceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkspaceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Workspace).
func (m *WorkspaceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkspaceMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, workspace.FieldName)
	}
	if m.active != nil {
		fields = append(fields, workspace.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, workspace.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkspaceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workspace.FieldName:
		return m.Name()
	case workspace.FieldActive:
		return m.Active()
	case workspace.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkspaceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workspace.FieldName:
		return m.OldName(ctx)
	case workspace.FieldActive:
		return m.OldActive(ctx)
	case workspace.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Workspace field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkspaceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workspace.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case workspace.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case workspace.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Workspace field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkspaceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkspaceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkspaceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Workspace numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkspaceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkspaceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkspaceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Workspace nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkspaceMutation) ResetField(name string) error {
	switch name {
	case workspace.FieldName:
		m.ResetName()
		return nil
	case workspace.FieldActive:
		m.ResetActive()
		return nil
	case workspace.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Workspace field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkspaceMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.memberships != nil {
		edges = append(edges, workspace.EdgeMemberships)
	}
	if m.agents != nil {
		edges = append(edges, workspace.EdgeAgents)
	}
	if m.runs != nil {
		edges = append(edges, workspace.EdgeRuns)
	}
	if m.tool_definitions != nil {
		edges = append(edges, workspace.EdgeToolDefinitions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkspaceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workspace.EdgeMemberships:
		ids := make([]ent.Value, 0, len(m.memberships))
		for id := range m.memberships {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.agents))
		for id := range m.agents {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.runs))
		for id := range m.runs {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeToolDefinitions:
		ids := make([]ent.Value, 0, len(m.tool_definitions))
		for id := range m.tool_definitions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkspaceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedmemberships != nil {
		edges = append(edges, workspace.EdgeMemberships)
	}
	if m.removedagents != nil {
		edges = append(edges, workspace.EdgeAgents)
	}
	if m.removedruns != nil {
		edges = append(edges, workspace.EdgeRuns)
	}
	if m.removedtool_definitions != nil {
		edges = append(edges, workspace.EdgeToolDefinitions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkspaceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workspace.EdgeMemberships:
		ids := make([]ent.Value, 0, len(m.removedmemberships))
		for id := range m.removedmemberships {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.removedagents))
		for id := range m.removedagents {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.removedruns))
		for id := range m.removedruns {
			ids = append(ids, id)
		}
		return ids
	case workspace.EdgeToolDefinitions:
		ids := make([]ent.Value, 0, len(m.removedtool_definitions))
		for id := range m.removedtool_definitions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkspaceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedmemberships {
		edges = append(edges, workspace.EdgeMemberships)
	}
	if m.clearedagents {
		edges = append(edges, workspace.EdgeAgents)
	}
	if m.clearedruns {
		edges = append(edges, workspace.EdgeRuns)
	}
	if m.clearedtool_definitions {
		edges = append(edges, workspace.EdgeToolDefinitions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkspaceMutation) EdgeCleared(name string) bool {
	switch name {
	case workspace.EdgeMemberships:
		return m.clearedmemberships
	case workspace.EdgeAgents:
		return m.clearedagents
	case workspace.EdgeRuns:
		return m.clearedruns
	case workspace.EdgeToolDefinitions:
		return m.clearedtool_definitions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkspaceMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Workspace unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkspaceMutation) ResetEdge(name string) error {
	switch name {
	case workspace.EdgeMemberships:
		m.ResetMemberships()
		return nil
	case workspace.EdgeAgents:
		m.ResetAgents()
		return nil
	case workspace.EdgeRuns:
		m.ResetRuns()
		return nil
	case workspace.EdgeToolDefinitions:
		m.ResetToolDefinitions()
		return nil
	}
	return fmt.Errorf("unknown Workspace edge %s", name)
}
