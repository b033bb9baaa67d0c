// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/agentmaestro/agentmaestro/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentmaestro/agentmaestro/ent/agent"
	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/ent/agentstep"
	"github.com/agentmaestro/agentmaestro/ent/membership"
	"github.com/agentmaestro/agentmaestro/ent/runarchive"
	"github.com/agentmaestro/agentmaestro/ent/runevent"
	"github.com/agentmaestro/agentmaestro/ent/subrunlink"
	"github.com/agentmaestro/agentmaestro/ent/toolcall"
	"github.com/agentmaestro/agentmaestro/ent/tooldefinition"
	"github.com/agentmaestro/agentmaestro/ent/useractionlog"
	"github.com/agentmaestro/agentmaestro/ent/workspace"

	stdsql "database/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Agent is the client for interacting with the Agent builders.
	Agent *AgentClient
	// AgentRun is the client for interacting with the AgentRun builders.
	AgentRun *AgentRunClient
	// AgentStep is the client for interacting with the AgentStep builders.
	AgentStep *AgentStepClient
	// Membership is the client for interacting with the Membership builders.
	Membership *MembershipClient
	// RunArchive is the client for interacting with the RunArchive builders.
	RunArchive *RunArchiveClient
	// RunEvent is the client for interacting with the RunEvent builders.
	RunEvent *RunEventClient
	// SubrunLink is the client for interacting with the SubrunLink builders.
	SubrunLink *SubrunLinkClient
	// ToolCall is the client for interacting with the ToolCall builders.
	ToolCall *ToolCallClient
	// ToolDefinition is the client for interacting with the ToolDefinition builders.
	ToolDefinition *ToolDefinitionClient
	// UserActionLog is the client for interacting with the UserActionLog builders.
	UserActionLog *UserActionLogClient
	// Workspace is the client for interacting with the Workspace builders.
	Workspace *WorkspaceClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Agent = NewAgentClient(c.config)
	c.AgentRun = NewAgentRunClient(c.config)
	c.AgentStep = NewAgentStepClient(c.config)
	c.Membership = NewMembershipClient(c.config)
	c.RunArchive = NewRunArchiveClient(c.config)
	c.RunEvent = NewRunEventClient(c.config)
	c.SubrunLink = NewSubrunLinkClient(c.config)
	c.ToolCall = NewToolCallClient(c.config)
	c.ToolDefinition = NewToolDefinitionClient(c.config)
	c.UserActionLog = NewUserActionLogClient(c.config)
	c.Workspace = NewWorkspaceClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		Agent:          NewAgentClient(cfg),
		AgentRun:       NewAgentRunClient(cfg),
		AgentStep:      NewAgentStepClient(cfg),
		Membership:     NewMembershipClient(cfg),
		RunArchive:     NewRunArchiveClient(cfg),
		RunEvent:       NewRunEventClient(cfg),
		SubrunLink:     NewSubrunLinkClient(cfg),
		ToolCall:       NewToolCallClient(cfg),
		ToolDefinition: NewToolDefinitionClient(cfg),
		UserActionLog:  NewUserActionLogClient(cfg),
		Workspace:      NewWorkspaceClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		Agent:          NewAgentClient(cfg),
		AgentRun:       NewAgentRunClient(cfg),
		AgentStep:      NewAgentStepClient(cfg),
		Membership:     NewMembershipClient(cfg),
		RunArchive:     NewRunArchiveClient(cfg),
		RunEvent:       NewRunEventClient(cfg),
		SubrunLink:     NewSubrunLinkClient(cfg),
		ToolCall:       NewToolCallClient(cfg),
		ToolDefinition: NewToolDefinitionClient(cfg),
		UserActionLog:  NewUserActionLogClient(cfg),
		Workspace:      NewWorkspaceClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Agent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Agent, c.AgentRun, c.AgentStep, c.Membership, c.RunArchive, c.RunEvent,
		c.SubrunLink, c.ToolCall, c.ToolDefinition, c.UserActionLog, c.Workspace,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Agent, c.AgentRun, c.AgentStep, c.Membership, c.RunArchive, c.RunEvent,
		c.SubrunLink, c.ToolCall, c.ToolDefinition, c.UserActionLog, c.Workspace,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentMutation:
		return c.Agent.mutate(ctx, m)
	case *AgentRunMutation:
		return c.AgentRun.mutate(ctx, m)
	case *AgentStepMutation:
		return c.AgentStep.mutate(ctx, m)
	case *MembershipMutation:
		return c.Membership.mutate(ctx, m)
	case *RunArchiveMutation:
		return c.RunArchive.mutate(ctx, m)
	case *RunEventMutation:
		return c.RunEvent.mutate(ctx, m)
	case *SubrunLinkMutation:
		return c.SubrunLink.mutate(ctx, m)
	case *ToolCallMutation:
		return c.ToolCall.mutate(ctx, m)
	case *ToolDefinitionMutation:
		return c.ToolDefinition.mutate(ctx, m)
	case *UserActionLogMutation:
		return c.UserActionLog.mutate(ctx, m)
	case *WorkspaceMutation:
		return c.Workspace.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentClient is a client for the Agent schema.
type AgentClient struct {
	config
}

// NewAgentClient returns a client for the Agent from the given config.
func NewAgentClient(c config) *AgentClient {
	return &AgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agent.Hooks(f(g(h())))`.
func (c *AgentClient) Use(hooks ...Hook) {
	c.hooks.Agent = append(c.hooks.Agent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agent.Intercept(f(g(h())))`.
func (c *AgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Agent = append(c.inters.Agent, interceptors...)
}

// Create returns a builder for creating a Agent entity.
func (c *AgentClient) Create() *AgentCreate {
	mutation := newAgentMutation(c.config, OpCreate)
	return &AgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Agent entities.
func (c *AgentClient) CreateBulk(builders ...*AgentCreate) *AgentCreateBulk {
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentClient) MapCreateBulk(slice any, setFunc func(*AgentCreate, int)) *AgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentCreateBulk{err: fmt.Errorf("calling to AgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Agent.
func (c *AgentClient) Update() *AgentUpdate {
	mutation := newAgentMutation(c.config, OpUpdate)
	return &AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentClient) UpdateOne(_m *Agent) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgent(_m))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentClient) UpdateOneID(id string) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgentID(id))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Agent.
func (c *AgentClient) Delete() *AgentDelete {
	mutation := newAgentMutation(c.config, OpDelete)
	return &AgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentClient) DeleteOne(_m *Agent) *AgentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentClient) DeleteOneID(id string) *AgentDeleteOne {
	builder := c.Delete().Where(agent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDeleteOne{builder}
}

// Query returns a query builder for Agent.
func (c *AgentClient) Query() *AgentQuery {
	return &AgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a Agent entity by its id.
func (c *AgentClient) Get(ctx context.Context, id string) (*Agent, error) {
	return c.Query().Where(agent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentClient) GetX(ctx context.Context, id string) *Agent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkspace queries the workspace edge of a Agent.
func (c *AgentClient) QueryWorkspace(_m *Agent) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agent.WorkspaceTable, agent.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRuns queries the runs edge of a Agent.
func (c *AgentClient) QueryRuns(_m *Agent) *AgentRunQuery {
	query := (&AgentRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(agentrun.Table, agentrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.RunsTable, agent.RunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentClient) Hooks() []Hook {
	return c.hooks.Agent
}

// Interceptors returns the client interceptors.
func (c *AgentClient) Interceptors() []Interceptor {
	return c.inters.Agent
}

func (c *AgentClient) mutate(ctx context.Context, m *AgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Agent mutation op: %q", m.Op())
	}
}

// AgentRunClient is a client for the AgentRun schema.
type AgentRunClient struct {
	config
}

// NewAgentRunClient returns a client for the AgentRun from the given config.
func NewAgentRunClient(c config) *AgentRunClient {
	return &AgentRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentrun.Hooks(f(g(h())))`.
func (c *AgentRunClient) Use(hooks ...Hook) {
	c.hooks.AgentRun = append(c.hooks.AgentRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentrun.Intercept(f(g(h())))`.
func (c *AgentRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentRun = append(c.inters.AgentRun, interceptors...)
}

// Create returns a builder for creating a AgentRun entity.
func (c *AgentRunClient) Create() *AgentRunCreate {
	mutation := newAgentRunMutation(c.config, OpCreate)
	return &AgentRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentRun entities.
func (c *AgentRunClient) CreateBulk(builders ...*AgentRunCreate) *AgentRunCreateBulk {
	return &AgentRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentRunClient) MapCreateBulk(slice any, setFunc func(*AgentRunCreate, int)) *AgentRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentRunCreateBulk{err: fmt.Errorf("calling to AgentRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentRun.
func (c *AgentRunClient) Update() *AgentRunUpdate {
	mutation := newAgentRunMutation(c.config, OpUpdate)
	return &AgentRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentRunClient) UpdateOne(_m *AgentRun) *AgentRunUpdateOne {
	mutation := newAgentRunMutation(c.config, OpUpdateOne, withAgentRun(_m))
	return &AgentRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentRunClient) UpdateOneID(id string) *AgentRunUpdateOne {
	mutation := newAgentRunMutation(c.config, OpUpdateOne, withAgentRunID(id))
	return &AgentRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentRun.
func (c *AgentRunClient) Delete() *AgentRunDelete {
	mutation := newAgentRunMutation(c.config, OpDelete)
	return &AgentRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentRunClient) DeleteOne(_m *AgentRun) *AgentRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentRunClient) DeleteOneID(id string) *AgentRunDeleteOne {
	builder := c.Delete().Where(agentrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentRunDeleteOne{builder}
}

// Query returns a query builder for AgentRun.
func (c *AgentRunClient) Query() *AgentRunQuery {
	return &AgentRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentRun},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentRun entity by its id.
func (c *AgentRunClient) Get(ctx context.Context, id string) (*AgentRun, error) {
	return c.Query().Where(agentrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentRunClient) GetX(ctx context.Context, id string) *AgentRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkspace queries the workspace edge of a AgentRun.
func (c *AgentRunClient) QueryWorkspace(_m *AgentRun) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrun.Table, agentrun.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentrun.WorkspaceTable, agentrun.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgent queries the agent edge of a AgentRun.
func (c *AgentRunClient) QueryAgent(_m *AgentRun) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrun.Table, agentrun.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentrun.AgentTable, agentrun.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySteps queries the steps edge of a AgentRun.
func (c *AgentRunClient) QuerySteps(_m *AgentRun) *AgentStepQuery {
	query := (&AgentStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrun.Table, agentrun.FieldID, id),
			sqlgraph.To(agentstep.Table, agentstep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentrun.StepsTable, agentrun.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a AgentRun.
func (c *AgentRunClient) QueryEvents(_m *AgentRun) *RunEventQuery {
	query := (&RunEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrun.Table, agentrun.FieldID, id),
			sqlgraph.To(runevent.Table, runevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentrun.EventsTable, agentrun.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryToolCalls queries the tool_calls edge of a AgentRun.
func (c *AgentRunClient) QueryToolCalls(_m *AgentRun) *ToolCallQuery {
	query := (&ToolCallClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrun.Table, agentrun.FieldID, id),
			sqlgraph.To(toolcall.Table, toolcall.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentrun.ToolCallsTable, agentrun.ToolCallsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChildLinks queries the child_links edge of a AgentRun.
func (c *AgentRunClient) QueryChildLinks(_m *AgentRun) *SubrunLinkQuery {
	query := (&SubrunLinkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrun.Table, agentrun.FieldID, id),
			sqlgraph.To(subrunlink.Table, subrunlink.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentrun.ChildLinksTable, agentrun.ChildLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryArchives queries the archives edge of a AgentRun.
func (c *AgentRunClient) QueryArchives(_m *AgentRun) *RunArchiveQuery {
	query := (&RunArchiveClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrun.Table, agentrun.FieldID, id),
			sqlgraph.To(runarchive.Table, runarchive.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentrun.ArchivesTable, agentrun.ArchivesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentRunClient) Hooks() []Hook {
	return c.hooks.AgentRun
}

// Interceptors returns the client interceptors.
func (c *AgentRunClient) Interceptors() []Interceptor {
	return c.inters.AgentRun
}

func (c *AgentRunClient) mutate(ctx context.Context, m *AgentRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentRun mutation op: %q", m.Op())
	}
}

// AgentStepClient is a client for the AgentStep schema.
type AgentStepClient struct {
	config
}

// NewAgentStepClient returns a client for the AgentStep from the given config.
func NewAgentStepClient(c config) *AgentStepClient {
	return &AgentStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentstep.Hooks(f(g(h())))`.
func (c *AgentStepClient) Use(hooks ...Hook) {
	c.hooks.AgentStep = append(c.hooks.AgentStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentstep.Intercept(f(g(h())))`.
func (c *AgentStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentStep = append(c.inters.AgentStep, interceptors...)
}

// Create returns a builder for creating a AgentStep entity.
func (c *AgentStepClient) Create() *AgentStepCreate {
	mutation := newAgentStepMutation(c.config, OpCreate)
	return &AgentStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentStep entities.
func (c *AgentStepClient) CreateBulk(builders ...*AgentStepCreate) *AgentStepCreateBulk {
	return &AgentStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentStepClient) MapCreateBulk(slice any, setFunc func(*AgentStepCreate, int)) *AgentStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentStepCreateBulk{err: fmt.Errorf("calling to AgentStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentStep.
func (c *AgentStepClient) Update() *AgentStepUpdate {
	mutation := newAgentStepMutation(c.config, OpUpdate)
	return &AgentStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentStepClient) UpdateOne(_m *AgentStep) *AgentStepUpdateOne {
	mutation := newAgentStepMutation(c.config, OpUpdateOne, withAgentStep(_m))
	return &AgentStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentStepClient) UpdateOneID(id string) *AgentStepUpdateOne {
	mutation := newAgentStepMutation(c.config, OpUpdateOne, withAgentStepID(id))
	return &AgentStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentStep.
func (c *AgentStepClient) Delete() *AgentStepDelete {
	mutation := newAgentStepMutation(c.config, OpDelete)
	return &AgentStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentStepClient) DeleteOne(_m *AgentStep) *AgentStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentStepClient) DeleteOneID(id string) *AgentStepDeleteOne {
	builder := c.Delete().Where(agentstep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentStepDeleteOne{builder}
}

// Query returns a query builder for AgentStep.
func (c *AgentStepClient) Query() *AgentStepQuery {
	return &AgentStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentStep},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentStep entity by its id.
func (c *AgentStepClient) Get(ctx context.Context, id string) (*AgentStep, error) {
	return c.Query().Where(agentstep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentStepClient) GetX(ctx context.Context, id string) *AgentStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a AgentStep.
func (c *AgentStepClient) QueryRun(_m *AgentStep) *AgentRunQuery {
	query := (&AgentRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentstep.Table, agentstep.FieldID, id),
			sqlgraph.To(agentrun.Table, agentrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentstep.RunTable, agentstep.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryToolCall queries the tool_call edge of a AgentStep.
func (c *AgentStepClient) QueryToolCall(_m *AgentStep) *ToolCallQuery {
	query := (&ToolCallClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentstep.Table, agentstep.FieldID, id),
			sqlgraph.To(toolcall.Table, toolcall.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, agentstep.ToolCallTable, agentstep.ToolCallColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentStepClient) Hooks() []Hook {
	return c.hooks.AgentStep
}

// Interceptors returns the client interceptors.
func (c *AgentStepClient) Interceptors() []Interceptor {
	return c.inters.AgentStep
}

func (c *AgentStepClient) mutate(ctx context.Context, m *AgentStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentStep mutation op: %q", m.Op())
	}
}

// MembershipClient is a client for the Membership schema.
type MembershipClient struct {
	config
}

// NewMembershipClient returns a client for the Membership from the given config.
func NewMembershipClient(c config) *MembershipClient {
	return &MembershipClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `membership.Hooks(f(g(h())))`.
func (c *MembershipClient) Use(hooks ...Hook) {
	c.hooks.Membership = append(c.hooks.Membership, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `membership.Intercept(f(g(h())))`.
func (c *MembershipClient) Intercept(interceptors ...Interceptor) {
	c.inters.Membership = append(c.inters.Membership, interceptors...)
}

// Create returns a builder for creating a Membership entity.
func (c *MembershipClient) Create() *MembershipCreate {
	mutation := newMembershipMutation(c.config, OpCreate)
	return &MembershipCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Membership entities.
func (c *MembershipClient) CreateBulk(builders ...*MembershipCreate) *MembershipCreateBulk {
	return &MembershipCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MembershipClient) MapCreateBulk(slice any, setFunc func(*MembershipCreate, int)) *MembershipCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MembershipCreateBulk{err: fmt.Errorf("calling to MembershipClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MembershipCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MembershipCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Membership.
func (c *MembershipClient) Update() *MembershipUpdate {
	mutation := newMembershipMutation(c.config, OpUpdate)
	return &MembershipUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MembershipClient) UpdateOne(_m *Membership) *MembershipUpdateOne {
	mutation := newMembershipMutation(c.config, OpUpdateOne, withMembership(_m))
	return &MembershipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MembershipClient) UpdateOneID(id string) *MembershipUpdateOne {
	mutation := newMembershipMutation(c.config, OpUpdateOne, withMembershipID(id))
	return &MembershipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Membership.
func (c *MembershipClient) Delete() *MembershipDelete {
	mutation := newMembershipMutation(c.config, OpDelete)
	return &MembershipDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MembershipClient) DeleteOne(_m *Membership) *MembershipDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MembershipClient) DeleteOneID(id string) *MembershipDeleteOne {
	builder := c.Delete().Where(membership.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MembershipDeleteOne{builder}
}

// Query returns a query builder for Membership.
func (c *MembershipClient) Query() *MembershipQuery {
	return &MembershipQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMembership},
		inters: c.Interceptors(),
	}
}

// Get returns a Membership entity by its id.
func (c *MembershipClient) Get(ctx context.Context, id string) (*Membership, error) {
	return c.Query().Where(membership.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MembershipClient) GetX(ctx context.Context, id string) *Membership {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkspace queries the workspace edge of a Membership.
func (c *MembershipClient) QueryWorkspace(_m *Membership) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(membership.Table, membership.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, membership.WorkspaceTable, membership.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MembershipClient) Hooks() []Hook {
	return c.hooks.Membership
}

// Interceptors returns the client interceptors.
func (c *MembershipClient) Interceptors() []Interceptor {
	return c.inters.Membership
}

func (c *MembershipClient) mutate(ctx context.Context, m *MembershipMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MembershipCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MembershipUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MembershipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MembershipDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Membership mutation op: %q", m.Op())
	}
}

// RunArchiveClient is a client for the RunArchive schema.
type RunArchiveClient struct {
	config
}

// NewRunArchiveClient returns a client for the RunArchive from the given config.
func NewRunArchiveClient(c config) *RunArchiveClient {
	return &RunArchiveClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runarchive.Hooks(f(g(h())))`.
func (c *RunArchiveClient) Use(hooks ...Hook) {
	c.hooks.RunArchive = append(c.hooks.RunArchive, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runarchive.Intercept(f(g(h())))`.
func (c *RunArchiveClient) Intercept(interceptors ...Interceptor) {
	c.inters.RunArchive = append(c.inters.RunArchive, interceptors...)
}

// Create returns a builder for creating a RunArchive entity.
func (c *RunArchiveClient) Create() *RunArchiveCreate {
	mutation := newRunArchiveMutation(c.config, OpCreate)
	return &RunArchiveCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RunArchive entities.
func (c *RunArchiveClient) CreateBulk(builders ...*RunArchiveCreate) *RunArchiveCreateBulk {
	return &RunArchiveCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunArchiveClient) MapCreateBulk(slice any, setFunc func(*RunArchiveCreate, int)) *RunArchiveCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunArchiveCreateBulk{err: fmt.Errorf("calling to RunArchiveClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunArchiveCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunArchiveCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RunArchive.
func (c *RunArchiveClient) Update() *RunArchiveUpdate {
	mutation := newRunArchiveMutation(c.config, OpUpdate)
	return &RunArchiveUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunArchiveClient) UpdateOne(_m *RunArchive) *RunArchiveUpdateOne {
	mutation := newRunArchiveMutation(c.config, OpUpdateOne, withRunArchive(_m))
	return &RunArchiveUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunArchiveClient) UpdateOneID(id string) *RunArchiveUpdateOne {
	mutation := newRunArchiveMutation(c.config, OpUpdateOne, withRunArchiveID(id))
	return &RunArchiveUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RunArchive.
func (c *RunArchiveClient) Delete() *RunArchiveDelete {
	mutation := newRunArchiveMutation(c.config, OpDelete)
	return &RunArchiveDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunArchiveClient) DeleteOne(_m *RunArchive) *RunArchiveDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunArchiveClient) DeleteOneID(id string) *RunArchiveDeleteOne {
	builder := c.Delete().Where(runarchive.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunArchiveDeleteOne{builder}
}

// Query returns a query builder for RunArchive.
func (c *RunArchiveClient) Query() *RunArchiveQuery {
	return &RunArchiveQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunArchive},
		inters: c.Interceptors(),
	}
}

// Get returns a RunArchive entity by its id.
func (c *RunArchiveClient) Get(ctx context.Context, id string) (*RunArchive, error) {
	return c.Query().Where(runarchive.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunArchiveClient) GetX(ctx context.Context, id string) *RunArchive {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a RunArchive.
func (c *RunArchiveClient) QueryRun(_m *RunArchive) *AgentRunQuery {
	query := (&AgentRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(runarchive.Table, runarchive.FieldID, id),
			sqlgraph.To(agentrun.Table, agentrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, runarchive.RunTable, runarchive.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunArchiveClient) Hooks() []Hook {
	return c.hooks.RunArchive
}

// Interceptors returns the client interceptors.
func (c *RunArchiveClient) Interceptors() []Interceptor {
	return c.inters.RunArchive
}

func (c *RunArchiveClient) mutate(ctx context.Context, m *RunArchiveMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunArchiveCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunArchiveUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunArchiveUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunArchiveDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RunArchive mutation op: %q", m.Op())
	}
}

// RunEventClient is a client for the RunEvent schema.
type RunEventClient struct {
	config
}

// NewRunEventClient returns a client for the RunEvent from the given config.
func NewRunEventClient(c config) *RunEventClient {
	return &RunEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runevent.Hooks(f(g(h())))`.
func (c *RunEventClient) Use(hooks ...Hook) {
	c.hooks.RunEvent = append(c.hooks.RunEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runevent.Intercept(f(g(h())))`.
func (c *RunEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.RunEvent = append(c.inters.RunEvent, interceptors...)
}

// Create returns a builder for creating a RunEvent entity.
func (c *RunEventClient) Create() *RunEventCreate {
	mutation := newRunEventMutation(c.config, OpCreate)
	return &RunEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RunEvent entities.
func (c *RunEventClient) CreateBulk(builders ...*RunEventCreate) *RunEventCreateBulk {
	return &RunEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunEventClient) MapCreateBulk(slice any, setFunc func(*RunEventCreate, int)) *RunEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunEventCreateBulk{err: fmt.Errorf("calling to RunEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RunEvent.
func (c *RunEventClient) Update() *RunEventUpdate {
	mutation := newRunEventMutation(c.config, OpUpdate)
	return &RunEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunEventClient) UpdateOne(_m *RunEvent) *RunEventUpdateOne {
	mutation := newRunEventMutation(c.config, OpUpdateOne, withRunEvent(_m))
	return &RunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunEventClient) UpdateOneID(id string) *RunEventUpdateOne {
	mutation := newRunEventMutation(c.config, OpUpdateOne, withRunEventID(id))
	return &RunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RunEvent.
func (c *RunEventClient) Delete() *RunEventDelete {
	mutation := newRunEventMutation(c.config, OpDelete)
	return &RunEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunEventClient) DeleteOne(_m *RunEvent) *RunEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunEventClient) DeleteOneID(id string) *RunEventDeleteOne {
	builder := c.Delete().Where(runevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunEventDeleteOne{builder}
}

// Query returns a query builder for RunEvent.
func (c *RunEventClient) Query() *RunEventQuery {
	return &RunEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a RunEvent entity by its id.
func (c *RunEventClient) Get(ctx context.Context, id string) (*RunEvent, error) {
	return c.Query().Where(runevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunEventClient) GetX(ctx context.Context, id string) *RunEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a RunEvent.
func (c *RunEventClient) QueryRun(_m *RunEvent) *AgentRunQuery {
	query := (&AgentRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(runevent.Table, runevent.FieldID, id),
			sqlgraph.To(agentrun.Table, agentrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, runevent.RunTable, runevent.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunEventClient) Hooks() []Hook {
	return c.hooks.RunEvent
}

// Interceptors returns the client interceptors.
func (c *RunEventClient) Interceptors() []Interceptor {
	return c.inters.RunEvent
}

func (c *RunEventClient) mutate(ctx context.Context, m *RunEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RunEvent mutation op: %q", m.Op())
	}
}

// SubrunLinkClient is a client for the SubrunLink schema.
type SubrunLinkClient struct {
	config
}

// NewSubrunLinkClient returns a client for the SubrunLink from the given config.
func NewSubrunLinkClient(c config) *SubrunLinkClient {
	return &SubrunLinkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subrunlink.Hooks(f(g(h())))`.
func (c *SubrunLinkClient) Use(hooks ...Hook) {
	c.hooks.SubrunLink = append(c.hooks.SubrunLink, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subrunlink.Intercept(f(g(h())))`.
func (c *SubrunLinkClient) Intercept(interceptors ...Interceptor) {
	c.inters.SubrunLink = append(c.inters.SubrunLink, interceptors...)
}

// Create returns a builder for creating a SubrunLink entity.
func (c *SubrunLinkClient) Create() *SubrunLinkCreate {
	mutation := newSubrunLinkMutation(c.config, OpCreate)
	return &SubrunLinkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SubrunLink entities.
func (c *SubrunLinkClient) CreateBulk(builders ...*SubrunLinkCreate) *SubrunLinkCreateBulk {
	return &SubrunLinkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubrunLinkClient) MapCreateBulk(slice any, setFunc func(*SubrunLinkCreate, int)) *SubrunLinkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubrunLinkCreateBulk{err: fmt.Errorf("calling to SubrunLinkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubrunLinkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubrunLinkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SubrunLink.
func (c *SubrunLinkClient) Update() *SubrunLinkUpdate {
	mutation := newSubrunLinkMutation(c.config, OpUpdate)
	return &SubrunLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubrunLinkClient) UpdateOne(_m *SubrunLink) *SubrunLinkUpdateOne {
	mutation := newSubrunLinkMutation(c.config, OpUpdateOne, withSubrunLink(_m))
	return &SubrunLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubrunLinkClient) UpdateOneID(id string) *SubrunLinkUpdateOne {
	mutation := newSubrunLinkMutation(c.config, OpUpdateOne, withSubrunLinkID(id))
	return &SubrunLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SubrunLink.
func (c *SubrunLinkClient) Delete() *SubrunLinkDelete {
	mutation := newSubrunLinkMutation(c.config, OpDelete)
	return &SubrunLinkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubrunLinkClient) DeleteOne(_m *SubrunLink) *SubrunLinkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubrunLinkClient) DeleteOneID(id string) *SubrunLinkDeleteOne {
	builder := c.Delete().Where(subrunlink.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubrunLinkDeleteOne{builder}
}

// Query returns a query builder for SubrunLink.
func (c *SubrunLinkClient) Query() *SubrunLinkQuery {
	return &SubrunLinkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubrunLink},
		inters: c.Interceptors(),
	}
}

// Get returns a SubrunLink entity by its id.
func (c *SubrunLinkClient) Get(ctx context.Context, id string) (*SubrunLink, error) {
	return c.Query().Where(subrunlink.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubrunLinkClient) GetX(ctx context.Context, id string) *SubrunLink {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParent queries the parent edge of a SubrunLink.
func (c *SubrunLinkClient) QueryParent(_m *SubrunLink) *AgentRunQuery {
	query := (&AgentRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(subrunlink.Table, subrunlink.FieldID, id),
			sqlgraph.To(agentrun.Table, agentrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, subrunlink.ParentTable, subrunlink.ParentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubrunLinkClient) Hooks() []Hook {
	return c.hooks.SubrunLink
}

// Interceptors returns the client interceptors.
func (c *SubrunLinkClient) Interceptors() []Interceptor {
	return c.inters.SubrunLink
}

func (c *SubrunLinkClient) mutate(ctx context.Context, m *SubrunLinkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubrunLinkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubrunLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubrunLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubrunLinkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SubrunLink mutation op: %q", m.Op())
	}
}

// ToolCallClient is a client for the ToolCall schema.
type ToolCallClient struct {
	config
}

// NewToolCallClient returns a client for the ToolCall from the given config.
func NewToolCallClient(c config) *ToolCallClient {
	return &ToolCallClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `toolcall.Hooks(f(g(h())))`.
func (c *ToolCallClient) Use(hooks ...Hook) {
	c.hooks.ToolCall = append(c.hooks.ToolCall, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `toolcall.Intercept(f(g(h())))`.
func (c *ToolCallClient) Intercept(interceptors ...Interceptor) {
	c.inters.ToolCall = append(c.inters.ToolCall, interceptors...)
}

// Create returns a builder for creating a ToolCall entity.
func (c *ToolCallClient) Create() *ToolCallCreate {
	mutation := newToolCallMutation(c.config, OpCreate)
	return &ToolCallCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ToolCall entities.
func (c *ToolCallClient) CreateBulk(builders ...*ToolCallCreate) *ToolCallCreateBulk {
	return &ToolCallCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ToolCallClient) MapCreateBulk(slice any, setFunc func(*ToolCallCreate, int)) *ToolCallCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ToolCallCreateBulk{err: fmt.Errorf("calling to ToolCallClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ToolCallCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ToolCallCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ToolCall.
func (c *ToolCallClient) Update() *ToolCallUpdate {
	mutation := newToolCallMutation(c.config, OpUpdate)
	return &ToolCallUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ToolCallClient) UpdateOne(_m *ToolCall) *ToolCallUpdateOne {
	mutation := newToolCallMutation(c.config, OpUpdateOne, withToolCall(_m))
	return &ToolCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ToolCallClient) UpdateOneID(id string) *ToolCallUpdateOne {
	mutation := newToolCallMutation(c.config, OpUpdateOne, withToolCallID(id))
	return &ToolCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ToolCall.
func (c *ToolCallClient) Delete() *ToolCallDelete {
	mutation := newToolCallMutation(c.config, OpDelete)
	return &ToolCallDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ToolCallClient) DeleteOne(_m *ToolCall) *ToolCallDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ToolCallClient) DeleteOneID(id string) *ToolCallDeleteOne {
	builder := c.Delete().Where(toolcall.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ToolCallDeleteOne{builder}
}

// Query returns a query builder for ToolCall.
func (c *ToolCallClient) Query() *ToolCallQuery {
	return &ToolCallQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeToolCall},
		inters: c.Interceptors(),
	}
}

// Get returns a ToolCall entity by its id.
func (c *ToolCallClient) Get(ctx context.Context, id string) (*ToolCall, error) {
	return c.Query().Where(toolcall.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ToolCallClient) GetX(ctx context.Context, id string) *ToolCall {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a ToolCall.
func (c *ToolCallClient) QueryRun(_m *ToolCall) *AgentRunQuery {
	query := (&AgentRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(toolcall.Table, toolcall.FieldID, id),
			sqlgraph.To(agentrun.Table, agentrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, toolcall.RunTable, toolcall.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStep queries the step edge of a ToolCall.
func (c *ToolCallClient) QueryStep(_m *ToolCall) *AgentStepQuery {
	query := (&AgentStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(toolcall.Table, toolcall.FieldID, id),
			sqlgraph.To(agentstep.Table, agentstep.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, toolcall.StepTable, toolcall.StepColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ToolCallClient) Hooks() []Hook {
	return c.hooks.ToolCall
}

// Interceptors returns the client interceptors.
func (c *ToolCallClient) Interceptors() []Interceptor {
	return c.inters.ToolCall
}

func (c *ToolCallClient) mutate(ctx context.Context, m *ToolCallMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ToolCallCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ToolCallUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ToolCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ToolCallDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ToolCall mutation op: %q", m.Op())
	}
}

// ToolDefinitionClient is a client for the ToolDefinition schema.
type ToolDefinitionClient struct {
	config
}

// NewToolDefinitionClient returns a client for the ToolDefinition from the given config.
func NewToolDefinitionClient(c config) *ToolDefinitionClient {
	return &ToolDefinitionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tooldefinition.Hooks(f(g(h())))`.
func (c *ToolDefinitionClient) Use(hooks ...Hook) {
	c.hooks.ToolDefinition = append(c.hooks.ToolDefinition, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tooldefinition.Intercept(f(g(h())))`.
func (c *ToolDefinitionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ToolDefinition = append(c.inters.ToolDefinition, interceptors...)
}

// Create returns a builder for creating a ToolDefinition entity.
func (c *ToolDefinitionClient) Create() *ToolDefinitionCreate {
	mutation := newToolDefinitionMutation(c.config, OpCreate)
	return &ToolDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ToolDefinition entities.
func (c *ToolDefinitionClient) CreateBulk(builders ...*ToolDefinitionCreate) *ToolDefinitionCreateBulk {
	return &ToolDefinitionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ToolDefinitionClient) MapCreateBulk(slice any, setFunc func(*ToolDefinitionCreate, int)) *ToolDefinitionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ToolDefinitionCreateBulk{err: fmt.Errorf("calling to ToolDefinitionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ToolDefinitionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ToolDefinitionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ToolDefinition.
func (c *ToolDefinitionClient) Update() *ToolDefinitionUpdate {
	mutation := newToolDefinitionMutation(c.config, OpUpdate)
	return &ToolDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ToolDefinitionClient) UpdateOne(_m *ToolDefinition) *ToolDefinitionUpdateOne {
	mutation := newToolDefinitionMutation(c.config, OpUpdateOne, withToolDefinition(_m))
	return &ToolDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ToolDefinitionClient) UpdateOneID(id string) *ToolDefinitionUpdateOne {
	mutation := newToolDefinitionMutation(c.config, OpUpdateOne, withToolDefinitionID(id))
	return &ToolDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ToolDefinition.
func (c *ToolDefinitionClient) Delete() *ToolDefinitionDelete {
	mutation := newToolDefinitionMutation(c.config, OpDelete)
	return &ToolDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ToolDefinitionClient) DeleteOne(_m *ToolDefinition) *ToolDefinitionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ToolDefinitionClient) DeleteOneID(id string) *ToolDefinitionDeleteOne {
	builder := c.Delete().Where(tooldefinition.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ToolDefinitionDeleteOne{builder}
}

// Query returns a query builder for ToolDefinition.
func (c *ToolDefinitionClient) Query() *ToolDefinitionQuery {
	return &ToolDefinitionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeToolDefinition},
		inters: c.Interceptors(),
	}
}

// Get returns a ToolDefinition entity by its id.
func (c *ToolDefinitionClient) Get(ctx context.Context, id string) (*ToolDefinition, error) {
	return c.Query().Where(tooldefinition.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ToolDefinitionClient) GetX(ctx context.Context, id string) *ToolDefinition {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkspace queries the workspace edge of a ToolDefinition.
func (c *ToolDefinitionClient) QueryWorkspace(_m *ToolDefinition) *WorkspaceQuery {
	query := (&WorkspaceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tooldefinition.Table, tooldefinition.FieldID, id),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, tooldefinition.WorkspaceTable, tooldefinition.WorkspaceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ToolDefinitionClient) Hooks() []Hook {
	return c.hooks.ToolDefinition
}

// Interceptors returns the client interceptors.
func (c *ToolDefinitionClient) Interceptors() []Interceptor {
	return c.inters.ToolDefinition
}

func (c *ToolDefinitionClient) mutate(ctx context.Context, m *ToolDefinitionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ToolDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ToolDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ToolDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ToolDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ToolDefinition mutation op: %q", m.Op())
	}
}

// UserActionLogClient is a client for the UserActionLog schema.
type UserActionLogClient struct {
	config
}

// NewUserActionLogClient returns a client for the UserActionLog from the given config.
func NewUserActionLogClient(c config) *UserActionLogClient {
	return &UserActionLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `useractionlog.Hooks(f(g(h())))`.
func (c *UserActionLogClient) Use(hooks ...Hook) {
	c.hooks.UserActionLog = append(c.hooks.UserActionLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `useractionlog.Intercept(f(g(h())))`.
func (c *UserActionLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserActionLog = append(c.inters.UserActionLog, interceptors...)
}

// Create returns a builder for creating a UserActionLog entity.
func (c *UserActionLogClient) Create() *UserActionLogCreate {
	mutation := newUserActionLogMutation(c.config, OpCreate)
	return &UserActionLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserActionLog entities.
func (c *UserActionLogClient) CreateBulk(builders ...*UserActionLogCreate) *UserActionLogCreateBulk {
	return &UserActionLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserActionLogClient) MapCreateBulk(slice any, setFunc func(*UserActionLogCreate, int)) *UserActionLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserActionLogCreateBulk{err: fmt.Errorf("calling to UserActionLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserActionLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserActionLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserActionLog.
func (c *UserActionLogClient) Update() *UserActionLogUpdate {
	mutation := newUserActionLogMutation(c.config, OpUpdate)
	return &UserActionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserActionLogClient) UpdateOne(_m *UserActionLog) *UserActionLogUpdateOne {
	mutation := newUserActionLogMutation(c.config, OpUpdateOne, withUserActionLog(_m))
	return &UserActionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserActionLogClient) UpdateOneID(id string) *UserActionLogUpdateOne {
	mutation := newUserActionLogMutation(c.config, OpUpdateOne, withUserActionLogID(id))
	return &UserActionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserActionLog.
func (c *UserActionLogClient) Delete() *UserActionLogDelete {
	mutation := newUserActionLogMutation(c.config, OpDelete)
	return &UserActionLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserActionLogClient) DeleteOne(_m *UserActionLog) *UserActionLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserActionLogClient) DeleteOneID(id string) *UserActionLogDeleteOne {
	builder := c.Delete().Where(useractionlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserActionLogDeleteOne{builder}
}

// Query returns a query builder for UserActionLog.
func (c *UserActionLogClient) Query() *UserActionLogQuery {
	return &UserActionLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserActionLog},
		inters: c.Interceptors(),
	}
}

// Get returns a UserActionLog entity by its id.
func (c *UserActionLogClient) Get(ctx context.Context, id string) (*UserActionLog, error) {
	return c.Query().Where(useractionlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserActionLogClient) GetX(ctx context.Context, id string) *UserActionLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserActionLogClient) Hooks() []Hook {
	return c.hooks.UserActionLog
}

// Interceptors returns the client interceptors.
func (c *UserActionLogClient) Interceptors() []Interceptor {
	return c.inters.UserActionLog
}

func (c *UserActionLogClient) mutate(ctx context.Context, m *UserActionLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserActionLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserActionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserActionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserActionLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserActionLog mutation op: %q", m.Op())
	}
}

// WorkspaceClient is a client for the Workspace schema.
type WorkspaceClient struct {
	config
}

// NewWorkspaceClient returns a client for the Workspace from the given config.
func NewWorkspaceClient(c config) *WorkspaceClient {
	return &WorkspaceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workspace.Hooks(f(g(h())))`.
func (c *WorkspaceClient) Use(hooks ...Hook) {
	c.hooks.Workspace = append(c.hooks.Workspace, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workspace.Intercept(f(g(h())))`.
func (c *WorkspaceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Workspace = append(c.inters.Workspace, interceptors...)
}

// Create returns a builder for creating a Workspace entity.
func (c *WorkspaceClient) Create() *WorkspaceCreate {
	mutation := newWorkspaceMutation(c.config, OpCreate)
	return &WorkspaceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Workspace entities.
func (c *WorkspaceClient) CreateBulk(builders ...*WorkspaceCreate) *WorkspaceCreateBulk {
	return &WorkspaceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkspaceClient) MapCreateBulk(slice any, setFunc func(*WorkspaceCreate, int)) *WorkspaceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkspaceCreateBulk{err: fmt.Errorf("calling to WorkspaceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkspaceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkspaceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Workspace.
func (c *WorkspaceClient) Update() *WorkspaceUpdate {
	mutation := newWorkspaceMutation(c.config, OpUpdate)
	return &WorkspaceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkspaceClient) UpdateOne(_m *Workspace) *WorkspaceUpdateOne {
	mutation := newWorkspaceMutation(c.config, OpUpdateOne, withWorkspace(_m))
	return &WorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkspaceClient) UpdateOneID(id string) *WorkspaceUpdateOne {
	mutation := newWorkspaceMutation(c.config, OpUpdateOne, withWorkspaceID(id))
	return &WorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Workspace.
func (c *WorkspaceClient) Delete() *WorkspaceDelete {
	mutation := newWorkspaceMutation(c.config, OpDelete)
	return &WorkspaceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkspaceClient) DeleteOne(_m *Workspace) *WorkspaceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkspaceClient) DeleteOneID(id string) *WorkspaceDeleteOne {
	builder := c.Delete().Where(workspace.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkspaceDeleteOne{builder}
}

// Query returns a query builder for Workspace.
func (c *WorkspaceClient) Query() *WorkspaceQuery {
	return &WorkspaceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkspace},
		inters: c.Interceptors(),
	}
}

// Get returns a Workspace entity by its id.
func (c *WorkspaceClient) Get(ctx context.Context, id string) (*Workspace, error) {
	return c.Query().Where(workspace.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkspaceClient) GetX(ctx context.Context, id string) *Workspace {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMemberships queries the memberships edge of a Workspace.
func (c *WorkspaceClient) QueryMemberships(_m *Workspace) *MembershipQuery {
	query := (&MembershipClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(membership.Table, membership.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.MembershipsTable, workspace.MembershipsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgents queries the agents edge of a Workspace.
func (c *WorkspaceClient) QueryAgents(_m *Workspace) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.AgentsTable, workspace.AgentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRuns queries the runs edge of a Workspace.
func (c *WorkspaceClient) QueryRuns(_m *Workspace) *AgentRunQuery {
	query := (&AgentRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(agentrun.Table, agentrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.RunsTable, workspace.RunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryToolDefinitions queries the tool_definitions edge of a Workspace.
func (c *WorkspaceClient) QueryToolDefinitions(_m *Workspace) *ToolDefinitionQuery {
	query := (&ToolDefinitionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workspace.Table, workspace.FieldID, id),
			sqlgraph.To(tooldefinition.Table, tooldefinition.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workspace.ToolDefinitionsTable, workspace.ToolDefinitionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkspaceClient) Hooks() []Hook {
	return c.hooks.Workspace
}

// Interceptors returns the client interceptors.
func (c *WorkspaceClient) Interceptors() []Interceptor {
	return c.inters.Workspace
}

func (c *WorkspaceClient) mutate(ctx context.Context, m *WorkspaceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkspaceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkspaceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkspaceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Workspace mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Agent, AgentRun, AgentStep, Membership, RunArchive, RunEvent, SubrunLink,
		ToolCall, ToolDefinition, UserActionLog, Workspace []ent.Hook
	}
	inters struct {
		Agent, AgentRun, AgentStep, Membership, RunArchive, RunEvent, SubrunLink,
		ToolCall, ToolDefinition, UserActionLog, Workspace []ent.Interceptor
	}
)

// ExecContext allows calling the underlying ExecContext method of the driver if it is supported by it.
// See, database/sql#DB.ExecContext for more information.
func (c *config) ExecContext(ctx context.Context, query string, args ...any) (stdsql.Result, error) {
	ex, ok := c.driver.(interface {
		ExecContext(context.Context, string, ...any) (stdsql.Result, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.ExecContext is not supported")
	}
	return ex.ExecContext(ctx, query, args...)
}

// QueryContext allows calling the underlying QueryContext method of the driver if it is supported by it.
// See, database/sql#DB.QueryContext for more information.
func (c *config) QueryContext(ctx context.Context, query string, args ...any) (*stdsql.Rows, error) {
	q, ok := c.driver.(interface {
		QueryContext(context.Context, string, ...any) (*stdsql.Rows, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.QueryContext is not supported")
	}
	return q.QueryContext(ctx, query, args...)
}
