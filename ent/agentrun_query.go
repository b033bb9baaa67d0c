// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentmaestro/agentmaestro/ent/agent"
	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/ent/agentstep"
	"github.com/agentmaestro/agentmaestro/ent/predicate"
	"github.com/agentmaestro/agentmaestro/ent/runarchive"
	"github.com/agentmaestro/agentmaestro/ent/runevent"
	"github.com/agentmaestro/agentmaestro/ent/subrunlink"
	"github.com/agentmaestro/agentmaestro/ent/toolcall"
	"github.com/agentmaestro/agentmaestro/ent/workspace"
)

// AgentRunQuery is the builder for querying AgentRun entities.
type AgentRunQuery struct {
	config
	ctx            *QueryContext
	order          []agentrun.OrderOption
	inters         []Interceptor
	predicates     []predicate.AgentRun
	withWorkspace  *WorkspaceQuery
	withAgent      *AgentQuery
	withSteps      *AgentStepQuery
	withEvents     *RunEventQuery
	withToolCalls  *ToolCallQuery
	withChildLinks *SubrunLinkQuery
	withArchives   *RunArchiveQuery
	modifiers      []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AgentRunQuery builder.
func (_q *AgentRunQuery) Where(ps ...predicate.AgentRun) *AgentRunQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AgentRunQuery) Limit(limit int) *AgentRunQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AgentRunQuery) Offset(offset int) *AgentRunQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AgentRunQuery) Unique(unique bool) *AgentRunQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AgentRunQuery) Order(o ...agentrun.OrderOption) *AgentRunQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryWorkspace chains the current query on the "workspace" edge.
func (_q *AgentRunQuery) QueryWorkspace() *WorkspaceQuery {
	query := (&WorkspaceClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrun.Table, agentrun.FieldID, selector),
			sqlgraph.To(workspace.Table, workspace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentrun.WorkspaceTable, agentrun.WorkspaceColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAgent chains the current query on the "agent" edge.
func (_q *AgentRunQuery) QueryAgent() *AgentQuery {
	query := (&AgentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrun.Table, agentrun.FieldID, selector),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentrun.AgentTable, agentrun.AgentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySteps chains the current query on the "steps" edge.
func (_q *AgentRunQuery) QuerySteps() *AgentStepQuery {
	query := (&AgentStepClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrun.Table, agentrun.FieldID, selector),
			sqlgraph.To(agentstep.Table, agentstep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentrun.StepsTable, agentrun.StepsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEvents chains the current query on the "events" edge.
func (_q *AgentRunQuery) QueryEvents() *RunEventQuery {
	query := (&RunEventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrun.Table, agentrun.FieldID, selector),
			sqlgraph.To(runevent.Table, runevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentrun.EventsTable, agentrun.EventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryToolCalls chains the current query on the "tool_calls" edge.
func (_q *AgentRunQuery) QueryToolCalls() *ToolCallQuery {
	query := (&ToolCallClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrun.Table, agentrun.FieldID, selector),
			sqlgraph.To(toolcall.Table, toolcall.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentrun.ToolCallsTable, agentrun.ToolCallsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryChildLinks chains the current query on the "child_links" edge.
func (_q *AgentRunQuery) QueryChildLinks() *SubrunLinkQuery {
	query := (&SubrunLinkClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrun.Table, agentrun.FieldID, selector),
			sqlgraph.To(subrunlink.Table, subrunlink.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentrun.ChildLinksTable, agentrun.ChildLinksColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryArchives chains the current query on the "archives" edge.
func (_q *AgentRunQuery) QueryArchives() *RunArchiveQuery {
	query := (&RunArchiveClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrun.Table, agentrun.FieldID, selector),
			sqlgraph.To(runarchive.Table, runarchive.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentrun.ArchivesTable, agentrun.ArchivesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first AgentRun entity from the query.
// Returns a *NotFoundError when no AgentRun was found.
func (_q *AgentRunQuery) First(ctx context.Context) (*AgentRun, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{agentrun.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AgentRunQuery) FirstX(ctx context.Context) *AgentRun {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AgentRun ID from the query.
// Returns a *NotFoundError when no AgentRun ID was found.
func (_q *AgentRunQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{agentrun.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AgentRunQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AgentRun entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AgentRun entity is found.
// Returns a *NotFoundError when no AgentRun entities are found.
func (_q *AgentRunQuery) Only(ctx context.Context) (*AgentRun, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{agentrun.Label}
	default:
		return nil, &NotSingularError{agentrun.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AgentRunQuery) OnlyX(ctx context.Context) *AgentRun {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AgentRun ID in the query.
// Returns a *NotSingularError when more than one AgentRun ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AgentRunQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{agentrun.Label}
	default:
		err = &NotSingularError{agentrun.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AgentRunQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AgentRuns.
func (_q *AgentRunQuery) All(ctx context.Context) ([]*AgentRun, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AgentRun, *AgentRunQuery]()
	return withInterceptors[[]*AgentRun](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AgentRunQuery) AllX(ctx context.Context) []*AgentRun {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AgentRun IDs.
func (_q *AgentRunQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(agentrun.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AgentRunQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AgentRunQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AgentRunQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AgentRunQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AgentRunQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *AgentRunQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AgentRunQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AgentRunQuery) Clone() *AgentRunQuery {
	if _q == nil {
		return nil
	}
	return &AgentRunQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]agentrun.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.AgentRun{}, _q.predicates...),
		withWorkspace:  _q.withWorkspace.Clone(),
		withAgent:      _q.withAgent.Clone(),
		withSteps:      _q.withSteps.Clone(),
		withEvents:     _q.withEvents.Clone(),
		withToolCalls:  _q.withToolCalls.Clone(),
		withChildLinks: _q.withChildLinks.Clone(),
		withArchives:   _q.withArchives.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithWorkspace tells the query-builder to eager-load the nodes that are connected to
// the "workspace" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentRunQuery) WithWorkspace(opts ...func(*WorkspaceQuery)) *AgentRunQuery {
	query := (&WorkspaceClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withWorkspace = query
	return _q
}

// WithAgent tells the query-builder to eager-load the nodes that are connected to
// the "agent" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentRunQuery) WithAgent(opts ...func(*AgentQuery)) *AgentRunQuery {
	query := (&AgentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAgent = query
	return _q
}

// WithSteps tells the query-builder to eager-load the nodes that are connected to
// the "steps" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentRunQuery) WithSteps(opts ...func(*AgentStepQuery)) *AgentRunQuery {
	query := (&AgentStepClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSteps = query
	return _q
}

// WithEvents tells the query-builder to eager-load the nodes that are connected to
// the "events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentRunQuery) WithEvents(opts ...func(*RunEventQuery)) *AgentRunQuery {
	query := (&RunEventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvents = query
	return _q
}

// WithToolCalls tells the query-builder to eager-load the nodes that are connected to
// the "tool_calls" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentRunQuery) WithToolCalls(opts ...func(*ToolCallQuery)) *AgentRunQuery {
	query := (&ToolCallClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withToolCalls = query
	return _q
}

// WithChildLinks tells the query-builder to eager-load the nodes that are connected to
// the "child_links" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentRunQuery) WithChildLinks(opts ...func(*SubrunLinkQuery)) *AgentRunQuery {
	query := (&SubrunLinkClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withChildLinks = query
	return _q
}

// WithArchives tells the query-builder to eager-load the nodes that are connected to
// the "archives" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentRunQuery) WithArchives(opts ...func(*RunArchiveQuery)) *AgentRunQuery {
	query := (&RunArchiveClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withArchives = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		WorkspaceID string `json:"workspace_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.AgentRun.Query().
//		GroupBy(agentrun.FieldWorkspaceID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AgentRunQuery) GroupBy(field string, fields ...string) *AgentRunGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AgentRunGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = agentrun.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		WorkspaceID string `json:"workspace_id,omitempty"`
//	}
//
//	client.AgentRun.Query().
//		Select(agentrun.FieldWorkspaceID).
//		Scan(ctx, &v)
func (_q *AgentRunQuery) Select(fields ...string) *AgentRunSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AgentRunSelect{AgentRunQuery: _q}
	sbuild.label = agentrun.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AgentRunSelect configured with the given aggregations.
func (_q *AgentRunQuery) Aggregate(fns ...AggregateFunc) *AgentRunSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AgentRunQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !agentrun.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *AgentRunQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AgentRun, error) {
	var (
		nodes       = []*AgentRun{}
		_spec       = _q.querySpec()
		loadedTypes = [7]bool{
			_q.withWorkspace != nil,
			_q.withAgent != nil,
			_q.withSteps != nil,
			_q.withEvents != nil,
			_q.withToolCalls != nil,
			_q.withChildLinks != nil,
			_q.withArchives != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AgentRun).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AgentRun{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withWorkspace; query != nil {
		if err := _q.loadWorkspace(ctx, query, nodes, nil,
			func(n *AgentRun, e *Workspace) { n.Edges.Workspace = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAgent; query != nil {
		if err := _q.loadAgent(ctx, query, nodes, nil,
			func(n *AgentRun, e *Agent) { n.Edges.Agent = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSteps; query != nil {
		if err := _q.loadSteps(ctx, query, nodes,
			func(n *AgentRun) { n.Edges.Steps = []*AgentStep{} },
			func(n *AgentRun, e *AgentStep) { n.Edges.Steps = append(n.Edges.Steps, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEvents; query != nil {
		if err := _q.loadEvents(ctx, query, nodes,
			func(n *AgentRun) { n.Edges.Events = []*RunEvent{} },
			func(n *AgentRun, e *RunEvent) { n.Edges.Events = append(n.Edges.Events, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withToolCalls; query != nil {
		if err := _q.loadToolCalls(ctx, query, nodes,
			func(n *AgentRun) { n.Edges.ToolCalls = []*ToolCall{} },
			func(n *AgentRun, e *ToolCall) { n.Edges.ToolCalls = append(n.Edges.ToolCalls, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withChildLinks; query != nil {
		if err := _q.loadChildLinks(ctx, query, nodes,
			func(n *AgentRun) { n.Edges.ChildLinks = []*SubrunLink{} },
			func(n *AgentRun, e *SubrunLink) { n.Edges.ChildLinks = append(n.Edges.ChildLinks, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withArchives; query != nil {
		if err := _q.loadArchives(ctx, query, nodes,
			func(n *AgentRun) { n.Edges.Archives = []*RunArchive{} },
			func(n *AgentRun, e *RunArchive) { n.Edges.Archives = append(n.Edges.Archives, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AgentRunQuery) loadWorkspace(ctx context.Context, query *WorkspaceQuery, nodes []*AgentRun, init func(*AgentRun), assign func(*AgentRun, *Workspace)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*AgentRun)
	for i := range nodes {
		fk := nodes[i].WorkspaceID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(workspace.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "workspace_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *AgentRunQuery) loadAgent(ctx context.Context, query *AgentQuery, nodes []*AgentRun, init func(*AgentRun), assign func(*AgentRun, *Agent)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*AgentRun)
	for i := range nodes {
		fk := nodes[i].AgentID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(agent.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "agent_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *AgentRunQuery) loadSteps(ctx context.Context, query *AgentStepQuery, nodes []*AgentRun, init func(*AgentRun), assign func(*AgentRun, *AgentStep)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*AgentRun)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(agentstep.FieldRunID)
	}
	query.Where(predicate.AgentStep(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(agentrun.StepsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RunID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "run_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AgentRunQuery) loadEvents(ctx context.Context, query *RunEventQuery, nodes []*AgentRun, init func(*AgentRun), assign func(*AgentRun, *RunEvent)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*AgentRun)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(runevent.FieldRunID)
	}
	query.Where(predicate.RunEvent(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(agentrun.EventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RunID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "run_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AgentRunQuery) loadToolCalls(ctx context.Context, query *ToolCallQuery, nodes []*AgentRun, init func(*AgentRun), assign func(*AgentRun, *ToolCall)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*AgentRun)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(toolcall.FieldRunID)
	}
	query.Where(predicate.ToolCall(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(agentrun.ToolCallsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RunID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "run_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AgentRunQuery) loadChildLinks(ctx context.Context, query *SubrunLinkQuery, nodes []*AgentRun, init func(*AgentRun), assign func(*AgentRun, *SubrunLink)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*AgentRun)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(subrunlink.FieldParentRunID)
	}
	query.Where(predicate.SubrunLink(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(agentrun.ChildLinksColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ParentRunID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "parent_run_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AgentRunQuery) loadArchives(ctx context.Context, query *RunArchiveQuery, nodes []*AgentRun, init func(*AgentRun), assign func(*AgentRun, *RunArchive)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*AgentRun)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(runarchive.FieldRunID)
	}
	query.Where(predicate.RunArchive(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(agentrun.ArchivesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RunID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "run_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *AgentRunQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AgentRunQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(agentrun.Table, agentrun.Columns, sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentrun.FieldID)
		for i := range fields {
			if fields[i] != agentrun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withWorkspace != nil {
			_spec.Node.AddColumnOnce(agentrun.FieldWorkspaceID)
		}
		if _q.withAgent != nil {
			_spec.Node.AddColumnOnce(agentrun.FieldAgentID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *AgentRunQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(agentrun.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = agentrun.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *AgentRunQuery) ForUpdate(opts ...sql.LockOption) *AgentRunQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *AgentRunQuery) ForShare(opts ...sql.LockOption) *AgentRunQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// AgentRunGroupBy is the group-by builder for AgentRun entities.
type AgentRunGroupBy struct {
	selector
	build *AgentRunQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AgentRunGroupBy) Aggregate(fns ...AggregateFunc) *AgentRunGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AgentRunGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AgentRunQuery, *AgentRunGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AgentRunGroupBy) sqlScan(ctx context.Context, root *AgentRunQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AgentRunSelect is the builder for selecting fields of AgentRun entities.
type AgentRunSelect struct {
	*AgentRunQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AgentRunSelect) Aggregate(fns ...AggregateFunc) *AgentRunSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AgentRunSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AgentRunQuery, *AgentRunSelect](ctx, _s.AgentRunQuery, _s, _s.inters, v)
}

func (_s *AgentRunSelect) sqlScan(ctx context.Context, root *AgentRunQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
