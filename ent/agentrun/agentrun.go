// Code generated by ent, DO NOT EDIT.

package agentrun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agentrun type in the database.
	Label = "agent_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldParentRunID holds the string denoting the parent_run_id field in the database.
	FieldParentRunID = "parent_run_id"
	// FieldStartedBy holds the string denoting the started_by field in the database.
	FieldStartedBy = "started_by"
	// FieldCorrelationID holds the string denoting the correlation_id field in the database.
	FieldCorrelationID = "correlation_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldChannel holds the string denoting the channel field in the database.
	FieldChannel = "channel"
	// FieldCancelRequested holds the string denoting the cancel_requested field in the database.
	FieldCancelRequested = "cancel_requested"
	// FieldMaxSteps holds the string denoting the max_steps field in the database.
	FieldMaxSteps = "max_steps"
	// FieldMaxToolCalls holds the string denoting the max_tool_calls field in the database.
	FieldMaxToolCalls = "max_tool_calls"
	// FieldCurrentStepIndex holds the string denoting the current_step_index field in the database.
	FieldCurrentStepIndex = "current_step_index"
	// FieldLockedBy holds the string denoting the locked_by field in the database.
	FieldLockedBy = "locked_by"
	// FieldLockedAt holds the string denoting the locked_at field in the database.
	FieldLockedAt = "locked_at"
	// FieldLockExpiresAt holds the string denoting the lock_expires_at field in the database.
	FieldLockExpiresAt = "lock_expires_at"
	// FieldLockedTaskID holds the string denoting the locked_task_id field in the database.
	FieldLockedTaskID = "locked_task_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// FieldArchivedAt holds the string denoting the archived_at field in the database.
	FieldArchivedAt = "archived_at"
	// FieldErrorSummary holds the string denoting the error_summary field in the database.
	FieldErrorSummary = "error_summary"
	// FieldInputText holds the string denoting the input_text field in the database.
	FieldInputText = "input_text"
	// FieldFinalText holds the string denoting the final_text field in the database.
	FieldFinalText = "final_text"
	// EdgeWorkspace holds the string denoting the workspace edge name in mutations.
	EdgeWorkspace = "workspace"
	// EdgeAgent holds the string denoting the agent edge name in mutations.
	EdgeAgent = "agent"
	// EdgeSteps holds the string denoting the steps edge name in mutations.
	EdgeSteps = "steps"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeToolCalls holds the string denoting the tool_calls edge name in mutations.
	EdgeToolCalls = "tool_calls"
	// EdgeChildLinks holds the string denoting the child_links edge name in mutations.
	EdgeChildLinks = "child_links"
	// EdgeArchives holds the string denoting the archives edge name in mutations.
	EdgeArchives = "archives"
	// WorkspaceFieldID holds the string denoting the ID field of the Workspace.
	WorkspaceFieldID = "workspace_id"
	// AgentFieldID holds the string denoting the ID field of the Agent.
	AgentFieldID = "agent_id"
	// AgentStepFieldID holds the string denoting the ID field of the AgentStep.
	AgentStepFieldID = "step_id"
	// RunEventFieldID holds the string denoting the ID field of the RunEvent.
	RunEventFieldID = "event_id"
	// ToolCallFieldID holds the string denoting the ID field of the ToolCall.
	ToolCallFieldID = "tool_call_id"
	// SubrunLinkFieldID holds the string denoting the ID field of the SubrunLink.
	SubrunLinkFieldID = "link_id"
	// RunArchiveFieldID holds the string denoting the ID field of the RunArchive.
	RunArchiveFieldID = "archive_id"
	// Table holds the table name of the agentrun in the database.
	Table = "agent_runs"
	// WorkspaceTable is the table that holds the workspace relation/edge.
	WorkspaceTable = "agent_runs"
	// WorkspaceInverseTable is the table name for the Workspace entity.
	// It exists in this package in order to avoid circular dependency with the "workspace" package.
	WorkspaceInverseTable = "workspaces"
	// WorkspaceColumn is the table column denoting the workspace relation/edge.
	WorkspaceColumn = "workspace_id"
	// AgentTable is the table that holds the agent relation/edge.
	AgentTable = "agent_runs"
	// AgentInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	AgentInverseTable = "agents"
	// AgentColumn is the table column denoting the agent relation/edge.
	AgentColumn = "agent_id"
	// StepsTable is the table that holds the steps relation/edge.
	StepsTable = "agent_steps"
	// StepsInverseTable is the table name for the AgentStep entity.
	// It exists in this package in order to avoid circular dependency with the "agentstep" package.
	StepsInverseTable = "agent_steps"
	// StepsColumn is the table column denoting the steps relation/edge.
	StepsColumn = "run_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "run_events"
	// EventsInverseTable is the table name for the RunEvent entity.
	// It exists in this package in order to avoid circular dependency with the "runevent" package.
	EventsInverseTable = "run_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "run_id"
	// ToolCallsTable is the table that holds the tool_calls relation/edge.
	ToolCallsTable = "tool_calls"
	// ToolCallsInverseTable is the table name for the ToolCall entity.
	// It exists in this package in order to avoid circular dependency with the "toolcall" package.
	ToolCallsInverseTable = "tool_calls"
	// ToolCallsColumn is the table column denoting the tool_calls relation/edge.
	ToolCallsColumn = "run_id"
	// ChildLinksTable is the table that holds the child_links relation/edge.
	ChildLinksTable = "subrun_links"
	// ChildLinksInverseTable is the table name for the SubrunLink entity.
	// It exists in this package in order to avoid circular dependency with the "subrunlink" package.
	ChildLinksInverseTable = "subrun_links"
	// ChildLinksColumn is the table column denoting the child_links relation/edge.
	ChildLinksColumn = "parent_run_id"
	// ArchivesTable is the table that holds the archives relation/edge.
	ArchivesTable = "run_archives"
	// ArchivesInverseTable is the table name for the RunArchive entity.
	// It exists in this package in order to avoid circular dependency with the "runarchive" package.
	ArchivesInverseTable = "run_archives"
	// ArchivesColumn is the table column denoting the archives relation/edge.
	ArchivesColumn = "run_id"
)

// Columns holds all SQL columns for agentrun fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldAgentID,
	FieldParentRunID,
	FieldStartedBy,
	FieldCorrelationID,
	FieldStatus,
	FieldChannel,
	FieldCancelRequested,
	FieldMaxSteps,
	FieldMaxToolCalls,
	FieldCurrentStepIndex,
	FieldLockedBy,
	FieldLockedAt,
	FieldLockExpiresAt,
	FieldLockedTaskID,
	FieldCreatedAt,
	FieldStartedAt,
	FieldEndedAt,
	FieldArchivedAt,
	FieldErrorSummary,
	FieldInputText,
	FieldFinalText,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCancelRequested holds the default value on creation for the "cancel_requested" field.
	DefaultCancelRequested bool
	// DefaultMaxSteps holds the default value on creation for the "max_steps" field.
	DefaultMaxSteps int
	// DefaultMaxToolCalls holds the default value on creation for the "max_tool_calls" field.
	DefaultMaxToolCalls int
	// DefaultCurrentStepIndex holds the default value on creation for the "current_step_index" field.
	DefaultCurrentStepIndex int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultInputText holds the default value on creation for the "input_text" field.
	DefaultInputText string
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending            Status = "pending"
	StatusRunning            Status = "running"
	StatusPaused             Status = "paused"
	StatusWaitingForApproval Status = "waiting_for_approval"
	StatusWaitingForTool     Status = "waiting_for_tool"
	StatusWaitingForSubrun   Status = "waiting_for_subrun"
	StatusWaitingForUser     Status = "waiting_for_user"
	StatusCompleted          Status = "completed"
	StatusFailed             Status = "failed"
	StatusCanceled           Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusPaused, StatusWaitingForApproval, StatusWaitingForTool, StatusWaitingForSubrun, StatusWaitingForUser, StatusCompleted, StatusFailed, StatusCanceled:
		return nil
	default:
		return fmt.Errorf("agentrun: invalid enum value for status field: %q", s)
	}
}

// Channel defines the type for the "channel" enum field.
type Channel string

// ChannelAPI is the default value of the Channel enum.
const DefaultChannel = ChannelAPI

// Channel values.
const (
	ChannelDashboard Channel = "dashboard"
	ChannelTelegram  Channel = "telegram"
	ChannelAPI       Channel = "api"
)

func (c Channel) String() string {
	return string(c)
}

// ChannelValidator is a validator for the "channel" field enum values. It is called by the builders before save.
func ChannelValidator(c Channel) error {
	switch c {
	case ChannelDashboard, ChannelTelegram, ChannelAPI:
		return nil
	default:
		return fmt.Errorf("agentrun: invalid enum value for channel field: %q", c)
	}
}

// OrderOption defines the ordering options for the AgentRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByParentRunID orders the results by the parent_run_id field.
func ByParentRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentRunID, opts...).ToFunc()
}

// ByStartedBy orders the results by the started_by field.
func ByStartedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedBy, opts...).ToFunc()
}

// ByCorrelationID orders the results by the correlation_id field.
func ByCorrelationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrelationID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByChannel orders the results by the channel field.
func ByChannel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannel, opts...).ToFunc()
}

// ByCancelRequested orders the results by the cancel_requested field.
func ByCancelRequested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelRequested, opts...).ToFunc()
}

// ByMaxSteps orders the results by the max_steps field.
func ByMaxSteps(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxSteps, opts...).ToFunc()
}

// ByMaxToolCalls orders the results by the max_tool_calls field.
func ByMaxToolCalls(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxToolCalls, opts...).ToFunc()
}

// ByCurrentStepIndex orders the results by the current_step_index field.
func ByCurrentStepIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStepIndex, opts...).ToFunc()
}

// ByLockedBy orders the results by the locked_by field.
func ByLockedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLockedBy, opts...).ToFunc()
}

// ByLockedAt orders the results by the locked_at field.
func ByLockedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLockedAt, opts...).ToFunc()
}

// ByLockExpiresAt orders the results by the lock_expires_at field.
func ByLockExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLockExpiresAt, opts...).ToFunc()
}

// ByLockedTaskID orders the results by the locked_task_id field.
func ByLockedTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLockedTaskID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// ByArchivedAt orders the results by the archived_at field.
func ByArchivedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchivedAt, opts...).ToFunc()
}

// ByErrorSummary orders the results by the error_summary field.
func ByErrorSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorSummary, opts...).ToFunc()
}

// ByInputText orders the results by the input_text field.
func ByInputText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputText, opts...).ToFunc()
}

// ByFinalText orders the results by the final_text field.
func ByFinalText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalText, opts...).ToFunc()
}

// ByWorkspaceField orders the results by workspace field.
func ByWorkspaceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkspaceStep(), sql.OrderByField(field, opts...))
	}
}

// ByAgentField orders the results by agent field.
func ByAgentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentStep(), sql.OrderByField(field, opts...))
	}
}

// ByStepsCount orders the results by steps count.
func ByStepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepsStep(), opts...)
	}
}

// BySteps orders the results by steps terms.
func BySteps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByToolCallsCount orders the results by tool_calls count.
func ByToolCallsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newToolCallsStep(), opts...)
	}
}

// ByToolCalls orders the results by tool_calls terms.
func ByToolCalls(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newToolCallsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByChildLinksCount orders the results by child_links count.
func ByChildLinksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChildLinksStep(), opts...)
	}
}

// ByChildLinks orders the results by child_links terms.
func ByChildLinks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChildLinksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByArchivesCount orders the results by archives count.
func ByArchivesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newArchivesStep(), opts...)
	}
}

// ByArchives orders the results by archives terms.
func ByArchives(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newArchivesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newWorkspaceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkspaceInverseTable, WorkspaceFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
	)
}
func newAgentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentInverseTable, AgentFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
	)
}
func newStepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepsInverseTable, AgentStepFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, RunEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newToolCallsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ToolCallsInverseTable, ToolCallFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ToolCallsTable, ToolCallsColumn),
	)
}
func newChildLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChildLinksInverseTable, SubrunLinkFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChildLinksTable, ChildLinksColumn),
	)
}
func newArchivesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ArchivesInverseTable, RunArchiveFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ArchivesTable, ArchivesColumn),
	)
}
