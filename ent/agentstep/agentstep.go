// Code generated by ent, DO NOT EDIT.

package agentstep

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agentstep type in the database.
	Label = "agent_step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "step_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldStepIndex holds the string denoting the step_index field in the database.
	FieldStepIndex = "step_index"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCorrelationID holds the string denoting the correlation_id field in the database.
	FieldCorrelationID = "correlation_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// EdgeToolCall holds the string denoting the tool_call edge name in mutations.
	EdgeToolCall = "tool_call"
	// AgentRunFieldID holds the string denoting the ID field of the AgentRun.
	AgentRunFieldID = "run_id"
	// ToolCallFieldID holds the string denoting the ID field of the ToolCall.
	ToolCallFieldID = "tool_call_id"
	// Table holds the table name of the agentstep in the database.
	Table = "agent_steps"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "agent_steps"
	// RunInverseTable is the table name for the AgentRun entity.
	// It exists in this package in order to avoid circular dependency with the "agentrun" package.
	RunInverseTable = "agent_runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
	// ToolCallTable is the table that holds the tool_call relation/edge.
	ToolCallTable = "tool_calls"
	// ToolCallInverseTable is the table name for the ToolCall entity.
	// It exists in this package in order to avoid circular dependency with the "toolcall" package.
	ToolCallInverseTable = "tool_calls"
	// ToolCallColumn is the table column denoting the tool_call relation/edge.
	ToolCallColumn = "step_id"
)

// Columns holds all SQL columns for agentstep fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldStepIndex,
	FieldKind,
	FieldPayload,
	FieldCorrelationID,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindPlan        Kind = "plan"
	KindModelCall   Kind = "model_call"
	KindToolCall    Kind = "tool_call"
	KindObservation Kind = "observation"
	KindMessage     Kind = "message"
	KindSubrunSpawn Kind = "subrun_spawn"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindPlan, KindModelCall, KindToolCall, KindObservation, KindMessage, KindSubrunSpawn:
		return nil
	default:
		return fmt.Errorf("agentstep: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the AgentStep queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByStepIndex orders the results by the step_index field.
func ByStepIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepIndex, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByCorrelationID orders the results by the correlation_id field.
func ByCorrelationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrelationID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}

// ByToolCallField orders the results by tool_call field.
func ByToolCallField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newToolCallStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, AgentRunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
func newToolCallStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ToolCallInverseTable, ToolCallFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, ToolCallTable, ToolCallColumn),
	)
}
