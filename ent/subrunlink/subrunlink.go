// Code generated by ent, DO NOT EDIT.

package subrunlink

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the subrunlink type in the database.
	Label = "subrun_link"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "link_id"
	// FieldParentRunID holds the string denoting the parent_run_id field in the database.
	FieldParentRunID = "parent_run_id"
	// FieldChildRunID holds the string denoting the child_run_id field in the database.
	FieldChildRunID = "child_run_id"
	// FieldGroupID holds the string denoting the group_id field in the database.
	FieldGroupID = "group_id"
	// FieldJoinPolicy holds the string denoting the join_policy field in the database.
	FieldJoinPolicy = "join_policy"
	// FieldQuorum holds the string denoting the quorum field in the database.
	FieldQuorum = "quorum"
	// FieldTimeoutSeconds holds the string denoting the timeout_seconds field in the database.
	FieldTimeoutSeconds = "timeout_seconds"
	// FieldFailurePolicy holds the string denoting the failure_policy field in the database.
	FieldFailurePolicy = "failure_policy"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeParent holds the string denoting the parent edge name in mutations.
	EdgeParent = "parent"
	// AgentRunFieldID holds the string denoting the ID field of the AgentRun.
	AgentRunFieldID = "run_id"
	// Table holds the table name of the subrunlink in the database.
	Table = "subrun_links"
	// ParentTable is the table that holds the parent relation/edge.
	ParentTable = "subrun_links"
	// ParentInverseTable is the table name for the AgentRun entity.
	// It exists in this package in order to avoid circular dependency with the "agentrun" package.
	ParentInverseTable = "agent_runs"
	// ParentColumn is the table column denoting the parent relation/edge.
	ParentColumn = "parent_run_id"
)

// Columns holds all SQL columns for subrunlink fields.
var Columns = []string{
	FieldID,
	FieldParentRunID,
	FieldChildRunID,
	FieldGroupID,
	FieldJoinPolicy,
	FieldQuorum,
	FieldTimeoutSeconds,
	FieldFailurePolicy,
	FieldMetadata,
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

// JoinPolicy defines the type for the "join_policy" enum field.
type JoinPolicy string

// JoinPolicyWaitAll is the default value of the JoinPolicy enum.
const DefaultJoinPolicy = JoinPolicyWaitAll

// JoinPolicy values.
const (
	JoinPolicyWaitAll JoinPolicy = "wait_all"
	JoinPolicyWaitAny JoinPolicy = "wait_any"
	JoinPolicyQuorum  JoinPolicy = "quorum"
	JoinPolicyTimeout JoinPolicy = "timeout"
)

func (jp JoinPolicy) String() string {
	return string(jp)
}

// JoinPolicyValidator is a validator for the "join_policy" field enum values. It is called by the builders before save.
func JoinPolicyValidator(jp JoinPolicy) error {
	switch jp {
	case JoinPolicyWaitAll, JoinPolicyWaitAny, JoinPolicyQuorum, JoinPolicyTimeout:
		return nil
	default:
		return fmt.Errorf("subrunlink: invalid enum value for join_policy field: %q", jp)
	}
}

// FailurePolicy defines the type for the "failure_policy" enum field.
type FailurePolicy string

// FailurePolicyFailFast is the default value of the FailurePolicy enum.
const DefaultFailurePolicy = FailurePolicyFailFast

// FailurePolicy values.
const (
	FailurePolicyFailFast       FailurePolicy = "fail_fast"
	FailurePolicyCancelSiblings FailurePolicy = "cancel_siblings"
	FailurePolicyContinue       FailurePolicy = "continue"
)

func (fp FailurePolicy) String() string {
	return string(fp)
}

// FailurePolicyValidator is a validator for the "failure_policy" field enum values. It is called by the builders before save.
func FailurePolicyValidator(fp FailurePolicy) error {
	switch fp {
	case FailurePolicyFailFast, FailurePolicyCancelSiblings, FailurePolicyContinue:
		return nil
	default:
		return fmt.Errorf("subrunlink: invalid enum value for failure_policy field: %q", fp)
	}
}

// OrderOption defines the ordering options for the SubrunLink queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByParentRunID orders the results by the parent_run_id field.
func ByParentRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentRunID, opts...).ToFunc()
}

// ByChildRunID orders the results by the child_run_id field.
func ByChildRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChildRunID, opts...).ToFunc()
}

// ByGroupID orders the results by the group_id field.
func ByGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupID, opts...).ToFunc()
}

// ByJoinPolicy orders the results by the join_policy field.
func ByJoinPolicy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJoinPolicy, opts...).ToFunc()
}

// ByQuorum orders the results by the quorum field.
func ByQuorum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuorum, opts...).ToFunc()
}

// ByTimeoutSeconds orders the results by the timeout_seconds field.
func ByTimeoutSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeoutSeconds, opts...).ToFunc()
}

// ByFailurePolicy orders the results by the failure_policy field.
func ByFailurePolicy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailurePolicy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByParentField orders the results by parent field.
func ByParentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParentStep(), sql.OrderByField(field, opts...))
	}
}
func newParentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ParentInverseTable, AgentRunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
	)
}
