// Code generated by ent, DO NOT EDIT.

package tooldefinition

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the tooldefinition type in the database.
	Label = "tool_definition"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "tool_definition_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldArgsSchema holds the string denoting the args_schema field in the database.
	FieldArgsSchema = "args_schema"
	// FieldDefaultRiskLevel holds the string denoting the default_risk_level field in the database.
	FieldDefaultRiskLevel = "default_risk_level"
	// FieldDefaultRequiresApproval holds the string denoting the default_requires_approval field in the database.
	FieldDefaultRequiresApproval = "default_requires_approval"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeWorkspace holds the string denoting the workspace edge name in mutations.
	EdgeWorkspace = "workspace"
	// WorkspaceFieldID holds the string denoting the ID field of the Workspace.
	WorkspaceFieldID = "workspace_id"
	// Table holds the table name of the tooldefinition in the database.
	Table = "tool_definitions"
	// WorkspaceTable is the table that holds the workspace relation/edge.
	WorkspaceTable = "tool_definitions"
	// WorkspaceInverseTable is the table name for the Workspace entity.
	// It exists in this package in order to avoid circular dependency with the "workspace" package.
	WorkspaceInverseTable = "workspaces"
	// WorkspaceColumn is the table column denoting the workspace relation/edge.
	WorkspaceColumn = "workspace_id"
)

// Columns holds all SQL columns for tooldefinition fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldName,
	FieldArgsSchema,
	FieldDefaultRiskLevel,
	FieldDefaultRequiresApproval,
	FieldEnabled,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultDefaultRequiresApproval holds the default value on creation for the "default_requires_approval" field.
	DefaultDefaultRequiresApproval bool
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// DefaultRiskLevel defines the type for the "default_risk_level" enum field.
type DefaultRiskLevel string

// DefaultRiskLevelLow is the default value of the DefaultRiskLevel enum.
const DefaultDefaultRiskLevel = DefaultRiskLevelLow

// DefaultRiskLevel values.
const (
	DefaultRiskLevelLow    DefaultRiskLevel = "low"
	DefaultRiskLevelMedium DefaultRiskLevel = "medium"
	DefaultRiskLevelHigh   DefaultRiskLevel = "high"
)

func (drl DefaultRiskLevel) String() string {
	return string(drl)
}

// DefaultRiskLevelValidator is a validator for the "default_risk_level" field enum values. It is called by the builders before save.
func DefaultRiskLevelValidator(drl DefaultRiskLevel) error {
	switch drl {
	case DefaultRiskLevelLow, DefaultRiskLevelMedium, DefaultRiskLevelHigh:
		return nil
	default:
		return fmt.Errorf("tooldefinition: invalid enum value for default_risk_level field: %q", drl)
	}
}

// OrderOption defines the ordering options for the ToolDefinition queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDefaultRiskLevel orders the results by the default_risk_level field.
func ByDefaultRiskLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultRiskLevel, opts...).ToFunc()
}

// ByDefaultRequiresApproval orders the results by the default_requires_approval field.
func ByDefaultRequiresApproval(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultRequiresApproval, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByWorkspaceField orders the results by workspace field.
func ByWorkspaceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkspaceStep(), sql.OrderByField(field, opts...))
	}
}
func newWorkspaceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkspaceInverseTable, WorkspaceFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
	)
}
