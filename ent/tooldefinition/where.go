// Code generated by ent, DO NOT EDIT.

package tooldefinition

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentmaestro/agentmaestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldContainsFold(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldEQ(FieldWorkspaceID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldEQ(FieldName, v))
}

// DefaultRequiresApproval applies equality check predicate on the "default_requires_approval" field. It's identical to DefaultRequiresApprovalEQ.
func DefaultRequiresApproval(v bool) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldEQ(FieldDefaultRequiresApproval, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldEQ(FieldEnabled, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldEQ(FieldCreatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldContainsFold(FieldName, v))
}

// ArgsSchemaIsNil applies the IsNil predicate on the "args_schema" field.
func ArgsSchemaIsNil() predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldIsNull(FieldArgsSchema))
}

// ArgsSchemaNotNil applies the NotNil predicate on the "args_schema" field.
func ArgsSchemaNotNil() predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldNotNull(FieldArgsSchema))
}

// DefaultRiskLevelEQ applies the EQ predicate on the "default_risk_level" field.
func DefaultRiskLevelEQ(v DefaultRiskLevel) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldEQ(FieldDefaultRiskLevel, v))
}

// DefaultRiskLevelNEQ applies the NEQ predicate on the "default_risk_level" field.
func DefaultRiskLevelNEQ(v DefaultRiskLevel) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldNEQ(FieldDefaultRiskLevel, v))
}

// DefaultRiskLevelIn applies the In predicate on the "default_risk_level" field.
func DefaultRiskLevelIn(vs ...DefaultRiskLevel) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldIn(FieldDefaultRiskLevel, vs...))
}

// DefaultRiskLevelNotIn applies the NotIn predicate on the "default_risk_level" field.
func DefaultRiskLevelNotIn(vs ...DefaultRiskLevel) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldNotIn(FieldDefaultRiskLevel, vs...))
}

// DefaultRequiresApprovalEQ applies the EQ predicate on the "default_requires_approval" field.
func DefaultRequiresApprovalEQ(v bool) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldEQ(FieldDefaultRequiresApproval, v))
}

// DefaultRequiresApprovalNEQ applies the NEQ predicate on the "default_requires_approval" field.
func DefaultRequiresApprovalNEQ(v bool) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldNEQ(FieldDefaultRequiresApproval, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldNEQ(FieldEnabled, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWorkspace applies the HasEdge predicate on the "workspace" edge.
func HasWorkspace() predicate.ToolDefinition {
	return predicate.ToolDefinition(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkspaceWith applies the HasEdge predicate on the "workspace" edge with a given conditions (other predicates).
func HasWorkspaceWith(preds ...predicate.Workspace) predicate.ToolDefinition {
	return predicate.ToolDefinition(func(s *sql.Selector) {
		step := newWorkspaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ToolDefinition) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ToolDefinition) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ToolDefinition) predicate.ToolDefinition {
	return predicate.ToolDefinition(sql.NotPredicates(p))
}
