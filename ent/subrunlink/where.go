// Code generated by ent, DO NOT EDIT.

package subrunlink

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentmaestro/agentmaestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldContainsFold(FieldID, id))
}

// ParentRunID applies equality check predicate on the "parent_run_id" field. It's identical to ParentRunIDEQ.
func ParentRunID(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldEQ(FieldParentRunID, v))
}

// ChildRunID applies equality check predicate on the "child_run_id" field. It's identical to ChildRunIDEQ.
func ChildRunID(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldEQ(FieldChildRunID, v))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldEQ(FieldGroupID, v))
}

// Quorum applies equality check predicate on the "quorum" field. It's identical to QuorumEQ.
func Quorum(v int) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldEQ(FieldQuorum, v))
}

// TimeoutSeconds applies equality check predicate on the "timeout_seconds" field. It's identical to TimeoutSecondsEQ.
func TimeoutSeconds(v int) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldEQ(FieldTimeoutSeconds, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldEQ(FieldCreatedAt, v))
}

// ParentRunIDEQ applies the EQ predicate on the "parent_run_id" field.
func ParentRunIDEQ(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldEQ(FieldParentRunID, v))
}

// ParentRunIDNEQ applies the NEQ predicate on the "parent_run_id" field.
func ParentRunIDNEQ(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldNEQ(FieldParentRunID, v))
}

// ParentRunIDIn applies the In predicate on the "parent_run_id" field.
func ParentRunIDIn(vs ...string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldIn(FieldParentRunID, vs...))
}

// ParentRunIDNotIn applies the NotIn predicate on the "parent_run_id" field.
func ParentRunIDNotIn(vs ...string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldNotIn(FieldParentRunID, vs...))
}

// ParentRunIDGT applies the GT predicate on the "parent_run_id" field.
func ParentRunIDGT(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldGT(FieldParentRunID, v))
}

// ParentRunIDGTE applies the GTE predicate on the "parent_run_id" field.
func ParentRunIDGTE(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldGTE(FieldParentRunID, v))
}

// ParentRunIDLT applies the LT predicate on the "parent_run_id" field.
func ParentRunIDLT(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldLT(FieldParentRunID, v))
}

// ParentRunIDLTE applies the LTE predicate on the "parent_run_id" field.
func ParentRunIDLTE(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldLTE(FieldParentRunID, v))
}

// ParentRunIDContains applies the Contains predicate on the "parent_run_id" field.
func ParentRunIDContains(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldContains(FieldParentRunID, v))
}

// ParentRunIDHasPrefix applies the HasPrefix predicate on the "parent_run_id" field.
func ParentRunIDHasPrefix(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldHasPrefix(FieldParentRunID, v))
}

// ParentRunIDHasSuffix applies the HasSuffix predicate on the "parent_run_id" field.
func ParentRunIDHasSuffix(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldHasSuffix(FieldParentRunID, v))
}

// ParentRunIDEqualFold applies the EqualFold predicate on the "parent_run_id" field.
func ParentRunIDEqualFold(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldEqualFold(FieldParentRunID, v))
}

// ParentRunIDContainsFold applies the ContainsFold predicate on the "parent_run_id" field.
func ParentRunIDContainsFold(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldContainsFold(FieldParentRunID, v))
}

// ChildRunIDEQ applies the EQ predicate on the "child_run_id" field.
func ChildRunIDEQ(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldEQ(FieldChildRunID, v))
}

// ChildRunIDNEQ applies the NEQ predicate on the "child_run_id" field.
func ChildRunIDNEQ(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldNEQ(FieldChildRunID, v))
}

// ChildRunIDIn applies the In predicate on the "child_run_id" field.
func ChildRunIDIn(vs ...string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldIn(FieldChildRunID, vs...))
}

// ChildRunIDNotIn applies the NotIn predicate on the "child_run_id" field.
func ChildRunIDNotIn(vs ...string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldNotIn(FieldChildRunID, vs...))
}

// ChildRunIDGT applies the GT predicate on the "child_run_id" field.
func ChildRunIDGT(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldGT(FieldChildRunID, v))
}

// ChildRunIDGTE applies the GTE predicate on the "child_run_id" field.
func ChildRunIDGTE(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldGTE(FieldChildRunID, v))
}

// ChildRunIDLT applies the LT predicate on the "child_run_id" field.
func ChildRunIDLT(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldLT(FieldChildRunID, v))
}

// ChildRunIDLTE applies the LTE predicate on the "child_run_id" field.
func ChildRunIDLTE(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldLTE(FieldChildRunID, v))
}

// ChildRunIDContains applies the Contains predicate on the "child_run_id" field.
func ChildRunIDContains(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldContains(FieldChildRunID, v))
}

// ChildRunIDHasPrefix applies the HasPrefix predicate on the "child_run_id" field.
func ChildRunIDHasPrefix(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldHasPrefix(FieldChildRunID, v))
}

// ChildRunIDHasSuffix applies the HasSuffix predicate on the "child_run_id" field.
func ChildRunIDHasSuffix(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldHasSuffix(FieldChildRunID, v))
}

// ChildRunIDEqualFold applies the EqualFold predicate on the "child_run_id" field.
func ChildRunIDEqualFold(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldEqualFold(FieldChildRunID, v))
}

// ChildRunIDContainsFold applies the ContainsFold predicate on the "child_run_id" field.
func ChildRunIDContainsFold(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldContainsFold(FieldChildRunID, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDContains applies the Contains predicate on the "group_id" field.
func GroupIDContains(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldContains(FieldGroupID, v))
}

// GroupIDHasPrefix applies the HasPrefix predicate on the "group_id" field.
func GroupIDHasPrefix(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldHasPrefix(FieldGroupID, v))
}

// GroupIDHasSuffix applies the HasSuffix predicate on the "group_id" field.
func GroupIDHasSuffix(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldHasSuffix(FieldGroupID, v))
}

// GroupIDEqualFold applies the EqualFold predicate on the "group_id" field.
func GroupIDEqualFold(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldEqualFold(FieldGroupID, v))
}

// GroupIDContainsFold applies the ContainsFold predicate on the "group_id" field.
func GroupIDContainsFold(v string) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldContainsFold(FieldGroupID, v))
}

// JoinPolicyEQ applies the EQ predicate on the "join_policy" field.
func JoinPolicyEQ(v JoinPolicy) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldEQ(FieldJoinPolicy, v))
}

// JoinPolicyNEQ applies the NEQ predicate on the "join_policy" field.
func JoinPolicyNEQ(v JoinPolicy) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldNEQ(FieldJoinPolicy, v))
}

// JoinPolicyIn applies the In predicate on the "join_policy" field.
func JoinPolicyIn(vs ...JoinPolicy) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldIn(FieldJoinPolicy, vs...))
}

// JoinPolicyNotIn applies the NotIn predicate on the "join_policy" field.
func JoinPolicyNotIn(vs ...JoinPolicy) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldNotIn(FieldJoinPolicy, vs...))
}

// QuorumEQ applies the EQ predicate on the "quorum" field.
func QuorumEQ(v int) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldEQ(FieldQuorum, v))
}

// QuorumNEQ applies the NEQ predicate on the "quorum" field.
func QuorumNEQ(v int) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldNEQ(FieldQuorum, v))
}

// QuorumIn applies the In predicate on the "quorum" field.
func QuorumIn(vs ...int) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldIn(FieldQuorum, vs...))
}

// QuorumNotIn applies the NotIn predicate on the "quorum" field.
func QuorumNotIn(vs ...int) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldNotIn(FieldQuorum, vs...))
}

// QuorumGT applies the GT predicate on the "quorum" field.
func QuorumGT(v int) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldGT(FieldQuorum, v))
}

// QuorumGTE applies the GTE predicate on the "quorum" field.
func QuorumGTE(v int) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldGTE(FieldQuorum, v))
}

// QuorumLT applies the LT predicate on the "quorum" field.
func QuorumLT(v int) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldLT(FieldQuorum, v))
}

// QuorumLTE applies the LTE predicate on the "quorum" field.
func QuorumLTE(v int) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldLTE(FieldQuorum, v))
}

// QuorumIsNil applies the IsNil predicate on the "quorum" field.
func QuorumIsNil() predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldIsNull(FieldQuorum))
}

// QuorumNotNil applies the NotNil predicate on the "quorum" field.
func QuorumNotNil() predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldNotNull(FieldQuorum))
}

// TimeoutSecondsEQ applies the EQ predicate on the "timeout_seconds" field.
func TimeoutSecondsEQ(v int) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldEQ(FieldTimeoutSeconds, v))
}

// TimeoutSecondsNEQ applies the NEQ predicate on the "timeout_seconds" field.
func TimeoutSecondsNEQ(v int) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldNEQ(FieldTimeoutSeconds, v))
}

// TimeoutSecondsIn applies the In predicate on the "timeout_seconds" field.
func TimeoutSecondsIn(vs ...int) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldIn(FieldTimeoutSeconds, vs...))
}

// TimeoutSecondsNotIn applies the NotIn predicate on the "timeout_seconds" field.
func TimeoutSecondsNotIn(vs ...int) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldNotIn(FieldTimeoutSeconds, vs...))
}

// TimeoutSecondsGT applies the GT predicate on the "timeout_seconds" field.
func TimeoutSecondsGT(v int) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldGT(FieldTimeoutSeconds, v))
}

// TimeoutSecondsGTE applies the GTE predicate on the "timeout_seconds" field.
func TimeoutSecondsGTE(v int) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldGTE(FieldTimeoutSeconds, v))
}

// TimeoutSecondsLT applies the LT predicate on the "timeout_seconds" field.
func TimeoutSecondsLT(v int) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldLT(FieldTimeoutSeconds, v))
}

// TimeoutSecondsLTE applies the LTE predicate on the "timeout_seconds" field.
func TimeoutSecondsLTE(v int) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldLTE(FieldTimeoutSeconds, v))
}

// TimeoutSecondsIsNil applies the IsNil predicate on the "timeout_seconds" field.
func TimeoutSecondsIsNil() predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldIsNull(FieldTimeoutSeconds))
}

// TimeoutSecondsNotNil applies the NotNil predicate on the "timeout_seconds" field.
func TimeoutSecondsNotNil() predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldNotNull(FieldTimeoutSeconds))
}

// FailurePolicyEQ applies the EQ predicate on the "failure_policy" field.
func FailurePolicyEQ(v FailurePolicy) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldEQ(FieldFailurePolicy, v))
}

// FailurePolicyNEQ applies the NEQ predicate on the "failure_policy" field.
func FailurePolicyNEQ(v FailurePolicy) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldNEQ(FieldFailurePolicy, v))
}

// FailurePolicyIn applies the In predicate on the "failure_policy" field.
func FailurePolicyIn(vs ...FailurePolicy) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldIn(FieldFailurePolicy, vs...))
}

// FailurePolicyNotIn applies the NotIn predicate on the "failure_policy" field.
func FailurePolicyNotIn(vs ...FailurePolicy) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldNotIn(FieldFailurePolicy, vs...))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SubrunLink {
	return predicate.SubrunLink(sql.FieldLTE(FieldCreatedAt, v))
}

// HasParent applies the HasEdge predicate on the "parent" edge.
func HasParent() predicate.SubrunLink {
	return predicate.SubrunLink(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParentWith applies the HasEdge predicate on the "parent" edge with a given conditions (other predicates).
func HasParentWith(preds ...predicate.AgentRun) predicate.SubrunLink {
	return predicate.SubrunLink(func(s *sql.Selector) {
		step := newParentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubrunLink) predicate.SubrunLink {
	return predicate.SubrunLink(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubrunLink) predicate.SubrunLink {
	return predicate.SubrunLink(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubrunLink) predicate.SubrunLink {
	return predicate.SubrunLink(sql.NotPredicates(p))
}
