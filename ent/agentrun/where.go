// Code generated by ent, DO NOT EDIT.

package agentrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentmaestro/agentmaestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContainsFold(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldWorkspaceID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldAgentID, v))
}

// ParentRunID applies equality check predicate on the "parent_run_id" field. It's identical to ParentRunIDEQ.
func ParentRunID(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldParentRunID, v))
}

// StartedBy applies equality check predicate on the "started_by" field. It's identical to StartedByEQ.
func StartedBy(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldStartedBy, v))
}

// CorrelationID applies equality check predicate on the "correlation_id" field. It's identical to CorrelationIDEQ.
func CorrelationID(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldCorrelationID, v))
}

// CancelRequested applies equality check predicate on the "cancel_requested" field. It's identical to CancelRequestedEQ.
func CancelRequested(v bool) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldCancelRequested, v))
}

// MaxSteps applies equality check predicate on the "max_steps" field. It's identical to MaxStepsEQ.
func MaxSteps(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldMaxSteps, v))
}

// MaxToolCalls applies equality check predicate on the "max_tool_calls" field. It's identical to MaxToolCallsEQ.
func MaxToolCalls(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldMaxToolCalls, v))
}

// CurrentStepIndex applies equality check predicate on the "current_step_index" field. It's identical to CurrentStepIndexEQ.
func CurrentStepIndex(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldCurrentStepIndex, v))
}

// LockedBy applies equality check predicate on the "locked_by" field. It's identical to LockedByEQ.
func LockedBy(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldLockedBy, v))
}

// LockedAt applies equality check predicate on the "locked_at" field. It's identical to LockedAtEQ.
func LockedAt(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldLockedAt, v))
}

// LockExpiresAt applies equality check predicate on the "lock_expires_at" field. It's identical to LockExpiresAtEQ.
func LockExpiresAt(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldLockExpiresAt, v))
}

// LockedTaskID applies equality check predicate on the "locked_task_id" field. It's identical to LockedTaskIDEQ.
func LockedTaskID(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldLockedTaskID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldEndedAt, v))
}

// ArchivedAt applies equality check predicate on the "archived_at" field. It's identical to ArchivedAtEQ.
func ArchivedAt(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldArchivedAt, v))
}

// ErrorSummary applies equality check predicate on the "error_summary" field. It's identical to ErrorSummaryEQ.
func ErrorSummary(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldErrorSummary, v))
}

// InputText applies equality check predicate on the "input_text" field. It's identical to InputTextEQ.
func InputText(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldInputText, v))
}

// FinalText applies equality check predicate on the "final_text" field. It's identical to FinalTextEQ.
func FinalText(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldFinalText, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContainsFold(FieldAgentID, v))
}

// ParentRunIDEQ applies the EQ predicate on the "parent_run_id" field.
func ParentRunIDEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldParentRunID, v))
}

// ParentRunIDNEQ applies the NEQ predicate on the "parent_run_id" field.
func ParentRunIDNEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldParentRunID, v))
}

// ParentRunIDIn applies the In predicate on the "parent_run_id" field.
func ParentRunIDIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldParentRunID, vs...))
}

// ParentRunIDNotIn applies the NotIn predicate on the "parent_run_id" field.
func ParentRunIDNotIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldParentRunID, vs...))
}

// ParentRunIDGT applies the GT predicate on the "parent_run_id" field.
func ParentRunIDGT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldParentRunID, v))
}

// ParentRunIDGTE applies the GTE predicate on the "parent_run_id" field.
func ParentRunIDGTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldParentRunID, v))
}

// ParentRunIDLT applies the LT predicate on the "parent_run_id" field.
func ParentRunIDLT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldParentRunID, v))
}

// ParentRunIDLTE applies the LTE predicate on the "parent_run_id" field.
func ParentRunIDLTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldParentRunID, v))
}

// ParentRunIDContains applies the Contains predicate on the "parent_run_id" field.
func ParentRunIDContains(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContains(FieldParentRunID, v))
}

// ParentRunIDHasPrefix applies the HasPrefix predicate on the "parent_run_id" field.
func ParentRunIDHasPrefix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasPrefix(FieldParentRunID, v))
}

// ParentRunIDHasSuffix applies the HasSuffix predicate on the "parent_run_id" field.
func ParentRunIDHasSuffix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasSuffix(FieldParentRunID, v))
}

// ParentRunIDIsNil applies the IsNil predicate on the "parent_run_id" field.
func ParentRunIDIsNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIsNull(FieldParentRunID))
}

// ParentRunIDNotNil applies the NotNil predicate on the "parent_run_id" field.
func ParentRunIDNotNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotNull(FieldParentRunID))
}

// ParentRunIDEqualFold applies the EqualFold predicate on the "parent_run_id" field.
func ParentRunIDEqualFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEqualFold(FieldParentRunID, v))
}

// ParentRunIDContainsFold applies the ContainsFold predicate on the "parent_run_id" field.
func ParentRunIDContainsFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContainsFold(FieldParentRunID, v))
}

// StartedByEQ applies the EQ predicate on the "started_by" field.
func StartedByEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldStartedBy, v))
}

// StartedByNEQ applies the NEQ predicate on the "started_by" field.
func StartedByNEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldStartedBy, v))
}

// StartedByIn applies the In predicate on the "started_by" field.
func StartedByIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldStartedBy, vs...))
}

// StartedByNotIn applies the NotIn predicate on the "started_by" field.
func StartedByNotIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldStartedBy, vs...))
}

// StartedByGT applies the GT predicate on the "started_by" field.
func StartedByGT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldStartedBy, v))
}

// StartedByGTE applies the GTE predicate on the "started_by" field.
func StartedByGTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldStartedBy, v))
}

// StartedByLT applies the LT predicate on the "started_by" field.
func StartedByLT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldStartedBy, v))
}

// StartedByLTE applies the LTE predicate on the "started_by" field.
func StartedByLTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldStartedBy, v))
}

// StartedByContains applies the Contains predicate on the "started_by" field.
func StartedByContains(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContains(FieldStartedBy, v))
}

// StartedByHasPrefix applies the HasPrefix predicate on the "started_by" field.
func StartedByHasPrefix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasPrefix(FieldStartedBy, v))
}

// StartedByHasSuffix applies the HasSuffix predicate on the "started_by" field.
func StartedByHasSuffix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasSuffix(FieldStartedBy, v))
}

// StartedByIsNil applies the IsNil predicate on the "started_by" field.
func StartedByIsNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIsNull(FieldStartedBy))
}

// StartedByNotNil applies the NotNil predicate on the "started_by" field.
func StartedByNotNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotNull(FieldStartedBy))
}

// StartedByEqualFold applies the EqualFold predicate on the "started_by" field.
func StartedByEqualFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEqualFold(FieldStartedBy, v))
}

// StartedByContainsFold applies the ContainsFold predicate on the "started_by" field.
func StartedByContainsFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContainsFold(FieldStartedBy, v))
}

// CorrelationIDEQ applies the EQ predicate on the "correlation_id" field.
func CorrelationIDEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldCorrelationID, v))
}

// CorrelationIDNEQ applies the NEQ predicate on the "correlation_id" field.
func CorrelationIDNEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldCorrelationID, v))
}

// CorrelationIDIn applies the In predicate on the "correlation_id" field.
func CorrelationIDIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldCorrelationID, vs...))
}

// CorrelationIDNotIn applies the NotIn predicate on the "correlation_id" field.
func CorrelationIDNotIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldCorrelationID, vs...))
}

// CorrelationIDGT applies the GT predicate on the "correlation_id" field.
func CorrelationIDGT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldCorrelationID, v))
}

// CorrelationIDGTE applies the GTE predicate on the "correlation_id" field.
func CorrelationIDGTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldCorrelationID, v))
}

// CorrelationIDLT applies the LT predicate on the "correlation_id" field.
func CorrelationIDLT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldCorrelationID, v))
}

// CorrelationIDLTE applies the LTE predicate on the "correlation_id" field.
func CorrelationIDLTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldCorrelationID, v))
}

// CorrelationIDContains applies the Contains predicate on the "correlation_id" field.
func CorrelationIDContains(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContains(FieldCorrelationID, v))
}

// CorrelationIDHasPrefix applies the HasPrefix predicate on the "correlation_id" field.
func CorrelationIDHasPrefix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasPrefix(FieldCorrelationID, v))
}

// CorrelationIDHasSuffix applies the HasSuffix predicate on the "correlation_id" field.
func CorrelationIDHasSuffix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasSuffix(FieldCorrelationID, v))
}

// CorrelationIDEqualFold applies the EqualFold predicate on the "correlation_id" field.
func CorrelationIDEqualFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEqualFold(FieldCorrelationID, v))
}

// CorrelationIDContainsFold applies the ContainsFold predicate on the "correlation_id" field.
func CorrelationIDContainsFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContainsFold(FieldCorrelationID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldStatus, vs...))
}

// ChannelEQ applies the EQ predicate on the "channel" field.
func ChannelEQ(v Channel) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldChannel, v))
}

// ChannelNEQ applies the NEQ predicate on the "channel" field.
func ChannelNEQ(v Channel) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldChannel, v))
}

// ChannelIn applies the In predicate on the "channel" field.
func ChannelIn(vs ...Channel) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldChannel, vs...))
}

// ChannelNotIn applies the NotIn predicate on the "channel" field.
func ChannelNotIn(vs ...Channel) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldChannel, vs...))
}

// CancelRequestedEQ applies the EQ predicate on the "cancel_requested" field.
func CancelRequestedEQ(v bool) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldCancelRequested, v))
}

// CancelRequestedNEQ applies the NEQ predicate on the "cancel_requested" field.
func CancelRequestedNEQ(v bool) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldCancelRequested, v))
}

// MaxStepsEQ applies the EQ predicate on the "max_steps" field.
func MaxStepsEQ(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldMaxSteps, v))
}

// MaxStepsNEQ applies the NEQ predicate on the "max_steps" field.
func MaxStepsNEQ(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldMaxSteps, v))
}

// MaxStepsIn applies the In predicate on the "max_steps" field.
func MaxStepsIn(vs ...int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldMaxSteps, vs...))
}

// MaxStepsNotIn applies the NotIn predicate on the "max_steps" field.
func MaxStepsNotIn(vs ...int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldMaxSteps, vs...))
}

// MaxStepsGT applies the GT predicate on the "max_steps" field.
func MaxStepsGT(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldMaxSteps, v))
}

// MaxStepsGTE applies the GTE predicate on the "max_steps" field.
func MaxStepsGTE(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldMaxSteps, v))
}

// MaxStepsLT applies the LT predicate on the "max_steps" field.
func MaxStepsLT(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldMaxSteps, v))
}

// MaxStepsLTE applies the LTE predicate on the "max_steps" field.
func MaxStepsLTE(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldMaxSteps, v))
}

// MaxToolCallsEQ applies the EQ predicate on the "max_tool_calls" field.
func MaxToolCallsEQ(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldMaxToolCalls, v))
}

// MaxToolCallsNEQ applies the NEQ predicate on the "max_tool_calls" field.
func MaxToolCallsNEQ(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldMaxToolCalls, v))
}

// MaxToolCallsIn applies the In predicate on the "max_tool_calls" field.
func MaxToolCallsIn(vs ...int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldMaxToolCalls, vs...))
}

// MaxToolCallsNotIn applies the NotIn predicate on the "max_tool_calls" field.
func MaxToolCallsNotIn(vs ...int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldMaxToolCalls, vs...))
}

// MaxToolCallsGT applies the GT predicate on the "max_tool_calls" field.
func MaxToolCallsGT(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldMaxToolCalls, v))
}

// MaxToolCallsGTE applies the GTE predicate on the "max_tool_calls" field.
func MaxToolCallsGTE(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldMaxToolCalls, v))
}

// MaxToolCallsLT applies the LT predicate on the "max_tool_calls" field.
func MaxToolCallsLT(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldMaxToolCalls, v))
}

// MaxToolCallsLTE applies the LTE predicate on the "max_tool_calls" field.
func MaxToolCallsLTE(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldMaxToolCalls, v))
}

// CurrentStepIndexEQ applies the EQ predicate on the "current_step_index" field.
func CurrentStepIndexEQ(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldCurrentStepIndex, v))
}

// CurrentStepIndexNEQ applies the NEQ predicate on the "current_step_index" field.
func CurrentStepIndexNEQ(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldCurrentStepIndex, v))
}

// CurrentStepIndexIn applies the In predicate on the "current_step_index" field.
func CurrentStepIndexIn(vs ...int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldCurrentStepIndex, vs...))
}

// CurrentStepIndexNotIn applies the NotIn predicate on the "current_step_index" field.
func CurrentStepIndexNotIn(vs ...int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldCurrentStepIndex, vs...))
}

// CurrentStepIndexGT applies the GT predicate on the "current_step_index" field.
func CurrentStepIndexGT(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldCurrentStepIndex, v))
}

// CurrentStepIndexGTE applies the GTE predicate on the "current_step_index" field.
func CurrentStepIndexGTE(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldCurrentStepIndex, v))
}

// CurrentStepIndexLT applies the LT predicate on the "current_step_index" field.
func CurrentStepIndexLT(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldCurrentStepIndex, v))
}

// CurrentStepIndexLTE applies the LTE predicate on the "current_step_index" field.
func CurrentStepIndexLTE(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldCurrentStepIndex, v))
}

// LockedByEQ applies the EQ predicate on the "locked_by" field.
func LockedByEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldLockedBy, v))
}

// LockedByNEQ applies the NEQ predicate on the "locked_by" field.
func LockedByNEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldLockedBy, v))
}

// LockedByIn applies the In predicate on the "locked_by" field.
func LockedByIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldLockedBy, vs...))
}

// LockedByNotIn applies the NotIn predicate on the "locked_by" field.
func LockedByNotIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldLockedBy, vs...))
}

// LockedByGT applies the GT predicate on the "locked_by" field.
func LockedByGT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldLockedBy, v))
}

// LockedByGTE applies the GTE predicate on the "locked_by" field.
func LockedByGTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldLockedBy, v))
}

// LockedByLT applies the LT predicate on the "locked_by" field.
func LockedByLT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldLockedBy, v))
}

// LockedByLTE applies the LTE predicate on the "locked_by" field.
func LockedByLTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldLockedBy, v))
}

// LockedByContains applies the Contains predicate on the "locked_by" field.
func LockedByContains(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContains(FieldLockedBy, v))
}

// LockedByHasPrefix applies the HasPrefix predicate on the "locked_by" field.
func LockedByHasPrefix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasPrefix(FieldLockedBy, v))
}

// LockedByHasSuffix applies the HasSuffix predicate on the "locked_by" field.
func LockedByHasSuffix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasSuffix(FieldLockedBy, v))
}

// LockedByIsNil applies the IsNil predicate on the "locked_by" field.
func LockedByIsNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIsNull(FieldLockedBy))
}

// LockedByNotNil applies the NotNil predicate on the "locked_by" field.
func LockedByNotNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotNull(FieldLockedBy))
}

// LockedByEqualFold applies the EqualFold predicate on the "locked_by" field.
func LockedByEqualFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEqualFold(FieldLockedBy, v))
}

// LockedByContainsFold applies the ContainsFold predicate on the "locked_by" field.
func LockedByContainsFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContainsFold(FieldLockedBy, v))
}

// LockedAtEQ applies the EQ predicate on the "locked_at" field.
func LockedAtEQ(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldLockedAt, v))
}

// LockedAtNEQ applies the NEQ predicate on the "locked_at" field.
func LockedAtNEQ(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldLockedAt, v))
}

// LockedAtIn applies the In predicate on the "locked_at" field.
func LockedAtIn(vs ...time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldLockedAt, vs...))
}

// LockedAtNotIn applies the NotIn predicate on the "locked_at" field.
func LockedAtNotIn(vs ...time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldLockedAt, vs...))
}

// LockedAtGT applies the GT predicate on the "locked_at" field.
func LockedAtGT(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldLockedAt, v))
}

// LockedAtGTE applies the GTE predicate on the "locked_at" field.
func LockedAtGTE(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldLockedAt, v))
}

// LockedAtLT applies the LT predicate on the "locked_at" field.
func LockedAtLT(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldLockedAt, v))
}

// LockedAtLTE applies the LTE predicate on the "locked_at" field.
func LockedAtLTE(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldLockedAt, v))
}

// LockedAtIsNil applies the IsNil predicate on the "locked_at" field.
func LockedAtIsNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIsNull(FieldLockedAt))
}

// LockedAtNotNil applies the NotNil predicate on the "locked_at" field.
func LockedAtNotNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotNull(FieldLockedAt))
}

// LockExpiresAtEQ applies the EQ predicate on the "lock_expires_at" field.
func LockExpiresAtEQ(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldLockExpiresAt, v))
}

// LockExpiresAtNEQ applies the NEQ predicate on the "lock_expires_at" field.
func LockExpiresAtNEQ(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldLockExpiresAt, v))
}

// LockExpiresAtIn applies the In predicate on the "lock_expires_at" field.
func LockExpiresAtIn(vs ...time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldLockExpiresAt, vs...))
}

// LockExpiresAtNotIn applies the NotIn predicate on the "lock_expires_at" field.
func LockExpiresAtNotIn(vs ...time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldLockExpiresAt, vs...))
}

// LockExpiresAtGT applies the GT predicate on the "lock_expires_at" field.
func LockExpiresAtGT(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldLockExpiresAt, v))
}

// LockExpiresAtGTE applies the GTE predicate on the "lock_expires_at" field.
func LockExpiresAtGTE(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldLockExpiresAt, v))
}

// LockExpiresAtLT applies the LT predicate on the "lock_expires_at" field.
func LockExpiresAtLT(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldLockExpiresAt, v))
}

// LockExpiresAtLTE applies the LTE predicate on the "lock_expires_at" field.
func LockExpiresAtLTE(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldLockExpiresAt, v))
}

// LockExpiresAtIsNil applies the IsNil predicate on the "lock_expires_at" field.
func LockExpiresAtIsNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIsNull(FieldLockExpiresAt))
}

// LockExpiresAtNotNil applies the NotNil predicate on the "lock_expires_at" field.
func LockExpiresAtNotNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotNull(FieldLockExpiresAt))
}

// LockedTaskIDEQ applies the EQ predicate on the "locked_task_id" field.
func LockedTaskIDEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldLockedTaskID, v))
}

// LockedTaskIDNEQ applies the NEQ predicate on the "locked_task_id" field.
func LockedTaskIDNEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldLockedTaskID, v))
}

// LockedTaskIDIn applies the In predicate on the "locked_task_id" field.
func LockedTaskIDIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldLockedTaskID, vs...))
}

// LockedTaskIDNotIn applies the NotIn predicate on the "locked_task_id" field.
func LockedTaskIDNotIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldLockedTaskID, vs...))
}

// LockedTaskIDGT applies the GT predicate on the "locked_task_id" field.
func LockedTaskIDGT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldLockedTaskID, v))
}

// LockedTaskIDGTE applies the GTE predicate on the "locked_task_id" field.
func LockedTaskIDGTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldLockedTaskID, v))
}

// LockedTaskIDLT applies the LT predicate on the "locked_task_id" field.
func LockedTaskIDLT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldLockedTaskID, v))
}

// LockedTaskIDLTE applies the LTE predicate on the "locked_task_id" field.
func LockedTaskIDLTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldLockedTaskID, v))
}

// LockedTaskIDContains applies the Contains predicate on the "locked_task_id" field.
func LockedTaskIDContains(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContains(FieldLockedTaskID, v))
}

// LockedTaskIDHasPrefix applies the HasPrefix predicate on the "locked_task_id" field.
func LockedTaskIDHasPrefix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasPrefix(FieldLockedTaskID, v))
}

// LockedTaskIDHasSuffix applies the HasSuffix predicate on the "locked_task_id" field.
func LockedTaskIDHasSuffix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasSuffix(FieldLockedTaskID, v))
}

// LockedTaskIDIsNil applies the IsNil predicate on the "locked_task_id" field.
func LockedTaskIDIsNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIsNull(FieldLockedTaskID))
}

// LockedTaskIDNotNil applies the NotNil predicate on the "locked_task_id" field.
func LockedTaskIDNotNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotNull(FieldLockedTaskID))
}

// LockedTaskIDEqualFold applies the EqualFold predicate on the "locked_task_id" field.
func LockedTaskIDEqualFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEqualFold(FieldLockedTaskID, v))
}

// LockedTaskIDContainsFold applies the ContainsFold predicate on the "locked_task_id" field.
func LockedTaskIDContainsFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContainsFold(FieldLockedTaskID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotNull(FieldStartedAt))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotNull(FieldEndedAt))
}

// ArchivedAtEQ applies the EQ predicate on the "archived_at" field.
func ArchivedAtEQ(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldArchivedAt, v))
}

// ArchivedAtNEQ applies the NEQ predicate on the "archived_at" field.
func ArchivedAtNEQ(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldArchivedAt, v))
}

// ArchivedAtIn applies the In predicate on the "archived_at" field.
func ArchivedAtIn(vs ...time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldArchivedAt, vs...))
}

// ArchivedAtNotIn applies the NotIn predicate on the "archived_at" field.
func ArchivedAtNotIn(vs ...time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldArchivedAt, vs...))
}

// ArchivedAtGT applies the GT predicate on the "archived_at" field.
func ArchivedAtGT(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldArchivedAt, v))
}

// ArchivedAtGTE applies the GTE predicate on the "archived_at" field.
func ArchivedAtGTE(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldArchivedAt, v))
}

// ArchivedAtLT applies the LT predicate on the "archived_at" field.
func ArchivedAtLT(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldArchivedAt, v))
}

// ArchivedAtLTE applies the LTE predicate on the "archived_at" field.
func ArchivedAtLTE(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldArchivedAt, v))
}

// ArchivedAtIsNil applies the IsNil predicate on the "archived_at" field.
func ArchivedAtIsNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIsNull(FieldArchivedAt))
}

// ArchivedAtNotNil applies the NotNil predicate on the "archived_at" field.
func ArchivedAtNotNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotNull(FieldArchivedAt))
}

// ErrorSummaryEQ applies the EQ predicate on the "error_summary" field.
func ErrorSummaryEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldErrorSummary, v))
}

// ErrorSummaryNEQ applies the NEQ predicate on the "error_summary" field.
func ErrorSummaryNEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldErrorSummary, v))
}

// ErrorSummaryIn applies the In predicate on the "error_summary" field.
func ErrorSummaryIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldErrorSummary, vs...))
}

// ErrorSummaryNotIn applies the NotIn predicate on the "error_summary" field.
func ErrorSummaryNotIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldErrorSummary, vs...))
}

// ErrorSummaryGT applies the GT predicate on the "error_summary" field.
func ErrorSummaryGT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldErrorSummary, v))
}

// ErrorSummaryGTE applies the GTE predicate on the "error_summary" field.
func ErrorSummaryGTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldErrorSummary, v))
}

// ErrorSummaryLT applies the LT predicate on the "error_summary" field.
func ErrorSummaryLT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldErrorSummary, v))
}

// ErrorSummaryLTE applies the LTE predicate on the "error_summary" field.
func ErrorSummaryLTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldErrorSummary, v))
}

// ErrorSummaryContains applies the Contains predicate on the "error_summary" field.
func ErrorSummaryContains(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContains(FieldErrorSummary, v))
}

// ErrorSummaryHasPrefix applies the HasPrefix predicate on the "error_summary" field.
func ErrorSummaryHasPrefix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasPrefix(FieldErrorSummary, v))
}

// ErrorSummaryHasSuffix applies the HasSuffix predicate on the "error_summary" field.
func ErrorSummaryHasSuffix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasSuffix(FieldErrorSummary, v))
}

// ErrorSummaryIsNil applies the IsNil predicate on the "error_summary" field.
func ErrorSummaryIsNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIsNull(FieldErrorSummary))
}

// ErrorSummaryNotNil applies the NotNil predicate on the "error_summary" field.
func ErrorSummaryNotNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotNull(FieldErrorSummary))
}

// ErrorSummaryEqualFold applies the EqualFold predicate on the "error_summary" field.
func ErrorSummaryEqualFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEqualFold(FieldErrorSummary, v))
}

// ErrorSummaryContainsFold applies the ContainsFold predicate on the "error_summary" field.
func ErrorSummaryContainsFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContainsFold(FieldErrorSummary, v))
}

// InputTextEQ applies the EQ predicate on the "input_text" field.
func InputTextEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldInputText, v))
}

// InputTextNEQ applies the NEQ predicate on the "input_text" field.
func InputTextNEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldInputText, v))
}

// InputTextIn applies the In predicate on the "input_text" field.
func InputTextIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldInputText, vs...))
}

// InputTextNotIn applies the NotIn predicate on the "input_text" field.
func InputTextNotIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldInputText, vs...))
}

// InputTextGT applies the GT predicate on the "input_text" field.
func InputTextGT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldInputText, v))
}

// InputTextGTE applies the GTE predicate on the "input_text" field.
func InputTextGTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldInputText, v))
}

// InputTextLT applies the LT predicate on the "input_text" field.
func InputTextLT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldInputText, v))
}

// InputTextLTE applies the LTE predicate on the "input_text" field.
func InputTextLTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldInputText, v))
}

// InputTextContains applies the Contains predicate on the "input_text" field.
func InputTextContains(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContains(FieldInputText, v))
}

// InputTextHasPrefix applies the HasPrefix predicate on the "input_text" field.
func InputTextHasPrefix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasPrefix(FieldInputText, v))
}

// InputTextHasSuffix applies the HasSuffix predicate on the "input_text" field.
func InputTextHasSuffix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasSuffix(FieldInputText, v))
}

// InputTextEqualFold applies the EqualFold predicate on the "input_text" field.
func InputTextEqualFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEqualFold(FieldInputText, v))
}

// InputTextContainsFold applies the ContainsFold predicate on the "input_text" field.
func InputTextContainsFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContainsFold(FieldInputText, v))
}

// FinalTextEQ applies the EQ predicate on the "final_text" field.
func FinalTextEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldFinalText, v))
}

// FinalTextNEQ applies the NEQ predicate on the "final_text" field.
func FinalTextNEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldFinalText, v))
}

// FinalTextIn applies the In predicate on the "final_text" field.
func FinalTextIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldFinalText, vs...))
}

// FinalTextNotIn applies the NotIn predicate on the "final_text" field.
func FinalTextNotIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldFinalText, vs...))
}

// FinalTextGT applies the GT predicate on the "final_text" field.
func FinalTextGT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldFinalText, v))
}

// FinalTextGTE applies the GTE predicate on the "final_text" field.
func FinalTextGTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldFinalText, v))
}

// FinalTextLT applies the LT predicate on the "final_text" field.
func FinalTextLT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldFinalText, v))
}

// FinalTextLTE applies the LTE predicate on the "final_text" field.
func FinalTextLTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldFinalText, v))
}

// FinalTextContains applies the Contains predicate on the "final_text" field.
func FinalTextContains(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContains(FieldFinalText, v))
}

// FinalTextHasPrefix applies the HasPrefix predicate on the "final_text" field.
func FinalTextHasPrefix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasPrefix(FieldFinalText, v))
}

// FinalTextHasSuffix applies the HasSuffix predicate on the "final_text" field.
func FinalTextHasSuffix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasSuffix(FieldFinalText, v))
}

// FinalTextIsNil applies the IsNil predicate on the "final_text" field.
func FinalTextIsNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIsNull(FieldFinalText))
}

// FinalTextNotNil applies the NotNil predicate on the "final_text" field.
func FinalTextNotNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotNull(FieldFinalText))
}

// FinalTextEqualFold applies the EqualFold predicate on the "final_text" field.
func FinalTextEqualFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEqualFold(FieldFinalText, v))
}

// FinalTextContainsFold applies the ContainsFold predicate on the "final_text" field.
func FinalTextContainsFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContainsFold(FieldFinalText, v))
}

// HasWorkspace applies the HasEdge predicate on the "workspace" edge.
func HasWorkspace() predicate.AgentRun {
	return predicate.AgentRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkspaceWith applies the HasEdge predicate on the "workspace" edge with a given conditions (other predicates).
func HasWorkspaceWith(preds ...predicate.Workspace) predicate.AgentRun {
	return predicate.AgentRun(func(s *sql.Selector) {
		step := newWorkspaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.AgentRun {
	return predicate.AgentRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.Agent) predicate.AgentRun {
	return predicate.AgentRun(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.AgentRun {
	return predicate.AgentRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.AgentStep) predicate.AgentRun {
	return predicate.AgentRun(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.AgentRun {
	return predicate.AgentRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.RunEvent) predicate.AgentRun {
	return predicate.AgentRun(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasToolCalls applies the HasEdge predicate on the "tool_calls" edge.
func HasToolCalls() predicate.AgentRun {
	return predicate.AgentRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ToolCallsTable, ToolCallsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasToolCallsWith applies the HasEdge predicate on the "tool_calls" edge with a given conditions (other predicates).
func HasToolCallsWith(preds ...predicate.ToolCall) predicate.AgentRun {
	return predicate.AgentRun(func(s *sql.Selector) {
		step := newToolCallsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChildLinks applies the HasEdge predicate on the "child_links" edge.
func HasChildLinks() predicate.AgentRun {
	return predicate.AgentRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChildLinksTable, ChildLinksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChildLinksWith applies the HasEdge predicate on the "child_links" edge with a given conditions (other predicates).
func HasChildLinksWith(preds ...predicate.SubrunLink) predicate.AgentRun {
	return predicate.AgentRun(func(s *sql.Selector) {
		step := newChildLinksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasArchives applies the HasEdge predicate on the "archives" edge.
func HasArchives() predicate.AgentRun {
	return predicate.AgentRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ArchivesTable, ArchivesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArchivesWith applies the HasEdge predicate on the "archives" edge with a given conditions (other predicates).
func HasArchivesWith(preds ...predicate.RunArchive) predicate.AgentRun {
	return predicate.AgentRun(func(s *sql.Selector) {
		step := newArchivesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentRun) predicate.AgentRun {
	return predicate.AgentRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentRun) predicate.AgentRun {
	return predicate.AgentRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentRun) predicate.AgentRun {
	return predicate.AgentRun(sql.NotPredicates(p))
}
