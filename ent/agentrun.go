// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentmaestro/agentmaestro/ent/agent"
	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/ent/workspace"
)

// AgentRun is the model entity for the AgentRun schema.
type AgentRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// Set for subruns; the spawning parent
	ParentRunID *string `json:"parent_run_id,omitempty"`
	// User who started the run (empty for system-spawned)
	StartedBy *string `json:"started_by,omitempty"`
	// Stable identifier propagated across related runs/steps/events
	CorrelationID string `json:"correlation_id,omitempty"`
	// Status holds the value of the "status" field.
	Status agentrun.Status `json:"status,omitempty"`
	// Channel holds the value of the "channel" field.
	Channel agentrun.Channel `json:"channel,omitempty"`
	// CancelRequested holds the value of the "cancel_requested" field.
	CancelRequested bool `json:"cancel_requested,omitempty"`
	// MaxSteps holds the value of the "max_steps" field.
	MaxSteps int `json:"max_steps,omitempty"`
	// MaxToolCalls holds the value of the "max_tool_calls" field.
	MaxToolCalls int `json:"max_tool_calls,omitempty"`
	// Progress cursor; equals max(step_index) of appended steps
	CurrentStepIndex int `json:"current_step_index,omitempty"`
	// LockedBy holds the value of the "locked_by" field.
	LockedBy *string `json:"locked_by,omitempty"`
	// LockedAt holds the value of the "locked_at" field.
	LockedAt *time.Time `json:"locked_at,omitempty"`
	// LockExpiresAt holds the value of the "lock_expires_at" field.
	LockExpiresAt *time.Time `json:"lock_expires_at,omitempty"`
	// External scheduler task handle, used only for revocation on cancel
	LockedTaskID *string `json:"locked_task_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// Set exactly when the run enters a terminal status
	EndedAt *time.Time `json:"ended_at,omitempty"`
	// ArchivedAt holds the value of the "archived_at" field.
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
	// ErrorSummary holds the value of the "error_summary" field.
	ErrorSummary *string `json:"error_summary,omitempty"`
	// InputText holds the value of the "input_text" field.
	InputText string `json:"input_text,omitempty"`
	// FinalText holds the value of the "final_text" field.
	FinalText *string `json:"final_text,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentRunQuery when eager-loading is set.
	Edges        AgentRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentRunEdges holds the relations/edges for other nodes in the graph.
type AgentRunEdges struct {
	// Workspace holds the value of the workspace edge.
	Workspace *Workspace `json:"workspace,omitempty"`
	// Agent holds the value of the agent edge.
	Agent *Agent `json:"agent,omitempty"`
	// Steps holds the value of the steps edge.
	Steps []*AgentStep `json:"steps,omitempty"`
	// Events holds the value of the events edge.
	Events []*RunEvent `json:"events,omitempty"`
	// ToolCalls holds the value of the tool_calls edge.
	ToolCalls []*ToolCall `json:"tool_calls,omitempty"`
	// ChildLinks holds the value of the child_links edge.
	ChildLinks []*SubrunLink `json:"child_links,omitempty"`
	// Archives holds the value of the archives edge.
	Archives []*RunArchive `json:"archives,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [7]bool
}

// WorkspaceOrErr returns the Workspace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentRunEdges) WorkspaceOrErr() (*Workspace, error) {
	if e.Workspace != nil {
		return e.Workspace, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workspace.Label}
	}
	return nil, &NotLoadedError{edge: "workspace"}
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentRunEdges) AgentOrErr() (*Agent, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e AgentRunEdges) StepsOrErr() ([]*AgentStep, error) {
	if e.loadedTypes[2] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e AgentRunEdges) EventsOrErr() ([]*RunEvent, error) {
	if e.loadedTypes[3] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// ToolCallsOrErr returns the ToolCalls value or an error if the edge
// was not loaded in eager-loading.
func (e AgentRunEdges) ToolCallsOrErr() ([]*ToolCall, error) {
	if e.loadedTypes[4] {
		return e.ToolCalls, nil
	}
	return nil, &NotLoadedError{edge: "tool_calls"}
}

// ChildLinksOrErr returns the ChildLinks value or an error if the edge
// was not loaded in eager-loading.
func (e AgentRunEdges) ChildLinksOrErr() ([]*SubrunLink, error) {
	if e.loadedTypes[5] {
		return e.ChildLinks, nil
	}
	return nil, &NotLoadedError{edge: "child_links"}
}

// ArchivesOrErr returns the Archives value or an error if the edge
// was not loaded in eager-loading.
func (e AgentRunEdges) ArchivesOrErr() ([]*RunArchive, error) {
	if e.loadedTypes[6] {
		return e.Archives, nil
	}
	return nil, &NotLoadedError{edge: "archives"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentrun.FieldCancelRequested:
			values[i] = new(sql.NullBool)
		case agentrun.FieldMaxSteps, agentrun.FieldMaxToolCalls, agentrun.FieldCurrentStepIndex:
			values[i] = new(sql.NullInt64)
		case agentrun.FieldID, agentrun.FieldWorkspaceID, agentrun.FieldAgentID, agentrun.FieldParentRunID, agentrun.FieldStartedBy, agentrun.FieldCorrelationID, agentrun.FieldStatus, agentrun.FieldChannel, agentrun.FieldLockedBy, agentrun.FieldLockedTaskID, agentrun.FieldErrorSummary, agentrun.FieldInputText, agentrun.FieldFinalText:
			values[i] = new(sql.NullString)
		case agentrun.FieldLockedAt, agentrun.FieldLockExpiresAt, agentrun.FieldCreatedAt, agentrun.FieldStartedAt, agentrun.FieldEndedAt, agentrun.FieldArchivedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentRun fields.
func (_m *AgentRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentrun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentrun.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case agentrun.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case agentrun.FieldParentRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_run_id", values[i])
			} else if value.Valid {
				_m.ParentRunID = new(string)
				*_m.ParentRunID = value.String
			}
		case agentrun.FieldStartedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field started_by", values[i])
			} else if value.Valid {
				_m.StartedBy = new(string)
				*_m.StartedBy = value.String
			}
		case agentrun.FieldCorrelationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correlation_id", values[i])
			} else if value.Valid {
				_m.CorrelationID = value.String
			}
		case agentrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = agentrun.Status(value.String)
			}
		case agentrun.FieldChannel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel", values[i])
			} else if value.Valid {
				_m.Channel = agentrun.Channel(value.String)
			}
		case agentrun.FieldCancelRequested:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cancel_requested", values[i])
			} else if value.Valid {
				_m.CancelRequested = value.Bool
			}
		case agentrun.FieldMaxSteps:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_steps", values[i])
			} else if value.Valid {
				_m.MaxSteps = int(value.Int64)
			}
		case agentrun.FieldMaxToolCalls:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_tool_calls", values[i])
			} else if value.Valid {
				_m.MaxToolCalls = int(value.Int64)
			}
		case agentrun.FieldCurrentStepIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_step_index", values[i])
			} else if value.Valid {
				_m.CurrentStepIndex = int(value.Int64)
			}
		case agentrun.FieldLockedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field locked_by", values[i])
			} else if value.Valid {
				_m.LockedBy = new(string)
				*_m.LockedBy = value.String
			}
		case agentrun.FieldLockedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field locked_at", values[i])
			} else if value.Valid {
				_m.LockedAt = new(time.Time)
				*_m.LockedAt = value.Time
			}
		case agentrun.FieldLockExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field lock_expires_at", values[i])
			} else if value.Valid {
				_m.LockExpiresAt = new(time.Time)
				*_m.LockExpiresAt = value.Time
			}
		case agentrun.FieldLockedTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field locked_task_id", values[i])
			} else if value.Valid {
				_m.LockedTaskID = new(string)
				*_m.LockedTaskID = value.String
			}
		case agentrun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agentrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case agentrun.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = new(time.Time)
				*_m.EndedAt = value.Time
			}
		case agentrun.FieldArchivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field archived_at", values[i])
			} else if value.Valid {
				_m.ArchivedAt = new(time.Time)
				*_m.ArchivedAt = value.Time
			}
		case agentrun.FieldErrorSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_summary", values[i])
			} else if value.Valid {
				_m.ErrorSummary = new(string)
				*_m.ErrorSummary = value.String
			}
		case agentrun.FieldInputText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_text", values[i])
			} else if value.Valid {
				_m.InputText = value.String
			}
		case agentrun.FieldFinalText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_text", values[i])
			} else if value.Valid {
				_m.FinalText = new(string)
				*_m.FinalText = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentRun.
// This includes values selected through modifiers, order, etc.
func (_m *AgentRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkspace queries the "workspace" edge of the AgentRun entity.
func (_m *AgentRun) QueryWorkspace() *WorkspaceQuery {
	return NewAgentRunClient(_m.config).QueryWorkspace(_m)
}

// QueryAgent queries the "agent" edge of the AgentRun entity.
func (_m *AgentRun) QueryAgent() *AgentQuery {
	return NewAgentRunClient(_m.config).QueryAgent(_m)
}

// QuerySteps queries the "steps" edge of the AgentRun entity.
func (_m *AgentRun) QuerySteps() *AgentStepQuery {
	return NewAgentRunClient(_m.config).QuerySteps(_m)
}

// QueryEvents queries the "events" edge of the AgentRun entity.
func (_m *AgentRun) QueryEvents() *RunEventQuery {
	return NewAgentRunClient(_m.config).QueryEvents(_m)
}

// QueryToolCalls queries the "tool_calls" edge of the AgentRun entity.
func (_m *AgentRun) QueryToolCalls() *ToolCallQuery {
	return NewAgentRunClient(_m.config).QueryToolCalls(_m)
}

// QueryChildLinks queries the "child_links" edge of the AgentRun entity.
func (_m *AgentRun) QueryChildLinks() *SubrunLinkQuery {
	return NewAgentRunClient(_m.config).QueryChildLinks(_m)
}

// QueryArchives queries the "archives" edge of the AgentRun entity.
func (_m *AgentRun) QueryArchives() *RunArchiveQuery {
	return NewAgentRunClient(_m.config).QueryArchives(_m)
}

// Update returns a builder for updating this AgentRun.
// Note that you need to call AgentRun.Unwrap() before calling this method if this AgentRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentRun) Update() *AgentRunUpdateOne {
	return NewAgentRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentRun) Unwrap() *AgentRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentRun) String() string {
	var builder strings.Builder
	builder.WriteString("AgentRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	if v := _m.ParentRunID; v != nil {
		builder.WriteString("parent_run_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StartedBy; v != nil {
		builder.WriteString("started_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("correlation_id=")
	builder.WriteString(_m.CorrelationID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("channel=")
	builder.WriteString(fmt.Sprintf("%v", _m.Channel))
	builder.WriteString(", ")
	builder.WriteString("cancel_requested=")
	builder.WriteString(fmt.Sprintf("%v", _m.CancelRequested))
	builder.WriteString(", ")
	builder.WriteString("max_steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxSteps))
	builder.WriteString(", ")
	builder.WriteString("max_tool_calls=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxToolCalls))
	builder.WriteString(", ")
	builder.WriteString("current_step_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentStepIndex))
	builder.WriteString(", ")
	if v := _m.LockedBy; v != nil {
		builder.WriteString("locked_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LockedAt; v != nil {
		builder.WriteString("locked_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LockExpiresAt; v != nil {
		builder.WriteString("lock_expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LockedTaskID; v != nil {
		builder.WriteString("locked_task_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ArchivedAt; v != nil {
		builder.WriteString("archived_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorSummary; v != nil {
		builder.WriteString("error_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("input_text=")
	builder.WriteString(_m.InputText)
	builder.WriteString(", ")
	if v := _m.FinalText; v != nil {
		builder.WriteString("final_text=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// AgentRuns is a parsable slice of AgentRun.
type AgentRuns []*AgentRun
