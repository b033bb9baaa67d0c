// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/ent/agentstep"
	"github.com/agentmaestro/agentmaestro/ent/toolcall"
)

// AgentStep is the model entity for the AgentStep schema.
type AgentStep struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// StepIndex holds the value of the "step_index" field.
	StepIndex int `json:"step_index,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind agentstep.Kind `json:"kind,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// CorrelationID holds the value of the "correlation_id" field.
	CorrelationID string `json:"correlation_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentStepQuery when eager-loading is set.
	Edges        AgentStepEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentStepEdges holds the relations/edges for other nodes in the graph.
type AgentStepEdges struct {
	// Run holds the value of the run edge.
	Run *AgentRun `json:"run,omitempty"`
	// ToolCall holds the value of the tool_call edge.
	ToolCall *ToolCall `json:"tool_call,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentStepEdges) RunOrErr() (*AgentRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agentrun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// ToolCallOrErr returns the ToolCall value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentStepEdges) ToolCallOrErr() (*ToolCall, error) {
	if e.ToolCall != nil {
		return e.ToolCall, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: toolcall.Label}
	}
	return nil, &NotLoadedError{edge: "tool_call"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentstep.FieldPayload:
			values[i] = new([]byte)
		case agentstep.FieldStepIndex:
			values[i] = new(sql.NullInt64)
		case agentstep.FieldID, agentstep.FieldRunID, agentstep.FieldKind, agentstep.FieldCorrelationID:
			values[i] = new(sql.NullString)
		case agentstep.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentStep fields.
func (_m *AgentStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentstep.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentstep.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case agentstep.FieldStepIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_index", values[i])
			} else if value.Valid {
				_m.StepIndex = int(value.Int64)
			}
		case agentstep.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = agentstep.Kind(value.String)
			}
		case agentstep.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case agentstep.FieldCorrelationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correlation_id", values[i])
			} else if value.Valid {
				_m.CorrelationID = value.String
			}
		case agentstep.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentStep.
// This includes values selected through modifiers, order, etc.
func (_m *AgentStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the AgentStep entity.
func (_m *AgentStep) QueryRun() *AgentRunQuery {
	return NewAgentStepClient(_m.config).QueryRun(_m)
}

// QueryToolCall queries the "tool_call" edge of the AgentStep entity.
func (_m *AgentStep) QueryToolCall() *ToolCallQuery {
	return NewAgentStepClient(_m.config).QueryToolCall(_m)
}

// Update returns a builder for updating this AgentStep.
// Note that you need to call AgentStep.Unwrap() before calling this method if this AgentStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentStep) Update() *AgentStepUpdateOne {
	return NewAgentStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentStep) Unwrap() *AgentStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentStep) String() string {
	var builder strings.Builder
	builder.WriteString("AgentStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("step_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepIndex))
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("correlation_id=")
	builder.WriteString(_m.CorrelationID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentSteps is a parsable slice of AgentStep.
type AgentSteps []*AgentStep
