// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentmaestro/agentmaestro/ent/tooldefinition"
	"github.com/agentmaestro/agentmaestro/ent/workspace"
)

// ToolDefinition is the model entity for the ToolDefinition schema.
type ToolDefinition struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// JSON Schema validated against tool call args at request time
	ArgsSchema map[string]interface{} `json:"args_schema,omitempty"`
	// DefaultRiskLevel holds the value of the "default_risk_level" field.
	DefaultRiskLevel tooldefinition.DefaultRiskLevel `json:"default_risk_level,omitempty"`
	// DefaultRequiresApproval holds the value of the "default_requires_approval" field.
	DefaultRequiresApproval bool `json:"default_requires_approval,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ToolDefinitionQuery when eager-loading is set.
	Edges        ToolDefinitionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ToolDefinitionEdges holds the relations/edges for other nodes in the graph.
type ToolDefinitionEdges struct {
	// Workspace holds the value of the workspace edge.
	Workspace *Workspace `json:"workspace,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorkspaceOrErr returns the Workspace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ToolDefinitionEdges) WorkspaceOrErr() (*Workspace, error) {
	if e.Workspace != nil {
		return e.Workspace, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workspace.Label}
	}
	return nil, &NotLoadedError{edge: "workspace"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ToolDefinition) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tooldefinition.FieldArgsSchema:
			values[i] = new([]byte)
		case tooldefinition.FieldDefaultRequiresApproval, tooldefinition.FieldEnabled:
			values[i] = new(sql.NullBool)
		case tooldefinition.FieldID, tooldefinition.FieldWorkspaceID, tooldefinition.FieldName, tooldefinition.FieldDefaultRiskLevel:
			values[i] = new(sql.NullString)
		case tooldefinition.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ToolDefinition fields.
func (_m *ToolDefinition) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tooldefinition.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case tooldefinition.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case tooldefinition.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case tooldefinition.FieldArgsSchema:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field args_schema", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ArgsSchema); err != nil {
					return fmt.Errorf("unmarshal field args_schema: %w", err)
				}
			}
		case tooldefinition.FieldDefaultRiskLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field default_risk_level", values[i])
			} else if value.Valid {
				_m.DefaultRiskLevel = tooldefinition.DefaultRiskLevel(value.String)
			}
		case tooldefinition.FieldDefaultRequiresApproval:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field default_requires_approval", values[i])
			} else if value.Valid {
				_m.DefaultRequiresApproval = value.Bool
			}
		case tooldefinition.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case tooldefinition.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ToolDefinition.
// This includes values selected through modifiers, order, etc.
func (_m *ToolDefinition) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkspace queries the "workspace" edge of the ToolDefinition entity.
func (_m *ToolDefinition) QueryWorkspace() *WorkspaceQuery {
	return NewToolDefinitionClient(_m.config).QueryWorkspace(_m)
}

// Update returns a builder for updating this ToolDefinition.
// Note that you need to call ToolDefinition.Unwrap() before calling this method if this ToolDefinition
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ToolDefinition) Update() *ToolDefinitionUpdateOne {
	return NewToolDefinitionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ToolDefinition entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ToolDefinition) Unwrap() *ToolDefinition {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ToolDefinition is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ToolDefinition) String() string {
	var builder strings.Builder
	builder.WriteString("ToolDefinition(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("args_schema=")
	builder.WriteString(fmt.Sprintf("%v", _m.ArgsSchema))
	builder.WriteString(", ")
	builder.WriteString("default_risk_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefaultRiskLevel))
	builder.WriteString(", ")
	builder.WriteString("default_requires_approval=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefaultRequiresApproval))
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ToolDefinitions is a parsable slice of ToolDefinition.
type ToolDefinitions []*ToolDefinition
