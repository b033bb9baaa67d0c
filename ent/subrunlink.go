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
	"github.com/agentmaestro/agentmaestro/ent/subrunlink"
)

// SubrunLink is the model entity for the SubrunLink schema.
type SubrunLink struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ParentRunID holds the value of the "parent_run_id" field.
	ParentRunID string `json:"parent_run_id,omitempty"`
	// ChildRunID holds the value of the "child_run_id" field.
	ChildRunID string `json:"child_run_id,omitempty"`
	// GroupID holds the value of the "group_id" field.
	GroupID string `json:"group_id,omitempty"`
	// JoinPolicy holds the value of the "join_policy" field.
	JoinPolicy subrunlink.JoinPolicy `json:"join_policy,omitempty"`
	// Required completions for join_policy=quorum
	Quorum *int `json:"quorum,omitempty"`
	// Join deadline for join_policy=timeout, measured from the oldest link in the group
	TimeoutSeconds *int `json:"timeout_seconds,omitempty"`
	// FailurePolicy holds the value of the "failure_policy" field.
	FailurePolicy subrunlink.FailurePolicy `json:"failure_policy,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SubrunLinkQuery when eager-loading is set.
	Edges        SubrunLinkEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SubrunLinkEdges holds the relations/edges for other nodes in the graph.
type SubrunLinkEdges struct {
	// Parent holds the value of the parent edge.
	Parent *AgentRun `json:"parent,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ParentOrErr returns the Parent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubrunLinkEdges) ParentOrErr() (*AgentRun, error) {
	if e.Parent != nil {
		return e.Parent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agentrun.Label}
	}
	return nil, &NotLoadedError{edge: "parent"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SubrunLink) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subrunlink.FieldMetadata:
			values[i] = new([]byte)
		case subrunlink.FieldQuorum, subrunlink.FieldTimeoutSeconds:
			values[i] = new(sql.NullInt64)
		case subrunlink.FieldID, subrunlink.FieldParentRunID, subrunlink.FieldChildRunID, subrunlink.FieldGroupID, subrunlink.FieldJoinPolicy, subrunlink.FieldFailurePolicy:
			values[i] = new(sql.NullString)
		case subrunlink.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SubrunLink fields.
func (_m *SubrunLink) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subrunlink.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case subrunlink.FieldParentRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_run_id", values[i])
			} else if value.Valid {
				_m.ParentRunID = value.String
			}
		case subrunlink.FieldChildRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field child_run_id", values[i])
			} else if value.Valid {
				_m.ChildRunID = value.String
			}
		case subrunlink.FieldGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value.Valid {
				_m.GroupID = value.String
			}
		case subrunlink.FieldJoinPolicy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field join_policy", values[i])
			} else if value.Valid {
				_m.JoinPolicy = subrunlink.JoinPolicy(value.String)
			}
		case subrunlink.FieldQuorum:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quorum", values[i])
			} else if value.Valid {
				_m.Quorum = new(int)
				*_m.Quorum = int(value.Int64)
			}
		case subrunlink.FieldTimeoutSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field timeout_seconds", values[i])
			} else if value.Valid {
				_m.TimeoutSeconds = new(int)
				*_m.TimeoutSeconds = int(value.Int64)
			}
		case subrunlink.FieldFailurePolicy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_policy", values[i])
			} else if value.Valid {
				_m.FailurePolicy = subrunlink.FailurePolicy(value.String)
			}
		case subrunlink.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case subrunlink.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SubrunLink.
// This includes values selected through modifiers, order, etc.
func (_m *SubrunLink) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryParent queries the "parent" edge of the SubrunLink entity.
func (_m *SubrunLink) QueryParent() *AgentRunQuery {
	return NewSubrunLinkClient(_m.config).QueryParent(_m)
}

// Update returns a builder for updating this SubrunLink.
// Note that you need to call SubrunLink.Unwrap() before calling this method if this SubrunLink
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SubrunLink) Update() *SubrunLinkUpdateOne {
	return NewSubrunLinkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SubrunLink entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SubrunLink) Unwrap() *SubrunLink {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SubrunLink is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SubrunLink) String() string {
	var builder strings.Builder
	builder.WriteString("SubrunLink(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("parent_run_id=")
	builder.WriteString(_m.ParentRunID)
	builder.WriteString(", ")
	builder.WriteString("child_run_id=")
	builder.WriteString(_m.ChildRunID)
	builder.WriteString(", ")
	builder.WriteString("group_id=")
	builder.WriteString(_m.GroupID)
	builder.WriteString(", ")
	builder.WriteString("join_policy=")
	builder.WriteString(fmt.Sprintf("%v", _m.JoinPolicy))
	builder.WriteString(", ")
	if v := _m.Quorum; v != nil {
		builder.WriteString("quorum=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TimeoutSeconds; v != nil {
		builder.WriteString("timeout_seconds=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("failure_policy=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailurePolicy))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SubrunLinks is a parsable slice of SubrunLink.
type SubrunLinks []*SubrunLink
