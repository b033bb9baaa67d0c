// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// AgentRun is the predicate function for agentrun builders.
type AgentRun func(*sql.Selector)

// AgentStep is the predicate function for agentstep builders.
type AgentStep func(*sql.Selector)

// Membership is the predicate function for membership builders.
type Membership func(*sql.Selector)

// RunArchive is the predicate function for runarchive builders.
type RunArchive func(*sql.Selector)

// RunEvent is the predicate function for runevent builders.
type RunEvent func(*sql.Selector)

// SubrunLink is the predicate function for subrunlink builders.
type SubrunLink func(*sql.Selector)

// ToolCall is the predicate function for toolcall builders.
type ToolCall func(*sql.Selector)

// ToolDefinition is the predicate function for tooldefinition builders.
type ToolDefinition func(*sql.Selector)

// UserActionLog is the predicate function for useractionlog builders.
type UserActionLog func(*sql.Selector)

// Workspace is the predicate function for workspace builders.
type Workspace func(*sql.Selector)
