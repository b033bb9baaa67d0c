// Package events provides real-time push delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Every run event persisted to the journal is also broadcast through
// NOTIFY in the same transaction, so subscribers only ever observe
// committed state. Delivery to WebSocket clients is best-effort;
// clients recover gaps by requesting a snapshot with since_seq set to
// the last seq they saw.
package events

// Run event types persisted to the journal and pushed to subscribers.
const (
	EventStateChanged      = "state_changed"
	EventStepCreated       = "step_created"
	EventSubrunSpawned     = "subrun_spawned"
	EventSubrunCompleted   = "subrun_completed"
	EventSubrunCancelled   = "subrun_cancelled"
	EventRunCancelled      = "run_cancelled"
	EventToolCallRequested = "tool_call_requested"
	EventToolCallApproved  = "tool_call_approved"
	EventToolCallCompleted = "tool_call_completed"
	EventRunArchived       = "run_archived"
)

// Verbose event types: high-frequency diagnostics that compaction
// deletes after the retention window.
const (
	EventTokenStream = "token_stream"
	EventDebugLog    = "debug_log"
)

// RunTopic returns the fanout group carrying all events of one run.
func RunTopic(runID string) string {
	return "run." + runID
}

// WorkspaceTopic returns the fanout group for workspace summary events.
func WorkspaceTopic(workspaceID string) string {
	return "ws." + workspaceID
}

// ApprovalsTopic returns the fanout group for tool-call approval
// lifecycle events in a workspace.
func ApprovalsTopic(workspaceID string) string {
	return "approvals." + workspaceID
}

// ClientMessage is the JSON structure for client → server WebSocket
// commands. Cmd selects the command; the remaining fields are read
// only by the commands that need them.
type ClientMessage struct {
	Type string `json:"type"` // always "cmd"
	Cmd  string `json:"cmd"`

	// approve_tool_call
	ToolCallID string `json:"tool_call_id,omitempty"`

	// request_snapshot
	SinceSeq *int `json:"since_seq,omitempty"`

	// spawn_subrun
	InputText      string         `json:"input_text,omitempty"`
	JoinPolicy     string         `json:"join_policy,omitempty"`
	Quorum         *int           `json:"quorum,omitempty"`
	TimeoutSeconds *int           `json:"timeout_seconds,omitempty"`
	FailurePolicy  string         `json:"failure_policy,omitempty"`
	GroupID        string         `json:"group_id,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`

	// cancel_run
	Reason string `json:"reason,omitempty"`
}
