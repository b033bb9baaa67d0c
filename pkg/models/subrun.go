package models

// SpawnSubrunRequest contains fields for spawning a child run.
type SpawnSubrunRequest struct {
	InputText      string         `json:"input_text"`
	JoinPolicy     string         `json:"join_policy,omitempty"` // wait_all, wait_any, quorum, timeout
	Quorum         *int           `json:"quorum,omitempty"`
	TimeoutSeconds *int           `json:"timeout_seconds,omitempty"`
	FailurePolicy  string         `json:"failure_policy,omitempty"` // fail_fast, cancel_siblings, continue
	GroupID        string         `json:"group_id,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// SubrunResponse reports a spawned child and its link.
type SubrunResponse struct {
	ChildRun      RunResponse `json:"child_run"`
	GroupID       string      `json:"subrun_group_id"`
	JoinPolicy    string      `json:"join_policy"`
	FailurePolicy string      `json:"failure_policy"`
}
