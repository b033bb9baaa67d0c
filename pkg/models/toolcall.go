package models

import "github.com/agentmaestro/agentmaestro/ent"

// ToolCallResponse is the wire representation of a tool call.
type ToolCallResponse struct {
	ID               string         `json:"tool_call_id"`
	RunID            string         `json:"run_id"`
	StepID           string         `json:"step_id"`
	ToolName         string         `json:"tool_name"`
	Args             map[string]any `json:"args,omitempty"`
	RiskLevel        string         `json:"risk_level"`
	RequiresApproval bool           `json:"requires_approval"`
	Status           string         `json:"status"`
	ApprovedBy       *string        `json:"approved_by,omitempty"`
	ApprovedAt       *string        `json:"approved_at,omitempty"`
	StartedAt        *string        `json:"started_at,omitempty"`
	EndedAt          *string        `json:"ended_at,omitempty"`
	ExitCode         *int           `json:"exit_code,omitempty"`
	Stdout           string         `json:"stdout,omitempty"`
	Stderr           string         `json:"stderr,omitempty"`
	Result           map[string]any `json:"result,omitempty"`
	CreatedAt        string         `json:"created_at"`
}

// NewToolCallResponse converts a tool call entity to its wire form.
func NewToolCallResponse(tc *ent.ToolCall) ToolCallResponse {
	return ToolCallResponse{
		ID:               tc.ID,
		RunID:            tc.RunID,
		StepID:           tc.StepID,
		ToolName:         tc.ToolName,
		Args:             tc.Args,
		RiskLevel:        string(tc.RiskLevel),
		RequiresApproval: tc.RequiresApproval,
		Status:           string(tc.Status),
		ApprovedBy:       tc.ApprovedBy,
		ApprovedAt:       FormatTimePtr(tc.ApprovedAt),
		StartedAt:        FormatTimePtr(tc.StartedAt),
		EndedAt:          FormatTimePtr(tc.EndedAt),
		ExitCode:         tc.ExitCode,
		Stdout:           tc.Stdout,
		Stderr:           tc.Stderr,
		Result:           tc.Result,
		CreatedAt:        FormatTime(tc.CreatedAt),
	}
}
