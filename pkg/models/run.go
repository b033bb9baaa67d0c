// Package models contains request/response models and business domain types.
// Response DTOs serialize IDs as strings and timestamps as UTC ISO-8601.
package models

import (
	"time"

	"github.com/agentmaestro/agentmaestro/ent"
)

// CreateRunRequest contains fields for starting a run.
type CreateRunRequest struct {
	WorkspaceID string `json:"workspace_id"`
	AgentID     string `json:"agent_id"`
	InputText   string `json:"input_text"`
	Channel     string `json:"channel,omitempty"` // dashboard, telegram or api; defaults to api
}

// RunResponse is the wire representation of a run.
type RunResponse struct {
	ID               string  `json:"run_id"`
	WorkspaceID      string  `json:"workspace_id"`
	AgentID          string  `json:"agent_id"`
	ParentRunID      *string `json:"parent_run_id,omitempty"`
	StartedBy        *string `json:"started_by,omitempty"`
	CorrelationID    string  `json:"correlation_id"`
	Status           string  `json:"status"`
	Channel          string  `json:"channel"`
	CancelRequested  bool    `json:"cancel_requested"`
	MaxSteps         int     `json:"max_steps"`
	MaxToolCalls     int     `json:"max_tool_calls"`
	CurrentStepIndex int     `json:"current_step_index"`
	InputText        string  `json:"input_text"`
	FinalText        *string `json:"final_text,omitempty"`
	ErrorSummary     *string `json:"error_summary,omitempty"`
	CreatedAt        string  `json:"created_at"`
	StartedAt        *string `json:"started_at,omitempty"`
	EndedAt          *string `json:"ended_at,omitempty"`
	ArchivedAt       *string `json:"archived_at,omitempty"`
}

// NewRunResponse converts a run entity to its wire form.
func NewRunResponse(run *ent.AgentRun) RunResponse {
	return RunResponse{
		ID:               run.ID,
		WorkspaceID:      run.WorkspaceID,
		AgentID:          run.AgentID,
		ParentRunID:      run.ParentRunID,
		StartedBy:        run.StartedBy,
		CorrelationID:    run.CorrelationID,
		Status:           string(run.Status),
		Channel:          string(run.Channel),
		CancelRequested:  run.CancelRequested,
		MaxSteps:         run.MaxSteps,
		MaxToolCalls:     run.MaxToolCalls,
		CurrentStepIndex: run.CurrentStepIndex,
		InputText:        run.InputText,
		FinalText:        run.FinalText,
		ErrorSummary:     run.ErrorSummary,
		CreatedAt:        FormatTime(run.CreatedAt),
		StartedAt:        FormatTimePtr(run.StartedAt),
		EndedAt:          FormatTimePtr(run.EndedAt),
		ArchivedAt:       FormatTimePtr(run.ArchivedAt),
	}
}

// RunListResponse contains a page of runs.
type RunListResponse struct {
	Runs  []RunResponse `json:"runs"`
	Total int           `json:"total"`
}

// FormatTime renders a timestamp as UTC ISO-8601.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// FormatTimePtr renders an optional timestamp, preserving nil.
func FormatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatTime(*t)
	return &s
}
