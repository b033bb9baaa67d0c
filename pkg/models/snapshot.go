package models

import "github.com/agentmaestro/agentmaestro/ent"

// StepResponse is the wire representation of a journal step.
type StepResponse struct {
	ID            string         `json:"step_id"`
	RunID         string         `json:"run_id"`
	StepIndex     int            `json:"step_index"`
	Kind          string         `json:"kind"`
	Payload       map[string]any `json:"payload,omitempty"`
	CorrelationID string         `json:"correlation_id,omitempty"`
	CreatedAt     string         `json:"created_at"`
}

// NewStepResponse converts a step entity to its wire form.
func NewStepResponse(step *ent.AgentStep) StepResponse {
	return StepResponse{
		ID:            step.ID,
		RunID:         step.RunID,
		StepIndex:     step.StepIndex,
		Kind:          string(step.Kind),
		Payload:       step.Payload,
		CorrelationID: step.CorrelationID,
		CreatedAt:     FormatTime(step.CreatedAt),
	}
}

// EventResponse is the wire representation of a journal event.
type EventResponse struct {
	ID            string         `json:"event_id"`
	RunID         string         `json:"run_id"`
	Seq           int            `json:"seq"`
	EventType     string         `json:"event_type"`
	Payload       map[string]any `json:"payload,omitempty"`
	CorrelationID string         `json:"correlation_id,omitempty"`
	CreatedAt     string         `json:"created_at"`
}

// NewEventResponse converts an event entity to its wire form.
func NewEventResponse(evt *ent.RunEvent) EventResponse {
	return EventResponse{
		ID:            evt.ID,
		RunID:         evt.RunID,
		Seq:           evt.Seq,
		EventType:     evt.EventType,
		Payload:       evt.Payload,
		CorrelationID: evt.CorrelationID,
		CreatedAt:     FormatTime(evt.CreatedAt),
	}
}

// SnapshotResponse is the canonical reconnect primitive: the run, its
// steps in order, events after since_seq in order, and child runs in
// creation order.
type SnapshotResponse struct {
	Run      RunResponse     `json:"run"`
	Steps    []StepResponse  `json:"steps"`
	Events   []EventResponse `json:"events"`
	Children []RunResponse   `json:"child_runs"`
	SinceSeq int             `json:"since_seq"`
}
