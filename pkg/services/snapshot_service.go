package services

import (
	"context"
	"fmt"

	"github.com/agentmaestro/agentmaestro/ent"
	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/ent/agentstep"
	"github.com/agentmaestro/agentmaestro/ent/runevent"
	"github.com/agentmaestro/agentmaestro/pkg/models"
	"github.com/agentmaestro/agentmaestro/pkg/quota"
)

// SnapshotService assembles the canonical reconnect view of a run.
type SnapshotService struct {
	client *ent.Client
	quota  *quota.Manager
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(client *ent.Client, q *quota.Manager) *SnapshotService {
	return &SnapshotService{client: client, quota: q}
}

// Snapshot returns the run, its steps ordered by step_index, events
// with seq > sinceSeq ordered by seq, and child runs in creation
// order. Pass sinceSeq = 0 for the full event history.
func (s *SnapshotService) Snapshot(ctx context.Context, runID string, sinceSeq int) (*models.SnapshotResponse, error) {
	if sinceSeq < 0 {
		return nil, NewValidationError("since_seq", "must be >= 0")
	}

	run, err := s.client.AgentRun.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get run: %w", err)
	}

	if err := s.quota.ConsumeRate(ctx, quota.Snapshot, run.WorkspaceID); err != nil {
		return nil, err
	}

	return s.assemble(ctx, run, sinceSeq)
}

// assemble builds the snapshot body without quota admission. The
// archival checkpoint path uses it directly.
func (s *SnapshotService) assemble(ctx context.Context, run *ent.AgentRun, sinceSeq int) (*models.SnapshotResponse, error) {
	runID := run.ID
	steps, err := s.client.AgentStep.Query().
		Where(agentstep.RunIDEQ(runID)).
		Order(ent.Asc(agentstep.FieldStepIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query steps: %w", err)
	}

	evts, err := s.client.RunEvent.Query().
		Where(runevent.RunIDEQ(runID), runevent.SeqGT(sinceSeq)).
		Order(ent.Asc(runevent.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}

	children, err := s.client.AgentRun.Query().
		Where(agentrun.ParentRunIDEQ(runID)).
		Order(ent.Asc(agentrun.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query child runs: %w", err)
	}

	resp := &models.SnapshotResponse{
		Run:      models.NewRunResponse(run),
		Steps:    make([]models.StepResponse, 0, len(steps)),
		Events:   make([]models.EventResponse, 0, len(evts)),
		Children: make([]models.RunResponse, 0, len(children)),
		SinceSeq: sinceSeq,
	}
	for _, st := range steps {
		resp.Steps = append(resp.Steps, models.NewStepResponse(st))
	}
	for _, e := range evts {
		resp.Events = append(resp.Events, models.NewEventResponse(e))
	}
	for _, c := range children {
		resp.Children = append(resp.Children, models.NewRunResponse(c))
	}
	return resp, nil
}
