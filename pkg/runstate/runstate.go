// Package runstate is the run status state machine. Transitions only
// happen under the run row lock and every accepted transition is
// journaled, so status history is reconstructible from events alone.
package runstate

import (
	"context"
	"fmt"
	"time"

	"github.com/agentmaestro/agentmaestro/ent"
	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/pkg/events"
	"github.com/agentmaestro/agentmaestro/pkg/journal"
	"github.com/agentmaestro/agentmaestro/pkg/quota"
)

// legalEdges maps each status to the set of statuses it may enter.
// Terminal statuses have no outgoing edges.
var legalEdges = map[agentrun.Status]map[agentrun.Status]bool{
	agentrun.StatusPending: {
		agentrun.StatusRunning:          true,
		agentrun.StatusCanceled:         true,
		agentrun.StatusFailed:           true,
		agentrun.StatusWaitingForSubrun: true,
	},
	agentrun.StatusRunning: {
		agentrun.StatusCompleted:          true,
		agentrun.StatusFailed:             true,
		agentrun.StatusCanceled:           true,
		agentrun.StatusWaitingForApproval: true,
		agentrun.StatusWaitingForTool:     true,
		agentrun.StatusWaitingForSubrun:   true,
		agentrun.StatusWaitingForUser:     true,
		agentrun.StatusPaused:             true,
	},
	agentrun.StatusPaused: {
		agentrun.StatusRunning:  true,
		agentrun.StatusFailed:   true,
		agentrun.StatusCanceled: true,
	},
	agentrun.StatusWaitingForApproval: waitingEdges(),
	agentrun.StatusWaitingForTool:     waitingEdges(),
	agentrun.StatusWaitingForSubrun:   waitingEdges(),
	agentrun.StatusWaitingForUser:     waitingEdges(),
	agentrun.StatusCompleted:          {},
	agentrun.StatusFailed:             {},
	agentrun.StatusCanceled:           {},
}

func waitingEdges() map[agentrun.Status]bool {
	return map[agentrun.Status]bool{
		agentrun.StatusRunning:  true,
		agentrun.StatusFailed:   true,
		agentrun.StatusCanceled: true,
	}
}

// IsTerminal reports whether a status has no outgoing edges.
func IsTerminal(s agentrun.Status) bool {
	return s == agentrun.StatusCompleted ||
		s == agentrun.StatusFailed ||
		s == agentrun.StatusCanceled
}

// IsWaiting reports whether a status is one of the waiting_for_* set.
func IsWaiting(s agentrun.Status) bool {
	switch s {
	case agentrun.StatusWaitingForApproval,
		agentrun.StatusWaitingForTool,
		agentrun.StatusWaitingForSubrun,
		agentrun.StatusWaitingForUser:
		return true
	}
	return false
}

// CanTransition reports whether from → to is a legal edge. Unchanged
// status is not an edge; Transition treats it as a no-op.
func CanTransition(from, to agentrun.Status) bool {
	targets, ok := legalEdges[from]
	return ok && targets[to]
}

// IllegalTransitionError reports a rejected edge.
type IllegalTransitionError struct {
	RunID string
	From  agentrun.Status
	To    agentrun.Status
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition of run %s: %s -> %s", e.RunID, e.From, e.To)
}

// Machine applies status transitions. It owns the coupling between
// terminal entry and run-slot release.
type Machine struct {
	quota *quota.Manager
}

// NewMachine creates a state machine backed by the given quota manager.
func NewMachine(q *quota.Manager) *Machine {
	return &Machine{quota: q}
}

// Transition moves a run to a new status under the row lock the caller
// already holds in tx. Unchanged status is a no-op. Illegal edges are
// rejected with IllegalTransitionError. Accepted transitions journal a
// state_changed event; entering a terminal status stamps ended_at and
// releases the run's concurrency slots after commit.
func (m *Machine) Transition(ctx context.Context, tx *ent.Tx, hooks *journal.Hooks, run *ent.AgentRun, to agentrun.Status) (*ent.AgentRun, error) {
	from := run.Status
	if from == to {
		return run, nil
	}
	if !CanTransition(from, to) {
		return nil, &IllegalTransitionError{RunID: run.ID, From: from, To: to}
	}

	now := time.Now().UTC()
	upd := tx.AgentRun.UpdateOneID(run.ID).SetStatus(to)
	if to == agentrun.StatusRunning && run.StartedAt == nil {
		upd.SetStartedAt(now)
	}
	if IsTerminal(to) {
		upd.SetEndedAt(now)
	}
	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("transition run %s to %s: %w", run.ID, to, err)
	}

	_, err = journal.AppendEvent(ctx, tx, updated, events.EventStateChanged, map[string]any{
		"from": string(from),
		"to":   string(to),
	})
	if err != nil {
		return nil, err
	}

	if IsTerminal(to) {
		workspaceID := updated.WorkspaceID
		runID := updated.ID
		includeParent := updated.ParentRunID == nil
		hooks.OnCommit(func() {
			m.quota.ReleaseRunSlots(context.WithoutCancel(ctx), workspaceID, runID, includeParent)
		})
	}

	return updated, nil
}
