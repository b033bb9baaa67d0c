// Package journal owns the append-only step and event records of a
// run. All writes happen inside a caller-owned transaction with the
// run row locked, which serializes cursor and seq allocation without
// any global counters.
package journal

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/agentmaestro/agentmaestro/ent"
	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/ent/agentstep"
	"github.com/agentmaestro/agentmaestro/ent/runevent"
	"github.com/agentmaestro/agentmaestro/pkg/events"
)

// ErrRunLocked is returned by LockRunNoWait when another holder has
// the row. Callers treat it as transient and retry with backoff.
var ErrRunLocked = errors.New("run row is locked by another holder")

// pgLockNotAvailable is the PostgreSQL error code raised by
// FOR UPDATE NOWAIT on a held row.
const pgLockNotAvailable = "55P03"

// LockRun loads the run with FOR UPDATE, blocking until the row lock
// is acquired. Every journal or state mutation starts here.
func LockRun(ctx context.Context, tx *ent.Tx, runID string) (*ent.AgentRun, error) {
	run, err := tx.AgentRun.Query().
		Where(agentrun.IDEQ(runID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("lock run %s: %w", runID, err)
	}
	return run, nil
}

// LockRunNoWait loads the run with FOR UPDATE NOWAIT. Returns
// ErrRunLocked when another transaction holds the row.
func LockRunNoWait(ctx context.Context, tx *ent.Tx, runID string) (*ent.AgentRun, error) {
	run, err := tx.AgentRun.Query().
		Where(agentrun.IDEQ(runID)).
		ForUpdate(sql.WithLockAction(sql.NoWait)).
		Only(ctx)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgLockNotAvailable {
			return nil, ErrRunLocked
		}
		return nil, fmt.Errorf("lock run %s: %w", runID, err)
	}
	return run, nil
}

// AppendStep appends the next step of a run, advances the cursor by
// exactly one, and emits the step_created event. The caller must hold
// the run row lock in tx. Returns the step and the refreshed run.
func AppendStep(ctx context.Context, tx *ent.Tx, run *ent.AgentRun, kind agentstep.Kind, payload map[string]any) (*ent.AgentStep, *ent.AgentRun, error) {
	idx := run.CurrentStepIndex + 1

	step, err := tx.AgentStep.Create().
		SetID(uuid.New().String()).
		SetRunID(run.ID).
		SetStepIndex(idx).
		SetKind(kind).
		SetPayload(payload).
		SetCorrelationID(run.CorrelationID).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("append step %d to run %s: %w", idx, run.ID, err)
	}

	updated, err := tx.AgentRun.UpdateOneID(run.ID).
		SetCurrentStepIndex(idx).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("advance cursor of run %s: %w", run.ID, err)
	}

	_, err = AppendEvent(ctx, tx, updated, events.EventStepCreated, map[string]any{
		"step_id":    step.ID,
		"step_index": idx,
		"kind":       string(kind),
	})
	if err != nil {
		return nil, nil, err
	}

	return step, updated, nil
}

// EventOption adjusts how an event is recorded and broadcast.
type EventOption func(*eventOptions)

type eventOptions struct {
	correlationID  string
	skipRunTopic   bool
	workspaceEvent string
	approvalsCopy  bool
	userID         string
}

// WithCorrelationID overrides the correlation ID stamped on the event.
// Defaults to the run's own.
func WithCorrelationID(id string) EventOption {
	return func(o *eventOptions) { o.correlationID = id }
}

// WithWorkspaceCopy also notifies the workspace summary topic, using
// event as the envelope's event name there.
func WithWorkspaceCopy(event string) EventOption {
	return func(o *eventOptions) { o.workspaceEvent = event }
}

// WithApprovalsCopy also notifies the workspace approvals topic.
func WithApprovalsCopy() EventOption {
	return func(o *eventOptions) { o.approvalsCopy = true }
}

// WithUser stamps the acting user on the push envelope.
func WithUser(userID string) EventOption {
	return func(o *eventOptions) { o.userID = userID }
}

// WithoutRunTopic suppresses the run-topic broadcast. The event is
// still journaled.
func WithoutRunTopic() EventOption {
	return func(o *eventOptions) { o.skipRunTopic = true }
}

// AppendEvent journals an event with the next per-run seq and issues
// the matching NOTIFY broadcasts on the same transaction. The caller
// must hold the run row lock in tx; the lock is what makes the
// max(seq)+1 allocation race-free.
func AppendEvent(ctx context.Context, tx *ent.Tx, run *ent.AgentRun, eventType string, payload map[string]any, opts ...EventOption) (*ent.RunEvent, error) {
	o := eventOptions{correlationID: run.CorrelationID}
	for _, opt := range opts {
		opt(&o)
	}

	seq := 1
	last, err := tx.RunEvent.Query().
		Where(runevent.RunIDEQ(run.ID)).
		Order(ent.Desc(runevent.FieldSeq)).
		First(ctx)
	switch {
	case err == nil:
		seq = last.Seq + 1
	case !ent.IsNotFound(err):
		return nil, fmt.Errorf("allocate seq for run %s: %w", run.ID, err)
	}

	evt, err := tx.RunEvent.Create().
		SetID(uuid.New().String()).
		SetRunID(run.ID).
		SetSeq(seq).
		SetEventType(eventType).
		SetPayload(payload).
		SetCorrelationID(o.correlationID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("append event %s to run %s: %w", eventType, run.ID, err)
	}

	if !o.skipRunTopic {
		env := events.NewEnvelope(events.RunTopic(run.ID), eventType, payload)
		env.Seq = &evt.Seq
		env.RunID = run.ID
		env.WorkspaceID = run.WorkspaceID
		env.UserID = o.userID
		if err := events.NotifyTx(ctx, tx, env.Topic, env); err != nil {
			return nil, err
		}
	}

	if o.workspaceEvent != "" {
		env := events.NewEnvelope(events.WorkspaceTopic(run.WorkspaceID), o.workspaceEvent, payload)
		env.Seq = &evt.Seq
		env.RunID = run.ID
		env.WorkspaceID = run.WorkspaceID
		env.UserID = o.userID
		if err := events.NotifyTx(ctx, tx, env.Topic, env); err != nil {
			return nil, err
		}
	}

	if o.approvalsCopy {
		env := events.NewEnvelope(events.ApprovalsTopic(run.WorkspaceID), eventType, payload)
		env.Seq = &evt.Seq
		env.RunID = run.ID
		env.WorkspaceID = run.WorkspaceID
		env.UserID = o.userID
		if err := events.NotifyTx(ctx, tx, env.Topic, env); err != nil {
			return nil, err
		}
	}

	return evt, nil
}
